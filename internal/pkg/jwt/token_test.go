package jwt

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/afrikipresse/subscription-service/internal/pkg/models"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "afrikipresse",
		},
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := testConfig()
	userID := uuid.New()

	tokenString, expiresAt, err := GenerateToken(userID, "aya.kouassi@example.com", cfg)
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, int64(0))

	claims, err := ValidateToken(tokenString, cfg.JWT.Secret)
	assert.NoError(t, err)
	assert.Equal(t, userID.String(), (*claims)["user_id"])
	assert.Equal(t, "aya.kouassi@example.com", (*claims)["email"])
	assert.Equal(t, "afrikipresse", (*claims)["iss"])
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := testConfig()

	tokenString, _, err := GenerateToken(uuid.New(), "user@example.com", cfg)
	assert.NoError(t, err)

	_, err = ValidateToken(tokenString, "other-secret")
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not.a.token", "test-secret")
	assert.Error(t, err)
}
