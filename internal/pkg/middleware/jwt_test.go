package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	jwtpkg "github.com/afrikipresse/subscription-service/internal/pkg/jwt"
	"github.com/afrikipresse/subscription-service/internal/pkg/models"
)

func jwtTestConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:     "test-secret",
		Expiration: 60,
		Issuer:     "afrikipresse",
	}
}

func runJWTMiddleware(t *testing.T, authHeader string) (*httptest.ResponseRecorder, bool, uuid.UUID) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var reached bool
	var gotID uuid.UUID
	handler := JWTAuthMiddleware(jwtTestConfig())(func(c echo.Context) error {
		reached = true
		gotID, _ = UserIDFromContext(c)
		return c.NoContent(http.StatusOK)
	})

	assert.NoError(t, handler(c))
	return rec, reached, gotID
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	userID := uuid.New()
	cfg := &models.Config{JWT: jwtTestConfig()}

	token, _, err := jwtpkg.GenerateToken(userID, "aya.kouassi@example.com", cfg)
	assert.NoError(t, err)

	rec, reached, gotID := runJWTMiddleware(t, "Bearer "+token)
	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, gotID)
}

func TestJWTAuthMiddleware_MissingHeader(t *testing.T) {
	rec, reached, _ := runJWTMiddleware(t, "")
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthMiddleware_WrongScheme(t *testing.T) {
	rec, reached, _ := runJWTMiddleware(t, "Basic dXNlcjpwYXNz")
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthMiddleware_BadToken(t *testing.T) {
	rec, reached, _ := runJWTMiddleware(t, "Bearer not.a.token")
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPIKeyMiddleware(t *testing.T) {
	m := NewAPIKeyMiddleware(&models.APIKeyConfig{
		ContentService: "content-key",
		AdminService:   "admin-key",
	})

	run := func(apiKey string, allowed ...string) (*httptest.ResponseRecorder, bool) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if apiKey != "" {
			req.Header.Set(APIKeyHeader, apiKey)
		}
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		var reached bool
		handler := m.Validate(allowed...)(func(c echo.Context) error {
			reached = true
			return c.NoContent(http.StatusOK)
		})
		assert.NoError(t, handler(c))
		return rec, reached
	}

	rec, reached := run("content-key", "content-service")
	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, reached = run("wrong-key", "content-service")
	assert.False(t, reached)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, reached = run("", "content-service")
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// A key from a service not in the allowed list is rejected
	rec, reached = run("admin-key", "content-service")
	assert.False(t, reached)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
