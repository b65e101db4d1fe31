package middleware

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"

	"github.com/afrikipresse/subscription-service/internal/pkg/models"
	"github.com/afrikipresse/subscription-service/internal/utils"
)

const (
	// APIKeyHeader is the header carrying the service API key
	APIKeyHeader = "X-API-Key"
)

// APIKeyMiddleware validates API keys for service-to-service communication
type APIKeyMiddleware struct {
	keys map[string]string
}

// NewAPIKeyMiddleware creates a new API key middleware from configuration
func NewAPIKeyMiddleware(cfg *models.APIKeyConfig) *APIKeyMiddleware {
	return &APIKeyMiddleware{
		keys: map[string]string{
			"content-service": cfg.ContentService,
			"admin-service":   cfg.AdminService,
		},
	}
}

// Validate returns a middleware that accepts requests carrying the API key of
// any of the allowed services
func (m *APIKeyMiddleware) Validate(allowedServices ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.UnauthorizedResponse(c, "API key is required")
			}

			validKey := false
			for _, service := range allowedServices {
				expected := m.keys[service]
				if expected != "" && subtle.ConstantTimeCompare([]byte(apiKey), []byte(expected)) == 1 {
					validKey = true
					break
				}
			}

			if !validKey {
				// A key that is not valid for this route is a caller that
				// authenticated but is not allowed here
				return utils.ForbiddenResponse(c, "API key not valid for this endpoint")
			}

			return next(c)
		}
	}
}
