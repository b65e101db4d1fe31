package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/afrikipresse/subscription-service/internal/pkg/middleware"
)

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, apiKey *middleware.APIKeyMiddleware) {
	// Gateway callback endpoint; CinetPay does not authenticate, the
	// notification is authenticated by re-verifying against the gateway
	e.POST("/webhooks/cinetpay", h.subscriptionHTTP.HandleNotification)

	// Customer-facing endpoints (JWT required)
	customer := e.Group("", middleware.JWTAuthMiddleware(h.cfg.JWT))
	customer.POST("/payments", h.subscriptionHTTP.InitiatePayment)
	customer.GET("/subscriptions/me", h.subscriptionHTTP.GetMySubscription)

	// Internal routes for service-to-service communication (API key required)
	internal := e.Group("/internal", apiKey.Validate("content-service", "admin-service"))
	internal.GET("/subscriptions/:userID/entitlement", h.subscriptionHTTP.CheckEntitlement)
}
