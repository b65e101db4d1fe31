package handler

import (
	"github.com/afrikipresse/subscription-service/internal/pkg/models"
	"github.com/afrikipresse/subscription-service/services/subscription"
	httpHandler "github.com/afrikipresse/subscription-service/services/subscription/handler/http"
)

// Handler combines all handlers for the subscription service
type Handler struct {
	subscriptionHTTP *httpHandler.SubscriptionHandler
	cfg              *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(
	paymentUC subscription.PaymentUC,
	cfg *models.Config,
) *Handler {
	return &Handler{
		subscriptionHTTP: httpHandler.NewSubscriptionHandler(paymentUC),
		cfg:              cfg,
	}
}
