package usecase

import (
	"github.com/afrikipresse/subscription-service/internal/pkg/models"
	"github.com/afrikipresse/subscription-service/services/subscription"
)

// paymentUC implements the subscription.PaymentUC interface
type paymentUC struct {
	cfg     *models.Config
	repo    subscription.SubscriptionRepo
	gw      subscription.PaymentGW
	eventGW subscription.EventGW
}

// NewPaymentUC creates a new payment use case
func NewPaymentUC(
	cfg *models.Config,
	repo subscription.SubscriptionRepo,
	gw subscription.PaymentGW,
	eventGW subscription.EventGW,
) (subscription.PaymentUC, error) {
	return &paymentUC{
		cfg:     cfg,
		repo:    repo,
		gw:      gw,
		eventGW: eventGW,
	}, nil
}
