package subscription

import (
	"context"

	"github.com/afrikipresse/subscription-service/internal/pkg/models"
)

// PaymentUC defines the interface for the subscription payment lifecycle
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/afrikipresse/subscription-service/services/subscription PaymentUC
type PaymentUC interface {
	InitiatePayment(ctx context.Context, req models.InitiatePaymentRequest) (*models.PaymentSession, error)
	ProcessNotification(ctx context.Context, notification models.WebhookNotification) error
	GetSubscription(ctx context.Context, userID string) (*models.Subscription, error)
	CheckEntitlement(ctx context.Context, userID string) (*models.Entitlement, error)
}
