package subscription

import (
	"context"

	"github.com/afrikipresse/subscription-service/internal/pkg/models"
)

// PaymentGW defines the interface for payment gateway operations
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/afrikipresse/subscription-service/services/subscription PaymentGW,EventGW
type PaymentGW interface {
	// CreatePaymentSession opens a hosted payment session and returns the
	// payment URL the customer is redirected to.
	CreatePaymentSession(ctx context.Context, params models.PaymentSessionParams) (string, error)
	// CheckTransaction performs the authoritative server-to-server status
	// query for a transaction. The webhook body is never trusted instead.
	CheckTransaction(ctx context.Context, transactionID string) (*models.PaymentVerification, error)
}

// EventGW defines the interface for publishing payment lifecycle events
type EventGW interface {
	PublishSubscriptionActivated(ctx context.Context, event models.SubscriptionActivatedEvent) error
	PublishPaymentFailed(ctx context.Context, event models.PaymentFailedEvent) error
}
