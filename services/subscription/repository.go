package subscription

import (
	"context"

	"github.com/afrikipresse/subscription-service/internal/pkg/models"
)

// SubscriptionRepo defines the interface for subscription data access
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/afrikipresse/subscription-service/services/subscription SubscriptionRepo
type SubscriptionRepo interface {
	CreateTransaction(ctx context.Context, txn *models.Transaction) error
	GetTransaction(ctx context.Context, transactionID string) (*models.Transaction, error)
	// AcceptTransaction transitions a transaction from pending to accepted.
	// It returns false when the transaction was already terminal, which is
	// how replayed webhook deliveries are detected.
	AcceptTransaction(ctx context.Context, transactionID string) (bool, error)
	// RefuseTransaction transitions a transaction from pending to refused.
	RefuseTransaction(ctx context.Context, transactionID string) (bool, error)
	UpsertSubscription(ctx context.Context, sub *models.Subscription) error
	GetSubscription(ctx context.Context, userID string) (*models.Subscription, error)
	RecordPaymentFailure(ctx context.Context, failure *models.PaymentFailure) error
}
