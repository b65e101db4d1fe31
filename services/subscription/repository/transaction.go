package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/afrikipresse/subscription-service/internal/pkg/models"
	"github.com/afrikipresse/subscription-service/services/subscription"
)

// CreateTransaction inserts a new pending transaction
func (r *SubscriptionRepo) CreateTransaction(ctx context.Context, txn *models.Transaction) error {
	query := `
		INSERT INTO transactions (id, user_id, plan_id, amount, currency, status,
			created_at, updated_at
		) VALUES (:id, :user_id, :plan_id, :amount, :currency, :status,
			:created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, txn)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return nil
}

// GetTransaction retrieves a transaction by its identifier
func (r *SubscriptionRepo) GetTransaction(ctx context.Context, transactionID string) (*models.Transaction, error) {
	query := `
		SELECT id, user_id, plan_id, amount, currency, status, created_at, updated_at
		FROM transactions
		WHERE id = $1
	`

	var txn models.Transaction
	err := r.db.GetContext(ctx, &txn, query, transactionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", subscription.ErrTransactionNotFound, transactionID)
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return &txn, nil
}

// AcceptTransaction transitions a transaction from pending to accepted. The
// predicate on status makes the transition race-safe: of any concurrent
// duplicate deliveries, exactly one observes a row change.
func (r *SubscriptionRepo) AcceptTransaction(ctx context.Context, transactionID string) (bool, error) {
	return r.finalizeTransaction(ctx, transactionID, models.TransactionStatusAccepted)
}

// RefuseTransaction transitions a transaction from pending to refused
func (r *SubscriptionRepo) RefuseTransaction(ctx context.Context, transactionID string) (bool, error) {
	return r.finalizeTransaction(ctx, transactionID, models.TransactionStatusRefused)
}

func (r *SubscriptionRepo) finalizeTransaction(ctx context.Context, transactionID string, status models.TransactionStatus) (bool, error) {
	query := `
		UPDATE transactions
		SET status = $2, updated_at = $3
		WHERE id = $1 AND status = $4
	`

	result, err := r.db.ExecContext(ctx, query, transactionID, status, models.Now(), models.TransactionStatusPending)
	if err != nil {
		return false, fmt.Errorf("failed to update transaction status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return rows > 0, nil
}

// RecordPaymentFailure attaches a refused payment to the user for observability
func (r *SubscriptionRepo) RecordPaymentFailure(ctx context.Context, failure *models.PaymentFailure) error {
	if failure.ID == "" {
		failure.ID = uuid.New().String()
	}
	if failure.CreatedAt.IsZero() {
		failure.CreatedAt = models.Now()
	}

	query := `
		INSERT INTO payment_failures (id, user_id, transaction_id, reason, amount, created_at)
		VALUES (:id, :user_id, :transaction_id, :reason, :amount, :created_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, failure)
	if err != nil {
		return fmt.Errorf("failed to insert payment failure: %w", err)
	}

	return nil
}
