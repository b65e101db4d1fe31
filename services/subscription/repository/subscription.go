package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/afrikipresse/subscription-service/internal/pkg/constants"
	"github.com/afrikipresse/subscription-service/internal/pkg/logger"
	"github.com/afrikipresse/subscription-service/internal/pkg/models"
	"github.com/afrikipresse/subscription-service/services/subscription"
)

// entitlementCacheTTL bounds staleness of cached subscription reads
const entitlementCacheTTL = time.Minute

// UpsertSubscription creates or replaces the subscription record for a user.
// The write is idempotent per transaction: re-applying the same accepted
// transaction leaves the row unchanged, so webhook replays never extend the
// subscription period.
func (r *SubscriptionRepo) UpsertSubscription(ctx context.Context, sub *models.Subscription) error {
	now := models.Now()
	sub.CreatedAt = now
	sub.UpdatedAt = now

	query := `
		INSERT INTO subscriptions (user_id, plan_id, status, period_start, period_end,
			last_transaction_id, last_amount, last_payment_at, created_at, updated_at
		) VALUES (:user_id, :plan_id, :status, :period_start, :period_end,
			:last_transaction_id, :last_amount, :last_payment_at, :created_at, :updated_at)
		ON CONFLICT (user_id) DO UPDATE SET
			plan_id = EXCLUDED.plan_id,
			status = EXCLUDED.status,
			period_start = EXCLUDED.period_start,
			period_end = EXCLUDED.period_end,
			last_transaction_id = EXCLUDED.last_transaction_id,
			last_amount = EXCLUDED.last_amount,
			last_payment_at = EXCLUDED.last_payment_at,
			updated_at = EXCLUDED.updated_at
		WHERE subscriptions.last_transaction_id IS DISTINCT FROM EXCLUDED.last_transaction_id
	`
	_, err := r.db.NamedExecContext(ctx, query, sub)
	if err != nil {
		return fmt.Errorf("failed to upsert subscription: %w", err)
	}

	r.invalidateCache(ctx, sub.UserID)

	return nil
}

// GetSubscription retrieves the subscription record for a user, serving from
// the short-TTL cache when possible
func (r *SubscriptionRepo) GetSubscription(ctx context.Context, userID string) (*models.Subscription, error) {
	if sub := r.getCached(ctx, userID); sub != nil {
		return sub, nil
	}

	query := `
		SELECT user_id, plan_id, status, period_start, period_end,
			last_transaction_id, last_amount, last_payment_at, created_at, updated_at
		FROM subscriptions
		WHERE user_id = $1
	`

	var sub models.Subscription
	err := r.db.GetContext(ctx, &sub, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: user %s", subscription.ErrSubscriptionNotFound, userID)
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	r.setCached(ctx, &sub)

	return &sub, nil
}

func (r *SubscriptionRepo) getCached(ctx context.Context, userID string) *models.Subscription {
	if !r.cacheEnabled() {
		return nil
	}

	key := fmt.Sprintf(constants.KeyEntitlement, userID)
	raw, err := r.redisClient.Get(ctx, key)
	if err != nil {
		return nil
	}

	var sub models.Subscription
	if err := json.Unmarshal([]byte(raw), &sub); err != nil {
		logger.Warn("Failed to decode cached subscription",
			logger.String("user_id", userID),
			logger.Err(err))
		return nil
	}

	return &sub
}

func (r *SubscriptionRepo) setCached(ctx context.Context, sub *models.Subscription) {
	if !r.cacheEnabled() {
		return
	}

	raw, err := json.Marshal(sub)
	if err != nil {
		return
	}

	key := fmt.Sprintf(constants.KeyEntitlement, sub.UserID)
	if err := r.redisClient.Set(ctx, key, raw, entitlementCacheTTL); err != nil {
		logger.Warn("Failed to cache subscription",
			logger.String("user_id", sub.UserID),
			logger.Err(err))
	}
}

func (r *SubscriptionRepo) invalidateCache(ctx context.Context, userID string) {
	if !r.cacheEnabled() {
		return
	}

	key := fmt.Sprintf(constants.KeyEntitlement, userID)
	if err := r.redisClient.Delete(ctx, key); err != nil {
		logger.Warn("Failed to invalidate subscription cache",
			logger.String("user_id", userID),
			logger.Err(err))
	}
}
