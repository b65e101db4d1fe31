package usecase

import (
	"context"
	"errors"

	"github.com/afrikipresse/subscription-service/internal/pkg/models"
	"github.com/afrikipresse/subscription-service/services/subscription"
)

// GetSubscription returns the subscription record for a user
func (uc *paymentUC) GetSubscription(ctx context.Context, userID string) (*models.Subscription, error) {
	if userID == "" {
		return nil, subscription.ValidationError("user id is required")
	}
	return uc.repo.GetSubscription(ctx, userID)
}

// CheckEntitlement reports whether a user is currently entitled to gated
// content. Expiry is computed lazily at read time: a record whose period end
// has passed answers "not entitled" without being mutated, and no background
// sweep flips records to expired.
func (uc *paymentUC) CheckEntitlement(ctx context.Context, userID string) (*models.Entitlement, error) {
	if userID == "" {
		return nil, subscription.ValidationError("user id is required")
	}

	sub, err := uc.repo.GetSubscription(ctx, userID)
	if err != nil {
		if errors.Is(err, subscription.ErrSubscriptionNotFound) {
			return &models.Entitlement{UserID: userID, Entitled: false}, nil
		}
		return nil, err
	}

	now := models.Now()
	entitlement := &models.Entitlement{
		UserID:   userID,
		Entitled: sub.IsCurrent(now),
	}
	if entitlement.Entitled {
		entitlement.PlanID = sub.PlanID
		periodEnd := sub.PeriodEnd
		entitlement.PeriodEnd = &periodEnd
	}

	return entitlement, nil
}
