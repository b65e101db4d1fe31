package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/afrikipresse/subscription-service/internal/pkg/logger"
	"github.com/afrikipresse/subscription-service/internal/pkg/models"
	nrpkg "github.com/afrikipresse/subscription-service/internal/pkg/newrelic"
	"github.com/afrikipresse/subscription-service/services/subscription"
)

// ProcessNotification handles an asynchronous payment notification from the
// gateway. The flow is a strict two-step protocol: structural validation that
// never touches the store or the network, then an authoritative
// server-to-server verification. The webhook body's status fields are never
// trusted. The handler is safe to invoke more than once per transaction; the
// gateway redelivers until it receives an acknowledgement.
func (uc *paymentUC) ProcessNotification(ctx context.Context, notification models.WebhookNotification) error {
	// Step 1: structural validation, local only
	if notification.TransactionID == "" {
		return subscription.ValidationError("missing cpm_trans_id")
	}

	if notification.SiteID != uc.cfg.CinetPay.SiteID {
		return subscription.ValidationError("site id %q does not match configured site", notification.SiteID)
	}

	parts, err := models.ParseTransactionID(notification.TransactionID)
	if err != nil {
		return fmt.Errorf("%w: %v", subscription.ErrValidation, err)
	}

	txn, err := uc.repo.GetTransaction(ctx, notification.TransactionID)
	if err != nil {
		return err
	}

	// Step 2: authoritative re-verification against the gateway
	var verification *models.PaymentVerification
	err = nrpkg.WithSegment(ctx, "cinetpay.CheckTransaction", func() error {
		var gwErr error
		verification, gwErr = uc.gw.CheckTransaction(ctx, notification.TransactionID)
		return gwErr
	})
	if err != nil {
		logger.Error("Transaction verification failed",
			logger.String("transaction_id", notification.TransactionID),
			logger.Err(err))
		return err
	}

	if verification.Amount != 0 && verification.Amount != txn.Amount {
		logger.Warn("Verified amount differs from transaction amount",
			logger.String("transaction_id", txn.ID),
			logger.Int("expected", txn.Amount),
			logger.Int("verified", verification.Amount))
	}

	// Step 3: outcome handling
	switch verification.Status {
	case models.GatewayStatusAccepted:
		return uc.handleAccepted(ctx, txn, parts.PlanID)
	case models.GatewayStatusRefused:
		return uc.handleRefused(ctx, txn, verification, notification)
	default:
		// Unknown or still pending: acknowledge receipt without changing
		// state so a later redelivery can resolve it
		logger.Info("Transaction still pending at gateway",
			logger.String("transaction_id", txn.ID),
			logger.String("gateway_status", verification.Status))
		return nil
	}
}

// handleAccepted activates the subscription for a verified accepted
// transaction. The pending-to-accepted transition is conditional, so exactly
// one of any concurrent duplicate deliveries performs the activation; replays
// of an already-applied transaction are acknowledged without extending the
// subscription.
func (uc *paymentUC) handleAccepted(ctx context.Context, txn *models.Transaction, planID string) error {
	plan, ok := models.GetPlan(planID)
	if !ok {
		return subscription.ValidationError("unknown plan %q", planID)
	}

	applied, err := uc.repo.AcceptTransaction(ctx, txn.ID)
	if err != nil {
		return fmt.Errorf("%w: failed to accept transaction: %v", subscription.ErrPersistence, err)
	}

	if !applied {
		// Terminal transaction: check whether the activation already landed.
		// If it did, the replay is a no-op; if the previous delivery failed
		// between accepting the transaction and writing the subscription,
		// fall through and repair.
		existing, err := uc.repo.GetSubscription(ctx, txn.UserID)
		if err != nil && !errors.Is(err, subscription.ErrSubscriptionNotFound) {
			return fmt.Errorf("%w: failed to load subscription: %v", subscription.ErrPersistence, err)
		}
		if existing != nil {
			if existing.LastTransactionID == txn.ID {
				logger.Info("Duplicate notification for applied transaction",
					logger.String("transaction_id", txn.ID),
					logger.String("user_id", txn.UserID))
				return nil
			}
			if !existing.LastPaymentAt.Before(txn.CreatedAt) {
				// The subscription has since been paid for by a newer
				// transaction. Redelivering this one must not roll the
				// user back to the old plan or period.
				logger.Info("Stale notification for superseded transaction",
					logger.String("transaction_id", txn.ID),
					logger.String("current_transaction_id", existing.LastTransactionID),
					logger.String("user_id", txn.UserID))
				return nil
			}
		}
		// The previous delivery accepted the transaction but never wrote
		// the subscription: complete the activation now.
	}

	now := models.Now()
	sub := &models.Subscription{
		UserID:            txn.UserID,
		PlanID:            plan.ID,
		Status:            models.SubscriptionStatusActive,
		PeriodStart:       now,
		PeriodEnd:         now.Add(plan.Duration()),
		LastTransactionID: txn.ID,
		LastAmount:        txn.Amount,
		LastPaymentAt:     now,
	}

	if err := uc.repo.UpsertSubscription(ctx, sub); err != nil {
		return fmt.Errorf("%w: failed to write subscription: %v", subscription.ErrPersistence, err)
	}

	logger.Info("Subscription activated",
		logger.String("user_id", txn.UserID),
		logger.String("plan_id", plan.ID),
		logger.String("transaction_id", txn.ID),
		logger.Any("period_end", sub.PeriodEnd))

	if err := uc.eventGW.PublishSubscriptionActivated(ctx, models.SubscriptionActivatedEvent{
		UserID:        txn.UserID,
		PlanID:        plan.ID,
		TransactionID: txn.ID,
		Amount:        txn.Amount,
		PeriodStart:   sub.PeriodStart,
		PeriodEnd:     sub.PeriodEnd,
		ActivatedAt:   now,
	}); err != nil {
		// Event delivery is best effort; the state transition already landed
		logger.Warn("Failed to publish subscription activated event",
			logger.String("transaction_id", txn.ID),
			logger.Err(err))
	}

	return nil
}

// handleRefused records the failure against the user for observability. The
// subscription record is never touched on a refused payment.
func (uc *paymentUC) handleRefused(ctx context.Context, txn *models.Transaction, verification *models.PaymentVerification, notification models.WebhookNotification) error {
	applied, err := uc.repo.RefuseTransaction(ctx, txn.ID)
	if err != nil {
		return fmt.Errorf("%w: failed to refuse transaction: %v", subscription.ErrPersistence, err)
	}

	if !applied {
		logger.Info("Duplicate notification for refused transaction",
			logger.String("transaction_id", txn.ID))
		return nil
	}

	reason := verification.Message
	if reason == "" {
		reason = notification.ErrorMessage
	}
	if reason == "" {
		reason = "payment refused by gateway"
	}

	now := models.Now()
	failure := &models.PaymentFailure{
		UserID:        txn.UserID,
		TransactionID: txn.ID,
		Reason:        reason,
		Amount:        txn.Amount,
		CreatedAt:     now,
	}

	if err := uc.repo.RecordPaymentFailure(ctx, failure); err != nil {
		return fmt.Errorf("%w: failed to record payment failure: %v", subscription.ErrPersistence, err)
	}

	logger.Info("Payment refused",
		logger.String("user_id", txn.UserID),
		logger.String("transaction_id", txn.ID),
		logger.String("reason", reason))

	if err := uc.eventGW.PublishPaymentFailed(ctx, models.PaymentFailedEvent{
		UserID:        txn.UserID,
		PlanID:        txn.PlanID,
		TransactionID: txn.ID,
		Amount:        txn.Amount,
		Reason:        reason,
		FailedAt:      now,
	}); err != nil {
		logger.Warn("Failed to publish payment failed event",
			logger.String("transaction_id", txn.ID),
			logger.Err(err))
	}

	return nil
}
