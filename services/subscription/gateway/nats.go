package gateway

import (
	"context"

	"github.com/afrikipresse/subscription-service/internal/pkg/constants"
	"github.com/afrikipresse/subscription-service/internal/pkg/logger"
	"github.com/afrikipresse/subscription-service/internal/pkg/models"
	natspkg "github.com/afrikipresse/subscription-service/internal/pkg/nats"
	"github.com/afrikipresse/subscription-service/services/subscription"
)

// EventGW publishes payment lifecycle events to NATS
type EventGW struct {
	natsClient *natspkg.Client
}

// NewEventGW creates a new NATS-backed event gateway
func NewEventGW(natsClient *natspkg.Client) subscription.EventGW {
	return &EventGW{
		natsClient: natsClient,
	}
}

// PublishSubscriptionActivated announces that a subscription period was opened
func (g *EventGW) PublishSubscriptionActivated(_ context.Context, event models.SubscriptionActivatedEvent) error {
	logger.Info("Publishing subscription activated event",
		logger.String("user_id", event.UserID),
		logger.String("plan_id", event.PlanID),
		logger.String("transaction_id", event.TransactionID))

	return g.natsClient.PublishJSON(constants.SubjectSubscriptionActivated, event)
}

// PublishPaymentFailed announces that the gateway refused a payment
func (g *EventGW) PublishPaymentFailed(_ context.Context, event models.PaymentFailedEvent) error {
	logger.Info("Publishing payment failed event",
		logger.String("user_id", event.UserID),
		logger.String("transaction_id", event.TransactionID),
		logger.String("reason", event.Reason))

	return g.natsClient.PublishJSON(constants.SubjectPaymentFailed, event)
}
