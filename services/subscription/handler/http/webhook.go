package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/afrikipresse/subscription-service/internal/pkg/logger"
	"github.com/afrikipresse/subscription-service/internal/pkg/models"
	nrpkg "github.com/afrikipresse/subscription-service/internal/pkg/newrelic"
	"github.com/afrikipresse/subscription-service/internal/utils"
	"github.com/afrikipresse/subscription-service/services/subscription"
)

// HandleNotification receives the asynchronous payment notification from the
// gateway. A 2xx acknowledges the delivery; any 5xx makes the gateway
// redeliver, which is the only retry mechanism in the flow. Malformed
// notifications are rejected with a 4xx so the gateway stops redelivering
// something that can never be processed.
func (h *SubscriptionHandler) HandleNotification(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Subscription.HandleNotification")

	var notification models.WebhookNotification
	if err := c.Bind(&notification); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid notification body: "+err.Error())
	}

	nrpkg.AddTransactionAttribute(txn, "transaction_id", notification.TransactionID)

	logger.Info("Received payment notification",
		logger.String("transaction_id", notification.TransactionID),
		logger.String("site_id", notification.SiteID),
		logger.String("claimed_status", notification.TransStatus),
		logger.String("client_ip", c.RealIP()))

	err := h.paymentUC.ProcessNotification(c.Request().Context(), notification)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		switch {
		case errors.Is(err, subscription.ErrValidation):
			logger.Warn("Rejected malformed notification",
				logger.String("transaction_id", notification.TransactionID),
				logger.Err(err))
			return utils.BadRequestResponse(c, err.Error())
		case errors.Is(err, subscription.ErrTransactionNotFound):
			logger.Warn("Notification references unknown transaction",
				logger.String("transaction_id", notification.TransactionID))
			return utils.NotFoundResponse(c, "Unknown transaction")
		case errors.Is(err, subscription.ErrPersistence):
			// The state write failed after verification; a 5xx asks the
			// gateway to redeliver
			logger.Error("Failed to persist notification outcome",
				logger.String("transaction_id", notification.TransactionID),
				logger.Err(err))
			return utils.InternalServerErrorResponse(c, "Failed to process notification")
		default:
			// The authoritative check with the gateway failed, so the
			// transaction stays pending; 502 is still a redelivery signal
			logger.Error("Failed to verify notification with gateway",
				logger.String("transaction_id", notification.TransactionID),
				logger.Err(err))
			return utils.BadGatewayResponse(c, "Failed to verify transaction with payment gateway")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Notification processed", nil)
}
