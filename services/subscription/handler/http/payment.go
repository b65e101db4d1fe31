package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/afrikipresse/subscription-service/internal/pkg/logger"
	"github.com/afrikipresse/subscription-service/internal/pkg/middleware"
	"github.com/afrikipresse/subscription-service/internal/pkg/models"
	nrpkg "github.com/afrikipresse/subscription-service/internal/pkg/newrelic"
	"github.com/afrikipresse/subscription-service/internal/utils"
	"github.com/afrikipresse/subscription-service/services/subscription"
)

// SubscriptionHandler handles HTTP requests for the payment lifecycle
type SubscriptionHandler struct {
	paymentUC subscription.PaymentUC
}

// NewSubscriptionHandler creates a new subscription HTTP handler
func NewSubscriptionHandler(paymentUC subscription.PaymentUC) *SubscriptionHandler {
	return &SubscriptionHandler{
		paymentUC: paymentUC,
	}
}

// InitiatePayment handles a subscription purchase request for the
// authenticated user
func (h *SubscriptionHandler) InitiatePayment(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Subscription.InitiatePayment")

	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}

	var req models.InitiatePaymentRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	// The payer identity comes from the token, never from the body
	req.UserID = userID.String()
	nrpkg.AddTransactionAttribute(txn, "plan_id", req.PlanID)

	session, err := h.paymentUC.InitiatePayment(c.Request().Context(), req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		switch {
		case errors.Is(err, subscription.ErrValidation):
			return utils.BadRequestResponse(c, err.Error())
		case errors.Is(err, subscription.ErrConfiguration):
			logger.Error("Payment initiation rejected by configuration",
				logger.Err(err))
			return utils.InternalServerErrorResponse(c, "Payment provider is not configured")
		case errors.Is(err, subscription.ErrPersistence):
			logger.Error("Failed to persist pending transaction",
				logger.String("user_id", req.UserID),
				logger.Err(err))
			return utils.InternalServerErrorResponse(c, "Failed to initiate payment")
		default:
			if ge, ok := subscription.IsGatewayError(err); ok {
				logger.Error("Gateway rejected payment session",
					logger.String("code", ge.Code),
					logger.String("message", ge.Message))
				return utils.BadGatewayResponse(c, "Payment provider rejected the request")
			}
			logger.Error("Failed to initiate payment",
				logger.String("user_id", req.UserID),
				logger.Err(err))
			return utils.BadGatewayResponse(c, "Payment provider is unreachable")
		}
	}

	logger.Info("Payment session created",
		logger.String("user_id", req.UserID),
		logger.String("plan_id", session.PlanID),
		logger.String("transaction_id", session.TransactionID))

	return utils.SuccessResponse(c, http.StatusCreated, "Payment session created", session)
}
