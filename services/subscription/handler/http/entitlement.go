package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/afrikipresse/subscription-service/internal/pkg/logger"
	"github.com/afrikipresse/subscription-service/internal/pkg/middleware"
	nrpkg "github.com/afrikipresse/subscription-service/internal/pkg/newrelic"
	"github.com/afrikipresse/subscription-service/internal/utils"
	"github.com/afrikipresse/subscription-service/services/subscription"
)

// GetMySubscription returns the authenticated user's subscription record
func (h *SubscriptionHandler) GetMySubscription(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Subscription.GetMySubscription")

	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}

	sub, err := h.paymentUC.GetSubscription(c.Request().Context(), userID.String())
	if err != nil {
		if errors.Is(err, subscription.ErrSubscriptionNotFound) {
			return utils.NotFoundResponse(c, "No subscription found")
		}
		nrpkg.NoticeTransactionError(txn, err)
		logger.Error("Failed to fetch subscription",
			logger.String("user_id", userID.String()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to fetch subscription")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Subscription retrieved", sub)
}

// CheckEntitlement answers whether a user currently has paid access. It is
// called by the content service on every gated article view, so a missing
// record is a normal answer, not an error.
func (h *SubscriptionHandler) CheckEntitlement(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Subscription.CheckEntitlement")

	userID := c.Param("userID")
	if userID == "" {
		return utils.BadRequestResponse(c, "User ID is required")
	}

	entitlement, err := h.paymentUC.CheckEntitlement(c.Request().Context(), userID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		logger.Error("Failed to check entitlement",
			logger.String("user_id", userID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to check entitlement")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Entitlement checked", entitlement)
}
