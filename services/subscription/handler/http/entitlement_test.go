package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/afrikipresse/subscription-service/internal/pkg/models"
	"github.com/afrikipresse/subscription-service/services/subscription"
	"github.com/afrikipresse/subscription-service/services/subscription/mocks"
)

func TestGetMySubscription_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewSubscriptionHandler(mockUC)

	userID := uuid.New()
	mockUC.EXPECT().
		GetSubscription(gomock.Any(), userID.String()).
		Return(&models.Subscription{
			UserID: userID.String(),
			PlanID: models.PlanAnnual,
			Status: models.SubscriptionStatusActive,
		}, nil)

	e := echo.New()
	request := httptest.NewRequest(http.MethodGet, "/subscriptions/me", nil)
	recorder := httptest.NewRecorder()
	c := e.NewContext(request, recorder)
	c.Set("user_id", userID)

	err := handler.GetMySubscription(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), models.PlanAnnual)
}

func TestGetMySubscription_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewSubscriptionHandler(mockUC)

	userID := uuid.New()
	mockUC.EXPECT().
		GetSubscription(gomock.Any(), userID.String()).
		Return(nil, subscription.ErrSubscriptionNotFound)

	e := echo.New()
	request := httptest.NewRequest(http.MethodGet, "/subscriptions/me", nil)
	recorder := httptest.NewRecorder()
	c := e.NewContext(request, recorder)
	c.Set("user_id", userID)

	err := handler.GetMySubscription(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestCheckEntitlement_Entitled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewSubscriptionHandler(mockUC)

	userID := uuid.New().String()
	periodEnd := time.Now().Add(10 * 24 * time.Hour)

	mockUC.EXPECT().
		CheckEntitlement(gomock.Any(), userID).
		Return(&models.Entitlement{
			UserID:    userID,
			Entitled:  true,
			PlanID:    models.PlanMonthly,
			PeriodEnd: &periodEnd,
		}, nil)

	e := echo.New()
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	recorder := httptest.NewRecorder()
	c := e.NewContext(request, recorder)
	c.SetParamNames("userID")
	c.SetParamValues(userID)

	err := handler.CheckEntitlement(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"entitled":true`)
}

func TestCheckEntitlement_MissingUserID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewSubscriptionHandler(mockUC)

	e := echo.New()
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	recorder := httptest.NewRecorder()
	c := e.NewContext(request, recorder)

	err := handler.CheckEntitlement(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
