package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/afrikipresse/subscription-service/internal/pkg/models"
	"github.com/afrikipresse/subscription-service/services/subscription"
	"github.com/afrikipresse/subscription-service/services/subscription/mocks"
)

func newPaymentContext(t *testing.T, userID uuid.UUID, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	reqBody, err := json.Marshal(body)
	assert.NoError(t, err)

	request := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewBuffer(reqBody))
	request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	recorder := httptest.NewRecorder()
	c := e.NewContext(request, recorder)
	c.Set("user_id", userID)
	return c, recorder
}

func TestInitiatePayment_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewSubscriptionHandler(mockUC)

	userID := uuid.New()
	session := &models.PaymentSession{
		TransactionID: "SUB-MONTHLY-1700000000-deadbeef",
		PaymentURL:    "https://checkout.cinetpay.com/pay/xyz",
		Amount:        2000,
		Currency:      "XOF",
		PlanID:        models.PlanMonthly,
	}

	mockUC.EXPECT().
		InitiatePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req models.InitiatePaymentRequest) (*models.PaymentSession, error) {
			// The payer identity must come from the token, not the body
			assert.Equal(t, userID.String(), req.UserID)
			return session, nil
		})

	c, recorder := newPaymentContext(t, userID, map[string]interface{}{
		"plan_id": models.PlanMonthly,
		"user_id": "spoofed-user-id",
		"customer": map[string]string{
			"name": "Kouassi", "surname": "Aya",
		},
	})

	err := handler.InitiatePayment(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "checkout.cinetpay.com")
}

func TestInitiatePayment_MissingIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewSubscriptionHandler(mockUC)

	e := echo.New()
	request := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewBufferString(`{}`))
	request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	recorder := httptest.NewRecorder()
	c := e.NewContext(request, recorder)

	err := handler.InitiatePayment(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestInitiatePayment_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewSubscriptionHandler(mockUC)

	mockUC.EXPECT().
		InitiatePayment(gomock.Any(), gomock.Any()).
		Return(nil, subscription.ValidationError("unknown plan %q", "weekly"))

	c, recorder := newPaymentContext(t, uuid.New(), map[string]interface{}{
		"plan_id": "weekly",
	})

	err := handler.InitiatePayment(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestInitiatePayment_GatewayError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewSubscriptionHandler(mockUC)

	mockUC.EXPECT().
		InitiatePayment(gomock.Any(), gomock.Any()).
		Return(nil, subscription.NewGatewayError("602", "SERVICE_UNAVAILABLE"))

	c, recorder := newPaymentContext(t, uuid.New(), map[string]interface{}{
		"plan_id": models.PlanMonthly,
	})

	err := handler.InitiatePayment(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, recorder.Code)
}
