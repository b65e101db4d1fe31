package usecase

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/afrikipresse/subscription-service/internal/pkg/models"
	"github.com/afrikipresse/subscription-service/services/subscription"
	"github.com/afrikipresse/subscription-service/services/subscription/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		CinetPay: models.CinetPayConfig{
			APIKey:    "test-api-key",
			SiteID:    "site-123",
			BaseURL:   "https://api-checkout.cinetpay.com/v2",
			NotifyURL: "https://afrikipresse.example/webhooks/cinetpay",
			ReturnURL: "https://afrikipresse.example/abonnement/retour",
			Channels:  "ALL",
		},
	}
}

func validCustomer() models.Customer {
	return models.Customer{
		Name:    "Kouassi",
		Surname: "Aya",
		Email:   "aya.kouassi@example.com",
		Phone:   "+2250701020304",
		Address: "Cocody Riviera",
		City:    "Abidjan",
		Country: "CI",
		Zip:     "00225",
	}
}

func TestInitiatePayment_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSubscriptionRepo(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)
	mockEventGW := mocks.NewMockEventGW(ctrl)

	userID := uuid.New().String()
	req := models.InitiatePaymentRequest{
		PlanID:   models.PlanMonthly,
		UserID:   userID,
		Customer: validCustomer(),
	}

	var createdTxn *models.Transaction
	mockRepo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txn *models.Transaction) error {
			createdTxn = txn
			return nil
		})

	mockGW.EXPECT().
		CreatePaymentSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params models.PaymentSessionParams) (string, error) {
			assert.Equal(t, 2000, params.Amount)
			assert.Equal(t, "XOF", params.Currency)
			assert.NotEmpty(t, params.Metadata)
			return "https://checkout.cinetpay.com/pay/abc123", nil
		})

	uc, err := NewPaymentUC(testConfig(), mockRepo, mockGW, mockEventGW)
	assert.NoError(t, err)

	session, err := uc.InitiatePayment(context.Background(), req)
	assert.NoError(t, err)
	assert.Equal(t, "https://checkout.cinetpay.com/pay/abc123", session.PaymentURL)
	assert.Equal(t, 2000, session.Amount)
	assert.Equal(t, models.PlanMonthly, session.PlanID)

	// The transaction identifier encodes the plan, a timestamp and the user
	assert.Regexp(t, regexp.MustCompile(`^SUB-MONTHLY-\d+-[0-9a-fA-F]{8}$`), session.TransactionID)

	assert.NotNil(t, createdTxn)
	assert.Equal(t, session.TransactionID, createdTxn.ID)
	assert.Equal(t, userID, createdTxn.UserID)
	assert.Equal(t, models.TransactionStatusPending, createdTxn.Status)
}

func TestInitiatePayment_UnknownPlan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSubscriptionRepo(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)
	mockEventGW := mocks.NewMockEventGW(ctrl)

	uc, _ := NewPaymentUC(testConfig(), mockRepo, mockGW, mockEventGW)

	_, err := uc.InitiatePayment(context.Background(), models.InitiatePaymentRequest{
		PlanID:   "weekly",
		UserID:   uuid.New().String(),
		Customer: validCustomer(),
	})

	assert.ErrorIs(t, err, subscription.ErrValidation)
}

func TestInitiatePayment_MissingCustomerField(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSubscriptionRepo(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)
	mockEventGW := mocks.NewMockEventGW(ctrl)

	uc, _ := NewPaymentUC(testConfig(), mockRepo, mockGW, mockEventGW)

	customer := validCustomer()
	customer.City = ""

	_, err := uc.InitiatePayment(context.Background(), models.InitiatePaymentRequest{
		PlanID:   models.PlanAnnual,
		UserID:   uuid.New().String(),
		Customer: customer,
	})

	assert.ErrorIs(t, err, subscription.ErrValidation)
	assert.Contains(t, err.Error(), "city")
}

func TestInitiatePayment_InvalidEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSubscriptionRepo(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)
	mockEventGW := mocks.NewMockEventGW(ctrl)

	uc, _ := NewPaymentUC(testConfig(), mockRepo, mockGW, mockEventGW)

	customer := validCustomer()
	customer.Email = "not-an-email"

	_, err := uc.InitiatePayment(context.Background(), models.InitiatePaymentRequest{
		PlanID:   models.PlanMonthly,
		UserID:   uuid.New().String(),
		Customer: customer,
	})

	assert.ErrorIs(t, err, subscription.ErrValidation)
}

func TestInitiatePayment_MissingCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSubscriptionRepo(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)
	mockEventGW := mocks.NewMockEventGW(ctrl)

	cfg := testConfig()
	cfg.CinetPay.APIKey = ""

	uc, _ := NewPaymentUC(cfg, mockRepo, mockGW, mockEventGW)

	// Valid request, unconfigured gateway: rejected before any side effect
	_, err := uc.InitiatePayment(context.Background(), models.InitiatePaymentRequest{
		PlanID:   models.PlanMonthly,
		UserID:   uuid.New().String(),
		Customer: validCustomer(),
	})

	assert.ErrorIs(t, err, subscription.ErrConfiguration)
}

func TestInitiatePayment_PersistenceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSubscriptionRepo(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)
	mockEventGW := mocks.NewMockEventGW(ctrl)

	mockRepo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		Return(errors.New("connection refused"))

	uc, _ := NewPaymentUC(testConfig(), mockRepo, mockGW, mockEventGW)

	// The gateway is never called when the pending transaction cannot be stored
	_, err := uc.InitiatePayment(context.Background(), models.InitiatePaymentRequest{
		PlanID:   models.PlanSemiannual,
		UserID:   uuid.New().String(),
		Customer: validCustomer(),
	})

	assert.ErrorIs(t, err, subscription.ErrPersistence)
}

func TestInitiatePayment_GatewayError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSubscriptionRepo(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)
	mockEventGW := mocks.NewMockEventGW(ctrl)

	mockRepo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		Return(nil)

	mockGW.EXPECT().
		CreatePaymentSession(gomock.Any(), gomock.Any()).
		Return("", subscription.NewGatewayError("608", "MINIMUM_REQUIRED_FIELDS"))

	uc, _ := NewPaymentUC(testConfig(), mockRepo, mockGW, mockEventGW)

	_, err := uc.InitiatePayment(context.Background(), models.InitiatePaymentRequest{
		PlanID:   models.PlanMonthly,
		UserID:   uuid.New().String(),
		Customer: validCustomer(),
	})

	assert.Error(t, err)
	ge, ok := subscription.IsGatewayError(err)
	assert.True(t, ok)
	assert.Equal(t, "608", ge.Code)
}

func TestNewTransactionID_Timestamp(t *testing.T) {
	userID := "a1b2c3d4-e5f6-7890-abcd-ef1234567890"
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	id := models.NewTransactionID(models.PlanAnnual, userID, now)
	assert.Equal(t, "SUB-ANNUAL-1773576000-a1b2c3d4", id)
}
