package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/afrikipresse/subscription-service/internal/pkg/models"
	"github.com/afrikipresse/subscription-service/services/subscription"
	"github.com/afrikipresse/subscription-service/services/subscription/mocks"
)

func TestCheckEntitlement_ActiveSubscription(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSubscriptionRepo(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)
	mockEventGW := mocks.NewMockEventGW(ctrl)

	userID := uuid.New().String()
	periodEnd := time.Now().Add(10 * 24 * time.Hour)

	mockRepo.EXPECT().GetSubscription(gomock.Any(), userID).Return(&models.Subscription{
		UserID:      userID,
		PlanID:      models.PlanMonthly,
		Status:      models.SubscriptionStatusActive,
		PeriodStart: time.Now().Add(-20 * 24 * time.Hour),
		PeriodEnd:   periodEnd,
	}, nil)

	uc, _ := NewPaymentUC(testConfig(), mockRepo, mockGW, mockEventGW)

	entitlement, err := uc.CheckEntitlement(context.Background(), userID)
	assert.NoError(t, err)
	assert.True(t, entitlement.Entitled)
	assert.Equal(t, models.PlanMonthly, entitlement.PlanID)
	assert.NotNil(t, entitlement.PeriodEnd)
	assert.WithinDuration(t, periodEnd, *entitlement.PeriodEnd, time.Second)
}

func TestCheckEntitlement_ExpiredSubscription(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSubscriptionRepo(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)
	mockEventGW := mocks.NewMockEventGW(ctrl)

	userID := uuid.New().String()

	// Status still reads active; expiry is decided at read time from the
	// period end
	mockRepo.EXPECT().GetSubscription(gomock.Any(), userID).Return(&models.Subscription{
		UserID:    userID,
		PlanID:    models.PlanMonthly,
		Status:    models.SubscriptionStatusActive,
		PeriodEnd: time.Now().Add(-time.Hour),
	}, nil)

	uc, _ := NewPaymentUC(testConfig(), mockRepo, mockGW, mockEventGW)

	entitlement, err := uc.CheckEntitlement(context.Background(), userID)
	assert.NoError(t, err)
	assert.False(t, entitlement.Entitled)
	assert.Empty(t, entitlement.PlanID)
}

func TestCheckEntitlement_NoSubscription(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSubscriptionRepo(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)
	mockEventGW := mocks.NewMockEventGW(ctrl)

	userID := uuid.New().String()

	mockRepo.EXPECT().GetSubscription(gomock.Any(), userID).
		Return(nil, subscription.ErrSubscriptionNotFound)

	uc, _ := NewPaymentUC(testConfig(), mockRepo, mockGW, mockEventGW)

	// A user without a record is simply not entitled, not an error
	entitlement, err := uc.CheckEntitlement(context.Background(), userID)
	assert.NoError(t, err)
	assert.False(t, entitlement.Entitled)
}

func TestCheckEntitlement_EmptyUserID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSubscriptionRepo(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)
	mockEventGW := mocks.NewMockEventGW(ctrl)

	uc, _ := NewPaymentUC(testConfig(), mockRepo, mockGW, mockEventGW)

	_, err := uc.CheckEntitlement(context.Background(), "")
	assert.ErrorIs(t, err, subscription.ErrValidation)
}

func TestGetSubscription_Passthrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSubscriptionRepo(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)
	mockEventGW := mocks.NewMockEventGW(ctrl)

	userID := uuid.New().String()
	expected := &models.Subscription{UserID: userID, PlanID: models.PlanAnnual}

	mockRepo.EXPECT().GetSubscription(gomock.Any(), userID).Return(expected, nil)

	uc, _ := NewPaymentUC(testConfig(), mockRepo, mockGW, mockEventGW)

	sub, err := uc.GetSubscription(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, expected, sub)
}
