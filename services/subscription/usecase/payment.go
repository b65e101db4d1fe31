package usecase

import (
	"context"
	"fmt"

	"github.com/afrikipresse/subscription-service/internal/pkg/logger"
	"github.com/afrikipresse/subscription-service/internal/pkg/models"
	nrpkg "github.com/afrikipresse/subscription-service/internal/pkg/newrelic"
	"github.com/afrikipresse/subscription-service/internal/utils"
	"github.com/afrikipresse/subscription-service/services/subscription"
)

// InitiatePayment translates a subscription purchase request into a gateway
// payment session. Validation happens before any side effect: a request with
// missing or invalid customer data never reaches the store or the network.
func (uc *paymentUC) InitiatePayment(ctx context.Context, req models.InitiatePaymentRequest) (*models.PaymentSession, error) {
	plan, err := uc.validateInitiateRequest(req)
	if err != nil {
		return nil, err
	}

	if uc.cfg.CinetPay.APIKey == "" || uc.cfg.CinetPay.SiteID == "" {
		return nil, fmt.Errorf("%w: gateway credentials not configured", subscription.ErrConfiguration)
	}

	now := models.Now()
	transactionID := models.NewTransactionID(plan.ID, req.UserID, now)

	txn := &models.Transaction{
		ID:        transactionID,
		UserID:    req.UserID,
		PlanID:    plan.ID,
		Amount:    plan.Amount,
		Currency:  plan.Currency,
		Status:    models.TransactionStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.repo.CreateTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("%w: failed to create transaction: %v", subscription.ErrPersistence, err)
	}

	metadata, err := models.PaymentMetadata{
		PlanID:       plan.ID,
		DurationDays: plan.DurationDays,
		UserID:       req.UserID,
	}.Encode()
	if err != nil {
		return nil, fmt.Errorf("failed to encode payment metadata: %w", err)
	}

	var paymentURL string
	err = nrpkg.WithSegment(ctx, "cinetpay.CreatePaymentSession", func() error {
		var gwErr error
		paymentURL, gwErr = uc.gw.CreatePaymentSession(ctx, models.PaymentSessionParams{
			TransactionID: transactionID,
			Amount:        plan.Amount,
			Currency:      plan.Currency,
			Description:   fmt.Sprintf("Afrikipresse - %s", plan.Name),
			Metadata:      metadata,
			Customer:      req.Customer,
		})
		return gwErr
	})
	if err != nil {
		logger.Error("Failed to create payment session",
			logger.String("transaction_id", transactionID),
			logger.String("plan_id", plan.ID),
			logger.Err(err))
		return nil, err
	}

	logger.Info("Payment session created",
		logger.String("transaction_id", transactionID),
		logger.String("plan_id", plan.ID),
		logger.Int("amount", plan.Amount))

	return &models.PaymentSession{
		TransactionID: transactionID,
		PaymentURL:    paymentURL,
		Amount:        plan.Amount,
		Currency:      plan.Currency,
		PlanID:        plan.ID,
	}, nil
}

// validateInitiateRequest checks the purchase request and resolves its plan
func (uc *paymentUC) validateInitiateRequest(req models.InitiatePaymentRequest) (models.Plan, error) {
	if req.UserID == "" {
		return models.Plan{}, subscription.ValidationError("user id is required")
	}

	plan, ok := models.GetPlan(req.PlanID)
	if !ok {
		return models.Plan{}, subscription.ValidationError("unknown plan %q", req.PlanID)
	}

	// Gateway constraint: amounts must be positive multiples of 5
	if plan.Amount <= 0 || plan.Amount%5 != 0 {
		return models.Plan{}, subscription.ValidationError("plan amount %d is not a positive multiple of 5", plan.Amount)
	}

	c := req.Customer
	required := map[string]string{
		"name":         c.Name,
		"surname":      c.Surname,
		"email":        c.Email,
		"phone_number": c.Phone,
		"address":      c.Address,
		"city":         c.City,
		"country":      c.Country,
		"zip_code":     c.Zip,
	}
	for field, value := range required {
		if value == "" {
			return models.Plan{}, subscription.ValidationError("customer field %s is required", field)
		}
	}

	if !utils.IsValidEmail(c.Email) {
		return models.Plan{}, subscription.ValidationError("invalid email address %q", c.Email)
	}

	if !utils.IsValidPhoneNumber(c.Phone) {
		return models.Plan{}, subscription.ValidationError("invalid phone number %q", c.Phone)
	}

	if !utils.IsValidCountryCode(c.Country) {
		return models.Plan{}, subscription.ValidationError("country must be a two-letter code, got %q", c.Country)
	}

	return plan, nil
}
