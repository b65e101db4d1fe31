package models

import (
	"encoding/json"
	"time"
)

// Customer contains the payer details required by the payment gateway
type Customer struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
	Phone   string `json:"phone_number"`
	Address string `json:"address"`
	City    string `json:"city"`
	Country string `json:"country"` // ISO 3166-1 alpha-2
	Zip     string `json:"zip_code"`
}

// InitiatePaymentRequest represents a subscription purchase request
type InitiatePaymentRequest struct {
	PlanID   string   `json:"plan_id"`
	UserID   string   `json:"user_id"`
	Customer Customer `json:"customer"`
}

// PaymentSessionParams carries everything the gateway needs to open a
// hosted payment session
type PaymentSessionParams struct {
	TransactionID string
	Amount        int
	Currency      string
	Description   string
	Metadata      string
	Customer      Customer
}

// PaymentSession is the result of a successful payment initiation
type PaymentSession struct {
	TransactionID string `json:"transaction_id"`
	PaymentURL    string `json:"payment_url"`
	Amount        int    `json:"amount"`
	Currency      string `json:"currency"`
	PlanID        string `json:"plan_id"`
}

// WebhookNotification is the asynchronous payment notification delivered by
// the gateway. The status fields it carries are informational only and must
// never be trusted; the authoritative status comes from a verification call.
type WebhookNotification struct {
	SiteID        string `json:"cpm_site_id" form:"cpm_site_id"`
	TransactionID string `json:"cpm_trans_id" form:"cpm_trans_id"`
	TransStatus   string `json:"cpm_trans_status" form:"cpm_trans_status"`
	Amount        string `json:"cpm_amount" form:"cpm_amount"`
	Currency      string `json:"cpm_currency" form:"cpm_currency"`
	Result        string `json:"cpm_result" form:"cpm_result"`
	ErrorMessage  string `json:"cpm_error_message" form:"cpm_error_message"`
	PaymentDate   string `json:"cpm_payment_date" form:"cpm_payment_date"`
	CustomData    string `json:"cpm_custom" form:"cpm_custom"`
}

// Gateway verification statuses
const (
	GatewayStatusAccepted = "ACCEPTED"
	GatewayStatusRefused  = "REFUSED"
	GatewayStatusPending  = "PENDING"
)

// PaymentVerification is the authoritative transaction status returned by the
// gateway's server-to-server check endpoint
type PaymentVerification struct {
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
	Amount        int    `json:"amount"`
	Currency      string `json:"currency"`
	PaymentMethod string `json:"payment_method"`
	PaymentDate   string `json:"payment_date"`
	Message       string `json:"message"`
}

// PaymentMetadata is the plan context serialized into the gateway session so
// it survives the round trip to the asynchronous callback
type PaymentMetadata struct {
	PlanID       string `json:"plan_id"`
	DurationDays int    `json:"duration_days"`
	UserID       string `json:"user_id"`
}

// Encode serializes the metadata into the opaque string passed to the gateway
func (m PaymentMetadata) Encode() (string, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodePaymentMetadata parses the opaque metadata string from a callback
func DecodePaymentMetadata(s string) (PaymentMetadata, error) {
	var m PaymentMetadata
	err := json.Unmarshal([]byte(s), &m)
	return m, err
}

// SubscriptionActivatedEvent is published after an accepted transaction
// activates a subscription
type SubscriptionActivatedEvent struct {
	UserID        string    `json:"user_id"`
	PlanID        string    `json:"plan_id"`
	TransactionID string    `json:"transaction_id"`
	Amount        int       `json:"amount"`
	PeriodStart   time.Time `json:"period_start"`
	PeriodEnd     time.Time `json:"period_end"`
	ActivatedAt   time.Time `json:"activated_at"`
}

// PaymentFailedEvent is published when the gateway reports a refused payment
type PaymentFailedEvent struct {
	UserID        string    `json:"user_id"`
	PlanID        string    `json:"plan_id"`
	TransactionID string    `json:"transaction_id"`
	Amount        int       `json:"amount"`
	Reason        string    `json:"reason"`
	FailedAt      time.Time `json:"failed_at"`
}
