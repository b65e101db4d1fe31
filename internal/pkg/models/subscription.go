package models

import (
	"time"
)

// SubscriptionStatus represents the state of a subscription record
type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusInactive  SubscriptionStatus = "inactive"
	SubscriptionStatusExpired   SubscriptionStatus = "expired"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
)

// Subscription represents the per-user subscription record. There is at most
// one record per user; it is created or updated only as a side effect of a
// verified, accepted transaction.
type Subscription struct {
	UserID            string             `json:"user_id" db:"user_id"`
	PlanID            string             `json:"plan_id" db:"plan_id"`
	Status            SubscriptionStatus `json:"status" db:"status"`
	PeriodStart       time.Time          `json:"period_start" db:"period_start"`
	PeriodEnd         time.Time          `json:"period_end" db:"period_end"`
	LastTransactionID string             `json:"last_transaction_id" db:"last_transaction_id"`
	LastAmount        int                `json:"last_amount" db:"last_amount"`
	LastPaymentAt     time.Time          `json:"last_payment_at" db:"last_payment_at"`
	CreatedAt         time.Time          `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at" db:"updated_at"`
}

// IsCurrent reports whether the subscription grants access at the given time.
// Expiry is computed lazily at read time; no background sweep flips records.
func (s *Subscription) IsCurrent(now time.Time) bool {
	return s.Status == SubscriptionStatusActive && s.PeriodEnd.After(now)
}

// Entitlement is the answer to "is this user currently entitled"
type Entitlement struct {
	UserID    string     `json:"user_id"`
	Entitled  bool       `json:"entitled"`
	PlanID    string     `json:"plan_id,omitempty"`
	PeriodEnd *time.Time `json:"period_end,omitempty"`
}
