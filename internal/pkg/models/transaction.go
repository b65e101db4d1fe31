package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TransactionStatus represents the lifecycle state of a payment transaction
type TransactionStatus string

const (
	TransactionStatusPending  TransactionStatus = "pending"
	TransactionStatusAccepted TransactionStatus = "accepted"
	TransactionStatusRefused  TransactionStatus = "refused"
)

// Transaction represents a payment transaction record.
// A transaction is terminal once its status leaves pending.
type Transaction struct {
	ID        string            `json:"id" db:"id"`
	UserID    string            `json:"user_id" db:"user_id"`
	PlanID    string            `json:"plan_id" db:"plan_id"`
	Amount    int               `json:"amount" db:"amount"`
	Currency  string            `json:"currency" db:"currency"`
	Status    TransactionStatus `json:"status" db:"status"`
	CreatedAt time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt time.Time         `json:"updated_at" db:"updated_at"`
}

// TransactionIDPrefix prefixes every subscription transaction identifier
const TransactionIDPrefix = "SUB"

// userFragmentLen is the maximum number of user-id characters encoded into
// the transaction identifier. Shorter user ids produce shorter fragments.
const userFragmentLen = 8

// TransactionIDParts holds the fields decoded from a transaction identifier
type TransactionIDParts struct {
	PlanID       string
	Timestamp    int64
	UserFragment string
}

// NewTransactionID builds a transaction identifier of the form
// SUB-<PLAN>-<unix timestamp>-<up to 8 chars of user id>. The encoding is
// load-bearing: the gateway's asynchronous callback carries only this
// identifier, so it must be enough to correlate the plan and the user.
func NewTransactionID(planID, userID string, now time.Time) string {
	fragment := strings.ReplaceAll(userID, "-", "")
	if len(fragment) > userFragmentLen {
		fragment = fragment[:userFragmentLen]
	}
	return fmt.Sprintf("%s-%s-%d-%s",
		TransactionIDPrefix,
		strings.ToUpper(planID),
		now.Unix(),
		fragment,
	)
}

// ParseTransactionID validates and decodes a transaction identifier. It
// rejects identifiers that do not match the expected encoding: prefix, a
// known plan name, a numeric timestamp and a user-id fragment.
func ParseTransactionID(id string) (TransactionIDParts, error) {
	parts := strings.Split(id, "-")
	if len(parts) != 4 {
		return TransactionIDParts{}, fmt.Errorf("transaction id %q: expected 4 segments, got %d", id, len(parts))
	}
	if parts[0] != TransactionIDPrefix {
		return TransactionIDParts{}, fmt.Errorf("transaction id %q: unknown prefix %q", id, parts[0])
	}

	planID := strings.ToLower(parts[1])
	if _, ok := GetPlan(planID); !ok {
		return TransactionIDParts{}, fmt.Errorf("transaction id %q: unknown plan %q", id, parts[1])
	}

	ts, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return TransactionIDParts{}, fmt.Errorf("transaction id %q: invalid timestamp segment: %w", id, err)
	}

	if l := len(parts[3]); l == 0 || l > userFragmentLen {
		return TransactionIDParts{}, fmt.Errorf("transaction id %q: invalid user fragment %q", id, parts[3])
	}

	return TransactionIDParts{
		PlanID:       planID,
		Timestamp:    ts,
		UserFragment: parts[3],
	}, nil
}

// PaymentFailure records a refused transaction against a user for observability
type PaymentFailure struct {
	ID            string    `json:"id" db:"id"`
	UserID        string    `json:"user_id" db:"user_id"`
	TransactionID string    `json:"transaction_id" db:"transaction_id"`
	Reason        string    `json:"reason" db:"reason"`
	Amount        int       `json:"amount" db:"amount"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
