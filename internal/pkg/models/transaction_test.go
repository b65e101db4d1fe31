package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTransactionID_Format(t *testing.T) {
	userID := "a1b2c3d4-e5f6-7890-abcd-ef1234567890"
	now := time.Unix(1700000000, 0)

	id := NewTransactionID(PlanMonthly, userID, now)
	assert.Equal(t, "SUB-MONTHLY-1700000000-a1b2c3d4", id)
}

func TestNewTransactionID_ShortUserID(t *testing.T) {
	id := NewTransactionID(PlanAnnual, "ab-cd", time.Unix(1700000000, 0))
	assert.Equal(t, "SUB-ANNUAL-1700000000-abcd", id)
}

func TestParseTransactionID_RoundTrip(t *testing.T) {
	userID := "a1b2c3d4-e5f6-7890-abcd-ef1234567890"
	now := time.Unix(1700000000, 0)

	id := NewTransactionID(PlanSemiannual, userID, now)

	parts, err := ParseTransactionID(id)
	assert.NoError(t, err)
	assert.Equal(t, PlanSemiannual, parts.PlanID)
	assert.Equal(t, int64(1700000000), parts.Timestamp)
	assert.Equal(t, "a1b2c3d4", parts.UserFragment)
}

func TestParseTransactionID_ShortUserIDRoundTrip(t *testing.T) {
	// Non-UUID user ids yield fragments shorter than eight characters; the
	// parser must still accept the identifiers the generator produces
	id := NewTransactionID(PlanMonthly, "user1", time.Unix(1700000000, 0))

	parts, err := ParseTransactionID(id)
	assert.NoError(t, err)
	assert.Equal(t, PlanMonthly, parts.PlanID)
	assert.Equal(t, "user1", parts.UserFragment)
}

func TestParseTransactionID_Rejections(t *testing.T) {
	cases := []struct {
		name string
		id   string
	}{
		{"empty", ""},
		{"wrong segment count", "SUB-MONTHLY-1700000000"},
		{"wrong prefix", "ORD-MONTHLY-1700000000-a1b2c3d4"},
		{"unknown plan", "SUB-WEEKLY-1700000000-a1b2c3d4"},
		{"non-numeric timestamp", "SUB-MONTHLY-notatime-a1b2c3d4"},
		{"empty user fragment", "SUB-MONTHLY-1700000000-"},
		{"overlong user fragment", "SUB-MONTHLY-1700000000-a1b2c3d4e"},
		{"foreign identifier", "ORDER-12345"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseTransactionID(tc.id)
			assert.Error(t, err)
		})
	}
}

func TestGetPlan_Catalog(t *testing.T) {
	monthly, ok := GetPlan(PlanMonthly)
	assert.True(t, ok)
	assert.Equal(t, 2000, monthly.Amount)
	assert.Equal(t, 30, monthly.DurationDays)

	annual, ok := GetPlan(PlanAnnual)
	assert.True(t, ok)
	assert.Equal(t, 13000, annual.Amount)
	assert.Equal(t, 365, annual.DurationDays)

	_, ok = GetPlan("weekly")
	assert.False(t, ok)

	// Gateway constraint on all catalog prices
	for _, p := range Plans() {
		assert.Equal(t, 0, p.Amount%5)
		assert.Equal(t, "XOF", p.Currency)
	}
}

func TestSubscription_IsCurrent(t *testing.T) {
	now := time.Now()

	active := &Subscription{Status: SubscriptionStatusActive, PeriodEnd: now.Add(time.Hour)}
	assert.True(t, active.IsCurrent(now))

	lapsed := &Subscription{Status: SubscriptionStatusActive, PeriodEnd: now.Add(-time.Hour)}
	assert.False(t, lapsed.IsCurrent(now))

	cancelled := &Subscription{Status: SubscriptionStatusCancelled, PeriodEnd: now.Add(time.Hour)}
	assert.False(t, cancelled.IsCurrent(now))
}

func TestPaymentMetadata_RoundTrip(t *testing.T) {
	meta := PaymentMetadata{PlanID: PlanMonthly, DurationDays: 30, UserID: "user-1"}

	encoded, err := meta.Encode()
	assert.NoError(t, err)

	decoded, err := DecodePaymentMetadata(encoded)
	assert.NoError(t, err)
	assert.Equal(t, meta, decoded)
}
