package models

import (
	"time"
)

// GatewayTimeLayout is the timestamp format CinetPay uses in verification
// responses and webhook payloads.
const GatewayTimeLayout = "2006-01-02 15:04:05"

// Now returns the current time in UTC. All persisted timestamps and period
// boundaries are computed from it.
func Now() time.Time {
	return time.Now().UTC()
}

// FormatTime renders a time in RFC3339 for API responses and events
func FormatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

// ParseGatewayTime parses a timestamp in the gateway's wire format
func ParseGatewayTime(s string) (time.Time, error) {
	return time.Parse(GatewayTimeLayout, s)
}
