package constants

// NATS Subjects
const (
	// Subscription lifecycle events
	SubjectSubscriptionActivated = "subscription.activated"

	// Payment events
	SubjectPaymentFailed = "payment.failed"
)
