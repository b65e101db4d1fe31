package constants

// Redis key formats
const (
	// Subscription Service
	KeyEntitlement = "subscription:entitlement:%s" // Format: subscription:entitlement:{user_id}
)
