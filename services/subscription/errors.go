package subscription

import (
	"errors"
	"fmt"
)

// Sentinel errors for the payment lifecycle
var (
	// ErrValidation marks bad input rejected before any side effect
	ErrValidation = errors.New("validation error")
	// ErrConfiguration marks missing gateway credentials or site configuration
	ErrConfiguration = errors.New("configuration error")
	// ErrNotVerifiable marks a verification call that returned no usable data
	ErrNotVerifiable = errors.New("transaction not verifiable")
	// ErrPersistence marks a state-store write failure
	ErrPersistence = errors.New("persistence error")
	// ErrTransactionNotFound marks a notification for an unknown transaction
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrAlreadyProcessed marks a replayed notification for a terminal transaction
	ErrAlreadyProcessed = errors.New("transaction already processed")
	// ErrSubscriptionNotFound marks a read for a user with no subscription record
	ErrSubscriptionNotFound = errors.New("subscription not found")
)

// GatewayError carries a non-success response from the payment gateway
type GatewayError struct {
	Code    string
	Message string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway error %s: %s", e.Code, e.Message)
}

// NewGatewayError creates a GatewayError from a gateway response
func NewGatewayError(code, message string) *GatewayError {
	return &GatewayError{Code: code, Message: message}
}

// IsGatewayError reports whether err is a gateway error and returns it
func IsGatewayError(err error) (*GatewayError, bool) {
	var ge *GatewayError
	if errors.As(err, &ge) {
		return ge, true
	}
	return nil, false
}

// ValidationError wraps a field-level validation failure
func ValidationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
