package models

import (
	"errors"
	"fmt"
)

type ErrorType string

const (
	ErrorTypeAuthentication ErrorType = "authentication_error"
	ErrorTypePermission     ErrorType = "permission_error"
	ErrorTypeValidation     ErrorType = "validation_error"
	ErrorTypeSessionState   ErrorType = "session_state_error"
	ErrorTypeNotFound       ErrorType = "not_found_error"
	ErrorTypeAPI            ErrorType = "api_error"
)

// GatewayError is the error shape surfaced to API callers as {error:{type, code, message}}.
type GatewayError struct {
	Type    ErrorType `json:"type"`
	Code    string    `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *GatewayError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// Is matches on type and code so wrapped copies of a sentinel still compare equal.
func (e *GatewayError) Is(target error) bool {
	var t *GatewayError
	if !errors.As(target, &t) {
		return false
	}
	return e.Type == t.Type && e.Code == t.Code
}

var (
	ErrMissingCredential   = &GatewayError{Type: ErrorTypeAuthentication, Code: "missing_api_key", Message: "API key required"}
	ErrInvalidCredential   = &GatewayError{Type: ErrorTypeAuthentication, Code: "invalid_api_key", Message: "Invalid API key"}
	ErrMerchantNotApproved = &GatewayError{Type: ErrorTypePermission, Code: "merchant_not_approved", Message: "Merchant account not approved"}

	ErrInvalidAmount   = &GatewayError{Type: ErrorTypeValidation, Code: "invalid_amount", Message: "Valid amount is required"}
	ErrInvalidCurrency = &GatewayError{Type: ErrorTypeValidation, Code: "invalid_currency", Message: "Currency must be a three-letter ISO code"}

	ErrSessionNotFound   = &GatewayError{Type: ErrorTypeSessionState, Code: "session_not_found", Message: "Payment session not found"}
	ErrSessionNotPayable = &GatewayError{Type: ErrorTypeSessionState, Code: "session_not_payable", Message: "Payment session is no longer valid"}
	ErrSessionExpired    = &GatewayError{Type: ErrorTypeSessionState, Code: "session_expired", Message: "Payment session has expired"}

	ErrPaymentNotFound = &GatewayError{Type: ErrorTypeNotFound, Code: "payment_not_found", Message: "Payment not found"}
)

func NewValidationError(code, message string) *GatewayError {
	return &GatewayError{Type: ErrorTypeValidation, Code: code, Message: message}
}

// NewProcessingError wraps a store failure that aborted the current attempt.
func NewProcessingError(err error) *GatewayError {
	return &GatewayError{Type: ErrorTypeAPI, Code: "processing_error", Message: "Payment processing failed", Err: err}
}

// NewPersistenceError wraps a store failure outside of payment processing.
func NewPersistenceError(message string, err error) *GatewayError {
	return &GatewayError{Type: ErrorTypeAPI, Code: "persistence_error", Message: message, Err: err}
}

// AsGatewayError returns the GatewayError in err's chain, or a generic api_error.
func AsGatewayError(err error) *GatewayError {
	var gerr *GatewayError
	if errors.As(err, &gerr) {
		return gerr
	}
	return &GatewayError{Type: ErrorTypeAPI, Code: "internal_error", Message: "Internal server error", Err: err}
}
