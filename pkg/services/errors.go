package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidTransition is returned when a lifecycle operation is not
	// allowed from the entity's current status
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidCredentials is returned on a failed login or API-key check
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenInvalid is returned for a malformed, forged, or expired token
	ErrTokenInvalid = errors.New("token invalid or expired")

	// ErrFourEyes is returned when a withdrawal approval is attempted by the
	// user who created it
	ErrFourEyes = errors.New("approver must differ from initiator")

	// ErrTenantSuspended is returned when an operation targets a tenant that
	// is not in an active or trial state
	ErrTenantSuspended = errors.New("tenant is suspended")

	// ErrUnknownIntegration is returned for an integration provider outside
	// the supported set
	ErrUnknownIntegration = errors.New("unknown integration provider")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
