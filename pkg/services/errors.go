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

	// ErrForbidden is returned when an entity belongs to a different user
	ErrForbidden = errors.New("access denied")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict is returned when a state transition is not allowed from the
	// entity's current state (wrong claim token, terminal run, etc.)
	ErrConflict = errors.New("state conflict")

	// ErrNoRunsAvailable is returned by claim when no queued run is eligible
	ErrNoRunsAvailable = errors.New("no runs available")
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

// EnvVarNotFoundError is returned by config resolution when a referenced
// environment variable has no value for the user and no default.
type EnvVarNotFoundError struct {
	Name string
}

func (e *EnvVarNotFoundError) Error() string {
	return fmt.Sprintf("environment variable '%s' not found", e.Name)
}

// IsEnvVarNotFound checks if an error is an EnvVarNotFoundError
func IsEnvVarNotFound(err error) bool {
	var ev *EnvVarNotFoundError
	return errors.As(err, &ev)
}

// ExternalServiceError wraps failures of downstream dependencies (object
// storage, git hosts) so the API layer can map them distinctly.
type ExternalServiceError struct {
	Service string
	Err     error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("external service '%s': %v", e.Service, e.Err)
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}

// NewExternalServiceError wraps err as an external service failure.
func NewExternalServiceError(service string, err error) error {
	return &ExternalServiceError{Service: service, Err: err}
}

// IsExternalServiceError checks if an error is an ExternalServiceError
func IsExternalServiceError(err error) bool {
	var es *ExternalServiceError
	return errors.As(err, &es)
}
