package apperrors

import "errors"

// Common errors
var (
	// Request errors
	ErrBadRequest       = errors.New("bad request")
	ErrValidationFailed = errors.New("validation failed")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("authentication required")
	ErrSessionExpired     = errors.New("session expired")
	ErrSessionInvalid     = errors.New("invalid session")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")
)

// User errors
var (
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailAlreadyExists     = errors.New("email already exists")
	ErrStudentIDAlreadyExists = errors.New("student ID already registered")
)

// Event errors
var (
	ErrEventNotFound = errors.New("event not found")
)

// Registration errors
var (
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrAlreadyRegistered    = errors.New("already registered for this event")
)

// CustomError carries a sentinel plus a human-readable message.
type CustomError struct {
	Err     error
	Message string
	Field   string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a field-level validation error
func NewValidationError(field, message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
		Field:   field,
	}
}

// NewBadRequestError creates a malformed-request error with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewConflictError wraps a conflict sentinel with a message
func NewConflictError(err error, message string) error {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}
