package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates the operation clashes with the current state of related data,
// e.g. deleting a vendor that GRNs still reference.
var ErrConflict = errors.New("conflict with current state")

// ErrUnauthorized indicates the caller could not be authenticated.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInternal is returned when an unexpected failure should not leak details to the caller.
var ErrInternal = errors.New("internal error")

// AppError carries an HTTP-ish status code and a message alongside the underlying cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError builds an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap lets errors.Is see sentinel causes such as ErrNotFound through the wrapper.
func (e *AppError) Unwrap() error {
	return e.Err
}

// Validationf wraps ErrValidation with a formatted detail message.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
