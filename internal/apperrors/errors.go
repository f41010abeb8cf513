package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicateIdentity indicates that a national identity number or mobile
// number is already registered against an earlier application, whatever that
// application's outcome was.
var ErrDuplicateIdentity = errors.New("identity already registered")

// ErrInvalidState indicates an operation that is illegal for the current
// lifecycle state of the resource, e.g. approving a rejected application.
var ErrInvalidState = errors.New("operation not valid for current state")

// ErrInvalidAmount indicates a non-positive transaction amount.
var ErrInvalidAmount = errors.New("transaction amount must be positive")

// ErrInsufficientFunds indicates a debit larger than the current balance.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// AppError wraps a lower-level error with a code and message suitable for
// propagation out of the storage layer.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches ErrNotFound via errors.Is.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
