// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// ErrInvalidInput marks malformed caller input; every
	// ValidationError unwraps to it.
	ErrInvalidInput = errors.New("invalid input")

	// ErrOverBudget is returned when admitting an expense would push
	// total expenses past total income.
	ErrOverBudget = errors.New("expense exceeds total income")

	// ErrNotFound indicates a referenced record does not exist.
	ErrNotFound = errors.New("not found")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ValidationError reports which field of a request was rejected and why.
// No mutation happens when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NewValidationError creates a field-level validation error.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is a field validation failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsOverBudget reports whether err is a balance guard rejection.
func IsOverBudget(err error) bool {
	return errors.Is(err, ErrOverBudget)
}
