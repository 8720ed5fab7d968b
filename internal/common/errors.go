// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// ErrNotFound is returned when a read-by-key finds nothing. Absence is a
	// normal outcome, so callers check with errors.Is rather than treating it
	// as fatal.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEntry is returned when a unique constraint rejects a write.
	ErrDuplicateEntry = errors.New("duplicate entry")

	// ErrUnknownColumn is returned when a caller names a column outside an
	// entity's declared column map.
	ErrUnknownColumn = errors.New("unknown column")

	// ErrInvalidInput is returned for malformed values crossing into the core.
	ErrInvalidInput = errors.New("invalid input")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}
