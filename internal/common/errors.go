// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors. Callers branch on these with errors.Is; the
// presentation layer translates them into user-facing messages.
var (
	// ErrValidation indicates an empty or invalid field on a write.
	ErrValidation = errors.New("validation failed")
	// ErrDuplicate indicates a unique-constraint violation (email or
	// category name).
	ErrDuplicate = errors.New("duplicate entry")
	// ErrProtectedCategory indicates an attempt to delete a base category.
	ErrProtectedCategory = errors.New("base category cannot be deleted")
	// ErrNotFound indicates the operation targeted a row that does not
	// exist or is owned by another user.
	ErrNotFound = errors.New("not found")
	// ErrAuth indicates a credential mismatch at login.
	ErrAuth = errors.New("incorrect email or password")
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
