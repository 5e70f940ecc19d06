// Package storage provides the data persistence layer for the spendwise application.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spendwise-app/spendwise/internal/common"
)

// Validation errors.
var (
	ErrNilContext    = errors.New("context cannot be nil")
	ErrEmptyString   = errors.New("string parameter cannot be empty")
	ErrInvalidUserID = errors.New("user ID must be positive")
	ErrInvalidAmount = errors.New("amount must not be negative")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateUserID ensures a user ID references a real row candidate.
func validateUserID(id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidUserID, id)
	}
	return nil
}

// validateAmount guards non-negativity at the storage boundary. Positivity
// requirements live with the callers.
func validateAmount(amount float64) error {
	if amount < 0 {
		return fmt.Errorf("%w: %v: %v", common.ErrValidation, ErrInvalidAmount, amount)
	}
	return nil
}
