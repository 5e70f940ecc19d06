// Package budget implements the per-user, per-category budget ledger and
// the spend-status tiering derived from it.
package budget

import (
	"context"
	"fmt"
	"strings"

	"github.com/spendwise-app/spendwise/internal/common"
	"github.com/spendwise-app/spendwise/internal/model"
	"github.com/spendwise-app/spendwise/internal/service"
)

// Ledger manages budget rows. At most one row exists per (user, category).
type Ledger struct {
	store service.Storage
}

// NewLedger creates a budget ledger backed by the given store.
func NewLedger(store service.Storage) *Ledger {
	return &Ledger{store: store}
}

// Set upserts the budget amount for a category. Amounts must be strictly
// positive; use Reset to clear a budget.
func (l *Ledger) Set(ctx context.Context, userID int64, category string, amount float64) error {
	category = strings.TrimSpace(category)
	if category == "" {
		return fmt.Errorf("%w: category is required", common.ErrValidation)
	}
	if amount <= 0 {
		return fmt.Errorf("%w: budget amount must be positive", common.ErrValidation)
	}

	return l.store.UpsertBudget(ctx, userID, category, amount)
}

// Reset clears the budget for one category; idempotent.
func (l *Ledger) Reset(ctx context.Context, userID int64, category string) error {
	category = strings.TrimSpace(category)
	if category == "" {
		return fmt.Errorf("%w: category is required", common.ErrValidation)
	}
	return l.store.DeleteBudget(ctx, userID, category)
}

// ResetAll clears every budget for the user.
func (l *Ledger) ResetAll(ctx context.Context, userID int64) error {
	return l.store.DeleteAllBudgets(ctx, userID)
}

// StatusFor computes the spend status of a single category.
func (l *Ledger) StatusFor(ctx context.Context, userID int64, category string) (model.BudgetStatus, error) {
	statuses, err := l.StatusGrid(ctx, userID, []string{category})
	if err != nil {
		return model.BudgetStatus{}, err
	}
	return statuses[0], nil
}

// StatusGrid computes the spend status for each named category, in the
// given order. Categories with no budget row come back with TierUnset;
// absent and zero budgets are equivalent.
func (l *Ledger) StatusGrid(ctx context.Context, userID int64, categories []string) ([]model.BudgetStatus, error) {
	budgets, err := l.store.GetBudgets(ctx, userID)
	if err != nil {
		return nil, err
	}
	spend, err := l.store.GetCategorySpend(ctx, userID)
	if err != nil {
		return nil, err
	}

	statuses := make([]model.BudgetStatus, len(categories))
	for i, category := range categories {
		statuses[i] = model.StatusFor(category, budgets[category], spend[category])
	}
	return statuses, nil
}
