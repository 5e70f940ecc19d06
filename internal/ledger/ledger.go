// Package ledger implements the user-scoped transaction ledger.
package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/spendwise-app/spendwise/internal/common"
	"github.com/spendwise-app/spendwise/internal/model"
	"github.com/spendwise-app/spendwise/internal/service"
)

// Ledger provides CRUD over dated, categorized monetary entries. Every
// operation is scoped by the owning user id.
type Ledger struct {
	store service.Storage
}

// NewLedger creates a transaction ledger backed by the given store.
func NewLedger(store service.Storage) *Ledger {
	return &Ledger{store: store}
}

// Add records a new transaction and returns its id. The category may be
// any non-empty string; orphaned names from deleted custom categories stay
// valid.
func (l *Ledger) Add(ctx context.Context, userID int64, amount float64, category string, date model.Day, note string) (int64, error) {
	txn, err := buildTransaction(userID, amount, category, date, note)
	if err != nil {
		return 0, err
	}
	return l.store.InsertTransaction(ctx, txn)
}

// Update mutates a transaction in place. An id that does not exist or
// belongs to another user surfaces as common.ErrNotFound.
func (l *Ledger) Update(ctx context.Context, id, userID int64, amount float64, category string, date model.Day, note string) error {
	txn, err := buildTransaction(userID, amount, category, date, note)
	if err != nil {
		return err
	}
	txn.ID = id
	return l.store.UpdateTransaction(ctx, txn)
}

// Delete removes a transaction, with the same ownership scoping as Update.
func (l *Ledger) Delete(ctx context.Context, id, userID int64) error {
	return l.store.DeleteTransaction(ctx, id, userID)
}

// Get fetches one transaction owned by the user.
func (l *Ledger) Get(ctx context.Context, id, userID int64) (*model.Transaction, error) {
	return l.store.GetTransactionByID(ctx, id, userID)
}

// List returns the user's transactions, newest first (date descending, id
// descending as tie-break), optionally filtered by exact category and an
// inclusive date range.
func (l *Ledger) List(ctx context.Context, userID int64, filter model.TransactionFilter) ([]model.Transaction, error) {
	if filter.From != nil && filter.To != nil && filter.To.Before(filter.From.Time) {
		return nil, fmt.Errorf("%w: date range is inverted", common.ErrValidation)
	}
	return l.store.ListTransactions(ctx, userID, filter)
}

func buildTransaction(userID int64, amount float64, category string, date model.Day, note string) (*model.Transaction, error) {
	category = strings.TrimSpace(category)
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", common.ErrValidation)
	}
	if category == "" {
		return nil, fmt.Errorf("%w: category is required", common.ErrValidation)
	}
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", common.ErrValidation)
	}

	return &model.Transaction{
		UserID:   userID,
		Amount:   amount,
		Category: category,
		Date:     date,
		Note:     strings.TrimSpace(note),
	}, nil
}
