package budget_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendwise-app/spendwise/internal/budget"
	"github.com/spendwise-app/spendwise/internal/common"
	"github.com/spendwise-app/spendwise/internal/model"
	"github.com/spendwise-app/spendwise/internal/storage"
	"github.com/spendwise-app/spendwise/internal/testutil"
)

func addSpend(t *testing.T, store *storage.SQLiteStorage, userID int64, amount float64, category string) {
	t.Helper()
	_, err := store.InsertTransaction(context.Background(), &model.Transaction{
		UserID:   userID,
		Amount:   amount,
		Category: category,
		Date:     testutil.MustDay(t, "2024-03-01"),
	})
	require.NoError(t, err)
}

func TestSetRejectsNonPositiveAmounts(t *testing.T) {
	store := testutil.SetupTestDB(t)
	user := testutil.CreateTestUser(t, store, "you@example.com")
	ledger := budget.NewLedger(store)
	ctx := context.Background()

	assert.ErrorIs(t, ledger.Set(ctx, user.ID, "Food & Groceries", 0), common.ErrValidation)
	assert.ErrorIs(t, ledger.Set(ctx, user.ID, "Food & Groceries", -10), common.ErrValidation)
	assert.ErrorIs(t, ledger.Set(ctx, user.ID, "", 100), common.ErrValidation)
}

func TestStatusForTiers(t *testing.T) {
	store := testutil.SetupTestDB(t)
	user := testutil.CreateTestUser(t, store, "you@example.com")
	ledger := budget.NewLedger(store)
	ctx := context.Background()

	require.NoError(t, ledger.Set(ctx, user.ID, "Food & Groceries", 100))
	addSpend(t, store, user.ID, 85, "Food & Groceries")

	status, err := ledger.StatusFor(ctx, user.ID, "Food & Groceries")
	require.NoError(t, err)
	assert.Equal(t, model.TierWarn, status.Tier)
	assert.InDelta(t, 85.0, status.Percent, 1e-9)

	// No budget for this one: spent but unset.
	addSpend(t, store, user.ID, 40, "Transport")
	status, err = ledger.StatusFor(ctx, user.ID, "Transport")
	require.NoError(t, err)
	assert.Equal(t, model.TierUnset, status.Tier)
	assert.Equal(t, 0.0, status.Percent)
	assert.Equal(t, 40.0, status.Spent)
}

func TestStatusGridCoversAllRequestedCategories(t *testing.T) {
	store := testutil.SetupTestDB(t)
	user := testutil.CreateTestUser(t, store, "you@example.com")
	ledger := budget.NewLedger(store)
	ctx := context.Background()

	require.NoError(t, ledger.Set(ctx, user.ID, "Travel", 200))

	statuses, err := ledger.StatusGrid(ctx, user.ID, model.BaseCategories)
	require.NoError(t, err)
	require.Len(t, statuses, len(model.BaseCategories))

	byCategory := make(map[string]model.BudgetStatus)
	for _, status := range statuses {
		byCategory[status.Category] = status
	}
	assert.Equal(t, model.TierOK, byCategory["Travel"].Tier)
	assert.Equal(t, model.TierUnset, byCategory["Housing"].Tier)
}

func TestResetAndResetAll(t *testing.T) {
	store := testutil.SetupTestDB(t)
	user := testutil.CreateTestUser(t, store, "you@example.com")
	other := testutil.CreateTestUser(t, store, "other@example.com")
	ledger := budget.NewLedger(store)
	ctx := context.Background()

	require.NoError(t, ledger.Set(ctx, user.ID, "Food & Groceries", 100))
	require.NoError(t, ledger.Set(ctx, user.ID, "Transport", 50))
	require.NoError(t, ledger.Set(ctx, other.ID, "Transport", 75))

	require.NoError(t, ledger.Reset(ctx, user.ID, "Food & Groceries"))
	// Idempotent.
	require.NoError(t, ledger.Reset(ctx, user.ID, "Food & Groceries"))

	status, err := ledger.StatusFor(ctx, user.ID, "Food & Groceries")
	require.NoError(t, err)
	assert.Equal(t, model.TierUnset, status.Tier)

	require.NoError(t, ledger.ResetAll(ctx, user.ID))

	status, err = ledger.StatusFor(ctx, user.ID, "Transport")
	require.NoError(t, err)
	assert.Equal(t, model.TierUnset, status.Tier)

	// The other user's budgets are untouched.
	status, err = ledger.StatusFor(ctx, other.ID, "Transport")
	require.NoError(t, err)
	assert.Equal(t, 75.0, status.Budget)
}
