package registry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendwise-app/spendwise/internal/common"
	"github.com/spendwise-app/spendwise/internal/model"
	"github.com/spendwise-app/spendwise/internal/registry"
	"github.com/spendwise-app/spendwise/internal/testutil"
)

func TestListAllMergesBaseAndCustom(t *testing.T) {
	store := testutil.SetupTestDB(t)
	user := testutil.CreateTestUser(t, store, "you@example.com")
	reg := registry.New(store)
	ctx := context.Background()

	_, err := reg.Add(ctx, user.ID, "Pets")
	require.NoError(t, err)
	_, err = reg.Add(ctx, user.ID, "Alcohol")
	require.NoError(t, err)

	names, err := reg.Names(ctx, user.ID)
	require.NoError(t, err)

	// Base categories first, in fixed order, then custom alphabetically.
	require.Len(t, names, len(model.BaseCategories)+2)
	assert.Equal(t, model.BaseCategories, names[:len(model.BaseCategories)])
	assert.Equal(t, []string{"Alcohol", "Pets"}, names[len(model.BaseCategories):])
}

func TestAddValidation(t *testing.T) {
	store := testutil.SetupTestDB(t)
	user := testutil.CreateTestUser(t, store, "you@example.com")
	reg := registry.New(store)
	ctx := context.Background()

	t.Run("empty name", func(t *testing.T) {
		_, err := reg.Add(ctx, user.ID, "   ")
		assert.ErrorIs(t, err, common.ErrValidation)
	})

	t.Run("duplicate check folds case", func(t *testing.T) {
		_, err := reg.Add(ctx, user.ID, "pets")
		require.NoError(t, err)

		_, err = reg.Add(ctx, user.ID, "Pets")
		assert.ErrorIs(t, err, common.ErrDuplicate)
	})

	t.Run("base names are taken regardless of case", func(t *testing.T) {
		_, err := reg.Add(ctx, user.ID, "income")
		assert.ErrorIs(t, err, common.ErrDuplicate)
	})

	t.Run("stored with original casing", func(t *testing.T) {
		cat, err := reg.Add(ctx, user.ID, "  CoFfEe  ")
		require.NoError(t, err)
		assert.Equal(t, "CoFfEe", cat.Name)

		names, err := reg.Names(ctx, user.ID)
		require.NoError(t, err)
		assert.Contains(t, names, "CoFfEe")
	})
}

func TestRemove(t *testing.T) {
	store := testutil.SetupTestDB(t)
	user := testutil.CreateTestUser(t, store, "you@example.com")
	reg := registry.New(store)
	ctx := context.Background()

	t.Run("base categories are protected", func(t *testing.T) {
		err := reg.Remove(ctx, user.ID, "Income")
		assert.ErrorIs(t, err, common.ErrProtectedCategory)
	})

	t.Run("custom removal is idempotent", func(t *testing.T) {
		_, err := reg.Add(ctx, user.ID, "Pets")
		require.NoError(t, err)

		require.NoError(t, reg.Remove(ctx, user.ID, "Pets"))
		require.NoError(t, reg.Remove(ctx, user.ID, "Pets"))

		names, err := reg.Names(ctx, user.ID)
		require.NoError(t, err)
		assert.NotContains(t, names, "Pets")
	})
}

func TestRemoveDoesNotCascadeToTransactions(t *testing.T) {
	store := testutil.SetupTestDB(t)
	user := testutil.CreateTestUser(t, store, "you@example.com")
	reg := registry.New(store)
	ctx := context.Background()

	_, err := reg.Add(ctx, user.ID, "Pets")
	require.NoError(t, err)

	_, err = store.InsertTransaction(ctx, &model.Transaction{
		UserID:   user.ID,
		Amount:   42,
		Category: "Pets",
		Date:     testutil.MustDay(t, "2024-03-01"),
	})
	require.NoError(t, err)

	require.NoError(t, reg.Remove(ctx, user.ID, "Pets"))

	transactions, err := store.ListTransactions(ctx, user.ID, model.TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, "Pets", transactions[0].Category)
}
