package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/spendwise-app/spendwise/internal/common"
	"github.com/spendwise-app/spendwise/internal/model"
)

func TestCustomCategories(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()
	user := createUser(t, store, "you@example.com")

	cat, err := store.CreateCustomCategory(ctx, user.ID, "Pets")
	if err != nil {
		t.Fatalf("CreateCustomCategory failed: %v", err)
	}
	if cat.Kind != model.CategoryCustom || cat.OwnerID != user.ID {
		t.Errorf("unexpected category %+v", cat)
	}

	// The unique key is exact; case folding is the registry's job.
	_, err = store.CreateCustomCategory(ctx, user.ID, "Pets")
	if !errors.Is(err, common.ErrDuplicate) {
		t.Errorf("exact duplicate: got %v, want ErrDuplicate", err)
	}

	if _, err := store.CreateCustomCategory(ctx, user.ID, "Alcohol"); err != nil {
		t.Fatalf("CreateCustomCategory failed: %v", err)
	}

	categories, err := store.ListCustomCategories(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListCustomCategories failed: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("got %d categories, want 2", len(categories))
	}
	// Alphabetical order.
	if categories[0].Name != "Alcohol" || categories[1].Name != "Pets" {
		t.Errorf("unexpected order: %v, %v", categories[0].Name, categories[1].Name)
	}
}

func TestDeleteCustomCategoryIsIdempotent(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()
	user := createUser(t, store, "you@example.com")

	if _, err := store.CreateCustomCategory(ctx, user.ID, "Pets"); err != nil {
		t.Fatalf("CreateCustomCategory failed: %v", err)
	}

	if err := store.DeleteCustomCategory(ctx, user.ID, "Pets"); err != nil {
		t.Fatalf("DeleteCustomCategory failed: %v", err)
	}
	// Removing an absent category is a no-op, not an error.
	if err := store.DeleteCustomCategory(ctx, user.ID, "Pets"); err != nil {
		t.Errorf("second delete should be a no-op, got %v", err)
	}
}

func TestCustomCategoriesAreScopedPerUser(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()
	alice := createUser(t, store, "alice@example.com")
	bob := createUser(t, store, "bob@example.com")

	if _, err := store.CreateCustomCategory(ctx, alice.ID, "Pets"); err != nil {
		t.Fatalf("CreateCustomCategory failed: %v", err)
	}

	// Same name is fine for a different user.
	if _, err := store.CreateCustomCategory(ctx, bob.ID, "Pets"); err != nil {
		t.Fatalf("CreateCustomCategory for second user failed: %v", err)
	}

	categories, err := store.ListCustomCategories(ctx, bob.ID)
	if err != nil {
		t.Fatalf("ListCustomCategories failed: %v", err)
	}
	if len(categories) != 1 {
		t.Errorf("got %d categories for bob, want 1", len(categories))
	}
}
