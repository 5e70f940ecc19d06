package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spendwise-app/spendwise/internal/model"
)

// Helper function to create a migrated test storage.
func createTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := NewSQLiteStorage(dbPath)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return store
}

func createUser(t *testing.T, store *SQLiteStorage, email string) *model.User {
	t.Helper()
	user, err := store.CreateUser(context.Background(), email, "hash-"+email)
	if err != nil {
		t.Fatalf("Failed to create user %s: %v", email, err)
	}
	return user
}

func mustDay(t *testing.T, s string) model.Day {
	t.Helper()
	day, err := model.ParseDay(s)
	if err != nil {
		t.Fatalf("Failed to parse day %q: %v", s, err)
	}
	return day
}

func insertTxn(t *testing.T, store *SQLiteStorage, userID int64, amount float64, category, date string) int64 {
	t.Helper()
	id, err := store.InsertTransaction(context.Background(), &model.Transaction{
		UserID:   userID,
		Amount:   amount,
		Category: category,
		Date:     mustDay(t, date),
	})
	if err != nil {
		t.Fatalf("Failed to insert transaction: %v", err)
	}
	return id
}

func TestMigrateIsIdempotent(t *testing.T) {
	store := createTestStorage(t)

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("Second migrate failed: %v", err)
	}
}

func TestBeginTx(t *testing.T) {
	store := createTestStorage(t)

	tx, err := store.BeginTx(context.Background())
	if err != nil {
		t.Fatalf("BeginTx failed: %v", err)
	}
	if err := tx.Rollback(); err != nil {
		t.Errorf("Rollback failed: %v", err)
	}
}
