// Package testutil provides shared helpers for tests that need a real
// migrated database.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spendwise-app/spendwise/internal/model"
	"github.com/spendwise-app/spendwise/internal/storage"
)

// SetupTestDB creates a migrated SQLite database in a temp directory and
// registers cleanup. Tests get full storage behavior, including constraint
// errors.
func SetupTestDB(t *testing.T) *storage.SQLiteStorage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return store
}

// CreateTestUser inserts a user row so FK-scoped fixtures have an owner.
func CreateTestUser(t *testing.T, store *storage.SQLiteStorage, email string) *model.User {
	t.Helper()

	user, err := store.CreateUser(context.Background(), email, "test-hash")
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user
}

// MustDay parses an ISO date or fails the test.
func MustDay(t *testing.T, s string) model.Day {
	t.Helper()

	day, err := model.ParseDay(s)
	if err != nil {
		t.Fatalf("Failed to parse day %q: %v", s, err)
	}
	return day
}
