package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/spendwise-app/spendwise/internal/common"
	"github.com/spendwise-app/spendwise/internal/config"
	"github.com/spendwise-app/spendwise/internal/model"
	"github.com/spendwise-app/spendwise/internal/session"
	"github.com/spendwise-app/spendwise/internal/storage"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// newSessionManager builds the token manager from configuration.
func newSessionManager() (*session.Manager, error) {
	secret := viper.GetString("session.secret")
	if secret == "" {
		return nil, fmt.Errorf("session.secret is not configured (set it in config.yaml or SPENDWISE_SESSION_SECRET)")
	}
	return session.NewManager(secret, viper.GetDuration("session.ttl"))
}

// currentUser resolves the signed-in user id from the saved session token.
func currentUser() (int64, string, error) {
	manager, err := newSessionManager()
	if err != nil {
		return 0, "", err
	}

	token, err := os.ReadFile(config.TokenPath())
	if err != nil {
		return 0, "", common.NewUserError("not signed in: run 'spendwise auth login' first", err)
	}

	return manager.Resolve(strings.TrimSpace(string(token)))
}

// saveToken persists the session token for later commands.
func saveToken(token string) error {
	path := config.TokenPath()
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(token), 0600); err != nil {
		return fmt.Errorf("failed to save session token: %w", err)
	}
	return nil
}

// parseDateFlag parses an optional YYYY-MM-DD flag value.
func parseDateFlag(value string) (*model.Day, error) {
	if value == "" {
		return nil, nil
	}
	day, err := model.ParseDay(value)
	if err != nil {
		return nil, err
	}
	return &day, nil
}
