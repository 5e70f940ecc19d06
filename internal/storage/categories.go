package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spendwise-app/spendwise/internal/common"
	"github.com/spendwise-app/spendwise/internal/model"
)

// ListCustomCategories returns the user's custom categories in alphabetical
// order. Base categories are never persisted here; the registry merges the
// two sets.
func (s *SQLiteStorage) ListCustomCategories(ctx context.Context, userID int64) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT name FROM user_categories WHERE user_id = ? ORDER BY name`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query custom categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var categories []model.Category
	for rows.Next() {
		cat := model.Category{Kind: model.CategoryCustom, OwnerID: userID}
		if err := rows.Scan(&cat.Name); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, cat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	slog.Debug("retrieved custom categories", "user_id", userID, "count", len(categories))
	return categories, nil
}

// CreateCustomCategory persists a custom category with its original casing.
// The (user_id, name) unique constraint surfaces as common.ErrDuplicate;
// the registry performs the case-insensitive duplicate check before calling
// this.
func (s *SQLiteStorage) CreateCustomCategory(ctx context.Context, userID int64, name string) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO user_categories (user_id, name) VALUES (?, ?)`,
		userID, name)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: category %q", common.ErrDuplicate, name)
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	slog.Info("created custom category", "user_id", userID, "name", name)
	return &model.Category{
		Name:    name,
		Kind:    model.CategoryCustom,
		OwnerID: userID,
	}, nil
}

// DeleteCustomCategory removes a custom category if present. Removing a
// category that does not exist is a no-op; transactions tagged with the
// name are left untouched.
func (s *SQLiteStorage) DeleteCustomCategory(ctx context.Context, userID int64, name string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateUserID(userID); err != nil {
		return err
	}
	if err := validateString(name, "name"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx,
		`DELETE FROM user_categories WHERE user_id = ? AND name = ?`,
		userID, name)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}

	slog.Debug("deleted custom category", "user_id", userID, "name", name, "rows", affected)
	return nil
}
