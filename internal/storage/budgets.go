package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spendwise-app/spendwise/internal/model"
)

// UpsertBudget inserts or replaces the budget amount for (user, category).
// The unique key guarantees at most one row per pair.
func (s *SQLiteStorage) UpsertBudget(ctx context.Context, userID int64, category string, amount float64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateUserID(userID); err != nil {
		return err
	}
	if err := validateString(category, "category"); err != nil {
		return err
	}
	if err := validateAmount(amount); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO budgets (user_id, category, amount)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id, category) DO UPDATE SET amount = excluded.amount`,
		userID, category, amount)
	if err != nil {
		return fmt.Errorf("failed to upsert budget: %w", err)
	}

	slog.Debug("upserted budget", "user_id", userID, "category", category, "amount", amount)
	return nil
}

// DeleteBudget removes the budget row for (user, category) if present;
// idempotent.
func (s *SQLiteStorage) DeleteBudget(ctx context.Context, userID int64, category string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateUserID(userID); err != nil {
		return err
	}
	if err := validateString(category, "category"); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM budgets WHERE user_id = ? AND category = ?`,
		userID, category); err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}
	return nil
}

// DeleteAllBudgets removes every budget row for the user.
func (s *SQLiteStorage) DeleteAllBudgets(ctx context.Context, userID int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateUserID(userID); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx,
		`DELETE FROM budgets WHERE user_id = ?`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete budgets: %w", err)
	}

	affected, _ := result.RowsAffected()
	slog.Info("reset all budgets", "user_id", userID, "rows", affected)
	return nil
}

// GetBudgets returns all budget rows for the user keyed by category.
func (s *SQLiteStorage) GetBudgets(ctx context.Context, userID int64) (map[string]float64, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT category, amount FROM budgets WHERE user_id = ?`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	budgets := make(map[string]float64)
	for rows.Next() {
		var b model.Budget
		if err := rows.Scan(&b.Category, &b.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}
		budgets[b.Category] = b.Amount
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budgets: %w", err)
	}

	return budgets, nil
}

// GetCategorySpend sums transaction amounts per category for the user.
func (s *SQLiteStorage) GetCategorySpend(ctx context.Context, userID int64) (map[string]float64, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT category, SUM(amount)
		FROM transactions
		WHERE user_id = ?
		GROUP BY category`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query category spend: %w", err)
	}
	defer func() { _ = rows.Close() }()

	spend := make(map[string]float64)
	for rows.Next() {
		var category string
		var total float64
		if err := rows.Scan(&category, &total); err != nil {
			return nil, fmt.Errorf("failed to scan category spend: %w", err)
		}
		spend[category] = total
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category spend: %w", err)
	}

	return spend, nil
}
