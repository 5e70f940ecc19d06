package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/spendwise-app/spendwise/internal/common"
	"github.com/spendwise-app/spendwise/internal/model"
)

// InsertTransaction saves a new transaction and returns its id. A blank
// note is stored as NULL.
func (s *SQLiteStorage) InsertTransaction(ctx context.Context, txn *model.Transaction) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateTransaction(txn); err != nil {
		return 0, err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO transactions (user_id, amount, category, date, note)
		VALUES (?, ?, ?, ?, ?)`,
		txn.UserID, txn.Amount, txn.Category, txn.Date.String(), noteOrNull(txn.Note))
	if err != nil {
		return 0, fmt.Errorf("failed to insert transaction: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get transaction ID: %w", err)
	}

	txn.ID = id
	slog.Debug("inserted transaction", "id", id, "user_id", txn.UserID, "category", txn.Category)
	return id, nil
}

// UpdateTransaction mutates a transaction in place. The WHERE clause scopes
// by user_id; an id owned by another user matches zero rows and surfaces as
// common.ErrNotFound.
func (s *SQLiteStorage) UpdateTransaction(ctx context.Context, txn *model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTransaction(txn); err != nil {
		return err
	}
	if txn.ID <= 0 {
		return fmt.Errorf("%w: transaction id", common.ErrValidation)
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE transactions SET amount = ?, category = ?, date = ?, note = ?
		WHERE id = ? AND user_id = ?`,
		txn.Amount, txn.Category, txn.Date.String(), noteOrNull(txn.Note), txn.ID, txn.UserID)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: transaction %d", common.ErrNotFound, txn.ID)
	}
	return nil
}

// DeleteTransaction removes a transaction, scoped by user_id.
func (s *SQLiteStorage) DeleteTransaction(ctx context.Context, id, userID int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateUserID(userID); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx,
		`DELETE FROM transactions WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: transaction %d", common.ErrNotFound, id)
	}
	return nil
}

// ListTransactions returns the user's transactions ordered by date
// descending, id descending. The filter optionally restricts by exact
// category and an inclusive [from, to] date range.
func (s *SQLiteStorage) ListTransactions(ctx context.Context, userID int64, filter model.TransactionFilter) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	query := `SELECT id, user_id, amount, category, date, note
		FROM transactions WHERE user_id = ?`
	args := []any{userID}

	if filter.Category != "" {
		query += ` AND category = ?`
		args = append(args, filter.Category)
	}
	if filter.From != nil {
		query += ` AND date >= ?`
		args = append(args, filter.From.String())
	}
	if filter.To != nil {
		query += ` AND date <= ?`
		args = append(args, filter.To.String())
	}
	query += ` ORDER BY date DESC, id DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var transactions []model.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, txn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	return transactions, nil
}

// GetTransactionByID fetches one transaction, scoped by user_id.
func (s *SQLiteStorage) GetTransactionByID(ctx context.Context, id, userID int64) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, amount, category, date, note
		FROM transactions WHERE id = ? AND user_id = ?`, id, userID)

	txn, err := scanTransaction(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%w: transaction %d", common.ErrNotFound, id)
		}
		return nil, err
	}
	return &txn, nil
}

func validateTransaction(txn *model.Transaction) error {
	if txn == nil {
		return fmt.Errorf("%w: transaction", common.ErrValidation)
	}
	if err := validateUserID(txn.UserID); err != nil {
		return err
	}
	if err := validateAmount(txn.Amount); err != nil {
		return err
	}
	if err := validateString(txn.Category, "category"); err != nil {
		return err
	}
	if txn.Date.IsZero() {
		return fmt.Errorf("%w: missing date", common.ErrValidation)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (model.Transaction, error) {
	var txn model.Transaction
	var date string
	var note sql.NullString

	if err := row.Scan(&txn.ID, &txn.UserID, &txn.Amount, &txn.Category, &date, &note); err != nil {
		if err == sql.ErrNoRows {
			return txn, err
		}
		return txn, fmt.Errorf("failed to scan transaction: %w", err)
	}

	day, err := model.ParseDay(date)
	if err != nil {
		return txn, fmt.Errorf("corrupt date in row %d: %w", txn.ID, err)
	}
	txn.Date = day
	txn.Note = note.String
	return txn, nil
}

func noteOrNull(note string) any {
	if note == "" {
		return nil
	}
	return note
}
