// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/spendwise-app/spendwise/internal/model"
)

// Storage defines the contract for the persistence layer. Every operation
// that touches user-owned rows takes the owning user id explicitly.
type Storage interface {
	// User operations
	CreateUser(ctx context.Context, email, passwordHash string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
	UpdateUserPasswordHash(ctx context.Context, id int64, passwordHash string) error

	// Custom category operations
	ListCustomCategories(ctx context.Context, userID int64) ([]model.Category, error)
	CreateCustomCategory(ctx context.Context, userID int64, name string) (*model.Category, error)
	DeleteCustomCategory(ctx context.Context, userID int64, name string) error

	// Budget operations
	UpsertBudget(ctx context.Context, userID int64, category string, amount float64) error
	DeleteBudget(ctx context.Context, userID int64, category string) error
	DeleteAllBudgets(ctx context.Context, userID int64) error
	GetBudgets(ctx context.Context, userID int64) (map[string]float64, error)
	GetCategorySpend(ctx context.Context, userID int64) (map[string]float64, error)

	// Transaction operations
	InsertTransaction(ctx context.Context, txn *model.Transaction) (int64, error)
	UpdateTransaction(ctx context.Context, txn *model.Transaction) error
	DeleteTransaction(ctx context.Context, id, userID int64) error
	ListTransactions(ctx context.Context, userID int64, filter model.TransactionFilter) ([]model.Transaction, error)
	GetTransactionByID(ctx context.Context, id, userID int64) (*model.Transaction, error)

	// Database management
	Migrate(ctx context.Context) error
	BeginTx(ctx context.Context) (Transaction, error)
	Close() error
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit() error
	Rollback() error
}
