// Package service defines the interfaces between the ledger engine and
// its persistence layer.
package service

import (
	"context"
	"time"

	"finman/internal/model"
)

// TransactionFilter defines filtering options for transaction queries.
// Nil fields mean "no constraint"; all set fields apply conjunctively.
type TransactionFilter struct {
	Category *string
	Date     *time.Time
	Type     *model.TransactionType
}

// Totals holds the current income and expense sums used by the balance
// guard and the summary computation.
type Totals struct {
	Income  float64
	Expense float64
}

// Store defines the contract for the ledger persistence layer.
type Store interface {
	// Category operations
	GetCategories(ctx context.Context) ([]model.Category, error)
	GetCategoryByName(ctx context.Context, name string) (*model.Category, error)
	ResolveCategory(ctx context.Context, name string) (int64, error)

	// Transaction operations
	InsertTransaction(ctx context.Context, txn *model.Transaction) (int64, error)
	GetTransactions(ctx context.Context, filter TransactionFilter) ([]model.Transaction, error)
	GetTransactionCount(ctx context.Context) (int, error)

	// Aggregation reads
	GetTotals(ctx context.Context) (Totals, error)
	GetTotalsByCategory(ctx context.Context) (map[string]model.CategoryTotals, error)

	// Database management
	DeleteAllData(ctx context.Context) error
	Migrate(ctx context.Context) error
	BeginTx(ctx context.Context) (Tx, error)
	Close() error
}

// Tx is a database transaction over the same operations. Commit or
// Rollback must be called exactly once.
type Tx interface {
	Commit() error
	Rollback() error

	GetCategoryByName(ctx context.Context, name string) (*model.Category, error)
	ResolveCategory(ctx context.Context, name string) (int64, error)
	InsertTransaction(ctx context.Context, txn *model.Transaction) (int64, error)
	GetTotals(ctx context.Context) (Totals, error)
}
