// Package ledger implements the transaction ledger engine: validated
// entry, category resolution, the balance guard, and aggregation.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"finman/internal/common"
	"finman/internal/model"
	"finman/internal/service"
)

// Ledger coordinates validation, category resolution and the balance
// guard on top of a Store. The store handle is explicit; there is no
// ambient database state.
type Ledger struct {
	store service.Store
	mu    sync.Mutex
}

// New creates a ledger over the given store.
func New(store service.Store) *Ledger {
	return &Ledger{store: store}
}

// AddTransaction validates the input, resolves (creating if needed) the
// category, runs the balance guard for expenses and persists the row.
// Everything after validation happens in one database transaction, so a
// guard rejection leaves neither the transaction nor a freshly created
// category behind.
func (l *Ledger) AddTransaction(ctx context.Context, amount float64, date, category, description string, typ model.TransactionType) (int64, error) {
	if amount <= 0 {
		return 0, common.NewValidationError("amount", "must be a positive number")
	}
	day, err := time.Parse(model.DateLayout, date)
	if err != nil {
		return 0, common.NewValidationError("date", "must be a valid YYYY-MM-DD date")
	}
	if strings.TrimSpace(category) == "" {
		return 0, common.NewValidationError("category", "must not be empty")
	}
	if strings.TrimSpace(description) == "" {
		return 0, common.NewValidationError("description", "must not be empty")
	}
	if !typ.Valid() {
		return 0, common.NewValidationError("type", "must be either 'income' or 'expense'")
	}

	// Serialize check-then-commit so two concurrent expenses cannot
	// both pass a stale balance check.
	l.mu.Lock()
	defer l.mu.Unlock()

	tx, err := l.store.BeginTx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	categoryID, err := tx.ResolveCategory(ctx, category)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve category: %w", err)
	}

	if typ == model.TypeExpense {
		totals, totalsErr := tx.GetTotals(ctx)
		if totalsErr != nil {
			return 0, fmt.Errorf("failed to read totals: %w", totalsErr)
		}
		if guardErr := checkBalance(totals, amount); guardErr != nil {
			return 0, guardErr
		}
	}

	id, err := tx.InsertTransaction(ctx, &model.Transaction{
		Amount:      amount,
		Date:        day,
		CategoryID:  categoryID,
		Description: description,
		Type:        typ,
	})
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	slog.Info("transaction added",
		"id", id,
		"type", typ,
		"amount", amount,
		"category", category)
	return id, nil
}

// Transactions returns all rows matching the filter, joined with their
// category name, in insertion order.
func (l *Ledger) Transactions(ctx context.Context, filter service.TransactionFilter) ([]model.Transaction, error) {
	return l.store.GetTransactions(ctx, filter)
}

// ResolveCategory returns the id for name, creating the category on
// first use. Idempotent under repeated calls.
func (l *Ledger) ResolveCategory(ctx context.Context, name string) (int64, error) {
	if strings.TrimSpace(name) == "" {
		return 0, common.NewValidationError("category", "must not be empty")
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.ResolveCategory(ctx, name)
}

// LookupCategory returns the category for name without creating it, or
// nil when it does not exist.
func (l *Ledger) LookupCategory(ctx context.Context, name string) (*model.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, common.NewValidationError("category", "must not be empty")
	}
	return l.store.GetCategoryByName(ctx, name)
}

// Categories returns all known categories.
func (l *Ledger) Categories(ctx context.Context) ([]model.Category, error) {
	return l.store.GetCategories(ctx)
}

// Reset deletes every transaction and category.
func (l *Ledger) Reset(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.DeleteAllData(ctx)
}
