package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"finman/internal/model"
)

// Helper function to create a migrated test store.
func createTestStore(t *testing.T) (*SQLiteStore, func()) {
	t.Helper()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		t.Fatalf("Failed to migrate: %v", err)
	}

	return store, func() { _ = store.Close() }
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	day, err := time.Parse(model.DateLayout, s)
	if err != nil {
		t.Fatalf("Bad test date %q: %v", s, err)
	}
	return day
}

// mustInsert resolves the category and inserts a row directly.
func mustInsert(t *testing.T, s *SQLiteStore, amount float64, date, category, description string, typ model.TransactionType) int64 {
	t.Helper()
	ctx := context.Background()

	categoryID, err := s.ResolveCategory(ctx, category)
	if err != nil {
		t.Fatalf("Failed to resolve category: %v", err)
	}

	id, err := s.InsertTransaction(ctx, &model.Transaction{
		Amount:      amount,
		Date:        mustDate(t, date),
		CategoryID:  categoryID,
		Description: description,
		Type:        typ,
	})
	if err != nil {
		t.Fatalf("Failed to insert transaction: %v", err)
	}
	return id
}

func TestNewSQLiteStore_EmptyPath(t *testing.T) {
	if _, err := NewSQLiteStore(""); err == nil {
		t.Error("Expected error for empty path, got nil")
	}
}

func TestSQLiteStore_BeginTxRollback(t *testing.T) {
	store, cleanup := createTestStore(t)
	defer cleanup()
	ctx := context.Background()

	tx, err := store.BeginTx(ctx)
	if err != nil {
		t.Fatalf("Failed to begin transaction: %v", err)
	}

	if _, err := tx.ResolveCategory(ctx, "Ephemeral"); err != nil {
		t.Fatalf("Failed to resolve category in tx: %v", err)
	}

	if err := tx.Rollback(); err != nil {
		t.Fatalf("Failed to rollback: %v", err)
	}

	cat, err := store.GetCategoryByName(ctx, "Ephemeral")
	if err != nil {
		t.Fatalf("Failed to look up category: %v", err)
	}
	if cat != nil {
		t.Errorf("Expected rolled-back category to be absent, got id %d", cat.ID)
	}
}

func TestSQLiteStore_BeginTxCommit(t *testing.T) {
	store, cleanup := createTestStore(t)
	defer cleanup()
	ctx := context.Background()

	tx, err := store.BeginTx(ctx)
	if err != nil {
		t.Fatalf("Failed to begin transaction: %v", err)
	}

	categoryID, err := tx.ResolveCategory(ctx, "Rent")
	if err != nil {
		t.Fatalf("Failed to resolve category in tx: %v", err)
	}

	if _, err := tx.InsertTransaction(ctx, &model.Transaction{
		Amount:      50,
		Date:        mustDate(t, "2024-03-01"),
		CategoryID:  categoryID,
		Description: "House rent",
		Type:        model.TypeExpense,
	}); err != nil {
		t.Fatalf("Failed to insert in tx: %v", err)
	}

	if err := tx.Commit(); err != nil {
		t.Fatalf("Failed to commit: %v", err)
	}

	count, err := store.GetTransactionCount(ctx)
	if err != nil {
		t.Fatalf("Failed to count transactions: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 transaction after commit, got %d", count)
	}
}
