package storage

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"finman/internal/model"
	"finman/internal/service"
)

// InsertTransaction persists a single transaction row. The category
// must already be resolved; callers wanting the guarded entry path go
// through the ledger, not here.
func (s *SQLiteStore) InsertTransaction(ctx context.Context, txn *model.Transaction) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateTransaction(txn); err != nil {
		return 0, err
	}
	return insertTransaction(ctx, s.db, txn)
}

func (t *sqliteTx) InsertTransaction(ctx context.Context, txn *model.Transaction) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateTransaction(txn); err != nil {
		return 0, err
	}
	return insertTransaction(ctx, t.tx, txn)
}

func insertTransaction(ctx context.Context, q dbtx, txn *model.Transaction) (int64, error) {
	query := `
		INSERT INTO transactions (amount, date, category_id, description, type)
		VALUES (?, ?, ?, ?, ?)`

	result, err := q.ExecContext(ctx, query,
		txn.Amount,
		txn.Date.Format(model.DateLayout),
		txn.CategoryID,
		txn.Description,
		string(txn.Type),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert transaction: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get transaction ID: %w", err)
	}

	slog.Debug("inserted transaction",
		"id", id,
		"type", txn.Type,
		"amount", txn.Amount,
		"category_id", txn.CategoryID)
	return id, nil
}

// GetTransactions returns rows joined with their category name,
// matching every set filter field, in insertion order. An empty result
// is not an error.
func (s *SQLiteStore) GetTransactions(ctx context.Context, filter service.TransactionFilter) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateFilter(filter); err != nil {
		return nil, err
	}

	var sb strings.Builder
	sb.WriteString(`
		SELECT t.id, t.amount, t.date, t.category_id, c.name, t.description, t.type
		FROM transactions t
		JOIN categories c ON t.category_id = c.id`)

	var clauses []string
	var args []any
	if filter.Category != nil {
		clauses = append(clauses, "c.name = ?")
		args = append(args, *filter.Category)
	}
	if filter.Date != nil {
		clauses = append(clauses, "t.date = ?")
		args = append(args, filter.Date.Format(model.DateLayout))
	}
	if filter.Type != nil {
		clauses = append(clauses, "t.type = ?")
		args = append(args, string(*filter.Type))
	}
	if len(clauses) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(clauses, " AND "))
	}
	sb.WriteString(" ORDER BY t.id")

	rows, err := s.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var txns []model.Transaction
	for rows.Next() {
		var txn model.Transaction
		var date, typ string
		if err := rows.Scan(&txn.ID, &txn.Amount, &date, &txn.CategoryID, &txn.CategoryName, &txn.Description, &typ); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txn.Date, err = time.Parse(model.DateLayout, date)
		if err != nil {
			return nil, fmt.Errorf("failed to parse stored date %q: %w", date, err)
		}
		txn.Type = model.TransactionType(typ)
		txns = append(txns, txn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	slog.Debug("retrieved transactions", "count", len(txns))
	return txns, nil
}

// GetTransactionCount returns the number of persisted transactions.
func (s *SQLiteStore) GetTransactionCount(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

// GetTotals returns the current income and expense sums.
func (s *SQLiteStore) GetTotals(ctx context.Context) (service.Totals, error) {
	if err := validateContext(ctx); err != nil {
		return service.Totals{}, err
	}
	return getTotals(ctx, s.db)
}

func (t *sqliteTx) GetTotals(ctx context.Context) (service.Totals, error) {
	if err := validateContext(ctx); err != nil {
		return service.Totals{}, err
	}
	return getTotals(ctx, t.tx)
}

func getTotals(ctx context.Context, q dbtx) (service.Totals, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN type = 'income' THEN amount END), 0),
			COALESCE(SUM(CASE WHEN type = 'expense' THEN amount END), 0)
		FROM transactions`

	var totals service.Totals
	if err := q.QueryRowContext(ctx, query).Scan(&totals.Income, &totals.Expense); err != nil {
		return service.Totals{}, fmt.Errorf("failed to query totals: %w", err)
	}
	return totals, nil
}

// GetTotalsByCategory returns per-category sums with income and expense
// amounts kept separate.
func (s *SQLiteStore) GetTotalsByCategory(ctx context.Context) (map[string]model.CategoryTotals, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT c.name, t.type, SUM(t.amount)
		FROM transactions t
		JOIN categories c ON t.category_id = c.id
		GROUP BY c.name, t.type`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query category totals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	totals := make(map[string]model.CategoryTotals)
	for rows.Next() {
		var name, typ string
		var sum float64
		if err := rows.Scan(&name, &typ, &sum); err != nil {
			return nil, fmt.Errorf("failed to scan category total: %w", err)
		}

		ct := totals[name]
		switch model.TransactionType(typ) {
		case model.TypeIncome:
			ct.Income = sum
		case model.TypeExpense:
			ct.Expense = sum
		}
		totals[name] = ct
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category totals: %w", err)
	}

	return totals, nil
}

// DeleteAllData removes every transaction and category. Transactions
// are cleared first so the category delete never dangles mid-way.
func (s *SQLiteStore) DeleteAllData(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM transactions`); err != nil {
		return fmt.Errorf("failed to delete transactions: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM categories`); err != nil {
		return fmt.Errorf("failed to delete categories: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete: %w", err)
	}

	slog.Info("deleted all ledger data")
	return nil
}
