package ledger

import (
	"context"
	"fmt"

	"finman/internal/model"
)

// Summary folds the full transaction set into income, expense and net
// savings totals. An empty store yields all zeros.
func (l *Ledger) Summary(ctx context.Context) (model.Summary, error) {
	totals, err := l.store.GetTotals(ctx)
	if err != nil {
		return model.Summary{}, fmt.Errorf("failed to compute summary: %w", err)
	}

	return model.Summary{
		TotalIncome:  totals.Income,
		TotalExpense: totals.Expense,
		NetSavings:   totals.Income - totals.Expense,
	}, nil
}

// ByType returns the summed amount per transaction type.
func (l *Ledger) ByType(ctx context.Context) (map[model.TransactionType]float64, error) {
	totals, err := l.store.GetTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute totals by type: %w", err)
	}

	return map[model.TransactionType]float64{
		model.TypeIncome:  totals.Income,
		model.TypeExpense: totals.Expense,
	}, nil
}

// ByCategory returns per-category sums. Income and expense are kept
// separate so a salary category never shows up as spending.
func (l *Ledger) ByCategory(ctx context.Context) (map[string]model.CategoryTotals, error) {
	totals, err := l.store.GetTotalsByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute totals by category: %w", err)
	}
	return totals, nil
}
