package ledger

import (
	"context"
	"testing"

	"finman/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary_EmptyStore(t *testing.T) {
	l := newTestLedger(t)

	summary, err := l.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.Summary{}, summary)
}

func TestSummary_NetSavings(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	_, err := l.AddTransaction(ctx, 1500, "2024-02-01", "Salary", "Monthly income", model.TypeIncome)
	require.NoError(t, err)
	_, err = l.AddTransaction(ctx, 400, "2024-02-03", "Rent", "House rent", model.TypeExpense)
	require.NoError(t, err)
	_, err = l.AddTransaction(ctx, 100.25, "2024-02-05", "Groceries", "Grocery shopping", model.TypeExpense)
	require.NoError(t, err)

	summary, err := l.Summary(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 1500, summary.TotalIncome, 1e-9)
	assert.InDelta(t, 500.25, summary.TotalExpense, 1e-9)
	assert.InDelta(t, 999.75, summary.NetSavings, 1e-9)
}

func TestByType(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	byType, err := l.ByType(ctx)
	require.NoError(t, err)
	assert.Zero(t, byType[model.TypeIncome])
	assert.Zero(t, byType[model.TypeExpense])

	_, err = l.AddTransaction(ctx, 2000, "2024-03-01", "Salary", "Monthly income", model.TypeIncome)
	require.NoError(t, err)
	_, err = l.AddTransaction(ctx, 75, "2024-03-02", "Transport", "Bus fare", model.TypeExpense)
	require.NoError(t, err)

	byType, err = l.ByType(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2000.0, byType[model.TypeIncome])
	assert.Equal(t, 75.0, byType[model.TypeExpense])
}

func TestByCategory_SeparatesIncomeFromExpense(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	byCategory, err := l.ByCategory(ctx)
	require.NoError(t, err)
	assert.Empty(t, byCategory)

	_, err = l.AddTransaction(ctx, 1000, "2024-03-01", "Salary", "Monthly income", model.TypeIncome)
	require.NoError(t, err)
	_, err = l.AddTransaction(ctx, 300, "2024-03-02", "Rent", "House rent", model.TypeExpense)
	require.NoError(t, err)
	_, err = l.AddTransaction(ctx, 200, "2024-03-15", "Rent", "House rent", model.TypeExpense)
	require.NoError(t, err)

	byCategory, err = l.ByCategory(ctx)
	require.NoError(t, err)
	require.Len(t, byCategory, 2)

	// Salary income stays out of the spending column.
	assert.Equal(t, model.CategoryTotals{Income: 1000}, byCategory["Salary"])
	assert.Equal(t, model.CategoryTotals{Expense: 500}, byCategory["Rent"])
}
