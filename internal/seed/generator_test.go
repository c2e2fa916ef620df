package seed

import (
	"context"
	"math/rand"
	"path/filepath"
	"testing"

	"finman/internal/common"
	"finman/internal/ledger"
	"finman/internal/model"
	"finman/internal/service"
	"finman/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLedger(t *testing.T) *ledger.Ledger {
	t.Helper()

	store, err := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "seed.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return ledger.New(store)
}

func TestGenerate_CountTooSmall(t *testing.T) {
	gen := NewGenerator(newTestLedger(t), rand.New(rand.NewSource(1)))

	_, err := gen.Generate(context.Background(), 3)
	require.Error(t, err)
	assert.True(t, common.IsValidation(err))
}

func TestGenerate_ProducesBoundedLedger(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	gen := NewGenerator(l, rand.New(rand.NewSource(42)))
	res, err := gen.Generate(ctx, 40)
	require.NoError(t, err)

	assert.Equal(t, 10, res.IncomeAdded)
	assert.Equal(t, 10, res.ExpensesAdded+res.Skipped)

	summary, err := l.Summary(ctx)
	require.NoError(t, err)
	assert.InDelta(t, res.TotalIncome, summary.TotalIncome, 1e-6)

	// The local ceiling bounds accepted expenses at 80% of income.
	assert.LessOrEqual(t, summary.TotalExpense, res.TotalIncome*ceilingRatio)

	// Every income row sits under the fixed Salary category.
	salary := "Salary"
	income := model.TypeIncome
	incomes, err := l.Transactions(ctx, service.TransactionFilter{Type: &income})
	require.NoError(t, err)
	require.Len(t, incomes, 10)
	for _, txn := range incomes {
		assert.Equal(t, salary, txn.CategoryName)
		assert.Equal(t, "Monthly salary", txn.Description)
		assert.GreaterOrEqual(t, txn.Amount, float64(incomeMin))
		assert.LessOrEqual(t, txn.Amount, float64(incomeMax))
	}

	expense := model.TypeExpense
	expenses, err := l.Transactions(ctx, service.TransactionFilter{Type: &expense})
	require.NoError(t, err)
	assert.Len(t, expenses, res.ExpensesAdded)
	for _, txn := range expenses {
		assert.GreaterOrEqual(t, txn.Amount, float64(expenseMin))
		assert.LessOrEqual(t, txn.Amount, float64(expenseMax))
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	ctx := context.Background()

	first, err := NewGenerator(newTestLedger(t), rand.New(rand.NewSource(7))).Generate(ctx, 20)
	require.NoError(t, err)

	second, err := NewGenerator(newTestLedger(t), rand.New(rand.NewSource(7))).Generate(ctx, 20)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerate_ProgressCallback(t *testing.T) {
	gen := NewGenerator(newTestLedger(t), rand.New(rand.NewSource(3)))

	var steps int
	gen.Progress = func() { steps++ }

	_, err := gen.Generate(context.Background(), 16)
	require.NoError(t, err)

	// One step per attempted row, accepted or skipped.
	assert.Equal(t, 8, steps)
}
