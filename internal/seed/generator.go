// Package seed generates plausible random ledger data for demos and
// tests.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"finman/internal/common"
	"finman/internal/ledger"
	"finman/internal/model"
)

// Fixed pools the generator draws from.
var (
	categories = []string{
		"Salary", "Rent", "Groceries", "Entertainment",
		"Utilities", "Dining Out", "Health", "Transport",
	}
	descriptions = []string{
		"Monthly income", "House rent", "Grocery shopping", "Movie night",
		"Electricity bill", "Dinner", "Medical expenses", "Bus fare",
	}
)

const (
	incomeMin  = 500
	incomeMax  = 2000
	expenseMin = 10
	expenseMax = 500

	// Fraction of generated income the expense run may consume.
	ceilingRatio = 0.8
)

// Result reports what a generator run produced.
type Result struct {
	IncomeAdded   int
	ExpensesAdded int
	Skipped       int
	TotalIncome   float64
}

// Generator writes random transactions through the ledger's guarded
// entry path, bounded by its own shrinking budget ceiling.
type Generator struct {
	ledger *ledger.Ledger
	rng    *rand.Rand

	// Progress, when set, is invoked once per attempted row.
	Progress func()
}

// NewGenerator creates a generator. Pass a seeded rand.Rand for
// reproducible output.
func NewGenerator(l *ledger.Ledger, rng *rand.Rand) *Generator {
	return &Generator{ledger: l, rng: rng}
}

// Generate inserts n/4 income transactions under "Salary", then
// attempts n/4 expenses drawn from the fixed pools. Expense attempts
// are bounded twice: by the local ceiling (80% of the income generated
// this run, decremented per accepted expense) and independently by the
// ledger's balance guard. Either bound skips the attempt; skips are
// counted, not errors.
func (g *Generator) Generate(ctx context.Context, n int) (Result, error) {
	if n < 4 {
		return Result{}, common.NewValidationError("count", "must be at least 4")
	}

	start := time.Now().AddDate(0, 0, -365)
	var res Result

	for i := 0; i < n/4; i++ {
		amount := g.randAmount(incomeMin, incomeMax)
		date := g.randDate(start)

		_, err := g.ledger.AddTransaction(ctx, amount, date, "Salary", "Monthly salary", model.TypeIncome)
		if err != nil {
			return res, fmt.Errorf("failed to generate income: %w", err)
		}
		res.IncomeAdded++
		res.TotalIncome += amount
		g.step()
	}

	ceiling := res.TotalIncome * ceilingRatio

	for i := 0; i < n/4; i++ {
		amount := g.randAmount(expenseMin, expenseMax)
		date := g.randDate(start)
		category := categories[g.rng.Intn(len(categories))]
		description := descriptions[g.rng.Intn(len(descriptions))]

		if amount > ceiling {
			slog.Debug("skipped expense over local ceiling",
				"amount", amount, "remaining", ceiling)
			res.Skipped++
			g.step()
			continue
		}

		_, err := g.ledger.AddTransaction(ctx, amount, date, category, description, model.TypeExpense)
		if common.IsOverBudget(err) {
			slog.Debug("skipped expense rejected by balance guard", "amount", amount)
			res.Skipped++
			g.step()
			continue
		}
		if err != nil {
			return res, fmt.Errorf("failed to generate expense: %w", err)
		}
		ceiling -= amount
		res.ExpensesAdded++
		g.step()
	}

	slog.Info("seed run complete",
		"income", res.IncomeAdded,
		"expenses", res.ExpensesAdded,
		"skipped", res.Skipped)
	return res, nil
}

func (g *Generator) randAmount(minVal, maxVal float64) float64 {
	v := minVal + g.rng.Float64()*(maxVal-minVal)
	return math.Round(v*100) / 100
}

func (g *Generator) randDate(start time.Time) string {
	return start.AddDate(0, 0, g.rng.Intn(366)).Format(model.DateLayout)
}

func (g *Generator) step() {
	if g.Progress != nil {
		g.Progress()
	}
}
