package model

// Summary holds the derived totals over the current transaction set.
// It is recomputed on demand and never cached.
type Summary struct {
	TotalIncome  float64
	TotalExpense float64
	NetSavings   float64
}

// CategoryTotals holds per-category sums with income and expense kept
// separate, so a salary category never inflates a spending breakdown.
type CategoryTotals struct {
	Income  float64
	Expense float64
}
