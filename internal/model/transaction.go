// Package model defines the core domain types for the finance ledger.
package model

import "time"

// DateLayout is the wire and storage format for transaction dates.
const DateLayout = "2006-01-02"

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

// Valid transaction types.
const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Valid reports whether the type is one of the known values.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction represents a single ledger entry. A transaction always
// belongs to exactly one category; the joined category name is carried
// alongside the id for display and filtering.
type Transaction struct {
	Date         time.Time
	CategoryName string
	Description  string
	Type         TransactionType
	ID           int64
	CategoryID   int64
	Amount       float64
}

// DateString returns the date in YYYY-MM-DD form as it is persisted.
func (t Transaction) DateString() string {
	return t.Date.Format(DateLayout)
}
