package model

// Category is a named grouping for transactions (e.g. "Rent", "Salary").
// Names are case-sensitive and globally unique; categories are created
// implicitly the first time a transaction references them.
type Category struct {
	Name string
	ID   int64
}
