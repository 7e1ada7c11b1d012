// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthlySummary holds the aggregated totals for one calendar month, scoped
// to a single user. It is derived on demand and never persisted. A month with
// no transactions yields an all-zero summary, not an error.
type MonthlySummary struct {
	Month        string // "YYYY-MM", zero-padded
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal
}

// CategorySummary holds aggregated totals for one category, scoped to a
// single user. Only categories with at least one matching transaction produce
// an entry (inner-join semantics).
type CategorySummary struct {
	CategoryID       uuid.UUID
	CategoryName     string
	Color            string
	Icon             string
	TotalAmount      decimal.Decimal
	TransactionCount int
}
