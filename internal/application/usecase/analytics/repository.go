// Package analytics contains the aggregation use cases: monthly and
// per-category summaries derived on demand from a user's transactions.
package analytics

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/snehithlal/money-manager/internal/domain/entity"
)

// AnalyticsRepository defines the interface for aggregate queries. Both
// methods are owner-scoped; rows from other users never appear.
type AnalyticsRepository interface {
	// SumAmountsByType sums transaction amounts per type for the owner
	// within the inclusive date range. Types with no transactions produce no
	// row; the caller zero-fills.
	SumAmountsByType(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]TypeTotal, error)

	// CategoryTotals returns one row per category of the owner that has at
	// least one transaction matching the optional type filter (inner-join
	// semantics). The filter applies to the transactions, not the category.
	CategoryTotals(ctx context.Context, userID uuid.UUID, typeFilter *entity.TransactionType) ([]RawCategoryTotal, error)
}

// TypeTotal represents the summed amount of one transaction type.
type TypeTotal struct {
	Type  entity.TransactionType
	Total decimal.Decimal
}

// RawCategoryTotal represents raw per-category aggregates from the database.
type RawCategoryTotal struct {
	CategoryID       uuid.UUID
	CategoryName     string
	Color            string
	Icon             string
	TotalAmount      decimal.Decimal
	TransactionCount int
}
