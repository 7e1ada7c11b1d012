// Package analytics contains the aggregation use cases: monthly and
// per-category summaries derived on demand from a user's transactions.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/snehithlal/money-manager/internal/domain/entity"
	domainerror "github.com/snehithlal/money-manager/internal/domain/error"
)

const (
	// MinSummaryYear bounds the accepted year range.
	MinSummaryYear = 1900
	// MaxSummaryYear bounds the accepted year range.
	MaxSummaryYear = 2200
)

// MonthlySummaryInput represents the input for a monthly summary.
type MonthlySummaryInput struct {
	UserID uuid.UUID
	Year   int
	Month  int
}

// MonthlySummaryOutput represents the output of a monthly summary.
type MonthlySummaryOutput struct {
	Summary *entity.MonthlySummary
}

// MonthlySummaryUseCase computes income, expense and balance totals for one
// calendar month.
type MonthlySummaryUseCase struct {
	analyticsRepo AnalyticsRepository
}

// NewMonthlySummaryUseCase creates a new MonthlySummaryUseCase instance.
func NewMonthlySummaryUseCase(analyticsRepo AnalyticsRepository) *MonthlySummaryUseCase {
	return &MonthlySummaryUseCase{
		analyticsRepo: analyticsRepo,
	}
}

// MonthRange returns the first and last day of the given calendar month in
// UTC. time.Date normalizes day zero of the next month to the last day of
// this one, which handles month lengths and leap years.
func MonthRange(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
	return start, end
}

// Execute computes the monthly summary. Months with no transactions yield
// zero totals rather than an error.
func (uc *MonthlySummaryUseCase) Execute(ctx context.Context, input MonthlySummaryInput) (*MonthlySummaryOutput, error) {
	if input.Month < 1 || input.Month > 12 {
		return nil, domainerror.NewAnalyticsError(
			domainerror.ErrCodeInvalidMonth,
			"month must be between 1 and 12",
			domainerror.ErrInvalidMonth,
		)
	}
	if input.Year < MinSummaryYear || input.Year > MaxSummaryYear {
		return nil, domainerror.NewAnalyticsError(
			domainerror.ErrCodeInvalidYear,
			fmt.Sprintf("year must be between %d and %d", MinSummaryYear, MaxSummaryYear),
			domainerror.ErrInvalidYear,
		)
	}

	start, end := MonthRange(input.Year, input.Month)

	totals, err := uc.analyticsRepo.SumAmountsByType(ctx, input.UserID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to sum transactions: %w", err)
	}

	income := decimal.Zero
	expense := decimal.Zero
	for _, t := range totals {
		switch t.Type {
		case entity.TransactionTypeIncome:
			income = t.Total
		case entity.TransactionTypeExpense:
			expense = t.Total
		}
	}

	return &MonthlySummaryOutput{
		Summary: &entity.MonthlySummary{
			Month:        fmt.Sprintf("%04d-%02d", input.Year, input.Month),
			TotalIncome:  income,
			TotalExpense: expense,
			Balance:      income.Sub(expense),
		},
	}, nil
}
