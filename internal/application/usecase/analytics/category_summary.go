package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/snehithlal/money-manager/internal/domain/entity"
	domainerror "github.com/snehithlal/money-manager/internal/domain/error"
)

// CategorySummaryInput represents the input for a per-category summary. Type
// is optional; when set it restricts which transactions are aggregated.
type CategorySummaryInput struct {
	UserID uuid.UUID
	Type   *entity.TransactionType
}

// CategorySummaryOutput represents the output of a per-category summary.
type CategorySummaryOutput struct {
	Summaries []*entity.CategorySummary
}

// CategorySummaryUseCase computes per-category transaction totals. Categories
// without matching transactions are omitted.
type CategorySummaryUseCase struct {
	analyticsRepo AnalyticsRepository
}

// NewCategorySummaryUseCase creates a new CategorySummaryUseCase instance.
func NewCategorySummaryUseCase(analyticsRepo AnalyticsRepository) *CategorySummaryUseCase {
	return &CategorySummaryUseCase{
		analyticsRepo: analyticsRepo,
	}
}

// Execute computes the category summary, largest total first. Ties are broken
// by category id so the order is deterministic.
func (uc *CategorySummaryUseCase) Execute(ctx context.Context, input CategorySummaryInput) (*CategorySummaryOutput, error) {
	if input.Type != nil && *input.Type != entity.TransactionTypeExpense && *input.Type != entity.TransactionTypeIncome {
		return nil, domainerror.NewAnalyticsError(
			domainerror.ErrCodeInvalidSummaryType,
			"type must be 'expense' or 'income'",
			domainerror.ErrInvalidSummaryType,
		)
	}

	rows, err := uc.analyticsRepo.CategoryTotals(ctx, input.UserID, input.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate categories: %w", err)
	}

	summaries := make([]*entity.CategorySummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, &entity.CategorySummary{
			CategoryID:       row.CategoryID,
			CategoryName:     row.CategoryName,
			Color:            row.Color,
			Icon:             row.Icon,
			TotalAmount:      row.TotalAmount,
			TransactionCount: row.TransactionCount,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		cmp := summaries[i].TotalAmount.Cmp(summaries[j].TotalAmount)
		if cmp != 0 {
			return cmp > 0
		}
		return summaries[i].CategoryID.String() < summaries[j].CategoryID.String()
	})

	return &CategorySummaryOutput{
		Summaries: summaries,
	}, nil
}
