// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/snehithlal/money-manager/internal/domain/entity"
)

// MonthlySummaryResponse represents the monthly summary in API responses.
type MonthlySummaryResponse struct {
	Month        string          `json:"month"`
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Balance      decimal.Decimal `json:"balance"`
}

// CategorySummaryResponse represents one category's totals in API responses.
type CategorySummaryResponse struct {
	CategoryID       string          `json:"category_id"`
	CategoryName     string          `json:"category_name"`
	Color            string          `json:"color"`
	Icon             string          `json:"icon"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	TransactionCount int             `json:"transaction_count"`
}

// CategorySummaryListResponse represents the response for the category summary.
type CategorySummaryListResponse struct {
	Categories []CategorySummaryResponse `json:"categories"`
}

// ToMonthlySummaryResponse converts a MonthlySummary to its response DTO.
func ToMonthlySummaryResponse(summary *entity.MonthlySummary) MonthlySummaryResponse {
	return MonthlySummaryResponse{
		Month:        summary.Month,
		TotalIncome:  summary.TotalIncome,
		TotalExpense: summary.TotalExpense,
		Balance:      summary.Balance,
	}
}

// ToCategorySummaryListResponse converts category summaries to the response DTO.
func ToCategorySummaryListResponse(summaries []*entity.CategorySummary) CategorySummaryListResponse {
	responses := make([]CategorySummaryResponse, len(summaries))
	for i, s := range summaries {
		responses[i] = CategorySummaryResponse{
			CategoryID:       s.CategoryID.String(),
			CategoryName:     s.CategoryName,
			Color:            s.Color,
			Icon:             s.Icon,
			TotalAmount:      s.TotalAmount,
			TransactionCount: s.TransactionCount,
		}
	}
	return CategorySummaryListResponse{
		Categories: responses,
	}
}
