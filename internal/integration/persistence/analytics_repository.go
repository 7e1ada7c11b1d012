// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/snehithlal/money-manager/internal/application/usecase/analytics"
	"github.com/snehithlal/money-manager/internal/domain/entity"
)

// analyticsRepository implements the analytics.AnalyticsRepository interface.
type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository instance.
func NewAnalyticsRepository(db *gorm.DB) analytics.AnalyticsRepository {
	return &analyticsRepository{
		db: db,
	}
}

// SumAmountsByType sums transaction amounts per type for the owner within the
// inclusive date range.
func (r *analyticsRepository) SumAmountsByType(
	ctx context.Context,
	userID uuid.UUID,
	start, end time.Time,
) ([]analytics.TypeTotal, error) {
	var results []struct {
		Type  string          `gorm:"column:type"`
		Total decimal.Decimal `gorm:"column:total"`
	}

	err := r.db.WithContext(ctx).
		Table("transactions").
		Select("type, SUM(amount) as total").
		Where("user_id = ?", userID).
		Where("date >= ? AND date <= ?", start, end).
		Group("type").
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum amounts by type: %w", err)
	}

	totals := make([]analytics.TypeTotal, len(results))
	for i, res := range results {
		totals[i] = analytics.TypeTotal{
			Type:  entity.TransactionType(res.Type),
			Total: res.Total,
		}
	}
	return totals, nil
}

// CategoryTotals aggregates the owner's transactions per category. The inner
// join drops categories without matching transactions.
func (r *analyticsRepository) CategoryTotals(
	ctx context.Context,
	userID uuid.UUID,
	typeFilter *entity.TransactionType,
) ([]analytics.RawCategoryTotal, error) {
	var results []struct {
		CategoryID       uuid.UUID       `gorm:"column:category_id"`
		CategoryName     string          `gorm:"column:category_name"`
		Color            string          `gorm:"column:color"`
		Icon             string          `gorm:"column:icon"`
		TotalAmount      decimal.Decimal `gorm:"column:total_amount"`
		TransactionCount int             `gorm:"column:transaction_count"`
	}

	query := r.db.WithContext(ctx).
		Table("categories").
		Select(`categories.id as category_id,
			categories.name as category_name,
			categories.color as color,
			categories.icon as icon,
			SUM(transactions.amount) as total_amount,
			COUNT(transactions.id) as transaction_count`).
		Joins("INNER JOIN transactions ON transactions.category_id = categories.id").
		Where("categories.user_id = ?", userID).
		Group("categories.id, categories.name, categories.color, categories.icon")

	if typeFilter != nil {
		query = query.Where("transactions.type = ?", string(*typeFilter))
	}

	if err := query.Scan(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate category totals: %w", err)
	}

	totals := make([]analytics.RawCategoryTotal, len(results))
	for i, res := range results {
		totals[i] = analytics.RawCategoryTotal{
			CategoryID:       res.CategoryID,
			CategoryName:     res.CategoryName,
			Color:            res.Color,
			Icon:             res.Icon,
			TotalAmount:      res.TotalAmount,
			TransactionCount: res.TransactionCount,
		}
	}
	return totals, nil
}
