// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryType represents the type of category (expense or income).
type CategoryType string

const (
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeIncome  CategoryType = "income"
)

// DefaultCategoryColor is the default hex color for categories.
const DefaultCategoryColor = "#6366f1"

// DefaultCategoryIcon is the default icon for categories.
const DefaultCategoryIcon = "💰"

// Category groups transactions under a user-defined label. Every category
// belongs to exactly one user; deleting a category deletes the transactions
// that reference it.
type Category struct {
	ID        uuid.UUID
	Name      string
	Type      CategoryType
	Color     string
	Icon      string
	UserID    uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category entity.
// Defaulting of color and icon is applied in the application layer (use case)
// before calling this constructor.
func NewCategory(name, color, icon string, categoryType CategoryType, userID uuid.UUID) *Category {
	now := time.Now().UTC()
	return &Category{
		ID:        uuid.New(),
		Name:      name,
		Type:      categoryType,
		Color:     color,
		Icon:      icon,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
