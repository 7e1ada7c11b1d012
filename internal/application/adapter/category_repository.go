// Package adapter defines interfaces for external dependencies (repositories, services).
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/snehithlal/money-manager/internal/domain/entity"
)

// CategoryFilter narrows a category listing. The owner is not part of the
// filter: it is a mandatory parameter on every repository method, so no call
// can forget it.
type CategoryFilter struct {
	Type  *entity.CategoryType
	Skip  int
	Limit int
}

// CategoryRepository defines the interface for category data operations.
// Every method is scoped to an owner; there is no unscoped accessor.
type CategoryRepository interface {
	// Create persists a new category stamped with its owner.
	Create(ctx context.Context, category *entity.Category) error

	// FindByIDAndUser retrieves a category by id for the given owner. It
	// returns domain ErrCategoryNotFound both when the row is absent and
	// when it belongs to another user.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Category, error)

	// FindByUser retrieves the owner's categories matching the filter, in
	// insertion order.
	FindByUser(ctx context.Context, userID uuid.UUID, filter CategoryFilter) ([]*entity.Category, error)

	// Update persists changes to a category. The owner predicate is part of
	// the update statement; a mismatch yields domain ErrCategoryNotFound.
	Update(ctx context.Context, category *entity.Category) error

	// DeleteWithTransactions removes the category and every transaction
	// referencing it, atomically. Returns domain ErrCategoryNotFound when no
	// row matches (id, owner).
	DeleteWithTransactions(ctx context.Context, id, userID uuid.UUID) error
}
