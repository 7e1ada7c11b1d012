// Package adapter defines interfaces for external dependencies (repositories, services).
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/snehithlal/money-manager/internal/domain/entity"
)

// TransactionFilter narrows a transaction listing. The owner is a mandatory
// method parameter, never part of the optional filter.
type TransactionFilter struct {
	Type       *entity.TransactionType
	CategoryID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	Skip       int
	Limit      int
}

// TransactionRepository defines the interface for transaction data operations.
// Every method is scoped to an owner; there is no unscoped accessor.
type TransactionRepository interface {
	// Create persists a new transaction stamped with its owner.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByIDAndUser retrieves a transaction with its category by id for
	// the given owner. It returns domain ErrTransactionNotFound both when
	// the row is absent and when it belongs to another user.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.TransactionWithCategory, error)

	// FindByUser retrieves the owner's transactions matching the filter,
	// newest date first.
	FindByUser(ctx context.Context, userID uuid.UUID, filter TransactionFilter) ([]*entity.TransactionWithCategory, error)

	// Update persists changes to a transaction. The owner predicate is part
	// of the update statement; a mismatch yields domain ErrTransactionNotFound.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes the transaction. Returns domain ErrTransactionNotFound
	// when no row matches (id, owner).
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
