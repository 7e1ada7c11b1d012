// Package adapter defines interfaces for external dependencies (repositories, services).
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/snehithlal/money-manager/internal/domain/entity"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	// Create persists a new user. Returns domain ErrEmailAlreadyExists when
	// the email is already taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user by email. Returns domain ErrUserNotFound
	// when no user matches.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user by id. Returns domain ErrUserNotFound when
	// no user matches.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// UpdatePasswordHash replaces the stored password hash for the user.
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error
}
