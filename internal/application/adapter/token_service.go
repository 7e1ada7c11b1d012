// Package adapter defines interfaces for external dependencies (repositories, services).
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenClaims represents the resolved identity carried by a bearer token.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// TokenService defines the interface for bearer token operations. Validation
// failures are reported uniformly regardless of the underlying cause
// (malformed, expired, unknown subject) to avoid information leakage.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for the user.
	GenerateAccessToken(ctx context.Context, userID uuid.UUID, email string) (string, error)

	// ValidateAccessToken validates a token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}

// ResetTokenService defines the interface for single-use password reset tokens.
type ResetTokenService interface {
	// Generate creates and stores a reset token for the user.
	Generate(ctx context.Context, userID uuid.UUID, email string) (string, error)

	// Consume validates a reset token, marks it used, and returns the user
	// id it was issued for. Returns domain ErrInvalidResetToken when the
	// token is unknown, already used or expired.
	Consume(ctx context.Context, token string) (uuid.UUID, error)
}
