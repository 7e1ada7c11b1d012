// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/snehithlal/money-manager/internal/application/adapter"
	"github.com/snehithlal/money-manager/internal/integration/persistence"
)

// resetTokenTTL is how long a password reset token stays valid.
const resetTokenTTL = 1 * time.Hour

// resetTokenService implements the adapter.ResetTokenService interface with
// random opaque tokens stored in the database.
type resetTokenService struct {
	tokenRepository persistence.TokenRepository
}

// NewResetTokenService creates a new reset token service instance.
func NewResetTokenService(tokenRepository persistence.TokenRepository) adapter.ResetTokenService {
	return &resetTokenService{
		tokenRepository: tokenRepository,
	}
}

// Generate creates and stores a reset token for the user.
func (s *resetTokenService) Generate(ctx context.Context, userID uuid.UUID, email string) (string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}
	token := hex.EncodeToString(tokenBytes)

	expiresAt := time.Now().UTC().Add(resetTokenTTL)
	if err := s.tokenRepository.SaveResetToken(ctx, token, userID, email, expiresAt); err != nil {
		return "", fmt.Errorf("failed to save reset token: %w", err)
	}
	return token, nil
}

// Consume validates a reset token, marks it used, and returns the user id it
// was issued for.
func (s *resetTokenService) Consume(ctx context.Context, token string) (uuid.UUID, error) {
	return s.tokenRepository.ConsumeResetToken(ctx, token)
}
