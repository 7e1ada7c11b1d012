// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domainerror "github.com/snehithlal/money-manager/internal/domain/error"
	"github.com/snehithlal/money-manager/internal/integration/persistence/model"
)

// TokenRepository defines the interface for password reset token persistence.
type TokenRepository interface {
	// SaveResetToken stores a new reset token.
	SaveResetToken(ctx context.Context, token string, userID uuid.UUID, email string, expiresAt time.Time) error

	// ConsumeResetToken marks a valid token as used and returns the user it
	// was issued for. Unknown, used and expired tokens all return domain
	// ErrInvalidResetToken.
	ConsumeResetToken(ctx context.Context, token string) (uuid.UUID, error)
}

// tokenRepository implements the TokenRepository interface.
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new token repository instance.
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{
		db: db,
	}
}

// SaveResetToken stores a new reset token.
func (r *tokenRepository) SaveResetToken(ctx context.Context, token string, userID uuid.UUID, email string, expiresAt time.Time) error {
	resetToken := &model.PasswordResetTokenModel{
		ID:        uuid.New(),
		Token:     token,
		UserID:    userID,
		Email:     email,
		Used:      false,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
	return r.db.WithContext(ctx).Create(resetToken).Error
}

// ConsumeResetToken marks a valid token as used and returns the user it was
// issued for. Lookup and invalidation run in one transaction so the token is
// single use even under concurrent resets.
func (r *tokenRepository) ConsumeResetToken(ctx context.Context, token string) (uuid.UUID, error) {
	var userID uuid.UUID
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var resetToken model.PasswordResetTokenModel
		result := tx.
			Where("token = ? AND used = ? AND expires_at > ?", token, false, time.Now().UTC()).
			First(&resetToken)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return domainerror.ErrInvalidResetToken
			}
			return result.Error
		}

		now := time.Now().UTC()
		update := tx.
			Model(&model.PasswordResetTokenModel{}).
			Where("id = ? AND used = ?", resetToken.ID, false).
			Updates(map[string]any{
				"used":    true,
				"used_at": &now,
			})
		if update.Error != nil {
			return update.Error
		}
		if update.RowsAffected == 0 {
			return domainerror.ErrInvalidResetToken
		}

		userID = resetToken.UserID
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return userID, nil
}
