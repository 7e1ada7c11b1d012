package adapters

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	domainerror "github.com/snehithlal/money-manager/internal/domain/error"
)

func TestTokenService(t *testing.T) {
	ctx := context.Background()
	svc := NewTokenService("test-secret", time.Hour)
	userID := uuid.New()

	t.Run("round trip", func(t *testing.T) {
		token, err := svc.GenerateAccessToken(ctx, userID, "alice@example.com")
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}

		claims, err := svc.ValidateAccessToken(ctx, token)
		if err != nil {
			t.Fatalf("validate failed: %v", err)
		}
		if claims.UserID != userID {
			t.Errorf("user id = %s, want %s", claims.UserID, userID)
		}
		if claims.Email != "alice@example.com" {
			t.Errorf("email = %s", claims.Email)
		}
		if claims.ExpiresAt.Before(time.Now().Add(30 * time.Minute)) {
			t.Errorf("expiry %s too soon", claims.ExpiresAt)
		}
	})

	t.Run("garbage, forged and expired tokens fail the same way", func(t *testing.T) {
		otherSecret := NewTokenService("other-secret", time.Hour)
		forged, err := otherSecret.GenerateAccessToken(ctx, userID, "alice@example.com")
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}

		expiredSvc := NewTokenService("test-secret", -time.Minute)
		expired, err := expiredSvc.GenerateAccessToken(ctx, userID, "alice@example.com")
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}

		for name, token := range map[string]string{
			"garbage": "not.a.token",
			"empty":   "",
			"forged":  forged,
			"expired": expired,
		} {
			_, err := svc.ValidateAccessToken(ctx, token)
			if !errors.Is(err, domainerror.ErrInvalidToken) {
				t.Errorf("%s: err = %v, want ErrInvalidToken", name, err)
			}
		}
	})
}

func TestPasswordService(t *testing.T) {
	svc := NewPasswordService()

	t.Run("hash and verify", func(t *testing.T) {
		hash, err := svc.HashPassword("correct-horse-battery")
		if err != nil {
			t.Fatalf("hash failed: %v", err)
		}
		if hash == "correct-horse-battery" {
			t.Fatal("password stored in plain text")
		}
		if err := svc.VerifyPassword(hash, "correct-horse-battery"); err != nil {
			t.Errorf("verify failed: %v", err)
		}
		if err := svc.VerifyPassword(hash, "wrong-password"); err == nil {
			t.Error("wrong password verified")
		}
	})

	t.Run("strength check", func(t *testing.T) {
		if err := svc.ValidatePasswordStrength("short"); !errors.Is(err, domainerror.ErrWeakPassword) {
			t.Errorf("err = %v, want ErrWeakPassword", err)
		}
		if err := svc.ValidatePasswordStrength("eightchr"); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
