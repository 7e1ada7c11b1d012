package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/snehithlal/money-manager/internal/domain/entity"
	domainerror "github.com/snehithlal/money-manager/internal/domain/error"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create and find", func(t *testing.T) {
		repo := NewUserRepository(newTestDB(t))
		user := entity.NewUser("alice@example.com", "hash")

		if err := repo.Create(ctx, user); err != nil {
			t.Fatalf("create failed: %v", err)
		}

		byEmail, err := repo.FindByEmail(ctx, "alice@example.com")
		if err != nil {
			t.Fatalf("find by email failed: %v", err)
		}
		if byEmail.ID != user.ID {
			t.Errorf("id = %s, want %s", byEmail.ID, user.ID)
		}

		byID, err := repo.FindByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("find by id failed: %v", err)
		}
		if byID.Email != "alice@example.com" {
			t.Errorf("email = %s", byID.Email)
		}
	})

	t.Run("duplicate email is rejected by the constraint", func(t *testing.T) {
		repo := NewUserRepository(newTestDB(t))

		if err := repo.Create(ctx, entity.NewUser("alice@example.com", "hash")); err != nil {
			t.Fatalf("first create failed: %v", err)
		}
		err := repo.Create(ctx, entity.NewUser("alice@example.com", "other-hash"))
		if !errors.Is(err, domainerror.ErrEmailAlreadyExists) {
			t.Errorf("err = %v, want ErrEmailAlreadyExists", err)
		}
	})

	t.Run("unknown lookups return not found", func(t *testing.T) {
		repo := NewUserRepository(newTestDB(t))

		if _, err := repo.FindByEmail(ctx, "nobody@example.com"); !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Errorf("find by email: err = %v, want ErrUserNotFound", err)
		}
		if _, err := repo.FindByID(ctx, uuid.New()); !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Errorf("find by id: err = %v, want ErrUserNotFound", err)
		}
	})

	t.Run("update password hash", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewUserRepository(db)
		user := seedUser(t, db, "alice@example.com")

		if err := repo.UpdatePasswordHash(ctx, user.ID, "new-hash"); err != nil {
			t.Fatalf("update failed: %v", err)
		}

		updated, err := repo.FindByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("find failed: %v", err)
		}
		if updated.PasswordHash != "new-hash" {
			t.Errorf("hash = %s, want new-hash", updated.PasswordHash)
		}

		if err := repo.UpdatePasswordHash(ctx, uuid.New(), "x"); !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Errorf("unknown user: err = %v, want ErrUserNotFound", err)
		}
	})
}
