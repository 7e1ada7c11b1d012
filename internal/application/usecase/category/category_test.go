package category

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/snehithlal/money-manager/internal/application/adapter"
	"github.com/snehithlal/money-manager/internal/domain/entity"
	domainerror "github.com/snehithlal/money-manager/internal/domain/error"
)

type fakeCategoryRepository struct {
	categories map[uuid.UUID]*entity.Category
	deleted    []uuid.UUID
	lastFilter adapter.CategoryFilter
	createErr  error
}

func newFakeCategoryRepository() *fakeCategoryRepository {
	return &fakeCategoryRepository{categories: map[uuid.UUID]*entity.Category{}}
}

func (r *fakeCategoryRepository) Create(_ context.Context, category *entity.Category) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepository) FindByIDAndUser(_ context.Context, id, userID uuid.UUID) (*entity.Category, error) {
	category, ok := r.categories[id]
	if !ok || category.UserID != userID {
		return nil, domainerror.ErrCategoryNotFound
	}
	return category, nil
}

func (r *fakeCategoryRepository) FindByUser(_ context.Context, userID uuid.UUID, filter adapter.CategoryFilter) ([]*entity.Category, error) {
	r.lastFilter = filter
	var result []*entity.Category
	for _, category := range r.categories {
		if category.UserID != userID {
			continue
		}
		if filter.Type != nil && category.Type != *filter.Type {
			continue
		}
		result = append(result, category)
	}
	return result, nil
}

func (r *fakeCategoryRepository) Update(_ context.Context, category *entity.Category) error {
	existing, ok := r.categories[category.ID]
	if !ok || existing.UserID != category.UserID {
		return domainerror.ErrCategoryNotFound
	}
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepository) DeleteWithTransactions(_ context.Context, id, userID uuid.UUID) error {
	existing, ok := r.categories[id]
	if !ok || existing.UserID != userID {
		return domainerror.ErrCategoryNotFound
	}
	delete(r.categories, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func categoryErrorCode(t *testing.T, err error) domainerror.CategoryErrorCode {
	t.Helper()
	var catErr *domainerror.CategoryError
	if !errors.As(err, &catErr) {
		t.Fatalf("expected CategoryError, got %T: %v", err, err)
	}
	return catErr.Code
}

func TestCreateCategoryUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("applies defaults for optional fields", func(t *testing.T) {
		repo := newFakeCategoryRepository()
		uc := NewCreateCategoryUseCase(repo)

		out, err := uc.Execute(ctx, CreateCategoryInput{
			Name:   "Groceries",
			Type:   entity.CategoryTypeExpense,
			UserID: userID,
		})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if out.Category.Color != entity.DefaultCategoryColor {
			t.Errorf("color = %s, want default", out.Category.Color)
		}
		if out.Category.Icon != entity.DefaultCategoryIcon {
			t.Errorf("icon = %s, want default", out.Category.Icon)
		}
		if _, ok := repo.categories[out.Category.ID]; !ok {
			t.Error("category was not persisted")
		}
	})

	t.Run("keeps explicit color and icon", func(t *testing.T) {
		uc := NewCreateCategoryUseCase(newFakeCategoryRepository())

		out, err := uc.Execute(ctx, CreateCategoryInput{
			Name:   "Groceries",
			Type:   entity.CategoryTypeExpense,
			Color:  "#FF5733",
			Icon:   "cart",
			UserID: userID,
		})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if out.Category.Color != "#FF5733" || out.Category.Icon != "cart" {
			t.Errorf("got %s/%s", out.Category.Color, out.Category.Icon)
		}
	})

	t.Run("validation rejections", func(t *testing.T) {
		uc := NewCreateCategoryUseCase(newFakeCategoryRepository())

		tests := []struct {
			name  string
			input CreateCategoryInput
			code  domainerror.CategoryErrorCode
		}{
			{
				name:  "empty name",
				input: CreateCategoryInput{Type: entity.CategoryTypeExpense, UserID: userID},
				code:  domainerror.ErrCodeCategoryNameEmpty,
			},
			{
				name:  "name over 50 characters",
				input: CreateCategoryInput{Name: strings.Repeat("x", 51), Type: entity.CategoryTypeExpense, UserID: userID},
				code:  domainerror.ErrCodeCategoryNameTooLong,
			},
			{
				name:  "color without hash",
				input: CreateCategoryInput{Name: "Groceries", Type: entity.CategoryTypeExpense, Color: "FF5733", UserID: userID},
				code:  domainerror.ErrCodeInvalidColorFormat,
			},
			{
				name:  "color with three digits",
				input: CreateCategoryInput{Name: "Groceries", Type: entity.CategoryTypeExpense, Color: "#F53", UserID: userID},
				code:  domainerror.ErrCodeInvalidColorFormat,
			},
			{
				name:  "icon over 10 characters",
				input: CreateCategoryInput{Name: "Groceries", Type: entity.CategoryTypeExpense, Icon: strings.Repeat("a", 11), UserID: userID},
				code:  domainerror.ErrCodeIconTooLong,
			},
			{
				name:  "unknown type",
				input: CreateCategoryInput{Name: "Groceries", Type: "transfer", UserID: userID},
				code:  domainerror.ErrCodeInvalidCategoryType,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := uc.Execute(ctx, tt.input)
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if code := categoryErrorCode(t, err); code != tt.code {
					t.Errorf("code = %s, want %s", code, tt.code)
				}
			})
		}
	})

	t.Run("multi byte icon counts characters not bytes", func(t *testing.T) {
		uc := NewCreateCategoryUseCase(newFakeCategoryRepository())

		_, err := uc.Execute(ctx, CreateCategoryInput{
			Name:   "Groceries",
			Type:   entity.CategoryTypeExpense,
			Icon:   "💰💰💰💰",
			UserID: userID,
		})
		if err != nil {
			t.Fatalf("emoji icon rejected: %v", err)
		}
	})
}

func TestGetCategoryUseCase(t *testing.T) {
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	repo := newFakeCategoryRepository()
	groceries := entity.NewCategory("Groceries", entity.DefaultCategoryColor, entity.DefaultCategoryIcon, entity.CategoryTypeExpense, alice)
	repo.categories[groceries.ID] = groceries
	uc := NewGetCategoryUseCase(repo)

	t.Run("owner can fetch", func(t *testing.T) {
		out, err := uc.Execute(ctx, GetCategoryInput{CategoryID: groceries.ID, UserID: alice})
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if out.Category.Name != "Groceries" {
			t.Errorf("name = %s", out.Category.Name)
		}
	})

	t.Run("foreign category reads as not found", func(t *testing.T) {
		_, err := uc.Execute(ctx, GetCategoryInput{CategoryID: groceries.ID, UserID: bob})
		if !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Errorf("err = %v, want ErrCategoryNotFound", err)
		}
	})
}

func TestListCategoriesUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("clamps pagination before hitting the repository", func(t *testing.T) {
		repo := newFakeCategoryRepository()
		uc := NewListCategoriesUseCase(repo)

		if _, err := uc.Execute(ctx, ListCategoriesInput{UserID: userID, Skip: -5, Limit: 0}); err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if repo.lastFilter.Skip != 0 || repo.lastFilter.Limit != DefaultListLimit {
			t.Errorf("filter = %+v, want skip 0 limit %d", repo.lastFilter, DefaultListLimit)
		}

		if _, err := uc.Execute(ctx, ListCategoriesInput{UserID: userID, Limit: 5000}); err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if repo.lastFilter.Limit != MaxListLimit {
			t.Errorf("limit = %d, want %d", repo.lastFilter.Limit, MaxListLimit)
		}
	})

	t.Run("passes the type filter through", func(t *testing.T) {
		repo := newFakeCategoryRepository()
		uc := NewListCategoriesUseCase(repo)

		expense := entity.CategoryTypeExpense
		if _, err := uc.Execute(ctx, ListCategoriesInput{UserID: userID, Type: &expense}); err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if repo.lastFilter.Type == nil || *repo.lastFilter.Type != expense {
			t.Errorf("type filter not forwarded: %+v", repo.lastFilter)
		}
	})
}

func TestUpdateCategoryUseCase(t *testing.T) {
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	newRepo := func() (*fakeCategoryRepository, *entity.Category) {
		repo := newFakeCategoryRepository()
		groceries := entity.NewCategory("Groceries", "#112233", "cart", entity.CategoryTypeExpense, alice)
		repo.categories[groceries.ID] = groceries
		return repo, groceries
	}

	t.Run("applies only the present fields", func(t *testing.T) {
		repo, groceries := newRepo()
		uc := NewUpdateCategoryUseCase(repo)

		name := "Food"
		out, err := uc.Execute(ctx, UpdateCategoryInput{
			CategoryID: groceries.ID,
			UserID:     alice,
			Name:       &name,
		})
		if err != nil {
			t.Fatalf("update failed: %v", err)
		}
		if out.Category.Name != "Food" {
			t.Errorf("name = %s, want Food", out.Category.Name)
		}
		if out.Category.Color != "#112233" || out.Category.Icon != "cart" {
			t.Errorf("absent fields were modified: %+v", out.Category)
		}
	})

	t.Run("validates every field before applying any", func(t *testing.T) {
		repo, groceries := newRepo()
		uc := NewUpdateCategoryUseCase(repo)

		name := "Food"
		badColor := "not-a-color"
		_, err := uc.Execute(ctx, UpdateCategoryInput{
			CategoryID: groceries.ID,
			UserID:     alice,
			Name:       &name,
			Color:      &badColor,
		})
		if code := categoryErrorCode(t, err); code != domainerror.ErrCodeInvalidColorFormat {
			t.Fatalf("code = %s, want %s", code, domainerror.ErrCodeInvalidColorFormat)
		}
		if repo.categories[groceries.ID].Name != "Groceries" {
			t.Error("failed update modified the stored record")
		}
	})

	t.Run("foreign category reads as not found", func(t *testing.T) {
		repo, groceries := newRepo()
		uc := NewUpdateCategoryUseCase(repo)

		name := "Food"
		_, err := uc.Execute(ctx, UpdateCategoryInput{
			CategoryID: groceries.ID,
			UserID:     bob,
			Name:       &name,
		})
		if !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Errorf("err = %v, want ErrCategoryNotFound", err)
		}
	})
}

func TestDeleteCategoryUseCase(t *testing.T) {
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	t.Run("returns the deleted record", func(t *testing.T) {
		repo := newFakeCategoryRepository()
		groceries := entity.NewCategory("Groceries", entity.DefaultCategoryColor, entity.DefaultCategoryIcon, entity.CategoryTypeExpense, alice)
		repo.categories[groceries.ID] = groceries
		uc := NewDeleteCategoryUseCase(repo)

		out, err := uc.Execute(ctx, DeleteCategoryInput{CategoryID: groceries.ID, UserID: alice})
		if err != nil {
			t.Fatalf("delete failed: %v", err)
		}
		if out.Category.Name != "Groceries" {
			t.Errorf("name = %s, want Groceries", out.Category.Name)
		}
		if len(repo.deleted) != 1 || repo.deleted[0] != groceries.ID {
			t.Errorf("cascade delete not invoked: %v", repo.deleted)
		}
	})

	t.Run("foreign category reads as not found and survives", func(t *testing.T) {
		repo := newFakeCategoryRepository()
		groceries := entity.NewCategory("Groceries", entity.DefaultCategoryColor, entity.DefaultCategoryIcon, entity.CategoryTypeExpense, alice)
		repo.categories[groceries.ID] = groceries
		uc := NewDeleteCategoryUseCase(repo)

		_, err := uc.Execute(ctx, DeleteCategoryInput{CategoryID: groceries.ID, UserID: bob})
		if !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Errorf("err = %v, want ErrCategoryNotFound", err)
		}
		if _, ok := repo.categories[groceries.ID]; !ok {
			t.Error("foreign delete removed the category")
		}
	})
}
