package transaction

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/snehithlal/money-manager/internal/application/adapter"
	"github.com/snehithlal/money-manager/internal/domain/entity"
	domainerror "github.com/snehithlal/money-manager/internal/domain/error"
)

type fakeTransactionRepository struct {
	transactions map[uuid.UUID]*entity.Transaction
	categories   *fakeCategoryRepository
	deleted      []uuid.UUID
	lastFilter   adapter.TransactionFilter
}

func newFakeTransactionRepository(categories *fakeCategoryRepository) *fakeTransactionRepository {
	return &fakeTransactionRepository{
		transactions: map[uuid.UUID]*entity.Transaction{},
		categories:   categories,
	}
}

func (r *fakeTransactionRepository) withCategory(transaction *entity.Transaction) *entity.TransactionWithCategory {
	return &entity.TransactionWithCategory{
		Transaction: transaction,
		Category:    r.categories.categories[transaction.CategoryID],
	}
}

func (r *fakeTransactionRepository) Create(_ context.Context, transaction *entity.Transaction) error {
	r.transactions[transaction.ID] = transaction
	return nil
}

func (r *fakeTransactionRepository) FindByIDAndUser(_ context.Context, id, userID uuid.UUID) (*entity.TransactionWithCategory, error) {
	transaction, ok := r.transactions[id]
	if !ok || transaction.UserID != userID {
		return nil, domainerror.ErrTransactionNotFound
	}
	return r.withCategory(transaction), nil
}

func (r *fakeTransactionRepository) FindByUser(_ context.Context, userID uuid.UUID, filter adapter.TransactionFilter) ([]*entity.TransactionWithCategory, error) {
	r.lastFilter = filter
	var result []*entity.TransactionWithCategory
	for _, transaction := range r.transactions {
		if transaction.UserID != userID {
			continue
		}
		if filter.Type != nil && transaction.Type != *filter.Type {
			continue
		}
		result = append(result, r.withCategory(transaction))
	}
	return result, nil
}

func (r *fakeTransactionRepository) Update(_ context.Context, transaction *entity.Transaction) error {
	existing, ok := r.transactions[transaction.ID]
	if !ok || existing.UserID != transaction.UserID {
		return domainerror.ErrTransactionNotFound
	}
	r.transactions[transaction.ID] = transaction
	return nil
}

func (r *fakeTransactionRepository) Delete(_ context.Context, id, userID uuid.UUID) error {
	existing, ok := r.transactions[id]
	if !ok || existing.UserID != userID {
		return domainerror.ErrTransactionNotFound
	}
	delete(r.transactions, id)
	r.deleted = append(r.deleted, id)
	return nil
}

// fakeCategoryRepository backs the category-ownership checks; only
// FindByIDAndUser matters here, and it counts its calls so the tests can
// assert when re-verification happens.
type fakeCategoryRepository struct {
	categories map[uuid.UUID]*entity.Category
	findCalls  int
}

func newFakeCategoryRepository() *fakeCategoryRepository {
	return &fakeCategoryRepository{categories: map[uuid.UUID]*entity.Category{}}
}

func (r *fakeCategoryRepository) Create(_ context.Context, category *entity.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepository) FindByIDAndUser(_ context.Context, id, userID uuid.UUID) (*entity.Category, error) {
	r.findCalls++
	category, ok := r.categories[id]
	if !ok || category.UserID != userID {
		return nil, domainerror.ErrCategoryNotFound
	}
	return category, nil
}

func (r *fakeCategoryRepository) FindByUser(_ context.Context, userID uuid.UUID, _ adapter.CategoryFilter) ([]*entity.Category, error) {
	var result []*entity.Category
	for _, category := range r.categories {
		if category.UserID == userID {
			result = append(result, category)
		}
	}
	return result, nil
}

func (r *fakeCategoryRepository) Update(_ context.Context, category *entity.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepository) DeleteWithTransactions(_ context.Context, id, _ uuid.UUID) error {
	delete(r.categories, id)
	return nil
}

func transactionErrorCode(t *testing.T, err error) domainerror.TransactionErrorCode {
	t.Helper()
	var txnErr *domainerror.TransactionError
	if !errors.As(err, &txnErr) {
		t.Fatalf("expected TransactionError, got %T: %v", err, err)
	}
	return txnErr.Code
}

type fixture struct {
	categoryRepo    *fakeCategoryRepository
	transactionRepo *fakeTransactionRepository
	alice           uuid.UUID
	bob             uuid.UUID
	groceries       *entity.Category
}

func newFixture() *fixture {
	f := &fixture{
		categoryRepo: newFakeCategoryRepository(),
		alice:        uuid.New(),
		bob:          uuid.New(),
	}
	f.transactionRepo = newFakeTransactionRepository(f.categoryRepo)
	f.groceries = entity.NewCategory("Groceries", entity.DefaultCategoryColor, entity.DefaultCategoryIcon, entity.CategoryTypeExpense, f.alice)
	f.categoryRepo.categories[f.groceries.ID] = f.groceries
	return f
}

func (f *fixture) seedTransaction(amount string, date time.Time) *entity.Transaction {
	transaction := entity.NewTransaction(
		f.alice,
		decimal.RequireFromString(amount),
		"weekly shop",
		date,
		f.groceries.ID,
		entity.TransactionTypeExpense,
	)
	f.transactionRepo.transactions[transaction.ID] = transaction
	return transaction
}

func TestCreateTransactionUseCase(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	validInput := func(f *fixture) CreateTransactionInput {
		return CreateTransactionInput{
			UserID:      f.alice,
			Amount:      decimal.RequireFromString("12.50"),
			Description: "weekly shop",
			Date:        date,
			CategoryID:  f.groceries.ID,
			Type:        entity.TransactionTypeExpense,
		}
	}

	t.Run("returns the transaction with its category attached", func(t *testing.T) {
		f := newFixture()
		uc := NewCreateTransactionUseCase(f.transactionRepo, f.categoryRepo)

		out, err := uc.Execute(ctx, validInput(f))
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if !out.Transaction.Transaction.Amount.Equal(decimal.RequireFromString("12.50")) {
			t.Errorf("amount = %s", out.Transaction.Transaction.Amount)
		}
		if out.Transaction.Category == nil || out.Transaction.Category.Name != "Groceries" {
			t.Errorf("category not attached: %+v", out.Transaction.Category)
		}
		if _, ok := f.transactionRepo.transactions[out.Transaction.Transaction.ID]; !ok {
			t.Error("transaction was not persisted")
		}
	})

	t.Run("validation rejections", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*CreateTransactionInput)
			code   domainerror.TransactionErrorCode
		}{
			{
				name:   "zero amount",
				mutate: func(in *CreateTransactionInput) { in.Amount = decimal.Zero },
				code:   domainerror.ErrCodeInvalidTransactionAmount,
			},
			{
				name:   "negative amount",
				mutate: func(in *CreateTransactionInput) { in.Amount = decimal.RequireFromString("-5") },
				code:   domainerror.ErrCodeInvalidTransactionAmount,
			},
			{
				name:   "description over 200 characters",
				mutate: func(in *CreateTransactionInput) { in.Description = strings.Repeat("x", 201) },
				code:   domainerror.ErrCodeDescriptionTooLong,
			},
			{
				name:   "unknown type",
				mutate: func(in *CreateTransactionInput) { in.Type = "transfer" },
				code:   domainerror.ErrCodeInvalidTransactionType,
			},
			{
				name:   "zero date",
				mutate: func(in *CreateTransactionInput) { in.Date = time.Time{} },
				code:   domainerror.ErrCodeInvalidTransactionDate,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newFixture()
				uc := NewCreateTransactionUseCase(f.transactionRepo, f.categoryRepo)

				input := validInput(f)
				tt.mutate(&input)
				_, err := uc.Execute(ctx, input)
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if code := transactionErrorCode(t, err); code != tt.code {
					t.Errorf("code = %s, want %s", code, tt.code)
				}
				if len(f.transactionRepo.transactions) != 0 {
					t.Error("rejected input was persisted")
				}
			})
		}
	})

	t.Run("unknown and foreign categories are the same rejection", func(t *testing.T) {
		f := newFixture()
		foreign := entity.NewCategory("Rent", entity.DefaultCategoryColor, entity.DefaultCategoryIcon, entity.CategoryTypeExpense, f.bob)
		f.categoryRepo.categories[foreign.ID] = foreign
		uc := NewCreateTransactionUseCase(f.transactionRepo, f.categoryRepo)

		for _, categoryID := range []uuid.UUID{uuid.New(), foreign.ID} {
			input := validInput(f)
			input.CategoryID = categoryID
			_, err := uc.Execute(ctx, input)
			if code := transactionErrorCode(t, err); code != domainerror.ErrCodeInvalidCategoryReference {
				t.Errorf("code = %s, want %s", code, domainerror.ErrCodeInvalidCategoryReference)
			}
		}
	})
}

func TestGetTransactionUseCase(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	seeded := f.seedTransaction("12.50", time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))
	uc := NewGetTransactionUseCase(f.transactionRepo)

	t.Run("owner can fetch", func(t *testing.T) {
		out, err := uc.Execute(ctx, GetTransactionInput{TransactionID: seeded.ID, UserID: f.alice})
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if out.Transaction.Category.Name != "Groceries" {
			t.Errorf("category = %+v", out.Transaction.Category)
		}
	})

	t.Run("foreign transaction reads as not found", func(t *testing.T) {
		_, err := uc.Execute(ctx, GetTransactionInput{TransactionID: seeded.ID, UserID: f.bob})
		if code := transactionErrorCode(t, err); code != domainerror.ErrCodeTransactionNotFound {
			t.Errorf("code = %s, want %s", code, domainerror.ErrCodeTransactionNotFound)
		}
	})
}

func TestListTransactionsUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("clamps pagination before hitting the repository", func(t *testing.T) {
		f := newFixture()
		uc := NewListTransactionsUseCase(f.transactionRepo)

		if _, err := uc.Execute(ctx, ListTransactionsInput{UserID: f.alice, Skip: -3, Limit: 0}); err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if f.transactionRepo.lastFilter.Skip != 0 || f.transactionRepo.lastFilter.Limit != DefaultListLimit {
			t.Errorf("filter = %+v, want skip 0 limit %d", f.transactionRepo.lastFilter, DefaultListLimit)
		}

		if _, err := uc.Execute(ctx, ListTransactionsInput{UserID: f.alice, Limit: 9999}); err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if f.transactionRepo.lastFilter.Limit != MaxListLimit {
			t.Errorf("limit = %d, want %d", f.transactionRepo.lastFilter.Limit, MaxListLimit)
		}
	})

	t.Run("forwards the filters", func(t *testing.T) {
		f := newFixture()
		uc := NewListTransactionsUseCase(f.transactionRepo)

		income := entity.TransactionTypeIncome
		start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
		input := ListTransactionsInput{
			UserID:     f.alice,
			Type:       &income,
			CategoryID: &f.groceries.ID,
			StartDate:  &start,
			EndDate:    &end,
		}
		if _, err := uc.Execute(ctx, input); err != nil {
			t.Fatalf("list failed: %v", err)
		}
		filter := f.transactionRepo.lastFilter
		if filter.Type == nil || *filter.Type != income {
			t.Errorf("type not forwarded: %+v", filter)
		}
		if filter.CategoryID == nil || *filter.CategoryID != f.groceries.ID {
			t.Errorf("category id not forwarded: %+v", filter)
		}
		if filter.StartDate == nil || !filter.StartDate.Equal(start) || filter.EndDate == nil || !filter.EndDate.Equal(end) {
			t.Errorf("date range not forwarded: %+v", filter)
		}
	})
}

func TestUpdateTransactionUseCase(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("applies only the present fields", func(t *testing.T) {
		f := newFixture()
		seeded := f.seedTransaction("12.50", date)
		uc := NewUpdateTransactionUseCase(f.transactionRepo, f.categoryRepo)

		amount := decimal.RequireFromString("15.00")
		out, err := uc.Execute(ctx, UpdateTransactionInput{
			TransactionID: seeded.ID,
			UserID:        f.alice,
			Amount:        &amount,
		})
		if err != nil {
			t.Fatalf("update failed: %v", err)
		}
		updated := out.Transaction.Transaction
		if !updated.Amount.Equal(amount) {
			t.Errorf("amount = %s, want 15.00", updated.Amount)
		}
		if !updated.Date.Equal(date) || updated.Description != "weekly shop" {
			t.Errorf("absent fields were modified: %+v", updated)
		}
	})

	t.Run("unchanged category id is not re-verified", func(t *testing.T) {
		f := newFixture()
		seeded := f.seedTransaction("12.50", date)
		uc := NewUpdateTransactionUseCase(f.transactionRepo, f.categoryRepo)

		f.categoryRepo.findCalls = 0
		_, err := uc.Execute(ctx, UpdateTransactionInput{
			TransactionID: seeded.ID,
			UserID:        f.alice,
			CategoryID:    &seeded.CategoryID,
		})
		if err != nil {
			t.Fatalf("update failed: %v", err)
		}
		if f.categoryRepo.findCalls != 0 {
			t.Errorf("category verified %d times for an unchanged id", f.categoryRepo.findCalls)
		}
	})

	t.Run("changing to a foreign category is rejected", func(t *testing.T) {
		f := newFixture()
		seeded := f.seedTransaction("12.50", date)
		foreign := entity.NewCategory("Rent", entity.DefaultCategoryColor, entity.DefaultCategoryIcon, entity.CategoryTypeExpense, f.bob)
		f.categoryRepo.categories[foreign.ID] = foreign
		uc := NewUpdateTransactionUseCase(f.transactionRepo, f.categoryRepo)

		_, err := uc.Execute(ctx, UpdateTransactionInput{
			TransactionID: seeded.ID,
			UserID:        f.alice,
			CategoryID:    &foreign.ID,
		})
		if code := transactionErrorCode(t, err); code != domainerror.ErrCodeInvalidCategoryReference {
			t.Errorf("code = %s, want %s", code, domainerror.ErrCodeInvalidCategoryReference)
		}
		if f.transactionRepo.transactions[seeded.ID].CategoryID != f.groceries.ID {
			t.Error("rejected update changed the stored category")
		}
	})

	t.Run("foreign transaction reads as not found", func(t *testing.T) {
		f := newFixture()
		seeded := f.seedTransaction("12.50", date)
		uc := NewUpdateTransactionUseCase(f.transactionRepo, f.categoryRepo)

		amount := decimal.RequireFromString("15.00")
		_, err := uc.Execute(ctx, UpdateTransactionInput{
			TransactionID: seeded.ID,
			UserID:        f.bob,
			Amount:        &amount,
		})
		if code := transactionErrorCode(t, err); code != domainerror.ErrCodeTransactionNotFound {
			t.Errorf("code = %s, want %s", code, domainerror.ErrCodeTransactionNotFound)
		}
	})
}

func TestDeleteTransactionUseCase(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("returns the deleted record", func(t *testing.T) {
		f := newFixture()
		seeded := f.seedTransaction("12.50", date)
		uc := NewDeleteTransactionUseCase(f.transactionRepo)

		out, err := uc.Execute(ctx, DeleteTransactionInput{TransactionID: seeded.ID, UserID: f.alice})
		if err != nil {
			t.Fatalf("delete failed: %v", err)
		}
		if !out.Transaction.Transaction.Amount.Equal(decimal.RequireFromString("12.50")) {
			t.Errorf("amount = %s", out.Transaction.Transaction.Amount)
		}
		if len(f.transactionRepo.deleted) != 1 || f.transactionRepo.deleted[0] != seeded.ID {
			t.Errorf("delete not invoked: %v", f.transactionRepo.deleted)
		}
	})

	t.Run("foreign transaction reads as not found and survives", func(t *testing.T) {
		f := newFixture()
		seeded := f.seedTransaction("12.50", date)
		uc := NewDeleteTransactionUseCase(f.transactionRepo)

		_, err := uc.Execute(ctx, DeleteTransactionInput{TransactionID: seeded.ID, UserID: f.bob})
		if code := transactionErrorCode(t, err); code != domainerror.ErrCodeTransactionNotFound {
			t.Errorf("code = %s, want %s", code, domainerror.ErrCodeTransactionNotFound)
		}
		if _, ok := f.transactionRepo.transactions[seeded.ID]; !ok {
			t.Error("foreign delete removed the transaction")
		}
	})
}
