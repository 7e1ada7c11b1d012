// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// Transaction represents a single income or expense record. Amounts are
// always positive; the type decides which side of the balance they land on.
type Transaction struct {
	ID          uuid.UUID
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	CategoryID  uuid.UUID
	Type        TransactionType
	UserID      uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	amount decimal.Decimal,
	description string,
	date time.Time,
	categoryID uuid.UUID,
	transactionType TransactionType,
) *Transaction {
	now := time.Now().UTC()
	return &Transaction{
		ID:          uuid.New(),
		Amount:      amount,
		Description: description,
		Date:        date,
		CategoryID:  categoryID,
		Type:        transactionType,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// TransactionWithCategory represents a transaction with its category loaded.
type TransactionWithCategory struct {
	Transaction *Transaction
	Category    *Category
}
