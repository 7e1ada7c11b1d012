// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/snehithlal/money-manager/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description,omitempty"`
	Date        string          `json:"date" binding:"required"`
	CategoryID  string          `json:"category_id" binding:"required"`
	Type        string          `json:"type" binding:"required"`
}

// UpdateTransactionRequest represents the request body for transaction update.
// Absent fields keep their stored values.
type UpdateTransactionRequest struct {
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Description *string          `json:"description,omitempty"`
	Date        *string          `json:"date,omitempty"`
	CategoryID  *string          `json:"category_id,omitempty"`
	Type        *string          `json:"type,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string            `json:"id"`
	Amount      decimal.Decimal   `json:"amount"`
	Description string            `json:"description"`
	Date        string            `json:"date"`
	CategoryID  string            `json:"category_id"`
	Type        string            `json:"type"`
	UserID      string            `json:"user_id"`
	Category    *CategoryResponse `json:"category,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a TransactionWithCategory to a TransactionResponse DTO.
func ToTransactionResponse(twc *entity.TransactionWithCategory) TransactionResponse {
	response := TransactionResponse{
		ID:          twc.Transaction.ID.String(),
		Amount:      twc.Transaction.Amount,
		Description: twc.Transaction.Description,
		Date:        twc.Transaction.Date.Format("2006-01-02"),
		CategoryID:  twc.Transaction.CategoryID.String(),
		Type:        string(twc.Transaction.Type),
		UserID:      twc.Transaction.UserID.String(),
		CreatedAt:   twc.Transaction.CreatedAt,
		UpdatedAt:   twc.Transaction.UpdatedAt,
	}
	if twc.Category != nil {
		category := ToCategoryResponse(twc.Category)
		response.Category = &category
	}
	return response
}

// ToTransactionListResponse converts a list of transactions to TransactionListResponse.
func ToTransactionListResponse(transactions []*entity.TransactionWithCategory) TransactionListResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, twc := range transactions {
		responses[i] = ToTransactionResponse(twc)
	}
	return TransactionListResponse{
		Transactions: responses,
	}
}
