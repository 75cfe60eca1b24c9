package dto

import (
	"time"

	"github.com/typoapparel/tbm_backend/internal/core/domain"
)

// CreateTransactionRequest defines the data needed to record a ledger entry.
// Category membership in the set for the type is enforced by a struct-level
// validation (see validations.go).
type CreateTransactionRequest struct {
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description" binding:"required"`
	Type        string  `json:"type" binding:"required,oneof=income expense"`
	Category    string  `json:"category" binding:"required"`
}

// UpdateTransactionRequest replaces an existing entry's fields. The entry's
// id and original date are preserved by the service.
type UpdateTransactionRequest struct {
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description" binding:"required"`
	Type        string  `json:"type" binding:"required,oneof=income expense"`
	Category    string  `json:"category" binding:"required"`
}

// TransactionResponse defines the data returned for a ledger entry.
type TransactionResponse struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
}

// ToTransactionResponse converts a domain Transaction to its response DTO
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.TransactionID,
		Date:        t.Date,
		Description: t.Description,
		Amount:      t.Amount.InexactFloat64(),
		Type:        string(t.Type),
		Category:    t.Category,
	}
}

// ToListTransactionResponse converts a slice of domain Transactions to response DTOs
func ToListTransactionResponse(ts []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(ts))
	for i := range ts {
		res[i] = ToTransactionResponse(&ts[i])
	}
	return res
}
