package services

import (
	"context"

	"github.com/typoapparel/tbm_backend/internal/core/domain"
	"github.com/typoapparel/tbm_backend/internal/dto"
)

// LedgerSvcFacade exposes the ledger mutation and read operations.
type LedgerSvcFacade interface {
	LedgerReaderSvc
	// CreateTransaction validates and appends a new ledger entry with a
	// generated id and the current timestamp.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	// UpdateTransaction replaces an entry's fields, preserving its id and
	// original date. Returns apperrors.ErrNotFound for an unknown id.
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
	// DeleteTransaction removes an entry. Returns apperrors.ErrNotFound for
	// an unknown id.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// LedgerReaderSvc is the read-only slice of the ledger service, enough for
// reporting and backup.
type LedgerReaderSvc interface {
	// ListTransactions returns ledger entries newest first. A non-empty
	// query filters by case-insensitive substring match on description or
	// category.
	ListTransactions(ctx context.Context, query string) ([]domain.Transaction, error)
}
