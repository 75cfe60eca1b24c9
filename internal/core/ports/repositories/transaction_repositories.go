package repositories

import (
	"context"

	"github.com/typoapparel/tbm_backend/internal/core/domain"
)

// TransactionRepository persists the ledger collection. The collection is
// read and flushed whole: every mutation rewrites the full serialized
// collection under its storage key.
type TransactionRepository interface {
	// ListTransactions returns the full ledger, empty when nothing has been
	// stored yet.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
	// ReplaceTransactions flushes the given collection, replacing whatever
	// was stored before.
	ReplaceTransactions(ctx context.Context, transactions []domain.Transaction) error
}
