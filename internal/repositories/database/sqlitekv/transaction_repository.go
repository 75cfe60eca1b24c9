package sqlitekv

import (
	"context"
	"errors"

	"github.com/typoapparel/tbm_backend/internal/apperrors"
	"github.com/typoapparel/tbm_backend/internal/core/domain"
	portsrepo "github.com/typoapparel/tbm_backend/internal/core/ports/repositories"
	"github.com/typoapparel/tbm_backend/internal/models"
	"github.com/typoapparel/tbm_backend/internal/utils/mapping"
)

type KVTransactionRepository struct {
	BaseRepository
}

// newKVTransactionRepository creates the ledger repository.
func newKVTransactionRepository(store *Store) portsrepo.TransactionRepository {
	return &KVTransactionRepository{BaseRepository: BaseRepository{Store: store}}
}

// Ensure implementation matches interface
var _ portsrepo.TransactionRepository = (*KVTransactionRepository)(nil)

// ListTransactions loads the full ledger. An absent key means nothing has
// been stored yet and yields an empty collection.
func (r *KVTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	var stored []models.Transaction
	if err := r.getJSON(ctx, keyTransactions, &stored); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return []domain.Transaction{}, nil
		}
		return nil, err
	}
	return mapping.ToDomainTransactionSlice(stored), nil
}

// ReplaceTransactions flushes the whole ledger collection.
func (r *KVTransactionRepository) ReplaceTransactions(ctx context.Context, transactions []domain.Transaction) error {
	return r.putJSON(ctx, keyTransactions, mapping.ToModelTransactionSlice(transactions))
}
