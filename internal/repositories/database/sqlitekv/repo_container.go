package sqlitekv

import (
	"context"
	"database/sql"

	portsrepo "github.com/typoapparel/tbm_backend/internal/core/ports/repositories"
)

// KVSystemRepository covers store-wide operations (full reset).
type KVSystemRepository struct {
	BaseRepository
}

var _ portsrepo.SystemRepository = (*KVSystemRepository)(nil)

// ClearAll erases every stored collection.
func (r *KVSystemRepository) ClearAll(ctx context.Context) error {
	return r.Store.Clear(ctx)
}

// NewRepositoryProvider wires all key-value repositories over one database
// handle.
func NewRepositoryProvider(db *sql.DB) portsrepo.RepositoryProvider {
	store := NewStore(db)

	return portsrepo.RepositoryProvider{
		TransactionRepo: newKVTransactionRepository(store),
		InventoryRepo:   newKVInventoryRepository(store),
		CascadeRepo:     newKVCascadeRepository(store),
		CustomerRepo:    newKVCustomerRepository(store),
		ProfileRepo:     newKVProfileRepository(store),
		SystemRepo:      &KVSystemRepository{BaseRepository: BaseRepository{Store: store}},
	}
}
