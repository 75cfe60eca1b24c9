package sqlitekv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/typoapparel/tbm_backend/internal/apperrors"
	"github.com/typoapparel/tbm_backend/internal/core/domain"
	portsrepo "github.com/typoapparel/tbm_backend/internal/core/ports/repositories"
	"github.com/typoapparel/tbm_backend/internal/models"
	"github.com/typoapparel/tbm_backend/internal/utils/mapping"
)

type KVInventoryRepository struct {
	BaseRepository
}

// newKVInventoryRepository creates the stock-room repository.
func newKVInventoryRepository(store *Store) portsrepo.InventoryRepository {
	return &KVInventoryRepository{BaseRepository: BaseRepository{Store: store}}
}

// Ensure implementation matches interface
var _ portsrepo.InventoryRepository = (*KVInventoryRepository)(nil)

// ListInventory loads the full stock-room collection.
func (r *KVInventoryRepository) ListInventory(ctx context.Context) ([]domain.InventoryItem, error) {
	var stored []models.InventoryItem
	if err := r.getJSON(ctx, keyInventory, &stored); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return []domain.InventoryItem{}, nil
		}
		return nil, err
	}
	return mapping.ToDomainInventorySlice(stored), nil
}

// ReplaceInventory flushes the whole stock-room collection.
func (r *KVInventoryRepository) ReplaceInventory(ctx context.Context, items []domain.InventoryItem) error {
	return r.putJSON(ctx, keyInventory, mapping.ToModelInventorySlice(items))
}

// KVCascadeRepository flushes ledger and inventory in one SQL transaction so
// a cascade can never leave the two collections diverged.
type KVCascadeRepository struct {
	BaseRepository
}

func newKVCascadeRepository(store *Store) portsrepo.CascadeRepository {
	return &KVCascadeRepository{BaseRepository: BaseRepository{Store: store}}
}

var _ portsrepo.CascadeRepository = (*KVCascadeRepository)(nil)

// ReplaceLedgerAndInventory writes both collections atomically.
func (r *KVCascadeRepository) ReplaceLedgerAndInventory(ctx context.Context, transactions []domain.Transaction, items []domain.InventoryItem) error {
	txRaw, err := json.Marshal(mapping.ToModelTransactionSlice(transactions))
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", keyTransactions, err)
	}
	invRaw, err := json.Marshal(mapping.ToModelInventorySlice(items))
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", keyInventory, err)
	}
	return r.Store.SetMulti(ctx, map[string][]byte{
		keyTransactions: txRaw,
		keyInventory:    invRaw,
	})
}
