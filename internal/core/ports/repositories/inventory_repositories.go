package repositories

import (
	"context"

	"github.com/typoapparel/tbm_backend/internal/core/domain"
)

// InventoryRepository persists the stock-room collection, whole-collection
// flush like the ledger.
type InventoryRepository interface {
	ListInventory(ctx context.Context) ([]domain.InventoryItem, error)
	ReplaceInventory(ctx context.Context, items []domain.InventoryItem) error
}

// CascadeRepository flushes the ledger and the inventory as one atomic unit.
// The inventory-purchase-as-expense and quick-sell-as-income operations
// write to both collections; a partial flush would let stock and ledger
// diverge, so both writes commit or neither does.
type CascadeRepository interface {
	ReplaceLedgerAndInventory(ctx context.Context, transactions []domain.Transaction, items []domain.InventoryItem) error
}
