package services

import (
	"context"

	"github.com/typoapparel/tbm_backend/internal/core/domain"
	"github.com/typoapparel/tbm_backend/internal/dto"
)

// InventorySvcFacade exposes the stock-room operations.
type InventorySvcFacade interface {
	InventoryReaderSvc
	// CreateItem appends a new stock line. With LogAsExpense set it also
	// records a quantity x unitCost expense in the ledger; both collections
	// are flushed as one atomic unit.
	CreateItem(ctx context.Context, req dto.CreateInventoryItemRequest) (*domain.InventoryItem, error)
	// UpdateItem replaces an item's descriptive fields and pricing.
	UpdateItem(ctx context.Context, itemID string, req dto.UpdateInventoryItemRequest) (*domain.InventoryItem, error)
	// AdjustStock moves quantity by delta, clamping the result at zero.
	AdjustStock(ctx context.Context, itemID string, delta int64) (*domain.InventoryItem, error)
	// QuickSell decrements stock and records the income in the ledger
	// atomically. Returns apperrors.ErrInsufficientStock (leaving both
	// collections untouched) when quantity exceeds what is on hand.
	QuickSell(ctx context.Context, itemID string, quantity int64) (*domain.InventoryItem, error)
	// DeleteItem removes a stock line.
	DeleteItem(ctx context.Context, itemID string) error
}

// InventoryReaderSvc is the read-only slice of the inventory service.
type InventoryReaderSvc interface {
	ListItems(ctx context.Context) ([]domain.InventoryItem, error)
}
