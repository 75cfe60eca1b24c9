package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/typoapparel/tbm_backend/internal/apperrors"
	"github.com/typoapparel/tbm_backend/internal/core/domain"
	portsrepo "github.com/typoapparel/tbm_backend/internal/core/ports/repositories"
	portssvc "github.com/typoapparel/tbm_backend/internal/core/ports/services"
	"github.com/typoapparel/tbm_backend/internal/dto"
	"github.com/typoapparel/tbm_backend/internal/platform/metrics"
)

type inventoryService struct {
	BaseService
	invRepo     portsrepo.InventoryRepository
	txnRepo     portsrepo.TransactionRepository
	cascadeRepo portsrepo.CascadeRepository
}

// NewInventoryService creates the stock-room service. The transaction and
// cascade repositories serve the purchase-as-expense and quick-sell-as-income
// cascades; both collections are flushed as one atomic unit.
func NewInventoryService(
	invRepo portsrepo.InventoryRepository,
	txnRepo portsrepo.TransactionRepository,
	cascadeRepo portsrepo.CascadeRepository,
) portssvc.InventorySvcFacade {
	return &inventoryService{
		invRepo:     invRepo,
		txnRepo:     txnRepo,
		cascadeRepo: cascadeRepo,
	}
}

var _ portssvc.InventorySvcFacade = (*inventoryService)(nil)

// CreateItem appends a new stock line, optionally logging the purchase as a
// ledger expense in the same flush.
func (s *inventoryService) CreateItem(ctx context.Context, req dto.CreateInventoryItemRequest) (*domain.InventoryItem, error) {
	if req.Name == "" || req.Quantity == nil || req.UnitCost == nil {
		metrics.MutationFailuresTotal.WithLabelValues("inventory", "create").Inc()
		return nil, fmt.Errorf("name, quantity and unitCost are required: %w", apperrors.ErrValidation)
	}
	if *req.Quantity < 0 || *req.UnitCost < 0 || req.UnitPrice < 0 || req.ReorderLevel < 0 {
		metrics.MutationFailuresTotal.WithLabelValues("inventory", "create").Inc()
		return nil, fmt.Errorf("quantities and prices must be non-negative: %w", apperrors.ErrValidation)
	}

	category := domain.ItemCategory(req.Category)
	if category == "" {
		category = domain.FinishedProduct
	}

	item := domain.InventoryItem{
		ItemID:       uuid.NewString(),
		Name:         req.Name,
		Category:     category,
		Quantity:     *req.Quantity,
		UnitCost:     decimal.NewFromFloat(*req.UnitCost),
		UnitPrice:    decimal.NewFromFloat(req.UnitPrice),
		Size:         req.Size,
		Color:        req.Color,
		ReorderLevel: req.ReorderLevel,
		LastUpdated:  time.Now().UTC(),
	}

	items, err := s.invRepo.ListInventory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory in service: %w", err)
	}
	items = append([]domain.InventoryItem{item}, items...)

	if !req.LogAsExpense {
		if err := s.invRepo.ReplaceInventory(ctx, items); err != nil {
			metrics.MutationFailuresTotal.WithLabelValues("inventory", "create").Inc()
			return nil, fmt.Errorf("failed to flush inventory in service: %w", err)
		}
		metrics.MutationsTotal.WithLabelValues("inventory", "create").Inc()
		return &item, nil
	}

	// Purchase cascade: the stock line and its expense land in one atomic
	// flush so stock and ledger cannot diverge.
	expense := domain.Transaction{
		TransactionID: uuid.NewString(),
		Date:          item.LastUpdated,
		Description:   fmt.Sprintf("Inventory purchase: %s", item.Name),
		Amount:        item.UnitCost.Mul(decimal.NewFromInt(item.Quantity)),
		Type:          domain.Expense,
		Category:      domain.CategoryInventoryPurchase,
	}

	transactions, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger in service: %w", err)
	}
	transactions = append([]domain.Transaction{expense}, transactions...)

	if err := s.cascadeRepo.ReplaceLedgerAndInventory(ctx, transactions, items); err != nil {
		metrics.MutationFailuresTotal.WithLabelValues("inventory", "create").Inc()
		return nil, fmt.Errorf("failed to flush purchase cascade in service: %w", err)
	}

	metrics.MutationsTotal.WithLabelValues("inventory", "create").Inc()
	metrics.MutationsTotal.WithLabelValues("transaction", "create").Inc()
	s.LogInfo(ctx, "Inventory purchase logged as expense",
		slog.String("item_id", item.ItemID),
		slog.String("transaction_id", expense.TransactionID),
		slog.String("amount", expense.Amount.String()))
	return &item, nil
}

// UpdateItem replaces an item's descriptive fields and pricing. Quantity is
// only moved by AdjustStock and QuickSell.
func (s *inventoryService) UpdateItem(ctx context.Context, itemID string, req dto.UpdateInventoryItemRequest) (*domain.InventoryItem, error) {
	if req.Name == "" || req.UnitCost == nil {
		metrics.MutationFailuresTotal.WithLabelValues("inventory", "update").Inc()
		return nil, fmt.Errorf("name and unitCost are required: %w", apperrors.ErrValidation)
	}

	items, err := s.invRepo.ListInventory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory in service: %w", err)
	}

	idx := findItem(items, itemID)
	if idx == -1 {
		return nil, fmt.Errorf("inventory item %s: %w", itemID, apperrors.ErrNotFound)
	}

	updated := items[idx]
	updated.Name = req.Name
	if req.Category != "" {
		updated.Category = domain.ItemCategory(req.Category)
	}
	updated.UnitCost = decimal.NewFromFloat(*req.UnitCost)
	updated.UnitPrice = decimal.NewFromFloat(req.UnitPrice)
	updated.Size = req.Size
	updated.Color = req.Color
	updated.ReorderLevel = req.ReorderLevel
	updated.LastUpdated = time.Now().UTC()
	items[idx] = updated

	if err := s.invRepo.ReplaceInventory(ctx, items); err != nil {
		metrics.MutationFailuresTotal.WithLabelValues("inventory", "update").Inc()
		return nil, fmt.Errorf("failed to flush inventory in service: %w", err)
	}

	metrics.MutationsTotal.WithLabelValues("inventory", "update").Inc()
	return &updated, nil
}

// AdjustStock moves quantity by a signed delta, clamping the result at zero.
func (s *inventoryService) AdjustStock(ctx context.Context, itemID string, delta int64) (*domain.InventoryItem, error) {
	items, err := s.invRepo.ListInventory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory in service: %w", err)
	}

	idx := findItem(items, itemID)
	if idx == -1 {
		return nil, fmt.Errorf("inventory item %s: %w", itemID, apperrors.ErrNotFound)
	}

	updated := items[idx]
	updated.Quantity += delta
	if updated.Quantity < 0 {
		updated.Quantity = 0
	}
	updated.LastUpdated = time.Now().UTC()
	items[idx] = updated

	if err := s.invRepo.ReplaceInventory(ctx, items); err != nil {
		metrics.MutationFailuresTotal.WithLabelValues("inventory", "adjust").Inc()
		return nil, fmt.Errorf("failed to flush inventory in service: %w", err)
	}

	metrics.MutationsTotal.WithLabelValues("inventory", "adjust").Inc()
	s.LogInfo(ctx, "Stock adjusted",
		slog.String("item_id", itemID),
		slog.Int64("delta", delta),
		slog.Int64("quantity", updated.Quantity))
	return &updated, nil
}

// QuickSell decrements stock and records the income atomically. Selling more
// than is on hand fails with ErrInsufficientStock and leaves both
// collections untouched.
func (s *inventoryService) QuickSell(ctx context.Context, itemID string, quantity int64) (*domain.InventoryItem, error) {
	if quantity <= 0 {
		metrics.MutationFailuresTotal.WithLabelValues("inventory", "quick_sell").Inc()
		return nil, fmt.Errorf("sale quantity must be positive: %w", apperrors.ErrValidation)
	}

	items, err := s.invRepo.ListInventory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory in service: %w", err)
	}

	idx := findItem(items, itemID)
	if idx == -1 {
		return nil, fmt.Errorf("inventory item %s: %w", itemID, apperrors.ErrNotFound)
	}

	updated := items[idx]
	if quantity > updated.Quantity {
		metrics.MutationFailuresTotal.WithLabelValues("inventory", "quick_sell").Inc()
		return nil, fmt.Errorf("requested %d of %d on hand: %w", quantity, updated.Quantity, apperrors.ErrInsufficientStock)
	}

	updated.Quantity -= quantity
	updated.LastUpdated = time.Now().UTC()
	items[idx] = updated

	sale := domain.Transaction{
		TransactionID: uuid.NewString(),
		Date:          updated.LastUpdated,
		Description:   fmt.Sprintf("Quick sale: %s x%d", updated.Name, quantity),
		Amount:        updated.UnitPrice.Mul(decimal.NewFromInt(quantity)),
		Type:          domain.Income,
		Category:      domain.CategoryQuickSale,
	}

	transactions, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger in service: %w", err)
	}
	transactions = append([]domain.Transaction{sale}, transactions...)

	if err := s.cascadeRepo.ReplaceLedgerAndInventory(ctx, transactions, items); err != nil {
		metrics.MutationFailuresTotal.WithLabelValues("inventory", "quick_sell").Inc()
		return nil, fmt.Errorf("failed to flush quick-sell cascade in service: %w", err)
	}

	metrics.MutationsTotal.WithLabelValues("inventory", "quick_sell").Inc()
	metrics.MutationsTotal.WithLabelValues("transaction", "create").Inc()
	s.LogInfo(ctx, "Quick sale recorded",
		slog.String("item_id", itemID),
		slog.Int64("quantity", quantity),
		slog.String("amount", sale.Amount.String()))
	return &updated, nil
}

// DeleteItem removes a stock line.
func (s *inventoryService) DeleteItem(ctx context.Context, itemID string) error {
	items, err := s.invRepo.ListInventory(ctx)
	if err != nil {
		return fmt.Errorf("failed to load inventory in service: %w", err)
	}

	remaining := items[:0:0]
	for _, item := range items {
		if item.ItemID != itemID {
			remaining = append(remaining, item)
		}
	}
	if len(remaining) == len(items) {
		return fmt.Errorf("inventory item %s: %w", itemID, apperrors.ErrNotFound)
	}

	if err := s.invRepo.ReplaceInventory(ctx, remaining); err != nil {
		metrics.MutationFailuresTotal.WithLabelValues("inventory", "delete").Inc()
		return fmt.Errorf("failed to flush inventory in service: %w", err)
	}

	metrics.MutationsTotal.WithLabelValues("inventory", "delete").Inc()
	return nil
}

// ListItems returns the full stock room.
func (s *inventoryService) ListItems(ctx context.Context) ([]domain.InventoryItem, error) {
	items, err := s.invRepo.ListInventory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory in service: %w", err)
	}
	return items, nil
}

func findItem(items []domain.InventoryItem, itemID string) int {
	for i := range items {
		if items[i].ItemID == itemID {
			return i
		}
	}
	return -1
}
