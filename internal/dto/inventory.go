package dto

import (
	"time"

	"github.com/typoapparel/tbm_backend/internal/core/domain"
)

// CreateInventoryItemRequest defines the data needed to add a stock line.
// When LogAsExpense is set the purchase is also recorded in the ledger as an
// expense of quantity x unitCost.
type CreateInventoryItemRequest struct {
	Name         string   `json:"name" binding:"required"`
	Category     string   `json:"category" binding:"omitempty,oneof='Raw Material' 'Finished Product' Supplies Other"`
	Quantity     *int64   `json:"quantity" binding:"required,gte=0"`
	UnitCost     *float64 `json:"unitCost" binding:"required,gte=0"`
	UnitPrice    float64  `json:"unitPrice" binding:"gte=0"`
	Size         string   `json:"size"`
	Color        string   `json:"color"`
	ReorderLevel int64    `json:"reorderLevel" binding:"gte=0"`
	LogAsExpense bool     `json:"logAsExpense"`
}

// UpdateInventoryItemRequest replaces an item's descriptive fields and
// pricing. Quantity changes go through adjust or quick-sell instead.
type UpdateInventoryItemRequest struct {
	Name         string   `json:"name" binding:"required"`
	Category     string   `json:"category" binding:"omitempty,oneof='Raw Material' 'Finished Product' Supplies Other"`
	UnitCost     *float64 `json:"unitCost" binding:"required,gte=0"`
	UnitPrice    float64  `json:"unitPrice" binding:"gte=0"`
	Size         string   `json:"size"`
	Color        string   `json:"color"`
	ReorderLevel int64    `json:"reorderLevel" binding:"gte=0"`
}

// AdjustStockRequest moves an item's quantity by a signed delta. The
// resulting quantity is clamped at zero.
type AdjustStockRequest struct {
	Delta int64 `json:"delta" binding:"required"`
}

// QuickSellRequest sells units off the shelf, logging the income.
type QuickSellRequest struct {
	Quantity int64 `json:"quantity" binding:"required,gt=0"`
}

// InventoryItemResponse defines the data returned for a stock line.
type InventoryItemResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Quantity     int64     `json:"quantity"`
	UnitCost     float64   `json:"unitCost"`
	UnitPrice    float64   `json:"unitPrice"`
	Size         string    `json:"size,omitempty"`
	Color        string    `json:"color,omitempty"`
	ReorderLevel int64     `json:"reorderLevel"`
	LastUpdated  time.Time `json:"lastUpdated"`
	LowStock     bool      `json:"lowStock"`
}

// ToInventoryItemResponse converts a domain InventoryItem to its response DTO
func ToInventoryItemResponse(i *domain.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		ID:           i.ItemID,
		Name:         i.Name,
		Category:     string(i.Category),
		Quantity:     i.Quantity,
		UnitCost:     i.UnitCost.InexactFloat64(),
		UnitPrice:    i.UnitPrice.InexactFloat64(),
		Size:         i.Size,
		Color:        i.Color,
		ReorderLevel: i.ReorderLevel,
		LastUpdated:  i.LastUpdated,
		LowStock:     i.IsLowStock(),
	}
}

// ToListInventoryItemResponse converts a slice of domain InventoryItems to response DTOs
func ToListInventoryItemResponse(items []domain.InventoryItem) []InventoryItemResponse {
	res := make([]InventoryItemResponse, len(items))
	for i := range items {
		res[i] = ToInventoryItemResponse(&items[i])
	}
	return res
}
