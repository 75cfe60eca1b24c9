package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemCategory classifies an inventory item.
type ItemCategory string

const (
	RawMaterial     ItemCategory = "Raw Material"
	FinishedProduct ItemCategory = "Finished Product"
	Supplies        ItemCategory = "Supplies"
	OtherItem       ItemCategory = "Other"
)

// InventoryItem is one stock line. Quantity is clamped at zero by every
// mutation; it never goes negative.
type InventoryItem struct {
	ItemID       string          `json:"itemID"` // Primary Key (UUID)
	Name         string          `json:"name"`
	Category     ItemCategory    `json:"category"`
	Quantity     int64           `json:"quantity"`     // >= 0
	UnitCost     decimal.Decimal `json:"unitCost"`     // >= 0
	UnitPrice    decimal.Decimal `json:"unitPrice"`    // >= 0, defaults to 0
	Size         string          `json:"size"`         // Optional
	Color        string          `json:"color"`        // Optional
	ReorderLevel int64           `json:"reorderLevel"` // >= 0
	LastUpdated  time.Time       `json:"lastUpdated"`
}

// IsLowStock reports whether the item is at or below its reorder level.
func (i InventoryItem) IsLowStock() bool {
	return i.Quantity <= i.ReorderLevel
}

// RetailUnitValue is the unit price, falling back to unit cost when no price
// has been set.
func (i InventoryItem) RetailUnitValue() decimal.Decimal {
	if i.UnitPrice.IsZero() {
		return i.UnitCost
	}
	return i.UnitPrice
}

// CostValue is quantity x unit cost.
func (i InventoryItem) CostValue() decimal.Decimal {
	return i.UnitCost.Mul(decimal.NewFromInt(i.Quantity))
}

// RetailValue is quantity x retail unit value.
func (i InventoryItem) RetailValue() decimal.Decimal {
	return i.RetailUnitValue().Mul(decimal.NewFromInt(i.Quantity))
}
