package mapping

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/typoapparel/tbm_backend/internal/core/domain"
	"github.com/typoapparel/tbm_backend/internal/models"
)

// ToModelInventoryItem converts a domain InventoryItem to its interchange form
func ToModelInventoryItem(d domain.InventoryItem) models.InventoryItem {
	return models.InventoryItem{
		ID:           d.ItemID,
		Name:         d.Name,
		Category:     string(d.Category),
		Quantity:     d.Quantity,
		UnitCost:     d.UnitCost.InexactFloat64(),
		UnitPrice:    d.UnitPrice.InexactFloat64(),
		Size:         d.Size,
		Color:        d.Color,
		ReorderLevel: d.ReorderLevel,
		LastUpdated:  d.LastUpdated.UTC().Format(time.RFC3339),
	}
}

// ToDomainInventoryItem converts an interchange InventoryItem to domain form
func ToDomainInventoryItem(m models.InventoryItem) domain.InventoryItem {
	return domain.InventoryItem{
		ItemID:       m.ID,
		Name:         m.Name,
		Category:     domain.ItemCategory(m.Category),
		Quantity:     m.Quantity,
		UnitCost:     decimal.NewFromFloat(m.UnitCost),
		UnitPrice:    decimal.NewFromFloat(m.UnitPrice),
		Size:         m.Size,
		Color:        m.Color,
		ReorderLevel: m.ReorderLevel,
		LastUpdated:  parseTime(m.LastUpdated),
	}
}

// ToModelInventorySlice converts a slice of domain InventoryItems to interchange form
func ToModelInventorySlice(ds []domain.InventoryItem) []models.InventoryItem {
	ms := make([]models.InventoryItem, len(ds))
	for i, d := range ds {
		ms[i] = ToModelInventoryItem(d)
	}
	return ms
}

// ToDomainInventorySlice converts a slice of interchange InventoryItems to domain form
func ToDomainInventorySlice(ms []models.InventoryItem) []domain.InventoryItem {
	ds := make([]domain.InventoryItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInventoryItem(m)
	}
	return ds
}
