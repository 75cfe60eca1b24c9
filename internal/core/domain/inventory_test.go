package domain_test

import (
	"testing"

	"github.com/typoapparel/tbm_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestInventoryItem_IsLowStock(t *testing.T) {
	tests := []struct {
		name string
		item domain.InventoryItem
		want bool
	}{
		{
			name: "above reorder level",
			item: domain.InventoryItem{Quantity: 10, ReorderLevel: 5},
			want: false,
		},
		{
			name: "exactly at reorder level",
			item: domain.InventoryItem{Quantity: 5, ReorderLevel: 5},
			want: true,
		},
		{
			name: "below reorder level",
			item: domain.InventoryItem{Quantity: 2, ReorderLevel: 5},
			want: true,
		},
		{
			name: "zero stock with zero reorder level",
			item: domain.InventoryItem{Quantity: 0, ReorderLevel: 0},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.item.IsLowStock())
		})
	}
}

func TestInventoryItem_Valuations(t *testing.T) {
	item := domain.InventoryItem{
		Quantity:  4,
		UnitCost:  decimal.NewFromInt(2500),
		UnitPrice: decimal.NewFromInt(6000),
	}

	assert.True(t, decimal.NewFromInt(10000).Equal(item.CostValue()))
	assert.True(t, decimal.NewFromInt(24000).Equal(item.RetailValue()))
}

func TestInventoryItem_RetailUnitValue_FallsBackToCost(t *testing.T) {
	item := domain.InventoryItem{
		Quantity: 3,
		UnitCost: decimal.NewFromInt(1500),
		// UnitPrice never set
	}

	assert.True(t, decimal.NewFromInt(1500).Equal(item.RetailUnitValue()))
	assert.True(t, decimal.NewFromInt(4500).Equal(item.RetailValue()))
}
