package domain_test

import (
	"testing"

	"github.com/typoapparel/tbm_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_Signed(t *testing.T) {
	tests := []struct {
		name        string
		transaction domain.Transaction
		want        decimal.Decimal
	}{
		{
			name: "income keeps its sign",
			transaction: domain.Transaction{
				Amount: decimal.NewFromInt(5000),
				Type:   domain.Income,
			},
			want: decimal.NewFromInt(5000),
		},
		{
			name: "expense is negated",
			transaction: domain.Transaction{
				Amount: decimal.NewFromInt(1200),
				Type:   domain.Expense,
			},
			want: decimal.NewFromInt(-1200),
		},
		{
			name: "zero amount stays zero",
			transaction: domain.Transaction{
				Amount: decimal.Zero,
				Type:   domain.Expense,
			},
			want: decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.transaction.Signed()
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestIsValidCategory(t *testing.T) {
	assert.True(t, domain.IsValidCategory(domain.Income, domain.CategoryQuickSale))
	assert.True(t, domain.IsValidCategory(domain.Expense, domain.CategoryInventoryPurchase))
	assert.False(t, domain.IsValidCategory(domain.Income, domain.CategoryInventoryPurchase))
	assert.False(t, domain.IsValidCategory(domain.Expense, "Not A Category"))
}
