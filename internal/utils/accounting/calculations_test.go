package accounting_test

import (
	"testing"
	"time"

	"github.com/typoapparel/tbm_backend/internal/core/domain"
	"github.com/typoapparel/tbm_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txn(id string, date time.Time, amount int64, txType domain.TransactionType, category string) domain.Transaction {
	return domain.Transaction{
		TransactionID: id,
		Date:          date,
		Description:   id,
		Amount:        decimal.NewFromInt(amount),
		Type:          txType,
		Category:      category,
	}
}

func TestComputeFinancials(t *testing.T) {
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		transactions []domain.Transaction
		wantIncome   int64
		wantExpense  int64
		wantBalance  int64
	}{
		{
			name:         "empty ledger is all zero",
			transactions: nil,
		},
		{
			name: "mixed ledger partitions by type",
			transactions: []domain.Transaction{
				txn("a", day, 50000, domain.Income, "Sales Revenue"),
				txn("b", day, 20000, domain.Expense, "Logistics"),
				txn("c", day, 10000, domain.Income, "Wholesale"),
				txn("d", day, 5000, domain.Expense, "Marketing"),
			},
			wantIncome:  60000,
			wantExpense: 25000,
			wantBalance: 35000,
		},
		{
			name: "expense-only ledger yields negative balance",
			transactions: []domain.Transaction{
				txn("a", day, 7000, domain.Expense, "Salary"),
			},
			wantExpense: 7000,
			wantBalance: -7000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := accounting.ComputeFinancials(tt.transactions)
			assert.True(t, decimal.NewFromInt(tt.wantIncome).Equal(fs.TotalIncome), "income: got %s", fs.TotalIncome)
			assert.True(t, decimal.NewFromInt(tt.wantExpense).Equal(fs.TotalExpense), "expense: got %s", fs.TotalExpense)
			assert.True(t, decimal.NewFromInt(tt.wantBalance).Equal(fs.Balance), "balance: got %s", fs.Balance)
			// Balance identity holds for any input.
			assert.True(t, fs.TotalIncome.Sub(fs.TotalExpense).Equal(fs.Balance))
		})
	}
}

func TestComputeInventoryStats(t *testing.T) {
	items := []domain.InventoryItem{
		{Quantity: 10, UnitCost: decimal.NewFromInt(1000), UnitPrice: decimal.NewFromInt(2500), ReorderLevel: 5},
		{Quantity: 2, UnitCost: decimal.NewFromInt(3000), ReorderLevel: 5}, // no price, low stock
	}

	stats := accounting.ComputeInventoryStats(items)

	assert.True(t, decimal.NewFromInt(16000).Equal(stats.TotalCostValue), "cost: got %s", stats.TotalCostValue)
	// Second item falls back to unit cost for its retail value.
	assert.True(t, decimal.NewFromInt(31000).Equal(stats.TotalRetailValue), "retail: got %s", stats.TotalRetailValue)
	assert.Equal(t, 1, stats.LowStockCount)
}

func TestComputeInventoryStats_Empty(t *testing.T) {
	stats := accounting.ComputeInventoryStats(nil)

	assert.True(t, stats.TotalCostValue.IsZero())
	assert.True(t, stats.TotalRetailValue.IsZero())
	assert.Equal(t, 0, stats.LowStockCount)
}

func TestComputeBalanceSeries_OrderAndAccumulation(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	// Stored newest-first, like the ledger keeps them.
	transactions := []domain.Transaction{
		txn("c", base.AddDate(0, 0, 2), 3000, domain.Expense, "Logistics"),
		txn("b", base.AddDate(0, 0, 1), 10000, domain.Income, "Sales Revenue"),
		txn("a", base, 5000, domain.Income, "Wholesale"),
	}

	points := accounting.ComputeBalanceSeries(transactions)
	require.Len(t, points, 3)

	assert.Equal(t, base, points[0].Date)
	assert.True(t, decimal.NewFromInt(5000).Equal(points[0].RunningBalance))
	assert.True(t, decimal.NewFromInt(15000).Equal(points[1].RunningBalance))
	assert.True(t, decimal.NewFromInt(12000).Equal(points[2].RunningBalance))
}

func TestComputeBalanceSeries_SameDateKeepsInputOrder(t *testing.T) {
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	transactions := []domain.Transaction{
		txn("first", day, 1000, domain.Income, "Sales Revenue"),
		txn("second", day, 2000, domain.Expense, "Logistics"),
	}

	points := accounting.ComputeBalanceSeries(transactions)
	require.Len(t, points, 2)

	// Stable sort: equal dates keep input order, so the running balance
	// passes through +1000 before dropping.
	assert.True(t, decimal.NewFromInt(1000).Equal(points[0].RunningBalance))
	assert.True(t, decimal.NewFromInt(-1000).Equal(points[1].RunningBalance))
}

func TestComputeBalanceSeries_TruncatesToLimit(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	var transactions []domain.Transaction
	for i := 0; i < accounting.BalanceSeriesLimit+5; i++ {
		transactions = append(transactions, txn("t", base.AddDate(0, 0, i), 100, domain.Income, "Sales Revenue"))
	}

	points := accounting.ComputeBalanceSeries(transactions)
	require.Len(t, points, accounting.BalanceSeriesLimit)

	// The window keeps the most recent points; the running balance still
	// accumulates over the full ledger.
	assert.Equal(t, base.AddDate(0, 0, 5), points[0].Date)
	assert.True(t, decimal.NewFromInt(600).Equal(points[0].RunningBalance))
	assert.True(t, decimal.NewFromInt(1500).Equal(points[len(points)-1].RunningBalance))
}

func TestComputeExpenseBreakdown(t *testing.T) {
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	transactions := []domain.Transaction{
		txn("a", day, 5000, domain.Expense, "Logistics"),
		txn("b", day, 90000, domain.Income, "Sales Revenue"), // ignored
		txn("c", day, 2000, domain.Expense, "Marketing"),
		txn("d", day, 3000, domain.Expense, "Logistics"),
	}

	breakdown := accounting.ComputeExpenseBreakdown(transactions)
	require.Len(t, breakdown, 2)

	// First-occurrence order is preserved.
	assert.Equal(t, "Logistics", breakdown[0].Category)
	assert.True(t, decimal.NewFromInt(8000).Equal(breakdown[0].Total))
	assert.Equal(t, "Marketing", breakdown[1].Category)
	assert.True(t, decimal.NewFromInt(2000).Equal(breakdown[1].Total))
}

func TestComputeExpenseBreakdown_NoExpenses(t *testing.T) {
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	transactions := []domain.Transaction{
		txn("a", day, 5000, domain.Income, "Sales Revenue"),
	}

	breakdown := accounting.ComputeExpenseBreakdown(transactions)
	assert.Empty(t, breakdown)
}
