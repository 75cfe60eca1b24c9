// Package accounting holds the pure aggregation functions that derive
// summary and chart data from the raw collections. Everything here is
// referentially transparent and recomputed on every read; nothing is cached.
package accounting

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/typoapparel/tbm_backend/internal/core/domain"
)

// BalanceSeriesLimit caps the chart series to its most recent points.
const BalanceSeriesLimit = 10

// ComputeFinancials partitions transactions by type and sums each side.
// Order of the input is irrelevant; empty input yields the all-zero state.
func ComputeFinancials(transactions []domain.Transaction) domain.FinancialState {
	totalIncome := decimal.Zero
	totalExpense := decimal.Zero

	for _, txn := range transactions {
		switch txn.Type {
		case domain.Income:
			totalIncome = totalIncome.Add(txn.Amount)
		case domain.Expense:
			totalExpense = totalExpense.Add(txn.Amount)
		}
	}

	return domain.FinancialState{
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		Balance:      totalIncome.Sub(totalExpense),
	}
}

// ComputeInventoryStats sums stock valuations in a single pass and counts
// items at or below their reorder level.
func ComputeInventoryStats(items []domain.InventoryItem) domain.InventoryStats {
	stats := domain.InventoryStats{
		TotalCostValue:   decimal.Zero,
		TotalRetailValue: decimal.Zero,
	}

	for _, item := range items {
		stats.TotalCostValue = stats.TotalCostValue.Add(item.CostValue())
		stats.TotalRetailValue = stats.TotalRetailValue.Add(item.RetailValue())
		if item.IsLowStock() {
			stats.LowStockCount++
		}
	}

	return stats
}

// ComputeBalanceSeries sorts transactions ascending by date and accumulates
// the running balance left to right, returning at most the last
// BalanceSeriesLimit points. The sort is stable: transactions on the same
// date keep their original relative order so the chart is deterministic.
func ComputeBalanceSeries(transactions []domain.Transaction) []domain.BalancePoint {
	sorted := make([]domain.Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	points := make([]domain.BalancePoint, 0, len(sorted))
	running := decimal.Zero
	for _, txn := range sorted {
		running = running.Add(txn.Signed())
		points = append(points, domain.BalancePoint{
			Date:           txn.Date,
			RunningBalance: running,
		})
	}

	if len(points) > BalanceSeriesLimit {
		points = points[len(points)-BalanceSeriesLimit:]
	}
	return points
}

// ComputeExpenseBreakdown groups expense transactions by category and sums
// their amounts. The result keeps the insertion order of each category's
// first occurrence; chart color assignment depends on that order staying
// reproducible.
func ComputeExpenseBreakdown(transactions []domain.Transaction) []domain.CategoryTotal {
	index := make(map[string]int)
	breakdown := make([]domain.CategoryTotal, 0)

	for _, txn := range transactions {
		if txn.Type != domain.Expense {
			continue
		}
		i, ok := index[txn.Category]
		if !ok {
			index[txn.Category] = len(breakdown)
			breakdown = append(breakdown, domain.CategoryTotal{
				Category: txn.Category,
				Total:    txn.Amount,
			})
			continue
		}
		breakdown[i].Total = breakdown[i].Total.Add(txn.Amount)
	}

	return breakdown
}
