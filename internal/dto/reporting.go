package dto

import (
	"time"

	"github.com/typoapparel/tbm_backend/internal/core/domain"
	"github.com/typoapparel/tbm_backend/internal/utils"
)

// SummaryResponse is the dashboard header payload: derived financial state,
// inventory stats, and pre-formatted MMK display strings.
type SummaryResponse struct {
	TotalIncome         float64                `json:"totalIncome"`
	TotalExpense        float64                `json:"totalExpense"`
	Balance             float64                `json:"balance"`
	TotalIncomeDisplay  string                 `json:"totalIncomeDisplay"`
	TotalExpenseDisplay string                 `json:"totalExpenseDisplay"`
	BalanceDisplay      string                 `json:"balanceDisplay"`
	Inventory           InventoryStatsResponse `json:"inventory"`
}

// InventoryStatsResponse carries the derived stock-room valuations.
type InventoryStatsResponse struct {
	TotalCostValue   float64 `json:"totalCostValue"`
	TotalRetailValue float64 `json:"totalRetailValue"`
	LowStockCount    int     `json:"lowStockCount"`
}

// BalancePointResponse is one point of the cash-flow chart.
type BalancePointResponse struct {
	Date    time.Time `json:"date"`
	Balance float64   `json:"balance"`
}

// CategoryTotalResponse is one slice of the expense breakdown chart.
type CategoryTotalResponse struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// ToSummaryResponse builds the dashboard payload from the derived states.
func ToSummaryResponse(fs domain.FinancialState, stats domain.InventoryStats) SummaryResponse {
	return SummaryResponse{
		TotalIncome:         fs.TotalIncome.InexactFloat64(),
		TotalExpense:        fs.TotalExpense.InexactFloat64(),
		Balance:             fs.Balance.InexactFloat64(),
		TotalIncomeDisplay:  utils.FormatMMK(fs.TotalIncome),
		TotalExpenseDisplay: utils.FormatMMK(fs.TotalExpense),
		BalanceDisplay:      utils.FormatMMK(fs.Balance),
		Inventory: InventoryStatsResponse{
			TotalCostValue:   stats.TotalCostValue.InexactFloat64(),
			TotalRetailValue: stats.TotalRetailValue.InexactFloat64(),
			LowStockCount:    stats.LowStockCount,
		},
	}
}

// ToBalanceSeriesResponse converts the running-balance series.
func ToBalanceSeriesResponse(points []domain.BalancePoint) []BalancePointResponse {
	res := make([]BalancePointResponse, len(points))
	for i, p := range points {
		res[i] = BalancePointResponse{
			Date:    p.Date,
			Balance: p.RunningBalance.InexactFloat64(),
		}
	}
	return res
}

// ToExpenseBreakdownResponse converts the category totals, preserving order.
func ToExpenseBreakdownResponse(totals []domain.CategoryTotal) []CategoryTotalResponse {
	res := make([]CategoryTotalResponse, len(totals))
	for i, t := range totals {
		res[i] = CategoryTotalResponse{
			Category: t.Category,
			Total:    t.Total.InexactFloat64(),
		}
	}
	return res
}
