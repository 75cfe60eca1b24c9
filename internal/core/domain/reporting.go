package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FinancialState is derived from the full transaction collection on every
// read; it is never persisted.
type FinancialState struct {
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	Balance      decimal.Decimal `json:"balance"` // totalIncome - totalExpense
}

// InventoryStats is derived from the full inventory collection on every read.
type InventoryStats struct {
	TotalCostValue   decimal.Decimal `json:"totalCostValue"`   // sum quantity x unitCost
	TotalRetailValue decimal.Decimal `json:"totalRetailValue"` // sum quantity x (unitPrice or unitCost)
	LowStockCount    int             `json:"lowStockCount"`
}

// BalancePoint is one step of the running-balance chart series.
type BalancePoint struct {
	Date           time.Time       `json:"date"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// CategoryTotal is one slice of the expense breakdown. Entries keep the
// insertion order of each category's first occurrence so chart colors stay
// stable between reads.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}
