package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction is money in or money out.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// Transaction is a single ledger record. The ID is assigned at creation and
// stable across edits; Date is the creation timestamp and survives edits too.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	Date          time.Time       `json:"date"`          // Set at creation, preserved on edit
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"` // Non-negative
	Type          TransactionType `json:"type"`   // income or expense
	Category      string          `json:"category"`
}

// Signed returns the amount with its cash-flow sign: positive for income,
// negative for expense. Used by the running-balance series.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == Expense {
		return t.Amount.Neg()
	}
	return t.Amount
}
