package domain

import "github.com/shopspring/decimal"

// Customer is a saved buyer contact. TotalSpent is stored but not derived
// from the ledger; transactions carry no customer reference to derive it
// from.
type Customer struct {
	CustomerID string          `json:"customerID"` // Primary Key (UUID)
	Name       string          `json:"name"`       // Required
	Phone      string          `json:"phone"`
	Email      string          `json:"email"`
	Address    string          `json:"address"`
	Notes      string          `json:"notes"`
	TotalSpent decimal.Decimal `json:"totalSpent"`
}
