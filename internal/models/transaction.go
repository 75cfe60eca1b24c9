// Package models holds the interchange shapes: the JSON written to the
// key-value store and emitted by the backup codec. Field names and types
// (plain numbers for amounts, ISO 8601 strings for dates) must stay
// byte-compatible with backups written by earlier releases of the client.
package models

// Transaction is the stored/exported form of a ledger record.
type Transaction struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"` // ISO 8601 / RFC 3339
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"` // income or expense
	Category    string  `json:"category"`
}
