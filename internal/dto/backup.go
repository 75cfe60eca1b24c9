package dto

import (
	"time"

	"github.com/typoapparel/tbm_backend/internal/models"
)

// BackupFormatVersion tags payloads written by the current codec. Version 1
// payloads (objects without the tag) and the legacy bare-array shape are
// still accepted on import.
const BackupFormatVersion = 2

// BackupPayload is the exported interchange form of the full entity set.
// Members reuse the stored models so export bytes match storage bytes.
type BackupPayload struct {
	Version      int                     `json:"version"`
	ExportedAt   time.Time               `json:"exportedAt"`
	Transactions []models.Transaction    `json:"transactions"`
	Inventory    []models.InventoryItem  `json:"inventory"`
	Customers    []models.Customer       `json:"customers"`
	Profile      *models.BusinessProfile `json:"profile,omitempty"`
}

// ResetRequest guards the full store reset; Confirm must equal the erase
// phrase checked by the handler.
type ResetRequest struct {
	Confirm string `json:"confirm" binding:"required"`
}

// ImportResult reports what an import replaced. Import is a destructive
// whole-collection replacement, never a merge.
type ImportResult struct {
	Legacy   bool           `json:"legacy"` // true when a bare transaction array was imported
	Replaced []string       `json:"replaced"`
	Counts   map[string]int `json:"counts"`
}
