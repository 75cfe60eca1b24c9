package models

// InventoryItem is the stored/exported form of a stock line.
type InventoryItem struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Quantity     int64   `json:"quantity"`
	UnitCost     float64 `json:"unitCost"`
	UnitPrice    float64 `json:"unitPrice"`
	Size         string  `json:"size,omitempty"`
	Color        string  `json:"color,omitempty"`
	ReorderLevel int64   `json:"reorderLevel"`
	LastUpdated  string  `json:"lastUpdated"` // ISO 8601 / RFC 3339
}
