package domain

// Category sets per transaction type. A transaction's category must be a
// member of the set for its type; this is enforced at input time only, so
// imported data is accepted as-is.
var Categories = map[TransactionType][]string{
	Income: {
		"Sales Revenue",
		"Wholesale",
		"Pre-order",
		"Other",
	},
	Expense: {
		"Inventory (Fabric)",
		"Supplies (Ink/Dye)",
		"Logistics",
		"Marketing",
		"Rent/Utilities",
		"Salary",
		"Inventory",
		"Other",
	},
}

// Categories used by synthesized cascade transactions.
const (
	CategoryInventoryPurchase = "Inventory"     // expense logged when stock is purchased
	CategoryQuickSale         = "Sales Revenue" // income logged by a quick-sell
)

// CategoriesFor returns the allowed categories for a transaction type.
func CategoriesFor(t TransactionType) []string {
	return Categories[t]
}

// IsValidCategory reports whether category belongs to the set for the type.
func IsValidCategory(t TransactionType, category string) bool {
	for _, c := range Categories[t] {
		if c == category {
			return true
		}
	}
	return false
}
