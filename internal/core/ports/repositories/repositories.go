package repositories

import "context"

// SystemRepository covers store-wide operations.
type SystemRepository interface {
	// ClearAll erases every stored collection. Used by the full reset.
	ClearAll(ctx context.Context) error
}

// RepositoryProvider bundles all repositories for injection into the service
// container.
type RepositoryProvider struct {
	TransactionRepo TransactionRepository
	InventoryRepo   InventoryRepository
	CascadeRepo     CascadeRepository
	CustomerRepo    CustomerRepository
	ProfileRepo     ProfileRepository
	SystemRepo      SystemRepository
}
