package services

import (
	portsrepo "github.com/typoapparel/tbm_backend/internal/core/ports/repositories"
	portssvc "github.com/typoapparel/tbm_backend/internal/core/ports/services"
	"github.com/typoapparel/tbm_backend/internal/platform/config"
)

// NewServiceContainer wires every application service against the repository
// provider and returns the container the handlers consume.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Ledger:    NewLedgerService(repos.TransactionRepo),
		Inventory: NewInventoryService(repos.InventoryRepo, repos.TransactionRepo, repos.CascadeRepo),
		Customer:  NewCustomerService(repos.CustomerRepo),
		Profile:   NewProfileService(repos.ProfileRepo, cfg),
		Reporting: NewReportingService(repos.TransactionRepo, repos.InventoryRepo),
		Backup: NewBackupService(
			repos.TransactionRepo,
			repos.InventoryRepo,
			repos.CustomerRepo,
			repos.ProfileRepo,
			repos.SystemRepo,
		),
	}
}
