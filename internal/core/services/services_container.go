package services

import (
	portsrepo "github.com/corebanking/retail_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/corebanking/retail_ledger_app/internal/core/ports/services"
	"github.com/corebanking/retail_ledger_app/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Application = NewApplicationService(
		repos.ApplicationRepo,
		WithMinimumOpeningBalances(cfg.SavingsMinOpeningBalance, cfg.CurrentMinOpeningBalance),
	)
	container.Ledger = NewLedgerService(repos.AccountRepo, repos.TransactionRepo)
	container.Transaction = NewTransactionService(repos.TransactionRepo)

	// Reporting consumes only the ledger read surface.
	container.Reporting = NewReportingService(container.Ledger)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.ApplicationSvcFacade = (*applicationService)(nil)
	_ portssvc.LedgerSvcFacade      = (*ledgerService)(nil)
	_ portssvc.TransactionSvcFacade = (*transactionService)(nil)
	_ portssvc.ReportingService     = (*reportingService)(nil)
)
