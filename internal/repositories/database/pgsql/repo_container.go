package pgsql

import (
	portsrepo "github.com/corebanking/retail_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	applicationRepo := newPgxApplicationRepository(dbPool)
	accountRepo := newPgxAccountRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool)

	return portsrepo.RepositoryProvider{
		ApplicationRepo: applicationRepo,
		AccountRepo:     accountRepo,
		TransactionRepo: transactionRepo,
	}
}
