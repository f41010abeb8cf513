package repositories

import (
	"context"

	"github.com/corebanking/retail_ledger_app/internal/core/domain"
)

// AccountRepositoryFacade defines read operations for account data. Accounts
// are created only inside the approval transaction and their balance is
// mutated only by the transaction processor, so there is no standalone
// account write surface.
type AccountRepositoryFacade interface {
	// FindAccountByNumber retrieves an account by its account number.
	FindAccountByNumber(ctx context.Context, accountNumber int64) (*domain.Account, error)

	// FindAccountHolder retrieves the 1:1 holder snapshot for an account.
	FindAccountHolder(ctx context.Context, accountNumber int64) (*domain.AccountHolder, error)

	// ListAccounts retrieves a paginated list of accounts ordered by account number.
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)
}
