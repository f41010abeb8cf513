package services

import (
	"context"
	"time"

	"github.com/corebanking/retail_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerReaderSvc defines the read surface of the account ledger engine.
// These reads observe only committed state: a caller never sees a balance
// that does not correspond to a committed prefix of the transaction log.
type LedgerReaderSvc interface {
	// GetBalance returns the authoritative current balance for an account.
	GetBalance(ctx context.Context, accountNumber int64) (decimal.Decimal, error)

	// GetAccount retrieves an account together with its holder snapshot.
	GetAccount(ctx context.Context, accountNumber int64) (*domain.Account, *domain.AccountHolder, error)

	// ListAccounts retrieves a paginated list of accounts.
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)

	// ListTransactions retrieves an account's ledger entries within
	// [from, to], ordered by transaction time then transaction ID.
	ListTransactions(ctx context.Context, accountNumber int64, from time.Time, to time.Time) ([]domain.Transaction, error)
}

// LedgerSvcFacade is the full ledger engine surface.
type LedgerSvcFacade interface {
	LedgerReaderSvc
}
