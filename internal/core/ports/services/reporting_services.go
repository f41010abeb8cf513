package services

import (
	"context"
	"time"

	"github.com/corebanking/retail_ledger_app/internal/dto"
)

// ReportingService defines read-only aggregate reports. Implementations
// consume only the ledger read surface; they add no core state of their own.
type ReportingService interface {
	// Passbook renders the date-filtered ledger of an account with running balances.
	Passbook(ctx context.Context, accountNumber int64, from, to time.Time) (*dto.PassbookResponse, error)

	// TopBalances returns the n accounts with the highest balances.
	TopBalances(ctx context.Context, n int) ([]dto.AccountBalanceResponse, error)

	// AccountSummary totals the credits and debits of an account within [from, to].
	AccountSummary(ctx context.Context, accountNumber int64, from, to time.Time) (*dto.AccountSummaryResponse, error)
}
