package repositories

import (
	"context"
	"time"

	"github.com/corebanking/retail_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionReaderRepo defines read operations on the ledger
type TransactionReaderRepo interface {
	// ListTransactionsByAccount retrieves the ledger entries for an account
	// within [from, to], ordered by transaction time ascending with
	// transaction ID ascending as the tiebreaker.
	ListTransactionsByAccount(ctx context.Context, accountNumber int64, from time.Time, to time.Time) ([]domain.Transaction, error)
}

// TransactionWriterRepo defines the single mutating ledger operation
type TransactionWriterRepo interface {
	// ApplyTransaction atomically applies one credit or debit: it locks the
	// account row, rejects an overdrawing debit with
	// apperrors.ErrInsufficientFunds before anything is written, and
	// otherwise inserts the ledger entry and updates the balance in the same
	// database transaction. A missing account yields apperrors.ErrNotFound.
	// The returned transaction carries its assigned ID, timestamp and
	// running balance.
	ApplyTransaction(ctx context.Context, accountNumber int64, paymentType domain.PaymentType, amount decimal.Decimal, appliedAt time.Time, appliedBy string) (*domain.Transaction, error)
}

// TransactionRepositoryFacade combines ledger read and write interfaces
type TransactionRepositoryFacade interface {
	TransactionReaderRepo
	TransactionWriterRepo
}
