package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/corebanking/retail_ledger_app/internal/apperrors"
	"github.com/corebanking/retail_ledger_app/internal/core/domain"
	portsrepo "github.com/corebanking/retail_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/corebanking/retail_ledger_app/internal/core/ports/services"
	"github.com/corebanking/retail_ledger_app/internal/middleware"
)

// ledgerService is the read surface of the account ledger engine. All reads
// go against committed state, so a balance always corresponds to a committed
// prefix of the transaction log.
type ledgerService struct {
	accountRepo     portsrepo.AccountRepositoryFacade
	transactionRepo portsrepo.TransactionReaderRepo
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(accountRepo portsrepo.AccountRepositoryFacade, transactionRepo portsrepo.TransactionReaderRepo) portssvc.LedgerSvcFacade {
	return &ledgerService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
}

// Ensure ledgerService implements the portssvc.LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// GetBalance returns the authoritative current balance for an account.
func (s *ledgerService) GetBalance(ctx context.Context, accountNumber int64) (decimal.Decimal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByNumber(ctx, accountNumber)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to read account balance", slog.Int64("account_number", accountNumber), slog.String("error", err.Error()))
		}
		return decimal.Zero, err
	}
	return account.Balance, nil
}

// GetAccount retrieves an account together with its holder snapshot.
func (s *ledgerService) GetAccount(ctx context.Context, accountNumber int64) (*domain.Account, *domain.AccountHolder, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByNumber(ctx, accountNumber)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find account", slog.Int64("account_number", accountNumber), slog.String("error", err.Error()))
		}
		return nil, nil, err
	}

	holder, err := s.accountRepo.FindAccountHolder(ctx, accountNumber)
	if err != nil {
		logger.Error("Failed to find account holder", slog.Int64("account_number", accountNumber), slog.String("error", err.Error()))
		return nil, nil, fmt.Errorf("failed to find holder for account %d: %w", accountNumber, err)
	}

	return account, holder, nil
}

// ListAccounts retrieves a paginated list of accounts.
func (s *ledgerService) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if limit <= 0 {
		limit = 20
	}
	accounts, err := s.accountRepo.ListAccounts(ctx, limit, offset)
	if err != nil {
		logger.Error("Failed to list accounts", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// ListTransactions retrieves an account's ledger entries within [from, to].
// A zero from or to leaves that side of the window open.
func (s *ledgerService) ListTransactions(ctx context.Context, accountNumber int64, from time.Time, to time.Time) ([]domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	// Account existence check; distinguishes an empty ledger from a missing account.
	if _, err := s.accountRepo.FindAccountByNumber(ctx, accountNumber); err != nil {
		return nil, err
	}

	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return nil, fmt.Errorf("%w: date window end precedes start", apperrors.ErrValidation)
	}

	transactions, err := s.transactionRepo.ListTransactionsByAccount(ctx, accountNumber, from, to)
	if err != nil {
		logger.Error("Failed to list transactions", slog.Int64("account_number", accountNumber), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list transactions for account %d: %w", accountNumber, err)
	}
	return transactions, nil
}
