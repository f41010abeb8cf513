package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/corebanking/retail_ledger_app/internal/core/domain"
	portssvc "github.com/corebanking/retail_ledger_app/internal/core/ports/services"
	"github.com/corebanking/retail_ledger_app/internal/dto"
	"github.com/corebanking/retail_ledger_app/internal/middleware"
)

// reportingService computes aggregates purely from the ledger engine's read
// surface; it owns no state and needs no extra core operations.
type reportingService struct {
	ledgerSvc portssvc.LedgerReaderSvc
}

// NewReportingService creates a new ReportingService.
func NewReportingService(ledgerSvc portssvc.LedgerReaderSvc) portssvc.ReportingService {
	return &reportingService{
		ledgerSvc: ledgerSvc,
	}
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// Passbook renders the date-filtered ledger of an account with running balances.
func (s *reportingService) Passbook(ctx context.Context, accountNumber int64, from, to time.Time) (*dto.PassbookResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entries, err := s.ledgerSvc.ListTransactions(ctx, accountNumber, from, to)
	if err != nil {
		return nil, err
	}

	closing := decimal.Zero
	if len(entries) > 0 {
		closing = entries[len(entries)-1].RunningBalance
	} else {
		// Empty window: fall back to the account's current balance.
		closing, err = s.ledgerSvc.GetBalance(ctx, accountNumber)
		if err != nil {
			return nil, err
		}
	}

	logger.Debug("Passbook generated", slog.Int64("account_number", accountNumber), slog.Int("entry_count", len(entries)))
	return &dto.PassbookResponse{
		AccountNumber:  accountNumber,
		From:           from,
		To:             to,
		Entries:        dto.ToTransactionResponses(entries),
		ClosingBalance: closing,
	}, nil
}

// TopBalances returns the n accounts with the highest balances.
func (s *reportingService) TopBalances(ctx context.Context, n int) ([]dto.AccountBalanceResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if n <= 0 {
		n = 10
	}

	// Page through the full account list; the reporting layer is allowed
	// only the read surface, so the ranking happens here.
	const pageSize = 100
	var accounts []domain.Account
	for offset := 0; ; offset += pageSize {
		page, err := s.ledgerSvc.ListAccounts(ctx, pageSize, offset)
		if err != nil {
			return nil, fmt.Errorf("failed to list accounts for top balances: %w", err)
		}
		accounts = append(accounts, page...)
		if len(page) < pageSize {
			break
		}
	}

	sort.SliceStable(accounts, func(i, j int) bool {
		if !accounts[i].Balance.Equal(accounts[j].Balance) {
			return accounts[i].Balance.GreaterThan(accounts[j].Balance)
		}
		return accounts[i].AccountNumber < accounts[j].AccountNumber
	})
	if len(accounts) > n {
		accounts = accounts[:n]
	}

	result := make([]dto.AccountBalanceResponse, len(accounts))
	for i, acc := range accounts {
		result[i] = dto.AccountBalanceResponse{
			AccountNumber: acc.AccountNumber,
			Balance:       acc.Balance,
		}
	}

	logger.Debug("Top balances computed", slog.Int("requested", n), slog.Int("returned", len(result)))
	return result, nil
}

// AccountSummary totals the credits and debits of an account within [from, to].
func (s *reportingService) AccountSummary(ctx context.Context, accountNumber int64, from, to time.Time) (*dto.AccountSummaryResponse, error) {
	entries, err := s.ledgerSvc.ListTransactions(ctx, accountNumber, from, to)
	if err != nil {
		return nil, err
	}

	balance, err := s.ledgerSvc.GetBalance(ctx, accountNumber)
	if err != nil {
		return nil, err
	}

	summary := &dto.AccountSummaryResponse{
		AccountNumber: accountNumber,
		From:          from,
		To:            to,
		CreditTotal:   decimal.Zero,
		DebitTotal:    decimal.Zero,
		Balance:       balance,
	}
	for _, txn := range entries {
		if txn.PaymentType == domain.Credit {
			summary.CreditTotal = summary.CreditTotal.Add(txn.Amount)
			summary.CreditCount++
		} else {
			summary.DebitTotal = summary.DebitTotal.Add(txn.Amount)
			summary.DebitCount++
		}
	}

	return summary, nil
}
