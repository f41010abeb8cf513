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
	"github.com/corebanking/retail_ledger_app/internal/dto"
	"github.com/corebanking/retail_ledger_app/internal/middleware"
)

// transactionService is the transaction processor. Validation here is pure;
// the single mutating step lives in the repository's atomic Apply.
type transactionService struct {
	transactionRepo portsrepo.TransactionWriterRepo
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(transactionRepo portsrepo.TransactionWriterRepo) portssvc.TransactionSvcFacade {
	return &transactionService{
		transactionRepo: transactionRepo,
	}
}

// Ensure transactionService implements the portssvc.TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// Apply validates and applies one credit or debit request.
func (s *transactionService) Apply(ctx context.Context, req dto.ApplyTransactionRequest, tellerID string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.PaymentType != domain.Debit && req.PaymentType != domain.Credit {
		return nil, fmt.Errorf("%w: unknown payment type %q", apperrors.ErrValidation, req.PaymentType)
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, apperrors.ErrInvalidAmount
	}

	txn, err := s.transactionRepo.ApplyTransaction(ctx, req.AccountNumber, req.PaymentType, req.Amount, time.Now().UTC(), tellerID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Transaction against unknown account", slog.Int64("account_number", req.AccountNumber))
		case errors.Is(err, apperrors.ErrInsufficientFunds):
			logger.Warn("Debit rejected for insufficient funds",
				slog.Int64("account_number", req.AccountNumber),
				slog.String("amount", req.Amount.String()))
		default:
			logger.Error("Failed to apply transaction", slog.Int64("account_number", req.AccountNumber), slog.String("error", err.Error()))
		}
		return nil, err
	}

	logger.Info("Transaction applied",
		slog.Int64("transaction_id", txn.TransactionID),
		slog.Int64("account_number", txn.AccountNumber),
		slog.String("payment_type", string(txn.PaymentType)),
		slog.String("amount", txn.Amount.String()))
	return txn, nil
}
