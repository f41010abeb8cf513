package services

import (
	"context"

	"github.com/corebanking/retail_ledger_app/internal/core/domain"
	"github.com/corebanking/retail_ledger_app/internal/dto"
)

// TransactionSvcFacade is the transaction processor: it validates and applies
// individual credit/debit requests against the ledger engine.
type TransactionSvcFacade interface {
	// Apply validates the request and applies it atomically. Possible
	// failures: apperrors.ErrInvalidAmount, apperrors.ErrNotFound (account),
	// apperrors.ErrInsufficientFunds. A failed request leaves all persisted
	// state unchanged.
	Apply(ctx context.Context, req dto.ApplyTransactionRequest, tellerID string) (*domain.Transaction, error)
}
