package dto

import (
	"time"

	"github.com/corebanking/retail_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ApplyTransactionRequest is a teller-initiated credit or debit.
type ApplyTransactionRequest struct {
	AccountNumber int64              `json:"accountNumber" binding:"required"`
	PaymentType   domain.PaymentType `json:"paymentType" binding:"required,paymenttype"`
	Amount        decimal.Decimal    `json:"amount" binding:"required"`
}

// TransactionResponse defines the data returned for a ledger entry.
type TransactionResponse struct {
	TransactionID  int64              `json:"transactionID"`
	AccountNumber  int64              `json:"accountNumber"`
	PaymentType    domain.PaymentType `json:"paymentType"`
	Amount         decimal.Decimal    `json:"amount"`
	RunningBalance decimal.Decimal    `json:"runningBalance"`
	TransactionAt  time.Time          `json:"transactionAt"`
}

// ToTransactionResponse converts a domain.Transaction to a DTO
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:  txn.TransactionID,
		AccountNumber:  txn.AccountNumber,
		PaymentType:    txn.PaymentType,
		Amount:         txn.Amount,
		RunningBalance: txn.RunningBalance,
		TransactionAt:  txn.TransactionAt,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to DTOs
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}

// ListTransactionsParams defines query parameters for the ledger listing.
// Zero values widen the window to the whole ledger.
type ListTransactionsParams struct {
	From time.Time `form:"from" time_format:"2006-01-02"`
	To   time.Time `form:"to" time_format:"2006-01-02"`
}

// ListTransactionsResponse wraps the ledger listing.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}
