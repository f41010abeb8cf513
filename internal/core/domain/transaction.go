package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentType indicates whether a ledger entry is a Debit or a Credit.
type PaymentType string

const (
	Debit  PaymentType = "DEBIT"
	Credit PaymentType = "CREDIT"
)

// Transaction is one append-only ledger entry for an account. Entries are
// immutable once accepted; they are never updated or deleted.
type Transaction struct {
	TransactionID  int64           `json:"transactionID"` // Monotonically increasing, assigned at insertion
	AccountNumber  int64           `json:"accountNumber"`
	PaymentType    PaymentType     `json:"paymentType"`
	Amount         decimal.Decimal `json:"amount"`         // Strictly positive
	RunningBalance decimal.Decimal `json:"runningBalance"` // Account balance immediately after this entry
	TransactionAt  time.Time       `json:"transactionAt"`  // Assigned at insertion if not supplied
	AuditFields
}

// SignedAmount returns the amount with the sign it contributes to the
// balance: positive for credits, negative for debits.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.PaymentType == Debit {
		return t.Amount.Neg()
	}
	return t.Amount
}
