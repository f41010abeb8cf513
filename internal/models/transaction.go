package models

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

// Transaction mirrors the transactions relation. transaction_id is a
// BIGSERIAL assigned at insertion; rows are append-only.
type Transaction struct {
	TransactionID  int64           `db:"transaction_id"`
	AccountNumber  int64           `db:"account_number"`
	PaymentType    PaymentType     `db:"payment_type"`
	Amount         decimal.Decimal `db:"amount"`
	RunningBalance decimal.Decimal `db:"running_balance"`
	TransactionAt  time.Time       `db:"transaction_at"`
	AuditFields
}
