package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account mirrors the accounts relation. balance carries a CHECK (balance >= 0)
// constraint as a backstop behind the transaction processor's overdraft guard.
type Account struct {
	AccountNumber  int64           `db:"account_number"`
	AccountType    AccountType     `db:"account_type"`
	OpeningDate    time.Time       `db:"opening_date"`
	OpeningBalance decimal.Decimal `db:"opening_balance"`
	Balance        decimal.Decimal `db:"balance"`
	ApplicationID  string          `db:"application_id"`
	AuditFields
}

// AccountHolder mirrors the account_holders relation, 1:1 with accounts.
type AccountHolder struct {
	AccountNumber int64     `db:"account_number"`
	HolderName    string    `db:"holder_name"`
	DateOfBirth   time.Time `db:"date_of_birth"`
	NationalID    string    `db:"national_id"`
	Mobile        string    `db:"mobile"`
	AuditFields
}
