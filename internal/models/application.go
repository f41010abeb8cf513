package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType is the requested kind of account.
type AccountType string

const (
	Savings AccountType = "SAVINGS"
	Current AccountType = "CURRENT"
)

// KYCStatus is the identity-verification state of an application.
type KYCStatus string

const (
	KYCPending  KYCStatus = "PENDING"
	KYCApproved KYCStatus = "APPROVED"
	KYCRejected KYCStatus = "REJECTED"
)

// Application mirrors the applications relation. Rows are never deleted;
// national_id and mobile carry global unique indexes.
type Application struct {
	ApplicationID  string          `db:"application_id"`
	HolderName     string          `db:"holder_name"`
	DateOfBirth    time.Time       `db:"date_of_birth"`
	NationalID     string          `db:"national_id"`
	Mobile         string          `db:"mobile"`
	AccountType    AccountType     `db:"account_type"`
	OpeningBalance decimal.Decimal `db:"opening_balance"`
	Address        string          `db:"address"`
	KYCStatus      KYCStatus       `db:"kyc_status"`
	AuditFields
}
