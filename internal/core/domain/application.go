package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType is the kind of account an applicant is asking for.
type AccountType string

const (
	Savings AccountType = "SAVINGS"
	Current AccountType = "CURRENT"
)

// KYCStatus is the identity-verification state of an application.
// PENDING is the only non-terminal state.
type KYCStatus string

const (
	KYCPending  KYCStatus = "PENDING"
	KYCApproved KYCStatus = "APPROVED"
	KYCRejected KYCStatus = "REJECTED"
)

// Application is a single account-onboarding attempt. Applications are never
// deleted; identity fields are immutable once admitted so that national
// identity and mobile uniqueness stays permanent and global.
type Application struct {
	ApplicationID  string          `json:"applicationID"` // Primary Key (UUID)
	HolderName     string          `json:"holderName"`
	DateOfBirth    time.Time       `json:"dateOfBirth"`
	NationalID     string          `json:"nationalID"` // Unique across all applications
	Mobile         string          `json:"mobile"`     // Unique across all applications
	AccountType    AccountType     `json:"accountType"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Address        string          `json:"address"`
	KYCStatus      KYCStatus       `json:"kycStatus"`
	AuditFields
}

// IsTerminal reports whether the application has reached APPROVED or
// REJECTED. Terminal applications accept no further transitions; in
// particular a second approval must never provision a second account.
func (a *Application) IsTerminal() bool {
	return a.KYCStatus == KYCApproved || a.KYCStatus == KYCRejected
}

// CanTransitionTo reports whether moving to the target status is a legal
// state-machine step (PENDING -> APPROVED, PENDING -> REJECTED only).
func (a *Application) CanTransitionTo(target KYCStatus) bool {
	if a.KYCStatus != KYCPending {
		return false
	}
	return target == KYCApproved || target == KYCRejected
}
