package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is the authoritative account record. The balance column is the
// derived running total of the ledger and is mutated only by the transaction
// processor, under the same atomic scope as the ledger row it reflects.
type Account struct {
	AccountNumber  int64           `json:"accountNumber"` // Monotonic, assigned at creation, first is 10000
	AccountType    AccountType     `json:"accountType"`   // Copied from the approving application
	OpeningDate    time.Time       `json:"openingDate"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Balance        decimal.Decimal `json:"balance"`       // Always >= 0
	ApplicationID  string          `json:"applicationID"` // The approving application
	AuditFields
}

// AccountHolder is the 1:1 personal-details snapshot taken from the approved
// application at account creation. It is not independently mutable afterward.
type AccountHolder struct {
	AccountNumber int64     `json:"accountNumber"`
	HolderName    string    `json:"holderName"`
	DateOfBirth   time.Time `json:"dateOfBirth"`
	NationalID    string    `json:"nationalID"`
	Mobile        string    `json:"mobile"`
	AuditFields
}
