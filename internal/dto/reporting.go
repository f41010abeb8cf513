package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PassbookResponse is the date-filtered rendering of an account's ledger.
type PassbookResponse struct {
	AccountNumber int64                 `json:"accountNumber"`
	From          time.Time             `json:"from"`
	To            time.Time             `json:"to"`
	Entries       []TransactionResponse `json:"entries"`
	ClosingBalance decimal.Decimal      `json:"closingBalance"`
}

// AccountSummaryResponse totals an account's activity over a period.
type AccountSummaryResponse struct {
	AccountNumber int64           `json:"accountNumber"`
	From          time.Time       `json:"from"`
	To            time.Time       `json:"to"`
	CreditTotal   decimal.Decimal `json:"creditTotal"`
	DebitTotal    decimal.Decimal `json:"debitTotal"`
	CreditCount   int             `json:"creditCount"`
	DebitCount    int             `json:"debitCount"`
	Balance       decimal.Decimal `json:"balance"`
}

// TopBalancesParams defines query parameters for the top-N report.
type TopBalancesParams struct {
	Limit int `form:"limit,default=10"`
}
