package dto

import (
	"time"

	"github.com/corebanking/retail_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountResponse defines the data returned for an account, with the holder
// snapshot inlined when it was requested.
type AccountResponse struct {
	AccountNumber  int64                  `json:"accountNumber"`
	AccountType    domain.AccountType     `json:"accountType"`
	OpeningDate    time.Time              `json:"openingDate"`
	OpeningBalance decimal.Decimal        `json:"openingBalance"`
	Balance        decimal.Decimal        `json:"balance"`
	Holder         *AccountHolderResponse `json:"holder,omitempty"`
}

// AccountHolderResponse mirrors the holder snapshot of an account.
type AccountHolderResponse struct {
	HolderName  string    `json:"holderName"`
	DateOfBirth time.Time `json:"dateOfBirth"`
	NationalID  string    `json:"nationalID"`
	Mobile      string    `json:"mobile"`
}

// ToAccountResponse converts a domain.Account (and optional holder) to a DTO
func ToAccountResponse(acc *domain.Account, holder *domain.AccountHolder) AccountResponse {
	resp := AccountResponse{
		AccountNumber:  acc.AccountNumber,
		AccountType:    acc.AccountType,
		OpeningDate:    acc.OpeningDate,
		OpeningBalance: acc.OpeningBalance,
		Balance:        acc.Balance,
	}
	if holder != nil {
		resp.Holder = &AccountHolderResponse{
			HolderName:  holder.HolderName,
			DateOfBirth: holder.DateOfBirth,
			NationalID:  holder.NationalID,
			Mobile:      holder.Mobile,
		}
	}
	return resp
}

// ToListAccountResponse converts a slice of domain.Account to DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i], nil)
	}
	return res
}

// AccountBalanceResponse defines the data returned for a balance query.
type AccountBalanceResponse struct {
	AccountNumber int64           `json:"accountNumber"`
	Balance       decimal.Decimal `json:"balance"`
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}
