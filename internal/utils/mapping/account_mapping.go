package mapping

import (
	"github.com/corebanking/retail_ledger_app/internal/core/domain"
	"github.com/corebanking/retail_ledger_app/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountNumber:  d.AccountNumber,
		AccountType:    models.AccountType(d.AccountType),
		OpeningDate:    d.OpeningDate,
		OpeningBalance: d.OpeningBalance,
		Balance:        d.Balance,
		ApplicationID:  d.ApplicationID,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountNumber:  m.AccountNumber,
		AccountType:    domain.AccountType(m.AccountType),
		OpeningDate:    m.OpeningDate,
		OpeningBalance: m.OpeningBalance,
		Balance:        m.Balance,
		ApplicationID:  m.ApplicationID,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}

// ToModelAccountHolder converts a domain AccountHolder to a model AccountHolder
func ToModelAccountHolder(d domain.AccountHolder) models.AccountHolder {
	return models.AccountHolder{
		AccountNumber: d.AccountNumber,
		HolderName:    d.HolderName,
		DateOfBirth:   d.DateOfBirth,
		NationalID:    d.NationalID,
		Mobile:        d.Mobile,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccountHolder converts a model AccountHolder to a domain AccountHolder
func ToDomainAccountHolder(m models.AccountHolder) domain.AccountHolder {
	return domain.AccountHolder{
		AccountNumber: m.AccountNumber,
		HolderName:    m.HolderName,
		DateOfBirth:   m.DateOfBirth,
		NationalID:    m.NationalID,
		Mobile:        m.Mobile,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
