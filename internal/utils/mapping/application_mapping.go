package mapping

import (
	"github.com/corebanking/retail_ledger_app/internal/core/domain"
	"github.com/corebanking/retail_ledger_app/internal/models"
)

// ToModelApplication converts a domain Application to a model Application
func ToModelApplication(d domain.Application) models.Application {
	return models.Application{
		ApplicationID:  d.ApplicationID,
		HolderName:     d.HolderName,
		DateOfBirth:    d.DateOfBirth,
		NationalID:     d.NationalID,
		Mobile:         d.Mobile,
		AccountType:    models.AccountType(d.AccountType),
		OpeningBalance: d.OpeningBalance,
		Address:        d.Address,
		KYCStatus:      models.KYCStatus(d.KYCStatus),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainApplication converts a model Application to a domain Application
func ToDomainApplication(m models.Application) domain.Application {
	return domain.Application{
		ApplicationID:  m.ApplicationID,
		HolderName:     m.HolderName,
		DateOfBirth:    m.DateOfBirth,
		NationalID:     m.NationalID,
		Mobile:         m.Mobile,
		AccountType:    domain.AccountType(m.AccountType),
		OpeningBalance: m.OpeningBalance,
		Address:        m.Address,
		KYCStatus:      domain.KYCStatus(m.KYCStatus),
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainApplicationSlice converts a slice of model Applications to a slice of domain Applications
func ToDomainApplicationSlice(ms []models.Application) []domain.Application {
	ds := make([]domain.Application, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainApplication(m)
	}
	return ds
}
