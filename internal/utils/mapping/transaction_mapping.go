package mapping

import (
	"github.com/corebanking/retail_ledger_app/internal/core/domain"
	"github.com/corebanking/retail_ledger_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:  d.TransactionID,
		AccountNumber:  d.AccountNumber,
		PaymentType:    models.PaymentType(d.PaymentType),
		Amount:         d.Amount,
		RunningBalance: d.RunningBalance,
		TransactionAt:  d.TransactionAt,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:  m.TransactionID,
		AccountNumber:  m.AccountNumber,
		PaymentType:    domain.PaymentType(m.PaymentType),
		Amount:         m.Amount,
		RunningBalance: m.RunningBalance,
		TransactionAt:  m.TransactionAt,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to a slice of domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
