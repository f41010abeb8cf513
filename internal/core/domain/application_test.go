package domain_test

import (
	"testing"

	"github.com/corebanking/retail_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestApplication_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name   string
		status domain.KYCStatus
		target domain.KYCStatus
		want   bool
	}{
		{
			name:   "pending can be approved",
			status: domain.KYCPending,
			target: domain.KYCApproved,
			want:   true,
		},
		{
			name:   "pending can be rejected",
			status: domain.KYCPending,
			target: domain.KYCRejected,
			want:   true,
		},
		{
			name:   "approved is terminal",
			status: domain.KYCApproved,
			target: domain.KYCRejected,
			want:   false,
		},
		{
			name:   "approved cannot be re-approved",
			status: domain.KYCApproved,
			target: domain.KYCApproved,
			want:   false,
		},
		{
			name:   "rejected is terminal",
			status: domain.KYCRejected,
			target: domain.KYCApproved,
			want:   false,
		},
		{
			name:   "pending cannot transition to pending",
			status: domain.KYCPending,
			target: domain.KYCPending,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := domain.Application{KYCStatus: tt.status}
			assert.Equal(t, tt.want, app.CanTransitionTo(tt.target))
		})
	}
}

func TestApplication_IsTerminal(t *testing.T) {
	assert.False(t, (&domain.Application{KYCStatus: domain.KYCPending}).IsTerminal())
	assert.True(t, (&domain.Application{KYCStatus: domain.KYCApproved}).IsTerminal())
	assert.True(t, (&domain.Application{KYCStatus: domain.KYCRejected}).IsTerminal())
}

func TestTransaction_SignedAmount(t *testing.T) {
	amount := decimal.NewFromInt(500)

	debit := domain.Transaction{PaymentType: domain.Debit, Amount: amount}
	credit := domain.Transaction{PaymentType: domain.Credit, Amount: amount}

	assert.True(t, debit.SignedAmount().Equal(amount.Neg()))
	assert.True(t, credit.SignedAmount().Equal(amount))
}
