package dto

import (
	"github.com/corebanking/retail_ledger_app/internal/core/domain"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidators wires the enum validators used by the binding tags
// on the request DTOs. Called once at startup against gin's validator engine.
func RegisterCustomValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("accounttype", validateAccountType); err != nil {
		return err
	}
	return v.RegisterValidation("paymenttype", validatePaymentType)
}

func validateAccountType(fl validator.FieldLevel) bool {
	switch domain.AccountType(fl.Field().String()) {
	case domain.Savings, domain.Current:
		return true
	}
	return false
}

func validatePaymentType(fl validator.FieldLevel) bool {
	switch domain.PaymentType(fl.Field().String()) {
	case domain.Debit, domain.Credit:
		return true
	}
	return false
}
