package dto

import (
	"github.com/go-playground/validator/v10"

	"github.com/typoapparel/tbm_backend/internal/core/domain"
)

// RegisterValidations attaches the cross-field rules that binding tags can't
// express to gin's validator engine. Called once at startup.
func RegisterValidations(v *validator.Validate) {
	v.RegisterStructValidation(createTransactionValidation, CreateTransactionRequest{})
	v.RegisterStructValidation(updateTransactionValidation, UpdateTransactionRequest{})
}

func createTransactionValidation(sl validator.StructLevel) {
	req := sl.Current().Interface().(CreateTransactionRequest)
	validateCategory(sl, req.Type, req.Category)
}

func updateTransactionValidation(sl validator.StructLevel) {
	req := sl.Current().Interface().(UpdateTransactionRequest)
	validateCategory(sl, req.Type, req.Category)
}

// validateCategory enforces that the category belongs to the set for the
// transaction type. Only checked at input time; imported data bypasses it.
func validateCategory(sl validator.StructLevel, txType, category string) {
	if txType == "" || category == "" {
		return // required tags already report these
	}
	if !domain.IsValidCategory(domain.TransactionType(txType), category) {
		sl.ReportError(category, "Category", "category", "txcategory", "")
	}
}
