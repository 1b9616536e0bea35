package dto

import (
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the data needed to record an expense against a
// month. When Category is the "Other" sentinel, CustomCategory supplies the
// effective category; resolution happens in the ledger service before
// validation.
type CreateExpenseRequest struct {
	Category       string          `json:"category"`
	CustomCategory string          `json:"customCategory"`
	Amount         decimal.Decimal `json:"amount"`
	Note           string          `json:"note"`
}
