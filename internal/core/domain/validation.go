package domain

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// validate is shared by the input validators below; Var checks are stateless.
var validate = validator.New()

// ValidateMonthInput checks a proposed month against all domain rules and
// returns every violated rule's message. Rules are checked independently, not
// short-circuited; an empty result means the input is valid. No I/O.
func ValidateMonthInput(month string, year int, income decimal.Decimal) []string {
	var errs []string

	if strings.TrimSpace(month) == "" {
		errs = append(errs, "Please select a month")
	} else if !IsMonthName(month) {
		errs = append(errs, "Please select a valid month")
	}

	if err := validate.Var(year, "min=2020,max=2030"); err != nil {
		errs = append(errs, "Please enter a valid year between 2020 and 2030")
	}

	if income.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "Please enter a valid income amount")
	} else if income.GreaterThan(MaxIncome) {
		errs = append(errs, "Income amount seems unreasonably high. Please verify.")
	}

	return errs
}

// ValidateExpenseInput checks a proposed expense against all domain rules.
// The category must already be resolved (custom-category handling happens
// before validation). Same contract as ValidateMonthInput.
func ValidateExpenseInput(monthID, category string, amount decimal.Decimal) []string {
	var errs []string

	if strings.TrimSpace(monthID) == "" {
		errs = append(errs, "Please select a month first")
	}

	if strings.TrimSpace(category) == "" {
		errs = append(errs, "Please select an expense category")
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "Please enter a valid expense amount")
	} else if amount.GreaterThan(MaxExpenseAmount) {
		errs = append(errs, "Expense amount seems unreasonably high. Please verify.")
	}

	return errs
}

// ValidateBudgetInput checks a proposed budget cap. Category must be non-empty
// and the cap positive; the period label is normalized by the caller.
func ValidateBudgetInput(category string, amount decimal.Decimal) []string {
	var errs []string

	if strings.TrimSpace(category) == "" {
		errs = append(errs, "Please select a budget category")
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "Please enter a valid budget amount")
	}

	return errs
}
