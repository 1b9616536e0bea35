package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryOther is the sentinel category selection that must be resolved to a
// user-provided custom category before validation.
const CategoryOther = "Other"

// ExpenseCategories lists the predefined categories offered to the user.
// CategoryOther is always last; any free-text value is also a valid category
// once resolved.
var ExpenseCategories = []string{
	"Food",
	"Transportation",
	"Housing",
	"Utilities",
	"Entertainment",
	"Healthcare",
	"Shopping",
	"Education",
	CategoryOther,
}

// MaxExpenseAmount is the upper bound on a single expense. Larger values are
// rejected as implausible.
var MaxExpenseAmount = decimal.NewFromInt(1_000_000)

// Expense is one spending event, owned exclusively by its parent Month.
type Expense struct {
	ID        string          `json:"id"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Note      string          `json:"note"`
	Date      time.Time       `json:"date"`
	CreatedAt time.Time       `json:"createdAt"`
}
