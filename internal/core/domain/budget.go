package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetPeriod labels a budget's nominal window. The label is stored and
// surfaced but spending comparisons are always cumulative across all months.
type BudgetPeriod string

const (
	PeriodMonthly BudgetPeriod = "monthly"
	PeriodWeekly  BudgetPeriod = "weekly"
	PeriodYearly  BudgetPeriod = "yearly"
)

// Budget is a per-category spending cap, independent of any single month.
// There is at most one budget per category; setting it again replaces it.
type Budget struct {
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Period    BudgetPeriod    `json:"period"`
	CreatedAt time.Time       `json:"createdAt"`
}
