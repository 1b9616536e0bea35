package domain

import (
	"github.com/shopspring/decimal"
)

// BudgetAlert classifies how far a category's cumulative spending has eaten
// into its budget cap.
type BudgetAlert string

const (
	AlertNormal   BudgetAlert = "normal"
	AlertWarning  BudgetAlert = "warning"
	AlertExceeded BudgetAlert = "exceeded"
)

// ProgressLevel is the independent scale used for progress-bar coloring. Its
// thresholds differ from BudgetAlert's on purpose.
type ProgressLevel string

const (
	ProgressNormal  ProgressLevel = "normal"
	ProgressWarning ProgressLevel = "warning"
	ProgressDanger  ProgressLevel = "danger"
)

// CategoryAmount represents a category with its summed spending for reports.
type CategoryAmount struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// BudgetStatusRow is one budget's utilization snapshot for the dashboard.
type BudgetStatusRow struct {
	Category    string          `json:"category"`
	CapAmount   decimal.Decimal `json:"capAmount"`
	Spent       decimal.Decimal `json:"spent"`
	Utilization decimal.Decimal `json:"utilization"` // percent
	Period      BudgetPeriod    `json:"period"`
	Alert       BudgetAlert     `json:"alert"`
	Progress    ProgressLevel   `json:"progress"`
}

// SummaryReport bundles the global statistics shown on the dashboard header.
type SummaryReport struct {
	TotalIncome              decimal.Decimal   `json:"totalIncome"`
	TotalExpenses            decimal.Decimal   `json:"totalExpenses"`
	TotalBalance             decimal.Decimal   `json:"totalBalance"`
	SavingsRate              decimal.Decimal   `json:"savingsRate"`              // percent
	OverallBudgetUtilization decimal.Decimal   `json:"overallBudgetUtilization"` // percent
	MonthCount               int               `json:"monthCount"`
	Budgets                  []BudgetStatusRow `json:"budgets"`
}

// MonthReport is the per-tile view of one month: its balance and category
// breakdown alongside the raw expense list in entry order.
type MonthReport struct {
	Month          Month            `json:"month"`
	Balance        decimal.Decimal  `json:"balance"`
	TotalExpenses  decimal.Decimal  `json:"totalExpenses"`
	CategoryTotals []CategoryAmount `json:"categoryTotals"`
}
