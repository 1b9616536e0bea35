package dto

import (
	"github.com/balancify/balancify_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BudgetStatusResponse is one budget's utilization row on the dashboard.
type BudgetStatusResponse struct {
	Category    string               `json:"category"`
	CapAmount   decimal.Decimal      `json:"capAmount"`
	Spent       decimal.Decimal      `json:"spent"`
	Utilization decimal.Decimal      `json:"utilization"`
	Period      domain.BudgetPeriod  `json:"period"`
	Alert       domain.BudgetAlert   `json:"alert"`
	Progress    domain.ProgressLevel `json:"progress"`
}

// SummaryResponse carries the global dashboard statistics.
type SummaryResponse struct {
	TotalIncome              decimal.Decimal        `json:"totalIncome"`
	TotalExpenses            decimal.Decimal        `json:"totalExpenses"`
	TotalBalance             decimal.Decimal        `json:"totalBalance"`
	SavingsRate              decimal.Decimal        `json:"savingsRate"`
	OverallBudgetUtilization decimal.Decimal        `json:"overallBudgetUtilization"`
	MonthCount               int                    `json:"monthCount"`
	Budgets                  []BudgetStatusResponse `json:"budgets"`
}

// CategoryTotalResponse is one row of a month's category breakdown.
type CategoryTotalResponse struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// MonthReportResponse is the per-tile view of one month.
type MonthReportResponse struct {
	Month          MonthResponse           `json:"month"`
	Balance        decimal.Decimal         `json:"balance"`
	TotalExpenses  decimal.Decimal         `json:"totalExpenses"`
	CategoryTotals []CategoryTotalResponse `json:"categoryTotals"`
}

// ToSummaryResponse converts a domain.SummaryReport to its response DTO.
func ToSummaryResponse(r *domain.SummaryReport) SummaryResponse {
	budgets := make([]BudgetStatusResponse, len(r.Budgets))
	for i, row := range r.Budgets {
		budgets[i] = BudgetStatusResponse{
			Category:    row.Category,
			CapAmount:   row.CapAmount,
			Spent:       row.Spent,
			Utilization: row.Utilization,
			Period:      row.Period,
			Alert:       row.Alert,
			Progress:    row.Progress,
		}
	}
	return SummaryResponse{
		TotalIncome:              r.TotalIncome,
		TotalExpenses:            r.TotalExpenses,
		TotalBalance:             r.TotalBalance,
		SavingsRate:              r.SavingsRate,
		OverallBudgetUtilization: r.OverallBudgetUtilization,
		MonthCount:               r.MonthCount,
		Budgets:                  budgets,
	}
}

// ToMonthReportResponse converts a domain.MonthReport to its response DTO.
func ToMonthReportResponse(r *domain.MonthReport) MonthReportResponse {
	totals := make([]CategoryTotalResponse, len(r.CategoryTotals))
	for i, row := range r.CategoryTotals {
		totals[i] = CategoryTotalResponse{Category: row.Category, Total: row.Total}
	}
	return MonthReportResponse{
		Month:          ToMonthResponse(&r.Month),
		Balance:        r.Balance,
		TotalExpenses:  r.TotalExpenses,
		CategoryTotals: totals,
	}
}
