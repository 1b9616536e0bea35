package services

import (
	"context"

	"github.com/balancify/balancify_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingSvcFacade computes derived statistics from the current ledger
// snapshot. All methods are pure reads; none mutate state.
type ReportingSvcFacade interface {
	TotalIncome(ctx context.Context) decimal.Decimal
	TotalExpenses(ctx context.Context) decimal.Decimal
	TotalBalance(ctx context.Context) decimal.Decimal

	// MonthBalance is the month's income minus its expenses, or
	// apperrors.ErrNotFound for an unknown id.
	MonthBalance(ctx context.Context, monthID string) (decimal.Decimal, error)

	// CategoryTotals maps category to summed amount within one month.
	CategoryTotals(ctx context.Context, monthID string) (map[string]decimal.Decimal, error)

	// CategorySpendingAllTime sums a category's spending across every month.
	// Budget comparison is always cumulative, regardless of the budget's
	// nominal period label.
	CategorySpendingAllTime(ctx context.Context, category string) decimal.Decimal

	// BudgetUtilization is the category's all-time spending as a percentage of
	// its cap; 0 when no budget is set or the cap is zero.
	BudgetUtilization(ctx context.Context, category string) decimal.Decimal

	// OverallBudgetUtilization aggregates utilization across every budgeted
	// category; 0 when no budgets exist.
	OverallBudgetUtilization(ctx context.Context) decimal.Decimal

	// SavingsRate is the saved share of total income as a percentage; 0 when
	// total income is zero.
	SavingsRate(ctx context.Context) decimal.Decimal

	// Summary bundles the global statistics plus one status row per budget.
	Summary(ctx context.Context) *domain.SummaryReport

	// MonthReport is the per-tile view of one month, or apperrors.ErrNotFound.
	MonthReport(ctx context.Context, monthID string) (*domain.MonthReport, error)
}
