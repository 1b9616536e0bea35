package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/balancify/balancify_app/internal/apperrors"
	"github.com/balancify/balancify_app/internal/core/domain"
	portssvc "github.com/balancify/balancify_app/internal/core/ports/services"
	"github.com/balancify/balancify_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// reportingService derives statistics from ledger snapshots. It depends only
// on the snapshot provider, never on the mutation surface of the store.
type reportingService struct {
	BaseService
	snapshots portssvc.SnapshotProvider
}

// NewReportingService creates a new reporting service over a snapshot source.
func NewReportingService(snapshots portssvc.SnapshotProvider) portssvc.ReportingSvcFacade {
	return &reportingService{snapshots: snapshots}
}

// Ensure reportingService implements the portssvc.ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// TotalIncome sums income over all months.
func (s *reportingService) TotalIncome(ctx context.Context) decimal.Decimal {
	state := s.snapshots.Snapshot(ctx)
	return totalIncome(state)
}

// TotalExpenses sums every expense across all months.
func (s *reportingService) TotalExpenses(ctx context.Context) decimal.Decimal {
	state := s.snapshots.Snapshot(ctx)
	return totalExpenses(state)
}

// TotalBalance is total income minus total expenses.
func (s *reportingService) TotalBalance(ctx context.Context) decimal.Decimal {
	state := s.snapshots.Snapshot(ctx)
	return totalIncome(state).Sub(totalExpenses(state))
}

// MonthBalance is one month's income minus its expenses.
func (s *reportingService) MonthBalance(ctx context.Context, monthID string) (decimal.Decimal, error) {
	state := s.snapshots.Snapshot(ctx)
	month, exists := state.Months[monthID]
	if !exists {
		return decimal.Zero, fmt.Errorf("%w: month %s", apperrors.ErrNotFound, monthID)
	}
	return accounting.MonthBalance(month), nil
}

// CategoryTotals maps category to summed amount within one month.
func (s *reportingService) CategoryTotals(ctx context.Context, monthID string) (map[string]decimal.Decimal, error) {
	state := s.snapshots.Snapshot(ctx)
	month, exists := state.Months[monthID]
	if !exists {
		return nil, fmt.Errorf("%w: month %s", apperrors.ErrNotFound, monthID)
	}
	return accounting.CategoryTotals(month.Expenses), nil
}

// CategorySpendingAllTime sums a category's spending across every month.
func (s *reportingService) CategorySpendingAllTime(ctx context.Context, category string) decimal.Decimal {
	state := s.snapshots.Snapshot(ctx)
	return categorySpendingAllTime(state, category)
}

// BudgetUtilization is all-time category spending as a percentage of the cap;
// 0 when no budget is set or the cap is zero, never an error.
func (s *reportingService) BudgetUtilization(ctx context.Context, category string) decimal.Decimal {
	state := s.snapshots.Snapshot(ctx)
	budget, exists := state.Budgets[category]
	if !exists {
		return decimal.Zero
	}
	return accounting.Percentage(categorySpendingAllTime(state, category), budget.Amount)
}

// OverallBudgetUtilization is total spending in budgeted categories as a
// percentage of the total caps; 0 when no budgets exist.
func (s *reportingService) OverallBudgetUtilization(ctx context.Context) decimal.Decimal {
	state := s.snapshots.Snapshot(ctx)
	return overallBudgetUtilization(state)
}

// SavingsRate is the saved share of total income as a percentage; 0 when
// total income is zero, never NaN.
func (s *reportingService) SavingsRate(ctx context.Context) decimal.Decimal {
	state := s.snapshots.Snapshot(ctx)
	return savingsRate(state)
}

// Summary bundles the global statistics plus one status row per budget,
// sorted by category.
func (s *reportingService) Summary(ctx context.Context) *domain.SummaryReport {
	state := s.snapshots.Snapshot(ctx)

	rows := make([]domain.BudgetStatusRow, 0, len(state.Budgets))
	for _, budget := range state.Budgets {
		spent := categorySpendingAllTime(state, budget.Category)
		utilization := accounting.Percentage(spent, budget.Amount)
		rows = append(rows, domain.BudgetStatusRow{
			Category:    budget.Category,
			CapAmount:   budget.Amount,
			Spent:       spent,
			Utilization: utilization,
			Period:      budget.Period,
			Alert:       accounting.ClassifyAlert(utilization),
			Progress:    accounting.ClassifyProgress(utilization),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Category < rows[j].Category })

	income := totalIncome(state)
	expenses := totalExpenses(state)
	return &domain.SummaryReport{
		TotalIncome:              income,
		TotalExpenses:            expenses,
		TotalBalance:             income.Sub(expenses),
		SavingsRate:              savingsRate(state),
		OverallBudgetUtilization: overallBudgetUtilization(state),
		MonthCount:               len(state.Months),
		Budgets:                  rows,
	}
}

// MonthReport is the per-tile view of one month: balance, expense total and
// category breakdown.
func (s *reportingService) MonthReport(ctx context.Context, monthID string) (*domain.MonthReport, error) {
	state := s.snapshots.Snapshot(ctx)
	month, exists := state.Months[monthID]
	if !exists {
		return nil, fmt.Errorf("%w: month %s", apperrors.ErrNotFound, monthID)
	}

	return &domain.MonthReport{
		Month:          month,
		Balance:        accounting.MonthBalance(month),
		TotalExpenses:  accounting.SumExpenses(month.Expenses),
		CategoryTotals: accounting.SortedCategoryTotals(accounting.CategoryTotals(month.Expenses)),
	}, nil
}

func totalIncome(state domain.LedgerState) decimal.Decimal {
	sum := decimal.Zero
	for _, m := range state.Months {
		sum = sum.Add(m.Income)
	}
	return sum
}

func totalExpenses(state domain.LedgerState) decimal.Decimal {
	sum := decimal.Zero
	for _, m := range state.Months {
		sum = sum.Add(accounting.SumExpenses(m.Expenses))
	}
	return sum
}

func categorySpendingAllTime(state domain.LedgerState, category string) decimal.Decimal {
	sum := decimal.Zero
	for _, m := range state.Months {
		for _, e := range m.Expenses {
			if e.Category == category {
				sum = sum.Add(e.Amount)
			}
		}
	}
	return sum
}

func savingsRate(state domain.LedgerState) decimal.Decimal {
	income := totalIncome(state)
	return accounting.Percentage(income.Sub(totalExpenses(state)), income)
}

func overallBudgetUtilization(state domain.LedgerState) decimal.Decimal {
	totalCaps := decimal.Zero
	totalSpent := decimal.Zero
	for _, budget := range state.Budgets {
		totalCaps = totalCaps.Add(budget.Amount)
		totalSpent = totalSpent.Add(categorySpendingAllTime(state, budget.Category))
	}
	return accounting.Percentage(totalSpent, totalCaps)
}
