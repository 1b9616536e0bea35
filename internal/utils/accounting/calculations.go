package accounting

import (
	"sort"

	"github.com/balancify/balancify_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Budget alert thresholds (percent of cap).
var (
	alertExceededAt = decimal.NewFromInt(100)
	alertWarningAt  = decimal.NewFromInt(80)
)

// Progress-bar thresholds (percent of cap). These are a separate scale from
// the alert thresholds and must stay independent.
var (
	progressDangerAt  = decimal.NewFromInt(90)
	progressWarningAt = decimal.NewFromInt(70)
)

// SumExpenses totals an expense sequence.
func SumExpenses(expenses []domain.Expense) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range expenses {
		sum = sum.Add(e.Amount)
	}
	return sum
}

// MonthBalance is the month's income minus everything spent in it. It may go
// negative; no floor is enforced.
func MonthBalance(m domain.Month) decimal.Decimal {
	return m.Income.Sub(SumExpenses(m.Expenses))
}

// CategoryTotals groups one month's expenses by category and sums each group.
func CategoryTotals(expenses []domain.Expense) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		totals[e.Category] = totals[e.Category].Add(e.Amount)
	}
	return totals
}

// SortedCategoryTotals renders a category-total map as rows sorted by category
// name, for stable presentation output.
func SortedCategoryTotals(totals map[string]decimal.Decimal) []domain.CategoryAmount {
	rows := make([]domain.CategoryAmount, 0, len(totals))
	for category, total := range totals {
		rows = append(rows, domain.CategoryAmount{Category: category, Total: total})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Category < rows[j].Category })
	return rows
}

// Percentage computes part/whole*100, defined as 0 when whole is zero so
// ratios over an empty ledger never produce a division error.
func Percentage(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred)
}

// ClassifyAlert maps a utilization percentage to its budget alert class:
// >= 100 exceeded, >= 80 warning, otherwise normal.
func ClassifyAlert(utilization decimal.Decimal) domain.BudgetAlert {
	switch {
	case utilization.GreaterThanOrEqual(alertExceededAt):
		return domain.AlertExceeded
	case utilization.GreaterThanOrEqual(alertWarningAt):
		return domain.AlertWarning
	default:
		return domain.AlertNormal
	}
}

// ClassifyProgress maps a utilization percentage to its progress-bar level:
// >= 90 danger, >= 70 warning, otherwise normal.
func ClassifyProgress(utilization decimal.Decimal) domain.ProgressLevel {
	switch {
	case utilization.GreaterThanOrEqual(progressDangerAt):
		return domain.ProgressDanger
	case utilization.GreaterThanOrEqual(progressWarningAt):
		return domain.ProgressWarning
	default:
		return domain.ProgressNormal
	}
}
