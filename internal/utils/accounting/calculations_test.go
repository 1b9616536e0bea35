package accounting_test

import (
	"testing"

	"github.com/balancify/balancify_app/internal/core/domain"
	"github.com/balancify/balancify_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMonthBalance(t *testing.T) {
	month := domain.Month{
		Income: decimal.NewFromInt(50000),
		Expenses: []domain.Expense{
			{Category: "Food", Amount: decimal.NewFromInt(200)},
			{Category: "Transportation", Amount: decimal.NewFromFloat(49.50)},
		},
	}
	assert.Equal(t, "49750.5", accounting.MonthBalance(month).String())
}

func TestMonthBalance_NoExpensesEqualsIncome(t *testing.T) {
	month := domain.Month{Income: decimal.NewFromInt(1234), Expenses: []domain.Expense{}}
	assert.True(t, accounting.MonthBalance(month).Equal(month.Income))
}

func TestMonthBalance_MayGoNegative(t *testing.T) {
	month := domain.Month{
		Income:   decimal.NewFromInt(100),
		Expenses: []domain.Expense{{Category: "Housing", Amount: decimal.NewFromInt(250)}},
	}
	assert.Equal(t, "-150", accounting.MonthBalance(month).String())
}

func TestCategoryTotals(t *testing.T) {
	expenses := []domain.Expense{
		{Category: "Food", Amount: decimal.NewFromInt(200)},
		{Category: "Food", Amount: decimal.NewFromInt(100)},
		{Category: "Shopping", Amount: decimal.NewFromInt(75)},
	}

	totals := accounting.CategoryTotals(expenses)

	assert.Len(t, totals, 2)
	assert.Equal(t, "300", totals["Food"].String())
	assert.Equal(t, "75", totals["Shopping"].String())
}

func TestSortedCategoryTotals_OrderedByName(t *testing.T) {
	rows := accounting.SortedCategoryTotals(map[string]decimal.Decimal{
		"Shopping": decimal.NewFromInt(75),
		"Food":     decimal.NewFromInt(300),
	})

	assert.Equal(t, "Food", rows[0].Category)
	assert.Equal(t, "Shopping", rows[1].Category)
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name  string
		part  decimal.Decimal
		whole decimal.Decimal
		want  string
	}{
		{"simple ratio", decimal.NewFromInt(80), decimal.NewFromInt(100), "80"},
		{"over 100", decimal.NewFromInt(150), decimal.NewFromInt(100), "150"},
		{"zero whole yields zero", decimal.NewFromInt(50), decimal.Zero, "0"},
		{"zero part", decimal.Zero, decimal.NewFromInt(100), "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, accounting.Percentage(tt.part, tt.whole).String())
		})
	}
}

func TestClassifyAlert(t *testing.T) {
	tests := []struct {
		utilization float64
		want        domain.BudgetAlert
	}{
		{0, domain.AlertNormal},
		{79.99, domain.AlertNormal},
		{80, domain.AlertWarning},
		{99.99, domain.AlertWarning},
		{100, domain.AlertExceeded},
		{250, domain.AlertExceeded},
	}

	for _, tt := range tests {
		got := accounting.ClassifyAlert(decimal.NewFromFloat(tt.utilization))
		assert.Equal(t, tt.want, got, "utilization %v", tt.utilization)
	}
}

func TestClassifyProgress(t *testing.T) {
	tests := []struct {
		utilization float64
		want        domain.ProgressLevel
	}{
		{0, domain.ProgressNormal},
		{69.99, domain.ProgressNormal},
		{70, domain.ProgressWarning},
		{89.99, domain.ProgressWarning},
		{90, domain.ProgressDanger},
		{140, domain.ProgressDanger},
	}

	for _, tt := range tests {
		got := accounting.ClassifyProgress(decimal.NewFromFloat(tt.utilization))
		assert.Equal(t, tt.want, got, "utilization %v", tt.utilization)
	}
}
