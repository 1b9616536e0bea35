package domain_test

import (
	"testing"

	"github.com/balancify/balancify_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidateMonthInput(t *testing.T) {
	tests := []struct {
		name   string
		month  string
		year   int
		income decimal.Decimal
		want   []string
	}{
		{
			name:   "valid input",
			month:  "February",
			year:   2024,
			income: decimal.NewFromInt(50000),
			want:   nil,
		},
		{
			name:   "empty month",
			month:  "",
			year:   2024,
			income: decimal.NewFromInt(1000),
			want:   []string{"Please select a month"},
		},
		{
			name:   "unknown month name",
			month:  "Febtober",
			year:   2024,
			income: decimal.NewFromInt(1000),
			want:   []string{"Please select a valid month"},
		},
		{
			name:   "year below range",
			month:  "February",
			year:   2019,
			income: decimal.NewFromInt(1000),
			want:   []string{"Please enter a valid year between 2020 and 2030"},
		},
		{
			name:   "year above range",
			month:  "February",
			year:   2031,
			income: decimal.NewFromInt(1000),
			want:   []string{"Please enter a valid year between 2020 and 2030"},
		},
		{
			name:   "missing year",
			month:  "February",
			year:   0,
			income: decimal.NewFromInt(1000),
			want:   []string{"Please enter a valid year between 2020 and 2030"},
		},
		{
			name:   "non-positive income",
			month:  "February",
			year:   2024,
			income: decimal.NewFromInt(-5),
			want:   []string{"Please enter a valid income amount"},
		},
		{
			name:   "zero income",
			month:  "February",
			year:   2024,
			income: decimal.Zero,
			want:   []string{"Please enter a valid income amount"},
		},
		{
			name:   "implausibly high income",
			month:  "February",
			year:   2024,
			income: decimal.NewFromInt(10_000_001),
			want:   []string{"Income amount seems unreasonably high. Please verify."},
		},
		{
			name:   "income at upper bound is accepted",
			month:  "February",
			year:   2024,
			income: decimal.NewFromInt(10_000_000),
			want:   nil,
		},
		{
			name:   "all rules reported together",
			month:  "",
			year:   0,
			income: decimal.Zero,
			want: []string{
				"Please select a month",
				"Please enter a valid year between 2020 and 2030",
				"Please enter a valid income amount",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.ValidateMonthInput(tt.month, tt.year, tt.income)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateExpenseInput(t *testing.T) {
	tests := []struct {
		name     string
		monthID  string
		category string
		amount   decimal.Decimal
		want     []string
	}{
		{
			name:     "valid input",
			monthID:  "February-2024",
			category: "Food",
			amount:   decimal.NewFromInt(200),
			want:     nil,
		},
		{
			name:     "missing month selection",
			monthID:  "",
			category: "Food",
			amount:   decimal.NewFromInt(200),
			want:     []string{"Please select a month first"},
		},
		{
			name:     "missing category",
			monthID:  "February-2024",
			category: "",
			amount:   decimal.NewFromInt(200),
			want:     []string{"Please select an expense category"},
		},
		{
			name:     "non-positive amount",
			monthID:  "February-2024",
			category: "Food",
			amount:   decimal.Zero,
			want:     []string{"Please enter a valid expense amount"},
		},
		{
			name:     "implausibly high amount",
			monthID:  "February-2024",
			category: "Food",
			amount:   decimal.NewFromInt(1_000_001),
			want:     []string{"Expense amount seems unreasonably high. Please verify."},
		},
		{
			name:     "amount at upper bound is accepted",
			monthID:  "February-2024",
			category: "Food",
			amount:   decimal.NewFromInt(1_000_000),
			want:     nil,
		},
		{
			name:     "all rules reported together",
			monthID:  "",
			category: "",
			amount:   decimal.NewFromInt(-1),
			want: []string{
				"Please select a month first",
				"Please select an expense category",
				"Please enter a valid expense amount",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.ValidateExpenseInput(tt.monthID, tt.category, tt.amount)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMonthID(t *testing.T) {
	assert.Equal(t, "February-2024", domain.MonthID("February", 2024))
}

func TestMonthIndex(t *testing.T) {
	assert.Equal(t, 0, domain.MonthIndex("January"))
	assert.Equal(t, 11, domain.MonthIndex("December"))
	assert.Equal(t, -1, domain.MonthIndex("Smarch"))
}
