package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// MonthNames lists the twelve calendar month names in order. A Month's name is
// always one of these.
var MonthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Year bounds accepted for a new month.
const (
	MinYear = 2020
	MaxYear = 2030
)

// MaxIncome is the upper bound on a month's income. Larger values are rejected
// as implausible.
var MaxIncome = decimal.NewFromInt(10_000_000)

// Month represents one calendar month's financial period: a single income
// figure plus the expenses recorded against it, in entry order.
type Month struct {
	ID        string          `json:"id"`
	Month     string          `json:"month"`
	Year      int             `json:"year"`
	Income    decimal.Decimal `json:"income"`
	Expenses  []Expense       `json:"expenses"`
	CreatedAt time.Time       `json:"createdAt"`
}

// MonthID derives the unique key for a (month, year) pair, e.g. "February-2024".
func MonthID(month string, year int) string {
	return fmt.Sprintf("%s-%d", month, year)
}

// MonthIndex returns the zero-based calendar position of a month name, or -1
// when the name is not one of the twelve.
func MonthIndex(name string) int {
	for i, m := range MonthNames {
		if m == name {
			return i
		}
	}
	return -1
}

// IsMonthName reports whether name is one of the twelve calendar month names.
func IsMonthName(name string) bool {
	return MonthIndex(name) >= 0
}

// Clone returns a deep copy, so callers can hold the result without observing
// later mutations of the month's expense sequence.
func (m Month) Clone() Month {
	out := m
	out.Expenses = make([]Expense, len(m.Expenses))
	copy(out.Expenses, m.Expenses)
	return out
}
