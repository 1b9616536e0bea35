package dto

import (
	"time"

	"github.com/balancify/balancify_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateMonthRequest defines the data needed to open a new month.
// Domain rules (month name, year range, income bounds) are validated by the
// ledger service so that every violation is reported together; binding here
// only guarantees the JSON shape.
type CreateMonthRequest struct {
	Month  string          `json:"month"`
	Year   int             `json:"year"`
	Income decimal.Decimal `json:"income"`
}

// ExpenseResponse defines the data returned for one expense entry.
type ExpenseResponse struct {
	ID        string          `json:"id"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Note      string          `json:"note"`
	Date      time.Time       `json:"date"`
	CreatedAt time.Time       `json:"createdAt"`
}

// MonthResponse defines the data returned for a month, expenses in entry order.
type MonthResponse struct {
	ID        string            `json:"id"`
	Month     string            `json:"month"`
	Year      int               `json:"year"`
	Income    decimal.Decimal   `json:"income"`
	Expenses  []ExpenseResponse `json:"expenses"`
	CreatedAt time.Time         `json:"createdAt"`
}

// ToExpenseResponse converts a domain.Expense to its response DTO.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:        e.ID,
		Category:  e.Category,
		Amount:    e.Amount,
		Note:      e.Note,
		Date:      e.Date,
		CreatedAt: e.CreatedAt,
	}
}

// ToMonthResponse converts a domain.Month to its response DTO.
func ToMonthResponse(m *domain.Month) MonthResponse {
	expenses := make([]ExpenseResponse, len(m.Expenses))
	for i := range m.Expenses {
		expenses[i] = ToExpenseResponse(&m.Expenses[i])
	}
	return MonthResponse{
		ID:        m.ID,
		Month:     m.Month,
		Year:      m.Year,
		Income:    m.Income,
		Expenses:  expenses,
		CreatedAt: m.CreatedAt,
	}
}

// ToListMonthResponse converts a slice of months, preserving its order.
func ToListMonthResponse(months []domain.Month) []MonthResponse {
	res := make([]MonthResponse, len(months))
	for i := range months {
		res[i] = ToMonthResponse(&months[i])
	}
	return res
}
