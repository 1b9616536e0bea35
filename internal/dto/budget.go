package dto

import (
	"time"

	"github.com/balancify/balancify_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SetBudgetRequest defines the data needed to set or replace a category's
// spending cap. An empty period defaults to "monthly".
type SetBudgetRequest struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Period   string          `json:"period" binding:"omitempty,oneof=monthly weekly yearly"`
}

// BudgetResponse defines the data returned for a budget.
type BudgetResponse struct {
	Category  string              `json:"category"`
	Amount    decimal.Decimal     `json:"amount"`
	Period    domain.BudgetPeriod `json:"period"`
	CreatedAt time.Time           `json:"createdAt"`
}

// ToBudgetResponse converts a domain.Budget to its response DTO.
func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	return BudgetResponse{
		Category:  b.Category,
		Amount:    b.Amount,
		Period:    b.Period,
		CreatedAt: b.CreatedAt,
	}
}

// ToListBudgetResponse converts a slice of budgets, preserving its order.
func ToListBudgetResponse(budgets []domain.Budget) []BudgetResponse {
	res := make([]BudgetResponse, len(budgets))
	for i := range budgets {
		res[i] = ToBudgetResponse(&budgets[i])
	}
	return res
}
