package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/balancify/balancify_app/internal/apperrors"
	portssvc "github.com/balancify/balancify_app/internal/core/ports/services"
	"github.com/balancify/balancify_app/internal/dto"
	"github.com/balancify/balancify_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// expenseHandler handles HTTP requests related to a month's expenses.
type expenseHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newExpenseHandler(ls portssvc.LedgerSvcFacade) *expenseHandler {
	return &expenseHandler{ledgerService: ls}
}

// registerExpenseRoutes registers expense routes nested under months.
func registerExpenseRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newExpenseHandler(ledgerService)

	expenses := rg.Group("/months/:monthID/expenses")
	{
		expenses.POST("", h.createExpense)
		expenses.DELETE("/:expenseID", h.deleteExpense)
	}
}

// createExpense records a spending event against a month.
func (h *expenseHandler) createExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	monthID := c.Param("monthID")

	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to add expense",
		slog.String("month_id", monthID), slog.String("category", req.Category))

	expense, err := h.ledgerService.AddExpense(c.Request.Context(), monthID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrMissingCustomCategory) {
			logger.Warn("Custom category missing for Other selection")
			c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Please specify the custom category."}})
		} else if msgs := apperrors.ValidationMessages(err); msgs != nil {
			logger.Warn("Validation errors adding expense", slog.Any("errors", msgs))
			c.JSON(http.StatusBadRequest, gin.H{"errors": msgs})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Month not found for expense", slog.String("month_id", monthID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Month not found"})
		} else {
			logger.Error("Failed to add expense in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add expense"})
		}
		return
	}

	logger.Info("Expense added successfully",
		slog.String("month_id", monthID), slog.String("expense_id", expense.ID))
	c.JSON(http.StatusCreated, dto.ToExpenseResponse(expense))
}

// deleteExpense removes one expense from a month. Absent ids are a no-op so
// the delete is idempotent.
func (h *expenseHandler) deleteExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	monthID := c.Param("monthID")
	expenseID := c.Param("expenseID")

	if err := h.ledgerService.DeleteExpense(c.Request.Context(), monthID, expenseID); err != nil {
		logger.Error("Failed to delete expense in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete expense"})
		return
	}

	logger.Info("Expense delete processed",
		slog.String("month_id", monthID), slog.String("expense_id", expenseID))
	c.Status(http.StatusNoContent)
}
