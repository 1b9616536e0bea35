package handlers

import (
	"log/slog"
	"net/http"

	"github.com/balancify/balancify_app/internal/apperrors"
	portssvc "github.com/balancify/balancify_app/internal/core/ports/services"
	"github.com/balancify/balancify_app/internal/dto"
	"github.com/balancify/balancify_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// budgetHandler handles HTTP requests related to budgets.
type budgetHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newBudgetHandler(ls portssvc.LedgerSvcFacade) *budgetHandler {
	return &budgetHandler{ledgerService: ls}
}

// registerBudgetRoutes registers routes related to budgets.
func registerBudgetRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newBudgetHandler(ledgerService)

	budgets := rg.Group("/budgets")
	{
		budgets.PUT("", h.setBudget)
		budgets.GET("", h.listBudgets)
		budgets.DELETE("/:category", h.deleteBudget)
	}
}

// setBudget inserts or replaces a category's spending cap. PUT because the
// operation is an idempotent upsert.
func (h *budgetHandler) setBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for setBudget", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to set budget", slog.String("category", req.Category))

	budget, err := h.ledgerService.SetBudget(c.Request.Context(), req)
	if err != nil {
		if msgs := apperrors.ValidationMessages(err); msgs != nil {
			logger.Warn("Validation errors setting budget", slog.Any("errors", msgs))
			c.JSON(http.StatusBadRequest, gin.H{"errors": msgs})
		} else {
			logger.Error("Failed to set budget in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set budget"})
		}
		return
	}

	logger.Info("Budget set successfully", slog.String("category", budget.Category))
	c.JSON(http.StatusOK, dto.ToBudgetResponse(budget))
}

// listBudgets returns every budget sorted by category.
func (h *budgetHandler) listBudgets(c *gin.Context) {
	budgets := h.ledgerService.ListBudgets(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToListBudgetResponse(budgets))
}

// deleteBudget removes a category's budget. Absent categories are a no-op.
func (h *budgetHandler) deleteBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	category := c.Param("category")

	if err := h.ledgerService.DeleteBudget(c.Request.Context(), category); err != nil {
		logger.Error("Failed to delete budget in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete budget"})
		return
	}

	logger.Info("Budget delete processed", slog.String("category", category))
	c.Status(http.StatusNoContent)
}
