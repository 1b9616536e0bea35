package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/balancify/balancify_app/internal/apperrors"
	portssvc "github.com/balancify/balancify_app/internal/core/ports/services"
	"github.com/balancify/balancify_app/internal/dto"
	"github.com/balancify/balancify_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// monthHandler handles HTTP requests related to months.
type monthHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newMonthHandler(ls portssvc.LedgerSvcFacade) *monthHandler {
	return &monthHandler{ledgerService: ls}
}

// registerMonthRoutes registers routes related to months.
func registerMonthRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newMonthHandler(ledgerService)

	months := rg.Group("/months")
	{
		months.POST("", h.createMonth)
		months.GET("", h.listMonths)
		months.GET("/:monthID", h.getMonth)
		months.DELETE("/:monthID", h.deleteMonth)
	}
}

// createMonth opens a new financial period for a (month, year) pair.
func (h *monthHandler) createMonth(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateMonthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createMonth", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create month",
		slog.String("month", req.Month), slog.Int("year", req.Year))

	month, err := h.ledgerService.AddMonth(c.Request.Context(), req)
	if err != nil {
		if msgs := apperrors.ValidationMessages(err); msgs != nil {
			logger.Warn("Validation errors creating month", slog.Any("errors", msgs))
			c.JSON(http.StatusBadRequest, gin.H{"errors": msgs})
		} else if errors.Is(err, apperrors.ErrDuplicateMonth) {
			logger.Warn("Attempted to create duplicate month")
			c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("%s %d already exists", req.Month, req.Year)})
		} else {
			logger.Error("Failed to create month in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create month"})
		}
		return
	}

	logger.Info("Month created successfully", slog.String("month_id", month.ID))
	c.JSON(http.StatusCreated, dto.ToMonthResponse(month))
}

// listMonths returns every month, most recent first.
func (h *monthHandler) listMonths(c *gin.Context) {
	months := h.ledgerService.ListMonths(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToListMonthResponse(months))
}

// getMonth returns one month by id.
func (h *monthHandler) getMonth(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	monthID := c.Param("monthID")

	month, err := h.ledgerService.GetMonth(c.Request.Context(), monthID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Month not found", slog.String("month_id", monthID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Month not found"})
		} else {
			logger.Error("Failed to get month from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve month"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthResponse(month))
}

// deleteMonth removes a month and, cascading, all its expenses.
func (h *monthHandler) deleteMonth(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	monthID := c.Param("monthID")

	if err := h.ledgerService.DeleteMonth(c.Request.Context(), monthID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Month not found for delete", slog.String("month_id", monthID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Month not found"})
		} else {
			logger.Error("Failed to delete month in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete month"})
		}
		return
	}

	logger.Info("Month deleted successfully", slog.String("month_id", monthID))
	c.Status(http.StatusNoContent)
}
