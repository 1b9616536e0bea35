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

// reportingHandler handles HTTP requests for derived statistics.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers routes related to reports.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/summary", h.getSummary)
		reports.GET("/months/:monthID", h.getMonthReport)
	}
}

// getSummary returns the global dashboard statistics plus per-budget status.
func (h *reportingHandler) getSummary(c *gin.Context) {
	summary := h.reportingService.Summary(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}

// getMonthReport returns the per-tile view of one month.
func (h *reportingHandler) getMonthReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	monthID := c.Param("monthID")

	report, err := h.reportingService.MonthReport(c.Request.Context(), monthID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Month not found for report", slog.String("month_id", monthID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Month not found"})
		} else {
			logger.Error("Failed to build month report", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build month report"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthReportResponse(report))
}
