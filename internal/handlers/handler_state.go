package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/balancify/balancify_app/internal/core/ports/services"
	"github.com/balancify/balancify_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// stateHandler handles HTTP requests for persistence and backup operations.
type stateHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newStateHandler(ls portssvc.LedgerSvcFacade) *stateHandler {
	return &stateHandler{ledgerService: ls}
}

// registerStateRoutes registers persistence, clear and export routes.
func registerStateRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newStateHandler(ledgerService)

	state := rg.Group("/state")
	{
		state.POST("/save", h.saveState)
		state.GET("/status", h.getStatus)
		state.DELETE("", h.clearAll)
	}
	rg.GET("/export", h.exportData)
}

// saveState forces an immediate write to durable storage. Saves are
// idempotent, so redundant calls are safe.
func (h *stateHandler) saveState(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.ledgerService.Save(c.Request.Context()); err != nil {
		logger.Error("Explicit save failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving data. Please try again."})
		return
	}

	logger.Info("Ledger state saved")
	c.Status(http.StatusNoContent)
}

// getStatus reports the outcome of the most recent save, so the UI can show a
// persistence warning without a mutation failing.
func (h *stateHandler) getStatus(c *gin.Context) {
	if err := h.ledgerService.LastSaveError(); err != nil {
		c.JSON(http.StatusOK, gin.H{"lastSaveError": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"lastSaveError": nil})
}

// clearAll irreversibly empties the whole ledger.
func (h *stateHandler) clearAll(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.ledgerService.ClearAll(c.Request.Context()); err != nil {
		logger.Error("Failed to clear ledger data", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear data"})
		return
	}

	logger.Info("All ledger data cleared")
	c.Status(http.StatusNoContent)
}

// exportData serves the one-way backup document as a file download.
func (h *stateHandler) exportData(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	doc := h.ledgerService.Export(c.Request.Context())
	filename := fmt.Sprintf("balancify-backup-%s.json", doc.ExportDate.Format(time.DateOnly))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.JSON(http.StatusOK, doc)

	logger.Info("Ledger data exported", slog.String("filename", filename))
}
