package handlers

import (
	"net/http"

	"github.com/balancify/balancify_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// GetHome responds with a simple liveness message.
func GetHome(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// listCategories returns the predefined expense categories offered in the
// entry form, with the "Other" sentinel last.
func listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": domain.ExpenseCategories})
}
