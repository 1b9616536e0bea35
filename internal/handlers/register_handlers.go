package handlers

import (
	portssvc "github.com/balancify/balancify_app/internal/core/ports/services"
	"github.com/balancify/balancify_app/pkg/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", GetHome)

	// Setup API v1 routes, passing service interfaces
	setupAPIV1Routes(r, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")

	v1.GET("/categories", listCategories)

	// Delegate route registration to specific handlers, passing required services
	registerMonthRoutes(v1, services.Ledger)
	registerExpenseRoutes(v1, services.Ledger)
	registerBudgetRoutes(v1, services.Ledger)
	registerReportingRoutes(v1, services.Reporting)
	registerStateRoutes(v1, services.Ledger)
}
