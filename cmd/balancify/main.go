package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/balancify/balancify_app/internal/adapters/database/sqlitekv"
	"github.com/balancify/balancify_app/internal/apperrors"
	"github.com/balancify/balancify_app/internal/core/domain"
	portsrepo "github.com/balancify/balancify_app/internal/core/ports/repositories"
	"github.com/balancify/balancify_app/internal/core/services"
	"github.com/balancify/balancify_app/internal/handlers"
	"github.com/balancify/balancify_app/internal/middleware"
	"github.com/balancify/balancify_app/pkg/config"
	"github.com/balancify/balancify_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Monetary fields serialize as plain JSON numbers, matching the persisted
	// envelope and the export document consumed by the browser UI.
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Open the embedded database backing the durable state slot
	db, err := database.NewSQLiteDB(context.Background(), cfg.DBPath)
	if err != nil {
		logger.Error("Failed to open state database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.CloseDB(db)

	stateRepo, err := sqlitekv.NewStateRepository(db)
	if err != nil {
		logger.Error("Failed to initialize state repository", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Load persisted state. Corrupt data degrades to an empty ledger with a
	// warning rather than blocking startup.
	initial, err := stateRepo.LoadState(context.Background())
	if err != nil {
		if !errors.Is(err, apperrors.ErrCorruptData) {
			logger.Error("Failed to load ledger state", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Warn("Stored ledger data is corrupt, starting from empty state",
			slog.String("error", err.Error()))
		initial = domain.NewLedgerState()
	}
	logger.Info("Ledger state loaded",
		slog.Int("months", len(initial.Months)),
		slog.Int("budgets", len(initial.Budgets)))

	serviceContainer := services.NewServiceContainer(
		portsrepo.RepositoryProvider{StateRepo: stateRepo}, initial)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	// The browser UI is served from its own origin during development
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Disposition", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Shut down on interrupt, flushing a final save first. A lost final save
	// on abrupt termination is accepted; this covers the orderly path.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := serviceContainer.Ledger.Save(shutdownCtx); err != nil {
		logger.Error("Final save failed", slog.String("error", err.Error()))
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", slog.String("error", err.Error()))
	}
	logger.Info("Server stopped")
}
