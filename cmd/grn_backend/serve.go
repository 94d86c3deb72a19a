package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/SscSPs/grn_tracker/internal/adapters/export/xlsx"
	"github.com/SscSPs/grn_tracker/internal/core/services"
	"github.com/SscSPs/grn_tracker/internal/handlers"
	"github.com/SscSPs/grn_tracker/internal/middleware"
	"github.com/SscSPs/grn_tracker/internal/repositories/database/pgsql"
	"github.com/SscSPs/grn_tracker/pkg/database"
)

const shutdownTimeout = 10 * time.Second

var skipMigrations bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "do not apply pending migrations on startup")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return fmt.Errorf("initialize database pool: %w", err)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if !skipMigrations {
		if err := database.RunMigrations(logger, cfg.DatabaseURL, cfg.MigrationsPath, database.MigrateUp, 0); err != nil {
			return err
		}
	}

	rateLimiter, err := middleware.NewRateLimiter(ctx, cfg.RateLimit, cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("initialize rate limiter: %w", err)
	}

	workbook := xlsx.NewWorkbook()
	serviceContainer := services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(dbPool), workbook, workbook)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		return fmt.Errorf("set trusted proxies: %w", err)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, dbPool, rateLimiter)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server failed to run: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	logger.Info("Server exited properly")
	return nil
}
