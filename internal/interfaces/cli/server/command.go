package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"fixwise/internal/infrastructure/config"
	"fixwise/internal/infrastructure/database"
	"fixwise/internal/infrastructure/migration"
	httpRouter "fixwise/internal/interfaces/http"
	"fixwise/internal/shared/constants"
	"fixwise/internal/shared/logger"
)

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the Fixwise HTTP server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Run database migrations on startup (not recommended for production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, env == constants.EnvDevelopment); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("starting server", "environment", env, "auto_migrate", autoMigrate)

	gin.SetMode(mapEnvToGinMode(env))
	gin.DefaultWriter = io.Discard

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer database.Close()

	if autoMigrate {
		if env == constants.EnvProduction {
			logger.Warn("auto-migration is enabled in production environment - this is not recommended!")
		}
		manager := migration.NewManager(env)
		if err := manager.Migrate(database.Get(), migration.AutoMigrateModels()...); err != nil {
			logger.Fatal("auto-migration failed", "error", err)
		}
		logger.Info("auto-migration completed")
	}

	container, err := httpRouter.NewContainer(database.Get(), cfg, logger.NewLogger())
	if err != nil {
		logger.Fatal("failed to build container", "error", err)
	}
	if err := container.Start(); err != nil {
		logger.Fatal("failed to start event dispatcher", "error", err)
	}

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      container.Engine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "address", cfg.Server.GetAddr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}
	if err := container.Shutdown(ctx); err != nil {
		logger.Error("container shutdown failed", "error", err)
	}

	logger.Info("server exited gracefully")
	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case constants.EnvProduction:
		return gin.ReleaseMode
	case constants.EnvTest:
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
