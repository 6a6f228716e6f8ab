// Backend API server — persistence, run lifecycle, presets, callbacks and
// the attachment surface.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/wuyifannppp/poco-agent/pkg/api"
	"github.com/wuyifannppp/poco-agent/pkg/cleanup"
	"github.com/wuyifannppp/poco-agent/pkg/config"
	"github.com/wuyifannppp/poco-agent/pkg/database"
	"github.com/wuyifannppp/poco-agent/pkg/services"
	"github.com/wuyifannppp/poco-agent/pkg/storage"
	"github.com/wuyifannppp/poco-agent/pkg/version"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	cfg := config.LoadBackendConfig()
	slog.Info("Starting backend", "version", version.Full(), "addr", cfg.ListenAddr)

	ctx := context.Background()

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	store, err := storage.NewS3Store(ctx, config.LoadStorageConfig())
	if err != nil {
		slog.Error("Failed to initialize object storage", "error", err)
		os.Exit(1)
	}

	runService := services.NewRunService(dbClient.Client)
	sessionService := services.NewSessionService(dbClient.Client)
	projectService := services.NewProjectService(dbClient.Client)
	messageService := services.NewMessageService(dbClient.Client, store)
	toolExecutionService := services.NewToolExecutionService(dbClient.Client)
	usageService := services.NewUsageService(dbClient.Client)
	callbackService := services.NewCallbackService(dbClient.Client, runService)
	envVarService := services.NewEnvVarService(dbClient.Client)
	presetService := services.NewPresetService(dbClient.Client)
	attachmentService := services.NewAttachmentService(store)
	slog.Info("Services initialized")

	reaper := cleanup.NewReaper(cfg, runService)
	reaper.Start(ctx)
	defer reaper.Stop()

	server := api.NewServer(cfg, dbClient,
		sessionService, projectService, runService, messageService,
		toolExecutionService, usageService, callbackService,
		envVarService, presetService, attachmentService)

	httpServer := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: server.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", cfg.ListenAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
