// Executor manager — claims runs from the backend, resolves and stages
// them, and forwards them to executor instances over gRPC. Also serves
// the workspace browsing API.
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

	"github.com/wuyifannppp/poco-agent/pkg/backendclient"
	"github.com/wuyifannppp/poco-agent/pkg/config"
	"github.com/wuyifannppp/poco-agent/pkg/dispatch"
	"github.com/wuyifannppp/poco-agent/pkg/managerapi"
	"github.com/wuyifannppp/poco-agent/pkg/resolver"
	"github.com/wuyifannppp/poco-agent/pkg/stager"
	"github.com/wuyifannppp/poco-agent/pkg/storage"
	"github.com/wuyifannppp/poco-agent/pkg/version"
	"github.com/wuyifannppp/poco-agent/pkg/workspace"
)

// resolvePodID determines this instance's identity for worker naming.
// Priority: POD_ID env var > HOSTNAME env var > "local".
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if id := os.Getenv("HOSTNAME"); id != "" {
		return id
	}
	return "local"
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	cfg := config.LoadManagerConfig()
	podID := resolvePodID()
	slog.Info("Starting executor manager", "version", version.Full(), "pod_id", podID, "addr", cfg.ListenAddr)

	ctx := context.Background()

	store, err := storage.NewS3Store(ctx, config.LoadStorageConfig())
	if err != nil {
		slog.Error("Failed to initialize object storage", "error", err)
		os.Exit(1)
	}

	backend := backendclient.New(cfg.BackendURL)
	workspaces := workspace.NewManager(cfg.WorkspaceRoot)
	res := resolver.New(backend)
	st := stager.New(workspaces, store, &stager.SubprocessCloner{})

	fleet, err := dispatch.NewExecutorFleet(cfg.ExecutorAddrs)
	if err != nil {
		slog.Error("Failed to initialize executor fleet", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := fleet.Close(); err != nil {
			slog.Error("Error closing executor connections", "error", err)
		}
	}()

	pool := dispatch.NewWorkerPool(podID, cfg, backend, res, st, workspaces, fleet)
	pool.Start(ctx)
	defer pool.Stop()

	server := managerapi.NewServer(workspaces, pool)
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
