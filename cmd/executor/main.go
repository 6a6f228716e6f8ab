// Executor — gRPC task execution service. Receives staged tasks from the
// manager, drives the agent runner, and reports progress through backend
// callbacks. This binary ships the echo runner stub.
package main

import (
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"

	"github.com/wuyifannppp/poco-agent/pkg/config"
	"github.com/wuyifannppp/poco-agent/pkg/executor"
	"github.com/wuyifannppp/poco-agent/pkg/version"
	pb "github.com/wuyifannppp/poco-agent/proto"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	cfg := config.LoadExecutorConfig()
	slog.Info("Starting executor", "version", version.Full(), "addr", cfg.ListenAddr)

	callbacks := executor.NewCallbackClient(cfg.BackendURL, cfg.CallbackTimeout)
	server := executor.NewServer(executor.EchoRunner{}, callbacks)

	grpcServer := grpc.NewServer()
	pb.RegisterExecutorServiceServer(grpcServer, server)

	listener, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		slog.Error("Failed to listen", "addr", cfg.ListenAddr, "error", err)
		os.Exit(1)
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("gRPC server listening", "addr", cfg.ListenAddr)
		if err := grpcServer.Serve(listener); err != nil {
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

	// GracefulStop stops accepting new tasks; Wait drains in-flight ones.
	stopped := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(cfg.ShutdownTimeout):
		slog.Warn("Graceful stop timed out, forcing shutdown")
		grpcServer.Stop()
	}
	server.Wait()

	slog.Info("Shutdown complete")
}
