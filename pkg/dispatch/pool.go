// Package dispatch runs the executor manager's worker pool: claim runs from
// the backend, resolve and stage them, and forward them to executors.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wuyifannppp/poco-agent/pkg/backendclient"
	"github.com/wuyifannppp/poco-agent/pkg/config"
	"github.com/wuyifannppp/poco-agent/pkg/resolver"
	"github.com/wuyifannppp/poco-agent/pkg/stager"
	"github.com/wuyifannppp/poco-agent/pkg/workspace"
)

// WorkerPool manages a pool of dispatch workers.
type WorkerPool struct {
	podID      string
	config     *config.ManagerConfig
	backend    *backendclient.Client
	resolver   *resolver.Resolver
	stager     *stager.Stager
	workspaces *workspace.Manager
	fleet      TaskForwarder
	workers    []*Worker
	started    bool
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(podID string, cfg *config.ManagerConfig, backend *backendclient.Client, res *resolver.Resolver, st *stager.Stager, ws *workspace.Manager, fleet TaskForwarder) *WorkerPool {
	return &WorkerPool{
		podID:      podID,
		config:     cfg,
		backend:    backend,
		resolver:   res,
		stager:     st,
		workspaces: ws,
		fleet:      fleet,
		workers:    make([]*Worker, 0, cfg.WorkerCount),
	}
}

// Start spawns worker goroutines.
// It is safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return
	}
	p.started = true

	slog.Info("Starting dispatch pool", "pod_id", p.podID, "worker_count", p.config.WorkerCount)

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.config, p.backend, p.resolver, p.stager, p.workspaces, p.fleet)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	slog.Info("Dispatch pool started")
}

// Stop signals all workers to stop and waits for them to finish their
// current dispatches.
func (p *WorkerPool) Stop() {
	slog.Info("Stopping dispatch pool")
	for _, worker := range p.workers {
		worker.Stop()
	}
	slog.Info("Dispatch pool stopped")
}

// Health returns the health of every worker.
func (p *WorkerPool) Health() []WorkerHealth {
	health := make([]WorkerHealth, 0, len(p.workers))
	for _, worker := range p.workers {
		health = append(health, worker.Health())
	}
	return health
}
