// Package cleanup provides background maintenance for the run queue.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/wuyifannppp/poco-agent/pkg/config"
	"github.com/wuyifannppp/poco-agent/pkg/services"
)

// Reaper periodically releases orphaned run claims: runs claimed by a worker
// that died before reporting start. Idempotent and safe to run from multiple
// replicas (claims are scanned under SKIP LOCKED).
type Reaper struct {
	config     *config.BackendConfig
	runService *services.RunService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewReaper creates a new claim reaper.
func NewReaper(cfg *config.BackendConfig, runService *services.RunService) *Reaper {
	return &Reaper{
		config:     cfg,
		runService: runService,
	}
}

// Start launches the background reaper loop.
func (r *Reaper) Start(ctx context.Context) {
	if r.cancel != nil {
		return
	}
	ctx, r.cancel = context.WithCancel(ctx)
	r.done = make(chan struct{})

	go r.run(ctx)

	slog.Info("Claim reaper started",
		"interval", r.config.ReaperInterval,
		"claim_ttl", r.config.ClaimTTL)
}

// Stop signals the reaper loop to exit and waits for it to finish.
func (r *Reaper) Stop() {
	if r.cancel == nil {
		return
	}
	r.cancel()
	<-r.done
	slog.Info("Claim reaper stopped")
}

func (r *Reaper) run(ctx context.Context) {
	defer close(r.done)

	r.sweep(ctx)

	ticker := time.NewTicker(r.config.ReaperInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.sweep(ctx)
		}
	}
}

func (r *Reaper) sweep(ctx context.Context) {
	released, err := r.runService.ReleaseExpiredClaims(ctx, r.config.ClaimTTL)
	if err != nil {
		slog.Error("Claim sweep failed", "error", err)
		return
	}
	if released > 0 {
		slog.Info("Released orphaned claims", "count", released)
	}
}
