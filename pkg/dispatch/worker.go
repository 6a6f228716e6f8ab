package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/wuyifannppp/poco-agent/ent"
	"github.com/wuyifannppp/poco-agent/pkg/backendclient"
	"github.com/wuyifannppp/poco-agent/pkg/config"
	"github.com/wuyifannppp/poco-agent/pkg/models"
	"github.com/wuyifannppp/poco-agent/pkg/resolver"
	"github.com/wuyifannppp/poco-agent/pkg/services"
	"github.com/wuyifannppp/poco-agent/pkg/stager"
	"github.com/wuyifannppp/poco-agent/pkg/workspace"
	pb "github.com/wuyifannppp/poco-agent/proto"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single dispatch worker: it polls the backend for claimable
// runs, resolves and stages them, and forwards them to an executor.
type Worker struct {
	id         string
	config     *config.ManagerConfig
	backend    *backendclient.Client
	resolver   *resolver.Resolver
	stager     *stager.Stager
	workspaces *workspace.Manager
	fleet      TaskForwarder
	stopCh     chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup

	// Health tracking
	mu             sync.RWMutex
	status         WorkerStatus
	currentRunID   string
	runsDispatched int
	lastActivity   time.Time
}

// NewWorker creates a new dispatch worker.
func NewWorker(id string, cfg *config.ManagerConfig, backend *backendclient.Client, res *resolver.Resolver, st *stager.Stager, ws *workspace.Manager, fleet TaskForwarder) *Worker {
	return &Worker{
		id:           id,
		config:       cfg,
		backend:      backend,
		resolver:     res,
		stager:       st,
		workspaces:   ws,
		fleet:        fleet,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// WorkerHealth is a point-in-time worker status snapshot.
type WorkerHealth struct {
	ID             string       `json:"id"`
	Status         WorkerStatus `json:"status"`
	CurrentRunID   string       `json:"current_run_id,omitempty"`
	RunsDispatched int          `json:"runs_dispatched"`
	LastActivity   time.Time    `json:"last_activity"`
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:             w.id,
		Status:         w.status,
		CurrentRunID:   w.currentRunID,
		RunsDispatched: w.runsDispatched,
		LastActivity:   w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id)
	log.Info("Dispatch worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Dispatch worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, dispatch worker shutting down")
			return
		default:
			dispatched, err := w.pollAndDispatch(ctx)
			if err != nil {
				log.Error("Dispatch failed", "error", err)
				w.sleep(time.Second)
				continue
			}
			if !dispatched {
				w.sleep(w.pollInterval())
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndDispatch claims one run and drives it to the executor. Returns
// false when the queue was empty.
func (w *Worker) pollAndDispatch(ctx context.Context) (bool, error) {
	claim, err := w.backend.ClaimRun(ctx, w.id, w.config.Capabilities)
	if err != nil {
		return false, err
	}
	if claim == nil {
		return false, nil
	}

	run := claim.Run
	log := slog.With("run_id", run.ID, "session_id", run.SessionID, "worker_id", w.id)
	log.Info("Run claimed")

	w.setStatus(WorkerStatusWorking, run.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	runCtx, cancel := context.WithTimeout(ctx, w.config.RunTimeout)
	defer cancel()

	if err := w.dispatch(runCtx, run, claim.ClaimToken); err != nil {
		log.Error("Run dispatch failed", "error", err)
		w.reportFailure(run.ID, claim.ClaimToken, err)
		return true, nil
	}

	w.mu.Lock()
	w.runsDispatched++
	w.mu.Unlock()

	log.Info("Run dispatched")
	return true, nil
}

// dispatch resolves, stages, forwards and starts one claimed run.
func (w *Worker) dispatch(ctx context.Context, run *ent.AgentRun, claimToken string) error {
	userID, _ := run.ConfigSnapshot["user_id"].(string)
	if userID == "" {
		return services.NewValidationError("user_id", "missing from run snapshot")
	}
	prompt, _ := run.ConfigSnapshot["prompt"].(string)

	effective, err := w.resolver.Resolve(ctx, userID, run.ConfigSnapshot)
	if err != nil {
		return err
	}

	inputs, _ := effective["input_files"].([]any)
	staged, err := w.stager.Stage(ctx, userID, run.SessionID, inputs)
	if err != nil {
		return err
	}
	stagedAny := make([]any, len(staged))
	for i, entry := range staged {
		stagedAny[i] = entry
	}
	effective["input_files"] = stagedAny

	configJSON, err := json.Marshal(effective)
	if err != nil {
		return fmt.Errorf("failed to encode effective config: %w", err)
	}

	task := &pb.TaskRequest{
		RunId:               run.ID,
		SessionId:           run.SessionID,
		UserId:              userID,
		ClaimToken:          claimToken,
		Prompt:              prompt,
		EffectiveConfigJson: string(configJSON),
		WorkspaceDir:        w.workspaces.SessionDir(userID, run.SessionID),
	}
	if run.SdkSessionID != nil {
		task.SdkSessionId = *run.SdkSessionID
	}

	if err := w.fleet.Forward(ctx, task); err != nil {
		return services.NewExternalServiceError("executor", err)
	}

	if err := w.backend.StartRun(ctx, run.ID, claimToken, ""); err != nil {
		return err
	}
	return nil
}

// reportFailure maps a dispatch error to a run error and reports it.
// A stale claim means another actor already moved the run; that is logged,
// not retried.
func (w *Worker) reportFailure(runID, claimToken string, dispatchErr error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	runErr := mapRunError(dispatchErr)
	if err := w.backend.FailRun(ctx, runID, claimToken, runErr); err != nil {
		slog.Error("Failed to report run failure", "run_id", runID, "error", err)
	}
}

// mapRunError converts a dispatch error into the persisted run error shape.
func mapRunError(err error) *models.RunError {
	var envErr *services.EnvVarNotFoundError
	if errors.As(err, &envErr) {
		return &models.RunError{
			Code:    "ENV_VAR_NOT_FOUND",
			Message: envErr.Error(),
			Details: map[string]any{"name": envErr.Name},
		}
	}
	var extErr *services.ExternalServiceError
	if errors.As(err, &extErr) {
		return &models.RunError{
			Code:    "EXTERNAL_SERVICE_ERROR",
			Message: extErr.Error(),
			Details: map[string]any{"service": extErr.Service},
		}
	}
	if services.IsValidationError(err) {
		return &models.RunError{Code: "BAD_REQUEST", Message: err.Error()}
	}
	return &models.RunError{Code: "INTERNAL_ERROR", Message: err.Error()}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, runID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentRunID = runID
	w.lastActivity = time.Now()
}
