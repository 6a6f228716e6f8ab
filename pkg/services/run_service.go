package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/wuyifannppp/poco-agent/ent"
	"github.com/wuyifannppp/poco-agent/ent/agentmessage"
	"github.com/wuyifannppp/poco-agent/ent/agentrun"
	"github.com/wuyifannppp/poco-agent/ent/agentsession"
	"github.com/wuyifannppp/poco-agent/pkg/models"
)

// claimScanLimit bounds how many queued candidates a single claim attempt
// inspects when matching worker capabilities. Runs beyond the window stay
// queued until earlier ones drain.
const claimScanLimit = 20

// textPreviewMaxLen caps the stored message preview.
const textPreviewMaxLen = 200

// RunService manages the agent run lifecycle: creation, claim, start and
// terminal transitions.
type RunService struct {
	client *ent.Client
}

// NewRunService creates a new RunService
func NewRunService(client *ent.Client) *RunService {
	return &RunService{client: client}
}

// CreateRun records the user prompt as a message and enqueues a run for it.
// The run's config snapshot is the session config merged with the per-prompt
// overrides, frozen at submission time.
func (s *RunService) CreateRun(httpCtx context.Context, userID, sessionID string, req models.PromptRequest) (*ent.AgentRun, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, NewValidationError("prompt", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	session, err := tx.AgentSession.Query().
		Where(
			agentsession.IDEQ(sessionID),
			agentsession.IsDeletedEQ(false),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query session: %w", err)
	}
	if session.UserID != userID {
		return nil, ErrForbidden
	}

	snapshot := mergeConfig(session.ConfigSnapshot, req.Config)
	// The snapshot is the only payload a claiming worker sees; freeze the
	// prompt and owner alongside the config.
	snapshot["prompt"] = req.Prompt
	snapshot["user_id"] = userID
	if len(req.InputFiles) > 0 {
		files := make([]any, 0, len(req.InputFiles))
		for _, f := range req.InputFiles {
			files = append(files, f)
		}
		snapshot["input_files"] = files
	}

	content := map[string]any{
		"type": "text",
		"text": req.Prompt,
	}

	msg, err := tx.AgentMessage.Create().
		SetSessionID(sessionID).
		SetRole(agentmessage.RoleUser).
		SetContent(content).
		SetTextPreview(truncatePreview(req.Prompt)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create user message: %w", err)
	}

	run, err := tx.AgentRun.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetUserMessageID(msg.ID).
		SetStatus(agentrun.StatusQueued).
		SetConfigSnapshot(snapshot).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create run: %w", err)
	}

	if session.Status == agentsession.StatusPending {
		if err := tx.AgentSession.UpdateOneID(sessionID).
			SetStatus(agentsession.StatusRunning).
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to update session status: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit run creation: %w", err)
	}

	slog.Info("Run queued", "run_id", run.ID, "session_id", sessionID)
	return run, nil
}

// ClaimNextRun atomically claims the oldest queued run whose required
// capabilities are satisfied by the worker, using FOR UPDATE SKIP LOCKED.
// Returns ErrNoRunsAvailable when no eligible run exists.
func (s *RunService) ClaimNextRun(ctx context.Context, workerID string, capabilities []string) (*ent.AgentRun, string, error) {
	if workerID == "" {
		return nil, "", NewValidationError("worker_id", "required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	// FIFO over a bounded candidate window; locks on skipped candidates
	// release at commit.
	candidates, err := tx.AgentRun.Query().
		Where(agentrun.StatusEQ(agentrun.StatusQueued)).
		Order(ent.Asc(agentrun.FieldCreatedAt), ent.Asc(agentrun.FieldID)).
		Limit(claimScanLimit).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		All(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to query queued runs: %w", err)
	}

	var picked *ent.AgentRun
	for _, run := range candidates {
		if capabilitiesSatisfied(run.ConfigSnapshot, capabilities) {
			picked = run
			break
		}
	}
	if picked == nil {
		return nil, "", ErrNoRunsAvailable
	}

	token := uuid.New().String()
	claimed, err := picked.Update().
		SetStatus(agentrun.StatusClaimed).
		SetClaimToken(token).
		SetWorkerID(workerID).
		SetClaimedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to claim run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, "", fmt.Errorf("failed to commit claim: %w", err)
	}

	slog.Info("Run claimed", "run_id", claimed.ID, "worker_id", workerID)
	return claimed, token, nil
}

// StartRun transitions a claimed run to running. The claim token must match.
// Calling start on a run already running with the same token is a no-op
// (idempotent retry). An sdk session id reported here is written through to
// the run and, if the session has none yet, to the session.
func (s *RunService) StartRun(ctx context.Context, runID string, req models.RunStartRequest) (*ent.AgentRun, error) {
	if req.ClaimToken == "" {
		return nil, NewValidationError("claim_token", "required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	run, err := tx.AgentRun.Query().
		Where(agentrun.IDEQ(runID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query run: %w", err)
	}

	if run.ClaimToken == nil || *run.ClaimToken != req.ClaimToken {
		return nil, ErrConflict
	}

	switch run.Status {
	case agentrun.StatusClaimed:
		// proceed
	case agentrun.StatusRunning:
		// Idempotent retry of start with the same token.
		return run, tx.Commit()
	default:
		return nil, ErrConflict
	}

	update := run.Update().
		SetStatus(agentrun.StatusRunning).
		SetStartedAt(time.Now())
	if req.SdkSessionID != "" {
		update = update.SetSdkSessionID(req.SdkSessionID)
	}
	run, err = update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start run: %w", err)
	}

	if req.SdkSessionID != "" {
		session, err := tx.AgentSession.Get(ctx, run.SessionID)
		if err != nil {
			return nil, fmt.Errorf("failed to query session: %w", err)
		}
		if session.SdkSessionID == nil || *session.SdkSessionID == "" {
			if err := session.Update().
				SetSdkSessionID(req.SdkSessionID).
				Exec(ctx); err != nil {
				return nil, fmt.Errorf("failed to record sdk session id: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit start: %w", err)
	}

	slog.Info("Run started", "run_id", run.ID)
	return run, nil
}

// SucceedRun transitions a running run to succeeded and marks the session
// completed when no other active run remains.
func (s *RunService) SucceedRun(ctx context.Context, runID, claimToken string) (*ent.AgentRun, error) {
	return s.finishRun(ctx, runID, claimToken, agentrun.StatusSucceeded, nil)
}

// FailRun transitions a claimed or running run to failed with the given
// error descriptor.
func (s *RunService) FailRun(ctx context.Context, runID, claimToken string, runErr *models.RunError) (*ent.AgentRun, error) {
	return s.finishRun(ctx, runID, claimToken, agentrun.StatusFailed, runErr)
}

// finishRun applies a terminal transition in its own transaction.
func (s *RunService) finishRun(ctx context.Context, runID, claimToken string, status agentrun.Status, runErr *models.RunError) (*ent.AgentRun, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	run, err := s.finishRunInTx(ctx, tx, runID, claimToken, status, runErr)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit finish: %w", err)
	}

	slog.Info("Run finished", "run_id", run.ID, "status", run.Status)
	return run, nil
}

// finishRunInTx applies a terminal transition under the claim token and rolls
// the session status up from the run outcome, all within the caller's
// transaction. The caller commits.
func (s *RunService) finishRunInTx(ctx context.Context, tx *ent.Tx, runID, claimToken string, status agentrun.Status, runErr *models.RunError) (*ent.AgentRun, error) {
	if claimToken == "" {
		return nil, NewValidationError("claim_token", "required")
	}

	run, err := tx.AgentRun.Query().
		Where(agentrun.IDEQ(runID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query run: %w", err)
	}

	if run.ClaimToken == nil || *run.ClaimToken != claimToken {
		return nil, ErrConflict
	}

	// A failure report on a run with a pending cancel lands as cancelled:
	// the executor aborted because it was asked to.
	if status == agentrun.StatusFailed && run.CancelRequested {
		status = agentrun.StatusCancelled
	}

	switch run.Status {
	case agentrun.StatusClaimed, agentrun.StatusRunning:
		// proceed
	case status:
		// Idempotent retry of the same terminal transition.
		return run, nil
	default:
		return nil, ErrConflict
	}

	update := run.Update().
		SetStatus(status).
		SetFinishedAt(time.Now())
	if runErr != nil {
		update = update.SetError(runErr.AsMap())
	}
	run, err = update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to finish run: %w", err)
	}

	sessionStatus := agentsession.StatusCompleted
	switch status {
	case agentrun.StatusFailed:
		sessionStatus = agentsession.StatusFailed
	case agentrun.StatusCancelled:
		sessionStatus = agentsession.StatusCancelled
	}

	active, err := tx.AgentRun.Query().
		Where(
			agentrun.SessionIDEQ(run.SessionID),
			agentrun.StatusIn(agentrun.StatusQueued, agentrun.StatusClaimed, agentrun.StatusRunning),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count active runs: %w", err)
	}
	if active == 0 {
		if err := tx.AgentSession.UpdateOneID(run.SessionID).
			SetStatus(sessionStatus).
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to update session status: %w", err)
		}
	}
	return run, nil
}

// CancelRun cancels a run. Queued runs are cancelled immediately; claimed or
// running runs get cancel_requested set and stop cooperatively via the
// callback channel. Terminal runs are left untouched.
func (s *RunService) CancelRun(ctx context.Context, userID, runID string) (*ent.AgentRun, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	run, err := tx.AgentRun.Query().
		Where(agentrun.IDEQ(runID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query run: %w", err)
	}

	session, err := tx.AgentSession.Get(ctx, run.SessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query session: %w", err)
	}
	if session.UserID != userID {
		return nil, ErrForbidden
	}

	switch run.Status {
	case agentrun.StatusQueued:
		run, err = run.Update().
			SetStatus(agentrun.StatusCancelled).
			SetFinishedAt(time.Now()).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to cancel run: %w", err)
		}
	case agentrun.StatusClaimed, agentrun.StatusRunning:
		run, err = run.Update().
			SetCancelRequested(true).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to request cancellation: %w", err)
		}
	default:
		// Already terminal; nothing to do.
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit cancel: %w", err)
	}

	slog.Info("Run cancellation", "run_id", run.ID, "status", run.Status,
		"cancel_requested", run.CancelRequested)
	return run, nil
}

// ReleaseExpiredClaims requeues runs that were claimed but never started
// within the TTL: the worker died between claim and start. Returns the number
// of runs released.
func (s *RunService) ReleaseExpiredClaims(ctx context.Context, claimTTL time.Duration) (int, error) {
	cutoff := time.Now().Add(-claimTTL)

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	orphans, err := tx.AgentRun.Query().
		Where(
			agentrun.StatusEQ(agentrun.StatusClaimed),
			agentrun.StartedAtIsNil(),
			agentrun.ClaimedAtLT(cutoff),
		).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query orphaned claims: %w", err)
	}

	released := 0
	for _, run := range orphans {
		if err := run.Update().
			SetStatus(agentrun.StatusQueued).
			ClearClaimToken().
			ClearWorkerID().
			ClearClaimedAt().
			SetAttempt(run.Attempt + 1).
			Exec(ctx); err != nil {
			return 0, fmt.Errorf("failed to release claim on run %s: %w", run.ID, err)
		}
		slog.Warn("Released orphaned claim", "run_id", run.ID, "attempt", run.Attempt+1)
		released++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit release: %w", err)
	}

	return released, nil
}

// GetRun returns a run owned by the user.
func (s *RunService) GetRun(ctx context.Context, userID, runID string) (*ent.AgentRun, error) {
	run, err := s.client.AgentRun.Query().
		Where(agentrun.IDEQ(runID)).
		WithSession().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query run: %w", err)
	}
	if run.Edges.Session != nil && run.Edges.Session.UserID != userID {
		return nil, ErrForbidden
	}
	return run, nil
}

// ListRuns returns a page of a session's runs, newest first.
func (s *RunService) ListRuns(ctx context.Context, userID, sessionID string, params models.ListParams) ([]*ent.AgentRun, error) {
	session, err := s.client.AgentSession.Query().
		Where(
			agentsession.IDEQ(sessionID),
			agentsession.IsDeletedEQ(false),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query session: %w", err)
	}
	if session.UserID != userID {
		return nil, ErrForbidden
	}

	limit, offset := pageWindow(params)
	runs, err := s.client.AgentRun.Query().
		Where(agentrun.SessionIDEQ(sessionID)).
		Order(ent.Desc(agentrun.FieldCreatedAt), ent.Desc(agentrun.FieldID)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}

// mergeConfig overlays per-prompt overrides onto the session config snapshot.
// Top-level keys only; override values replace base values wholesale.
func mergeConfig(base, overrides map[string]any) map[string]any {
	merged := make(map[string]any, len(base)+len(overrides))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}

// capabilitiesSatisfied reports whether every capability required by the run's
// config snapshot is present in the worker's capability set. Runs with no
// requirements match any worker.
func capabilitiesSatisfied(snapshot map[string]any, workerCaps []string) bool {
	raw, ok := snapshot["required_capabilities"]
	if !ok {
		return true
	}
	required, ok := raw.([]any)
	if !ok || len(required) == 0 {
		return true
	}

	have := make(map[string]bool, len(workerCaps))
	for _, c := range workerCaps {
		have[c] = true
	}
	for _, r := range required {
		name, ok := r.(string)
		if !ok {
			continue
		}
		if !have[name] {
			return false
		}
	}
	return true
}

// truncatePreview shortens text to the preview column limit, cutting on a
// rune boundary so the stored preview stays valid UTF-8.
func truncatePreview(text string) string {
	text = strings.TrimSpace(text)
	if len(text) <= textPreviewMaxLen {
		return text
	}
	cut := textPreviewMaxLen
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}
