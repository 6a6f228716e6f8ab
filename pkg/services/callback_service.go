package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/wuyifannppp/poco-agent/ent"
	"github.com/wuyifannppp/poco-agent/ent/agentmessage"
	"github.com/wuyifannppp/poco-agent/ent/agentrun"
	"github.com/wuyifannppp/poco-agent/ent/agentsession"
	"github.com/wuyifannppp/poco-agent/ent/toolexecution"
	"github.com/wuyifannppp/poco-agent/pkg/models"
)

// CallbackService is the sink for executor progress events. Each callback is
// applied in a single transaction that either commits whole or aborts; the
// response carries the session's current cancellation flag so executors can
// stop cooperatively.
type CallbackService struct {
	client     *ent.Client
	runService *RunService
}

// NewCallbackService creates a new CallbackService
func NewCallbackService(client *ent.Client, runService *RunService) *CallbackService {
	return &CallbackService{client: client, runService: runService}
}

// Handle applies one callback event and returns the acknowledgement. A run
// named by the event must belong to the named session; mismatches are
// rejected as not found before anything is written.
func (s *CallbackService) Handle(ctx context.Context, req models.AgentCallbackRequest) (*models.CallbackResponse, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	session, err := tx.AgentSession.Query().
		Where(
			agentsession.IDEQ(req.SessionID),
			agentsession.IsDeletedEQ(false),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query session: %w", err)
	}

	if req.RunID != "" {
		run, err := tx.AgentRun.Query().
			Where(agentrun.IDEQ(req.RunID)).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("failed to query run: %w", err)
		}
		if run.SessionID != session.ID {
			return nil, ErrNotFound
		}
	}

	switch req.Kind {
	case models.CallbackMessageAppended:
		err = s.appendMessage(ctx, tx, session.ID, req.Message)
	case models.CallbackToolStarted:
		err = s.toolStarted(ctx, tx, session.ID, req.RunID, req.Tool)
	case models.CallbackToolFinished:
		err = s.toolFinished(ctx, tx, session.ID, req.Tool)
	case models.CallbackUsageRecorded:
		err = s.recordUsage(ctx, tx, session.ID, req.RunID, req.Usage)
	case models.CallbackRunSucceeded:
		_, err = s.runService.finishRunInTx(ctx, tx, req.RunID, req.ClaimToken, agentrun.StatusSucceeded, nil)
		if err == nil {
			err = s.applySessionUpdates(ctx, session, req)
		}
	case models.CallbackRunFailed:
		_, err = s.runService.finishRunInTx(ctx, tx, req.RunID, req.ClaimToken, agentrun.StatusFailed, req.Error)
		if err == nil {
			err = s.applySessionUpdates(ctx, session, req)
		}
	case models.CallbackSessionState:
		err = s.applySessionUpdates(ctx, session, req)
	default:
		return nil, NewValidationError("kind", fmt.Sprintf("unknown callback kind '%s'", req.Kind))
	}
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit callback: %w", err)
	}

	return &models.CallbackResponse{
		CancelRequested: s.cancelRequested(ctx, req.RunID),
	}, nil
}

// cancelRequested reads the run's cancellation flag. Lookup failures degrade
// to false; the next callback will observe the flag.
func (s *CallbackService) cancelRequested(ctx context.Context, runID string) bool {
	if runID == "" {
		return false
	}
	run, err := s.client.AgentRun.Query().
		Where(agentrun.IDEQ(runID)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			slog.Warn("Failed to read cancellation flag", "run_id", runID, "error", err)
		}
		return false
	}
	return run.CancelRequested
}

func (s *CallbackService) appendMessage(ctx context.Context, tx *ent.Tx, sessionID string, msg *models.CallbackMessage) error {
	if msg == nil {
		return NewValidationError("message", "required")
	}
	role := agentmessage.Role(msg.Role)
	if err := agentmessage.RoleValidator(role); err != nil {
		return NewValidationError("message.role", err.Error())
	}

	builder := tx.AgentMessage.Create().
		SetSessionID(sessionID).
		SetRole(role).
		SetContent(msg.Content)

	preview := msg.TextPreview
	if preview == "" {
		if text, ok := msg.Content["text"].(string); ok {
			preview = text
		}
	}
	if preview != "" {
		builder = builder.SetTextPreview(truncatePreview(preview))
	}

	if err := builder.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append message: %w", err)
	}
	return nil
}

func (s *CallbackService) toolStarted(ctx context.Context, tx *ent.Tx, sessionID, runID string, tool *models.CallbackTool) error {
	if tool == nil || tool.ID == "" {
		return NewValidationError("tool.id", "required")
	}
	if runID == "" {
		return NewValidationError("run_id", "required")
	}

	// A constraint violation would poison the surrounding transaction, so
	// retried deliveries are detected up front.
	exists, err := tx.ToolExecution.Query().
		Where(toolexecution.IDEQ(tool.ID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to query tool execution: %w", err)
	}
	if exists {
		// Retried delivery of the same tool start.
		return nil
	}

	startedAt := time.Now()
	if tool.StartedAt != nil {
		startedAt = *tool.StartedAt
	}

	builder := tx.ToolExecution.Create().
		SetID(tool.ID).
		SetSessionID(sessionID).
		SetRunID(runID).
		SetToolName(tool.Name).
		SetStatus(toolexecution.StatusRunning).
		SetStartedAt(startedAt)
	if tool.Input != nil {
		builder = builder.SetInput(tool.Input)
	}

	if err := builder.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record tool start: %w", err)
	}
	return nil
}

func (s *CallbackService) toolFinished(ctx context.Context, tx *ent.Tx, sessionID string, tool *models.CallbackTool) error {
	if tool == nil || tool.ID == "" {
		return NewValidationError("tool.id", "required")
	}

	exec, err := tx.ToolExecution.Get(ctx, tool.ID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to query tool execution: %w", err)
	}
	if exec.SessionID != sessionID {
		return ErrNotFound
	}

	status := toolexecution.StatusSucceeded
	if tool.Error != nil {
		status = toolexecution.StatusFailed
	}
	if tool.Status != "" {
		status = toolexecution.Status(tool.Status)
		if err := toolexecution.StatusValidator(status); err != nil {
			return NewValidationError("tool.status", err.Error())
		}
	}

	finishedAt := time.Now()
	if tool.FinishedAt != nil {
		finishedAt = *tool.FinishedAt
	}

	update := exec.Update().
		SetStatus(status).
		SetFinishedAt(finishedAt)
	if tool.Output != nil {
		update = update.SetOutput(tool.Output)
	}
	if tool.Error != nil {
		update = update.SetError(tool.Error)
	}

	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record tool finish: %w", err)
	}
	return nil
}

func (s *CallbackService) recordUsage(ctx context.Context, tx *ent.Tx, sessionID, runID string, usage *models.CallbackUsage) error {
	if usage == nil {
		return NewValidationError("usage", "required")
	}
	if runID == "" {
		return NewValidationError("run_id", "required")
	}

	builder := tx.UsageLog.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetRunID(runID).
		SetInputTokens(usage.InputTokens).
		SetOutputTokens(usage.OutputTokens).
		SetCacheReadTokens(usage.CacheReadTokens).
		SetCacheWriteTokens(usage.CacheWriteTokens)
	if usage.Model != "" {
		builder = builder.SetModel(usage.Model)
	}

	if err := builder.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record usage: %w", err)
	}
	return nil
}

// applySessionUpdates folds the session-level fields a callback may carry
// (sdk session id, state patch, workspace export keys) into the session row.
// The session entity is transaction-bound; writes join the caller's tx.
func (s *CallbackService) applySessionUpdates(ctx context.Context, session *ent.AgentSession, req models.AgentCallbackRequest) error {
	update := session.Update()
	dirty := false

	if req.SdkSessionID != "" && (session.SdkSessionID == nil || *session.SdkSessionID == "") {
		update = update.SetSdkSessionID(req.SdkSessionID)
		dirty = true
	}
	if req.StatePatch != nil {
		update = update.SetStatePatch(mergeConfig(session.StatePatch, req.StatePatch))
		dirty = true
	}
	if ws := req.Workspace; ws != nil {
		if ws.FilesPrefix != "" {
			update = update.SetWorkspaceFilesPrefix(ws.FilesPrefix)
			dirty = true
		}
		if ws.ManifestKey != "" {
			update = update.SetWorkspaceManifestKey(ws.ManifestKey)
			dirty = true
		}
		if ws.ArchiveKey != "" {
			update = update.SetWorkspaceArchiveKey(ws.ArchiveKey)
			dirty = true
		}
		if ws.ExportStatus != "" {
			update = update.SetWorkspaceExportStatus(ws.ExportStatus)
			dirty = true
		}
	}

	if !dirty {
		return nil
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to apply session updates: %w", err)
	}
	return nil
}
