package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wuyifannppp/poco-agent/ent"
	"github.com/wuyifannppp/poco-agent/ent/agentmessage"
	"github.com/wuyifannppp/poco-agent/ent/agentrun"
	"github.com/wuyifannppp/poco-agent/ent/toolexecution"
	"github.com/wuyifannppp/poco-agent/ent/usagelog"
	"github.com/wuyifannppp/poco-agent/pkg/models"
	testdb "github.com/wuyifannppp/poco-agent/test/database"
)

// startRunForCallbacks claims and starts a fresh run, returning it with its
// claim token.
func startRunForCallbacks(t *testing.T, client *ent.Client, sessionID string) (*ent.AgentRun, string) {
	t.Helper()
	runs := NewRunService(client)
	newQueuedRun(t, client, sessionID, "do the thing")
	claimed, token := claimRun(t, client, "worker-1", nil)
	run, err := runs.StartRun(context.Background(), claimed.ID, models.RunStartRequest{ClaimToken: token})
	require.NoError(t, err)
	return run, token
}

func TestCallbackService_MessageAppended(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCallbackService(client.Client, NewRunService(client.Client))
	ctx := context.Background()

	session := newTestSession(t, client.Client)
	run, _ := startRunForCallbacks(t, client.Client, session.ID)

	resp, err := service.Handle(ctx, models.AgentCallbackRequest{
		Kind:      models.CallbackMessageAppended,
		SessionID: session.ID,
		RunID:     run.ID,
		Message: &models.CallbackMessage{
			Role:    "assistant",
			Content: map[string]any{"type": "text", "text": "working on it"},
		},
	})
	require.NoError(t, err)
	assert.False(t, resp.CancelRequested)

	msgs, err := client.AgentMessage.Query().
		Where(agentmessage.SessionIDEQ(session.ID), agentmessage.RoleEQ(agentmessage.RoleAssistant)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	require.NotNil(t, msgs[0].TextPreview)
	assert.Equal(t, "working on it", *msgs[0].TextPreview)

	t.Run("rejects bad role", func(t *testing.T) {
		_, err := service.Handle(ctx, models.AgentCallbackRequest{
			Kind:      models.CallbackMessageAppended,
			SessionID: session.ID,
			Message:   &models.CallbackMessage{Role: "robot", Content: map[string]any{}},
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestCallbackService_ToolLifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCallbackService(client.Client, NewRunService(client.Client))
	ctx := context.Background()

	session := newTestSession(t, client.Client)
	run, _ := startRunForCallbacks(t, client.Client, session.ID)

	_, err := service.Handle(ctx, models.AgentCallbackRequest{
		Kind:      models.CallbackToolStarted,
		SessionID: session.ID,
		RunID:     run.ID,
		Tool: &models.CallbackTool{
			ID:    "tool-call-1",
			Name:  "bash",
			Input: map[string]any{"command": "ls"},
		},
	})
	require.NoError(t, err)

	exec, err := client.ToolExecution.Get(ctx, "tool-call-1")
	require.NoError(t, err)
	assert.Equal(t, toolexecution.StatusRunning, exec.Status)
	assert.Equal(t, "bash", exec.ToolName)

	// Retried delivery of the same start is swallowed.
	_, err = service.Handle(ctx, models.AgentCallbackRequest{
		Kind:      models.CallbackToolStarted,
		SessionID: session.ID,
		RunID:     run.ID,
		Tool:      &models.CallbackTool{ID: "tool-call-1", Name: "bash"},
	})
	require.NoError(t, err)

	_, err = service.Handle(ctx, models.AgentCallbackRequest{
		Kind:      models.CallbackToolFinished,
		SessionID: session.ID,
		RunID:     run.ID,
		Tool: &models.CallbackTool{
			ID:     "tool-call-1",
			Output: map[string]any{"stdout": "README.md"},
		},
	})
	require.NoError(t, err)

	exec, err = client.ToolExecution.Get(ctx, "tool-call-1")
	require.NoError(t, err)
	assert.Equal(t, toolexecution.StatusSucceeded, exec.Status)
	assert.NotNil(t, exec.FinishedAt)

	t.Run("error payload fails the execution", func(t *testing.T) {
		_, err := service.Handle(ctx, models.AgentCallbackRequest{
			Kind:      models.CallbackToolStarted,
			SessionID: session.ID,
			RunID:     run.ID,
			Tool:      &models.CallbackTool{ID: "tool-call-2", Name: "fetch"},
		})
		require.NoError(t, err)

		_, err = service.Handle(ctx, models.AgentCallbackRequest{
			Kind:      models.CallbackToolFinished,
			SessionID: session.ID,
			RunID:     run.ID,
			Tool: &models.CallbackTool{
				ID:    "tool-call-2",
				Error: map[string]any{"message": "connection refused"},
			},
		})
		require.NoError(t, err)

		exec, err := client.ToolExecution.Get(ctx, "tool-call-2")
		require.NoError(t, err)
		assert.Equal(t, toolexecution.StatusFailed, exec.Status)
	})

	t.Run("finish for unknown tool call", func(t *testing.T) {
		_, err := service.Handle(ctx, models.AgentCallbackRequest{
			Kind:      models.CallbackToolFinished,
			SessionID: session.ID,
			RunID:     run.ID,
			Tool:      &models.CallbackTool{ID: "never-started"},
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCallbackService_UsageRecorded(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCallbackService(client.Client, NewRunService(client.Client))
	ctx := context.Background()

	session := newTestSession(t, client.Client)
	run, _ := startRunForCallbacks(t, client.Client, session.ID)

	_, err := service.Handle(ctx, models.AgentCallbackRequest{
		Kind:      models.CallbackUsageRecorded,
		SessionID: session.ID,
		RunID:     run.ID,
		Usage: &models.CallbackUsage{
			InputTokens:  120,
			OutputTokens: 45,
			Model:        "large",
		},
	})
	require.NoError(t, err)

	logs, err := client.UsageLog.Query().Where(usagelog.RunIDEQ(run.ID)).All(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, 120, logs[0].InputTokens)
	assert.Equal(t, 45, logs[0].OutputTokens)
}

func TestCallbackService_TerminalKinds(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCallbackService(client.Client, NewRunService(client.Client))
	ctx := context.Background()

	t.Run("run.succeeded finishes run and applies workspace info", func(t *testing.T) {
		session := newTestSession(t, client.Client)
		run, token := startRunForCallbacks(t, client.Client, session.ID)

		_, err := service.Handle(ctx, models.AgentCallbackRequest{
			Kind:       models.CallbackRunSucceeded,
			SessionID:  session.ID,
			RunID:      run.ID,
			ClaimToken: token,
			Workspace: &models.WorkspaceInfo{
				FilesPrefix:  "workspaces/" + session.ID + "/",
				ExportStatus: "exported",
			},
		})
		require.NoError(t, err)

		finished, err := client.AgentRun.Get(ctx, run.ID)
		require.NoError(t, err)
		assert.Equal(t, agentrun.StatusSucceeded, finished.Status)

		updated, err := client.AgentSession.Get(ctx, session.ID)
		require.NoError(t, err)
		require.NotNil(t, updated.WorkspaceFilesPrefix)
		assert.Equal(t, "workspaces/"+session.ID+"/", *updated.WorkspaceFilesPrefix)
	})

	t.Run("run.failed carries the error", func(t *testing.T) {
		session := newTestSession(t, client.Client)
		run, token := startRunForCallbacks(t, client.Client, session.ID)

		_, err := service.Handle(ctx, models.AgentCallbackRequest{
			Kind:       models.CallbackRunFailed,
			SessionID:  session.ID,
			RunID:      run.ID,
			ClaimToken: token,
			Error:      &models.RunError{Code: "INTERNAL_ERROR", Message: "boom"},
		})
		require.NoError(t, err)

		finished, err := client.AgentRun.Get(ctx, run.ID)
		require.NoError(t, err)
		assert.Equal(t, agentrun.StatusFailed, finished.Status)
		assert.Equal(t, "boom", finished.Error["message"])
	})

	t.Run("wrong claim token conflicts", func(t *testing.T) {
		session := newTestSession(t, client.Client)
		run, _ := startRunForCallbacks(t, client.Client, session.ID)

		_, err := service.Handle(ctx, models.AgentCallbackRequest{
			Kind:       models.CallbackRunSucceeded,
			SessionID:  session.ID,
			RunID:      run.ID,
			ClaimToken: "bogus",
		})
		assert.ErrorIs(t, err, ErrConflict)
	})
}

func TestCallbackService_RunSessionMismatch(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCallbackService(client.Client, NewRunService(client.Client))
	ctx := context.Background()

	owner := newTestSession(t, client.Client)
	other := newTestSession(t, client.Client)
	run, token := startRunForCallbacks(t, client.Client, owner.ID)

	t.Run("event naming the wrong session is rejected", func(t *testing.T) {
		_, err := service.Handle(ctx, models.AgentCallbackRequest{
			Kind:      models.CallbackMessageAppended,
			SessionID: other.ID,
			RunID:     run.ID,
			Message: &models.CallbackMessage{
				Role:    "assistant",
				Content: map[string]any{"type": "text", "text": "misdelivered"},
			},
		})
		assert.ErrorIs(t, err, ErrNotFound)

		msgs, err := client.AgentMessage.Query().
			Where(agentmessage.SessionIDEQ(other.ID)).
			All(ctx)
		require.NoError(t, err)
		assert.Empty(t, msgs)
	})

	t.Run("terminal event with the wrong session leaves the run alone", func(t *testing.T) {
		_, err := service.Handle(ctx, models.AgentCallbackRequest{
			Kind:       models.CallbackRunSucceeded,
			SessionID:  other.ID,
			RunID:      run.ID,
			ClaimToken: token,
		})
		assert.ErrorIs(t, err, ErrNotFound)

		got, err := client.AgentRun.Get(ctx, run.ID)
		require.NoError(t, err)
		assert.Equal(t, agentrun.StatusRunning, got.Status)
	})

	t.Run("tool finish across sessions is rejected", func(t *testing.T) {
		_, err := service.Handle(ctx, models.AgentCallbackRequest{
			Kind:      models.CallbackToolStarted,
			SessionID: owner.ID,
			RunID:     run.ID,
			Tool:      &models.CallbackTool{ID: "tool-owner-1", Name: "bash"},
		})
		require.NoError(t, err)

		otherRun, _ := startRunForCallbacks(t, client.Client, other.ID)
		_, err = service.Handle(ctx, models.AgentCallbackRequest{
			Kind:      models.CallbackToolFinished,
			SessionID: other.ID,
			RunID:     otherRun.ID,
			Tool:      &models.CallbackTool{ID: "tool-owner-1", Output: map[string]any{"stdout": "x"}},
		})
		assert.ErrorIs(t, err, ErrNotFound)

		exec, err := client.ToolExecution.Get(ctx, "tool-owner-1")
		require.NoError(t, err)
		assert.Equal(t, toolexecution.StatusRunning, exec.Status)
	})
}

func TestCallbackService_RejectedEventWritesNothing(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCallbackService(client.Client, NewRunService(client.Client))
	ctx := context.Background()

	session := newTestSession(t, client.Client)
	run, _ := startRunForCallbacks(t, client.Client, session.ID)

	// A stale claim token aborts the whole event: the workspace payload it
	// carried must not land on the session either.
	_, err := service.Handle(ctx, models.AgentCallbackRequest{
		Kind:       models.CallbackRunSucceeded,
		SessionID:  session.ID,
		RunID:      run.ID,
		ClaimToken: "stale",
		Workspace: &models.WorkspaceInfo{
			FilesPrefix:  "workspaces/" + session.ID + "/",
			ExportStatus: "exported",
		},
	})
	require.ErrorIs(t, err, ErrConflict)

	got, err := client.AgentRun.Get(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, agentrun.StatusRunning, got.Status)

	untouched, err := client.AgentSession.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Nil(t, untouched.WorkspaceFilesPrefix)
	assert.Nil(t, untouched.WorkspaceExportStatus)
}

func TestCallbackService_SessionStateAndCancelFlag(t *testing.T) {
	client := testdb.NewTestClient(t)
	runs := NewRunService(client.Client)
	service := NewCallbackService(client.Client, runs)
	ctx := context.Background()

	session := newTestSession(t, client.Client)
	run, _ := startRunForCallbacks(t, client.Client, session.ID)

	resp, err := service.Handle(ctx, models.AgentCallbackRequest{
		Kind:       models.CallbackSessionState,
		SessionID:  session.ID,
		RunID:      run.ID,
		StatePatch: map[string]any{"phase": "executing"},
	})
	require.NoError(t, err)
	assert.False(t, resp.CancelRequested)

	updated, err := client.AgentSession.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, "executing", updated.StatePatch["phase"])

	// Once a cancel is requested, every acknowledgement echoes it.
	_, err = runs.CancelRun(ctx, testUser, run.ID)
	require.NoError(t, err)

	resp, err = service.Handle(ctx, models.AgentCallbackRequest{
		Kind:      models.CallbackMessageAppended,
		SessionID: session.ID,
		RunID:     run.ID,
		Message: &models.CallbackMessage{
			Role:    "assistant",
			Content: map[string]any{"type": "text", "text": "still going"},
		},
	})
	require.NoError(t, err)
	assert.True(t, resp.CancelRequested)
}

func TestCallbackService_UnknownKind(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCallbackService(client.Client, NewRunService(client.Client))

	session := newTestSession(t, client.Client)
	_, err := service.Handle(context.Background(), models.AgentCallbackRequest{
		Kind:      "run.paused",
		SessionID: session.ID,
	})
	assert.True(t, IsValidationError(err))
}
