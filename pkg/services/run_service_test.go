package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wuyifannppp/poco-agent/ent"
	"github.com/wuyifannppp/poco-agent/ent/agentmessage"
	"github.com/wuyifannppp/poco-agent/ent/agentrun"
	"github.com/wuyifannppp/poco-agent/ent/agentsession"
	"github.com/wuyifannppp/poco-agent/pkg/models"
	testdb "github.com/wuyifannppp/poco-agent/test/database"
)

func TestRunService_CreateRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	ctx := context.Background()

	t.Run("records message and queues run", func(t *testing.T) {
		session := newTestSession(t, client.Client)

		run, err := service.CreateRun(ctx, testUser, session.ID, models.PromptRequest{
			Prompt: "analyze the repo",
			Config: map[string]any{"model": "large"},
		})
		require.NoError(t, err)
		assert.Equal(t, agentrun.StatusQueued, run.Status)
		assert.Equal(t, session.ID, run.SessionID)
		assert.Equal(t, 0, run.Attempt)

		// Snapshot is self-contained: prompt and owner frozen alongside config.
		assert.Equal(t, "analyze the repo", run.ConfigSnapshot["prompt"])
		assert.Equal(t, testUser, run.ConfigSnapshot["user_id"])
		assert.Equal(t, "large", run.ConfigSnapshot["model"])

		msg, err := client.AgentMessage.Get(ctx, run.UserMessageID)
		require.NoError(t, err)
		assert.Equal(t, agentmessage.RoleUser, msg.Role)
		assert.Equal(t, "analyze the repo", msg.Content["text"])

		// First run moves the session out of pending.
		updated, err := client.AgentSession.Get(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, agentsession.StatusRunning, updated.Status)
	})

	t.Run("prompt overrides win over session config", func(t *testing.T) {
		sessionService := NewSessionService(client.Client)
		session, err := sessionService.CreateSession(ctx, testUser, models.SessionCreateRequest{
			Config: map[string]any{"model": "small", "temperature": 0.2},
		})
		require.NoError(t, err)

		run, err := service.CreateRun(ctx, testUser, session.ID, models.PromptRequest{
			Prompt: "go",
			Config: map[string]any{"model": "large"},
		})
		require.NoError(t, err)
		assert.Equal(t, "large", run.ConfigSnapshot["model"])
		assert.Equal(t, 0.2, run.ConfigSnapshot["temperature"])
	})

	t.Run("rejects blank prompt", func(t *testing.T) {
		session := newTestSession(t, client.Client)
		_, err := service.CreateRun(ctx, testUser, session.ID, models.PromptRequest{Prompt: "   "})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects other user's session", func(t *testing.T) {
		session := newTestSession(t, client.Client)
		_, err := service.CreateRun(ctx, "someone-else", session.ID, models.PromptRequest{Prompt: "hi"})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("rejects unknown session", func(t *testing.T) {
		_, err := service.CreateRun(ctx, testUser, "no-such-session", models.PromptRequest{Prompt: "hi"})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRunService_ClaimNextRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	ctx := context.Background()

	t.Run("empty queue", func(t *testing.T) {
		_, _, err := service.ClaimNextRun(ctx, "worker-1", nil)
		assert.ErrorIs(t, err, ErrNoRunsAvailable)
	})

	t.Run("claims oldest first", func(t *testing.T) {
		session := newTestSession(t, client.Client)
		first := newQueuedRun(t, client.Client, session.ID, "first")
		newQueuedRun(t, client.Client, session.ID, "second")

		claimed, token, err := service.ClaimNextRun(ctx, "worker-1", nil)
		require.NoError(t, err)
		assert.Equal(t, first.ID, claimed.ID)
		assert.Equal(t, agentrun.StatusClaimed, claimed.Status)
		assert.NotEmpty(t, token)
		require.NotNil(t, claimed.WorkerID)
		assert.Equal(t, "worker-1", *claimed.WorkerID)
		assert.NotNil(t, claimed.ClaimedAt)
	})

	t.Run("skips runs requiring missing capabilities", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		service := NewRunService(client.Client)
		session := newTestSession(t, client.Client)

		gpuRun, err := service.CreateRun(ctx, testUser, session.ID, models.PromptRequest{
			Prompt: "train",
			Config: map[string]any{"required_capabilities": []any{"gpu"}},
		})
		require.NoError(t, err)
		plainRun := newQueuedRun(t, client.Client, session.ID, "plain")

		// A worker without gpu gets the younger unconstrained run.
		claimed, _, err := service.ClaimNextRun(ctx, "worker-cpu", []string{"docker"})
		require.NoError(t, err)
		assert.Equal(t, plainRun.ID, claimed.ID)

		// A gpu worker picks up the constrained one.
		claimed, _, err = service.ClaimNextRun(ctx, "worker-gpu", []string{"gpu", "docker"})
		require.NoError(t, err)
		assert.Equal(t, gpuRun.ID, claimed.ID)

		_, _, err = service.ClaimNextRun(ctx, "worker-gpu", []string{"gpu"})
		assert.ErrorIs(t, err, ErrNoRunsAvailable)
	})

	t.Run("requires worker id", func(t *testing.T) {
		_, _, err := service.ClaimNextRun(ctx, "", nil)
		assert.True(t, IsValidationError(err))
	})

	t.Run("concurrent claimants get exactly one winner", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		service := NewRunService(client.Client)
		session := newTestSession(t, client.Client)
		run := newQueuedRun(t, client.Client, session.ID, "contended")

		const claimants = 10
		type outcome struct {
			run *ent.AgentRun
			err error
		}
		results := make(chan outcome, claimants)

		var start sync.WaitGroup
		start.Add(1)
		for i := 0; i < claimants; i++ {
			workerID := fmt.Sprintf("worker-%d", i)
			go func() {
				start.Wait()
				claimed, _, err := service.ClaimNextRun(ctx, workerID, nil)
				results <- outcome{run: claimed, err: err}
			}()
		}
		start.Done()

		winners := 0
		for i := 0; i < claimants; i++ {
			res := <-results
			if res.err == nil {
				winners++
				assert.Equal(t, run.ID, res.run.ID)
			} else {
				assert.ErrorIs(t, res.err, ErrNoRunsAvailable)
			}
		}
		assert.Equal(t, 1, winners)
	})
}

func TestRunService_StartRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	ctx := context.Background()

	t.Run("starts claimed run and records sdk session", func(t *testing.T) {
		session := newTestSession(t, client.Client)
		newQueuedRun(t, client.Client, session.ID, "go")
		claimed, token := claimRun(t, client.Client, "worker-1", nil)

		started, err := service.StartRun(ctx, claimed.ID, models.RunStartRequest{
			ClaimToken:   token,
			SdkSessionID: "sdk-123",
		})
		require.NoError(t, err)
		assert.Equal(t, agentrun.StatusRunning, started.Status)
		assert.NotNil(t, started.StartedAt)
		require.NotNil(t, started.SdkSessionID)
		assert.Equal(t, "sdk-123", *started.SdkSessionID)

		updated, err := client.AgentSession.Get(ctx, session.ID)
		require.NoError(t, err)
		require.NotNil(t, updated.SdkSessionID)
		assert.Equal(t, "sdk-123", *updated.SdkSessionID)
	})

	t.Run("first sdk session id wins", func(t *testing.T) {
		session := newTestSession(t, client.Client)
		newQueuedRun(t, client.Client, session.ID, "one")
		run1, token1 := claimRun(t, client.Client, "worker-1", nil)
		_, err := service.StartRun(ctx, run1.ID, models.RunStartRequest{ClaimToken: token1, SdkSessionID: "sdk-a"})
		require.NoError(t, err)
		_, err = service.SucceedRun(ctx, run1.ID, token1)
		require.NoError(t, err)

		newQueuedRun(t, client.Client, session.ID, "two")
		run2, token2 := claimRun(t, client.Client, "worker-1", nil)
		_, err = service.StartRun(ctx, run2.ID, models.RunStartRequest{ClaimToken: token2, SdkSessionID: "sdk-b"})
		require.NoError(t, err)

		updated, err := client.AgentSession.Get(ctx, session.ID)
		require.NoError(t, err)
		require.NotNil(t, updated.SdkSessionID)
		assert.Equal(t, "sdk-a", *updated.SdkSessionID)
	})

	t.Run("wrong token conflicts", func(t *testing.T) {
		session := newTestSession(t, client.Client)
		newQueuedRun(t, client.Client, session.ID, "go")
		claimed, _ := claimRun(t, client.Client, "worker-1", nil)

		_, err := service.StartRun(ctx, claimed.ID, models.RunStartRequest{ClaimToken: "not-the-token"})
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("idempotent retry", func(t *testing.T) {
		session := newTestSession(t, client.Client)
		newQueuedRun(t, client.Client, session.ID, "go")
		claimed, token := claimRun(t, client.Client, "worker-1", nil)

		_, err := service.StartRun(ctx, claimed.ID, models.RunStartRequest{ClaimToken: token})
		require.NoError(t, err)
		again, err := service.StartRun(ctx, claimed.ID, models.RunStartRequest{ClaimToken: token})
		require.NoError(t, err)
		assert.Equal(t, agentrun.StatusRunning, again.Status)
	})
}

func TestRunService_FinishRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	ctx := context.Background()

	startedRun := func(t *testing.T, sessionID string) (string, string) {
		newQueuedRun(t, client.Client, sessionID, "go")
		claimed, token := claimRun(t, client.Client, "worker-1", nil)
		_, err := service.StartRun(ctx, claimed.ID, models.RunStartRequest{ClaimToken: token})
		require.NoError(t, err)
		return claimed.ID, token
	}

	t.Run("succeed completes session", func(t *testing.T) {
		session := newTestSession(t, client.Client)
		runID, token := startedRun(t, session.ID)

		run, err := service.SucceedRun(ctx, runID, token)
		require.NoError(t, err)
		assert.Equal(t, agentrun.StatusSucceeded, run.Status)
		assert.NotNil(t, run.FinishedAt)

		updated, err := client.AgentSession.Get(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, agentsession.StatusCompleted, updated.Status)
	})

	t.Run("fail records error and fails session", func(t *testing.T) {
		session := newTestSession(t, client.Client)
		runID, token := startedRun(t, session.ID)

		run, err := service.FailRun(ctx, runID, token, &models.RunError{
			Code:    "INTERNAL_ERROR",
			Message: "runtime crashed",
		})
		require.NoError(t, err)
		assert.Equal(t, agentrun.StatusFailed, run.Status)
		assert.Equal(t, "INTERNAL_ERROR", run.Error["code"])

		updated, err := client.AgentSession.Get(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, agentsession.StatusFailed, updated.Status)
	})

	t.Run("session stays running while another run is active", func(t *testing.T) {
		session := newTestSession(t, client.Client)
		runID, token := startedRun(t, session.ID)
		newQueuedRun(t, client.Client, session.ID, "second")

		_, err := service.SucceedRun(ctx, runID, token)
		require.NoError(t, err)

		updated, err := client.AgentSession.Get(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, agentsession.StatusRunning, updated.Status)
	})

	t.Run("failure with pending cancel lands as cancelled", func(t *testing.T) {
		session := newTestSession(t, client.Client)
		runID, token := startedRun(t, session.ID)

		_, err := service.CancelRun(ctx, testUser, runID)
		require.NoError(t, err)

		run, err := service.FailRun(ctx, runID, token, &models.RunError{Code: "CANCELLED", Message: "stopped"})
		require.NoError(t, err)
		assert.Equal(t, agentrun.StatusCancelled, run.Status)

		updated, err := client.AgentSession.Get(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, agentsession.StatusCancelled, updated.Status)
	})

	t.Run("idempotent terminal retry", func(t *testing.T) {
		session := newTestSession(t, client.Client)
		runID, token := startedRun(t, session.ID)

		_, err := service.SucceedRun(ctx, runID, token)
		require.NoError(t, err)
		run, err := service.SucceedRun(ctx, runID, token)
		require.NoError(t, err)
		assert.Equal(t, agentrun.StatusSucceeded, run.Status)

		// A different terminal transition after the fact conflicts.
		_, err = service.FailRun(ctx, runID, token, nil)
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("wrong token conflicts", func(t *testing.T) {
		session := newTestSession(t, client.Client)
		runID, _ := startedRun(t, session.ID)
		_, err := service.SucceedRun(ctx, runID, "bogus")
		assert.ErrorIs(t, err, ErrConflict)
	})
}

func TestRunService_CancelRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	ctx := context.Background()

	t.Run("queued run cancels immediately", func(t *testing.T) {
		session := newTestSession(t, client.Client)
		run := newQueuedRun(t, client.Client, session.ID, "go")

		cancelled, err := service.CancelRun(ctx, testUser, run.ID)
		require.NoError(t, err)
		assert.Equal(t, agentrun.StatusCancelled, cancelled.Status)
		assert.NotNil(t, cancelled.FinishedAt)
	})

	t.Run("running run gets cancel_requested", func(t *testing.T) {
		session := newTestSession(t, client.Client)
		newQueuedRun(t, client.Client, session.ID, "go")
		claimed, token := claimRun(t, client.Client, "worker-1", nil)
		_, err := service.StartRun(ctx, claimed.ID, models.RunStartRequest{ClaimToken: token})
		require.NoError(t, err)

		run, err := service.CancelRun(ctx, testUser, claimed.ID)
		require.NoError(t, err)
		assert.Equal(t, agentrun.StatusRunning, run.Status)
		assert.True(t, run.CancelRequested)
	})

	t.Run("terminal run untouched", func(t *testing.T) {
		session := newTestSession(t, client.Client)
		newQueuedRun(t, client.Client, session.ID, "go")
		claimed, token := claimRun(t, client.Client, "worker-1", nil)
		_, err := service.StartRun(ctx, claimed.ID, models.RunStartRequest{ClaimToken: token})
		require.NoError(t, err)
		_, err = service.SucceedRun(ctx, claimed.ID, token)
		require.NoError(t, err)

		run, err := service.CancelRun(ctx, testUser, claimed.ID)
		require.NoError(t, err)
		assert.Equal(t, agentrun.StatusSucceeded, run.Status)
		assert.False(t, run.CancelRequested)
	})

	t.Run("ownership enforced", func(t *testing.T) {
		session := newTestSession(t, client.Client)
		run := newQueuedRun(t, client.Client, session.ID, "go")
		_, err := service.CancelRun(ctx, "someone-else", run.ID)
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestRunService_ReleaseExpiredClaims(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	ctx := context.Background()

	t.Run("releases stale never-started claims", func(t *testing.T) {
		session := newTestSession(t, client.Client)
		newQueuedRun(t, client.Client, session.ID, "go")
		claimed, _ := claimRun(t, client.Client, "worker-dead", nil)

		// Age the claim past the TTL.
		err := client.AgentRun.UpdateOneID(claimed.ID).
			SetClaimedAt(time.Now().Add(-10 * time.Minute)).
			Exec(ctx)
		require.NoError(t, err)

		released, err := service.ReleaseExpiredClaims(ctx, 2*time.Minute)
		require.NoError(t, err)
		assert.Equal(t, 1, released)

		run, err := client.AgentRun.Get(ctx, claimed.ID)
		require.NoError(t, err)
		assert.Equal(t, agentrun.StatusQueued, run.Status)
		assert.Nil(t, run.ClaimToken)
		assert.Nil(t, run.WorkerID)
		assert.Nil(t, run.ClaimedAt)
		assert.Equal(t, 1, run.Attempt)

		// The released run is claimable again.
		reclaimed, _ := claimRun(t, client.Client, "worker-2", nil)
		assert.Equal(t, claimed.ID, reclaimed.ID)
	})

	t.Run("fresh and started claims survive", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		service := NewRunService(client.Client)
		session := newTestSession(t, client.Client)

		newQueuedRun(t, client.Client, session.ID, "fresh")
		fresh, _ := claimRun(t, client.Client, "worker-1", nil)

		newQueuedRun(t, client.Client, session.ID, "started")
		started, token := claimRun(t, client.Client, "worker-1", nil)
		_, err := service.StartRun(ctx, started.ID, models.RunStartRequest{ClaimToken: token})
		require.NoError(t, err)
		// Even an old claim survives once the run started.
		err = client.AgentRun.UpdateOneID(started.ID).
			SetClaimedAt(time.Now().Add(-time.Hour)).
			Exec(ctx)
		require.NoError(t, err)

		released, err := service.ReleaseExpiredClaims(ctx, 2*time.Minute)
		require.NoError(t, err)
		assert.Equal(t, 0, released)

		run, err := client.AgentRun.Get(ctx, fresh.ID)
		require.NoError(t, err)
		assert.Equal(t, agentrun.StatusClaimed, run.Status)
	})
}

func TestTruncatePreview(t *testing.T) {
	t.Run("short text passes through", func(t *testing.T) {
		assert.Equal(t, "hello", truncatePreview("  hello  "))
	})

	t.Run("long ascii cut at the limit", func(t *testing.T) {
		long := strings.Repeat("a", textPreviewMaxLen+50)
		assert.Len(t, truncatePreview(long), textPreviewMaxLen)
	})

	t.Run("never splits a rune", func(t *testing.T) {
		// 67 three-byte runes, 201 bytes: a byte cut at 200 would land
		// mid-rune.
		long := strings.Repeat("界", 67)
		got := truncatePreview(long)
		assert.True(t, utf8.ValidString(got))
		assert.LessOrEqual(t, len(got), textPreviewMaxLen)
		assert.Equal(t, strings.Repeat("界", 66), got)
	})
}
