package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wuyifannppp/poco-agent/ent"
	"github.com/wuyifannppp/poco-agent/pkg/models"
)

const testUser = "test-user"

// newTestSession creates a session owned by testUser.
func newTestSession(t *testing.T, client *ent.Client) *ent.AgentSession {
	t.Helper()
	service := NewSessionService(client)
	session, err := service.CreateSession(context.Background(), testUser, models.SessionCreateRequest{})
	require.NoError(t, err)
	return session
}

// newQueuedRun submits a prompt on the session and returns the queued run.
func newQueuedRun(t *testing.T, client *ent.Client, sessionID, prompt string) *ent.AgentRun {
	t.Helper()
	service := NewRunService(client)
	run, err := service.CreateRun(context.Background(), testUser, sessionID, models.PromptRequest{Prompt: prompt})
	require.NoError(t, err)
	return run
}

// claimRun claims the next queued run and fails the test when the queue is
// empty.
func claimRun(t *testing.T, client *ent.Client, workerID string, caps []string) (*ent.AgentRun, string) {
	t.Helper()
	service := NewRunService(client)
	run, token, err := service.ClaimNextRun(context.Background(), workerID, caps)
	require.NoError(t, err)
	return run, token
}
