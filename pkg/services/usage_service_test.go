package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wuyifannppp/poco-agent/pkg/models"
	testdb "github.com/wuyifannppp/poco-agent/test/database"
)

func TestUsageService(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewUsageService(client.Client)
	callbacks := NewCallbackService(client.Client, NewRunService(client.Client))
	ctx := context.Background()

	session := newTestSession(t, client.Client)
	run, _ := startRunForCallbacks(t, client.Client, session.ID)

	record := func(in, out, cacheRead int) {
		_, err := callbacks.Handle(ctx, models.AgentCallbackRequest{
			Kind:      models.CallbackUsageRecorded,
			SessionID: session.ID,
			RunID:     run.ID,
			Usage: &models.CallbackUsage{
				InputTokens:     in,
				OutputTokens:    out,
				CacheReadTokens: cacheRead,
				Model:           "large",
			},
		})
		require.NoError(t, err)
	}
	record(100, 40, 0)
	record(250, 90, 1500)

	t.Run("list", func(t *testing.T) {
		logs, err := service.ListUsage(ctx, testUser, session.ID, models.ListParams{})
		require.NoError(t, err)
		assert.Len(t, logs, 2)
	})

	t.Run("summary totals", func(t *testing.T) {
		summary, err := service.SummarizeUsage(ctx, testUser, session.ID)
		require.NoError(t, err)
		assert.Equal(t, 350, summary.InputTokens)
		assert.Equal(t, 130, summary.OutputTokens)
		assert.Equal(t, 1500, summary.CacheReadTokens)
		assert.Equal(t, 2, summary.Entries)
	})

	t.Run("empty session", func(t *testing.T) {
		empty := newTestSession(t, client.Client)
		summary, err := service.SummarizeUsage(ctx, testUser, empty.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, summary.Entries)
	})

	t.Run("ownership enforced", func(t *testing.T) {
		_, err := service.ListUsage(ctx, "someone-else", session.ID, models.ListParams{})
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestToolExecutionService_List(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewToolExecutionService(client.Client)
	callbacks := NewCallbackService(client.Client, NewRunService(client.Client))
	ctx := context.Background()

	session := newTestSession(t, client.Client)
	run, _ := startRunForCallbacks(t, client.Client, session.ID)

	for _, id := range []string{"call-a", "call-b"} {
		_, err := callbacks.Handle(ctx, models.AgentCallbackRequest{
			Kind:      models.CallbackToolStarted,
			SessionID: session.ID,
			RunID:     run.ID,
			Tool:      &models.CallbackTool{ID: id, Name: "bash"},
		})
		require.NoError(t, err)
	}

	execs, err := service.ListToolExecutions(ctx, testUser, session.ID, models.ListParams{})
	require.NoError(t, err)
	assert.Len(t, execs, 2)

	_, err = service.ListToolExecutions(ctx, "someone-else", session.ID, models.ListParams{})
	assert.ErrorIs(t, err, ErrForbidden)
}
