package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wuyifannppp/poco-agent/ent/agentmessage"
	"github.com/wuyifannppp/poco-agent/pkg/models"
	testdb "github.com/wuyifannppp/poco-agent/test/database"
)

func TestMessageService_ListMessages(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := newFakeStore()
	service := NewMessageService(client.Client, store)
	runs := NewRunService(client.Client)
	ctx := context.Background()

	t.Run("returns transcript in append order", func(t *testing.T) {
		session := newTestSession(t, client.Client)
		newQueuedRun(t, client.Client, session.ID, "first prompt")
		err := client.AgentMessage.Create().
			SetSessionID(session.ID).
			SetRole(agentmessage.RoleAssistant).
			SetContent(map[string]any{"type": "text", "text": "first reply"}).
			Exec(ctx)
		require.NoError(t, err)
		newQueuedRun(t, client.Client, session.ID, "second prompt")

		messages, err := service.ListMessages(ctx, testUser, session.ID, models.ListParams{})
		require.NoError(t, err)
		require.Len(t, messages, 3)
		assert.Equal(t, agentmessage.RoleUser, messages[0].Role)
		assert.Equal(t, agentmessage.RoleAssistant, messages[1].Role)
		assert.Equal(t, agentmessage.RoleUser, messages[2].Role)
		for _, m := range messages {
			assert.NotNil(t, m.Attachments)
		}
	})

	t.Run("user messages carry presigned attachments", func(t *testing.T) {
		session := newTestSession(t, client.Client)
		size := int64(12)
		_, err := runs.CreateRun(ctx, testUser, session.ID, models.PromptRequest{
			Prompt: "look at this",
			InputFiles: []models.InputFile{
				{
					ID:     "att-1",
					Type:   models.InputFileTypeFile,
					Name:   "data.csv",
					Source: "attachments/" + testUser + "/att-1/data.csv",
					Size:   &size,
				},
				{
					ID:   "att-2",
					Type: models.InputFileTypeURL,
					Name: "repo",
					URL:  "https://github.com/acme/widgets",
				},
			},
		})
		require.NoError(t, err)

		messages, err := service.ListMessages(ctx, testUser, session.ID, models.ListParams{})
		require.NoError(t, err)
		require.Len(t, messages, 1)
		require.Len(t, messages[0].Attachments, 2)

		uploaded := messages[0].Attachments[0]
		assert.Equal(t, "data.csv", uploaded.Name)
		require.NotNil(t, uploaded.Size)
		assert.Equal(t, int64(12), *uploaded.Size)
		assert.Contains(t, uploaded.URL, "signed=1")

		// URL entries are passed through without presigning.
		assert.Empty(t, messages[0].Attachments[1].URL)
	})

	t.Run("presign failure degrades to no URL", func(t *testing.T) {
		store := newFakeStore()
		store.presignErr = fmt.Errorf("endpoint down")
		service := NewMessageService(client.Client, store)

		session := newTestSession(t, client.Client)
		_, err := runs.CreateRun(ctx, testUser, session.ID, models.PromptRequest{
			Prompt: "go",
			InputFiles: []models.InputFile{
				{ID: "a", Type: models.InputFileTypeFile, Name: "f.txt", Source: "attachments/u/a/f.txt"},
			},
		})
		require.NoError(t, err)

		messages, err := service.ListMessages(ctx, testUser, session.ID, models.ListParams{})
		require.NoError(t, err)
		require.Len(t, messages, 1)
		require.Len(t, messages[0].Attachments, 1)
		assert.Empty(t, messages[0].Attachments[0].URL)
	})

	t.Run("ownership enforced", func(t *testing.T) {
		session := newTestSession(t, client.Client)
		_, err := service.ListMessages(ctx, "someone-else", session.ID, models.ListParams{})
		assert.ErrorIs(t, err, ErrForbidden)
	})
}
