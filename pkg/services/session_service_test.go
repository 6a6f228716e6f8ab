package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wuyifannppp/poco-agent/ent/agentsession"
	"github.com/wuyifannppp/poco-agent/pkg/models"
	testdb "github.com/wuyifannppp/poco-agent/test/database"
)

func TestSessionService_CreateSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("creates pending session", func(t *testing.T) {
		session, err := service.CreateSession(ctx, testUser, models.SessionCreateRequest{
			Config: map[string]any{"model": "large"},
		})
		require.NoError(t, err)
		assert.NotEmpty(t, session.ID)
		assert.Equal(t, testUser, session.UserID)
		assert.Equal(t, agentsession.StatusPending, session.Status)
		assert.Equal(t, "large", session.ConfigSnapshot["model"])
		assert.False(t, session.IsDeleted)
	})

	t.Run("attaches to owned project", func(t *testing.T) {
		projects := NewProjectService(client.Client)
		proj, err := projects.CreateProject(ctx, testUser, models.ProjectCreateRequest{Name: "demo"})
		require.NoError(t, err)

		session, err := service.CreateSession(ctx, testUser, models.SessionCreateRequest{ProjectID: &proj.ID})
		require.NoError(t, err)
		require.NotNil(t, session.ProjectID)
		assert.Equal(t, proj.ID, *session.ProjectID)
	})

	t.Run("rejects foreign project", func(t *testing.T) {
		projects := NewProjectService(client.Client)
		proj, err := projects.CreateProject(ctx, "someone-else", models.ProjectCreateRequest{Name: "theirs"})
		require.NoError(t, err)

		_, err = service.CreateSession(ctx, testUser, models.SessionCreateRequest{ProjectID: &proj.ID})
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestSessionService_GetAndList(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("get enforces ownership", func(t *testing.T) {
		session := newTestSession(t, client.Client)

		got, err := service.GetSession(ctx, testUser, session.ID)
		require.NoError(t, err)
		assert.Equal(t, session.ID, got.ID)

		_, err = service.GetSession(ctx, "someone-else", session.ID)
		assert.ErrorIs(t, err, ErrForbidden)

		_, err = service.GetSession(ctx, testUser, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("list filters by user and project", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		service := NewSessionService(client.Client)
		projects := NewProjectService(client.Client)

		proj, err := projects.CreateProject(ctx, testUser, models.ProjectCreateRequest{Name: "p"})
		require.NoError(t, err)

		inProject, err := service.CreateSession(ctx, testUser, models.SessionCreateRequest{ProjectID: &proj.ID})
		require.NoError(t, err)
		loose := newTestSession(t, client.Client)
		_, err = service.CreateSession(ctx, "someone-else", models.SessionCreateRequest{})
		require.NoError(t, err)

		all, err := service.ListSessions(ctx, testUser, nil, models.ListParams{})
		require.NoError(t, err)
		assert.Len(t, all, 2)

		scoped, err := service.ListSessions(ctx, testUser, &proj.ID, models.ListParams{})
		require.NoError(t, err)
		require.Len(t, scoped, 1)
		assert.Equal(t, inProject.ID, scoped[0].ID)
		assert.NotEqual(t, loose.ID, scoped[0].ID)
	})
}

func TestSessionService_ListSessionsWithTitles(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	withPrompt := newTestSession(t, client.Client)
	newQueuedRun(t, client.Client, withPrompt.ID, "summarize the meeting notes")
	empty := newTestSession(t, client.Client)

	sessions, err := service.ListSessionsWithTitles(ctx, testUser)
	require.NoError(t, err)
	require.Len(t, sessions, 2)

	titles := map[string]string{}
	for _, s := range sessions {
		titles[s.ID] = s.Title
	}
	assert.Equal(t, "summarize the meeting notes", titles[withPrompt.ID])
	assert.Equal(t, "", titles[empty.ID])
}

func TestSessionService_UpdateSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("patches fields and merges state", func(t *testing.T) {
		session := newTestSession(t, client.Client)

		status := "running"
		_, err := service.UpdateSession(ctx, testUser, session.ID, models.SessionUpdateRequest{
			Status:     &status,
			StatePatch: map[string]any{"step": "plan", "progress": 0.1},
		})
		require.NoError(t, err)

		updated, err := service.UpdateSession(ctx, testUser, session.ID, models.SessionUpdateRequest{
			StatePatch: map[string]any{"progress": 0.5},
		})
		require.NoError(t, err)
		assert.Equal(t, agentsession.StatusRunning, updated.Status)
		assert.Equal(t, "plan", updated.StatePatch["step"])
		assert.Equal(t, 0.5, updated.StatePatch["progress"])
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		session := newTestSession(t, client.Client)
		status := "sideways"
		_, err := service.UpdateSession(ctx, testUser, session.ID, models.SessionUpdateRequest{Status: &status})
		assert.True(t, IsValidationError(err))
	})

	t.Run("detaches project with explicit null", func(t *testing.T) {
		projects := NewProjectService(client.Client)
		proj, err := projects.CreateProject(ctx, testUser, models.ProjectCreateRequest{Name: "p2"})
		require.NoError(t, err)
		session, err := service.CreateSession(ctx, testUser, models.SessionCreateRequest{ProjectID: &proj.ID})
		require.NoError(t, err)

		updated, err := service.UpdateSession(ctx, testUser, session.ID, models.SessionUpdateRequest{
			ProjectID:    nil,
			ProjectIDSet: true,
		})
		require.NoError(t, err)
		assert.Nil(t, updated.ProjectID)
	})
}

func TestSessionService_DeleteSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	session := newTestSession(t, client.Client)
	require.NoError(t, service.DeleteSession(ctx, testUser, session.ID))

	// Gone from every read path…
	_, err := service.GetSession(ctx, testUser, session.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	sessions, err := service.ListSessions(ctx, testUser, nil, models.ListParams{})
	require.NoError(t, err)
	assert.Empty(t, sessions)

	// …but the row survives.
	row, err := client.AgentSession.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.True(t, row.IsDeleted)

	// Double delete reports not found.
	err = service.DeleteSession(ctx, testUser, session.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionService_FindBySdkSessionID(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	session := newTestSession(t, client.Client)
	sdk := "sdk-lookup-1"
	_, err := service.UpdateSession(ctx, testUser, session.ID, models.SessionUpdateRequest{SdkSessionID: &sdk})
	require.NoError(t, err)

	found, err := service.FindBySdkSessionID(ctx, sdk)
	require.NoError(t, err)
	assert.Equal(t, session.ID, found.ID)

	_, err = service.FindBySdkSessionID(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}
