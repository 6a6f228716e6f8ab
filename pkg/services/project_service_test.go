package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wuyifannppp/poco-agent/pkg/models"
	testdb "github.com/wuyifannppp/poco-agent/test/database"
)

func TestProjectService(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewProjectService(client.Client)
	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		proj, err := service.CreateProject(ctx, testUser, models.ProjectCreateRequest{Name: "  research  "})
		require.NoError(t, err)
		assert.Equal(t, "research", proj.Name)

		got, err := service.GetProject(ctx, testUser, proj.ID)
		require.NoError(t, err)
		assert.Equal(t, proj.ID, got.ID)

		_, err = service.GetProject(ctx, "someone-else", proj.ID)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("rejects blank name", func(t *testing.T) {
		_, err := service.CreateProject(ctx, testUser, models.ProjectCreateRequest{Name: "   "})
		assert.True(t, IsValidationError(err))
	})

	t.Run("update renames", func(t *testing.T) {
		proj, err := service.CreateProject(ctx, testUser, models.ProjectCreateRequest{Name: "old"})
		require.NoError(t, err)

		name := "new"
		renamed, err := service.UpdateProject(ctx, testUser, proj.ID, models.ProjectUpdateRequest{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "new", renamed.Name)
	})

	t.Run("delete detaches sessions", func(t *testing.T) {
		proj, err := service.CreateProject(ctx, testUser, models.ProjectCreateRequest{Name: "doomed"})
		require.NoError(t, err)

		sessions := NewSessionService(client.Client)
		session, err := sessions.CreateSession(ctx, testUser, models.SessionCreateRequest{ProjectID: &proj.ID})
		require.NoError(t, err)

		require.NoError(t, service.DeleteProject(ctx, testUser, proj.ID))

		_, err = service.GetProject(ctx, testUser, proj.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		// The session survives, unattached.
		got, err := sessions.GetSession(ctx, testUser, session.ID)
		require.NoError(t, err)
		assert.Nil(t, got.ProjectID)
	})

	t.Run("delete is soft", func(t *testing.T) {
		proj, err := service.CreateProject(ctx, testUser, models.ProjectCreateRequest{Name: "archived"})
		require.NoError(t, err)

		require.NoError(t, service.DeleteProject(ctx, testUser, proj.ID))

		// Gone from every read path.
		_, err = service.GetProject(ctx, testUser, proj.ID)
		assert.ErrorIs(t, err, ErrNotFound)
		listed, err := service.ListProjects(ctx, testUser, models.ListParams{})
		require.NoError(t, err)
		for _, p := range listed {
			assert.NotEqual(t, proj.ID, p.ID)
		}

		// The row itself survives, flagged.
		row, err := client.Client.Project.Get(ctx, proj.ID)
		require.NoError(t, err)
		assert.True(t, row.IsDeleted)

		// A second delete sees nothing to delete.
		err = service.DeleteProject(ctx, testUser, proj.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		// New sessions cannot attach to it.
		sessions := NewSessionService(client.Client)
		_, err = sessions.CreateSession(ctx, testUser, models.SessionCreateRequest{ProjectID: &proj.ID})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("list pages newest first", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		service := NewProjectService(client.Client)

		for _, name := range []string{"p1", "p2", "p3"} {
			_, err := service.CreateProject(ctx, testUser, models.ProjectCreateRequest{Name: name})
			require.NoError(t, err)
		}

		page, err := service.ListProjects(ctx, testUser, models.ListParams{Limit: 2})
		require.NoError(t, err)
		require.Len(t, page, 2)
		assert.Equal(t, "p3", page[0].Name)
		assert.Equal(t, "p2", page[1].Name)

		rest, err := service.ListProjects(ctx, testUser, models.ListParams{Limit: 2, Offset: 2})
		require.NoError(t, err)
		require.Len(t, rest, 1)
		assert.Equal(t, "p1", rest[0].Name)
	})
}
