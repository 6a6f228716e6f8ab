package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/wuyifannppp/poco-agent/test/database"
)

func TestEnvVarService(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEnvVarService(client.Client)
	ctx := context.Background()

	t.Run("upsert creates then replaces", func(t *testing.T) {
		require.NoError(t, service.UpsertEnvVar(ctx, testUser, "GITHUB_TOKEN", "ghp_first"))
		require.NoError(t, service.UpsertEnvVar(ctx, testUser, "GITHUB_TOKEN", "ghp_second"))
		require.NoError(t, service.UpsertEnvVar(ctx, testUser, "API_KEY", "k"))

		env, err := service.GetEnvMap(ctx, testUser)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{
			"GITHUB_TOKEN": "ghp_second",
			"API_KEY":      "k",
		}, env)
	})

	t.Run("list exposes names only, sorted", func(t *testing.T) {
		names, err := service.ListEnvVarNames(ctx, testUser)
		require.NoError(t, err)
		assert.Equal(t, []string{"API_KEY", "GITHUB_TOKEN"}, names)
	})

	t.Run("users are isolated", func(t *testing.T) {
		env, err := service.GetEnvMap(ctx, "someone-else")
		require.NoError(t, err)
		assert.Empty(t, env)
	})

	t.Run("rejects invalid names", func(t *testing.T) {
		for _, name := range []string{"", "1LEADING_DIGIT", "HAS SPACE", "DASH-ED", "${INJECTED}"} {
			err := service.UpsertEnvVar(ctx, testUser, name, "v")
			assert.True(t, IsValidationError(err), "name %q should be rejected", name)
		}
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, service.DeleteEnvVar(ctx, testUser, "API_KEY"))
		names, err := service.ListEnvVarNames(ctx, testUser)
		require.NoError(t, err)
		assert.Equal(t, []string{"GITHUB_TOKEN"}, names)

		err = service.DeleteEnvVar(ctx, testUser, "API_KEY")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
