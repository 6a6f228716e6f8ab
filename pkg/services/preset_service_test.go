package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wuyifannppp/poco-agent/ent"
	testdb "github.com/wuyifannppp/poco-agent/test/database"
)

func seedMcpPreset(t *testing.T, client *ent.Client, name string, cfg map[string]any) *ent.McpPreset {
	t.Helper()
	preset, err := client.McpPreset.Create().
		SetName(name).
		SetConfig(cfg).
		Save(context.Background())
	require.NoError(t, err)
	return preset
}

func seedSkillPreset(t *testing.T, client *ent.Client, name string, entries map[string]any) *ent.SkillPreset {
	t.Helper()
	preset, err := client.SkillPreset.Create().
		SetName(name).
		SetEntries(entries).
		Save(context.Background())
	require.NoError(t, err)
	return preset
}

func TestPresetService_UserMcpConfig(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewPresetService(client.Client)
	ctx := context.Background()

	preset := seedMcpPreset(t, client.Client, "github", map[string]any{
		"command": "mcp-github",
		"env":     map[string]any{"GITHUB_TOKEN": "${GITHUB_TOKEN}"},
	})

	t.Run("set creates then updates", func(t *testing.T) {
		cfg, err := service.SetUserMcpConfig(ctx, testUser, preset.ID,
			map[string]any{"env": map[string]any{"GITHUB_TOKEN": "${WORK_TOKEN}"}}, true)
		require.NoError(t, err)
		assert.True(t, cfg.Enabled)

		cfg, err = service.SetUserMcpConfig(ctx, testUser, preset.ID, nil, false)
		require.NoError(t, err)
		assert.False(t, cfg.Enabled)
		// Existing overrides survive an update that omits them.
		assert.NotNil(t, cfg.Overrides["env"])

		configs, err := service.ListUserMcpConfigs(ctx, testUser)
		require.NoError(t, err)
		assert.Len(t, configs, 1)
	})

	t.Run("unknown preset", func(t *testing.T) {
		_, err := service.SetUserMcpConfig(ctx, testUser, 9999, nil, true)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPresetService_ResolveMcpConfig(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewPresetService(client.Client)
	ctx := context.Background()

	github := seedMcpPreset(t, client.Client, "github", map[string]any{
		"command": "mcp-github",
		"token":   "${GITHUB_TOKEN}",
	})
	search := seedMcpPreset(t, client.Client, "search", map[string]any{
		"command": "mcp-search",
	})
	disabled := seedMcpPreset(t, client.Client, "slack", map[string]any{
		"command": "mcp-slack",
	})

	_, err := service.SetUserMcpConfig(ctx, testUser, github.ID,
		map[string]any{"command": "mcp-github-enterprise"}, true)
	require.NoError(t, err)
	_, err = service.SetUserMcpConfig(ctx, testUser, disabled.ID, nil, false)
	require.NoError(t, err)

	resolved, err := service.ResolveMcpConfig(ctx, testUser, []int{github.ID, search.ID, disabled.ID, 424242})
	require.NoError(t, err)

	// Overrides merge over the template, untouched keys survive, references
	// stay unsubstituted.
	githubCfg, ok := resolved["github"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "mcp-github-enterprise", githubCfg["command"])
	assert.Equal(t, "${GITHUB_TOKEN}", githubCfg["token"])

	// No user config means the bare template.
	assert.Contains(t, resolved, "search")

	// Disabled and unknown presets are absent.
	assert.NotContains(t, resolved, "slack")
	assert.Len(t, resolved, 2)
}

func TestPresetService_ResolveSkillConfig(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewPresetService(client.Client)
	ctx := context.Background()

	review := seedSkillPreset(t, client.Client, "code-review", map[string]any{
		"SKILL.md": "review the diff",
	})
	docs := seedSkillPreset(t, client.Client, "docs", map[string]any{
		"SKILL.md": "write docs",
	})

	_, err := service.SetUserSkillInstall(ctx, testUser, docs.ID, false)
	require.NoError(t, err)

	resolved, err := service.ResolveSkillConfig(ctx, testUser, []int{review.ID, docs.ID, 424242})
	require.NoError(t, err)

	files, ok := resolved["code-review"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "review the diff", files["SKILL.md"])

	// A disabled install collapses to the marker object.
	assert.Equal(t, map[string]any{"enabled": false}, resolved["docs"])
	assert.Len(t, resolved, 2)
}

func TestPresetService_SetUserSkillInstall(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewPresetService(client.Client)
	ctx := context.Background()

	preset := seedSkillPreset(t, client.Client, "docs", map[string]any{"SKILL.md": "x"})

	install, err := service.SetUserSkillInstall(ctx, testUser, preset.ID, true)
	require.NoError(t, err)
	assert.True(t, install.Enabled)

	install, err = service.SetUserSkillInstall(ctx, testUser, preset.ID, false)
	require.NoError(t, err)
	assert.False(t, install.Enabled)

	installs, err := service.ListUserSkillInstalls(ctx, testUser)
	require.NoError(t, err)
	assert.Len(t, installs, 1)

	_, err = service.SetUserSkillInstall(ctx, testUser, 9999, true)
	assert.ErrorIs(t, err, ErrNotFound)
}
