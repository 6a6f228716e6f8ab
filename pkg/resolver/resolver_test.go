package resolver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wuyifannppp/poco-agent/pkg/services"
)

// fakeCatalog is an in-memory Catalog for resolver tests.
type fakeCatalog struct {
	env    map[string]string
	mcp    map[int]struct {
		name string
		cfg  map[string]any
	}
	skills map[int]struct {
		name  string
		files map[string]any
	}

	mcpIDs   []int
	skillIDs []int
}

func (c *fakeCatalog) EnvMap(_ context.Context, _ string) (map[string]string, error) {
	return c.env, nil
}

func (c *fakeCatalog) ResolveMcpPresets(_ context.Context, _ string, ids []int) (map[string]any, error) {
	c.mcpIDs = ids
	out := map[string]any{}
	for _, id := range ids {
		if p, ok := c.mcp[id]; ok {
			out[p.name] = p.cfg
		}
	}
	return out, nil
}

func (c *fakeCatalog) ResolveSkillPresets(_ context.Context, _ string, ids []int) (map[string]any, error) {
	c.skillIDs = ids
	out := map[string]any{}
	for _, id := range ids {
		if p, ok := c.skills[id]; ok {
			out[p.name] = p.files
		}
	}
	return out, nil
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		env: map[string]string{"GITHUB_TOKEN": "ghp_x", "REGION": "eu"},
		mcp: map[int]struct {
			name string
			cfg  map[string]any
		}{
			1: {"github", map[string]any{"command": "mcp-github", "token": "${GITHUB_TOKEN}"}},
			2: {"search", map[string]any{"command": "mcp-search"}},
		},
		skills: map[int]struct {
			name  string
			files map[string]any
		}{
			10: {"review", map[string]any{"SKILL.md": "use ${REGION} endpoints"}},
		},
	}
}

func TestResolver_McpLayering(t *testing.T) {
	ctx := context.Background()

	t.Run("explicit id list wins", func(t *testing.T) {
		catalog := newFakeCatalog()
		r := New(catalog)

		effective, err := r.Resolve(ctx, "u1", map[string]any{
			"mcp_server_ids": []any{float64(1), "2", "2"},
			"mcp_config":     map[string]any{"1": true}, // ignored
		})
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, catalog.mcpIDs)

		cfg := effective["mcp_config"].(map[string]any)
		github := cfg["github"].(map[string]any)
		assert.Equal(t, "ghp_x", github["token"])
		assert.Contains(t, cfg, "search")

		// The id list passes through untouched alongside the expansion.
		assert.Equal(t, []any{float64(1), "2", "2"}, effective["mcp_server_ids"])
	})

	t.Run("empty id list falls back to the expanded config", func(t *testing.T) {
		catalog := newFakeCatalog()
		r := New(catalog)

		effective, err := r.Resolve(ctx, "u1", map[string]any{
			"mcp_server_ids": []any{},
			"mcp_config": map[string]any{
				"custom": map[string]any{"url": "https://${REGION}.api.test"},
			},
		})
		require.NoError(t, err)
		assert.Nil(t, catalog.mcpIDs)

		cfg := effective["mcp_config"].(map[string]any)
		custom := cfg["custom"].(map[string]any)
		assert.Equal(t, "https://eu.api.test", custom["url"])
	})

	t.Run("toggle map expands enabled ids in order", func(t *testing.T) {
		catalog := newFakeCatalog()
		r := New(catalog)

		effective, err := r.Resolve(ctx, "u1", map[string]any{
			"mcp_config": map[string]any{"2": true, "1": true, "3": false},
		})
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, catalog.mcpIDs)

		cfg := effective["mcp_config"].(map[string]any)
		assert.Len(t, cfg, 2)
	})

	t.Run("expanded config passes through with substitution", func(t *testing.T) {
		catalog := newFakeCatalog()
		r := New(catalog)

		effective, err := r.Resolve(ctx, "u1", map[string]any{
			"mcp_config": map[string]any{
				"custom": map[string]any{"url": "https://${REGION}.api.test"},
			},
		})
		require.NoError(t, err)
		assert.Nil(t, catalog.mcpIDs)

		cfg := effective["mcp_config"].(map[string]any)
		custom := cfg["custom"].(map[string]any)
		assert.Equal(t, "https://eu.api.test", custom["url"])
	})

	t.Run("missing mcp keys resolve to empty config", func(t *testing.T) {
		r := New(newFakeCatalog())
		effective, err := r.Resolve(ctx, "u1", map[string]any{"model": "large"})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{}, effective["mcp_config"])
		assert.Equal(t, map[string]any{}, effective["skill_files"])
		assert.Equal(t, []any{}, effective["input_files"])
		assert.Equal(t, "large", effective["model"])
	})
}

func TestResolver_Skills(t *testing.T) {
	ctx := context.Background()

	t.Run("skill ids expand through the catalog", func(t *testing.T) {
		catalog := newFakeCatalog()
		r := New(catalog)

		effective, err := r.Resolve(ctx, "u1", map[string]any{
			"skill_ids": []any{float64(10)},
		})
		require.NoError(t, err)
		assert.Equal(t, []int{10}, catalog.skillIDs)

		files := effective["skill_files"].(map[string]any)
		review := files["review"].(map[string]any)
		assert.Equal(t, "use eu endpoints", review["SKILL.md"])
	})

	t.Run("disabled skills skip substitution", func(t *testing.T) {
		r := New(newFakeCatalog())

		effective, err := r.Resolve(ctx, "u1", map[string]any{
			"skill_files": map[string]any{
				"off": map[string]any{"enabled": false, "SKILL.md": "${WOULD_FAIL}"},
				"on":  map[string]any{"SKILL.md": "${REGION}"},
			},
		})
		require.NoError(t, err)

		files := effective["skill_files"].(map[string]any)
		assert.Equal(t, map[string]any{"enabled": false}, files["off"])
		assert.Equal(t, map[string]any{"SKILL.md": "eu"}, files["on"])
	})
}

func TestResolver_InputFilesAndErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("input files are substituted", func(t *testing.T) {
		r := New(newFakeCatalog())
		effective, err := r.Resolve(ctx, "u1", map[string]any{
			"input_files": []any{
				map[string]any{"type": "url", "url": "https://github.com/acme/${REGION}-infra"},
			},
		})
		require.NoError(t, err)

		files := effective["input_files"].([]any)
		entry := files[0].(map[string]any)
		assert.Equal(t, "https://github.com/acme/eu-infra", entry["url"])
	})

	t.Run("unresolvable reference fails the whole resolve", func(t *testing.T) {
		r := New(newFakeCatalog())
		_, err := r.Resolve(ctx, "u1", map[string]any{
			"mcp_config": map[string]any{
				"custom": map[string]any{"token": "${NOT_SET}"},
			},
		})
		require.Error(t, err)
		assert.True(t, services.IsEnvVarNotFound(err))
	})
}
