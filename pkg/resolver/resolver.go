// Package resolver turns a frozen run config snapshot into the effective
// configuration an executor can act on: preset ids are expanded through the
// catalog, user overrides applied, and ${...} references substituted from
// the user's env map.
package resolver

import (
	"context"
	"fmt"
	"sort"
)

// Catalog is the preset and env-var lookup surface the resolver reads from.
// The manager backs it with the backend's internal HTTP API; backend-side
// tests back it with the preset service directly.
type Catalog interface {
	// EnvMap returns the user's env var name-to-value map.
	EnvMap(ctx context.Context, userID string) (map[string]string, error)

	// ResolveMcpPresets expands MCP preset ids into a name-to-config map
	// with user overrides applied.
	ResolveMcpPresets(ctx context.Context, userID string, ids []int) (map[string]any, error)

	// ResolveSkillPresets expands skill preset ids into a name-to-files map.
	// Disabled skills come back as {"enabled": false}.
	ResolveSkillPresets(ctx context.Context, userID string, ids []int) (map[string]any, error)
}

// Resolver resolves run config snapshots against a catalog.
type Resolver struct {
	catalog Catalog
}

// New creates a Resolver backed by the given catalog.
func New(catalog Catalog) *Resolver {
	return &Resolver{catalog: catalog}
}

// Resolve produces the effective config: a copy of the snapshot with
// mcp_config, skill_files and input_files replaced by their resolved forms.
// Other top-level fields pass through verbatim.
func (r *Resolver) Resolve(ctx context.Context, userID string, snapshot map[string]any) (map[string]any, error) {
	envMap, err := r.catalog.EnvMap(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load env map: %w", err)
	}

	mcpConfig, err := r.resolveMcp(ctx, userID, snapshot)
	if err != nil {
		return nil, err
	}
	mcpResolved, err := Substitute(mcpConfig, envMap)
	if err != nil {
		return nil, err
	}

	skillFiles, err := r.resolveSkills(ctx, userID, snapshot)
	if err != nil {
		return nil, err
	}
	skillsResolved, err := substituteSkills(skillFiles, envMap)
	if err != nil {
		return nil, err
	}

	var inputFiles any = snapshot["input_files"]
	if inputFiles == nil {
		inputFiles = []any{}
	}
	inputsResolved, err := Substitute(inputFiles, envMap)
	if err != nil {
		return nil, err
	}

	effective := make(map[string]any, len(snapshot))
	for k, v := range snapshot {
		effective[k] = v
	}
	effective["mcp_config"] = mcpResolved
	effective["skill_files"] = skillsResolved
	effective["input_files"] = inputsResolved
	return effective, nil
}

// resolveMcp applies the MCP layering: explicit non-empty id list first, then
// toggle map, then already-expanded config.
func (r *Resolver) resolveMcp(ctx context.Context, userID string, snapshot map[string]any) (map[string]any, error) {
	if raw, ok := snapshot["mcp_server_ids"].([]any); ok {
		if ids := NormalizeIDs(raw); len(ids) > 0 {
			cfg, err := r.catalog.ResolveMcpPresets(ctx, userID, ids)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve mcp presets: %w", err)
			}
			return cfg, nil
		}
	}

	cfg, ok := snapshot["mcp_config"].(map[string]any)
	if !ok {
		return map[string]any{}, nil
	}

	if toggles, isToggle := AsToggleMap(cfg); isToggle {
		ids := make([]int, 0, len(toggles))
		for id, enabled := range toggles {
			if enabled {
				ids = append(ids, id)
			}
		}
		sort.Ints(ids)
		resolved, err := r.catalog.ResolveMcpPresets(ctx, userID, ids)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve mcp presets: %w", err)
		}
		return resolved, nil
	}

	return cfg, nil
}

// resolveSkills applies the skill layering: explicit non-empty id list first,
// then already-expanded files. Expanded entries that are disabled collapse to
// {"enabled": false}.
func (r *Resolver) resolveSkills(ctx context.Context, userID string, snapshot map[string]any) (map[string]any, error) {
	if raw, ok := snapshot["skill_ids"].([]any); ok {
		if ids := NormalizeIDs(raw); len(ids) > 0 {
			files, err := r.catalog.ResolveSkillPresets(ctx, userID, ids)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve skill presets: %w", err)
			}
			return files, nil
		}
	}

	files, ok := snapshot["skill_files"].(map[string]any)
	if !ok {
		return map[string]any{}, nil
	}

	out := make(map[string]any, len(files))
	for name, entry := range files {
		if isDisabledSkill(entry) {
			out[name] = map[string]any{"enabled": false}
			continue
		}
		out[name] = entry
	}
	return out, nil
}

// substituteSkills runs env substitution per skill, skipping entries
// collapsed to {"enabled": false}.
func substituteSkills(files map[string]any, envMap map[string]string) (map[string]any, error) {
	out := make(map[string]any, len(files))
	for name, entry := range files {
		if isDisabledSkill(entry) {
			out[name] = entry
			continue
		}
		resolved, err := Substitute(entry, envMap)
		if err != nil {
			return nil, err
		}
		out[name] = resolved
	}
	return out, nil
}

func isDisabledSkill(entry any) bool {
	m, ok := entry.(map[string]any)
	if !ok {
		return false
	}
	enabled, ok := m["enabled"].(bool)
	return ok && !enabled
}
