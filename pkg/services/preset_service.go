package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/wuyifannppp/poco-agent/ent"
	"github.com/wuyifannppp/poco-agent/ent/mcppreset"
	"github.com/wuyifannppp/poco-agent/ent/skillpreset"
	"github.com/wuyifannppp/poco-agent/ent/usermcpconfig"
	"github.com/wuyifannppp/poco-agent/ent/userskillinstall"
)

// PresetService serves the MCP and skill preset catalogs, the per-user
// configuration layered on them, and the internal resolve surface that
// expands preset ids into full configuration.
//
// Resolution merges user overrides but leaves ${...} references untouched;
// environment substitution happens downstream against the user's env map.
type PresetService struct {
	client *ent.Client
}

// NewPresetService creates a new PresetService
func NewPresetService(client *ent.Client) *PresetService {
	return &PresetService{client: client}
}

// ListMcpPresets returns the MCP preset catalog in id order.
func (s *PresetService) ListMcpPresets(ctx context.Context) ([]*ent.McpPreset, error) {
	presets, err := s.client.McpPreset.Query().
		Order(ent.Asc(mcppreset.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list mcp presets: %w", err)
	}
	return presets, nil
}

// ListSkillPresets returns the skill preset catalog in id order.
func (s *PresetService) ListSkillPresets(ctx context.Context) ([]*ent.SkillPreset, error) {
	presets, err := s.client.SkillPreset.Query().
		Order(ent.Asc(skillpreset.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list skill presets: %w", err)
	}
	return presets, nil
}

// ListUserMcpConfigs returns the user's MCP preset configurations.
func (s *PresetService) ListUserMcpConfigs(ctx context.Context, userID string) ([]*ent.UserMcpConfig, error) {
	configs, err := s.client.UserMcpConfig.Query().
		Where(usermcpconfig.UserIDEQ(userID)).
		Order(ent.Asc(usermcpconfig.FieldPresetID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list user mcp configs: %w", err)
	}
	return configs, nil
}

// SetUserMcpConfig creates or updates the user's configuration for one MCP
// preset.
func (s *PresetService) SetUserMcpConfig(ctx context.Context, userID string, presetID int, overrides map[string]any, enabled bool) (*ent.UserMcpConfig, error) {
	if _, err := s.client.McpPreset.Get(ctx, presetID); err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query mcp preset: %w", err)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	existing, err := tx.UserMcpConfig.Query().
		Where(
			usermcpconfig.UserIDEQ(userID),
			usermcpconfig.PresetIDEQ(presetID),
		).
		Only(ctx)

	var cfg *ent.UserMcpConfig
	switch {
	case err == nil:
		update := existing.Update().SetEnabled(enabled)
		if overrides != nil {
			update = update.SetOverrides(overrides)
		}
		cfg, err = update.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update user mcp config: %w", err)
		}
	case ent.IsNotFound(err):
		builder := tx.UserMcpConfig.Create().
			SetID(uuid.New().String()).
			SetUserID(userID).
			SetPresetID(presetID).
			SetEnabled(enabled)
		if overrides != nil {
			builder = builder.SetOverrides(overrides)
		}
		cfg, err = builder.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create user mcp config: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to query user mcp config: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit user mcp config: %w", err)
	}

	slog.Info("User MCP config set", "user_id", userID, "preset_id", presetID, "enabled", enabled)
	return cfg, nil
}

// ListUserSkillInstalls returns the user's skill installs.
func (s *PresetService) ListUserSkillInstalls(ctx context.Context, userID string) ([]*ent.UserSkillInstall, error) {
	installs, err := s.client.UserSkillInstall.Query().
		Where(userskillinstall.UserIDEQ(userID)).
		Order(ent.Asc(userskillinstall.FieldPresetID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list skill installs: %w", err)
	}
	return installs, nil
}

// SetUserSkillInstall creates or updates the user's install state for one
// skill preset.
func (s *PresetService) SetUserSkillInstall(ctx context.Context, userID string, presetID int, enabled bool) (*ent.UserSkillInstall, error) {
	if _, err := s.client.SkillPreset.Get(ctx, presetID); err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query skill preset: %w", err)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	existing, err := tx.UserSkillInstall.Query().
		Where(
			userskillinstall.UserIDEQ(userID),
			userskillinstall.PresetIDEQ(presetID),
		).
		Only(ctx)

	var install *ent.UserSkillInstall
	switch {
	case err == nil:
		install, err = existing.Update().SetEnabled(enabled).Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update skill install: %w", err)
		}
	case ent.IsNotFound(err):
		install, err = tx.UserSkillInstall.Create().
			SetID(uuid.New().String()).
			SetUserID(userID).
			SetPresetID(presetID).
			SetEnabled(enabled).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create skill install: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to query skill install: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit skill install: %w", err)
	}

	slog.Info("Skill install set", "user_id", userID, "preset_id", presetID, "enabled", enabled)
	return install, nil
}

// ResolveMcpConfig expands MCP preset ids into a name-to-config map for the
// user. User overrides are shallow-merged over the preset template; presets
// the user disabled are skipped. Unknown ids are skipped, not errors: a
// catalog entry may have been removed after a snapshot was frozen.
func (s *PresetService) ResolveMcpConfig(ctx context.Context, userID string, ids []int) (map[string]any, error) {
	userConfigs, err := s.ListUserMcpConfigs(ctx, userID)
	if err != nil {
		return nil, err
	}
	byPreset := make(map[int]*ent.UserMcpConfig, len(userConfigs))
	for _, c := range userConfigs {
		byPreset[c.PresetID] = c
	}

	resolved := make(map[string]any, len(ids))
	for _, id := range ids {
		preset, err := s.client.McpPreset.Get(ctx, id)
		if err != nil {
			if ent.IsNotFound(err) {
				slog.Warn("Skipping unknown mcp preset", "preset_id", id)
				continue
			}
			return nil, fmt.Errorf("failed to query mcp preset %d: %w", id, err)
		}

		cfg := preset.Config
		if userCfg, ok := byPreset[id]; ok {
			if !userCfg.Enabled {
				continue
			}
			cfg = mergeConfig(cfg, userCfg.Overrides)
		}
		resolved[preset.Name] = cfg
	}
	return resolved, nil
}

// ResolveSkillConfig expands skill preset ids into a name-to-files map for
// the user. A skill the user disabled resolves to {"enabled": false} so the
// executor can surface it as installed-but-off. Unknown ids are skipped.
func (s *PresetService) ResolveSkillConfig(ctx context.Context, userID string, ids []int) (map[string]any, error) {
	installs, err := s.ListUserSkillInstalls(ctx, userID)
	if err != nil {
		return nil, err
	}
	byPreset := make(map[int]*ent.UserSkillInstall, len(installs))
	for _, i := range installs {
		byPreset[i.PresetID] = i
	}

	resolved := make(map[string]any, len(ids))
	for _, id := range ids {
		preset, err := s.client.SkillPreset.Get(ctx, id)
		if err != nil {
			if ent.IsNotFound(err) {
				slog.Warn("Skipping unknown skill preset", "preset_id", id)
				continue
			}
			return nil, fmt.Errorf("failed to query skill preset %d: %w", id, err)
		}

		if install, ok := byPreset[id]; ok && !install.Enabled {
			resolved[preset.Name] = map[string]any{"enabled": false}
			continue
		}
		resolved[preset.Name] = preset.Entries
	}
	return resolved, nil
}
