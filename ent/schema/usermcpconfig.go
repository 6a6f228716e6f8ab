package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UserMcpConfig holds the schema definition for the UserMcpConfig entity.
// Per-user override map merged over an McpPreset template.
type UserMcpConfig struct {
	ent.Schema
}

// Fields of the UserMcpConfig.
func (UserMcpConfig) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("user_mcp_config_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.Int("preset_id").
			Immutable(),
		field.JSON("overrides", map[string]interface{}{}).
			Optional(),
		field.Bool("enabled").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the UserMcpConfig.
func (UserMcpConfig) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "preset_id").
			Unique(),
	}
}
