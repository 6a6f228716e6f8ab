package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// McpPreset holds the schema definition for the McpPreset entity.
// Catalog template for an MCP server configuration, referenced by id
// from run config snapshots and optionally overridden per user.
type McpPreset struct {
	ent.Schema
}

// Fields of the McpPreset.
func (McpPreset) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id").
			Unique().
			Immutable(),
		field.String("name"),
		field.JSON("config", map[string]interface{}{}).
			Comment("Server config template; may contain ${...} env references"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
