package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentMessage holds the schema definition for the AgentMessage entity.
// Messages use an auto-incrementing integer id; readers order by
// (created_at, id) for stable insertion order.
type AgentMessage struct {
	ent.Schema
}

// Fields of the AgentMessage.
func (AgentMessage) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.Enum("role").
			Values("user", "assistant", "system"),
		field.JSON("content", map[string]interface{}{}).
			Comment("Structured message payload from the agent runtime"),
		field.String("text_preview").
			Optional().
			Nillable().
			Comment("Short plain-text summary for listings"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the AgentMessage.
func (AgentMessage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", AgentSession.Type).
			Ref("messages").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AgentMessage.
func (AgentMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "created_at"),
	}
}
