package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UsageLog holds the schema definition for the UsageLog entity.
// Append-only token accounting per run or per tool call.
type UsageLog struct {
	ent.Schema
}

// Fields of the UsageLog.
func (UsageLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("usage_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Int("cache_read_tokens").
			Default(0),
		field.Int("cache_write_tokens").
			Default(0),
		field.String("model").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the UsageLog.
func (UsageLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", AgentSession.Type).
			Ref("usage_logs").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
		edge.From("run", AgentRun.Type).
			Ref("usage_logs").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the UsageLog.
func (UsageLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("run_id"),
	}
}
