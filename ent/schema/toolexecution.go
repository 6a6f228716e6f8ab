package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ToolExecution holds the schema definition for the ToolExecution entity.
// Upserted by the callback sink on tool.started / tool.finished.
type ToolExecution struct {
	ent.Schema
}

// Fields of the ToolExecution.
func (ToolExecution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("execution_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.String("tool_name"),
		field.Enum("status").
			Values("running", "succeeded", "failed").
			Default("running"),
		field.JSON("input", map[string]interface{}{}).
			Optional(),
		field.JSON("output", map[string]interface{}{}).
			Optional(),
		field.JSON("error", map[string]interface{}{}).
			Optional(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("finished_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ToolExecution.
func (ToolExecution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", AgentSession.Type).
			Ref("tool_executions").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
		edge.From("run", AgentRun.Type).
			Ref("tool_executions").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ToolExecution.
func (ToolExecution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "created_at"),
		index.Fields("run_id"),
	}
}
