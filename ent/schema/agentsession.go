package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentSession holds the schema definition for the AgentSession entity.
// A session is the user-scoped container of messages, runs, and workspace state.
type AgentSession struct {
	ent.Schema
}

// Fields of the AgentSession.
func (AgentSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("project_id").
			Optional().
			Nillable(),
		field.String("sdk_session_id").
			Optional().
			Nillable().
			Comment("Assigned by the agent runtime after the first step; unique when set"),
		field.Enum("status").
			Values("pending", "running", "completed", "failed", "cancelled").
			Default("pending"),
		field.JSON("config_snapshot", map[string]interface{}{}).
			Optional().
			Comment("Session-level configuration captured at creation"),
		field.JSON("state_patch", map[string]interface{}{}).
			Optional().
			Comment("Last-known agent state reported via callbacks"),
		field.String("workspace_files_prefix").
			Optional().
			Nillable(),
		field.String("workspace_manifest_key").
			Optional().
			Nillable(),
		field.String("workspace_archive_key").
			Optional().
			Nillable(),
		field.String("workspace_export_status").
			Optional().
			Nillable(),
		field.Bool("is_deleted").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the AgentSession.
func (AgentSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("sessions").
			Field("project_id").
			Unique(),
		edge.To("messages", AgentMessage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("runs", AgentRun.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("tool_executions", ToolExecution.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("usage_logs", UsageLog.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the AgentSession.
func (AgentSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("user_id", "created_at"),
		index.Fields("project_id"),
		// Partial unique index: sdk_session_id is nullable but unique when set.
		index.Fields("sdk_session_id").
			Unique().
			Annotations(entsql.IndexWhere("sdk_session_id IS NOT NULL")),
	}
}
