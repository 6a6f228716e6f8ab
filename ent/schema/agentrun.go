package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentRun holds the schema definition for the AgentRun entity.
// One run is a single prompt execution attempt within a session.
//
// Invariants: a queued run carries no claim token; a claimed run carries
// both claim_token and claimed_at; terminal states are fixed points.
type AgentRun struct {
	ent.Schema
}

// Fields of the AgentRun.
func (AgentRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.Int("user_message_id").
			Immutable().
			Comment("The user message that spawned this run"),
		field.Enum("status").
			Values("queued", "claimed", "running", "succeeded", "failed", "cancelled").
			Default("queued"),
		field.JSON("config_snapshot", map[string]interface{}{}).
			Optional().
			Comment("Configuration captured at submission (input_files, mcp/skill refs, repo_url, git_branch)"),
		field.String("sdk_session_id").
			Optional().
			Nillable().
			Comment("Copied from the first start_run that reports it"),
		field.String("claim_token").
			Optional().
			Nillable().
			Comment("Opaque token proving which worker holds the run"),
		field.String("worker_id").
			Optional().
			Nillable(),
		field.Time("claimed_at").
			Optional().
			Nillable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("finished_at").
			Optional().
			Nillable(),
		field.JSON("error", map[string]interface{}{}).
			Optional().
			Comment("{code, message, details?} for failed runs"),
		field.Int("attempt").
			Default(0).
			Comment("Incremented each time an expired claim is released back to queued"),
		field.Bool("cancel_requested").
			Default(false).
			Comment("Cooperative cancel signal polled by the executor via callback responses"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the AgentRun.
func (AgentRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", AgentSession.Type).
			Ref("runs").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
		edge.To("tool_executions", ToolExecution.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("usage_logs", UsageLog.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the AgentRun.
func (AgentRun) Indexes() []ent.Index {
	return []ent.Index{
		// Claim scan: oldest queued first.
		index.Fields("status", "created_at"),
		// Claim-expiry reaper scan.
		index.Fields("status", "claimed_at"),
		index.Fields("session_id"),
	}
}
