// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentMessagesColumns holds the columns for the "agent_messages" table.
	AgentMessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeInt, Increment: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "assistant", "system"}},
		{Name: "content", Type: field.TypeJSON},
		{Name: "text_preview", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// AgentMessagesTable holds the schema information for the "agent_messages" table.
	AgentMessagesTable = &schema.Table{
		Name:       "agent_messages",
		Columns:    AgentMessagesColumns,
		PrimaryKey: []*schema.Column{AgentMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_messages_agent_sessions_messages",
				Columns:    []*schema.Column{AgentMessagesColumns[5]},
				RefColumns: []*schema.Column{AgentSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentmessage_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AgentMessagesColumns[5], AgentMessagesColumns[4]},
			},
		},
	}
	// AgentRunsColumns holds the columns for the "agent_runs" table.
	AgentRunsColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "user_message_id", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "claimed", "running", "succeeded", "failed", "cancelled"}, Default: "queued"},
		{Name: "config_snapshot", Type: field.TypeJSON, Nullable: true},
		{Name: "sdk_session_id", Type: field.TypeString, Nullable: true},
		{Name: "claim_token", Type: field.TypeString, Nullable: true},
		{Name: "worker_id", Type: field.TypeString, Nullable: true},
		{Name: "claimed_at", Type: field.TypeTime, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "error", Type: field.TypeJSON, Nullable: true},
		{Name: "attempt", Type: field.TypeInt, Default: 0},
		{Name: "cancel_requested", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// AgentRunsTable holds the schema information for the "agent_runs" table.
	AgentRunsTable = &schema.Table{
		Name:       "agent_runs",
		Columns:    AgentRunsColumns,
		PrimaryKey: []*schema.Column{AgentRunsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_runs_agent_sessions_runs",
				Columns:    []*schema.Column{AgentRunsColumns[15]},
				RefColumns: []*schema.Column{AgentSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentrun_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{AgentRunsColumns[2], AgentRunsColumns[13]},
			},
			{
				Name:    "agentrun_status_claimed_at",
				Unique:  false,
				Columns: []*schema.Column{AgentRunsColumns[2], AgentRunsColumns[7]},
			},
			{
				Name:    "agentrun_session_id",
				Unique:  false,
				Columns: []*schema.Column{AgentRunsColumns[15]},
			},
		},
	}
	// AgentSessionsColumns holds the columns for the "agent_sessions" table.
	AgentSessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "sdk_session_id", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "config_snapshot", Type: field.TypeJSON, Nullable: true},
		{Name: "state_patch", Type: field.TypeJSON, Nullable: true},
		{Name: "workspace_files_prefix", Type: field.TypeString, Nullable: true},
		{Name: "workspace_manifest_key", Type: field.TypeString, Nullable: true},
		{Name: "workspace_archive_key", Type: field.TypeString, Nullable: true},
		{Name: "workspace_export_status", Type: field.TypeString, Nullable: true},
		{Name: "is_deleted", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeString, Nullable: true},
	}
	// AgentSessionsTable holds the schema information for the "agent_sessions" table.
	AgentSessionsTable = &schema.Table{
		Name:       "agent_sessions",
		Columns:    AgentSessionsColumns,
		PrimaryKey: []*schema.Column{AgentSessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_sessions_projects_sessions",
				Columns:    []*schema.Column{AgentSessionsColumns[13]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentsession_user_id",
				Unique:  false,
				Columns: []*schema.Column{AgentSessionsColumns[1]},
			},
			{
				Name:    "agentsession_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AgentSessionsColumns[1], AgentSessionsColumns[11]},
			},
			{
				Name:    "agentsession_project_id",
				Unique:  false,
				Columns: []*schema.Column{AgentSessionsColumns[13]},
			},
			{
				Name:    "agentsession_sdk_session_id",
				Unique:  true,
				Columns: []*schema.Column{AgentSessionsColumns[2]},
				Annotation: &entsql.IndexAnnotation{
					Where: "sdk_session_id IS NOT NULL",
				},
			},
		},
	}
	// McpPresetsColumns holds the columns for the "mcp_presets" table.
	McpPresetsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "config", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// McpPresetsTable holds the schema information for the "mcp_presets" table.
	McpPresetsTable = &schema.Table{
		Name:       "mcp_presets",
		Columns:    McpPresetsColumns,
		PrimaryKey: []*schema.Column{McpPresetsColumns[0]},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "project_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "is_deleted", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "project_user_id",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[1]},
			},
		},
	}
	// SkillPresetsColumns holds the columns for the "skill_presets" table.
	SkillPresetsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "entries", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SkillPresetsTable holds the schema information for the "skill_presets" table.
	SkillPresetsTable = &schema.Table{
		Name:       "skill_presets",
		Columns:    SkillPresetsColumns,
		PrimaryKey: []*schema.Column{SkillPresetsColumns[0]},
	}
	// ToolExecutionsColumns holds the columns for the "tool_executions" table.
	ToolExecutionsColumns = []*schema.Column{
		{Name: "execution_id", Type: field.TypeString, Unique: true},
		{Name: "tool_name", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "succeeded", "failed"}, Default: "running"},
		{Name: "input", Type: field.TypeJSON, Nullable: true},
		{Name: "output", Type: field.TypeJSON, Nullable: true},
		{Name: "error", Type: field.TypeJSON, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
	}
	// ToolExecutionsTable holds the schema information for the "tool_executions" table.
	ToolExecutionsTable = &schema.Table{
		Name:       "tool_executions",
		Columns:    ToolExecutionsColumns,
		PrimaryKey: []*schema.Column{ToolExecutionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tool_executions_agent_runs_tool_executions",
				Columns:    []*schema.Column{ToolExecutionsColumns[9]},
				RefColumns: []*schema.Column{AgentRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "tool_executions_agent_sessions_tool_executions",
				Columns:    []*schema.Column{ToolExecutionsColumns[10]},
				RefColumns: []*schema.Column{AgentSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "toolexecution_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ToolExecutionsColumns[10], ToolExecutionsColumns[8]},
			},
			{
				Name:    "toolexecution_run_id",
				Unique:  false,
				Columns: []*schema.Column{ToolExecutionsColumns[9]},
			},
		},
	}
	// UsageLogsColumns holds the columns for the "usage_logs" table.
	UsageLogsColumns = []*schema.Column{
		{Name: "usage_id", Type: field.TypeString, Unique: true},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "cache_read_tokens", Type: field.TypeInt, Default: 0},
		{Name: "cache_write_tokens", Type: field.TypeInt, Default: 0},
		{Name: "model", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
	}
	// UsageLogsTable holds the schema information for the "usage_logs" table.
	UsageLogsTable = &schema.Table{
		Name:       "usage_logs",
		Columns:    UsageLogsColumns,
		PrimaryKey: []*schema.Column{UsageLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "usage_logs_agent_runs_usage_logs",
				Columns:    []*schema.Column{UsageLogsColumns[7]},
				RefColumns: []*schema.Column{AgentRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "usage_logs_agent_sessions_usage_logs",
				Columns:    []*schema.Column{UsageLogsColumns[8]},
				RefColumns: []*schema.Column{AgentSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "usagelog_session_id",
				Unique:  false,
				Columns: []*schema.Column{UsageLogsColumns[8]},
			},
			{
				Name:    "usagelog_run_id",
				Unique:  false,
				Columns: []*schema.Column{UsageLogsColumns[7]},
			},
		},
	}
	// UserEnvVarsColumns holds the columns for the "user_env_vars" table.
	UserEnvVarsColumns = []*schema.Column{
		{Name: "env_var_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "value", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UserEnvVarsTable holds the schema information for the "user_env_vars" table.
	UserEnvVarsTable = &schema.Table{
		Name:       "user_env_vars",
		Columns:    UserEnvVarsColumns,
		PrimaryKey: []*schema.Column{UserEnvVarsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "userenvvar_user_id_name",
				Unique:  true,
				Columns: []*schema.Column{UserEnvVarsColumns[1], UserEnvVarsColumns[2]},
			},
		},
	}
	// UserMcpConfigsColumns holds the columns for the "user_mcp_configs" table.
	UserMcpConfigsColumns = []*schema.Column{
		{Name: "user_mcp_config_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "preset_id", Type: field.TypeInt},
		{Name: "overrides", Type: field.TypeJSON, Nullable: true},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UserMcpConfigsTable holds the schema information for the "user_mcp_configs" table.
	UserMcpConfigsTable = &schema.Table{
		Name:       "user_mcp_configs",
		Columns:    UserMcpConfigsColumns,
		PrimaryKey: []*schema.Column{UserMcpConfigsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "usermcpconfig_user_id_preset_id",
				Unique:  true,
				Columns: []*schema.Column{UserMcpConfigsColumns[1], UserMcpConfigsColumns[2]},
			},
		},
	}
	// UserSkillInstallsColumns holds the columns for the "user_skill_installs" table.
	UserSkillInstallsColumns = []*schema.Column{
		{Name: "skill_install_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "preset_id", Type: field.TypeInt},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UserSkillInstallsTable holds the schema information for the "user_skill_installs" table.
	UserSkillInstallsTable = &schema.Table{
		Name:       "user_skill_installs",
		Columns:    UserSkillInstallsColumns,
		PrimaryKey: []*schema.Column{UserSkillInstallsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "userskillinstall_user_id_preset_id",
				Unique:  true,
				Columns: []*schema.Column{UserSkillInstallsColumns[1], UserSkillInstallsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentMessagesTable,
		AgentRunsTable,
		AgentSessionsTable,
		McpPresetsTable,
		ProjectsTable,
		SkillPresetsTable,
		ToolExecutionsTable,
		UsageLogsTable,
		UserEnvVarsTable,
		UserMcpConfigsTable,
		UserSkillInstallsTable,
	}
)

func init() {
	AgentMessagesTable.ForeignKeys[0].RefTable = AgentSessionsTable
	AgentRunsTable.ForeignKeys[0].RefTable = AgentSessionsTable
	AgentSessionsTable.ForeignKeys[0].RefTable = ProjectsTable
	ToolExecutionsTable.ForeignKeys[0].RefTable = AgentRunsTable
	ToolExecutionsTable.ForeignKeys[1].RefTable = AgentSessionsTable
	UsageLogsTable.ForeignKeys[0].RefTable = AgentRunsTable
	UsageLogsTable.ForeignKeys[1].RefTable = AgentSessionsTable
}
