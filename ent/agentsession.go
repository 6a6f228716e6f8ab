// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/wuyifannppp/poco-agent/ent/agentsession"
	"github.com/wuyifannppp/poco-agent/ent/project"
)

// AgentSession is the model entity for the AgentSession schema.
type AgentSession struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID *string `json:"project_id,omitempty"`
	// Assigned by the agent runtime after the first step; unique when set
	SdkSessionID *string `json:"sdk_session_id,omitempty"`
	// Status holds the value of the "status" field.
	Status agentsession.Status `json:"status,omitempty"`
	// Session-level configuration captured at creation
	ConfigSnapshot map[string]interface{} `json:"config_snapshot,omitempty"`
	// Last-known agent state reported via callbacks
	StatePatch map[string]interface{} `json:"state_patch,omitempty"`
	// WorkspaceFilesPrefix holds the value of the "workspace_files_prefix" field.
	WorkspaceFilesPrefix *string `json:"workspace_files_prefix,omitempty"`
	// WorkspaceManifestKey holds the value of the "workspace_manifest_key" field.
	WorkspaceManifestKey *string `json:"workspace_manifest_key,omitempty"`
	// WorkspaceArchiveKey holds the value of the "workspace_archive_key" field.
	WorkspaceArchiveKey *string `json:"workspace_archive_key,omitempty"`
	// WorkspaceExportStatus holds the value of the "workspace_export_status" field.
	WorkspaceExportStatus *string `json:"workspace_export_status,omitempty"`
	// IsDeleted holds the value of the "is_deleted" field.
	IsDeleted bool `json:"is_deleted,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentSessionQuery when eager-loading is set.
	Edges        AgentSessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentSessionEdges holds the relations/edges for other nodes in the graph.
type AgentSessionEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// Messages holds the value of the messages edge.
	Messages []*AgentMessage `json:"messages,omitempty"`
	// Runs holds the value of the runs edge.
	Runs []*AgentRun `json:"runs,omitempty"`
	// ToolExecutions holds the value of the tool_executions edge.
	ToolExecutions []*ToolExecution `json:"tool_executions,omitempty"`
	// UsageLogs holds the value of the usage_logs edge.
	UsageLogs []*UsageLog `json:"usage_logs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentSessionEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// MessagesOrErr returns the Messages value or an error if the edge
// was not loaded in eager-loading.
func (e AgentSessionEdges) MessagesOrErr() ([]*AgentMessage, error) {
	if e.loadedTypes[1] {
		return e.Messages, nil
	}
	return nil, &NotLoadedError{edge: "messages"}
}

// RunsOrErr returns the Runs value or an error if the edge
// was not loaded in eager-loading.
func (e AgentSessionEdges) RunsOrErr() ([]*AgentRun, error) {
	if e.loadedTypes[2] {
		return e.Runs, nil
	}
	return nil, &NotLoadedError{edge: "runs"}
}

// ToolExecutionsOrErr returns the ToolExecutions value or an error if the edge
// was not loaded in eager-loading.
func (e AgentSessionEdges) ToolExecutionsOrErr() ([]*ToolExecution, error) {
	if e.loadedTypes[3] {
		return e.ToolExecutions, nil
	}
	return nil, &NotLoadedError{edge: "tool_executions"}
}

// UsageLogsOrErr returns the UsageLogs value or an error if the edge
// was not loaded in eager-loading.
func (e AgentSessionEdges) UsageLogsOrErr() ([]*UsageLog, error) {
	if e.loadedTypes[4] {
		return e.UsageLogs, nil
	}
	return nil, &NotLoadedError{edge: "usage_logs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentsession.FieldConfigSnapshot, agentsession.FieldStatePatch:
			values[i] = new([]byte)
		case agentsession.FieldIsDeleted:
			values[i] = new(sql.NullBool)
		case agentsession.FieldID, agentsession.FieldUserID, agentsession.FieldProjectID, agentsession.FieldSdkSessionID, agentsession.FieldStatus, agentsession.FieldWorkspaceFilesPrefix, agentsession.FieldWorkspaceManifestKey, agentsession.FieldWorkspaceArchiveKey, agentsession.FieldWorkspaceExportStatus:
			values[i] = new(sql.NullString)
		case agentsession.FieldCreatedAt, agentsession.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentSession fields.
func (_m *AgentSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentsession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agentsession.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case agentsession.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = new(string)
				*_m.ProjectID = value.String
			}
		case agentsession.FieldSdkSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sdk_session_id", values[i])
			} else if value.Valid {
				_m.SdkSessionID = new(string)
				*_m.SdkSessionID = value.String
			}
		case agentsession.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = agentsession.Status(value.String)
			}
		case agentsession.FieldConfigSnapshot:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field config_snapshot", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ConfigSnapshot); err != nil {
					return fmt.Errorf("unmarshal field config_snapshot: %w", err)
				}
			}
		case agentsession.FieldStatePatch:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field state_patch", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.StatePatch); err != nil {
					return fmt.Errorf("unmarshal field state_patch: %w", err)
				}
			}
		case agentsession.FieldWorkspaceFilesPrefix:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_files_prefix", values[i])
			} else if value.Valid {
				_m.WorkspaceFilesPrefix = new(string)
				*_m.WorkspaceFilesPrefix = value.String
			}
		case agentsession.FieldWorkspaceManifestKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_manifest_key", values[i])
			} else if value.Valid {
				_m.WorkspaceManifestKey = new(string)
				*_m.WorkspaceManifestKey = value.String
			}
		case agentsession.FieldWorkspaceArchiveKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_archive_key", values[i])
			} else if value.Valid {
				_m.WorkspaceArchiveKey = new(string)
				*_m.WorkspaceArchiveKey = value.String
			}
		case agentsession.FieldWorkspaceExportStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_export_status", values[i])
			} else if value.Valid {
				_m.WorkspaceExportStatus = new(string)
				*_m.WorkspaceExportStatus = value.String
			}
		case agentsession.FieldIsDeleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_deleted", values[i])
			} else if value.Valid {
				_m.IsDeleted = value.Bool
			}
		case agentsession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case agentsession.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AgentSession.
// This includes values selected through modifiers, order, etc.
func (_m *AgentSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the AgentSession entity.
func (_m *AgentSession) QueryProject() *ProjectQuery {
	return NewAgentSessionClient(_m.config).QueryProject(_m)
}

// QueryMessages queries the "messages" edge of the AgentSession entity.
func (_m *AgentSession) QueryMessages() *AgentMessageQuery {
	return NewAgentSessionClient(_m.config).QueryMessages(_m)
}

// QueryRuns queries the "runs" edge of the AgentSession entity.
func (_m *AgentSession) QueryRuns() *AgentRunQuery {
	return NewAgentSessionClient(_m.config).QueryRuns(_m)
}

// QueryToolExecutions queries the "tool_executions" edge of the AgentSession entity.
func (_m *AgentSession) QueryToolExecutions() *ToolExecutionQuery {
	return NewAgentSessionClient(_m.config).QueryToolExecutions(_m)
}

// QueryUsageLogs queries the "usage_logs" edge of the AgentSession entity.
func (_m *AgentSession) QueryUsageLogs() *UsageLogQuery {
	return NewAgentSessionClient(_m.config).QueryUsageLogs(_m)
}

// Update returns a builder for updating this AgentSession.
// Note that you need to call AgentSession.Unwrap() before calling this method if this AgentSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentSession) Update() *AgentSessionUpdateOne {
	return NewAgentSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentSession) Unwrap() *AgentSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentSession) String() string {
	var builder strings.Builder
	builder.WriteString("AgentSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	if v := _m.ProjectID; v != nil {
		builder.WriteString("project_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SdkSessionID; v != nil {
		builder.WriteString("sdk_session_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("config_snapshot=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConfigSnapshot))
	builder.WriteString(", ")
	builder.WriteString("state_patch=")
	builder.WriteString(fmt.Sprintf("%v", _m.StatePatch))
	builder.WriteString(", ")
	if v := _m.WorkspaceFilesPrefix; v != nil {
		builder.WriteString("workspace_files_prefix=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.WorkspaceManifestKey; v != nil {
		builder.WriteString("workspace_manifest_key=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.WorkspaceArchiveKey; v != nil {
		builder.WriteString("workspace_archive_key=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.WorkspaceExportStatus; v != nil {
		builder.WriteString("workspace_export_status=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_deleted=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsDeleted))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AgentSessions is a parsable slice of AgentSession.
type AgentSessions []*AgentSession
