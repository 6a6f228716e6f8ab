// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/wuyifannppp/poco-agent/ent/agentmessage"
	"github.com/wuyifannppp/poco-agent/ent/agentrun"
	"github.com/wuyifannppp/poco-agent/ent/agentsession"
	"github.com/wuyifannppp/poco-agent/ent/predicate"
	"github.com/wuyifannppp/poco-agent/ent/project"
	"github.com/wuyifannppp/poco-agent/ent/toolexecution"
	"github.com/wuyifannppp/poco-agent/ent/usagelog"
)

// AgentSessionUpdate is the builder for updating AgentSession entities.
type AgentSessionUpdate struct {
	config
	hooks    []Hook
	mutation *AgentSessionMutation
}

// Where appends a list predicates to the AgentSessionUpdate builder.
func (_u *AgentSessionUpdate) Where(ps ...predicate.AgentSession) *AgentSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *AgentSessionUpdate) SetProjectID(v string) *AgentSessionUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableProjectID(v *string) *AgentSessionUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// ClearProjectID clears the value of the "project_id" field.
func (_u *AgentSessionUpdate) ClearProjectID() *AgentSessionUpdate {
	_u.mutation.ClearProjectID()
	return _u
}

// SetSdkSessionID sets the "sdk_session_id" field.
func (_u *AgentSessionUpdate) SetSdkSessionID(v string) *AgentSessionUpdate {
	_u.mutation.SetSdkSessionID(v)
	return _u
}

// SetNillableSdkSessionID sets the "sdk_session_id" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableSdkSessionID(v *string) *AgentSessionUpdate {
	if v != nil {
		_u.SetSdkSessionID(*v)
	}
	return _u
}

// ClearSdkSessionID clears the value of the "sdk_session_id" field.
func (_u *AgentSessionUpdate) ClearSdkSessionID() *AgentSessionUpdate {
	_u.mutation.ClearSdkSessionID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentSessionUpdate) SetStatus(v agentsession.Status) *AgentSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableStatus(v *agentsession.Status) *AgentSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetConfigSnapshot sets the "config_snapshot" field.
func (_u *AgentSessionUpdate) SetConfigSnapshot(v map[string]interface{}) *AgentSessionUpdate {
	_u.mutation.SetConfigSnapshot(v)
	return _u
}

// ClearConfigSnapshot clears the value of the "config_snapshot" field.
func (_u *AgentSessionUpdate) ClearConfigSnapshot() *AgentSessionUpdate {
	_u.mutation.ClearConfigSnapshot()
	return _u
}

// SetStatePatch sets the "state_patch" field.
func (_u *AgentSessionUpdate) SetStatePatch(v map[string]interface{}) *AgentSessionUpdate {
	_u.mutation.SetStatePatch(v)
	return _u
}

// ClearStatePatch clears the value of the "state_patch" field.
func (_u *AgentSessionUpdate) ClearStatePatch() *AgentSessionUpdate {
	_u.mutation.ClearStatePatch()
	return _u
}

// SetWorkspaceFilesPrefix sets the "workspace_files_prefix" field.
func (_u *AgentSessionUpdate) SetWorkspaceFilesPrefix(v string) *AgentSessionUpdate {
	_u.mutation.SetWorkspaceFilesPrefix(v)
	return _u
}

// SetNillableWorkspaceFilesPrefix sets the "workspace_files_prefix" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableWorkspaceFilesPrefix(v *string) *AgentSessionUpdate {
	if v != nil {
		_u.SetWorkspaceFilesPrefix(*v)
	}
	return _u
}

// ClearWorkspaceFilesPrefix clears the value of the "workspace_files_prefix" field.
func (_u *AgentSessionUpdate) ClearWorkspaceFilesPrefix() *AgentSessionUpdate {
	_u.mutation.ClearWorkspaceFilesPrefix()
	return _u
}

// SetWorkspaceManifestKey sets the "workspace_manifest_key" field.
func (_u *AgentSessionUpdate) SetWorkspaceManifestKey(v string) *AgentSessionUpdate {
	_u.mutation.SetWorkspaceManifestKey(v)
	return _u
}

// SetNillableWorkspaceManifestKey sets the "workspace_manifest_key" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableWorkspaceManifestKey(v *string) *AgentSessionUpdate {
	if v != nil {
		_u.SetWorkspaceManifestKey(*v)
	}
	return _u
}

// ClearWorkspaceManifestKey clears the value of the "workspace_manifest_key" field.
func (_u *AgentSessionUpdate) ClearWorkspaceManifestKey() *AgentSessionUpdate {
	_u.mutation.ClearWorkspaceManifestKey()
	return _u
}

// SetWorkspaceArchiveKey sets the "workspace_archive_key" field.
func (_u *AgentSessionUpdate) SetWorkspaceArchiveKey(v string) *AgentSessionUpdate {
	_u.mutation.SetWorkspaceArchiveKey(v)
	return _u
}

// SetNillableWorkspaceArchiveKey sets the "workspace_archive_key" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableWorkspaceArchiveKey(v *string) *AgentSessionUpdate {
	if v != nil {
		_u.SetWorkspaceArchiveKey(*v)
	}
	return _u
}

// ClearWorkspaceArchiveKey clears the value of the "workspace_archive_key" field.
func (_u *AgentSessionUpdate) ClearWorkspaceArchiveKey() *AgentSessionUpdate {
	_u.mutation.ClearWorkspaceArchiveKey()
	return _u
}

// SetWorkspaceExportStatus sets the "workspace_export_status" field.
func (_u *AgentSessionUpdate) SetWorkspaceExportStatus(v string) *AgentSessionUpdate {
	_u.mutation.SetWorkspaceExportStatus(v)
	return _u
}

// SetNillableWorkspaceExportStatus sets the "workspace_export_status" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableWorkspaceExportStatus(v *string) *AgentSessionUpdate {
	if v != nil {
		_u.SetWorkspaceExportStatus(*v)
	}
	return _u
}

// ClearWorkspaceExportStatus clears the value of the "workspace_export_status" field.
func (_u *AgentSessionUpdate) ClearWorkspaceExportStatus() *AgentSessionUpdate {
	_u.mutation.ClearWorkspaceExportStatus()
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *AgentSessionUpdate) SetIsDeleted(v bool) *AgentSessionUpdate {
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableIsDeleted(v *bool) *AgentSessionUpdate {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentSessionUpdate) SetUpdatedAt(v time.Time) *AgentSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *AgentSessionUpdate) SetProject(v *Project) *AgentSessionUpdate {
	return _u.SetProjectID(v.ID)
}

// AddMessageIDs adds the "messages" edge to the AgentMessage entity by IDs.
func (_u *AgentSessionUpdate) AddMessageIDs(ids ...int) *AgentSessionUpdate {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the AgentMessage entity.
func (_u *AgentSessionUpdate) AddMessages(v ...*AgentMessage) *AgentSessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddRunIDs adds the "runs" edge to the AgentRun entity by IDs.
func (_u *AgentSessionUpdate) AddRunIDs(ids ...string) *AgentSessionUpdate {
	_u.mutation.AddRunIDs(ids...)
	return _u
}

// AddRuns adds the "runs" edges to the AgentRun entity.
func (_u *AgentSessionUpdate) AddRuns(v ...*AgentRun) *AgentSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRunIDs(ids...)
}

// AddToolExecutionIDs adds the "tool_executions" edge to the ToolExecution entity by IDs.
func (_u *AgentSessionUpdate) AddToolExecutionIDs(ids ...string) *AgentSessionUpdate {
	_u.mutation.AddToolExecutionIDs(ids...)
	return _u
}

// AddToolExecutions adds the "tool_executions" edges to the ToolExecution entity.
func (_u *AgentSessionUpdate) AddToolExecutions(v ...*ToolExecution) *AgentSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddToolExecutionIDs(ids...)
}

// AddUsageLogIDs adds the "usage_logs" edge to the UsageLog entity by IDs.
func (_u *AgentSessionUpdate) AddUsageLogIDs(ids ...string) *AgentSessionUpdate {
	_u.mutation.AddUsageLogIDs(ids...)
	return _u
}

// AddUsageLogs adds the "usage_logs" edges to the UsageLog entity.
func (_u *AgentSessionUpdate) AddUsageLogs(v ...*UsageLog) *AgentSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUsageLogIDs(ids...)
}

// Mutation returns the AgentSessionMutation object of the builder.
func (_u *AgentSessionUpdate) Mutation() *AgentSessionMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *AgentSessionUpdate) ClearProject() *AgentSessionUpdate {
	_u.mutation.ClearProject()
	return _u
}

// ClearMessages clears all "messages" edges to the AgentMessage entity.
func (_u *AgentSessionUpdate) ClearMessages() *AgentSessionUpdate {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to AgentMessage entities by IDs.
func (_u *AgentSessionUpdate) RemoveMessageIDs(ids ...int) *AgentSessionUpdate {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to AgentMessage entities.
func (_u *AgentSessionUpdate) RemoveMessages(v ...*AgentMessage) *AgentSessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearRuns clears all "runs" edges to the AgentRun entity.
func (_u *AgentSessionUpdate) ClearRuns() *AgentSessionUpdate {
	_u.mutation.ClearRuns()
	return _u
}

// RemoveRunIDs removes the "runs" edge to AgentRun entities by IDs.
func (_u *AgentSessionUpdate) RemoveRunIDs(ids ...string) *AgentSessionUpdate {
	_u.mutation.RemoveRunIDs(ids...)
	return _u
}

// RemoveRuns removes "runs" edges to AgentRun entities.
func (_u *AgentSessionUpdate) RemoveRuns(v ...*AgentRun) *AgentSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRunIDs(ids...)
}

// ClearToolExecutions clears all "tool_executions" edges to the ToolExecution entity.
func (_u *AgentSessionUpdate) ClearToolExecutions() *AgentSessionUpdate {
	_u.mutation.ClearToolExecutions()
	return _u
}

// RemoveToolExecutionIDs removes the "tool_executions" edge to ToolExecution entities by IDs.
func (_u *AgentSessionUpdate) RemoveToolExecutionIDs(ids ...string) *AgentSessionUpdate {
	_u.mutation.RemoveToolExecutionIDs(ids...)
	return _u
}

// RemoveToolExecutions removes "tool_executions" edges to ToolExecution entities.
func (_u *AgentSessionUpdate) RemoveToolExecutions(v ...*ToolExecution) *AgentSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveToolExecutionIDs(ids...)
}

// ClearUsageLogs clears all "usage_logs" edges to the UsageLog entity.
func (_u *AgentSessionUpdate) ClearUsageLogs() *AgentSessionUpdate {
	_u.mutation.ClearUsageLogs()
	return _u
}

// RemoveUsageLogIDs removes the "usage_logs" edge to UsageLog entities by IDs.
func (_u *AgentSessionUpdate) RemoveUsageLogIDs(ids ...string) *AgentSessionUpdate {
	_u.mutation.RemoveUsageLogIDs(ids...)
	return _u
}

// RemoveUsageLogs removes "usage_logs" edges to UsageLog entities.
func (_u *AgentSessionUpdate) RemoveUsageLogs(v ...*UsageLog) *AgentSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUsageLogIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentSessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentSessionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentsession.Table, agentsession.Columns, sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SdkSessionID(); ok {
		_spec.SetField(agentsession.FieldSdkSessionID, field.TypeString, value)
	}
	if _u.mutation.SdkSessionIDCleared() {
		_spec.ClearField(agentsession.FieldSdkSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ConfigSnapshot(); ok {
		_spec.SetField(agentsession.FieldConfigSnapshot, field.TypeJSON, value)
	}
	if _u.mutation.ConfigSnapshotCleared() {
		_spec.ClearField(agentsession.FieldConfigSnapshot, field.TypeJSON)
	}
	if value, ok := _u.mutation.StatePatch(); ok {
		_spec.SetField(agentsession.FieldStatePatch, field.TypeJSON, value)
	}
	if _u.mutation.StatePatchCleared() {
		_spec.ClearField(agentsession.FieldStatePatch, field.TypeJSON)
	}
	if value, ok := _u.mutation.WorkspaceFilesPrefix(); ok {
		_spec.SetField(agentsession.FieldWorkspaceFilesPrefix, field.TypeString, value)
	}
	if _u.mutation.WorkspaceFilesPrefixCleared() {
		_spec.ClearField(agentsession.FieldWorkspaceFilesPrefix, field.TypeString)
	}
	if value, ok := _u.mutation.WorkspaceManifestKey(); ok {
		_spec.SetField(agentsession.FieldWorkspaceManifestKey, field.TypeString, value)
	}
	if _u.mutation.WorkspaceManifestKeyCleared() {
		_spec.ClearField(agentsession.FieldWorkspaceManifestKey, field.TypeString)
	}
	if value, ok := _u.mutation.WorkspaceArchiveKey(); ok {
		_spec.SetField(agentsession.FieldWorkspaceArchiveKey, field.TypeString, value)
	}
	if _u.mutation.WorkspaceArchiveKeyCleared() {
		_spec.ClearField(agentsession.FieldWorkspaceArchiveKey, field.TypeString)
	}
	if value, ok := _u.mutation.WorkspaceExportStatus(); ok {
		_spec.SetField(agentsession.FieldWorkspaceExportStatus, field.TypeString, value)
	}
	if _u.mutation.WorkspaceExportStatusCleared() {
		_spec.ClearField(agentsession.FieldWorkspaceExportStatus, field.TypeString)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(agentsession.FieldIsDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentsession.ProjectTable,
			Columns: []string{agentsession.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentsession.ProjectTable,
			Columns: []string{agentsession.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.MessagesTable,
			Columns: []string{agentsession.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentmessage.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.MessagesTable,
			Columns: []string{agentsession.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentmessage.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.MessagesTable,
			Columns: []string{agentsession.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentmessage.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.RunsTable,
			Columns: []string{agentsession.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRunsIDs(); len(nodes) > 0 && !_u.mutation.RunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.RunsTable,
			Columns: []string{agentsession.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.RunsTable,
			Columns: []string{agentsession.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ToolExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.ToolExecutionsTable,
			Columns: []string{agentsession.ToolExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolexecution.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedToolExecutionsIDs(); len(nodes) > 0 && !_u.mutation.ToolExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.ToolExecutionsTable,
			Columns: []string{agentsession.ToolExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ToolExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.ToolExecutionsTable,
			Columns: []string{agentsession.ToolExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UsageLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.UsageLogsTable,
			Columns: []string{agentsession.UsageLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usagelog.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUsageLogsIDs(); len(nodes) > 0 && !_u.mutation.UsageLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.UsageLogsTable,
			Columns: []string{agentsession.UsageLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usagelog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UsageLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.UsageLogsTable,
			Columns: []string{agentsession.UsageLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usagelog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentSessionUpdateOne is the builder for updating a single AgentSession entity.
type AgentSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentSessionMutation
}

// SetProjectID sets the "project_id" field.
func (_u *AgentSessionUpdateOne) SetProjectID(v string) *AgentSessionUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableProjectID(v *string) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// ClearProjectID clears the value of the "project_id" field.
func (_u *AgentSessionUpdateOne) ClearProjectID() *AgentSessionUpdateOne {
	_u.mutation.ClearProjectID()
	return _u
}

// SetSdkSessionID sets the "sdk_session_id" field.
func (_u *AgentSessionUpdateOne) SetSdkSessionID(v string) *AgentSessionUpdateOne {
	_u.mutation.SetSdkSessionID(v)
	return _u
}

// SetNillableSdkSessionID sets the "sdk_session_id" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableSdkSessionID(v *string) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetSdkSessionID(*v)
	}
	return _u
}

// ClearSdkSessionID clears the value of the "sdk_session_id" field.
func (_u *AgentSessionUpdateOne) ClearSdkSessionID() *AgentSessionUpdateOne {
	_u.mutation.ClearSdkSessionID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentSessionUpdateOne) SetStatus(v agentsession.Status) *AgentSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableStatus(v *agentsession.Status) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetConfigSnapshot sets the "config_snapshot" field.
func (_u *AgentSessionUpdateOne) SetConfigSnapshot(v map[string]interface{}) *AgentSessionUpdateOne {
	_u.mutation.SetConfigSnapshot(v)
	return _u
}

// ClearConfigSnapshot clears the value of the "config_snapshot" field.
func (_u *AgentSessionUpdateOne) ClearConfigSnapshot() *AgentSessionUpdateOne {
	_u.mutation.ClearConfigSnapshot()
	return _u
}

// SetStatePatch sets the "state_patch" field.
func (_u *AgentSessionUpdateOne) SetStatePatch(v map[string]interface{}) *AgentSessionUpdateOne {
	_u.mutation.SetStatePatch(v)
	return _u
}

// ClearStatePatch clears the value of the "state_patch" field.
func (_u *AgentSessionUpdateOne) ClearStatePatch() *AgentSessionUpdateOne {
	_u.mutation.ClearStatePatch()
	return _u
}

// SetWorkspaceFilesPrefix sets the "workspace_files_prefix" field.
func (_u *AgentSessionUpdateOne) SetWorkspaceFilesPrefix(v string) *AgentSessionUpdateOne {
	_u.mutation.SetWorkspaceFilesPrefix(v)
	return _u
}

// SetNillableWorkspaceFilesPrefix sets the "workspace_files_prefix" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableWorkspaceFilesPrefix(v *string) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetWorkspaceFilesPrefix(*v)
	}
	return _u
}

// ClearWorkspaceFilesPrefix clears the value of the "workspace_files_prefix" field.
func (_u *AgentSessionUpdateOne) ClearWorkspaceFilesPrefix() *AgentSessionUpdateOne {
	_u.mutation.ClearWorkspaceFilesPrefix()
	return _u
}

// SetWorkspaceManifestKey sets the "workspace_manifest_key" field.
func (_u *AgentSessionUpdateOne) SetWorkspaceManifestKey(v string) *AgentSessionUpdateOne {
	_u.mutation.SetWorkspaceManifestKey(v)
	return _u
}

// SetNillableWorkspaceManifestKey sets the "workspace_manifest_key" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableWorkspaceManifestKey(v *string) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetWorkspaceManifestKey(*v)
	}
	return _u
}

// ClearWorkspaceManifestKey clears the value of the "workspace_manifest_key" field.
func (_u *AgentSessionUpdateOne) ClearWorkspaceManifestKey() *AgentSessionUpdateOne {
	_u.mutation.ClearWorkspaceManifestKey()
	return _u
}

// SetWorkspaceArchiveKey sets the "workspace_archive_key" field.
func (_u *AgentSessionUpdateOne) SetWorkspaceArchiveKey(v string) *AgentSessionUpdateOne {
	_u.mutation.SetWorkspaceArchiveKey(v)
	return _u
}

// SetNillableWorkspaceArchiveKey sets the "workspace_archive_key" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableWorkspaceArchiveKey(v *string) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetWorkspaceArchiveKey(*v)
	}
	return _u
}

// ClearWorkspaceArchiveKey clears the value of the "workspace_archive_key" field.
func (_u *AgentSessionUpdateOne) ClearWorkspaceArchiveKey() *AgentSessionUpdateOne {
	_u.mutation.ClearWorkspaceArchiveKey()
	return _u
}

// SetWorkspaceExportStatus sets the "workspace_export_status" field.
func (_u *AgentSessionUpdateOne) SetWorkspaceExportStatus(v string) *AgentSessionUpdateOne {
	_u.mutation.SetWorkspaceExportStatus(v)
	return _u
}

// SetNillableWorkspaceExportStatus sets the "workspace_export_status" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableWorkspaceExportStatus(v *string) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetWorkspaceExportStatus(*v)
	}
	return _u
}

// ClearWorkspaceExportStatus clears the value of the "workspace_export_status" field.
func (_u *AgentSessionUpdateOne) ClearWorkspaceExportStatus() *AgentSessionUpdateOne {
	_u.mutation.ClearWorkspaceExportStatus()
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *AgentSessionUpdateOne) SetIsDeleted(v bool) *AgentSessionUpdateOne {
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableIsDeleted(v *bool) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentSessionUpdateOne) SetUpdatedAt(v time.Time) *AgentSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *AgentSessionUpdateOne) SetProject(v *Project) *AgentSessionUpdateOne {
	return _u.SetProjectID(v.ID)
}

// AddMessageIDs adds the "messages" edge to the AgentMessage entity by IDs.
func (_u *AgentSessionUpdateOne) AddMessageIDs(ids ...int) *AgentSessionUpdateOne {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the AgentMessage entity.
func (_u *AgentSessionUpdateOne) AddMessages(v ...*AgentMessage) *AgentSessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddRunIDs adds the "runs" edge to the AgentRun entity by IDs.
func (_u *AgentSessionUpdateOne) AddRunIDs(ids ...string) *AgentSessionUpdateOne {
	_u.mutation.AddRunIDs(ids...)
	return _u
}

// AddRuns adds the "runs" edges to the AgentRun entity.
func (_u *AgentSessionUpdateOne) AddRuns(v ...*AgentRun) *AgentSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRunIDs(ids...)
}

// AddToolExecutionIDs adds the "tool_executions" edge to the ToolExecution entity by IDs.
func (_u *AgentSessionUpdateOne) AddToolExecutionIDs(ids ...string) *AgentSessionUpdateOne {
	_u.mutation.AddToolExecutionIDs(ids...)
	return _u
}

// AddToolExecutions adds the "tool_executions" edges to the ToolExecution entity.
func (_u *AgentSessionUpdateOne) AddToolExecutions(v ...*ToolExecution) *AgentSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddToolExecutionIDs(ids...)
}

// AddUsageLogIDs adds the "usage_logs" edge to the UsageLog entity by IDs.
func (_u *AgentSessionUpdateOne) AddUsageLogIDs(ids ...string) *AgentSessionUpdateOne {
	_u.mutation.AddUsageLogIDs(ids...)
	return _u
}

// AddUsageLogs adds the "usage_logs" edges to the UsageLog entity.
func (_u *AgentSessionUpdateOne) AddUsageLogs(v ...*UsageLog) *AgentSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUsageLogIDs(ids...)
}

// Mutation returns the AgentSessionMutation object of the builder.
func (_u *AgentSessionUpdateOne) Mutation() *AgentSessionMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *AgentSessionUpdateOne) ClearProject() *AgentSessionUpdateOne {
	_u.mutation.ClearProject()
	return _u
}

// ClearMessages clears all "messages" edges to the AgentMessage entity.
func (_u *AgentSessionUpdateOne) ClearMessages() *AgentSessionUpdateOne {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to AgentMessage entities by IDs.
func (_u *AgentSessionUpdateOne) RemoveMessageIDs(ids ...int) *AgentSessionUpdateOne {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to AgentMessage entities.
func (_u *AgentSessionUpdateOne) RemoveMessages(v ...*AgentMessage) *AgentSessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearRuns clears all "runs" edges to the AgentRun entity.
func (_u *AgentSessionUpdateOne) ClearRuns() *AgentSessionUpdateOne {
	_u.mutation.ClearRuns()
	return _u
}

// RemoveRunIDs removes the "runs" edge to AgentRun entities by IDs.
func (_u *AgentSessionUpdateOne) RemoveRunIDs(ids ...string) *AgentSessionUpdateOne {
	_u.mutation.RemoveRunIDs(ids...)
	return _u
}

// RemoveRuns removes "runs" edges to AgentRun entities.
func (_u *AgentSessionUpdateOne) RemoveRuns(v ...*AgentRun) *AgentSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRunIDs(ids...)
}

// ClearToolExecutions clears all "tool_executions" edges to the ToolExecution entity.
func (_u *AgentSessionUpdateOne) ClearToolExecutions() *AgentSessionUpdateOne {
	_u.mutation.ClearToolExecutions()
	return _u
}

// RemoveToolExecutionIDs removes the "tool_executions" edge to ToolExecution entities by IDs.
func (_u *AgentSessionUpdateOne) RemoveToolExecutionIDs(ids ...string) *AgentSessionUpdateOne {
	_u.mutation.RemoveToolExecutionIDs(ids...)
	return _u
}

// RemoveToolExecutions removes "tool_executions" edges to ToolExecution entities.
func (_u *AgentSessionUpdateOne) RemoveToolExecutions(v ...*ToolExecution) *AgentSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveToolExecutionIDs(ids...)
}

// ClearUsageLogs clears all "usage_logs" edges to the UsageLog entity.
func (_u *AgentSessionUpdateOne) ClearUsageLogs() *AgentSessionUpdateOne {
	_u.mutation.ClearUsageLogs()
	return _u
}

// RemoveUsageLogIDs removes the "usage_logs" edge to UsageLog entities by IDs.
func (_u *AgentSessionUpdateOne) RemoveUsageLogIDs(ids ...string) *AgentSessionUpdateOne {
	_u.mutation.RemoveUsageLogIDs(ids...)
	return _u
}

// RemoveUsageLogs removes "usage_logs" edges to UsageLog entities.
func (_u *AgentSessionUpdateOne) RemoveUsageLogs(v ...*UsageLog) *AgentSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUsageLogIDs(ids...)
}

// Where appends a list predicates to the AgentSessionUpdate builder.
func (_u *AgentSessionUpdateOne) Where(ps ...predicate.AgentSession) *AgentSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentSessionUpdateOne) Select(field string, fields ...string) *AgentSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentSession entity.
func (_u *AgentSessionUpdateOne) Save(ctx context.Context) (*AgentSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentSessionUpdateOne) SaveX(ctx context.Context) *AgentSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentSessionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentSessionUpdateOne) sqlSave(ctx context.Context) (_node *AgentSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentsession.Table, agentsession.Columns, sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentsession.FieldID)
		for _, f := range fields {
			if !agentsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentsession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SdkSessionID(); ok {
		_spec.SetField(agentsession.FieldSdkSessionID, field.TypeString, value)
	}
	if _u.mutation.SdkSessionIDCleared() {
		_spec.ClearField(agentsession.FieldSdkSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ConfigSnapshot(); ok {
		_spec.SetField(agentsession.FieldConfigSnapshot, field.TypeJSON, value)
	}
	if _u.mutation.ConfigSnapshotCleared() {
		_spec.ClearField(agentsession.FieldConfigSnapshot, field.TypeJSON)
	}
	if value, ok := _u.mutation.StatePatch(); ok {
		_spec.SetField(agentsession.FieldStatePatch, field.TypeJSON, value)
	}
	if _u.mutation.StatePatchCleared() {
		_spec.ClearField(agentsession.FieldStatePatch, field.TypeJSON)
	}
	if value, ok := _u.mutation.WorkspaceFilesPrefix(); ok {
		_spec.SetField(agentsession.FieldWorkspaceFilesPrefix, field.TypeString, value)
	}
	if _u.mutation.WorkspaceFilesPrefixCleared() {
		_spec.ClearField(agentsession.FieldWorkspaceFilesPrefix, field.TypeString)
	}
	if value, ok := _u.mutation.WorkspaceManifestKey(); ok {
		_spec.SetField(agentsession.FieldWorkspaceManifestKey, field.TypeString, value)
	}
	if _u.mutation.WorkspaceManifestKeyCleared() {
		_spec.ClearField(agentsession.FieldWorkspaceManifestKey, field.TypeString)
	}
	if value, ok := _u.mutation.WorkspaceArchiveKey(); ok {
		_spec.SetField(agentsession.FieldWorkspaceArchiveKey, field.TypeString, value)
	}
	if _u.mutation.WorkspaceArchiveKeyCleared() {
		_spec.ClearField(agentsession.FieldWorkspaceArchiveKey, field.TypeString)
	}
	if value, ok := _u.mutation.WorkspaceExportStatus(); ok {
		_spec.SetField(agentsession.FieldWorkspaceExportStatus, field.TypeString, value)
	}
	if _u.mutation.WorkspaceExportStatusCleared() {
		_spec.ClearField(agentsession.FieldWorkspaceExportStatus, field.TypeString)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(agentsession.FieldIsDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentsession.ProjectTable,
			Columns: []string{agentsession.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentsession.ProjectTable,
			Columns: []string{agentsession.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.MessagesTable,
			Columns: []string{agentsession.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentmessage.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.MessagesTable,
			Columns: []string{agentsession.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentmessage.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.MessagesTable,
			Columns: []string{agentsession.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentmessage.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.RunsTable,
			Columns: []string{agentsession.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRunsIDs(); len(nodes) > 0 && !_u.mutation.RunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.RunsTable,
			Columns: []string{agentsession.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.RunsTable,
			Columns: []string{agentsession.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ToolExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.ToolExecutionsTable,
			Columns: []string{agentsession.ToolExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolexecution.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedToolExecutionsIDs(); len(nodes) > 0 && !_u.mutation.ToolExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.ToolExecutionsTable,
			Columns: []string{agentsession.ToolExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ToolExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.ToolExecutionsTable,
			Columns: []string{agentsession.ToolExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UsageLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.UsageLogsTable,
			Columns: []string{agentsession.UsageLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usagelog.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUsageLogsIDs(); len(nodes) > 0 && !_u.mutation.UsageLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.UsageLogsTable,
			Columns: []string{agentsession.UsageLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usagelog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UsageLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.UsageLogsTable,
			Columns: []string{agentsession.UsageLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usagelog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AgentSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
