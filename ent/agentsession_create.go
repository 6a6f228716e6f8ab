// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/wuyifannppp/poco-agent/ent/agentmessage"
	"github.com/wuyifannppp/poco-agent/ent/agentrun"
	"github.com/wuyifannppp/poco-agent/ent/agentsession"
	"github.com/wuyifannppp/poco-agent/ent/project"
	"github.com/wuyifannppp/poco-agent/ent/toolexecution"
	"github.com/wuyifannppp/poco-agent/ent/usagelog"
)

// AgentSessionCreate is the builder for creating a AgentSession entity.
type AgentSessionCreate struct {
	config
	mutation *AgentSessionMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *AgentSessionCreate) SetUserID(v string) *AgentSessionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *AgentSessionCreate) SetProjectID(v string) *AgentSessionCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableProjectID(v *string) *AgentSessionCreate {
	if v != nil {
		_c.SetProjectID(*v)
	}
	return _c
}

// SetSdkSessionID sets the "sdk_session_id" field.
func (_c *AgentSessionCreate) SetSdkSessionID(v string) *AgentSessionCreate {
	_c.mutation.SetSdkSessionID(v)
	return _c
}

// SetNillableSdkSessionID sets the "sdk_session_id" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableSdkSessionID(v *string) *AgentSessionCreate {
	if v != nil {
		_c.SetSdkSessionID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *AgentSessionCreate) SetStatus(v agentsession.Status) *AgentSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableStatus(v *agentsession.Status) *AgentSessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetConfigSnapshot sets the "config_snapshot" field.
func (_c *AgentSessionCreate) SetConfigSnapshot(v map[string]interface{}) *AgentSessionCreate {
	_c.mutation.SetConfigSnapshot(v)
	return _c
}

// SetStatePatch sets the "state_patch" field.
func (_c *AgentSessionCreate) SetStatePatch(v map[string]interface{}) *AgentSessionCreate {
	_c.mutation.SetStatePatch(v)
	return _c
}

// SetWorkspaceFilesPrefix sets the "workspace_files_prefix" field.
func (_c *AgentSessionCreate) SetWorkspaceFilesPrefix(v string) *AgentSessionCreate {
	_c.mutation.SetWorkspaceFilesPrefix(v)
	return _c
}

// SetNillableWorkspaceFilesPrefix sets the "workspace_files_prefix" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableWorkspaceFilesPrefix(v *string) *AgentSessionCreate {
	if v != nil {
		_c.SetWorkspaceFilesPrefix(*v)
	}
	return _c
}

// SetWorkspaceManifestKey sets the "workspace_manifest_key" field.
func (_c *AgentSessionCreate) SetWorkspaceManifestKey(v string) *AgentSessionCreate {
	_c.mutation.SetWorkspaceManifestKey(v)
	return _c
}

// SetNillableWorkspaceManifestKey sets the "workspace_manifest_key" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableWorkspaceManifestKey(v *string) *AgentSessionCreate {
	if v != nil {
		_c.SetWorkspaceManifestKey(*v)
	}
	return _c
}

// SetWorkspaceArchiveKey sets the "workspace_archive_key" field.
func (_c *AgentSessionCreate) SetWorkspaceArchiveKey(v string) *AgentSessionCreate {
	_c.mutation.SetWorkspaceArchiveKey(v)
	return _c
}

// SetNillableWorkspaceArchiveKey sets the "workspace_archive_key" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableWorkspaceArchiveKey(v *string) *AgentSessionCreate {
	if v != nil {
		_c.SetWorkspaceArchiveKey(*v)
	}
	return _c
}

// SetWorkspaceExportStatus sets the "workspace_export_status" field.
func (_c *AgentSessionCreate) SetWorkspaceExportStatus(v string) *AgentSessionCreate {
	_c.mutation.SetWorkspaceExportStatus(v)
	return _c
}

// SetNillableWorkspaceExportStatus sets the "workspace_export_status" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableWorkspaceExportStatus(v *string) *AgentSessionCreate {
	if v != nil {
		_c.SetWorkspaceExportStatus(*v)
	}
	return _c
}

// SetIsDeleted sets the "is_deleted" field.
func (_c *AgentSessionCreate) SetIsDeleted(v bool) *AgentSessionCreate {
	_c.mutation.SetIsDeleted(v)
	return _c
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableIsDeleted(v *bool) *AgentSessionCreate {
	if v != nil {
		_c.SetIsDeleted(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentSessionCreate) SetCreatedAt(v time.Time) *AgentSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableCreatedAt(v *time.Time) *AgentSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AgentSessionCreate) SetUpdatedAt(v time.Time) *AgentSessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableUpdatedAt(v *time.Time) *AgentSessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentSessionCreate) SetID(v string) *AgentSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *AgentSessionCreate) SetProject(v *Project) *AgentSessionCreate {
	return _c.SetProjectID(v.ID)
}

// AddMessageIDs adds the "messages" edge to the AgentMessage entity by IDs.
func (_c *AgentSessionCreate) AddMessageIDs(ids ...int) *AgentSessionCreate {
	_c.mutation.AddMessageIDs(ids...)
	return _c
}

// AddMessages adds the "messages" edges to the AgentMessage entity.
func (_c *AgentSessionCreate) AddMessages(v ...*AgentMessage) *AgentSessionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMessageIDs(ids...)
}

// AddRunIDs adds the "runs" edge to the AgentRun entity by IDs.
func (_c *AgentSessionCreate) AddRunIDs(ids ...string) *AgentSessionCreate {
	_c.mutation.AddRunIDs(ids...)
	return _c
}

// AddRuns adds the "runs" edges to the AgentRun entity.
func (_c *AgentSessionCreate) AddRuns(v ...*AgentRun) *AgentSessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRunIDs(ids...)
}

// AddToolExecutionIDs adds the "tool_executions" edge to the ToolExecution entity by IDs.
func (_c *AgentSessionCreate) AddToolExecutionIDs(ids ...string) *AgentSessionCreate {
	_c.mutation.AddToolExecutionIDs(ids...)
	return _c
}

// AddToolExecutions adds the "tool_executions" edges to the ToolExecution entity.
func (_c *AgentSessionCreate) AddToolExecutions(v ...*ToolExecution) *AgentSessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddToolExecutionIDs(ids...)
}

// AddUsageLogIDs adds the "usage_logs" edge to the UsageLog entity by IDs.
func (_c *AgentSessionCreate) AddUsageLogIDs(ids ...string) *AgentSessionCreate {
	_c.mutation.AddUsageLogIDs(ids...)
	return _c
}

// AddUsageLogs adds the "usage_logs" edges to the UsageLog entity.
func (_c *AgentSessionCreate) AddUsageLogs(v ...*UsageLog) *AgentSessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddUsageLogIDs(ids...)
}

// Mutation returns the AgentSessionMutation object of the builder.
func (_c *AgentSessionCreate) Mutation() *AgentSessionMutation {
	return _c.mutation
}

// Save creates the AgentSession in the database.
func (_c *AgentSessionCreate) Save(ctx context.Context) (*AgentSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentSessionCreate) SaveX(ctx context.Context) *AgentSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentSessionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := agentsession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.IsDeleted(); !ok {
		v := agentsession.DefaultIsDeleted
		_c.mutation.SetIsDeleted(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := agentsession.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentSessionCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "AgentSession.user_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AgentSession.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := agentsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentSession.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsDeleted(); !ok {
		return &ValidationError{Name: "is_deleted", err: errors.New(`ent: missing required field "AgentSession.is_deleted"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentSession.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AgentSession.updated_at"`)}
	}
	return nil
}

func (_c *AgentSessionCreate) sqlSave(ctx context.Context) (*AgentSession, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected AgentSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentSessionCreate) createSpec() (*AgentSession, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentsession.Table, sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(agentsession.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SdkSessionID(); ok {
		_spec.SetField(agentsession.FieldSdkSessionID, field.TypeString, value)
		_node.SdkSessionID = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(agentsession.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ConfigSnapshot(); ok {
		_spec.SetField(agentsession.FieldConfigSnapshot, field.TypeJSON, value)
		_node.ConfigSnapshot = value
	}
	if value, ok := _c.mutation.StatePatch(); ok {
		_spec.SetField(agentsession.FieldStatePatch, field.TypeJSON, value)
		_node.StatePatch = value
	}
	if value, ok := _c.mutation.WorkspaceFilesPrefix(); ok {
		_spec.SetField(agentsession.FieldWorkspaceFilesPrefix, field.TypeString, value)
		_node.WorkspaceFilesPrefix = &value
	}
	if value, ok := _c.mutation.WorkspaceManifestKey(); ok {
		_spec.SetField(agentsession.FieldWorkspaceManifestKey, field.TypeString, value)
		_node.WorkspaceManifestKey = &value
	}
	if value, ok := _c.mutation.WorkspaceArchiveKey(); ok {
		_spec.SetField(agentsession.FieldWorkspaceArchiveKey, field.TypeString, value)
		_node.WorkspaceArchiveKey = &value
	}
	if value, ok := _c.mutation.WorkspaceExportStatus(); ok {
		_spec.SetField(agentsession.FieldWorkspaceExportStatus, field.TypeString, value)
		_node.WorkspaceExportStatus = &value
	}
	if value, ok := _c.mutation.IsDeleted(); ok {
		_spec.SetField(agentsession.FieldIsDeleted, field.TypeBool, value)
		_node.IsDeleted = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(agentsession.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_node.ProjectID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RunsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ToolExecutionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.UsageLogsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AgentSessionCreateBulk is the builder for creating many AgentSession entities in bulk.
type AgentSessionCreateBulk struct {
	config
	err      error
	builders []*AgentSessionCreate
}

// Save creates the AgentSession entities in the database.
func (_c *AgentSessionCreateBulk) Save(ctx context.Context) ([]*AgentSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentSessionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AgentSessionCreateBulk) SaveX(ctx context.Context) []*AgentSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
