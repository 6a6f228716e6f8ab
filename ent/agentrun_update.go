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
	"github.com/wuyifannppp/poco-agent/ent/agentrun"
	"github.com/wuyifannppp/poco-agent/ent/predicate"
	"github.com/wuyifannppp/poco-agent/ent/toolexecution"
	"github.com/wuyifannppp/poco-agent/ent/usagelog"
)

// AgentRunUpdate is the builder for updating AgentRun entities.
type AgentRunUpdate struct {
	config
	hooks    []Hook
	mutation *AgentRunMutation
}

// Where appends a list predicates to the AgentRunUpdate builder.
func (_u *AgentRunUpdate) Where(ps ...predicate.AgentRun) *AgentRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentRunUpdate) SetStatus(v agentrun.Status) *AgentRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableStatus(v *agentrun.Status) *AgentRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetConfigSnapshot sets the "config_snapshot" field.
func (_u *AgentRunUpdate) SetConfigSnapshot(v map[string]interface{}) *AgentRunUpdate {
	_u.mutation.SetConfigSnapshot(v)
	return _u
}

// ClearConfigSnapshot clears the value of the "config_snapshot" field.
func (_u *AgentRunUpdate) ClearConfigSnapshot() *AgentRunUpdate {
	_u.mutation.ClearConfigSnapshot()
	return _u
}

// SetSdkSessionID sets the "sdk_session_id" field.
func (_u *AgentRunUpdate) SetSdkSessionID(v string) *AgentRunUpdate {
	_u.mutation.SetSdkSessionID(v)
	return _u
}

// SetNillableSdkSessionID sets the "sdk_session_id" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableSdkSessionID(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetSdkSessionID(*v)
	}
	return _u
}

// ClearSdkSessionID clears the value of the "sdk_session_id" field.
func (_u *AgentRunUpdate) ClearSdkSessionID() *AgentRunUpdate {
	_u.mutation.ClearSdkSessionID()
	return _u
}

// SetClaimToken sets the "claim_token" field.
func (_u *AgentRunUpdate) SetClaimToken(v string) *AgentRunUpdate {
	_u.mutation.SetClaimToken(v)
	return _u
}

// SetNillableClaimToken sets the "claim_token" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableClaimToken(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetClaimToken(*v)
	}
	return _u
}

// ClearClaimToken clears the value of the "claim_token" field.
func (_u *AgentRunUpdate) ClearClaimToken() *AgentRunUpdate {
	_u.mutation.ClearClaimToken()
	return _u
}

// SetWorkerID sets the "worker_id" field.
func (_u *AgentRunUpdate) SetWorkerID(v string) *AgentRunUpdate {
	_u.mutation.SetWorkerID(v)
	return _u
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableWorkerID(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetWorkerID(*v)
	}
	return _u
}

// ClearWorkerID clears the value of the "worker_id" field.
func (_u *AgentRunUpdate) ClearWorkerID() *AgentRunUpdate {
	_u.mutation.ClearWorkerID()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *AgentRunUpdate) SetClaimedAt(v time.Time) *AgentRunUpdate {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableClaimedAt(v *time.Time) *AgentRunUpdate {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *AgentRunUpdate) ClearClaimedAt() *AgentRunUpdate {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AgentRunUpdate) SetStartedAt(v time.Time) *AgentRunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableStartedAt(v *time.Time) *AgentRunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AgentRunUpdate) ClearStartedAt() *AgentRunUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *AgentRunUpdate) SetFinishedAt(v time.Time) *AgentRunUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableFinishedAt(v *time.Time) *AgentRunUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *AgentRunUpdate) ClearFinishedAt() *AgentRunUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetError sets the "error" field.
func (_u *AgentRunUpdate) SetError(v map[string]interface{}) *AgentRunUpdate {
	_u.mutation.SetError(v)
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *AgentRunUpdate) ClearError() *AgentRunUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *AgentRunUpdate) SetAttempt(v int) *AgentRunUpdate {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableAttempt(v *int) *AgentRunUpdate {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *AgentRunUpdate) AddAttempt(v int) *AgentRunUpdate {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetCancelRequested sets the "cancel_requested" field.
func (_u *AgentRunUpdate) SetCancelRequested(v bool) *AgentRunUpdate {
	_u.mutation.SetCancelRequested(v)
	return _u
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableCancelRequested(v *bool) *AgentRunUpdate {
	if v != nil {
		_u.SetCancelRequested(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentRunUpdate) SetUpdatedAt(v time.Time) *AgentRunUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddToolExecutionIDs adds the "tool_executions" edge to the ToolExecution entity by IDs.
func (_u *AgentRunUpdate) AddToolExecutionIDs(ids ...string) *AgentRunUpdate {
	_u.mutation.AddToolExecutionIDs(ids...)
	return _u
}

// AddToolExecutions adds the "tool_executions" edges to the ToolExecution entity.
func (_u *AgentRunUpdate) AddToolExecutions(v ...*ToolExecution) *AgentRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddToolExecutionIDs(ids...)
}

// AddUsageLogIDs adds the "usage_logs" edge to the UsageLog entity by IDs.
func (_u *AgentRunUpdate) AddUsageLogIDs(ids ...string) *AgentRunUpdate {
	_u.mutation.AddUsageLogIDs(ids...)
	return _u
}

// AddUsageLogs adds the "usage_logs" edges to the UsageLog entity.
func (_u *AgentRunUpdate) AddUsageLogs(v ...*UsageLog) *AgentRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUsageLogIDs(ids...)
}

// Mutation returns the AgentRunMutation object of the builder.
func (_u *AgentRunUpdate) Mutation() *AgentRunMutation {
	return _u.mutation
}

// ClearToolExecutions clears all "tool_executions" edges to the ToolExecution entity.
func (_u *AgentRunUpdate) ClearToolExecutions() *AgentRunUpdate {
	_u.mutation.ClearToolExecutions()
	return _u
}

// RemoveToolExecutionIDs removes the "tool_executions" edge to ToolExecution entities by IDs.
func (_u *AgentRunUpdate) RemoveToolExecutionIDs(ids ...string) *AgentRunUpdate {
	_u.mutation.RemoveToolExecutionIDs(ids...)
	return _u
}

// RemoveToolExecutions removes "tool_executions" edges to ToolExecution entities.
func (_u *AgentRunUpdate) RemoveToolExecutions(v ...*ToolExecution) *AgentRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveToolExecutionIDs(ids...)
}

// ClearUsageLogs clears all "usage_logs" edges to the UsageLog entity.
func (_u *AgentRunUpdate) ClearUsageLogs() *AgentRunUpdate {
	_u.mutation.ClearUsageLogs()
	return _u
}

// RemoveUsageLogIDs removes the "usage_logs" edge to UsageLog entities by IDs.
func (_u *AgentRunUpdate) RemoveUsageLogIDs(ids ...string) *AgentRunUpdate {
	_u.mutation.RemoveUsageLogIDs(ids...)
	return _u
}

// RemoveUsageLogs removes "usage_logs" edges to UsageLog entities.
func (_u *AgentRunUpdate) RemoveUsageLogs(v ...*UsageLog) *AgentRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUsageLogIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentRunUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentRunUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentrun.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentRunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentRun.status": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentRun.session"`)
	}
	return nil
}

func (_u *AgentRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentrun.Table, agentrun.Columns, sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ConfigSnapshot(); ok {
		_spec.SetField(agentrun.FieldConfigSnapshot, field.TypeJSON, value)
	}
	if _u.mutation.ConfigSnapshotCleared() {
		_spec.ClearField(agentrun.FieldConfigSnapshot, field.TypeJSON)
	}
	if value, ok := _u.mutation.SdkSessionID(); ok {
		_spec.SetField(agentrun.FieldSdkSessionID, field.TypeString, value)
	}
	if _u.mutation.SdkSessionIDCleared() {
		_spec.ClearField(agentrun.FieldSdkSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimToken(); ok {
		_spec.SetField(agentrun.FieldClaimToken, field.TypeString, value)
	}
	if _u.mutation.ClaimTokenCleared() {
		_spec.ClearField(agentrun.FieldClaimToken, field.TypeString)
	}
	if value, ok := _u.mutation.WorkerID(); ok {
		_spec.SetField(agentrun.FieldWorkerID, field.TypeString, value)
	}
	if _u.mutation.WorkerIDCleared() {
		_spec.ClearField(agentrun.FieldWorkerID, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(agentrun.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(agentrun.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(agentrun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(agentrun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(agentrun.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(agentrun.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(agentrun.FieldError, field.TypeJSON, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(agentrun.FieldError, field.TypeJSON)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(agentrun.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(agentrun.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CancelRequested(); ok {
		_spec.SetField(agentrun.FieldCancelRequested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentrun.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ToolExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.ToolExecutionsTable,
			Columns: []string{agentrun.ToolExecutionsColumn},
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
			Table:   agentrun.ToolExecutionsTable,
			Columns: []string{agentrun.ToolExecutionsColumn},
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
			Table:   agentrun.ToolExecutionsTable,
			Columns: []string{agentrun.ToolExecutionsColumn},
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
			Table:   agentrun.UsageLogsTable,
			Columns: []string{agentrun.UsageLogsColumn},
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
			Table:   agentrun.UsageLogsTable,
			Columns: []string{agentrun.UsageLogsColumn},
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
			Table:   agentrun.UsageLogsTable,
			Columns: []string{agentrun.UsageLogsColumn},
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
			err = &NotFoundError{agentrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentRunUpdateOne is the builder for updating a single AgentRun entity.
type AgentRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentRunMutation
}

// SetStatus sets the "status" field.
func (_u *AgentRunUpdateOne) SetStatus(v agentrun.Status) *AgentRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableStatus(v *agentrun.Status) *AgentRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetConfigSnapshot sets the "config_snapshot" field.
func (_u *AgentRunUpdateOne) SetConfigSnapshot(v map[string]interface{}) *AgentRunUpdateOne {
	_u.mutation.SetConfigSnapshot(v)
	return _u
}

// ClearConfigSnapshot clears the value of the "config_snapshot" field.
func (_u *AgentRunUpdateOne) ClearConfigSnapshot() *AgentRunUpdateOne {
	_u.mutation.ClearConfigSnapshot()
	return _u
}

// SetSdkSessionID sets the "sdk_session_id" field.
func (_u *AgentRunUpdateOne) SetSdkSessionID(v string) *AgentRunUpdateOne {
	_u.mutation.SetSdkSessionID(v)
	return _u
}

// SetNillableSdkSessionID sets the "sdk_session_id" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableSdkSessionID(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetSdkSessionID(*v)
	}
	return _u
}

// ClearSdkSessionID clears the value of the "sdk_session_id" field.
func (_u *AgentRunUpdateOne) ClearSdkSessionID() *AgentRunUpdateOne {
	_u.mutation.ClearSdkSessionID()
	return _u
}

// SetClaimToken sets the "claim_token" field.
func (_u *AgentRunUpdateOne) SetClaimToken(v string) *AgentRunUpdateOne {
	_u.mutation.SetClaimToken(v)
	return _u
}

// SetNillableClaimToken sets the "claim_token" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableClaimToken(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetClaimToken(*v)
	}
	return _u
}

// ClearClaimToken clears the value of the "claim_token" field.
func (_u *AgentRunUpdateOne) ClearClaimToken() *AgentRunUpdateOne {
	_u.mutation.ClearClaimToken()
	return _u
}

// SetWorkerID sets the "worker_id" field.
func (_u *AgentRunUpdateOne) SetWorkerID(v string) *AgentRunUpdateOne {
	_u.mutation.SetWorkerID(v)
	return _u
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableWorkerID(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetWorkerID(*v)
	}
	return _u
}

// ClearWorkerID clears the value of the "worker_id" field.
func (_u *AgentRunUpdateOne) ClearWorkerID() *AgentRunUpdateOne {
	_u.mutation.ClearWorkerID()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *AgentRunUpdateOne) SetClaimedAt(v time.Time) *AgentRunUpdateOne {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableClaimedAt(v *time.Time) *AgentRunUpdateOne {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *AgentRunUpdateOne) ClearClaimedAt() *AgentRunUpdateOne {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AgentRunUpdateOne) SetStartedAt(v time.Time) *AgentRunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableStartedAt(v *time.Time) *AgentRunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AgentRunUpdateOne) ClearStartedAt() *AgentRunUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *AgentRunUpdateOne) SetFinishedAt(v time.Time) *AgentRunUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableFinishedAt(v *time.Time) *AgentRunUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *AgentRunUpdateOne) ClearFinishedAt() *AgentRunUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetError sets the "error" field.
func (_u *AgentRunUpdateOne) SetError(v map[string]interface{}) *AgentRunUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *AgentRunUpdateOne) ClearError() *AgentRunUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *AgentRunUpdateOne) SetAttempt(v int) *AgentRunUpdateOne {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableAttempt(v *int) *AgentRunUpdateOne {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *AgentRunUpdateOne) AddAttempt(v int) *AgentRunUpdateOne {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetCancelRequested sets the "cancel_requested" field.
func (_u *AgentRunUpdateOne) SetCancelRequested(v bool) *AgentRunUpdateOne {
	_u.mutation.SetCancelRequested(v)
	return _u
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableCancelRequested(v *bool) *AgentRunUpdateOne {
	if v != nil {
		_u.SetCancelRequested(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentRunUpdateOne) SetUpdatedAt(v time.Time) *AgentRunUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddToolExecutionIDs adds the "tool_executions" edge to the ToolExecution entity by IDs.
func (_u *AgentRunUpdateOne) AddToolExecutionIDs(ids ...string) *AgentRunUpdateOne {
	_u.mutation.AddToolExecutionIDs(ids...)
	return _u
}

// AddToolExecutions adds the "tool_executions" edges to the ToolExecution entity.
func (_u *AgentRunUpdateOne) AddToolExecutions(v ...*ToolExecution) *AgentRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddToolExecutionIDs(ids...)
}

// AddUsageLogIDs adds the "usage_logs" edge to the UsageLog entity by IDs.
func (_u *AgentRunUpdateOne) AddUsageLogIDs(ids ...string) *AgentRunUpdateOne {
	_u.mutation.AddUsageLogIDs(ids...)
	return _u
}

// AddUsageLogs adds the "usage_logs" edges to the UsageLog entity.
func (_u *AgentRunUpdateOne) AddUsageLogs(v ...*UsageLog) *AgentRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUsageLogIDs(ids...)
}

// Mutation returns the AgentRunMutation object of the builder.
func (_u *AgentRunUpdateOne) Mutation() *AgentRunMutation {
	return _u.mutation
}

// ClearToolExecutions clears all "tool_executions" edges to the ToolExecution entity.
func (_u *AgentRunUpdateOne) ClearToolExecutions() *AgentRunUpdateOne {
	_u.mutation.ClearToolExecutions()
	return _u
}

// RemoveToolExecutionIDs removes the "tool_executions" edge to ToolExecution entities by IDs.
func (_u *AgentRunUpdateOne) RemoveToolExecutionIDs(ids ...string) *AgentRunUpdateOne {
	_u.mutation.RemoveToolExecutionIDs(ids...)
	return _u
}

// RemoveToolExecutions removes "tool_executions" edges to ToolExecution entities.
func (_u *AgentRunUpdateOne) RemoveToolExecutions(v ...*ToolExecution) *AgentRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveToolExecutionIDs(ids...)
}

// ClearUsageLogs clears all "usage_logs" edges to the UsageLog entity.
func (_u *AgentRunUpdateOne) ClearUsageLogs() *AgentRunUpdateOne {
	_u.mutation.ClearUsageLogs()
	return _u
}

// RemoveUsageLogIDs removes the "usage_logs" edge to UsageLog entities by IDs.
func (_u *AgentRunUpdateOne) RemoveUsageLogIDs(ids ...string) *AgentRunUpdateOne {
	_u.mutation.RemoveUsageLogIDs(ids...)
	return _u
}

// RemoveUsageLogs removes "usage_logs" edges to UsageLog entities.
func (_u *AgentRunUpdateOne) RemoveUsageLogs(v ...*UsageLog) *AgentRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUsageLogIDs(ids...)
}

// Where appends a list predicates to the AgentRunUpdate builder.
func (_u *AgentRunUpdateOne) Where(ps ...predicate.AgentRun) *AgentRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentRunUpdateOne) Select(field string, fields ...string) *AgentRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentRun entity.
func (_u *AgentRunUpdateOne) Save(ctx context.Context) (*AgentRun, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentRunUpdateOne) SaveX(ctx context.Context) *AgentRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentRunUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentrun.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentRunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentRun.status": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentRun.session"`)
	}
	return nil
}

func (_u *AgentRunUpdateOne) sqlSave(ctx context.Context) (_node *AgentRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentrun.Table, agentrun.Columns, sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentrun.FieldID)
		for _, f := range fields {
			if !agentrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentrun.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ConfigSnapshot(); ok {
		_spec.SetField(agentrun.FieldConfigSnapshot, field.TypeJSON, value)
	}
	if _u.mutation.ConfigSnapshotCleared() {
		_spec.ClearField(agentrun.FieldConfigSnapshot, field.TypeJSON)
	}
	if value, ok := _u.mutation.SdkSessionID(); ok {
		_spec.SetField(agentrun.FieldSdkSessionID, field.TypeString, value)
	}
	if _u.mutation.SdkSessionIDCleared() {
		_spec.ClearField(agentrun.FieldSdkSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimToken(); ok {
		_spec.SetField(agentrun.FieldClaimToken, field.TypeString, value)
	}
	if _u.mutation.ClaimTokenCleared() {
		_spec.ClearField(agentrun.FieldClaimToken, field.TypeString)
	}
	if value, ok := _u.mutation.WorkerID(); ok {
		_spec.SetField(agentrun.FieldWorkerID, field.TypeString, value)
	}
	if _u.mutation.WorkerIDCleared() {
		_spec.ClearField(agentrun.FieldWorkerID, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(agentrun.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(agentrun.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(agentrun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(agentrun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(agentrun.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(agentrun.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(agentrun.FieldError, field.TypeJSON, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(agentrun.FieldError, field.TypeJSON)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(agentrun.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(agentrun.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CancelRequested(); ok {
		_spec.SetField(agentrun.FieldCancelRequested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentrun.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ToolExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.ToolExecutionsTable,
			Columns: []string{agentrun.ToolExecutionsColumn},
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
			Table:   agentrun.ToolExecutionsTable,
			Columns: []string{agentrun.ToolExecutionsColumn},
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
			Table:   agentrun.ToolExecutionsTable,
			Columns: []string{agentrun.ToolExecutionsColumn},
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
			Table:   agentrun.UsageLogsTable,
			Columns: []string{agentrun.UsageLogsColumn},
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
			Table:   agentrun.UsageLogsTable,
			Columns: []string{agentrun.UsageLogsColumn},
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
			Table:   agentrun.UsageLogsTable,
			Columns: []string{agentrun.UsageLogsColumn},
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
	_node = &AgentRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
