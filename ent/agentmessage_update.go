// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/wuyifannppp/poco-agent/ent/agentmessage"
	"github.com/wuyifannppp/poco-agent/ent/predicate"
)

// AgentMessageUpdate is the builder for updating AgentMessage entities.
type AgentMessageUpdate struct {
	config
	hooks    []Hook
	mutation *AgentMessageMutation
}

// Where appends a list predicates to the AgentMessageUpdate builder.
func (_u *AgentMessageUpdate) Where(ps ...predicate.AgentMessage) *AgentMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRole sets the "role" field.
func (_u *AgentMessageUpdate) SetRole(v agentmessage.Role) *AgentMessageUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *AgentMessageUpdate) SetNillableRole(v *agentmessage.Role) *AgentMessageUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *AgentMessageUpdate) SetContent(v map[string]interface{}) *AgentMessageUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetTextPreview sets the "text_preview" field.
func (_u *AgentMessageUpdate) SetTextPreview(v string) *AgentMessageUpdate {
	_u.mutation.SetTextPreview(v)
	return _u
}

// SetNillableTextPreview sets the "text_preview" field if the given value is not nil.
func (_u *AgentMessageUpdate) SetNillableTextPreview(v *string) *AgentMessageUpdate {
	if v != nil {
		_u.SetTextPreview(*v)
	}
	return _u
}

// ClearTextPreview clears the value of the "text_preview" field.
func (_u *AgentMessageUpdate) ClearTextPreview() *AgentMessageUpdate {
	_u.mutation.ClearTextPreview()
	return _u
}

// Mutation returns the AgentMessageMutation object of the builder.
func (_u *AgentMessageUpdate) Mutation() *AgentMessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentMessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentMessageUpdate) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := agentmessage.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "AgentMessage.role": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentMessage.session"`)
	}
	return nil
}

func (_u *AgentMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentmessage.Table, agentmessage.Columns, sqlgraph.NewFieldSpec(agentmessage.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(agentmessage.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(agentmessage.FieldContent, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.TextPreview(); ok {
		_spec.SetField(agentmessage.FieldTextPreview, field.TypeString, value)
	}
	if _u.mutation.TextPreviewCleared() {
		_spec.ClearField(agentmessage.FieldTextPreview, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentMessageUpdateOne is the builder for updating a single AgentMessage entity.
type AgentMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentMessageMutation
}

// SetRole sets the "role" field.
func (_u *AgentMessageUpdateOne) SetRole(v agentmessage.Role) *AgentMessageUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *AgentMessageUpdateOne) SetNillableRole(v *agentmessage.Role) *AgentMessageUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *AgentMessageUpdateOne) SetContent(v map[string]interface{}) *AgentMessageUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetTextPreview sets the "text_preview" field.
func (_u *AgentMessageUpdateOne) SetTextPreview(v string) *AgentMessageUpdateOne {
	_u.mutation.SetTextPreview(v)
	return _u
}

// SetNillableTextPreview sets the "text_preview" field if the given value is not nil.
func (_u *AgentMessageUpdateOne) SetNillableTextPreview(v *string) *AgentMessageUpdateOne {
	if v != nil {
		_u.SetTextPreview(*v)
	}
	return _u
}

// ClearTextPreview clears the value of the "text_preview" field.
func (_u *AgentMessageUpdateOne) ClearTextPreview() *AgentMessageUpdateOne {
	_u.mutation.ClearTextPreview()
	return _u
}

// Mutation returns the AgentMessageMutation object of the builder.
func (_u *AgentMessageUpdateOne) Mutation() *AgentMessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentMessageUpdate builder.
func (_u *AgentMessageUpdateOne) Where(ps ...predicate.AgentMessage) *AgentMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentMessageUpdateOne) Select(field string, fields ...string) *AgentMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentMessage entity.
func (_u *AgentMessageUpdateOne) Save(ctx context.Context) (*AgentMessage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentMessageUpdateOne) SaveX(ctx context.Context) *AgentMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentMessageUpdateOne) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := agentmessage.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "AgentMessage.role": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentMessage.session"`)
	}
	return nil
}

func (_u *AgentMessageUpdateOne) sqlSave(ctx context.Context) (_node *AgentMessage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentmessage.Table, agentmessage.Columns, sqlgraph.NewFieldSpec(agentmessage.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentmessage.FieldID)
		for _, f := range fields {
			if !agentmessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentmessage.FieldID {
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
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(agentmessage.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(agentmessage.FieldContent, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.TextPreview(); ok {
		_spec.SetField(agentmessage.FieldTextPreview, field.TypeString, value)
	}
	if _u.mutation.TextPreviewCleared() {
		_spec.ClearField(agentmessage.FieldTextPreview, field.TypeString)
	}
	_node = &AgentMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
