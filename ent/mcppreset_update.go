// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/wuyifannppp/poco-agent/ent/mcppreset"
	"github.com/wuyifannppp/poco-agent/ent/predicate"
)

// McpPresetUpdate is the builder for updating McpPreset entities.
type McpPresetUpdate struct {
	config
	hooks    []Hook
	mutation *McpPresetMutation
}

// Where appends a list predicates to the McpPresetUpdate builder.
func (_u *McpPresetUpdate) Where(ps ...predicate.McpPreset) *McpPresetUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *McpPresetUpdate) SetName(v string) *McpPresetUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *McpPresetUpdate) SetNillableName(v *string) *McpPresetUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetConfig sets the "config" field.
func (_u *McpPresetUpdate) SetConfig(v map[string]interface{}) *McpPresetUpdate {
	_u.mutation.SetConfig(v)
	return _u
}

// Mutation returns the McpPresetMutation object of the builder.
func (_u *McpPresetUpdate) Mutation() *McpPresetMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *McpPresetUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *McpPresetUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *McpPresetUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *McpPresetUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *McpPresetUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(mcppreset.Table, mcppreset.Columns, sqlgraph.NewFieldSpec(mcppreset.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(mcppreset.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(mcppreset.FieldConfig, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mcppreset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// McpPresetUpdateOne is the builder for updating a single McpPreset entity.
type McpPresetUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *McpPresetMutation
}

// SetName sets the "name" field.
func (_u *McpPresetUpdateOne) SetName(v string) *McpPresetUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *McpPresetUpdateOne) SetNillableName(v *string) *McpPresetUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetConfig sets the "config" field.
func (_u *McpPresetUpdateOne) SetConfig(v map[string]interface{}) *McpPresetUpdateOne {
	_u.mutation.SetConfig(v)
	return _u
}

// Mutation returns the McpPresetMutation object of the builder.
func (_u *McpPresetUpdateOne) Mutation() *McpPresetMutation {
	return _u.mutation
}

// Where appends a list predicates to the McpPresetUpdate builder.
func (_u *McpPresetUpdateOne) Where(ps ...predicate.McpPreset) *McpPresetUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *McpPresetUpdateOne) Select(field string, fields ...string) *McpPresetUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated McpPreset entity.
func (_u *McpPresetUpdateOne) Save(ctx context.Context) (*McpPreset, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *McpPresetUpdateOne) SaveX(ctx context.Context) *McpPreset {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *McpPresetUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *McpPresetUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *McpPresetUpdateOne) sqlSave(ctx context.Context) (_node *McpPreset, err error) {
	_spec := sqlgraph.NewUpdateSpec(mcppreset.Table, mcppreset.Columns, sqlgraph.NewFieldSpec(mcppreset.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "McpPreset.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mcppreset.FieldID)
		for _, f := range fields {
			if !mcppreset.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != mcppreset.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(mcppreset.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(mcppreset.FieldConfig, field.TypeJSON, value)
	}
	_node = &McpPreset{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mcppreset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
