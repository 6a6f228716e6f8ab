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
	"github.com/wuyifannppp/poco-agent/ent/predicate"
	"github.com/wuyifannppp/poco-agent/ent/usermcpconfig"
)

// UserMcpConfigUpdate is the builder for updating UserMcpConfig entities.
type UserMcpConfigUpdate struct {
	config
	hooks    []Hook
	mutation *UserMcpConfigMutation
}

// Where appends a list predicates to the UserMcpConfigUpdate builder.
func (_u *UserMcpConfigUpdate) Where(ps ...predicate.UserMcpConfig) *UserMcpConfigUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOverrides sets the "overrides" field.
func (_u *UserMcpConfigUpdate) SetOverrides(v map[string]interface{}) *UserMcpConfigUpdate {
	_u.mutation.SetOverrides(v)
	return _u
}

// ClearOverrides clears the value of the "overrides" field.
func (_u *UserMcpConfigUpdate) ClearOverrides() *UserMcpConfigUpdate {
	_u.mutation.ClearOverrides()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *UserMcpConfigUpdate) SetEnabled(v bool) *UserMcpConfigUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *UserMcpConfigUpdate) SetNillableEnabled(v *bool) *UserMcpConfigUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserMcpConfigUpdate) SetUpdatedAt(v time.Time) *UserMcpConfigUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UserMcpConfigMutation object of the builder.
func (_u *UserMcpConfigUpdate) Mutation() *UserMcpConfigMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserMcpConfigUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserMcpConfigUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserMcpConfigUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserMcpConfigUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserMcpConfigUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := usermcpconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *UserMcpConfigUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(usermcpconfig.Table, usermcpconfig.Columns, sqlgraph.NewFieldSpec(usermcpconfig.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Overrides(); ok {
		_spec.SetField(usermcpconfig.FieldOverrides, field.TypeJSON, value)
	}
	if _u.mutation.OverridesCleared() {
		_spec.ClearField(usermcpconfig.FieldOverrides, field.TypeJSON)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(usermcpconfig.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(usermcpconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usermcpconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserMcpConfigUpdateOne is the builder for updating a single UserMcpConfig entity.
type UserMcpConfigUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserMcpConfigMutation
}

// SetOverrides sets the "overrides" field.
func (_u *UserMcpConfigUpdateOne) SetOverrides(v map[string]interface{}) *UserMcpConfigUpdateOne {
	_u.mutation.SetOverrides(v)
	return _u
}

// ClearOverrides clears the value of the "overrides" field.
func (_u *UserMcpConfigUpdateOne) ClearOverrides() *UserMcpConfigUpdateOne {
	_u.mutation.ClearOverrides()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *UserMcpConfigUpdateOne) SetEnabled(v bool) *UserMcpConfigUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *UserMcpConfigUpdateOne) SetNillableEnabled(v *bool) *UserMcpConfigUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserMcpConfigUpdateOne) SetUpdatedAt(v time.Time) *UserMcpConfigUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UserMcpConfigMutation object of the builder.
func (_u *UserMcpConfigUpdateOne) Mutation() *UserMcpConfigMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserMcpConfigUpdate builder.
func (_u *UserMcpConfigUpdateOne) Where(ps ...predicate.UserMcpConfig) *UserMcpConfigUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserMcpConfigUpdateOne) Select(field string, fields ...string) *UserMcpConfigUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserMcpConfig entity.
func (_u *UserMcpConfigUpdateOne) Save(ctx context.Context) (*UserMcpConfig, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserMcpConfigUpdateOne) SaveX(ctx context.Context) *UserMcpConfig {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserMcpConfigUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserMcpConfigUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserMcpConfigUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := usermcpconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *UserMcpConfigUpdateOne) sqlSave(ctx context.Context) (_node *UserMcpConfig, err error) {
	_spec := sqlgraph.NewUpdateSpec(usermcpconfig.Table, usermcpconfig.Columns, sqlgraph.NewFieldSpec(usermcpconfig.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserMcpConfig.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, usermcpconfig.FieldID)
		for _, f := range fields {
			if !usermcpconfig.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != usermcpconfig.FieldID {
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
	if value, ok := _u.mutation.Overrides(); ok {
		_spec.SetField(usermcpconfig.FieldOverrides, field.TypeJSON, value)
	}
	if _u.mutation.OverridesCleared() {
		_spec.ClearField(usermcpconfig.FieldOverrides, field.TypeJSON)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(usermcpconfig.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(usermcpconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &UserMcpConfig{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usermcpconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
