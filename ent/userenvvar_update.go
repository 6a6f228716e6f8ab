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
	"github.com/wuyifannppp/poco-agent/ent/userenvvar"
)

// UserEnvVarUpdate is the builder for updating UserEnvVar entities.
type UserEnvVarUpdate struct {
	config
	hooks    []Hook
	mutation *UserEnvVarMutation
}

// Where appends a list predicates to the UserEnvVarUpdate builder.
func (_u *UserEnvVarUpdate) Where(ps ...predicate.UserEnvVar) *UserEnvVarUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *UserEnvVarUpdate) SetName(v string) *UserEnvVarUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *UserEnvVarUpdate) SetNillableName(v *string) *UserEnvVarUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *UserEnvVarUpdate) SetValue(v string) *UserEnvVarUpdate {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *UserEnvVarUpdate) SetNillableValue(v *string) *UserEnvVarUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserEnvVarUpdate) SetUpdatedAt(v time.Time) *UserEnvVarUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UserEnvVarMutation object of the builder.
func (_u *UserEnvVarUpdate) Mutation() *UserEnvVarMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserEnvVarUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserEnvVarUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserEnvVarUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserEnvVarUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserEnvVarUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := userenvvar.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *UserEnvVarUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(userenvvar.Table, userenvvar.Columns, sqlgraph.NewFieldSpec(userenvvar.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(userenvvar.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(userenvvar.FieldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(userenvvar.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userenvvar.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserEnvVarUpdateOne is the builder for updating a single UserEnvVar entity.
type UserEnvVarUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserEnvVarMutation
}

// SetName sets the "name" field.
func (_u *UserEnvVarUpdateOne) SetName(v string) *UserEnvVarUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *UserEnvVarUpdateOne) SetNillableName(v *string) *UserEnvVarUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *UserEnvVarUpdateOne) SetValue(v string) *UserEnvVarUpdateOne {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *UserEnvVarUpdateOne) SetNillableValue(v *string) *UserEnvVarUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserEnvVarUpdateOne) SetUpdatedAt(v time.Time) *UserEnvVarUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UserEnvVarMutation object of the builder.
func (_u *UserEnvVarUpdateOne) Mutation() *UserEnvVarMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserEnvVarUpdate builder.
func (_u *UserEnvVarUpdateOne) Where(ps ...predicate.UserEnvVar) *UserEnvVarUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserEnvVarUpdateOne) Select(field string, fields ...string) *UserEnvVarUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserEnvVar entity.
func (_u *UserEnvVarUpdateOne) Save(ctx context.Context) (*UserEnvVar, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserEnvVarUpdateOne) SaveX(ctx context.Context) *UserEnvVar {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserEnvVarUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserEnvVarUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserEnvVarUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := userenvvar.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *UserEnvVarUpdateOne) sqlSave(ctx context.Context) (_node *UserEnvVar, err error) {
	_spec := sqlgraph.NewUpdateSpec(userenvvar.Table, userenvvar.Columns, sqlgraph.NewFieldSpec(userenvvar.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserEnvVar.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userenvvar.FieldID)
		for _, f := range fields {
			if !userenvvar.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != userenvvar.FieldID {
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
		_spec.SetField(userenvvar.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(userenvvar.FieldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(userenvvar.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &UserEnvVar{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userenvvar.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
