// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/wuyifannppp/poco-agent/ent/predicate"
	"github.com/wuyifannppp/poco-agent/ent/userskillinstall"
)

// UserSkillInstallUpdate is the builder for updating UserSkillInstall entities.
type UserSkillInstallUpdate struct {
	config
	hooks    []Hook
	mutation *UserSkillInstallMutation
}

// Where appends a list predicates to the UserSkillInstallUpdate builder.
func (_u *UserSkillInstallUpdate) Where(ps ...predicate.UserSkillInstall) *UserSkillInstallUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *UserSkillInstallUpdate) SetEnabled(v bool) *UserSkillInstallUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *UserSkillInstallUpdate) SetNillableEnabled(v *bool) *UserSkillInstallUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// Mutation returns the UserSkillInstallMutation object of the builder.
func (_u *UserSkillInstallUpdate) Mutation() *UserSkillInstallMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserSkillInstallUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserSkillInstallUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserSkillInstallUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserSkillInstallUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *UserSkillInstallUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(userskillinstall.Table, userskillinstall.Columns, sqlgraph.NewFieldSpec(userskillinstall.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(userskillinstall.FieldEnabled, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userskillinstall.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserSkillInstallUpdateOne is the builder for updating a single UserSkillInstall entity.
type UserSkillInstallUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserSkillInstallMutation
}

// SetEnabled sets the "enabled" field.
func (_u *UserSkillInstallUpdateOne) SetEnabled(v bool) *UserSkillInstallUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *UserSkillInstallUpdateOne) SetNillableEnabled(v *bool) *UserSkillInstallUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// Mutation returns the UserSkillInstallMutation object of the builder.
func (_u *UserSkillInstallUpdateOne) Mutation() *UserSkillInstallMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserSkillInstallUpdate builder.
func (_u *UserSkillInstallUpdateOne) Where(ps ...predicate.UserSkillInstall) *UserSkillInstallUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserSkillInstallUpdateOne) Select(field string, fields ...string) *UserSkillInstallUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserSkillInstall entity.
func (_u *UserSkillInstallUpdateOne) Save(ctx context.Context) (*UserSkillInstall, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserSkillInstallUpdateOne) SaveX(ctx context.Context) *UserSkillInstall {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserSkillInstallUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserSkillInstallUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *UserSkillInstallUpdateOne) sqlSave(ctx context.Context) (_node *UserSkillInstall, err error) {
	_spec := sqlgraph.NewUpdateSpec(userskillinstall.Table, userskillinstall.Columns, sqlgraph.NewFieldSpec(userskillinstall.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserSkillInstall.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userskillinstall.FieldID)
		for _, f := range fields {
			if !userskillinstall.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != userskillinstall.FieldID {
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
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(userskillinstall.FieldEnabled, field.TypeBool, value)
	}
	_node = &UserSkillInstall{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userskillinstall.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
