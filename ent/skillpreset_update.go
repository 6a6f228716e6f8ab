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
	"github.com/wuyifannppp/poco-agent/ent/skillpreset"
)

// SkillPresetUpdate is the builder for updating SkillPreset entities.
type SkillPresetUpdate struct {
	config
	hooks    []Hook
	mutation *SkillPresetMutation
}

// Where appends a list predicates to the SkillPresetUpdate builder.
func (_u *SkillPresetUpdate) Where(ps ...predicate.SkillPreset) *SkillPresetUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *SkillPresetUpdate) SetName(v string) *SkillPresetUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SkillPresetUpdate) SetNillableName(v *string) *SkillPresetUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEntries sets the "entries" field.
func (_u *SkillPresetUpdate) SetEntries(v map[string]interface{}) *SkillPresetUpdate {
	_u.mutation.SetEntries(v)
	return _u
}

// Mutation returns the SkillPresetMutation object of the builder.
func (_u *SkillPresetUpdate) Mutation() *SkillPresetMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SkillPresetUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SkillPresetUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SkillPresetUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SkillPresetUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SkillPresetUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(skillpreset.Table, skillpreset.Columns, sqlgraph.NewFieldSpec(skillpreset.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(skillpreset.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Entries(); ok {
		_spec.SetField(skillpreset.FieldEntries, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{skillpreset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SkillPresetUpdateOne is the builder for updating a single SkillPreset entity.
type SkillPresetUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SkillPresetMutation
}

// SetName sets the "name" field.
func (_u *SkillPresetUpdateOne) SetName(v string) *SkillPresetUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SkillPresetUpdateOne) SetNillableName(v *string) *SkillPresetUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEntries sets the "entries" field.
func (_u *SkillPresetUpdateOne) SetEntries(v map[string]interface{}) *SkillPresetUpdateOne {
	_u.mutation.SetEntries(v)
	return _u
}

// Mutation returns the SkillPresetMutation object of the builder.
func (_u *SkillPresetUpdateOne) Mutation() *SkillPresetMutation {
	return _u.mutation
}

// Where appends a list predicates to the SkillPresetUpdate builder.
func (_u *SkillPresetUpdateOne) Where(ps ...predicate.SkillPreset) *SkillPresetUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SkillPresetUpdateOne) Select(field string, fields ...string) *SkillPresetUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SkillPreset entity.
func (_u *SkillPresetUpdateOne) Save(ctx context.Context) (*SkillPreset, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SkillPresetUpdateOne) SaveX(ctx context.Context) *SkillPreset {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SkillPresetUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SkillPresetUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SkillPresetUpdateOne) sqlSave(ctx context.Context) (_node *SkillPreset, err error) {
	_spec := sqlgraph.NewUpdateSpec(skillpreset.Table, skillpreset.Columns, sqlgraph.NewFieldSpec(skillpreset.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SkillPreset.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, skillpreset.FieldID)
		for _, f := range fields {
			if !skillpreset.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != skillpreset.FieldID {
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
		_spec.SetField(skillpreset.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Entries(); ok {
		_spec.SetField(skillpreset.FieldEntries, field.TypeJSON, value)
	}
	_node = &SkillPreset{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{skillpreset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
