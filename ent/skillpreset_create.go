// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/wuyifannppp/poco-agent/ent/skillpreset"
)

// SkillPresetCreate is the builder for creating a SkillPreset entity.
type SkillPresetCreate struct {
	config
	mutation *SkillPresetMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *SkillPresetCreate) SetName(v string) *SkillPresetCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetEntries sets the "entries" field.
func (_c *SkillPresetCreate) SetEntries(v map[string]interface{}) *SkillPresetCreate {
	_c.mutation.SetEntries(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SkillPresetCreate) SetCreatedAt(v time.Time) *SkillPresetCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SkillPresetCreate) SetNillableCreatedAt(v *time.Time) *SkillPresetCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SkillPresetCreate) SetID(v int) *SkillPresetCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SkillPresetMutation object of the builder.
func (_c *SkillPresetCreate) Mutation() *SkillPresetMutation {
	return _c.mutation
}

// Save creates the SkillPreset in the database.
func (_c *SkillPresetCreate) Save(ctx context.Context) (*SkillPreset, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SkillPresetCreate) SaveX(ctx context.Context) *SkillPreset {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SkillPresetCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SkillPresetCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SkillPresetCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := skillpreset.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SkillPresetCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "SkillPreset.name"`)}
	}
	if _, ok := _c.mutation.Entries(); !ok {
		return &ValidationError{Name: "entries", err: errors.New(`ent: missing required field "SkillPreset.entries"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SkillPreset.created_at"`)}
	}
	return nil
}

func (_c *SkillPresetCreate) sqlSave(ctx context.Context) (*SkillPreset, error) {
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
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int(id)
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SkillPresetCreate) createSpec() (*SkillPreset, *sqlgraph.CreateSpec) {
	var (
		_node = &SkillPreset{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(skillpreset.Table, sqlgraph.NewFieldSpec(skillpreset.FieldID, field.TypeInt))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(skillpreset.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Entries(); ok {
		_spec.SetField(skillpreset.FieldEntries, field.TypeJSON, value)
		_node.Entries = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(skillpreset.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// SkillPresetCreateBulk is the builder for creating many SkillPreset entities in bulk.
type SkillPresetCreateBulk struct {
	config
	err      error
	builders []*SkillPresetCreate
}

// Save creates the SkillPreset entities in the database.
func (_c *SkillPresetCreateBulk) Save(ctx context.Context) ([]*SkillPreset, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SkillPreset, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SkillPresetMutation)
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
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *SkillPresetCreateBulk) SaveX(ctx context.Context) []*SkillPreset {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SkillPresetCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SkillPresetCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
