// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/wuyifannppp/poco-agent/ent/userskillinstall"
)

// UserSkillInstallCreate is the builder for creating a UserSkillInstall entity.
type UserSkillInstallCreate struct {
	config
	mutation *UserSkillInstallMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *UserSkillInstallCreate) SetUserID(v string) *UserSkillInstallCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetPresetID sets the "preset_id" field.
func (_c *UserSkillInstallCreate) SetPresetID(v int) *UserSkillInstallCreate {
	_c.mutation.SetPresetID(v)
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *UserSkillInstallCreate) SetEnabled(v bool) *UserSkillInstallCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *UserSkillInstallCreate) SetNillableEnabled(v *bool) *UserSkillInstallCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UserSkillInstallCreate) SetCreatedAt(v time.Time) *UserSkillInstallCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UserSkillInstallCreate) SetNillableCreatedAt(v *time.Time) *UserSkillInstallCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UserSkillInstallCreate) SetID(v string) *UserSkillInstallCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the UserSkillInstallMutation object of the builder.
func (_c *UserSkillInstallCreate) Mutation() *UserSkillInstallMutation {
	return _c.mutation
}

// Save creates the UserSkillInstall in the database.
func (_c *UserSkillInstallCreate) Save(ctx context.Context) (*UserSkillInstall, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserSkillInstallCreate) SaveX(ctx context.Context) *UserSkillInstall {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserSkillInstallCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserSkillInstallCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserSkillInstallCreate) defaults() {
	if _, ok := _c.mutation.Enabled(); !ok {
		v := userskillinstall.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := userskillinstall.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserSkillInstallCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UserSkillInstall.user_id"`)}
	}
	if _, ok := _c.mutation.PresetID(); !ok {
		return &ValidationError{Name: "preset_id", err: errors.New(`ent: missing required field "UserSkillInstall.preset_id"`)}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "UserSkillInstall.enabled"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UserSkillInstall.created_at"`)}
	}
	return nil
}

func (_c *UserSkillInstallCreate) sqlSave(ctx context.Context) (*UserSkillInstall, error) {
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
			return nil, fmt.Errorf("unexpected UserSkillInstall.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UserSkillInstallCreate) createSpec() (*UserSkillInstall, *sqlgraph.CreateSpec) {
	var (
		_node = &UserSkillInstall{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(userskillinstall.Table, sqlgraph.NewFieldSpec(userskillinstall.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(userskillinstall.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.PresetID(); ok {
		_spec.SetField(userskillinstall.FieldPresetID, field.TypeInt, value)
		_node.PresetID = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(userskillinstall.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(userskillinstall.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// UserSkillInstallCreateBulk is the builder for creating many UserSkillInstall entities in bulk.
type UserSkillInstallCreateBulk struct {
	config
	err      error
	builders []*UserSkillInstallCreate
}

// Save creates the UserSkillInstall entities in the database.
func (_c *UserSkillInstallCreateBulk) Save(ctx context.Context) ([]*UserSkillInstall, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UserSkillInstall, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserSkillInstallMutation)
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
func (_c *UserSkillInstallCreateBulk) SaveX(ctx context.Context) []*UserSkillInstall {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserSkillInstallCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserSkillInstallCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
