// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/wuyifannppp/poco-agent/ent/usermcpconfig"
)

// UserMcpConfigCreate is the builder for creating a UserMcpConfig entity.
type UserMcpConfigCreate struct {
	config
	mutation *UserMcpConfigMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *UserMcpConfigCreate) SetUserID(v string) *UserMcpConfigCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetPresetID sets the "preset_id" field.
func (_c *UserMcpConfigCreate) SetPresetID(v int) *UserMcpConfigCreate {
	_c.mutation.SetPresetID(v)
	return _c
}

// SetOverrides sets the "overrides" field.
func (_c *UserMcpConfigCreate) SetOverrides(v map[string]interface{}) *UserMcpConfigCreate {
	_c.mutation.SetOverrides(v)
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *UserMcpConfigCreate) SetEnabled(v bool) *UserMcpConfigCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *UserMcpConfigCreate) SetNillableEnabled(v *bool) *UserMcpConfigCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UserMcpConfigCreate) SetCreatedAt(v time.Time) *UserMcpConfigCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UserMcpConfigCreate) SetNillableCreatedAt(v *time.Time) *UserMcpConfigCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UserMcpConfigCreate) SetUpdatedAt(v time.Time) *UserMcpConfigCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UserMcpConfigCreate) SetNillableUpdatedAt(v *time.Time) *UserMcpConfigCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UserMcpConfigCreate) SetID(v string) *UserMcpConfigCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the UserMcpConfigMutation object of the builder.
func (_c *UserMcpConfigCreate) Mutation() *UserMcpConfigMutation {
	return _c.mutation
}

// Save creates the UserMcpConfig in the database.
func (_c *UserMcpConfigCreate) Save(ctx context.Context) (*UserMcpConfig, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserMcpConfigCreate) SaveX(ctx context.Context) *UserMcpConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserMcpConfigCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserMcpConfigCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserMcpConfigCreate) defaults() {
	if _, ok := _c.mutation.Enabled(); !ok {
		v := usermcpconfig.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := usermcpconfig.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := usermcpconfig.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserMcpConfigCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UserMcpConfig.user_id"`)}
	}
	if _, ok := _c.mutation.PresetID(); !ok {
		return &ValidationError{Name: "preset_id", err: errors.New(`ent: missing required field "UserMcpConfig.preset_id"`)}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "UserMcpConfig.enabled"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UserMcpConfig.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "UserMcpConfig.updated_at"`)}
	}
	return nil
}

func (_c *UserMcpConfigCreate) sqlSave(ctx context.Context) (*UserMcpConfig, error) {
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
			return nil, fmt.Errorf("unexpected UserMcpConfig.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UserMcpConfigCreate) createSpec() (*UserMcpConfig, *sqlgraph.CreateSpec) {
	var (
		_node = &UserMcpConfig{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(usermcpconfig.Table, sqlgraph.NewFieldSpec(usermcpconfig.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(usermcpconfig.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.PresetID(); ok {
		_spec.SetField(usermcpconfig.FieldPresetID, field.TypeInt, value)
		_node.PresetID = value
	}
	if value, ok := _c.mutation.Overrides(); ok {
		_spec.SetField(usermcpconfig.FieldOverrides, field.TypeJSON, value)
		_node.Overrides = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(usermcpconfig.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(usermcpconfig.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(usermcpconfig.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// UserMcpConfigCreateBulk is the builder for creating many UserMcpConfig entities in bulk.
type UserMcpConfigCreateBulk struct {
	config
	err      error
	builders []*UserMcpConfigCreate
}

// Save creates the UserMcpConfig entities in the database.
func (_c *UserMcpConfigCreateBulk) Save(ctx context.Context) ([]*UserMcpConfig, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UserMcpConfig, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserMcpConfigMutation)
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
func (_c *UserMcpConfigCreateBulk) SaveX(ctx context.Context) []*UserMcpConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserMcpConfigCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserMcpConfigCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
