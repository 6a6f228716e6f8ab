// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/wuyifannppp/poco-agent/ent/agentmessage"
	"github.com/wuyifannppp/poco-agent/ent/agentsession"
)

// AgentMessageCreate is the builder for creating a AgentMessage entity.
type AgentMessageCreate struct {
	config
	mutation *AgentMessageMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *AgentMessageCreate) SetSessionID(v string) *AgentMessageCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *AgentMessageCreate) SetRole(v agentmessage.Role) *AgentMessageCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *AgentMessageCreate) SetContent(v map[string]interface{}) *AgentMessageCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetTextPreview sets the "text_preview" field.
func (_c *AgentMessageCreate) SetTextPreview(v string) *AgentMessageCreate {
	_c.mutation.SetTextPreview(v)
	return _c
}

// SetNillableTextPreview sets the "text_preview" field if the given value is not nil.
func (_c *AgentMessageCreate) SetNillableTextPreview(v *string) *AgentMessageCreate {
	if v != nil {
		_c.SetTextPreview(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentMessageCreate) SetCreatedAt(v time.Time) *AgentMessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentMessageCreate) SetNillableCreatedAt(v *time.Time) *AgentMessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentMessageCreate) SetID(v int) *AgentMessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the AgentSession entity.
func (_c *AgentMessageCreate) SetSession(v *AgentSession) *AgentMessageCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the AgentMessageMutation object of the builder.
func (_c *AgentMessageCreate) Mutation() *AgentMessageMutation {
	return _c.mutation
}

// Save creates the AgentMessage in the database.
func (_c *AgentMessageCreate) Save(ctx context.Context) (*AgentMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentMessageCreate) SaveX(ctx context.Context) *AgentMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentMessageCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentmessage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentMessageCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AgentMessage.session_id"`)}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "AgentMessage.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := agentmessage.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "AgentMessage.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "AgentMessage.content"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentMessage.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "AgentMessage.session"`)}
	}
	return nil
}

func (_c *AgentMessageCreate) sqlSave(ctx context.Context) (*AgentMessage, error) {
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

func (_c *AgentMessageCreate) createSpec() (*AgentMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentmessage.Table, sqlgraph.NewFieldSpec(agentmessage.FieldID, field.TypeInt))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(agentmessage.FieldRole, field.TypeEnum, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(agentmessage.FieldContent, field.TypeJSON, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.TextPreview(); ok {
		_spec.SetField(agentmessage.FieldTextPreview, field.TypeString, value)
		_node.TextPreview = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentmessage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentmessage.SessionTable,
			Columns: []string{agentmessage.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AgentMessageCreateBulk is the builder for creating many AgentMessage entities in bulk.
type AgentMessageCreateBulk struct {
	config
	err      error
	builders []*AgentMessageCreate
}

// Save creates the AgentMessage entities in the database.
func (_c *AgentMessageCreateBulk) Save(ctx context.Context) ([]*AgentMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentMessageMutation)
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
func (_c *AgentMessageCreateBulk) SaveX(ctx context.Context) []*AgentMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
