// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sokochat/sokochat/ent/conversation"
	"github.com/sokochat/sokochat/ent/referencecontext"
	"github.com/sokochat/sokochat/ent/schema"
)

// ReferenceContextCreate is the builder for creating a ReferenceContext entity.
type ReferenceContextCreate struct {
	config
	mutation *ReferenceContextMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *ReferenceContextCreate) SetTenantID(v string) *ReferenceContextCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetConversationID sets the "conversation_id" field.
func (_c *ReferenceContextCreate) SetConversationID(v string) *ReferenceContextCreate {
	_c.mutation.SetConversationID(v)
	return _c
}

// SetListType sets the "list_type" field.
func (_c *ReferenceContextCreate) SetListType(v string) *ReferenceContextCreate {
	_c.mutation.SetListType(v)
	return _c
}

// SetItems sets the "items" field.
func (_c *ReferenceContextCreate) SetItems(v []schema.ReferenceItem) *ReferenceContextCreate {
	_c.mutation.SetItems(v)
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *ReferenceContextCreate) SetExpiresAt(v time.Time) *ReferenceContextCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReferenceContextCreate) SetCreatedAt(v time.Time) *ReferenceContextCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReferenceContextCreate) SetNillableCreatedAt(v *time.Time) *ReferenceContextCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReferenceContextCreate) SetID(v string) *ReferenceContextCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetConversation sets the "conversation" edge to the Conversation entity.
func (_c *ReferenceContextCreate) SetConversation(v *Conversation) *ReferenceContextCreate {
	return _c.SetConversationID(v.ID)
}

// Mutation returns the ReferenceContextMutation object of the builder.
func (_c *ReferenceContextCreate) Mutation() *ReferenceContextMutation {
	return _c.mutation
}

// Save creates the ReferenceContext in the database.
func (_c *ReferenceContextCreate) Save(ctx context.Context) (*ReferenceContext, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReferenceContextCreate) SaveX(ctx context.Context) *ReferenceContext {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReferenceContextCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReferenceContextCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReferenceContextCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := referencecontext.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReferenceContextCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "ReferenceContext.tenant_id"`)}
	}
	if _, ok := _c.mutation.ConversationID(); !ok {
		return &ValidationError{Name: "conversation_id", err: errors.New(`ent: missing required field "ReferenceContext.conversation_id"`)}
	}
	if _, ok := _c.mutation.ListType(); !ok {
		return &ValidationError{Name: "list_type", err: errors.New(`ent: missing required field "ReferenceContext.list_type"`)}
	}
	if _, ok := _c.mutation.Items(); !ok {
		return &ValidationError{Name: "items", err: errors.New(`ent: missing required field "ReferenceContext.items"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "ReferenceContext.expires_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ReferenceContext.created_at"`)}
	}
	if len(_c.mutation.ConversationIDs()) == 0 {
		return &ValidationError{Name: "conversation", err: errors.New(`ent: missing required edge "ReferenceContext.conversation"`)}
	}
	return nil
}

func (_c *ReferenceContextCreate) sqlSave(ctx context.Context) (*ReferenceContext, error) {
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
			return nil, fmt.Errorf("unexpected ReferenceContext.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReferenceContextCreate) createSpec() (*ReferenceContext, *sqlgraph.CreateSpec) {
	var (
		_node = &ReferenceContext{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(referencecontext.Table, sqlgraph.NewFieldSpec(referencecontext.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(referencecontext.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.ListType(); ok {
		_spec.SetField(referencecontext.FieldListType, field.TypeString, value)
		_node.ListType = value
	}
	if value, ok := _c.mutation.Items(); ok {
		_spec.SetField(referencecontext.FieldItems, field.TypeJSON, value)
		_node.Items = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(referencecontext.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(referencecontext.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ConversationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   referencecontext.ConversationTable,
			Columns: []string{referencecontext.ConversationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ConversationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ReferenceContextCreateBulk is the builder for creating many ReferenceContext entities in bulk.
type ReferenceContextCreateBulk struct {
	config
	err      error
	builders []*ReferenceContextCreate
}

// Save creates the ReferenceContext entities in the database.
func (_c *ReferenceContextCreateBulk) Save(ctx context.Context) ([]*ReferenceContext, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReferenceContext, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReferenceContextMutation)
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
func (_c *ReferenceContextCreateBulk) SaveX(ctx context.Context) []*ReferenceContext {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReferenceContextCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReferenceContextCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
