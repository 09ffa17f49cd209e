// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sokochat/sokochat/ent/checkoutsession"
	"github.com/sokochat/sokochat/ent/conversation"
)

// CheckoutSessionCreate is the builder for creating a CheckoutSession entity.
type CheckoutSessionCreate struct {
	config
	mutation *CheckoutSessionMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *CheckoutSessionCreate) SetTenantID(v string) *CheckoutSessionCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetConversationID sets the "conversation_id" field.
func (_c *CheckoutSessionCreate) SetConversationID(v string) *CheckoutSessionCreate {
	_c.mutation.SetConversationID(v)
	return _c
}

// SetState sets the "state" field.
func (_c *CheckoutSessionCreate) SetState(v checkoutsession.State) *CheckoutSessionCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *CheckoutSessionCreate) SetNillableState(v *checkoutsession.State) *CheckoutSessionCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetVariantID sets the "variant_id" field.
func (_c *CheckoutSessionCreate) SetVariantID(v string) *CheckoutSessionCreate {
	_c.mutation.SetVariantID(v)
	return _c
}

// SetNillableVariantID sets the "variant_id" field if the given value is not nil.
func (_c *CheckoutSessionCreate) SetNillableVariantID(v *string) *CheckoutSessionCreate {
	if v != nil {
		_c.SetVariantID(*v)
	}
	return _c
}

// SetQuantity sets the "quantity" field.
func (_c *CheckoutSessionCreate) SetQuantity(v int) *CheckoutSessionCreate {
	_c.mutation.SetQuantity(v)
	return _c
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_c *CheckoutSessionCreate) SetNillableQuantity(v *int) *CheckoutSessionCreate {
	if v != nil {
		_c.SetQuantity(*v)
	}
	return _c
}

// SetOrderID sets the "order_id" field.
func (_c *CheckoutSessionCreate) SetOrderID(v string) *CheckoutSessionCreate {
	_c.mutation.SetOrderID(v)
	return _c
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (_c *CheckoutSessionCreate) SetNillableOrderID(v *string) *CheckoutSessionCreate {
	if v != nil {
		_c.SetOrderID(*v)
	}
	return _c
}

// SetPaymentRequestID sets the "payment_request_id" field.
func (_c *CheckoutSessionCreate) SetPaymentRequestID(v string) *CheckoutSessionCreate {
	_c.mutation.SetPaymentRequestID(v)
	return _c
}

// SetNillablePaymentRequestID sets the "payment_request_id" field if the given value is not nil.
func (_c *CheckoutSessionCreate) SetNillablePaymentRequestID(v *string) *CheckoutSessionCreate {
	if v != nil {
		_c.SetPaymentRequestID(*v)
	}
	return _c
}

// SetMessageCount sets the "message_count" field.
func (_c *CheckoutSessionCreate) SetMessageCount(v int) *CheckoutSessionCreate {
	_c.mutation.SetMessageCount(v)
	return _c
}

// SetNillableMessageCount sets the "message_count" field if the given value is not nil.
func (_c *CheckoutSessionCreate) SetNillableMessageCount(v *int) *CheckoutSessionCreate {
	if v != nil {
		_c.SetMessageCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CheckoutSessionCreate) SetCreatedAt(v time.Time) *CheckoutSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CheckoutSessionCreate) SetNillableCreatedAt(v *time.Time) *CheckoutSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CheckoutSessionCreate) SetUpdatedAt(v time.Time) *CheckoutSessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CheckoutSessionCreate) SetNillableUpdatedAt(v *time.Time) *CheckoutSessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CheckoutSessionCreate) SetID(v string) *CheckoutSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetConversation sets the "conversation" edge to the Conversation entity.
func (_c *CheckoutSessionCreate) SetConversation(v *Conversation) *CheckoutSessionCreate {
	return _c.SetConversationID(v.ID)
}

// Mutation returns the CheckoutSessionMutation object of the builder.
func (_c *CheckoutSessionCreate) Mutation() *CheckoutSessionMutation {
	return _c.mutation
}

// Save creates the CheckoutSession in the database.
func (_c *CheckoutSessionCreate) Save(ctx context.Context) (*CheckoutSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CheckoutSessionCreate) SaveX(ctx context.Context) *CheckoutSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CheckoutSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CheckoutSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CheckoutSessionCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := checkoutsession.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.MessageCount(); !ok {
		v := checkoutsession.DefaultMessageCount
		_c.mutation.SetMessageCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := checkoutsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := checkoutsession.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CheckoutSessionCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "CheckoutSession.tenant_id"`)}
	}
	if _, ok := _c.mutation.ConversationID(); !ok {
		return &ValidationError{Name: "conversation_id", err: errors.New(`ent: missing required field "CheckoutSession.conversation_id"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "CheckoutSession.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := checkoutsession.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "CheckoutSession.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MessageCount(); !ok {
		return &ValidationError{Name: "message_count", err: errors.New(`ent: missing required field "CheckoutSession.message_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CheckoutSession.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CheckoutSession.updated_at"`)}
	}
	if len(_c.mutation.ConversationIDs()) == 0 {
		return &ValidationError{Name: "conversation", err: errors.New(`ent: missing required edge "CheckoutSession.conversation"`)}
	}
	return nil
}

func (_c *CheckoutSessionCreate) sqlSave(ctx context.Context) (*CheckoutSession, error) {
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
			return nil, fmt.Errorf("unexpected CheckoutSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CheckoutSessionCreate) createSpec() (*CheckoutSession, *sqlgraph.CreateSpec) {
	var (
		_node = &CheckoutSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(checkoutsession.Table, sqlgraph.NewFieldSpec(checkoutsession.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(checkoutsession.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(checkoutsession.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.VariantID(); ok {
		_spec.SetField(checkoutsession.FieldVariantID, field.TypeString, value)
		_node.VariantID = &value
	}
	if value, ok := _c.mutation.Quantity(); ok {
		_spec.SetField(checkoutsession.FieldQuantity, field.TypeInt, value)
		_node.Quantity = &value
	}
	if value, ok := _c.mutation.OrderID(); ok {
		_spec.SetField(checkoutsession.FieldOrderID, field.TypeString, value)
		_node.OrderID = &value
	}
	if value, ok := _c.mutation.PaymentRequestID(); ok {
		_spec.SetField(checkoutsession.FieldPaymentRequestID, field.TypeString, value)
		_node.PaymentRequestID = &value
	}
	if value, ok := _c.mutation.MessageCount(); ok {
		_spec.SetField(checkoutsession.FieldMessageCount, field.TypeInt, value)
		_node.MessageCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(checkoutsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(checkoutsession.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ConversationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   checkoutsession.ConversationTable,
			Columns: []string{checkoutsession.ConversationColumn},
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

// CheckoutSessionCreateBulk is the builder for creating many CheckoutSession entities in bulk.
type CheckoutSessionCreateBulk struct {
	config
	err      error
	builders []*CheckoutSessionCreate
}

// Save creates the CheckoutSession entities in the database.
func (_c *CheckoutSessionCreateBulk) Save(ctx context.Context) ([]*CheckoutSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CheckoutSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CheckoutSessionMutation)
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
func (_c *CheckoutSessionCreateBulk) SaveX(ctx context.Context) []*CheckoutSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CheckoutSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CheckoutSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
