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
	"github.com/sokochat/sokochat/ent/conversationcontext"
)

// ConversationContextCreate is the builder for creating a ConversationContext entity.
type ConversationContextCreate struct {
	config
	mutation *ConversationContextMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *ConversationContextCreate) SetTenantID(v string) *ConversationContextCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetConversationID sets the "conversation_id" field.
func (_c *ConversationContextCreate) SetConversationID(v string) *ConversationContextCreate {
	_c.mutation.SetConversationID(v)
	return _c
}

// SetLastCustomerMessage sets the "last_customer_message" field.
func (_c *ConversationContextCreate) SetLastCustomerMessage(v string) *ConversationContextCreate {
	_c.mutation.SetLastCustomerMessage(v)
	return _c
}

// SetNillableLastCustomerMessage sets the "last_customer_message" field if the given value is not nil.
func (_c *ConversationContextCreate) SetNillableLastCustomerMessage(v *string) *ConversationContextCreate {
	if v != nil {
		_c.SetLastCustomerMessage(*v)
	}
	return _c
}

// SetLastBotMessage sets the "last_bot_message" field.
func (_c *ConversationContextCreate) SetLastBotMessage(v string) *ConversationContextCreate {
	_c.mutation.SetLastBotMessage(v)
	return _c
}

// SetNillableLastBotMessage sets the "last_bot_message" field if the given value is not nil.
func (_c *ConversationContextCreate) SetNillableLastBotMessage(v *string) *ConversationContextCreate {
	if v != nil {
		_c.SetLastBotMessage(*v)
	}
	return _c
}

// SetCheckoutState sets the "checkout_state" field.
func (_c *ConversationContextCreate) SetCheckoutState(v conversationcontext.CheckoutState) *ConversationContextCreate {
	_c.mutation.SetCheckoutState(v)
	return _c
}

// SetNillableCheckoutState sets the "checkout_state" field if the given value is not nil.
func (_c *ConversationContextCreate) SetNillableCheckoutState(v *conversationcontext.CheckoutState) *ConversationContextCreate {
	if v != nil {
		_c.SetCheckoutState(*v)
	}
	return _c
}

// SetSelectedVariantID sets the "selected_variant_id" field.
func (_c *ConversationContextCreate) SetSelectedVariantID(v string) *ConversationContextCreate {
	_c.mutation.SetSelectedVariantID(v)
	return _c
}

// SetNillableSelectedVariantID sets the "selected_variant_id" field if the given value is not nil.
func (_c *ConversationContextCreate) SetNillableSelectedVariantID(v *string) *ConversationContextCreate {
	if v != nil {
		_c.SetSelectedVariantID(*v)
	}
	return _c
}

// SetSelectedQuantity sets the "selected_quantity" field.
func (_c *ConversationContextCreate) SetSelectedQuantity(v int) *ConversationContextCreate {
	_c.mutation.SetSelectedQuantity(v)
	return _c
}

// SetNillableSelectedQuantity sets the "selected_quantity" field if the given value is not nil.
func (_c *ConversationContextCreate) SetNillableSelectedQuantity(v *int) *ConversationContextCreate {
	if v != nil {
		_c.SetSelectedQuantity(*v)
	}
	return _c
}

// SetLockedLanguage sets the "locked_language" field.
func (_c *ConversationContextCreate) SetLockedLanguage(v string) *ConversationContextCreate {
	_c.mutation.SetLockedLanguage(v)
	return _c
}

// SetNillableLockedLanguage sets the "locked_language" field if the given value is not nil.
func (_c *ConversationContextCreate) SetNillableLockedLanguage(v *string) *ConversationContextCreate {
	if v != nil {
		_c.SetLockedLanguage(*v)
	}
	return _c
}

// SetLowConfidenceTurns sets the "low_confidence_turns" field.
func (_c *ConversationContextCreate) SetLowConfidenceTurns(v int) *ConversationContextCreate {
	_c.mutation.SetLowConfidenceTurns(v)
	return _c
}

// SetNillableLowConfidenceTurns sets the "low_confidence_turns" field if the given value is not nil.
func (_c *ConversationContextCreate) SetNillableLowConfidenceTurns(v *int) *ConversationContextCreate {
	if v != nil {
		_c.SetLowConfidenceTurns(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *ConversationContextCreate) SetMetadata(v map[string]interface{}) *ConversationContextCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ConversationContextCreate) SetUpdatedAt(v time.Time) *ConversationContextCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ConversationContextCreate) SetNillableUpdatedAt(v *time.Time) *ConversationContextCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ConversationContextCreate) SetID(v string) *ConversationContextCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetConversation sets the "conversation" edge to the Conversation entity.
func (_c *ConversationContextCreate) SetConversation(v *Conversation) *ConversationContextCreate {
	return _c.SetConversationID(v.ID)
}

// Mutation returns the ConversationContextMutation object of the builder.
func (_c *ConversationContextCreate) Mutation() *ConversationContextMutation {
	return _c.mutation
}

// Save creates the ConversationContext in the database.
func (_c *ConversationContextCreate) Save(ctx context.Context) (*ConversationContext, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConversationContextCreate) SaveX(ctx context.Context) *ConversationContext {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversationContextCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversationContextCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConversationContextCreate) defaults() {
	if _, ok := _c.mutation.CheckoutState(); !ok {
		v := conversationcontext.DefaultCheckoutState
		_c.mutation.SetCheckoutState(v)
	}
	if _, ok := _c.mutation.LowConfidenceTurns(); !ok {
		v := conversationcontext.DefaultLowConfidenceTurns
		_c.mutation.SetLowConfidenceTurns(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := conversationcontext.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConversationContextCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "ConversationContext.tenant_id"`)}
	}
	if _, ok := _c.mutation.ConversationID(); !ok {
		return &ValidationError{Name: "conversation_id", err: errors.New(`ent: missing required field "ConversationContext.conversation_id"`)}
	}
	if _, ok := _c.mutation.CheckoutState(); !ok {
		return &ValidationError{Name: "checkout_state", err: errors.New(`ent: missing required field "ConversationContext.checkout_state"`)}
	}
	if v, ok := _c.mutation.CheckoutState(); ok {
		if err := conversationcontext.CheckoutStateValidator(v); err != nil {
			return &ValidationError{Name: "checkout_state", err: fmt.Errorf(`ent: validator failed for field "ConversationContext.checkout_state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LowConfidenceTurns(); !ok {
		return &ValidationError{Name: "low_confidence_turns", err: errors.New(`ent: missing required field "ConversationContext.low_confidence_turns"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ConversationContext.updated_at"`)}
	}
	if len(_c.mutation.ConversationIDs()) == 0 {
		return &ValidationError{Name: "conversation", err: errors.New(`ent: missing required edge "ConversationContext.conversation"`)}
	}
	return nil
}

func (_c *ConversationContextCreate) sqlSave(ctx context.Context) (*ConversationContext, error) {
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
			return nil, fmt.Errorf("unexpected ConversationContext.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ConversationContextCreate) createSpec() (*ConversationContext, *sqlgraph.CreateSpec) {
	var (
		_node = &ConversationContext{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(conversationcontext.Table, sqlgraph.NewFieldSpec(conversationcontext.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(conversationcontext.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.LastCustomerMessage(); ok {
		_spec.SetField(conversationcontext.FieldLastCustomerMessage, field.TypeString, value)
		_node.LastCustomerMessage = value
	}
	if value, ok := _c.mutation.LastBotMessage(); ok {
		_spec.SetField(conversationcontext.FieldLastBotMessage, field.TypeString, value)
		_node.LastBotMessage = value
	}
	if value, ok := _c.mutation.CheckoutState(); ok {
		_spec.SetField(conversationcontext.FieldCheckoutState, field.TypeEnum, value)
		_node.CheckoutState = value
	}
	if value, ok := _c.mutation.SelectedVariantID(); ok {
		_spec.SetField(conversationcontext.FieldSelectedVariantID, field.TypeString, value)
		_node.SelectedVariantID = &value
	}
	if value, ok := _c.mutation.SelectedQuantity(); ok {
		_spec.SetField(conversationcontext.FieldSelectedQuantity, field.TypeInt, value)
		_node.SelectedQuantity = &value
	}
	if value, ok := _c.mutation.LockedLanguage(); ok {
		_spec.SetField(conversationcontext.FieldLockedLanguage, field.TypeString, value)
		_node.LockedLanguage = value
	}
	if value, ok := _c.mutation.LowConfidenceTurns(); ok {
		_spec.SetField(conversationcontext.FieldLowConfidenceTurns, field.TypeInt, value)
		_node.LowConfidenceTurns = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(conversationcontext.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(conversationcontext.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ConversationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   conversationcontext.ConversationTable,
			Columns: []string{conversationcontext.ConversationColumn},
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

// ConversationContextCreateBulk is the builder for creating many ConversationContext entities in bulk.
type ConversationContextCreateBulk struct {
	config
	err      error
	builders []*ConversationContextCreate
}

// Save creates the ConversationContext entities in the database.
func (_c *ConversationContextCreateBulk) Save(ctx context.Context) ([]*ConversationContext, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ConversationContext, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConversationContextMutation)
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
func (_c *ConversationContextCreateBulk) SaveX(ctx context.Context) []*ConversationContext {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversationContextCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversationContextCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
