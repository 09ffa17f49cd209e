// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sokochat/sokochat/ent/appointment"
	"github.com/sokochat/sokochat/ent/conversation"
	"github.com/sokochat/sokochat/ent/customer"
	"github.com/sokochat/sokochat/ent/order"
	"github.com/sokochat/sokochat/ent/tenant"
)

// CustomerCreate is the builder for creating a Customer entity.
type CustomerCreate struct {
	config
	mutation *CustomerMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *CustomerCreate) SetTenantID(v string) *CustomerCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetPhoneE164 sets the "phone_e164" field.
func (_c *CustomerCreate) SetPhoneE164(v string) *CustomerCreate {
	_c.mutation.SetPhoneE164(v)
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *CustomerCreate) SetDisplayName(v string) *CustomerCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_c *CustomerCreate) SetNillableDisplayName(v *string) *CustomerCreate {
	if v != nil {
		_c.SetDisplayName(*v)
	}
	return _c
}

// SetTags sets the "tags" field.
func (_c *CustomerCreate) SetTags(v []string) *CustomerCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetLanguage sets the "language" field.
func (_c *CustomerCreate) SetLanguage(v string) *CustomerCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_c *CustomerCreate) SetNillableLanguage(v *string) *CustomerCreate {
	if v != nil {
		_c.SetLanguage(*v)
	}
	return _c
}

// SetTimezone sets the "timezone" field.
func (_c *CustomerCreate) SetTimezone(v string) *CustomerCreate {
	_c.mutation.SetTimezone(v)
	return _c
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_c *CustomerCreate) SetNillableTimezone(v *string) *CustomerCreate {
	if v != nil {
		_c.SetTimezone(*v)
	}
	return _c
}

// SetPromotionalMessages sets the "promotional_messages" field.
func (_c *CustomerCreate) SetPromotionalMessages(v bool) *CustomerCreate {
	_c.mutation.SetPromotionalMessages(v)
	return _c
}

// SetNillablePromotionalMessages sets the "promotional_messages" field if the given value is not nil.
func (_c *CustomerCreate) SetNillablePromotionalMessages(v *bool) *CustomerCreate {
	if v != nil {
		_c.SetPromotionalMessages(*v)
	}
	return _c
}

// SetReminderMessages sets the "reminder_messages" field.
func (_c *CustomerCreate) SetReminderMessages(v bool) *CustomerCreate {
	_c.mutation.SetReminderMessages(v)
	return _c
}

// SetNillableReminderMessages sets the "reminder_messages" field if the given value is not nil.
func (_c *CustomerCreate) SetNillableReminderMessages(v *bool) *CustomerCreate {
	if v != nil {
		_c.SetReminderMessages(*v)
	}
	return _c
}

// SetTransactionalMessages sets the "transactional_messages" field.
func (_c *CustomerCreate) SetTransactionalMessages(v bool) *CustomerCreate {
	_c.mutation.SetTransactionalMessages(v)
	return _c
}

// SetNillableTransactionalMessages sets the "transactional_messages" field if the given value is not nil.
func (_c *CustomerCreate) SetNillableTransactionalMessages(v *bool) *CustomerCreate {
	if v != nil {
		_c.SetTransactionalMessages(*v)
	}
	return _c
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_c *CustomerCreate) SetLastActivityAt(v time.Time) *CustomerCreate {
	_c.mutation.SetLastActivityAt(v)
	return _c
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_c *CustomerCreate) SetNillableLastActivityAt(v *time.Time) *CustomerCreate {
	if v != nil {
		_c.SetLastActivityAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CustomerCreate) SetCreatedAt(v time.Time) *CustomerCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CustomerCreate) SetNillableCreatedAt(v *time.Time) *CustomerCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CustomerCreate) SetUpdatedAt(v time.Time) *CustomerCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CustomerCreate) SetNillableUpdatedAt(v *time.Time) *CustomerCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *CustomerCreate) SetDeletedAt(v time.Time) *CustomerCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *CustomerCreate) SetNillableDeletedAt(v *time.Time) *CustomerCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CustomerCreate) SetID(v string) *CustomerCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTenant sets the "tenant" edge to the Tenant entity.
func (_c *CustomerCreate) SetTenant(v *Tenant) *CustomerCreate {
	return _c.SetTenantID(v.ID)
}

// AddConversationIDs adds the "conversations" edge to the Conversation entity by IDs.
func (_c *CustomerCreate) AddConversationIDs(ids ...string) *CustomerCreate {
	_c.mutation.AddConversationIDs(ids...)
	return _c
}

// AddConversations adds the "conversations" edges to the Conversation entity.
func (_c *CustomerCreate) AddConversations(v ...*Conversation) *CustomerCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddConversationIDs(ids...)
}

// AddOrderIDs adds the "orders" edge to the Order entity by IDs.
func (_c *CustomerCreate) AddOrderIDs(ids ...string) *CustomerCreate {
	_c.mutation.AddOrderIDs(ids...)
	return _c
}

// AddOrders adds the "orders" edges to the Order entity.
func (_c *CustomerCreate) AddOrders(v ...*Order) *CustomerCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddOrderIDs(ids...)
}

// AddAppointmentIDs adds the "appointments" edge to the Appointment entity by IDs.
func (_c *CustomerCreate) AddAppointmentIDs(ids ...string) *CustomerCreate {
	_c.mutation.AddAppointmentIDs(ids...)
	return _c
}

// AddAppointments adds the "appointments" edges to the Appointment entity.
func (_c *CustomerCreate) AddAppointments(v ...*Appointment) *CustomerCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAppointmentIDs(ids...)
}

// Mutation returns the CustomerMutation object of the builder.
func (_c *CustomerCreate) Mutation() *CustomerMutation {
	return _c.mutation
}

// Save creates the Customer in the database.
func (_c *CustomerCreate) Save(ctx context.Context) (*Customer, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CustomerCreate) SaveX(ctx context.Context) *Customer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CustomerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CustomerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CustomerCreate) defaults() {
	if _, ok := _c.mutation.PromotionalMessages(); !ok {
		v := customer.DefaultPromotionalMessages
		_c.mutation.SetPromotionalMessages(v)
	}
	if _, ok := _c.mutation.ReminderMessages(); !ok {
		v := customer.DefaultReminderMessages
		_c.mutation.SetReminderMessages(v)
	}
	if _, ok := _c.mutation.TransactionalMessages(); !ok {
		v := customer.DefaultTransactionalMessages
		_c.mutation.SetTransactionalMessages(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := customer.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := customer.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CustomerCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "Customer.tenant_id"`)}
	}
	if _, ok := _c.mutation.PhoneE164(); !ok {
		return &ValidationError{Name: "phone_e164", err: errors.New(`ent: missing required field "Customer.phone_e164"`)}
	}
	if _, ok := _c.mutation.PromotionalMessages(); !ok {
		return &ValidationError{Name: "promotional_messages", err: errors.New(`ent: missing required field "Customer.promotional_messages"`)}
	}
	if _, ok := _c.mutation.ReminderMessages(); !ok {
		return &ValidationError{Name: "reminder_messages", err: errors.New(`ent: missing required field "Customer.reminder_messages"`)}
	}
	if _, ok := _c.mutation.TransactionalMessages(); !ok {
		return &ValidationError{Name: "transactional_messages", err: errors.New(`ent: missing required field "Customer.transactional_messages"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Customer.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Customer.updated_at"`)}
	}
	if len(_c.mutation.TenantIDs()) == 0 {
		return &ValidationError{Name: "tenant", err: errors.New(`ent: missing required edge "Customer.tenant"`)}
	}
	return nil
}

func (_c *CustomerCreate) sqlSave(ctx context.Context) (*Customer, error) {
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
			return nil, fmt.Errorf("unexpected Customer.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CustomerCreate) createSpec() (*Customer, *sqlgraph.CreateSpec) {
	var (
		_node = &Customer{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(customer.Table, sqlgraph.NewFieldSpec(customer.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.PhoneE164(); ok {
		_spec.SetField(customer.FieldPhoneE164, field.TypeString, value)
		_node.PhoneE164 = value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(customer.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(customer.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(customer.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.Timezone(); ok {
		_spec.SetField(customer.FieldTimezone, field.TypeString, value)
		_node.Timezone = value
	}
	if value, ok := _c.mutation.PromotionalMessages(); ok {
		_spec.SetField(customer.FieldPromotionalMessages, field.TypeBool, value)
		_node.PromotionalMessages = value
	}
	if value, ok := _c.mutation.ReminderMessages(); ok {
		_spec.SetField(customer.FieldReminderMessages, field.TypeBool, value)
		_node.ReminderMessages = value
	}
	if value, ok := _c.mutation.TransactionalMessages(); ok {
		_spec.SetField(customer.FieldTransactionalMessages, field.TypeBool, value)
		_node.TransactionalMessages = value
	}
	if value, ok := _c.mutation.LastActivityAt(); ok {
		_spec.SetField(customer.FieldLastActivityAt, field.TypeTime, value)
		_node.LastActivityAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(customer.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(customer.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(customer.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.TenantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   customer.TenantTable,
			Columns: []string{customer.TenantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tenant.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TenantID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ConversationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   customer.ConversationsTable,
			Columns: []string{customer.ConversationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.OrdersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   customer.OrdersTable,
			Columns: []string{customer.OrdersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(order.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AppointmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   customer.AppointmentsTable,
			Columns: []string{customer.AppointmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CustomerCreateBulk is the builder for creating many Customer entities in bulk.
type CustomerCreateBulk struct {
	config
	err      error
	builders []*CustomerCreate
}

// Save creates the Customer entities in the database.
func (_c *CustomerCreateBulk) Save(ctx context.Context) ([]*Customer, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Customer, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CustomerMutation)
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
func (_c *CustomerCreateBulk) SaveX(ctx context.Context) []*Customer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CustomerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CustomerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
