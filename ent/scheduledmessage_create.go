// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sokochat/sokochat/ent/scheduledmessage"
	"github.com/sokochat/sokochat/ent/tenant"
)

// ScheduledMessageCreate is the builder for creating a ScheduledMessage entity.
type ScheduledMessageCreate struct {
	config
	mutation *ScheduledMessageMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *ScheduledMessageCreate) SetTenantID(v string) *ScheduledMessageCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetCustomerID sets the "customer_id" field.
func (_c *ScheduledMessageCreate) SetCustomerID(v string) *ScheduledMessageCreate {
	_c.mutation.SetCustomerID(v)
	return _c
}

// SetNillableCustomerID sets the "customer_id" field if the given value is not nil.
func (_c *ScheduledMessageCreate) SetNillableCustomerID(v *string) *ScheduledMessageCreate {
	if v != nil {
		_c.SetCustomerID(*v)
	}
	return _c
}

// SetRecipientCriteria sets the "recipient_criteria" field.
func (_c *ScheduledMessageCreate) SetRecipientCriteria(v map[string]interface{}) *ScheduledMessageCreate {
	_c.mutation.SetRecipientCriteria(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *ScheduledMessageCreate) SetContent(v string) *ScheduledMessageCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_c *ScheduledMessageCreate) SetNillableContent(v *string) *ScheduledMessageCreate {
	if v != nil {
		_c.SetContent(*v)
	}
	return _c
}

// SetTemplateID sets the "template_id" field.
func (_c *ScheduledMessageCreate) SetTemplateID(v string) *ScheduledMessageCreate {
	_c.mutation.SetTemplateID(v)
	return _c
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_c *ScheduledMessageCreate) SetNillableTemplateID(v *string) *ScheduledMessageCreate {
	if v != nil {
		_c.SetTemplateID(*v)
	}
	return _c
}

// SetTemplateContext sets the "template_context" field.
func (_c *ScheduledMessageCreate) SetTemplateContext(v map[string]string) *ScheduledMessageCreate {
	_c.mutation.SetTemplateContext(v)
	return _c
}

// SetMessageType sets the "message_type" field.
func (_c *ScheduledMessageCreate) SetMessageType(v scheduledmessage.MessageType) *ScheduledMessageCreate {
	_c.mutation.SetMessageType(v)
	return _c
}

// SetNillableMessageType sets the "message_type" field if the given value is not nil.
func (_c *ScheduledMessageCreate) SetNillableMessageType(v *scheduledmessage.MessageType) *ScheduledMessageCreate {
	if v != nil {
		_c.SetMessageType(*v)
	}
	return _c
}

// SetScheduledAt sets the "scheduled_at" field.
func (_c *ScheduledMessageCreate) SetScheduledAt(v time.Time) *ScheduledMessageCreate {
	_c.mutation.SetScheduledAt(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ScheduledMessageCreate) SetStatus(v scheduledmessage.Status) *ScheduledMessageCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ScheduledMessageCreate) SetNillableStatus(v *scheduledmessage.Status) *ScheduledMessageCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSentMessageID sets the "sent_message_id" field.
func (_c *ScheduledMessageCreate) SetSentMessageID(v string) *ScheduledMessageCreate {
	_c.mutation.SetSentMessageID(v)
	return _c
}

// SetNillableSentMessageID sets the "sent_message_id" field if the given value is not nil.
func (_c *ScheduledMessageCreate) SetNillableSentMessageID(v *string) *ScheduledMessageCreate {
	if v != nil {
		_c.SetSentMessageID(*v)
	}
	return _c
}

// SetFailureReason sets the "failure_reason" field.
func (_c *ScheduledMessageCreate) SetFailureReason(v string) *ScheduledMessageCreate {
	_c.mutation.SetFailureReason(v)
	return _c
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_c *ScheduledMessageCreate) SetNillableFailureReason(v *string) *ScheduledMessageCreate {
	if v != nil {
		_c.SetFailureReason(*v)
	}
	return _c
}

// SetAppointmentID sets the "appointment_id" field.
func (_c *ScheduledMessageCreate) SetAppointmentID(v string) *ScheduledMessageCreate {
	_c.mutation.SetAppointmentID(v)
	return _c
}

// SetNillableAppointmentID sets the "appointment_id" field if the given value is not nil.
func (_c *ScheduledMessageCreate) SetNillableAppointmentID(v *string) *ScheduledMessageCreate {
	if v != nil {
		_c.SetAppointmentID(*v)
	}
	return _c
}

// SetClaimedBy sets the "claimed_by" field.
func (_c *ScheduledMessageCreate) SetClaimedBy(v string) *ScheduledMessageCreate {
	_c.mutation.SetClaimedBy(v)
	return _c
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_c *ScheduledMessageCreate) SetNillableClaimedBy(v *string) *ScheduledMessageCreate {
	if v != nil {
		_c.SetClaimedBy(*v)
	}
	return _c
}

// SetClaimedAt sets the "claimed_at" field.
func (_c *ScheduledMessageCreate) SetClaimedAt(v time.Time) *ScheduledMessageCreate {
	_c.mutation.SetClaimedAt(v)
	return _c
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_c *ScheduledMessageCreate) SetNillableClaimedAt(v *time.Time) *ScheduledMessageCreate {
	if v != nil {
		_c.SetClaimedAt(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *ScheduledMessageCreate) SetMetadata(v map[string]interface{}) *ScheduledMessageCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ScheduledMessageCreate) SetCreatedAt(v time.Time) *ScheduledMessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ScheduledMessageCreate) SetNillableCreatedAt(v *time.Time) *ScheduledMessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ScheduledMessageCreate) SetUpdatedAt(v time.Time) *ScheduledMessageCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ScheduledMessageCreate) SetNillableUpdatedAt(v *time.Time) *ScheduledMessageCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ScheduledMessageCreate) SetID(v string) *ScheduledMessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTenant sets the "tenant" edge to the Tenant entity.
func (_c *ScheduledMessageCreate) SetTenant(v *Tenant) *ScheduledMessageCreate {
	return _c.SetTenantID(v.ID)
}

// Mutation returns the ScheduledMessageMutation object of the builder.
func (_c *ScheduledMessageCreate) Mutation() *ScheduledMessageMutation {
	return _c.mutation
}

// Save creates the ScheduledMessage in the database.
func (_c *ScheduledMessageCreate) Save(ctx context.Context) (*ScheduledMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScheduledMessageCreate) SaveX(ctx context.Context) *ScheduledMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduledMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduledMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScheduledMessageCreate) defaults() {
	if _, ok := _c.mutation.MessageType(); !ok {
		v := scheduledmessage.DefaultMessageType
		_c.mutation.SetMessageType(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := scheduledmessage.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := scheduledmessage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := scheduledmessage.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScheduledMessageCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "ScheduledMessage.tenant_id"`)}
	}
	if _, ok := _c.mutation.MessageType(); !ok {
		return &ValidationError{Name: "message_type", err: errors.New(`ent: missing required field "ScheduledMessage.message_type"`)}
	}
	if v, ok := _c.mutation.MessageType(); ok {
		if err := scheduledmessage.MessageTypeValidator(v); err != nil {
			return &ValidationError{Name: "message_type", err: fmt.Errorf(`ent: validator failed for field "ScheduledMessage.message_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScheduledAt(); !ok {
		return &ValidationError{Name: "scheduled_at", err: errors.New(`ent: missing required field "ScheduledMessage.scheduled_at"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ScheduledMessage.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := scheduledmessage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScheduledMessage.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ScheduledMessage.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ScheduledMessage.updated_at"`)}
	}
	if len(_c.mutation.TenantIDs()) == 0 {
		return &ValidationError{Name: "tenant", err: errors.New(`ent: missing required edge "ScheduledMessage.tenant"`)}
	}
	return nil
}

func (_c *ScheduledMessageCreate) sqlSave(ctx context.Context) (*ScheduledMessage, error) {
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
			return nil, fmt.Errorf("unexpected ScheduledMessage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScheduledMessageCreate) createSpec() (*ScheduledMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &ScheduledMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scheduledmessage.Table, sqlgraph.NewFieldSpec(scheduledmessage.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CustomerID(); ok {
		_spec.SetField(scheduledmessage.FieldCustomerID, field.TypeString, value)
		_node.CustomerID = &value
	}
	if value, ok := _c.mutation.RecipientCriteria(); ok {
		_spec.SetField(scheduledmessage.FieldRecipientCriteria, field.TypeJSON, value)
		_node.RecipientCriteria = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(scheduledmessage.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.TemplateID(); ok {
		_spec.SetField(scheduledmessage.FieldTemplateID, field.TypeString, value)
		_node.TemplateID = &value
	}
	if value, ok := _c.mutation.TemplateContext(); ok {
		_spec.SetField(scheduledmessage.FieldTemplateContext, field.TypeJSON, value)
		_node.TemplateContext = value
	}
	if value, ok := _c.mutation.MessageType(); ok {
		_spec.SetField(scheduledmessage.FieldMessageType, field.TypeEnum, value)
		_node.MessageType = value
	}
	if value, ok := _c.mutation.ScheduledAt(); ok {
		_spec.SetField(scheduledmessage.FieldScheduledAt, field.TypeTime, value)
		_node.ScheduledAt = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(scheduledmessage.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.SentMessageID(); ok {
		_spec.SetField(scheduledmessage.FieldSentMessageID, field.TypeString, value)
		_node.SentMessageID = &value
	}
	if value, ok := _c.mutation.FailureReason(); ok {
		_spec.SetField(scheduledmessage.FieldFailureReason, field.TypeString, value)
		_node.FailureReason = &value
	}
	if value, ok := _c.mutation.AppointmentID(); ok {
		_spec.SetField(scheduledmessage.FieldAppointmentID, field.TypeString, value)
		_node.AppointmentID = &value
	}
	if value, ok := _c.mutation.ClaimedBy(); ok {
		_spec.SetField(scheduledmessage.FieldClaimedBy, field.TypeString, value)
		_node.ClaimedBy = &value
	}
	if value, ok := _c.mutation.ClaimedAt(); ok {
		_spec.SetField(scheduledmessage.FieldClaimedAt, field.TypeTime, value)
		_node.ClaimedAt = &value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(scheduledmessage.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(scheduledmessage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(scheduledmessage.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TenantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scheduledmessage.TenantTable,
			Columns: []string{scheduledmessage.TenantColumn},
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
	return _node, _spec
}

// ScheduledMessageCreateBulk is the builder for creating many ScheduledMessage entities in bulk.
type ScheduledMessageCreateBulk struct {
	config
	err      error
	builders []*ScheduledMessageCreate
}

// Save creates the ScheduledMessage entities in the database.
func (_c *ScheduledMessageCreateBulk) Save(ctx context.Context) ([]*ScheduledMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScheduledMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScheduledMessageMutation)
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
func (_c *ScheduledMessageCreateBulk) SaveX(ctx context.Context) []*ScheduledMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduledMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduledMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
