// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sokochat/sokochat/ent/predicate"
	"github.com/sokochat/sokochat/ent/scheduledmessage"
)

// ScheduledMessageUpdate is the builder for updating ScheduledMessage entities.
type ScheduledMessageUpdate struct {
	config
	hooks    []Hook
	mutation *ScheduledMessageMutation
}

// Where appends a list predicates to the ScheduledMessageUpdate builder.
func (_u *ScheduledMessageUpdate) Where(ps ...predicate.ScheduledMessage) *ScheduledMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCustomerID sets the "customer_id" field.
func (_u *ScheduledMessageUpdate) SetCustomerID(v string) *ScheduledMessageUpdate {
	_u.mutation.SetCustomerID(v)
	return _u
}

// SetNillableCustomerID sets the "customer_id" field if the given value is not nil.
func (_u *ScheduledMessageUpdate) SetNillableCustomerID(v *string) *ScheduledMessageUpdate {
	if v != nil {
		_u.SetCustomerID(*v)
	}
	return _u
}

// ClearCustomerID clears the value of the "customer_id" field.
func (_u *ScheduledMessageUpdate) ClearCustomerID() *ScheduledMessageUpdate {
	_u.mutation.ClearCustomerID()
	return _u
}

// SetRecipientCriteria sets the "recipient_criteria" field.
func (_u *ScheduledMessageUpdate) SetRecipientCriteria(v map[string]interface{}) *ScheduledMessageUpdate {
	_u.mutation.SetRecipientCriteria(v)
	return _u
}

// ClearRecipientCriteria clears the value of the "recipient_criteria" field.
func (_u *ScheduledMessageUpdate) ClearRecipientCriteria() *ScheduledMessageUpdate {
	_u.mutation.ClearRecipientCriteria()
	return _u
}

// SetContent sets the "content" field.
func (_u *ScheduledMessageUpdate) SetContent(v string) *ScheduledMessageUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ScheduledMessageUpdate) SetNillableContent(v *string) *ScheduledMessageUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *ScheduledMessageUpdate) ClearContent() *ScheduledMessageUpdate {
	_u.mutation.ClearContent()
	return _u
}

// SetTemplateID sets the "template_id" field.
func (_u *ScheduledMessageUpdate) SetTemplateID(v string) *ScheduledMessageUpdate {
	_u.mutation.SetTemplateID(v)
	return _u
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_u *ScheduledMessageUpdate) SetNillableTemplateID(v *string) *ScheduledMessageUpdate {
	if v != nil {
		_u.SetTemplateID(*v)
	}
	return _u
}

// ClearTemplateID clears the value of the "template_id" field.
func (_u *ScheduledMessageUpdate) ClearTemplateID() *ScheduledMessageUpdate {
	_u.mutation.ClearTemplateID()
	return _u
}

// SetTemplateContext sets the "template_context" field.
func (_u *ScheduledMessageUpdate) SetTemplateContext(v map[string]string) *ScheduledMessageUpdate {
	_u.mutation.SetTemplateContext(v)
	return _u
}

// ClearTemplateContext clears the value of the "template_context" field.
func (_u *ScheduledMessageUpdate) ClearTemplateContext() *ScheduledMessageUpdate {
	_u.mutation.ClearTemplateContext()
	return _u
}

// SetMessageType sets the "message_type" field.
func (_u *ScheduledMessageUpdate) SetMessageType(v scheduledmessage.MessageType) *ScheduledMessageUpdate {
	_u.mutation.SetMessageType(v)
	return _u
}

// SetNillableMessageType sets the "message_type" field if the given value is not nil.
func (_u *ScheduledMessageUpdate) SetNillableMessageType(v *scheduledmessage.MessageType) *ScheduledMessageUpdate {
	if v != nil {
		_u.SetMessageType(*v)
	}
	return _u
}

// SetScheduledAt sets the "scheduled_at" field.
func (_u *ScheduledMessageUpdate) SetScheduledAt(v time.Time) *ScheduledMessageUpdate {
	_u.mutation.SetScheduledAt(v)
	return _u
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (_u *ScheduledMessageUpdate) SetNillableScheduledAt(v *time.Time) *ScheduledMessageUpdate {
	if v != nil {
		_u.SetScheduledAt(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScheduledMessageUpdate) SetStatus(v scheduledmessage.Status) *ScheduledMessageUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScheduledMessageUpdate) SetNillableStatus(v *scheduledmessage.Status) *ScheduledMessageUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSentMessageID sets the "sent_message_id" field.
func (_u *ScheduledMessageUpdate) SetSentMessageID(v string) *ScheduledMessageUpdate {
	_u.mutation.SetSentMessageID(v)
	return _u
}

// SetNillableSentMessageID sets the "sent_message_id" field if the given value is not nil.
func (_u *ScheduledMessageUpdate) SetNillableSentMessageID(v *string) *ScheduledMessageUpdate {
	if v != nil {
		_u.SetSentMessageID(*v)
	}
	return _u
}

// ClearSentMessageID clears the value of the "sent_message_id" field.
func (_u *ScheduledMessageUpdate) ClearSentMessageID() *ScheduledMessageUpdate {
	_u.mutation.ClearSentMessageID()
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *ScheduledMessageUpdate) SetFailureReason(v string) *ScheduledMessageUpdate {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *ScheduledMessageUpdate) SetNillableFailureReason(v *string) *ScheduledMessageUpdate {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *ScheduledMessageUpdate) ClearFailureReason() *ScheduledMessageUpdate {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetAppointmentID sets the "appointment_id" field.
func (_u *ScheduledMessageUpdate) SetAppointmentID(v string) *ScheduledMessageUpdate {
	_u.mutation.SetAppointmentID(v)
	return _u
}

// SetNillableAppointmentID sets the "appointment_id" field if the given value is not nil.
func (_u *ScheduledMessageUpdate) SetNillableAppointmentID(v *string) *ScheduledMessageUpdate {
	if v != nil {
		_u.SetAppointmentID(*v)
	}
	return _u
}

// ClearAppointmentID clears the value of the "appointment_id" field.
func (_u *ScheduledMessageUpdate) ClearAppointmentID() *ScheduledMessageUpdate {
	_u.mutation.ClearAppointmentID()
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *ScheduledMessageUpdate) SetClaimedBy(v string) *ScheduledMessageUpdate {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *ScheduledMessageUpdate) SetNillableClaimedBy(v *string) *ScheduledMessageUpdate {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *ScheduledMessageUpdate) ClearClaimedBy() *ScheduledMessageUpdate {
	_u.mutation.ClearClaimedBy()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *ScheduledMessageUpdate) SetClaimedAt(v time.Time) *ScheduledMessageUpdate {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *ScheduledMessageUpdate) SetNillableClaimedAt(v *time.Time) *ScheduledMessageUpdate {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *ScheduledMessageUpdate) ClearClaimedAt() *ScheduledMessageUpdate {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ScheduledMessageUpdate) SetMetadata(v map[string]interface{}) *ScheduledMessageUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ScheduledMessageUpdate) ClearMetadata() *ScheduledMessageUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScheduledMessageUpdate) SetUpdatedAt(v time.Time) *ScheduledMessageUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ScheduledMessageMutation object of the builder.
func (_u *ScheduledMessageUpdate) Mutation() *ScheduledMessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScheduledMessageUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduledMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScheduledMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduledMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScheduledMessageUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := scheduledmessage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScheduledMessageUpdate) check() error {
	if v, ok := _u.mutation.MessageType(); ok {
		if err := scheduledmessage.MessageTypeValidator(v); err != nil {
			return &ValidationError{Name: "message_type", err: fmt.Errorf(`ent: validator failed for field "ScheduledMessage.message_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := scheduledmessage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScheduledMessage.status": %w`, err)}
		}
	}
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ScheduledMessage.tenant"`)
	}
	return nil
}

func (_u *ScheduledMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scheduledmessage.Table, scheduledmessage.Columns, sqlgraph.NewFieldSpec(scheduledmessage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CustomerID(); ok {
		_spec.SetField(scheduledmessage.FieldCustomerID, field.TypeString, value)
	}
	if _u.mutation.CustomerIDCleared() {
		_spec.ClearField(scheduledmessage.FieldCustomerID, field.TypeString)
	}
	if value, ok := _u.mutation.RecipientCriteria(); ok {
		_spec.SetField(scheduledmessage.FieldRecipientCriteria, field.TypeJSON, value)
	}
	if _u.mutation.RecipientCriteriaCleared() {
		_spec.ClearField(scheduledmessage.FieldRecipientCriteria, field.TypeJSON)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(scheduledmessage.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(scheduledmessage.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.TemplateID(); ok {
		_spec.SetField(scheduledmessage.FieldTemplateID, field.TypeString, value)
	}
	if _u.mutation.TemplateIDCleared() {
		_spec.ClearField(scheduledmessage.FieldTemplateID, field.TypeString)
	}
	if value, ok := _u.mutation.TemplateContext(); ok {
		_spec.SetField(scheduledmessage.FieldTemplateContext, field.TypeJSON, value)
	}
	if _u.mutation.TemplateContextCleared() {
		_spec.ClearField(scheduledmessage.FieldTemplateContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.MessageType(); ok {
		_spec.SetField(scheduledmessage.FieldMessageType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScheduledAt(); ok {
		_spec.SetField(scheduledmessage.FieldScheduledAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scheduledmessage.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SentMessageID(); ok {
		_spec.SetField(scheduledmessage.FieldSentMessageID, field.TypeString, value)
	}
	if _u.mutation.SentMessageIDCleared() {
		_spec.ClearField(scheduledmessage.FieldSentMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(scheduledmessage.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(scheduledmessage.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.AppointmentID(); ok {
		_spec.SetField(scheduledmessage.FieldAppointmentID, field.TypeString, value)
	}
	if _u.mutation.AppointmentIDCleared() {
		_spec.ClearField(scheduledmessage.FieldAppointmentID, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(scheduledmessage.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(scheduledmessage.FieldClaimedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(scheduledmessage.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(scheduledmessage.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(scheduledmessage.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(scheduledmessage.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(scheduledmessage.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scheduledmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScheduledMessageUpdateOne is the builder for updating a single ScheduledMessage entity.
type ScheduledMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScheduledMessageMutation
}

// SetCustomerID sets the "customer_id" field.
func (_u *ScheduledMessageUpdateOne) SetCustomerID(v string) *ScheduledMessageUpdateOne {
	_u.mutation.SetCustomerID(v)
	return _u
}

// SetNillableCustomerID sets the "customer_id" field if the given value is not nil.
func (_u *ScheduledMessageUpdateOne) SetNillableCustomerID(v *string) *ScheduledMessageUpdateOne {
	if v != nil {
		_u.SetCustomerID(*v)
	}
	return _u
}

// ClearCustomerID clears the value of the "customer_id" field.
func (_u *ScheduledMessageUpdateOne) ClearCustomerID() *ScheduledMessageUpdateOne {
	_u.mutation.ClearCustomerID()
	return _u
}

// SetRecipientCriteria sets the "recipient_criteria" field.
func (_u *ScheduledMessageUpdateOne) SetRecipientCriteria(v map[string]interface{}) *ScheduledMessageUpdateOne {
	_u.mutation.SetRecipientCriteria(v)
	return _u
}

// ClearRecipientCriteria clears the value of the "recipient_criteria" field.
func (_u *ScheduledMessageUpdateOne) ClearRecipientCriteria() *ScheduledMessageUpdateOne {
	_u.mutation.ClearRecipientCriteria()
	return _u
}

// SetContent sets the "content" field.
func (_u *ScheduledMessageUpdateOne) SetContent(v string) *ScheduledMessageUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ScheduledMessageUpdateOne) SetNillableContent(v *string) *ScheduledMessageUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *ScheduledMessageUpdateOne) ClearContent() *ScheduledMessageUpdateOne {
	_u.mutation.ClearContent()
	return _u
}

// SetTemplateID sets the "template_id" field.
func (_u *ScheduledMessageUpdateOne) SetTemplateID(v string) *ScheduledMessageUpdateOne {
	_u.mutation.SetTemplateID(v)
	return _u
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_u *ScheduledMessageUpdateOne) SetNillableTemplateID(v *string) *ScheduledMessageUpdateOne {
	if v != nil {
		_u.SetTemplateID(*v)
	}
	return _u
}

// ClearTemplateID clears the value of the "template_id" field.
func (_u *ScheduledMessageUpdateOne) ClearTemplateID() *ScheduledMessageUpdateOne {
	_u.mutation.ClearTemplateID()
	return _u
}

// SetTemplateContext sets the "template_context" field.
func (_u *ScheduledMessageUpdateOne) SetTemplateContext(v map[string]string) *ScheduledMessageUpdateOne {
	_u.mutation.SetTemplateContext(v)
	return _u
}

// ClearTemplateContext clears the value of the "template_context" field.
func (_u *ScheduledMessageUpdateOne) ClearTemplateContext() *ScheduledMessageUpdateOne {
	_u.mutation.ClearTemplateContext()
	return _u
}

// SetMessageType sets the "message_type" field.
func (_u *ScheduledMessageUpdateOne) SetMessageType(v scheduledmessage.MessageType) *ScheduledMessageUpdateOne {
	_u.mutation.SetMessageType(v)
	return _u
}

// SetNillableMessageType sets the "message_type" field if the given value is not nil.
func (_u *ScheduledMessageUpdateOne) SetNillableMessageType(v *scheduledmessage.MessageType) *ScheduledMessageUpdateOne {
	if v != nil {
		_u.SetMessageType(*v)
	}
	return _u
}

// SetScheduledAt sets the "scheduled_at" field.
func (_u *ScheduledMessageUpdateOne) SetScheduledAt(v time.Time) *ScheduledMessageUpdateOne {
	_u.mutation.SetScheduledAt(v)
	return _u
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (_u *ScheduledMessageUpdateOne) SetNillableScheduledAt(v *time.Time) *ScheduledMessageUpdateOne {
	if v != nil {
		_u.SetScheduledAt(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScheduledMessageUpdateOne) SetStatus(v scheduledmessage.Status) *ScheduledMessageUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScheduledMessageUpdateOne) SetNillableStatus(v *scheduledmessage.Status) *ScheduledMessageUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSentMessageID sets the "sent_message_id" field.
func (_u *ScheduledMessageUpdateOne) SetSentMessageID(v string) *ScheduledMessageUpdateOne {
	_u.mutation.SetSentMessageID(v)
	return _u
}

// SetNillableSentMessageID sets the "sent_message_id" field if the given value is not nil.
func (_u *ScheduledMessageUpdateOne) SetNillableSentMessageID(v *string) *ScheduledMessageUpdateOne {
	if v != nil {
		_u.SetSentMessageID(*v)
	}
	return _u
}

// ClearSentMessageID clears the value of the "sent_message_id" field.
func (_u *ScheduledMessageUpdateOne) ClearSentMessageID() *ScheduledMessageUpdateOne {
	_u.mutation.ClearSentMessageID()
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *ScheduledMessageUpdateOne) SetFailureReason(v string) *ScheduledMessageUpdateOne {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *ScheduledMessageUpdateOne) SetNillableFailureReason(v *string) *ScheduledMessageUpdateOne {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *ScheduledMessageUpdateOne) ClearFailureReason() *ScheduledMessageUpdateOne {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetAppointmentID sets the "appointment_id" field.
func (_u *ScheduledMessageUpdateOne) SetAppointmentID(v string) *ScheduledMessageUpdateOne {
	_u.mutation.SetAppointmentID(v)
	return _u
}

// SetNillableAppointmentID sets the "appointment_id" field if the given value is not nil.
func (_u *ScheduledMessageUpdateOne) SetNillableAppointmentID(v *string) *ScheduledMessageUpdateOne {
	if v != nil {
		_u.SetAppointmentID(*v)
	}
	return _u
}

// ClearAppointmentID clears the value of the "appointment_id" field.
func (_u *ScheduledMessageUpdateOne) ClearAppointmentID() *ScheduledMessageUpdateOne {
	_u.mutation.ClearAppointmentID()
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *ScheduledMessageUpdateOne) SetClaimedBy(v string) *ScheduledMessageUpdateOne {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *ScheduledMessageUpdateOne) SetNillableClaimedBy(v *string) *ScheduledMessageUpdateOne {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *ScheduledMessageUpdateOne) ClearClaimedBy() *ScheduledMessageUpdateOne {
	_u.mutation.ClearClaimedBy()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *ScheduledMessageUpdateOne) SetClaimedAt(v time.Time) *ScheduledMessageUpdateOne {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *ScheduledMessageUpdateOne) SetNillableClaimedAt(v *time.Time) *ScheduledMessageUpdateOne {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *ScheduledMessageUpdateOne) ClearClaimedAt() *ScheduledMessageUpdateOne {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ScheduledMessageUpdateOne) SetMetadata(v map[string]interface{}) *ScheduledMessageUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ScheduledMessageUpdateOne) ClearMetadata() *ScheduledMessageUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScheduledMessageUpdateOne) SetUpdatedAt(v time.Time) *ScheduledMessageUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ScheduledMessageMutation object of the builder.
func (_u *ScheduledMessageUpdateOne) Mutation() *ScheduledMessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScheduledMessageUpdate builder.
func (_u *ScheduledMessageUpdateOne) Where(ps ...predicate.ScheduledMessage) *ScheduledMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScheduledMessageUpdateOne) Select(field string, fields ...string) *ScheduledMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScheduledMessage entity.
func (_u *ScheduledMessageUpdateOne) Save(ctx context.Context) (*ScheduledMessage, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduledMessageUpdateOne) SaveX(ctx context.Context) *ScheduledMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScheduledMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduledMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScheduledMessageUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := scheduledmessage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScheduledMessageUpdateOne) check() error {
	if v, ok := _u.mutation.MessageType(); ok {
		if err := scheduledmessage.MessageTypeValidator(v); err != nil {
			return &ValidationError{Name: "message_type", err: fmt.Errorf(`ent: validator failed for field "ScheduledMessage.message_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := scheduledmessage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScheduledMessage.status": %w`, err)}
		}
	}
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ScheduledMessage.tenant"`)
	}
	return nil
}

func (_u *ScheduledMessageUpdateOne) sqlSave(ctx context.Context) (_node *ScheduledMessage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scheduledmessage.Table, scheduledmessage.Columns, sqlgraph.NewFieldSpec(scheduledmessage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScheduledMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scheduledmessage.FieldID)
		for _, f := range fields {
			if !scheduledmessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scheduledmessage.FieldID {
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
	if value, ok := _u.mutation.CustomerID(); ok {
		_spec.SetField(scheduledmessage.FieldCustomerID, field.TypeString, value)
	}
	if _u.mutation.CustomerIDCleared() {
		_spec.ClearField(scheduledmessage.FieldCustomerID, field.TypeString)
	}
	if value, ok := _u.mutation.RecipientCriteria(); ok {
		_spec.SetField(scheduledmessage.FieldRecipientCriteria, field.TypeJSON, value)
	}
	if _u.mutation.RecipientCriteriaCleared() {
		_spec.ClearField(scheduledmessage.FieldRecipientCriteria, field.TypeJSON)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(scheduledmessage.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(scheduledmessage.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.TemplateID(); ok {
		_spec.SetField(scheduledmessage.FieldTemplateID, field.TypeString, value)
	}
	if _u.mutation.TemplateIDCleared() {
		_spec.ClearField(scheduledmessage.FieldTemplateID, field.TypeString)
	}
	if value, ok := _u.mutation.TemplateContext(); ok {
		_spec.SetField(scheduledmessage.FieldTemplateContext, field.TypeJSON, value)
	}
	if _u.mutation.TemplateContextCleared() {
		_spec.ClearField(scheduledmessage.FieldTemplateContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.MessageType(); ok {
		_spec.SetField(scheduledmessage.FieldMessageType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScheduledAt(); ok {
		_spec.SetField(scheduledmessage.FieldScheduledAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scheduledmessage.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SentMessageID(); ok {
		_spec.SetField(scheduledmessage.FieldSentMessageID, field.TypeString, value)
	}
	if _u.mutation.SentMessageIDCleared() {
		_spec.ClearField(scheduledmessage.FieldSentMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(scheduledmessage.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(scheduledmessage.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.AppointmentID(); ok {
		_spec.SetField(scheduledmessage.FieldAppointmentID, field.TypeString, value)
	}
	if _u.mutation.AppointmentIDCleared() {
		_spec.ClearField(scheduledmessage.FieldAppointmentID, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(scheduledmessage.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(scheduledmessage.FieldClaimedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(scheduledmessage.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(scheduledmessage.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(scheduledmessage.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(scheduledmessage.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(scheduledmessage.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ScheduledMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scheduledmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
