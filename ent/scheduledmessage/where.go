// Code generated by ent, DO NOT EDIT.

package scheduledmessage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/sokochat/sokochat/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEQ(FieldTenantID, v))
}

// CustomerID applies equality check predicate on the "customer_id" field. It's identical to CustomerIDEQ.
func CustomerID(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEQ(FieldCustomerID, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEQ(FieldContent, v))
}

// TemplateID applies equality check predicate on the "template_id" field. It's identical to TemplateIDEQ.
func TemplateID(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEQ(FieldTemplateID, v))
}

// ScheduledAt applies equality check predicate on the "scheduled_at" field. It's identical to ScheduledAtEQ.
func ScheduledAt(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEQ(FieldScheduledAt, v))
}

// SentMessageID applies equality check predicate on the "sent_message_id" field. It's identical to SentMessageIDEQ.
func SentMessageID(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEQ(FieldSentMessageID, v))
}

// FailureReason applies equality check predicate on the "failure_reason" field. It's identical to FailureReasonEQ.
func FailureReason(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEQ(FieldFailureReason, v))
}

// AppointmentID applies equality check predicate on the "appointment_id" field. It's identical to AppointmentIDEQ.
func AppointmentID(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEQ(FieldAppointmentID, v))
}

// ClaimedBy applies equality check predicate on the "claimed_by" field. It's identical to ClaimedByEQ.
func ClaimedBy(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEQ(FieldClaimedBy, v))
}

// ClaimedAt applies equality check predicate on the "claimed_at" field. It's identical to ClaimedAtEQ.
func ClaimedAt(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEQ(FieldClaimedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldContainsFold(FieldTenantID, v))
}

// CustomerIDEQ applies the EQ predicate on the "customer_id" field.
func CustomerIDEQ(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEQ(FieldCustomerID, v))
}

// CustomerIDNEQ applies the NEQ predicate on the "customer_id" field.
func CustomerIDNEQ(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNEQ(FieldCustomerID, v))
}

// CustomerIDIn applies the In predicate on the "customer_id" field.
func CustomerIDIn(vs ...string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldIn(FieldCustomerID, vs...))
}

// CustomerIDNotIn applies the NotIn predicate on the "customer_id" field.
func CustomerIDNotIn(vs ...string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNotIn(FieldCustomerID, vs...))
}

// CustomerIDGT applies the GT predicate on the "customer_id" field.
func CustomerIDGT(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldGT(FieldCustomerID, v))
}

// CustomerIDGTE applies the GTE predicate on the "customer_id" field.
func CustomerIDGTE(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldGTE(FieldCustomerID, v))
}

// CustomerIDLT applies the LT predicate on the "customer_id" field.
func CustomerIDLT(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldLT(FieldCustomerID, v))
}

// CustomerIDLTE applies the LTE predicate on the "customer_id" field.
func CustomerIDLTE(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldLTE(FieldCustomerID, v))
}

// CustomerIDContains applies the Contains predicate on the "customer_id" field.
func CustomerIDContains(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldContains(FieldCustomerID, v))
}

// CustomerIDHasPrefix applies the HasPrefix predicate on the "customer_id" field.
func CustomerIDHasPrefix(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldHasPrefix(FieldCustomerID, v))
}

// CustomerIDHasSuffix applies the HasSuffix predicate on the "customer_id" field.
func CustomerIDHasSuffix(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldHasSuffix(FieldCustomerID, v))
}

// CustomerIDIsNil applies the IsNil predicate on the "customer_id" field.
func CustomerIDIsNil() predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldIsNull(FieldCustomerID))
}

// CustomerIDNotNil applies the NotNil predicate on the "customer_id" field.
func CustomerIDNotNil() predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNotNull(FieldCustomerID))
}

// CustomerIDEqualFold applies the EqualFold predicate on the "customer_id" field.
func CustomerIDEqualFold(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEqualFold(FieldCustomerID, v))
}

// CustomerIDContainsFold applies the ContainsFold predicate on the "customer_id" field.
func CustomerIDContainsFold(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldContainsFold(FieldCustomerID, v))
}

// RecipientCriteriaIsNil applies the IsNil predicate on the "recipient_criteria" field.
func RecipientCriteriaIsNil() predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldIsNull(FieldRecipientCriteria))
}

// RecipientCriteriaNotNil applies the NotNil predicate on the "recipient_criteria" field.
func RecipientCriteriaNotNil() predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNotNull(FieldRecipientCriteria))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldHasSuffix(FieldContent, v))
}

// ContentIsNil applies the IsNil predicate on the "content" field.
func ContentIsNil() predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldIsNull(FieldContent))
}

// ContentNotNil applies the NotNil predicate on the "content" field.
func ContentNotNil() predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNotNull(FieldContent))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldContainsFold(FieldContent, v))
}

// TemplateIDEQ applies the EQ predicate on the "template_id" field.
func TemplateIDEQ(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEQ(FieldTemplateID, v))
}

// TemplateIDNEQ applies the NEQ predicate on the "template_id" field.
func TemplateIDNEQ(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNEQ(FieldTemplateID, v))
}

// TemplateIDIn applies the In predicate on the "template_id" field.
func TemplateIDIn(vs ...string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldIn(FieldTemplateID, vs...))
}

// TemplateIDNotIn applies the NotIn predicate on the "template_id" field.
func TemplateIDNotIn(vs ...string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNotIn(FieldTemplateID, vs...))
}

// TemplateIDGT applies the GT predicate on the "template_id" field.
func TemplateIDGT(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldGT(FieldTemplateID, v))
}

// TemplateIDGTE applies the GTE predicate on the "template_id" field.
func TemplateIDGTE(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldGTE(FieldTemplateID, v))
}

// TemplateIDLT applies the LT predicate on the "template_id" field.
func TemplateIDLT(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldLT(FieldTemplateID, v))
}

// TemplateIDLTE applies the LTE predicate on the "template_id" field.
func TemplateIDLTE(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldLTE(FieldTemplateID, v))
}

// TemplateIDContains applies the Contains predicate on the "template_id" field.
func TemplateIDContains(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldContains(FieldTemplateID, v))
}

// TemplateIDHasPrefix applies the HasPrefix predicate on the "template_id" field.
func TemplateIDHasPrefix(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldHasPrefix(FieldTemplateID, v))
}

// TemplateIDHasSuffix applies the HasSuffix predicate on the "template_id" field.
func TemplateIDHasSuffix(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldHasSuffix(FieldTemplateID, v))
}

// TemplateIDIsNil applies the IsNil predicate on the "template_id" field.
func TemplateIDIsNil() predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldIsNull(FieldTemplateID))
}

// TemplateIDNotNil applies the NotNil predicate on the "template_id" field.
func TemplateIDNotNil() predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNotNull(FieldTemplateID))
}

// TemplateIDEqualFold applies the EqualFold predicate on the "template_id" field.
func TemplateIDEqualFold(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEqualFold(FieldTemplateID, v))
}

// TemplateIDContainsFold applies the ContainsFold predicate on the "template_id" field.
func TemplateIDContainsFold(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldContainsFold(FieldTemplateID, v))
}

// TemplateContextIsNil applies the IsNil predicate on the "template_context" field.
func TemplateContextIsNil() predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldIsNull(FieldTemplateContext))
}

// TemplateContextNotNil applies the NotNil predicate on the "template_context" field.
func TemplateContextNotNil() predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNotNull(FieldTemplateContext))
}

// MessageTypeEQ applies the EQ predicate on the "message_type" field.
func MessageTypeEQ(v MessageType) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEQ(FieldMessageType, v))
}

// MessageTypeNEQ applies the NEQ predicate on the "message_type" field.
func MessageTypeNEQ(v MessageType) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNEQ(FieldMessageType, v))
}

// MessageTypeIn applies the In predicate on the "message_type" field.
func MessageTypeIn(vs ...MessageType) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldIn(FieldMessageType, vs...))
}

// MessageTypeNotIn applies the NotIn predicate on the "message_type" field.
func MessageTypeNotIn(vs ...MessageType) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNotIn(FieldMessageType, vs...))
}

// ScheduledAtEQ applies the EQ predicate on the "scheduled_at" field.
func ScheduledAtEQ(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEQ(FieldScheduledAt, v))
}

// ScheduledAtNEQ applies the NEQ predicate on the "scheduled_at" field.
func ScheduledAtNEQ(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNEQ(FieldScheduledAt, v))
}

// ScheduledAtIn applies the In predicate on the "scheduled_at" field.
func ScheduledAtIn(vs ...time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldIn(FieldScheduledAt, vs...))
}

// ScheduledAtNotIn applies the NotIn predicate on the "scheduled_at" field.
func ScheduledAtNotIn(vs ...time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNotIn(FieldScheduledAt, vs...))
}

// ScheduledAtGT applies the GT predicate on the "scheduled_at" field.
func ScheduledAtGT(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldGT(FieldScheduledAt, v))
}

// ScheduledAtGTE applies the GTE predicate on the "scheduled_at" field.
func ScheduledAtGTE(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldGTE(FieldScheduledAt, v))
}

// ScheduledAtLT applies the LT predicate on the "scheduled_at" field.
func ScheduledAtLT(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldLT(FieldScheduledAt, v))
}

// ScheduledAtLTE applies the LTE predicate on the "scheduled_at" field.
func ScheduledAtLTE(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldLTE(FieldScheduledAt, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNotIn(FieldStatus, vs...))
}

// SentMessageIDEQ applies the EQ predicate on the "sent_message_id" field.
func SentMessageIDEQ(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEQ(FieldSentMessageID, v))
}

// SentMessageIDNEQ applies the NEQ predicate on the "sent_message_id" field.
func SentMessageIDNEQ(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNEQ(FieldSentMessageID, v))
}

// SentMessageIDIn applies the In predicate on the "sent_message_id" field.
func SentMessageIDIn(vs ...string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldIn(FieldSentMessageID, vs...))
}

// SentMessageIDNotIn applies the NotIn predicate on the "sent_message_id" field.
func SentMessageIDNotIn(vs ...string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNotIn(FieldSentMessageID, vs...))
}

// SentMessageIDGT applies the GT predicate on the "sent_message_id" field.
func SentMessageIDGT(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldGT(FieldSentMessageID, v))
}

// SentMessageIDGTE applies the GTE predicate on the "sent_message_id" field.
func SentMessageIDGTE(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldGTE(FieldSentMessageID, v))
}

// SentMessageIDLT applies the LT predicate on the "sent_message_id" field.
func SentMessageIDLT(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldLT(FieldSentMessageID, v))
}

// SentMessageIDLTE applies the LTE predicate on the "sent_message_id" field.
func SentMessageIDLTE(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldLTE(FieldSentMessageID, v))
}

// SentMessageIDContains applies the Contains predicate on the "sent_message_id" field.
func SentMessageIDContains(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldContains(FieldSentMessageID, v))
}

// SentMessageIDHasPrefix applies the HasPrefix predicate on the "sent_message_id" field.
func SentMessageIDHasPrefix(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldHasPrefix(FieldSentMessageID, v))
}

// SentMessageIDHasSuffix applies the HasSuffix predicate on the "sent_message_id" field.
func SentMessageIDHasSuffix(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldHasSuffix(FieldSentMessageID, v))
}

// SentMessageIDIsNil applies the IsNil predicate on the "sent_message_id" field.
func SentMessageIDIsNil() predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldIsNull(FieldSentMessageID))
}

// SentMessageIDNotNil applies the NotNil predicate on the "sent_message_id" field.
func SentMessageIDNotNil() predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNotNull(FieldSentMessageID))
}

// SentMessageIDEqualFold applies the EqualFold predicate on the "sent_message_id" field.
func SentMessageIDEqualFold(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEqualFold(FieldSentMessageID, v))
}

// SentMessageIDContainsFold applies the ContainsFold predicate on the "sent_message_id" field.
func SentMessageIDContainsFold(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldContainsFold(FieldSentMessageID, v))
}

// FailureReasonEQ applies the EQ predicate on the "failure_reason" field.
func FailureReasonEQ(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEQ(FieldFailureReason, v))
}

// FailureReasonNEQ applies the NEQ predicate on the "failure_reason" field.
func FailureReasonNEQ(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNEQ(FieldFailureReason, v))
}

// FailureReasonIn applies the In predicate on the "failure_reason" field.
func FailureReasonIn(vs ...string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldIn(FieldFailureReason, vs...))
}

// FailureReasonNotIn applies the NotIn predicate on the "failure_reason" field.
func FailureReasonNotIn(vs ...string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNotIn(FieldFailureReason, vs...))
}

// FailureReasonGT applies the GT predicate on the "failure_reason" field.
func FailureReasonGT(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldGT(FieldFailureReason, v))
}

// FailureReasonGTE applies the GTE predicate on the "failure_reason" field.
func FailureReasonGTE(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldGTE(FieldFailureReason, v))
}

// FailureReasonLT applies the LT predicate on the "failure_reason" field.
func FailureReasonLT(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldLT(FieldFailureReason, v))
}

// FailureReasonLTE applies the LTE predicate on the "failure_reason" field.
func FailureReasonLTE(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldLTE(FieldFailureReason, v))
}

// FailureReasonContains applies the Contains predicate on the "failure_reason" field.
func FailureReasonContains(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldContains(FieldFailureReason, v))
}

// FailureReasonHasPrefix applies the HasPrefix predicate on the "failure_reason" field.
func FailureReasonHasPrefix(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldHasPrefix(FieldFailureReason, v))
}

// FailureReasonHasSuffix applies the HasSuffix predicate on the "failure_reason" field.
func FailureReasonHasSuffix(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldHasSuffix(FieldFailureReason, v))
}

// FailureReasonIsNil applies the IsNil predicate on the "failure_reason" field.
func FailureReasonIsNil() predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldIsNull(FieldFailureReason))
}

// FailureReasonNotNil applies the NotNil predicate on the "failure_reason" field.
func FailureReasonNotNil() predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNotNull(FieldFailureReason))
}

// FailureReasonEqualFold applies the EqualFold predicate on the "failure_reason" field.
func FailureReasonEqualFold(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEqualFold(FieldFailureReason, v))
}

// FailureReasonContainsFold applies the ContainsFold predicate on the "failure_reason" field.
func FailureReasonContainsFold(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldContainsFold(FieldFailureReason, v))
}

// AppointmentIDEQ applies the EQ predicate on the "appointment_id" field.
func AppointmentIDEQ(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEQ(FieldAppointmentID, v))
}

// AppointmentIDNEQ applies the NEQ predicate on the "appointment_id" field.
func AppointmentIDNEQ(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNEQ(FieldAppointmentID, v))
}

// AppointmentIDIn applies the In predicate on the "appointment_id" field.
func AppointmentIDIn(vs ...string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldIn(FieldAppointmentID, vs...))
}

// AppointmentIDNotIn applies the NotIn predicate on the "appointment_id" field.
func AppointmentIDNotIn(vs ...string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNotIn(FieldAppointmentID, vs...))
}

// AppointmentIDGT applies the GT predicate on the "appointment_id" field.
func AppointmentIDGT(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldGT(FieldAppointmentID, v))
}

// AppointmentIDGTE applies the GTE predicate on the "appointment_id" field.
func AppointmentIDGTE(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldGTE(FieldAppointmentID, v))
}

// AppointmentIDLT applies the LT predicate on the "appointment_id" field.
func AppointmentIDLT(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldLT(FieldAppointmentID, v))
}

// AppointmentIDLTE applies the LTE predicate on the "appointment_id" field.
func AppointmentIDLTE(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldLTE(FieldAppointmentID, v))
}

// AppointmentIDContains applies the Contains predicate on the "appointment_id" field.
func AppointmentIDContains(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldContains(FieldAppointmentID, v))
}

// AppointmentIDHasPrefix applies the HasPrefix predicate on the "appointment_id" field.
func AppointmentIDHasPrefix(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldHasPrefix(FieldAppointmentID, v))
}

// AppointmentIDHasSuffix applies the HasSuffix predicate on the "appointment_id" field.
func AppointmentIDHasSuffix(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldHasSuffix(FieldAppointmentID, v))
}

// AppointmentIDIsNil applies the IsNil predicate on the "appointment_id" field.
func AppointmentIDIsNil() predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldIsNull(FieldAppointmentID))
}

// AppointmentIDNotNil applies the NotNil predicate on the "appointment_id" field.
func AppointmentIDNotNil() predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNotNull(FieldAppointmentID))
}

// AppointmentIDEqualFold applies the EqualFold predicate on the "appointment_id" field.
func AppointmentIDEqualFold(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEqualFold(FieldAppointmentID, v))
}

// AppointmentIDContainsFold applies the ContainsFold predicate on the "appointment_id" field.
func AppointmentIDContainsFold(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldContainsFold(FieldAppointmentID, v))
}

// ClaimedByEQ applies the EQ predicate on the "claimed_by" field.
func ClaimedByEQ(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEQ(FieldClaimedBy, v))
}

// ClaimedByNEQ applies the NEQ predicate on the "claimed_by" field.
func ClaimedByNEQ(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNEQ(FieldClaimedBy, v))
}

// ClaimedByIn applies the In predicate on the "claimed_by" field.
func ClaimedByIn(vs ...string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldIn(FieldClaimedBy, vs...))
}

// ClaimedByNotIn applies the NotIn predicate on the "claimed_by" field.
func ClaimedByNotIn(vs ...string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNotIn(FieldClaimedBy, vs...))
}

// ClaimedByGT applies the GT predicate on the "claimed_by" field.
func ClaimedByGT(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldGT(FieldClaimedBy, v))
}

// ClaimedByGTE applies the GTE predicate on the "claimed_by" field.
func ClaimedByGTE(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldGTE(FieldClaimedBy, v))
}

// ClaimedByLT applies the LT predicate on the "claimed_by" field.
func ClaimedByLT(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldLT(FieldClaimedBy, v))
}

// ClaimedByLTE applies the LTE predicate on the "claimed_by" field.
func ClaimedByLTE(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldLTE(FieldClaimedBy, v))
}

// ClaimedByContains applies the Contains predicate on the "claimed_by" field.
func ClaimedByContains(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldContains(FieldClaimedBy, v))
}

// ClaimedByHasPrefix applies the HasPrefix predicate on the "claimed_by" field.
func ClaimedByHasPrefix(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldHasPrefix(FieldClaimedBy, v))
}

// ClaimedByHasSuffix applies the HasSuffix predicate on the "claimed_by" field.
func ClaimedByHasSuffix(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldHasSuffix(FieldClaimedBy, v))
}

// ClaimedByIsNil applies the IsNil predicate on the "claimed_by" field.
func ClaimedByIsNil() predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldIsNull(FieldClaimedBy))
}

// ClaimedByNotNil applies the NotNil predicate on the "claimed_by" field.
func ClaimedByNotNil() predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNotNull(FieldClaimedBy))
}

// ClaimedByEqualFold applies the EqualFold predicate on the "claimed_by" field.
func ClaimedByEqualFold(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEqualFold(FieldClaimedBy, v))
}

// ClaimedByContainsFold applies the ContainsFold predicate on the "claimed_by" field.
func ClaimedByContainsFold(v string) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldContainsFold(FieldClaimedBy, v))
}

// ClaimedAtEQ applies the EQ predicate on the "claimed_at" field.
func ClaimedAtEQ(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEQ(FieldClaimedAt, v))
}

// ClaimedAtNEQ applies the NEQ predicate on the "claimed_at" field.
func ClaimedAtNEQ(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNEQ(FieldClaimedAt, v))
}

// ClaimedAtIn applies the In predicate on the "claimed_at" field.
func ClaimedAtIn(vs ...time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldIn(FieldClaimedAt, vs...))
}

// ClaimedAtNotIn applies the NotIn predicate on the "claimed_at" field.
func ClaimedAtNotIn(vs ...time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNotIn(FieldClaimedAt, vs...))
}

// ClaimedAtGT applies the GT predicate on the "claimed_at" field.
func ClaimedAtGT(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldGT(FieldClaimedAt, v))
}

// ClaimedAtGTE applies the GTE predicate on the "claimed_at" field.
func ClaimedAtGTE(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldGTE(FieldClaimedAt, v))
}

// ClaimedAtLT applies the LT predicate on the "claimed_at" field.
func ClaimedAtLT(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldLT(FieldClaimedAt, v))
}

// ClaimedAtLTE applies the LTE predicate on the "claimed_at" field.
func ClaimedAtLTE(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldLTE(FieldClaimedAt, v))
}

// ClaimedAtIsNil applies the IsNil predicate on the "claimed_at" field.
func ClaimedAtIsNil() predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldIsNull(FieldClaimedAt))
}

// ClaimedAtNotNil applies the NotNil predicate on the "claimed_at" field.
func ClaimedAtNotNil() predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNotNull(FieldClaimedAt))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNotNull(FieldMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasTenant applies the HasEdge predicate on the "tenant" edge.
func HasTenant() predicate.ScheduledMessage {
	return predicate.ScheduledMessage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TenantTable, TenantColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTenantWith applies the HasEdge predicate on the "tenant" edge with a given conditions (other predicates).
func HasTenantWith(preds ...predicate.Tenant) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(func(s *sql.Selector) {
		step := newTenantStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScheduledMessage) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScheduledMessage) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScheduledMessage) predicate.ScheduledMessage {
	return predicate.ScheduledMessage(sql.NotPredicates(p))
}
