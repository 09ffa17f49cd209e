// Code generated by ent, DO NOT EDIT.

package checkoutsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/sokochat/sokochat/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldEQ(FieldTenantID, v))
}

// ConversationID applies equality check predicate on the "conversation_id" field. It's identical to ConversationIDEQ.
func ConversationID(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldEQ(FieldConversationID, v))
}

// VariantID applies equality check predicate on the "variant_id" field. It's identical to VariantIDEQ.
func VariantID(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldEQ(FieldVariantID, v))
}

// Quantity applies equality check predicate on the "quantity" field. It's identical to QuantityEQ.
func Quantity(v int) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldEQ(FieldQuantity, v))
}

// OrderID applies equality check predicate on the "order_id" field. It's identical to OrderIDEQ.
func OrderID(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldEQ(FieldOrderID, v))
}

// PaymentRequestID applies equality check predicate on the "payment_request_id" field. It's identical to PaymentRequestIDEQ.
func PaymentRequestID(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldEQ(FieldPaymentRequestID, v))
}

// MessageCount applies equality check predicate on the "message_count" field. It's identical to MessageCountEQ.
func MessageCount(v int) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldEQ(FieldMessageCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldContainsFold(FieldTenantID, v))
}

// ConversationIDEQ applies the EQ predicate on the "conversation_id" field.
func ConversationIDEQ(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldEQ(FieldConversationID, v))
}

// ConversationIDNEQ applies the NEQ predicate on the "conversation_id" field.
func ConversationIDNEQ(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldNEQ(FieldConversationID, v))
}

// ConversationIDIn applies the In predicate on the "conversation_id" field.
func ConversationIDIn(vs ...string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldIn(FieldConversationID, vs...))
}

// ConversationIDNotIn applies the NotIn predicate on the "conversation_id" field.
func ConversationIDNotIn(vs ...string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldNotIn(FieldConversationID, vs...))
}

// ConversationIDGT applies the GT predicate on the "conversation_id" field.
func ConversationIDGT(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldGT(FieldConversationID, v))
}

// ConversationIDGTE applies the GTE predicate on the "conversation_id" field.
func ConversationIDGTE(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldGTE(FieldConversationID, v))
}

// ConversationIDLT applies the LT predicate on the "conversation_id" field.
func ConversationIDLT(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldLT(FieldConversationID, v))
}

// ConversationIDLTE applies the LTE predicate on the "conversation_id" field.
func ConversationIDLTE(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldLTE(FieldConversationID, v))
}

// ConversationIDContains applies the Contains predicate on the "conversation_id" field.
func ConversationIDContains(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldContains(FieldConversationID, v))
}

// ConversationIDHasPrefix applies the HasPrefix predicate on the "conversation_id" field.
func ConversationIDHasPrefix(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldHasPrefix(FieldConversationID, v))
}

// ConversationIDHasSuffix applies the HasSuffix predicate on the "conversation_id" field.
func ConversationIDHasSuffix(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldHasSuffix(FieldConversationID, v))
}

// ConversationIDEqualFold applies the EqualFold predicate on the "conversation_id" field.
func ConversationIDEqualFold(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldEqualFold(FieldConversationID, v))
}

// ConversationIDContainsFold applies the ContainsFold predicate on the "conversation_id" field.
func ConversationIDContainsFold(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldContainsFold(FieldConversationID, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldNotIn(FieldState, vs...))
}

// VariantIDEQ applies the EQ predicate on the "variant_id" field.
func VariantIDEQ(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldEQ(FieldVariantID, v))
}

// VariantIDNEQ applies the NEQ predicate on the "variant_id" field.
func VariantIDNEQ(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldNEQ(FieldVariantID, v))
}

// VariantIDIn applies the In predicate on the "variant_id" field.
func VariantIDIn(vs ...string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldIn(FieldVariantID, vs...))
}

// VariantIDNotIn applies the NotIn predicate on the "variant_id" field.
func VariantIDNotIn(vs ...string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldNotIn(FieldVariantID, vs...))
}

// VariantIDGT applies the GT predicate on the "variant_id" field.
func VariantIDGT(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldGT(FieldVariantID, v))
}

// VariantIDGTE applies the GTE predicate on the "variant_id" field.
func VariantIDGTE(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldGTE(FieldVariantID, v))
}

// VariantIDLT applies the LT predicate on the "variant_id" field.
func VariantIDLT(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldLT(FieldVariantID, v))
}

// VariantIDLTE applies the LTE predicate on the "variant_id" field.
func VariantIDLTE(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldLTE(FieldVariantID, v))
}

// VariantIDContains applies the Contains predicate on the "variant_id" field.
func VariantIDContains(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldContains(FieldVariantID, v))
}

// VariantIDHasPrefix applies the HasPrefix predicate on the "variant_id" field.
func VariantIDHasPrefix(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldHasPrefix(FieldVariantID, v))
}

// VariantIDHasSuffix applies the HasSuffix predicate on the "variant_id" field.
func VariantIDHasSuffix(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldHasSuffix(FieldVariantID, v))
}

// VariantIDIsNil applies the IsNil predicate on the "variant_id" field.
func VariantIDIsNil() predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldIsNull(FieldVariantID))
}

// VariantIDNotNil applies the NotNil predicate on the "variant_id" field.
func VariantIDNotNil() predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldNotNull(FieldVariantID))
}

// VariantIDEqualFold applies the EqualFold predicate on the "variant_id" field.
func VariantIDEqualFold(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldEqualFold(FieldVariantID, v))
}

// VariantIDContainsFold applies the ContainsFold predicate on the "variant_id" field.
func VariantIDContainsFold(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldContainsFold(FieldVariantID, v))
}

// QuantityEQ applies the EQ predicate on the "quantity" field.
func QuantityEQ(v int) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldEQ(FieldQuantity, v))
}

// QuantityNEQ applies the NEQ predicate on the "quantity" field.
func QuantityNEQ(v int) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldNEQ(FieldQuantity, v))
}

// QuantityIn applies the In predicate on the "quantity" field.
func QuantityIn(vs ...int) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldIn(FieldQuantity, vs...))
}

// QuantityNotIn applies the NotIn predicate on the "quantity" field.
func QuantityNotIn(vs ...int) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldNotIn(FieldQuantity, vs...))
}

// QuantityGT applies the GT predicate on the "quantity" field.
func QuantityGT(v int) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldGT(FieldQuantity, v))
}

// QuantityGTE applies the GTE predicate on the "quantity" field.
func QuantityGTE(v int) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldGTE(FieldQuantity, v))
}

// QuantityLT applies the LT predicate on the "quantity" field.
func QuantityLT(v int) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldLT(FieldQuantity, v))
}

// QuantityLTE applies the LTE predicate on the "quantity" field.
func QuantityLTE(v int) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldLTE(FieldQuantity, v))
}

// QuantityIsNil applies the IsNil predicate on the "quantity" field.
func QuantityIsNil() predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldIsNull(FieldQuantity))
}

// QuantityNotNil applies the NotNil predicate on the "quantity" field.
func QuantityNotNil() predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldNotNull(FieldQuantity))
}

// OrderIDEQ applies the EQ predicate on the "order_id" field.
func OrderIDEQ(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldEQ(FieldOrderID, v))
}

// OrderIDNEQ applies the NEQ predicate on the "order_id" field.
func OrderIDNEQ(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldNEQ(FieldOrderID, v))
}

// OrderIDIn applies the In predicate on the "order_id" field.
func OrderIDIn(vs ...string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldIn(FieldOrderID, vs...))
}

// OrderIDNotIn applies the NotIn predicate on the "order_id" field.
func OrderIDNotIn(vs ...string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldNotIn(FieldOrderID, vs...))
}

// OrderIDGT applies the GT predicate on the "order_id" field.
func OrderIDGT(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldGT(FieldOrderID, v))
}

// OrderIDGTE applies the GTE predicate on the "order_id" field.
func OrderIDGTE(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldGTE(FieldOrderID, v))
}

// OrderIDLT applies the LT predicate on the "order_id" field.
func OrderIDLT(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldLT(FieldOrderID, v))
}

// OrderIDLTE applies the LTE predicate on the "order_id" field.
func OrderIDLTE(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldLTE(FieldOrderID, v))
}

// OrderIDContains applies the Contains predicate on the "order_id" field.
func OrderIDContains(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldContains(FieldOrderID, v))
}

// OrderIDHasPrefix applies the HasPrefix predicate on the "order_id" field.
func OrderIDHasPrefix(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldHasPrefix(FieldOrderID, v))
}

// OrderIDHasSuffix applies the HasSuffix predicate on the "order_id" field.
func OrderIDHasSuffix(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldHasSuffix(FieldOrderID, v))
}

// OrderIDIsNil applies the IsNil predicate on the "order_id" field.
func OrderIDIsNil() predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldIsNull(FieldOrderID))
}

// OrderIDNotNil applies the NotNil predicate on the "order_id" field.
func OrderIDNotNil() predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldNotNull(FieldOrderID))
}

// OrderIDEqualFold applies the EqualFold predicate on the "order_id" field.
func OrderIDEqualFold(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldEqualFold(FieldOrderID, v))
}

// OrderIDContainsFold applies the ContainsFold predicate on the "order_id" field.
func OrderIDContainsFold(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldContainsFold(FieldOrderID, v))
}

// PaymentRequestIDEQ applies the EQ predicate on the "payment_request_id" field.
func PaymentRequestIDEQ(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldEQ(FieldPaymentRequestID, v))
}

// PaymentRequestIDNEQ applies the NEQ predicate on the "payment_request_id" field.
func PaymentRequestIDNEQ(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldNEQ(FieldPaymentRequestID, v))
}

// PaymentRequestIDIn applies the In predicate on the "payment_request_id" field.
func PaymentRequestIDIn(vs ...string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldIn(FieldPaymentRequestID, vs...))
}

// PaymentRequestIDNotIn applies the NotIn predicate on the "payment_request_id" field.
func PaymentRequestIDNotIn(vs ...string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldNotIn(FieldPaymentRequestID, vs...))
}

// PaymentRequestIDGT applies the GT predicate on the "payment_request_id" field.
func PaymentRequestIDGT(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldGT(FieldPaymentRequestID, v))
}

// PaymentRequestIDGTE applies the GTE predicate on the "payment_request_id" field.
func PaymentRequestIDGTE(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldGTE(FieldPaymentRequestID, v))
}

// PaymentRequestIDLT applies the LT predicate on the "payment_request_id" field.
func PaymentRequestIDLT(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldLT(FieldPaymentRequestID, v))
}

// PaymentRequestIDLTE applies the LTE predicate on the "payment_request_id" field.
func PaymentRequestIDLTE(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldLTE(FieldPaymentRequestID, v))
}

// PaymentRequestIDContains applies the Contains predicate on the "payment_request_id" field.
func PaymentRequestIDContains(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldContains(FieldPaymentRequestID, v))
}

// PaymentRequestIDHasPrefix applies the HasPrefix predicate on the "payment_request_id" field.
func PaymentRequestIDHasPrefix(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldHasPrefix(FieldPaymentRequestID, v))
}

// PaymentRequestIDHasSuffix applies the HasSuffix predicate on the "payment_request_id" field.
func PaymentRequestIDHasSuffix(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldHasSuffix(FieldPaymentRequestID, v))
}

// PaymentRequestIDIsNil applies the IsNil predicate on the "payment_request_id" field.
func PaymentRequestIDIsNil() predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldIsNull(FieldPaymentRequestID))
}

// PaymentRequestIDNotNil applies the NotNil predicate on the "payment_request_id" field.
func PaymentRequestIDNotNil() predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldNotNull(FieldPaymentRequestID))
}

// PaymentRequestIDEqualFold applies the EqualFold predicate on the "payment_request_id" field.
func PaymentRequestIDEqualFold(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldEqualFold(FieldPaymentRequestID, v))
}

// PaymentRequestIDContainsFold applies the ContainsFold predicate on the "payment_request_id" field.
func PaymentRequestIDContainsFold(v string) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldContainsFold(FieldPaymentRequestID, v))
}

// MessageCountEQ applies the EQ predicate on the "message_count" field.
func MessageCountEQ(v int) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldEQ(FieldMessageCount, v))
}

// MessageCountNEQ applies the NEQ predicate on the "message_count" field.
func MessageCountNEQ(v int) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldNEQ(FieldMessageCount, v))
}

// MessageCountIn applies the In predicate on the "message_count" field.
func MessageCountIn(vs ...int) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldIn(FieldMessageCount, vs...))
}

// MessageCountNotIn applies the NotIn predicate on the "message_count" field.
func MessageCountNotIn(vs ...int) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldNotIn(FieldMessageCount, vs...))
}

// MessageCountGT applies the GT predicate on the "message_count" field.
func MessageCountGT(v int) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldGT(FieldMessageCount, v))
}

// MessageCountGTE applies the GTE predicate on the "message_count" field.
func MessageCountGTE(v int) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldGTE(FieldMessageCount, v))
}

// MessageCountLT applies the LT predicate on the "message_count" field.
func MessageCountLT(v int) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldLT(FieldMessageCount, v))
}

// MessageCountLTE applies the LTE predicate on the "message_count" field.
func MessageCountLTE(v int) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldLTE(FieldMessageCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasConversation applies the HasEdge predicate on the "conversation" edge.
func HasConversation() predicate.CheckoutSession {
	return predicate.CheckoutSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ConversationTable, ConversationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasConversationWith applies the HasEdge predicate on the "conversation" edge with a given conditions (other predicates).
func HasConversationWith(preds ...predicate.Conversation) predicate.CheckoutSession {
	return predicate.CheckoutSession(func(s *sql.Selector) {
		step := newConversationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CheckoutSession) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CheckoutSession) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CheckoutSession) predicate.CheckoutSession {
	return predicate.CheckoutSession(sql.NotPredicates(p))
}
