// Code generated by ent, DO NOT EDIT.

package conversationcontext

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/sokochat/sokochat/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldEQ(FieldTenantID, v))
}

// ConversationID applies equality check predicate on the "conversation_id" field. It's identical to ConversationIDEQ.
func ConversationID(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldEQ(FieldConversationID, v))
}

// LastCustomerMessage applies equality check predicate on the "last_customer_message" field. It's identical to LastCustomerMessageEQ.
func LastCustomerMessage(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldEQ(FieldLastCustomerMessage, v))
}

// LastBotMessage applies equality check predicate on the "last_bot_message" field. It's identical to LastBotMessageEQ.
func LastBotMessage(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldEQ(FieldLastBotMessage, v))
}

// SelectedVariantID applies equality check predicate on the "selected_variant_id" field. It's identical to SelectedVariantIDEQ.
func SelectedVariantID(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldEQ(FieldSelectedVariantID, v))
}

// SelectedQuantity applies equality check predicate on the "selected_quantity" field. It's identical to SelectedQuantityEQ.
func SelectedQuantity(v int) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldEQ(FieldSelectedQuantity, v))
}

// LockedLanguage applies equality check predicate on the "locked_language" field. It's identical to LockedLanguageEQ.
func LockedLanguage(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldEQ(FieldLockedLanguage, v))
}

// LowConfidenceTurns applies equality check predicate on the "low_confidence_turns" field. It's identical to LowConfidenceTurnsEQ.
func LowConfidenceTurns(v int) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldEQ(FieldLowConfidenceTurns, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldContainsFold(FieldTenantID, v))
}

// ConversationIDEQ applies the EQ predicate on the "conversation_id" field.
func ConversationIDEQ(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldEQ(FieldConversationID, v))
}

// ConversationIDNEQ applies the NEQ predicate on the "conversation_id" field.
func ConversationIDNEQ(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldNEQ(FieldConversationID, v))
}

// ConversationIDIn applies the In predicate on the "conversation_id" field.
func ConversationIDIn(vs ...string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldIn(FieldConversationID, vs...))
}

// ConversationIDNotIn applies the NotIn predicate on the "conversation_id" field.
func ConversationIDNotIn(vs ...string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldNotIn(FieldConversationID, vs...))
}

// ConversationIDGT applies the GT predicate on the "conversation_id" field.
func ConversationIDGT(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldGT(FieldConversationID, v))
}

// ConversationIDGTE applies the GTE predicate on the "conversation_id" field.
func ConversationIDGTE(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldGTE(FieldConversationID, v))
}

// ConversationIDLT applies the LT predicate on the "conversation_id" field.
func ConversationIDLT(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldLT(FieldConversationID, v))
}

// ConversationIDLTE applies the LTE predicate on the "conversation_id" field.
func ConversationIDLTE(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldLTE(FieldConversationID, v))
}

// ConversationIDContains applies the Contains predicate on the "conversation_id" field.
func ConversationIDContains(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldContains(FieldConversationID, v))
}

// ConversationIDHasPrefix applies the HasPrefix predicate on the "conversation_id" field.
func ConversationIDHasPrefix(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldHasPrefix(FieldConversationID, v))
}

// ConversationIDHasSuffix applies the HasSuffix predicate on the "conversation_id" field.
func ConversationIDHasSuffix(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldHasSuffix(FieldConversationID, v))
}

// ConversationIDEqualFold applies the EqualFold predicate on the "conversation_id" field.
func ConversationIDEqualFold(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldEqualFold(FieldConversationID, v))
}

// ConversationIDContainsFold applies the ContainsFold predicate on the "conversation_id" field.
func ConversationIDContainsFold(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldContainsFold(FieldConversationID, v))
}

// LastCustomerMessageEQ applies the EQ predicate on the "last_customer_message" field.
func LastCustomerMessageEQ(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldEQ(FieldLastCustomerMessage, v))
}

// LastCustomerMessageNEQ applies the NEQ predicate on the "last_customer_message" field.
func LastCustomerMessageNEQ(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldNEQ(FieldLastCustomerMessage, v))
}

// LastCustomerMessageIn applies the In predicate on the "last_customer_message" field.
func LastCustomerMessageIn(vs ...string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldIn(FieldLastCustomerMessage, vs...))
}

// LastCustomerMessageNotIn applies the NotIn predicate on the "last_customer_message" field.
func LastCustomerMessageNotIn(vs ...string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldNotIn(FieldLastCustomerMessage, vs...))
}

// LastCustomerMessageGT applies the GT predicate on the "last_customer_message" field.
func LastCustomerMessageGT(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldGT(FieldLastCustomerMessage, v))
}

// LastCustomerMessageGTE applies the GTE predicate on the "last_customer_message" field.
func LastCustomerMessageGTE(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldGTE(FieldLastCustomerMessage, v))
}

// LastCustomerMessageLT applies the LT predicate on the "last_customer_message" field.
func LastCustomerMessageLT(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldLT(FieldLastCustomerMessage, v))
}

// LastCustomerMessageLTE applies the LTE predicate on the "last_customer_message" field.
func LastCustomerMessageLTE(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldLTE(FieldLastCustomerMessage, v))
}

// LastCustomerMessageContains applies the Contains predicate on the "last_customer_message" field.
func LastCustomerMessageContains(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldContains(FieldLastCustomerMessage, v))
}

// LastCustomerMessageHasPrefix applies the HasPrefix predicate on the "last_customer_message" field.
func LastCustomerMessageHasPrefix(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldHasPrefix(FieldLastCustomerMessage, v))
}

// LastCustomerMessageHasSuffix applies the HasSuffix predicate on the "last_customer_message" field.
func LastCustomerMessageHasSuffix(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldHasSuffix(FieldLastCustomerMessage, v))
}

// LastCustomerMessageIsNil applies the IsNil predicate on the "last_customer_message" field.
func LastCustomerMessageIsNil() predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldIsNull(FieldLastCustomerMessage))
}

// LastCustomerMessageNotNil applies the NotNil predicate on the "last_customer_message" field.
func LastCustomerMessageNotNil() predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldNotNull(FieldLastCustomerMessage))
}

// LastCustomerMessageEqualFold applies the EqualFold predicate on the "last_customer_message" field.
func LastCustomerMessageEqualFold(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldEqualFold(FieldLastCustomerMessage, v))
}

// LastCustomerMessageContainsFold applies the ContainsFold predicate on the "last_customer_message" field.
func LastCustomerMessageContainsFold(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldContainsFold(FieldLastCustomerMessage, v))
}

// LastBotMessageEQ applies the EQ predicate on the "last_bot_message" field.
func LastBotMessageEQ(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldEQ(FieldLastBotMessage, v))
}

// LastBotMessageNEQ applies the NEQ predicate on the "last_bot_message" field.
func LastBotMessageNEQ(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldNEQ(FieldLastBotMessage, v))
}

// LastBotMessageIn applies the In predicate on the "last_bot_message" field.
func LastBotMessageIn(vs ...string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldIn(FieldLastBotMessage, vs...))
}

// LastBotMessageNotIn applies the NotIn predicate on the "last_bot_message" field.
func LastBotMessageNotIn(vs ...string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldNotIn(FieldLastBotMessage, vs...))
}

// LastBotMessageGT applies the GT predicate on the "last_bot_message" field.
func LastBotMessageGT(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldGT(FieldLastBotMessage, v))
}

// LastBotMessageGTE applies the GTE predicate on the "last_bot_message" field.
func LastBotMessageGTE(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldGTE(FieldLastBotMessage, v))
}

// LastBotMessageLT applies the LT predicate on the "last_bot_message" field.
func LastBotMessageLT(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldLT(FieldLastBotMessage, v))
}

// LastBotMessageLTE applies the LTE predicate on the "last_bot_message" field.
func LastBotMessageLTE(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldLTE(FieldLastBotMessage, v))
}

// LastBotMessageContains applies the Contains predicate on the "last_bot_message" field.
func LastBotMessageContains(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldContains(FieldLastBotMessage, v))
}

// LastBotMessageHasPrefix applies the HasPrefix predicate on the "last_bot_message" field.
func LastBotMessageHasPrefix(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldHasPrefix(FieldLastBotMessage, v))
}

// LastBotMessageHasSuffix applies the HasSuffix predicate on the "last_bot_message" field.
func LastBotMessageHasSuffix(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldHasSuffix(FieldLastBotMessage, v))
}

// LastBotMessageIsNil applies the IsNil predicate on the "last_bot_message" field.
func LastBotMessageIsNil() predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldIsNull(FieldLastBotMessage))
}

// LastBotMessageNotNil applies the NotNil predicate on the "last_bot_message" field.
func LastBotMessageNotNil() predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldNotNull(FieldLastBotMessage))
}

// LastBotMessageEqualFold applies the EqualFold predicate on the "last_bot_message" field.
func LastBotMessageEqualFold(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldEqualFold(FieldLastBotMessage, v))
}

// LastBotMessageContainsFold applies the ContainsFold predicate on the "last_bot_message" field.
func LastBotMessageContainsFold(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldContainsFold(FieldLastBotMessage, v))
}

// CheckoutStateEQ applies the EQ predicate on the "checkout_state" field.
func CheckoutStateEQ(v CheckoutState) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldEQ(FieldCheckoutState, v))
}

// CheckoutStateNEQ applies the NEQ predicate on the "checkout_state" field.
func CheckoutStateNEQ(v CheckoutState) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldNEQ(FieldCheckoutState, v))
}

// CheckoutStateIn applies the In predicate on the "checkout_state" field.
func CheckoutStateIn(vs ...CheckoutState) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldIn(FieldCheckoutState, vs...))
}

// CheckoutStateNotIn applies the NotIn predicate on the "checkout_state" field.
func CheckoutStateNotIn(vs ...CheckoutState) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldNotIn(FieldCheckoutState, vs...))
}

// SelectedVariantIDEQ applies the EQ predicate on the "selected_variant_id" field.
func SelectedVariantIDEQ(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldEQ(FieldSelectedVariantID, v))
}

// SelectedVariantIDNEQ applies the NEQ predicate on the "selected_variant_id" field.
func SelectedVariantIDNEQ(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldNEQ(FieldSelectedVariantID, v))
}

// SelectedVariantIDIn applies the In predicate on the "selected_variant_id" field.
func SelectedVariantIDIn(vs ...string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldIn(FieldSelectedVariantID, vs...))
}

// SelectedVariantIDNotIn applies the NotIn predicate on the "selected_variant_id" field.
func SelectedVariantIDNotIn(vs ...string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldNotIn(FieldSelectedVariantID, vs...))
}

// SelectedVariantIDGT applies the GT predicate on the "selected_variant_id" field.
func SelectedVariantIDGT(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldGT(FieldSelectedVariantID, v))
}

// SelectedVariantIDGTE applies the GTE predicate on the "selected_variant_id" field.
func SelectedVariantIDGTE(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldGTE(FieldSelectedVariantID, v))
}

// SelectedVariantIDLT applies the LT predicate on the "selected_variant_id" field.
func SelectedVariantIDLT(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldLT(FieldSelectedVariantID, v))
}

// SelectedVariantIDLTE applies the LTE predicate on the "selected_variant_id" field.
func SelectedVariantIDLTE(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldLTE(FieldSelectedVariantID, v))
}

// SelectedVariantIDContains applies the Contains predicate on the "selected_variant_id" field.
func SelectedVariantIDContains(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldContains(FieldSelectedVariantID, v))
}

// SelectedVariantIDHasPrefix applies the HasPrefix predicate on the "selected_variant_id" field.
func SelectedVariantIDHasPrefix(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldHasPrefix(FieldSelectedVariantID, v))
}

// SelectedVariantIDHasSuffix applies the HasSuffix predicate on the "selected_variant_id" field.
func SelectedVariantIDHasSuffix(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldHasSuffix(FieldSelectedVariantID, v))
}

// SelectedVariantIDIsNil applies the IsNil predicate on the "selected_variant_id" field.
func SelectedVariantIDIsNil() predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldIsNull(FieldSelectedVariantID))
}

// SelectedVariantIDNotNil applies the NotNil predicate on the "selected_variant_id" field.
func SelectedVariantIDNotNil() predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldNotNull(FieldSelectedVariantID))
}

// SelectedVariantIDEqualFold applies the EqualFold predicate on the "selected_variant_id" field.
func SelectedVariantIDEqualFold(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldEqualFold(FieldSelectedVariantID, v))
}

// SelectedVariantIDContainsFold applies the ContainsFold predicate on the "selected_variant_id" field.
func SelectedVariantIDContainsFold(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldContainsFold(FieldSelectedVariantID, v))
}

// SelectedQuantityEQ applies the EQ predicate on the "selected_quantity" field.
func SelectedQuantityEQ(v int) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldEQ(FieldSelectedQuantity, v))
}

// SelectedQuantityNEQ applies the NEQ predicate on the "selected_quantity" field.
func SelectedQuantityNEQ(v int) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldNEQ(FieldSelectedQuantity, v))
}

// SelectedQuantityIn applies the In predicate on the "selected_quantity" field.
func SelectedQuantityIn(vs ...int) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldIn(FieldSelectedQuantity, vs...))
}

// SelectedQuantityNotIn applies the NotIn predicate on the "selected_quantity" field.
func SelectedQuantityNotIn(vs ...int) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldNotIn(FieldSelectedQuantity, vs...))
}

// SelectedQuantityGT applies the GT predicate on the "selected_quantity" field.
func SelectedQuantityGT(v int) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldGT(FieldSelectedQuantity, v))
}

// SelectedQuantityGTE applies the GTE predicate on the "selected_quantity" field.
func SelectedQuantityGTE(v int) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldGTE(FieldSelectedQuantity, v))
}

// SelectedQuantityLT applies the LT predicate on the "selected_quantity" field.
func SelectedQuantityLT(v int) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldLT(FieldSelectedQuantity, v))
}

// SelectedQuantityLTE applies the LTE predicate on the "selected_quantity" field.
func SelectedQuantityLTE(v int) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldLTE(FieldSelectedQuantity, v))
}

// SelectedQuantityIsNil applies the IsNil predicate on the "selected_quantity" field.
func SelectedQuantityIsNil() predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldIsNull(FieldSelectedQuantity))
}

// SelectedQuantityNotNil applies the NotNil predicate on the "selected_quantity" field.
func SelectedQuantityNotNil() predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldNotNull(FieldSelectedQuantity))
}

// LockedLanguageEQ applies the EQ predicate on the "locked_language" field.
func LockedLanguageEQ(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldEQ(FieldLockedLanguage, v))
}

// LockedLanguageNEQ applies the NEQ predicate on the "locked_language" field.
func LockedLanguageNEQ(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldNEQ(FieldLockedLanguage, v))
}

// LockedLanguageIn applies the In predicate on the "locked_language" field.
func LockedLanguageIn(vs ...string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldIn(FieldLockedLanguage, vs...))
}

// LockedLanguageNotIn applies the NotIn predicate on the "locked_language" field.
func LockedLanguageNotIn(vs ...string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldNotIn(FieldLockedLanguage, vs...))
}

// LockedLanguageGT applies the GT predicate on the "locked_language" field.
func LockedLanguageGT(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldGT(FieldLockedLanguage, v))
}

// LockedLanguageGTE applies the GTE predicate on the "locked_language" field.
func LockedLanguageGTE(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldGTE(FieldLockedLanguage, v))
}

// LockedLanguageLT applies the LT predicate on the "locked_language" field.
func LockedLanguageLT(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldLT(FieldLockedLanguage, v))
}

// LockedLanguageLTE applies the LTE predicate on the "locked_language" field.
func LockedLanguageLTE(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldLTE(FieldLockedLanguage, v))
}

// LockedLanguageContains applies the Contains predicate on the "locked_language" field.
func LockedLanguageContains(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldContains(FieldLockedLanguage, v))
}

// LockedLanguageHasPrefix applies the HasPrefix predicate on the "locked_language" field.
func LockedLanguageHasPrefix(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldHasPrefix(FieldLockedLanguage, v))
}

// LockedLanguageHasSuffix applies the HasSuffix predicate on the "locked_language" field.
func LockedLanguageHasSuffix(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldHasSuffix(FieldLockedLanguage, v))
}

// LockedLanguageIsNil applies the IsNil predicate on the "locked_language" field.
func LockedLanguageIsNil() predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldIsNull(FieldLockedLanguage))
}

// LockedLanguageNotNil applies the NotNil predicate on the "locked_language" field.
func LockedLanguageNotNil() predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldNotNull(FieldLockedLanguage))
}

// LockedLanguageEqualFold applies the EqualFold predicate on the "locked_language" field.
func LockedLanguageEqualFold(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldEqualFold(FieldLockedLanguage, v))
}

// LockedLanguageContainsFold applies the ContainsFold predicate on the "locked_language" field.
func LockedLanguageContainsFold(v string) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldContainsFold(FieldLockedLanguage, v))
}

// LowConfidenceTurnsEQ applies the EQ predicate on the "low_confidence_turns" field.
func LowConfidenceTurnsEQ(v int) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldEQ(FieldLowConfidenceTurns, v))
}

// LowConfidenceTurnsNEQ applies the NEQ predicate on the "low_confidence_turns" field.
func LowConfidenceTurnsNEQ(v int) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldNEQ(FieldLowConfidenceTurns, v))
}

// LowConfidenceTurnsIn applies the In predicate on the "low_confidence_turns" field.
func LowConfidenceTurnsIn(vs ...int) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldIn(FieldLowConfidenceTurns, vs...))
}

// LowConfidenceTurnsNotIn applies the NotIn predicate on the "low_confidence_turns" field.
func LowConfidenceTurnsNotIn(vs ...int) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldNotIn(FieldLowConfidenceTurns, vs...))
}

// LowConfidenceTurnsGT applies the GT predicate on the "low_confidence_turns" field.
func LowConfidenceTurnsGT(v int) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldGT(FieldLowConfidenceTurns, v))
}

// LowConfidenceTurnsGTE applies the GTE predicate on the "low_confidence_turns" field.
func LowConfidenceTurnsGTE(v int) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldGTE(FieldLowConfidenceTurns, v))
}

// LowConfidenceTurnsLT applies the LT predicate on the "low_confidence_turns" field.
func LowConfidenceTurnsLT(v int) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldLT(FieldLowConfidenceTurns, v))
}

// LowConfidenceTurnsLTE applies the LTE predicate on the "low_confidence_turns" field.
func LowConfidenceTurnsLTE(v int) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldLTE(FieldLowConfidenceTurns, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldNotNull(FieldMetadata))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ConversationContext {
	return predicate.ConversationContext(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasConversation applies the HasEdge predicate on the "conversation" edge.
func HasConversation() predicate.ConversationContext {
	return predicate.ConversationContext(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, ConversationTable, ConversationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasConversationWith applies the HasEdge predicate on the "conversation" edge with a given conditions (other predicates).
func HasConversationWith(preds ...predicate.Conversation) predicate.ConversationContext {
	return predicate.ConversationContext(func(s *sql.Selector) {
		step := newConversationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ConversationContext) predicate.ConversationContext {
	return predicate.ConversationContext(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ConversationContext) predicate.ConversationContext {
	return predicate.ConversationContext(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ConversationContext) predicate.ConversationContext {
	return predicate.ConversationContext(sql.NotPredicates(p))
}
