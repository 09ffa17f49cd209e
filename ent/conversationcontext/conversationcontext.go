// Code generated by ent, DO NOT EDIT.

package conversationcontext

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the conversationcontext type in the database.
	Label = "conversation_context"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "context_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldConversationID holds the string denoting the conversation_id field in the database.
	FieldConversationID = "conversation_id"
	// FieldLastCustomerMessage holds the string denoting the last_customer_message field in the database.
	FieldLastCustomerMessage = "last_customer_message"
	// FieldLastBotMessage holds the string denoting the last_bot_message field in the database.
	FieldLastBotMessage = "last_bot_message"
	// FieldCheckoutState holds the string denoting the checkout_state field in the database.
	FieldCheckoutState = "checkout_state"
	// FieldSelectedVariantID holds the string denoting the selected_variant_id field in the database.
	FieldSelectedVariantID = "selected_variant_id"
	// FieldSelectedQuantity holds the string denoting the selected_quantity field in the database.
	FieldSelectedQuantity = "selected_quantity"
	// FieldLockedLanguage holds the string denoting the locked_language field in the database.
	FieldLockedLanguage = "locked_language"
	// FieldLowConfidenceTurns holds the string denoting the low_confidence_turns field in the database.
	FieldLowConfidenceTurns = "low_confidence_turns"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeConversation holds the string denoting the conversation edge name in mutations.
	EdgeConversation = "conversation"
	// ConversationFieldID holds the string denoting the ID field of the Conversation.
	ConversationFieldID = "conversation_id"
	// Table holds the table name of the conversationcontext in the database.
	Table = "conversation_contexts"
	// ConversationTable is the table that holds the conversation relation/edge.
	ConversationTable = "conversation_contexts"
	// ConversationInverseTable is the table name for the Conversation entity.
	// It exists in this package in order to avoid circular dependency with the "conversation" package.
	ConversationInverseTable = "conversations"
	// ConversationColumn is the table column denoting the conversation relation/edge.
	ConversationColumn = "conversation_id"
)

// Columns holds all SQL columns for conversationcontext fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldConversationID,
	FieldLastCustomerMessage,
	FieldLastBotMessage,
	FieldCheckoutState,
	FieldSelectedVariantID,
	FieldSelectedQuantity,
	FieldLockedLanguage,
	FieldLowConfidenceTurns,
	FieldMetadata,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultLowConfidenceTurns holds the default value on creation for the "low_confidence_turns" field.
	DefaultLowConfidenceTurns int
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// CheckoutState defines the type for the "checkout_state" enum field.
type CheckoutState string

// CheckoutStateBrowsing is the default value of the CheckoutState enum.
const DefaultCheckoutState = CheckoutStateBrowsing

// CheckoutState values.
const (
	CheckoutStateBrowsing              CheckoutState = "browsing"
	CheckoutStateProductSelected       CheckoutState = "product_selected"
	CheckoutStateQuantityConfirmed     CheckoutState = "quantity_confirmed"
	CheckoutStatePaymentMethodSelected CheckoutState = "payment_method_selected"
	CheckoutStatePaymentInitiated      CheckoutState = "payment_initiated"
	CheckoutStatePaid                  CheckoutState = "paid"
	CheckoutStateFailed                CheckoutState = "failed"
	CheckoutStateClosed                CheckoutState = "closed"
)

func (cs CheckoutState) String() string {
	return string(cs)
}

// CheckoutStateValidator is a validator for the "checkout_state" field enum values. It is called by the builders before save.
func CheckoutStateValidator(cs CheckoutState) error {
	switch cs {
	case CheckoutStateBrowsing, CheckoutStateProductSelected, CheckoutStateQuantityConfirmed, CheckoutStatePaymentMethodSelected, CheckoutStatePaymentInitiated, CheckoutStatePaid, CheckoutStateFailed, CheckoutStateClosed:
		return nil
	default:
		return fmt.Errorf("conversationcontext: invalid enum value for checkout_state field: %q", cs)
	}
}

// OrderOption defines the ordering options for the ConversationContext queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByConversationID orders the results by the conversation_id field.
func ByConversationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConversationID, opts...).ToFunc()
}

// ByLastCustomerMessage orders the results by the last_customer_message field.
func ByLastCustomerMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastCustomerMessage, opts...).ToFunc()
}

// ByLastBotMessage orders the results by the last_bot_message field.
func ByLastBotMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastBotMessage, opts...).ToFunc()
}

// ByCheckoutState orders the results by the checkout_state field.
func ByCheckoutState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCheckoutState, opts...).ToFunc()
}

// BySelectedVariantID orders the results by the selected_variant_id field.
func BySelectedVariantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSelectedVariantID, opts...).ToFunc()
}

// BySelectedQuantity orders the results by the selected_quantity field.
func BySelectedQuantity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSelectedQuantity, opts...).ToFunc()
}

// ByLockedLanguage orders the results by the locked_language field.
func ByLockedLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLockedLanguage, opts...).ToFunc()
}

// ByLowConfidenceTurns orders the results by the low_confidence_turns field.
func ByLowConfidenceTurns(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLowConfidenceTurns, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByConversationField orders the results by conversation field.
func ByConversationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newConversationStep(), sql.OrderByField(field, opts...))
	}
}
func newConversationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ConversationInverseTable, ConversationFieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, ConversationTable, ConversationColumn),
	)
}
