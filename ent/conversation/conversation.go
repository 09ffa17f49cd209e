// Code generated by ent, DO NOT EDIT.

package conversation

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the conversation type in the database.
	Label = "conversation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "conversation_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldCustomerID holds the string denoting the customer_id field in the database.
	FieldCustomerID = "customer_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCurrentSessionStart holds the string denoting the current_session_start field in the database.
	FieldCurrentSessionStart = "current_session_start"
	// FieldSessionMessageCount holds the string denoting the session_message_count field in the database.
	FieldSessionMessageCount = "session_message_count"
	// FieldLastMessageAt holds the string denoting the last_message_at field in the database.
	FieldLastMessageAt = "last_message_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// EdgeTenant holds the string denoting the tenant edge name in mutations.
	EdgeTenant = "tenant"
	// EdgeCustomer holds the string denoting the customer edge name in mutations.
	EdgeCustomer = "customer"
	// EdgeMessages holds the string denoting the messages edge name in mutations.
	EdgeMessages = "messages"
	// EdgeContext holds the string denoting the context edge name in mutations.
	EdgeContext = "context"
	// EdgeReferenceContexts holds the string denoting the reference_contexts edge name in mutations.
	EdgeReferenceContexts = "reference_contexts"
	// EdgeCheckoutSessions holds the string denoting the checkout_sessions edge name in mutations.
	EdgeCheckoutSessions = "checkout_sessions"
	// TenantFieldID holds the string denoting the ID field of the Tenant.
	TenantFieldID = "tenant_id"
	// CustomerFieldID holds the string denoting the ID field of the Customer.
	CustomerFieldID = "customer_id"
	// MessageFieldID holds the string denoting the ID field of the Message.
	MessageFieldID = "message_id"
	// ConversationContextFieldID holds the string denoting the ID field of the ConversationContext.
	ConversationContextFieldID = "context_id"
	// ReferenceContextFieldID holds the string denoting the ID field of the ReferenceContext.
	ReferenceContextFieldID = "reference_context_id"
	// CheckoutSessionFieldID holds the string denoting the ID field of the CheckoutSession.
	CheckoutSessionFieldID = "checkout_session_id"
	// Table holds the table name of the conversation in the database.
	Table = "conversations"
	// TenantTable is the table that holds the tenant relation/edge.
	TenantTable = "conversations"
	// TenantInverseTable is the table name for the Tenant entity.
	// It exists in this package in order to avoid circular dependency with the "tenant" package.
	TenantInverseTable = "tenants"
	// TenantColumn is the table column denoting the tenant relation/edge.
	TenantColumn = "tenant_id"
	// CustomerTable is the table that holds the customer relation/edge.
	CustomerTable = "conversations"
	// CustomerInverseTable is the table name for the Customer entity.
	// It exists in this package in order to avoid circular dependency with the "customer" package.
	CustomerInverseTable = "customers"
	// CustomerColumn is the table column denoting the customer relation/edge.
	CustomerColumn = "customer_id"
	// MessagesTable is the table that holds the messages relation/edge.
	MessagesTable = "messages"
	// MessagesInverseTable is the table name for the Message entity.
	// It exists in this package in order to avoid circular dependency with the "message" package.
	MessagesInverseTable = "messages"
	// MessagesColumn is the table column denoting the messages relation/edge.
	MessagesColumn = "conversation_id"
	// ContextTable is the table that holds the context relation/edge.
	ContextTable = "conversation_contexts"
	// ContextInverseTable is the table name for the ConversationContext entity.
	// It exists in this package in order to avoid circular dependency with the "conversationcontext" package.
	ContextInverseTable = "conversation_contexts"
	// ContextColumn is the table column denoting the context relation/edge.
	ContextColumn = "conversation_id"
	// ReferenceContextsTable is the table that holds the reference_contexts relation/edge.
	ReferenceContextsTable = "reference_contexts"
	// ReferenceContextsInverseTable is the table name for the ReferenceContext entity.
	// It exists in this package in order to avoid circular dependency with the "referencecontext" package.
	ReferenceContextsInverseTable = "reference_contexts"
	// ReferenceContextsColumn is the table column denoting the reference_contexts relation/edge.
	ReferenceContextsColumn = "conversation_id"
	// CheckoutSessionsTable is the table that holds the checkout_sessions relation/edge.
	CheckoutSessionsTable = "checkout_sessions"
	// CheckoutSessionsInverseTable is the table name for the CheckoutSession entity.
	// It exists in this package in order to avoid circular dependency with the "checkoutsession" package.
	CheckoutSessionsInverseTable = "checkout_sessions"
	// CheckoutSessionsColumn is the table column denoting the checkout_sessions relation/edge.
	CheckoutSessionsColumn = "conversation_id"
)

// Columns holds all SQL columns for conversation fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldCustomerID,
	FieldStatus,
	FieldCurrentSessionStart,
	FieldSessionMessageCount,
	FieldLastMessageAt,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDeletedAt,
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
	// DefaultSessionMessageCount holds the default value on creation for the "session_message_count" field.
	DefaultSessionMessageCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusBot is the default value of the Status enum.
const DefaultStatus = StatusBot

// Status values.
const (
	StatusOpen    Status = "open"
	StatusBot     Status = "bot"
	StatusHandoff Status = "handoff"
	StatusClosed  Status = "closed"
	StatusDormant Status = "dormant"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusOpen, StatusBot, StatusHandoff, StatusClosed, StatusDormant:
		return nil
	default:
		return fmt.Errorf("conversation: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Conversation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByCustomerID orders the results by the customer_id field.
func ByCustomerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomerID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCurrentSessionStart orders the results by the current_session_start field.
func ByCurrentSessionStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentSessionStart, opts...).ToFunc()
}

// BySessionMessageCount orders the results by the session_message_count field.
func BySessionMessageCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionMessageCount, opts...).ToFunc()
}

// ByLastMessageAt orders the results by the last_message_at field.
func ByLastMessageAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastMessageAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByTenantField orders the results by tenant field.
func ByTenantField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTenantStep(), sql.OrderByField(field, opts...))
	}
}

// ByCustomerField orders the results by customer field.
func ByCustomerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCustomerStep(), sql.OrderByField(field, opts...))
	}
}

// ByMessagesCount orders the results by messages count.
func ByMessagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMessagesStep(), opts...)
	}
}

// ByMessages orders the results by messages terms.
func ByMessages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMessagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByContextField orders the results by context field.
func ByContextField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newContextStep(), sql.OrderByField(field, opts...))
	}
}

// ByReferenceContextsCount orders the results by reference_contexts count.
func ByReferenceContextsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newReferenceContextsStep(), opts...)
	}
}

// ByReferenceContexts orders the results by reference_contexts terms.
func ByReferenceContexts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newReferenceContextsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByCheckoutSessionsCount orders the results by checkout_sessions count.
func ByCheckoutSessionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCheckoutSessionsStep(), opts...)
	}
}

// ByCheckoutSessions orders the results by checkout_sessions terms.
func ByCheckoutSessions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCheckoutSessionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newTenantStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TenantInverseTable, TenantFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TenantTable, TenantColumn),
	)
}
func newCustomerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CustomerInverseTable, CustomerFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CustomerTable, CustomerColumn),
	)
}
func newMessagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MessagesInverseTable, MessageFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
	)
}
func newContextStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ContextInverseTable, ConversationContextFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, ContextTable, ContextColumn),
	)
}
func newReferenceContextsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ReferenceContextsInverseTable, ReferenceContextFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ReferenceContextsTable, ReferenceContextsColumn),
	)
}
func newCheckoutSessionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CheckoutSessionsInverseTable, CheckoutSessionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CheckoutSessionsTable, CheckoutSessionsColumn),
	)
}
