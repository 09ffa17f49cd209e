// Code generated by ent, DO NOT EDIT.

package referencecontext

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/sokochat/sokochat/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldEQ(FieldTenantID, v))
}

// ConversationID applies equality check predicate on the "conversation_id" field. It's identical to ConversationIDEQ.
func ConversationID(v string) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldEQ(FieldConversationID, v))
}

// ListType applies equality check predicate on the "list_type" field. It's identical to ListTypeEQ.
func ListType(v string) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldEQ(FieldListType, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldEQ(FieldExpiresAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldEQ(FieldCreatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldContainsFold(FieldTenantID, v))
}

// ConversationIDEQ applies the EQ predicate on the "conversation_id" field.
func ConversationIDEQ(v string) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldEQ(FieldConversationID, v))
}

// ConversationIDNEQ applies the NEQ predicate on the "conversation_id" field.
func ConversationIDNEQ(v string) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldNEQ(FieldConversationID, v))
}

// ConversationIDIn applies the In predicate on the "conversation_id" field.
func ConversationIDIn(vs ...string) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldIn(FieldConversationID, vs...))
}

// ConversationIDNotIn applies the NotIn predicate on the "conversation_id" field.
func ConversationIDNotIn(vs ...string) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldNotIn(FieldConversationID, vs...))
}

// ConversationIDGT applies the GT predicate on the "conversation_id" field.
func ConversationIDGT(v string) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldGT(FieldConversationID, v))
}

// ConversationIDGTE applies the GTE predicate on the "conversation_id" field.
func ConversationIDGTE(v string) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldGTE(FieldConversationID, v))
}

// ConversationIDLT applies the LT predicate on the "conversation_id" field.
func ConversationIDLT(v string) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldLT(FieldConversationID, v))
}

// ConversationIDLTE applies the LTE predicate on the "conversation_id" field.
func ConversationIDLTE(v string) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldLTE(FieldConversationID, v))
}

// ConversationIDContains applies the Contains predicate on the "conversation_id" field.
func ConversationIDContains(v string) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldContains(FieldConversationID, v))
}

// ConversationIDHasPrefix applies the HasPrefix predicate on the "conversation_id" field.
func ConversationIDHasPrefix(v string) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldHasPrefix(FieldConversationID, v))
}

// ConversationIDHasSuffix applies the HasSuffix predicate on the "conversation_id" field.
func ConversationIDHasSuffix(v string) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldHasSuffix(FieldConversationID, v))
}

// ConversationIDEqualFold applies the EqualFold predicate on the "conversation_id" field.
func ConversationIDEqualFold(v string) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldEqualFold(FieldConversationID, v))
}

// ConversationIDContainsFold applies the ContainsFold predicate on the "conversation_id" field.
func ConversationIDContainsFold(v string) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldContainsFold(FieldConversationID, v))
}

// ListTypeEQ applies the EQ predicate on the "list_type" field.
func ListTypeEQ(v string) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldEQ(FieldListType, v))
}

// ListTypeNEQ applies the NEQ predicate on the "list_type" field.
func ListTypeNEQ(v string) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldNEQ(FieldListType, v))
}

// ListTypeIn applies the In predicate on the "list_type" field.
func ListTypeIn(vs ...string) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldIn(FieldListType, vs...))
}

// ListTypeNotIn applies the NotIn predicate on the "list_type" field.
func ListTypeNotIn(vs ...string) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldNotIn(FieldListType, vs...))
}

// ListTypeGT applies the GT predicate on the "list_type" field.
func ListTypeGT(v string) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldGT(FieldListType, v))
}

// ListTypeGTE applies the GTE predicate on the "list_type" field.
func ListTypeGTE(v string) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldGTE(FieldListType, v))
}

// ListTypeLT applies the LT predicate on the "list_type" field.
func ListTypeLT(v string) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldLT(FieldListType, v))
}

// ListTypeLTE applies the LTE predicate on the "list_type" field.
func ListTypeLTE(v string) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldLTE(FieldListType, v))
}

// ListTypeContains applies the Contains predicate on the "list_type" field.
func ListTypeContains(v string) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldContains(FieldListType, v))
}

// ListTypeHasPrefix applies the HasPrefix predicate on the "list_type" field.
func ListTypeHasPrefix(v string) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldHasPrefix(FieldListType, v))
}

// ListTypeHasSuffix applies the HasSuffix predicate on the "list_type" field.
func ListTypeHasSuffix(v string) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldHasSuffix(FieldListType, v))
}

// ListTypeEqualFold applies the EqualFold predicate on the "list_type" field.
func ListTypeEqualFold(v string) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldEqualFold(FieldListType, v))
}

// ListTypeContainsFold applies the ContainsFold predicate on the "list_type" field.
func ListTypeContainsFold(v string) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldContainsFold(FieldListType, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldLTE(FieldExpiresAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.FieldLTE(FieldCreatedAt, v))
}

// HasConversation applies the HasEdge predicate on the "conversation" edge.
func HasConversation() predicate.ReferenceContext {
	return predicate.ReferenceContext(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ConversationTable, ConversationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasConversationWith applies the HasEdge predicate on the "conversation" edge with a given conditions (other predicates).
func HasConversationWith(preds ...predicate.Conversation) predicate.ReferenceContext {
	return predicate.ReferenceContext(func(s *sql.Selector) {
		step := newConversationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReferenceContext) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReferenceContext) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReferenceContext) predicate.ReferenceContext {
	return predicate.ReferenceContext(sql.NotPredicates(p))
}
