// Code generated by ent, DO NOT EDIT.

package knowledgeentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/sokochat/sokochat/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldEQ(FieldTenantID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldEQ(FieldTitle, v))
}

// Body applies equality check predicate on the "body" field. It's identical to BodyEQ.
func Body(v string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldEQ(FieldBody, v))
}

// VectorPointID applies equality check predicate on the "vector_point_id" field. It's identical to VectorPointIDEQ.
func VectorPointID(v string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldEQ(FieldVectorPointID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldEQ(FieldDeletedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldContainsFold(FieldTenantID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldContainsFold(FieldTitle, v))
}

// BodyEQ applies the EQ predicate on the "body" field.
func BodyEQ(v string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldEQ(FieldBody, v))
}

// BodyNEQ applies the NEQ predicate on the "body" field.
func BodyNEQ(v string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldNEQ(FieldBody, v))
}

// BodyIn applies the In predicate on the "body" field.
func BodyIn(vs ...string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldIn(FieldBody, vs...))
}

// BodyNotIn applies the NotIn predicate on the "body" field.
func BodyNotIn(vs ...string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldNotIn(FieldBody, vs...))
}

// BodyGT applies the GT predicate on the "body" field.
func BodyGT(v string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldGT(FieldBody, v))
}

// BodyGTE applies the GTE predicate on the "body" field.
func BodyGTE(v string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldGTE(FieldBody, v))
}

// BodyLT applies the LT predicate on the "body" field.
func BodyLT(v string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldLT(FieldBody, v))
}

// BodyLTE applies the LTE predicate on the "body" field.
func BodyLTE(v string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldLTE(FieldBody, v))
}

// BodyContains applies the Contains predicate on the "body" field.
func BodyContains(v string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldContains(FieldBody, v))
}

// BodyHasPrefix applies the HasPrefix predicate on the "body" field.
func BodyHasPrefix(v string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldHasPrefix(FieldBody, v))
}

// BodyHasSuffix applies the HasSuffix predicate on the "body" field.
func BodyHasSuffix(v string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldHasSuffix(FieldBody, v))
}

// BodyEqualFold applies the EqualFold predicate on the "body" field.
func BodyEqualFold(v string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldEqualFold(FieldBody, v))
}

// BodyContainsFold applies the ContainsFold predicate on the "body" field.
func BodyContainsFold(v string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldContainsFold(FieldBody, v))
}

// TagsIsNil applies the IsNil predicate on the "tags" field.
func TagsIsNil() predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldIsNull(FieldTags))
}

// TagsNotNil applies the NotNil predicate on the "tags" field.
func TagsNotNil() predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldNotNull(FieldTags))
}

// VectorPointIDEQ applies the EQ predicate on the "vector_point_id" field.
func VectorPointIDEQ(v string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldEQ(FieldVectorPointID, v))
}

// VectorPointIDNEQ applies the NEQ predicate on the "vector_point_id" field.
func VectorPointIDNEQ(v string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldNEQ(FieldVectorPointID, v))
}

// VectorPointIDIn applies the In predicate on the "vector_point_id" field.
func VectorPointIDIn(vs ...string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldIn(FieldVectorPointID, vs...))
}

// VectorPointIDNotIn applies the NotIn predicate on the "vector_point_id" field.
func VectorPointIDNotIn(vs ...string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldNotIn(FieldVectorPointID, vs...))
}

// VectorPointIDGT applies the GT predicate on the "vector_point_id" field.
func VectorPointIDGT(v string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldGT(FieldVectorPointID, v))
}

// VectorPointIDGTE applies the GTE predicate on the "vector_point_id" field.
func VectorPointIDGTE(v string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldGTE(FieldVectorPointID, v))
}

// VectorPointIDLT applies the LT predicate on the "vector_point_id" field.
func VectorPointIDLT(v string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldLT(FieldVectorPointID, v))
}

// VectorPointIDLTE applies the LTE predicate on the "vector_point_id" field.
func VectorPointIDLTE(v string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldLTE(FieldVectorPointID, v))
}

// VectorPointIDContains applies the Contains predicate on the "vector_point_id" field.
func VectorPointIDContains(v string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldContains(FieldVectorPointID, v))
}

// VectorPointIDHasPrefix applies the HasPrefix predicate on the "vector_point_id" field.
func VectorPointIDHasPrefix(v string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldHasPrefix(FieldVectorPointID, v))
}

// VectorPointIDHasSuffix applies the HasSuffix predicate on the "vector_point_id" field.
func VectorPointIDHasSuffix(v string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldHasSuffix(FieldVectorPointID, v))
}

// VectorPointIDIsNil applies the IsNil predicate on the "vector_point_id" field.
func VectorPointIDIsNil() predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldIsNull(FieldVectorPointID))
}

// VectorPointIDNotNil applies the NotNil predicate on the "vector_point_id" field.
func VectorPointIDNotNil() predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldNotNull(FieldVectorPointID))
}

// VectorPointIDEqualFold applies the EqualFold predicate on the "vector_point_id" field.
func VectorPointIDEqualFold(v string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldEqualFold(FieldVectorPointID, v))
}

// VectorPointIDContainsFold applies the ContainsFold predicate on the "vector_point_id" field.
func VectorPointIDContainsFold(v string) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldContainsFold(FieldVectorPointID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.FieldNotNull(FieldDeletedAt))
}

// HasTenant applies the HasEdge predicate on the "tenant" edge.
func HasTenant() predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TenantTable, TenantColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTenantWith applies the HasEdge predicate on the "tenant" edge with a given conditions (other predicates).
func HasTenantWith(preds ...predicate.Tenant) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(func(s *sql.Selector) {
		step := newTenantStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.KnowledgeEntry) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.KnowledgeEntry) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.KnowledgeEntry) predicate.KnowledgeEntry {
	return predicate.KnowledgeEntry(sql.NotPredicates(p))
}
