// Code generated by ent, DO NOT EDIT.

package userpermission

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/sokochat/sokochat/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldEQ(FieldTenantID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldEQ(FieldUserID, v))
}

// PermissionCode applies equality check predicate on the "permission_code" field. It's identical to PermissionCodeEQ.
func PermissionCode(v string) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldEQ(FieldPermissionCode, v))
}

// Granted applies equality check predicate on the "granted" field. It's identical to GrantedEQ.
func Granted(v bool) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldEQ(FieldGranted, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldEQ(FieldCreatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldContainsFold(FieldTenantID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldContainsFold(FieldUserID, v))
}

// PermissionCodeEQ applies the EQ predicate on the "permission_code" field.
func PermissionCodeEQ(v string) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldEQ(FieldPermissionCode, v))
}

// PermissionCodeNEQ applies the NEQ predicate on the "permission_code" field.
func PermissionCodeNEQ(v string) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldNEQ(FieldPermissionCode, v))
}

// PermissionCodeIn applies the In predicate on the "permission_code" field.
func PermissionCodeIn(vs ...string) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldIn(FieldPermissionCode, vs...))
}

// PermissionCodeNotIn applies the NotIn predicate on the "permission_code" field.
func PermissionCodeNotIn(vs ...string) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldNotIn(FieldPermissionCode, vs...))
}

// PermissionCodeGT applies the GT predicate on the "permission_code" field.
func PermissionCodeGT(v string) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldGT(FieldPermissionCode, v))
}

// PermissionCodeGTE applies the GTE predicate on the "permission_code" field.
func PermissionCodeGTE(v string) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldGTE(FieldPermissionCode, v))
}

// PermissionCodeLT applies the LT predicate on the "permission_code" field.
func PermissionCodeLT(v string) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldLT(FieldPermissionCode, v))
}

// PermissionCodeLTE applies the LTE predicate on the "permission_code" field.
func PermissionCodeLTE(v string) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldLTE(FieldPermissionCode, v))
}

// PermissionCodeContains applies the Contains predicate on the "permission_code" field.
func PermissionCodeContains(v string) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldContains(FieldPermissionCode, v))
}

// PermissionCodeHasPrefix applies the HasPrefix predicate on the "permission_code" field.
func PermissionCodeHasPrefix(v string) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldHasPrefix(FieldPermissionCode, v))
}

// PermissionCodeHasSuffix applies the HasSuffix predicate on the "permission_code" field.
func PermissionCodeHasSuffix(v string) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldHasSuffix(FieldPermissionCode, v))
}

// PermissionCodeEqualFold applies the EqualFold predicate on the "permission_code" field.
func PermissionCodeEqualFold(v string) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldEqualFold(FieldPermissionCode, v))
}

// PermissionCodeContainsFold applies the ContainsFold predicate on the "permission_code" field.
func PermissionCodeContainsFold(v string) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldContainsFold(FieldPermissionCode, v))
}

// GrantedEQ applies the EQ predicate on the "granted" field.
func GrantedEQ(v bool) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldEQ(FieldGranted, v))
}

// GrantedNEQ applies the NEQ predicate on the "granted" field.
func GrantedNEQ(v bool) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldNEQ(FieldGranted, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.UserPermission {
	return predicate.UserPermission(sql.FieldLTE(FieldCreatedAt, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.UserPermission {
	return predicate.UserPermission(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.UserPermission {
	return predicate.UserPermission(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UserPermission) predicate.UserPermission {
	return predicate.UserPermission(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UserPermission) predicate.UserPermission {
	return predicate.UserPermission(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UserPermission) predicate.UserPermission {
	return predicate.UserPermission(sql.NotPredicates(p))
}
