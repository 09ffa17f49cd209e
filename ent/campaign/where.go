// Code generated by ent, DO NOT EDIT.

package campaign

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/sokochat/sokochat/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldTenantID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldName, v))
}

// IsAbTest applies equality check predicate on the "is_ab_test" field. It's identical to IsAbTestEQ.
func IsAbTest(v bool) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldIsAbTest, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldContent, v))
}

// ScheduledAt applies equality check predicate on the "scheduled_at" field. It's identical to ScheduledAtEQ.
func ScheduledAt(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldScheduledAt, v))
}

// TargetedCount applies equality check predicate on the "targeted_count" field. It's identical to TargetedCountEQ.
func TargetedCount(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldTargetedCount, v))
}

// DeliveredCount applies equality check predicate on the "delivered_count" field. It's identical to DeliveredCountEQ.
func DeliveredCount(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldDeliveredCount, v))
}

// FailedCount applies equality check predicate on the "failed_count" field. It's identical to FailedCountEQ.
func FailedCount(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldFailedCount, v))
}

// ReadCount applies equality check predicate on the "read_count" field. It's identical to ReadCountEQ.
func ReadCount(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldReadCount, v))
}

// ResponseCount applies equality check predicate on the "response_count" field. It's identical to ResponseCountEQ.
func ResponseCount(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldResponseCount, v))
}

// ConversionCount applies equality check predicate on the "conversion_count" field. It's identical to ConversionCountEQ.
func ConversionCount(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldConversionCount, v))
}

// SkippedNoConsentCount applies equality check predicate on the "skipped_no_consent_count" field. It's identical to SkippedNoConsentCountEQ.
func SkippedNoConsentCount(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldSkippedNoConsentCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldDeletedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContainsFold(FieldTenantID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContainsFold(FieldName, v))
}

// TargetingIsNil applies the IsNil predicate on the "targeting" field.
func TargetingIsNil() predicate.Campaign {
	return predicate.Campaign(sql.FieldIsNull(FieldTargeting))
}

// TargetingNotNil applies the NotNil predicate on the "targeting" field.
func TargetingNotNil() predicate.Campaign {
	return predicate.Campaign(sql.FieldNotNull(FieldTargeting))
}

// IsAbTestEQ applies the EQ predicate on the "is_ab_test" field.
func IsAbTestEQ(v bool) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldIsAbTest, v))
}

// IsAbTestNEQ applies the NEQ predicate on the "is_ab_test" field.
func IsAbTestNEQ(v bool) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldIsAbTest, v))
}

// VariantsIsNil applies the IsNil predicate on the "variants" field.
func VariantsIsNil() predicate.Campaign {
	return predicate.Campaign(sql.FieldIsNull(FieldVariants))
}

// VariantsNotNil applies the NotNil predicate on the "variants" field.
func VariantsNotNil() predicate.Campaign {
	return predicate.Campaign(sql.FieldNotNull(FieldVariants))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldHasSuffix(FieldContent, v))
}

// ContentIsNil applies the IsNil predicate on the "content" field.
func ContentIsNil() predicate.Campaign {
	return predicate.Campaign(sql.FieldIsNull(FieldContent))
}

// ContentNotNil applies the NotNil predicate on the "content" field.
func ContentNotNil() predicate.Campaign {
	return predicate.Campaign(sql.FieldNotNull(FieldContent))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContainsFold(FieldContent, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldStatus, vs...))
}

// ScheduledAtEQ applies the EQ predicate on the "scheduled_at" field.
func ScheduledAtEQ(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldScheduledAt, v))
}

// ScheduledAtNEQ applies the NEQ predicate on the "scheduled_at" field.
func ScheduledAtNEQ(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldScheduledAt, v))
}

// ScheduledAtIn applies the In predicate on the "scheduled_at" field.
func ScheduledAtIn(vs ...time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldScheduledAt, vs...))
}

// ScheduledAtNotIn applies the NotIn predicate on the "scheduled_at" field.
func ScheduledAtNotIn(vs ...time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldScheduledAt, vs...))
}

// ScheduledAtGT applies the GT predicate on the "scheduled_at" field.
func ScheduledAtGT(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldScheduledAt, v))
}

// ScheduledAtGTE applies the GTE predicate on the "scheduled_at" field.
func ScheduledAtGTE(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldScheduledAt, v))
}

// ScheduledAtLT applies the LT predicate on the "scheduled_at" field.
func ScheduledAtLT(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldScheduledAt, v))
}

// ScheduledAtLTE applies the LTE predicate on the "scheduled_at" field.
func ScheduledAtLTE(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldScheduledAt, v))
}

// ScheduledAtIsNil applies the IsNil predicate on the "scheduled_at" field.
func ScheduledAtIsNil() predicate.Campaign {
	return predicate.Campaign(sql.FieldIsNull(FieldScheduledAt))
}

// ScheduledAtNotNil applies the NotNil predicate on the "scheduled_at" field.
func ScheduledAtNotNil() predicate.Campaign {
	return predicate.Campaign(sql.FieldNotNull(FieldScheduledAt))
}

// TargetedCountEQ applies the EQ predicate on the "targeted_count" field.
func TargetedCountEQ(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldTargetedCount, v))
}

// TargetedCountNEQ applies the NEQ predicate on the "targeted_count" field.
func TargetedCountNEQ(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldTargetedCount, v))
}

// TargetedCountIn applies the In predicate on the "targeted_count" field.
func TargetedCountIn(vs ...int) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldTargetedCount, vs...))
}

// TargetedCountNotIn applies the NotIn predicate on the "targeted_count" field.
func TargetedCountNotIn(vs ...int) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldTargetedCount, vs...))
}

// TargetedCountGT applies the GT predicate on the "targeted_count" field.
func TargetedCountGT(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldTargetedCount, v))
}

// TargetedCountGTE applies the GTE predicate on the "targeted_count" field.
func TargetedCountGTE(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldTargetedCount, v))
}

// TargetedCountLT applies the LT predicate on the "targeted_count" field.
func TargetedCountLT(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldTargetedCount, v))
}

// TargetedCountLTE applies the LTE predicate on the "targeted_count" field.
func TargetedCountLTE(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldTargetedCount, v))
}

// DeliveredCountEQ applies the EQ predicate on the "delivered_count" field.
func DeliveredCountEQ(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldDeliveredCount, v))
}

// DeliveredCountNEQ applies the NEQ predicate on the "delivered_count" field.
func DeliveredCountNEQ(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldDeliveredCount, v))
}

// DeliveredCountIn applies the In predicate on the "delivered_count" field.
func DeliveredCountIn(vs ...int) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldDeliveredCount, vs...))
}

// DeliveredCountNotIn applies the NotIn predicate on the "delivered_count" field.
func DeliveredCountNotIn(vs ...int) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldDeliveredCount, vs...))
}

// DeliveredCountGT applies the GT predicate on the "delivered_count" field.
func DeliveredCountGT(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldDeliveredCount, v))
}

// DeliveredCountGTE applies the GTE predicate on the "delivered_count" field.
func DeliveredCountGTE(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldDeliveredCount, v))
}

// DeliveredCountLT applies the LT predicate on the "delivered_count" field.
func DeliveredCountLT(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldDeliveredCount, v))
}

// DeliveredCountLTE applies the LTE predicate on the "delivered_count" field.
func DeliveredCountLTE(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldDeliveredCount, v))
}

// FailedCountEQ applies the EQ predicate on the "failed_count" field.
func FailedCountEQ(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldFailedCount, v))
}

// FailedCountNEQ applies the NEQ predicate on the "failed_count" field.
func FailedCountNEQ(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldFailedCount, v))
}

// FailedCountIn applies the In predicate on the "failed_count" field.
func FailedCountIn(vs ...int) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldFailedCount, vs...))
}

// FailedCountNotIn applies the NotIn predicate on the "failed_count" field.
func FailedCountNotIn(vs ...int) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldFailedCount, vs...))
}

// FailedCountGT applies the GT predicate on the "failed_count" field.
func FailedCountGT(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldFailedCount, v))
}

// FailedCountGTE applies the GTE predicate on the "failed_count" field.
func FailedCountGTE(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldFailedCount, v))
}

// FailedCountLT applies the LT predicate on the "failed_count" field.
func FailedCountLT(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldFailedCount, v))
}

// FailedCountLTE applies the LTE predicate on the "failed_count" field.
func FailedCountLTE(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldFailedCount, v))
}

// ReadCountEQ applies the EQ predicate on the "read_count" field.
func ReadCountEQ(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldReadCount, v))
}

// ReadCountNEQ applies the NEQ predicate on the "read_count" field.
func ReadCountNEQ(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldReadCount, v))
}

// ReadCountIn applies the In predicate on the "read_count" field.
func ReadCountIn(vs ...int) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldReadCount, vs...))
}

// ReadCountNotIn applies the NotIn predicate on the "read_count" field.
func ReadCountNotIn(vs ...int) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldReadCount, vs...))
}

// ReadCountGT applies the GT predicate on the "read_count" field.
func ReadCountGT(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldReadCount, v))
}

// ReadCountGTE applies the GTE predicate on the "read_count" field.
func ReadCountGTE(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldReadCount, v))
}

// ReadCountLT applies the LT predicate on the "read_count" field.
func ReadCountLT(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldReadCount, v))
}

// ReadCountLTE applies the LTE predicate on the "read_count" field.
func ReadCountLTE(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldReadCount, v))
}

// ResponseCountEQ applies the EQ predicate on the "response_count" field.
func ResponseCountEQ(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldResponseCount, v))
}

// ResponseCountNEQ applies the NEQ predicate on the "response_count" field.
func ResponseCountNEQ(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldResponseCount, v))
}

// ResponseCountIn applies the In predicate on the "response_count" field.
func ResponseCountIn(vs ...int) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldResponseCount, vs...))
}

// ResponseCountNotIn applies the NotIn predicate on the "response_count" field.
func ResponseCountNotIn(vs ...int) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldResponseCount, vs...))
}

// ResponseCountGT applies the GT predicate on the "response_count" field.
func ResponseCountGT(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldResponseCount, v))
}

// ResponseCountGTE applies the GTE predicate on the "response_count" field.
func ResponseCountGTE(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldResponseCount, v))
}

// ResponseCountLT applies the LT predicate on the "response_count" field.
func ResponseCountLT(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldResponseCount, v))
}

// ResponseCountLTE applies the LTE predicate on the "response_count" field.
func ResponseCountLTE(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldResponseCount, v))
}

// ConversionCountEQ applies the EQ predicate on the "conversion_count" field.
func ConversionCountEQ(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldConversionCount, v))
}

// ConversionCountNEQ applies the NEQ predicate on the "conversion_count" field.
func ConversionCountNEQ(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldConversionCount, v))
}

// ConversionCountIn applies the In predicate on the "conversion_count" field.
func ConversionCountIn(vs ...int) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldConversionCount, vs...))
}

// ConversionCountNotIn applies the NotIn predicate on the "conversion_count" field.
func ConversionCountNotIn(vs ...int) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldConversionCount, vs...))
}

// ConversionCountGT applies the GT predicate on the "conversion_count" field.
func ConversionCountGT(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldConversionCount, v))
}

// ConversionCountGTE applies the GTE predicate on the "conversion_count" field.
func ConversionCountGTE(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldConversionCount, v))
}

// ConversionCountLT applies the LT predicate on the "conversion_count" field.
func ConversionCountLT(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldConversionCount, v))
}

// ConversionCountLTE applies the LTE predicate on the "conversion_count" field.
func ConversionCountLTE(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldConversionCount, v))
}

// SkippedNoConsentCountEQ applies the EQ predicate on the "skipped_no_consent_count" field.
func SkippedNoConsentCountEQ(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldSkippedNoConsentCount, v))
}

// SkippedNoConsentCountNEQ applies the NEQ predicate on the "skipped_no_consent_count" field.
func SkippedNoConsentCountNEQ(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldSkippedNoConsentCount, v))
}

// SkippedNoConsentCountIn applies the In predicate on the "skipped_no_consent_count" field.
func SkippedNoConsentCountIn(vs ...int) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldSkippedNoConsentCount, vs...))
}

// SkippedNoConsentCountNotIn applies the NotIn predicate on the "skipped_no_consent_count" field.
func SkippedNoConsentCountNotIn(vs ...int) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldSkippedNoConsentCount, vs...))
}

// SkippedNoConsentCountGT applies the GT predicate on the "skipped_no_consent_count" field.
func SkippedNoConsentCountGT(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldSkippedNoConsentCount, v))
}

// SkippedNoConsentCountGTE applies the GTE predicate on the "skipped_no_consent_count" field.
func SkippedNoConsentCountGTE(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldSkippedNoConsentCount, v))
}

// SkippedNoConsentCountLT applies the LT predicate on the "skipped_no_consent_count" field.
func SkippedNoConsentCountLT(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldSkippedNoConsentCount, v))
}

// SkippedNoConsentCountLTE applies the LTE predicate on the "skipped_no_consent_count" field.
func SkippedNoConsentCountLTE(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldSkippedNoConsentCount, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.Campaign {
	return predicate.Campaign(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.Campaign {
	return predicate.Campaign(sql.FieldNotNull(FieldMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Campaign {
	return predicate.Campaign(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Campaign {
	return predicate.Campaign(sql.FieldNotNull(FieldDeletedAt))
}

// HasTenant applies the HasEdge predicate on the "tenant" edge.
func HasTenant() predicate.Campaign {
	return predicate.Campaign(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TenantTable, TenantColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTenantWith applies the HasEdge predicate on the "tenant" edge with a given conditions (other predicates).
func HasTenantWith(preds ...predicate.Tenant) predicate.Campaign {
	return predicate.Campaign(func(s *sql.Selector) {
		step := newTenantStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Campaign) predicate.Campaign {
	return predicate.Campaign(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Campaign) predicate.Campaign {
	return predicate.Campaign(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Campaign) predicate.Campaign {
	return predicate.Campaign(sql.NotPredicates(p))
}
