// Code generated by ent, DO NOT EDIT.

package campaign

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the campaign type in the database.
	Label = "campaign"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "campaign_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldTargeting holds the string denoting the targeting field in the database.
	FieldTargeting = "targeting"
	// FieldIsAbTest holds the string denoting the is_ab_test field in the database.
	FieldIsAbTest = "is_ab_test"
	// FieldVariants holds the string denoting the variants field in the database.
	FieldVariants = "variants"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldScheduledAt holds the string denoting the scheduled_at field in the database.
	FieldScheduledAt = "scheduled_at"
	// FieldTargetedCount holds the string denoting the targeted_count field in the database.
	FieldTargetedCount = "targeted_count"
	// FieldDeliveredCount holds the string denoting the delivered_count field in the database.
	FieldDeliveredCount = "delivered_count"
	// FieldFailedCount holds the string denoting the failed_count field in the database.
	FieldFailedCount = "failed_count"
	// FieldReadCount holds the string denoting the read_count field in the database.
	FieldReadCount = "read_count"
	// FieldResponseCount holds the string denoting the response_count field in the database.
	FieldResponseCount = "response_count"
	// FieldConversionCount holds the string denoting the conversion_count field in the database.
	FieldConversionCount = "conversion_count"
	// FieldSkippedNoConsentCount holds the string denoting the skipped_no_consent_count field in the database.
	FieldSkippedNoConsentCount = "skipped_no_consent_count"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// EdgeTenant holds the string denoting the tenant edge name in mutations.
	EdgeTenant = "tenant"
	// TenantFieldID holds the string denoting the ID field of the Tenant.
	TenantFieldID = "tenant_id"
	// Table holds the table name of the campaign in the database.
	Table = "campaigns"
	// TenantTable is the table that holds the tenant relation/edge.
	TenantTable = "campaigns"
	// TenantInverseTable is the table name for the Tenant entity.
	// It exists in this package in order to avoid circular dependency with the "tenant" package.
	TenantInverseTable = "tenants"
	// TenantColumn is the table column denoting the tenant relation/edge.
	TenantColumn = "tenant_id"
)

// Columns holds all SQL columns for campaign fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldName,
	FieldTargeting,
	FieldIsAbTest,
	FieldVariants,
	FieldContent,
	FieldStatus,
	FieldScheduledAt,
	FieldTargetedCount,
	FieldDeliveredCount,
	FieldFailedCount,
	FieldReadCount,
	FieldResponseCount,
	FieldConversionCount,
	FieldSkippedNoConsentCount,
	FieldMetadata,
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
	// DefaultIsAbTest holds the default value on creation for the "is_ab_test" field.
	DefaultIsAbTest bool
	// DefaultTargetedCount holds the default value on creation for the "targeted_count" field.
	DefaultTargetedCount int
	// DefaultDeliveredCount holds the default value on creation for the "delivered_count" field.
	DefaultDeliveredCount int
	// DefaultFailedCount holds the default value on creation for the "failed_count" field.
	DefaultFailedCount int
	// DefaultReadCount holds the default value on creation for the "read_count" field.
	DefaultReadCount int
	// DefaultResponseCount holds the default value on creation for the "response_count" field.
	DefaultResponseCount int
	// DefaultConversionCount holds the default value on creation for the "conversion_count" field.
	DefaultConversionCount int
	// DefaultSkippedNoConsentCount holds the default value on creation for the "skipped_no_consent_count" field.
	DefaultSkippedNoConsentCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusDraft is the default value of the Status enum.
const DefaultStatus = StatusDraft

// Status values.
const (
	StatusDraft     Status = "draft"
	StatusScheduled Status = "scheduled"
	StatusSending   Status = "sending"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusDraft, StatusScheduled, StatusSending, StatusCompleted, StatusCanceled:
		return nil
	default:
		return fmt.Errorf("campaign: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Campaign queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByIsAbTest orders the results by the is_ab_test field.
func ByIsAbTest(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsAbTest, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByScheduledAt orders the results by the scheduled_at field.
func ByScheduledAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScheduledAt, opts...).ToFunc()
}

// ByTargetedCount orders the results by the targeted_count field.
func ByTargetedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetedCount, opts...).ToFunc()
}

// ByDeliveredCount orders the results by the delivered_count field.
func ByDeliveredCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeliveredCount, opts...).ToFunc()
}

// ByFailedCount orders the results by the failed_count field.
func ByFailedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailedCount, opts...).ToFunc()
}

// ByReadCount orders the results by the read_count field.
func ByReadCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReadCount, opts...).ToFunc()
}

// ByResponseCount orders the results by the response_count field.
func ByResponseCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponseCount, opts...).ToFunc()
}

// ByConversionCount orders the results by the conversion_count field.
func ByConversionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConversionCount, opts...).ToFunc()
}

// BySkippedNoConsentCount orders the results by the skipped_no_consent_count field.
func BySkippedNoConsentCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkippedNoConsentCount, opts...).ToFunc()
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
func newTenantStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TenantInverseTable, TenantFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TenantTable, TenantColumn),
	)
}
