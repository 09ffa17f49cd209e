// Code generated by ent, DO NOT EDIT.

package tenantsettings

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the tenantsettings type in the database.
	Label = "tenant_settings"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "settings_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldTelephonyCredentials holds the string denoting the telephony_credentials field in the database.
	FieldTelephonyCredentials = "telephony_credentials"
	// FieldCommerceCredentials holds the string denoting the commerce_credentials field in the database.
	FieldCommerceCredentials = "commerce_credentials"
	// FieldLlmCredentials holds the string denoting the llm_credentials field in the database.
	FieldLlmCredentials = "llm_credentials"
	// FieldPaymentCredentials holds the string denoting the payment_credentials field in the database.
	FieldPaymentCredentials = "payment_credentials"
	// FieldStoreURL holds the string denoting the store_url field in the database.
	FieldStoreURL = "store_url"
	// FieldFeatureFlags holds the string denoting the feature_flags field in the database.
	FieldFeatureFlags = "feature_flags"
	// FieldBusinessHours holds the string denoting the business_hours field in the database.
	FieldBusinessHours = "business_hours"
	// FieldNotificationPreferences holds the string denoting the notification_preferences field in the database.
	FieldNotificationPreferences = "notification_preferences"
	// FieldBranding holds the string denoting the branding field in the database.
	FieldBranding = "branding"
	// FieldOnboardingSteps holds the string denoting the onboarding_steps field in the database.
	FieldOnboardingSteps = "onboarding_steps"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeTenant holds the string denoting the tenant edge name in mutations.
	EdgeTenant = "tenant"
	// TenantFieldID holds the string denoting the ID field of the Tenant.
	TenantFieldID = "tenant_id"
	// Table holds the table name of the tenantsettings in the database.
	Table = "tenant_settings"
	// TenantTable is the table that holds the tenant relation/edge.
	TenantTable = "tenant_settings"
	// TenantInverseTable is the table name for the Tenant entity.
	// It exists in this package in order to avoid circular dependency with the "tenant" package.
	TenantInverseTable = "tenants"
	// TenantColumn is the table column denoting the tenant relation/edge.
	TenantColumn = "tenant_id"
)

// Columns holds all SQL columns for tenantsettings fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldTelephonyCredentials,
	FieldCommerceCredentials,
	FieldLlmCredentials,
	FieldPaymentCredentials,
	FieldStoreURL,
	FieldFeatureFlags,
	FieldBusinessHours,
	FieldNotificationPreferences,
	FieldBranding,
	FieldOnboardingSteps,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the TenantSettings queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByStoreURL orders the results by the store_url field.
func ByStoreURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStoreURL, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
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
		sqlgraph.Edge(sqlgraph.O2O, true, TenantTable, TenantColumn),
	)
}
