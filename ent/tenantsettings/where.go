// Code generated by ent, DO NOT EDIT.

package tenantsettings

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/sokochat/sokochat/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldEQ(FieldTenantID, v))
}

// TelephonyCredentials applies equality check predicate on the "telephony_credentials" field. It's identical to TelephonyCredentialsEQ.
func TelephonyCredentials(v []byte) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldEQ(FieldTelephonyCredentials, v))
}

// CommerceCredentials applies equality check predicate on the "commerce_credentials" field. It's identical to CommerceCredentialsEQ.
func CommerceCredentials(v []byte) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldEQ(FieldCommerceCredentials, v))
}

// LlmCredentials applies equality check predicate on the "llm_credentials" field. It's identical to LlmCredentialsEQ.
func LlmCredentials(v []byte) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldEQ(FieldLlmCredentials, v))
}

// PaymentCredentials applies equality check predicate on the "payment_credentials" field. It's identical to PaymentCredentialsEQ.
func PaymentCredentials(v []byte) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldEQ(FieldPaymentCredentials, v))
}

// StoreURL applies equality check predicate on the "store_url" field. It's identical to StoreURLEQ.
func StoreURL(v string) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldEQ(FieldStoreURL, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldContainsFold(FieldTenantID, v))
}

// TelephonyCredentialsEQ applies the EQ predicate on the "telephony_credentials" field.
func TelephonyCredentialsEQ(v []byte) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldEQ(FieldTelephonyCredentials, v))
}

// TelephonyCredentialsNEQ applies the NEQ predicate on the "telephony_credentials" field.
func TelephonyCredentialsNEQ(v []byte) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldNEQ(FieldTelephonyCredentials, v))
}

// TelephonyCredentialsIn applies the In predicate on the "telephony_credentials" field.
func TelephonyCredentialsIn(vs ...[]byte) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldIn(FieldTelephonyCredentials, vs...))
}

// TelephonyCredentialsNotIn applies the NotIn predicate on the "telephony_credentials" field.
func TelephonyCredentialsNotIn(vs ...[]byte) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldNotIn(FieldTelephonyCredentials, vs...))
}

// TelephonyCredentialsGT applies the GT predicate on the "telephony_credentials" field.
func TelephonyCredentialsGT(v []byte) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldGT(FieldTelephonyCredentials, v))
}

// TelephonyCredentialsGTE applies the GTE predicate on the "telephony_credentials" field.
func TelephonyCredentialsGTE(v []byte) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldGTE(FieldTelephonyCredentials, v))
}

// TelephonyCredentialsLT applies the LT predicate on the "telephony_credentials" field.
func TelephonyCredentialsLT(v []byte) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldLT(FieldTelephonyCredentials, v))
}

// TelephonyCredentialsLTE applies the LTE predicate on the "telephony_credentials" field.
func TelephonyCredentialsLTE(v []byte) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldLTE(FieldTelephonyCredentials, v))
}

// TelephonyCredentialsIsNil applies the IsNil predicate on the "telephony_credentials" field.
func TelephonyCredentialsIsNil() predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldIsNull(FieldTelephonyCredentials))
}

// TelephonyCredentialsNotNil applies the NotNil predicate on the "telephony_credentials" field.
func TelephonyCredentialsNotNil() predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldNotNull(FieldTelephonyCredentials))
}

// CommerceCredentialsEQ applies the EQ predicate on the "commerce_credentials" field.
func CommerceCredentialsEQ(v []byte) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldEQ(FieldCommerceCredentials, v))
}

// CommerceCredentialsNEQ applies the NEQ predicate on the "commerce_credentials" field.
func CommerceCredentialsNEQ(v []byte) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldNEQ(FieldCommerceCredentials, v))
}

// CommerceCredentialsIn applies the In predicate on the "commerce_credentials" field.
func CommerceCredentialsIn(vs ...[]byte) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldIn(FieldCommerceCredentials, vs...))
}

// CommerceCredentialsNotIn applies the NotIn predicate on the "commerce_credentials" field.
func CommerceCredentialsNotIn(vs ...[]byte) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldNotIn(FieldCommerceCredentials, vs...))
}

// CommerceCredentialsGT applies the GT predicate on the "commerce_credentials" field.
func CommerceCredentialsGT(v []byte) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldGT(FieldCommerceCredentials, v))
}

// CommerceCredentialsGTE applies the GTE predicate on the "commerce_credentials" field.
func CommerceCredentialsGTE(v []byte) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldGTE(FieldCommerceCredentials, v))
}

// CommerceCredentialsLT applies the LT predicate on the "commerce_credentials" field.
func CommerceCredentialsLT(v []byte) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldLT(FieldCommerceCredentials, v))
}

// CommerceCredentialsLTE applies the LTE predicate on the "commerce_credentials" field.
func CommerceCredentialsLTE(v []byte) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldLTE(FieldCommerceCredentials, v))
}

// CommerceCredentialsIsNil applies the IsNil predicate on the "commerce_credentials" field.
func CommerceCredentialsIsNil() predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldIsNull(FieldCommerceCredentials))
}

// CommerceCredentialsNotNil applies the NotNil predicate on the "commerce_credentials" field.
func CommerceCredentialsNotNil() predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldNotNull(FieldCommerceCredentials))
}

// LlmCredentialsEQ applies the EQ predicate on the "llm_credentials" field.
func LlmCredentialsEQ(v []byte) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldEQ(FieldLlmCredentials, v))
}

// LlmCredentialsNEQ applies the NEQ predicate on the "llm_credentials" field.
func LlmCredentialsNEQ(v []byte) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldNEQ(FieldLlmCredentials, v))
}

// LlmCredentialsIn applies the In predicate on the "llm_credentials" field.
func LlmCredentialsIn(vs ...[]byte) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldIn(FieldLlmCredentials, vs...))
}

// LlmCredentialsNotIn applies the NotIn predicate on the "llm_credentials" field.
func LlmCredentialsNotIn(vs ...[]byte) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldNotIn(FieldLlmCredentials, vs...))
}

// LlmCredentialsGT applies the GT predicate on the "llm_credentials" field.
func LlmCredentialsGT(v []byte) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldGT(FieldLlmCredentials, v))
}

// LlmCredentialsGTE applies the GTE predicate on the "llm_credentials" field.
func LlmCredentialsGTE(v []byte) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldGTE(FieldLlmCredentials, v))
}

// LlmCredentialsLT applies the LT predicate on the "llm_credentials" field.
func LlmCredentialsLT(v []byte) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldLT(FieldLlmCredentials, v))
}

// LlmCredentialsLTE applies the LTE predicate on the "llm_credentials" field.
func LlmCredentialsLTE(v []byte) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldLTE(FieldLlmCredentials, v))
}

// LlmCredentialsIsNil applies the IsNil predicate on the "llm_credentials" field.
func LlmCredentialsIsNil() predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldIsNull(FieldLlmCredentials))
}

// LlmCredentialsNotNil applies the NotNil predicate on the "llm_credentials" field.
func LlmCredentialsNotNil() predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldNotNull(FieldLlmCredentials))
}

// PaymentCredentialsEQ applies the EQ predicate on the "payment_credentials" field.
func PaymentCredentialsEQ(v []byte) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldEQ(FieldPaymentCredentials, v))
}

// PaymentCredentialsNEQ applies the NEQ predicate on the "payment_credentials" field.
func PaymentCredentialsNEQ(v []byte) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldNEQ(FieldPaymentCredentials, v))
}

// PaymentCredentialsIn applies the In predicate on the "payment_credentials" field.
func PaymentCredentialsIn(vs ...[]byte) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldIn(FieldPaymentCredentials, vs...))
}

// PaymentCredentialsNotIn applies the NotIn predicate on the "payment_credentials" field.
func PaymentCredentialsNotIn(vs ...[]byte) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldNotIn(FieldPaymentCredentials, vs...))
}

// PaymentCredentialsGT applies the GT predicate on the "payment_credentials" field.
func PaymentCredentialsGT(v []byte) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldGT(FieldPaymentCredentials, v))
}

// PaymentCredentialsGTE applies the GTE predicate on the "payment_credentials" field.
func PaymentCredentialsGTE(v []byte) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldGTE(FieldPaymentCredentials, v))
}

// PaymentCredentialsLT applies the LT predicate on the "payment_credentials" field.
func PaymentCredentialsLT(v []byte) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldLT(FieldPaymentCredentials, v))
}

// PaymentCredentialsLTE applies the LTE predicate on the "payment_credentials" field.
func PaymentCredentialsLTE(v []byte) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldLTE(FieldPaymentCredentials, v))
}

// PaymentCredentialsIsNil applies the IsNil predicate on the "payment_credentials" field.
func PaymentCredentialsIsNil() predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldIsNull(FieldPaymentCredentials))
}

// PaymentCredentialsNotNil applies the NotNil predicate on the "payment_credentials" field.
func PaymentCredentialsNotNil() predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldNotNull(FieldPaymentCredentials))
}

// StoreURLEQ applies the EQ predicate on the "store_url" field.
func StoreURLEQ(v string) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldEQ(FieldStoreURL, v))
}

// StoreURLNEQ applies the NEQ predicate on the "store_url" field.
func StoreURLNEQ(v string) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldNEQ(FieldStoreURL, v))
}

// StoreURLIn applies the In predicate on the "store_url" field.
func StoreURLIn(vs ...string) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldIn(FieldStoreURL, vs...))
}

// StoreURLNotIn applies the NotIn predicate on the "store_url" field.
func StoreURLNotIn(vs ...string) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldNotIn(FieldStoreURL, vs...))
}

// StoreURLGT applies the GT predicate on the "store_url" field.
func StoreURLGT(v string) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldGT(FieldStoreURL, v))
}

// StoreURLGTE applies the GTE predicate on the "store_url" field.
func StoreURLGTE(v string) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldGTE(FieldStoreURL, v))
}

// StoreURLLT applies the LT predicate on the "store_url" field.
func StoreURLLT(v string) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldLT(FieldStoreURL, v))
}

// StoreURLLTE applies the LTE predicate on the "store_url" field.
func StoreURLLTE(v string) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldLTE(FieldStoreURL, v))
}

// StoreURLContains applies the Contains predicate on the "store_url" field.
func StoreURLContains(v string) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldContains(FieldStoreURL, v))
}

// StoreURLHasPrefix applies the HasPrefix predicate on the "store_url" field.
func StoreURLHasPrefix(v string) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldHasPrefix(FieldStoreURL, v))
}

// StoreURLHasSuffix applies the HasSuffix predicate on the "store_url" field.
func StoreURLHasSuffix(v string) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldHasSuffix(FieldStoreURL, v))
}

// StoreURLIsNil applies the IsNil predicate on the "store_url" field.
func StoreURLIsNil() predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldIsNull(FieldStoreURL))
}

// StoreURLNotNil applies the NotNil predicate on the "store_url" field.
func StoreURLNotNil() predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldNotNull(FieldStoreURL))
}

// StoreURLEqualFold applies the EqualFold predicate on the "store_url" field.
func StoreURLEqualFold(v string) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldEqualFold(FieldStoreURL, v))
}

// StoreURLContainsFold applies the ContainsFold predicate on the "store_url" field.
func StoreURLContainsFold(v string) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldContainsFold(FieldStoreURL, v))
}

// FeatureFlagsIsNil applies the IsNil predicate on the "feature_flags" field.
func FeatureFlagsIsNil() predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldIsNull(FieldFeatureFlags))
}

// FeatureFlagsNotNil applies the NotNil predicate on the "feature_flags" field.
func FeatureFlagsNotNil() predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldNotNull(FieldFeatureFlags))
}

// BusinessHoursIsNil applies the IsNil predicate on the "business_hours" field.
func BusinessHoursIsNil() predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldIsNull(FieldBusinessHours))
}

// BusinessHoursNotNil applies the NotNil predicate on the "business_hours" field.
func BusinessHoursNotNil() predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldNotNull(FieldBusinessHours))
}

// NotificationPreferencesIsNil applies the IsNil predicate on the "notification_preferences" field.
func NotificationPreferencesIsNil() predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldIsNull(FieldNotificationPreferences))
}

// NotificationPreferencesNotNil applies the NotNil predicate on the "notification_preferences" field.
func NotificationPreferencesNotNil() predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldNotNull(FieldNotificationPreferences))
}

// BrandingIsNil applies the IsNil predicate on the "branding" field.
func BrandingIsNil() predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldIsNull(FieldBranding))
}

// BrandingNotNil applies the NotNil predicate on the "branding" field.
func BrandingNotNil() predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldNotNull(FieldBranding))
}

// OnboardingStepsIsNil applies the IsNil predicate on the "onboarding_steps" field.
func OnboardingStepsIsNil() predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldIsNull(FieldOnboardingSteps))
}

// OnboardingStepsNotNil applies the NotNil predicate on the "onboarding_steps" field.
func OnboardingStepsNotNil() predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldNotNull(FieldOnboardingSteps))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TenantSettings {
	return predicate.TenantSettings(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasTenant applies the HasEdge predicate on the "tenant" edge.
func HasTenant() predicate.TenantSettings {
	return predicate.TenantSettings(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, TenantTable, TenantColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTenantWith applies the HasEdge predicate on the "tenant" edge with a given conditions (other predicates).
func HasTenantWith(preds ...predicate.Tenant) predicate.TenantSettings {
	return predicate.TenantSettings(func(s *sql.Selector) {
		step := newTenantStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TenantSettings) predicate.TenantSettings {
	return predicate.TenantSettings(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TenantSettings) predicate.TenantSettings {
	return predicate.TenantSettings(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TenantSettings) predicate.TenantSettings {
	return predicate.TenantSettings(sql.NotPredicates(p))
}
