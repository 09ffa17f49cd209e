// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sokochat/sokochat/ent/predicate"
	"github.com/sokochat/sokochat/ent/schema"
	"github.com/sokochat/sokochat/ent/tenantsettings"
)

// TenantSettingsUpdate is the builder for updating TenantSettings entities.
type TenantSettingsUpdate struct {
	config
	hooks    []Hook
	mutation *TenantSettingsMutation
}

// Where appends a list predicates to the TenantSettingsUpdate builder.
func (_u *TenantSettingsUpdate) Where(ps ...predicate.TenantSettings) *TenantSettingsUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTelephonyCredentials sets the "telephony_credentials" field.
func (_u *TenantSettingsUpdate) SetTelephonyCredentials(v []byte) *TenantSettingsUpdate {
	_u.mutation.SetTelephonyCredentials(v)
	return _u
}

// ClearTelephonyCredentials clears the value of the "telephony_credentials" field.
func (_u *TenantSettingsUpdate) ClearTelephonyCredentials() *TenantSettingsUpdate {
	_u.mutation.ClearTelephonyCredentials()
	return _u
}

// SetCommerceCredentials sets the "commerce_credentials" field.
func (_u *TenantSettingsUpdate) SetCommerceCredentials(v []byte) *TenantSettingsUpdate {
	_u.mutation.SetCommerceCredentials(v)
	return _u
}

// ClearCommerceCredentials clears the value of the "commerce_credentials" field.
func (_u *TenantSettingsUpdate) ClearCommerceCredentials() *TenantSettingsUpdate {
	_u.mutation.ClearCommerceCredentials()
	return _u
}

// SetLlmCredentials sets the "llm_credentials" field.
func (_u *TenantSettingsUpdate) SetLlmCredentials(v []byte) *TenantSettingsUpdate {
	_u.mutation.SetLlmCredentials(v)
	return _u
}

// ClearLlmCredentials clears the value of the "llm_credentials" field.
func (_u *TenantSettingsUpdate) ClearLlmCredentials() *TenantSettingsUpdate {
	_u.mutation.ClearLlmCredentials()
	return _u
}

// SetPaymentCredentials sets the "payment_credentials" field.
func (_u *TenantSettingsUpdate) SetPaymentCredentials(v []byte) *TenantSettingsUpdate {
	_u.mutation.SetPaymentCredentials(v)
	return _u
}

// ClearPaymentCredentials clears the value of the "payment_credentials" field.
func (_u *TenantSettingsUpdate) ClearPaymentCredentials() *TenantSettingsUpdate {
	_u.mutation.ClearPaymentCredentials()
	return _u
}

// SetStoreURL sets the "store_url" field.
func (_u *TenantSettingsUpdate) SetStoreURL(v string) *TenantSettingsUpdate {
	_u.mutation.SetStoreURL(v)
	return _u
}

// SetNillableStoreURL sets the "store_url" field if the given value is not nil.
func (_u *TenantSettingsUpdate) SetNillableStoreURL(v *string) *TenantSettingsUpdate {
	if v != nil {
		_u.SetStoreURL(*v)
	}
	return _u
}

// ClearStoreURL clears the value of the "store_url" field.
func (_u *TenantSettingsUpdate) ClearStoreURL() *TenantSettingsUpdate {
	_u.mutation.ClearStoreURL()
	return _u
}

// SetFeatureFlags sets the "feature_flags" field.
func (_u *TenantSettingsUpdate) SetFeatureFlags(v map[string]bool) *TenantSettingsUpdate {
	_u.mutation.SetFeatureFlags(v)
	return _u
}

// ClearFeatureFlags clears the value of the "feature_flags" field.
func (_u *TenantSettingsUpdate) ClearFeatureFlags() *TenantSettingsUpdate {
	_u.mutation.ClearFeatureFlags()
	return _u
}

// SetBusinessHours sets the "business_hours" field.
func (_u *TenantSettingsUpdate) SetBusinessHours(v map[string]schema.DayWindow) *TenantSettingsUpdate {
	_u.mutation.SetBusinessHours(v)
	return _u
}

// ClearBusinessHours clears the value of the "business_hours" field.
func (_u *TenantSettingsUpdate) ClearBusinessHours() *TenantSettingsUpdate {
	_u.mutation.ClearBusinessHours()
	return _u
}

// SetNotificationPreferences sets the "notification_preferences" field.
func (_u *TenantSettingsUpdate) SetNotificationPreferences(v map[string]bool) *TenantSettingsUpdate {
	_u.mutation.SetNotificationPreferences(v)
	return _u
}

// ClearNotificationPreferences clears the value of the "notification_preferences" field.
func (_u *TenantSettingsUpdate) ClearNotificationPreferences() *TenantSettingsUpdate {
	_u.mutation.ClearNotificationPreferences()
	return _u
}

// SetBranding sets the "branding" field.
func (_u *TenantSettingsUpdate) SetBranding(v *schema.Branding) *TenantSettingsUpdate {
	_u.mutation.SetBranding(v)
	return _u
}

// ClearBranding clears the value of the "branding" field.
func (_u *TenantSettingsUpdate) ClearBranding() *TenantSettingsUpdate {
	_u.mutation.ClearBranding()
	return _u
}

// SetOnboardingSteps sets the "onboarding_steps" field.
func (_u *TenantSettingsUpdate) SetOnboardingSteps(v map[string]bool) *TenantSettingsUpdate {
	_u.mutation.SetOnboardingSteps(v)
	return _u
}

// ClearOnboardingSteps clears the value of the "onboarding_steps" field.
func (_u *TenantSettingsUpdate) ClearOnboardingSteps() *TenantSettingsUpdate {
	_u.mutation.ClearOnboardingSteps()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TenantSettingsUpdate) SetUpdatedAt(v time.Time) *TenantSettingsUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TenantSettingsMutation object of the builder.
func (_u *TenantSettingsUpdate) Mutation() *TenantSettingsMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TenantSettingsUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TenantSettingsUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TenantSettingsUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TenantSettingsUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TenantSettingsUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tenantsettings.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TenantSettingsUpdate) check() error {
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TenantSettings.tenant"`)
	}
	return nil
}

func (_u *TenantSettingsUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tenantsettings.Table, tenantsettings.Columns, sqlgraph.NewFieldSpec(tenantsettings.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TelephonyCredentials(); ok {
		_spec.SetField(tenantsettings.FieldTelephonyCredentials, field.TypeBytes, value)
	}
	if _u.mutation.TelephonyCredentialsCleared() {
		_spec.ClearField(tenantsettings.FieldTelephonyCredentials, field.TypeBytes)
	}
	if value, ok := _u.mutation.CommerceCredentials(); ok {
		_spec.SetField(tenantsettings.FieldCommerceCredentials, field.TypeBytes, value)
	}
	if _u.mutation.CommerceCredentialsCleared() {
		_spec.ClearField(tenantsettings.FieldCommerceCredentials, field.TypeBytes)
	}
	if value, ok := _u.mutation.LlmCredentials(); ok {
		_spec.SetField(tenantsettings.FieldLlmCredentials, field.TypeBytes, value)
	}
	if _u.mutation.LlmCredentialsCleared() {
		_spec.ClearField(tenantsettings.FieldLlmCredentials, field.TypeBytes)
	}
	if value, ok := _u.mutation.PaymentCredentials(); ok {
		_spec.SetField(tenantsettings.FieldPaymentCredentials, field.TypeBytes, value)
	}
	if _u.mutation.PaymentCredentialsCleared() {
		_spec.ClearField(tenantsettings.FieldPaymentCredentials, field.TypeBytes)
	}
	if value, ok := _u.mutation.StoreURL(); ok {
		_spec.SetField(tenantsettings.FieldStoreURL, field.TypeString, value)
	}
	if _u.mutation.StoreURLCleared() {
		_spec.ClearField(tenantsettings.FieldStoreURL, field.TypeString)
	}
	if value, ok := _u.mutation.FeatureFlags(); ok {
		_spec.SetField(tenantsettings.FieldFeatureFlags, field.TypeJSON, value)
	}
	if _u.mutation.FeatureFlagsCleared() {
		_spec.ClearField(tenantsettings.FieldFeatureFlags, field.TypeJSON)
	}
	if value, ok := _u.mutation.BusinessHours(); ok {
		_spec.SetField(tenantsettings.FieldBusinessHours, field.TypeJSON, value)
	}
	if _u.mutation.BusinessHoursCleared() {
		_spec.ClearField(tenantsettings.FieldBusinessHours, field.TypeJSON)
	}
	if value, ok := _u.mutation.NotificationPreferences(); ok {
		_spec.SetField(tenantsettings.FieldNotificationPreferences, field.TypeJSON, value)
	}
	if _u.mutation.NotificationPreferencesCleared() {
		_spec.ClearField(tenantsettings.FieldNotificationPreferences, field.TypeJSON)
	}
	if value, ok := _u.mutation.Branding(); ok {
		_spec.SetField(tenantsettings.FieldBranding, field.TypeJSON, value)
	}
	if _u.mutation.BrandingCleared() {
		_spec.ClearField(tenantsettings.FieldBranding, field.TypeJSON)
	}
	if value, ok := _u.mutation.OnboardingSteps(); ok {
		_spec.SetField(tenantsettings.FieldOnboardingSteps, field.TypeJSON, value)
	}
	if _u.mutation.OnboardingStepsCleared() {
		_spec.ClearField(tenantsettings.FieldOnboardingSteps, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tenantsettings.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tenantsettings.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TenantSettingsUpdateOne is the builder for updating a single TenantSettings entity.
type TenantSettingsUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TenantSettingsMutation
}

// SetTelephonyCredentials sets the "telephony_credentials" field.
func (_u *TenantSettingsUpdateOne) SetTelephonyCredentials(v []byte) *TenantSettingsUpdateOne {
	_u.mutation.SetTelephonyCredentials(v)
	return _u
}

// ClearTelephonyCredentials clears the value of the "telephony_credentials" field.
func (_u *TenantSettingsUpdateOne) ClearTelephonyCredentials() *TenantSettingsUpdateOne {
	_u.mutation.ClearTelephonyCredentials()
	return _u
}

// SetCommerceCredentials sets the "commerce_credentials" field.
func (_u *TenantSettingsUpdateOne) SetCommerceCredentials(v []byte) *TenantSettingsUpdateOne {
	_u.mutation.SetCommerceCredentials(v)
	return _u
}

// ClearCommerceCredentials clears the value of the "commerce_credentials" field.
func (_u *TenantSettingsUpdateOne) ClearCommerceCredentials() *TenantSettingsUpdateOne {
	_u.mutation.ClearCommerceCredentials()
	return _u
}

// SetLlmCredentials sets the "llm_credentials" field.
func (_u *TenantSettingsUpdateOne) SetLlmCredentials(v []byte) *TenantSettingsUpdateOne {
	_u.mutation.SetLlmCredentials(v)
	return _u
}

// ClearLlmCredentials clears the value of the "llm_credentials" field.
func (_u *TenantSettingsUpdateOne) ClearLlmCredentials() *TenantSettingsUpdateOne {
	_u.mutation.ClearLlmCredentials()
	return _u
}

// SetPaymentCredentials sets the "payment_credentials" field.
func (_u *TenantSettingsUpdateOne) SetPaymentCredentials(v []byte) *TenantSettingsUpdateOne {
	_u.mutation.SetPaymentCredentials(v)
	return _u
}

// ClearPaymentCredentials clears the value of the "payment_credentials" field.
func (_u *TenantSettingsUpdateOne) ClearPaymentCredentials() *TenantSettingsUpdateOne {
	_u.mutation.ClearPaymentCredentials()
	return _u
}

// SetStoreURL sets the "store_url" field.
func (_u *TenantSettingsUpdateOne) SetStoreURL(v string) *TenantSettingsUpdateOne {
	_u.mutation.SetStoreURL(v)
	return _u
}

// SetNillableStoreURL sets the "store_url" field if the given value is not nil.
func (_u *TenantSettingsUpdateOne) SetNillableStoreURL(v *string) *TenantSettingsUpdateOne {
	if v != nil {
		_u.SetStoreURL(*v)
	}
	return _u
}

// ClearStoreURL clears the value of the "store_url" field.
func (_u *TenantSettingsUpdateOne) ClearStoreURL() *TenantSettingsUpdateOne {
	_u.mutation.ClearStoreURL()
	return _u
}

// SetFeatureFlags sets the "feature_flags" field.
func (_u *TenantSettingsUpdateOne) SetFeatureFlags(v map[string]bool) *TenantSettingsUpdateOne {
	_u.mutation.SetFeatureFlags(v)
	return _u
}

// ClearFeatureFlags clears the value of the "feature_flags" field.
func (_u *TenantSettingsUpdateOne) ClearFeatureFlags() *TenantSettingsUpdateOne {
	_u.mutation.ClearFeatureFlags()
	return _u
}

// SetBusinessHours sets the "business_hours" field.
func (_u *TenantSettingsUpdateOne) SetBusinessHours(v map[string]schema.DayWindow) *TenantSettingsUpdateOne {
	_u.mutation.SetBusinessHours(v)
	return _u
}

// ClearBusinessHours clears the value of the "business_hours" field.
func (_u *TenantSettingsUpdateOne) ClearBusinessHours() *TenantSettingsUpdateOne {
	_u.mutation.ClearBusinessHours()
	return _u
}

// SetNotificationPreferences sets the "notification_preferences" field.
func (_u *TenantSettingsUpdateOne) SetNotificationPreferences(v map[string]bool) *TenantSettingsUpdateOne {
	_u.mutation.SetNotificationPreferences(v)
	return _u
}

// ClearNotificationPreferences clears the value of the "notification_preferences" field.
func (_u *TenantSettingsUpdateOne) ClearNotificationPreferences() *TenantSettingsUpdateOne {
	_u.mutation.ClearNotificationPreferences()
	return _u
}

// SetBranding sets the "branding" field.
func (_u *TenantSettingsUpdateOne) SetBranding(v *schema.Branding) *TenantSettingsUpdateOne {
	_u.mutation.SetBranding(v)
	return _u
}

// ClearBranding clears the value of the "branding" field.
func (_u *TenantSettingsUpdateOne) ClearBranding() *TenantSettingsUpdateOne {
	_u.mutation.ClearBranding()
	return _u
}

// SetOnboardingSteps sets the "onboarding_steps" field.
func (_u *TenantSettingsUpdateOne) SetOnboardingSteps(v map[string]bool) *TenantSettingsUpdateOne {
	_u.mutation.SetOnboardingSteps(v)
	return _u
}

// ClearOnboardingSteps clears the value of the "onboarding_steps" field.
func (_u *TenantSettingsUpdateOne) ClearOnboardingSteps() *TenantSettingsUpdateOne {
	_u.mutation.ClearOnboardingSteps()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TenantSettingsUpdateOne) SetUpdatedAt(v time.Time) *TenantSettingsUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TenantSettingsMutation object of the builder.
func (_u *TenantSettingsUpdateOne) Mutation() *TenantSettingsMutation {
	return _u.mutation
}

// Where appends a list predicates to the TenantSettingsUpdate builder.
func (_u *TenantSettingsUpdateOne) Where(ps ...predicate.TenantSettings) *TenantSettingsUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TenantSettingsUpdateOne) Select(field string, fields ...string) *TenantSettingsUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TenantSettings entity.
func (_u *TenantSettingsUpdateOne) Save(ctx context.Context) (*TenantSettings, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TenantSettingsUpdateOne) SaveX(ctx context.Context) *TenantSettings {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TenantSettingsUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TenantSettingsUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TenantSettingsUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tenantsettings.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TenantSettingsUpdateOne) check() error {
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TenantSettings.tenant"`)
	}
	return nil
}

func (_u *TenantSettingsUpdateOne) sqlSave(ctx context.Context) (_node *TenantSettings, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tenantsettings.Table, tenantsettings.Columns, sqlgraph.NewFieldSpec(tenantsettings.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TenantSettings.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tenantsettings.FieldID)
		for _, f := range fields {
			if !tenantsettings.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tenantsettings.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TelephonyCredentials(); ok {
		_spec.SetField(tenantsettings.FieldTelephonyCredentials, field.TypeBytes, value)
	}
	if _u.mutation.TelephonyCredentialsCleared() {
		_spec.ClearField(tenantsettings.FieldTelephonyCredentials, field.TypeBytes)
	}
	if value, ok := _u.mutation.CommerceCredentials(); ok {
		_spec.SetField(tenantsettings.FieldCommerceCredentials, field.TypeBytes, value)
	}
	if _u.mutation.CommerceCredentialsCleared() {
		_spec.ClearField(tenantsettings.FieldCommerceCredentials, field.TypeBytes)
	}
	if value, ok := _u.mutation.LlmCredentials(); ok {
		_spec.SetField(tenantsettings.FieldLlmCredentials, field.TypeBytes, value)
	}
	if _u.mutation.LlmCredentialsCleared() {
		_spec.ClearField(tenantsettings.FieldLlmCredentials, field.TypeBytes)
	}
	if value, ok := _u.mutation.PaymentCredentials(); ok {
		_spec.SetField(tenantsettings.FieldPaymentCredentials, field.TypeBytes, value)
	}
	if _u.mutation.PaymentCredentialsCleared() {
		_spec.ClearField(tenantsettings.FieldPaymentCredentials, field.TypeBytes)
	}
	if value, ok := _u.mutation.StoreURL(); ok {
		_spec.SetField(tenantsettings.FieldStoreURL, field.TypeString, value)
	}
	if _u.mutation.StoreURLCleared() {
		_spec.ClearField(tenantsettings.FieldStoreURL, field.TypeString)
	}
	if value, ok := _u.mutation.FeatureFlags(); ok {
		_spec.SetField(tenantsettings.FieldFeatureFlags, field.TypeJSON, value)
	}
	if _u.mutation.FeatureFlagsCleared() {
		_spec.ClearField(tenantsettings.FieldFeatureFlags, field.TypeJSON)
	}
	if value, ok := _u.mutation.BusinessHours(); ok {
		_spec.SetField(tenantsettings.FieldBusinessHours, field.TypeJSON, value)
	}
	if _u.mutation.BusinessHoursCleared() {
		_spec.ClearField(tenantsettings.FieldBusinessHours, field.TypeJSON)
	}
	if value, ok := _u.mutation.NotificationPreferences(); ok {
		_spec.SetField(tenantsettings.FieldNotificationPreferences, field.TypeJSON, value)
	}
	if _u.mutation.NotificationPreferencesCleared() {
		_spec.ClearField(tenantsettings.FieldNotificationPreferences, field.TypeJSON)
	}
	if value, ok := _u.mutation.Branding(); ok {
		_spec.SetField(tenantsettings.FieldBranding, field.TypeJSON, value)
	}
	if _u.mutation.BrandingCleared() {
		_spec.ClearField(tenantsettings.FieldBranding, field.TypeJSON)
	}
	if value, ok := _u.mutation.OnboardingSteps(); ok {
		_spec.SetField(tenantsettings.FieldOnboardingSteps, field.TypeJSON, value)
	}
	if _u.mutation.OnboardingStepsCleared() {
		_spec.ClearField(tenantsettings.FieldOnboardingSteps, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tenantsettings.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &TenantSettings{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tenantsettings.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
