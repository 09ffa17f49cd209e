// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/sokochat/sokochat/ent/schema"
	"github.com/sokochat/sokochat/ent/tenant"
	"github.com/sokochat/sokochat/ent/tenantsettings"
)

// TenantSettings is the model entity for the TenantSettings schema.
type TenantSettings struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// TelephonyCredentials holds the value of the "telephony_credentials" field.
	TelephonyCredentials []byte `json:"-"`
	// CommerceCredentials holds the value of the "commerce_credentials" field.
	CommerceCredentials []byte `json:"-"`
	// LlmCredentials holds the value of the "llm_credentials" field.
	LlmCredentials []byte `json:"-"`
	// PaymentCredentials holds the value of the "payment_credentials" field.
	PaymentCredentials []byte `json:"-"`
	// StoreURL holds the value of the "store_url" field.
	StoreURL string `json:"store_url,omitempty"`
	// FeatureFlags holds the value of the "feature_flags" field.
	FeatureFlags map[string]bool `json:"feature_flags,omitempty"`
	// Keyed by lowercase weekday name
	BusinessHours map[string]schema.DayWindow `json:"business_hours,omitempty"`
	// NotificationPreferences holds the value of the "notification_preferences" field.
	NotificationPreferences map[string]bool `json:"notification_preferences,omitempty"`
	// Branding holds the value of the "branding" field.
	Branding *schema.Branding `json:"branding,omitempty"`
	// OnboardingSteps holds the value of the "onboarding_steps" field.
	OnboardingSteps map[string]bool `json:"onboarding_steps,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TenantSettingsQuery when eager-loading is set.
	Edges        TenantSettingsEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TenantSettingsEdges holds the relations/edges for other nodes in the graph.
type TenantSettingsEdges struct {
	// Tenant holds the value of the tenant edge.
	Tenant *Tenant `json:"tenant,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TenantOrErr returns the Tenant value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TenantSettingsEdges) TenantOrErr() (*Tenant, error) {
	if e.Tenant != nil {
		return e.Tenant, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: tenant.Label}
	}
	return nil, &NotLoadedError{edge: "tenant"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TenantSettings) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tenantsettings.FieldTelephonyCredentials, tenantsettings.FieldCommerceCredentials, tenantsettings.FieldLlmCredentials, tenantsettings.FieldPaymentCredentials, tenantsettings.FieldFeatureFlags, tenantsettings.FieldBusinessHours, tenantsettings.FieldNotificationPreferences, tenantsettings.FieldBranding, tenantsettings.FieldOnboardingSteps:
			values[i] = new([]byte)
		case tenantsettings.FieldID, tenantsettings.FieldTenantID, tenantsettings.FieldStoreURL:
			values[i] = new(sql.NullString)
		case tenantsettings.FieldCreatedAt, tenantsettings.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TenantSettings fields.
func (_m *TenantSettings) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tenantsettings.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case tenantsettings.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case tenantsettings.FieldTelephonyCredentials:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field telephony_credentials", values[i])
			} else if value != nil {
				_m.TelephonyCredentials = *value
			}
		case tenantsettings.FieldCommerceCredentials:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field commerce_credentials", values[i])
			} else if value != nil {
				_m.CommerceCredentials = *value
			}
		case tenantsettings.FieldLlmCredentials:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field llm_credentials", values[i])
			} else if value != nil {
				_m.LlmCredentials = *value
			}
		case tenantsettings.FieldPaymentCredentials:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payment_credentials", values[i])
			} else if value != nil {
				_m.PaymentCredentials = *value
			}
		case tenantsettings.FieldStoreURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field store_url", values[i])
			} else if value.Valid {
				_m.StoreURL = value.String
			}
		case tenantsettings.FieldFeatureFlags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field feature_flags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FeatureFlags); err != nil {
					return fmt.Errorf("unmarshal field feature_flags: %w", err)
				}
			}
		case tenantsettings.FieldBusinessHours:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field business_hours", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.BusinessHours); err != nil {
					return fmt.Errorf("unmarshal field business_hours: %w", err)
				}
			}
		case tenantsettings.FieldNotificationPreferences:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field notification_preferences", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.NotificationPreferences); err != nil {
					return fmt.Errorf("unmarshal field notification_preferences: %w", err)
				}
			}
		case tenantsettings.FieldBranding:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field branding", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Branding); err != nil {
					return fmt.Errorf("unmarshal field branding: %w", err)
				}
			}
		case tenantsettings.FieldOnboardingSteps:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field onboarding_steps", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.OnboardingSteps); err != nil {
					return fmt.Errorf("unmarshal field onboarding_steps: %w", err)
				}
			}
		case tenantsettings.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case tenantsettings.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TenantSettings.
// This includes values selected through modifiers, order, etc.
func (_m *TenantSettings) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTenant queries the "tenant" edge of the TenantSettings entity.
func (_m *TenantSettings) QueryTenant() *TenantQuery {
	return NewTenantSettingsClient(_m.config).QueryTenant(_m)
}

// Update returns a builder for updating this TenantSettings.
// Note that you need to call TenantSettings.Unwrap() before calling this method if this TenantSettings
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TenantSettings) Update() *TenantSettingsUpdateOne {
	return NewTenantSettingsClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TenantSettings entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TenantSettings) Unwrap() *TenantSettings {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TenantSettings is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TenantSettings) String() string {
	var builder strings.Builder
	builder.WriteString("TenantSettings(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("telephony_credentials=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("commerce_credentials=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("llm_credentials=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("payment_credentials=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("store_url=")
	builder.WriteString(_m.StoreURL)
	builder.WriteString(", ")
	builder.WriteString("feature_flags=")
	builder.WriteString(fmt.Sprintf("%v", _m.FeatureFlags))
	builder.WriteString(", ")
	builder.WriteString("business_hours=")
	builder.WriteString(fmt.Sprintf("%v", _m.BusinessHours))
	builder.WriteString(", ")
	builder.WriteString("notification_preferences=")
	builder.WriteString(fmt.Sprintf("%v", _m.NotificationPreferences))
	builder.WriteString(", ")
	builder.WriteString("branding=")
	builder.WriteString(fmt.Sprintf("%v", _m.Branding))
	builder.WriteString(", ")
	builder.WriteString("onboarding_steps=")
	builder.WriteString(fmt.Sprintf("%v", _m.OnboardingSteps))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TenantSettingsSlice is a parsable slice of TenantSettings.
type TenantSettingsSlice []*TenantSettings
