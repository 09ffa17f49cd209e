package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// DayWindow is one weekday's business-hours window in "HH:MM" local time.
type DayWindow struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed,omitempty"`
}

// Branding holds the tenant's conversational persona settings used when
// building LLM prompts.
type Branding struct {
	PersonaName  string   `json:"persona_name,omitempty"`
	Tone         string   `json:"tone,omitempty"`
	Capabilities []string `json:"capabilities,omitempty"`
	Disallowed   []string `json:"disallowed,omitempty"`
}

// TenantSettings holds the schema definition for the TenantSettings entity.
// One row per tenant, auto-created with the tenant. Credential fields are
// opaque AES-GCM blobs; API responses only ever return masked values.
type TenantSettings struct {
	ent.Schema
}

// Fields of the TenantSettings.
func (TenantSettings) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("settings_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Unique().
			Immutable(),

		// Encrypted integration credentials (nil = not configured)
		field.Bytes("telephony_credentials").
			Optional().
			Sensitive(),
		field.Bytes("commerce_credentials").
			Optional().
			Sensitive(),
		field.Bytes("llm_credentials").
			Optional().
			Sensitive(),
		field.Bytes("payment_credentials").
			Optional().
			Sensitive(),

		// Non-sensitive configuration
		field.String("store_url").
			Optional(),
		field.JSON("feature_flags", map[string]bool{}).
			Optional(),
		field.JSON("business_hours", map[string]DayWindow{}).
			Optional().
			Comment("Keyed by lowercase weekday name"),
		field.JSON("notification_preferences", map[string]bool{}).
			Optional(),
		field.JSON("branding", &Branding{}).
			Optional(),
		field.JSON("onboarding_steps", map[string]bool{}).
			Optional(),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the TenantSettings.
func (TenantSettings) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).
			Ref("settings").
			Field("tenant_id").
			Unique().
			Required().
			Immutable(),
	}
}
