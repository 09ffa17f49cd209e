package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// APIKey is one hashed API-key entry on a tenant. The plaintext key is
// shown exactly once at creation and only the SHA-256 hash is stored.
type APIKey struct {
	KeyHash    string     `json:"key_hash"`
	Name       string     `json:"name"`
	CreatedAt  time.Time  `json:"created_at"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
}

// Tenant holds the schema definition for the Tenant entity.
type Tenant struct {
	ent.Schema
}

// Fields of the Tenant.
func (Tenant) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("tenant_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.String("slug").
			Unique().
			Comment("URL-safe identifier, unique across the platform"),
		field.Enum("status").
			Values("trial", "active", "trial_expired", "suspended", "canceled").
			Default("trial"),
		field.Time("trial_ends_at").
			Optional().
			Nillable(),
		field.String("subscription_tier").
			Default("starter").
			Comment("Tier code resolved against the tier registry"),
		field.String("whatsapp_number").
			Optional().
			Comment("E.164 number customers message"),
		field.String("timezone").
			Default("UTC"),
		field.Int("quiet_hours_start").
			Default(22 * 60).
			Comment("Minutes from local midnight; window may wrap"),
		field.Int("quiet_hours_end").
			Default(8 * 60),
		field.JSON("api_keys", []APIKey{}).
			Optional(),
		field.JSON("allowed_origins", []string{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("deleted_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Tenant.
func (Tenant) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("settings", TenantSettings.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("memberships", TenantUser.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("roles", Role.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("customers", Customer.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("conversations", Conversation.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("products", Product.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("knowledge_entries", KnowledgeEntry.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("orders", Order.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("scheduled_messages", ScheduledMessage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("templates", MessageTemplate.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("campaigns", Campaign.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("appointments", Appointment.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("withdrawals", Withdrawal.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("audit_logs", AuditLog.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Tenant.
func (Tenant) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}
