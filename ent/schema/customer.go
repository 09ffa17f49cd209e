package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Customer holds the schema definition for the Customer entity.
// Identity is (tenant_id, phone_e164); the same phone in two tenants is
// two unrelated rows.
type Customer struct {
	ent.Schema
}

// Fields of the Customer.
func (Customer) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("customer_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("phone_e164"),
		field.String("display_name").
			Optional(),
		field.JSON("tags", []string{}).
			Optional(),
		field.String("language").
			Optional().
			Comment("Preferred BCP-47 language tag, learned from conversations"),
		field.String("timezone").
			Optional().
			Comment("Falls back to the tenant timezone for quiet hours"),
		field.Bool("promotional_messages").
			Default(false).
			Comment("Consent: campaigns and re-engagement"),
		field.Bool("reminder_messages").
			Default(true).
			Comment("Consent: appointment reminders"),
		field.Bool("transactional_messages").
			Default(true).
			Comment("Cannot be opted out"),
		field.Time("last_activity_at").
			Optional().
			Nillable(),
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

// Edges of the Customer.
func (Customer) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).
			Ref("customers").
			Field("tenant_id").
			Unique().
			Required().
			Immutable(),
		edge.To("conversations", Conversation.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("orders", Order.Type),
		edge.To("appointments", Appointment.Type),
	}
}

// Indexes of the Customer.
func (Customer) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "phone_e164").
			Unique(),
		index.Fields("tenant_id", "last_activity_at"),
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}
