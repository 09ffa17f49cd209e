package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ScheduledMessage holds the schema definition for the ScheduledMessage
// entity: an outbound message due at a future time, claimed and dispatched
// by the scheduler workers.
type ScheduledMessage struct {
	ent.Schema
}

// Fields of the ScheduledMessage.
func (ScheduledMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("scheduled_message_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("customer_id").
			Optional().
			Nillable(),
		field.JSON("recipient_criteria", map[string]interface{}{}).
			Optional().
			Comment("Targeting predicate when no single customer is set"),
		field.Text("content").
			Optional(),
		field.String("template_id").
			Optional().
			Nillable(),
		field.JSON("template_context", map[string]string{}).
			Optional(),
		field.Enum("message_type").
			Values("customer_inbound", "manual_outbound", "automated_transactional",
				"reminder", "re_engagement", "fallback", "campaign").
			Default("manual_outbound"),
		field.Time("scheduled_at"),
		field.Enum("status").
			Values("pending", "sent", "failed", "canceled").
			Default("pending"),
		field.String("sent_message_id").
			Optional().
			Nillable().
			Comment("Message row created by the dispatch; same tenant by construction"),
		field.String("failure_reason").
			Optional().
			Nillable(),
		field.String("appointment_id").
			Optional().
			Nillable().
			Comment("Set on reminder rows so appointment cancellation can cancel them"),
		field.String("claimed_by").
			Optional().
			Nillable().
			Comment("Pod id of the claiming worker, for orphan recovery"),
		field.Time("claimed_at").
			Optional().
			Nillable(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the ScheduledMessage.
func (ScheduledMessage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).
			Ref("scheduled_messages").
			Field("tenant_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ScheduledMessage.
func (ScheduledMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "scheduled_at"),
		index.Fields("tenant_id", "status"),
		index.Fields("appointment_id", "status"),
		index.Fields("status", "claimed_at"),
	}
}
