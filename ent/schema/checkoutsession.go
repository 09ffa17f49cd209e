package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CheckoutSession holds the schema definition for the CheckoutSession
// entity: the per-conversation checkout cursor. From leaving browsing
// through payment initiation the machine may emit at most three outbound
// messages; message_count enforces the budget.
type CheckoutSession struct {
	ent.Schema
}

// Fields of the CheckoutSession.
func (CheckoutSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("checkout_session_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("conversation_id").
			Immutable(),
		field.Enum("state").
			Values("browsing", "product_selected", "quantity_confirmed",
				"payment_method_selected", "payment_initiated", "paid", "failed", "closed").
			Default("browsing"),
		field.String("variant_id").
			Optional().
			Nillable(),
		field.Int("quantity").
			Optional().
			Nillable(),
		field.String("order_id").
			Optional().
			Nillable(),
		field.String("payment_request_id").
			Optional().
			Nillable(),
		field.Int("message_count").
			Default(0).
			Comment("Outbound messages since leaving browsing"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the CheckoutSession.
func (CheckoutSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("conversation", Conversation.Type).
			Ref("checkout_sessions").
			Field("conversation_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the CheckoutSession.
func (CheckoutSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("conversation_id", "state"),
		index.Fields("tenant_id", "state"),
	}
}
