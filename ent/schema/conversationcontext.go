package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// ConversationContext holds the schema definition for the ConversationContext
// entity: volatile per-conversation state carried between turns. At most one
// row per conversation.
type ConversationContext struct {
	ent.Schema
}

// Fields of the ConversationContext.
func (ConversationContext) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("context_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("conversation_id").
			Unique().
			Immutable(),
		field.Text("last_customer_message").
			Optional(),
		field.Text("last_bot_message").
			Optional(),
		field.Enum("checkout_state").
			Values("browsing", "product_selected", "quantity_confirmed",
				"payment_method_selected", "payment_initiated", "paid", "failed", "closed").
			Default("browsing"),
		field.String("selected_variant_id").
			Optional().
			Nillable(),
		field.Int("selected_quantity").
			Optional().
			Nillable(),
		field.String("locked_language").
			Optional().
			Comment("Response language; updated only when the customer switches"),
		field.Int("low_confidence_turns").
			Default(0),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the ConversationContext.
func (ConversationContext) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("conversation", Conversation.Type).
			Ref("context").
			Field("conversation_id").
			Unique().
			Required().
			Immutable(),
	}
}
