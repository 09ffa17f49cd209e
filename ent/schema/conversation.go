package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Conversation holds the schema definition for the Conversation entity.
// A "session" inside a conversation is a maximal run of messages with no
// gap of 24 hours or more; current_session_start tracks the live one.
type Conversation struct {
	ent.Schema
}

// Fields of the Conversation.
func (Conversation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("conversation_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("customer_id").
			Immutable(),
		field.Enum("status").
			Values("open", "bot", "handoff", "closed", "dormant").
			Default("bot"),
		field.Time("current_session_start").
			Optional().
			Nillable(),
		field.Int("session_message_count").
			Default(0),
		field.Time("last_message_at").
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

// Edges of the Conversation.
func (Conversation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).
			Ref("conversations").
			Field("tenant_id").
			Unique().
			Required().
			Immutable(),
		edge.From("customer", Customer.Type).
			Ref("conversations").
			Field("customer_id").
			Unique().
			Required().
			Immutable(),
		edge.To("messages", Message.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("context", ConversationContext.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("reference_contexts", ReferenceContext.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("checkout_sessions", CheckoutSession.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Conversation.
func (Conversation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "customer_id"),
		index.Fields("tenant_id", "status"),
		index.Fields("status", "last_message_at"),
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}
