package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Message holds the schema definition for the Message entity: one WhatsApp
// message, inbound or outbound, inside a conversation.
type Message struct {
	ent.Schema
}

// Fields of the Message.
func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("conversation_id").
			Immutable(),
		field.Enum("direction").
			Values("inbound", "outbound").
			Immutable(),
		field.Enum("message_type").
			Values("customer_inbound", "manual_outbound", "automated_transactional",
				"reminder", "re_engagement", "fallback", "campaign").
			Default("customer_inbound"),
		field.Text("content"),
		field.String("provider_message_id").
			Optional().
			Nillable().
			Comment("Telephony provider id; inbound ingest is idempotent on it"),
		field.Enum("status").
			Values("queued", "sent", "delivered", "read", "failed").
			Default("queued"),
		field.String("failure_reason").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Message.
func (Message) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("conversation", Conversation.Type).
			Ref("messages").
			Field("conversation_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Message.
func (Message) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("conversation_id", "created_at"),
		index.Fields("tenant_id", "created_at"),
		index.Fields("tenant_id", "provider_message_id").
			Unique().
			Annotations(entsql.IndexWhere("provider_message_id IS NOT NULL")),
		index.Fields("tenant_id", "message_type", "created_at"),
	}
}
