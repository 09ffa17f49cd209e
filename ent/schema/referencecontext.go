package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReferenceItem is one entry of an enumerated list shown to a customer.
// Attributes feed descriptive resolution ("the blue one", "the cheapest").
type ReferenceItem struct {
	ID         string            `json:"id"`
	Label      string            `json:"label"`
	PriceCents int               `json:"price_cents,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// ReferenceContext holds the schema definition for the ReferenceContext
// entity: a short-lived ordered list the customer may refer back to
// ("1", "the first one"). TTL is capped at five minutes and only the five
// most recent live rows per conversation are consulted.
type ReferenceContext struct {
	ent.Schema
}

// Fields of the ReferenceContext.
func (ReferenceContext) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("reference_context_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("conversation_id").
			Immutable(),
		field.String("list_type").
			Comment("products, services, options, ..."),
		field.JSON("items", []ReferenceItem{}),
		field.Time("expires_at"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ReferenceContext.
func (ReferenceContext) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("conversation", Conversation.Type).
			Ref("reference_contexts").
			Field("conversation_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ReferenceContext.
func (ReferenceContext) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("conversation_id", "expires_at"),
		index.Fields("expires_at"),
	}
}
