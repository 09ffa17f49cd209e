package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// OutboxEvent holds the schema definition for the OutboxEvent entity: a
// transactional outbox row written in the same transaction as the domain
// change it announces. A drainer worker delivers rows at least once and
// stamps handled_at. The id is the implicit auto-increment key so the
// publisher can INSERT ... RETURNING id inside a raw transaction.
type OutboxEvent struct {
	ent.Schema
}

// Fields of the OutboxEvent.
func (OutboxEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("tenant_id").
			Immutable(),
		field.String("topic").
			Comment("e.g. order.paid, order.fulfilled"),
		field.JSON("payload", map[string]interface{}{}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("handled_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the OutboxEvent.
func (OutboxEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("handled_at", "created_at"),
		index.Fields("tenant_id"),
	}
}
