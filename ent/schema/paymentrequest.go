package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PaymentRequest holds the schema definition for the PaymentRequest entity.
// Callbacks are serialized per request and collapsed idempotently on the
// provider-signed reference.
type PaymentRequest struct {
	ent.Schema
}

// Fields of the PaymentRequest.
func (PaymentRequest) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("payment_request_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("order_id").
			Immutable(),
		field.Enum("status").
			Values("pending", "initiated", "succeeded", "failed", "expired").
			Default("pending"),
		field.String("provider").
			Comment("Payment provider key, e.g. mpesa, stripe"),
		field.String("provider_ref").
			Optional().
			Nillable().
			Comment("Provider-side id; callback idempotency key"),
		field.Int("amount_cents").
			NonNegative(),
		field.String("currency").
			Default("USD"),
		field.String("failure_reason").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the PaymentRequest.
func (PaymentRequest) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("order", Order.Type).
			Ref("payment_requests").
			Field("order_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the PaymentRequest.
func (PaymentRequest) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("order_id"),
		index.Fields("tenant_id", "status"),
		index.Fields("provider", "provider_ref"),
	}
}
