package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Order holds the schema definition for the Order entity. Totals are
// computed server-side from catalog prices at creation; client-supplied
// prices are never trusted.
type Order struct {
	ent.Schema
}

// Fields of the Order.
func (Order) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("order_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("customer_id").
			Immutable(),
		field.Enum("status").
			Values("draft", "pending_payment", "paid", "fulfilled", "canceled").
			Default("draft"),
		field.Int("total_cents").
			NonNegative(),
		field.String("currency").
			Default("USD"),
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

// Edges of the Order.
func (Order) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).
			Ref("orders").
			Field("tenant_id").
			Unique().
			Required().
			Immutable(),
		edge.From("customer", Customer.Type).
			Ref("orders").
			Field("customer_id").
			Unique().
			Required().
			Immutable(),
		edge.To("items", OrderItem.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("payment_requests", PaymentRequest.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Order.
func (Order) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "status"),
		index.Fields("tenant_id", "customer_id"),
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}
