package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// OrderItem holds the schema definition for the OrderItem entity: one line
// of an order, priced at order-creation time.
type OrderItem struct {
	ent.Schema
}

// Fields of the OrderItem.
func (OrderItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("order_item_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("order_id").
			Immutable(),
		field.String("variant_id").
			Immutable(),
		field.Int("quantity").
			Positive(),
		field.Int("unit_price_cents").
			NonNegative().
			Comment("Catalog price at creation time"),
		field.Int("subtotal_cents").
			NonNegative(),
	}
}

// Edges of the OrderItem.
func (OrderItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("order", Order.Type).
			Ref("items").
			Field("order_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the OrderItem.
func (OrderItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("order_id"),
	}
}
