package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProductVariant holds the schema definition for the ProductVariant
// entity: the sellable unit with price and stock. Order totals are always
// computed from the variant price at order-creation time.
type ProductVariant struct {
	ent.Schema
}

// Fields of the ProductVariant.
func (ProductVariant) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("variant_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("product_id").
			Immutable(),
		field.String("label").
			Comment("e.g. \"Blue / L\""),
		field.Int("price_cents").
			NonNegative(),
		field.String("currency").
			Default("USD"),
		field.Int("stock").
			Default(0).
			Comment("Decremented under a row lock on order creation"),
		field.JSON("attributes", map[string]string{}).
			Optional().
			Comment("color, size, ... used by descriptive reference resolution"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the ProductVariant.
func (ProductVariant) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("product", Product.Type).
			Ref("variants").
			Field("product_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ProductVariant.
func (ProductVariant) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id"),
		index.Fields("product_id"),
	}
}
