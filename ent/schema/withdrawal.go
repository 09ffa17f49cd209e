package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Withdrawal holds the schema definition for the Withdrawal entity.
// Approval is four-eyes: approved_by must differ from created_by, checked
// under a row lock.
type Withdrawal struct {
	ent.Schema
}

// Fields of the Withdrawal.
func (Withdrawal) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("withdrawal_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.Int("amount_cents").
			Positive(),
		field.String("currency").
			Default("USD"),
		field.Enum("status").
			Values("pending", "approved", "rejected", "paid").
			Default("pending"),
		field.String("created_by").
			Immutable(),
		field.String("approved_by").
			Optional().
			Nillable(),
		field.Time("approved_at").
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

// Edges of the Withdrawal.
func (Withdrawal) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).
			Ref("withdrawals").
			Field("tenant_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Withdrawal.
func (Withdrawal) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "status"),
	}
}
