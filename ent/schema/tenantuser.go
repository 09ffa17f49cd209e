package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TenantUser holds the schema definition for the TenantUser membership edge.
// One user may hold memberships in many tenants, each with its own roles.
type TenantUser struct {
	ent.Schema
}

// Fields of the TenantUser.
func (TenantUser) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("tenant_user_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.Enum("invitation_status").
			Values("pending", "accepted", "revoked").
			Default("pending"),
		field.Time("last_seen_at").
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

// Edges of the TenantUser.
func (TenantUser) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).
			Ref("memberships").
			Field("tenant_id").
			Unique().
			Required().
			Immutable(),
		edge.From("user", User.Type).
			Ref("memberships").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
		edge.To("roles", Role.Type),
	}
}

// Indexes of the TenantUser.
func (TenantUser) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "user_id").
			Unique(),
		index.Fields("user_id"),
	}
}
