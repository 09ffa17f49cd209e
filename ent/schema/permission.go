package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Permission holds the schema definition for the Permission entity.
// Permissions are the global scope catalog; they carry no tenant_id.
type Permission struct {
	ent.Schema
}

// Fields of the Permission.
func (Permission) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("permission_id").
			Unique().
			Immutable(),
		field.String("code").
			Unique().
			Comment("Scope code checked by handlers, e.g. catalog:view"),
		field.String("description").
			Optional(),
	}
}

// Edges of the Permission.
func (Permission) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("roles", Role.Type).
			Ref("permissions"),
	}
}
