package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UserPermission holds the schema definition for the UserPermission entity.
// A per-user override of a role grant. A granted=false row always removes
// the permission regardless of what the user's roles allow.
type UserPermission struct {
	ent.Schema
}

// Fields of the UserPermission.
func (UserPermission) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("user_permission_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("permission_code"),
		field.Bool("granted"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the UserPermission.
func (UserPermission) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("permission_overrides").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the UserPermission.
func (UserPermission) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "user_id", "permission_code").
			Unique(),
	}
}
