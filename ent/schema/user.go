package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// User holds the schema definition for the User entity. Users are global;
// tenant membership is the TenantUser edge.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("user_id").
			Unique().
			Immutable(),
		field.String("email").
			Unique(),
		field.String("password_hash").
			Sensitive(),
		field.Bool("email_verified").
			Default(false),
		field.Bool("is_superuser").
			Default(false).
			Comment("Platform operator flag; bypasses tenant context"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("memberships", TenantUser.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("permission_overrides", UserPermission.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
