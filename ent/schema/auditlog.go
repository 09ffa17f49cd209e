package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditLog holds the schema definition for the AuditLog entity: one record
// per sensitive write. Writes are best-effort and never abort the primary
// operation.
type AuditLog struct {
	ent.Schema
}

// Fields of the AuditLog.
func (AuditLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("audit_log_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("actor_user_id").
			Optional(),
		field.String("action").
			Comment("e.g. withdrawal.approve, settings.integrations.update"),
		field.String("target_type"),
		field.String("target_id").
			Optional(),
		field.JSON("before", map[string]interface{}{}).
			Optional(),
		field.JSON("after", map[string]interface{}{}).
			Optional(),
		field.String("request_id").
			Optional(),
		field.String("ip").
			Optional(),
		field.String("user_agent").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the AuditLog.
func (AuditLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).
			Ref("audit_logs").
			Field("tenant_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AuditLog.
func (AuditLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "created_at"),
		index.Fields("tenant_id", "action"),
	}
}
