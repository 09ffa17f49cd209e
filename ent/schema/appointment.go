package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Appointment holds the schema definition for the Appointment entity.
// Creating one pre-schedules 24h and 2h reminder messages; canceling it
// cancels the pending reminders.
type Appointment struct {
	ent.Schema
}

// Fields of the Appointment.
func (Appointment) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("appointment_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("customer_id").
			Immutable(),
		field.String("service_name"),
		field.Time("starts_at"),
		field.Enum("status").
			Values("scheduled", "canceled", "completed").
			Default("scheduled"),
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

// Edges of the Appointment.
func (Appointment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).
			Ref("appointments").
			Field("tenant_id").
			Unique().
			Required().
			Immutable(),
		edge.From("customer", Customer.Type).
			Ref("appointments").
			Field("customer_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Appointment.
func (Appointment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "starts_at"),
		index.Fields("tenant_id", "status"),
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}
