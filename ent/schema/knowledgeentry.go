package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// KnowledgeEntry holds the schema definition for the KnowledgeEntry entity:
// one tenant knowledge-base item used for retrieval and grounding.
type KnowledgeEntry struct {
	ent.Schema
}

// Fields of the KnowledgeEntry.
func (KnowledgeEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("knowledge_entry_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("title"),
		field.Text("body"),
		field.JSON("tags", []string{}).
			Optional(),
		field.String("vector_point_id").
			Optional().
			Nillable().
			Comment("Point id in the semantic index when indexed"),
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

// Edges of the KnowledgeEntry.
func (KnowledgeEntry) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).
			Ref("knowledge_entries").
			Field("tenant_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the KnowledgeEntry.
func (KnowledgeEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id"),
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}
