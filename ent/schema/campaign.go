package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CampaignTargeting is the audience predicate for a campaign.
type CampaignTargeting struct {
	Tags                []string `json:"tags,omitempty"`
	PurchasedWithinDays int      `json:"purchased_within_days,omitempty"`
	ActiveWithinDays    int      `json:"active_within_days,omitempty"`
}

// CampaignVariant is one A/B arm of a campaign.
type CampaignVariant struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// Campaign holds the schema definition for the Campaign entity.
type Campaign struct {
	ent.Schema
}

// Fields of the Campaign.
func (Campaign) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("campaign_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("name"),
		field.JSON("targeting", &CampaignTargeting{}).
			Optional(),
		field.Bool("is_ab_test").
			Default(false),
		field.JSON("variants", []CampaignVariant{}).
			Optional().
			Comment("2..N arms; N is capped by the tenant's tier"),
		field.Text("content").
			Optional().
			Comment("Single-arm campaign body when is_ab_test is false"),
		field.Enum("status").
			Values("draft", "scheduled", "sending", "completed", "canceled").
			Default("draft"),
		field.Time("scheduled_at").
			Optional().
			Nillable(),

		// Execution counters
		field.Int("targeted_count").Default(0),
		field.Int("delivered_count").Default(0),
		field.Int("failed_count").Default(0),
		field.Int("read_count").Default(0),
		field.Int("response_count").Default(0),
		field.Int("conversion_count").Default(0),
		field.Int("skipped_no_consent_count").Default(0),

		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("Holds per-customer variant assignment and per-variant counters"),
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

// Edges of the Campaign.
func (Campaign) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).
			Ref("campaigns").
			Field("tenant_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Campaign.
func (Campaign) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "status"),
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}
