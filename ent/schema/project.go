package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Project holds the schema definition for the Project entity. Bots, webhook
// subscriptions and API keys are scoped to a project.
type Project struct {
	ent.Schema
}

// Fields of the Project.
func (Project) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("project_id").
			Unique().
			Immutable(),
		field.String("organization_id").
			Immutable(),
		field.String("name"),
		field.String("webhook_secret").
			Sensitive().
			Comment("HMAC key for webhook payload signatures"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Project.
func (Project) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("organization", Organization.Type).
			Ref("projects").
			Field("organization_id").
			Unique().
			Required().
			Immutable(),
		edge.To("bots", Bot.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("api_keys", APIKey.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("webhook_subscriptions", WebhookSubscription.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("credentials", ProjectCredential.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
