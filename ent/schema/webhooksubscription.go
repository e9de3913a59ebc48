package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/stenobot-io/stenobot/pkg/lifecycle"
)

// WebhookSubscription holds the schema definition for the
// WebhookSubscription entity: a destination URL bound to a project
// (optionally narrowed to one bot) with a set of enabled trigger kinds.
type WebhookSubscription struct {
	ent.Schema
}

// Fields of the WebhookSubscription.
func (WebhookSubscription) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("webhook_subscription_id").
			Unique().
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.String("bot_id").
			Optional().
			Nillable().
			Comment("Narrows the subscription to a single bot when set"),
		field.String("url"),
		field.JSON("triggers", []lifecycle.TriggerKind{}).
			Comment("Enabled trigger kinds (numeric codes)"),
		field.Bool("is_active").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the WebhookSubscription.
func (WebhookSubscription) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("webhook_subscriptions").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
		edge.To("delivery_attempts", WebhookDeliveryAttempt.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the WebhookSubscription.
func (WebhookSubscription) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "is_active"),
	}
}
