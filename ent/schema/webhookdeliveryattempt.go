package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/stenobot-io/stenobot/pkg/lifecycle"
)

// WebhookDeliveryAttempt holds the schema definition for the
// WebhookDeliveryAttempt entity: one payload bound for one subscription.
// Retried with exponential backoff until success or the attempt cap.
// Non-lifecycle attempts are purged on bot data deletion because their
// payloads carry meeting content; bot.state_change attempts are retained
// for audit.
type WebhookDeliveryAttempt struct {
	ent.Schema
}

// Fields of the WebhookDeliveryAttempt.
func (WebhookDeliveryAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("webhook_delivery_attempt_id").
			Unique().
			Immutable(),
		field.String("subscription_id").
			Immutable(),
		field.String("bot_id").
			Optional().
			Nillable(),
		field.String("calendar_id").
			Optional().
			Nillable().
			Comment("Opaque subject id for calendar-scoped triggers"),
		field.String("zoom_oauth_connection_id").
			Optional().
			Nillable().
			Comment("Opaque subject id for Zoom OAuth triggers"),
		field.Int("trigger").
			GoType(lifecycle.TriggerKind(0)),
		field.String("idempotency_key").
			Unique().
			Immutable().
			Comment("UUID; receivers may dedupe on it"),
		field.JSON("payload", map[string]interface{}{}),
		field.Enum("status").
			GoType(lifecycle.DeliveryStatus("")).
			Default(string(lifecycle.DeliveryPending)),
		field.Int("attempt_count").
			Default(0),
		field.JSON("response_bodies", []string{}).
			Optional().
			Comment("Ordered response bodies from each attempt"),
		field.Time("next_attempt_at").
			Optional().
			Nillable(),
		field.Time("last_attempted_at").
			Optional().
			Nillable(),
		field.Time("succeeded_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the WebhookDeliveryAttempt.
func (WebhookDeliveryAttempt) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("subscription", WebhookSubscription.Type).
			Ref("delivery_attempts").
			Field("subscription_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the WebhookDeliveryAttempt.
func (WebhookDeliveryAttempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "next_attempt_at"),
		index.Fields("bot_id", "trigger"),
	}
}
