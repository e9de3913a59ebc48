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

// Bot holds the schema definition for the Bot entity: one meeting session,
// browser bot or app session. State transitions go through the transition
// engine only; the version column rejects stale writes.
type Bot struct {
	ent.Schema
}

// Fields of the Bot.
func (Bot) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("bot_id").
			Unique().
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.String("name").
			Default("Notetaker"),
		field.String("meeting_url"),
		field.Int("state").
			GoType(lifecycle.BotState(0)).
			Default(int(lifecycle.StateReady)),
		field.Enum("session_kind").
			GoType(lifecycle.SessionKind("")).
			Default(string(lifecycle.SessionKindBot)),
		field.JSON("settings", map[string]interface{}{}).
			Optional().
			Comment("Opaque per-bot configuration (recording/transcription settings etc.)"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Int64("first_heartbeat_timestamp").
			Optional().
			Nillable().
			Comment("Epoch seconds of first heartbeat"),
		field.Int64("last_heartbeat_timestamp").
			Optional().
			Nillable(),
		field.Time("join_at").
			Optional().
			Nillable().
			Comment("Scheduled join time; set means the bot is created SCHEDULED"),
		field.String("deduplication_key").
			Optional().
			Nillable(),
		field.Int64("version").
			Default(0).
			Comment("Optimistic concurrency counter; increments on every durable write"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Bot.
func (Bot) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("bots").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
		edge.To("events", BotEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("recordings", Recording.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("participants", Participant.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("chat_messages", ChatMessage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Bot.
func (Bot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "state"),
		index.Fields("state", "join_at"),

		// Within a project, at most one bot with a given deduplication key
		// may exist outside the post-meeting states (7, 9, 10).
		index.Fields("project_id", "deduplication_key").
			Unique().
			Annotations(entsql.IndexWhere("deduplication_key IS NOT NULL AND state NOT IN (7, 9, 10)")),
	}
}
