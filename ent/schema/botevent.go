package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/stenobot-io/stenobot/pkg/lifecycle"
)

// BotEvent holds the schema definition for the BotEvent entity: an immutable
// append-only record of a single state transition. The permitted
// (event_kind, event_sub_kind) combinations are enforced by the engine and
// re-enforced by a database check constraint in the migrations.
type BotEvent struct {
	ent.Schema
}

// Fields of the BotEvent.
func (BotEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("bot_event_id").
			Unique().
			Immutable(),
		field.String("bot_id").
			Immutable(),
		field.Int("old_state").
			GoType(lifecycle.BotState(0)).
			Immutable(),
		field.Int("new_state").
			GoType(lifecycle.BotState(0)).
			Immutable(),
		field.Enum("event_kind").
			GoType(lifecycle.EventKind("")).
			Immutable(),
		field.Enum("event_sub_kind").
			GoType(lifecycle.EventSubKind("")).
			Optional().
			Nillable().
			Immutable(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("requested_action_taken_at").
			Optional().
			Nillable().
			Comment("Stamped when the media adapter reports the requested action executed"),
	}
}

// Edges of the BotEvent.
func (BotEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("bot", Bot.Type).
			Ref("events").
			Field("bot_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the BotEvent.
func (BotEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("bot_id", "created_at"),
	}
}
