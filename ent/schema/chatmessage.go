package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatMessage holds the schema definition for the ChatMessage entity: one
// in-meeting chat message relayed to webhook subscribers. Purged when bot
// data is deleted.
type ChatMessage struct {
	ent.Schema
}

// Fields of the ChatMessage.
func (ChatMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("chat_message_id").
			Unique().
			Immutable(),
		field.String("bot_id").
			Immutable(),
		field.String("participant_id").
			Optional().
			Nillable(),
		field.Text("text"),
		field.Int64("timestamp_ms"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ChatMessage.
func (ChatMessage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("bot", Bot.Type).
			Ref("chat_messages").
			Field("bot_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ChatMessage.
func (ChatMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("bot_id", "timestamp_ms"),
	}
}
