package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Participant holds the schema definition for the Participant entity: one
// attendee observed by a bot. Purged when bot data is deleted.
type Participant struct {
	ent.Schema
}

// Fields of the Participant.
func (Participant) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("participant_id").
			Unique().
			Immutable(),
		field.String("bot_id").
			Immutable(),
		field.String("platform_uuid").
			Comment("Identifier assigned by the meeting platform"),
		field.String("full_name"),
		field.Bool("is_host").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Participant.
func (Participant) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("bot", Bot.Type).
			Ref("participants").
			Field("bot_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Participant.
func (Participant) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("bot_id", "platform_uuid").
			Unique(),
	}
}
