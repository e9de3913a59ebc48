package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Utterance holds the schema definition for the Utterance entity: one
// speech segment awaiting or holding a transcription. An utterance with
// neither a transcription nor a failure reason is still in progress.
type Utterance struct {
	ent.Schema
}

// Fields of the Utterance.
func (Utterance) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("utterance_id").
			Unique().
			Immutable(),
		field.String("recording_id").
			Immutable(),
		field.String("participant_id").
			Optional().
			Nillable(),
		field.Int64("timestamp_ms").
			Comment("Offset from recording start"),
		field.Int64("duration_ms"),
		field.JSON("transcription", map[string]interface{}{}).
			Optional(),
		field.String("failure_reason").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Utterance.
func (Utterance) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("recording", Recording.Type).
			Ref("utterances").
			Field("recording_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Utterance.
func (Utterance) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("recording_id", "timestamp_ms"),
	}
}
