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

// Recording holds the schema definition for the Recording entity. A bot may
// accumulate several recordings over its life, but at most one may be
// in_progress or paused at any time.
type Recording struct {
	ent.Schema
}

// Fields of the Recording.
func (Recording) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("recording_id").
			Unique().
			Immutable(),
		field.String("bot_id").
			Immutable(),
		field.Enum("recording_kind").
			GoType(lifecycle.RecordingKind("")).
			Default(string(lifecycle.RecordingKindAudioVideo)),
		field.Enum("transcription_kind").
			GoType(lifecycle.TranscriptionKind("")).
			Default(string(lifecycle.TranscriptionKindNone)),
		field.Enum("state").
			GoType(lifecycle.RecordingState("")).
			Default(string(lifecycle.RecordingNotStarted)),
		field.Enum("transcription_state").
			GoType(lifecycle.TranscriptionState("")).
			Default(string(lifecycle.TranscriptionNotStarted)),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("Stamped on first start only, not on resume"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.String("media_blob_id").
			Optional().
			Nillable().
			Comment("Storage handle of the uploaded media file"),
		field.JSON("failure_reasons", []string{}).
			Optional(),
		field.Int64("version").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Recording.
func (Recording) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("bot", Bot.Type).
			Ref("recordings").
			Field("bot_id").
			Unique().
			Required().
			Immutable(),
		edge.To("utterances", Utterance.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Recording.
func (Recording) Indexes() []ent.Index {
	return []ent.Index{
		// Single active recording per bot.
		index.Fields("bot_id").
			Unique().
			Annotations(entsql.IndexWhere("state IN ('in_progress', 'paused')")),
		index.Fields("bot_id", "state"),
	}
}
