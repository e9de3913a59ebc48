// Code generated by ent, DO NOT EDIT.

package recording

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/stenobot-io/stenobot/pkg/lifecycle"
)

const (
	// Label holds the string label denoting the recording type in the database.
	Label = "recording"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "recording_id"
	// FieldBotID holds the string denoting the bot_id field in the database.
	FieldBotID = "bot_id"
	// FieldRecordingKind holds the string denoting the recording_kind field in the database.
	FieldRecordingKind = "recording_kind"
	// FieldTranscriptionKind holds the string denoting the transcription_kind field in the database.
	FieldTranscriptionKind = "transcription_kind"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldTranscriptionState holds the string denoting the transcription_state field in the database.
	FieldTranscriptionState = "transcription_state"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldMediaBlobID holds the string denoting the media_blob_id field in the database.
	FieldMediaBlobID = "media_blob_id"
	// FieldFailureReasons holds the string denoting the failure_reasons field in the database.
	FieldFailureReasons = "failure_reasons"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeBot holds the string denoting the bot edge name in mutations.
	EdgeBot = "bot"
	// EdgeUtterances holds the string denoting the utterances edge name in mutations.
	EdgeUtterances = "utterances"
	// BotFieldID holds the string denoting the ID field of the Bot.
	BotFieldID = "bot_id"
	// UtteranceFieldID holds the string denoting the ID field of the Utterance.
	UtteranceFieldID = "utterance_id"
	// Table holds the table name of the recording in the database.
	Table = "recordings"
	// BotTable is the table that holds the bot relation/edge.
	BotTable = "recordings"
	// BotInverseTable is the table name for the Bot entity.
	// It exists in this package in order to avoid circular dependency with the "bot" package.
	BotInverseTable = "bots"
	// BotColumn is the table column denoting the bot relation/edge.
	BotColumn = "bot_id"
	// UtterancesTable is the table that holds the utterances relation/edge.
	UtterancesTable = "utterances"
	// UtterancesInverseTable is the table name for the Utterance entity.
	// It exists in this package in order to avoid circular dependency with the "utterance" package.
	UtterancesInverseTable = "utterances"
	// UtterancesColumn is the table column denoting the utterances relation/edge.
	UtterancesColumn = "recording_id"
)

// Columns holds all SQL columns for recording fields.
var Columns = []string{
	FieldID,
	FieldBotID,
	FieldRecordingKind,
	FieldTranscriptionKind,
	FieldState,
	FieldTranscriptionState,
	FieldStartedAt,
	FieldCompletedAt,
	FieldMediaBlobID,
	FieldFailureReasons,
	FieldVersion,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

const DefaultRecordingKind lifecycle.RecordingKind = "audio_and_video"

// RecordingKindValidator is a validator for the "recording_kind" field enum values. It is called by the builders before save.
func RecordingKindValidator(rk lifecycle.RecordingKind) error {
	switch rk {
	case "audio_and_video", "audio_only", "no_recording":
		return nil
	default:
		return fmt.Errorf("recording: invalid enum value for recording_kind field: %q", rk)
	}
}

const DefaultTranscriptionKind lifecycle.TranscriptionKind = "none"

// TranscriptionKindValidator is a validator for the "transcription_kind" field enum values. It is called by the builders before save.
func TranscriptionKindValidator(tk lifecycle.TranscriptionKind) error {
	switch tk {
	case "none", "realtime", "post_meeting", "closed_caption":
		return nil
	default:
		return fmt.Errorf("recording: invalid enum value for transcription_kind field: %q", tk)
	}
}

const DefaultState lifecycle.RecordingState = "not_started"

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s lifecycle.RecordingState) error {
	switch s {
	case "not_started", "in_progress", "paused", "complete", "failed":
		return nil
	default:
		return fmt.Errorf("recording: invalid enum value for state field: %q", s)
	}
}

const DefaultTranscriptionState lifecycle.TranscriptionState = "not_started"

// TranscriptionStateValidator is a validator for the "transcription_state" field enum values. It is called by the builders before save.
func TranscriptionStateValidator(ts lifecycle.TranscriptionState) error {
	switch ts {
	case "not_started", "in_progress", "complete", "failed":
		return nil
	default:
		return fmt.Errorf("recording: invalid enum value for transcription_state field: %q", ts)
	}
}

// OrderOption defines the ordering options for the Recording queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBotID orders the results by the bot_id field.
func ByBotID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBotID, opts...).ToFunc()
}

// ByRecordingKind orders the results by the recording_kind field.
func ByRecordingKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecordingKind, opts...).ToFunc()
}

// ByTranscriptionKind orders the results by the transcription_kind field.
func ByTranscriptionKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTranscriptionKind, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByTranscriptionState orders the results by the transcription_state field.
func ByTranscriptionState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTranscriptionState, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByMediaBlobID orders the results by the media_blob_id field.
func ByMediaBlobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMediaBlobID, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByBotField orders the results by bot field.
func ByBotField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBotStep(), sql.OrderByField(field, opts...))
	}
}

// ByUtterancesCount orders the results by utterances count.
func ByUtterancesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newUtterancesStep(), opts...)
	}
}

// ByUtterances orders the results by utterances terms.
func ByUtterances(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUtterancesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newBotStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BotInverseTable, BotFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, BotTable, BotColumn),
	)
}
func newUtterancesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UtterancesInverseTable, UtteranceFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, UtterancesTable, UtterancesColumn),
	)
}
