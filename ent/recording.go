// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/stenobot-io/stenobot/ent/bot"
	"github.com/stenobot-io/stenobot/ent/recording"
	"github.com/stenobot-io/stenobot/pkg/lifecycle"
)

// Recording is the model entity for the Recording schema.
type Recording struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// BotID holds the value of the "bot_id" field.
	BotID string `json:"bot_id,omitempty"`
	// RecordingKind holds the value of the "recording_kind" field.
	RecordingKind lifecycle.RecordingKind `json:"recording_kind,omitempty"`
	// TranscriptionKind holds the value of the "transcription_kind" field.
	TranscriptionKind lifecycle.TranscriptionKind `json:"transcription_kind,omitempty"`
	// State holds the value of the "state" field.
	State lifecycle.RecordingState `json:"state,omitempty"`
	// TranscriptionState holds the value of the "transcription_state" field.
	TranscriptionState lifecycle.TranscriptionState `json:"transcription_state,omitempty"`
	// Stamped on first start only, not on resume
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Storage handle of the uploaded media file
	MediaBlobID *string `json:"media_blob_id,omitempty"`
	// FailureReasons holds the value of the "failure_reasons" field.
	FailureReasons []string `json:"failure_reasons,omitempty"`
	// Version holds the value of the "version" field.
	Version int64 `json:"version,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RecordingQuery when eager-loading is set.
	Edges        RecordingEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RecordingEdges holds the relations/edges for other nodes in the graph.
type RecordingEdges struct {
	// Bot holds the value of the bot edge.
	Bot *Bot `json:"bot,omitempty"`
	// Utterances holds the value of the utterances edge.
	Utterances []*Utterance `json:"utterances,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// BotOrErr returns the Bot value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RecordingEdges) BotOrErr() (*Bot, error) {
	if e.Bot != nil {
		return e.Bot, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: bot.Label}
	}
	return nil, &NotLoadedError{edge: "bot"}
}

// UtterancesOrErr returns the Utterances value or an error if the edge
// was not loaded in eager-loading.
func (e RecordingEdges) UtterancesOrErr() ([]*Utterance, error) {
	if e.loadedTypes[1] {
		return e.Utterances, nil
	}
	return nil, &NotLoadedError{edge: "utterances"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Recording) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case recording.FieldFailureReasons:
			values[i] = new([]byte)
		case recording.FieldVersion:
			values[i] = new(sql.NullInt64)
		case recording.FieldID, recording.FieldBotID, recording.FieldRecordingKind, recording.FieldTranscriptionKind, recording.FieldState, recording.FieldTranscriptionState, recording.FieldMediaBlobID:
			values[i] = new(sql.NullString)
		case recording.FieldStartedAt, recording.FieldCompletedAt, recording.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Recording fields.
func (_m *Recording) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case recording.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case recording.FieldBotID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bot_id", values[i])
			} else if value.Valid {
				_m.BotID = value.String
			}
		case recording.FieldRecordingKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recording_kind", values[i])
			} else if value.Valid {
				_m.RecordingKind = lifecycle.RecordingKind(value.String)
			}
		case recording.FieldTranscriptionKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field transcription_kind", values[i])
			} else if value.Valid {
				_m.TranscriptionKind = lifecycle.TranscriptionKind(value.String)
			}
		case recording.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = lifecycle.RecordingState(value.String)
			}
		case recording.FieldTranscriptionState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field transcription_state", values[i])
			} else if value.Valid {
				_m.TranscriptionState = lifecycle.TranscriptionState(value.String)
			}
		case recording.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case recording.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case recording.FieldMediaBlobID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field media_blob_id", values[i])
			} else if value.Valid {
				_m.MediaBlobID = new(string)
				*_m.MediaBlobID = value.String
			}
		case recording.FieldFailureReasons:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field failure_reasons", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FailureReasons); err != nil {
					return fmt.Errorf("unmarshal field failure_reasons: %w", err)
				}
			}
		case recording.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = value.Int64
			}
		case recording.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Recording.
// This includes values selected through modifiers, order, etc.
func (_m *Recording) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBot queries the "bot" edge of the Recording entity.
func (_m *Recording) QueryBot() *BotQuery {
	return NewRecordingClient(_m.config).QueryBot(_m)
}

// QueryUtterances queries the "utterances" edge of the Recording entity.
func (_m *Recording) QueryUtterances() *UtteranceQuery {
	return NewRecordingClient(_m.config).QueryUtterances(_m)
}

// Update returns a builder for updating this Recording.
// Note that you need to call Recording.Unwrap() before calling this method if this Recording
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Recording) Update() *RecordingUpdateOne {
	return NewRecordingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Recording entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Recording) Unwrap() *Recording {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Recording is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Recording) String() string {
	var builder strings.Builder
	builder.WriteString("Recording(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("bot_id=")
	builder.WriteString(_m.BotID)
	builder.WriteString(", ")
	builder.WriteString("recording_kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecordingKind))
	builder.WriteString(", ")
	builder.WriteString("transcription_kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.TranscriptionKind))
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteString(", ")
	builder.WriteString("transcription_state=")
	builder.WriteString(fmt.Sprintf("%v", _m.TranscriptionState))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.MediaBlobID; v != nil {
		builder.WriteString("media_blob_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("failure_reasons=")
	builder.WriteString(fmt.Sprintf("%v", _m.FailureReasons))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Recordings is a parsable slice of Recording.
type Recordings []*Recording
