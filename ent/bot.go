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
	"github.com/stenobot-io/stenobot/ent/project"
	"github.com/stenobot-io/stenobot/pkg/lifecycle"
)

// Bot is the model entity for the Bot schema.
type Bot struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// MeetingURL holds the value of the "meeting_url" field.
	MeetingURL string `json:"meeting_url,omitempty"`
	// State holds the value of the "state" field.
	State lifecycle.BotState `json:"state,omitempty"`
	// SessionKind holds the value of the "session_kind" field.
	SessionKind lifecycle.SessionKind `json:"session_kind,omitempty"`
	// Opaque per-bot configuration (recording/transcription settings etc.)
	Settings map[string]interface{} `json:"settings,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// Epoch seconds of first heartbeat
	FirstHeartbeatTimestamp *int64 `json:"first_heartbeat_timestamp,omitempty"`
	// LastHeartbeatTimestamp holds the value of the "last_heartbeat_timestamp" field.
	LastHeartbeatTimestamp *int64 `json:"last_heartbeat_timestamp,omitempty"`
	// Scheduled join time; set means the bot is created SCHEDULED
	JoinAt *time.Time `json:"join_at,omitempty"`
	// DeduplicationKey holds the value of the "deduplication_key" field.
	DeduplicationKey *string `json:"deduplication_key,omitempty"`
	// Optimistic concurrency counter; increments on every durable write
	Version int64 `json:"version,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BotQuery when eager-loading is set.
	Edges        BotEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BotEdges holds the relations/edges for other nodes in the graph.
type BotEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// Events holds the value of the events edge.
	Events []*BotEvent `json:"events,omitempty"`
	// Recordings holds the value of the recordings edge.
	Recordings []*Recording `json:"recordings,omitempty"`
	// Participants holds the value of the participants edge.
	Participants []*Participant `json:"participants,omitempty"`
	// ChatMessages holds the value of the chat_messages edge.
	ChatMessages []*ChatMessage `json:"chat_messages,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BotEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e BotEdges) EventsOrErr() ([]*BotEvent, error) {
	if e.loadedTypes[1] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// RecordingsOrErr returns the Recordings value or an error if the edge
// was not loaded in eager-loading.
func (e BotEdges) RecordingsOrErr() ([]*Recording, error) {
	if e.loadedTypes[2] {
		return e.Recordings, nil
	}
	return nil, &NotLoadedError{edge: "recordings"}
}

// ParticipantsOrErr returns the Participants value or an error if the edge
// was not loaded in eager-loading.
func (e BotEdges) ParticipantsOrErr() ([]*Participant, error) {
	if e.loadedTypes[3] {
		return e.Participants, nil
	}
	return nil, &NotLoadedError{edge: "participants"}
}

// ChatMessagesOrErr returns the ChatMessages value or an error if the edge
// was not loaded in eager-loading.
func (e BotEdges) ChatMessagesOrErr() ([]*ChatMessage, error) {
	if e.loadedTypes[4] {
		return e.ChatMessages, nil
	}
	return nil, &NotLoadedError{edge: "chat_messages"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Bot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case bot.FieldSettings, bot.FieldMetadata:
			values[i] = new([]byte)
		case bot.FieldState, bot.FieldFirstHeartbeatTimestamp, bot.FieldLastHeartbeatTimestamp, bot.FieldVersion:
			values[i] = new(sql.NullInt64)
		case bot.FieldID, bot.FieldProjectID, bot.FieldName, bot.FieldMeetingURL, bot.FieldSessionKind, bot.FieldDeduplicationKey:
			values[i] = new(sql.NullString)
		case bot.FieldJoinAt, bot.FieldCreatedAt, bot.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Bot fields.
func (_m *Bot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case bot.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case bot.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case bot.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case bot.FieldMeetingURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field meeting_url", values[i])
			} else if value.Valid {
				_m.MeetingURL = value.String
			}
		case bot.FieldState:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = lifecycle.BotState(value.Int64)
			}
		case bot.FieldSessionKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_kind", values[i])
			} else if value.Valid {
				_m.SessionKind = lifecycle.SessionKind(value.String)
			}
		case bot.FieldSettings:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field settings", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Settings); err != nil {
					return fmt.Errorf("unmarshal field settings: %w", err)
				}
			}
		case bot.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case bot.FieldFirstHeartbeatTimestamp:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field first_heartbeat_timestamp", values[i])
			} else if value.Valid {
				_m.FirstHeartbeatTimestamp = new(int64)
				*_m.FirstHeartbeatTimestamp = value.Int64
			}
		case bot.FieldLastHeartbeatTimestamp:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat_timestamp", values[i])
			} else if value.Valid {
				_m.LastHeartbeatTimestamp = new(int64)
				*_m.LastHeartbeatTimestamp = value.Int64
			}
		case bot.FieldJoinAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field join_at", values[i])
			} else if value.Valid {
				_m.JoinAt = new(time.Time)
				*_m.JoinAt = value.Time
			}
		case bot.FieldDeduplicationKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field deduplication_key", values[i])
			} else if value.Valid {
				_m.DeduplicationKey = new(string)
				*_m.DeduplicationKey = value.String
			}
		case bot.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = value.Int64
			}
		case bot.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case bot.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Bot.
// This includes values selected through modifiers, order, etc.
func (_m *Bot) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the Bot entity.
func (_m *Bot) QueryProject() *ProjectQuery {
	return NewBotClient(_m.config).QueryProject(_m)
}

// QueryEvents queries the "events" edge of the Bot entity.
func (_m *Bot) QueryEvents() *BotEventQuery {
	return NewBotClient(_m.config).QueryEvents(_m)
}

// QueryRecordings queries the "recordings" edge of the Bot entity.
func (_m *Bot) QueryRecordings() *RecordingQuery {
	return NewBotClient(_m.config).QueryRecordings(_m)
}

// QueryParticipants queries the "participants" edge of the Bot entity.
func (_m *Bot) QueryParticipants() *ParticipantQuery {
	return NewBotClient(_m.config).QueryParticipants(_m)
}

// QueryChatMessages queries the "chat_messages" edge of the Bot entity.
func (_m *Bot) QueryChatMessages() *ChatMessageQuery {
	return NewBotClient(_m.config).QueryChatMessages(_m)
}

// Update returns a builder for updating this Bot.
// Note that you need to call Bot.Unwrap() before calling this method if this Bot
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Bot) Update() *BotUpdateOne {
	return NewBotClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Bot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Bot) Unwrap() *Bot {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Bot is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Bot) String() string {
	var builder strings.Builder
	builder.WriteString("Bot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("meeting_url=")
	builder.WriteString(_m.MeetingURL)
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteString(", ")
	builder.WriteString("session_kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionKind))
	builder.WriteString(", ")
	builder.WriteString("settings=")
	builder.WriteString(fmt.Sprintf("%v", _m.Settings))
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	if v := _m.FirstHeartbeatTimestamp; v != nil {
		builder.WriteString("first_heartbeat_timestamp=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.LastHeartbeatTimestamp; v != nil {
		builder.WriteString("last_heartbeat_timestamp=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.JoinAt; v != nil {
		builder.WriteString("join_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DeduplicationKey; v != nil {
		builder.WriteString("deduplication_key=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Bots is a parsable slice of Bot.
type Bots []*Bot
