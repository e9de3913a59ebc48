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
	"github.com/stenobot-io/stenobot/ent/botevent"
	"github.com/stenobot-io/stenobot/pkg/lifecycle"
)

// BotEvent is the model entity for the BotEvent schema.
type BotEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// BotID holds the value of the "bot_id" field.
	BotID string `json:"bot_id,omitempty"`
	// OldState holds the value of the "old_state" field.
	OldState lifecycle.BotState `json:"old_state,omitempty"`
	// NewState holds the value of the "new_state" field.
	NewState lifecycle.BotState `json:"new_state,omitempty"`
	// EventKind holds the value of the "event_kind" field.
	EventKind lifecycle.EventKind `json:"event_kind,omitempty"`
	// EventSubKind holds the value of the "event_sub_kind" field.
	EventSubKind *lifecycle.EventSubKind `json:"event_sub_kind,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Stamped when the media adapter reports the requested action executed
	RequestedActionTakenAt *time.Time `json:"requested_action_taken_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BotEventQuery when eager-loading is set.
	Edges        BotEventEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BotEventEdges holds the relations/edges for other nodes in the graph.
type BotEventEdges struct {
	// Bot holds the value of the bot edge.
	Bot *Bot `json:"bot,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// BotOrErr returns the Bot value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BotEventEdges) BotOrErr() (*Bot, error) {
	if e.Bot != nil {
		return e.Bot, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: bot.Label}
	}
	return nil, &NotLoadedError{edge: "bot"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BotEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case botevent.FieldMetadata:
			values[i] = new([]byte)
		case botevent.FieldOldState, botevent.FieldNewState:
			values[i] = new(sql.NullInt64)
		case botevent.FieldID, botevent.FieldBotID, botevent.FieldEventKind, botevent.FieldEventSubKind:
			values[i] = new(sql.NullString)
		case botevent.FieldCreatedAt, botevent.FieldRequestedActionTakenAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BotEvent fields.
func (_m *BotEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case botevent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case botevent.FieldBotID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bot_id", values[i])
			} else if value.Valid {
				_m.BotID = value.String
			}
		case botevent.FieldOldState:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field old_state", values[i])
			} else if value.Valid {
				_m.OldState = lifecycle.BotState(value.Int64)
			}
		case botevent.FieldNewState:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field new_state", values[i])
			} else if value.Valid {
				_m.NewState = lifecycle.BotState(value.Int64)
			}
		case botevent.FieldEventKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_kind", values[i])
			} else if value.Valid {
				_m.EventKind = lifecycle.EventKind(value.String)
			}
		case botevent.FieldEventSubKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_sub_kind", values[i])
			} else if value.Valid {
				_m.EventSubKind = new(lifecycle.EventSubKind)
				*_m.EventSubKind = lifecycle.EventSubKind(value.String)
			}
		case botevent.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case botevent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case botevent.FieldRequestedActionTakenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field requested_action_taken_at", values[i])
			} else if value.Valid {
				_m.RequestedActionTakenAt = new(time.Time)
				*_m.RequestedActionTakenAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BotEvent.
// This includes values selected through modifiers, order, etc.
func (_m *BotEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBot queries the "bot" edge of the BotEvent entity.
func (_m *BotEvent) QueryBot() *BotQuery {
	return NewBotEventClient(_m.config).QueryBot(_m)
}

// Update returns a builder for updating this BotEvent.
// Note that you need to call BotEvent.Unwrap() before calling this method if this BotEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BotEvent) Update() *BotEventUpdateOne {
	return NewBotEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BotEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BotEvent) Unwrap() *BotEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BotEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BotEvent) String() string {
	var builder strings.Builder
	builder.WriteString("BotEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("bot_id=")
	builder.WriteString(_m.BotID)
	builder.WriteString(", ")
	builder.WriteString("old_state=")
	builder.WriteString(fmt.Sprintf("%v", _m.OldState))
	builder.WriteString(", ")
	builder.WriteString("new_state=")
	builder.WriteString(fmt.Sprintf("%v", _m.NewState))
	builder.WriteString(", ")
	builder.WriteString("event_kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.EventKind))
	builder.WriteString(", ")
	if v := _m.EventSubKind; v != nil {
		builder.WriteString("event_sub_kind=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.RequestedActionTakenAt; v != nil {
		builder.WriteString("requested_action_taken_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// BotEvents is a parsable slice of BotEvent.
type BotEvents []*BotEvent
