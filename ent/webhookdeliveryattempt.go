// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/stenobot-io/stenobot/ent/webhookdeliveryattempt"
	"github.com/stenobot-io/stenobot/ent/webhooksubscription"
	"github.com/stenobot-io/stenobot/pkg/lifecycle"
)

// WebhookDeliveryAttempt is the model entity for the WebhookDeliveryAttempt schema.
type WebhookDeliveryAttempt struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SubscriptionID holds the value of the "subscription_id" field.
	SubscriptionID string `json:"subscription_id,omitempty"`
	// BotID holds the value of the "bot_id" field.
	BotID *string `json:"bot_id,omitempty"`
	// Opaque subject id for calendar-scoped triggers
	CalendarID *string `json:"calendar_id,omitempty"`
	// Opaque subject id for Zoom OAuth triggers
	ZoomOauthConnectionID *string `json:"zoom_oauth_connection_id,omitempty"`
	// Trigger holds the value of the "trigger" field.
	Trigger lifecycle.TriggerKind `json:"trigger,omitempty"`
	// UUID; receivers may dedupe on it
	IdempotencyKey string `json:"idempotency_key,omitempty"`
	// Payload holds the value of the "payload" field.
	Payload map[string]interface{} `json:"payload,omitempty"`
	// Status holds the value of the "status" field.
	Status lifecycle.DeliveryStatus `json:"status,omitempty"`
	// AttemptCount holds the value of the "attempt_count" field.
	AttemptCount int `json:"attempt_count,omitempty"`
	// Ordered response bodies from each attempt
	ResponseBodies []string `json:"response_bodies,omitempty"`
	// NextAttemptAt holds the value of the "next_attempt_at" field.
	NextAttemptAt *time.Time `json:"next_attempt_at,omitempty"`
	// LastAttemptedAt holds the value of the "last_attempted_at" field.
	LastAttemptedAt *time.Time `json:"last_attempted_at,omitempty"`
	// SucceededAt holds the value of the "succeeded_at" field.
	SucceededAt *time.Time `json:"succeeded_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WebhookDeliveryAttemptQuery when eager-loading is set.
	Edges        WebhookDeliveryAttemptEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WebhookDeliveryAttemptEdges holds the relations/edges for other nodes in the graph.
type WebhookDeliveryAttemptEdges struct {
	// Subscription holds the value of the subscription edge.
	Subscription *WebhookSubscription `json:"subscription,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SubscriptionOrErr returns the Subscription value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WebhookDeliveryAttemptEdges) SubscriptionOrErr() (*WebhookSubscription, error) {
	if e.Subscription != nil {
		return e.Subscription, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: webhooksubscription.Label}
	}
	return nil, &NotLoadedError{edge: "subscription"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WebhookDeliveryAttempt) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case webhookdeliveryattempt.FieldPayload, webhookdeliveryattempt.FieldResponseBodies:
			values[i] = new([]byte)
		case webhookdeliveryattempt.FieldTrigger, webhookdeliveryattempt.FieldAttemptCount:
			values[i] = new(sql.NullInt64)
		case webhookdeliveryattempt.FieldID, webhookdeliveryattempt.FieldSubscriptionID, webhookdeliveryattempt.FieldBotID, webhookdeliveryattempt.FieldCalendarID, webhookdeliveryattempt.FieldZoomOauthConnectionID, webhookdeliveryattempt.FieldIdempotencyKey, webhookdeliveryattempt.FieldStatus:
			values[i] = new(sql.NullString)
		case webhookdeliveryattempt.FieldNextAttemptAt, webhookdeliveryattempt.FieldLastAttemptedAt, webhookdeliveryattempt.FieldSucceededAt, webhookdeliveryattempt.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WebhookDeliveryAttempt fields.
func (_m *WebhookDeliveryAttempt) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case webhookdeliveryattempt.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case webhookdeliveryattempt.FieldSubscriptionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subscription_id", values[i])
			} else if value.Valid {
				_m.SubscriptionID = value.String
			}
		case webhookdeliveryattempt.FieldBotID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bot_id", values[i])
			} else if value.Valid {
				_m.BotID = new(string)
				*_m.BotID = value.String
			}
		case webhookdeliveryattempt.FieldCalendarID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field calendar_id", values[i])
			} else if value.Valid {
				_m.CalendarID = new(string)
				*_m.CalendarID = value.String
			}
		case webhookdeliveryattempt.FieldZoomOauthConnectionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field zoom_oauth_connection_id", values[i])
			} else if value.Valid {
				_m.ZoomOauthConnectionID = new(string)
				*_m.ZoomOauthConnectionID = value.String
			}
		case webhookdeliveryattempt.FieldTrigger:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field trigger", values[i])
			} else if value.Valid {
				_m.Trigger = lifecycle.TriggerKind(value.Int64)
			}
		case webhookdeliveryattempt.FieldIdempotencyKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field idempotency_key", values[i])
			} else if value.Valid {
				_m.IdempotencyKey = value.String
			}
		case webhookdeliveryattempt.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case webhookdeliveryattempt.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = lifecycle.DeliveryStatus(value.String)
			}
		case webhookdeliveryattempt.FieldAttemptCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_count", values[i])
			} else if value.Valid {
				_m.AttemptCount = int(value.Int64)
			}
		case webhookdeliveryattempt.FieldResponseBodies:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field response_bodies", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ResponseBodies); err != nil {
					return fmt.Errorf("unmarshal field response_bodies: %w", err)
				}
			}
		case webhookdeliveryattempt.FieldNextAttemptAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_attempt_at", values[i])
			} else if value.Valid {
				_m.NextAttemptAt = new(time.Time)
				*_m.NextAttemptAt = value.Time
			}
		case webhookdeliveryattempt.FieldLastAttemptedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_attempted_at", values[i])
			} else if value.Valid {
				_m.LastAttemptedAt = new(time.Time)
				*_m.LastAttemptedAt = value.Time
			}
		case webhookdeliveryattempt.FieldSucceededAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field succeeded_at", values[i])
			} else if value.Valid {
				_m.SucceededAt = new(time.Time)
				*_m.SucceededAt = value.Time
			}
		case webhookdeliveryattempt.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the WebhookDeliveryAttempt.
// This includes values selected through modifiers, order, etc.
func (_m *WebhookDeliveryAttempt) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySubscription queries the "subscription" edge of the WebhookDeliveryAttempt entity.
func (_m *WebhookDeliveryAttempt) QuerySubscription() *WebhookSubscriptionQuery {
	return NewWebhookDeliveryAttemptClient(_m.config).QuerySubscription(_m)
}

// Update returns a builder for updating this WebhookDeliveryAttempt.
// Note that you need to call WebhookDeliveryAttempt.Unwrap() before calling this method if this WebhookDeliveryAttempt
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WebhookDeliveryAttempt) Update() *WebhookDeliveryAttemptUpdateOne {
	return NewWebhookDeliveryAttemptClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WebhookDeliveryAttempt entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WebhookDeliveryAttempt) Unwrap() *WebhookDeliveryAttempt {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WebhookDeliveryAttempt is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WebhookDeliveryAttempt) String() string {
	var builder strings.Builder
	builder.WriteString("WebhookDeliveryAttempt(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("subscription_id=")
	builder.WriteString(_m.SubscriptionID)
	builder.WriteString(", ")
	if v := _m.BotID; v != nil {
		builder.WriteString("bot_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CalendarID; v != nil {
		builder.WriteString("calendar_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ZoomOauthConnectionID; v != nil {
		builder.WriteString("zoom_oauth_connection_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("trigger=")
	builder.WriteString(fmt.Sprintf("%v", _m.Trigger))
	builder.WriteString(", ")
	builder.WriteString("idempotency_key=")
	builder.WriteString(_m.IdempotencyKey)
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("attempt_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttemptCount))
	builder.WriteString(", ")
	builder.WriteString("response_bodies=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResponseBodies))
	builder.WriteString(", ")
	if v := _m.NextAttemptAt; v != nil {
		builder.WriteString("next_attempt_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastAttemptedAt; v != nil {
		builder.WriteString("last_attempted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.SucceededAt; v != nil {
		builder.WriteString("succeeded_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// WebhookDeliveryAttempts is a parsable slice of WebhookDeliveryAttempt.
type WebhookDeliveryAttempts []*WebhookDeliveryAttempt
