// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/stenobot-io/stenobot/ent/project"
	"github.com/stenobot-io/stenobot/ent/webhooksubscription"
	"github.com/stenobot-io/stenobot/pkg/lifecycle"
)

// WebhookSubscription is the model entity for the WebhookSubscription schema.
type WebhookSubscription struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// Narrows the subscription to a single bot when set
	BotID *string `json:"bot_id,omitempty"`
	// URL holds the value of the "url" field.
	URL string `json:"url,omitempty"`
	// Enabled trigger kinds (numeric codes)
	Triggers []lifecycle.TriggerKind `json:"triggers,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WebhookSubscriptionQuery when eager-loading is set.
	Edges        WebhookSubscriptionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WebhookSubscriptionEdges holds the relations/edges for other nodes in the graph.
type WebhookSubscriptionEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// DeliveryAttempts holds the value of the delivery_attempts edge.
	DeliveryAttempts []*WebhookDeliveryAttempt `json:"delivery_attempts,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WebhookSubscriptionEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// DeliveryAttemptsOrErr returns the DeliveryAttempts value or an error if the edge
// was not loaded in eager-loading.
func (e WebhookSubscriptionEdges) DeliveryAttemptsOrErr() ([]*WebhookDeliveryAttempt, error) {
	if e.loadedTypes[1] {
		return e.DeliveryAttempts, nil
	}
	return nil, &NotLoadedError{edge: "delivery_attempts"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WebhookSubscription) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case webhooksubscription.FieldTriggers:
			values[i] = new([]byte)
		case webhooksubscription.FieldIsActive:
			values[i] = new(sql.NullBool)
		case webhooksubscription.FieldID, webhooksubscription.FieldProjectID, webhooksubscription.FieldBotID, webhooksubscription.FieldURL:
			values[i] = new(sql.NullString)
		case webhooksubscription.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WebhookSubscription fields.
func (_m *WebhookSubscription) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case webhooksubscription.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case webhooksubscription.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case webhooksubscription.FieldBotID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bot_id", values[i])
			} else if value.Valid {
				_m.BotID = new(string)
				*_m.BotID = value.String
			}
		case webhooksubscription.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = value.String
			}
		case webhooksubscription.FieldTriggers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field triggers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Triggers); err != nil {
					return fmt.Errorf("unmarshal field triggers: %w", err)
				}
			}
		case webhooksubscription.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case webhooksubscription.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the WebhookSubscription.
// This includes values selected through modifiers, order, etc.
func (_m *WebhookSubscription) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the WebhookSubscription entity.
func (_m *WebhookSubscription) QueryProject() *ProjectQuery {
	return NewWebhookSubscriptionClient(_m.config).QueryProject(_m)
}

// QueryDeliveryAttempts queries the "delivery_attempts" edge of the WebhookSubscription entity.
func (_m *WebhookSubscription) QueryDeliveryAttempts() *WebhookDeliveryAttemptQuery {
	return NewWebhookSubscriptionClient(_m.config).QueryDeliveryAttempts(_m)
}

// Update returns a builder for updating this WebhookSubscription.
// Note that you need to call WebhookSubscription.Unwrap() before calling this method if this WebhookSubscription
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WebhookSubscription) Update() *WebhookSubscriptionUpdateOne {
	return NewWebhookSubscriptionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WebhookSubscription entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WebhookSubscription) Unwrap() *WebhookSubscription {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WebhookSubscription is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WebhookSubscription) String() string {
	var builder strings.Builder
	builder.WriteString("WebhookSubscription(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	if v := _m.BotID; v != nil {
		builder.WriteString("bot_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("url=")
	builder.WriteString(_m.URL)
	builder.WriteString(", ")
	builder.WriteString("triggers=")
	builder.WriteString(fmt.Sprintf("%v", _m.Triggers))
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// WebhookSubscriptions is a parsable slice of WebhookSubscription.
type WebhookSubscriptions []*WebhookSubscription
