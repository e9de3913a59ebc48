// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/stenobot-io/stenobot/ent/credittransaction"
	"github.com/stenobot-io/stenobot/ent/organization"
)

// CreditTransaction is the model entity for the CreditTransaction schema.
type CreditTransaction struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// OrganizationID holds the value of the "organization_id" field.
	OrganizationID string `json:"organization_id,omitempty"`
	// ParentTransactionID holds the value of the "parent_transaction_id" field.
	ParentTransactionID *string `json:"parent_transaction_id,omitempty"`
	// CenticreditsBefore holds the value of the "centicredits_before" field.
	CenticreditsBefore int64 `json:"centicredits_before,omitempty"`
	// CenticreditsAfter holds the value of the "centicredits_after" field.
	CenticreditsAfter int64 `json:"centicredits_after,omitempty"`
	// CenticreditsDelta holds the value of the "centicredits_delta" field.
	CenticreditsDelta int64 `json:"centicredits_delta,omitempty"`
	// BotID holds the value of the "bot_id" field.
	BotID *string `json:"bot_id,omitempty"`
	// StripePaymentIntentID holds the value of the "stripe_payment_intent_id" field.
	StripePaymentIntentID *string `json:"stripe_payment_intent_id,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CreditTransactionQuery when eager-loading is set.
	Edges        CreditTransactionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CreditTransactionEdges holds the relations/edges for other nodes in the graph.
type CreditTransactionEdges struct {
	// Organization holds the value of the organization edge.
	Organization *Organization `json:"organization,omitempty"`
	// Parent holds the value of the parent edge.
	Parent *CreditTransaction `json:"parent,omitempty"`
	// Children holds the value of the children edge.
	Children []*CreditTransaction `json:"children,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// OrganizationOrErr returns the Organization value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CreditTransactionEdges) OrganizationOrErr() (*Organization, error) {
	if e.Organization != nil {
		return e.Organization, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: organization.Label}
	}
	return nil, &NotLoadedError{edge: "organization"}
}

// ParentOrErr returns the Parent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CreditTransactionEdges) ParentOrErr() (*CreditTransaction, error) {
	if e.Parent != nil {
		return e.Parent, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: credittransaction.Label}
	}
	return nil, &NotLoadedError{edge: "parent"}
}

// ChildrenOrErr returns the Children value or an error if the edge
// was not loaded in eager-loading.
func (e CreditTransactionEdges) ChildrenOrErr() ([]*CreditTransaction, error) {
	if e.loadedTypes[2] {
		return e.Children, nil
	}
	return nil, &NotLoadedError{edge: "children"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CreditTransaction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case credittransaction.FieldCenticreditsBefore, credittransaction.FieldCenticreditsAfter, credittransaction.FieldCenticreditsDelta:
			values[i] = new(sql.NullInt64)
		case credittransaction.FieldID, credittransaction.FieldOrganizationID, credittransaction.FieldParentTransactionID, credittransaction.FieldBotID, credittransaction.FieldStripePaymentIntentID, credittransaction.FieldDescription:
			values[i] = new(sql.NullString)
		case credittransaction.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CreditTransaction fields.
func (_m *CreditTransaction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case credittransaction.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case credittransaction.FieldOrganizationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field organization_id", values[i])
			} else if value.Valid {
				_m.OrganizationID = value.String
			}
		case credittransaction.FieldParentTransactionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_transaction_id", values[i])
			} else if value.Valid {
				_m.ParentTransactionID = new(string)
				*_m.ParentTransactionID = value.String
			}
		case credittransaction.FieldCenticreditsBefore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field centicredits_before", values[i])
			} else if value.Valid {
				_m.CenticreditsBefore = value.Int64
			}
		case credittransaction.FieldCenticreditsAfter:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field centicredits_after", values[i])
			} else if value.Valid {
				_m.CenticreditsAfter = value.Int64
			}
		case credittransaction.FieldCenticreditsDelta:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field centicredits_delta", values[i])
			} else if value.Valid {
				_m.CenticreditsDelta = value.Int64
			}
		case credittransaction.FieldBotID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bot_id", values[i])
			} else if value.Valid {
				_m.BotID = new(string)
				*_m.BotID = value.String
			}
		case credittransaction.FieldStripePaymentIntentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stripe_payment_intent_id", values[i])
			} else if value.Valid {
				_m.StripePaymentIntentID = new(string)
				*_m.StripePaymentIntentID = value.String
			}
		case credittransaction.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case credittransaction.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the CreditTransaction.
// This includes values selected through modifiers, order, etc.
func (_m *CreditTransaction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryOrganization queries the "organization" edge of the CreditTransaction entity.
func (_m *CreditTransaction) QueryOrganization() *OrganizationQuery {
	return NewCreditTransactionClient(_m.config).QueryOrganization(_m)
}

// QueryParent queries the "parent" edge of the CreditTransaction entity.
func (_m *CreditTransaction) QueryParent() *CreditTransactionQuery {
	return NewCreditTransactionClient(_m.config).QueryParent(_m)
}

// QueryChildren queries the "children" edge of the CreditTransaction entity.
func (_m *CreditTransaction) QueryChildren() *CreditTransactionQuery {
	return NewCreditTransactionClient(_m.config).QueryChildren(_m)
}

// Update returns a builder for updating this CreditTransaction.
// Note that you need to call CreditTransaction.Unwrap() before calling this method if this CreditTransaction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CreditTransaction) Update() *CreditTransactionUpdateOne {
	return NewCreditTransactionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CreditTransaction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CreditTransaction) Unwrap() *CreditTransaction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CreditTransaction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CreditTransaction) String() string {
	var builder strings.Builder
	builder.WriteString("CreditTransaction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("organization_id=")
	builder.WriteString(_m.OrganizationID)
	builder.WriteString(", ")
	if v := _m.ParentTransactionID; v != nil {
		builder.WriteString("parent_transaction_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("centicredits_before=")
	builder.WriteString(fmt.Sprintf("%v", _m.CenticreditsBefore))
	builder.WriteString(", ")
	builder.WriteString("centicredits_after=")
	builder.WriteString(fmt.Sprintf("%v", _m.CenticreditsAfter))
	builder.WriteString(", ")
	builder.WriteString("centicredits_delta=")
	builder.WriteString(fmt.Sprintf("%v", _m.CenticreditsDelta))
	builder.WriteString(", ")
	if v := _m.BotID; v != nil {
		builder.WriteString("bot_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.StripePaymentIntentID; v != nil {
		builder.WriteString("stripe_payment_intent_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CreditTransactions is a parsable slice of CreditTransaction.
type CreditTransactions []*CreditTransaction
