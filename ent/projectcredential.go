// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/stenobot-io/stenobot/ent/project"
	"github.com/stenobot-io/stenobot/ent/projectcredential"
)

// ProjectCredential is the model entity for the ProjectCredential schema.
type ProjectCredential struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// e.g. 'zoom_oauth', 'deepgram', 'google_meet_login'
	CredentialKind string `json:"credential_kind,omitempty"`
	// EncryptedBlob holds the value of the "encrypted_blob" field.
	EncryptedBlob []byte `json:"-"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProjectCredentialQuery when eager-loading is set.
	Edges        ProjectCredentialEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProjectCredentialEdges holds the relations/edges for other nodes in the graph.
type ProjectCredentialEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ProjectCredentialEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProjectCredential) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case projectcredential.FieldEncryptedBlob:
			values[i] = new([]byte)
		case projectcredential.FieldID, projectcredential.FieldProjectID, projectcredential.FieldCredentialKind:
			values[i] = new(sql.NullString)
		case projectcredential.FieldCreatedAt, projectcredential.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProjectCredential fields.
func (_m *ProjectCredential) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case projectcredential.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case projectcredential.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case projectcredential.FieldCredentialKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field credential_kind", values[i])
			} else if value.Valid {
				_m.CredentialKind = value.String
			}
		case projectcredential.FieldEncryptedBlob:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field encrypted_blob", values[i])
			} else if value != nil {
				_m.EncryptedBlob = *value
			}
		case projectcredential.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case projectcredential.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ProjectCredential.
// This includes values selected through modifiers, order, etc.
func (_m *ProjectCredential) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the ProjectCredential entity.
func (_m *ProjectCredential) QueryProject() *ProjectQuery {
	return NewProjectCredentialClient(_m.config).QueryProject(_m)
}

// Update returns a builder for updating this ProjectCredential.
// Note that you need to call ProjectCredential.Unwrap() before calling this method if this ProjectCredential
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProjectCredential) Update() *ProjectCredentialUpdateOne {
	return NewProjectCredentialClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProjectCredential entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProjectCredential) Unwrap() *ProjectCredential {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProjectCredential is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProjectCredential) String() string {
	var builder strings.Builder
	builder.WriteString("ProjectCredential(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("credential_kind=")
	builder.WriteString(_m.CredentialKind)
	builder.WriteString(", ")
	builder.WriteString("encrypted_blob=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ProjectCredentials is a parsable slice of ProjectCredential.
type ProjectCredentials []*ProjectCredential
