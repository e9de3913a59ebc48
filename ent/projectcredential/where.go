// Code generated by ent, DO NOT EDIT.

package projectcredential

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/stenobot-io/stenobot/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldContainsFold(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldEQ(FieldProjectID, v))
}

// CredentialKind applies equality check predicate on the "credential_kind" field. It's identical to CredentialKindEQ.
func CredentialKind(v string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldEQ(FieldCredentialKind, v))
}

// EncryptedBlob applies equality check predicate on the "encrypted_blob" field. It's identical to EncryptedBlobEQ.
func EncryptedBlob(v []byte) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldEQ(FieldEncryptedBlob, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldContainsFold(FieldProjectID, v))
}

// CredentialKindEQ applies the EQ predicate on the "credential_kind" field.
func CredentialKindEQ(v string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldEQ(FieldCredentialKind, v))
}

// CredentialKindNEQ applies the NEQ predicate on the "credential_kind" field.
func CredentialKindNEQ(v string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldNEQ(FieldCredentialKind, v))
}

// CredentialKindIn applies the In predicate on the "credential_kind" field.
func CredentialKindIn(vs ...string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldIn(FieldCredentialKind, vs...))
}

// CredentialKindNotIn applies the NotIn predicate on the "credential_kind" field.
func CredentialKindNotIn(vs ...string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldNotIn(FieldCredentialKind, vs...))
}

// CredentialKindGT applies the GT predicate on the "credential_kind" field.
func CredentialKindGT(v string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldGT(FieldCredentialKind, v))
}

// CredentialKindGTE applies the GTE predicate on the "credential_kind" field.
func CredentialKindGTE(v string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldGTE(FieldCredentialKind, v))
}

// CredentialKindLT applies the LT predicate on the "credential_kind" field.
func CredentialKindLT(v string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldLT(FieldCredentialKind, v))
}

// CredentialKindLTE applies the LTE predicate on the "credential_kind" field.
func CredentialKindLTE(v string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldLTE(FieldCredentialKind, v))
}

// CredentialKindContains applies the Contains predicate on the "credential_kind" field.
func CredentialKindContains(v string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldContains(FieldCredentialKind, v))
}

// CredentialKindHasPrefix applies the HasPrefix predicate on the "credential_kind" field.
func CredentialKindHasPrefix(v string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldHasPrefix(FieldCredentialKind, v))
}

// CredentialKindHasSuffix applies the HasSuffix predicate on the "credential_kind" field.
func CredentialKindHasSuffix(v string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldHasSuffix(FieldCredentialKind, v))
}

// CredentialKindEqualFold applies the EqualFold predicate on the "credential_kind" field.
func CredentialKindEqualFold(v string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldEqualFold(FieldCredentialKind, v))
}

// CredentialKindContainsFold applies the ContainsFold predicate on the "credential_kind" field.
func CredentialKindContainsFold(v string) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldContainsFold(FieldCredentialKind, v))
}

// EncryptedBlobEQ applies the EQ predicate on the "encrypted_blob" field.
func EncryptedBlobEQ(v []byte) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldEQ(FieldEncryptedBlob, v))
}

// EncryptedBlobNEQ applies the NEQ predicate on the "encrypted_blob" field.
func EncryptedBlobNEQ(v []byte) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldNEQ(FieldEncryptedBlob, v))
}

// EncryptedBlobIn applies the In predicate on the "encrypted_blob" field.
func EncryptedBlobIn(vs ...[]byte) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldIn(FieldEncryptedBlob, vs...))
}

// EncryptedBlobNotIn applies the NotIn predicate on the "encrypted_blob" field.
func EncryptedBlobNotIn(vs ...[]byte) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldNotIn(FieldEncryptedBlob, vs...))
}

// EncryptedBlobGT applies the GT predicate on the "encrypted_blob" field.
func EncryptedBlobGT(v []byte) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldGT(FieldEncryptedBlob, v))
}

// EncryptedBlobGTE applies the GTE predicate on the "encrypted_blob" field.
func EncryptedBlobGTE(v []byte) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldGTE(FieldEncryptedBlob, v))
}

// EncryptedBlobLT applies the LT predicate on the "encrypted_blob" field.
func EncryptedBlobLT(v []byte) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldLT(FieldEncryptedBlob, v))
}

// EncryptedBlobLTE applies the LTE predicate on the "encrypted_blob" field.
func EncryptedBlobLTE(v []byte) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldLTE(FieldEncryptedBlob, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.ProjectCredential {
	return predicate.ProjectCredential(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.ProjectCredential {
	return predicate.ProjectCredential(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProjectCredential) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProjectCredential) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProjectCredential) predicate.ProjectCredential {
	return predicate.ProjectCredential(sql.NotPredicates(p))
}
