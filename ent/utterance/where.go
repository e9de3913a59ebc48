// Code generated by ent, DO NOT EDIT.

package utterance

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/stenobot-io/stenobot/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Utterance {
	return predicate.Utterance(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Utterance {
	return predicate.Utterance(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Utterance {
	return predicate.Utterance(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Utterance {
	return predicate.Utterance(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Utterance {
	return predicate.Utterance(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Utterance {
	return predicate.Utterance(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Utterance {
	return predicate.Utterance(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Utterance {
	return predicate.Utterance(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Utterance {
	return predicate.Utterance(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Utterance {
	return predicate.Utterance(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Utterance {
	return predicate.Utterance(sql.FieldContainsFold(FieldID, id))
}

// RecordingID applies equality check predicate on the "recording_id" field. It's identical to RecordingIDEQ.
func RecordingID(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldEQ(FieldRecordingID, v))
}

// ParticipantID applies equality check predicate on the "participant_id" field. It's identical to ParticipantIDEQ.
func ParticipantID(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldEQ(FieldParticipantID, v))
}

// TimestampMs applies equality check predicate on the "timestamp_ms" field. It's identical to TimestampMsEQ.
func TimestampMs(v int64) predicate.Utterance {
	return predicate.Utterance(sql.FieldEQ(FieldTimestampMs, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.Utterance {
	return predicate.Utterance(sql.FieldEQ(FieldDurationMs, v))
}

// FailureReason applies equality check predicate on the "failure_reason" field. It's identical to FailureReasonEQ.
func FailureReason(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldEQ(FieldFailureReason, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Utterance {
	return predicate.Utterance(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Utterance {
	return predicate.Utterance(sql.FieldEQ(FieldUpdatedAt, v))
}

// RecordingIDEQ applies the EQ predicate on the "recording_id" field.
func RecordingIDEQ(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldEQ(FieldRecordingID, v))
}

// RecordingIDNEQ applies the NEQ predicate on the "recording_id" field.
func RecordingIDNEQ(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldNEQ(FieldRecordingID, v))
}

// RecordingIDIn applies the In predicate on the "recording_id" field.
func RecordingIDIn(vs ...string) predicate.Utterance {
	return predicate.Utterance(sql.FieldIn(FieldRecordingID, vs...))
}

// RecordingIDNotIn applies the NotIn predicate on the "recording_id" field.
func RecordingIDNotIn(vs ...string) predicate.Utterance {
	return predicate.Utterance(sql.FieldNotIn(FieldRecordingID, vs...))
}

// RecordingIDGT applies the GT predicate on the "recording_id" field.
func RecordingIDGT(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldGT(FieldRecordingID, v))
}

// RecordingIDGTE applies the GTE predicate on the "recording_id" field.
func RecordingIDGTE(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldGTE(FieldRecordingID, v))
}

// RecordingIDLT applies the LT predicate on the "recording_id" field.
func RecordingIDLT(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldLT(FieldRecordingID, v))
}

// RecordingIDLTE applies the LTE predicate on the "recording_id" field.
func RecordingIDLTE(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldLTE(FieldRecordingID, v))
}

// RecordingIDContains applies the Contains predicate on the "recording_id" field.
func RecordingIDContains(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldContains(FieldRecordingID, v))
}

// RecordingIDHasPrefix applies the HasPrefix predicate on the "recording_id" field.
func RecordingIDHasPrefix(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldHasPrefix(FieldRecordingID, v))
}

// RecordingIDHasSuffix applies the HasSuffix predicate on the "recording_id" field.
func RecordingIDHasSuffix(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldHasSuffix(FieldRecordingID, v))
}

// RecordingIDEqualFold applies the EqualFold predicate on the "recording_id" field.
func RecordingIDEqualFold(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldEqualFold(FieldRecordingID, v))
}

// RecordingIDContainsFold applies the ContainsFold predicate on the "recording_id" field.
func RecordingIDContainsFold(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldContainsFold(FieldRecordingID, v))
}

// ParticipantIDEQ applies the EQ predicate on the "participant_id" field.
func ParticipantIDEQ(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldEQ(FieldParticipantID, v))
}

// ParticipantIDNEQ applies the NEQ predicate on the "participant_id" field.
func ParticipantIDNEQ(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldNEQ(FieldParticipantID, v))
}

// ParticipantIDIn applies the In predicate on the "participant_id" field.
func ParticipantIDIn(vs ...string) predicate.Utterance {
	return predicate.Utterance(sql.FieldIn(FieldParticipantID, vs...))
}

// ParticipantIDNotIn applies the NotIn predicate on the "participant_id" field.
func ParticipantIDNotIn(vs ...string) predicate.Utterance {
	return predicate.Utterance(sql.FieldNotIn(FieldParticipantID, vs...))
}

// ParticipantIDGT applies the GT predicate on the "participant_id" field.
func ParticipantIDGT(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldGT(FieldParticipantID, v))
}

// ParticipantIDGTE applies the GTE predicate on the "participant_id" field.
func ParticipantIDGTE(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldGTE(FieldParticipantID, v))
}

// ParticipantIDLT applies the LT predicate on the "participant_id" field.
func ParticipantIDLT(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldLT(FieldParticipantID, v))
}

// ParticipantIDLTE applies the LTE predicate on the "participant_id" field.
func ParticipantIDLTE(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldLTE(FieldParticipantID, v))
}

// ParticipantIDContains applies the Contains predicate on the "participant_id" field.
func ParticipantIDContains(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldContains(FieldParticipantID, v))
}

// ParticipantIDHasPrefix applies the HasPrefix predicate on the "participant_id" field.
func ParticipantIDHasPrefix(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldHasPrefix(FieldParticipantID, v))
}

// ParticipantIDHasSuffix applies the HasSuffix predicate on the "participant_id" field.
func ParticipantIDHasSuffix(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldHasSuffix(FieldParticipantID, v))
}

// ParticipantIDIsNil applies the IsNil predicate on the "participant_id" field.
func ParticipantIDIsNil() predicate.Utterance {
	return predicate.Utterance(sql.FieldIsNull(FieldParticipantID))
}

// ParticipantIDNotNil applies the NotNil predicate on the "participant_id" field.
func ParticipantIDNotNil() predicate.Utterance {
	return predicate.Utterance(sql.FieldNotNull(FieldParticipantID))
}

// ParticipantIDEqualFold applies the EqualFold predicate on the "participant_id" field.
func ParticipantIDEqualFold(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldEqualFold(FieldParticipantID, v))
}

// ParticipantIDContainsFold applies the ContainsFold predicate on the "participant_id" field.
func ParticipantIDContainsFold(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldContainsFold(FieldParticipantID, v))
}

// TimestampMsEQ applies the EQ predicate on the "timestamp_ms" field.
func TimestampMsEQ(v int64) predicate.Utterance {
	return predicate.Utterance(sql.FieldEQ(FieldTimestampMs, v))
}

// TimestampMsNEQ applies the NEQ predicate on the "timestamp_ms" field.
func TimestampMsNEQ(v int64) predicate.Utterance {
	return predicate.Utterance(sql.FieldNEQ(FieldTimestampMs, v))
}

// TimestampMsIn applies the In predicate on the "timestamp_ms" field.
func TimestampMsIn(vs ...int64) predicate.Utterance {
	return predicate.Utterance(sql.FieldIn(FieldTimestampMs, vs...))
}

// TimestampMsNotIn applies the NotIn predicate on the "timestamp_ms" field.
func TimestampMsNotIn(vs ...int64) predicate.Utterance {
	return predicate.Utterance(sql.FieldNotIn(FieldTimestampMs, vs...))
}

// TimestampMsGT applies the GT predicate on the "timestamp_ms" field.
func TimestampMsGT(v int64) predicate.Utterance {
	return predicate.Utterance(sql.FieldGT(FieldTimestampMs, v))
}

// TimestampMsGTE applies the GTE predicate on the "timestamp_ms" field.
func TimestampMsGTE(v int64) predicate.Utterance {
	return predicate.Utterance(sql.FieldGTE(FieldTimestampMs, v))
}

// TimestampMsLT applies the LT predicate on the "timestamp_ms" field.
func TimestampMsLT(v int64) predicate.Utterance {
	return predicate.Utterance(sql.FieldLT(FieldTimestampMs, v))
}

// TimestampMsLTE applies the LTE predicate on the "timestamp_ms" field.
func TimestampMsLTE(v int64) predicate.Utterance {
	return predicate.Utterance(sql.FieldLTE(FieldTimestampMs, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.Utterance {
	return predicate.Utterance(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.Utterance {
	return predicate.Utterance(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.Utterance {
	return predicate.Utterance(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.Utterance {
	return predicate.Utterance(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.Utterance {
	return predicate.Utterance(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.Utterance {
	return predicate.Utterance(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.Utterance {
	return predicate.Utterance(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.Utterance {
	return predicate.Utterance(sql.FieldLTE(FieldDurationMs, v))
}

// TranscriptionIsNil applies the IsNil predicate on the "transcription" field.
func TranscriptionIsNil() predicate.Utterance {
	return predicate.Utterance(sql.FieldIsNull(FieldTranscription))
}

// TranscriptionNotNil applies the NotNil predicate on the "transcription" field.
func TranscriptionNotNil() predicate.Utterance {
	return predicate.Utterance(sql.FieldNotNull(FieldTranscription))
}

// FailureReasonEQ applies the EQ predicate on the "failure_reason" field.
func FailureReasonEQ(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldEQ(FieldFailureReason, v))
}

// FailureReasonNEQ applies the NEQ predicate on the "failure_reason" field.
func FailureReasonNEQ(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldNEQ(FieldFailureReason, v))
}

// FailureReasonIn applies the In predicate on the "failure_reason" field.
func FailureReasonIn(vs ...string) predicate.Utterance {
	return predicate.Utterance(sql.FieldIn(FieldFailureReason, vs...))
}

// FailureReasonNotIn applies the NotIn predicate on the "failure_reason" field.
func FailureReasonNotIn(vs ...string) predicate.Utterance {
	return predicate.Utterance(sql.FieldNotIn(FieldFailureReason, vs...))
}

// FailureReasonGT applies the GT predicate on the "failure_reason" field.
func FailureReasonGT(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldGT(FieldFailureReason, v))
}

// FailureReasonGTE applies the GTE predicate on the "failure_reason" field.
func FailureReasonGTE(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldGTE(FieldFailureReason, v))
}

// FailureReasonLT applies the LT predicate on the "failure_reason" field.
func FailureReasonLT(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldLT(FieldFailureReason, v))
}

// FailureReasonLTE applies the LTE predicate on the "failure_reason" field.
func FailureReasonLTE(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldLTE(FieldFailureReason, v))
}

// FailureReasonContains applies the Contains predicate on the "failure_reason" field.
func FailureReasonContains(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldContains(FieldFailureReason, v))
}

// FailureReasonHasPrefix applies the HasPrefix predicate on the "failure_reason" field.
func FailureReasonHasPrefix(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldHasPrefix(FieldFailureReason, v))
}

// FailureReasonHasSuffix applies the HasSuffix predicate on the "failure_reason" field.
func FailureReasonHasSuffix(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldHasSuffix(FieldFailureReason, v))
}

// FailureReasonIsNil applies the IsNil predicate on the "failure_reason" field.
func FailureReasonIsNil() predicate.Utterance {
	return predicate.Utterance(sql.FieldIsNull(FieldFailureReason))
}

// FailureReasonNotNil applies the NotNil predicate on the "failure_reason" field.
func FailureReasonNotNil() predicate.Utterance {
	return predicate.Utterance(sql.FieldNotNull(FieldFailureReason))
}

// FailureReasonEqualFold applies the EqualFold predicate on the "failure_reason" field.
func FailureReasonEqualFold(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldEqualFold(FieldFailureReason, v))
}

// FailureReasonContainsFold applies the ContainsFold predicate on the "failure_reason" field.
func FailureReasonContainsFold(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldContainsFold(FieldFailureReason, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Utterance {
	return predicate.Utterance(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Utterance {
	return predicate.Utterance(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Utterance {
	return predicate.Utterance(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Utterance {
	return predicate.Utterance(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Utterance {
	return predicate.Utterance(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Utterance {
	return predicate.Utterance(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Utterance {
	return predicate.Utterance(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Utterance {
	return predicate.Utterance(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Utterance {
	return predicate.Utterance(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Utterance {
	return predicate.Utterance(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Utterance {
	return predicate.Utterance(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Utterance {
	return predicate.Utterance(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Utterance {
	return predicate.Utterance(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Utterance {
	return predicate.Utterance(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Utterance {
	return predicate.Utterance(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Utterance {
	return predicate.Utterance(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasRecording applies the HasEdge predicate on the "recording" edge.
func HasRecording() predicate.Utterance {
	return predicate.Utterance(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RecordingTable, RecordingColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRecordingWith applies the HasEdge predicate on the "recording" edge with a given conditions (other predicates).
func HasRecordingWith(preds ...predicate.Recording) predicate.Utterance {
	return predicate.Utterance(func(s *sql.Selector) {
		step := newRecordingStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Utterance) predicate.Utterance {
	return predicate.Utterance(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Utterance) predicate.Utterance {
	return predicate.Utterance(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Utterance) predicate.Utterance {
	return predicate.Utterance(sql.NotPredicates(p))
}
