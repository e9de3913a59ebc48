// Code generated by ent, DO NOT EDIT.

package recording

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/stenobot-io/stenobot/ent/predicate"
	"github.com/stenobot-io/stenobot/pkg/lifecycle"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Recording {
	return predicate.Recording(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Recording {
	return predicate.Recording(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Recording {
	return predicate.Recording(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Recording {
	return predicate.Recording(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Recording {
	return predicate.Recording(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Recording {
	return predicate.Recording(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Recording {
	return predicate.Recording(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Recording {
	return predicate.Recording(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Recording {
	return predicate.Recording(sql.FieldContainsFold(FieldID, id))
}

// BotID applies equality check predicate on the "bot_id" field. It's identical to BotIDEQ.
func BotID(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldBotID, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldCompletedAt, v))
}

// MediaBlobID applies equality check predicate on the "media_blob_id" field. It's identical to MediaBlobIDEQ.
func MediaBlobID(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldMediaBlobID, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int64) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldVersion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldCreatedAt, v))
}

// BotIDEQ applies the EQ predicate on the "bot_id" field.
func BotIDEQ(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldBotID, v))
}

// BotIDNEQ applies the NEQ predicate on the "bot_id" field.
func BotIDNEQ(v string) predicate.Recording {
	return predicate.Recording(sql.FieldNEQ(FieldBotID, v))
}

// BotIDIn applies the In predicate on the "bot_id" field.
func BotIDIn(vs ...string) predicate.Recording {
	return predicate.Recording(sql.FieldIn(FieldBotID, vs...))
}

// BotIDNotIn applies the NotIn predicate on the "bot_id" field.
func BotIDNotIn(vs ...string) predicate.Recording {
	return predicate.Recording(sql.FieldNotIn(FieldBotID, vs...))
}

// BotIDGT applies the GT predicate on the "bot_id" field.
func BotIDGT(v string) predicate.Recording {
	return predicate.Recording(sql.FieldGT(FieldBotID, v))
}

// BotIDGTE applies the GTE predicate on the "bot_id" field.
func BotIDGTE(v string) predicate.Recording {
	return predicate.Recording(sql.FieldGTE(FieldBotID, v))
}

// BotIDLT applies the LT predicate on the "bot_id" field.
func BotIDLT(v string) predicate.Recording {
	return predicate.Recording(sql.FieldLT(FieldBotID, v))
}

// BotIDLTE applies the LTE predicate on the "bot_id" field.
func BotIDLTE(v string) predicate.Recording {
	return predicate.Recording(sql.FieldLTE(FieldBotID, v))
}

// BotIDContains applies the Contains predicate on the "bot_id" field.
func BotIDContains(v string) predicate.Recording {
	return predicate.Recording(sql.FieldContains(FieldBotID, v))
}

// BotIDHasPrefix applies the HasPrefix predicate on the "bot_id" field.
func BotIDHasPrefix(v string) predicate.Recording {
	return predicate.Recording(sql.FieldHasPrefix(FieldBotID, v))
}

// BotIDHasSuffix applies the HasSuffix predicate on the "bot_id" field.
func BotIDHasSuffix(v string) predicate.Recording {
	return predicate.Recording(sql.FieldHasSuffix(FieldBotID, v))
}

// BotIDEqualFold applies the EqualFold predicate on the "bot_id" field.
func BotIDEqualFold(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEqualFold(FieldBotID, v))
}

// BotIDContainsFold applies the ContainsFold predicate on the "bot_id" field.
func BotIDContainsFold(v string) predicate.Recording {
	return predicate.Recording(sql.FieldContainsFold(FieldBotID, v))
}

// RecordingKindEQ applies the EQ predicate on the "recording_kind" field.
func RecordingKindEQ(v lifecycle.RecordingKind) predicate.Recording {
	vc := v
	return predicate.Recording(sql.FieldEQ(FieldRecordingKind, vc))
}

// RecordingKindNEQ applies the NEQ predicate on the "recording_kind" field.
func RecordingKindNEQ(v lifecycle.RecordingKind) predicate.Recording {
	vc := v
	return predicate.Recording(sql.FieldNEQ(FieldRecordingKind, vc))
}

// RecordingKindIn applies the In predicate on the "recording_kind" field.
func RecordingKindIn(vs ...lifecycle.RecordingKind) predicate.Recording {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.Recording(sql.FieldIn(FieldRecordingKind, v...))
}

// RecordingKindNotIn applies the NotIn predicate on the "recording_kind" field.
func RecordingKindNotIn(vs ...lifecycle.RecordingKind) predicate.Recording {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.Recording(sql.FieldNotIn(FieldRecordingKind, v...))
}

// TranscriptionKindEQ applies the EQ predicate on the "transcription_kind" field.
func TranscriptionKindEQ(v lifecycle.TranscriptionKind) predicate.Recording {
	vc := v
	return predicate.Recording(sql.FieldEQ(FieldTranscriptionKind, vc))
}

// TranscriptionKindNEQ applies the NEQ predicate on the "transcription_kind" field.
func TranscriptionKindNEQ(v lifecycle.TranscriptionKind) predicate.Recording {
	vc := v
	return predicate.Recording(sql.FieldNEQ(FieldTranscriptionKind, vc))
}

// TranscriptionKindIn applies the In predicate on the "transcription_kind" field.
func TranscriptionKindIn(vs ...lifecycle.TranscriptionKind) predicate.Recording {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.Recording(sql.FieldIn(FieldTranscriptionKind, v...))
}

// TranscriptionKindNotIn applies the NotIn predicate on the "transcription_kind" field.
func TranscriptionKindNotIn(vs ...lifecycle.TranscriptionKind) predicate.Recording {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.Recording(sql.FieldNotIn(FieldTranscriptionKind, v...))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v lifecycle.RecordingState) predicate.Recording {
	vc := v
	return predicate.Recording(sql.FieldEQ(FieldState, vc))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v lifecycle.RecordingState) predicate.Recording {
	vc := v
	return predicate.Recording(sql.FieldNEQ(FieldState, vc))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...lifecycle.RecordingState) predicate.Recording {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.Recording(sql.FieldIn(FieldState, v...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...lifecycle.RecordingState) predicate.Recording {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.Recording(sql.FieldNotIn(FieldState, v...))
}

// TranscriptionStateEQ applies the EQ predicate on the "transcription_state" field.
func TranscriptionStateEQ(v lifecycle.TranscriptionState) predicate.Recording {
	vc := v
	return predicate.Recording(sql.FieldEQ(FieldTranscriptionState, vc))
}

// TranscriptionStateNEQ applies the NEQ predicate on the "transcription_state" field.
func TranscriptionStateNEQ(v lifecycle.TranscriptionState) predicate.Recording {
	vc := v
	return predicate.Recording(sql.FieldNEQ(FieldTranscriptionState, vc))
}

// TranscriptionStateIn applies the In predicate on the "transcription_state" field.
func TranscriptionStateIn(vs ...lifecycle.TranscriptionState) predicate.Recording {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.Recording(sql.FieldIn(FieldTranscriptionState, v...))
}

// TranscriptionStateNotIn applies the NotIn predicate on the "transcription_state" field.
func TranscriptionStateNotIn(vs ...lifecycle.TranscriptionState) predicate.Recording {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.Recording(sql.FieldNotIn(FieldTranscriptionState, v...))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Recording {
	return predicate.Recording(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Recording {
	return predicate.Recording(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Recording {
	return predicate.Recording(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Recording {
	return predicate.Recording(sql.FieldNotNull(FieldCompletedAt))
}

// MediaBlobIDEQ applies the EQ predicate on the "media_blob_id" field.
func MediaBlobIDEQ(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldMediaBlobID, v))
}

// MediaBlobIDNEQ applies the NEQ predicate on the "media_blob_id" field.
func MediaBlobIDNEQ(v string) predicate.Recording {
	return predicate.Recording(sql.FieldNEQ(FieldMediaBlobID, v))
}

// MediaBlobIDIn applies the In predicate on the "media_blob_id" field.
func MediaBlobIDIn(vs ...string) predicate.Recording {
	return predicate.Recording(sql.FieldIn(FieldMediaBlobID, vs...))
}

// MediaBlobIDNotIn applies the NotIn predicate on the "media_blob_id" field.
func MediaBlobIDNotIn(vs ...string) predicate.Recording {
	return predicate.Recording(sql.FieldNotIn(FieldMediaBlobID, vs...))
}

// MediaBlobIDGT applies the GT predicate on the "media_blob_id" field.
func MediaBlobIDGT(v string) predicate.Recording {
	return predicate.Recording(sql.FieldGT(FieldMediaBlobID, v))
}

// MediaBlobIDGTE applies the GTE predicate on the "media_blob_id" field.
func MediaBlobIDGTE(v string) predicate.Recording {
	return predicate.Recording(sql.FieldGTE(FieldMediaBlobID, v))
}

// MediaBlobIDLT applies the LT predicate on the "media_blob_id" field.
func MediaBlobIDLT(v string) predicate.Recording {
	return predicate.Recording(sql.FieldLT(FieldMediaBlobID, v))
}

// MediaBlobIDLTE applies the LTE predicate on the "media_blob_id" field.
func MediaBlobIDLTE(v string) predicate.Recording {
	return predicate.Recording(sql.FieldLTE(FieldMediaBlobID, v))
}

// MediaBlobIDContains applies the Contains predicate on the "media_blob_id" field.
func MediaBlobIDContains(v string) predicate.Recording {
	return predicate.Recording(sql.FieldContains(FieldMediaBlobID, v))
}

// MediaBlobIDHasPrefix applies the HasPrefix predicate on the "media_blob_id" field.
func MediaBlobIDHasPrefix(v string) predicate.Recording {
	return predicate.Recording(sql.FieldHasPrefix(FieldMediaBlobID, v))
}

// MediaBlobIDHasSuffix applies the HasSuffix predicate on the "media_blob_id" field.
func MediaBlobIDHasSuffix(v string) predicate.Recording {
	return predicate.Recording(sql.FieldHasSuffix(FieldMediaBlobID, v))
}

// MediaBlobIDIsNil applies the IsNil predicate on the "media_blob_id" field.
func MediaBlobIDIsNil() predicate.Recording {
	return predicate.Recording(sql.FieldIsNull(FieldMediaBlobID))
}

// MediaBlobIDNotNil applies the NotNil predicate on the "media_blob_id" field.
func MediaBlobIDNotNil() predicate.Recording {
	return predicate.Recording(sql.FieldNotNull(FieldMediaBlobID))
}

// MediaBlobIDEqualFold applies the EqualFold predicate on the "media_blob_id" field.
func MediaBlobIDEqualFold(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEqualFold(FieldMediaBlobID, v))
}

// MediaBlobIDContainsFold applies the ContainsFold predicate on the "media_blob_id" field.
func MediaBlobIDContainsFold(v string) predicate.Recording {
	return predicate.Recording(sql.FieldContainsFold(FieldMediaBlobID, v))
}

// FailureReasonsIsNil applies the IsNil predicate on the "failure_reasons" field.
func FailureReasonsIsNil() predicate.Recording {
	return predicate.Recording(sql.FieldIsNull(FieldFailureReasons))
}

// FailureReasonsNotNil applies the NotNil predicate on the "failure_reasons" field.
func FailureReasonsNotNil() predicate.Recording {
	return predicate.Recording(sql.FieldNotNull(FieldFailureReasons))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int64) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int64) predicate.Recording {
	return predicate.Recording(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int64) predicate.Recording {
	return predicate.Recording(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int64) predicate.Recording {
	return predicate.Recording(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int64) predicate.Recording {
	return predicate.Recording(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int64) predicate.Recording {
	return predicate.Recording(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int64) predicate.Recording {
	return predicate.Recording(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int64) predicate.Recording {
	return predicate.Recording(sql.FieldLTE(FieldVersion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldLTE(FieldCreatedAt, v))
}

// HasBot applies the HasEdge predicate on the "bot" edge.
func HasBot() predicate.Recording {
	return predicate.Recording(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BotTable, BotColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBotWith applies the HasEdge predicate on the "bot" edge with a given conditions (other predicates).
func HasBotWith(preds ...predicate.Bot) predicate.Recording {
	return predicate.Recording(func(s *sql.Selector) {
		step := newBotStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasUtterances applies the HasEdge predicate on the "utterances" edge.
func HasUtterances() predicate.Recording {
	return predicate.Recording(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, UtterancesTable, UtterancesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUtterancesWith applies the HasEdge predicate on the "utterances" edge with a given conditions (other predicates).
func HasUtterancesWith(preds ...predicate.Utterance) predicate.Recording {
	return predicate.Recording(func(s *sql.Selector) {
		step := newUtterancesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Recording) predicate.Recording {
	return predicate.Recording(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Recording) predicate.Recording {
	return predicate.Recording(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Recording) predicate.Recording {
	return predicate.Recording(sql.NotPredicates(p))
}
