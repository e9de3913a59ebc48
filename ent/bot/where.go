// Code generated by ent, DO NOT EDIT.

package bot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/stenobot-io/stenobot/ent/predicate"
	"github.com/stenobot-io/stenobot/pkg/lifecycle"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Bot {
	return predicate.Bot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Bot {
	return predicate.Bot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Bot {
	return predicate.Bot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Bot {
	return predicate.Bot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Bot {
	return predicate.Bot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Bot {
	return predicate.Bot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Bot {
	return predicate.Bot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Bot {
	return predicate.Bot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Bot {
	return predicate.Bot(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Bot {
	return predicate.Bot(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Bot {
	return predicate.Bot(sql.FieldContainsFold(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.Bot {
	return predicate.Bot(sql.FieldEQ(FieldProjectID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Bot {
	return predicate.Bot(sql.FieldEQ(FieldName, v))
}

// MeetingURL applies equality check predicate on the "meeting_url" field. It's identical to MeetingURLEQ.
func MeetingURL(v string) predicate.Bot {
	return predicate.Bot(sql.FieldEQ(FieldMeetingURL, v))
}

// State applies equality check predicate on the "state" field. It's identical to StateEQ.
func State(v lifecycle.BotState) predicate.Bot {
	vc := int(v)
	return predicate.Bot(sql.FieldEQ(FieldState, vc))
}

// FirstHeartbeatTimestamp applies equality check predicate on the "first_heartbeat_timestamp" field. It's identical to FirstHeartbeatTimestampEQ.
func FirstHeartbeatTimestamp(v int64) predicate.Bot {
	return predicate.Bot(sql.FieldEQ(FieldFirstHeartbeatTimestamp, v))
}

// LastHeartbeatTimestamp applies equality check predicate on the "last_heartbeat_timestamp" field. It's identical to LastHeartbeatTimestampEQ.
func LastHeartbeatTimestamp(v int64) predicate.Bot {
	return predicate.Bot(sql.FieldEQ(FieldLastHeartbeatTimestamp, v))
}

// JoinAt applies equality check predicate on the "join_at" field. It's identical to JoinAtEQ.
func JoinAt(v time.Time) predicate.Bot {
	return predicate.Bot(sql.FieldEQ(FieldJoinAt, v))
}

// DeduplicationKey applies equality check predicate on the "deduplication_key" field. It's identical to DeduplicationKeyEQ.
func DeduplicationKey(v string) predicate.Bot {
	return predicate.Bot(sql.FieldEQ(FieldDeduplicationKey, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int64) predicate.Bot {
	return predicate.Bot(sql.FieldEQ(FieldVersion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Bot {
	return predicate.Bot(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Bot {
	return predicate.Bot(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.Bot {
	return predicate.Bot(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.Bot {
	return predicate.Bot(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.Bot {
	return predicate.Bot(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.Bot {
	return predicate.Bot(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.Bot {
	return predicate.Bot(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.Bot {
	return predicate.Bot(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.Bot {
	return predicate.Bot(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.Bot {
	return predicate.Bot(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.Bot {
	return predicate.Bot(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.Bot {
	return predicate.Bot(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.Bot {
	return predicate.Bot(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.Bot {
	return predicate.Bot(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.Bot {
	return predicate.Bot(sql.FieldContainsFold(FieldProjectID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Bot {
	return predicate.Bot(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Bot {
	return predicate.Bot(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Bot {
	return predicate.Bot(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Bot {
	return predicate.Bot(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Bot {
	return predicate.Bot(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Bot {
	return predicate.Bot(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Bot {
	return predicate.Bot(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Bot {
	return predicate.Bot(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Bot {
	return predicate.Bot(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Bot {
	return predicate.Bot(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Bot {
	return predicate.Bot(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Bot {
	return predicate.Bot(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Bot {
	return predicate.Bot(sql.FieldContainsFold(FieldName, v))
}

// MeetingURLEQ applies the EQ predicate on the "meeting_url" field.
func MeetingURLEQ(v string) predicate.Bot {
	return predicate.Bot(sql.FieldEQ(FieldMeetingURL, v))
}

// MeetingURLNEQ applies the NEQ predicate on the "meeting_url" field.
func MeetingURLNEQ(v string) predicate.Bot {
	return predicate.Bot(sql.FieldNEQ(FieldMeetingURL, v))
}

// MeetingURLIn applies the In predicate on the "meeting_url" field.
func MeetingURLIn(vs ...string) predicate.Bot {
	return predicate.Bot(sql.FieldIn(FieldMeetingURL, vs...))
}

// MeetingURLNotIn applies the NotIn predicate on the "meeting_url" field.
func MeetingURLNotIn(vs ...string) predicate.Bot {
	return predicate.Bot(sql.FieldNotIn(FieldMeetingURL, vs...))
}

// MeetingURLGT applies the GT predicate on the "meeting_url" field.
func MeetingURLGT(v string) predicate.Bot {
	return predicate.Bot(sql.FieldGT(FieldMeetingURL, v))
}

// MeetingURLGTE applies the GTE predicate on the "meeting_url" field.
func MeetingURLGTE(v string) predicate.Bot {
	return predicate.Bot(sql.FieldGTE(FieldMeetingURL, v))
}

// MeetingURLLT applies the LT predicate on the "meeting_url" field.
func MeetingURLLT(v string) predicate.Bot {
	return predicate.Bot(sql.FieldLT(FieldMeetingURL, v))
}

// MeetingURLLTE applies the LTE predicate on the "meeting_url" field.
func MeetingURLLTE(v string) predicate.Bot {
	return predicate.Bot(sql.FieldLTE(FieldMeetingURL, v))
}

// MeetingURLContains applies the Contains predicate on the "meeting_url" field.
func MeetingURLContains(v string) predicate.Bot {
	return predicate.Bot(sql.FieldContains(FieldMeetingURL, v))
}

// MeetingURLHasPrefix applies the HasPrefix predicate on the "meeting_url" field.
func MeetingURLHasPrefix(v string) predicate.Bot {
	return predicate.Bot(sql.FieldHasPrefix(FieldMeetingURL, v))
}

// MeetingURLHasSuffix applies the HasSuffix predicate on the "meeting_url" field.
func MeetingURLHasSuffix(v string) predicate.Bot {
	return predicate.Bot(sql.FieldHasSuffix(FieldMeetingURL, v))
}

// MeetingURLEqualFold applies the EqualFold predicate on the "meeting_url" field.
func MeetingURLEqualFold(v string) predicate.Bot {
	return predicate.Bot(sql.FieldEqualFold(FieldMeetingURL, v))
}

// MeetingURLContainsFold applies the ContainsFold predicate on the "meeting_url" field.
func MeetingURLContainsFold(v string) predicate.Bot {
	return predicate.Bot(sql.FieldContainsFold(FieldMeetingURL, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v lifecycle.BotState) predicate.Bot {
	vc := int(v)
	return predicate.Bot(sql.FieldEQ(FieldState, vc))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v lifecycle.BotState) predicate.Bot {
	vc := int(v)
	return predicate.Bot(sql.FieldNEQ(FieldState, vc))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...lifecycle.BotState) predicate.Bot {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = int(vs[i])
	}
	return predicate.Bot(sql.FieldIn(FieldState, v...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...lifecycle.BotState) predicate.Bot {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = int(vs[i])
	}
	return predicate.Bot(sql.FieldNotIn(FieldState, v...))
}

// StateGT applies the GT predicate on the "state" field.
func StateGT(v lifecycle.BotState) predicate.Bot {
	vc := int(v)
	return predicate.Bot(sql.FieldGT(FieldState, vc))
}

// StateGTE applies the GTE predicate on the "state" field.
func StateGTE(v lifecycle.BotState) predicate.Bot {
	vc := int(v)
	return predicate.Bot(sql.FieldGTE(FieldState, vc))
}

// StateLT applies the LT predicate on the "state" field.
func StateLT(v lifecycle.BotState) predicate.Bot {
	vc := int(v)
	return predicate.Bot(sql.FieldLT(FieldState, vc))
}

// StateLTE applies the LTE predicate on the "state" field.
func StateLTE(v lifecycle.BotState) predicate.Bot {
	vc := int(v)
	return predicate.Bot(sql.FieldLTE(FieldState, vc))
}

// SessionKindEQ applies the EQ predicate on the "session_kind" field.
func SessionKindEQ(v lifecycle.SessionKind) predicate.Bot {
	vc := v
	return predicate.Bot(sql.FieldEQ(FieldSessionKind, vc))
}

// SessionKindNEQ applies the NEQ predicate on the "session_kind" field.
func SessionKindNEQ(v lifecycle.SessionKind) predicate.Bot {
	vc := v
	return predicate.Bot(sql.FieldNEQ(FieldSessionKind, vc))
}

// SessionKindIn applies the In predicate on the "session_kind" field.
func SessionKindIn(vs ...lifecycle.SessionKind) predicate.Bot {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.Bot(sql.FieldIn(FieldSessionKind, v...))
}

// SessionKindNotIn applies the NotIn predicate on the "session_kind" field.
func SessionKindNotIn(vs ...lifecycle.SessionKind) predicate.Bot {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.Bot(sql.FieldNotIn(FieldSessionKind, v...))
}

// SettingsIsNil applies the IsNil predicate on the "settings" field.
func SettingsIsNil() predicate.Bot {
	return predicate.Bot(sql.FieldIsNull(FieldSettings))
}

// SettingsNotNil applies the NotNil predicate on the "settings" field.
func SettingsNotNil() predicate.Bot {
	return predicate.Bot(sql.FieldNotNull(FieldSettings))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.Bot {
	return predicate.Bot(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.Bot {
	return predicate.Bot(sql.FieldNotNull(FieldMetadata))
}

// FirstHeartbeatTimestampEQ applies the EQ predicate on the "first_heartbeat_timestamp" field.
func FirstHeartbeatTimestampEQ(v int64) predicate.Bot {
	return predicate.Bot(sql.FieldEQ(FieldFirstHeartbeatTimestamp, v))
}

// FirstHeartbeatTimestampNEQ applies the NEQ predicate on the "first_heartbeat_timestamp" field.
func FirstHeartbeatTimestampNEQ(v int64) predicate.Bot {
	return predicate.Bot(sql.FieldNEQ(FieldFirstHeartbeatTimestamp, v))
}

// FirstHeartbeatTimestampIn applies the In predicate on the "first_heartbeat_timestamp" field.
func FirstHeartbeatTimestampIn(vs ...int64) predicate.Bot {
	return predicate.Bot(sql.FieldIn(FieldFirstHeartbeatTimestamp, vs...))
}

// FirstHeartbeatTimestampNotIn applies the NotIn predicate on the "first_heartbeat_timestamp" field.
func FirstHeartbeatTimestampNotIn(vs ...int64) predicate.Bot {
	return predicate.Bot(sql.FieldNotIn(FieldFirstHeartbeatTimestamp, vs...))
}

// FirstHeartbeatTimestampGT applies the GT predicate on the "first_heartbeat_timestamp" field.
func FirstHeartbeatTimestampGT(v int64) predicate.Bot {
	return predicate.Bot(sql.FieldGT(FieldFirstHeartbeatTimestamp, v))
}

// FirstHeartbeatTimestampGTE applies the GTE predicate on the "first_heartbeat_timestamp" field.
func FirstHeartbeatTimestampGTE(v int64) predicate.Bot {
	return predicate.Bot(sql.FieldGTE(FieldFirstHeartbeatTimestamp, v))
}

// FirstHeartbeatTimestampLT applies the LT predicate on the "first_heartbeat_timestamp" field.
func FirstHeartbeatTimestampLT(v int64) predicate.Bot {
	return predicate.Bot(sql.FieldLT(FieldFirstHeartbeatTimestamp, v))
}

// FirstHeartbeatTimestampLTE applies the LTE predicate on the "first_heartbeat_timestamp" field.
func FirstHeartbeatTimestampLTE(v int64) predicate.Bot {
	return predicate.Bot(sql.FieldLTE(FieldFirstHeartbeatTimestamp, v))
}

// FirstHeartbeatTimestampIsNil applies the IsNil predicate on the "first_heartbeat_timestamp" field.
func FirstHeartbeatTimestampIsNil() predicate.Bot {
	return predicate.Bot(sql.FieldIsNull(FieldFirstHeartbeatTimestamp))
}

// FirstHeartbeatTimestampNotNil applies the NotNil predicate on the "first_heartbeat_timestamp" field.
func FirstHeartbeatTimestampNotNil() predicate.Bot {
	return predicate.Bot(sql.FieldNotNull(FieldFirstHeartbeatTimestamp))
}

// LastHeartbeatTimestampEQ applies the EQ predicate on the "last_heartbeat_timestamp" field.
func LastHeartbeatTimestampEQ(v int64) predicate.Bot {
	return predicate.Bot(sql.FieldEQ(FieldLastHeartbeatTimestamp, v))
}

// LastHeartbeatTimestampNEQ applies the NEQ predicate on the "last_heartbeat_timestamp" field.
func LastHeartbeatTimestampNEQ(v int64) predicate.Bot {
	return predicate.Bot(sql.FieldNEQ(FieldLastHeartbeatTimestamp, v))
}

// LastHeartbeatTimestampIn applies the In predicate on the "last_heartbeat_timestamp" field.
func LastHeartbeatTimestampIn(vs ...int64) predicate.Bot {
	return predicate.Bot(sql.FieldIn(FieldLastHeartbeatTimestamp, vs...))
}

// LastHeartbeatTimestampNotIn applies the NotIn predicate on the "last_heartbeat_timestamp" field.
func LastHeartbeatTimestampNotIn(vs ...int64) predicate.Bot {
	return predicate.Bot(sql.FieldNotIn(FieldLastHeartbeatTimestamp, vs...))
}

// LastHeartbeatTimestampGT applies the GT predicate on the "last_heartbeat_timestamp" field.
func LastHeartbeatTimestampGT(v int64) predicate.Bot {
	return predicate.Bot(sql.FieldGT(FieldLastHeartbeatTimestamp, v))
}

// LastHeartbeatTimestampGTE applies the GTE predicate on the "last_heartbeat_timestamp" field.
func LastHeartbeatTimestampGTE(v int64) predicate.Bot {
	return predicate.Bot(sql.FieldGTE(FieldLastHeartbeatTimestamp, v))
}

// LastHeartbeatTimestampLT applies the LT predicate on the "last_heartbeat_timestamp" field.
func LastHeartbeatTimestampLT(v int64) predicate.Bot {
	return predicate.Bot(sql.FieldLT(FieldLastHeartbeatTimestamp, v))
}

// LastHeartbeatTimestampLTE applies the LTE predicate on the "last_heartbeat_timestamp" field.
func LastHeartbeatTimestampLTE(v int64) predicate.Bot {
	return predicate.Bot(sql.FieldLTE(FieldLastHeartbeatTimestamp, v))
}

// LastHeartbeatTimestampIsNil applies the IsNil predicate on the "last_heartbeat_timestamp" field.
func LastHeartbeatTimestampIsNil() predicate.Bot {
	return predicate.Bot(sql.FieldIsNull(FieldLastHeartbeatTimestamp))
}

// LastHeartbeatTimestampNotNil applies the NotNil predicate on the "last_heartbeat_timestamp" field.
func LastHeartbeatTimestampNotNil() predicate.Bot {
	return predicate.Bot(sql.FieldNotNull(FieldLastHeartbeatTimestamp))
}

// JoinAtEQ applies the EQ predicate on the "join_at" field.
func JoinAtEQ(v time.Time) predicate.Bot {
	return predicate.Bot(sql.FieldEQ(FieldJoinAt, v))
}

// JoinAtNEQ applies the NEQ predicate on the "join_at" field.
func JoinAtNEQ(v time.Time) predicate.Bot {
	return predicate.Bot(sql.FieldNEQ(FieldJoinAt, v))
}

// JoinAtIn applies the In predicate on the "join_at" field.
func JoinAtIn(vs ...time.Time) predicate.Bot {
	return predicate.Bot(sql.FieldIn(FieldJoinAt, vs...))
}

// JoinAtNotIn applies the NotIn predicate on the "join_at" field.
func JoinAtNotIn(vs ...time.Time) predicate.Bot {
	return predicate.Bot(sql.FieldNotIn(FieldJoinAt, vs...))
}

// JoinAtGT applies the GT predicate on the "join_at" field.
func JoinAtGT(v time.Time) predicate.Bot {
	return predicate.Bot(sql.FieldGT(FieldJoinAt, v))
}

// JoinAtGTE applies the GTE predicate on the "join_at" field.
func JoinAtGTE(v time.Time) predicate.Bot {
	return predicate.Bot(sql.FieldGTE(FieldJoinAt, v))
}

// JoinAtLT applies the LT predicate on the "join_at" field.
func JoinAtLT(v time.Time) predicate.Bot {
	return predicate.Bot(sql.FieldLT(FieldJoinAt, v))
}

// JoinAtLTE applies the LTE predicate on the "join_at" field.
func JoinAtLTE(v time.Time) predicate.Bot {
	return predicate.Bot(sql.FieldLTE(FieldJoinAt, v))
}

// JoinAtIsNil applies the IsNil predicate on the "join_at" field.
func JoinAtIsNil() predicate.Bot {
	return predicate.Bot(sql.FieldIsNull(FieldJoinAt))
}

// JoinAtNotNil applies the NotNil predicate on the "join_at" field.
func JoinAtNotNil() predicate.Bot {
	return predicate.Bot(sql.FieldNotNull(FieldJoinAt))
}

// DeduplicationKeyEQ applies the EQ predicate on the "deduplication_key" field.
func DeduplicationKeyEQ(v string) predicate.Bot {
	return predicate.Bot(sql.FieldEQ(FieldDeduplicationKey, v))
}

// DeduplicationKeyNEQ applies the NEQ predicate on the "deduplication_key" field.
func DeduplicationKeyNEQ(v string) predicate.Bot {
	return predicate.Bot(sql.FieldNEQ(FieldDeduplicationKey, v))
}

// DeduplicationKeyIn applies the In predicate on the "deduplication_key" field.
func DeduplicationKeyIn(vs ...string) predicate.Bot {
	return predicate.Bot(sql.FieldIn(FieldDeduplicationKey, vs...))
}

// DeduplicationKeyNotIn applies the NotIn predicate on the "deduplication_key" field.
func DeduplicationKeyNotIn(vs ...string) predicate.Bot {
	return predicate.Bot(sql.FieldNotIn(FieldDeduplicationKey, vs...))
}

// DeduplicationKeyGT applies the GT predicate on the "deduplication_key" field.
func DeduplicationKeyGT(v string) predicate.Bot {
	return predicate.Bot(sql.FieldGT(FieldDeduplicationKey, v))
}

// DeduplicationKeyGTE applies the GTE predicate on the "deduplication_key" field.
func DeduplicationKeyGTE(v string) predicate.Bot {
	return predicate.Bot(sql.FieldGTE(FieldDeduplicationKey, v))
}

// DeduplicationKeyLT applies the LT predicate on the "deduplication_key" field.
func DeduplicationKeyLT(v string) predicate.Bot {
	return predicate.Bot(sql.FieldLT(FieldDeduplicationKey, v))
}

// DeduplicationKeyLTE applies the LTE predicate on the "deduplication_key" field.
func DeduplicationKeyLTE(v string) predicate.Bot {
	return predicate.Bot(sql.FieldLTE(FieldDeduplicationKey, v))
}

// DeduplicationKeyContains applies the Contains predicate on the "deduplication_key" field.
func DeduplicationKeyContains(v string) predicate.Bot {
	return predicate.Bot(sql.FieldContains(FieldDeduplicationKey, v))
}

// DeduplicationKeyHasPrefix applies the HasPrefix predicate on the "deduplication_key" field.
func DeduplicationKeyHasPrefix(v string) predicate.Bot {
	return predicate.Bot(sql.FieldHasPrefix(FieldDeduplicationKey, v))
}

// DeduplicationKeyHasSuffix applies the HasSuffix predicate on the "deduplication_key" field.
func DeduplicationKeyHasSuffix(v string) predicate.Bot {
	return predicate.Bot(sql.FieldHasSuffix(FieldDeduplicationKey, v))
}

// DeduplicationKeyIsNil applies the IsNil predicate on the "deduplication_key" field.
func DeduplicationKeyIsNil() predicate.Bot {
	return predicate.Bot(sql.FieldIsNull(FieldDeduplicationKey))
}

// DeduplicationKeyNotNil applies the NotNil predicate on the "deduplication_key" field.
func DeduplicationKeyNotNil() predicate.Bot {
	return predicate.Bot(sql.FieldNotNull(FieldDeduplicationKey))
}

// DeduplicationKeyEqualFold applies the EqualFold predicate on the "deduplication_key" field.
func DeduplicationKeyEqualFold(v string) predicate.Bot {
	return predicate.Bot(sql.FieldEqualFold(FieldDeduplicationKey, v))
}

// DeduplicationKeyContainsFold applies the ContainsFold predicate on the "deduplication_key" field.
func DeduplicationKeyContainsFold(v string) predicate.Bot {
	return predicate.Bot(sql.FieldContainsFold(FieldDeduplicationKey, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int64) predicate.Bot {
	return predicate.Bot(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int64) predicate.Bot {
	return predicate.Bot(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int64) predicate.Bot {
	return predicate.Bot(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int64) predicate.Bot {
	return predicate.Bot(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int64) predicate.Bot {
	return predicate.Bot(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int64) predicate.Bot {
	return predicate.Bot(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int64) predicate.Bot {
	return predicate.Bot(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int64) predicate.Bot {
	return predicate.Bot(sql.FieldLTE(FieldVersion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Bot {
	return predicate.Bot(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Bot {
	return predicate.Bot(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Bot {
	return predicate.Bot(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Bot {
	return predicate.Bot(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Bot {
	return predicate.Bot(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Bot {
	return predicate.Bot(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Bot {
	return predicate.Bot(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Bot {
	return predicate.Bot(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Bot {
	return predicate.Bot(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Bot {
	return predicate.Bot(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Bot {
	return predicate.Bot(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Bot {
	return predicate.Bot(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Bot {
	return predicate.Bot(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Bot {
	return predicate.Bot(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Bot {
	return predicate.Bot(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Bot {
	return predicate.Bot(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.Bot {
	return predicate.Bot(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.Bot {
	return predicate.Bot(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.Bot {
	return predicate.Bot(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.BotEvent) predicate.Bot {
	return predicate.Bot(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRecordings applies the HasEdge predicate on the "recordings" edge.
func HasRecordings() predicate.Bot {
	return predicate.Bot(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RecordingsTable, RecordingsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRecordingsWith applies the HasEdge predicate on the "recordings" edge with a given conditions (other predicates).
func HasRecordingsWith(preds ...predicate.Recording) predicate.Bot {
	return predicate.Bot(func(s *sql.Selector) {
		step := newRecordingsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasParticipants applies the HasEdge predicate on the "participants" edge.
func HasParticipants() predicate.Bot {
	return predicate.Bot(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ParticipantsTable, ParticipantsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasParticipantsWith applies the HasEdge predicate on the "participants" edge with a given conditions (other predicates).
func HasParticipantsWith(preds ...predicate.Participant) predicate.Bot {
	return predicate.Bot(func(s *sql.Selector) {
		step := newParticipantsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasChatMessages applies the HasEdge predicate on the "chat_messages" edge.
func HasChatMessages() predicate.Bot {
	return predicate.Bot(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ChatMessagesTable, ChatMessagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChatMessagesWith applies the HasEdge predicate on the "chat_messages" edge with a given conditions (other predicates).
func HasChatMessagesWith(preds ...predicate.ChatMessage) predicate.Bot {
	return predicate.Bot(func(s *sql.Selector) {
		step := newChatMessagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Bot) predicate.Bot {
	return predicate.Bot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Bot) predicate.Bot {
	return predicate.Bot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Bot) predicate.Bot {
	return predicate.Bot(sql.NotPredicates(p))
}
