// Code generated by ent, DO NOT EDIT.

package botevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/stenobot-io/stenobot/ent/predicate"
	"github.com/stenobot-io/stenobot/pkg/lifecycle"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.BotEvent {
	return predicate.BotEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.BotEvent {
	return predicate.BotEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.BotEvent {
	return predicate.BotEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.BotEvent {
	return predicate.BotEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.BotEvent {
	return predicate.BotEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.BotEvent {
	return predicate.BotEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.BotEvent {
	return predicate.BotEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.BotEvent {
	return predicate.BotEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.BotEvent {
	return predicate.BotEvent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.BotEvent {
	return predicate.BotEvent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.BotEvent {
	return predicate.BotEvent(sql.FieldContainsFold(FieldID, id))
}

// BotID applies equality check predicate on the "bot_id" field. It's identical to BotIDEQ.
func BotID(v string) predicate.BotEvent {
	return predicate.BotEvent(sql.FieldEQ(FieldBotID, v))
}

// OldState applies equality check predicate on the "old_state" field. It's identical to OldStateEQ.
func OldState(v lifecycle.BotState) predicate.BotEvent {
	vc := int(v)
	return predicate.BotEvent(sql.FieldEQ(FieldOldState, vc))
}

// NewState applies equality check predicate on the "new_state" field. It's identical to NewStateEQ.
func NewState(v lifecycle.BotState) predicate.BotEvent {
	vc := int(v)
	return predicate.BotEvent(sql.FieldEQ(FieldNewState, vc))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BotEvent {
	return predicate.BotEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// RequestedActionTakenAt applies equality check predicate on the "requested_action_taken_at" field. It's identical to RequestedActionTakenAtEQ.
func RequestedActionTakenAt(v time.Time) predicate.BotEvent {
	return predicate.BotEvent(sql.FieldEQ(FieldRequestedActionTakenAt, v))
}

// BotIDEQ applies the EQ predicate on the "bot_id" field.
func BotIDEQ(v string) predicate.BotEvent {
	return predicate.BotEvent(sql.FieldEQ(FieldBotID, v))
}

// BotIDNEQ applies the NEQ predicate on the "bot_id" field.
func BotIDNEQ(v string) predicate.BotEvent {
	return predicate.BotEvent(sql.FieldNEQ(FieldBotID, v))
}

// BotIDIn applies the In predicate on the "bot_id" field.
func BotIDIn(vs ...string) predicate.BotEvent {
	return predicate.BotEvent(sql.FieldIn(FieldBotID, vs...))
}

// BotIDNotIn applies the NotIn predicate on the "bot_id" field.
func BotIDNotIn(vs ...string) predicate.BotEvent {
	return predicate.BotEvent(sql.FieldNotIn(FieldBotID, vs...))
}

// BotIDGT applies the GT predicate on the "bot_id" field.
func BotIDGT(v string) predicate.BotEvent {
	return predicate.BotEvent(sql.FieldGT(FieldBotID, v))
}

// BotIDGTE applies the GTE predicate on the "bot_id" field.
func BotIDGTE(v string) predicate.BotEvent {
	return predicate.BotEvent(sql.FieldGTE(FieldBotID, v))
}

// BotIDLT applies the LT predicate on the "bot_id" field.
func BotIDLT(v string) predicate.BotEvent {
	return predicate.BotEvent(sql.FieldLT(FieldBotID, v))
}

// BotIDLTE applies the LTE predicate on the "bot_id" field.
func BotIDLTE(v string) predicate.BotEvent {
	return predicate.BotEvent(sql.FieldLTE(FieldBotID, v))
}

// BotIDContains applies the Contains predicate on the "bot_id" field.
func BotIDContains(v string) predicate.BotEvent {
	return predicate.BotEvent(sql.FieldContains(FieldBotID, v))
}

// BotIDHasPrefix applies the HasPrefix predicate on the "bot_id" field.
func BotIDHasPrefix(v string) predicate.BotEvent {
	return predicate.BotEvent(sql.FieldHasPrefix(FieldBotID, v))
}

// BotIDHasSuffix applies the HasSuffix predicate on the "bot_id" field.
func BotIDHasSuffix(v string) predicate.BotEvent {
	return predicate.BotEvent(sql.FieldHasSuffix(FieldBotID, v))
}

// BotIDEqualFold applies the EqualFold predicate on the "bot_id" field.
func BotIDEqualFold(v string) predicate.BotEvent {
	return predicate.BotEvent(sql.FieldEqualFold(FieldBotID, v))
}

// BotIDContainsFold applies the ContainsFold predicate on the "bot_id" field.
func BotIDContainsFold(v string) predicate.BotEvent {
	return predicate.BotEvent(sql.FieldContainsFold(FieldBotID, v))
}

// OldStateEQ applies the EQ predicate on the "old_state" field.
func OldStateEQ(v lifecycle.BotState) predicate.BotEvent {
	vc := int(v)
	return predicate.BotEvent(sql.FieldEQ(FieldOldState, vc))
}

// OldStateNEQ applies the NEQ predicate on the "old_state" field.
func OldStateNEQ(v lifecycle.BotState) predicate.BotEvent {
	vc := int(v)
	return predicate.BotEvent(sql.FieldNEQ(FieldOldState, vc))
}

// OldStateIn applies the In predicate on the "old_state" field.
func OldStateIn(vs ...lifecycle.BotState) predicate.BotEvent {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = int(vs[i])
	}
	return predicate.BotEvent(sql.FieldIn(FieldOldState, v...))
}

// OldStateNotIn applies the NotIn predicate on the "old_state" field.
func OldStateNotIn(vs ...lifecycle.BotState) predicate.BotEvent {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = int(vs[i])
	}
	return predicate.BotEvent(sql.FieldNotIn(FieldOldState, v...))
}

// OldStateGT applies the GT predicate on the "old_state" field.
func OldStateGT(v lifecycle.BotState) predicate.BotEvent {
	vc := int(v)
	return predicate.BotEvent(sql.FieldGT(FieldOldState, vc))
}

// OldStateGTE applies the GTE predicate on the "old_state" field.
func OldStateGTE(v lifecycle.BotState) predicate.BotEvent {
	vc := int(v)
	return predicate.BotEvent(sql.FieldGTE(FieldOldState, vc))
}

// OldStateLT applies the LT predicate on the "old_state" field.
func OldStateLT(v lifecycle.BotState) predicate.BotEvent {
	vc := int(v)
	return predicate.BotEvent(sql.FieldLT(FieldOldState, vc))
}

// OldStateLTE applies the LTE predicate on the "old_state" field.
func OldStateLTE(v lifecycle.BotState) predicate.BotEvent {
	vc := int(v)
	return predicate.BotEvent(sql.FieldLTE(FieldOldState, vc))
}

// NewStateEQ applies the EQ predicate on the "new_state" field.
func NewStateEQ(v lifecycle.BotState) predicate.BotEvent {
	vc := int(v)
	return predicate.BotEvent(sql.FieldEQ(FieldNewState, vc))
}

// NewStateNEQ applies the NEQ predicate on the "new_state" field.
func NewStateNEQ(v lifecycle.BotState) predicate.BotEvent {
	vc := int(v)
	return predicate.BotEvent(sql.FieldNEQ(FieldNewState, vc))
}

// NewStateIn applies the In predicate on the "new_state" field.
func NewStateIn(vs ...lifecycle.BotState) predicate.BotEvent {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = int(vs[i])
	}
	return predicate.BotEvent(sql.FieldIn(FieldNewState, v...))
}

// NewStateNotIn applies the NotIn predicate on the "new_state" field.
func NewStateNotIn(vs ...lifecycle.BotState) predicate.BotEvent {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = int(vs[i])
	}
	return predicate.BotEvent(sql.FieldNotIn(FieldNewState, v...))
}

// NewStateGT applies the GT predicate on the "new_state" field.
func NewStateGT(v lifecycle.BotState) predicate.BotEvent {
	vc := int(v)
	return predicate.BotEvent(sql.FieldGT(FieldNewState, vc))
}

// NewStateGTE applies the GTE predicate on the "new_state" field.
func NewStateGTE(v lifecycle.BotState) predicate.BotEvent {
	vc := int(v)
	return predicate.BotEvent(sql.FieldGTE(FieldNewState, vc))
}

// NewStateLT applies the LT predicate on the "new_state" field.
func NewStateLT(v lifecycle.BotState) predicate.BotEvent {
	vc := int(v)
	return predicate.BotEvent(sql.FieldLT(FieldNewState, vc))
}

// NewStateLTE applies the LTE predicate on the "new_state" field.
func NewStateLTE(v lifecycle.BotState) predicate.BotEvent {
	vc := int(v)
	return predicate.BotEvent(sql.FieldLTE(FieldNewState, vc))
}

// EventKindEQ applies the EQ predicate on the "event_kind" field.
func EventKindEQ(v lifecycle.EventKind) predicate.BotEvent {
	vc := v
	return predicate.BotEvent(sql.FieldEQ(FieldEventKind, vc))
}

// EventKindNEQ applies the NEQ predicate on the "event_kind" field.
func EventKindNEQ(v lifecycle.EventKind) predicate.BotEvent {
	vc := v
	return predicate.BotEvent(sql.FieldNEQ(FieldEventKind, vc))
}

// EventKindIn applies the In predicate on the "event_kind" field.
func EventKindIn(vs ...lifecycle.EventKind) predicate.BotEvent {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.BotEvent(sql.FieldIn(FieldEventKind, v...))
}

// EventKindNotIn applies the NotIn predicate on the "event_kind" field.
func EventKindNotIn(vs ...lifecycle.EventKind) predicate.BotEvent {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.BotEvent(sql.FieldNotIn(FieldEventKind, v...))
}

// EventSubKindEQ applies the EQ predicate on the "event_sub_kind" field.
func EventSubKindEQ(v lifecycle.EventSubKind) predicate.BotEvent {
	vc := v
	return predicate.BotEvent(sql.FieldEQ(FieldEventSubKind, vc))
}

// EventSubKindNEQ applies the NEQ predicate on the "event_sub_kind" field.
func EventSubKindNEQ(v lifecycle.EventSubKind) predicate.BotEvent {
	vc := v
	return predicate.BotEvent(sql.FieldNEQ(FieldEventSubKind, vc))
}

// EventSubKindIn applies the In predicate on the "event_sub_kind" field.
func EventSubKindIn(vs ...lifecycle.EventSubKind) predicate.BotEvent {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.BotEvent(sql.FieldIn(FieldEventSubKind, v...))
}

// EventSubKindNotIn applies the NotIn predicate on the "event_sub_kind" field.
func EventSubKindNotIn(vs ...lifecycle.EventSubKind) predicate.BotEvent {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.BotEvent(sql.FieldNotIn(FieldEventSubKind, v...))
}

// EventSubKindIsNil applies the IsNil predicate on the "event_sub_kind" field.
func EventSubKindIsNil() predicate.BotEvent {
	return predicate.BotEvent(sql.FieldIsNull(FieldEventSubKind))
}

// EventSubKindNotNil applies the NotNil predicate on the "event_sub_kind" field.
func EventSubKindNotNil() predicate.BotEvent {
	return predicate.BotEvent(sql.FieldNotNull(FieldEventSubKind))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.BotEvent {
	return predicate.BotEvent(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.BotEvent {
	return predicate.BotEvent(sql.FieldNotNull(FieldMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BotEvent {
	return predicate.BotEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BotEvent {
	return predicate.BotEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BotEvent {
	return predicate.BotEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BotEvent {
	return predicate.BotEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BotEvent {
	return predicate.BotEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BotEvent {
	return predicate.BotEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BotEvent {
	return predicate.BotEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BotEvent {
	return predicate.BotEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// RequestedActionTakenAtEQ applies the EQ predicate on the "requested_action_taken_at" field.
func RequestedActionTakenAtEQ(v time.Time) predicate.BotEvent {
	return predicate.BotEvent(sql.FieldEQ(FieldRequestedActionTakenAt, v))
}

// RequestedActionTakenAtNEQ applies the NEQ predicate on the "requested_action_taken_at" field.
func RequestedActionTakenAtNEQ(v time.Time) predicate.BotEvent {
	return predicate.BotEvent(sql.FieldNEQ(FieldRequestedActionTakenAt, v))
}

// RequestedActionTakenAtIn applies the In predicate on the "requested_action_taken_at" field.
func RequestedActionTakenAtIn(vs ...time.Time) predicate.BotEvent {
	return predicate.BotEvent(sql.FieldIn(FieldRequestedActionTakenAt, vs...))
}

// RequestedActionTakenAtNotIn applies the NotIn predicate on the "requested_action_taken_at" field.
func RequestedActionTakenAtNotIn(vs ...time.Time) predicate.BotEvent {
	return predicate.BotEvent(sql.FieldNotIn(FieldRequestedActionTakenAt, vs...))
}

// RequestedActionTakenAtGT applies the GT predicate on the "requested_action_taken_at" field.
func RequestedActionTakenAtGT(v time.Time) predicate.BotEvent {
	return predicate.BotEvent(sql.FieldGT(FieldRequestedActionTakenAt, v))
}

// RequestedActionTakenAtGTE applies the GTE predicate on the "requested_action_taken_at" field.
func RequestedActionTakenAtGTE(v time.Time) predicate.BotEvent {
	return predicate.BotEvent(sql.FieldGTE(FieldRequestedActionTakenAt, v))
}

// RequestedActionTakenAtLT applies the LT predicate on the "requested_action_taken_at" field.
func RequestedActionTakenAtLT(v time.Time) predicate.BotEvent {
	return predicate.BotEvent(sql.FieldLT(FieldRequestedActionTakenAt, v))
}

// RequestedActionTakenAtLTE applies the LTE predicate on the "requested_action_taken_at" field.
func RequestedActionTakenAtLTE(v time.Time) predicate.BotEvent {
	return predicate.BotEvent(sql.FieldLTE(FieldRequestedActionTakenAt, v))
}

// RequestedActionTakenAtIsNil applies the IsNil predicate on the "requested_action_taken_at" field.
func RequestedActionTakenAtIsNil() predicate.BotEvent {
	return predicate.BotEvent(sql.FieldIsNull(FieldRequestedActionTakenAt))
}

// RequestedActionTakenAtNotNil applies the NotNil predicate on the "requested_action_taken_at" field.
func RequestedActionTakenAtNotNil() predicate.BotEvent {
	return predicate.BotEvent(sql.FieldNotNull(FieldRequestedActionTakenAt))
}

// HasBot applies the HasEdge predicate on the "bot" edge.
func HasBot() predicate.BotEvent {
	return predicate.BotEvent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BotTable, BotColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBotWith applies the HasEdge predicate on the "bot" edge with a given conditions (other predicates).
func HasBotWith(preds ...predicate.Bot) predicate.BotEvent {
	return predicate.BotEvent(func(s *sql.Selector) {
		step := newBotStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BotEvent) predicate.BotEvent {
	return predicate.BotEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BotEvent) predicate.BotEvent {
	return predicate.BotEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BotEvent) predicate.BotEvent {
	return predicate.BotEvent(sql.NotPredicates(p))
}
