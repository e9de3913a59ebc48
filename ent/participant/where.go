// Code generated by ent, DO NOT EDIT.

package participant

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/stenobot-io/stenobot/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Participant {
	return predicate.Participant(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Participant {
	return predicate.Participant(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Participant {
	return predicate.Participant(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Participant {
	return predicate.Participant(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Participant {
	return predicate.Participant(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Participant {
	return predicate.Participant(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Participant {
	return predicate.Participant(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Participant {
	return predicate.Participant(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Participant {
	return predicate.Participant(sql.FieldContainsFold(FieldID, id))
}

// BotID applies equality check predicate on the "bot_id" field. It's identical to BotIDEQ.
func BotID(v string) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldBotID, v))
}

// PlatformUUID applies equality check predicate on the "platform_uuid" field. It's identical to PlatformUUIDEQ.
func PlatformUUID(v string) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldPlatformUUID, v))
}

// FullName applies equality check predicate on the "full_name" field. It's identical to FullNameEQ.
func FullName(v string) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldFullName, v))
}

// IsHost applies equality check predicate on the "is_host" field. It's identical to IsHostEQ.
func IsHost(v bool) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldIsHost, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldCreatedAt, v))
}

// BotIDEQ applies the EQ predicate on the "bot_id" field.
func BotIDEQ(v string) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldBotID, v))
}

// BotIDNEQ applies the NEQ predicate on the "bot_id" field.
func BotIDNEQ(v string) predicate.Participant {
	return predicate.Participant(sql.FieldNEQ(FieldBotID, v))
}

// BotIDIn applies the In predicate on the "bot_id" field.
func BotIDIn(vs ...string) predicate.Participant {
	return predicate.Participant(sql.FieldIn(FieldBotID, vs...))
}

// BotIDNotIn applies the NotIn predicate on the "bot_id" field.
func BotIDNotIn(vs ...string) predicate.Participant {
	return predicate.Participant(sql.FieldNotIn(FieldBotID, vs...))
}

// BotIDGT applies the GT predicate on the "bot_id" field.
func BotIDGT(v string) predicate.Participant {
	return predicate.Participant(sql.FieldGT(FieldBotID, v))
}

// BotIDGTE applies the GTE predicate on the "bot_id" field.
func BotIDGTE(v string) predicate.Participant {
	return predicate.Participant(sql.FieldGTE(FieldBotID, v))
}

// BotIDLT applies the LT predicate on the "bot_id" field.
func BotIDLT(v string) predicate.Participant {
	return predicate.Participant(sql.FieldLT(FieldBotID, v))
}

// BotIDLTE applies the LTE predicate on the "bot_id" field.
func BotIDLTE(v string) predicate.Participant {
	return predicate.Participant(sql.FieldLTE(FieldBotID, v))
}

// BotIDContains applies the Contains predicate on the "bot_id" field.
func BotIDContains(v string) predicate.Participant {
	return predicate.Participant(sql.FieldContains(FieldBotID, v))
}

// BotIDHasPrefix applies the HasPrefix predicate on the "bot_id" field.
func BotIDHasPrefix(v string) predicate.Participant {
	return predicate.Participant(sql.FieldHasPrefix(FieldBotID, v))
}

// BotIDHasSuffix applies the HasSuffix predicate on the "bot_id" field.
func BotIDHasSuffix(v string) predicate.Participant {
	return predicate.Participant(sql.FieldHasSuffix(FieldBotID, v))
}

// BotIDEqualFold applies the EqualFold predicate on the "bot_id" field.
func BotIDEqualFold(v string) predicate.Participant {
	return predicate.Participant(sql.FieldEqualFold(FieldBotID, v))
}

// BotIDContainsFold applies the ContainsFold predicate on the "bot_id" field.
func BotIDContainsFold(v string) predicate.Participant {
	return predicate.Participant(sql.FieldContainsFold(FieldBotID, v))
}

// PlatformUUIDEQ applies the EQ predicate on the "platform_uuid" field.
func PlatformUUIDEQ(v string) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldPlatformUUID, v))
}

// PlatformUUIDNEQ applies the NEQ predicate on the "platform_uuid" field.
func PlatformUUIDNEQ(v string) predicate.Participant {
	return predicate.Participant(sql.FieldNEQ(FieldPlatformUUID, v))
}

// PlatformUUIDIn applies the In predicate on the "platform_uuid" field.
func PlatformUUIDIn(vs ...string) predicate.Participant {
	return predicate.Participant(sql.FieldIn(FieldPlatformUUID, vs...))
}

// PlatformUUIDNotIn applies the NotIn predicate on the "platform_uuid" field.
func PlatformUUIDNotIn(vs ...string) predicate.Participant {
	return predicate.Participant(sql.FieldNotIn(FieldPlatformUUID, vs...))
}

// PlatformUUIDGT applies the GT predicate on the "platform_uuid" field.
func PlatformUUIDGT(v string) predicate.Participant {
	return predicate.Participant(sql.FieldGT(FieldPlatformUUID, v))
}

// PlatformUUIDGTE applies the GTE predicate on the "platform_uuid" field.
func PlatformUUIDGTE(v string) predicate.Participant {
	return predicate.Participant(sql.FieldGTE(FieldPlatformUUID, v))
}

// PlatformUUIDLT applies the LT predicate on the "platform_uuid" field.
func PlatformUUIDLT(v string) predicate.Participant {
	return predicate.Participant(sql.FieldLT(FieldPlatformUUID, v))
}

// PlatformUUIDLTE applies the LTE predicate on the "platform_uuid" field.
func PlatformUUIDLTE(v string) predicate.Participant {
	return predicate.Participant(sql.FieldLTE(FieldPlatformUUID, v))
}

// PlatformUUIDContains applies the Contains predicate on the "platform_uuid" field.
func PlatformUUIDContains(v string) predicate.Participant {
	return predicate.Participant(sql.FieldContains(FieldPlatformUUID, v))
}

// PlatformUUIDHasPrefix applies the HasPrefix predicate on the "platform_uuid" field.
func PlatformUUIDHasPrefix(v string) predicate.Participant {
	return predicate.Participant(sql.FieldHasPrefix(FieldPlatformUUID, v))
}

// PlatformUUIDHasSuffix applies the HasSuffix predicate on the "platform_uuid" field.
func PlatformUUIDHasSuffix(v string) predicate.Participant {
	return predicate.Participant(sql.FieldHasSuffix(FieldPlatformUUID, v))
}

// PlatformUUIDEqualFold applies the EqualFold predicate on the "platform_uuid" field.
func PlatformUUIDEqualFold(v string) predicate.Participant {
	return predicate.Participant(sql.FieldEqualFold(FieldPlatformUUID, v))
}

// PlatformUUIDContainsFold applies the ContainsFold predicate on the "platform_uuid" field.
func PlatformUUIDContainsFold(v string) predicate.Participant {
	return predicate.Participant(sql.FieldContainsFold(FieldPlatformUUID, v))
}

// FullNameEQ applies the EQ predicate on the "full_name" field.
func FullNameEQ(v string) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldFullName, v))
}

// FullNameNEQ applies the NEQ predicate on the "full_name" field.
func FullNameNEQ(v string) predicate.Participant {
	return predicate.Participant(sql.FieldNEQ(FieldFullName, v))
}

// FullNameIn applies the In predicate on the "full_name" field.
func FullNameIn(vs ...string) predicate.Participant {
	return predicate.Participant(sql.FieldIn(FieldFullName, vs...))
}

// FullNameNotIn applies the NotIn predicate on the "full_name" field.
func FullNameNotIn(vs ...string) predicate.Participant {
	return predicate.Participant(sql.FieldNotIn(FieldFullName, vs...))
}

// FullNameGT applies the GT predicate on the "full_name" field.
func FullNameGT(v string) predicate.Participant {
	return predicate.Participant(sql.FieldGT(FieldFullName, v))
}

// FullNameGTE applies the GTE predicate on the "full_name" field.
func FullNameGTE(v string) predicate.Participant {
	return predicate.Participant(sql.FieldGTE(FieldFullName, v))
}

// FullNameLT applies the LT predicate on the "full_name" field.
func FullNameLT(v string) predicate.Participant {
	return predicate.Participant(sql.FieldLT(FieldFullName, v))
}

// FullNameLTE applies the LTE predicate on the "full_name" field.
func FullNameLTE(v string) predicate.Participant {
	return predicate.Participant(sql.FieldLTE(FieldFullName, v))
}

// FullNameContains applies the Contains predicate on the "full_name" field.
func FullNameContains(v string) predicate.Participant {
	return predicate.Participant(sql.FieldContains(FieldFullName, v))
}

// FullNameHasPrefix applies the HasPrefix predicate on the "full_name" field.
func FullNameHasPrefix(v string) predicate.Participant {
	return predicate.Participant(sql.FieldHasPrefix(FieldFullName, v))
}

// FullNameHasSuffix applies the HasSuffix predicate on the "full_name" field.
func FullNameHasSuffix(v string) predicate.Participant {
	return predicate.Participant(sql.FieldHasSuffix(FieldFullName, v))
}

// FullNameEqualFold applies the EqualFold predicate on the "full_name" field.
func FullNameEqualFold(v string) predicate.Participant {
	return predicate.Participant(sql.FieldEqualFold(FieldFullName, v))
}

// FullNameContainsFold applies the ContainsFold predicate on the "full_name" field.
func FullNameContainsFold(v string) predicate.Participant {
	return predicate.Participant(sql.FieldContainsFold(FieldFullName, v))
}

// IsHostEQ applies the EQ predicate on the "is_host" field.
func IsHostEQ(v bool) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldIsHost, v))
}

// IsHostNEQ applies the NEQ predicate on the "is_host" field.
func IsHostNEQ(v bool) predicate.Participant {
	return predicate.Participant(sql.FieldNEQ(FieldIsHost, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Participant {
	return predicate.Participant(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Participant {
	return predicate.Participant(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Participant {
	return predicate.Participant(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Participant {
	return predicate.Participant(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Participant {
	return predicate.Participant(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Participant {
	return predicate.Participant(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Participant {
	return predicate.Participant(sql.FieldLTE(FieldCreatedAt, v))
}

// HasBot applies the HasEdge predicate on the "bot" edge.
func HasBot() predicate.Participant {
	return predicate.Participant(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BotTable, BotColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBotWith applies the HasEdge predicate on the "bot" edge with a given conditions (other predicates).
func HasBotWith(preds ...predicate.Bot) predicate.Participant {
	return predicate.Participant(func(s *sql.Selector) {
		step := newBotStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Participant) predicate.Participant {
	return predicate.Participant(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Participant) predicate.Participant {
	return predicate.Participant(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Participant) predicate.Participant {
	return predicate.Participant(sql.NotPredicates(p))
}
