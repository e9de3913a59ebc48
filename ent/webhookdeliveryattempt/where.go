// Code generated by ent, DO NOT EDIT.

package webhookdeliveryattempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/stenobot-io/stenobot/ent/predicate"
	"github.com/stenobot-io/stenobot/pkg/lifecycle"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldContainsFold(FieldID, id))
}

// SubscriptionID applies equality check predicate on the "subscription_id" field. It's identical to SubscriptionIDEQ.
func SubscriptionID(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldEQ(FieldSubscriptionID, v))
}

// BotID applies equality check predicate on the "bot_id" field. It's identical to BotIDEQ.
func BotID(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldEQ(FieldBotID, v))
}

// CalendarID applies equality check predicate on the "calendar_id" field. It's identical to CalendarIDEQ.
func CalendarID(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldEQ(FieldCalendarID, v))
}

// ZoomOauthConnectionID applies equality check predicate on the "zoom_oauth_connection_id" field. It's identical to ZoomOauthConnectionIDEQ.
func ZoomOauthConnectionID(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldEQ(FieldZoomOauthConnectionID, v))
}

// Trigger applies equality check predicate on the "trigger" field. It's identical to TriggerEQ.
func Trigger(v lifecycle.TriggerKind) predicate.WebhookDeliveryAttempt {
	vc := int(v)
	return predicate.WebhookDeliveryAttempt(sql.FieldEQ(FieldTrigger, vc))
}

// IdempotencyKey applies equality check predicate on the "idempotency_key" field. It's identical to IdempotencyKeyEQ.
func IdempotencyKey(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldEQ(FieldIdempotencyKey, v))
}

// AttemptCount applies equality check predicate on the "attempt_count" field. It's identical to AttemptCountEQ.
func AttemptCount(v int) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldEQ(FieldAttemptCount, v))
}

// NextAttemptAt applies equality check predicate on the "next_attempt_at" field. It's identical to NextAttemptAtEQ.
func NextAttemptAt(v time.Time) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldEQ(FieldNextAttemptAt, v))
}

// LastAttemptedAt applies equality check predicate on the "last_attempted_at" field. It's identical to LastAttemptedAtEQ.
func LastAttemptedAt(v time.Time) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldEQ(FieldLastAttemptedAt, v))
}

// SucceededAt applies equality check predicate on the "succeeded_at" field. It's identical to SucceededAtEQ.
func SucceededAt(v time.Time) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldEQ(FieldSucceededAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldEQ(FieldCreatedAt, v))
}

// SubscriptionIDEQ applies the EQ predicate on the "subscription_id" field.
func SubscriptionIDEQ(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldEQ(FieldSubscriptionID, v))
}

// SubscriptionIDNEQ applies the NEQ predicate on the "subscription_id" field.
func SubscriptionIDNEQ(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldNEQ(FieldSubscriptionID, v))
}

// SubscriptionIDIn applies the In predicate on the "subscription_id" field.
func SubscriptionIDIn(vs ...string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldIn(FieldSubscriptionID, vs...))
}

// SubscriptionIDNotIn applies the NotIn predicate on the "subscription_id" field.
func SubscriptionIDNotIn(vs ...string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldNotIn(FieldSubscriptionID, vs...))
}

// SubscriptionIDGT applies the GT predicate on the "subscription_id" field.
func SubscriptionIDGT(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldGT(FieldSubscriptionID, v))
}

// SubscriptionIDGTE applies the GTE predicate on the "subscription_id" field.
func SubscriptionIDGTE(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldGTE(FieldSubscriptionID, v))
}

// SubscriptionIDLT applies the LT predicate on the "subscription_id" field.
func SubscriptionIDLT(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldLT(FieldSubscriptionID, v))
}

// SubscriptionIDLTE applies the LTE predicate on the "subscription_id" field.
func SubscriptionIDLTE(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldLTE(FieldSubscriptionID, v))
}

// SubscriptionIDContains applies the Contains predicate on the "subscription_id" field.
func SubscriptionIDContains(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldContains(FieldSubscriptionID, v))
}

// SubscriptionIDHasPrefix applies the HasPrefix predicate on the "subscription_id" field.
func SubscriptionIDHasPrefix(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldHasPrefix(FieldSubscriptionID, v))
}

// SubscriptionIDHasSuffix applies the HasSuffix predicate on the "subscription_id" field.
func SubscriptionIDHasSuffix(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldHasSuffix(FieldSubscriptionID, v))
}

// SubscriptionIDEqualFold applies the EqualFold predicate on the "subscription_id" field.
func SubscriptionIDEqualFold(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldEqualFold(FieldSubscriptionID, v))
}

// SubscriptionIDContainsFold applies the ContainsFold predicate on the "subscription_id" field.
func SubscriptionIDContainsFold(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldContainsFold(FieldSubscriptionID, v))
}

// BotIDEQ applies the EQ predicate on the "bot_id" field.
func BotIDEQ(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldEQ(FieldBotID, v))
}

// BotIDNEQ applies the NEQ predicate on the "bot_id" field.
func BotIDNEQ(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldNEQ(FieldBotID, v))
}

// BotIDIn applies the In predicate on the "bot_id" field.
func BotIDIn(vs ...string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldIn(FieldBotID, vs...))
}

// BotIDNotIn applies the NotIn predicate on the "bot_id" field.
func BotIDNotIn(vs ...string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldNotIn(FieldBotID, vs...))
}

// BotIDGT applies the GT predicate on the "bot_id" field.
func BotIDGT(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldGT(FieldBotID, v))
}

// BotIDGTE applies the GTE predicate on the "bot_id" field.
func BotIDGTE(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldGTE(FieldBotID, v))
}

// BotIDLT applies the LT predicate on the "bot_id" field.
func BotIDLT(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldLT(FieldBotID, v))
}

// BotIDLTE applies the LTE predicate on the "bot_id" field.
func BotIDLTE(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldLTE(FieldBotID, v))
}

// BotIDContains applies the Contains predicate on the "bot_id" field.
func BotIDContains(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldContains(FieldBotID, v))
}

// BotIDHasPrefix applies the HasPrefix predicate on the "bot_id" field.
func BotIDHasPrefix(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldHasPrefix(FieldBotID, v))
}

// BotIDHasSuffix applies the HasSuffix predicate on the "bot_id" field.
func BotIDHasSuffix(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldHasSuffix(FieldBotID, v))
}

// BotIDIsNil applies the IsNil predicate on the "bot_id" field.
func BotIDIsNil() predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldIsNull(FieldBotID))
}

// BotIDNotNil applies the NotNil predicate on the "bot_id" field.
func BotIDNotNil() predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldNotNull(FieldBotID))
}

// BotIDEqualFold applies the EqualFold predicate on the "bot_id" field.
func BotIDEqualFold(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldEqualFold(FieldBotID, v))
}

// BotIDContainsFold applies the ContainsFold predicate on the "bot_id" field.
func BotIDContainsFold(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldContainsFold(FieldBotID, v))
}

// CalendarIDEQ applies the EQ predicate on the "calendar_id" field.
func CalendarIDEQ(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldEQ(FieldCalendarID, v))
}

// CalendarIDNEQ applies the NEQ predicate on the "calendar_id" field.
func CalendarIDNEQ(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldNEQ(FieldCalendarID, v))
}

// CalendarIDIn applies the In predicate on the "calendar_id" field.
func CalendarIDIn(vs ...string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldIn(FieldCalendarID, vs...))
}

// CalendarIDNotIn applies the NotIn predicate on the "calendar_id" field.
func CalendarIDNotIn(vs ...string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldNotIn(FieldCalendarID, vs...))
}

// CalendarIDGT applies the GT predicate on the "calendar_id" field.
func CalendarIDGT(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldGT(FieldCalendarID, v))
}

// CalendarIDGTE applies the GTE predicate on the "calendar_id" field.
func CalendarIDGTE(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldGTE(FieldCalendarID, v))
}

// CalendarIDLT applies the LT predicate on the "calendar_id" field.
func CalendarIDLT(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldLT(FieldCalendarID, v))
}

// CalendarIDLTE applies the LTE predicate on the "calendar_id" field.
func CalendarIDLTE(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldLTE(FieldCalendarID, v))
}

// CalendarIDContains applies the Contains predicate on the "calendar_id" field.
func CalendarIDContains(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldContains(FieldCalendarID, v))
}

// CalendarIDHasPrefix applies the HasPrefix predicate on the "calendar_id" field.
func CalendarIDHasPrefix(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldHasPrefix(FieldCalendarID, v))
}

// CalendarIDHasSuffix applies the HasSuffix predicate on the "calendar_id" field.
func CalendarIDHasSuffix(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldHasSuffix(FieldCalendarID, v))
}

// CalendarIDIsNil applies the IsNil predicate on the "calendar_id" field.
func CalendarIDIsNil() predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldIsNull(FieldCalendarID))
}

// CalendarIDNotNil applies the NotNil predicate on the "calendar_id" field.
func CalendarIDNotNil() predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldNotNull(FieldCalendarID))
}

// CalendarIDEqualFold applies the EqualFold predicate on the "calendar_id" field.
func CalendarIDEqualFold(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldEqualFold(FieldCalendarID, v))
}

// CalendarIDContainsFold applies the ContainsFold predicate on the "calendar_id" field.
func CalendarIDContainsFold(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldContainsFold(FieldCalendarID, v))
}

// ZoomOauthConnectionIDEQ applies the EQ predicate on the "zoom_oauth_connection_id" field.
func ZoomOauthConnectionIDEQ(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldEQ(FieldZoomOauthConnectionID, v))
}

// ZoomOauthConnectionIDNEQ applies the NEQ predicate on the "zoom_oauth_connection_id" field.
func ZoomOauthConnectionIDNEQ(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldNEQ(FieldZoomOauthConnectionID, v))
}

// ZoomOauthConnectionIDIn applies the In predicate on the "zoom_oauth_connection_id" field.
func ZoomOauthConnectionIDIn(vs ...string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldIn(FieldZoomOauthConnectionID, vs...))
}

// ZoomOauthConnectionIDNotIn applies the NotIn predicate on the "zoom_oauth_connection_id" field.
func ZoomOauthConnectionIDNotIn(vs ...string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldNotIn(FieldZoomOauthConnectionID, vs...))
}

// ZoomOauthConnectionIDGT applies the GT predicate on the "zoom_oauth_connection_id" field.
func ZoomOauthConnectionIDGT(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldGT(FieldZoomOauthConnectionID, v))
}

// ZoomOauthConnectionIDGTE applies the GTE predicate on the "zoom_oauth_connection_id" field.
func ZoomOauthConnectionIDGTE(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldGTE(FieldZoomOauthConnectionID, v))
}

// ZoomOauthConnectionIDLT applies the LT predicate on the "zoom_oauth_connection_id" field.
func ZoomOauthConnectionIDLT(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldLT(FieldZoomOauthConnectionID, v))
}

// ZoomOauthConnectionIDLTE applies the LTE predicate on the "zoom_oauth_connection_id" field.
func ZoomOauthConnectionIDLTE(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldLTE(FieldZoomOauthConnectionID, v))
}

// ZoomOauthConnectionIDContains applies the Contains predicate on the "zoom_oauth_connection_id" field.
func ZoomOauthConnectionIDContains(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldContains(FieldZoomOauthConnectionID, v))
}

// ZoomOauthConnectionIDHasPrefix applies the HasPrefix predicate on the "zoom_oauth_connection_id" field.
func ZoomOauthConnectionIDHasPrefix(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldHasPrefix(FieldZoomOauthConnectionID, v))
}

// ZoomOauthConnectionIDHasSuffix applies the HasSuffix predicate on the "zoom_oauth_connection_id" field.
func ZoomOauthConnectionIDHasSuffix(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldHasSuffix(FieldZoomOauthConnectionID, v))
}

// ZoomOauthConnectionIDIsNil applies the IsNil predicate on the "zoom_oauth_connection_id" field.
func ZoomOauthConnectionIDIsNil() predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldIsNull(FieldZoomOauthConnectionID))
}

// ZoomOauthConnectionIDNotNil applies the NotNil predicate on the "zoom_oauth_connection_id" field.
func ZoomOauthConnectionIDNotNil() predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldNotNull(FieldZoomOauthConnectionID))
}

// ZoomOauthConnectionIDEqualFold applies the EqualFold predicate on the "zoom_oauth_connection_id" field.
func ZoomOauthConnectionIDEqualFold(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldEqualFold(FieldZoomOauthConnectionID, v))
}

// ZoomOauthConnectionIDContainsFold applies the ContainsFold predicate on the "zoom_oauth_connection_id" field.
func ZoomOauthConnectionIDContainsFold(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldContainsFold(FieldZoomOauthConnectionID, v))
}

// TriggerEQ applies the EQ predicate on the "trigger" field.
func TriggerEQ(v lifecycle.TriggerKind) predicate.WebhookDeliveryAttempt {
	vc := int(v)
	return predicate.WebhookDeliveryAttempt(sql.FieldEQ(FieldTrigger, vc))
}

// TriggerNEQ applies the NEQ predicate on the "trigger" field.
func TriggerNEQ(v lifecycle.TriggerKind) predicate.WebhookDeliveryAttempt {
	vc := int(v)
	return predicate.WebhookDeliveryAttempt(sql.FieldNEQ(FieldTrigger, vc))
}

// TriggerIn applies the In predicate on the "trigger" field.
func TriggerIn(vs ...lifecycle.TriggerKind) predicate.WebhookDeliveryAttempt {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = int(vs[i])
	}
	return predicate.WebhookDeliveryAttempt(sql.FieldIn(FieldTrigger, v...))
}

// TriggerNotIn applies the NotIn predicate on the "trigger" field.
func TriggerNotIn(vs ...lifecycle.TriggerKind) predicate.WebhookDeliveryAttempt {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = int(vs[i])
	}
	return predicate.WebhookDeliveryAttempt(sql.FieldNotIn(FieldTrigger, v...))
}

// TriggerGT applies the GT predicate on the "trigger" field.
func TriggerGT(v lifecycle.TriggerKind) predicate.WebhookDeliveryAttempt {
	vc := int(v)
	return predicate.WebhookDeliveryAttempt(sql.FieldGT(FieldTrigger, vc))
}

// TriggerGTE applies the GTE predicate on the "trigger" field.
func TriggerGTE(v lifecycle.TriggerKind) predicate.WebhookDeliveryAttempt {
	vc := int(v)
	return predicate.WebhookDeliveryAttempt(sql.FieldGTE(FieldTrigger, vc))
}

// TriggerLT applies the LT predicate on the "trigger" field.
func TriggerLT(v lifecycle.TriggerKind) predicate.WebhookDeliveryAttempt {
	vc := int(v)
	return predicate.WebhookDeliveryAttempt(sql.FieldLT(FieldTrigger, vc))
}

// TriggerLTE applies the LTE predicate on the "trigger" field.
func TriggerLTE(v lifecycle.TriggerKind) predicate.WebhookDeliveryAttempt {
	vc := int(v)
	return predicate.WebhookDeliveryAttempt(sql.FieldLTE(FieldTrigger, vc))
}

// IdempotencyKeyEQ applies the EQ predicate on the "idempotency_key" field.
func IdempotencyKeyEQ(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldEQ(FieldIdempotencyKey, v))
}

// IdempotencyKeyNEQ applies the NEQ predicate on the "idempotency_key" field.
func IdempotencyKeyNEQ(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldNEQ(FieldIdempotencyKey, v))
}

// IdempotencyKeyIn applies the In predicate on the "idempotency_key" field.
func IdempotencyKeyIn(vs ...string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldIn(FieldIdempotencyKey, vs...))
}

// IdempotencyKeyNotIn applies the NotIn predicate on the "idempotency_key" field.
func IdempotencyKeyNotIn(vs ...string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldNotIn(FieldIdempotencyKey, vs...))
}

// IdempotencyKeyGT applies the GT predicate on the "idempotency_key" field.
func IdempotencyKeyGT(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldGT(FieldIdempotencyKey, v))
}

// IdempotencyKeyGTE applies the GTE predicate on the "idempotency_key" field.
func IdempotencyKeyGTE(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldGTE(FieldIdempotencyKey, v))
}

// IdempotencyKeyLT applies the LT predicate on the "idempotency_key" field.
func IdempotencyKeyLT(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldLT(FieldIdempotencyKey, v))
}

// IdempotencyKeyLTE applies the LTE predicate on the "idempotency_key" field.
func IdempotencyKeyLTE(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldLTE(FieldIdempotencyKey, v))
}

// IdempotencyKeyContains applies the Contains predicate on the "idempotency_key" field.
func IdempotencyKeyContains(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldContains(FieldIdempotencyKey, v))
}

// IdempotencyKeyHasPrefix applies the HasPrefix predicate on the "idempotency_key" field.
func IdempotencyKeyHasPrefix(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldHasPrefix(FieldIdempotencyKey, v))
}

// IdempotencyKeyHasSuffix applies the HasSuffix predicate on the "idempotency_key" field.
func IdempotencyKeyHasSuffix(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldHasSuffix(FieldIdempotencyKey, v))
}

// IdempotencyKeyEqualFold applies the EqualFold predicate on the "idempotency_key" field.
func IdempotencyKeyEqualFold(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldEqualFold(FieldIdempotencyKey, v))
}

// IdempotencyKeyContainsFold applies the ContainsFold predicate on the "idempotency_key" field.
func IdempotencyKeyContainsFold(v string) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldContainsFold(FieldIdempotencyKey, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v lifecycle.DeliveryStatus) predicate.WebhookDeliveryAttempt {
	vc := v
	return predicate.WebhookDeliveryAttempt(sql.FieldEQ(FieldStatus, vc))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v lifecycle.DeliveryStatus) predicate.WebhookDeliveryAttempt {
	vc := v
	return predicate.WebhookDeliveryAttempt(sql.FieldNEQ(FieldStatus, vc))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...lifecycle.DeliveryStatus) predicate.WebhookDeliveryAttempt {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.WebhookDeliveryAttempt(sql.FieldIn(FieldStatus, v...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...lifecycle.DeliveryStatus) predicate.WebhookDeliveryAttempt {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.WebhookDeliveryAttempt(sql.FieldNotIn(FieldStatus, v...))
}

// AttemptCountEQ applies the EQ predicate on the "attempt_count" field.
func AttemptCountEQ(v int) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldEQ(FieldAttemptCount, v))
}

// AttemptCountNEQ applies the NEQ predicate on the "attempt_count" field.
func AttemptCountNEQ(v int) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldNEQ(FieldAttemptCount, v))
}

// AttemptCountIn applies the In predicate on the "attempt_count" field.
func AttemptCountIn(vs ...int) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldIn(FieldAttemptCount, vs...))
}

// AttemptCountNotIn applies the NotIn predicate on the "attempt_count" field.
func AttemptCountNotIn(vs ...int) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldNotIn(FieldAttemptCount, vs...))
}

// AttemptCountGT applies the GT predicate on the "attempt_count" field.
func AttemptCountGT(v int) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldGT(FieldAttemptCount, v))
}

// AttemptCountGTE applies the GTE predicate on the "attempt_count" field.
func AttemptCountGTE(v int) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldGTE(FieldAttemptCount, v))
}

// AttemptCountLT applies the LT predicate on the "attempt_count" field.
func AttemptCountLT(v int) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldLT(FieldAttemptCount, v))
}

// AttemptCountLTE applies the LTE predicate on the "attempt_count" field.
func AttemptCountLTE(v int) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldLTE(FieldAttemptCount, v))
}

// ResponseBodiesIsNil applies the IsNil predicate on the "response_bodies" field.
func ResponseBodiesIsNil() predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldIsNull(FieldResponseBodies))
}

// ResponseBodiesNotNil applies the NotNil predicate on the "response_bodies" field.
func ResponseBodiesNotNil() predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldNotNull(FieldResponseBodies))
}

// NextAttemptAtEQ applies the EQ predicate on the "next_attempt_at" field.
func NextAttemptAtEQ(v time.Time) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldEQ(FieldNextAttemptAt, v))
}

// NextAttemptAtNEQ applies the NEQ predicate on the "next_attempt_at" field.
func NextAttemptAtNEQ(v time.Time) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldNEQ(FieldNextAttemptAt, v))
}

// NextAttemptAtIn applies the In predicate on the "next_attempt_at" field.
func NextAttemptAtIn(vs ...time.Time) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldIn(FieldNextAttemptAt, vs...))
}

// NextAttemptAtNotIn applies the NotIn predicate on the "next_attempt_at" field.
func NextAttemptAtNotIn(vs ...time.Time) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldNotIn(FieldNextAttemptAt, vs...))
}

// NextAttemptAtGT applies the GT predicate on the "next_attempt_at" field.
func NextAttemptAtGT(v time.Time) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldGT(FieldNextAttemptAt, v))
}

// NextAttemptAtGTE applies the GTE predicate on the "next_attempt_at" field.
func NextAttemptAtGTE(v time.Time) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldGTE(FieldNextAttemptAt, v))
}

// NextAttemptAtLT applies the LT predicate on the "next_attempt_at" field.
func NextAttemptAtLT(v time.Time) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldLT(FieldNextAttemptAt, v))
}

// NextAttemptAtLTE applies the LTE predicate on the "next_attempt_at" field.
func NextAttemptAtLTE(v time.Time) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldLTE(FieldNextAttemptAt, v))
}

// NextAttemptAtIsNil applies the IsNil predicate on the "next_attempt_at" field.
func NextAttemptAtIsNil() predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldIsNull(FieldNextAttemptAt))
}

// NextAttemptAtNotNil applies the NotNil predicate on the "next_attempt_at" field.
func NextAttemptAtNotNil() predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldNotNull(FieldNextAttemptAt))
}

// LastAttemptedAtEQ applies the EQ predicate on the "last_attempted_at" field.
func LastAttemptedAtEQ(v time.Time) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldEQ(FieldLastAttemptedAt, v))
}

// LastAttemptedAtNEQ applies the NEQ predicate on the "last_attempted_at" field.
func LastAttemptedAtNEQ(v time.Time) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldNEQ(FieldLastAttemptedAt, v))
}

// LastAttemptedAtIn applies the In predicate on the "last_attempted_at" field.
func LastAttemptedAtIn(vs ...time.Time) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldIn(FieldLastAttemptedAt, vs...))
}

// LastAttemptedAtNotIn applies the NotIn predicate on the "last_attempted_at" field.
func LastAttemptedAtNotIn(vs ...time.Time) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldNotIn(FieldLastAttemptedAt, vs...))
}

// LastAttemptedAtGT applies the GT predicate on the "last_attempted_at" field.
func LastAttemptedAtGT(v time.Time) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldGT(FieldLastAttemptedAt, v))
}

// LastAttemptedAtGTE applies the GTE predicate on the "last_attempted_at" field.
func LastAttemptedAtGTE(v time.Time) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldGTE(FieldLastAttemptedAt, v))
}

// LastAttemptedAtLT applies the LT predicate on the "last_attempted_at" field.
func LastAttemptedAtLT(v time.Time) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldLT(FieldLastAttemptedAt, v))
}

// LastAttemptedAtLTE applies the LTE predicate on the "last_attempted_at" field.
func LastAttemptedAtLTE(v time.Time) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldLTE(FieldLastAttemptedAt, v))
}

// LastAttemptedAtIsNil applies the IsNil predicate on the "last_attempted_at" field.
func LastAttemptedAtIsNil() predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldIsNull(FieldLastAttemptedAt))
}

// LastAttemptedAtNotNil applies the NotNil predicate on the "last_attempted_at" field.
func LastAttemptedAtNotNil() predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldNotNull(FieldLastAttemptedAt))
}

// SucceededAtEQ applies the EQ predicate on the "succeeded_at" field.
func SucceededAtEQ(v time.Time) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldEQ(FieldSucceededAt, v))
}

// SucceededAtNEQ applies the NEQ predicate on the "succeeded_at" field.
func SucceededAtNEQ(v time.Time) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldNEQ(FieldSucceededAt, v))
}

// SucceededAtIn applies the In predicate on the "succeeded_at" field.
func SucceededAtIn(vs ...time.Time) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldIn(FieldSucceededAt, vs...))
}

// SucceededAtNotIn applies the NotIn predicate on the "succeeded_at" field.
func SucceededAtNotIn(vs ...time.Time) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldNotIn(FieldSucceededAt, vs...))
}

// SucceededAtGT applies the GT predicate on the "succeeded_at" field.
func SucceededAtGT(v time.Time) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldGT(FieldSucceededAt, v))
}

// SucceededAtGTE applies the GTE predicate on the "succeeded_at" field.
func SucceededAtGTE(v time.Time) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldGTE(FieldSucceededAt, v))
}

// SucceededAtLT applies the LT predicate on the "succeeded_at" field.
func SucceededAtLT(v time.Time) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldLT(FieldSucceededAt, v))
}

// SucceededAtLTE applies the LTE predicate on the "succeeded_at" field.
func SucceededAtLTE(v time.Time) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldLTE(FieldSucceededAt, v))
}

// SucceededAtIsNil applies the IsNil predicate on the "succeeded_at" field.
func SucceededAtIsNil() predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldIsNull(FieldSucceededAt))
}

// SucceededAtNotNil applies the NotNil predicate on the "succeeded_at" field.
func SucceededAtNotNil() predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldNotNull(FieldSucceededAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSubscription applies the HasEdge predicate on the "subscription" edge.
func HasSubscription() predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SubscriptionTable, SubscriptionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubscriptionWith applies the HasEdge predicate on the "subscription" edge with a given conditions (other predicates).
func HasSubscriptionWith(preds ...predicate.WebhookSubscription) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(func(s *sql.Selector) {
		step := newSubscriptionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WebhookDeliveryAttempt) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WebhookDeliveryAttempt) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WebhookDeliveryAttempt) predicate.WebhookDeliveryAttempt {
	return predicate.WebhookDeliveryAttempt(sql.NotPredicates(p))
}
