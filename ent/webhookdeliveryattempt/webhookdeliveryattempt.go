// Code generated by ent, DO NOT EDIT.

package webhookdeliveryattempt

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/stenobot-io/stenobot/pkg/lifecycle"
)

const (
	// Label holds the string label denoting the webhookdeliveryattempt type in the database.
	Label = "webhook_delivery_attempt"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "webhook_delivery_attempt_id"
	// FieldSubscriptionID holds the string denoting the subscription_id field in the database.
	FieldSubscriptionID = "subscription_id"
	// FieldBotID holds the string denoting the bot_id field in the database.
	FieldBotID = "bot_id"
	// FieldCalendarID holds the string denoting the calendar_id field in the database.
	FieldCalendarID = "calendar_id"
	// FieldZoomOauthConnectionID holds the string denoting the zoom_oauth_connection_id field in the database.
	FieldZoomOauthConnectionID = "zoom_oauth_connection_id"
	// FieldTrigger holds the string denoting the trigger field in the database.
	FieldTrigger = "trigger"
	// FieldIdempotencyKey holds the string denoting the idempotency_key field in the database.
	FieldIdempotencyKey = "idempotency_key"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldAttemptCount holds the string denoting the attempt_count field in the database.
	FieldAttemptCount = "attempt_count"
	// FieldResponseBodies holds the string denoting the response_bodies field in the database.
	FieldResponseBodies = "response_bodies"
	// FieldNextAttemptAt holds the string denoting the next_attempt_at field in the database.
	FieldNextAttemptAt = "next_attempt_at"
	// FieldLastAttemptedAt holds the string denoting the last_attempted_at field in the database.
	FieldLastAttemptedAt = "last_attempted_at"
	// FieldSucceededAt holds the string denoting the succeeded_at field in the database.
	FieldSucceededAt = "succeeded_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSubscription holds the string denoting the subscription edge name in mutations.
	EdgeSubscription = "subscription"
	// WebhookSubscriptionFieldID holds the string denoting the ID field of the WebhookSubscription.
	WebhookSubscriptionFieldID = "webhook_subscription_id"
	// Table holds the table name of the webhookdeliveryattempt in the database.
	Table = "webhook_delivery_attempts"
	// SubscriptionTable is the table that holds the subscription relation/edge.
	SubscriptionTable = "webhook_delivery_attempts"
	// SubscriptionInverseTable is the table name for the WebhookSubscription entity.
	// It exists in this package in order to avoid circular dependency with the "webhooksubscription" package.
	SubscriptionInverseTable = "webhook_subscriptions"
	// SubscriptionColumn is the table column denoting the subscription relation/edge.
	SubscriptionColumn = "subscription_id"
)

// Columns holds all SQL columns for webhookdeliveryattempt fields.
var Columns = []string{
	FieldID,
	FieldSubscriptionID,
	FieldBotID,
	FieldCalendarID,
	FieldZoomOauthConnectionID,
	FieldTrigger,
	FieldIdempotencyKey,
	FieldPayload,
	FieldStatus,
	FieldAttemptCount,
	FieldResponseBodies,
	FieldNextAttemptAt,
	FieldLastAttemptedAt,
	FieldSucceededAt,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultAttemptCount holds the default value on creation for the "attempt_count" field.
	DefaultAttemptCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

const DefaultStatus lifecycle.DeliveryStatus = "pending"

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s lifecycle.DeliveryStatus) error {
	switch s {
	case "pending", "success", "failure":
		return nil
	default:
		return fmt.Errorf("webhookdeliveryattempt: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the WebhookDeliveryAttempt queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySubscriptionID orders the results by the subscription_id field.
func BySubscriptionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubscriptionID, opts...).ToFunc()
}

// ByBotID orders the results by the bot_id field.
func ByBotID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBotID, opts...).ToFunc()
}

// ByCalendarID orders the results by the calendar_id field.
func ByCalendarID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCalendarID, opts...).ToFunc()
}

// ByZoomOauthConnectionID orders the results by the zoom_oauth_connection_id field.
func ByZoomOauthConnectionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldZoomOauthConnectionID, opts...).ToFunc()
}

// ByTrigger orders the results by the trigger field.
func ByTrigger(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrigger, opts...).ToFunc()
}

// ByIdempotencyKey orders the results by the idempotency_key field.
func ByIdempotencyKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIdempotencyKey, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByAttemptCount orders the results by the attempt_count field.
func ByAttemptCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptCount, opts...).ToFunc()
}

// ByNextAttemptAt orders the results by the next_attempt_at field.
func ByNextAttemptAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextAttemptAt, opts...).ToFunc()
}

// ByLastAttemptedAt orders the results by the last_attempted_at field.
func ByLastAttemptedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastAttemptedAt, opts...).ToFunc()
}

// BySucceededAt orders the results by the succeeded_at field.
func BySucceededAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSucceededAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySubscriptionField orders the results by subscription field.
func BySubscriptionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSubscriptionStep(), sql.OrderByField(field, opts...))
	}
}
func newSubscriptionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SubscriptionInverseTable, WebhookSubscriptionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SubscriptionTable, SubscriptionColumn),
	)
}
