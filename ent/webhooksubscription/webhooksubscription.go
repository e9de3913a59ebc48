// Code generated by ent, DO NOT EDIT.

package webhooksubscription

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the webhooksubscription type in the database.
	Label = "webhook_subscription"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "webhook_subscription_id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldBotID holds the string denoting the bot_id field in the database.
	FieldBotID = "bot_id"
	// FieldURL holds the string denoting the url field in the database.
	FieldURL = "url"
	// FieldTriggers holds the string denoting the triggers field in the database.
	FieldTriggers = "triggers"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// EdgeDeliveryAttempts holds the string denoting the delivery_attempts edge name in mutations.
	EdgeDeliveryAttempts = "delivery_attempts"
	// ProjectFieldID holds the string denoting the ID field of the Project.
	ProjectFieldID = "project_id"
	// WebhookDeliveryAttemptFieldID holds the string denoting the ID field of the WebhookDeliveryAttempt.
	WebhookDeliveryAttemptFieldID = "webhook_delivery_attempt_id"
	// Table holds the table name of the webhooksubscription in the database.
	Table = "webhook_subscriptions"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "webhook_subscriptions"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "project_id"
	// DeliveryAttemptsTable is the table that holds the delivery_attempts relation/edge.
	DeliveryAttemptsTable = "webhook_delivery_attempts"
	// DeliveryAttemptsInverseTable is the table name for the WebhookDeliveryAttempt entity.
	// It exists in this package in order to avoid circular dependency with the "webhookdeliveryattempt" package.
	DeliveryAttemptsInverseTable = "webhook_delivery_attempts"
	// DeliveryAttemptsColumn is the table column denoting the delivery_attempts relation/edge.
	DeliveryAttemptsColumn = "subscription_id"
)

// Columns holds all SQL columns for webhooksubscription fields.
var Columns = []string{
	FieldID,
	FieldProjectID,
	FieldBotID,
	FieldURL,
	FieldTriggers,
	FieldIsActive,
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
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the WebhookSubscription queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByBotID orders the results by the bot_id field.
func ByBotID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBotID, opts...).ToFunc()
}

// ByURL orders the results by the url field.
func ByURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURL, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByProjectField orders the results by project field.
func ByProjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProjectStep(), sql.OrderByField(field, opts...))
	}
}

// ByDeliveryAttemptsCount orders the results by delivery_attempts count.
func ByDeliveryAttemptsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDeliveryAttemptsStep(), opts...)
	}
}

// ByDeliveryAttempts orders the results by delivery_attempts terms.
func ByDeliveryAttempts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDeliveryAttemptsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newProjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectInverseTable, ProjectFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
	)
}
func newDeliveryAttemptsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DeliveryAttemptsInverseTable, WebhookDeliveryAttemptFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DeliveryAttemptsTable, DeliveryAttemptsColumn),
	)
}
