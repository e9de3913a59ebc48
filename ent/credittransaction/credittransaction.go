// Code generated by ent, DO NOT EDIT.

package credittransaction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the credittransaction type in the database.
	Label = "credit_transaction"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "credit_transaction_id"
	// FieldOrganizationID holds the string denoting the organization_id field in the database.
	FieldOrganizationID = "organization_id"
	// FieldParentTransactionID holds the string denoting the parent_transaction_id field in the database.
	FieldParentTransactionID = "parent_transaction_id"
	// FieldCenticreditsBefore holds the string denoting the centicredits_before field in the database.
	FieldCenticreditsBefore = "centicredits_before"
	// FieldCenticreditsAfter holds the string denoting the centicredits_after field in the database.
	FieldCenticreditsAfter = "centicredits_after"
	// FieldCenticreditsDelta holds the string denoting the centicredits_delta field in the database.
	FieldCenticreditsDelta = "centicredits_delta"
	// FieldBotID holds the string denoting the bot_id field in the database.
	FieldBotID = "bot_id"
	// FieldStripePaymentIntentID holds the string denoting the stripe_payment_intent_id field in the database.
	FieldStripePaymentIntentID = "stripe_payment_intent_id"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeOrganization holds the string denoting the organization edge name in mutations.
	EdgeOrganization = "organization"
	// EdgeParent holds the string denoting the parent edge name in mutations.
	EdgeParent = "parent"
	// EdgeChildren holds the string denoting the children edge name in mutations.
	EdgeChildren = "children"
	// OrganizationFieldID holds the string denoting the ID field of the Organization.
	OrganizationFieldID = "organization_id"
	// Table holds the table name of the credittransaction in the database.
	Table = "credit_transactions"
	// OrganizationTable is the table that holds the organization relation/edge.
	OrganizationTable = "credit_transactions"
	// OrganizationInverseTable is the table name for the Organization entity.
	// It exists in this package in order to avoid circular dependency with the "organization" package.
	OrganizationInverseTable = "organizations"
	// OrganizationColumn is the table column denoting the organization relation/edge.
	OrganizationColumn = "organization_id"
	// ParentTable is the table that holds the parent relation/edge.
	ParentTable = "credit_transactions"
	// ParentColumn is the table column denoting the parent relation/edge.
	ParentColumn = "parent_transaction_id"
	// ChildrenTable is the table that holds the children relation/edge.
	ChildrenTable = "credit_transactions"
	// ChildrenColumn is the table column denoting the children relation/edge.
	ChildrenColumn = "parent_transaction_id"
)

// Columns holds all SQL columns for credittransaction fields.
var Columns = []string{
	FieldID,
	FieldOrganizationID,
	FieldParentTransactionID,
	FieldCenticreditsBefore,
	FieldCenticreditsAfter,
	FieldCenticreditsDelta,
	FieldBotID,
	FieldStripePaymentIntentID,
	FieldDescription,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the CreditTransaction queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOrganizationID orders the results by the organization_id field.
func ByOrganizationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrganizationID, opts...).ToFunc()
}

// ByParentTransactionID orders the results by the parent_transaction_id field.
func ByParentTransactionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentTransactionID, opts...).ToFunc()
}

// ByCenticreditsBefore orders the results by the centicredits_before field.
func ByCenticreditsBefore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCenticreditsBefore, opts...).ToFunc()
}

// ByCenticreditsAfter orders the results by the centicredits_after field.
func ByCenticreditsAfter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCenticreditsAfter, opts...).ToFunc()
}

// ByCenticreditsDelta orders the results by the centicredits_delta field.
func ByCenticreditsDelta(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCenticreditsDelta, opts...).ToFunc()
}

// ByBotID orders the results by the bot_id field.
func ByBotID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBotID, opts...).ToFunc()
}

// ByStripePaymentIntentID orders the results by the stripe_payment_intent_id field.
func ByStripePaymentIntentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStripePaymentIntentID, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByOrganizationField orders the results by organization field.
func ByOrganizationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOrganizationStep(), sql.OrderByField(field, opts...))
	}
}

// ByParentField orders the results by parent field.
func ByParentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newParentStep(), sql.OrderByField(field, opts...))
	}
}

// ByChildrenCount orders the results by children count.
func ByChildrenCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newChildrenStep(), opts...)
	}
}

// ByChildren orders the results by children terms.
func ByChildren(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChildrenStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newOrganizationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OrganizationInverseTable, OrganizationFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, OrganizationTable, OrganizationColumn),
	)
}
func newParentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ParentTable, ParentColumn),
	)
}
func newChildrenStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ChildrenTable, ChildrenColumn),
	)
}
