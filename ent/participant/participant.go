// Code generated by ent, DO NOT EDIT.

package participant

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the participant type in the database.
	Label = "participant"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "participant_id"
	// FieldBotID holds the string denoting the bot_id field in the database.
	FieldBotID = "bot_id"
	// FieldPlatformUUID holds the string denoting the platform_uuid field in the database.
	FieldPlatformUUID = "platform_uuid"
	// FieldFullName holds the string denoting the full_name field in the database.
	FieldFullName = "full_name"
	// FieldIsHost holds the string denoting the is_host field in the database.
	FieldIsHost = "is_host"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeBot holds the string denoting the bot edge name in mutations.
	EdgeBot = "bot"
	// BotFieldID holds the string denoting the ID field of the Bot.
	BotFieldID = "bot_id"
	// Table holds the table name of the participant in the database.
	Table = "participants"
	// BotTable is the table that holds the bot relation/edge.
	BotTable = "participants"
	// BotInverseTable is the table name for the Bot entity.
	// It exists in this package in order to avoid circular dependency with the "bot" package.
	BotInverseTable = "bots"
	// BotColumn is the table column denoting the bot relation/edge.
	BotColumn = "bot_id"
)

// Columns holds all SQL columns for participant fields.
var Columns = []string{
	FieldID,
	FieldBotID,
	FieldPlatformUUID,
	FieldFullName,
	FieldIsHost,
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
	// DefaultIsHost holds the default value on creation for the "is_host" field.
	DefaultIsHost bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Participant queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBotID orders the results by the bot_id field.
func ByBotID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBotID, opts...).ToFunc()
}

// ByPlatformUUID orders the results by the platform_uuid field.
func ByPlatformUUID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlatformUUID, opts...).ToFunc()
}

// ByFullName orders the results by the full_name field.
func ByFullName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFullName, opts...).ToFunc()
}

// ByIsHost orders the results by the is_host field.
func ByIsHost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsHost, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByBotField orders the results by bot field.
func ByBotField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBotStep(), sql.OrderByField(field, opts...))
	}
}
func newBotStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BotInverseTable, BotFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, BotTable, BotColumn),
	)
}
