// Code generated by ent, DO NOT EDIT.

package botevent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/stenobot-io/stenobot/pkg/lifecycle"
)

const (
	// Label holds the string label denoting the botevent type in the database.
	Label = "bot_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "bot_event_id"
	// FieldBotID holds the string denoting the bot_id field in the database.
	FieldBotID = "bot_id"
	// FieldOldState holds the string denoting the old_state field in the database.
	FieldOldState = "old_state"
	// FieldNewState holds the string denoting the new_state field in the database.
	FieldNewState = "new_state"
	// FieldEventKind holds the string denoting the event_kind field in the database.
	FieldEventKind = "event_kind"
	// FieldEventSubKind holds the string denoting the event_sub_kind field in the database.
	FieldEventSubKind = "event_sub_kind"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldRequestedActionTakenAt holds the string denoting the requested_action_taken_at field in the database.
	FieldRequestedActionTakenAt = "requested_action_taken_at"
	// EdgeBot holds the string denoting the bot edge name in mutations.
	EdgeBot = "bot"
	// BotFieldID holds the string denoting the ID field of the Bot.
	BotFieldID = "bot_id"
	// Table holds the table name of the botevent in the database.
	Table = "bot_events"
	// BotTable is the table that holds the bot relation/edge.
	BotTable = "bot_events"
	// BotInverseTable is the table name for the Bot entity.
	// It exists in this package in order to avoid circular dependency with the "bot" package.
	BotInverseTable = "bots"
	// BotColumn is the table column denoting the bot relation/edge.
	BotColumn = "bot_id"
)

// Columns holds all SQL columns for botevent fields.
var Columns = []string{
	FieldID,
	FieldBotID,
	FieldOldState,
	FieldNewState,
	FieldEventKind,
	FieldEventSubKind,
	FieldMetadata,
	FieldCreatedAt,
	FieldRequestedActionTakenAt,
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

// EventKindValidator is a validator for the "event_kind" field enum values. It is called by the builders before save.
func EventKindValidator(ek lifecycle.EventKind) error {
	switch ek {
	case "join_requested", "bot_put_in_waiting_room", "bot_joined_meeting", "bot_recording_permission_granted", "bot_recording_permission_denied", "recording_paused", "recording_resumed", "meeting_ended", "leave_requested", "bot_left_meeting", "post_processing_completed", "fatal_error", "could_not_join", "data_deleted", "staged", "bot_began_joining_breakout_room", "bot_joined_breakout_room", "bot_began_leaving_breakout_room", "bot_left_breakout_room", "connect_requested", "bot_connected", "disconnect_requested", "bot_disconnected":
		return nil
	default:
		return fmt.Errorf("botevent: invalid enum value for event_kind field: %q", ek)
	}
}

// EventSubKindValidator is a validator for the "event_sub_kind" field enum values. It is called by the builders before save.
func EventSubKindValidator(esk lifecycle.EventSubKind) error {
	switch esk {
	case "process_terminated", "attendee_internal_error", "out_of_credits", "rtmp_connection_failed", "ui_element_not_found", "heartbeat_timeout", "bot_not_launched", "meeting_not_started_waiting_for_host", "unable_to_connect_to_meeting", "waiting_room_timeout_exceeded", "zoom_authorization_failed", "login_required", "authorized_user_not_in_meeting_timeout_exceeded", "bot_login_attempt_failed", "zoom_meeting_status_failed", "unpublished_zoom_app", "zoom_sdk_internal_error", "request_to_join_denied", "meeting_not_found", "user_requested", "auto_leave_silence", "auto_leave_only_participant_in_meeting", "auto_leave_max_uptime_exceeded", "auto_leave_could_not_enable_closed_captions", "host_denied_permission", "request_timed_out", "host_client_cannot_grant_permission":
		return nil
	default:
		return fmt.Errorf("botevent: invalid enum value for event_sub_kind field: %q", esk)
	}
}

// OrderOption defines the ordering options for the BotEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBotID orders the results by the bot_id field.
func ByBotID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBotID, opts...).ToFunc()
}

// ByOldState orders the results by the old_state field.
func ByOldState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOldState, opts...).ToFunc()
}

// ByNewState orders the results by the new_state field.
func ByNewState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewState, opts...).ToFunc()
}

// ByEventKind orders the results by the event_kind field.
func ByEventKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventKind, opts...).ToFunc()
}

// ByEventSubKind orders the results by the event_sub_kind field.
func ByEventSubKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventSubKind, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByRequestedActionTakenAt orders the results by the requested_action_taken_at field.
func ByRequestedActionTakenAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestedActionTakenAt, opts...).ToFunc()
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
