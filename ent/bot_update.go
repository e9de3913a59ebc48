// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stenobot-io/stenobot/ent/bot"
	"github.com/stenobot-io/stenobot/ent/botevent"
	"github.com/stenobot-io/stenobot/ent/chatmessage"
	"github.com/stenobot-io/stenobot/ent/participant"
	"github.com/stenobot-io/stenobot/ent/predicate"
	"github.com/stenobot-io/stenobot/ent/recording"
	"github.com/stenobot-io/stenobot/pkg/lifecycle"
)

// BotUpdate is the builder for updating Bot entities.
type BotUpdate struct {
	config
	hooks    []Hook
	mutation *BotMutation
}

// Where appends a list predicates to the BotUpdate builder.
func (_u *BotUpdate) Where(ps ...predicate.Bot) *BotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *BotUpdate) SetName(v string) *BotUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BotUpdate) SetNillableName(v *string) *BotUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetMeetingURL sets the "meeting_url" field.
func (_u *BotUpdate) SetMeetingURL(v string) *BotUpdate {
	_u.mutation.SetMeetingURL(v)
	return _u
}

// SetNillableMeetingURL sets the "meeting_url" field if the given value is not nil.
func (_u *BotUpdate) SetNillableMeetingURL(v *string) *BotUpdate {
	if v != nil {
		_u.SetMeetingURL(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *BotUpdate) SetState(v lifecycle.BotState) *BotUpdate {
	_u.mutation.ResetState()
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *BotUpdate) SetNillableState(v *lifecycle.BotState) *BotUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// AddState adds value to the "state" field.
func (_u *BotUpdate) AddState(v lifecycle.BotState) *BotUpdate {
	_u.mutation.AddState(v)
	return _u
}

// SetSessionKind sets the "session_kind" field.
func (_u *BotUpdate) SetSessionKind(v lifecycle.SessionKind) *BotUpdate {
	_u.mutation.SetSessionKind(v)
	return _u
}

// SetNillableSessionKind sets the "session_kind" field if the given value is not nil.
func (_u *BotUpdate) SetNillableSessionKind(v *lifecycle.SessionKind) *BotUpdate {
	if v != nil {
		_u.SetSessionKind(*v)
	}
	return _u
}

// SetSettings sets the "settings" field.
func (_u *BotUpdate) SetSettings(v map[string]interface{}) *BotUpdate {
	_u.mutation.SetSettings(v)
	return _u
}

// ClearSettings clears the value of the "settings" field.
func (_u *BotUpdate) ClearSettings() *BotUpdate {
	_u.mutation.ClearSettings()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *BotUpdate) SetMetadata(v map[string]interface{}) *BotUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *BotUpdate) ClearMetadata() *BotUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetFirstHeartbeatTimestamp sets the "first_heartbeat_timestamp" field.
func (_u *BotUpdate) SetFirstHeartbeatTimestamp(v int64) *BotUpdate {
	_u.mutation.ResetFirstHeartbeatTimestamp()
	_u.mutation.SetFirstHeartbeatTimestamp(v)
	return _u
}

// SetNillableFirstHeartbeatTimestamp sets the "first_heartbeat_timestamp" field if the given value is not nil.
func (_u *BotUpdate) SetNillableFirstHeartbeatTimestamp(v *int64) *BotUpdate {
	if v != nil {
		_u.SetFirstHeartbeatTimestamp(*v)
	}
	return _u
}

// AddFirstHeartbeatTimestamp adds value to the "first_heartbeat_timestamp" field.
func (_u *BotUpdate) AddFirstHeartbeatTimestamp(v int64) *BotUpdate {
	_u.mutation.AddFirstHeartbeatTimestamp(v)
	return _u
}

// ClearFirstHeartbeatTimestamp clears the value of the "first_heartbeat_timestamp" field.
func (_u *BotUpdate) ClearFirstHeartbeatTimestamp() *BotUpdate {
	_u.mutation.ClearFirstHeartbeatTimestamp()
	return _u
}

// SetLastHeartbeatTimestamp sets the "last_heartbeat_timestamp" field.
func (_u *BotUpdate) SetLastHeartbeatTimestamp(v int64) *BotUpdate {
	_u.mutation.ResetLastHeartbeatTimestamp()
	_u.mutation.SetLastHeartbeatTimestamp(v)
	return _u
}

// SetNillableLastHeartbeatTimestamp sets the "last_heartbeat_timestamp" field if the given value is not nil.
func (_u *BotUpdate) SetNillableLastHeartbeatTimestamp(v *int64) *BotUpdate {
	if v != nil {
		_u.SetLastHeartbeatTimestamp(*v)
	}
	return _u
}

// AddLastHeartbeatTimestamp adds value to the "last_heartbeat_timestamp" field.
func (_u *BotUpdate) AddLastHeartbeatTimestamp(v int64) *BotUpdate {
	_u.mutation.AddLastHeartbeatTimestamp(v)
	return _u
}

// ClearLastHeartbeatTimestamp clears the value of the "last_heartbeat_timestamp" field.
func (_u *BotUpdate) ClearLastHeartbeatTimestamp() *BotUpdate {
	_u.mutation.ClearLastHeartbeatTimestamp()
	return _u
}

// SetJoinAt sets the "join_at" field.
func (_u *BotUpdate) SetJoinAt(v time.Time) *BotUpdate {
	_u.mutation.SetJoinAt(v)
	return _u
}

// SetNillableJoinAt sets the "join_at" field if the given value is not nil.
func (_u *BotUpdate) SetNillableJoinAt(v *time.Time) *BotUpdate {
	if v != nil {
		_u.SetJoinAt(*v)
	}
	return _u
}

// ClearJoinAt clears the value of the "join_at" field.
func (_u *BotUpdate) ClearJoinAt() *BotUpdate {
	_u.mutation.ClearJoinAt()
	return _u
}

// SetDeduplicationKey sets the "deduplication_key" field.
func (_u *BotUpdate) SetDeduplicationKey(v string) *BotUpdate {
	_u.mutation.SetDeduplicationKey(v)
	return _u
}

// SetNillableDeduplicationKey sets the "deduplication_key" field if the given value is not nil.
func (_u *BotUpdate) SetNillableDeduplicationKey(v *string) *BotUpdate {
	if v != nil {
		_u.SetDeduplicationKey(*v)
	}
	return _u
}

// ClearDeduplicationKey clears the value of the "deduplication_key" field.
func (_u *BotUpdate) ClearDeduplicationKey() *BotUpdate {
	_u.mutation.ClearDeduplicationKey()
	return _u
}

// SetVersion sets the "version" field.
func (_u *BotUpdate) SetVersion(v int64) *BotUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *BotUpdate) SetNillableVersion(v *int64) *BotUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *BotUpdate) AddVersion(v int64) *BotUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BotUpdate) SetUpdatedAt(v time.Time) *BotUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddEventIDs adds the "events" edge to the BotEvent entity by IDs.
func (_u *BotUpdate) AddEventIDs(ids ...string) *BotUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the BotEvent entity.
func (_u *BotUpdate) AddEvents(v ...*BotEvent) *BotUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddRecordingIDs adds the "recordings" edge to the Recording entity by IDs.
func (_u *BotUpdate) AddRecordingIDs(ids ...string) *BotUpdate {
	_u.mutation.AddRecordingIDs(ids...)
	return _u
}

// AddRecordings adds the "recordings" edges to the Recording entity.
func (_u *BotUpdate) AddRecordings(v ...*Recording) *BotUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRecordingIDs(ids...)
}

// AddParticipantIDs adds the "participants" edge to the Participant entity by IDs.
func (_u *BotUpdate) AddParticipantIDs(ids ...string) *BotUpdate {
	_u.mutation.AddParticipantIDs(ids...)
	return _u
}

// AddParticipants adds the "participants" edges to the Participant entity.
func (_u *BotUpdate) AddParticipants(v ...*Participant) *BotUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddParticipantIDs(ids...)
}

// AddChatMessageIDs adds the "chat_messages" edge to the ChatMessage entity by IDs.
func (_u *BotUpdate) AddChatMessageIDs(ids ...string) *BotUpdate {
	_u.mutation.AddChatMessageIDs(ids...)
	return _u
}

// AddChatMessages adds the "chat_messages" edges to the ChatMessage entity.
func (_u *BotUpdate) AddChatMessages(v ...*ChatMessage) *BotUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChatMessageIDs(ids...)
}

// Mutation returns the BotMutation object of the builder.
func (_u *BotUpdate) Mutation() *BotMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the BotEvent entity.
func (_u *BotUpdate) ClearEvents() *BotUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to BotEvent entities by IDs.
func (_u *BotUpdate) RemoveEventIDs(ids ...string) *BotUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to BotEvent entities.
func (_u *BotUpdate) RemoveEvents(v ...*BotEvent) *BotUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearRecordings clears all "recordings" edges to the Recording entity.
func (_u *BotUpdate) ClearRecordings() *BotUpdate {
	_u.mutation.ClearRecordings()
	return _u
}

// RemoveRecordingIDs removes the "recordings" edge to Recording entities by IDs.
func (_u *BotUpdate) RemoveRecordingIDs(ids ...string) *BotUpdate {
	_u.mutation.RemoveRecordingIDs(ids...)
	return _u
}

// RemoveRecordings removes "recordings" edges to Recording entities.
func (_u *BotUpdate) RemoveRecordings(v ...*Recording) *BotUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRecordingIDs(ids...)
}

// ClearParticipants clears all "participants" edges to the Participant entity.
func (_u *BotUpdate) ClearParticipants() *BotUpdate {
	_u.mutation.ClearParticipants()
	return _u
}

// RemoveParticipantIDs removes the "participants" edge to Participant entities by IDs.
func (_u *BotUpdate) RemoveParticipantIDs(ids ...string) *BotUpdate {
	_u.mutation.RemoveParticipantIDs(ids...)
	return _u
}

// RemoveParticipants removes "participants" edges to Participant entities.
func (_u *BotUpdate) RemoveParticipants(v ...*Participant) *BotUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveParticipantIDs(ids...)
}

// ClearChatMessages clears all "chat_messages" edges to the ChatMessage entity.
func (_u *BotUpdate) ClearChatMessages() *BotUpdate {
	_u.mutation.ClearChatMessages()
	return _u
}

// RemoveChatMessageIDs removes the "chat_messages" edge to ChatMessage entities by IDs.
func (_u *BotUpdate) RemoveChatMessageIDs(ids ...string) *BotUpdate {
	_u.mutation.RemoveChatMessageIDs(ids...)
	return _u
}

// RemoveChatMessages removes "chat_messages" edges to ChatMessage entities.
func (_u *BotUpdate) RemoveChatMessages(v ...*ChatMessage) *BotUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChatMessageIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BotUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BotUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := bot.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BotUpdate) check() error {
	if v, ok := _u.mutation.SessionKind(); ok {
		if err := bot.SessionKindValidator(v); err != nil {
			return &ValidationError{Name: "session_kind", err: fmt.Errorf(`ent: validator failed for field "Bot.session_kind": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Bot.project"`)
	}
	return nil
}

func (_u *BotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bot.Table, bot.Columns, sqlgraph.NewFieldSpec(bot.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(bot.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.MeetingURL(); ok {
		_spec.SetField(bot.FieldMeetingURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(bot.FieldState, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedState(); ok {
		_spec.AddField(bot.FieldState, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionKind(); ok {
		_spec.SetField(bot.FieldSessionKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Settings(); ok {
		_spec.SetField(bot.FieldSettings, field.TypeJSON, value)
	}
	if _u.mutation.SettingsCleared() {
		_spec.ClearField(bot.FieldSettings, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(bot.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(bot.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.FirstHeartbeatTimestamp(); ok {
		_spec.SetField(bot.FieldFirstHeartbeatTimestamp, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFirstHeartbeatTimestamp(); ok {
		_spec.AddField(bot.FieldFirstHeartbeatTimestamp, field.TypeInt64, value)
	}
	if _u.mutation.FirstHeartbeatTimestampCleared() {
		_spec.ClearField(bot.FieldFirstHeartbeatTimestamp, field.TypeInt64)
	}
	if value, ok := _u.mutation.LastHeartbeatTimestamp(); ok {
		_spec.SetField(bot.FieldLastHeartbeatTimestamp, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLastHeartbeatTimestamp(); ok {
		_spec.AddField(bot.FieldLastHeartbeatTimestamp, field.TypeInt64, value)
	}
	if _u.mutation.LastHeartbeatTimestampCleared() {
		_spec.ClearField(bot.FieldLastHeartbeatTimestamp, field.TypeInt64)
	}
	if value, ok := _u.mutation.JoinAt(); ok {
		_spec.SetField(bot.FieldJoinAt, field.TypeTime, value)
	}
	if _u.mutation.JoinAtCleared() {
		_spec.ClearField(bot.FieldJoinAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeduplicationKey(); ok {
		_spec.SetField(bot.FieldDeduplicationKey, field.TypeString, value)
	}
	if _u.mutation.DeduplicationKeyCleared() {
		_spec.ClearField(bot.FieldDeduplicationKey, field.TypeString)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(bot.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(bot.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(bot.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bot.EventsTable,
			Columns: []string{bot.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(botevent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bot.EventsTable,
			Columns: []string{bot.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(botevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bot.EventsTable,
			Columns: []string{bot.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(botevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RecordingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bot.RecordingsTable,
			Columns: []string{bot.RecordingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recording.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRecordingsIDs(); len(nodes) > 0 && !_u.mutation.RecordingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bot.RecordingsTable,
			Columns: []string{bot.RecordingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recording.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecordingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bot.RecordingsTable,
			Columns: []string{bot.RecordingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recording.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ParticipantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bot.ParticipantsTable,
			Columns: []string{bot.ParticipantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(participant.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedParticipantsIDs(); len(nodes) > 0 && !_u.mutation.ParticipantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bot.ParticipantsTable,
			Columns: []string{bot.ParticipantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(participant.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParticipantsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bot.ParticipantsTable,
			Columns: []string{bot.ParticipantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(participant.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChatMessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bot.ChatMessagesTable,
			Columns: []string{bot.ChatMessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChatMessagesIDs(); len(nodes) > 0 && !_u.mutation.ChatMessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bot.ChatMessagesTable,
			Columns: []string{bot.ChatMessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChatMessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bot.ChatMessagesTable,
			Columns: []string{bot.ChatMessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BotUpdateOne is the builder for updating a single Bot entity.
type BotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BotMutation
}

// SetName sets the "name" field.
func (_u *BotUpdateOne) SetName(v string) *BotUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BotUpdateOne) SetNillableName(v *string) *BotUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetMeetingURL sets the "meeting_url" field.
func (_u *BotUpdateOne) SetMeetingURL(v string) *BotUpdateOne {
	_u.mutation.SetMeetingURL(v)
	return _u
}

// SetNillableMeetingURL sets the "meeting_url" field if the given value is not nil.
func (_u *BotUpdateOne) SetNillableMeetingURL(v *string) *BotUpdateOne {
	if v != nil {
		_u.SetMeetingURL(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *BotUpdateOne) SetState(v lifecycle.BotState) *BotUpdateOne {
	_u.mutation.ResetState()
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *BotUpdateOne) SetNillableState(v *lifecycle.BotState) *BotUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// AddState adds value to the "state" field.
func (_u *BotUpdateOne) AddState(v lifecycle.BotState) *BotUpdateOne {
	_u.mutation.AddState(v)
	return _u
}

// SetSessionKind sets the "session_kind" field.
func (_u *BotUpdateOne) SetSessionKind(v lifecycle.SessionKind) *BotUpdateOne {
	_u.mutation.SetSessionKind(v)
	return _u
}

// SetNillableSessionKind sets the "session_kind" field if the given value is not nil.
func (_u *BotUpdateOne) SetNillableSessionKind(v *lifecycle.SessionKind) *BotUpdateOne {
	if v != nil {
		_u.SetSessionKind(*v)
	}
	return _u
}

// SetSettings sets the "settings" field.
func (_u *BotUpdateOne) SetSettings(v map[string]interface{}) *BotUpdateOne {
	_u.mutation.SetSettings(v)
	return _u
}

// ClearSettings clears the value of the "settings" field.
func (_u *BotUpdateOne) ClearSettings() *BotUpdateOne {
	_u.mutation.ClearSettings()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *BotUpdateOne) SetMetadata(v map[string]interface{}) *BotUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *BotUpdateOne) ClearMetadata() *BotUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetFirstHeartbeatTimestamp sets the "first_heartbeat_timestamp" field.
func (_u *BotUpdateOne) SetFirstHeartbeatTimestamp(v int64) *BotUpdateOne {
	_u.mutation.ResetFirstHeartbeatTimestamp()
	_u.mutation.SetFirstHeartbeatTimestamp(v)
	return _u
}

// SetNillableFirstHeartbeatTimestamp sets the "first_heartbeat_timestamp" field if the given value is not nil.
func (_u *BotUpdateOne) SetNillableFirstHeartbeatTimestamp(v *int64) *BotUpdateOne {
	if v != nil {
		_u.SetFirstHeartbeatTimestamp(*v)
	}
	return _u
}

// AddFirstHeartbeatTimestamp adds value to the "first_heartbeat_timestamp" field.
func (_u *BotUpdateOne) AddFirstHeartbeatTimestamp(v int64) *BotUpdateOne {
	_u.mutation.AddFirstHeartbeatTimestamp(v)
	return _u
}

// ClearFirstHeartbeatTimestamp clears the value of the "first_heartbeat_timestamp" field.
func (_u *BotUpdateOne) ClearFirstHeartbeatTimestamp() *BotUpdateOne {
	_u.mutation.ClearFirstHeartbeatTimestamp()
	return _u
}

// SetLastHeartbeatTimestamp sets the "last_heartbeat_timestamp" field.
func (_u *BotUpdateOne) SetLastHeartbeatTimestamp(v int64) *BotUpdateOne {
	_u.mutation.ResetLastHeartbeatTimestamp()
	_u.mutation.SetLastHeartbeatTimestamp(v)
	return _u
}

// SetNillableLastHeartbeatTimestamp sets the "last_heartbeat_timestamp" field if the given value is not nil.
func (_u *BotUpdateOne) SetNillableLastHeartbeatTimestamp(v *int64) *BotUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatTimestamp(*v)
	}
	return _u
}

// AddLastHeartbeatTimestamp adds value to the "last_heartbeat_timestamp" field.
func (_u *BotUpdateOne) AddLastHeartbeatTimestamp(v int64) *BotUpdateOne {
	_u.mutation.AddLastHeartbeatTimestamp(v)
	return _u
}

// ClearLastHeartbeatTimestamp clears the value of the "last_heartbeat_timestamp" field.
func (_u *BotUpdateOne) ClearLastHeartbeatTimestamp() *BotUpdateOne {
	_u.mutation.ClearLastHeartbeatTimestamp()
	return _u
}

// SetJoinAt sets the "join_at" field.
func (_u *BotUpdateOne) SetJoinAt(v time.Time) *BotUpdateOne {
	_u.mutation.SetJoinAt(v)
	return _u
}

// SetNillableJoinAt sets the "join_at" field if the given value is not nil.
func (_u *BotUpdateOne) SetNillableJoinAt(v *time.Time) *BotUpdateOne {
	if v != nil {
		_u.SetJoinAt(*v)
	}
	return _u
}

// ClearJoinAt clears the value of the "join_at" field.
func (_u *BotUpdateOne) ClearJoinAt() *BotUpdateOne {
	_u.mutation.ClearJoinAt()
	return _u
}

// SetDeduplicationKey sets the "deduplication_key" field.
func (_u *BotUpdateOne) SetDeduplicationKey(v string) *BotUpdateOne {
	_u.mutation.SetDeduplicationKey(v)
	return _u
}

// SetNillableDeduplicationKey sets the "deduplication_key" field if the given value is not nil.
func (_u *BotUpdateOne) SetNillableDeduplicationKey(v *string) *BotUpdateOne {
	if v != nil {
		_u.SetDeduplicationKey(*v)
	}
	return _u
}

// ClearDeduplicationKey clears the value of the "deduplication_key" field.
func (_u *BotUpdateOne) ClearDeduplicationKey() *BotUpdateOne {
	_u.mutation.ClearDeduplicationKey()
	return _u
}

// SetVersion sets the "version" field.
func (_u *BotUpdateOne) SetVersion(v int64) *BotUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *BotUpdateOne) SetNillableVersion(v *int64) *BotUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *BotUpdateOne) AddVersion(v int64) *BotUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BotUpdateOne) SetUpdatedAt(v time.Time) *BotUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddEventIDs adds the "events" edge to the BotEvent entity by IDs.
func (_u *BotUpdateOne) AddEventIDs(ids ...string) *BotUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the BotEvent entity.
func (_u *BotUpdateOne) AddEvents(v ...*BotEvent) *BotUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddRecordingIDs adds the "recordings" edge to the Recording entity by IDs.
func (_u *BotUpdateOne) AddRecordingIDs(ids ...string) *BotUpdateOne {
	_u.mutation.AddRecordingIDs(ids...)
	return _u
}

// AddRecordings adds the "recordings" edges to the Recording entity.
func (_u *BotUpdateOne) AddRecordings(v ...*Recording) *BotUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRecordingIDs(ids...)
}

// AddParticipantIDs adds the "participants" edge to the Participant entity by IDs.
func (_u *BotUpdateOne) AddParticipantIDs(ids ...string) *BotUpdateOne {
	_u.mutation.AddParticipantIDs(ids...)
	return _u
}

// AddParticipants adds the "participants" edges to the Participant entity.
func (_u *BotUpdateOne) AddParticipants(v ...*Participant) *BotUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddParticipantIDs(ids...)
}

// AddChatMessageIDs adds the "chat_messages" edge to the ChatMessage entity by IDs.
func (_u *BotUpdateOne) AddChatMessageIDs(ids ...string) *BotUpdateOne {
	_u.mutation.AddChatMessageIDs(ids...)
	return _u
}

// AddChatMessages adds the "chat_messages" edges to the ChatMessage entity.
func (_u *BotUpdateOne) AddChatMessages(v ...*ChatMessage) *BotUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChatMessageIDs(ids...)
}

// Mutation returns the BotMutation object of the builder.
func (_u *BotUpdateOne) Mutation() *BotMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the BotEvent entity.
func (_u *BotUpdateOne) ClearEvents() *BotUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to BotEvent entities by IDs.
func (_u *BotUpdateOne) RemoveEventIDs(ids ...string) *BotUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to BotEvent entities.
func (_u *BotUpdateOne) RemoveEvents(v ...*BotEvent) *BotUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearRecordings clears all "recordings" edges to the Recording entity.
func (_u *BotUpdateOne) ClearRecordings() *BotUpdateOne {
	_u.mutation.ClearRecordings()
	return _u
}

// RemoveRecordingIDs removes the "recordings" edge to Recording entities by IDs.
func (_u *BotUpdateOne) RemoveRecordingIDs(ids ...string) *BotUpdateOne {
	_u.mutation.RemoveRecordingIDs(ids...)
	return _u
}

// RemoveRecordings removes "recordings" edges to Recording entities.
func (_u *BotUpdateOne) RemoveRecordings(v ...*Recording) *BotUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRecordingIDs(ids...)
}

// ClearParticipants clears all "participants" edges to the Participant entity.
func (_u *BotUpdateOne) ClearParticipants() *BotUpdateOne {
	_u.mutation.ClearParticipants()
	return _u
}

// RemoveParticipantIDs removes the "participants" edge to Participant entities by IDs.
func (_u *BotUpdateOne) RemoveParticipantIDs(ids ...string) *BotUpdateOne {
	_u.mutation.RemoveParticipantIDs(ids...)
	return _u
}

// RemoveParticipants removes "participants" edges to Participant entities.
func (_u *BotUpdateOne) RemoveParticipants(v ...*Participant) *BotUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveParticipantIDs(ids...)
}

// ClearChatMessages clears all "chat_messages" edges to the ChatMessage entity.
func (_u *BotUpdateOne) ClearChatMessages() *BotUpdateOne {
	_u.mutation.ClearChatMessages()
	return _u
}

// RemoveChatMessageIDs removes the "chat_messages" edge to ChatMessage entities by IDs.
func (_u *BotUpdateOne) RemoveChatMessageIDs(ids ...string) *BotUpdateOne {
	_u.mutation.RemoveChatMessageIDs(ids...)
	return _u
}

// RemoveChatMessages removes "chat_messages" edges to ChatMessage entities.
func (_u *BotUpdateOne) RemoveChatMessages(v ...*ChatMessage) *BotUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChatMessageIDs(ids...)
}

// Where appends a list predicates to the BotUpdate builder.
func (_u *BotUpdateOne) Where(ps ...predicate.Bot) *BotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BotUpdateOne) Select(field string, fields ...string) *BotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Bot entity.
func (_u *BotUpdateOne) Save(ctx context.Context) (*Bot, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BotUpdateOne) SaveX(ctx context.Context) *Bot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BotUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := bot.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BotUpdateOne) check() error {
	if v, ok := _u.mutation.SessionKind(); ok {
		if err := bot.SessionKindValidator(v); err != nil {
			return &ValidationError{Name: "session_kind", err: fmt.Errorf(`ent: validator failed for field "Bot.session_kind": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Bot.project"`)
	}
	return nil
}

func (_u *BotUpdateOne) sqlSave(ctx context.Context) (_node *Bot, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bot.Table, bot.Columns, sqlgraph.NewFieldSpec(bot.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Bot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, bot.FieldID)
		for _, f := range fields {
			if !bot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != bot.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(bot.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.MeetingURL(); ok {
		_spec.SetField(bot.FieldMeetingURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(bot.FieldState, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedState(); ok {
		_spec.AddField(bot.FieldState, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionKind(); ok {
		_spec.SetField(bot.FieldSessionKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Settings(); ok {
		_spec.SetField(bot.FieldSettings, field.TypeJSON, value)
	}
	if _u.mutation.SettingsCleared() {
		_spec.ClearField(bot.FieldSettings, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(bot.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(bot.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.FirstHeartbeatTimestamp(); ok {
		_spec.SetField(bot.FieldFirstHeartbeatTimestamp, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFirstHeartbeatTimestamp(); ok {
		_spec.AddField(bot.FieldFirstHeartbeatTimestamp, field.TypeInt64, value)
	}
	if _u.mutation.FirstHeartbeatTimestampCleared() {
		_spec.ClearField(bot.FieldFirstHeartbeatTimestamp, field.TypeInt64)
	}
	if value, ok := _u.mutation.LastHeartbeatTimestamp(); ok {
		_spec.SetField(bot.FieldLastHeartbeatTimestamp, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLastHeartbeatTimestamp(); ok {
		_spec.AddField(bot.FieldLastHeartbeatTimestamp, field.TypeInt64, value)
	}
	if _u.mutation.LastHeartbeatTimestampCleared() {
		_spec.ClearField(bot.FieldLastHeartbeatTimestamp, field.TypeInt64)
	}
	if value, ok := _u.mutation.JoinAt(); ok {
		_spec.SetField(bot.FieldJoinAt, field.TypeTime, value)
	}
	if _u.mutation.JoinAtCleared() {
		_spec.ClearField(bot.FieldJoinAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeduplicationKey(); ok {
		_spec.SetField(bot.FieldDeduplicationKey, field.TypeString, value)
	}
	if _u.mutation.DeduplicationKeyCleared() {
		_spec.ClearField(bot.FieldDeduplicationKey, field.TypeString)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(bot.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(bot.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(bot.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bot.EventsTable,
			Columns: []string{bot.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(botevent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bot.EventsTable,
			Columns: []string{bot.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(botevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bot.EventsTable,
			Columns: []string{bot.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(botevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RecordingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bot.RecordingsTable,
			Columns: []string{bot.RecordingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recording.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRecordingsIDs(); len(nodes) > 0 && !_u.mutation.RecordingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bot.RecordingsTable,
			Columns: []string{bot.RecordingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recording.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecordingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bot.RecordingsTable,
			Columns: []string{bot.RecordingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recording.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ParticipantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bot.ParticipantsTable,
			Columns: []string{bot.ParticipantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(participant.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedParticipantsIDs(); len(nodes) > 0 && !_u.mutation.ParticipantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bot.ParticipantsTable,
			Columns: []string{bot.ParticipantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(participant.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParticipantsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bot.ParticipantsTable,
			Columns: []string{bot.ParticipantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(participant.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChatMessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bot.ChatMessagesTable,
			Columns: []string{bot.ChatMessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChatMessagesIDs(); len(nodes) > 0 && !_u.mutation.ChatMessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bot.ChatMessagesTable,
			Columns: []string{bot.ChatMessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChatMessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bot.ChatMessagesTable,
			Columns: []string{bot.ChatMessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Bot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
