// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stenobot-io/stenobot/ent/bot"
	"github.com/stenobot-io/stenobot/ent/botevent"
	"github.com/stenobot-io/stenobot/ent/chatmessage"
	"github.com/stenobot-io/stenobot/ent/participant"
	"github.com/stenobot-io/stenobot/ent/project"
	"github.com/stenobot-io/stenobot/ent/recording"
	"github.com/stenobot-io/stenobot/pkg/lifecycle"
)

// BotCreate is the builder for creating a Bot entity.
type BotCreate struct {
	config
	mutation *BotMutation
	hooks    []Hook
}

// SetProjectID sets the "project_id" field.
func (_c *BotCreate) SetProjectID(v string) *BotCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *BotCreate) SetName(v string) *BotCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_c *BotCreate) SetNillableName(v *string) *BotCreate {
	if v != nil {
		_c.SetName(*v)
	}
	return _c
}

// SetMeetingURL sets the "meeting_url" field.
func (_c *BotCreate) SetMeetingURL(v string) *BotCreate {
	_c.mutation.SetMeetingURL(v)
	return _c
}

// SetState sets the "state" field.
func (_c *BotCreate) SetState(v lifecycle.BotState) *BotCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *BotCreate) SetNillableState(v *lifecycle.BotState) *BotCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetSessionKind sets the "session_kind" field.
func (_c *BotCreate) SetSessionKind(v lifecycle.SessionKind) *BotCreate {
	_c.mutation.SetSessionKind(v)
	return _c
}

// SetNillableSessionKind sets the "session_kind" field if the given value is not nil.
func (_c *BotCreate) SetNillableSessionKind(v *lifecycle.SessionKind) *BotCreate {
	if v != nil {
		_c.SetSessionKind(*v)
	}
	return _c
}

// SetSettings sets the "settings" field.
func (_c *BotCreate) SetSettings(v map[string]interface{}) *BotCreate {
	_c.mutation.SetSettings(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *BotCreate) SetMetadata(v map[string]interface{}) *BotCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetFirstHeartbeatTimestamp sets the "first_heartbeat_timestamp" field.
func (_c *BotCreate) SetFirstHeartbeatTimestamp(v int64) *BotCreate {
	_c.mutation.SetFirstHeartbeatTimestamp(v)
	return _c
}

// SetNillableFirstHeartbeatTimestamp sets the "first_heartbeat_timestamp" field if the given value is not nil.
func (_c *BotCreate) SetNillableFirstHeartbeatTimestamp(v *int64) *BotCreate {
	if v != nil {
		_c.SetFirstHeartbeatTimestamp(*v)
	}
	return _c
}

// SetLastHeartbeatTimestamp sets the "last_heartbeat_timestamp" field.
func (_c *BotCreate) SetLastHeartbeatTimestamp(v int64) *BotCreate {
	_c.mutation.SetLastHeartbeatTimestamp(v)
	return _c
}

// SetNillableLastHeartbeatTimestamp sets the "last_heartbeat_timestamp" field if the given value is not nil.
func (_c *BotCreate) SetNillableLastHeartbeatTimestamp(v *int64) *BotCreate {
	if v != nil {
		_c.SetLastHeartbeatTimestamp(*v)
	}
	return _c
}

// SetJoinAt sets the "join_at" field.
func (_c *BotCreate) SetJoinAt(v time.Time) *BotCreate {
	_c.mutation.SetJoinAt(v)
	return _c
}

// SetNillableJoinAt sets the "join_at" field if the given value is not nil.
func (_c *BotCreate) SetNillableJoinAt(v *time.Time) *BotCreate {
	if v != nil {
		_c.SetJoinAt(*v)
	}
	return _c
}

// SetDeduplicationKey sets the "deduplication_key" field.
func (_c *BotCreate) SetDeduplicationKey(v string) *BotCreate {
	_c.mutation.SetDeduplicationKey(v)
	return _c
}

// SetNillableDeduplicationKey sets the "deduplication_key" field if the given value is not nil.
func (_c *BotCreate) SetNillableDeduplicationKey(v *string) *BotCreate {
	if v != nil {
		_c.SetDeduplicationKey(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *BotCreate) SetVersion(v int64) *BotCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *BotCreate) SetNillableVersion(v *int64) *BotCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BotCreate) SetCreatedAt(v time.Time) *BotCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BotCreate) SetNillableCreatedAt(v *time.Time) *BotCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BotCreate) SetUpdatedAt(v time.Time) *BotCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BotCreate) SetNillableUpdatedAt(v *time.Time) *BotCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BotCreate) SetID(v string) *BotCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *BotCreate) SetProject(v *Project) *BotCreate {
	return _c.SetProjectID(v.ID)
}

// AddEventIDs adds the "events" edge to the BotEvent entity by IDs.
func (_c *BotCreate) AddEventIDs(ids ...string) *BotCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the BotEvent entity.
func (_c *BotCreate) AddEvents(v ...*BotEvent) *BotCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// AddRecordingIDs adds the "recordings" edge to the Recording entity by IDs.
func (_c *BotCreate) AddRecordingIDs(ids ...string) *BotCreate {
	_c.mutation.AddRecordingIDs(ids...)
	return _c
}

// AddRecordings adds the "recordings" edges to the Recording entity.
func (_c *BotCreate) AddRecordings(v ...*Recording) *BotCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRecordingIDs(ids...)
}

// AddParticipantIDs adds the "participants" edge to the Participant entity by IDs.
func (_c *BotCreate) AddParticipantIDs(ids ...string) *BotCreate {
	_c.mutation.AddParticipantIDs(ids...)
	return _c
}

// AddParticipants adds the "participants" edges to the Participant entity.
func (_c *BotCreate) AddParticipants(v ...*Participant) *BotCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddParticipantIDs(ids...)
}

// AddChatMessageIDs adds the "chat_messages" edge to the ChatMessage entity by IDs.
func (_c *BotCreate) AddChatMessageIDs(ids ...string) *BotCreate {
	_c.mutation.AddChatMessageIDs(ids...)
	return _c
}

// AddChatMessages adds the "chat_messages" edges to the ChatMessage entity.
func (_c *BotCreate) AddChatMessages(v ...*ChatMessage) *BotCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddChatMessageIDs(ids...)
}

// Mutation returns the BotMutation object of the builder.
func (_c *BotCreate) Mutation() *BotMutation {
	return _c.mutation
}

// Save creates the Bot in the database.
func (_c *BotCreate) Save(ctx context.Context) (*Bot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BotCreate) SaveX(ctx context.Context) *Bot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BotCreate) defaults() {
	if _, ok := _c.mutation.Name(); !ok {
		v := bot.DefaultName
		_c.mutation.SetName(v)
	}
	if _, ok := _c.mutation.State(); !ok {
		v := bot.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.SessionKind(); !ok {
		v := bot.DefaultSessionKind
		_c.mutation.SetSessionKind(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := bot.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := bot.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := bot.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BotCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "Bot.project_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Bot.name"`)}
	}
	if _, ok := _c.mutation.MeetingURL(); !ok {
		return &ValidationError{Name: "meeting_url", err: errors.New(`ent: missing required field "Bot.meeting_url"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "Bot.state"`)}
	}
	if _, ok := _c.mutation.SessionKind(); !ok {
		return &ValidationError{Name: "session_kind", err: errors.New(`ent: missing required field "Bot.session_kind"`)}
	}
	if v, ok := _c.mutation.SessionKind(); ok {
		if err := bot.SessionKindValidator(v); err != nil {
			return &ValidationError{Name: "session_kind", err: fmt.Errorf(`ent: validator failed for field "Bot.session_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "Bot.version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Bot.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Bot.updated_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "Bot.project"`)}
	}
	return nil
}

func (_c *BotCreate) sqlSave(ctx context.Context) (*Bot, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Bot.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BotCreate) createSpec() (*Bot, *sqlgraph.CreateSpec) {
	var (
		_node = &Bot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(bot.Table, sqlgraph.NewFieldSpec(bot.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(bot.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.MeetingURL(); ok {
		_spec.SetField(bot.FieldMeetingURL, field.TypeString, value)
		_node.MeetingURL = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(bot.FieldState, field.TypeInt, value)
		_node.State = value
	}
	if value, ok := _c.mutation.SessionKind(); ok {
		_spec.SetField(bot.FieldSessionKind, field.TypeEnum, value)
		_node.SessionKind = value
	}
	if value, ok := _c.mutation.Settings(); ok {
		_spec.SetField(bot.FieldSettings, field.TypeJSON, value)
		_node.Settings = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(bot.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.FirstHeartbeatTimestamp(); ok {
		_spec.SetField(bot.FieldFirstHeartbeatTimestamp, field.TypeInt64, value)
		_node.FirstHeartbeatTimestamp = &value
	}
	if value, ok := _c.mutation.LastHeartbeatTimestamp(); ok {
		_spec.SetField(bot.FieldLastHeartbeatTimestamp, field.TypeInt64, value)
		_node.LastHeartbeatTimestamp = &value
	}
	if value, ok := _c.mutation.JoinAt(); ok {
		_spec.SetField(bot.FieldJoinAt, field.TypeTime, value)
		_node.JoinAt = &value
	}
	if value, ok := _c.mutation.DeduplicationKey(); ok {
		_spec.SetField(bot.FieldDeduplicationKey, field.TypeString, value)
		_node.DeduplicationKey = &value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(bot.FieldVersion, field.TypeInt64, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(bot.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(bot.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bot.ProjectTable,
			Columns: []string{bot.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProjectID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RecordingsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ParticipantsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ChatMessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BotCreateBulk is the builder for creating many Bot entities in bulk.
type BotCreateBulk struct {
	config
	err      error
	builders []*BotCreate
}

// Save creates the Bot entities in the database.
func (_c *BotCreateBulk) Save(ctx context.Context) ([]*Bot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Bot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BotMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *BotCreateBulk) SaveX(ctx context.Context) []*Bot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
