// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stenobot-io/stenobot/ent/chatmessage"
	"github.com/stenobot-io/stenobot/ent/predicate"
)

// ChatMessageUpdate is the builder for updating ChatMessage entities.
type ChatMessageUpdate struct {
	config
	hooks    []Hook
	mutation *ChatMessageMutation
}

// Where appends a list predicates to the ChatMessageUpdate builder.
func (_u *ChatMessageUpdate) Where(ps ...predicate.ChatMessage) *ChatMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetParticipantID sets the "participant_id" field.
func (_u *ChatMessageUpdate) SetParticipantID(v string) *ChatMessageUpdate {
	_u.mutation.SetParticipantID(v)
	return _u
}

// SetNillableParticipantID sets the "participant_id" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableParticipantID(v *string) *ChatMessageUpdate {
	if v != nil {
		_u.SetParticipantID(*v)
	}
	return _u
}

// ClearParticipantID clears the value of the "participant_id" field.
func (_u *ChatMessageUpdate) ClearParticipantID() *ChatMessageUpdate {
	_u.mutation.ClearParticipantID()
	return _u
}

// SetText sets the "text" field.
func (_u *ChatMessageUpdate) SetText(v string) *ChatMessageUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableText(v *string) *ChatMessageUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetTimestampMs sets the "timestamp_ms" field.
func (_u *ChatMessageUpdate) SetTimestampMs(v int64) *ChatMessageUpdate {
	_u.mutation.ResetTimestampMs()
	_u.mutation.SetTimestampMs(v)
	return _u
}

// SetNillableTimestampMs sets the "timestamp_ms" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableTimestampMs(v *int64) *ChatMessageUpdate {
	if v != nil {
		_u.SetTimestampMs(*v)
	}
	return _u
}

// AddTimestampMs adds value to the "timestamp_ms" field.
func (_u *ChatMessageUpdate) AddTimestampMs(v int64) *ChatMessageUpdate {
	_u.mutation.AddTimestampMs(v)
	return _u
}

// Mutation returns the ChatMessageMutation object of the builder.
func (_u *ChatMessageUpdate) Mutation() *ChatMessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChatMessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChatMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatMessageUpdate) check() error {
	if _u.mutation.BotCleared() && len(_u.mutation.BotIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ChatMessage.bot"`)
	}
	return nil
}

func (_u *ChatMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatmessage.Table, chatmessage.Columns, sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ParticipantID(); ok {
		_spec.SetField(chatmessage.FieldParticipantID, field.TypeString, value)
	}
	if _u.mutation.ParticipantIDCleared() {
		_spec.ClearField(chatmessage.FieldParticipantID, field.TypeString)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(chatmessage.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimestampMs(); ok {
		_spec.SetField(chatmessage.FieldTimestampMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTimestampMs(); ok {
		_spec.AddField(chatmessage.FieldTimestampMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChatMessageUpdateOne is the builder for updating a single ChatMessage entity.
type ChatMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChatMessageMutation
}

// SetParticipantID sets the "participant_id" field.
func (_u *ChatMessageUpdateOne) SetParticipantID(v string) *ChatMessageUpdateOne {
	_u.mutation.SetParticipantID(v)
	return _u
}

// SetNillableParticipantID sets the "participant_id" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableParticipantID(v *string) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetParticipantID(*v)
	}
	return _u
}

// ClearParticipantID clears the value of the "participant_id" field.
func (_u *ChatMessageUpdateOne) ClearParticipantID() *ChatMessageUpdateOne {
	_u.mutation.ClearParticipantID()
	return _u
}

// SetText sets the "text" field.
func (_u *ChatMessageUpdateOne) SetText(v string) *ChatMessageUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableText(v *string) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetTimestampMs sets the "timestamp_ms" field.
func (_u *ChatMessageUpdateOne) SetTimestampMs(v int64) *ChatMessageUpdateOne {
	_u.mutation.ResetTimestampMs()
	_u.mutation.SetTimestampMs(v)
	return _u
}

// SetNillableTimestampMs sets the "timestamp_ms" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableTimestampMs(v *int64) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetTimestampMs(*v)
	}
	return _u
}

// AddTimestampMs adds value to the "timestamp_ms" field.
func (_u *ChatMessageUpdateOne) AddTimestampMs(v int64) *ChatMessageUpdateOne {
	_u.mutation.AddTimestampMs(v)
	return _u
}

// Mutation returns the ChatMessageMutation object of the builder.
func (_u *ChatMessageUpdateOne) Mutation() *ChatMessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChatMessageUpdate builder.
func (_u *ChatMessageUpdateOne) Where(ps ...predicate.ChatMessage) *ChatMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChatMessageUpdateOne) Select(field string, fields ...string) *ChatMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChatMessage entity.
func (_u *ChatMessageUpdateOne) Save(ctx context.Context) (*ChatMessage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatMessageUpdateOne) SaveX(ctx context.Context) *ChatMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChatMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatMessageUpdateOne) check() error {
	if _u.mutation.BotCleared() && len(_u.mutation.BotIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ChatMessage.bot"`)
	}
	return nil
}

func (_u *ChatMessageUpdateOne) sqlSave(ctx context.Context) (_node *ChatMessage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatmessage.Table, chatmessage.Columns, sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChatMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chatmessage.FieldID)
		for _, f := range fields {
			if !chatmessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chatmessage.FieldID {
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
	if value, ok := _u.mutation.ParticipantID(); ok {
		_spec.SetField(chatmessage.FieldParticipantID, field.TypeString, value)
	}
	if _u.mutation.ParticipantIDCleared() {
		_spec.ClearField(chatmessage.FieldParticipantID, field.TypeString)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(chatmessage.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimestampMs(); ok {
		_spec.SetField(chatmessage.FieldTimestampMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTimestampMs(); ok {
		_spec.AddField(chatmessage.FieldTimestampMs, field.TypeInt64, value)
	}
	_node = &ChatMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
