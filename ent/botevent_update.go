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
	"github.com/stenobot-io/stenobot/ent/botevent"
	"github.com/stenobot-io/stenobot/ent/predicate"
)

// BotEventUpdate is the builder for updating BotEvent entities.
type BotEventUpdate struct {
	config
	hooks    []Hook
	mutation *BotEventMutation
}

// Where appends a list predicates to the BotEventUpdate builder.
func (_u *BotEventUpdate) Where(ps ...predicate.BotEvent) *BotEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRequestedActionTakenAt sets the "requested_action_taken_at" field.
func (_u *BotEventUpdate) SetRequestedActionTakenAt(v time.Time) *BotEventUpdate {
	_u.mutation.SetRequestedActionTakenAt(v)
	return _u
}

// SetNillableRequestedActionTakenAt sets the "requested_action_taken_at" field if the given value is not nil.
func (_u *BotEventUpdate) SetNillableRequestedActionTakenAt(v *time.Time) *BotEventUpdate {
	if v != nil {
		_u.SetRequestedActionTakenAt(*v)
	}
	return _u
}

// ClearRequestedActionTakenAt clears the value of the "requested_action_taken_at" field.
func (_u *BotEventUpdate) ClearRequestedActionTakenAt() *BotEventUpdate {
	_u.mutation.ClearRequestedActionTakenAt()
	return _u
}

// Mutation returns the BotEventMutation object of the builder.
func (_u *BotEventUpdate) Mutation() *BotEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BotEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BotEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BotEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BotEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BotEventUpdate) check() error {
	if _u.mutation.BotCleared() && len(_u.mutation.BotIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BotEvent.bot"`)
	}
	return nil
}

func (_u *BotEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(botevent.Table, botevent.Columns, sqlgraph.NewFieldSpec(botevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.EventSubKindCleared() {
		_spec.ClearField(botevent.FieldEventSubKind, field.TypeEnum)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(botevent.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.RequestedActionTakenAt(); ok {
		_spec.SetField(botevent.FieldRequestedActionTakenAt, field.TypeTime, value)
	}
	if _u.mutation.RequestedActionTakenAtCleared() {
		_spec.ClearField(botevent.FieldRequestedActionTakenAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{botevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BotEventUpdateOne is the builder for updating a single BotEvent entity.
type BotEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BotEventMutation
}

// SetRequestedActionTakenAt sets the "requested_action_taken_at" field.
func (_u *BotEventUpdateOne) SetRequestedActionTakenAt(v time.Time) *BotEventUpdateOne {
	_u.mutation.SetRequestedActionTakenAt(v)
	return _u
}

// SetNillableRequestedActionTakenAt sets the "requested_action_taken_at" field if the given value is not nil.
func (_u *BotEventUpdateOne) SetNillableRequestedActionTakenAt(v *time.Time) *BotEventUpdateOne {
	if v != nil {
		_u.SetRequestedActionTakenAt(*v)
	}
	return _u
}

// ClearRequestedActionTakenAt clears the value of the "requested_action_taken_at" field.
func (_u *BotEventUpdateOne) ClearRequestedActionTakenAt() *BotEventUpdateOne {
	_u.mutation.ClearRequestedActionTakenAt()
	return _u
}

// Mutation returns the BotEventMutation object of the builder.
func (_u *BotEventUpdateOne) Mutation() *BotEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the BotEventUpdate builder.
func (_u *BotEventUpdateOne) Where(ps ...predicate.BotEvent) *BotEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BotEventUpdateOne) Select(field string, fields ...string) *BotEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BotEvent entity.
func (_u *BotEventUpdateOne) Save(ctx context.Context) (*BotEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BotEventUpdateOne) SaveX(ctx context.Context) *BotEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BotEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BotEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BotEventUpdateOne) check() error {
	if _u.mutation.BotCleared() && len(_u.mutation.BotIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BotEvent.bot"`)
	}
	return nil
}

func (_u *BotEventUpdateOne) sqlSave(ctx context.Context) (_node *BotEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(botevent.Table, botevent.Columns, sqlgraph.NewFieldSpec(botevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BotEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, botevent.FieldID)
		for _, f := range fields {
			if !botevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != botevent.FieldID {
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
	if _u.mutation.EventSubKindCleared() {
		_spec.ClearField(botevent.FieldEventSubKind, field.TypeEnum)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(botevent.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.RequestedActionTakenAt(); ok {
		_spec.SetField(botevent.FieldRequestedActionTakenAt, field.TypeTime, value)
	}
	if _u.mutation.RequestedActionTakenAtCleared() {
		_spec.ClearField(botevent.FieldRequestedActionTakenAt, field.TypeTime)
	}
	_node = &BotEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{botevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
