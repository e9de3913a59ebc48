// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stenobot-io/stenobot/ent/participant"
	"github.com/stenobot-io/stenobot/ent/predicate"
)

// ParticipantUpdate is the builder for updating Participant entities.
type ParticipantUpdate struct {
	config
	hooks    []Hook
	mutation *ParticipantMutation
}

// Where appends a list predicates to the ParticipantUpdate builder.
func (_u *ParticipantUpdate) Where(ps ...predicate.Participant) *ParticipantUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPlatformUUID sets the "platform_uuid" field.
func (_u *ParticipantUpdate) SetPlatformUUID(v string) *ParticipantUpdate {
	_u.mutation.SetPlatformUUID(v)
	return _u
}

// SetNillablePlatformUUID sets the "platform_uuid" field if the given value is not nil.
func (_u *ParticipantUpdate) SetNillablePlatformUUID(v *string) *ParticipantUpdate {
	if v != nil {
		_u.SetPlatformUUID(*v)
	}
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *ParticipantUpdate) SetFullName(v string) *ParticipantUpdate {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *ParticipantUpdate) SetNillableFullName(v *string) *ParticipantUpdate {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetIsHost sets the "is_host" field.
func (_u *ParticipantUpdate) SetIsHost(v bool) *ParticipantUpdate {
	_u.mutation.SetIsHost(v)
	return _u
}

// SetNillableIsHost sets the "is_host" field if the given value is not nil.
func (_u *ParticipantUpdate) SetNillableIsHost(v *bool) *ParticipantUpdate {
	if v != nil {
		_u.SetIsHost(*v)
	}
	return _u
}

// Mutation returns the ParticipantMutation object of the builder.
func (_u *ParticipantUpdate) Mutation() *ParticipantMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ParticipantUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ParticipantUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ParticipantUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ParticipantUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ParticipantUpdate) check() error {
	if _u.mutation.BotCleared() && len(_u.mutation.BotIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Participant.bot"`)
	}
	return nil
}

func (_u *ParticipantUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(participant.Table, participant.Columns, sqlgraph.NewFieldSpec(participant.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PlatformUUID(); ok {
		_spec.SetField(participant.FieldPlatformUUID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(participant.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsHost(); ok {
		_spec.SetField(participant.FieldIsHost, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{participant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ParticipantUpdateOne is the builder for updating a single Participant entity.
type ParticipantUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ParticipantMutation
}

// SetPlatformUUID sets the "platform_uuid" field.
func (_u *ParticipantUpdateOne) SetPlatformUUID(v string) *ParticipantUpdateOne {
	_u.mutation.SetPlatformUUID(v)
	return _u
}

// SetNillablePlatformUUID sets the "platform_uuid" field if the given value is not nil.
func (_u *ParticipantUpdateOne) SetNillablePlatformUUID(v *string) *ParticipantUpdateOne {
	if v != nil {
		_u.SetPlatformUUID(*v)
	}
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *ParticipantUpdateOne) SetFullName(v string) *ParticipantUpdateOne {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *ParticipantUpdateOne) SetNillableFullName(v *string) *ParticipantUpdateOne {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetIsHost sets the "is_host" field.
func (_u *ParticipantUpdateOne) SetIsHost(v bool) *ParticipantUpdateOne {
	_u.mutation.SetIsHost(v)
	return _u
}

// SetNillableIsHost sets the "is_host" field if the given value is not nil.
func (_u *ParticipantUpdateOne) SetNillableIsHost(v *bool) *ParticipantUpdateOne {
	if v != nil {
		_u.SetIsHost(*v)
	}
	return _u
}

// Mutation returns the ParticipantMutation object of the builder.
func (_u *ParticipantUpdateOne) Mutation() *ParticipantMutation {
	return _u.mutation
}

// Where appends a list predicates to the ParticipantUpdate builder.
func (_u *ParticipantUpdateOne) Where(ps ...predicate.Participant) *ParticipantUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ParticipantUpdateOne) Select(field string, fields ...string) *ParticipantUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Participant entity.
func (_u *ParticipantUpdateOne) Save(ctx context.Context) (*Participant, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ParticipantUpdateOne) SaveX(ctx context.Context) *Participant {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ParticipantUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ParticipantUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ParticipantUpdateOne) check() error {
	if _u.mutation.BotCleared() && len(_u.mutation.BotIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Participant.bot"`)
	}
	return nil
}

func (_u *ParticipantUpdateOne) sqlSave(ctx context.Context) (_node *Participant, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(participant.Table, participant.Columns, sqlgraph.NewFieldSpec(participant.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Participant.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, participant.FieldID)
		for _, f := range fields {
			if !participant.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != participant.FieldID {
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
	if value, ok := _u.mutation.PlatformUUID(); ok {
		_spec.SetField(participant.FieldPlatformUUID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(participant.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsHost(); ok {
		_spec.SetField(participant.FieldIsHost, field.TypeBool, value)
	}
	_node = &Participant{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{participant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
