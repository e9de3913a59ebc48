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
	"github.com/stenobot-io/stenobot/pkg/lifecycle"
)

// BotEventCreate is the builder for creating a BotEvent entity.
type BotEventCreate struct {
	config
	mutation *BotEventMutation
	hooks    []Hook
}

// SetBotID sets the "bot_id" field.
func (_c *BotEventCreate) SetBotID(v string) *BotEventCreate {
	_c.mutation.SetBotID(v)
	return _c
}

// SetOldState sets the "old_state" field.
func (_c *BotEventCreate) SetOldState(v lifecycle.BotState) *BotEventCreate {
	_c.mutation.SetOldState(v)
	return _c
}

// SetNewState sets the "new_state" field.
func (_c *BotEventCreate) SetNewState(v lifecycle.BotState) *BotEventCreate {
	_c.mutation.SetNewState(v)
	return _c
}

// SetEventKind sets the "event_kind" field.
func (_c *BotEventCreate) SetEventKind(v lifecycle.EventKind) *BotEventCreate {
	_c.mutation.SetEventKind(v)
	return _c
}

// SetEventSubKind sets the "event_sub_kind" field.
func (_c *BotEventCreate) SetEventSubKind(v lifecycle.EventSubKind) *BotEventCreate {
	_c.mutation.SetEventSubKind(v)
	return _c
}

// SetNillableEventSubKind sets the "event_sub_kind" field if the given value is not nil.
func (_c *BotEventCreate) SetNillableEventSubKind(v *lifecycle.EventSubKind) *BotEventCreate {
	if v != nil {
		_c.SetEventSubKind(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *BotEventCreate) SetMetadata(v map[string]interface{}) *BotEventCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BotEventCreate) SetCreatedAt(v time.Time) *BotEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BotEventCreate) SetNillableCreatedAt(v *time.Time) *BotEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetRequestedActionTakenAt sets the "requested_action_taken_at" field.
func (_c *BotEventCreate) SetRequestedActionTakenAt(v time.Time) *BotEventCreate {
	_c.mutation.SetRequestedActionTakenAt(v)
	return _c
}

// SetNillableRequestedActionTakenAt sets the "requested_action_taken_at" field if the given value is not nil.
func (_c *BotEventCreate) SetNillableRequestedActionTakenAt(v *time.Time) *BotEventCreate {
	if v != nil {
		_c.SetRequestedActionTakenAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BotEventCreate) SetID(v string) *BotEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetBot sets the "bot" edge to the Bot entity.
func (_c *BotEventCreate) SetBot(v *Bot) *BotEventCreate {
	return _c.SetBotID(v.ID)
}

// Mutation returns the BotEventMutation object of the builder.
func (_c *BotEventCreate) Mutation() *BotEventMutation {
	return _c.mutation
}

// Save creates the BotEvent in the database.
func (_c *BotEventCreate) Save(ctx context.Context) (*BotEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BotEventCreate) SaveX(ctx context.Context) *BotEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BotEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BotEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BotEventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := botevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BotEventCreate) check() error {
	if _, ok := _c.mutation.BotID(); !ok {
		return &ValidationError{Name: "bot_id", err: errors.New(`ent: missing required field "BotEvent.bot_id"`)}
	}
	if _, ok := _c.mutation.OldState(); !ok {
		return &ValidationError{Name: "old_state", err: errors.New(`ent: missing required field "BotEvent.old_state"`)}
	}
	if _, ok := _c.mutation.NewState(); !ok {
		return &ValidationError{Name: "new_state", err: errors.New(`ent: missing required field "BotEvent.new_state"`)}
	}
	if _, ok := _c.mutation.EventKind(); !ok {
		return &ValidationError{Name: "event_kind", err: errors.New(`ent: missing required field "BotEvent.event_kind"`)}
	}
	if v, ok := _c.mutation.EventKind(); ok {
		if err := botevent.EventKindValidator(v); err != nil {
			return &ValidationError{Name: "event_kind", err: fmt.Errorf(`ent: validator failed for field "BotEvent.event_kind": %w`, err)}
		}
	}
	if v, ok := _c.mutation.EventSubKind(); ok {
		if err := botevent.EventSubKindValidator(v); err != nil {
			return &ValidationError{Name: "event_sub_kind", err: fmt.Errorf(`ent: validator failed for field "BotEvent.event_sub_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BotEvent.created_at"`)}
	}
	if len(_c.mutation.BotIDs()) == 0 {
		return &ValidationError{Name: "bot", err: errors.New(`ent: missing required edge "BotEvent.bot"`)}
	}
	return nil
}

func (_c *BotEventCreate) sqlSave(ctx context.Context) (*BotEvent, error) {
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
			return nil, fmt.Errorf("unexpected BotEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BotEventCreate) createSpec() (*BotEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &BotEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(botevent.Table, sqlgraph.NewFieldSpec(botevent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OldState(); ok {
		_spec.SetField(botevent.FieldOldState, field.TypeInt, value)
		_node.OldState = value
	}
	if value, ok := _c.mutation.NewState(); ok {
		_spec.SetField(botevent.FieldNewState, field.TypeInt, value)
		_node.NewState = value
	}
	if value, ok := _c.mutation.EventKind(); ok {
		_spec.SetField(botevent.FieldEventKind, field.TypeEnum, value)
		_node.EventKind = value
	}
	if value, ok := _c.mutation.EventSubKind(); ok {
		_spec.SetField(botevent.FieldEventSubKind, field.TypeEnum, value)
		_node.EventSubKind = &value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(botevent.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(botevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.RequestedActionTakenAt(); ok {
		_spec.SetField(botevent.FieldRequestedActionTakenAt, field.TypeTime, value)
		_node.RequestedActionTakenAt = &value
	}
	if nodes := _c.mutation.BotIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   botevent.BotTable,
			Columns: []string{botevent.BotColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bot.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.BotID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BotEventCreateBulk is the builder for creating many BotEvent entities in bulk.
type BotEventCreateBulk struct {
	config
	err      error
	builders []*BotEventCreate
}

// Save creates the BotEvent entities in the database.
func (_c *BotEventCreateBulk) Save(ctx context.Context) ([]*BotEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BotEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BotEventMutation)
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
func (_c *BotEventCreateBulk) SaveX(ctx context.Context) []*BotEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BotEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BotEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
