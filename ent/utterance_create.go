// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stenobot-io/stenobot/ent/recording"
	"github.com/stenobot-io/stenobot/ent/utterance"
)

// UtteranceCreate is the builder for creating a Utterance entity.
type UtteranceCreate struct {
	config
	mutation *UtteranceMutation
	hooks    []Hook
}

// SetRecordingID sets the "recording_id" field.
func (_c *UtteranceCreate) SetRecordingID(v string) *UtteranceCreate {
	_c.mutation.SetRecordingID(v)
	return _c
}

// SetParticipantID sets the "participant_id" field.
func (_c *UtteranceCreate) SetParticipantID(v string) *UtteranceCreate {
	_c.mutation.SetParticipantID(v)
	return _c
}

// SetNillableParticipantID sets the "participant_id" field if the given value is not nil.
func (_c *UtteranceCreate) SetNillableParticipantID(v *string) *UtteranceCreate {
	if v != nil {
		_c.SetParticipantID(*v)
	}
	return _c
}

// SetTimestampMs sets the "timestamp_ms" field.
func (_c *UtteranceCreate) SetTimestampMs(v int64) *UtteranceCreate {
	_c.mutation.SetTimestampMs(v)
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *UtteranceCreate) SetDurationMs(v int64) *UtteranceCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetTranscription sets the "transcription" field.
func (_c *UtteranceCreate) SetTranscription(v map[string]interface{}) *UtteranceCreate {
	_c.mutation.SetTranscription(v)
	return _c
}

// SetFailureReason sets the "failure_reason" field.
func (_c *UtteranceCreate) SetFailureReason(v string) *UtteranceCreate {
	_c.mutation.SetFailureReason(v)
	return _c
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_c *UtteranceCreate) SetNillableFailureReason(v *string) *UtteranceCreate {
	if v != nil {
		_c.SetFailureReason(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UtteranceCreate) SetCreatedAt(v time.Time) *UtteranceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UtteranceCreate) SetNillableCreatedAt(v *time.Time) *UtteranceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UtteranceCreate) SetUpdatedAt(v time.Time) *UtteranceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UtteranceCreate) SetNillableUpdatedAt(v *time.Time) *UtteranceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UtteranceCreate) SetID(v string) *UtteranceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRecording sets the "recording" edge to the Recording entity.
func (_c *UtteranceCreate) SetRecording(v *Recording) *UtteranceCreate {
	return _c.SetRecordingID(v.ID)
}

// Mutation returns the UtteranceMutation object of the builder.
func (_c *UtteranceCreate) Mutation() *UtteranceMutation {
	return _c.mutation
}

// Save creates the Utterance in the database.
func (_c *UtteranceCreate) Save(ctx context.Context) (*Utterance, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UtteranceCreate) SaveX(ctx context.Context) *Utterance {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UtteranceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UtteranceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UtteranceCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := utterance.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := utterance.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UtteranceCreate) check() error {
	if _, ok := _c.mutation.RecordingID(); !ok {
		return &ValidationError{Name: "recording_id", err: errors.New(`ent: missing required field "Utterance.recording_id"`)}
	}
	if _, ok := _c.mutation.TimestampMs(); !ok {
		return &ValidationError{Name: "timestamp_ms", err: errors.New(`ent: missing required field "Utterance.timestamp_ms"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "Utterance.duration_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Utterance.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Utterance.updated_at"`)}
	}
	if len(_c.mutation.RecordingIDs()) == 0 {
		return &ValidationError{Name: "recording", err: errors.New(`ent: missing required edge "Utterance.recording"`)}
	}
	return nil
}

func (_c *UtteranceCreate) sqlSave(ctx context.Context) (*Utterance, error) {
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
			return nil, fmt.Errorf("unexpected Utterance.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UtteranceCreate) createSpec() (*Utterance, *sqlgraph.CreateSpec) {
	var (
		_node = &Utterance{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(utterance.Table, sqlgraph.NewFieldSpec(utterance.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ParticipantID(); ok {
		_spec.SetField(utterance.FieldParticipantID, field.TypeString, value)
		_node.ParticipantID = &value
	}
	if value, ok := _c.mutation.TimestampMs(); ok {
		_spec.SetField(utterance.FieldTimestampMs, field.TypeInt64, value)
		_node.TimestampMs = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(utterance.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.Transcription(); ok {
		_spec.SetField(utterance.FieldTranscription, field.TypeJSON, value)
		_node.Transcription = value
	}
	if value, ok := _c.mutation.FailureReason(); ok {
		_spec.SetField(utterance.FieldFailureReason, field.TypeString, value)
		_node.FailureReason = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(utterance.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(utterance.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.RecordingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   utterance.RecordingTable,
			Columns: []string{utterance.RecordingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recording.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RecordingID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// UtteranceCreateBulk is the builder for creating many Utterance entities in bulk.
type UtteranceCreateBulk struct {
	config
	err      error
	builders []*UtteranceCreate
}

// Save creates the Utterance entities in the database.
func (_c *UtteranceCreateBulk) Save(ctx context.Context) ([]*Utterance, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Utterance, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UtteranceMutation)
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
func (_c *UtteranceCreateBulk) SaveX(ctx context.Context) []*Utterance {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UtteranceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UtteranceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
