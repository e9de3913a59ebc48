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
	"github.com/stenobot-io/stenobot/ent/recording"
	"github.com/stenobot-io/stenobot/ent/utterance"
	"github.com/stenobot-io/stenobot/pkg/lifecycle"
)

// RecordingCreate is the builder for creating a Recording entity.
type RecordingCreate struct {
	config
	mutation *RecordingMutation
	hooks    []Hook
}

// SetBotID sets the "bot_id" field.
func (_c *RecordingCreate) SetBotID(v string) *RecordingCreate {
	_c.mutation.SetBotID(v)
	return _c
}

// SetRecordingKind sets the "recording_kind" field.
func (_c *RecordingCreate) SetRecordingKind(v lifecycle.RecordingKind) *RecordingCreate {
	_c.mutation.SetRecordingKind(v)
	return _c
}

// SetNillableRecordingKind sets the "recording_kind" field if the given value is not nil.
func (_c *RecordingCreate) SetNillableRecordingKind(v *lifecycle.RecordingKind) *RecordingCreate {
	if v != nil {
		_c.SetRecordingKind(*v)
	}
	return _c
}

// SetTranscriptionKind sets the "transcription_kind" field.
func (_c *RecordingCreate) SetTranscriptionKind(v lifecycle.TranscriptionKind) *RecordingCreate {
	_c.mutation.SetTranscriptionKind(v)
	return _c
}

// SetNillableTranscriptionKind sets the "transcription_kind" field if the given value is not nil.
func (_c *RecordingCreate) SetNillableTranscriptionKind(v *lifecycle.TranscriptionKind) *RecordingCreate {
	if v != nil {
		_c.SetTranscriptionKind(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *RecordingCreate) SetState(v lifecycle.RecordingState) *RecordingCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *RecordingCreate) SetNillableState(v *lifecycle.RecordingState) *RecordingCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetTranscriptionState sets the "transcription_state" field.
func (_c *RecordingCreate) SetTranscriptionState(v lifecycle.TranscriptionState) *RecordingCreate {
	_c.mutation.SetTranscriptionState(v)
	return _c
}

// SetNillableTranscriptionState sets the "transcription_state" field if the given value is not nil.
func (_c *RecordingCreate) SetNillableTranscriptionState(v *lifecycle.TranscriptionState) *RecordingCreate {
	if v != nil {
		_c.SetTranscriptionState(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *RecordingCreate) SetStartedAt(v time.Time) *RecordingCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *RecordingCreate) SetNillableStartedAt(v *time.Time) *RecordingCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *RecordingCreate) SetCompletedAt(v time.Time) *RecordingCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *RecordingCreate) SetNillableCompletedAt(v *time.Time) *RecordingCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetMediaBlobID sets the "media_blob_id" field.
func (_c *RecordingCreate) SetMediaBlobID(v string) *RecordingCreate {
	_c.mutation.SetMediaBlobID(v)
	return _c
}

// SetNillableMediaBlobID sets the "media_blob_id" field if the given value is not nil.
func (_c *RecordingCreate) SetNillableMediaBlobID(v *string) *RecordingCreate {
	if v != nil {
		_c.SetMediaBlobID(*v)
	}
	return _c
}

// SetFailureReasons sets the "failure_reasons" field.
func (_c *RecordingCreate) SetFailureReasons(v []string) *RecordingCreate {
	_c.mutation.SetFailureReasons(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *RecordingCreate) SetVersion(v int64) *RecordingCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *RecordingCreate) SetNillableVersion(v *int64) *RecordingCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RecordingCreate) SetCreatedAt(v time.Time) *RecordingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RecordingCreate) SetNillableCreatedAt(v *time.Time) *RecordingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RecordingCreate) SetID(v string) *RecordingCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetBot sets the "bot" edge to the Bot entity.
func (_c *RecordingCreate) SetBot(v *Bot) *RecordingCreate {
	return _c.SetBotID(v.ID)
}

// AddUtteranceIDs adds the "utterances" edge to the Utterance entity by IDs.
func (_c *RecordingCreate) AddUtteranceIDs(ids ...string) *RecordingCreate {
	_c.mutation.AddUtteranceIDs(ids...)
	return _c
}

// AddUtterances adds the "utterances" edges to the Utterance entity.
func (_c *RecordingCreate) AddUtterances(v ...*Utterance) *RecordingCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddUtteranceIDs(ids...)
}

// Mutation returns the RecordingMutation object of the builder.
func (_c *RecordingCreate) Mutation() *RecordingMutation {
	return _c.mutation
}

// Save creates the Recording in the database.
func (_c *RecordingCreate) Save(ctx context.Context) (*Recording, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RecordingCreate) SaveX(ctx context.Context) *Recording {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecordingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecordingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RecordingCreate) defaults() {
	if _, ok := _c.mutation.RecordingKind(); !ok {
		v := recording.DefaultRecordingKind
		_c.mutation.SetRecordingKind(v)
	}
	if _, ok := _c.mutation.TranscriptionKind(); !ok {
		v := recording.DefaultTranscriptionKind
		_c.mutation.SetTranscriptionKind(v)
	}
	if _, ok := _c.mutation.State(); !ok {
		v := recording.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.TranscriptionState(); !ok {
		v := recording.DefaultTranscriptionState
		_c.mutation.SetTranscriptionState(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := recording.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := recording.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RecordingCreate) check() error {
	if _, ok := _c.mutation.BotID(); !ok {
		return &ValidationError{Name: "bot_id", err: errors.New(`ent: missing required field "Recording.bot_id"`)}
	}
	if _, ok := _c.mutation.RecordingKind(); !ok {
		return &ValidationError{Name: "recording_kind", err: errors.New(`ent: missing required field "Recording.recording_kind"`)}
	}
	if v, ok := _c.mutation.RecordingKind(); ok {
		if err := recording.RecordingKindValidator(v); err != nil {
			return &ValidationError{Name: "recording_kind", err: fmt.Errorf(`ent: validator failed for field "Recording.recording_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TranscriptionKind(); !ok {
		return &ValidationError{Name: "transcription_kind", err: errors.New(`ent: missing required field "Recording.transcription_kind"`)}
	}
	if v, ok := _c.mutation.TranscriptionKind(); ok {
		if err := recording.TranscriptionKindValidator(v); err != nil {
			return &ValidationError{Name: "transcription_kind", err: fmt.Errorf(`ent: validator failed for field "Recording.transcription_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "Recording.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := recording.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Recording.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TranscriptionState(); !ok {
		return &ValidationError{Name: "transcription_state", err: errors.New(`ent: missing required field "Recording.transcription_state"`)}
	}
	if v, ok := _c.mutation.TranscriptionState(); ok {
		if err := recording.TranscriptionStateValidator(v); err != nil {
			return &ValidationError{Name: "transcription_state", err: fmt.Errorf(`ent: validator failed for field "Recording.transcription_state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "Recording.version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Recording.created_at"`)}
	}
	if len(_c.mutation.BotIDs()) == 0 {
		return &ValidationError{Name: "bot", err: errors.New(`ent: missing required edge "Recording.bot"`)}
	}
	return nil
}

func (_c *RecordingCreate) sqlSave(ctx context.Context) (*Recording, error) {
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
			return nil, fmt.Errorf("unexpected Recording.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RecordingCreate) createSpec() (*Recording, *sqlgraph.CreateSpec) {
	var (
		_node = &Recording{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(recording.Table, sqlgraph.NewFieldSpec(recording.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.RecordingKind(); ok {
		_spec.SetField(recording.FieldRecordingKind, field.TypeEnum, value)
		_node.RecordingKind = value
	}
	if value, ok := _c.mutation.TranscriptionKind(); ok {
		_spec.SetField(recording.FieldTranscriptionKind, field.TypeEnum, value)
		_node.TranscriptionKind = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(recording.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.TranscriptionState(); ok {
		_spec.SetField(recording.FieldTranscriptionState, field.TypeEnum, value)
		_node.TranscriptionState = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(recording.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(recording.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.MediaBlobID(); ok {
		_spec.SetField(recording.FieldMediaBlobID, field.TypeString, value)
		_node.MediaBlobID = &value
	}
	if value, ok := _c.mutation.FailureReasons(); ok {
		_spec.SetField(recording.FieldFailureReasons, field.TypeJSON, value)
		_node.FailureReasons = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(recording.FieldVersion, field.TypeInt64, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(recording.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.BotIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   recording.BotTable,
			Columns: []string{recording.BotColumn},
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
	if nodes := _c.mutation.UtterancesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recording.UtterancesTable,
			Columns: []string{recording.UtterancesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(utterance.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RecordingCreateBulk is the builder for creating many Recording entities in bulk.
type RecordingCreateBulk struct {
	config
	err      error
	builders []*RecordingCreate
}

// Save creates the Recording entities in the database.
func (_c *RecordingCreateBulk) Save(ctx context.Context) ([]*Recording, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Recording, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RecordingMutation)
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
func (_c *RecordingCreateBulk) SaveX(ctx context.Context) []*Recording {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecordingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecordingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
