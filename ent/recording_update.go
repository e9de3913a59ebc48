// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/stenobot-io/stenobot/ent/predicate"
	"github.com/stenobot-io/stenobot/ent/recording"
	"github.com/stenobot-io/stenobot/ent/utterance"
	"github.com/stenobot-io/stenobot/pkg/lifecycle"
)

// RecordingUpdate is the builder for updating Recording entities.
type RecordingUpdate struct {
	config
	hooks    []Hook
	mutation *RecordingMutation
}

// Where appends a list predicates to the RecordingUpdate builder.
func (_u *RecordingUpdate) Where(ps ...predicate.Recording) *RecordingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRecordingKind sets the "recording_kind" field.
func (_u *RecordingUpdate) SetRecordingKind(v lifecycle.RecordingKind) *RecordingUpdate {
	_u.mutation.SetRecordingKind(v)
	return _u
}

// SetNillableRecordingKind sets the "recording_kind" field if the given value is not nil.
func (_u *RecordingUpdate) SetNillableRecordingKind(v *lifecycle.RecordingKind) *RecordingUpdate {
	if v != nil {
		_u.SetRecordingKind(*v)
	}
	return _u
}

// SetTranscriptionKind sets the "transcription_kind" field.
func (_u *RecordingUpdate) SetTranscriptionKind(v lifecycle.TranscriptionKind) *RecordingUpdate {
	_u.mutation.SetTranscriptionKind(v)
	return _u
}

// SetNillableTranscriptionKind sets the "transcription_kind" field if the given value is not nil.
func (_u *RecordingUpdate) SetNillableTranscriptionKind(v *lifecycle.TranscriptionKind) *RecordingUpdate {
	if v != nil {
		_u.SetTranscriptionKind(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *RecordingUpdate) SetState(v lifecycle.RecordingState) *RecordingUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *RecordingUpdate) SetNillableState(v *lifecycle.RecordingState) *RecordingUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetTranscriptionState sets the "transcription_state" field.
func (_u *RecordingUpdate) SetTranscriptionState(v lifecycle.TranscriptionState) *RecordingUpdate {
	_u.mutation.SetTranscriptionState(v)
	return _u
}

// SetNillableTranscriptionState sets the "transcription_state" field if the given value is not nil.
func (_u *RecordingUpdate) SetNillableTranscriptionState(v *lifecycle.TranscriptionState) *RecordingUpdate {
	if v != nil {
		_u.SetTranscriptionState(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *RecordingUpdate) SetStartedAt(v time.Time) *RecordingUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *RecordingUpdate) SetNillableStartedAt(v *time.Time) *RecordingUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *RecordingUpdate) ClearStartedAt() *RecordingUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *RecordingUpdate) SetCompletedAt(v time.Time) *RecordingUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *RecordingUpdate) SetNillableCompletedAt(v *time.Time) *RecordingUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *RecordingUpdate) ClearCompletedAt() *RecordingUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetMediaBlobID sets the "media_blob_id" field.
func (_u *RecordingUpdate) SetMediaBlobID(v string) *RecordingUpdate {
	_u.mutation.SetMediaBlobID(v)
	return _u
}

// SetNillableMediaBlobID sets the "media_blob_id" field if the given value is not nil.
func (_u *RecordingUpdate) SetNillableMediaBlobID(v *string) *RecordingUpdate {
	if v != nil {
		_u.SetMediaBlobID(*v)
	}
	return _u
}

// ClearMediaBlobID clears the value of the "media_blob_id" field.
func (_u *RecordingUpdate) ClearMediaBlobID() *RecordingUpdate {
	_u.mutation.ClearMediaBlobID()
	return _u
}

// SetFailureReasons sets the "failure_reasons" field.
func (_u *RecordingUpdate) SetFailureReasons(v []string) *RecordingUpdate {
	_u.mutation.SetFailureReasons(v)
	return _u
}

// AppendFailureReasons appends value to the "failure_reasons" field.
func (_u *RecordingUpdate) AppendFailureReasons(v []string) *RecordingUpdate {
	_u.mutation.AppendFailureReasons(v)
	return _u
}

// ClearFailureReasons clears the value of the "failure_reasons" field.
func (_u *RecordingUpdate) ClearFailureReasons() *RecordingUpdate {
	_u.mutation.ClearFailureReasons()
	return _u
}

// SetVersion sets the "version" field.
func (_u *RecordingUpdate) SetVersion(v int64) *RecordingUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *RecordingUpdate) SetNillableVersion(v *int64) *RecordingUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *RecordingUpdate) AddVersion(v int64) *RecordingUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// AddUtteranceIDs adds the "utterances" edge to the Utterance entity by IDs.
func (_u *RecordingUpdate) AddUtteranceIDs(ids ...string) *RecordingUpdate {
	_u.mutation.AddUtteranceIDs(ids...)
	return _u
}

// AddUtterances adds the "utterances" edges to the Utterance entity.
func (_u *RecordingUpdate) AddUtterances(v ...*Utterance) *RecordingUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUtteranceIDs(ids...)
}

// Mutation returns the RecordingMutation object of the builder.
func (_u *RecordingUpdate) Mutation() *RecordingMutation {
	return _u.mutation
}

// ClearUtterances clears all "utterances" edges to the Utterance entity.
func (_u *RecordingUpdate) ClearUtterances() *RecordingUpdate {
	_u.mutation.ClearUtterances()
	return _u
}

// RemoveUtteranceIDs removes the "utterances" edge to Utterance entities by IDs.
func (_u *RecordingUpdate) RemoveUtteranceIDs(ids ...string) *RecordingUpdate {
	_u.mutation.RemoveUtteranceIDs(ids...)
	return _u
}

// RemoveUtterances removes "utterances" edges to Utterance entities.
func (_u *RecordingUpdate) RemoveUtterances(v ...*Utterance) *RecordingUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUtteranceIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RecordingUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecordingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RecordingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecordingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecordingUpdate) check() error {
	if v, ok := _u.mutation.RecordingKind(); ok {
		if err := recording.RecordingKindValidator(v); err != nil {
			return &ValidationError{Name: "recording_kind", err: fmt.Errorf(`ent: validator failed for field "Recording.recording_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TranscriptionKind(); ok {
		if err := recording.TranscriptionKindValidator(v); err != nil {
			return &ValidationError{Name: "transcription_kind", err: fmt.Errorf(`ent: validator failed for field "Recording.transcription_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := recording.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Recording.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TranscriptionState(); ok {
		if err := recording.TranscriptionStateValidator(v); err != nil {
			return &ValidationError{Name: "transcription_state", err: fmt.Errorf(`ent: validator failed for field "Recording.transcription_state": %w`, err)}
		}
	}
	if _u.mutation.BotCleared() && len(_u.mutation.BotIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Recording.bot"`)
	}
	return nil
}

func (_u *RecordingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recording.Table, recording.Columns, sqlgraph.NewFieldSpec(recording.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RecordingKind(); ok {
		_spec.SetField(recording.FieldRecordingKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TranscriptionKind(); ok {
		_spec.SetField(recording.FieldTranscriptionKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(recording.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TranscriptionState(); ok {
		_spec.SetField(recording.FieldTranscriptionState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(recording.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(recording.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(recording.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(recording.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.MediaBlobID(); ok {
		_spec.SetField(recording.FieldMediaBlobID, field.TypeString, value)
	}
	if _u.mutation.MediaBlobIDCleared() {
		_spec.ClearField(recording.FieldMediaBlobID, field.TypeString)
	}
	if value, ok := _u.mutation.FailureReasons(); ok {
		_spec.SetField(recording.FieldFailureReasons, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFailureReasons(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, recording.FieldFailureReasons, value)
		})
	}
	if _u.mutation.FailureReasonsCleared() {
		_spec.ClearField(recording.FieldFailureReasons, field.TypeJSON)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(recording.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(recording.FieldVersion, field.TypeInt64, value)
	}
	if _u.mutation.UtterancesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUtterancesIDs(); len(nodes) > 0 && !_u.mutation.UtterancesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UtterancesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recording.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RecordingUpdateOne is the builder for updating a single Recording entity.
type RecordingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RecordingMutation
}

// SetRecordingKind sets the "recording_kind" field.
func (_u *RecordingUpdateOne) SetRecordingKind(v lifecycle.RecordingKind) *RecordingUpdateOne {
	_u.mutation.SetRecordingKind(v)
	return _u
}

// SetNillableRecordingKind sets the "recording_kind" field if the given value is not nil.
func (_u *RecordingUpdateOne) SetNillableRecordingKind(v *lifecycle.RecordingKind) *RecordingUpdateOne {
	if v != nil {
		_u.SetRecordingKind(*v)
	}
	return _u
}

// SetTranscriptionKind sets the "transcription_kind" field.
func (_u *RecordingUpdateOne) SetTranscriptionKind(v lifecycle.TranscriptionKind) *RecordingUpdateOne {
	_u.mutation.SetTranscriptionKind(v)
	return _u
}

// SetNillableTranscriptionKind sets the "transcription_kind" field if the given value is not nil.
func (_u *RecordingUpdateOne) SetNillableTranscriptionKind(v *lifecycle.TranscriptionKind) *RecordingUpdateOne {
	if v != nil {
		_u.SetTranscriptionKind(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *RecordingUpdateOne) SetState(v lifecycle.RecordingState) *RecordingUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *RecordingUpdateOne) SetNillableState(v *lifecycle.RecordingState) *RecordingUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetTranscriptionState sets the "transcription_state" field.
func (_u *RecordingUpdateOne) SetTranscriptionState(v lifecycle.TranscriptionState) *RecordingUpdateOne {
	_u.mutation.SetTranscriptionState(v)
	return _u
}

// SetNillableTranscriptionState sets the "transcription_state" field if the given value is not nil.
func (_u *RecordingUpdateOne) SetNillableTranscriptionState(v *lifecycle.TranscriptionState) *RecordingUpdateOne {
	if v != nil {
		_u.SetTranscriptionState(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *RecordingUpdateOne) SetStartedAt(v time.Time) *RecordingUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *RecordingUpdateOne) SetNillableStartedAt(v *time.Time) *RecordingUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *RecordingUpdateOne) ClearStartedAt() *RecordingUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *RecordingUpdateOne) SetCompletedAt(v time.Time) *RecordingUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *RecordingUpdateOne) SetNillableCompletedAt(v *time.Time) *RecordingUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *RecordingUpdateOne) ClearCompletedAt() *RecordingUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetMediaBlobID sets the "media_blob_id" field.
func (_u *RecordingUpdateOne) SetMediaBlobID(v string) *RecordingUpdateOne {
	_u.mutation.SetMediaBlobID(v)
	return _u
}

// SetNillableMediaBlobID sets the "media_blob_id" field if the given value is not nil.
func (_u *RecordingUpdateOne) SetNillableMediaBlobID(v *string) *RecordingUpdateOne {
	if v != nil {
		_u.SetMediaBlobID(*v)
	}
	return _u
}

// ClearMediaBlobID clears the value of the "media_blob_id" field.
func (_u *RecordingUpdateOne) ClearMediaBlobID() *RecordingUpdateOne {
	_u.mutation.ClearMediaBlobID()
	return _u
}

// SetFailureReasons sets the "failure_reasons" field.
func (_u *RecordingUpdateOne) SetFailureReasons(v []string) *RecordingUpdateOne {
	_u.mutation.SetFailureReasons(v)
	return _u
}

// AppendFailureReasons appends value to the "failure_reasons" field.
func (_u *RecordingUpdateOne) AppendFailureReasons(v []string) *RecordingUpdateOne {
	_u.mutation.AppendFailureReasons(v)
	return _u
}

// ClearFailureReasons clears the value of the "failure_reasons" field.
func (_u *RecordingUpdateOne) ClearFailureReasons() *RecordingUpdateOne {
	_u.mutation.ClearFailureReasons()
	return _u
}

// SetVersion sets the "version" field.
func (_u *RecordingUpdateOne) SetVersion(v int64) *RecordingUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *RecordingUpdateOne) SetNillableVersion(v *int64) *RecordingUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *RecordingUpdateOne) AddVersion(v int64) *RecordingUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// AddUtteranceIDs adds the "utterances" edge to the Utterance entity by IDs.
func (_u *RecordingUpdateOne) AddUtteranceIDs(ids ...string) *RecordingUpdateOne {
	_u.mutation.AddUtteranceIDs(ids...)
	return _u
}

// AddUtterances adds the "utterances" edges to the Utterance entity.
func (_u *RecordingUpdateOne) AddUtterances(v ...*Utterance) *RecordingUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUtteranceIDs(ids...)
}

// Mutation returns the RecordingMutation object of the builder.
func (_u *RecordingUpdateOne) Mutation() *RecordingMutation {
	return _u.mutation
}

// ClearUtterances clears all "utterances" edges to the Utterance entity.
func (_u *RecordingUpdateOne) ClearUtterances() *RecordingUpdateOne {
	_u.mutation.ClearUtterances()
	return _u
}

// RemoveUtteranceIDs removes the "utterances" edge to Utterance entities by IDs.
func (_u *RecordingUpdateOne) RemoveUtteranceIDs(ids ...string) *RecordingUpdateOne {
	_u.mutation.RemoveUtteranceIDs(ids...)
	return _u
}

// RemoveUtterances removes "utterances" edges to Utterance entities.
func (_u *RecordingUpdateOne) RemoveUtterances(v ...*Utterance) *RecordingUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUtteranceIDs(ids...)
}

// Where appends a list predicates to the RecordingUpdate builder.
func (_u *RecordingUpdateOne) Where(ps ...predicate.Recording) *RecordingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RecordingUpdateOne) Select(field string, fields ...string) *RecordingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Recording entity.
func (_u *RecordingUpdateOne) Save(ctx context.Context) (*Recording, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecordingUpdateOne) SaveX(ctx context.Context) *Recording {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RecordingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecordingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecordingUpdateOne) check() error {
	if v, ok := _u.mutation.RecordingKind(); ok {
		if err := recording.RecordingKindValidator(v); err != nil {
			return &ValidationError{Name: "recording_kind", err: fmt.Errorf(`ent: validator failed for field "Recording.recording_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TranscriptionKind(); ok {
		if err := recording.TranscriptionKindValidator(v); err != nil {
			return &ValidationError{Name: "transcription_kind", err: fmt.Errorf(`ent: validator failed for field "Recording.transcription_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := recording.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Recording.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TranscriptionState(); ok {
		if err := recording.TranscriptionStateValidator(v); err != nil {
			return &ValidationError{Name: "transcription_state", err: fmt.Errorf(`ent: validator failed for field "Recording.transcription_state": %w`, err)}
		}
	}
	if _u.mutation.BotCleared() && len(_u.mutation.BotIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Recording.bot"`)
	}
	return nil
}

func (_u *RecordingUpdateOne) sqlSave(ctx context.Context) (_node *Recording, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recording.Table, recording.Columns, sqlgraph.NewFieldSpec(recording.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Recording.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, recording.FieldID)
		for _, f := range fields {
			if !recording.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != recording.FieldID {
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
	if value, ok := _u.mutation.RecordingKind(); ok {
		_spec.SetField(recording.FieldRecordingKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TranscriptionKind(); ok {
		_spec.SetField(recording.FieldTranscriptionKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(recording.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TranscriptionState(); ok {
		_spec.SetField(recording.FieldTranscriptionState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(recording.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(recording.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(recording.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(recording.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.MediaBlobID(); ok {
		_spec.SetField(recording.FieldMediaBlobID, field.TypeString, value)
	}
	if _u.mutation.MediaBlobIDCleared() {
		_spec.ClearField(recording.FieldMediaBlobID, field.TypeString)
	}
	if value, ok := _u.mutation.FailureReasons(); ok {
		_spec.SetField(recording.FieldFailureReasons, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFailureReasons(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, recording.FieldFailureReasons, value)
		})
	}
	if _u.mutation.FailureReasonsCleared() {
		_spec.ClearField(recording.FieldFailureReasons, field.TypeJSON)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(recording.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(recording.FieldVersion, field.TypeInt64, value)
	}
	if _u.mutation.UtterancesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUtterancesIDs(); len(nodes) > 0 && !_u.mutation.UtterancesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UtterancesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Recording{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recording.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
