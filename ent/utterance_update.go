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
	"github.com/stenobot-io/stenobot/ent/predicate"
	"github.com/stenobot-io/stenobot/ent/utterance"
)

// UtteranceUpdate is the builder for updating Utterance entities.
type UtteranceUpdate struct {
	config
	hooks    []Hook
	mutation *UtteranceMutation
}

// Where appends a list predicates to the UtteranceUpdate builder.
func (_u *UtteranceUpdate) Where(ps ...predicate.Utterance) *UtteranceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetParticipantID sets the "participant_id" field.
func (_u *UtteranceUpdate) SetParticipantID(v string) *UtteranceUpdate {
	_u.mutation.SetParticipantID(v)
	return _u
}

// SetNillableParticipantID sets the "participant_id" field if the given value is not nil.
func (_u *UtteranceUpdate) SetNillableParticipantID(v *string) *UtteranceUpdate {
	if v != nil {
		_u.SetParticipantID(*v)
	}
	return _u
}

// ClearParticipantID clears the value of the "participant_id" field.
func (_u *UtteranceUpdate) ClearParticipantID() *UtteranceUpdate {
	_u.mutation.ClearParticipantID()
	return _u
}

// SetTimestampMs sets the "timestamp_ms" field.
func (_u *UtteranceUpdate) SetTimestampMs(v int64) *UtteranceUpdate {
	_u.mutation.ResetTimestampMs()
	_u.mutation.SetTimestampMs(v)
	return _u
}

// SetNillableTimestampMs sets the "timestamp_ms" field if the given value is not nil.
func (_u *UtteranceUpdate) SetNillableTimestampMs(v *int64) *UtteranceUpdate {
	if v != nil {
		_u.SetTimestampMs(*v)
	}
	return _u
}

// AddTimestampMs adds value to the "timestamp_ms" field.
func (_u *UtteranceUpdate) AddTimestampMs(v int64) *UtteranceUpdate {
	_u.mutation.AddTimestampMs(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *UtteranceUpdate) SetDurationMs(v int64) *UtteranceUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *UtteranceUpdate) SetNillableDurationMs(v *int64) *UtteranceUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *UtteranceUpdate) AddDurationMs(v int64) *UtteranceUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetTranscription sets the "transcription" field.
func (_u *UtteranceUpdate) SetTranscription(v map[string]interface{}) *UtteranceUpdate {
	_u.mutation.SetTranscription(v)
	return _u
}

// ClearTranscription clears the value of the "transcription" field.
func (_u *UtteranceUpdate) ClearTranscription() *UtteranceUpdate {
	_u.mutation.ClearTranscription()
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *UtteranceUpdate) SetFailureReason(v string) *UtteranceUpdate {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *UtteranceUpdate) SetNillableFailureReason(v *string) *UtteranceUpdate {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *UtteranceUpdate) ClearFailureReason() *UtteranceUpdate {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UtteranceUpdate) SetUpdatedAt(v time.Time) *UtteranceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UtteranceMutation object of the builder.
func (_u *UtteranceUpdate) Mutation() *UtteranceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UtteranceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UtteranceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UtteranceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UtteranceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UtteranceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := utterance.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UtteranceUpdate) check() error {
	if _u.mutation.RecordingCleared() && len(_u.mutation.RecordingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Utterance.recording"`)
	}
	return nil
}

func (_u *UtteranceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(utterance.Table, utterance.Columns, sqlgraph.NewFieldSpec(utterance.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ParticipantID(); ok {
		_spec.SetField(utterance.FieldParticipantID, field.TypeString, value)
	}
	if _u.mutation.ParticipantIDCleared() {
		_spec.ClearField(utterance.FieldParticipantID, field.TypeString)
	}
	if value, ok := _u.mutation.TimestampMs(); ok {
		_spec.SetField(utterance.FieldTimestampMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTimestampMs(); ok {
		_spec.AddField(utterance.FieldTimestampMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(utterance.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(utterance.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Transcription(); ok {
		_spec.SetField(utterance.FieldTranscription, field.TypeJSON, value)
	}
	if _u.mutation.TranscriptionCleared() {
		_spec.ClearField(utterance.FieldTranscription, field.TypeJSON)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(utterance.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(utterance.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(utterance.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{utterance.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UtteranceUpdateOne is the builder for updating a single Utterance entity.
type UtteranceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UtteranceMutation
}

// SetParticipantID sets the "participant_id" field.
func (_u *UtteranceUpdateOne) SetParticipantID(v string) *UtteranceUpdateOne {
	_u.mutation.SetParticipantID(v)
	return _u
}

// SetNillableParticipantID sets the "participant_id" field if the given value is not nil.
func (_u *UtteranceUpdateOne) SetNillableParticipantID(v *string) *UtteranceUpdateOne {
	if v != nil {
		_u.SetParticipantID(*v)
	}
	return _u
}

// ClearParticipantID clears the value of the "participant_id" field.
func (_u *UtteranceUpdateOne) ClearParticipantID() *UtteranceUpdateOne {
	_u.mutation.ClearParticipantID()
	return _u
}

// SetTimestampMs sets the "timestamp_ms" field.
func (_u *UtteranceUpdateOne) SetTimestampMs(v int64) *UtteranceUpdateOne {
	_u.mutation.ResetTimestampMs()
	_u.mutation.SetTimestampMs(v)
	return _u
}

// SetNillableTimestampMs sets the "timestamp_ms" field if the given value is not nil.
func (_u *UtteranceUpdateOne) SetNillableTimestampMs(v *int64) *UtteranceUpdateOne {
	if v != nil {
		_u.SetTimestampMs(*v)
	}
	return _u
}

// AddTimestampMs adds value to the "timestamp_ms" field.
func (_u *UtteranceUpdateOne) AddTimestampMs(v int64) *UtteranceUpdateOne {
	_u.mutation.AddTimestampMs(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *UtteranceUpdateOne) SetDurationMs(v int64) *UtteranceUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *UtteranceUpdateOne) SetNillableDurationMs(v *int64) *UtteranceUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *UtteranceUpdateOne) AddDurationMs(v int64) *UtteranceUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetTranscription sets the "transcription" field.
func (_u *UtteranceUpdateOne) SetTranscription(v map[string]interface{}) *UtteranceUpdateOne {
	_u.mutation.SetTranscription(v)
	return _u
}

// ClearTranscription clears the value of the "transcription" field.
func (_u *UtteranceUpdateOne) ClearTranscription() *UtteranceUpdateOne {
	_u.mutation.ClearTranscription()
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *UtteranceUpdateOne) SetFailureReason(v string) *UtteranceUpdateOne {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *UtteranceUpdateOne) SetNillableFailureReason(v *string) *UtteranceUpdateOne {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *UtteranceUpdateOne) ClearFailureReason() *UtteranceUpdateOne {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UtteranceUpdateOne) SetUpdatedAt(v time.Time) *UtteranceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UtteranceMutation object of the builder.
func (_u *UtteranceUpdateOne) Mutation() *UtteranceMutation {
	return _u.mutation
}

// Where appends a list predicates to the UtteranceUpdate builder.
func (_u *UtteranceUpdateOne) Where(ps ...predicate.Utterance) *UtteranceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UtteranceUpdateOne) Select(field string, fields ...string) *UtteranceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Utterance entity.
func (_u *UtteranceUpdateOne) Save(ctx context.Context) (*Utterance, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UtteranceUpdateOne) SaveX(ctx context.Context) *Utterance {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UtteranceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UtteranceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UtteranceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := utterance.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UtteranceUpdateOne) check() error {
	if _u.mutation.RecordingCleared() && len(_u.mutation.RecordingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Utterance.recording"`)
	}
	return nil
}

func (_u *UtteranceUpdateOne) sqlSave(ctx context.Context) (_node *Utterance, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(utterance.Table, utterance.Columns, sqlgraph.NewFieldSpec(utterance.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Utterance.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, utterance.FieldID)
		for _, f := range fields {
			if !utterance.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != utterance.FieldID {
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
		_spec.SetField(utterance.FieldParticipantID, field.TypeString, value)
	}
	if _u.mutation.ParticipantIDCleared() {
		_spec.ClearField(utterance.FieldParticipantID, field.TypeString)
	}
	if value, ok := _u.mutation.TimestampMs(); ok {
		_spec.SetField(utterance.FieldTimestampMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTimestampMs(); ok {
		_spec.AddField(utterance.FieldTimestampMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(utterance.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(utterance.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Transcription(); ok {
		_spec.SetField(utterance.FieldTranscription, field.TypeJSON, value)
	}
	if _u.mutation.TranscriptionCleared() {
		_spec.ClearField(utterance.FieldTranscription, field.TypeJSON)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(utterance.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(utterance.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(utterance.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Utterance{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{utterance.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
