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
	"github.com/stenobot-io/stenobot/ent/webhookdeliveryattempt"
	"github.com/stenobot-io/stenobot/pkg/lifecycle"
)

// WebhookDeliveryAttemptUpdate is the builder for updating WebhookDeliveryAttempt entities.
type WebhookDeliveryAttemptUpdate struct {
	config
	hooks    []Hook
	mutation *WebhookDeliveryAttemptMutation
}

// Where appends a list predicates to the WebhookDeliveryAttemptUpdate builder.
func (_u *WebhookDeliveryAttemptUpdate) Where(ps ...predicate.WebhookDeliveryAttempt) *WebhookDeliveryAttemptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBotID sets the "bot_id" field.
func (_u *WebhookDeliveryAttemptUpdate) SetBotID(v string) *WebhookDeliveryAttemptUpdate {
	_u.mutation.SetBotID(v)
	return _u
}

// SetNillableBotID sets the "bot_id" field if the given value is not nil.
func (_u *WebhookDeliveryAttemptUpdate) SetNillableBotID(v *string) *WebhookDeliveryAttemptUpdate {
	if v != nil {
		_u.SetBotID(*v)
	}
	return _u
}

// ClearBotID clears the value of the "bot_id" field.
func (_u *WebhookDeliveryAttemptUpdate) ClearBotID() *WebhookDeliveryAttemptUpdate {
	_u.mutation.ClearBotID()
	return _u
}

// SetCalendarID sets the "calendar_id" field.
func (_u *WebhookDeliveryAttemptUpdate) SetCalendarID(v string) *WebhookDeliveryAttemptUpdate {
	_u.mutation.SetCalendarID(v)
	return _u
}

// SetNillableCalendarID sets the "calendar_id" field if the given value is not nil.
func (_u *WebhookDeliveryAttemptUpdate) SetNillableCalendarID(v *string) *WebhookDeliveryAttemptUpdate {
	if v != nil {
		_u.SetCalendarID(*v)
	}
	return _u
}

// ClearCalendarID clears the value of the "calendar_id" field.
func (_u *WebhookDeliveryAttemptUpdate) ClearCalendarID() *WebhookDeliveryAttemptUpdate {
	_u.mutation.ClearCalendarID()
	return _u
}

// SetZoomOauthConnectionID sets the "zoom_oauth_connection_id" field.
func (_u *WebhookDeliveryAttemptUpdate) SetZoomOauthConnectionID(v string) *WebhookDeliveryAttemptUpdate {
	_u.mutation.SetZoomOauthConnectionID(v)
	return _u
}

// SetNillableZoomOauthConnectionID sets the "zoom_oauth_connection_id" field if the given value is not nil.
func (_u *WebhookDeliveryAttemptUpdate) SetNillableZoomOauthConnectionID(v *string) *WebhookDeliveryAttemptUpdate {
	if v != nil {
		_u.SetZoomOauthConnectionID(*v)
	}
	return _u
}

// ClearZoomOauthConnectionID clears the value of the "zoom_oauth_connection_id" field.
func (_u *WebhookDeliveryAttemptUpdate) ClearZoomOauthConnectionID() *WebhookDeliveryAttemptUpdate {
	_u.mutation.ClearZoomOauthConnectionID()
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *WebhookDeliveryAttemptUpdate) SetTrigger(v lifecycle.TriggerKind) *WebhookDeliveryAttemptUpdate {
	_u.mutation.ResetTrigger()
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *WebhookDeliveryAttemptUpdate) SetNillableTrigger(v *lifecycle.TriggerKind) *WebhookDeliveryAttemptUpdate {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// AddTrigger adds value to the "trigger" field.
func (_u *WebhookDeliveryAttemptUpdate) AddTrigger(v lifecycle.TriggerKind) *WebhookDeliveryAttemptUpdate {
	_u.mutation.AddTrigger(v)
	return _u
}

// SetPayload sets the "payload" field.
func (_u *WebhookDeliveryAttemptUpdate) SetPayload(v map[string]interface{}) *WebhookDeliveryAttemptUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *WebhookDeliveryAttemptUpdate) SetStatus(v lifecycle.DeliveryStatus) *WebhookDeliveryAttemptUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WebhookDeliveryAttemptUpdate) SetNillableStatus(v *lifecycle.DeliveryStatus) *WebhookDeliveryAttemptUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttemptCount sets the "attempt_count" field.
func (_u *WebhookDeliveryAttemptUpdate) SetAttemptCount(v int) *WebhookDeliveryAttemptUpdate {
	_u.mutation.ResetAttemptCount()
	_u.mutation.SetAttemptCount(v)
	return _u
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_u *WebhookDeliveryAttemptUpdate) SetNillableAttemptCount(v *int) *WebhookDeliveryAttemptUpdate {
	if v != nil {
		_u.SetAttemptCount(*v)
	}
	return _u
}

// AddAttemptCount adds value to the "attempt_count" field.
func (_u *WebhookDeliveryAttemptUpdate) AddAttemptCount(v int) *WebhookDeliveryAttemptUpdate {
	_u.mutation.AddAttemptCount(v)
	return _u
}

// SetResponseBodies sets the "response_bodies" field.
func (_u *WebhookDeliveryAttemptUpdate) SetResponseBodies(v []string) *WebhookDeliveryAttemptUpdate {
	_u.mutation.SetResponseBodies(v)
	return _u
}

// AppendResponseBodies appends value to the "response_bodies" field.
func (_u *WebhookDeliveryAttemptUpdate) AppendResponseBodies(v []string) *WebhookDeliveryAttemptUpdate {
	_u.mutation.AppendResponseBodies(v)
	return _u
}

// ClearResponseBodies clears the value of the "response_bodies" field.
func (_u *WebhookDeliveryAttemptUpdate) ClearResponseBodies() *WebhookDeliveryAttemptUpdate {
	_u.mutation.ClearResponseBodies()
	return _u
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (_u *WebhookDeliveryAttemptUpdate) SetNextAttemptAt(v time.Time) *WebhookDeliveryAttemptUpdate {
	_u.mutation.SetNextAttemptAt(v)
	return _u
}

// SetNillableNextAttemptAt sets the "next_attempt_at" field if the given value is not nil.
func (_u *WebhookDeliveryAttemptUpdate) SetNillableNextAttemptAt(v *time.Time) *WebhookDeliveryAttemptUpdate {
	if v != nil {
		_u.SetNextAttemptAt(*v)
	}
	return _u
}

// ClearNextAttemptAt clears the value of the "next_attempt_at" field.
func (_u *WebhookDeliveryAttemptUpdate) ClearNextAttemptAt() *WebhookDeliveryAttemptUpdate {
	_u.mutation.ClearNextAttemptAt()
	return _u
}

// SetLastAttemptedAt sets the "last_attempted_at" field.
func (_u *WebhookDeliveryAttemptUpdate) SetLastAttemptedAt(v time.Time) *WebhookDeliveryAttemptUpdate {
	_u.mutation.SetLastAttemptedAt(v)
	return _u
}

// SetNillableLastAttemptedAt sets the "last_attempted_at" field if the given value is not nil.
func (_u *WebhookDeliveryAttemptUpdate) SetNillableLastAttemptedAt(v *time.Time) *WebhookDeliveryAttemptUpdate {
	if v != nil {
		_u.SetLastAttemptedAt(*v)
	}
	return _u
}

// ClearLastAttemptedAt clears the value of the "last_attempted_at" field.
func (_u *WebhookDeliveryAttemptUpdate) ClearLastAttemptedAt() *WebhookDeliveryAttemptUpdate {
	_u.mutation.ClearLastAttemptedAt()
	return _u
}

// SetSucceededAt sets the "succeeded_at" field.
func (_u *WebhookDeliveryAttemptUpdate) SetSucceededAt(v time.Time) *WebhookDeliveryAttemptUpdate {
	_u.mutation.SetSucceededAt(v)
	return _u
}

// SetNillableSucceededAt sets the "succeeded_at" field if the given value is not nil.
func (_u *WebhookDeliveryAttemptUpdate) SetNillableSucceededAt(v *time.Time) *WebhookDeliveryAttemptUpdate {
	if v != nil {
		_u.SetSucceededAt(*v)
	}
	return _u
}

// ClearSucceededAt clears the value of the "succeeded_at" field.
func (_u *WebhookDeliveryAttemptUpdate) ClearSucceededAt() *WebhookDeliveryAttemptUpdate {
	_u.mutation.ClearSucceededAt()
	return _u
}

// Mutation returns the WebhookDeliveryAttemptMutation object of the builder.
func (_u *WebhookDeliveryAttemptUpdate) Mutation() *WebhookDeliveryAttemptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WebhookDeliveryAttemptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WebhookDeliveryAttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WebhookDeliveryAttemptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WebhookDeliveryAttemptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WebhookDeliveryAttemptUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := webhookdeliveryattempt.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WebhookDeliveryAttempt.status": %w`, err)}
		}
	}
	if _u.mutation.SubscriptionCleared() && len(_u.mutation.SubscriptionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WebhookDeliveryAttempt.subscription"`)
	}
	return nil
}

func (_u *WebhookDeliveryAttemptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(webhookdeliveryattempt.Table, webhookdeliveryattempt.Columns, sqlgraph.NewFieldSpec(webhookdeliveryattempt.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BotID(); ok {
		_spec.SetField(webhookdeliveryattempt.FieldBotID, field.TypeString, value)
	}
	if _u.mutation.BotIDCleared() {
		_spec.ClearField(webhookdeliveryattempt.FieldBotID, field.TypeString)
	}
	if value, ok := _u.mutation.CalendarID(); ok {
		_spec.SetField(webhookdeliveryattempt.FieldCalendarID, field.TypeString, value)
	}
	if _u.mutation.CalendarIDCleared() {
		_spec.ClearField(webhookdeliveryattempt.FieldCalendarID, field.TypeString)
	}
	if value, ok := _u.mutation.ZoomOauthConnectionID(); ok {
		_spec.SetField(webhookdeliveryattempt.FieldZoomOauthConnectionID, field.TypeString, value)
	}
	if _u.mutation.ZoomOauthConnectionIDCleared() {
		_spec.ClearField(webhookdeliveryattempt.FieldZoomOauthConnectionID, field.TypeString)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(webhookdeliveryattempt.FieldTrigger, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTrigger(); ok {
		_spec.AddField(webhookdeliveryattempt.FieldTrigger, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(webhookdeliveryattempt.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(webhookdeliveryattempt.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AttemptCount(); ok {
		_spec.SetField(webhookdeliveryattempt.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptCount(); ok {
		_spec.AddField(webhookdeliveryattempt.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ResponseBodies(); ok {
		_spec.SetField(webhookdeliveryattempt.FieldResponseBodies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResponseBodies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, webhookdeliveryattempt.FieldResponseBodies, value)
		})
	}
	if _u.mutation.ResponseBodiesCleared() {
		_spec.ClearField(webhookdeliveryattempt.FieldResponseBodies, field.TypeJSON)
	}
	if value, ok := _u.mutation.NextAttemptAt(); ok {
		_spec.SetField(webhookdeliveryattempt.FieldNextAttemptAt, field.TypeTime, value)
	}
	if _u.mutation.NextAttemptAtCleared() {
		_spec.ClearField(webhookdeliveryattempt.FieldNextAttemptAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastAttemptedAt(); ok {
		_spec.SetField(webhookdeliveryattempt.FieldLastAttemptedAt, field.TypeTime, value)
	}
	if _u.mutation.LastAttemptedAtCleared() {
		_spec.ClearField(webhookdeliveryattempt.FieldLastAttemptedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.SucceededAt(); ok {
		_spec.SetField(webhookdeliveryattempt.FieldSucceededAt, field.TypeTime, value)
	}
	if _u.mutation.SucceededAtCleared() {
		_spec.ClearField(webhookdeliveryattempt.FieldSucceededAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{webhookdeliveryattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WebhookDeliveryAttemptUpdateOne is the builder for updating a single WebhookDeliveryAttempt entity.
type WebhookDeliveryAttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WebhookDeliveryAttemptMutation
}

// SetBotID sets the "bot_id" field.
func (_u *WebhookDeliveryAttemptUpdateOne) SetBotID(v string) *WebhookDeliveryAttemptUpdateOne {
	_u.mutation.SetBotID(v)
	return _u
}

// SetNillableBotID sets the "bot_id" field if the given value is not nil.
func (_u *WebhookDeliveryAttemptUpdateOne) SetNillableBotID(v *string) *WebhookDeliveryAttemptUpdateOne {
	if v != nil {
		_u.SetBotID(*v)
	}
	return _u
}

// ClearBotID clears the value of the "bot_id" field.
func (_u *WebhookDeliveryAttemptUpdateOne) ClearBotID() *WebhookDeliveryAttemptUpdateOne {
	_u.mutation.ClearBotID()
	return _u
}

// SetCalendarID sets the "calendar_id" field.
func (_u *WebhookDeliveryAttemptUpdateOne) SetCalendarID(v string) *WebhookDeliveryAttemptUpdateOne {
	_u.mutation.SetCalendarID(v)
	return _u
}

// SetNillableCalendarID sets the "calendar_id" field if the given value is not nil.
func (_u *WebhookDeliveryAttemptUpdateOne) SetNillableCalendarID(v *string) *WebhookDeliveryAttemptUpdateOne {
	if v != nil {
		_u.SetCalendarID(*v)
	}
	return _u
}

// ClearCalendarID clears the value of the "calendar_id" field.
func (_u *WebhookDeliveryAttemptUpdateOne) ClearCalendarID() *WebhookDeliveryAttemptUpdateOne {
	_u.mutation.ClearCalendarID()
	return _u
}

// SetZoomOauthConnectionID sets the "zoom_oauth_connection_id" field.
func (_u *WebhookDeliveryAttemptUpdateOne) SetZoomOauthConnectionID(v string) *WebhookDeliveryAttemptUpdateOne {
	_u.mutation.SetZoomOauthConnectionID(v)
	return _u
}

// SetNillableZoomOauthConnectionID sets the "zoom_oauth_connection_id" field if the given value is not nil.
func (_u *WebhookDeliveryAttemptUpdateOne) SetNillableZoomOauthConnectionID(v *string) *WebhookDeliveryAttemptUpdateOne {
	if v != nil {
		_u.SetZoomOauthConnectionID(*v)
	}
	return _u
}

// ClearZoomOauthConnectionID clears the value of the "zoom_oauth_connection_id" field.
func (_u *WebhookDeliveryAttemptUpdateOne) ClearZoomOauthConnectionID() *WebhookDeliveryAttemptUpdateOne {
	_u.mutation.ClearZoomOauthConnectionID()
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *WebhookDeliveryAttemptUpdateOne) SetTrigger(v lifecycle.TriggerKind) *WebhookDeliveryAttemptUpdateOne {
	_u.mutation.ResetTrigger()
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *WebhookDeliveryAttemptUpdateOne) SetNillableTrigger(v *lifecycle.TriggerKind) *WebhookDeliveryAttemptUpdateOne {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// AddTrigger adds value to the "trigger" field.
func (_u *WebhookDeliveryAttemptUpdateOne) AddTrigger(v lifecycle.TriggerKind) *WebhookDeliveryAttemptUpdateOne {
	_u.mutation.AddTrigger(v)
	return _u
}

// SetPayload sets the "payload" field.
func (_u *WebhookDeliveryAttemptUpdateOne) SetPayload(v map[string]interface{}) *WebhookDeliveryAttemptUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *WebhookDeliveryAttemptUpdateOne) SetStatus(v lifecycle.DeliveryStatus) *WebhookDeliveryAttemptUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WebhookDeliveryAttemptUpdateOne) SetNillableStatus(v *lifecycle.DeliveryStatus) *WebhookDeliveryAttemptUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttemptCount sets the "attempt_count" field.
func (_u *WebhookDeliveryAttemptUpdateOne) SetAttemptCount(v int) *WebhookDeliveryAttemptUpdateOne {
	_u.mutation.ResetAttemptCount()
	_u.mutation.SetAttemptCount(v)
	return _u
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_u *WebhookDeliveryAttemptUpdateOne) SetNillableAttemptCount(v *int) *WebhookDeliveryAttemptUpdateOne {
	if v != nil {
		_u.SetAttemptCount(*v)
	}
	return _u
}

// AddAttemptCount adds value to the "attempt_count" field.
func (_u *WebhookDeliveryAttemptUpdateOne) AddAttemptCount(v int) *WebhookDeliveryAttemptUpdateOne {
	_u.mutation.AddAttemptCount(v)
	return _u
}

// SetResponseBodies sets the "response_bodies" field.
func (_u *WebhookDeliveryAttemptUpdateOne) SetResponseBodies(v []string) *WebhookDeliveryAttemptUpdateOne {
	_u.mutation.SetResponseBodies(v)
	return _u
}

// AppendResponseBodies appends value to the "response_bodies" field.
func (_u *WebhookDeliveryAttemptUpdateOne) AppendResponseBodies(v []string) *WebhookDeliveryAttemptUpdateOne {
	_u.mutation.AppendResponseBodies(v)
	return _u
}

// ClearResponseBodies clears the value of the "response_bodies" field.
func (_u *WebhookDeliveryAttemptUpdateOne) ClearResponseBodies() *WebhookDeliveryAttemptUpdateOne {
	_u.mutation.ClearResponseBodies()
	return _u
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (_u *WebhookDeliveryAttemptUpdateOne) SetNextAttemptAt(v time.Time) *WebhookDeliveryAttemptUpdateOne {
	_u.mutation.SetNextAttemptAt(v)
	return _u
}

// SetNillableNextAttemptAt sets the "next_attempt_at" field if the given value is not nil.
func (_u *WebhookDeliveryAttemptUpdateOne) SetNillableNextAttemptAt(v *time.Time) *WebhookDeliveryAttemptUpdateOne {
	if v != nil {
		_u.SetNextAttemptAt(*v)
	}
	return _u
}

// ClearNextAttemptAt clears the value of the "next_attempt_at" field.
func (_u *WebhookDeliveryAttemptUpdateOne) ClearNextAttemptAt() *WebhookDeliveryAttemptUpdateOne {
	_u.mutation.ClearNextAttemptAt()
	return _u
}

// SetLastAttemptedAt sets the "last_attempted_at" field.
func (_u *WebhookDeliveryAttemptUpdateOne) SetLastAttemptedAt(v time.Time) *WebhookDeliveryAttemptUpdateOne {
	_u.mutation.SetLastAttemptedAt(v)
	return _u
}

// SetNillableLastAttemptedAt sets the "last_attempted_at" field if the given value is not nil.
func (_u *WebhookDeliveryAttemptUpdateOne) SetNillableLastAttemptedAt(v *time.Time) *WebhookDeliveryAttemptUpdateOne {
	if v != nil {
		_u.SetLastAttemptedAt(*v)
	}
	return _u
}

// ClearLastAttemptedAt clears the value of the "last_attempted_at" field.
func (_u *WebhookDeliveryAttemptUpdateOne) ClearLastAttemptedAt() *WebhookDeliveryAttemptUpdateOne {
	_u.mutation.ClearLastAttemptedAt()
	return _u
}

// SetSucceededAt sets the "succeeded_at" field.
func (_u *WebhookDeliveryAttemptUpdateOne) SetSucceededAt(v time.Time) *WebhookDeliveryAttemptUpdateOne {
	_u.mutation.SetSucceededAt(v)
	return _u
}

// SetNillableSucceededAt sets the "succeeded_at" field if the given value is not nil.
func (_u *WebhookDeliveryAttemptUpdateOne) SetNillableSucceededAt(v *time.Time) *WebhookDeliveryAttemptUpdateOne {
	if v != nil {
		_u.SetSucceededAt(*v)
	}
	return _u
}

// ClearSucceededAt clears the value of the "succeeded_at" field.
func (_u *WebhookDeliveryAttemptUpdateOne) ClearSucceededAt() *WebhookDeliveryAttemptUpdateOne {
	_u.mutation.ClearSucceededAt()
	return _u
}

// Mutation returns the WebhookDeliveryAttemptMutation object of the builder.
func (_u *WebhookDeliveryAttemptUpdateOne) Mutation() *WebhookDeliveryAttemptMutation {
	return _u.mutation
}

// Where appends a list predicates to the WebhookDeliveryAttemptUpdate builder.
func (_u *WebhookDeliveryAttemptUpdateOne) Where(ps ...predicate.WebhookDeliveryAttempt) *WebhookDeliveryAttemptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WebhookDeliveryAttemptUpdateOne) Select(field string, fields ...string) *WebhookDeliveryAttemptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WebhookDeliveryAttempt entity.
func (_u *WebhookDeliveryAttemptUpdateOne) Save(ctx context.Context) (*WebhookDeliveryAttempt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WebhookDeliveryAttemptUpdateOne) SaveX(ctx context.Context) *WebhookDeliveryAttempt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WebhookDeliveryAttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WebhookDeliveryAttemptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WebhookDeliveryAttemptUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := webhookdeliveryattempt.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WebhookDeliveryAttempt.status": %w`, err)}
		}
	}
	if _u.mutation.SubscriptionCleared() && len(_u.mutation.SubscriptionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WebhookDeliveryAttempt.subscription"`)
	}
	return nil
}

func (_u *WebhookDeliveryAttemptUpdateOne) sqlSave(ctx context.Context) (_node *WebhookDeliveryAttempt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(webhookdeliveryattempt.Table, webhookdeliveryattempt.Columns, sqlgraph.NewFieldSpec(webhookdeliveryattempt.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WebhookDeliveryAttempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, webhookdeliveryattempt.FieldID)
		for _, f := range fields {
			if !webhookdeliveryattempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != webhookdeliveryattempt.FieldID {
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
	if value, ok := _u.mutation.BotID(); ok {
		_spec.SetField(webhookdeliveryattempt.FieldBotID, field.TypeString, value)
	}
	if _u.mutation.BotIDCleared() {
		_spec.ClearField(webhookdeliveryattempt.FieldBotID, field.TypeString)
	}
	if value, ok := _u.mutation.CalendarID(); ok {
		_spec.SetField(webhookdeliveryattempt.FieldCalendarID, field.TypeString, value)
	}
	if _u.mutation.CalendarIDCleared() {
		_spec.ClearField(webhookdeliveryattempt.FieldCalendarID, field.TypeString)
	}
	if value, ok := _u.mutation.ZoomOauthConnectionID(); ok {
		_spec.SetField(webhookdeliveryattempt.FieldZoomOauthConnectionID, field.TypeString, value)
	}
	if _u.mutation.ZoomOauthConnectionIDCleared() {
		_spec.ClearField(webhookdeliveryattempt.FieldZoomOauthConnectionID, field.TypeString)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(webhookdeliveryattempt.FieldTrigger, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTrigger(); ok {
		_spec.AddField(webhookdeliveryattempt.FieldTrigger, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(webhookdeliveryattempt.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(webhookdeliveryattempt.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AttemptCount(); ok {
		_spec.SetField(webhookdeliveryattempt.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptCount(); ok {
		_spec.AddField(webhookdeliveryattempt.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ResponseBodies(); ok {
		_spec.SetField(webhookdeliveryattempt.FieldResponseBodies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResponseBodies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, webhookdeliveryattempt.FieldResponseBodies, value)
		})
	}
	if _u.mutation.ResponseBodiesCleared() {
		_spec.ClearField(webhookdeliveryattempt.FieldResponseBodies, field.TypeJSON)
	}
	if value, ok := _u.mutation.NextAttemptAt(); ok {
		_spec.SetField(webhookdeliveryattempt.FieldNextAttemptAt, field.TypeTime, value)
	}
	if _u.mutation.NextAttemptAtCleared() {
		_spec.ClearField(webhookdeliveryattempt.FieldNextAttemptAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastAttemptedAt(); ok {
		_spec.SetField(webhookdeliveryattempt.FieldLastAttemptedAt, field.TypeTime, value)
	}
	if _u.mutation.LastAttemptedAtCleared() {
		_spec.ClearField(webhookdeliveryattempt.FieldLastAttemptedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.SucceededAt(); ok {
		_spec.SetField(webhookdeliveryattempt.FieldSucceededAt, field.TypeTime, value)
	}
	if _u.mutation.SucceededAtCleared() {
		_spec.ClearField(webhookdeliveryattempt.FieldSucceededAt, field.TypeTime)
	}
	_node = &WebhookDeliveryAttempt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{webhookdeliveryattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
