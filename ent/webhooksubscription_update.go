// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/stenobot-io/stenobot/ent/predicate"
	"github.com/stenobot-io/stenobot/ent/webhookdeliveryattempt"
	"github.com/stenobot-io/stenobot/ent/webhooksubscription"
	"github.com/stenobot-io/stenobot/pkg/lifecycle"
)

// WebhookSubscriptionUpdate is the builder for updating WebhookSubscription entities.
type WebhookSubscriptionUpdate struct {
	config
	hooks    []Hook
	mutation *WebhookSubscriptionMutation
}

// Where appends a list predicates to the WebhookSubscriptionUpdate builder.
func (_u *WebhookSubscriptionUpdate) Where(ps ...predicate.WebhookSubscription) *WebhookSubscriptionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBotID sets the "bot_id" field.
func (_u *WebhookSubscriptionUpdate) SetBotID(v string) *WebhookSubscriptionUpdate {
	_u.mutation.SetBotID(v)
	return _u
}

// SetNillableBotID sets the "bot_id" field if the given value is not nil.
func (_u *WebhookSubscriptionUpdate) SetNillableBotID(v *string) *WebhookSubscriptionUpdate {
	if v != nil {
		_u.SetBotID(*v)
	}
	return _u
}

// ClearBotID clears the value of the "bot_id" field.
func (_u *WebhookSubscriptionUpdate) ClearBotID() *WebhookSubscriptionUpdate {
	_u.mutation.ClearBotID()
	return _u
}

// SetURL sets the "url" field.
func (_u *WebhookSubscriptionUpdate) SetURL(v string) *WebhookSubscriptionUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *WebhookSubscriptionUpdate) SetNillableURL(v *string) *WebhookSubscriptionUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetTriggers sets the "triggers" field.
func (_u *WebhookSubscriptionUpdate) SetTriggers(v []lifecycle.TriggerKind) *WebhookSubscriptionUpdate {
	_u.mutation.SetTriggers(v)
	return _u
}

// AppendTriggers appends value to the "triggers" field.
func (_u *WebhookSubscriptionUpdate) AppendTriggers(v []lifecycle.TriggerKind) *WebhookSubscriptionUpdate {
	_u.mutation.AppendTriggers(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *WebhookSubscriptionUpdate) SetIsActive(v bool) *WebhookSubscriptionUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *WebhookSubscriptionUpdate) SetNillableIsActive(v *bool) *WebhookSubscriptionUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// AddDeliveryAttemptIDs adds the "delivery_attempts" edge to the WebhookDeliveryAttempt entity by IDs.
func (_u *WebhookSubscriptionUpdate) AddDeliveryAttemptIDs(ids ...string) *WebhookSubscriptionUpdate {
	_u.mutation.AddDeliveryAttemptIDs(ids...)
	return _u
}

// AddDeliveryAttempts adds the "delivery_attempts" edges to the WebhookDeliveryAttempt entity.
func (_u *WebhookSubscriptionUpdate) AddDeliveryAttempts(v ...*WebhookDeliveryAttempt) *WebhookSubscriptionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDeliveryAttemptIDs(ids...)
}

// Mutation returns the WebhookSubscriptionMutation object of the builder.
func (_u *WebhookSubscriptionUpdate) Mutation() *WebhookSubscriptionMutation {
	return _u.mutation
}

// ClearDeliveryAttempts clears all "delivery_attempts" edges to the WebhookDeliveryAttempt entity.
func (_u *WebhookSubscriptionUpdate) ClearDeliveryAttempts() *WebhookSubscriptionUpdate {
	_u.mutation.ClearDeliveryAttempts()
	return _u
}

// RemoveDeliveryAttemptIDs removes the "delivery_attempts" edge to WebhookDeliveryAttempt entities by IDs.
func (_u *WebhookSubscriptionUpdate) RemoveDeliveryAttemptIDs(ids ...string) *WebhookSubscriptionUpdate {
	_u.mutation.RemoveDeliveryAttemptIDs(ids...)
	return _u
}

// RemoveDeliveryAttempts removes "delivery_attempts" edges to WebhookDeliveryAttempt entities.
func (_u *WebhookSubscriptionUpdate) RemoveDeliveryAttempts(v ...*WebhookDeliveryAttempt) *WebhookSubscriptionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDeliveryAttemptIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WebhookSubscriptionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WebhookSubscriptionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WebhookSubscriptionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WebhookSubscriptionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WebhookSubscriptionUpdate) check() error {
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WebhookSubscription.project"`)
	}
	return nil
}

func (_u *WebhookSubscriptionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(webhooksubscription.Table, webhooksubscription.Columns, sqlgraph.NewFieldSpec(webhooksubscription.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BotID(); ok {
		_spec.SetField(webhooksubscription.FieldBotID, field.TypeString, value)
	}
	if _u.mutation.BotIDCleared() {
		_spec.ClearField(webhooksubscription.FieldBotID, field.TypeString)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(webhooksubscription.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Triggers(); ok {
		_spec.SetField(webhooksubscription.FieldTriggers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTriggers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, webhooksubscription.FieldTriggers, value)
		})
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(webhooksubscription.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.DeliveryAttemptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   webhooksubscription.DeliveryAttemptsTable,
			Columns: []string{webhooksubscription.DeliveryAttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(webhookdeliveryattempt.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDeliveryAttemptsIDs(); len(nodes) > 0 && !_u.mutation.DeliveryAttemptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   webhooksubscription.DeliveryAttemptsTable,
			Columns: []string{webhooksubscription.DeliveryAttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(webhookdeliveryattempt.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DeliveryAttemptsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   webhooksubscription.DeliveryAttemptsTable,
			Columns: []string{webhooksubscription.DeliveryAttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(webhookdeliveryattempt.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{webhooksubscription.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WebhookSubscriptionUpdateOne is the builder for updating a single WebhookSubscription entity.
type WebhookSubscriptionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WebhookSubscriptionMutation
}

// SetBotID sets the "bot_id" field.
func (_u *WebhookSubscriptionUpdateOne) SetBotID(v string) *WebhookSubscriptionUpdateOne {
	_u.mutation.SetBotID(v)
	return _u
}

// SetNillableBotID sets the "bot_id" field if the given value is not nil.
func (_u *WebhookSubscriptionUpdateOne) SetNillableBotID(v *string) *WebhookSubscriptionUpdateOne {
	if v != nil {
		_u.SetBotID(*v)
	}
	return _u
}

// ClearBotID clears the value of the "bot_id" field.
func (_u *WebhookSubscriptionUpdateOne) ClearBotID() *WebhookSubscriptionUpdateOne {
	_u.mutation.ClearBotID()
	return _u
}

// SetURL sets the "url" field.
func (_u *WebhookSubscriptionUpdateOne) SetURL(v string) *WebhookSubscriptionUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *WebhookSubscriptionUpdateOne) SetNillableURL(v *string) *WebhookSubscriptionUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetTriggers sets the "triggers" field.
func (_u *WebhookSubscriptionUpdateOne) SetTriggers(v []lifecycle.TriggerKind) *WebhookSubscriptionUpdateOne {
	_u.mutation.SetTriggers(v)
	return _u
}

// AppendTriggers appends value to the "triggers" field.
func (_u *WebhookSubscriptionUpdateOne) AppendTriggers(v []lifecycle.TriggerKind) *WebhookSubscriptionUpdateOne {
	_u.mutation.AppendTriggers(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *WebhookSubscriptionUpdateOne) SetIsActive(v bool) *WebhookSubscriptionUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *WebhookSubscriptionUpdateOne) SetNillableIsActive(v *bool) *WebhookSubscriptionUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// AddDeliveryAttemptIDs adds the "delivery_attempts" edge to the WebhookDeliveryAttempt entity by IDs.
func (_u *WebhookSubscriptionUpdateOne) AddDeliveryAttemptIDs(ids ...string) *WebhookSubscriptionUpdateOne {
	_u.mutation.AddDeliveryAttemptIDs(ids...)
	return _u
}

// AddDeliveryAttempts adds the "delivery_attempts" edges to the WebhookDeliveryAttempt entity.
func (_u *WebhookSubscriptionUpdateOne) AddDeliveryAttempts(v ...*WebhookDeliveryAttempt) *WebhookSubscriptionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDeliveryAttemptIDs(ids...)
}

// Mutation returns the WebhookSubscriptionMutation object of the builder.
func (_u *WebhookSubscriptionUpdateOne) Mutation() *WebhookSubscriptionMutation {
	return _u.mutation
}

// ClearDeliveryAttempts clears all "delivery_attempts" edges to the WebhookDeliveryAttempt entity.
func (_u *WebhookSubscriptionUpdateOne) ClearDeliveryAttempts() *WebhookSubscriptionUpdateOne {
	_u.mutation.ClearDeliveryAttempts()
	return _u
}

// RemoveDeliveryAttemptIDs removes the "delivery_attempts" edge to WebhookDeliveryAttempt entities by IDs.
func (_u *WebhookSubscriptionUpdateOne) RemoveDeliveryAttemptIDs(ids ...string) *WebhookSubscriptionUpdateOne {
	_u.mutation.RemoveDeliveryAttemptIDs(ids...)
	return _u
}

// RemoveDeliveryAttempts removes "delivery_attempts" edges to WebhookDeliveryAttempt entities.
func (_u *WebhookSubscriptionUpdateOne) RemoveDeliveryAttempts(v ...*WebhookDeliveryAttempt) *WebhookSubscriptionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDeliveryAttemptIDs(ids...)
}

// Where appends a list predicates to the WebhookSubscriptionUpdate builder.
func (_u *WebhookSubscriptionUpdateOne) Where(ps ...predicate.WebhookSubscription) *WebhookSubscriptionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WebhookSubscriptionUpdateOne) Select(field string, fields ...string) *WebhookSubscriptionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WebhookSubscription entity.
func (_u *WebhookSubscriptionUpdateOne) Save(ctx context.Context) (*WebhookSubscription, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WebhookSubscriptionUpdateOne) SaveX(ctx context.Context) *WebhookSubscription {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WebhookSubscriptionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WebhookSubscriptionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WebhookSubscriptionUpdateOne) check() error {
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WebhookSubscription.project"`)
	}
	return nil
}

func (_u *WebhookSubscriptionUpdateOne) sqlSave(ctx context.Context) (_node *WebhookSubscription, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(webhooksubscription.Table, webhooksubscription.Columns, sqlgraph.NewFieldSpec(webhooksubscription.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WebhookSubscription.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, webhooksubscription.FieldID)
		for _, f := range fields {
			if !webhooksubscription.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != webhooksubscription.FieldID {
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
		_spec.SetField(webhooksubscription.FieldBotID, field.TypeString, value)
	}
	if _u.mutation.BotIDCleared() {
		_spec.ClearField(webhooksubscription.FieldBotID, field.TypeString)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(webhooksubscription.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Triggers(); ok {
		_spec.SetField(webhooksubscription.FieldTriggers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTriggers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, webhooksubscription.FieldTriggers, value)
		})
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(webhooksubscription.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.DeliveryAttemptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   webhooksubscription.DeliveryAttemptsTable,
			Columns: []string{webhooksubscription.DeliveryAttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(webhookdeliveryattempt.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDeliveryAttemptsIDs(); len(nodes) > 0 && !_u.mutation.DeliveryAttemptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   webhooksubscription.DeliveryAttemptsTable,
			Columns: []string{webhooksubscription.DeliveryAttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(webhookdeliveryattempt.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DeliveryAttemptsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   webhooksubscription.DeliveryAttemptsTable,
			Columns: []string{webhooksubscription.DeliveryAttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(webhookdeliveryattempt.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &WebhookSubscription{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{webhooksubscription.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
