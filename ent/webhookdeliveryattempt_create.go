// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stenobot-io/stenobot/ent/webhookdeliveryattempt"
	"github.com/stenobot-io/stenobot/ent/webhooksubscription"
	"github.com/stenobot-io/stenobot/pkg/lifecycle"
)

// WebhookDeliveryAttemptCreate is the builder for creating a WebhookDeliveryAttempt entity.
type WebhookDeliveryAttemptCreate struct {
	config
	mutation *WebhookDeliveryAttemptMutation
	hooks    []Hook
}

// SetSubscriptionID sets the "subscription_id" field.
func (_c *WebhookDeliveryAttemptCreate) SetSubscriptionID(v string) *WebhookDeliveryAttemptCreate {
	_c.mutation.SetSubscriptionID(v)
	return _c
}

// SetBotID sets the "bot_id" field.
func (_c *WebhookDeliveryAttemptCreate) SetBotID(v string) *WebhookDeliveryAttemptCreate {
	_c.mutation.SetBotID(v)
	return _c
}

// SetNillableBotID sets the "bot_id" field if the given value is not nil.
func (_c *WebhookDeliveryAttemptCreate) SetNillableBotID(v *string) *WebhookDeliveryAttemptCreate {
	if v != nil {
		_c.SetBotID(*v)
	}
	return _c
}

// SetCalendarID sets the "calendar_id" field.
func (_c *WebhookDeliveryAttemptCreate) SetCalendarID(v string) *WebhookDeliveryAttemptCreate {
	_c.mutation.SetCalendarID(v)
	return _c
}

// SetNillableCalendarID sets the "calendar_id" field if the given value is not nil.
func (_c *WebhookDeliveryAttemptCreate) SetNillableCalendarID(v *string) *WebhookDeliveryAttemptCreate {
	if v != nil {
		_c.SetCalendarID(*v)
	}
	return _c
}

// SetZoomOauthConnectionID sets the "zoom_oauth_connection_id" field.
func (_c *WebhookDeliveryAttemptCreate) SetZoomOauthConnectionID(v string) *WebhookDeliveryAttemptCreate {
	_c.mutation.SetZoomOauthConnectionID(v)
	return _c
}

// SetNillableZoomOauthConnectionID sets the "zoom_oauth_connection_id" field if the given value is not nil.
func (_c *WebhookDeliveryAttemptCreate) SetNillableZoomOauthConnectionID(v *string) *WebhookDeliveryAttemptCreate {
	if v != nil {
		_c.SetZoomOauthConnectionID(*v)
	}
	return _c
}

// SetTrigger sets the "trigger" field.
func (_c *WebhookDeliveryAttemptCreate) SetTrigger(v lifecycle.TriggerKind) *WebhookDeliveryAttemptCreate {
	_c.mutation.SetTrigger(v)
	return _c
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_c *WebhookDeliveryAttemptCreate) SetIdempotencyKey(v string) *WebhookDeliveryAttemptCreate {
	_c.mutation.SetIdempotencyKey(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *WebhookDeliveryAttemptCreate) SetPayload(v map[string]interface{}) *WebhookDeliveryAttemptCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *WebhookDeliveryAttemptCreate) SetStatus(v lifecycle.DeliveryStatus) *WebhookDeliveryAttemptCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *WebhookDeliveryAttemptCreate) SetNillableStatus(v *lifecycle.DeliveryStatus) *WebhookDeliveryAttemptCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAttemptCount sets the "attempt_count" field.
func (_c *WebhookDeliveryAttemptCreate) SetAttemptCount(v int) *WebhookDeliveryAttemptCreate {
	_c.mutation.SetAttemptCount(v)
	return _c
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_c *WebhookDeliveryAttemptCreate) SetNillableAttemptCount(v *int) *WebhookDeliveryAttemptCreate {
	if v != nil {
		_c.SetAttemptCount(*v)
	}
	return _c
}

// SetResponseBodies sets the "response_bodies" field.
func (_c *WebhookDeliveryAttemptCreate) SetResponseBodies(v []string) *WebhookDeliveryAttemptCreate {
	_c.mutation.SetResponseBodies(v)
	return _c
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (_c *WebhookDeliveryAttemptCreate) SetNextAttemptAt(v time.Time) *WebhookDeliveryAttemptCreate {
	_c.mutation.SetNextAttemptAt(v)
	return _c
}

// SetNillableNextAttemptAt sets the "next_attempt_at" field if the given value is not nil.
func (_c *WebhookDeliveryAttemptCreate) SetNillableNextAttemptAt(v *time.Time) *WebhookDeliveryAttemptCreate {
	if v != nil {
		_c.SetNextAttemptAt(*v)
	}
	return _c
}

// SetLastAttemptedAt sets the "last_attempted_at" field.
func (_c *WebhookDeliveryAttemptCreate) SetLastAttemptedAt(v time.Time) *WebhookDeliveryAttemptCreate {
	_c.mutation.SetLastAttemptedAt(v)
	return _c
}

// SetNillableLastAttemptedAt sets the "last_attempted_at" field if the given value is not nil.
func (_c *WebhookDeliveryAttemptCreate) SetNillableLastAttemptedAt(v *time.Time) *WebhookDeliveryAttemptCreate {
	if v != nil {
		_c.SetLastAttemptedAt(*v)
	}
	return _c
}

// SetSucceededAt sets the "succeeded_at" field.
func (_c *WebhookDeliveryAttemptCreate) SetSucceededAt(v time.Time) *WebhookDeliveryAttemptCreate {
	_c.mutation.SetSucceededAt(v)
	return _c
}

// SetNillableSucceededAt sets the "succeeded_at" field if the given value is not nil.
func (_c *WebhookDeliveryAttemptCreate) SetNillableSucceededAt(v *time.Time) *WebhookDeliveryAttemptCreate {
	if v != nil {
		_c.SetSucceededAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WebhookDeliveryAttemptCreate) SetCreatedAt(v time.Time) *WebhookDeliveryAttemptCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WebhookDeliveryAttemptCreate) SetNillableCreatedAt(v *time.Time) *WebhookDeliveryAttemptCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WebhookDeliveryAttemptCreate) SetID(v string) *WebhookDeliveryAttemptCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSubscription sets the "subscription" edge to the WebhookSubscription entity.
func (_c *WebhookDeliveryAttemptCreate) SetSubscription(v *WebhookSubscription) *WebhookDeliveryAttemptCreate {
	return _c.SetSubscriptionID(v.ID)
}

// Mutation returns the WebhookDeliveryAttemptMutation object of the builder.
func (_c *WebhookDeliveryAttemptCreate) Mutation() *WebhookDeliveryAttemptMutation {
	return _c.mutation
}

// Save creates the WebhookDeliveryAttempt in the database.
func (_c *WebhookDeliveryAttemptCreate) Save(ctx context.Context) (*WebhookDeliveryAttempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WebhookDeliveryAttemptCreate) SaveX(ctx context.Context) *WebhookDeliveryAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WebhookDeliveryAttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WebhookDeliveryAttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WebhookDeliveryAttemptCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := webhookdeliveryattempt.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.AttemptCount(); !ok {
		v := webhookdeliveryattempt.DefaultAttemptCount
		_c.mutation.SetAttemptCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := webhookdeliveryattempt.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WebhookDeliveryAttemptCreate) check() error {
	if _, ok := _c.mutation.SubscriptionID(); !ok {
		return &ValidationError{Name: "subscription_id", err: errors.New(`ent: missing required field "WebhookDeliveryAttempt.subscription_id"`)}
	}
	if _, ok := _c.mutation.Trigger(); !ok {
		return &ValidationError{Name: "trigger", err: errors.New(`ent: missing required field "WebhookDeliveryAttempt.trigger"`)}
	}
	if _, ok := _c.mutation.IdempotencyKey(); !ok {
		return &ValidationError{Name: "idempotency_key", err: errors.New(`ent: missing required field "WebhookDeliveryAttempt.idempotency_key"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "WebhookDeliveryAttempt.payload"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "WebhookDeliveryAttempt.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := webhookdeliveryattempt.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WebhookDeliveryAttempt.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AttemptCount(); !ok {
		return &ValidationError{Name: "attempt_count", err: errors.New(`ent: missing required field "WebhookDeliveryAttempt.attempt_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WebhookDeliveryAttempt.created_at"`)}
	}
	if len(_c.mutation.SubscriptionIDs()) == 0 {
		return &ValidationError{Name: "subscription", err: errors.New(`ent: missing required edge "WebhookDeliveryAttempt.subscription"`)}
	}
	return nil
}

func (_c *WebhookDeliveryAttemptCreate) sqlSave(ctx context.Context) (*WebhookDeliveryAttempt, error) {
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
			return nil, fmt.Errorf("unexpected WebhookDeliveryAttempt.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WebhookDeliveryAttemptCreate) createSpec() (*WebhookDeliveryAttempt, *sqlgraph.CreateSpec) {
	var (
		_node = &WebhookDeliveryAttempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(webhookdeliveryattempt.Table, sqlgraph.NewFieldSpec(webhookdeliveryattempt.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.BotID(); ok {
		_spec.SetField(webhookdeliveryattempt.FieldBotID, field.TypeString, value)
		_node.BotID = &value
	}
	if value, ok := _c.mutation.CalendarID(); ok {
		_spec.SetField(webhookdeliveryattempt.FieldCalendarID, field.TypeString, value)
		_node.CalendarID = &value
	}
	if value, ok := _c.mutation.ZoomOauthConnectionID(); ok {
		_spec.SetField(webhookdeliveryattempt.FieldZoomOauthConnectionID, field.TypeString, value)
		_node.ZoomOauthConnectionID = &value
	}
	if value, ok := _c.mutation.Trigger(); ok {
		_spec.SetField(webhookdeliveryattempt.FieldTrigger, field.TypeInt, value)
		_node.Trigger = value
	}
	if value, ok := _c.mutation.IdempotencyKey(); ok {
		_spec.SetField(webhookdeliveryattempt.FieldIdempotencyKey, field.TypeString, value)
		_node.IdempotencyKey = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(webhookdeliveryattempt.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(webhookdeliveryattempt.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.AttemptCount(); ok {
		_spec.SetField(webhookdeliveryattempt.FieldAttemptCount, field.TypeInt, value)
		_node.AttemptCount = value
	}
	if value, ok := _c.mutation.ResponseBodies(); ok {
		_spec.SetField(webhookdeliveryattempt.FieldResponseBodies, field.TypeJSON, value)
		_node.ResponseBodies = value
	}
	if value, ok := _c.mutation.NextAttemptAt(); ok {
		_spec.SetField(webhookdeliveryattempt.FieldNextAttemptAt, field.TypeTime, value)
		_node.NextAttemptAt = &value
	}
	if value, ok := _c.mutation.LastAttemptedAt(); ok {
		_spec.SetField(webhookdeliveryattempt.FieldLastAttemptedAt, field.TypeTime, value)
		_node.LastAttemptedAt = &value
	}
	if value, ok := _c.mutation.SucceededAt(); ok {
		_spec.SetField(webhookdeliveryattempt.FieldSucceededAt, field.TypeTime, value)
		_node.SucceededAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(webhookdeliveryattempt.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SubscriptionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   webhookdeliveryattempt.SubscriptionTable,
			Columns: []string{webhookdeliveryattempt.SubscriptionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(webhooksubscription.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SubscriptionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// WebhookDeliveryAttemptCreateBulk is the builder for creating many WebhookDeliveryAttempt entities in bulk.
type WebhookDeliveryAttemptCreateBulk struct {
	config
	err      error
	builders []*WebhookDeliveryAttemptCreate
}

// Save creates the WebhookDeliveryAttempt entities in the database.
func (_c *WebhookDeliveryAttemptCreateBulk) Save(ctx context.Context) ([]*WebhookDeliveryAttempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WebhookDeliveryAttempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WebhookDeliveryAttemptMutation)
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
func (_c *WebhookDeliveryAttemptCreateBulk) SaveX(ctx context.Context) []*WebhookDeliveryAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WebhookDeliveryAttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WebhookDeliveryAttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
