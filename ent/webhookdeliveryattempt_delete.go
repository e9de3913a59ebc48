// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stenobot-io/stenobot/ent/predicate"
	"github.com/stenobot-io/stenobot/ent/webhookdeliveryattempt"
)

// WebhookDeliveryAttemptDelete is the builder for deleting a WebhookDeliveryAttempt entity.
type WebhookDeliveryAttemptDelete struct {
	config
	hooks    []Hook
	mutation *WebhookDeliveryAttemptMutation
}

// Where appends a list predicates to the WebhookDeliveryAttemptDelete builder.
func (_d *WebhookDeliveryAttemptDelete) Where(ps ...predicate.WebhookDeliveryAttempt) *WebhookDeliveryAttemptDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *WebhookDeliveryAttemptDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *WebhookDeliveryAttemptDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *WebhookDeliveryAttemptDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(webhookdeliveryattempt.Table, sqlgraph.NewFieldSpec(webhookdeliveryattempt.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// WebhookDeliveryAttemptDeleteOne is the builder for deleting a single WebhookDeliveryAttempt entity.
type WebhookDeliveryAttemptDeleteOne struct {
	_d *WebhookDeliveryAttemptDelete
}

// Where appends a list predicates to the WebhookDeliveryAttemptDelete builder.
func (_d *WebhookDeliveryAttemptDeleteOne) Where(ps ...predicate.WebhookDeliveryAttempt) *WebhookDeliveryAttemptDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *WebhookDeliveryAttemptDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{webhookdeliveryattempt.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *WebhookDeliveryAttemptDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
