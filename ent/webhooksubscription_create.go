// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stenobot-io/stenobot/ent/project"
	"github.com/stenobot-io/stenobot/ent/webhookdeliveryattempt"
	"github.com/stenobot-io/stenobot/ent/webhooksubscription"
	"github.com/stenobot-io/stenobot/pkg/lifecycle"
)

// WebhookSubscriptionCreate is the builder for creating a WebhookSubscription entity.
type WebhookSubscriptionCreate struct {
	config
	mutation *WebhookSubscriptionMutation
	hooks    []Hook
}

// SetProjectID sets the "project_id" field.
func (_c *WebhookSubscriptionCreate) SetProjectID(v string) *WebhookSubscriptionCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetBotID sets the "bot_id" field.
func (_c *WebhookSubscriptionCreate) SetBotID(v string) *WebhookSubscriptionCreate {
	_c.mutation.SetBotID(v)
	return _c
}

// SetNillableBotID sets the "bot_id" field if the given value is not nil.
func (_c *WebhookSubscriptionCreate) SetNillableBotID(v *string) *WebhookSubscriptionCreate {
	if v != nil {
		_c.SetBotID(*v)
	}
	return _c
}

// SetURL sets the "url" field.
func (_c *WebhookSubscriptionCreate) SetURL(v string) *WebhookSubscriptionCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetTriggers sets the "triggers" field.
func (_c *WebhookSubscriptionCreate) SetTriggers(v []lifecycle.TriggerKind) *WebhookSubscriptionCreate {
	_c.mutation.SetTriggers(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *WebhookSubscriptionCreate) SetIsActive(v bool) *WebhookSubscriptionCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *WebhookSubscriptionCreate) SetNillableIsActive(v *bool) *WebhookSubscriptionCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WebhookSubscriptionCreate) SetCreatedAt(v time.Time) *WebhookSubscriptionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WebhookSubscriptionCreate) SetNillableCreatedAt(v *time.Time) *WebhookSubscriptionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WebhookSubscriptionCreate) SetID(v string) *WebhookSubscriptionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *WebhookSubscriptionCreate) SetProject(v *Project) *WebhookSubscriptionCreate {
	return _c.SetProjectID(v.ID)
}

// AddDeliveryAttemptIDs adds the "delivery_attempts" edge to the WebhookDeliveryAttempt entity by IDs.
func (_c *WebhookSubscriptionCreate) AddDeliveryAttemptIDs(ids ...string) *WebhookSubscriptionCreate {
	_c.mutation.AddDeliveryAttemptIDs(ids...)
	return _c
}

// AddDeliveryAttempts adds the "delivery_attempts" edges to the WebhookDeliveryAttempt entity.
func (_c *WebhookSubscriptionCreate) AddDeliveryAttempts(v ...*WebhookDeliveryAttempt) *WebhookSubscriptionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDeliveryAttemptIDs(ids...)
}

// Mutation returns the WebhookSubscriptionMutation object of the builder.
func (_c *WebhookSubscriptionCreate) Mutation() *WebhookSubscriptionMutation {
	return _c.mutation
}

// Save creates the WebhookSubscription in the database.
func (_c *WebhookSubscriptionCreate) Save(ctx context.Context) (*WebhookSubscription, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WebhookSubscriptionCreate) SaveX(ctx context.Context) *WebhookSubscription {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WebhookSubscriptionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WebhookSubscriptionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WebhookSubscriptionCreate) defaults() {
	if _, ok := _c.mutation.IsActive(); !ok {
		v := webhooksubscription.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := webhooksubscription.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WebhookSubscriptionCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "WebhookSubscription.project_id"`)}
	}
	if _, ok := _c.mutation.URL(); !ok {
		return &ValidationError{Name: "url", err: errors.New(`ent: missing required field "WebhookSubscription.url"`)}
	}
	if _, ok := _c.mutation.Triggers(); !ok {
		return &ValidationError{Name: "triggers", err: errors.New(`ent: missing required field "WebhookSubscription.triggers"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "WebhookSubscription.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WebhookSubscription.created_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "WebhookSubscription.project"`)}
	}
	return nil
}

func (_c *WebhookSubscriptionCreate) sqlSave(ctx context.Context) (*WebhookSubscription, error) {
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
			return nil, fmt.Errorf("unexpected WebhookSubscription.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WebhookSubscriptionCreate) createSpec() (*WebhookSubscription, *sqlgraph.CreateSpec) {
	var (
		_node = &WebhookSubscription{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(webhooksubscription.Table, sqlgraph.NewFieldSpec(webhooksubscription.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.BotID(); ok {
		_spec.SetField(webhooksubscription.FieldBotID, field.TypeString, value)
		_node.BotID = &value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(webhooksubscription.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.Triggers(); ok {
		_spec.SetField(webhooksubscription.FieldTriggers, field.TypeJSON, value)
		_node.Triggers = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(webhooksubscription.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(webhooksubscription.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   webhooksubscription.ProjectTable,
			Columns: []string{webhooksubscription.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProjectID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DeliveryAttemptsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// WebhookSubscriptionCreateBulk is the builder for creating many WebhookSubscription entities in bulk.
type WebhookSubscriptionCreateBulk struct {
	config
	err      error
	builders []*WebhookSubscriptionCreate
}

// Save creates the WebhookSubscription entities in the database.
func (_c *WebhookSubscriptionCreateBulk) Save(ctx context.Context) ([]*WebhookSubscription, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WebhookSubscription, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WebhookSubscriptionMutation)
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
func (_c *WebhookSubscriptionCreateBulk) SaveX(ctx context.Context) []*WebhookSubscription {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WebhookSubscriptionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WebhookSubscriptionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
