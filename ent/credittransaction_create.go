// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stenobot-io/stenobot/ent/credittransaction"
	"github.com/stenobot-io/stenobot/ent/organization"
)

// CreditTransactionCreate is the builder for creating a CreditTransaction entity.
type CreditTransactionCreate struct {
	config
	mutation *CreditTransactionMutation
	hooks    []Hook
}

// SetOrganizationID sets the "organization_id" field.
func (_c *CreditTransactionCreate) SetOrganizationID(v string) *CreditTransactionCreate {
	_c.mutation.SetOrganizationID(v)
	return _c
}

// SetParentTransactionID sets the "parent_transaction_id" field.
func (_c *CreditTransactionCreate) SetParentTransactionID(v string) *CreditTransactionCreate {
	_c.mutation.SetParentTransactionID(v)
	return _c
}

// SetNillableParentTransactionID sets the "parent_transaction_id" field if the given value is not nil.
func (_c *CreditTransactionCreate) SetNillableParentTransactionID(v *string) *CreditTransactionCreate {
	if v != nil {
		_c.SetParentTransactionID(*v)
	}
	return _c
}

// SetCenticreditsBefore sets the "centicredits_before" field.
func (_c *CreditTransactionCreate) SetCenticreditsBefore(v int64) *CreditTransactionCreate {
	_c.mutation.SetCenticreditsBefore(v)
	return _c
}

// SetCenticreditsAfter sets the "centicredits_after" field.
func (_c *CreditTransactionCreate) SetCenticreditsAfter(v int64) *CreditTransactionCreate {
	_c.mutation.SetCenticreditsAfter(v)
	return _c
}

// SetCenticreditsDelta sets the "centicredits_delta" field.
func (_c *CreditTransactionCreate) SetCenticreditsDelta(v int64) *CreditTransactionCreate {
	_c.mutation.SetCenticreditsDelta(v)
	return _c
}

// SetBotID sets the "bot_id" field.
func (_c *CreditTransactionCreate) SetBotID(v string) *CreditTransactionCreate {
	_c.mutation.SetBotID(v)
	return _c
}

// SetNillableBotID sets the "bot_id" field if the given value is not nil.
func (_c *CreditTransactionCreate) SetNillableBotID(v *string) *CreditTransactionCreate {
	if v != nil {
		_c.SetBotID(*v)
	}
	return _c
}

// SetStripePaymentIntentID sets the "stripe_payment_intent_id" field.
func (_c *CreditTransactionCreate) SetStripePaymentIntentID(v string) *CreditTransactionCreate {
	_c.mutation.SetStripePaymentIntentID(v)
	return _c
}

// SetNillableStripePaymentIntentID sets the "stripe_payment_intent_id" field if the given value is not nil.
func (_c *CreditTransactionCreate) SetNillableStripePaymentIntentID(v *string) *CreditTransactionCreate {
	if v != nil {
		_c.SetStripePaymentIntentID(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *CreditTransactionCreate) SetDescription(v string) *CreditTransactionCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *CreditTransactionCreate) SetNillableDescription(v *string) *CreditTransactionCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CreditTransactionCreate) SetCreatedAt(v time.Time) *CreditTransactionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CreditTransactionCreate) SetNillableCreatedAt(v *time.Time) *CreditTransactionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CreditTransactionCreate) SetID(v string) *CreditTransactionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetOrganization sets the "organization" edge to the Organization entity.
func (_c *CreditTransactionCreate) SetOrganization(v *Organization) *CreditTransactionCreate {
	return _c.SetOrganizationID(v.ID)
}

// SetParentID sets the "parent" edge to the CreditTransaction entity by ID.
func (_c *CreditTransactionCreate) SetParentID(id string) *CreditTransactionCreate {
	_c.mutation.SetParentID(id)
	return _c
}

// SetNillableParentID sets the "parent" edge to the CreditTransaction entity by ID if the given value is not nil.
func (_c *CreditTransactionCreate) SetNillableParentID(id *string) *CreditTransactionCreate {
	if id != nil {
		_c = _c.SetParentID(*id)
	}
	return _c
}

// SetParent sets the "parent" edge to the CreditTransaction entity.
func (_c *CreditTransactionCreate) SetParent(v *CreditTransaction) *CreditTransactionCreate {
	return _c.SetParentID(v.ID)
}

// AddChildIDs adds the "children" edge to the CreditTransaction entity by IDs.
func (_c *CreditTransactionCreate) AddChildIDs(ids ...string) *CreditTransactionCreate {
	_c.mutation.AddChildIDs(ids...)
	return _c
}

// AddChildren adds the "children" edges to the CreditTransaction entity.
func (_c *CreditTransactionCreate) AddChildren(v ...*CreditTransaction) *CreditTransactionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddChildIDs(ids...)
}

// Mutation returns the CreditTransactionMutation object of the builder.
func (_c *CreditTransactionCreate) Mutation() *CreditTransactionMutation {
	return _c.mutation
}

// Save creates the CreditTransaction in the database.
func (_c *CreditTransactionCreate) Save(ctx context.Context) (*CreditTransaction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CreditTransactionCreate) SaveX(ctx context.Context) *CreditTransaction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CreditTransactionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CreditTransactionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CreditTransactionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := credittransaction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CreditTransactionCreate) check() error {
	if _, ok := _c.mutation.OrganizationID(); !ok {
		return &ValidationError{Name: "organization_id", err: errors.New(`ent: missing required field "CreditTransaction.organization_id"`)}
	}
	if _, ok := _c.mutation.CenticreditsBefore(); !ok {
		return &ValidationError{Name: "centicredits_before", err: errors.New(`ent: missing required field "CreditTransaction.centicredits_before"`)}
	}
	if _, ok := _c.mutation.CenticreditsAfter(); !ok {
		return &ValidationError{Name: "centicredits_after", err: errors.New(`ent: missing required field "CreditTransaction.centicredits_after"`)}
	}
	if _, ok := _c.mutation.CenticreditsDelta(); !ok {
		return &ValidationError{Name: "centicredits_delta", err: errors.New(`ent: missing required field "CreditTransaction.centicredits_delta"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CreditTransaction.created_at"`)}
	}
	if len(_c.mutation.OrganizationIDs()) == 0 {
		return &ValidationError{Name: "organization", err: errors.New(`ent: missing required edge "CreditTransaction.organization"`)}
	}
	return nil
}

func (_c *CreditTransactionCreate) sqlSave(ctx context.Context) (*CreditTransaction, error) {
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
			return nil, fmt.Errorf("unexpected CreditTransaction.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CreditTransactionCreate) createSpec() (*CreditTransaction, *sqlgraph.CreateSpec) {
	var (
		_node = &CreditTransaction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(credittransaction.Table, sqlgraph.NewFieldSpec(credittransaction.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CenticreditsBefore(); ok {
		_spec.SetField(credittransaction.FieldCenticreditsBefore, field.TypeInt64, value)
		_node.CenticreditsBefore = value
	}
	if value, ok := _c.mutation.CenticreditsAfter(); ok {
		_spec.SetField(credittransaction.FieldCenticreditsAfter, field.TypeInt64, value)
		_node.CenticreditsAfter = value
	}
	if value, ok := _c.mutation.CenticreditsDelta(); ok {
		_spec.SetField(credittransaction.FieldCenticreditsDelta, field.TypeInt64, value)
		_node.CenticreditsDelta = value
	}
	if value, ok := _c.mutation.BotID(); ok {
		_spec.SetField(credittransaction.FieldBotID, field.TypeString, value)
		_node.BotID = &value
	}
	if value, ok := _c.mutation.StripePaymentIntentID(); ok {
		_spec.SetField(credittransaction.FieldStripePaymentIntentID, field.TypeString, value)
		_node.StripePaymentIntentID = &value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(credittransaction.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(credittransaction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.OrganizationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   credittransaction.OrganizationTable,
			Columns: []string{credittransaction.OrganizationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(organization.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.OrganizationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ParentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   credittransaction.ParentTable,
			Columns: []string{credittransaction.ParentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(credittransaction.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ParentTransactionID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ChildrenIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   credittransaction.ChildrenTable,
			Columns: []string{credittransaction.ChildrenColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(credittransaction.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CreditTransactionCreateBulk is the builder for creating many CreditTransaction entities in bulk.
type CreditTransactionCreateBulk struct {
	config
	err      error
	builders []*CreditTransactionCreate
}

// Save creates the CreditTransaction entities in the database.
func (_c *CreditTransactionCreateBulk) Save(ctx context.Context) ([]*CreditTransaction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CreditTransaction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CreditTransactionMutation)
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
func (_c *CreditTransactionCreateBulk) SaveX(ctx context.Context) []*CreditTransaction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CreditTransactionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CreditTransactionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
