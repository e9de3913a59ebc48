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
	"github.com/stenobot-io/stenobot/ent/projectcredential"
)

// ProjectCredentialCreate is the builder for creating a ProjectCredential entity.
type ProjectCredentialCreate struct {
	config
	mutation *ProjectCredentialMutation
	hooks    []Hook
}

// SetProjectID sets the "project_id" field.
func (_c *ProjectCredentialCreate) SetProjectID(v string) *ProjectCredentialCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetCredentialKind sets the "credential_kind" field.
func (_c *ProjectCredentialCreate) SetCredentialKind(v string) *ProjectCredentialCreate {
	_c.mutation.SetCredentialKind(v)
	return _c
}

// SetEncryptedBlob sets the "encrypted_blob" field.
func (_c *ProjectCredentialCreate) SetEncryptedBlob(v []byte) *ProjectCredentialCreate {
	_c.mutation.SetEncryptedBlob(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProjectCredentialCreate) SetCreatedAt(v time.Time) *ProjectCredentialCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProjectCredentialCreate) SetNillableCreatedAt(v *time.Time) *ProjectCredentialCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProjectCredentialCreate) SetUpdatedAt(v time.Time) *ProjectCredentialCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProjectCredentialCreate) SetNillableUpdatedAt(v *time.Time) *ProjectCredentialCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProjectCredentialCreate) SetID(v string) *ProjectCredentialCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *ProjectCredentialCreate) SetProject(v *Project) *ProjectCredentialCreate {
	return _c.SetProjectID(v.ID)
}

// Mutation returns the ProjectCredentialMutation object of the builder.
func (_c *ProjectCredentialCreate) Mutation() *ProjectCredentialMutation {
	return _c.mutation
}

// Save creates the ProjectCredential in the database.
func (_c *ProjectCredentialCreate) Save(ctx context.Context) (*ProjectCredential, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProjectCredentialCreate) SaveX(ctx context.Context) *ProjectCredential {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProjectCredentialCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProjectCredentialCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProjectCredentialCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := projectcredential.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := projectcredential.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProjectCredentialCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "ProjectCredential.project_id"`)}
	}
	if _, ok := _c.mutation.CredentialKind(); !ok {
		return &ValidationError{Name: "credential_kind", err: errors.New(`ent: missing required field "ProjectCredential.credential_kind"`)}
	}
	if _, ok := _c.mutation.EncryptedBlob(); !ok {
		return &ValidationError{Name: "encrypted_blob", err: errors.New(`ent: missing required field "ProjectCredential.encrypted_blob"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ProjectCredential.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ProjectCredential.updated_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "ProjectCredential.project"`)}
	}
	return nil
}

func (_c *ProjectCredentialCreate) sqlSave(ctx context.Context) (*ProjectCredential, error) {
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
			return nil, fmt.Errorf("unexpected ProjectCredential.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProjectCredentialCreate) createSpec() (*ProjectCredential, *sqlgraph.CreateSpec) {
	var (
		_node = &ProjectCredential{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(projectcredential.Table, sqlgraph.NewFieldSpec(projectcredential.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CredentialKind(); ok {
		_spec.SetField(projectcredential.FieldCredentialKind, field.TypeString, value)
		_node.CredentialKind = value
	}
	if value, ok := _c.mutation.EncryptedBlob(); ok {
		_spec.SetField(projectcredential.FieldEncryptedBlob, field.TypeBytes, value)
		_node.EncryptedBlob = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(projectcredential.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(projectcredential.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   projectcredential.ProjectTable,
			Columns: []string{projectcredential.ProjectColumn},
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
	return _node, _spec
}

// ProjectCredentialCreateBulk is the builder for creating many ProjectCredential entities in bulk.
type ProjectCredentialCreateBulk struct {
	config
	err      error
	builders []*ProjectCredentialCreate
}

// Save creates the ProjectCredential entities in the database.
func (_c *ProjectCredentialCreateBulk) Save(ctx context.Context) ([]*ProjectCredential, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProjectCredential, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProjectCredentialMutation)
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
func (_c *ProjectCredentialCreateBulk) SaveX(ctx context.Context) []*ProjectCredential {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProjectCredentialCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProjectCredentialCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
