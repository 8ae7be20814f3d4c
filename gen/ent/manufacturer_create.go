// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/machinehub/discovery-pipeline/gen/ent/catalogmachine"
	"github.com/machinehub/discovery-pipeline/gen/ent/discoveredurl"
	"github.com/machinehub/discovery-pipeline/gen/ent/manufacturer"
)

// ManufacturerCreate is the builder for creating a Manufacturer entity.
type ManufacturerCreate struct {
	config
	mutation *ManufacturerMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *ManufacturerCreate) SetName(v string) *ManufacturerCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetWebsite sets the "website" field.
func (_c *ManufacturerCreate) SetWebsite(v string) *ManufacturerCreate {
	_c.mutation.SetWebsite(v)
	return _c
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (_c *ManufacturerCreate) SetNillableWebsite(v *string) *ManufacturerCreate {
	if v != nil {
		_c.SetWebsite(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ManufacturerCreate) SetCreatedAt(v time.Time) *ManufacturerCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ManufacturerCreate) SetNillableCreatedAt(v *time.Time) *ManufacturerCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ManufacturerCreate) SetID(v uuid.UUID) *ManufacturerCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ManufacturerCreate) SetNillableID(v *uuid.UUID) *ManufacturerCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddURLIDs adds the "urls" edge to the DiscoveredURL entity by IDs.
func (_c *ManufacturerCreate) AddURLIDs(ids ...uuid.UUID) *ManufacturerCreate {
	_c.mutation.AddURLIDs(ids...)
	return _c
}

// AddUrls adds the "urls" edges to the DiscoveredURL entity.
func (_c *ManufacturerCreate) AddUrls(v ...*DiscoveredURL) *ManufacturerCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddURLIDs(ids...)
}

// AddMachineIDs adds the "machines" edge to the CatalogMachine entity by IDs.
func (_c *ManufacturerCreate) AddMachineIDs(ids ...uuid.UUID) *ManufacturerCreate {
	_c.mutation.AddMachineIDs(ids...)
	return _c
}

// AddMachines adds the "machines" edges to the CatalogMachine entity.
func (_c *ManufacturerCreate) AddMachines(v ...*CatalogMachine) *ManufacturerCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMachineIDs(ids...)
}

// Mutation returns the ManufacturerMutation object of the builder.
func (_c *ManufacturerCreate) Mutation() *ManufacturerMutation {
	return _c.mutation
}

// Save creates the Manufacturer in the database.
func (_c *ManufacturerCreate) Save(ctx context.Context) (*Manufacturer, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ManufacturerCreate) SaveX(ctx context.Context) *Manufacturer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ManufacturerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ManufacturerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ManufacturerCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := manufacturer.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := manufacturer.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ManufacturerCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Manufacturer.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := manufacturer.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Manufacturer.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Manufacturer.created_at"`)}
	}
	return nil
}

func (_c *ManufacturerCreate) sqlSave(ctx context.Context) (*Manufacturer, error) {
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
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ManufacturerCreate) createSpec() (*Manufacturer, *sqlgraph.CreateSpec) {
	var (
		_node = &Manufacturer{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(manufacturer.Table, sqlgraph.NewFieldSpec(manufacturer.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(manufacturer.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Website(); ok {
		_spec.SetField(manufacturer.FieldWebsite, field.TypeString, value)
		_node.Website = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(manufacturer.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.UrlsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   manufacturer.UrlsTable,
			Columns: []string{manufacturer.UrlsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(discoveredurl.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MachinesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   manufacturer.MachinesTable,
			Columns: []string{manufacturer.MachinesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(catalogmachine.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ManufacturerCreateBulk is the builder for creating many Manufacturer entities in bulk.
type ManufacturerCreateBulk struct {
	config
	err      error
	builders []*ManufacturerCreate
}

// Save creates the Manufacturer entities in the database.
func (_c *ManufacturerCreateBulk) Save(ctx context.Context) ([]*Manufacturer, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Manufacturer, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ManufacturerMutation)
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
func (_c *ManufacturerCreateBulk) SaveX(ctx context.Context) []*Manufacturer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ManufacturerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ManufacturerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
