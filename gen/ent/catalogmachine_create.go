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
	"github.com/machinehub/discovery-pipeline/gen/ent/manufacturer"
)

// CatalogMachineCreate is the builder for creating a CatalogMachine entity.
type CatalogMachineCreate struct {
	config
	mutation *CatalogMachineMutation
	hooks    []Hook
}

// SetManufacturerID sets the "manufacturer_id" field.
func (_c *CatalogMachineCreate) SetManufacturerID(v uuid.UUID) *CatalogMachineCreate {
	_c.mutation.SetManufacturerID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *CatalogMachineCreate) SetName(v string) *CatalogMachineCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetMachineType sets the "machine_type" field.
func (_c *CatalogMachineCreate) SetMachineType(v string) *CatalogMachineCreate {
	_c.mutation.SetMachineType(v)
	return _c
}

// SetNillableMachineType sets the "machine_type" field if the given value is not nil.
func (_c *CatalogMachineCreate) SetNillableMachineType(v *string) *CatalogMachineCreate {
	if v != nil {
		_c.SetMachineType(*v)
	}
	return _c
}

// SetSpecTokens sets the "spec_tokens" field.
func (_c *CatalogMachineCreate) SetSpecTokens(v []string) *CatalogMachineCreate {
	_c.mutation.SetSpecTokens(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CatalogMachineCreate) SetCreatedAt(v time.Time) *CatalogMachineCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CatalogMachineCreate) SetNillableCreatedAt(v *time.Time) *CatalogMachineCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CatalogMachineCreate) SetUpdatedAt(v time.Time) *CatalogMachineCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CatalogMachineCreate) SetNillableUpdatedAt(v *time.Time) *CatalogMachineCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CatalogMachineCreate) SetID(v uuid.UUID) *CatalogMachineCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CatalogMachineCreate) SetNillableID(v *uuid.UUID) *CatalogMachineCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetManufacturer sets the "manufacturer" edge to the Manufacturer entity.
func (_c *CatalogMachineCreate) SetManufacturer(v *Manufacturer) *CatalogMachineCreate {
	return _c.SetManufacturerID(v.ID)
}

// Mutation returns the CatalogMachineMutation object of the builder.
func (_c *CatalogMachineCreate) Mutation() *CatalogMachineMutation {
	return _c.mutation
}

// Save creates the CatalogMachine in the database.
func (_c *CatalogMachineCreate) Save(ctx context.Context) (*CatalogMachine, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CatalogMachineCreate) SaveX(ctx context.Context) *CatalogMachine {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CatalogMachineCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CatalogMachineCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CatalogMachineCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := catalogmachine.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := catalogmachine.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := catalogmachine.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CatalogMachineCreate) check() error {
	if _, ok := _c.mutation.ManufacturerID(); !ok {
		return &ValidationError{Name: "manufacturer_id", err: errors.New(`ent: missing required field "CatalogMachine.manufacturer_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "CatalogMachine.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := catalogmachine.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "CatalogMachine.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CatalogMachine.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CatalogMachine.updated_at"`)}
	}
	if len(_c.mutation.ManufacturerIDs()) == 0 {
		return &ValidationError{Name: "manufacturer", err: errors.New(`ent: missing required edge "CatalogMachine.manufacturer"`)}
	}
	return nil
}

func (_c *CatalogMachineCreate) sqlSave(ctx context.Context) (*CatalogMachine, error) {
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

func (_c *CatalogMachineCreate) createSpec() (*CatalogMachine, *sqlgraph.CreateSpec) {
	var (
		_node = &CatalogMachine{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(catalogmachine.Table, sqlgraph.NewFieldSpec(catalogmachine.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(catalogmachine.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.MachineType(); ok {
		_spec.SetField(catalogmachine.FieldMachineType, field.TypeString, value)
		_node.MachineType = &value
	}
	if value, ok := _c.mutation.SpecTokens(); ok {
		_spec.SetField(catalogmachine.FieldSpecTokens, field.TypeJSON, value)
		_node.SpecTokens = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(catalogmachine.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(catalogmachine.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ManufacturerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   catalogmachine.ManufacturerTable,
			Columns: []string{catalogmachine.ManufacturerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(manufacturer.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ManufacturerID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CatalogMachineCreateBulk is the builder for creating many CatalogMachine entities in bulk.
type CatalogMachineCreateBulk struct {
	config
	err      error
	builders []*CatalogMachineCreate
}

// Save creates the CatalogMachine entities in the database.
func (_c *CatalogMachineCreateBulk) Save(ctx context.Context) ([]*CatalogMachine, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CatalogMachine, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CatalogMachineMutation)
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
func (_c *CatalogMachineCreateBulk) SaveX(ctx context.Context) []*CatalogMachine {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CatalogMachineCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CatalogMachineCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
