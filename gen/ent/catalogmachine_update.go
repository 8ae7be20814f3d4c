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
	"github.com/google/uuid"
	"github.com/machinehub/discovery-pipeline/gen/ent/catalogmachine"
	"github.com/machinehub/discovery-pipeline/gen/ent/manufacturer"
	"github.com/machinehub/discovery-pipeline/gen/ent/predicate"
)

// CatalogMachineUpdate is the builder for updating CatalogMachine entities.
type CatalogMachineUpdate struct {
	config
	hooks    []Hook
	mutation *CatalogMachineMutation
}

// Where appends a list predicates to the CatalogMachineUpdate builder.
func (_u *CatalogMachineUpdate) Where(ps ...predicate.CatalogMachine) *CatalogMachineUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetManufacturerID sets the "manufacturer_id" field.
func (_u *CatalogMachineUpdate) SetManufacturerID(v uuid.UUID) *CatalogMachineUpdate {
	_u.mutation.SetManufacturerID(v)
	return _u
}

// SetNillableManufacturerID sets the "manufacturer_id" field if the given value is not nil.
func (_u *CatalogMachineUpdate) SetNillableManufacturerID(v *uuid.UUID) *CatalogMachineUpdate {
	if v != nil {
		_u.SetManufacturerID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *CatalogMachineUpdate) SetName(v string) *CatalogMachineUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CatalogMachineUpdate) SetNillableName(v *string) *CatalogMachineUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetMachineType sets the "machine_type" field.
func (_u *CatalogMachineUpdate) SetMachineType(v string) *CatalogMachineUpdate {
	_u.mutation.SetMachineType(v)
	return _u
}

// SetNillableMachineType sets the "machine_type" field if the given value is not nil.
func (_u *CatalogMachineUpdate) SetNillableMachineType(v *string) *CatalogMachineUpdate {
	if v != nil {
		_u.SetMachineType(*v)
	}
	return _u
}

// ClearMachineType clears the value of the "machine_type" field.
func (_u *CatalogMachineUpdate) ClearMachineType() *CatalogMachineUpdate {
	_u.mutation.ClearMachineType()
	return _u
}

// SetSpecTokens sets the "spec_tokens" field.
func (_u *CatalogMachineUpdate) SetSpecTokens(v []string) *CatalogMachineUpdate {
	_u.mutation.SetSpecTokens(v)
	return _u
}

// AppendSpecTokens appends value to the "spec_tokens" field.
func (_u *CatalogMachineUpdate) AppendSpecTokens(v []string) *CatalogMachineUpdate {
	_u.mutation.AppendSpecTokens(v)
	return _u
}

// ClearSpecTokens clears the value of the "spec_tokens" field.
func (_u *CatalogMachineUpdate) ClearSpecTokens() *CatalogMachineUpdate {
	_u.mutation.ClearSpecTokens()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CatalogMachineUpdate) SetCreatedAt(v time.Time) *CatalogMachineUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CatalogMachineUpdate) SetNillableCreatedAt(v *time.Time) *CatalogMachineUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CatalogMachineUpdate) SetUpdatedAt(v time.Time) *CatalogMachineUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetManufacturer sets the "manufacturer" edge to the Manufacturer entity.
func (_u *CatalogMachineUpdate) SetManufacturer(v *Manufacturer) *CatalogMachineUpdate {
	return _u.SetManufacturerID(v.ID)
}

// Mutation returns the CatalogMachineMutation object of the builder.
func (_u *CatalogMachineUpdate) Mutation() *CatalogMachineMutation {
	return _u.mutation
}

// ClearManufacturer clears the "manufacturer" edge to the Manufacturer entity.
func (_u *CatalogMachineUpdate) ClearManufacturer() *CatalogMachineUpdate {
	_u.mutation.ClearManufacturer()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CatalogMachineUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CatalogMachineUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CatalogMachineUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CatalogMachineUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CatalogMachineUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := catalogmachine.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CatalogMachineUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := catalogmachine.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "CatalogMachine.name": %w`, err)}
		}
	}
	if _u.mutation.ManufacturerCleared() && len(_u.mutation.ManufacturerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CatalogMachine.manufacturer"`)
	}
	return nil
}

func (_u *CatalogMachineUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(catalogmachine.Table, catalogmachine.Columns, sqlgraph.NewFieldSpec(catalogmachine.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(catalogmachine.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.MachineType(); ok {
		_spec.SetField(catalogmachine.FieldMachineType, field.TypeString, value)
	}
	if _u.mutation.MachineTypeCleared() {
		_spec.ClearField(catalogmachine.FieldMachineType, field.TypeString)
	}
	if value, ok := _u.mutation.SpecTokens(); ok {
		_spec.SetField(catalogmachine.FieldSpecTokens, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSpecTokens(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, catalogmachine.FieldSpecTokens, value)
		})
	}
	if _u.mutation.SpecTokensCleared() {
		_spec.ClearField(catalogmachine.FieldSpecTokens, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(catalogmachine.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(catalogmachine.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ManufacturerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ManufacturerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{catalogmachine.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CatalogMachineUpdateOne is the builder for updating a single CatalogMachine entity.
type CatalogMachineUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CatalogMachineMutation
}

// SetManufacturerID sets the "manufacturer_id" field.
func (_u *CatalogMachineUpdateOne) SetManufacturerID(v uuid.UUID) *CatalogMachineUpdateOne {
	_u.mutation.SetManufacturerID(v)
	return _u
}

// SetNillableManufacturerID sets the "manufacturer_id" field if the given value is not nil.
func (_u *CatalogMachineUpdateOne) SetNillableManufacturerID(v *uuid.UUID) *CatalogMachineUpdateOne {
	if v != nil {
		_u.SetManufacturerID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *CatalogMachineUpdateOne) SetName(v string) *CatalogMachineUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CatalogMachineUpdateOne) SetNillableName(v *string) *CatalogMachineUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetMachineType sets the "machine_type" field.
func (_u *CatalogMachineUpdateOne) SetMachineType(v string) *CatalogMachineUpdateOne {
	_u.mutation.SetMachineType(v)
	return _u
}

// SetNillableMachineType sets the "machine_type" field if the given value is not nil.
func (_u *CatalogMachineUpdateOne) SetNillableMachineType(v *string) *CatalogMachineUpdateOne {
	if v != nil {
		_u.SetMachineType(*v)
	}
	return _u
}

// ClearMachineType clears the value of the "machine_type" field.
func (_u *CatalogMachineUpdateOne) ClearMachineType() *CatalogMachineUpdateOne {
	_u.mutation.ClearMachineType()
	return _u
}

// SetSpecTokens sets the "spec_tokens" field.
func (_u *CatalogMachineUpdateOne) SetSpecTokens(v []string) *CatalogMachineUpdateOne {
	_u.mutation.SetSpecTokens(v)
	return _u
}

// AppendSpecTokens appends value to the "spec_tokens" field.
func (_u *CatalogMachineUpdateOne) AppendSpecTokens(v []string) *CatalogMachineUpdateOne {
	_u.mutation.AppendSpecTokens(v)
	return _u
}

// ClearSpecTokens clears the value of the "spec_tokens" field.
func (_u *CatalogMachineUpdateOne) ClearSpecTokens() *CatalogMachineUpdateOne {
	_u.mutation.ClearSpecTokens()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CatalogMachineUpdateOne) SetCreatedAt(v time.Time) *CatalogMachineUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CatalogMachineUpdateOne) SetNillableCreatedAt(v *time.Time) *CatalogMachineUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CatalogMachineUpdateOne) SetUpdatedAt(v time.Time) *CatalogMachineUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetManufacturer sets the "manufacturer" edge to the Manufacturer entity.
func (_u *CatalogMachineUpdateOne) SetManufacturer(v *Manufacturer) *CatalogMachineUpdateOne {
	return _u.SetManufacturerID(v.ID)
}

// Mutation returns the CatalogMachineMutation object of the builder.
func (_u *CatalogMachineUpdateOne) Mutation() *CatalogMachineMutation {
	return _u.mutation
}

// ClearManufacturer clears the "manufacturer" edge to the Manufacturer entity.
func (_u *CatalogMachineUpdateOne) ClearManufacturer() *CatalogMachineUpdateOne {
	_u.mutation.ClearManufacturer()
	return _u
}

// Where appends a list predicates to the CatalogMachineUpdate builder.
func (_u *CatalogMachineUpdateOne) Where(ps ...predicate.CatalogMachine) *CatalogMachineUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CatalogMachineUpdateOne) Select(field string, fields ...string) *CatalogMachineUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CatalogMachine entity.
func (_u *CatalogMachineUpdateOne) Save(ctx context.Context) (*CatalogMachine, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CatalogMachineUpdateOne) SaveX(ctx context.Context) *CatalogMachine {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CatalogMachineUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CatalogMachineUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CatalogMachineUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := catalogmachine.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CatalogMachineUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := catalogmachine.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "CatalogMachine.name": %w`, err)}
		}
	}
	if _u.mutation.ManufacturerCleared() && len(_u.mutation.ManufacturerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CatalogMachine.manufacturer"`)
	}
	return nil
}

func (_u *CatalogMachineUpdateOne) sqlSave(ctx context.Context) (_node *CatalogMachine, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(catalogmachine.Table, catalogmachine.Columns, sqlgraph.NewFieldSpec(catalogmachine.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CatalogMachine.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, catalogmachine.FieldID)
		for _, f := range fields {
			if !catalogmachine.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != catalogmachine.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(catalogmachine.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.MachineType(); ok {
		_spec.SetField(catalogmachine.FieldMachineType, field.TypeString, value)
	}
	if _u.mutation.MachineTypeCleared() {
		_spec.ClearField(catalogmachine.FieldMachineType, field.TypeString)
	}
	if value, ok := _u.mutation.SpecTokens(); ok {
		_spec.SetField(catalogmachine.FieldSpecTokens, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSpecTokens(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, catalogmachine.FieldSpecTokens, value)
		})
	}
	if _u.mutation.SpecTokensCleared() {
		_spec.ClearField(catalogmachine.FieldSpecTokens, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(catalogmachine.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(catalogmachine.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ManufacturerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ManufacturerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CatalogMachine{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{catalogmachine.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
