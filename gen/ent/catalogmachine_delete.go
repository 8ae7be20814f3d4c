// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/machinehub/discovery-pipeline/gen/ent/catalogmachine"
	"github.com/machinehub/discovery-pipeline/gen/ent/predicate"
)

// CatalogMachineDelete is the builder for deleting a CatalogMachine entity.
type CatalogMachineDelete struct {
	config
	hooks    []Hook
	mutation *CatalogMachineMutation
}

// Where appends a list predicates to the CatalogMachineDelete builder.
func (_d *CatalogMachineDelete) Where(ps ...predicate.CatalogMachine) *CatalogMachineDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CatalogMachineDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CatalogMachineDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CatalogMachineDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(catalogmachine.Table, sqlgraph.NewFieldSpec(catalogmachine.FieldID, field.TypeUUID))
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

// CatalogMachineDeleteOne is the builder for deleting a single CatalogMachine entity.
type CatalogMachineDeleteOne struct {
	_d *CatalogMachineDelete
}

// Where appends a list predicates to the CatalogMachineDelete builder.
func (_d *CatalogMachineDeleteOne) Where(ps ...predicate.CatalogMachine) *CatalogMachineDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CatalogMachineDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{catalogmachine.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CatalogMachineDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
