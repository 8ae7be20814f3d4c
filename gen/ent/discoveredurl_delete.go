// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/machinehub/discovery-pipeline/gen/ent/discoveredurl"
	"github.com/machinehub/discovery-pipeline/gen/ent/predicate"
)

// DiscoveredURLDelete is the builder for deleting a DiscoveredURL entity.
type DiscoveredURLDelete struct {
	config
	hooks    []Hook
	mutation *DiscoveredURLMutation
}

// Where appends a list predicates to the DiscoveredURLDelete builder.
func (_d *DiscoveredURLDelete) Where(ps ...predicate.DiscoveredURL) *DiscoveredURLDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DiscoveredURLDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DiscoveredURLDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DiscoveredURLDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(discoveredurl.Table, sqlgraph.NewFieldSpec(discoveredurl.FieldID, field.TypeUUID))
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

// DiscoveredURLDeleteOne is the builder for deleting a single DiscoveredURL entity.
type DiscoveredURLDeleteOne struct {
	_d *DiscoveredURLDelete
}

// Where appends a list predicates to the DiscoveredURLDelete builder.
func (_d *DiscoveredURLDeleteOne) Where(ps ...predicate.DiscoveredURL) *DiscoveredURLDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DiscoveredURLDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{discoveredurl.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DiscoveredURLDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
