// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/machinehub/discovery-pipeline/gen/ent/catalogmachine"
	"github.com/machinehub/discovery-pipeline/gen/ent/discoveredurl"
	"github.com/machinehub/discovery-pipeline/gen/ent/manufacturer"
	"github.com/machinehub/discovery-pipeline/gen/ent/predicate"
)

// ManufacturerUpdate is the builder for updating Manufacturer entities.
type ManufacturerUpdate struct {
	config
	hooks    []Hook
	mutation *ManufacturerMutation
}

// Where appends a list predicates to the ManufacturerUpdate builder.
func (_u *ManufacturerUpdate) Where(ps ...predicate.Manufacturer) *ManufacturerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ManufacturerUpdate) SetName(v string) *ManufacturerUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ManufacturerUpdate) SetNillableName(v *string) *ManufacturerUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetWebsite sets the "website" field.
func (_u *ManufacturerUpdate) SetWebsite(v string) *ManufacturerUpdate {
	_u.mutation.SetWebsite(v)
	return _u
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (_u *ManufacturerUpdate) SetNillableWebsite(v *string) *ManufacturerUpdate {
	if v != nil {
		_u.SetWebsite(*v)
	}
	return _u
}

// ClearWebsite clears the value of the "website" field.
func (_u *ManufacturerUpdate) ClearWebsite() *ManufacturerUpdate {
	_u.mutation.ClearWebsite()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ManufacturerUpdate) SetCreatedAt(v time.Time) *ManufacturerUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ManufacturerUpdate) SetNillableCreatedAt(v *time.Time) *ManufacturerUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddURLIDs adds the "urls" edge to the DiscoveredURL entity by IDs.
func (_u *ManufacturerUpdate) AddURLIDs(ids ...uuid.UUID) *ManufacturerUpdate {
	_u.mutation.AddURLIDs(ids...)
	return _u
}

// AddUrls adds the "urls" edges to the DiscoveredURL entity.
func (_u *ManufacturerUpdate) AddUrls(v ...*DiscoveredURL) *ManufacturerUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddURLIDs(ids...)
}

// AddMachineIDs adds the "machines" edge to the CatalogMachine entity by IDs.
func (_u *ManufacturerUpdate) AddMachineIDs(ids ...uuid.UUID) *ManufacturerUpdate {
	_u.mutation.AddMachineIDs(ids...)
	return _u
}

// AddMachines adds the "machines" edges to the CatalogMachine entity.
func (_u *ManufacturerUpdate) AddMachines(v ...*CatalogMachine) *ManufacturerUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMachineIDs(ids...)
}

// Mutation returns the ManufacturerMutation object of the builder.
func (_u *ManufacturerUpdate) Mutation() *ManufacturerMutation {
	return _u.mutation
}

// ClearUrls clears all "urls" edges to the DiscoveredURL entity.
func (_u *ManufacturerUpdate) ClearUrls() *ManufacturerUpdate {
	_u.mutation.ClearUrls()
	return _u
}

// RemoveURLIDs removes the "urls" edge to DiscoveredURL entities by IDs.
func (_u *ManufacturerUpdate) RemoveURLIDs(ids ...uuid.UUID) *ManufacturerUpdate {
	_u.mutation.RemoveURLIDs(ids...)
	return _u
}

// RemoveUrls removes "urls" edges to DiscoveredURL entities.
func (_u *ManufacturerUpdate) RemoveUrls(v ...*DiscoveredURL) *ManufacturerUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveURLIDs(ids...)
}

// ClearMachines clears all "machines" edges to the CatalogMachine entity.
func (_u *ManufacturerUpdate) ClearMachines() *ManufacturerUpdate {
	_u.mutation.ClearMachines()
	return _u
}

// RemoveMachineIDs removes the "machines" edge to CatalogMachine entities by IDs.
func (_u *ManufacturerUpdate) RemoveMachineIDs(ids ...uuid.UUID) *ManufacturerUpdate {
	_u.mutation.RemoveMachineIDs(ids...)
	return _u
}

// RemoveMachines removes "machines" edges to CatalogMachine entities.
func (_u *ManufacturerUpdate) RemoveMachines(v ...*CatalogMachine) *ManufacturerUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMachineIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ManufacturerUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ManufacturerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ManufacturerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ManufacturerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ManufacturerUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := manufacturer.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Manufacturer.name": %w`, err)}
		}
	}
	return nil
}

func (_u *ManufacturerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(manufacturer.Table, manufacturer.Columns, sqlgraph.NewFieldSpec(manufacturer.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(manufacturer.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Website(); ok {
		_spec.SetField(manufacturer.FieldWebsite, field.TypeString, value)
	}
	if _u.mutation.WebsiteCleared() {
		_spec.ClearField(manufacturer.FieldWebsite, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(manufacturer.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.UrlsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUrlsIDs(); len(nodes) > 0 && !_u.mutation.UrlsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UrlsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MachinesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMachinesIDs(); len(nodes) > 0 && !_u.mutation.MachinesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MachinesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{manufacturer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ManufacturerUpdateOne is the builder for updating a single Manufacturer entity.
type ManufacturerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ManufacturerMutation
}

// SetName sets the "name" field.
func (_u *ManufacturerUpdateOne) SetName(v string) *ManufacturerUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ManufacturerUpdateOne) SetNillableName(v *string) *ManufacturerUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetWebsite sets the "website" field.
func (_u *ManufacturerUpdateOne) SetWebsite(v string) *ManufacturerUpdateOne {
	_u.mutation.SetWebsite(v)
	return _u
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (_u *ManufacturerUpdateOne) SetNillableWebsite(v *string) *ManufacturerUpdateOne {
	if v != nil {
		_u.SetWebsite(*v)
	}
	return _u
}

// ClearWebsite clears the value of the "website" field.
func (_u *ManufacturerUpdateOne) ClearWebsite() *ManufacturerUpdateOne {
	_u.mutation.ClearWebsite()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ManufacturerUpdateOne) SetCreatedAt(v time.Time) *ManufacturerUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ManufacturerUpdateOne) SetNillableCreatedAt(v *time.Time) *ManufacturerUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddURLIDs adds the "urls" edge to the DiscoveredURL entity by IDs.
func (_u *ManufacturerUpdateOne) AddURLIDs(ids ...uuid.UUID) *ManufacturerUpdateOne {
	_u.mutation.AddURLIDs(ids...)
	return _u
}

// AddUrls adds the "urls" edges to the DiscoveredURL entity.
func (_u *ManufacturerUpdateOne) AddUrls(v ...*DiscoveredURL) *ManufacturerUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddURLIDs(ids...)
}

// AddMachineIDs adds the "machines" edge to the CatalogMachine entity by IDs.
func (_u *ManufacturerUpdateOne) AddMachineIDs(ids ...uuid.UUID) *ManufacturerUpdateOne {
	_u.mutation.AddMachineIDs(ids...)
	return _u
}

// AddMachines adds the "machines" edges to the CatalogMachine entity.
func (_u *ManufacturerUpdateOne) AddMachines(v ...*CatalogMachine) *ManufacturerUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMachineIDs(ids...)
}

// Mutation returns the ManufacturerMutation object of the builder.
func (_u *ManufacturerUpdateOne) Mutation() *ManufacturerMutation {
	return _u.mutation
}

// ClearUrls clears all "urls" edges to the DiscoveredURL entity.
func (_u *ManufacturerUpdateOne) ClearUrls() *ManufacturerUpdateOne {
	_u.mutation.ClearUrls()
	return _u
}

// RemoveURLIDs removes the "urls" edge to DiscoveredURL entities by IDs.
func (_u *ManufacturerUpdateOne) RemoveURLIDs(ids ...uuid.UUID) *ManufacturerUpdateOne {
	_u.mutation.RemoveURLIDs(ids...)
	return _u
}

// RemoveUrls removes "urls" edges to DiscoveredURL entities.
func (_u *ManufacturerUpdateOne) RemoveUrls(v ...*DiscoveredURL) *ManufacturerUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveURLIDs(ids...)
}

// ClearMachines clears all "machines" edges to the CatalogMachine entity.
func (_u *ManufacturerUpdateOne) ClearMachines() *ManufacturerUpdateOne {
	_u.mutation.ClearMachines()
	return _u
}

// RemoveMachineIDs removes the "machines" edge to CatalogMachine entities by IDs.
func (_u *ManufacturerUpdateOne) RemoveMachineIDs(ids ...uuid.UUID) *ManufacturerUpdateOne {
	_u.mutation.RemoveMachineIDs(ids...)
	return _u
}

// RemoveMachines removes "machines" edges to CatalogMachine entities.
func (_u *ManufacturerUpdateOne) RemoveMachines(v ...*CatalogMachine) *ManufacturerUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMachineIDs(ids...)
}

// Where appends a list predicates to the ManufacturerUpdate builder.
func (_u *ManufacturerUpdateOne) Where(ps ...predicate.Manufacturer) *ManufacturerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ManufacturerUpdateOne) Select(field string, fields ...string) *ManufacturerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Manufacturer entity.
func (_u *ManufacturerUpdateOne) Save(ctx context.Context) (*Manufacturer, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ManufacturerUpdateOne) SaveX(ctx context.Context) *Manufacturer {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ManufacturerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ManufacturerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ManufacturerUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := manufacturer.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Manufacturer.name": %w`, err)}
		}
	}
	return nil
}

func (_u *ManufacturerUpdateOne) sqlSave(ctx context.Context) (_node *Manufacturer, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(manufacturer.Table, manufacturer.Columns, sqlgraph.NewFieldSpec(manufacturer.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Manufacturer.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, manufacturer.FieldID)
		for _, f := range fields {
			if !manufacturer.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != manufacturer.FieldID {
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
		_spec.SetField(manufacturer.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Website(); ok {
		_spec.SetField(manufacturer.FieldWebsite, field.TypeString, value)
	}
	if _u.mutation.WebsiteCleared() {
		_spec.ClearField(manufacturer.FieldWebsite, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(manufacturer.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.UrlsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUrlsIDs(); len(nodes) > 0 && !_u.mutation.UrlsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UrlsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MachinesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMachinesIDs(); len(nodes) > 0 && !_u.mutation.MachinesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MachinesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Manufacturer{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{manufacturer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
