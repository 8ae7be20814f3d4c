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
	"github.com/machinehub/discovery-pipeline/gen/ent/discoveredurl"
	"github.com/machinehub/discovery-pipeline/gen/ent/manufacturer"
)

// DiscoveredURLCreate is the builder for creating a DiscoveredURL entity.
type DiscoveredURLCreate struct {
	config
	mutation *DiscoveredURLMutation
	hooks    []Hook
}

// SetManufacturerID sets the "manufacturer_id" field.
func (_c *DiscoveredURLCreate) SetManufacturerID(v uuid.UUID) *DiscoveredURLCreate {
	_c.mutation.SetManufacturerID(v)
	return _c
}

// SetURL sets the "url" field.
func (_c *DiscoveredURLCreate) SetURL(v string) *DiscoveredURLCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *DiscoveredURLCreate) SetCategory(v string) *DiscoveredURLCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *DiscoveredURLCreate) SetNillableCategory(v *string) *DiscoveredURLCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *DiscoveredURLCreate) SetStatus(v string) *DiscoveredURLCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DiscoveredURLCreate) SetNillableStatus(v *string) *DiscoveredURLCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetDiscoveredAt sets the "discovered_at" field.
func (_c *DiscoveredURLCreate) SetDiscoveredAt(v time.Time) *DiscoveredURLCreate {
	_c.mutation.SetDiscoveredAt(v)
	return _c
}

// SetNillableDiscoveredAt sets the "discovered_at" field if the given value is not nil.
func (_c *DiscoveredURLCreate) SetNillableDiscoveredAt(v *time.Time) *DiscoveredURLCreate {
	if v != nil {
		_c.SetDiscoveredAt(*v)
	}
	return _c
}

// SetScrapedAt sets the "scraped_at" field.
func (_c *DiscoveredURLCreate) SetScrapedAt(v time.Time) *DiscoveredURLCreate {
	_c.mutation.SetScrapedAt(v)
	return _c
}

// SetNillableScrapedAt sets the "scraped_at" field if the given value is not nil.
func (_c *DiscoveredURLCreate) SetNillableScrapedAt(v *time.Time) *DiscoveredURLCreate {
	if v != nil {
		_c.SetScrapedAt(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *DiscoveredURLCreate) SetErrorMessage(v string) *DiscoveredURLCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *DiscoveredURLCreate) SetNillableErrorMessage(v *string) *DiscoveredURLCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetScrapedFields sets the "scraped_fields" field.
func (_c *DiscoveredURLCreate) SetScrapedFields(v map[string]interface{}) *DiscoveredURLCreate {
	_c.mutation.SetScrapedFields(v)
	return _c
}

// SetDuplicateStatus sets the "duplicate_status" field.
func (_c *DiscoveredURLCreate) SetDuplicateStatus(v string) *DiscoveredURLCreate {
	_c.mutation.SetDuplicateStatus(v)
	return _c
}

// SetNillableDuplicateStatus sets the "duplicate_status" field if the given value is not nil.
func (_c *DiscoveredURLCreate) SetNillableDuplicateStatus(v *string) *DiscoveredURLCreate {
	if v != nil {
		_c.SetDuplicateStatus(*v)
	}
	return _c
}

// SetExistingMachineID sets the "existing_machine_id" field.
func (_c *DiscoveredURLCreate) SetExistingMachineID(v uuid.UUID) *DiscoveredURLCreate {
	_c.mutation.SetExistingMachineID(v)
	return _c
}

// SetNillableExistingMachineID sets the "existing_machine_id" field if the given value is not nil.
func (_c *DiscoveredURLCreate) SetNillableExistingMachineID(v *uuid.UUID) *DiscoveredURLCreate {
	if v != nil {
		_c.SetExistingMachineID(*v)
	}
	return _c
}

// SetSimilarityScore sets the "similarity_score" field.
func (_c *DiscoveredURLCreate) SetSimilarityScore(v float64) *DiscoveredURLCreate {
	_c.mutation.SetSimilarityScore(v)
	return _c
}

// SetNillableSimilarityScore sets the "similarity_score" field if the given value is not nil.
func (_c *DiscoveredURLCreate) SetNillableSimilarityScore(v *float64) *DiscoveredURLCreate {
	if v != nil {
		_c.SetSimilarityScore(*v)
	}
	return _c
}

// SetDuplicateReason sets the "duplicate_reason" field.
func (_c *DiscoveredURLCreate) SetDuplicateReason(v string) *DiscoveredURLCreate {
	_c.mutation.SetDuplicateReason(v)
	return _c
}

// SetNillableDuplicateReason sets the "duplicate_reason" field if the given value is not nil.
func (_c *DiscoveredURLCreate) SetNillableDuplicateReason(v *string) *DiscoveredURLCreate {
	if v != nil {
		_c.SetDuplicateReason(*v)
	}
	return _c
}

// SetCheckedAt sets the "checked_at" field.
func (_c *DiscoveredURLCreate) SetCheckedAt(v time.Time) *DiscoveredURLCreate {
	_c.mutation.SetCheckedAt(v)
	return _c
}

// SetNillableCheckedAt sets the "checked_at" field if the given value is not nil.
func (_c *DiscoveredURLCreate) SetNillableCheckedAt(v *time.Time) *DiscoveredURLCreate {
	if v != nil {
		_c.SetCheckedAt(*v)
	}
	return _c
}

// SetCheckStartedAt sets the "check_started_at" field.
func (_c *DiscoveredURLCreate) SetCheckStartedAt(v time.Time) *DiscoveredURLCreate {
	_c.mutation.SetCheckStartedAt(v)
	return _c
}

// SetNillableCheckStartedAt sets the "check_started_at" field if the given value is not nil.
func (_c *DiscoveredURLCreate) SetNillableCheckStartedAt(v *time.Time) *DiscoveredURLCreate {
	if v != nil {
		_c.SetCheckStartedAt(*v)
	}
	return _c
}

// SetMlClassification sets the "ml_classification" field.
func (_c *DiscoveredURLCreate) SetMlClassification(v string) *DiscoveredURLCreate {
	_c.mutation.SetMlClassification(v)
	return _c
}

// SetNillableMlClassification sets the "ml_classification" field if the given value is not nil.
func (_c *DiscoveredURLCreate) SetNillableMlClassification(v *string) *DiscoveredURLCreate {
	if v != nil {
		_c.SetMlClassification(*v)
	}
	return _c
}

// SetMlConfidence sets the "ml_confidence" field.
func (_c *DiscoveredURLCreate) SetMlConfidence(v float64) *DiscoveredURLCreate {
	_c.mutation.SetMlConfidence(v)
	return _c
}

// SetNillableMlConfidence sets the "ml_confidence" field if the given value is not nil.
func (_c *DiscoveredURLCreate) SetNillableMlConfidence(v *float64) *DiscoveredURLCreate {
	if v != nil {
		_c.SetMlConfidence(*v)
	}
	return _c
}

// SetMlReason sets the "ml_reason" field.
func (_c *DiscoveredURLCreate) SetMlReason(v string) *DiscoveredURLCreate {
	_c.mutation.SetMlReason(v)
	return _c
}

// SetNillableMlReason sets the "ml_reason" field if the given value is not nil.
func (_c *DiscoveredURLCreate) SetNillableMlReason(v *string) *DiscoveredURLCreate {
	if v != nil {
		_c.SetMlReason(*v)
	}
	return _c
}

// SetMachineType sets the "machine_type" field.
func (_c *DiscoveredURLCreate) SetMachineType(v string) *DiscoveredURLCreate {
	_c.mutation.SetMachineType(v)
	return _c
}

// SetNillableMachineType sets the "machine_type" field if the given value is not nil.
func (_c *DiscoveredURLCreate) SetNillableMachineType(v *string) *DiscoveredURLCreate {
	if v != nil {
		_c.SetMachineType(*v)
	}
	return _c
}

// SetShouldAutoSkip sets the "should_auto_skip" field.
func (_c *DiscoveredURLCreate) SetShouldAutoSkip(v bool) *DiscoveredURLCreate {
	_c.mutation.SetShouldAutoSkip(v)
	return _c
}

// SetNillableShouldAutoSkip sets the "should_auto_skip" field if the given value is not nil.
func (_c *DiscoveredURLCreate) SetNillableShouldAutoSkip(v *bool) *DiscoveredURLCreate {
	if v != nil {
		_c.SetShouldAutoSkip(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DiscoveredURLCreate) SetUpdatedAt(v time.Time) *DiscoveredURLCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DiscoveredURLCreate) SetNillableUpdatedAt(v *time.Time) *DiscoveredURLCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DiscoveredURLCreate) SetID(v uuid.UUID) *DiscoveredURLCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DiscoveredURLCreate) SetNillableID(v *uuid.UUID) *DiscoveredURLCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetManufacturer sets the "manufacturer" edge to the Manufacturer entity.
func (_c *DiscoveredURLCreate) SetManufacturer(v *Manufacturer) *DiscoveredURLCreate {
	return _c.SetManufacturerID(v.ID)
}

// Mutation returns the DiscoveredURLMutation object of the builder.
func (_c *DiscoveredURLCreate) Mutation() *DiscoveredURLMutation {
	return _c.mutation
}

// Save creates the DiscoveredURL in the database.
func (_c *DiscoveredURLCreate) Save(ctx context.Context) (*DiscoveredURL, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DiscoveredURLCreate) SaveX(ctx context.Context) *DiscoveredURL {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DiscoveredURLCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DiscoveredURLCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DiscoveredURLCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := discoveredurl.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.DiscoveredAt(); !ok {
		v := discoveredurl.DefaultDiscoveredAt()
		_c.mutation.SetDiscoveredAt(v)
	}
	if _, ok := _c.mutation.DuplicateStatus(); !ok {
		v := discoveredurl.DefaultDuplicateStatus
		_c.mutation.SetDuplicateStatus(v)
	}
	if _, ok := _c.mutation.ShouldAutoSkip(); !ok {
		v := discoveredurl.DefaultShouldAutoSkip
		_c.mutation.SetShouldAutoSkip(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := discoveredurl.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := discoveredurl.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DiscoveredURLCreate) check() error {
	if _, ok := _c.mutation.ManufacturerID(); !ok {
		return &ValidationError{Name: "manufacturer_id", err: errors.New(`ent: missing required field "DiscoveredURL.manufacturer_id"`)}
	}
	if _, ok := _c.mutation.URL(); !ok {
		return &ValidationError{Name: "url", err: errors.New(`ent: missing required field "DiscoveredURL.url"`)}
	}
	if v, ok := _c.mutation.URL(); ok {
		if err := discoveredurl.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "DiscoveredURL.url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "DiscoveredURL.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := discoveredurl.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DiscoveredURL.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DiscoveredAt(); !ok {
		return &ValidationError{Name: "discovered_at", err: errors.New(`ent: missing required field "DiscoveredURL.discovered_at"`)}
	}
	if _, ok := _c.mutation.DuplicateStatus(); !ok {
		return &ValidationError{Name: "duplicate_status", err: errors.New(`ent: missing required field "DiscoveredURL.duplicate_status"`)}
	}
	if v, ok := _c.mutation.DuplicateStatus(); ok {
		if err := discoveredurl.DuplicateStatusValidator(v); err != nil {
			return &ValidationError{Name: "duplicate_status", err: fmt.Errorf(`ent: validator failed for field "DiscoveredURL.duplicate_status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.MlClassification(); ok {
		if err := discoveredurl.MlClassificationValidator(v); err != nil {
			return &ValidationError{Name: "ml_classification", err: fmt.Errorf(`ent: validator failed for field "DiscoveredURL.ml_classification": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ShouldAutoSkip(); !ok {
		return &ValidationError{Name: "should_auto_skip", err: errors.New(`ent: missing required field "DiscoveredURL.should_auto_skip"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "DiscoveredURL.updated_at"`)}
	}
	if len(_c.mutation.ManufacturerIDs()) == 0 {
		return &ValidationError{Name: "manufacturer", err: errors.New(`ent: missing required edge "DiscoveredURL.manufacturer"`)}
	}
	return nil
}

func (_c *DiscoveredURLCreate) sqlSave(ctx context.Context) (*DiscoveredURL, error) {
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

func (_c *DiscoveredURLCreate) createSpec() (*DiscoveredURL, *sqlgraph.CreateSpec) {
	var (
		_node = &DiscoveredURL{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(discoveredurl.Table, sqlgraph.NewFieldSpec(discoveredurl.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(discoveredurl.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(discoveredurl.FieldCategory, field.TypeString, value)
		_node.Category = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(discoveredurl.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.DiscoveredAt(); ok {
		_spec.SetField(discoveredurl.FieldDiscoveredAt, field.TypeTime, value)
		_node.DiscoveredAt = value
	}
	if value, ok := _c.mutation.ScrapedAt(); ok {
		_spec.SetField(discoveredurl.FieldScrapedAt, field.TypeTime, value)
		_node.ScrapedAt = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(discoveredurl.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ScrapedFields(); ok {
		_spec.SetField(discoveredurl.FieldScrapedFields, field.TypeJSON, value)
		_node.ScrapedFields = value
	}
	if value, ok := _c.mutation.DuplicateStatus(); ok {
		_spec.SetField(discoveredurl.FieldDuplicateStatus, field.TypeString, value)
		_node.DuplicateStatus = value
	}
	if value, ok := _c.mutation.ExistingMachineID(); ok {
		_spec.SetField(discoveredurl.FieldExistingMachineID, field.TypeUUID, value)
		_node.ExistingMachineID = &value
	}
	if value, ok := _c.mutation.SimilarityScore(); ok {
		_spec.SetField(discoveredurl.FieldSimilarityScore, field.TypeFloat64, value)
		_node.SimilarityScore = &value
	}
	if value, ok := _c.mutation.DuplicateReason(); ok {
		_spec.SetField(discoveredurl.FieldDuplicateReason, field.TypeString, value)
		_node.DuplicateReason = &value
	}
	if value, ok := _c.mutation.CheckedAt(); ok {
		_spec.SetField(discoveredurl.FieldCheckedAt, field.TypeTime, value)
		_node.CheckedAt = &value
	}
	if value, ok := _c.mutation.CheckStartedAt(); ok {
		_spec.SetField(discoveredurl.FieldCheckStartedAt, field.TypeTime, value)
		_node.CheckStartedAt = &value
	}
	if value, ok := _c.mutation.MlClassification(); ok {
		_spec.SetField(discoveredurl.FieldMlClassification, field.TypeString, value)
		_node.MlClassification = &value
	}
	if value, ok := _c.mutation.MlConfidence(); ok {
		_spec.SetField(discoveredurl.FieldMlConfidence, field.TypeFloat64, value)
		_node.MlConfidence = &value
	}
	if value, ok := _c.mutation.MlReason(); ok {
		_spec.SetField(discoveredurl.FieldMlReason, field.TypeString, value)
		_node.MlReason = &value
	}
	if value, ok := _c.mutation.MachineType(); ok {
		_spec.SetField(discoveredurl.FieldMachineType, field.TypeString, value)
		_node.MachineType = &value
	}
	if value, ok := _c.mutation.ShouldAutoSkip(); ok {
		_spec.SetField(discoveredurl.FieldShouldAutoSkip, field.TypeBool, value)
		_node.ShouldAutoSkip = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(discoveredurl.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ManufacturerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   discoveredurl.ManufacturerTable,
			Columns: []string{discoveredurl.ManufacturerColumn},
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

// DiscoveredURLCreateBulk is the builder for creating many DiscoveredURL entities in bulk.
type DiscoveredURLCreateBulk struct {
	config
	err      error
	builders []*DiscoveredURLCreate
}

// Save creates the DiscoveredURL entities in the database.
func (_c *DiscoveredURLCreateBulk) Save(ctx context.Context) ([]*DiscoveredURL, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DiscoveredURL, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DiscoveredURLMutation)
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
func (_c *DiscoveredURLCreateBulk) SaveX(ctx context.Context) []*DiscoveredURL {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DiscoveredURLCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DiscoveredURLCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
