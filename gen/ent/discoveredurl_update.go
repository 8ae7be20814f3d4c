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
	"github.com/machinehub/discovery-pipeline/gen/ent/discoveredurl"
	"github.com/machinehub/discovery-pipeline/gen/ent/manufacturer"
	"github.com/machinehub/discovery-pipeline/gen/ent/predicate"
)

// DiscoveredURLUpdate is the builder for updating DiscoveredURL entities.
type DiscoveredURLUpdate struct {
	config
	hooks    []Hook
	mutation *DiscoveredURLMutation
}

// Where appends a list predicates to the DiscoveredURLUpdate builder.
func (_u *DiscoveredURLUpdate) Where(ps ...predicate.DiscoveredURL) *DiscoveredURLUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetManufacturerID sets the "manufacturer_id" field.
func (_u *DiscoveredURLUpdate) SetManufacturerID(v uuid.UUID) *DiscoveredURLUpdate {
	_u.mutation.SetManufacturerID(v)
	return _u
}

// SetNillableManufacturerID sets the "manufacturer_id" field if the given value is not nil.
func (_u *DiscoveredURLUpdate) SetNillableManufacturerID(v *uuid.UUID) *DiscoveredURLUpdate {
	if v != nil {
		_u.SetManufacturerID(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *DiscoveredURLUpdate) SetURL(v string) *DiscoveredURLUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *DiscoveredURLUpdate) SetNillableURL(v *string) *DiscoveredURLUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *DiscoveredURLUpdate) SetCategory(v string) *DiscoveredURLUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *DiscoveredURLUpdate) SetNillableCategory(v *string) *DiscoveredURLUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *DiscoveredURLUpdate) ClearCategory() *DiscoveredURLUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DiscoveredURLUpdate) SetStatus(v string) *DiscoveredURLUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DiscoveredURLUpdate) SetNillableStatus(v *string) *DiscoveredURLUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDiscoveredAt sets the "discovered_at" field.
func (_u *DiscoveredURLUpdate) SetDiscoveredAt(v time.Time) *DiscoveredURLUpdate {
	_u.mutation.SetDiscoveredAt(v)
	return _u
}

// SetNillableDiscoveredAt sets the "discovered_at" field if the given value is not nil.
func (_u *DiscoveredURLUpdate) SetNillableDiscoveredAt(v *time.Time) *DiscoveredURLUpdate {
	if v != nil {
		_u.SetDiscoveredAt(*v)
	}
	return _u
}

// SetScrapedAt sets the "scraped_at" field.
func (_u *DiscoveredURLUpdate) SetScrapedAt(v time.Time) *DiscoveredURLUpdate {
	_u.mutation.SetScrapedAt(v)
	return _u
}

// SetNillableScrapedAt sets the "scraped_at" field if the given value is not nil.
func (_u *DiscoveredURLUpdate) SetNillableScrapedAt(v *time.Time) *DiscoveredURLUpdate {
	if v != nil {
		_u.SetScrapedAt(*v)
	}
	return _u
}

// ClearScrapedAt clears the value of the "scraped_at" field.
func (_u *DiscoveredURLUpdate) ClearScrapedAt() *DiscoveredURLUpdate {
	_u.mutation.ClearScrapedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DiscoveredURLUpdate) SetErrorMessage(v string) *DiscoveredURLUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DiscoveredURLUpdate) SetNillableErrorMessage(v *string) *DiscoveredURLUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DiscoveredURLUpdate) ClearErrorMessage() *DiscoveredURLUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetScrapedFields sets the "scraped_fields" field.
func (_u *DiscoveredURLUpdate) SetScrapedFields(v map[string]interface{}) *DiscoveredURLUpdate {
	_u.mutation.SetScrapedFields(v)
	return _u
}

// ClearScrapedFields clears the value of the "scraped_fields" field.
func (_u *DiscoveredURLUpdate) ClearScrapedFields() *DiscoveredURLUpdate {
	_u.mutation.ClearScrapedFields()
	return _u
}

// SetDuplicateStatus sets the "duplicate_status" field.
func (_u *DiscoveredURLUpdate) SetDuplicateStatus(v string) *DiscoveredURLUpdate {
	_u.mutation.SetDuplicateStatus(v)
	return _u
}

// SetNillableDuplicateStatus sets the "duplicate_status" field if the given value is not nil.
func (_u *DiscoveredURLUpdate) SetNillableDuplicateStatus(v *string) *DiscoveredURLUpdate {
	if v != nil {
		_u.SetDuplicateStatus(*v)
	}
	return _u
}

// SetExistingMachineID sets the "existing_machine_id" field.
func (_u *DiscoveredURLUpdate) SetExistingMachineID(v uuid.UUID) *DiscoveredURLUpdate {
	_u.mutation.SetExistingMachineID(v)
	return _u
}

// SetNillableExistingMachineID sets the "existing_machine_id" field if the given value is not nil.
func (_u *DiscoveredURLUpdate) SetNillableExistingMachineID(v *uuid.UUID) *DiscoveredURLUpdate {
	if v != nil {
		_u.SetExistingMachineID(*v)
	}
	return _u
}

// ClearExistingMachineID clears the value of the "existing_machine_id" field.
func (_u *DiscoveredURLUpdate) ClearExistingMachineID() *DiscoveredURLUpdate {
	_u.mutation.ClearExistingMachineID()
	return _u
}

// SetSimilarityScore sets the "similarity_score" field.
func (_u *DiscoveredURLUpdate) SetSimilarityScore(v float64) *DiscoveredURLUpdate {
	_u.mutation.ResetSimilarityScore()
	_u.mutation.SetSimilarityScore(v)
	return _u
}

// SetNillableSimilarityScore sets the "similarity_score" field if the given value is not nil.
func (_u *DiscoveredURLUpdate) SetNillableSimilarityScore(v *float64) *DiscoveredURLUpdate {
	if v != nil {
		_u.SetSimilarityScore(*v)
	}
	return _u
}

// AddSimilarityScore adds value to the "similarity_score" field.
func (_u *DiscoveredURLUpdate) AddSimilarityScore(v float64) *DiscoveredURLUpdate {
	_u.mutation.AddSimilarityScore(v)
	return _u
}

// ClearSimilarityScore clears the value of the "similarity_score" field.
func (_u *DiscoveredURLUpdate) ClearSimilarityScore() *DiscoveredURLUpdate {
	_u.mutation.ClearSimilarityScore()
	return _u
}

// SetDuplicateReason sets the "duplicate_reason" field.
func (_u *DiscoveredURLUpdate) SetDuplicateReason(v string) *DiscoveredURLUpdate {
	_u.mutation.SetDuplicateReason(v)
	return _u
}

// SetNillableDuplicateReason sets the "duplicate_reason" field if the given value is not nil.
func (_u *DiscoveredURLUpdate) SetNillableDuplicateReason(v *string) *DiscoveredURLUpdate {
	if v != nil {
		_u.SetDuplicateReason(*v)
	}
	return _u
}

// ClearDuplicateReason clears the value of the "duplicate_reason" field.
func (_u *DiscoveredURLUpdate) ClearDuplicateReason() *DiscoveredURLUpdate {
	_u.mutation.ClearDuplicateReason()
	return _u
}

// SetCheckedAt sets the "checked_at" field.
func (_u *DiscoveredURLUpdate) SetCheckedAt(v time.Time) *DiscoveredURLUpdate {
	_u.mutation.SetCheckedAt(v)
	return _u
}

// SetNillableCheckedAt sets the "checked_at" field if the given value is not nil.
func (_u *DiscoveredURLUpdate) SetNillableCheckedAt(v *time.Time) *DiscoveredURLUpdate {
	if v != nil {
		_u.SetCheckedAt(*v)
	}
	return _u
}

// ClearCheckedAt clears the value of the "checked_at" field.
func (_u *DiscoveredURLUpdate) ClearCheckedAt() *DiscoveredURLUpdate {
	_u.mutation.ClearCheckedAt()
	return _u
}

// SetCheckStartedAt sets the "check_started_at" field.
func (_u *DiscoveredURLUpdate) SetCheckStartedAt(v time.Time) *DiscoveredURLUpdate {
	_u.mutation.SetCheckStartedAt(v)
	return _u
}

// SetNillableCheckStartedAt sets the "check_started_at" field if the given value is not nil.
func (_u *DiscoveredURLUpdate) SetNillableCheckStartedAt(v *time.Time) *DiscoveredURLUpdate {
	if v != nil {
		_u.SetCheckStartedAt(*v)
	}
	return _u
}

// ClearCheckStartedAt clears the value of the "check_started_at" field.
func (_u *DiscoveredURLUpdate) ClearCheckStartedAt() *DiscoveredURLUpdate {
	_u.mutation.ClearCheckStartedAt()
	return _u
}

// SetMlClassification sets the "ml_classification" field.
func (_u *DiscoveredURLUpdate) SetMlClassification(v string) *DiscoveredURLUpdate {
	_u.mutation.SetMlClassification(v)
	return _u
}

// SetNillableMlClassification sets the "ml_classification" field if the given value is not nil.
func (_u *DiscoveredURLUpdate) SetNillableMlClassification(v *string) *DiscoveredURLUpdate {
	if v != nil {
		_u.SetMlClassification(*v)
	}
	return _u
}

// ClearMlClassification clears the value of the "ml_classification" field.
func (_u *DiscoveredURLUpdate) ClearMlClassification() *DiscoveredURLUpdate {
	_u.mutation.ClearMlClassification()
	return _u
}

// SetMlConfidence sets the "ml_confidence" field.
func (_u *DiscoveredURLUpdate) SetMlConfidence(v float64) *DiscoveredURLUpdate {
	_u.mutation.ResetMlConfidence()
	_u.mutation.SetMlConfidence(v)
	return _u
}

// SetNillableMlConfidence sets the "ml_confidence" field if the given value is not nil.
func (_u *DiscoveredURLUpdate) SetNillableMlConfidence(v *float64) *DiscoveredURLUpdate {
	if v != nil {
		_u.SetMlConfidence(*v)
	}
	return _u
}

// AddMlConfidence adds value to the "ml_confidence" field.
func (_u *DiscoveredURLUpdate) AddMlConfidence(v float64) *DiscoveredURLUpdate {
	_u.mutation.AddMlConfidence(v)
	return _u
}

// ClearMlConfidence clears the value of the "ml_confidence" field.
func (_u *DiscoveredURLUpdate) ClearMlConfidence() *DiscoveredURLUpdate {
	_u.mutation.ClearMlConfidence()
	return _u
}

// SetMlReason sets the "ml_reason" field.
func (_u *DiscoveredURLUpdate) SetMlReason(v string) *DiscoveredURLUpdate {
	_u.mutation.SetMlReason(v)
	return _u
}

// SetNillableMlReason sets the "ml_reason" field if the given value is not nil.
func (_u *DiscoveredURLUpdate) SetNillableMlReason(v *string) *DiscoveredURLUpdate {
	if v != nil {
		_u.SetMlReason(*v)
	}
	return _u
}

// ClearMlReason clears the value of the "ml_reason" field.
func (_u *DiscoveredURLUpdate) ClearMlReason() *DiscoveredURLUpdate {
	_u.mutation.ClearMlReason()
	return _u
}

// SetMachineType sets the "machine_type" field.
func (_u *DiscoveredURLUpdate) SetMachineType(v string) *DiscoveredURLUpdate {
	_u.mutation.SetMachineType(v)
	return _u
}

// SetNillableMachineType sets the "machine_type" field if the given value is not nil.
func (_u *DiscoveredURLUpdate) SetNillableMachineType(v *string) *DiscoveredURLUpdate {
	if v != nil {
		_u.SetMachineType(*v)
	}
	return _u
}

// ClearMachineType clears the value of the "machine_type" field.
func (_u *DiscoveredURLUpdate) ClearMachineType() *DiscoveredURLUpdate {
	_u.mutation.ClearMachineType()
	return _u
}

// SetShouldAutoSkip sets the "should_auto_skip" field.
func (_u *DiscoveredURLUpdate) SetShouldAutoSkip(v bool) *DiscoveredURLUpdate {
	_u.mutation.SetShouldAutoSkip(v)
	return _u
}

// SetNillableShouldAutoSkip sets the "should_auto_skip" field if the given value is not nil.
func (_u *DiscoveredURLUpdate) SetNillableShouldAutoSkip(v *bool) *DiscoveredURLUpdate {
	if v != nil {
		_u.SetShouldAutoSkip(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DiscoveredURLUpdate) SetUpdatedAt(v time.Time) *DiscoveredURLUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetManufacturer sets the "manufacturer" edge to the Manufacturer entity.
func (_u *DiscoveredURLUpdate) SetManufacturer(v *Manufacturer) *DiscoveredURLUpdate {
	return _u.SetManufacturerID(v.ID)
}

// Mutation returns the DiscoveredURLMutation object of the builder.
func (_u *DiscoveredURLUpdate) Mutation() *DiscoveredURLMutation {
	return _u.mutation
}

// ClearManufacturer clears the "manufacturer" edge to the Manufacturer entity.
func (_u *DiscoveredURLUpdate) ClearManufacturer() *DiscoveredURLUpdate {
	_u.mutation.ClearManufacturer()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DiscoveredURLUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiscoveredURLUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DiscoveredURLUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiscoveredURLUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DiscoveredURLUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := discoveredurl.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DiscoveredURLUpdate) check() error {
	if v, ok := _u.mutation.URL(); ok {
		if err := discoveredurl.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "DiscoveredURL.url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := discoveredurl.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DiscoveredURL.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DuplicateStatus(); ok {
		if err := discoveredurl.DuplicateStatusValidator(v); err != nil {
			return &ValidationError{Name: "duplicate_status", err: fmt.Errorf(`ent: validator failed for field "DiscoveredURL.duplicate_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MlClassification(); ok {
		if err := discoveredurl.MlClassificationValidator(v); err != nil {
			return &ValidationError{Name: "ml_classification", err: fmt.Errorf(`ent: validator failed for field "DiscoveredURL.ml_classification": %w`, err)}
		}
	}
	if _u.mutation.ManufacturerCleared() && len(_u.mutation.ManufacturerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DiscoveredURL.manufacturer"`)
	}
	return nil
}

func (_u *DiscoveredURLUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(discoveredurl.Table, discoveredurl.Columns, sqlgraph.NewFieldSpec(discoveredurl.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(discoveredurl.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(discoveredurl.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(discoveredurl.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(discoveredurl.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.DiscoveredAt(); ok {
		_spec.SetField(discoveredurl.FieldDiscoveredAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ScrapedAt(); ok {
		_spec.SetField(discoveredurl.FieldScrapedAt, field.TypeTime, value)
	}
	if _u.mutation.ScrapedAtCleared() {
		_spec.ClearField(discoveredurl.FieldScrapedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(discoveredurl.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(discoveredurl.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ScrapedFields(); ok {
		_spec.SetField(discoveredurl.FieldScrapedFields, field.TypeJSON, value)
	}
	if _u.mutation.ScrapedFieldsCleared() {
		_spec.ClearField(discoveredurl.FieldScrapedFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.DuplicateStatus(); ok {
		_spec.SetField(discoveredurl.FieldDuplicateStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExistingMachineID(); ok {
		_spec.SetField(discoveredurl.FieldExistingMachineID, field.TypeUUID, value)
	}
	if _u.mutation.ExistingMachineIDCleared() {
		_spec.ClearField(discoveredurl.FieldExistingMachineID, field.TypeUUID)
	}
	if value, ok := _u.mutation.SimilarityScore(); ok {
		_spec.SetField(discoveredurl.FieldSimilarityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSimilarityScore(); ok {
		_spec.AddField(discoveredurl.FieldSimilarityScore, field.TypeFloat64, value)
	}
	if _u.mutation.SimilarityScoreCleared() {
		_spec.ClearField(discoveredurl.FieldSimilarityScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.DuplicateReason(); ok {
		_spec.SetField(discoveredurl.FieldDuplicateReason, field.TypeString, value)
	}
	if _u.mutation.DuplicateReasonCleared() {
		_spec.ClearField(discoveredurl.FieldDuplicateReason, field.TypeString)
	}
	if value, ok := _u.mutation.CheckedAt(); ok {
		_spec.SetField(discoveredurl.FieldCheckedAt, field.TypeTime, value)
	}
	if _u.mutation.CheckedAtCleared() {
		_spec.ClearField(discoveredurl.FieldCheckedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CheckStartedAt(); ok {
		_spec.SetField(discoveredurl.FieldCheckStartedAt, field.TypeTime, value)
	}
	if _u.mutation.CheckStartedAtCleared() {
		_spec.ClearField(discoveredurl.FieldCheckStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.MlClassification(); ok {
		_spec.SetField(discoveredurl.FieldMlClassification, field.TypeString, value)
	}
	if _u.mutation.MlClassificationCleared() {
		_spec.ClearField(discoveredurl.FieldMlClassification, field.TypeString)
	}
	if value, ok := _u.mutation.MlConfidence(); ok {
		_spec.SetField(discoveredurl.FieldMlConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMlConfidence(); ok {
		_spec.AddField(discoveredurl.FieldMlConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.MlConfidenceCleared() {
		_spec.ClearField(discoveredurl.FieldMlConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MlReason(); ok {
		_spec.SetField(discoveredurl.FieldMlReason, field.TypeString, value)
	}
	if _u.mutation.MlReasonCleared() {
		_spec.ClearField(discoveredurl.FieldMlReason, field.TypeString)
	}
	if value, ok := _u.mutation.MachineType(); ok {
		_spec.SetField(discoveredurl.FieldMachineType, field.TypeString, value)
	}
	if _u.mutation.MachineTypeCleared() {
		_spec.ClearField(discoveredurl.FieldMachineType, field.TypeString)
	}
	if value, ok := _u.mutation.ShouldAutoSkip(); ok {
		_spec.SetField(discoveredurl.FieldShouldAutoSkip, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(discoveredurl.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ManufacturerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ManufacturerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{discoveredurl.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DiscoveredURLUpdateOne is the builder for updating a single DiscoveredURL entity.
type DiscoveredURLUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DiscoveredURLMutation
}

// SetManufacturerID sets the "manufacturer_id" field.
func (_u *DiscoveredURLUpdateOne) SetManufacturerID(v uuid.UUID) *DiscoveredURLUpdateOne {
	_u.mutation.SetManufacturerID(v)
	return _u
}

// SetNillableManufacturerID sets the "manufacturer_id" field if the given value is not nil.
func (_u *DiscoveredURLUpdateOne) SetNillableManufacturerID(v *uuid.UUID) *DiscoveredURLUpdateOne {
	if v != nil {
		_u.SetManufacturerID(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *DiscoveredURLUpdateOne) SetURL(v string) *DiscoveredURLUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *DiscoveredURLUpdateOne) SetNillableURL(v *string) *DiscoveredURLUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *DiscoveredURLUpdateOne) SetCategory(v string) *DiscoveredURLUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *DiscoveredURLUpdateOne) SetNillableCategory(v *string) *DiscoveredURLUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *DiscoveredURLUpdateOne) ClearCategory() *DiscoveredURLUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DiscoveredURLUpdateOne) SetStatus(v string) *DiscoveredURLUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DiscoveredURLUpdateOne) SetNillableStatus(v *string) *DiscoveredURLUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDiscoveredAt sets the "discovered_at" field.
func (_u *DiscoveredURLUpdateOne) SetDiscoveredAt(v time.Time) *DiscoveredURLUpdateOne {
	_u.mutation.SetDiscoveredAt(v)
	return _u
}

// SetNillableDiscoveredAt sets the "discovered_at" field if the given value is not nil.
func (_u *DiscoveredURLUpdateOne) SetNillableDiscoveredAt(v *time.Time) *DiscoveredURLUpdateOne {
	if v != nil {
		_u.SetDiscoveredAt(*v)
	}
	return _u
}

// SetScrapedAt sets the "scraped_at" field.
func (_u *DiscoveredURLUpdateOne) SetScrapedAt(v time.Time) *DiscoveredURLUpdateOne {
	_u.mutation.SetScrapedAt(v)
	return _u
}

// SetNillableScrapedAt sets the "scraped_at" field if the given value is not nil.
func (_u *DiscoveredURLUpdateOne) SetNillableScrapedAt(v *time.Time) *DiscoveredURLUpdateOne {
	if v != nil {
		_u.SetScrapedAt(*v)
	}
	return _u
}

// ClearScrapedAt clears the value of the "scraped_at" field.
func (_u *DiscoveredURLUpdateOne) ClearScrapedAt() *DiscoveredURLUpdateOne {
	_u.mutation.ClearScrapedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DiscoveredURLUpdateOne) SetErrorMessage(v string) *DiscoveredURLUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DiscoveredURLUpdateOne) SetNillableErrorMessage(v *string) *DiscoveredURLUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DiscoveredURLUpdateOne) ClearErrorMessage() *DiscoveredURLUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetScrapedFields sets the "scraped_fields" field.
func (_u *DiscoveredURLUpdateOne) SetScrapedFields(v map[string]interface{}) *DiscoveredURLUpdateOne {
	_u.mutation.SetScrapedFields(v)
	return _u
}

// ClearScrapedFields clears the value of the "scraped_fields" field.
func (_u *DiscoveredURLUpdateOne) ClearScrapedFields() *DiscoveredURLUpdateOne {
	_u.mutation.ClearScrapedFields()
	return _u
}

// SetDuplicateStatus sets the "duplicate_status" field.
func (_u *DiscoveredURLUpdateOne) SetDuplicateStatus(v string) *DiscoveredURLUpdateOne {
	_u.mutation.SetDuplicateStatus(v)
	return _u
}

// SetNillableDuplicateStatus sets the "duplicate_status" field if the given value is not nil.
func (_u *DiscoveredURLUpdateOne) SetNillableDuplicateStatus(v *string) *DiscoveredURLUpdateOne {
	if v != nil {
		_u.SetDuplicateStatus(*v)
	}
	return _u
}

// SetExistingMachineID sets the "existing_machine_id" field.
func (_u *DiscoveredURLUpdateOne) SetExistingMachineID(v uuid.UUID) *DiscoveredURLUpdateOne {
	_u.mutation.SetExistingMachineID(v)
	return _u
}

// SetNillableExistingMachineID sets the "existing_machine_id" field if the given value is not nil.
func (_u *DiscoveredURLUpdateOne) SetNillableExistingMachineID(v *uuid.UUID) *DiscoveredURLUpdateOne {
	if v != nil {
		_u.SetExistingMachineID(*v)
	}
	return _u
}

// ClearExistingMachineID clears the value of the "existing_machine_id" field.
func (_u *DiscoveredURLUpdateOne) ClearExistingMachineID() *DiscoveredURLUpdateOne {
	_u.mutation.ClearExistingMachineID()
	return _u
}

// SetSimilarityScore sets the "similarity_score" field.
func (_u *DiscoveredURLUpdateOne) SetSimilarityScore(v float64) *DiscoveredURLUpdateOne {
	_u.mutation.ResetSimilarityScore()
	_u.mutation.SetSimilarityScore(v)
	return _u
}

// SetNillableSimilarityScore sets the "similarity_score" field if the given value is not nil.
func (_u *DiscoveredURLUpdateOne) SetNillableSimilarityScore(v *float64) *DiscoveredURLUpdateOne {
	if v != nil {
		_u.SetSimilarityScore(*v)
	}
	return _u
}

// AddSimilarityScore adds value to the "similarity_score" field.
func (_u *DiscoveredURLUpdateOne) AddSimilarityScore(v float64) *DiscoveredURLUpdateOne {
	_u.mutation.AddSimilarityScore(v)
	return _u
}

// ClearSimilarityScore clears the value of the "similarity_score" field.
func (_u *DiscoveredURLUpdateOne) ClearSimilarityScore() *DiscoveredURLUpdateOne {
	_u.mutation.ClearSimilarityScore()
	return _u
}

// SetDuplicateReason sets the "duplicate_reason" field.
func (_u *DiscoveredURLUpdateOne) SetDuplicateReason(v string) *DiscoveredURLUpdateOne {
	_u.mutation.SetDuplicateReason(v)
	return _u
}

// SetNillableDuplicateReason sets the "duplicate_reason" field if the given value is not nil.
func (_u *DiscoveredURLUpdateOne) SetNillableDuplicateReason(v *string) *DiscoveredURLUpdateOne {
	if v != nil {
		_u.SetDuplicateReason(*v)
	}
	return _u
}

// ClearDuplicateReason clears the value of the "duplicate_reason" field.
func (_u *DiscoveredURLUpdateOne) ClearDuplicateReason() *DiscoveredURLUpdateOne {
	_u.mutation.ClearDuplicateReason()
	return _u
}

// SetCheckedAt sets the "checked_at" field.
func (_u *DiscoveredURLUpdateOne) SetCheckedAt(v time.Time) *DiscoveredURLUpdateOne {
	_u.mutation.SetCheckedAt(v)
	return _u
}

// SetNillableCheckedAt sets the "checked_at" field if the given value is not nil.
func (_u *DiscoveredURLUpdateOne) SetNillableCheckedAt(v *time.Time) *DiscoveredURLUpdateOne {
	if v != nil {
		_u.SetCheckedAt(*v)
	}
	return _u
}

// ClearCheckedAt clears the value of the "checked_at" field.
func (_u *DiscoveredURLUpdateOne) ClearCheckedAt() *DiscoveredURLUpdateOne {
	_u.mutation.ClearCheckedAt()
	return _u
}

// SetCheckStartedAt sets the "check_started_at" field.
func (_u *DiscoveredURLUpdateOne) SetCheckStartedAt(v time.Time) *DiscoveredURLUpdateOne {
	_u.mutation.SetCheckStartedAt(v)
	return _u
}

// SetNillableCheckStartedAt sets the "check_started_at" field if the given value is not nil.
func (_u *DiscoveredURLUpdateOne) SetNillableCheckStartedAt(v *time.Time) *DiscoveredURLUpdateOne {
	if v != nil {
		_u.SetCheckStartedAt(*v)
	}
	return _u
}

// ClearCheckStartedAt clears the value of the "check_started_at" field.
func (_u *DiscoveredURLUpdateOne) ClearCheckStartedAt() *DiscoveredURLUpdateOne {
	_u.mutation.ClearCheckStartedAt()
	return _u
}

// SetMlClassification sets the "ml_classification" field.
func (_u *DiscoveredURLUpdateOne) SetMlClassification(v string) *DiscoveredURLUpdateOne {
	_u.mutation.SetMlClassification(v)
	return _u
}

// SetNillableMlClassification sets the "ml_classification" field if the given value is not nil.
func (_u *DiscoveredURLUpdateOne) SetNillableMlClassification(v *string) *DiscoveredURLUpdateOne {
	if v != nil {
		_u.SetMlClassification(*v)
	}
	return _u
}

// ClearMlClassification clears the value of the "ml_classification" field.
func (_u *DiscoveredURLUpdateOne) ClearMlClassification() *DiscoveredURLUpdateOne {
	_u.mutation.ClearMlClassification()
	return _u
}

// SetMlConfidence sets the "ml_confidence" field.
func (_u *DiscoveredURLUpdateOne) SetMlConfidence(v float64) *DiscoveredURLUpdateOne {
	_u.mutation.ResetMlConfidence()
	_u.mutation.SetMlConfidence(v)
	return _u
}

// SetNillableMlConfidence sets the "ml_confidence" field if the given value is not nil.
func (_u *DiscoveredURLUpdateOne) SetNillableMlConfidence(v *float64) *DiscoveredURLUpdateOne {
	if v != nil {
		_u.SetMlConfidence(*v)
	}
	return _u
}

// AddMlConfidence adds value to the "ml_confidence" field.
func (_u *DiscoveredURLUpdateOne) AddMlConfidence(v float64) *DiscoveredURLUpdateOne {
	_u.mutation.AddMlConfidence(v)
	return _u
}

// ClearMlConfidence clears the value of the "ml_confidence" field.
func (_u *DiscoveredURLUpdateOne) ClearMlConfidence() *DiscoveredURLUpdateOne {
	_u.mutation.ClearMlConfidence()
	return _u
}

// SetMlReason sets the "ml_reason" field.
func (_u *DiscoveredURLUpdateOne) SetMlReason(v string) *DiscoveredURLUpdateOne {
	_u.mutation.SetMlReason(v)
	return _u
}

// SetNillableMlReason sets the "ml_reason" field if the given value is not nil.
func (_u *DiscoveredURLUpdateOne) SetNillableMlReason(v *string) *DiscoveredURLUpdateOne {
	if v != nil {
		_u.SetMlReason(*v)
	}
	return _u
}

// ClearMlReason clears the value of the "ml_reason" field.
func (_u *DiscoveredURLUpdateOne) ClearMlReason() *DiscoveredURLUpdateOne {
	_u.mutation.ClearMlReason()
	return _u
}

// SetMachineType sets the "machine_type" field.
func (_u *DiscoveredURLUpdateOne) SetMachineType(v string) *DiscoveredURLUpdateOne {
	_u.mutation.SetMachineType(v)
	return _u
}

// SetNillableMachineType sets the "machine_type" field if the given value is not nil.
func (_u *DiscoveredURLUpdateOne) SetNillableMachineType(v *string) *DiscoveredURLUpdateOne {
	if v != nil {
		_u.SetMachineType(*v)
	}
	return _u
}

// ClearMachineType clears the value of the "machine_type" field.
func (_u *DiscoveredURLUpdateOne) ClearMachineType() *DiscoveredURLUpdateOne {
	_u.mutation.ClearMachineType()
	return _u
}

// SetShouldAutoSkip sets the "should_auto_skip" field.
func (_u *DiscoveredURLUpdateOne) SetShouldAutoSkip(v bool) *DiscoveredURLUpdateOne {
	_u.mutation.SetShouldAutoSkip(v)
	return _u
}

// SetNillableShouldAutoSkip sets the "should_auto_skip" field if the given value is not nil.
func (_u *DiscoveredURLUpdateOne) SetNillableShouldAutoSkip(v *bool) *DiscoveredURLUpdateOne {
	if v != nil {
		_u.SetShouldAutoSkip(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DiscoveredURLUpdateOne) SetUpdatedAt(v time.Time) *DiscoveredURLUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetManufacturer sets the "manufacturer" edge to the Manufacturer entity.
func (_u *DiscoveredURLUpdateOne) SetManufacturer(v *Manufacturer) *DiscoveredURLUpdateOne {
	return _u.SetManufacturerID(v.ID)
}

// Mutation returns the DiscoveredURLMutation object of the builder.
func (_u *DiscoveredURLUpdateOne) Mutation() *DiscoveredURLMutation {
	return _u.mutation
}

// ClearManufacturer clears the "manufacturer" edge to the Manufacturer entity.
func (_u *DiscoveredURLUpdateOne) ClearManufacturer() *DiscoveredURLUpdateOne {
	_u.mutation.ClearManufacturer()
	return _u
}

// Where appends a list predicates to the DiscoveredURLUpdate builder.
func (_u *DiscoveredURLUpdateOne) Where(ps ...predicate.DiscoveredURL) *DiscoveredURLUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DiscoveredURLUpdateOne) Select(field string, fields ...string) *DiscoveredURLUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DiscoveredURL entity.
func (_u *DiscoveredURLUpdateOne) Save(ctx context.Context) (*DiscoveredURL, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiscoveredURLUpdateOne) SaveX(ctx context.Context) *DiscoveredURL {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DiscoveredURLUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiscoveredURLUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DiscoveredURLUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := discoveredurl.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DiscoveredURLUpdateOne) check() error {
	if v, ok := _u.mutation.URL(); ok {
		if err := discoveredurl.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "DiscoveredURL.url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := discoveredurl.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DiscoveredURL.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DuplicateStatus(); ok {
		if err := discoveredurl.DuplicateStatusValidator(v); err != nil {
			return &ValidationError{Name: "duplicate_status", err: fmt.Errorf(`ent: validator failed for field "DiscoveredURL.duplicate_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MlClassification(); ok {
		if err := discoveredurl.MlClassificationValidator(v); err != nil {
			return &ValidationError{Name: "ml_classification", err: fmt.Errorf(`ent: validator failed for field "DiscoveredURL.ml_classification": %w`, err)}
		}
	}
	if _u.mutation.ManufacturerCleared() && len(_u.mutation.ManufacturerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DiscoveredURL.manufacturer"`)
	}
	return nil
}

func (_u *DiscoveredURLUpdateOne) sqlSave(ctx context.Context) (_node *DiscoveredURL, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(discoveredurl.Table, discoveredurl.Columns, sqlgraph.NewFieldSpec(discoveredurl.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DiscoveredURL.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, discoveredurl.FieldID)
		for _, f := range fields {
			if !discoveredurl.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != discoveredurl.FieldID {
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
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(discoveredurl.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(discoveredurl.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(discoveredurl.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(discoveredurl.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.DiscoveredAt(); ok {
		_spec.SetField(discoveredurl.FieldDiscoveredAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ScrapedAt(); ok {
		_spec.SetField(discoveredurl.FieldScrapedAt, field.TypeTime, value)
	}
	if _u.mutation.ScrapedAtCleared() {
		_spec.ClearField(discoveredurl.FieldScrapedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(discoveredurl.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(discoveredurl.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ScrapedFields(); ok {
		_spec.SetField(discoveredurl.FieldScrapedFields, field.TypeJSON, value)
	}
	if _u.mutation.ScrapedFieldsCleared() {
		_spec.ClearField(discoveredurl.FieldScrapedFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.DuplicateStatus(); ok {
		_spec.SetField(discoveredurl.FieldDuplicateStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExistingMachineID(); ok {
		_spec.SetField(discoveredurl.FieldExistingMachineID, field.TypeUUID, value)
	}
	if _u.mutation.ExistingMachineIDCleared() {
		_spec.ClearField(discoveredurl.FieldExistingMachineID, field.TypeUUID)
	}
	if value, ok := _u.mutation.SimilarityScore(); ok {
		_spec.SetField(discoveredurl.FieldSimilarityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSimilarityScore(); ok {
		_spec.AddField(discoveredurl.FieldSimilarityScore, field.TypeFloat64, value)
	}
	if _u.mutation.SimilarityScoreCleared() {
		_spec.ClearField(discoveredurl.FieldSimilarityScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.DuplicateReason(); ok {
		_spec.SetField(discoveredurl.FieldDuplicateReason, field.TypeString, value)
	}
	if _u.mutation.DuplicateReasonCleared() {
		_spec.ClearField(discoveredurl.FieldDuplicateReason, field.TypeString)
	}
	if value, ok := _u.mutation.CheckedAt(); ok {
		_spec.SetField(discoveredurl.FieldCheckedAt, field.TypeTime, value)
	}
	if _u.mutation.CheckedAtCleared() {
		_spec.ClearField(discoveredurl.FieldCheckedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CheckStartedAt(); ok {
		_spec.SetField(discoveredurl.FieldCheckStartedAt, field.TypeTime, value)
	}
	if _u.mutation.CheckStartedAtCleared() {
		_spec.ClearField(discoveredurl.FieldCheckStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.MlClassification(); ok {
		_spec.SetField(discoveredurl.FieldMlClassification, field.TypeString, value)
	}
	if _u.mutation.MlClassificationCleared() {
		_spec.ClearField(discoveredurl.FieldMlClassification, field.TypeString)
	}
	if value, ok := _u.mutation.MlConfidence(); ok {
		_spec.SetField(discoveredurl.FieldMlConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMlConfidence(); ok {
		_spec.AddField(discoveredurl.FieldMlConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.MlConfidenceCleared() {
		_spec.ClearField(discoveredurl.FieldMlConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MlReason(); ok {
		_spec.SetField(discoveredurl.FieldMlReason, field.TypeString, value)
	}
	if _u.mutation.MlReasonCleared() {
		_spec.ClearField(discoveredurl.FieldMlReason, field.TypeString)
	}
	if value, ok := _u.mutation.MachineType(); ok {
		_spec.SetField(discoveredurl.FieldMachineType, field.TypeString, value)
	}
	if _u.mutation.MachineTypeCleared() {
		_spec.ClearField(discoveredurl.FieldMachineType, field.TypeString)
	}
	if value, ok := _u.mutation.ShouldAutoSkip(); ok {
		_spec.SetField(discoveredurl.FieldShouldAutoSkip, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(discoveredurl.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ManufacturerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ManufacturerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DiscoveredURL{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{discoveredurl.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
