// Code generated by ent, DO NOT EDIT.

package catalogmachine

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/machinehub/discovery-pipeline/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldLTE(FieldID, id))
}

// ManufacturerID applies equality check predicate on the "manufacturer_id" field. It's identical to ManufacturerIDEQ.
func ManufacturerID(v uuid.UUID) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldEQ(FieldManufacturerID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldEQ(FieldName, v))
}

// MachineType applies equality check predicate on the "machine_type" field. It's identical to MachineTypeEQ.
func MachineType(v string) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldEQ(FieldMachineType, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldEQ(FieldUpdatedAt, v))
}

// ManufacturerIDEQ applies the EQ predicate on the "manufacturer_id" field.
func ManufacturerIDEQ(v uuid.UUID) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldEQ(FieldManufacturerID, v))
}

// ManufacturerIDNEQ applies the NEQ predicate on the "manufacturer_id" field.
func ManufacturerIDNEQ(v uuid.UUID) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldNEQ(FieldManufacturerID, v))
}

// ManufacturerIDIn applies the In predicate on the "manufacturer_id" field.
func ManufacturerIDIn(vs ...uuid.UUID) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldIn(FieldManufacturerID, vs...))
}

// ManufacturerIDNotIn applies the NotIn predicate on the "manufacturer_id" field.
func ManufacturerIDNotIn(vs ...uuid.UUID) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldNotIn(FieldManufacturerID, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldContainsFold(FieldName, v))
}

// MachineTypeEQ applies the EQ predicate on the "machine_type" field.
func MachineTypeEQ(v string) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldEQ(FieldMachineType, v))
}

// MachineTypeNEQ applies the NEQ predicate on the "machine_type" field.
func MachineTypeNEQ(v string) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldNEQ(FieldMachineType, v))
}

// MachineTypeIn applies the In predicate on the "machine_type" field.
func MachineTypeIn(vs ...string) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldIn(FieldMachineType, vs...))
}

// MachineTypeNotIn applies the NotIn predicate on the "machine_type" field.
func MachineTypeNotIn(vs ...string) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldNotIn(FieldMachineType, vs...))
}

// MachineTypeGT applies the GT predicate on the "machine_type" field.
func MachineTypeGT(v string) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldGT(FieldMachineType, v))
}

// MachineTypeGTE applies the GTE predicate on the "machine_type" field.
func MachineTypeGTE(v string) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldGTE(FieldMachineType, v))
}

// MachineTypeLT applies the LT predicate on the "machine_type" field.
func MachineTypeLT(v string) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldLT(FieldMachineType, v))
}

// MachineTypeLTE applies the LTE predicate on the "machine_type" field.
func MachineTypeLTE(v string) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldLTE(FieldMachineType, v))
}

// MachineTypeContains applies the Contains predicate on the "machine_type" field.
func MachineTypeContains(v string) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldContains(FieldMachineType, v))
}

// MachineTypeHasPrefix applies the HasPrefix predicate on the "machine_type" field.
func MachineTypeHasPrefix(v string) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldHasPrefix(FieldMachineType, v))
}

// MachineTypeHasSuffix applies the HasSuffix predicate on the "machine_type" field.
func MachineTypeHasSuffix(v string) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldHasSuffix(FieldMachineType, v))
}

// MachineTypeIsNil applies the IsNil predicate on the "machine_type" field.
func MachineTypeIsNil() predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldIsNull(FieldMachineType))
}

// MachineTypeNotNil applies the NotNil predicate on the "machine_type" field.
func MachineTypeNotNil() predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldNotNull(FieldMachineType))
}

// MachineTypeEqualFold applies the EqualFold predicate on the "machine_type" field.
func MachineTypeEqualFold(v string) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldEqualFold(FieldMachineType, v))
}

// MachineTypeContainsFold applies the ContainsFold predicate on the "machine_type" field.
func MachineTypeContainsFold(v string) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldContainsFold(FieldMachineType, v))
}

// SpecTokensIsNil applies the IsNil predicate on the "spec_tokens" field.
func SpecTokensIsNil() predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldIsNull(FieldSpecTokens))
}

// SpecTokensNotNil applies the NotNil predicate on the "spec_tokens" field.
func SpecTokensNotNil() predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldNotNull(FieldSpecTokens))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasManufacturer applies the HasEdge predicate on the "manufacturer" edge.
func HasManufacturer() predicate.CatalogMachine {
	return predicate.CatalogMachine(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ManufacturerTable, ManufacturerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasManufacturerWith applies the HasEdge predicate on the "manufacturer" edge with a given conditions (other predicates).
func HasManufacturerWith(preds ...predicate.Manufacturer) predicate.CatalogMachine {
	return predicate.CatalogMachine(func(s *sql.Selector) {
		step := newManufacturerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CatalogMachine) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CatalogMachine) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CatalogMachine) predicate.CatalogMachine {
	return predicate.CatalogMachine(sql.NotPredicates(p))
}
