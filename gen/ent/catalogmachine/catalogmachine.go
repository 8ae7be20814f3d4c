// Code generated by ent, DO NOT EDIT.

package catalogmachine

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the catalogmachine type in the database.
	Label = "catalog_machine"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldManufacturerID holds the string denoting the manufacturer_id field in the database.
	FieldManufacturerID = "manufacturer_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldMachineType holds the string denoting the machine_type field in the database.
	FieldMachineType = "machine_type"
	// FieldSpecTokens holds the string denoting the spec_tokens field in the database.
	FieldSpecTokens = "spec_tokens"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeManufacturer holds the string denoting the manufacturer edge name in mutations.
	EdgeManufacturer = "manufacturer"
	// Table holds the table name of the catalogmachine in the database.
	Table = "catalog_machines"
	// ManufacturerTable is the table that holds the manufacturer relation/edge.
	ManufacturerTable = "catalog_machines"
	// ManufacturerInverseTable is the table name for the Manufacturer entity.
	// It exists in this package in order to avoid circular dependency with the "manufacturer" package.
	ManufacturerInverseTable = "manufacturers"
	// ManufacturerColumn is the table column denoting the manufacturer relation/edge.
	ManufacturerColumn = "manufacturer_id"
)

// Columns holds all SQL columns for catalogmachine fields.
var Columns = []string{
	FieldID,
	FieldManufacturerID,
	FieldName,
	FieldMachineType,
	FieldSpecTokens,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the CatalogMachine queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByManufacturerID orders the results by the manufacturer_id field.
func ByManufacturerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldManufacturerID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByMachineType orders the results by the machine_type field.
func ByMachineType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMachineType, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByManufacturerField orders the results by manufacturer field.
func ByManufacturerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newManufacturerStep(), sql.OrderByField(field, opts...))
	}
}
func newManufacturerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ManufacturerInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ManufacturerTable, ManufacturerColumn),
	)
}
