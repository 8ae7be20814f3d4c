// Code generated by ent, DO NOT EDIT.

package manufacturer

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the manufacturer type in the database.
	Label = "manufacturer"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldWebsite holds the string denoting the website field in the database.
	FieldWebsite = "website"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeUrls holds the string denoting the urls edge name in mutations.
	EdgeUrls = "urls"
	// EdgeMachines holds the string denoting the machines edge name in mutations.
	EdgeMachines = "machines"
	// Table holds the table name of the manufacturer in the database.
	Table = "manufacturers"
	// UrlsTable is the table that holds the urls relation/edge.
	UrlsTable = "discovered_url"
	// UrlsInverseTable is the table name for the DiscoveredURL entity.
	// It exists in this package in order to avoid circular dependency with the "discoveredurl" package.
	UrlsInverseTable = "discovered_url"
	// UrlsColumn is the table column denoting the urls relation/edge.
	UrlsColumn = "manufacturer_id"
	// MachinesTable is the table that holds the machines relation/edge.
	MachinesTable = "catalog_machines"
	// MachinesInverseTable is the table name for the CatalogMachine entity.
	// It exists in this package in order to avoid circular dependency with the "catalogmachine" package.
	MachinesInverseTable = "catalog_machines"
	// MachinesColumn is the table column denoting the machines relation/edge.
	MachinesColumn = "manufacturer_id"
)

// Columns holds all SQL columns for manufacturer fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldWebsite,
	FieldCreatedAt,
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
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Manufacturer queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByWebsite orders the results by the website field.
func ByWebsite(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWebsite, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUrlsCount orders the results by urls count.
func ByUrlsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newUrlsStep(), opts...)
	}
}

// ByUrls orders the results by urls terms.
func ByUrls(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUrlsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByMachinesCount orders the results by machines count.
func ByMachinesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMachinesStep(), opts...)
	}
}

// ByMachines orders the results by machines terms.
func ByMachines(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMachinesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newUrlsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UrlsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, UrlsTable, UrlsColumn),
	)
}
func newMachinesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MachinesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MachinesTable, MachinesColumn),
	)
}
