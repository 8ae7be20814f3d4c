// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CatalogMachine is the predicate function for catalogmachine builders.
type CatalogMachine func(*sql.Selector)

// DiscoveredURL is the predicate function for discoveredurl builders.
type DiscoveredURL func(*sql.Selector)

// Manufacturer is the predicate function for manufacturer builders.
type Manufacturer func(*sql.Selector)
