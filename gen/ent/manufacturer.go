// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/machinehub/discovery-pipeline/gen/ent/manufacturer"
)

// Manufacturer is the model entity for the Manufacturer schema.
type Manufacturer struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Website holds the value of the "website" field.
	Website *string `json:"website,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ManufacturerQuery when eager-loading is set.
	Edges        ManufacturerEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ManufacturerEdges holds the relations/edges for other nodes in the graph.
type ManufacturerEdges struct {
	// Urls holds the value of the urls edge.
	Urls []*DiscoveredURL `json:"urls,omitempty"`
	// Machines holds the value of the machines edge.
	Machines []*CatalogMachine `json:"machines,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// UrlsOrErr returns the Urls value or an error if the edge
// was not loaded in eager-loading.
func (e ManufacturerEdges) UrlsOrErr() ([]*DiscoveredURL, error) {
	if e.loadedTypes[0] {
		return e.Urls, nil
	}
	return nil, &NotLoadedError{edge: "urls"}
}

// MachinesOrErr returns the Machines value or an error if the edge
// was not loaded in eager-loading.
func (e ManufacturerEdges) MachinesOrErr() ([]*CatalogMachine, error) {
	if e.loadedTypes[1] {
		return e.Machines, nil
	}
	return nil, &NotLoadedError{edge: "machines"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Manufacturer) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case manufacturer.FieldName, manufacturer.FieldWebsite:
			values[i] = new(sql.NullString)
		case manufacturer.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case manufacturer.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Manufacturer fields.
func (_m *Manufacturer) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case manufacturer.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case manufacturer.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case manufacturer.FieldWebsite:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field website", values[i])
			} else if value.Valid {
				_m.Website = new(string)
				*_m.Website = value.String
			}
		case manufacturer.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Manufacturer.
// This includes values selected through modifiers, order, etc.
func (_m *Manufacturer) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUrls queries the "urls" edge of the Manufacturer entity.
func (_m *Manufacturer) QueryUrls() *DiscoveredURLQuery {
	return NewManufacturerClient(_m.config).QueryUrls(_m)
}

// QueryMachines queries the "machines" edge of the Manufacturer entity.
func (_m *Manufacturer) QueryMachines() *CatalogMachineQuery {
	return NewManufacturerClient(_m.config).QueryMachines(_m)
}

// Update returns a builder for updating this Manufacturer.
// Note that you need to call Manufacturer.Unwrap() before calling this method if this Manufacturer
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Manufacturer) Update() *ManufacturerUpdateOne {
	return NewManufacturerClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Manufacturer entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Manufacturer) Unwrap() *Manufacturer {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Manufacturer is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Manufacturer) String() string {
	var builder strings.Builder
	builder.WriteString("Manufacturer(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.Website; v != nil {
		builder.WriteString("website=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Manufacturers is a parsable slice of Manufacturer.
type Manufacturers []*Manufacturer
