// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/machinehub/discovery-pipeline/gen/ent/catalogmachine"
	"github.com/machinehub/discovery-pipeline/gen/ent/manufacturer"
)

// CatalogMachine is the model entity for the CatalogMachine schema.
type CatalogMachine struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ManufacturerID holds the value of the "manufacturer_id" field.
	ManufacturerID uuid.UUID `json:"manufacturer_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// MachineType holds the value of the "machine_type" field.
	MachineType *string `json:"machine_type,omitempty"`
	// SpecTokens holds the value of the "spec_tokens" field.
	SpecTokens []string `json:"spec_tokens,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CatalogMachineQuery when eager-loading is set.
	Edges        CatalogMachineEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CatalogMachineEdges holds the relations/edges for other nodes in the graph.
type CatalogMachineEdges struct {
	// Manufacturer holds the value of the manufacturer edge.
	Manufacturer *Manufacturer `json:"manufacturer,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ManufacturerOrErr returns the Manufacturer value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CatalogMachineEdges) ManufacturerOrErr() (*Manufacturer, error) {
	if e.Manufacturer != nil {
		return e.Manufacturer, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: manufacturer.Label}
	}
	return nil, &NotLoadedError{edge: "manufacturer"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CatalogMachine) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case catalogmachine.FieldSpecTokens:
			values[i] = new([]byte)
		case catalogmachine.FieldName, catalogmachine.FieldMachineType:
			values[i] = new(sql.NullString)
		case catalogmachine.FieldCreatedAt, catalogmachine.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case catalogmachine.FieldID, catalogmachine.FieldManufacturerID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CatalogMachine fields.
func (_m *CatalogMachine) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case catalogmachine.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case catalogmachine.FieldManufacturerID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field manufacturer_id", values[i])
			} else if value != nil {
				_m.ManufacturerID = *value
			}
		case catalogmachine.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case catalogmachine.FieldMachineType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field machine_type", values[i])
			} else if value.Valid {
				_m.MachineType = new(string)
				*_m.MachineType = value.String
			}
		case catalogmachine.FieldSpecTokens:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field spec_tokens", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SpecTokens); err != nil {
					return fmt.Errorf("unmarshal field spec_tokens: %w", err)
				}
			}
		case catalogmachine.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case catalogmachine.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CatalogMachine.
// This includes values selected through modifiers, order, etc.
func (_m *CatalogMachine) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryManufacturer queries the "manufacturer" edge of the CatalogMachine entity.
func (_m *CatalogMachine) QueryManufacturer() *ManufacturerQuery {
	return NewCatalogMachineClient(_m.config).QueryManufacturer(_m)
}

// Update returns a builder for updating this CatalogMachine.
// Note that you need to call CatalogMachine.Unwrap() before calling this method if this CatalogMachine
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CatalogMachine) Update() *CatalogMachineUpdateOne {
	return NewCatalogMachineClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CatalogMachine entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CatalogMachine) Unwrap() *CatalogMachine {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CatalogMachine is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CatalogMachine) String() string {
	var builder strings.Builder
	builder.WriteString("CatalogMachine(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("manufacturer_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ManufacturerID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.MachineType; v != nil {
		builder.WriteString("machine_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("spec_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.SpecTokens))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CatalogMachines is a parsable slice of CatalogMachine.
type CatalogMachines []*CatalogMachine
