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
	"github.com/machinehub/discovery-pipeline/gen/ent/discoveredurl"
	"github.com/machinehub/discovery-pipeline/gen/ent/manufacturer"
)

// DiscoveredURL is the model entity for the DiscoveredURL schema.
type DiscoveredURL struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ManufacturerID holds the value of the "manufacturer_id" field.
	ManufacturerID uuid.UUID `json:"manufacturer_id,omitempty"`
	// URL holds the value of the "url" field.
	URL string `json:"url,omitempty"`
	// Category holds the value of the "category" field.
	Category *string `json:"category,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// DiscoveredAt holds the value of the "discovered_at" field.
	DiscoveredAt time.Time `json:"discovered_at,omitempty"`
	// ScrapedAt holds the value of the "scraped_at" field.
	ScrapedAt *time.Time `json:"scraped_at,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// ScrapedFields holds the value of the "scraped_fields" field.
	ScrapedFields map[string]interface{} `json:"scraped_fields,omitempty"`
	// DuplicateStatus holds the value of the "duplicate_status" field.
	DuplicateStatus string `json:"duplicate_status,omitempty"`
	// ExistingMachineID holds the value of the "existing_machine_id" field.
	ExistingMachineID *uuid.UUID `json:"existing_machine_id,omitempty"`
	// SimilarityScore holds the value of the "similarity_score" field.
	SimilarityScore *float64 `json:"similarity_score,omitempty"`
	// DuplicateReason holds the value of the "duplicate_reason" field.
	DuplicateReason *string `json:"duplicate_reason,omitempty"`
	// CheckedAt holds the value of the "checked_at" field.
	CheckedAt *time.Time `json:"checked_at,omitempty"`
	// CheckStartedAt holds the value of the "check_started_at" field.
	CheckStartedAt *time.Time `json:"check_started_at,omitempty"`
	// MlClassification holds the value of the "ml_classification" field.
	MlClassification *string `json:"ml_classification,omitempty"`
	// MlConfidence holds the value of the "ml_confidence" field.
	MlConfidence *float64 `json:"ml_confidence,omitempty"`
	// MlReason holds the value of the "ml_reason" field.
	MlReason *string `json:"ml_reason,omitempty"`
	// MachineType holds the value of the "machine_type" field.
	MachineType *string `json:"machine_type,omitempty"`
	// ShouldAutoSkip holds the value of the "should_auto_skip" field.
	ShouldAutoSkip bool `json:"should_auto_skip,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DiscoveredURLQuery when eager-loading is set.
	Edges        DiscoveredURLEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DiscoveredURLEdges holds the relations/edges for other nodes in the graph.
type DiscoveredURLEdges struct {
	// Manufacturer holds the value of the manufacturer edge.
	Manufacturer *Manufacturer `json:"manufacturer,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ManufacturerOrErr returns the Manufacturer value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DiscoveredURLEdges) ManufacturerOrErr() (*Manufacturer, error) {
	if e.Manufacturer != nil {
		return e.Manufacturer, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: manufacturer.Label}
	}
	return nil, &NotLoadedError{edge: "manufacturer"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DiscoveredURL) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case discoveredurl.FieldExistingMachineID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case discoveredurl.FieldScrapedFields:
			values[i] = new([]byte)
		case discoveredurl.FieldShouldAutoSkip:
			values[i] = new(sql.NullBool)
		case discoveredurl.FieldSimilarityScore, discoveredurl.FieldMlConfidence:
			values[i] = new(sql.NullFloat64)
		case discoveredurl.FieldURL, discoveredurl.FieldCategory, discoveredurl.FieldStatus, discoveredurl.FieldErrorMessage, discoveredurl.FieldDuplicateStatus, discoveredurl.FieldDuplicateReason, discoveredurl.FieldMlClassification, discoveredurl.FieldMlReason, discoveredurl.FieldMachineType:
			values[i] = new(sql.NullString)
		case discoveredurl.FieldDiscoveredAt, discoveredurl.FieldScrapedAt, discoveredurl.FieldCheckedAt, discoveredurl.FieldCheckStartedAt, discoveredurl.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case discoveredurl.FieldID, discoveredurl.FieldManufacturerID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DiscoveredURL fields.
func (_m *DiscoveredURL) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case discoveredurl.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case discoveredurl.FieldManufacturerID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field manufacturer_id", values[i])
			} else if value != nil {
				_m.ManufacturerID = *value
			}
		case discoveredurl.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = value.String
			}
		case discoveredurl.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = new(string)
				*_m.Category = value.String
			}
		case discoveredurl.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case discoveredurl.FieldDiscoveredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field discovered_at", values[i])
			} else if value.Valid {
				_m.DiscoveredAt = value.Time
			}
		case discoveredurl.FieldScrapedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field scraped_at", values[i])
			} else if value.Valid {
				_m.ScrapedAt = new(time.Time)
				*_m.ScrapedAt = value.Time
			}
		case discoveredurl.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case discoveredurl.FieldScrapedFields:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field scraped_fields", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ScrapedFields); err != nil {
					return fmt.Errorf("unmarshal field scraped_fields: %w", err)
				}
			}
		case discoveredurl.FieldDuplicateStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field duplicate_status", values[i])
			} else if value.Valid {
				_m.DuplicateStatus = value.String
			}
		case discoveredurl.FieldExistingMachineID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field existing_machine_id", values[i])
			} else if value.Valid {
				_m.ExistingMachineID = new(uuid.UUID)
				*_m.ExistingMachineID = *value.S.(*uuid.UUID)
			}
		case discoveredurl.FieldSimilarityScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field similarity_score", values[i])
			} else if value.Valid {
				_m.SimilarityScore = new(float64)
				*_m.SimilarityScore = value.Float64
			}
		case discoveredurl.FieldDuplicateReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field duplicate_reason", values[i])
			} else if value.Valid {
				_m.DuplicateReason = new(string)
				*_m.DuplicateReason = value.String
			}
		case discoveredurl.FieldCheckedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field checked_at", values[i])
			} else if value.Valid {
				_m.CheckedAt = new(time.Time)
				*_m.CheckedAt = value.Time
			}
		case discoveredurl.FieldCheckStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field check_started_at", values[i])
			} else if value.Valid {
				_m.CheckStartedAt = new(time.Time)
				*_m.CheckStartedAt = value.Time
			}
		case discoveredurl.FieldMlClassification:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ml_classification", values[i])
			} else if value.Valid {
				_m.MlClassification = new(string)
				*_m.MlClassification = value.String
			}
		case discoveredurl.FieldMlConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ml_confidence", values[i])
			} else if value.Valid {
				_m.MlConfidence = new(float64)
				*_m.MlConfidence = value.Float64
			}
		case discoveredurl.FieldMlReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ml_reason", values[i])
			} else if value.Valid {
				_m.MlReason = new(string)
				*_m.MlReason = value.String
			}
		case discoveredurl.FieldMachineType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field machine_type", values[i])
			} else if value.Valid {
				_m.MachineType = new(string)
				*_m.MachineType = value.String
			}
		case discoveredurl.FieldShouldAutoSkip:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field should_auto_skip", values[i])
			} else if value.Valid {
				_m.ShouldAutoSkip = value.Bool
			}
		case discoveredurl.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the DiscoveredURL.
// This includes values selected through modifiers, order, etc.
func (_m *DiscoveredURL) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryManufacturer queries the "manufacturer" edge of the DiscoveredURL entity.
func (_m *DiscoveredURL) QueryManufacturer() *ManufacturerQuery {
	return NewDiscoveredURLClient(_m.config).QueryManufacturer(_m)
}

// Update returns a builder for updating this DiscoveredURL.
// Note that you need to call DiscoveredURL.Unwrap() before calling this method if this DiscoveredURL
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DiscoveredURL) Update() *DiscoveredURLUpdateOne {
	return NewDiscoveredURLClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DiscoveredURL entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DiscoveredURL) Unwrap() *DiscoveredURL {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DiscoveredURL is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DiscoveredURL) String() string {
	var builder strings.Builder
	builder.WriteString("DiscoveredURL(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("manufacturer_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ManufacturerID))
	builder.WriteString(", ")
	builder.WriteString("url=")
	builder.WriteString(_m.URL)
	builder.WriteString(", ")
	if v := _m.Category; v != nil {
		builder.WriteString("category=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("discovered_at=")
	builder.WriteString(_m.DiscoveredAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ScrapedAt; v != nil {
		builder.WriteString("scraped_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("scraped_fields=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScrapedFields))
	builder.WriteString(", ")
	builder.WriteString("duplicate_status=")
	builder.WriteString(_m.DuplicateStatus)
	builder.WriteString(", ")
	if v := _m.ExistingMachineID; v != nil {
		builder.WriteString("existing_machine_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.SimilarityScore; v != nil {
		builder.WriteString("similarity_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.DuplicateReason; v != nil {
		builder.WriteString("duplicate_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CheckedAt; v != nil {
		builder.WriteString("checked_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CheckStartedAt; v != nil {
		builder.WriteString("check_started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.MlClassification; v != nil {
		builder.WriteString("ml_classification=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.MlConfidence; v != nil {
		builder.WriteString("ml_confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.MlReason; v != nil {
		builder.WriteString("ml_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.MachineType; v != nil {
		builder.WriteString("machine_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("should_auto_skip=")
	builder.WriteString(fmt.Sprintf("%v", _m.ShouldAutoSkip))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DiscoveredURLs is a parsable slice of DiscoveredURL.
type DiscoveredURLs []*DiscoveredURL
