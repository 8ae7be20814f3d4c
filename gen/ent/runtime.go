// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/machinehub/discovery-pipeline/db/ent/schema"
	"github.com/machinehub/discovery-pipeline/gen/ent/catalogmachine"
	"github.com/machinehub/discovery-pipeline/gen/ent/discoveredurl"
	"github.com/machinehub/discovery-pipeline/gen/ent/manufacturer"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	catalogmachineFields := schema.CatalogMachine{}.Fields()
	_ = catalogmachineFields
	// catalogmachineDescName is the schema descriptor for name field.
	catalogmachineDescName := catalogmachineFields[2].Descriptor()
	// catalogmachine.NameValidator is a validator for the "name" field. It is called by the builders before save.
	catalogmachine.NameValidator = catalogmachineDescName.Validators[0].(func(string) error)
	// catalogmachineDescCreatedAt is the schema descriptor for created_at field.
	catalogmachineDescCreatedAt := catalogmachineFields[5].Descriptor()
	// catalogmachine.DefaultCreatedAt holds the default value on creation for the created_at field.
	catalogmachine.DefaultCreatedAt = catalogmachineDescCreatedAt.Default.(func() time.Time)
	// catalogmachineDescUpdatedAt is the schema descriptor for updated_at field.
	catalogmachineDescUpdatedAt := catalogmachineFields[6].Descriptor()
	// catalogmachine.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	catalogmachine.DefaultUpdatedAt = catalogmachineDescUpdatedAt.Default.(func() time.Time)
	// catalogmachine.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	catalogmachine.UpdateDefaultUpdatedAt = catalogmachineDescUpdatedAt.UpdateDefault.(func() time.Time)
	// catalogmachineDescID is the schema descriptor for id field.
	catalogmachineDescID := catalogmachineFields[0].Descriptor()
	// catalogmachine.DefaultID holds the default value on creation for the id field.
	catalogmachine.DefaultID = catalogmachineDescID.Default.(func() uuid.UUID)
	discoveredurlFields := schema.DiscoveredURL{}.Fields()
	_ = discoveredurlFields
	// discoveredurlDescURL is the schema descriptor for url field.
	discoveredurlDescURL := discoveredurlFields[2].Descriptor()
	// discoveredurl.URLValidator is a validator for the "url" field. It is called by the builders before save.
	discoveredurl.URLValidator = discoveredurlDescURL.Validators[0].(func(string) error)
	// discoveredurlDescStatus is the schema descriptor for status field.
	discoveredurlDescStatus := discoveredurlFields[4].Descriptor()
	// discoveredurl.DefaultStatus holds the default value on creation for the status field.
	discoveredurl.DefaultStatus = discoveredurlDescStatus.Default.(string)
	// discoveredurl.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	discoveredurl.StatusValidator = discoveredurlDescStatus.Validators[0].(func(string) error)
	// discoveredurlDescDiscoveredAt is the schema descriptor for discovered_at field.
	discoveredurlDescDiscoveredAt := discoveredurlFields[5].Descriptor()
	// discoveredurl.DefaultDiscoveredAt holds the default value on creation for the discovered_at field.
	discoveredurl.DefaultDiscoveredAt = discoveredurlDescDiscoveredAt.Default.(func() time.Time)
	// discoveredurlDescDuplicateStatus is the schema descriptor for duplicate_status field.
	discoveredurlDescDuplicateStatus := discoveredurlFields[9].Descriptor()
	// discoveredurl.DefaultDuplicateStatus holds the default value on creation for the duplicate_status field.
	discoveredurl.DefaultDuplicateStatus = discoveredurlDescDuplicateStatus.Default.(string)
	// discoveredurl.DuplicateStatusValidator is a validator for the "duplicate_status" field. It is called by the builders before save.
	discoveredurl.DuplicateStatusValidator = discoveredurlDescDuplicateStatus.Validators[0].(func(string) error)
	// discoveredurlDescMlClassification is the schema descriptor for ml_classification field.
	discoveredurlDescMlClassification := discoveredurlFields[15].Descriptor()
	// discoveredurl.MlClassificationValidator is a validator for the "ml_classification" field. It is called by the builders before save.
	discoveredurl.MlClassificationValidator = discoveredurlDescMlClassification.Validators[0].(func(string) error)
	// discoveredurlDescShouldAutoSkip is the schema descriptor for should_auto_skip field.
	discoveredurlDescShouldAutoSkip := discoveredurlFields[19].Descriptor()
	// discoveredurl.DefaultShouldAutoSkip holds the default value on creation for the should_auto_skip field.
	discoveredurl.DefaultShouldAutoSkip = discoveredurlDescShouldAutoSkip.Default.(bool)
	// discoveredurlDescUpdatedAt is the schema descriptor for updated_at field.
	discoveredurlDescUpdatedAt := discoveredurlFields[20].Descriptor()
	// discoveredurl.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	discoveredurl.DefaultUpdatedAt = discoveredurlDescUpdatedAt.Default.(func() time.Time)
	// discoveredurl.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	discoveredurl.UpdateDefaultUpdatedAt = discoveredurlDescUpdatedAt.UpdateDefault.(func() time.Time)
	// discoveredurlDescID is the schema descriptor for id field.
	discoveredurlDescID := discoveredurlFields[0].Descriptor()
	// discoveredurl.DefaultID holds the default value on creation for the id field.
	discoveredurl.DefaultID = discoveredurlDescID.Default.(func() uuid.UUID)
	manufacturerFields := schema.Manufacturer{}.Fields()
	_ = manufacturerFields
	// manufacturerDescName is the schema descriptor for name field.
	manufacturerDescName := manufacturerFields[1].Descriptor()
	// manufacturer.NameValidator is a validator for the "name" field. It is called by the builders before save.
	manufacturer.NameValidator = manufacturerDescName.Validators[0].(func(string) error)
	// manufacturerDescCreatedAt is the schema descriptor for created_at field.
	manufacturerDescCreatedAt := manufacturerFields[3].Descriptor()
	// manufacturer.DefaultCreatedAt holds the default value on creation for the created_at field.
	manufacturer.DefaultCreatedAt = manufacturerDescCreatedAt.Default.(func() time.Time)
	// manufacturerDescID is the schema descriptor for id field.
	manufacturerDescID := manufacturerFields[0].Descriptor()
	// manufacturer.DefaultID holds the default value on creation for the id field.
	manufacturer.DefaultID = manufacturerDescID.Default.(func() uuid.UUID)
}
