package entity

import "github.com/google/uuid"

// Fingerprint is the comparison key derived from scraped fields, used to
// query the catalog index for similar existing machines.
type Fingerprint struct {
	ManufacturerID uuid.UUID
	Name           string
	MachineType    string
	SpecTokens     []string
}
