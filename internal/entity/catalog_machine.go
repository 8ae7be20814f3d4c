package entity

import (
	"time"

	"github.com/google/uuid"
)

// CatalogMachine is an already-imported catalog entry, the comparison target
// for duplicate detection.
type CatalogMachine struct {
	ID             uuid.UUID `json:"id"`
	ManufacturerID uuid.UUID `json:"manufacturer_id"`
	Name           string    `json:"name"`
	MachineType    *string   `json:"machine_type,omitempty"`
	SpecTokens     []string  `json:"spec_tokens,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CandidateMatch is an ephemeral similarity-query result. Not persisted;
// recomputed on each duplicate check.
type CandidateMatch struct {
	CatalogID       uuid.UUID `json:"catalog_id"`
	Name            string    `json:"name"`
	SimilarityScore float64   `json:"similarity_score"`
	UpdatedAt       time.Time `json:"updated_at"`
}
