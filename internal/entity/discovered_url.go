package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/machinehub/discovery-pipeline/constants"
)

// DiscoveredURL represents a discovered product URL for data transfer between layers.
type DiscoveredURL struct {
	ID             uuid.UUID `json:"id"`
	ManufacturerID uuid.UUID `json:"manufacturer_id"`
	URL            string    `json:"url"`
	Category       *string   `json:"category,omitempty"`

	Status        constants.ScrapeStatus `json:"status"`
	DiscoveredAt  time.Time              `json:"discovered_at"`
	ScrapedAt     *time.Time             `json:"scraped_at,omitempty"`
	ErrorMessage  *string                `json:"error_message,omitempty"`
	ScrapedFields map[string]any         `json:"scraped_fields,omitempty"`

	DuplicateStatus   constants.DuplicateStatus `json:"duplicate_status"`
	ExistingMachineID *uuid.UUID                `json:"existing_machine_id,omitempty"`
	SimilarityScore   *float64                  `json:"similarity_score,omitempty"`
	DuplicateReason   *string                   `json:"duplicate_reason,omitempty"`
	CheckedAt         *time.Time                `json:"checked_at,omitempty"`
	CheckStartedAt    *time.Time                `json:"check_started_at,omitempty"`

	MLClassification *constants.Classification `json:"ml_classification,omitempty"`
	MLConfidence     *float64                  `json:"ml_confidence,omitempty"`
	MLReason         *string                   `json:"ml_reason,omitempty"`
	MachineType      *string                   `json:"machine_type,omitempty"`
	ShouldAutoSkip   bool                      `json:"should_auto_skip"`

	UpdatedAt time.Time `json:"updated_at"`
}

// ManuallyResolved reports whether a human decided this URL's duplicate status.
// Automatic check results must not overwrite a manual decision.
func (u *DiscoveredURL) ManuallyResolved() bool {
	return u.DuplicateReason != nil && constants.ManualReason(*u.DuplicateReason)
}
