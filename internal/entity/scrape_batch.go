package entity

import (
	"time"

	"github.com/google/uuid"
)

// ScrapeOutcome is the per-URL result of a dispatched batch. Exactly one
// outcome is produced per URL per dispatch.
type ScrapeOutcome struct {
	URLID        uuid.UUID      `json:"url_id"`
	URL          string         `json:"url"`
	Success      bool           `json:"success"`
	Fields       map[string]any `json:"fields,omitempty"`
	ErrorMessage string         `json:"error_message,omitempty"`
	FinishedAt   time.Time      `json:"finished_at"`
}

// DuplicateCheckStats summarizes a batch duplicate-detection pass.
type DuplicateCheckStats struct {
	Checked         int `json:"checked"`
	DuplicatesFound int `json:"duplicates_found"`
}

// Classification is the external classifier's verdict for one URL.
type Classification struct {
	Label       string  `json:"classification"`
	Confidence  float64 `json:"confidence"`
	Reason      string  `json:"reason,omitempty"`
	MachineType string  `json:"machine_type,omitempty"`
}
