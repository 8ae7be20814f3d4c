package entity

import (
	"time"

	"github.com/google/uuid"
)

// Manufacturer represents a manufacturer site whose URLs are being discovered.
type Manufacturer struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Website   *string   `json:"website,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
