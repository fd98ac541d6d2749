package db_models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// SavedTrip persists one generated itinerary for a user. Document and
// FormData are stored as raw JSON so the itinerary shape survives exactly as
// generated; the flat columns are denormalized copies for listing and stats
// queries.
type SavedTrip struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;index"`
	Title       string
	Destination string
	TripType    string
	Duration    int
	TotalCost   float64
	Source      string // "model" or "fallback"
	ShareToken  string `gorm:"index"`

	Document json.RawMessage `gorm:"type:jsonb"`
	FormData json.RawMessage `gorm:"type:jsonb"`
}
