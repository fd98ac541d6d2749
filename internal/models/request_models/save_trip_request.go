package request_models

import "wanderplan/internal/models/response_models"

// SaveTripRequest stores a generated itinerary together with the trip
// request that produced it, so listings and stats can read preferences
// without re-parsing the document.
type SaveTripRequest struct {
	Itinerary *response_models.Itinerary `json:"itinerary" binding:"required"`
	FormData  *TripRequest               `json:"formData" binding:"required"`
	Source    string                     `json:"source"` // "model" or "fallback"; empty means "model"
}
