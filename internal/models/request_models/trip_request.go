package request_models

import (
	"strings"

	"wanderplan/pkg/utils"
)

// TripRequest carries the traveler's preferences for one generation run.
// It is validated once at the boundary and never mutated afterwards.
type TripRequest struct {
	Destination    string   `json:"destination"`
	Duration       int      `json:"duration"`
	Budget         float64  `json:"budget"`
	TripType       string   `json:"tripType"`
	Season         string   `json:"season"`
	GroupSize      string   `json:"groupSize"`
	Interests      []string `json:"interests"`
	Pace           string   `json:"pace"`
	Accommodation  string   `json:"accommodation"`
	Transportation string   `json:"transportation"`
}

var knownTripTypes = map[string]bool{
	"beach": true, "adventure": true, "culture": true, "city": true,
	"nature": true, "luxury": true, "backpacking": true,
}

var knownSeasons = map[string]bool{
	"spring": true, "summer": true, "fall": true, "winter": true,
}

// Validate enforces the invariants required before a generation run:
// non-empty destination, duration >= 1, budget > 0 and a chosen trip type
// and season. Unknown tripType values are allowed through on purpose; the
// fallback generator treats them as the generic branch.
func (r *TripRequest) Validate() error {
	if strings.TrimSpace(r.Destination) == "" {
		return utils.ErrInvalidTripRequest
	}
	if r.Duration < 1 {
		return utils.ErrInvalidTripRequest
	}
	if r.Budget <= 0 {
		return utils.ErrInvalidTripRequest
	}
	if strings.TrimSpace(r.TripType) == "" || strings.TrimSpace(r.Season) == "" {
		return utils.ErrInvalidTripRequest
	}
	return nil
}

// IsKnownTripType reports whether the value is one of the planner form's choices.
func IsKnownTripType(t string) bool { return knownTripTypes[strings.ToLower(t)] }

// IsKnownSeason reports whether the value is one of the planner form's choices.
func IsKnownSeason(s string) bool { return knownSeasons[strings.ToLower(s)] }
