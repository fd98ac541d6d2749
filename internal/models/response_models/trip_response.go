package response_models

// TripSummary is the listing row for a saved trip.
type TripSummary struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Destination string  `json:"destination"`
	TripType    string  `json:"trip_type"`
	Duration    int     `json:"duration"`
	TotalCost   float64 `json:"total_cost"`
	Source      string  `json:"source"`
	CreatedAt   string  `json:"created_at"`
	ShareToken  string  `json:"share_token,omitempty"`
}

// TripDetail returns the stored document plus the originating request,
// exactly as they were saved.
type TripDetail struct {
	ID        string      `json:"id"`
	Itinerary *Itinerary  `json:"itinerary"`
	FormData  interface{} `json:"formData"`
	Source    string      `json:"source"`
	CreatedAt string      `json:"created_at"`
}

// TravelerStats aggregates a user's saved trips for the profile view.
type TravelerStats struct {
	TotalTrips           int     `json:"total_trips"`
	CountriesVisited     int     `json:"countries_visited"`
	TotalBudgetPlanned   float64 `json:"total_budget_planned"`
	MostFrequentTripType string  `json:"most_frequent_trip_type"`
}
