package response_models

// ItineraryActivity is one morning/afternoon/evening slot of a day.
type ItineraryActivity struct {
	Time        string  `json:"time"`
	Activity    string  `json:"activity"`
	Location    string  `json:"location"`
	Cost        float64 `json:"cost"`
	Description string  `json:"description"`
}

// ItineraryDay holds the three activity slots plus day-level tips. Date is
// always derived server-side; anything the model put there is overwritten.
type ItineraryDay struct {
	Day       int               `json:"day"`
	Date      string            `json:"date"`
	Morning   ItineraryActivity `json:"morning"`
	Afternoon ItineraryActivity `json:"afternoon"`
	Evening   ItineraryActivity `json:"evening"`
	Tips      []string          `json:"tips"`
}

type Restaurant struct {
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	PriceRange string  `json:"priceRange"`
	Rating     float64 `json:"rating"`
	Speciality string  `json:"speciality"`
}

type Lodging struct {
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	PricePerNight float64  `json:"pricePerNight"`
	Rating        float64  `json:"rating"`
	Amenities     []string `json:"amenities"`
}

// Itinerary is the complete document handed to display, persistence and
// export. The JSON field names are the stored document shape, so saved rows
// round-trip losslessly.
type Itinerary struct {
	Title          string         `json:"title"`
	Summary        string         `json:"summary"`
	TotalCost      float64        `json:"totalCost"`
	DailyBudget    float64        `json:"dailyBudget"`
	Days           []ItineraryDay `json:"days"`
	Restaurants    []Restaurant   `json:"restaurants"`
	Accommodations []Lodging      `json:"accommodations"`
	Tips           []string       `json:"tips"`
}

// Provenance values for a generation result.
const (
	SourceModel    = "model"
	SourceFallback = "fallback"
)

// GenerationResult pairs the itinerary with where it came from. Reason is
// only set on the fallback branch and records why the model path was
// abandoned; callers that only care about the document can ignore both.
type GenerationResult struct {
	Itinerary *Itinerary `json:"itinerary"`
	Source    string     `json:"source"`
	Reason    string     `json:"reason,omitempty"`
}
