package services

import (
	"fmt"
	"math"
	"strings"
	"time"

	"wanderplan/internal/models/request_models"
	"wanderplan/internal/models/response_models"
	"wanderplan/pkg/utils"
)

// BuildFallbackItinerary synthesizes a complete itinerary from the trip
// request alone. It is the guaranteed branch of the planner: no external
// calls, total over every input the request validation lets through, and
// deterministic for a given request and start date.
//
// Costs are apportioned per day as 30% morning, 40% afternoon, 30% evening
// of the floored daily budget, each floored again. The three parts may sum
// to slightly less than the daily budget; the remainder is deliberate
// rounding slack, not an accounting error.
func BuildFallbackItinerary(req *request_models.TripRequest, start time.Time) *response_models.Itinerary {
	dailyBudget := math.Floor(req.Budget / float64(req.Duration))

	days := make([]response_models.ItineraryDay, 0, req.Duration)
	for i := 0; i < req.Duration; i++ {
		days = append(days, response_models.ItineraryDay{
			Day:       i + 1,
			Date:      utils.FormatLongDate(utils.DayDate(start, i)),
			Morning:   fallbackMorning(req, dailyBudget),
			Afternoon: fallbackAfternoon(req, dailyBudget),
			Evening:   fallbackEvening(dailyBudget),
			Tips: []string{
				"Book restaurant reservations in advance",
				"Carry cash for small vendors",
				"Stay hydrated and wear comfortable shoes",
			},
		})
	}

	return &response_models.Itinerary{
		Title:       fallbackTitle(req),
		Summary:     fallbackSummary(req),
		TotalCost:   req.Budget,
		DailyBudget: dailyBudget,
		Days:        days,
		Restaurants: []response_models.Restaurant{
			{Name: "Local Flavor Bistro", Type: "Traditional", PriceRange: "$$", Rating: 4.8, Speciality: "Local cuisine"},
			{Name: "Sunset Cafe", Type: "International", PriceRange: "$$$", Rating: 4.6, Speciality: "Seafood"},
		},
		Accommodations: []response_models.Lodging{
			{
				Name:          "Boutique Hotel Central",
				Type:          "Hotel",
				PricePerNight: math.Floor(dailyBudget * 0.4),
				Rating:        4.7,
				Amenities:     []string{"WiFi", "Breakfast", "Pool"},
			},
		},
		Tips: []string{
			"Download offline maps before you go",
			"Learn basic phrases in the local language",
			"Check local customs and etiquette",
			"Pack layers for changing weather",
			"Keep copies of important documents",
			"Research local transportation options",
		},
	}
}

func fallbackTitle(req *request_models.TripRequest) string {
	tripType := req.TripType
	if tripType != "" {
		tripType = strings.ToUpper(tripType[:1]) + tripType[1:]
	}
	return fmt.Sprintf("%d-Day %s Adventure in %s", req.Duration, tripType, req.Destination)
}

func fallbackSummary(req *request_models.TripRequest) string {
	return fmt.Sprintf(
		"Experience the best of %s with this carefully curated %d-day itinerary, perfectly balanced for %s travelers who love %s.",
		req.Destination, req.Duration, req.Pace, strings.Join(req.Interests, ", "))
}

func fallbackMorning(req *request_models.TripRequest, dailyBudget float64) response_models.ItineraryActivity {
	return response_models.ItineraryActivity{
		Time:        "9:00 AM - 12:00 PM",
		Activity:    fmt.Sprintf("Explore %s's historic district", req.Destination),
		Location:    "Historic Downtown",
		Cost:        math.Floor(dailyBudget * 0.3),
		Description: "Start your day discovering the rich history and architecture of the old town.",
	}
}

// fallbackAfternoon picks the trip-type-conditioned slot. Unrecognized trip
// types get the generic market branch, never an error.
func fallbackAfternoon(req *request_models.TripRequest, dailyBudget float64) response_models.ItineraryActivity {
	var activity, location string
	switch req.TripType {
	case "beach":
		activity = "Beach time and water sports"
		location = "Main Beach"
	case "culture":
		activity = "Museum and gallery hopping"
		location = "Arts District"
	default:
		activity = "Local market and food tour"
		location = "Central Market"
	}
	return response_models.ItineraryActivity{
		Time:        "1:00 PM - 5:00 PM",
		Activity:    activity,
		Location:    location,
		Cost:        math.Floor(dailyBudget * 0.4),
		Description: "Immerse yourself in the local culture and lifestyle.",
	}
}

func fallbackEvening(dailyBudget float64) response_models.ItineraryActivity {
	return response_models.ItineraryActivity{
		Time:        "7:00 PM - 11:00 PM",
		Activity:    "Dinner at local restaurant and evening stroll",
		Location:    "Restaurant District",
		Cost:        math.Floor(dailyBudget * 0.3),
		Description: "End your day with delicious local cuisine and a peaceful evening walk.",
	}
}
