package services

import (
	"fmt"
	"strings"

	"wanderplan/internal/models/request_models"
)

// BuildItineraryPrompt renders a trip request into the instruction block sent
// to the generative model. Pure function of the request: same input, same
// prompt. The JSON template at the end is the contract the normalizer parses
// against, with totalCost pre-filled so the model stays anchored to the
// user's stated budget.
func BuildItineraryPrompt(req *request_models.TripRequest) string {
	var b strings.Builder

	b.WriteString("You are an expert travel planner creating personalized, detailed itineraries. ")
	b.WriteString("Create a comprehensive travel plan based on the following preferences:\n\n")

	b.WriteString("Trip details:\n")
	fmt.Fprintf(&b, "- Destination: %s\n", req.Destination)
	fmt.Fprintf(&b, "- Duration: %d days\n", req.Duration)
	fmt.Fprintf(&b, "- Budget: $%.0f USD total\n", req.Budget)
	fmt.Fprintf(&b, "- Trip Type: %s\n", req.TripType)
	fmt.Fprintf(&b, "- Season: %s\n", req.Season)
	fmt.Fprintf(&b, "- Group Size: %s\n", req.GroupSize)
	fmt.Fprintf(&b, "- Travel Pace: %s\n", req.Pace)
	fmt.Fprintf(&b, "- Accommodation Preference: %s\n", req.Accommodation)
	fmt.Fprintf(&b, "- Transportation Preference: %s\n", req.Transportation)
	fmt.Fprintf(&b, "- Interests: %s\n", strings.Join(req.Interests, ", "))

	b.WriteString("\nInstructions:\n")
	b.WriteString("1. Provide a catchy trip title and a 2-3 sentence summary.\n")
	fmt.Fprintf(&b, "2. For each of the %d days provide morning (9 AM - 12 PM), afternoon (1 PM - 5 PM) and evening (7 PM - 11 PM) activities, each with a specific location, estimated cost and description, plus 3 practical daily tips.\n", req.Duration)
	b.WriteString("3. Keep cost estimates realistic; total daily costs must fit the daily budget.\n")
	b.WriteString("4. Recommend 3-4 highly rated local restaurants with cuisine type, price range and specialty.\n")
	b.WriteString("5. Suggest 2-3 stays matching the accommodation preference with nightly rates and amenities.\n")
	b.WriteString("6. Finish with 6-8 general tips: cultural notes, practical advice, insider recommendations.\n")

	b.WriteString("\nReturn ONLY a valid JSON object with this exact structure:\n")
	fmt.Fprintf(&b, `{
  "title": "Trip title here",
  "summary": "Trip summary here",
  "totalCost": %.0f,
  "dailyBudget": calculated_daily_budget,
  "days": [
    {
      "day": 1,
      "date": "formatted_date",
      "morning": {
        "time": "9:00 AM - 12:00 PM",
        "activity": "activity_name",
        "location": "specific_location",
        "cost": estimated_cost,
        "description": "detailed_description"
      },
      "afternoon": {
        "time": "1:00 PM - 5:00 PM",
        "activity": "activity_name",
        "location": "specific_location",
        "cost": estimated_cost,
        "description": "detailed_description"
      },
      "evening": {
        "time": "7:00 PM - 11:00 PM",
        "activity": "activity_name",
        "location": "specific_location",
        "cost": estimated_cost,
        "description": "detailed_description"
      },
      "tips": ["tip1", "tip2", "tip3"]
    }
  ],
  "restaurants": [
    {
      "name": "restaurant_name",
      "type": "cuisine_type",
      "priceRange": "$$ or $$$",
      "rating": 4.5,
      "speciality": "signature_dish"
    }
  ],
  "accommodations": [
    {
      "name": "hotel_name",
      "type": "hotel_type",
      "pricePerNight": nightly_rate,
      "rating": 4.5,
      "amenities": ["amenity1", "amenity2", "amenity3"]
    }
  ],
  "tips": ["tip1", "tip2", "tip3", "tip4", "tip5", "tip6"]
}`, req.Budget)
	b.WriteString("\n\nNo comments, no markdown, JSON only.\n")

	return b.String()
}
