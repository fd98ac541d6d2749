package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"wanderplan/internal/models/request_models"
	"wanderplan/internal/models/response_models"
	"wanderplan/pkg/utils"
)

type stubGenerationClient struct {
	response string
	err      error
	prompts  []string
}

func (s *stubGenerationClient) GenerateItinerary(ctx context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubGenerationClient) Close() error { return nil }

func testPlanner(client *stubGenerationClient, now time.Time) *PlannerService {
	return &PlannerService{
		client: client,
		now:    func() time.Time { return now },
	}
}

func plannerRequest() *request_models.TripRequest {
	return &request_models.TripRequest{
		Destination: "Barcelona",
		Duration:    2,
		Budget:      800,
		TripType:    "city",
		Season:      "fall",
		Interests:   []string{"architecture"},
		Pace:        "packed",
	}
}

const modelResponse = `{
  "title": "Barcelona Highlights",
  "summary": "Two days of Gaudi and tapas.",
  "totalCost": 800,
  "dailyBudget": 400,
  "days": [
    {
      "day": 1,
      "date": "whatever the model guessed",
      "morning": {"time": "9:00 AM - 12:00 PM", "activity": "Sagrada Familia", "location": "Eixample", "cost": 30, "description": "Tour the basilica."},
      "afternoon": {"time": "1:00 PM - 5:00 PM", "activity": "Park Guell", "location": "Gracia", "cost": 15, "description": "Mosaic terraces."},
      "evening": {"time": "7:00 PM - 11:00 PM", "activity": "Tapas crawl", "location": "El Born", "cost": 60, "description": "Small plates."},
      "tips": ["Book ahead", "Wear sunscreen", "Carry water"]
    },
    {
      "day": 2,
      "date": "also wrong",
      "morning": {"time": "9:00 AM - 12:00 PM", "activity": "Gothic Quarter walk", "location": "Barri Gotic", "cost": 0, "description": "Medieval lanes."},
      "afternoon": {"time": "1:00 PM - 5:00 PM", "activity": "Picasso Museum", "location": "El Born", "cost": 14, "description": "Early works."},
      "evening": {"time": "7:00 PM - 11:00 PM", "activity": "Beachfront dinner", "location": "Barceloneta", "cost": 55, "description": "Seafood paella."},
      "tips": ["Watch for pickpockets", "Reserve dinner", "Take the metro"]
    }
  ],
  "restaurants": [{"name": "Can Paixano", "type": "Tapas", "priceRange": "$", "rating": 4.6, "speciality": "Cava and sausage"}],
  "accommodations": [{"name": "Hotel Neri", "type": "Boutique", "pricePerNight": 180, "rating": 4.7, "amenities": ["WiFi", "Rooftop"]}],
  "tips": ["Learn basic Catalan greetings", "Shops close mid-afternoon"]
}`

func TestGenerateItineraryModelPath(t *testing.T) {
	client := &stubGenerationClient{response: modelResponse}
	now := time.Date(2025, time.September, 1, 8, 0, 0, 0, time.UTC) // a Monday
	planner := testPlanner(client, now)

	result, err := planner.GenerateItinerary(context.Background(), plannerRequest())
	if err != nil {
		t.Fatalf("GenerateItinerary() error = %v", err)
	}

	if result.Source != response_models.SourceModel {
		t.Errorf("Source = %q, want %q", result.Source, response_models.SourceModel)
	}
	if result.Reason != "" {
		t.Errorf("Reason = %q, want empty on model path", result.Reason)
	}
	if result.Itinerary.Title != "Barcelona Highlights" {
		t.Errorf("Title = %q", result.Itinerary.Title)
	}

	// Dates the model invented must be replaced with real calendar dates.
	if got, want := result.Itinerary.Days[0].Date, "Monday, September 1, 2025"; got != want {
		t.Errorf("Days[0].Date = %q, want %q", got, want)
	}
	if got, want := result.Itinerary.Days[1].Date, "Tuesday, September 2, 2025"; got != want {
		t.Errorf("Days[1].Date = %q, want %q", got, want)
	}
}

func TestGenerateItineraryFencedResponse(t *testing.T) {
	client := &stubGenerationClient{response: "```json\n" + modelResponse + "\n```"}
	planner := testPlanner(client, time.Now())

	result, err := planner.GenerateItinerary(context.Background(), plannerRequest())
	if err != nil {
		t.Fatalf("GenerateItinerary() error = %v", err)
	}
	if result.Source != response_models.SourceModel {
		t.Errorf("fenced but valid response should use model path, got source %q", result.Source)
	}
}

func TestGenerateItineraryTransportFailure(t *testing.T) {
	client := &stubGenerationClient{err: utils.ErrModelTransport}
	planner := testPlanner(client, time.Date(2025, time.September, 1, 8, 0, 0, 0, time.UTC))

	result, err := planner.GenerateItinerary(context.Background(), plannerRequest())
	if err != nil {
		t.Fatalf("transport failure must not surface as error, got %v", err)
	}

	if result.Source != response_models.SourceFallback {
		t.Errorf("Source = %q, want %q", result.Source, response_models.SourceFallback)
	}
	if result.Reason == "" {
		t.Error("Reason should record why the model path was abandoned")
	}
	if len(result.Itinerary.Days) != 2 {
		t.Errorf("fallback has %d days, want 2", len(result.Itinerary.Days))
	}
	if result.Itinerary.TotalCost != 800 {
		t.Errorf("fallback TotalCost = %.0f, want the requested budget 800", result.Itinerary.TotalCost)
	}
}

func TestGenerateItineraryMalformedResponses(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"not json", "Sorry, I cannot plan that trip."},
		{"truncated json", `{"title": "Half a`},
		{"missing required field", `{"title":"x","summary":"y","totalCost":1,"days":[{"day":1}],"restaurants":[],"tips":[]}`},
		{"empty days", `{"title":"x","summary":"y","totalCost":1,"days":[],"restaurants":[],"accommodations":[],"tips":[]}`},
		{"days of wrong type", `{"title":"x","summary":"y","totalCost":1,"days":["monday"],"restaurants":[],"accommodations":[],"tips":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &stubGenerationClient{response: tt.response}
			planner := testPlanner(client, time.Now())

			result, err := planner.GenerateItinerary(context.Background(), plannerRequest())
			if err != nil {
				t.Fatalf("malformed output must not surface as error, got %v", err)
			}
			if result.Source != response_models.SourceFallback {
				t.Errorf("Source = %q, want fallback", result.Source)
			}
			if result.Itinerary == nil || len(result.Itinerary.Days) == 0 {
				t.Error("fallback itinerary missing or empty")
			}
		})
	}
}

func TestGenerateItineraryInvalidRequest(t *testing.T) {
	client := &stubGenerationClient{response: modelResponse}
	planner := testPlanner(client, time.Now())

	req := plannerRequest()
	req.Destination = ""

	_, err := planner.GenerateItinerary(context.Background(), req)
	if !errors.Is(err, utils.ErrInvalidTripRequest) {
		t.Fatalf("error = %v, want ErrInvalidTripRequest", err)
	}
	if len(client.prompts) != 0 {
		t.Error("invalid request must not reach the model")
	}
}

func TestGenerateItineraryPromptMentionsDestination(t *testing.T) {
	client := &stubGenerationClient{response: modelResponse}
	planner := testPlanner(client, time.Now())

	if _, err := planner.GenerateItinerary(context.Background(), plannerRequest()); err != nil {
		t.Fatalf("GenerateItinerary() error = %v", err)
	}
	if len(client.prompts) != 1 {
		t.Fatalf("model called %d times, want 1", len(client.prompts))
	}
	if !strings.Contains(client.prompts[0], "Barcelona") {
		t.Error("compiled prompt does not mention the destination")
	}
}

func TestParseItineraryResponseKeepsDayOrder(t *testing.T) {
	doc, err := parseItineraryResponse(modelResponse)
	if err != nil {
		t.Fatalf("parseItineraryResponse() error = %v", err)
	}
	if doc.Days[0].Day != 1 || doc.Days[1].Day != 2 {
		t.Errorf("day order changed: %d, %d", doc.Days[0].Day, doc.Days[1].Day)
	}
}
