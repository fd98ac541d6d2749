package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"wanderplan/internal/models/request_models"
	"wanderplan/internal/models/response_models"
	"wanderplan/pkg/utils"
)

type PlannerServiceInterface interface {
	GenerateItinerary(ctx context.Context, req *request_models.TripRequest) (*response_models.GenerationResult, error)
}

type PlannerService struct {
	client utils.GenerationClientInterface
	now    func() time.Time
}

func NewPlannerService(client utils.GenerationClientInterface) PlannerServiceInterface {
	return &PlannerService{
		client: client,
		now:    time.Now,
	}
}

// GenerateItinerary runs the full pipeline: compile prompt, call the model,
// normalize its output, derive dates. A transport or parse failure switches
// to the synthetic fallback itinerary; neither error ever escapes here. The
// only error a caller can see is a trip request that failed validation.
func (p *PlannerService) GenerateItinerary(ctx context.Context, req *request_models.TripRequest) (*response_models.GenerationResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start := p.now()

	prompt := BuildItineraryPrompt(req)

	raw, err := p.client.GenerateItinerary(ctx, prompt)
	if err != nil {
		log.Printf("Generation transport failure, using fallback: %v", err)
		return p.fallbackResult(req, start, err), nil
	}

	doc, err := parseItineraryResponse(raw)
	if err != nil {
		log.Printf("Generation output unusable, using fallback: %v", err)
		return p.fallbackResult(req, start, err), nil
	}

	applyDayDates(doc, start)

	return &response_models.GenerationResult{
		Itinerary: doc,
		Source:    response_models.SourceModel,
	}, nil
}

func (p *PlannerService) fallbackResult(req *request_models.TripRequest, start time.Time, cause error) *response_models.GenerationResult {
	return &response_models.GenerationResult{
		Itinerary: BuildFallbackItinerary(req, start),
		Source:    response_models.SourceFallback,
		Reason:    cause.Error(),
	}
}

var requiredItineraryFields = []string{
	"title", "summary", "totalCost", "days", "restaurants", "accommodations", "tips",
}

// parseItineraryResponse turns raw model text into a candidate itinerary.
// It strips a wrapping code fence, parses, and checks that every required
// top-level field is present with the right shape. It does not judge field
// values; a negative cost passes, a days array of strings does not.
func parseItineraryResponse(raw string) (*response_models.Itinerary, error) {
	clean := utils.StripCodeFence(raw)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(clean), &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrModelParse, err)
	}

	for _, name := range requiredItineraryFields {
		if _, ok := fields[name]; !ok {
			return nil, fmt.Errorf("%w: missing field %q", utils.ErrModelParse, name)
		}
	}

	var doc response_models.Itinerary
	if err := json.Unmarshal([]byte(clean), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrModelParse, err)
	}

	if len(doc.Days) == 0 {
		return nil, fmt.Errorf("%w: empty days array", utils.ErrModelParse)
	}

	return &doc, nil
}

// applyDayDates overwrites every day's date with start + position. The model
// cannot know the real current date, so whatever it wrote is discarded. Day
// order and day numbers are left exactly as parsed.
func applyDayDates(doc *response_models.Itinerary, start time.Time) {
	for i := range doc.Days {
		doc.Days[i].Date = utils.FormatLongDate(utils.DayDate(start, i))
	}
}
