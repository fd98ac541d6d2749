package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"wanderplan/internal/models/db_models"
	"wanderplan/internal/models/request_models"
	"wanderplan/internal/models/response_models"
	"wanderplan/internal/repositories"
	"wanderplan/pkg/utils"
)

const similarTripLimit = 5

type TripServiceInterface interface {
	SaveTrip(ctx context.Context, userId string, request request_models.SaveTripRequest) (string, error)
	ListTrips(ctx context.Context, userId string, page, pageSize int) ([]response_models.TripSummary, error)
	GetTrip(ctx context.Context, userId, tripId string) (*response_models.TripDetail, error)
	DeleteTrip(ctx context.Context, userId, tripId string) error
	ShareTrip(ctx context.Context, userId, tripId string) (string, error)
	ResolveSharedTrip(ctx context.Context, token string) (*response_models.TripDetail, error)
	SimilarTrips(ctx context.Context, userId, tripId string) ([]response_models.TripSummary, error)
	ExportTrip(ctx context.Context, userId, tripId string) (string, error)
	TravelerStats(ctx context.Context, userId string) (*response_models.TravelerStats, error)
}

type TripService struct {
	tripRepo      repositories.TripRepository
	embeddingRepo repositories.TripEmbeddingRepository
}

func NewTripService(
	tripRepo repositories.TripRepository,
	embeddingRepo repositories.TripEmbeddingRepository,
) TripServiceInterface {
	return &TripService{
		tripRepo:      tripRepo,
		embeddingRepo: embeddingRepo,
	}
}

// SaveTrip persists the itinerary document and its originating request as
// raw JSON, plus denormalized columns for listings. The similarity index is
// best effort; a failed embedding insert never fails the save.
func (t *TripService) SaveTrip(ctx context.Context, userId string, request request_models.SaveTripRequest) (string, error) {
	uid, err := uuid.Parse(userId)
	if err != nil {
		return "", utils.ErrInvalidInput
	}
	if request.Itinerary == nil || request.FormData == nil {
		return "", utils.ErrInvalidInput
	}

	document, err := json.Marshal(request.Itinerary)
	if err != nil {
		return "", utils.ErrInvalidInput
	}
	formData, err := json.Marshal(request.FormData)
	if err != nil {
		return "", utils.ErrInvalidInput
	}

	source := request.Source
	if source == "" {
		source = response_models.SourceModel
	}

	trip := &db_models.SavedTrip{
		UserID:      uid,
		Title:       request.Itinerary.Title,
		Destination: request.FormData.Destination,
		TripType:    request.FormData.TripType,
		Duration:    request.FormData.Duration,
		TotalCost:   request.Itinerary.TotalCost,
		Source:      source,
		Document:    document,
		FormData:    formData,
	}

	if err := t.tripRepo.Insert(ctx, trip); err != nil {
		return "", utils.ErrDatabaseError
	}

	t.indexTrip(ctx, trip, request.FormData)

	return trip.ID.String(), nil
}

func (t *TripService) indexTrip(ctx context.Context, trip *db_models.SavedTrip, form *request_models.TripRequest) {
	text := embeddingText(form)
	embedding := &db_models.TripEmbedding{
		TripID:      trip.ID.String(),
		UserID:      trip.UserID.String(),
		Destination: form.Destination,
		TripType:    form.TripType,
		Interests:   form.Interests,
		Embedding:   utils.TextToVector(text),
	}
	if err := t.embeddingRepo.Insert(ctx, embedding); err != nil {
		log.Printf("Failed to index trip %s for similarity: %v", trip.ID, err)
	}
}

func embeddingText(form *request_models.TripRequest) string {
	parts := []string{form.Destination, form.TripType, form.Season, form.Pace}
	parts = append(parts, form.Interests...)
	return strings.Join(parts, " ")
}

func (t *TripService) ListTrips(ctx context.Context, userId string, page, pageSize int) ([]response_models.TripSummary, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	trips, err := t.tripRepo.ListByUserId(ctx, page, pageSize, userId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	summaries := make([]response_models.TripSummary, 0, len(trips))
	for _, trip := range trips {
		summaries = append(summaries, tripSummary(&trip))
	}
	return summaries, nil
}

func tripSummary(trip *db_models.SavedTrip) response_models.TripSummary {
	return response_models.TripSummary{
		ID:          trip.ID.String(),
		Title:       trip.Title,
		Destination: trip.Destination,
		TripType:    trip.TripType,
		Duration:    trip.Duration,
		TotalCost:   trip.TotalCost,
		Source:      trip.Source,
		CreatedAt:   utils.FormatRFC3339(time.Unix(trip.CreatedAt, 0).UTC()),
		ShareToken:  trip.ShareToken,
	}
}

func (t *TripService) GetTrip(ctx context.Context, userId, tripId string) (*response_models.TripDetail, error) {
	trip, err := t.ownedTrip(ctx, userId, tripId)
	if err != nil {
		return nil, err
	}
	return tripDetail(trip)
}

func tripDetail(trip *db_models.SavedTrip) (*response_models.TripDetail, error) {
	var doc response_models.Itinerary
	if err := json.Unmarshal(trip.Document, &doc); err != nil {
		return nil, utils.ErrDatabaseError
	}

	var form interface{}
	if len(trip.FormData) > 0 {
		if err := json.Unmarshal(trip.FormData, &form); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	return &response_models.TripDetail{
		ID:        trip.ID.String(),
		Itinerary: &doc,
		FormData:  form,
		Source:    trip.Source,
		CreatedAt: utils.FormatRFC3339(time.Unix(trip.CreatedAt, 0).UTC()),
	}, nil
}

// ownedTrip loads a trip and checks it belongs to userId. Foreign trips are
// reported as not found rather than forbidden, so trip ids cannot be probed.
func (t *TripService) ownedTrip(ctx context.Context, userId, tripId string) (*db_models.SavedTrip, error) {
	trip, err := t.tripRepo.FindById(ctx, tripId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil || trip.UserID.String() != userId {
		return nil, utils.ErrTripNotFound
	}
	return trip, nil
}

func (t *TripService) DeleteTrip(ctx context.Context, userId, tripId string) error {
	trip, err := t.ownedTrip(ctx, userId, tripId)
	if err != nil {
		return err
	}

	if err := t.tripRepo.Delete(ctx, trip.ID.String()); err != nil {
		return utils.ErrDatabaseError
	}
	if err := t.embeddingRepo.DeleteByTripId(ctx, trip.ID.String()); err != nil {
		log.Printf("Failed to drop similarity index for trip %s: %v", trip.ID, err)
	}
	return nil
}

// ShareTrip returns the trip's share token, minting one on first call.
func (t *TripService) ShareTrip(ctx context.Context, userId, tripId string) (string, error) {
	trip, err := t.ownedTrip(ctx, userId, tripId)
	if err != nil {
		return "", err
	}

	if trip.ShareToken != "" {
		return trip.ShareToken, nil
	}

	token, err := utils.GenerateSecureToken(16)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if err := t.tripRepo.SetShareToken(ctx, trip.ID.String(), token); err != nil {
		return "", utils.ErrDatabaseError
	}
	return token, nil
}

func (t *TripService) ResolveSharedTrip(ctx context.Context, token string) (*response_models.TripDetail, error) {
	if strings.TrimSpace(token) == "" {
		return nil, utils.ErrShareTokenInvalid
	}

	trip, err := t.tripRepo.FindByShareToken(ctx, token)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrShareTokenInvalid
	}
	return tripDetail(trip)
}

// SimilarTrips suggests the user's other saved trips closest to this one in
// embedding space. Suggestions from the index that have since been deleted
// are silently skipped.
func (t *TripService) SimilarTrips(ctx context.Context, userId, tripId string) ([]response_models.TripSummary, error) {
	trip, err := t.ownedTrip(ctx, userId, tripId)
	if err != nil {
		return nil, err
	}

	var form request_models.TripRequest
	if err := json.Unmarshal(trip.FormData, &form); err != nil {
		return nil, utils.ErrDatabaseError
	}

	vector := utils.TextToVector(embeddingText(&form))
	neighbors, err := t.embeddingRepo.FindSimilar(ctx, vector, trip.ID.String(), similarTripLimit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	summaries := make([]response_models.TripSummary, 0, len(neighbors))
	for _, neighbor := range neighbors {
		if neighbor.UserID != userId {
			continue
		}
		candidate, err := t.tripRepo.FindById(ctx, neighbor.TripID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if candidate == nil {
			continue
		}
		summaries = append(summaries, tripSummary(candidate))
	}
	return summaries, nil
}

// ExportTrip renders the stored itinerary as plain text for download.
func (t *TripService) ExportTrip(ctx context.Context, userId, tripId string) (string, error) {
	trip, err := t.ownedTrip(ctx, userId, tripId)
	if err != nil {
		return "", err
	}

	var doc response_models.Itinerary
	if err := json.Unmarshal(trip.Document, &doc); err != nil {
		return "", utils.ErrDatabaseError
	}

	return RenderItineraryText(&doc), nil
}

// RenderItineraryText formats an itinerary for plain-text export.
func RenderItineraryText(doc *response_models.Itinerary) string {
	var b strings.Builder

	b.WriteString(doc.Title + "\n")
	b.WriteString(strings.Repeat("=", len(doc.Title)) + "\n\n")
	b.WriteString(doc.Summary + "\n\n")
	fmt.Fprintf(&b, "Total budget: $%.0f (daily: $%.0f)\n\n", doc.TotalCost, doc.DailyBudget)

	for _, day := range doc.Days {
		fmt.Fprintf(&b, "Day %d - %s\n", day.Day, day.Date)
		writeActivity(&b, "Morning", day.Morning)
		writeActivity(&b, "Afternoon", day.Afternoon)
		writeActivity(&b, "Evening", day.Evening)
		for _, tip := range day.Tips {
			fmt.Fprintf(&b, "  Tip: %s\n", tip)
		}
		b.WriteString("\n")
	}

	if len(doc.Restaurants) > 0 {
		b.WriteString("Where to eat\n")
		for _, r := range doc.Restaurants {
			fmt.Fprintf(&b, "  %s (%s, %s) - %s, rated %.1f\n",
				r.Name, r.Type, r.PriceRange, r.Speciality, r.Rating)
		}
		b.WriteString("\n")
	}

	if len(doc.Accommodations) > 0 {
		b.WriteString("Where to stay\n")
		for _, a := range doc.Accommodations {
			fmt.Fprintf(&b, "  %s (%s) - $%.0f/night, rated %.1f\n",
				a.Name, a.Type, a.PricePerNight, a.Rating)
			if len(a.Amenities) > 0 {
				fmt.Fprintf(&b, "    Amenities: %s\n", strings.Join(a.Amenities, ", "))
			}
		}
		b.WriteString("\n")
	}

	if len(doc.Tips) > 0 {
		b.WriteString("Good to know\n")
		for _, tip := range doc.Tips {
			fmt.Fprintf(&b, "  - %s\n", tip)
		}
	}

	return b.String()
}

func writeActivity(b *strings.Builder, slot string, activity response_models.ItineraryActivity) {
	fmt.Fprintf(b, "  %s (%s): %s at %s, $%.0f\n",
		slot, activity.Time, activity.Activity, activity.Location, activity.Cost)
}

// TravelerStats aggregates the user's saved trips: totals, distinct
// destinations and the trip type they pick most often.
func (t *TripService) TravelerStats(ctx context.Context, userId string) (*response_models.TravelerStats, error) {
	trips, err := t.tripRepo.ListAllByUserId(ctx, userId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	stats := &response_models.TravelerStats{TotalTrips: len(trips)}

	destinations := make(map[string]bool)
	typeCounts := make(map[string]int)
	for _, trip := range trips {
		destinations[strings.ToLower(trip.Destination)] = true
		typeCounts[trip.TripType]++
		stats.TotalBudgetPlanned += trip.TotalCost
	}
	stats.CountriesVisited = len(destinations)

	best := 0
	for tripType, count := range typeCounts {
		if count > best || (count == best && tripType < stats.MostFrequentTripType) {
			best = count
			stats.MostFrequentTripType = tripType
		}
	}

	return stats, nil
}
