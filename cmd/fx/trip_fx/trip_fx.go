package trip_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"wanderplan/internal/repositories"
	"wanderplan/internal/services"
)

var Module = fx.Provide(
	provideTripService, provideTripRepo, provideEmbeddingRepo)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideEmbeddingRepo(db *gorm.DB) repositories.TripEmbeddingRepository {
	return repositories.NewTripEmbeddingRepository(db)
}

func provideTripService(tripRepo repositories.TripRepository, embeddingRepo repositories.TripEmbeddingRepository) services.TripServiceInterface {
	return services.NewTripService(tripRepo, embeddingRepo)
}
