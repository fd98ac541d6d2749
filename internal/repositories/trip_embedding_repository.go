package repositories

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"wanderplan/internal/models/db_models"
)

type TripEmbeddingRepository interface {
	Insert(ctx context.Context, embedding *db_models.TripEmbedding) error
	FindSimilar(ctx context.Context, vector pgvector.Vector, excludeTripId string, limit int) ([]db_models.TripEmbedding, error)
	DeleteByTripId(ctx context.Context, tripId string) error
}

type tripEmbeddingRepository struct {
	db *gorm.DB
}

func NewTripEmbeddingRepository(db *gorm.DB) TripEmbeddingRepository {
	return &tripEmbeddingRepository{db: db}
}

func (r *tripEmbeddingRepository) Insert(ctx context.Context, embedding *db_models.TripEmbedding) error {
	return r.db.WithContext(ctx).Create(embedding).Error
}

// FindSimilar ranks stored trips by cosine distance to the query vector.
// Requires the pgvector extension; rows below 70% similarity are dropped.
func (r *tripEmbeddingRepository) FindSimilar(ctx context.Context, vector pgvector.Vector, excludeTripId string, limit int) ([]db_models.TripEmbedding, error) {
	var results []db_models.TripEmbedding

	query := `
        SELECT * FROM trip_embeddings
        WHERE trip_id <> $2
          AND (1 - (embedding <=> $1)) > 0.7
        ORDER BY embedding <=> $1
        LIMIT $3
    `

	err := r.db.WithContext(ctx).Raw(query, vector.String(), excludeTripId, limit).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *tripEmbeddingRepository) DeleteByTripId(ctx context.Context, tripId string) error {
	return r.db.WithContext(ctx).Delete(&db_models.TripEmbedding{}, "trip_id = ?", tripId).Error
}
