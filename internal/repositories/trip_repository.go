package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"wanderplan/internal/models/db_models"
)

type TripRepository interface {
	Insert(ctx context.Context, trip *db_models.SavedTrip) error
	ListByUserId(ctx context.Context, page, pageSize int, userId string) ([]db_models.SavedTrip, error)
	FindById(ctx context.Context, tripId string) (*db_models.SavedTrip, error)
	FindByShareToken(ctx context.Context, token string) (*db_models.SavedTrip, error)
	ListAllByUserId(ctx context.Context, userId string) ([]db_models.SavedTrip, error)
	SetShareToken(ctx context.Context, tripId, token string) error
	Delete(ctx context.Context, tripId string) error
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) Insert(ctx context.Context, trip *db_models.SavedTrip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *tripRepository) ListByUserId(ctx context.Context, page, pageSize int, userId string) ([]db_models.SavedTrip, error) {
	var trips []db_models.SavedTrip
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

// ListAllByUserId skips pagination; used for stats aggregation.
func (r *tripRepository) ListAllByUserId(ctx context.Context, userId string) ([]db_models.SavedTrip, error) {
	var trips []db_models.SavedTrip
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *tripRepository) FindById(ctx context.Context, tripId string) (*db_models.SavedTrip, error) {
	var trip db_models.SavedTrip
	err := r.db.WithContext(ctx).First(&trip, "id = ?", tripId).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) FindByShareToken(ctx context.Context, token string) (*db_models.SavedTrip, error) {
	var trip db_models.SavedTrip
	err := r.db.WithContext(ctx).First(&trip, "share_token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) SetShareToken(ctx context.Context, tripId, token string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.SavedTrip{}).
		Where("id = ?", tripId).
		Update("share_token", token).Error
}

func (r *tripRepository) Delete(ctx context.Context, tripId string) error {
	return r.db.WithContext(ctx).Delete(&db_models.SavedTrip{}, "id = ?", tripId).Error
}
