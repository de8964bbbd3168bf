package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kuvica/kuvica-api/internal/models"
)

type RatingRepository interface {
	Create(ctx context.Context, rating *models.Rating) error
	FindByWorkerID(ctx context.Context, workerID uuid.UUID) ([]models.Rating, error)
	// AverageForWorker returns nil when the worker has no ratings; the
	// aggregate is computed at query time, never materialized.
	AverageForWorker(ctx context.Context, workerID uuid.UUID) (*float64, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) Create(ctx context.Context, rating *models.Rating) error {
	return r.db.WithContext(ctx).Create(rating).Error
}

func (r *ratingRepository) FindByWorkerID(ctx context.Context, workerID uuid.UUID) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.WithContext(ctx).
		Where("worker_id = ?", workerID).
		Order("created_at DESC").
		Find(&ratings).Error
	return ratings, err
}

func (r *ratingRepository) AverageForWorker(ctx context.Context, workerID uuid.UUID) (*float64, error) {
	var avg sql.NullFloat64
	err := r.db.WithContext(ctx).Model(&models.Rating{}).
		Where("worker_id = ?", workerID).
		Select("AVG(score)").
		Row().Scan(&avg)
	if err != nil {
		return nil, err
	}
	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}
