package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kuvica/kuvica-api/internal/models"
)

type FavoriteRepository interface {
	// Create fails with a unique violation when the (client, worker) pair
	// already exists; callers translate that into a Conflict.
	Create(ctx context.Context, favorite *models.Favorite) error
	FindByClientID(ctx context.Context, clientID uuid.UUID) ([]models.Favorite, error)
	Delete(ctx context.Context, clientID, workerID uuid.UUID) error
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Create(ctx context.Context, favorite *models.Favorite) error {
	return r.db.WithContext(ctx).Create(favorite).Error
}

func (r *favoriteRepository) FindByClientID(ctx context.Context, clientID uuid.UUID) ([]models.Favorite, error) {
	var favs []models.Favorite
	err := r.db.WithContext(ctx).
		Preload("Worker").
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&favs).Error
	return favs, err
}

func (r *favoriteRepository) Delete(ctx context.Context, clientID, workerID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("client_id = ? AND worker_id = ?", clientID, workerID).
		Delete(&models.Favorite{}).Error
}
