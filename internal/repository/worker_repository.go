package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kuvica/kuvica-api/internal/models"
)

type WorkerRepository interface {
	Create(ctx context.Context, worker *models.Worker) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Worker, error)
	GetByEmail(ctx context.Context, email string) (*models.Worker, error)
	GetAll(ctx context.Context) ([]models.Worker, error)
	Update(ctx context.Context, worker *models.Worker) error
	Delete(ctx context.Context, id uuid.UUID) error
	Activate(ctx context.Context, id uuid.UUID) error
	UpdateAvatar(ctx context.Context, id uuid.UUID, avatar *string) error
	// Search pushes location (case-insensitive substring) and serviceType
	// (exact tag membership) down to SQL. The minRating filter runs in the
	// service over live averages.
	Search(ctx context.Context, location, serviceType string) ([]models.Worker, error)
}

type workerRepository struct {
	db *gorm.DB
}

func NewWorkerRepository(db *gorm.DB) WorkerRepository {
	return &workerRepository{db: db}
}

func (r *workerRepository) Create(ctx context.Context, worker *models.Worker) error {
	return r.db.WithContext(ctx).Create(worker).Error
}

func (r *workerRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Worker, error) {
	var w models.Worker
	err := r.db.WithContext(ctx).First(&w, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *workerRepository) GetByEmail(ctx context.Context, email string) (*models.Worker, error) {
	var w models.Worker
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&w).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *workerRepository) GetAll(ctx context.Context) ([]models.Worker, error) {
	var workers []models.Worker
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&workers).Error
	return workers, err
}

func (r *workerRepository) Update(ctx context.Context, worker *models.Worker) error {
	return r.db.WithContext(ctx).Save(worker).Error
}

func (r *workerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Worker{}, "id = ?", id).Error
}

func (r *workerRepository) Activate(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&models.Worker{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_active":       true,
			"activation_code": nil,
		}).Error
}

func (r *workerRepository) UpdateAvatar(ctx context.Context, id uuid.UUID, avatar *string) error {
	return r.db.WithContext(ctx).Model(&models.Worker{}).
		Where("id = ?", id).
		Update("avatar", avatar).Error
}

func (r *workerRepository) Search(ctx context.Context, location, serviceType string) ([]models.Worker, error) {
	q := r.db.WithContext(ctx).Model(&models.Worker{}).Where("is_active = ?", true)

	if location != "" {
		q = q.Where("location ILIKE ?", "%"+location+"%")
	}
	if serviceType != "" {
		// jsonb containment: service_types must include the exact tag
		tag, err := json.Marshal([]string{serviceType})
		if err != nil {
			return nil, err
		}
		q = q.Where("service_types::jsonb @> ?::jsonb", string(tag))
	}

	var workers []models.Worker
	if err := q.Order("created_at DESC").Find(&workers).Error; err != nil {
		return nil, err
	}
	return workers, nil
}
