package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kuvica/kuvica-api/internal/models"
)

type ServiceRequestRepository interface {
	Create(ctx context.Context, request *models.ServiceRequest) error
	// GetByIDWithRelations preloads Client and Worker for notification use.
	GetByIDWithRelations(ctx context.Context, id uuid.UUID) (*models.ServiceRequest, error)
	FindByClientID(ctx context.Context, clientID uuid.UUID) ([]models.ServiceRequest, error)
	FindByWorkerID(ctx context.Context, workerID uuid.UUID) ([]models.ServiceRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.ServiceRequestStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type serviceRequestRepository struct {
	db *gorm.DB
}

func NewServiceRequestRepository(db *gorm.DB) ServiceRequestRepository {
	return &serviceRequestRepository{db: db}
}

func (r *serviceRequestRepository) Create(ctx context.Context, request *models.ServiceRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *serviceRequestRepository) GetByIDWithRelations(ctx context.Context, id uuid.UUID) (*models.ServiceRequest, error) {
	var req models.ServiceRequest
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Worker").
		First(&req, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *serviceRequestRepository) FindByClientID(ctx context.Context, clientID uuid.UUID) ([]models.ServiceRequest, error) {
	var reqs []models.ServiceRequest
	err := r.db.WithContext(ctx).
		Preload("Worker").
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

func (r *serviceRequestRepository) FindByWorkerID(ctx context.Context, workerID uuid.UUID) ([]models.ServiceRequest, error) {
	var reqs []models.ServiceRequest
	err := r.db.WithContext(ctx).
		Preload("Client").
		Where("worker_id = ?", workerID).
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

func (r *serviceRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ServiceRequestStatus) error {
	return r.db.WithContext(ctx).Model(&models.ServiceRequest{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *serviceRequestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.ServiceRequest{}, "id = ?", id).Error
}
