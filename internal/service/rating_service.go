package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/kuvica/kuvica-api/internal/apperr"
	"github.com/kuvica/kuvica-api/internal/mailer"
	"github.com/kuvica/kuvica-api/internal/mappers"
	"github.com/kuvica/kuvica-api/internal/models"
	"github.com/kuvica/kuvica-api/internal/repository"
)

type CreateRatingInput struct {
	ClientID         uuid.UUID
	WorkerID         uuid.UUID
	ServiceRequestID uuid.UUID
	Score            int
	Comment          string
}

type RatingService struct {
	ratings repository.RatingRepository
	workers repository.WorkerRepository
	clients repository.ClientRepository
	mail    mailer.Emitter
}

func NewRatingService(
	ratings repository.RatingRepository,
	workers repository.WorkerRepository,
	clients repository.ClientRepository,
	mail mailer.Emitter,
) *RatingService {
	return &RatingService{ratings: ratings, workers: workers, clients: clients, mail: mail}
}

// Create records a rating and notifies the worker. One rating per service
// request; the store constraint owns that invariant.
func (s *RatingService) Create(ctx context.Context, in CreateRatingInput) (*mappers.RatingResponse, error) {
	worker, err := s.workers.GetByID(ctx, in.WorkerID)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, apperr.NotFound("worker not found")
	}

	rating := &models.Rating{
		ClientID:         in.ClientID,
		WorkerID:         in.WorkerID,
		ServiceRequestID: in.ServiceRequestID,
		Score:            in.Score,
		Comment:          in.Comment,
	}
	if err := s.ratings.Create(ctx, rating); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperr.Conflict("service request already rated")
		}
		return nil, err
	}

	clientName := "Cliente"
	if client, err := s.clients.GetByID(ctx, in.ClientID); err == nil && client != nil {
		clientName = client.FullName
	}
	subject, html := mailer.RatingEmail(worker.FullName, clientName)
	s.mail.Emit(worker.Email, subject, html)

	return mappers.ToRatingResponse(rating), nil
}

func (s *RatingService) WorkerRatings(ctx context.Context, workerID uuid.UUID) ([]mappers.RatingResponse, error) {
	ratings, err := s.ratings.FindByWorkerID(ctx, workerID)
	if err != nil {
		return nil, err
	}
	return mappers.ToRatingResponses(ratings), nil
}

// AverageForWorker computes the arithmetic mean at query time; nil when the
// worker has no ratings.
func (s *RatingService) AverageForWorker(ctx context.Context, workerID uuid.UUID) (*float64, error) {
	worker, err := s.workers.GetByID(ctx, workerID)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, apperr.NotFound("worker not found")
	}
	return s.ratings.AverageForWorker(ctx, workerID)
}
