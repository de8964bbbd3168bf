package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kuvica/kuvica-api/internal/apperr"
	"github.com/kuvica/kuvica-api/internal/mailer"
	"github.com/kuvica/kuvica-api/internal/mappers"
	"github.com/kuvica/kuvica-api/internal/models"
	"github.com/kuvica/kuvica-api/internal/repository"
)

type CreateServiceRequestInput struct {
	ClientID    uuid.UUID
	WorkerID    uuid.UUID
	Date        time.Time
	Description string
}

type ServiceRequestService struct {
	requests repository.ServiceRequestRepository
	clients  repository.ClientRepository
	workers  repository.WorkerRepository
	mail     mailer.Emitter
}

func NewServiceRequestService(
	requests repository.ServiceRequestRepository,
	clients repository.ClientRepository,
	workers repository.WorkerRepository,
	mail mailer.Emitter,
) *ServiceRequestService {
	return &ServiceRequestService{requests: requests, clients: clients, workers: workers, mail: mail}
}

// Create persists a pending request and notifies the worker. Both parties
// must exist at creation time.
func (s *ServiceRequestService) Create(ctx context.Context, in CreateServiceRequestInput) (*mappers.ServiceRequestResponse, error) {
	client, err := s.clients.GetByID(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperr.NotFound("client not found")
	}

	worker, err := s.workers.GetByID(ctx, in.WorkerID)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, apperr.NotFound("worker not found")
	}

	request := &models.ServiceRequest{
		ClientID:    in.ClientID,
		WorkerID:    in.WorkerID,
		Date:        in.Date,
		Description: in.Description,
		Status:      models.RequestStatusPending,
	}
	if err := s.requests.Create(ctx, request); err != nil {
		return nil, err
	}

	subject, html := mailer.ServiceRequestEmail(worker.FullName, client.FullName)
	s.mail.Emit(worker.Email, subject, html)

	return mappers.ToServiceRequestResponse(request), nil
}

func (s *ServiceRequestService) ClientList(ctx context.Context, clientID uuid.UUID) ([]mappers.ServiceRequestResponse, error) {
	reqs, err := s.requests.FindByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return mappers.ToServiceRequestResponses(reqs), nil
}

func (s *ServiceRequestService) WorkerList(ctx context.Context, workerID uuid.UUID) ([]mappers.ServiceRequestResponse, error) {
	reqs, err := s.requests.FindByWorkerID(ctx, workerID)
	if err != nil {
		return nil, err
	}
	return mappers.ToServiceRequestResponses(reqs), nil
}

// UpdateStatus moves a pending request to its terminal state and notifies
// the originating client with the decision. A missing request fails before
// any email is dispatched.
func (s *ServiceRequestService) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ServiceRequestStatus) (*mappers.ServiceRequestResponse, error) {
	if status != models.RequestStatusAccepted && status != models.RequestStatusRejected {
		return nil, apperr.Validation("status must be accepted or rejected", nil)
	}

	request, err := s.requests.GetByIDWithRelations(ctx, id)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, apperr.NotFound("service request not found")
	}

	if err := s.requests.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	request.Status = status

	if request.Client != nil && request.Worker != nil {
		decision := "aceito"
		if status == models.RequestStatusRejected {
			decision = "rejeitado"
		}
		subject, html := mailer.ServiceResponseEmail(request.Client.FullName, request.Worker.FullName, decision)
		s.mail.Emit(request.Client.Email, subject, html)
	}

	return mappers.ToServiceRequestResponse(request), nil
}

// Delete is an unconditional hard delete, idempotent by id.
func (s *ServiceRequestService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.requests.Delete(ctx, id)
}
