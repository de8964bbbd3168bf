package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/kuvica/kuvica-api/internal/apperr"
	"github.com/kuvica/kuvica-api/internal/mappers"
	"github.com/kuvica/kuvica-api/internal/models"
	"github.com/kuvica/kuvica-api/internal/repository"
)

type FavoriteService struct {
	favorites repository.FavoriteRepository
	clients   repository.ClientRepository
	workers   repository.WorkerRepository
}

func NewFavoriteService(
	favorites repository.FavoriteRepository,
	clients repository.ClientRepository,
	workers repository.WorkerRepository,
) *FavoriteService {
	return &FavoriteService{favorites: favorites, clients: clients, workers: workers}
}

// Create bookmarks a worker. The store's pair constraint makes a second
// bookmark of the same worker a Conflict.
func (s *FavoriteService) Create(ctx context.Context, clientID, workerID uuid.UUID) (*mappers.FavoriteResponse, error) {
	worker, err := s.workers.GetByID(ctx, workerID)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, apperr.NotFound("worker not found")
	}

	fav := &models.Favorite{ClientID: clientID, WorkerID: workerID}
	if err := s.favorites.Create(ctx, fav); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperr.Conflict("worker already in favorites")
		}
		return nil, err
	}
	fav.Worker = worker
	return mappers.ToFavoriteResponse(fav), nil
}

func (s *FavoriteService) ListByClient(ctx context.Context, clientID uuid.UUID) ([]mappers.FavoriteResponse, error) {
	favs, err := s.favorites.FindByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return mappers.ToFavoriteResponses(favs), nil
}

func (s *FavoriteService) Delete(ctx context.Context, clientID, workerID uuid.UUID) error {
	worker, err := s.workers.GetByID(ctx, workerID)
	if err != nil {
		return err
	}
	if worker == nil {
		return apperr.NotFound("worker not found")
	}

	client, err := s.clients.GetByID(ctx, clientID)
	if err != nil {
		return err
	}
	if client == nil {
		return apperr.NotFound("client not found")
	}

	return s.favorites.Delete(ctx, clientID, workerID)
}
