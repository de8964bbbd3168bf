package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kuvica/kuvica-api/internal/apperr"
	"github.com/kuvica/kuvica-api/internal/models"
)

func newFavoriteFixture(t *testing.T) (*FavoriteService, uuid.UUID, uuid.UUID) {
	t.Helper()
	favorites := newStubFavoriteRepo()
	clients := newStubClientRepo()
	workers := newStubWorkerRepo()

	client := &models.Client{FullName: "Ana", Email: "ana@example.com", Password: "x", IsActive: true}
	require.NoError(t, clients.Create(context.Background(), client))
	workerID := seedWorker(t, workers, "mario@example.com", "Luanda", []string{"plumbing"}, true)

	return NewFavoriteService(favorites, clients, workers), client.ID, workerID
}

func TestFavoritePairUniqueness(t *testing.T) {
	svc, clientID, workerID := newFavoriteFixture(t)
	ctx := context.Background()

	resp, err := svc.Create(ctx, clientID, workerID)
	require.NoError(t, err)
	assert.Equal(t, workerID, resp.WorkerID)

	_, err = svc.Create(ctx, clientID, workerID)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestFavoriteUnknownWorker(t *testing.T) {
	svc, clientID, _ := newFavoriteFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, clientID, uuid.New())
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestFavoriteListAndDelete(t *testing.T) {
	svc, clientID, workerID := newFavoriteFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, clientID, workerID)
	require.NoError(t, err)

	list, err := svc.ListByClient(ctx, clientID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.Delete(ctx, clientID, workerID))

	list, err = svc.ListByClient(ctx, clientID)
	require.NoError(t, err)
	assert.Empty(t, list)

	// Removing again still validates the pair but is otherwise a no-op.
	require.NoError(t, svc.Delete(ctx, clientID, workerID))
}

func TestFavoriteDeleteMissingParty(t *testing.T) {
	svc, clientID, workerID := newFavoriteFixture(t)
	ctx := context.Background()

	err := svc.Delete(ctx, clientID, uuid.New())
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	err = svc.Delete(ctx, uuid.New(), workerID)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}
