package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/kuvica/kuvica-api/internal/middleware"
	"github.com/kuvica/kuvica-api/internal/models"
	"github.com/kuvica/kuvica-api/internal/service"
)

// In-memory repositories for end-to-end handler tests; duplicates surface
// as gorm.ErrDuplicatedKey like the real store.

type memWorkerRepo struct {
	workers map[uuid.UUID]*models.Worker
}

func newMemWorkerRepo() *memWorkerRepo {
	return &memWorkerRepo{workers: make(map[uuid.UUID]*models.Worker)}
}

func (r *memWorkerRepo) Create(_ context.Context, worker *models.Worker) error {
	for _, w := range r.workers {
		if w.Email == worker.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if worker.ID == uuid.Nil {
		worker.ID = uuid.New()
	}
	clone := *worker
	r.workers[worker.ID] = &clone
	return nil
}

func (r *memWorkerRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Worker, error) {
	w, ok := r.workers[id]
	if !ok {
		return nil, nil
	}
	clone := *w
	return &clone, nil
}

func (r *memWorkerRepo) GetByEmail(_ context.Context, email string) (*models.Worker, error) {
	for _, w := range r.workers {
		if w.Email == email {
			clone := *w
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memWorkerRepo) GetAll(_ context.Context) ([]models.Worker, error) {
	out := make([]models.Worker, 0, len(r.workers))
	for _, w := range r.workers {
		out = append(out, *w)
	}
	return out, nil
}

func (r *memWorkerRepo) Update(_ context.Context, worker *models.Worker) error {
	clone := *worker
	r.workers[worker.ID] = &clone
	return nil
}

func (r *memWorkerRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.workers, id)
	return nil
}

func (r *memWorkerRepo) Activate(_ context.Context, id uuid.UUID) error {
	if w, ok := r.workers[id]; ok {
		w.IsActive = true
		w.ActivationCode = nil
	}
	return nil
}

func (r *memWorkerRepo) UpdateAvatar(_ context.Context, id uuid.UUID, avatar *string) error {
	if w, ok := r.workers[id]; ok {
		w.Avatar = avatar
	}
	return nil
}

func (r *memWorkerRepo) Search(_ context.Context, _, _ string) ([]models.Worker, error) {
	return nil, nil
}

type memRatingRepo struct{}

func (memRatingRepo) Create(_ context.Context, _ *models.Rating) error { return nil }
func (memRatingRepo) FindByWorkerID(_ context.Context, _ uuid.UUID) ([]models.Rating, error) {
	return nil, nil
}
func (memRatingRepo) AverageForWorker(_ context.Context, _ uuid.UUID) (*float64, error) {
	return nil, nil
}

type discardEmitter struct{}

func (discardEmitter) Emit(_, _, _ string) {}

func newWorkerApp(t *testing.T) (*fiber.App, *memWorkerRepo) {
	t.Helper()
	repo := newMemWorkerRepo()
	svc := service.NewWorkerService(repo, memRatingRepo{}, discardEmitter{}, "test-secret", 60)
	h := NewWorkerHandler(svc)

	app := newTestApp()
	auth := middleware.RequireAuth("test-secret")
	workers := app.Group("/api/v1/workers")
	workers.Post("/", h.Register)
	workers.Post("/activate", h.Activate)
	workers.Post("/login", h.Login)
	workers.Get("/me", auth, h.Me)
	return app, repo
}

func doAuthedReq(t *testing.T, app *fiber.App, method, path, token string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

// The full account lifecycle over HTTP: register, fail a wrong code, activate,
// log in, then read the own profile with the issued token.
func TestWorkerAccountLifecycle(t *testing.T) {
	app, repo := newWorkerApp(t)

	status, body := doReq(t, app, "POST", "/api/v1/workers",
		`{"full_name":"Mario","email":"mario@example.com","password":"s3cret","service_types":["plumbing"]}`)
	require.Equal(t, fiber.StatusCreated, status, "register: %v", body)

	var workerID uuid.UUID
	for id := range repo.workers {
		workerID = id
	}
	code := *repo.workers[workerID].ActivationCode

	status, _ = doReq(t, app, "POST", "/api/v1/workers/activate",
		`{"email":"mario@example.com","code":"000000"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = doReq(t, app, "POST", "/api/v1/workers/activate",
		fmt.Sprintf(`{"email":"mario@example.com","code":"%s"}`, code))
	require.Equal(t, fiber.StatusOK, status)

	status, body = doReq(t, app, "POST", "/api/v1/workers/login",
		`{"email":"mario@example.com","password":"s3cret"}`)
	require.Equal(t, fiber.StatusOK, status)

	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	token, ok := data["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)

	status, body = doAuthedReq(t, app, "GET", "/api/v1/workers/me", token)
	require.Equal(t, fiber.StatusOK, status)
	me, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "mario@example.com", me["email"])
	assert.Equal(t, true, me["is_active"])
}

// Registering a case- or whitespace-variant of a taken email stays Conflict.
func TestWorkerRegisterEmailCaseConflict(t *testing.T) {
	app, repo := newWorkerApp(t)

	status, _ := doReq(t, app, "POST", "/api/v1/workers",
		`{"full_name":"Mario","email":"mario@example.com","password":"s3cret"}`)
	require.Equal(t, fiber.StatusCreated, status)

	status, body := doReq(t, app, "POST", "/api/v1/workers",
		`{"full_name":"Mario","email":"Mario@Example.COM","password":"s3cret"}`)
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, false, body["success"])
	assert.Len(t, repo.workers, 1)
}

// Login with a case-differing email reaches the same account.
func TestWorkerLoginEmailCaseInsensitive(t *testing.T) {
	app, repo := newWorkerApp(t)

	status, _ := doReq(t, app, "POST", "/api/v1/workers",
		`{"full_name":"Mario","email":"mario@example.com","password":"s3cret"}`)
	require.Equal(t, fiber.StatusCreated, status)

	for id := range repo.workers {
		require.NoError(t, repo.Activate(context.Background(), id))
	}

	status, _ = doReq(t, app, "POST", "/api/v1/workers/login",
		`{"email":"MARIO@example.com","password":"s3cret"}`)
	assert.Equal(t, fiber.StatusOK, status)
}
