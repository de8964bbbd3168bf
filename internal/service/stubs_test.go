package service

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kuvica/kuvica-api/internal/models"
)

// In-memory repository stubs. Duplicates surface as gorm.ErrDuplicatedKey,
// the same signal repository.IsUniqueViolation understands.

type stubClientRepo struct {
	clients map[uuid.UUID]*models.Client
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{clients: make(map[uuid.UUID]*models.Client)}
}

func cloneClient(c *models.Client) *models.Client {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

func (r *stubClientRepo) Create(_ context.Context, client *models.Client) error {
	for _, c := range r.clients {
		if c.Email == client.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if client.ID == uuid.Nil {
		client.ID = uuid.New()
	}
	r.clients[client.ID] = cloneClient(client)
	return nil
}

func (r *stubClientRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Client, error) {
	return cloneClient(r.clients[id]), nil
}

func (r *stubClientRepo) GetByEmail(_ context.Context, email string) (*models.Client, error) {
	for _, c := range r.clients {
		if c.Email == email {
			return cloneClient(c), nil
		}
	}
	return nil, nil
}

func (r *stubClientRepo) GetAll(_ context.Context) ([]models.Client, error) {
	out := make([]models.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

func (r *stubClientRepo) Update(_ context.Context, client *models.Client) error {
	r.clients[client.ID] = cloneClient(client)
	return nil
}

func (r *stubClientRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.clients, id)
	return nil
}

func (r *stubClientRepo) Activate(_ context.Context, id uuid.UUID) error {
	if c, ok := r.clients[id]; ok {
		c.IsActive = true
		c.ActivationCode = nil
	}
	return nil
}

func (r *stubClientRepo) UpdateAvatar(_ context.Context, id uuid.UUID, avatar *string) error {
	if c, ok := r.clients[id]; ok {
		c.Avatar = avatar
	}
	return nil
}

type stubWorkerRepo struct {
	workers map[uuid.UUID]*models.Worker
}

func newStubWorkerRepo() *stubWorkerRepo {
	return &stubWorkerRepo{workers: make(map[uuid.UUID]*models.Worker)}
}

func cloneWorker(w *models.Worker) *models.Worker {
	if w == nil {
		return nil
	}
	clone := *w
	return &clone
}

func (r *stubWorkerRepo) Create(_ context.Context, worker *models.Worker) error {
	for _, w := range r.workers {
		if w.Email == worker.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if worker.ID == uuid.Nil {
		worker.ID = uuid.New()
	}
	r.workers[worker.ID] = cloneWorker(worker)
	return nil
}

func (r *stubWorkerRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Worker, error) {
	return cloneWorker(r.workers[id]), nil
}

func (r *stubWorkerRepo) GetByEmail(_ context.Context, email string) (*models.Worker, error) {
	for _, w := range r.workers {
		if w.Email == email {
			return cloneWorker(w), nil
		}
	}
	return nil, nil
}

func (r *stubWorkerRepo) GetAll(_ context.Context) ([]models.Worker, error) {
	out := make([]models.Worker, 0, len(r.workers))
	for _, w := range r.workers {
		out = append(out, *w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

func (r *stubWorkerRepo) Update(_ context.Context, worker *models.Worker) error {
	r.workers[worker.ID] = cloneWorker(worker)
	return nil
}

func (r *stubWorkerRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.workers, id)
	return nil
}

func (r *stubWorkerRepo) Activate(_ context.Context, id uuid.UUID) error {
	if w, ok := r.workers[id]; ok {
		w.IsActive = true
		w.ActivationCode = nil
	}
	return nil
}

func (r *stubWorkerRepo) UpdateAvatar(_ context.Context, id uuid.UUID, avatar *string) error {
	if w, ok := r.workers[id]; ok {
		w.Avatar = avatar
	}
	return nil
}

func (r *stubWorkerRepo) Search(_ context.Context, location, serviceType string) ([]models.Worker, error) {
	var out []models.Worker
	for _, w := range r.workers {
		if !w.IsActive {
			continue
		}
		if location != "" && !containsFold(w.Location, location) {
			continue
		}
		if serviceType != "" && !hasTag(w, serviceType) {
			continue
		}
		out = append(out, *w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

type stubServiceRequestRepo struct {
	requests map[uuid.UUID]*models.ServiceRequest
	clients  *stubClientRepo
	workers  *stubWorkerRepo
}

func newStubServiceRequestRepo(clients *stubClientRepo, workers *stubWorkerRepo) *stubServiceRequestRepo {
	return &stubServiceRequestRepo{
		requests: make(map[uuid.UUID]*models.ServiceRequest),
		clients:  clients,
		workers:  workers,
	}
}

func cloneRequest(r *models.ServiceRequest) *models.ServiceRequest {
	if r == nil {
		return nil
	}
	clone := *r
	return &clone
}

func (r *stubServiceRequestRepo) Create(_ context.Context, request *models.ServiceRequest) error {
	if request.ID == uuid.Nil {
		request.ID = uuid.New()
	}
	r.requests[request.ID] = cloneRequest(request)
	return nil
}

func (r *stubServiceRequestRepo) GetByIDWithRelations(_ context.Context, id uuid.UUID) (*models.ServiceRequest, error) {
	req := cloneRequest(r.requests[id])
	if req == nil {
		return nil, nil
	}
	req.Client = cloneClient(r.clients.clients[req.ClientID])
	req.Worker = cloneWorker(r.workers.workers[req.WorkerID])
	return req, nil
}

func (r *stubServiceRequestRepo) FindByClientID(_ context.Context, clientID uuid.UUID) ([]models.ServiceRequest, error) {
	var out []models.ServiceRequest
	for _, req := range r.requests {
		if req.ClientID == clientID {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (r *stubServiceRequestRepo) FindByWorkerID(_ context.Context, workerID uuid.UUID) ([]models.ServiceRequest, error) {
	var out []models.ServiceRequest
	for _, req := range r.requests {
		if req.WorkerID == workerID {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (r *stubServiceRequestRepo) UpdateStatus(_ context.Context, id uuid.UUID, status models.ServiceRequestStatus) error {
	if req, ok := r.requests[id]; ok {
		req.Status = status
	}
	return nil
}

func (r *stubServiceRequestRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.requests, id)
	return nil
}

type stubRatingRepo struct {
	ratings []models.Rating
}

func newStubRatingRepo() *stubRatingRepo { return &stubRatingRepo{} }

func (r *stubRatingRepo) Create(_ context.Context, rating *models.Rating) error {
	for _, existing := range r.ratings {
		if existing.ServiceRequestID == rating.ServiceRequestID {
			return gorm.ErrDuplicatedKey
		}
	}
	if rating.ID == uuid.Nil {
		rating.ID = uuid.New()
	}
	r.ratings = append(r.ratings, *rating)
	return nil
}

func (r *stubRatingRepo) FindByWorkerID(_ context.Context, workerID uuid.UUID) ([]models.Rating, error) {
	var out []models.Rating
	for _, rt := range r.ratings {
		if rt.WorkerID == workerID {
			out = append(out, rt)
		}
	}
	return out, nil
}

func (r *stubRatingRepo) AverageForWorker(_ context.Context, workerID uuid.UUID) (*float64, error) {
	var sum, n float64
	for _, rt := range r.ratings {
		if rt.WorkerID == workerID {
			sum += float64(rt.Score)
			n++
		}
	}
	if n == 0 {
		return nil, nil
	}
	avg := sum / n
	return &avg, nil
}

type stubFavoriteRepo struct {
	favorites []models.Favorite
}

func newStubFavoriteRepo() *stubFavoriteRepo { return &stubFavoriteRepo{} }

func (r *stubFavoriteRepo) Create(_ context.Context, favorite *models.Favorite) error {
	for _, f := range r.favorites {
		if f.ClientID == favorite.ClientID && f.WorkerID == favorite.WorkerID {
			return gorm.ErrDuplicatedKey
		}
	}
	if favorite.ID == uuid.Nil {
		favorite.ID = uuid.New()
	}
	r.favorites = append(r.favorites, *favorite)
	return nil
}

func (r *stubFavoriteRepo) FindByClientID(_ context.Context, clientID uuid.UUID) ([]models.Favorite, error) {
	var out []models.Favorite
	for _, f := range r.favorites {
		if f.ClientID == clientID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *stubFavoriteRepo) Delete(_ context.Context, clientID, workerID uuid.UUID) error {
	kept := r.favorites[:0]
	for _, f := range r.favorites {
		if !(f.ClientID == clientID && f.WorkerID == workerID) {
			kept = append(kept, f)
		}
	}
	r.favorites = kept
	return nil
}

type stubMessageRepo struct {
	messages map[uuid.UUID]*models.Message
	clock    time.Time
}

func newStubMessageRepo() *stubMessageRepo {
	return &stubMessageRepo{
		messages: make(map[uuid.UUID]*models.Message),
		clock:    time.Now(),
	}
}

func (r *stubMessageRepo) Create(_ context.Context, message *models.Message) error {
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	// Strictly increasing timestamps so conversation order is deterministic.
	r.clock = r.clock.Add(time.Millisecond)
	message.CreatedAt = r.clock
	clone := *message
	r.messages[message.ID] = &clone
	return nil
}

func (r *stubMessageRepo) FindConversation(_ context.Context, a, b uuid.UUID) ([]models.Message, error) {
	var out []models.Message
	for _, m := range r.messages {
		if (m.SenderID == a && m.RecipientID == b) || (m.SenderID == b && m.RecipientID == a) {
			out = append(out, *m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *stubMessageRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.messages, id)
	return nil
}

// recordingEmitter captures emitted mail synchronously.
type recordingEmitter struct {
	mu   sync.Mutex
	sent []sentMail
}

type sentMail struct {
	To      string
	Subject string
	HTML    string
}

func (e *recordingEmitter) Emit(to, subject, html string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sent = append(e.sent, sentMail{To: to, Subject: subject, HTML: html})
}

func (e *recordingEmitter) all() []sentMail {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]sentMail(nil), e.sent...)
}

// recordingNotifier captures realtime pushes.
type recordingNotifier struct {
	mu     sync.Mutex
	events []notifiedEvent
}

type notifiedEvent struct {
	UserID uuid.UUID
	Event  interface{}
}

func (n *recordingNotifier) NotifyUser(_ context.Context, userID uuid.UUID, event interface{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, notifiedEvent{UserID: userID, Event: event})
}

func (n *recordingNotifier) all() []notifiedEvent {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notifiedEvent(nil), n.events...)
}

func containsFold(haystack, needle string) bool {
	h := []rune(haystack)
	n := []rune(needle)
	if len(n) == 0 {
		return true
	}
	lower := func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + 32
		}
		return r
	}
	for i := 0; i+len(n) <= len(h); i++ {
		match := true
		for j := range n {
			if lower(h[i+j]) != lower(n[j]) {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

func hasTag(w *models.Worker, tag string) bool {
	var tags []string
	if err := json.Unmarshal(w.ServiceTypes, &tags); err != nil {
		return false
	}
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
