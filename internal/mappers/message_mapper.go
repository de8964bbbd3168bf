package mappers

import (
	"time"

	"github.com/google/uuid"

	"github.com/kuvica/kuvica-api/internal/models"
)

type MessageResponse struct {
	ID           uuid.UUID `json:"id"`
	Content      string    `json:"content"`
	SenderID     uuid.UUID `json:"sender_id"`
	RecipientID  uuid.UUID `json:"recipient_id"`
	IsFromClient bool      `json:"is_from_client"`
	Timestamp    time.Time `json:"timestamp"`
}

func ToMessageResponse(m *models.Message) *MessageResponse {
	if m == nil {
		return nil
	}
	return &MessageResponse{
		ID:           m.ID,
		Content:      m.Content,
		SenderID:     m.SenderID,
		RecipientID:  m.RecipientID,
		IsFromClient: m.IsFromClient,
		Timestamp:    m.CreatedAt,
	}
}

func ToMessageResponses(msgs []models.Message) []MessageResponse {
	out := make([]MessageResponse, 0, len(msgs))
	for i := range msgs {
		out = append(out, *ToMessageResponse(&msgs[i]))
	}
	return out
}

type ServiceRequestResponse struct {
	ID          uuid.UUID                   `json:"id"`
	ClientID    uuid.UUID                   `json:"client_id"`
	WorkerID    uuid.UUID                   `json:"worker_id"`
	Date        time.Time                   `json:"date"`
	Description string                      `json:"description"`
	Status      models.ServiceRequestStatus `json:"status"`
	CreatedAt   time.Time                   `json:"created_at"`
	Client      *ClientResponse             `json:"client,omitempty"`
	Worker      *WorkerResponse             `json:"worker,omitempty"`
}

func ToServiceRequestResponse(r *models.ServiceRequest) *ServiceRequestResponse {
	if r == nil {
		return nil
	}
	return &ServiceRequestResponse{
		ID:          r.ID,
		ClientID:    r.ClientID,
		WorkerID:    r.WorkerID,
		Date:        r.Date,
		Description: r.Description,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
		Client:      ToClientResponse(r.Client),
		Worker:      ToWorkerResponse(r.Worker),
	}
}

func ToServiceRequestResponses(reqs []models.ServiceRequest) []ServiceRequestResponse {
	out := make([]ServiceRequestResponse, 0, len(reqs))
	for i := range reqs {
		out = append(out, *ToServiceRequestResponse(&reqs[i]))
	}
	return out
}

type RatingResponse struct {
	ID               uuid.UUID `json:"id"`
	ClientID         uuid.UUID `json:"client_id"`
	WorkerID         uuid.UUID `json:"worker_id"`
	ServiceRequestID uuid.UUID `json:"service_request_id"`
	Score            int       `json:"score"`
	Comment          string    `json:"comment"`
	CreatedAt        time.Time `json:"created_at"`
}

func ToRatingResponse(r *models.Rating) *RatingResponse {
	if r == nil {
		return nil
	}
	return &RatingResponse{
		ID:               r.ID,
		ClientID:         r.ClientID,
		WorkerID:         r.WorkerID,
		ServiceRequestID: r.ServiceRequestID,
		Score:            r.Score,
		Comment:          r.Comment,
		CreatedAt:        r.CreatedAt,
	}
}

func ToRatingResponses(ratings []models.Rating) []RatingResponse {
	out := make([]RatingResponse, 0, len(ratings))
	for i := range ratings {
		out = append(out, *ToRatingResponse(&ratings[i]))
	}
	return out
}

type FavoriteResponse struct {
	ID        uuid.UUID       `json:"id"`
	ClientID  uuid.UUID       `json:"client_id"`
	WorkerID  uuid.UUID       `json:"worker_id"`
	CreatedAt time.Time       `json:"created_at"`
	Worker    *WorkerResponse `json:"worker,omitempty"`
}

func ToFavoriteResponse(f *models.Favorite) *FavoriteResponse {
	if f == nil {
		return nil
	}
	return &FavoriteResponse{
		ID:        f.ID,
		ClientID:  f.ClientID,
		WorkerID:  f.WorkerID,
		CreatedAt: f.CreatedAt,
		Worker:    ToWorkerResponse(f.Worker),
	}
}

func ToFavoriteResponses(favs []models.Favorite) []FavoriteResponse {
	out := make([]FavoriteResponse, 0, len(favs))
	for i := range favs {
		out = append(out, *ToFavoriteResponse(&favs[i]))
	}
	return out
}
