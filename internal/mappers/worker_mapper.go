package mappers

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/kuvica/kuvica-api/internal/models"
)

type WorkerResponse struct {
	ID           uuid.UUID  `json:"id"`
	FullName     string     `json:"full_name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	Location     string     `json:"location"`
	ServiceTypes []string   `json:"service_types"`
	Availability string     `json:"availability"`
	Municipality *string    `json:"municipality,omitempty"`
	Neighborhood *string    `json:"neighborhood,omitempty"`
	Profession   *string    `json:"profession,omitempty"`
	Experience   *int       `json:"experience,omitempty"`
	BirthDate    *time.Time `json:"birth_date,omitempty"`
	Gender       *string    `json:"gender,omitempty"`
	Avatar       *string    `json:"avatar,omitempty"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// WorkerProfile is a worker plus the live average over their ratings;
// AverageRating is null when the worker has no ratings.
type WorkerProfile struct {
	WorkerResponse
	AverageRating *float64 `json:"average_rating"`
}

// WorkerSearchResult is the trimmed projection returned by worker search.
type WorkerSearchResult struct {
	ID            uuid.UUID `json:"id"`
	FullName      string    `json:"full_name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Location      string    `json:"location"`
	ServiceTypes  []string  `json:"service_types"`
	Availability  string    `json:"availability"`
	Avatar        *string   `json:"avatar,omitempty"`
	AverageRating *float64  `json:"average_rating"`
}

func ToWorkerResponse(w *models.Worker) *WorkerResponse {
	if w == nil {
		return nil
	}
	return &WorkerResponse{
		ID:           w.ID,
		FullName:     w.FullName,
		Email:        w.Email,
		Phone:        w.Phone,
		Location:     w.Location,
		ServiceTypes: ServiceTypesFromJSON(w.ServiceTypes),
		Availability: w.Availability,
		Municipality: w.Municipality,
		Neighborhood: w.Neighborhood,
		Profession:   w.Profession,
		Experience:   w.Experience,
		BirthDate:    w.BirthDate,
		Gender:       w.Gender,
		Avatar:       w.Avatar,
		IsActive:     w.IsActive,
		CreatedAt:    w.CreatedAt,
		UpdatedAt:    w.UpdatedAt,
	}
}

func ToWorkerResponses(workers []models.Worker) []WorkerResponse {
	out := make([]WorkerResponse, 0, len(workers))
	for i := range workers {
		out = append(out, *ToWorkerResponse(&workers[i]))
	}
	return out
}

func ToWorkerProfile(w *models.Worker, avg *float64) *WorkerProfile {
	resp := ToWorkerResponse(w)
	if resp == nil {
		return nil
	}
	return &WorkerProfile{WorkerResponse: *resp, AverageRating: avg}
}

func ToWorkerSearchResult(w *models.Worker, avg *float64) WorkerSearchResult {
	return WorkerSearchResult{
		ID:            w.ID,
		FullName:      w.FullName,
		Email:         w.Email,
		Phone:         w.Phone,
		Location:      w.Location,
		ServiceTypes:  ServiceTypesFromJSON(w.ServiceTypes),
		Availability:  w.Availability,
		Avatar:        w.Avatar,
		AverageRating: avg,
	}
}

// ServiceTypesToJSON converts the wire tag list into the JSON column value.
func ServiceTypesToJSON(tags []string) datatypes.JSON {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(b)
}

func ServiceTypesFromJSON(raw datatypes.JSON) []string {
	var tags []string
	if len(raw) == 0 {
		return []string{}
	}
	if err := json.Unmarshal(raw, &tags); err != nil || tags == nil {
		return []string{}
	}
	return tags
}
