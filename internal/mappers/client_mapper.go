package mappers

import (
	"time"

	"github.com/google/uuid"

	"github.com/kuvica/kuvica-api/internal/models"
)

// ClientResponse is the wire shape of a client. Password and activation
// code never cross this boundary.
type ClientResponse struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Location  string    `json:"location"`
	Avatar    *string   `json:"avatar,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToClientResponse(c *models.Client) *ClientResponse {
	if c == nil {
		return nil
	}
	return &ClientResponse{
		ID:        c.ID,
		FullName:  c.FullName,
		Email:     c.Email,
		Phone:     c.Phone,
		Location:  c.Location,
		Avatar:    c.Avatar,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func ToClientResponses(clients []models.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(clients))
	for i := range clients {
		out = append(out, *ToClientResponse(&clients[i]))
	}
	return out
}

// OptionalString normalizes an optional wire value: empty strings collapse
// to nil so the persistence layer sees one representation.
func OptionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
