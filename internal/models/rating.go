package models

import (
	"time"

	"github.com/google/uuid"
)

// Rating is a client's scored feedback on a worker, tied to one service
// request. The unique index enforces one rating per request.
type Rating struct {
	ID               uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ClientID         uuid.UUID `gorm:"type:uuid;index" json:"client_id"`
	WorkerID         uuid.UUID `gorm:"type:uuid;index" json:"worker_id"`
	ServiceRequestID uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"service_request_id"`

	Score   int    `gorm:"not null" json:"score"` // 1-5
	Comment string `gorm:"type:varchar(500)" json:"comment"`

	CreatedAt time.Time `json:"created_at"`

	Client *Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Worker *Worker `gorm:"foreignKey:WorkerID" json:"worker,omitempty"`
}
