package models

import (
	"time"

	"github.com/google/uuid"
)

type ServiceRequestStatus string

const (
	RequestStatusPending  ServiceRequestStatus = "pending"
	RequestStatusAccepted ServiceRequestStatus = "accepted"
	RequestStatusRejected ServiceRequestStatus = "rejected"
)

// ServiceRequest is a booking proposal from a client to a worker.
// pending -> accepted|rejected, both terminal.
type ServiceRequest struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ClientID uuid.UUID `gorm:"type:uuid;index;not null" json:"client_id"`
	WorkerID uuid.UUID `gorm:"type:uuid;index;not null" json:"worker_id"`

	Date        time.Time            `json:"date"`
	Description string               `gorm:"type:text" json:"description"`
	Status      ServiceRequestStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Client *Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Worker *Worker `gorm:"foreignKey:WorkerID" json:"worker,omitempty"`
}
