package models

import (
	"time"

	"github.com/google/uuid"
)

// Favorite is a client's bookmark of a worker. The composite unique index
// owns pair uniqueness; the application never locks.
type Favorite struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ClientID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_favorite_pair;not null" json:"client_id"`
	WorkerID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_favorite_pair;not null" json:"worker_id"`

	CreatedAt time.Time `json:"created_at"`

	Worker *Worker `gorm:"foreignKey:WorkerID" json:"worker,omitempty"`
}
