package models

import (
	"time"

	"github.com/google/uuid"
)

// Message is one direct message between a client and a worker. Conversations
// are queried symmetrically: either party may appear as sender.
type Message struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	SenderID    uuid.UUID `gorm:"type:uuid;index" json:"sender_id"`
	RecipientID uuid.UUID `gorm:"type:uuid;index" json:"recipient_id"`

	IsFromClient bool `json:"is_from_client"`

	CreatedAt time.Time `json:"created_at"`
}
