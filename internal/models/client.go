package models

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleClient Role = "client"
	RoleWorker Role = "worker"
)

// Client is a marketplace user who requests services. Accounts start
// inactive; the stored activation code is cleared once it is used.
type Client struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FullName string    `gorm:"not null" json:"full_name"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Phone    string    `gorm:"type:varchar(30)" json:"phone"`
	Location string    `gorm:"type:varchar(120)" json:"location"`

	Avatar         *string `gorm:"type:text" json:"avatar,omitempty"`
	ActivationCode *string `gorm:"type:varchar(6)" json:"-"`
	IsActive       bool    `gorm:"default:false" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
