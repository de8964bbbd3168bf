package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Worker is a marketplace user who offers services. Same activation
// lifecycle as Client, plus the service-domain attributes used by search.
type Worker struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FullName string    `gorm:"not null" json:"full_name"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Phone    string    `gorm:"type:varchar(30)" json:"phone"`
	Location string    `gorm:"type:varchar(120)" json:"location"`

	// JSON array of service-type tags, e.g. ["plumbing","electricity"].
	ServiceTypes datatypes.JSON `json:"service_types"`
	Availability string         `gorm:"type:varchar(120)" json:"availability"`

	Municipality *string    `gorm:"type:varchar(120)" json:"municipality,omitempty"`
	Neighborhood *string    `gorm:"type:varchar(120)" json:"neighborhood,omitempty"`
	Profession   *string    `gorm:"type:varchar(120)" json:"profession,omitempty"`
	Experience   *int       `json:"experience,omitempty"`
	BirthDate    *time.Time `json:"birth_date,omitempty"`
	Gender       *string    `gorm:"type:varchar(20)" json:"gender,omitempty"`

	Avatar         *string `gorm:"type:text" json:"avatar,omitempty"`
	ActivationCode *string `gorm:"type:varchar(6)" json:"-"`
	IsActive       bool    `gorm:"default:false" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
