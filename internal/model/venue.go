package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Venue struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	LicenseeID uuid.UUID      `gorm:"type:uuid;not null;index" json:"licensee_id"`
	Name       string         `gorm:"type:varchar(200);not null" json:"name"`
	Address    string         `gorm:"type:varchar(300)" json:"address,omitempty"`
	City       string         `gorm:"type:varchar(100)" json:"city,omitempty"`
	State      string         `gorm:"type:varchar(50)" json:"state,omitempty"`
	PostalCode string         `gorm:"type:varchar(16)" json:"postal_code,omitempty"`
	Capacity   int            `gorm:"not null;default:0" json:"capacity"`
	Indoor     bool           `gorm:"not null;default:false" json:"indoor"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Venue) TableName() string { return "venues" }
