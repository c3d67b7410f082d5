package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Athlete is a camper. Parents manage their own athletes; staff see all
// athletes within their licensee scope.
type Athlete struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ParentUserID uuid.UUID      `gorm:"type:uuid;not null;index" json:"parent_user_id"`
	FirstName    string         `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName     string         `gorm:"type:varchar(100);not null" json:"last_name"`
	BirthDate    time.Time      `gorm:"type:date;not null" json:"birth_date"`
	Gender       string         `gorm:"type:varchar(20)" json:"gender,omitempty"`
	MedicalNotes string         `gorm:"type:text" json:"medical_notes,omitempty"`
	PhotoURL     string         `gorm:"type:varchar(500)" json:"photo_url,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Athlete) TableName() string { return "athletes" }

func (a *Athlete) FullName() string {
	return a.FirstName + " " + a.LastName
}
