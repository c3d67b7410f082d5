package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CampStatus string

const (
	CampDraft     CampStatus = "draft"
	CampPublished CampStatus = "published"
	CampArchived  CampStatus = "archived"
)

type Camp struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	LicenseeID uuid.UUID      `gorm:"type:uuid;not null;index" json:"licensee_id"`
	VenueID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"venue_id"`
	Name       string         `gorm:"type:varchar(200);not null" json:"name"`
	Sport      string         `gorm:"type:varchar(50);not null" json:"sport"`
	StartDate  time.Time      `gorm:"type:date;not null" json:"start_date"`
	EndDate    time.Time      `gorm:"type:date;not null" json:"end_date"`
	Capacity   int            `gorm:"not null;default:0" json:"capacity"`
	PriceCents int64          `gorm:"not null;default:0" json:"price_cents"`
	Status     CampStatus     `gorm:"type:varchar(20);not null;default:'draft';index" json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Venue *Venue    `gorm:"foreignKey:VenueID" json:"venue,omitempty"`
	Days  []CampDay `gorm:"foreignKey:CampID" json:"days,omitempty"`
}

func (Camp) TableName() string { return "camps" }

// CampDay is one calendar day of a camp; attendance and pickup tokens are
// tracked against it.
type CampDay struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CampID    uuid.UUID `gorm:"type:uuid;not null;index" json:"camp_id"`
	Date      time.Time `gorm:"type:date;not null" json:"date"`
	Notes     string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Camp *Camp `gorm:"foreignKey:CampID" json:"camp,omitempty"`
}

func (CampDay) TableName() string { return "camp_days" }
