package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WaiverTemplate is versioned: any change to Content bumps Version. Signings
// pin the version that was current when the parent signed.
type WaiverTemplate struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	LicenseeID uuid.UUID      `gorm:"type:uuid;not null;index" json:"licensee_id"`
	Title      string         `gorm:"type:varchar(200);not null" json:"title"`
	Content    string         `gorm:"type:text;not null" json:"content"`
	Version    int            `gorm:"not null;default:1" json:"version"`
	Active     bool           `gorm:"not null;default:true" json:"active"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (WaiverTemplate) TableName() string { return "waiver_templates" }

// WaiverSigning records a parent's acceptance of a specific template version
// on behalf of an athlete.
type WaiverSigning struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	TemplateID      uuid.UUID `gorm:"type:uuid;not null;index" json:"template_id"`
	TemplateVersion int       `gorm:"not null" json:"template_version"`
	AthleteID       uuid.UUID `gorm:"type:uuid;not null;index" json:"athlete_id"`
	ParentUserID    uuid.UUID `gorm:"type:uuid;not null" json:"parent_user_id"`
	SignedAt        time.Time `gorm:"not null" json:"signed_at"`
	IPAddress       string    `gorm:"type:varchar(45)" json:"ip_address,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func (WaiverSigning) TableName() string { return "waiver_signings" }
