package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Territory is a geographic sales region. Licensees are granted exclusive
// rights within one territory.
type Territory struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string         `gorm:"type:varchar(150);not null" json:"name"`
	Region    string         `gorm:"type:varchar(100)" json:"region"`
	Country   string         `gorm:"type:varchar(2);not null;default:'US'" json:"country"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Territory) TableName() string { return "territories" }

// Licensee is the tenant: it owns camps, venues and curriculum.
type Licensee struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	TerritoryID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"territory_id"`
	BusinessName string         `gorm:"type:varchar(200);not null" json:"business_name"`
	OwnerUserID  *uuid.UUID     `gorm:"type:uuid" json:"owner_user_id,omitempty"`
	ContactEmail string         `gorm:"type:varchar(255);not null" json:"contact_email"`
	Active       bool           `gorm:"not null;default:true" json:"active"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Territory *Territory `gorm:"foreignKey:TerritoryID" json:"territory,omitempty"`
}

func (Licensee) TableName() string { return "licensees" }

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationInReview ApplicationStatus = "in_review"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// LicenseeApplication is the public intake form for prospective licensees.
// Approved applications become Licensee rows.
type LicenseeApplication struct {
	ID             uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	TerritoryID    uuid.UUID         `gorm:"type:uuid;not null;index" json:"territory_id"`
	BusinessName   string            `gorm:"type:varchar(200);not null" json:"business_name"`
	ApplicantName  string            `gorm:"type:varchar(200);not null" json:"applicant_name"`
	ApplicantEmail string            `gorm:"type:varchar(255);not null" json:"applicant_email"`
	Phone          string            `gorm:"type:varchar(32)" json:"phone,omitempty"`
	Message        string            `gorm:"type:text" json:"message,omitempty"`
	Status         ApplicationStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	ReviewNotes    string            `gorm:"type:text" json:"review_notes,omitempty"`
	ReviewedBy     *uuid.UUID        `gorm:"type:uuid" json:"reviewed_by,omitempty"`
	ReviewedAt     *time.Time        `json:"reviewed_at,omitempty"`
	LicenseeID     *uuid.UUID        `gorm:"type:uuid" json:"licensee_id,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

func (LicenseeApplication) TableName() string { return "licensee_applications" }

// IsTerminal reports whether the application has reached a final decision.
func (a *LicenseeApplication) IsTerminal() bool {
	return a.Status == ApplicationApproved || a.Status == ApplicationRejected
}
