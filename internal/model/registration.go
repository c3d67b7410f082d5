package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RegistrationStatus string

const (
	RegistrationPending   RegistrationStatus = "pending"
	RegistrationConfirmed RegistrationStatus = "confirmed"
	RegistrationCancelled RegistrationStatus = "cancelled"
)

type Registration struct {
	ID              uuid.UUID          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CampID          uuid.UUID          `gorm:"type:uuid;not null;index" json:"camp_id"`
	AthleteID       uuid.UUID          `gorm:"type:uuid;not null;index" json:"athlete_id"`
	ParentUserID    uuid.UUID          `gorm:"type:uuid;not null;index" json:"parent_user_id"`
	Status          RegistrationStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	AmountPaidCents int64              `gorm:"not null;default:0" json:"amount_paid_cents"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
	DeletedAt       gorm.DeletedAt     `gorm:"index" json:"deleted_at,omitempty"`

	Camp    *Camp    `gorm:"foreignKey:CampID" json:"camp,omitempty"`
	Athlete *Athlete `gorm:"foreignKey:AthleteID" json:"athlete,omitempty"`
}

func (Registration) TableName() string { return "registrations" }
