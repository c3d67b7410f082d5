package model

import (
	"time"

	"github.com/google/uuid"
)

type AttendanceStatus string

const (
	AttendanceCheckedIn  AttendanceStatus = "checked_in"
	AttendanceCheckedOut AttendanceStatus = "checked_out"
)

type CheckoutMethod string

const (
	CheckoutMethodQR     CheckoutMethod = "qr"
	CheckoutMethodManual CheckoutMethod = "manual"
)

// CampAttendance tracks one athlete's presence on one camp day. The row is
// created at check-in; checkout flips Status and records how it happened.
type CampAttendance struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CampDayID      uuid.UUID        `gorm:"type:uuid;not null;index" json:"camp_day_id"`
	AthleteID      uuid.UUID        `gorm:"type:uuid;not null;index" json:"athlete_id"`
	Status         AttendanceStatus `gorm:"type:varchar(20);not null;default:'checked_in'" json:"status"`
	CheckedInAt    time.Time        `gorm:"not null" json:"checked_in_at"`
	CheckedInBy    uuid.UUID        `gorm:"type:uuid;not null" json:"checked_in_by"`
	CheckedOutAt   *time.Time       `json:"checked_out_at,omitempty"`
	CheckedOutBy   *uuid.UUID       `gorm:"type:uuid" json:"checked_out_by,omitempty"`
	CheckoutMethod *CheckoutMethod  `gorm:"type:varchar(10)" json:"checkout_method,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`

	Athlete *Athlete `gorm:"foreignKey:AthleteID" json:"athlete,omitempty"`
}

func (CampAttendance) TableName() string { return "camp_attendances" }
