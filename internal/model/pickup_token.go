package model

import (
	"time"

	"github.com/google/uuid"
)

// PickupToken is a single-use random code authorizing one athlete's dismissal
// from a camp day. Lifecycle: issued -> used | expired; both terminal.
// At most one unexpired, unused token should exist per (camp_day, athlete)
// pair at generation time; older ones are force-expired before new ones are
// minted.
type PickupToken struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CampDayID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"camp_day_id"`
	AthleteID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"athlete_id"`
	ParentProfileID uuid.UUID  `gorm:"type:uuid;not null" json:"parent_profile_id"`
	Token           string     `gorm:"type:varchar(64);uniqueIndex;not null" json:"token"`
	IsUsed          bool       `gorm:"not null;default:false" json:"is_used"`
	UsedAt          *time.Time `json:"used_at,omitempty"`
	UsedByUserID    *uuid.UUID `gorm:"type:uuid" json:"used_by_user_id,omitempty"`
	ManualReason    string     `gorm:"type:text" json:"manual_reason,omitempty"`
	ExpiresAt       time.Time  `gorm:"not null;index" json:"expires_at"`
	CreatedAt       time.Time  `json:"created_at"`

	Athlete *Athlete `gorm:"foreignKey:AthleteID" json:"athlete,omitempty"`
	CampDay *CampDay `gorm:"foreignKey:CampDayID" json:"camp_day,omitempty"`
}

func (PickupToken) TableName() string { return "pickup_tokens" }

// IsExpired reports whether the token has passed its expiry at the given time.
func (t *PickupToken) IsExpired(now time.Time) bool {
	return !t.ExpiresAt.After(now)
}
