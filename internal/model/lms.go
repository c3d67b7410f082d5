package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LmsModule is one unit of coach training content.
type LmsModule struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title         string         `gorm:"type:varchar(200);not null" json:"title"`
	Position      int            `gorm:"not null;default:0" json:"position"`
	ContentURL    string         `gorm:"type:varchar(500)" json:"content_url,omitempty"`
	PassThreshold int            `gorm:"not null;default:100" json:"pass_threshold"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (LmsModule) TableName() string { return "lms_modules" }

// LmsProgress tracks one user's progress through one module. Percent never
// decreases; CompletedAt latches once percent reaches the module threshold.
type LmsProgress struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	ModuleID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"module_id"`
	Percent     int        `gorm:"not null;default:0" json:"percent"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (LmsProgress) TableName() string { return "lms_progress" }
