package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CurriculumTemplate struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	LicenseeID uuid.UUID      `gorm:"type:uuid;not null;index" json:"licensee_id"`
	Name       string         `gorm:"type:varchar(200);not null" json:"name"`
	Sport      string         `gorm:"type:varchar(50);not null" json:"sport"`
	AgeMin     int            `gorm:"not null;default:5" json:"age_min"`
	AgeMax     int            `gorm:"not null;default:18" json:"age_max"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Blocks []CurriculumBlock `gorm:"foreignKey:TemplateID" json:"blocks,omitempty"`
}

func (CurriculumTemplate) TableName() string { return "curriculum_templates" }

// CurriculumBlock is one ordered activity within a template. Position is
// unique per template and defines day-plan ordering.
type CurriculumBlock struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	TemplateID      uuid.UUID `gorm:"type:uuid;not null;index" json:"template_id"`
	Position        int       `gorm:"not null" json:"position"`
	Title           string    `gorm:"type:varchar(200);not null" json:"title"`
	DurationMinutes int       `gorm:"not null;default:15" json:"duration_minutes"`
	Description     string    `gorm:"type:text" json:"description,omitempty"`
	VideoURL        string    `gorm:"type:varchar(500)" json:"video_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (CurriculumBlock) TableName() string { return "curriculum_blocks" }
