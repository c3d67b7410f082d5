package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleAdmin         UserRole = "admin"
	RoleLicenseeOwner UserRole = "licensee_owner"
	RoleCoach         UserRole = "coach"
	RoleParent        UserRole = "parent"
)

type UserStatus int

const (
	UserStatusActive   UserStatus = 1
	UserStatusDisabled UserStatus = 2
)

type User struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email        string         `gorm:"type:varchar(255);not null" json:"email"`
	PasswordHash string         `gorm:"type:varchar(255);not null" json:"-"`
	FirstName    string         `gorm:"type:varchar(100)" json:"first_name"`
	LastName     string         `gorm:"type:varchar(100)" json:"last_name"`
	Phone        string         `gorm:"type:varchar(32)" json:"phone,omitempty"`
	Role         UserRole       `gorm:"type:varchar(32);not null;default:'parent';index" json:"role"`
	Status       UserStatus     `gorm:"type:smallint;not null;default:1" json:"status"`
	LicenseeID   *uuid.UUID     `gorm:"type:uuid;index" json:"licensee_id,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (User) TableName() string { return "users" }

func (u *User) IsStaff() bool {
	return u.Role == RoleAdmin || u.Role == RoleLicenseeOwner || u.Role == RoleCoach
}
