package models

import (
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleManager  Role = "Manager"
	RoleEmployee Role = "Employee"
)

type User struct {
	ID           uint64         `gorm:"primarykey" json:"id"`
	Username     string         `gorm:"type:varchar(150);uniqueIndex;not null" json:"username"`
	Email        string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"type:varchar(255);not null" json:"-"`
	Role         Role           `gorm:"type:varchar(10);not null;default:'Employee'" json:"role"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Profile       *EmployeeProfile `gorm:"foreignKey:UserID" json:"profile,omitempty"`
	SocialProfile *SocialProfile   `gorm:"foreignKey:UserID" json:"-"`
}

// Department returns the user's profile department, or empty when no
// profile exists (e.g. a freshly created admin).
func (u User) Department() string {
	if u.Profile == nil {
		return ""
	}
	return u.Profile.Department
}
