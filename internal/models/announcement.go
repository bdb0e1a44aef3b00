package models

import (
	"time"

	"gorm.io/gorm"
)

type AnnouncementVisibility string

const (
	VisibilityAll      AnnouncementVisibility = "all"
	VisibilityManager  AnnouncementVisibility = "manager"
	VisibilityEmployee AnnouncementVisibility = "employee"
)

type Announcement struct {
	ID          uint64                 `gorm:"primarykey" json:"id"`
	Title       string                 `gorm:"type:varchar(255);not null" json:"title"`
	Content     string                 `gorm:"type:text;not null" json:"content"`
	Visibility  AnnouncementVisibility `gorm:"type:varchar(10);not null;default:'all'" json:"visibility"`
	CreatedByID uint64                 `gorm:"not null" json:"created_by_id"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
	DeletedAt   gorm.DeletedAt         `gorm:"index" json:"-"`

	CreatedBy User `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
}
