package models

import "time"

type ProfileStatus string

const (
	ProfileStatusActive   ProfileStatus = "active"
	ProfileStatusInactive ProfileStatus = "inactive"
)

type EmployeeProfile struct {
	ID          uint64        `gorm:"primarykey" json:"id"`
	UserID      uint64        `gorm:"uniqueIndex;not null" json:"user_id"`
	Department  string        `gorm:"type:varchar(100);not null" json:"department"`
	Designation string        `gorm:"type:varchar(100);not null" json:"designation"`
	Phone       string        `gorm:"type:varchar(20)" json:"phone"`
	JoinDate    time.Time     `gorm:"type:date;not null" json:"join_date"`
	Status      ProfileStatus `gorm:"type:varchar(10);not null;default:'active'" json:"status"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
