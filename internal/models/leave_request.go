package models

import "time"

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "Pending"
	LeaveStatusApproved LeaveStatus = "Approved"
	LeaveStatusRejected LeaveStatus = "Rejected"
)

type LeaveRequest struct {
	ID           uint64      `gorm:"primarykey" json:"id"`
	UserID       uint64      `gorm:"not null;index" json:"user_id"`
	StartDate    time.Time   `gorm:"type:date;not null" json:"start_date"`
	EndDate      time.Time   `gorm:"type:date;not null" json:"end_date"`
	Reason       string      `gorm:"type:text;not null" json:"reason"`
	Status       LeaveStatus `gorm:"type:varchar(10);not null;default:'Pending'" json:"status"`
	RequestedAt  time.Time   `gorm:"autoCreateTime" json:"requested_at"`
	ApprovedByID *uint64     `json:"approved_by_id"`
	ApprovalDate *time.Time  `json:"approval_date"`
	RejectReason string      `gorm:"type:text" json:"reject_reason"`

	User       User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ApprovedBy *User `gorm:"foreignKey:ApprovedByID" json:"approved_by,omitempty"`
}
