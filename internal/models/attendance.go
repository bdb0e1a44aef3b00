package models

import (
	"math"
	"time"

	"gorm.io/gorm"
)

// Attendance records one user's presence for one calendar day. The
// (user_id, date) pair is unique; concurrent clock-ins for the same day
// are resolved by that constraint, not by application logic.
type Attendance struct {
	ID           uint64     `gorm:"primarykey" json:"id"`
	UserID       uint64     `gorm:"not null;uniqueIndex:idx_attendance_user_date" json:"user_id"`
	Date         time.Time  `gorm:"type:date;not null;uniqueIndex:idx_attendance_user_date" json:"date"`
	ClockIn      *time.Time `json:"clock_in"`
	ClockOut     *time.Time `json:"clock_out"`
	WorkingHours *float64   `json:"working_hours"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// BeforeSave recomputes the derived working hours on every write so that
// direct edits of the timestamps can never leave the field stale.
func (a *Attendance) BeforeSave(tx *gorm.DB) error {
	if a.ClockIn != nil && a.ClockOut != nil {
		hours := math.Round(a.ClockOut.Sub(*a.ClockIn).Hours()*100) / 100
		a.WorkingHours = &hours
	} else {
		a.WorkingHours = nil
	}
	return nil
}
