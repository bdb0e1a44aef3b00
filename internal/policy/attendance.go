package policy

import (
	"github.com/officehub/office-management-api/internal/models"
	"gorm.io/gorm"
)

func CanViewAttendance(a Actor, att models.Attendance) bool {
	if a.IsManagerOrAdmin() {
		return true
	}
	return att.UserID == a.UserID
}

// AttendanceScope is the list-filter equivalent of CanViewAttendance.
func AttendanceScope(a Actor) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if a.IsManagerOrAdmin() {
			return db
		}
		return db.Where("user_id = ?", a.UserID)
	}
}

// CanClock: only employees record their own presence.
func CanClock(a Actor) bool {
	return a.IsEmployee()
}
