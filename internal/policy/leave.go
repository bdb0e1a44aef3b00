package policy

import (
	"github.com/officehub/office-management-api/internal/models"
	"gorm.io/gorm"
)

func CanViewLeave(a Actor, req models.LeaveRequest) bool {
	if a.IsManagerOrAdmin() {
		return true
	}
	return req.UserID == a.UserID
}

// LeaveScope is the list-filter equivalent of CanViewLeave.
func LeaveScope(a Actor) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if a.IsManagerOrAdmin() {
			return db
		}
		return db.Where("user_id = ?", a.UserID)
	}
}

func CanRequestLeave(a Actor) bool {
	return a.IsEmployee()
}

func CanDecideLeave(a Actor) bool {
	return a.IsManagerOrAdmin()
}
