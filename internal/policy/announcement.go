package policy

import (
	"github.com/officehub/office-management-api/internal/models"
	"gorm.io/gorm"
)

// CanViewAnnouncement reports whether the actor may see a single
// announcement. Admin sees everything; other roles see "all" plus the
// slice targeted at their role.
func CanViewAnnouncement(a Actor, ann models.Announcement) bool {
	switch a.Role {
	case models.RoleAdmin:
		return true
	case models.RoleManager:
		return ann.Visibility == models.VisibilityAll || ann.Visibility == models.VisibilityManager
	default:
		return ann.Visibility == models.VisibilityAll || ann.Visibility == models.VisibilityEmployee
	}
}

// AnnouncementScope is the list-filter equivalent of CanViewAnnouncement.
func AnnouncementScope(a Actor) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch a.Role {
		case models.RoleAdmin:
			return db
		case models.RoleManager:
			return db.Where("visibility IN ?", []models.AnnouncementVisibility{models.VisibilityAll, models.VisibilityManager})
		default:
			return db.Where("visibility IN ?", []models.AnnouncementVisibility{models.VisibilityAll, models.VisibilityEmployee})
		}
	}
}

func CanCreateAnnouncement(a Actor) bool {
	return a.IsManagerOrAdmin()
}

// CanEditAnnouncement requires the manage role plus creator-or-admin on
// the specific record.
func CanEditAnnouncement(a Actor, ann models.Announcement) bool {
	if !a.IsManagerOrAdmin() {
		return false
	}
	return a.IsAdmin() || ann.CreatedByID == a.UserID
}

func CanDeleteAnnouncement(a Actor) bool {
	return a.IsAdmin()
}
