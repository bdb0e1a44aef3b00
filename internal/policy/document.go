package policy

import (
	"github.com/officehub/office-management-api/internal/models"
	"gorm.io/gorm"
)

// CanViewDocument: Admin sees everything. Everyone else sees public
// documents, plus private documents of their own department. A user
// without a profile has no department and so no private access.
// Visibility is the OR of the satisfied clauses.
func CanViewDocument(a Actor, doc models.Document) bool {
	if a.IsAdmin() {
		return true
	}
	if doc.AccessLevel == models.AccessPublic {
		return true
	}
	return a.Department != "" && doc.Department == a.Department
}

// DocumentScope is the list-filter equivalent of CanViewDocument.
func DocumentScope(a Actor) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if a.IsAdmin() {
			return db
		}
		if a.Department == "" {
			return db.Where("access_level = ?", models.AccessPublic)
		}
		return db.Where("access_level = ? OR (access_level = ? AND department = ?)",
			models.AccessPublic, models.AccessPrivate, a.Department)
	}
}

func CanUploadDocument(a Actor) bool {
	return a.IsManagerOrAdmin()
}

// CanEditDocument requires the manage role plus uploader-or-admin on the
// specific record.
func CanEditDocument(a Actor, doc models.Document) bool {
	if !a.IsManagerOrAdmin() {
		return false
	}
	return a.IsAdmin() || doc.UploadedByID == a.UserID
}

func CanDeleteDocument(a Actor) bool {
	return a.IsAdmin()
}
