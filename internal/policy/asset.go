package policy

import (
	"github.com/officehub/office-management-api/internal/models"
	"gorm.io/gorm"
)

// CanViewAsset: Admin and Manager see every asset; an Employee sees only
// assets assigned to them or currently available.
func CanViewAsset(a Actor, asset models.Asset) bool {
	if a.IsManagerOrAdmin() {
		return true
	}
	if asset.Status == models.AssetStatusAvailable {
		return true
	}
	return asset.AssignedToID != nil && *asset.AssignedToID == a.UserID
}

// AssetScope is the list-filter equivalent of CanViewAsset.
func AssetScope(a Actor) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if a.IsManagerOrAdmin() {
			return db
		}
		return db.Where("assigned_to_id = ? OR status = ?", a.UserID, models.AssetStatusAvailable)
	}
}

func CanManageAssets(a Actor) bool {
	return a.IsAdmin()
}
