package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/officehub/office-management-api/internal/database"
	apierrors "github.com/officehub/office-management-api/internal/errors"
	"github.com/officehub/office-management-api/internal/middleware"
	"github.com/officehub/office-management-api/internal/models"
	"github.com/officehub/office-management-api/internal/policy"
)

type AssetHandler struct{}

func NewAssetHandler() *AssetHandler {
	return &AssetHandler{}
}

func validAssetStatus(s models.AssetStatus) bool {
	switch s {
	case models.AssetStatusInUse, models.AssetStatusMaintenance,
		models.AssetStatusRetired, models.AssetStatusAvailable:
		return true
	}
	return false
}

// AssetRequest is the shared create/update payload.
type AssetRequest struct {
	Name         string             `json:"name" binding:"required"`
	SerialNumber *string            `json:"serial_number"`
	Description  string             `json:"description"`
	PurchaseDate *time.Time         `json:"purchase_date"`
	Status       models.AssetStatus `json:"status"`
	AssignedToID *uint64            `json:"assigned_to_id"`
}

// List returns the assets visible to the actor: everything for
// Admin/Manager, own-or-available for an Employee.
func (h *AssetHandler) List(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	var assets []models.Asset
	if err := database.GetDB().
		Preload("AssignedTo").
		Scopes(policy.AssetScope(actor)).
		Order("name ASC").
		Find(&assets).Error; err != nil {
		apierrors.InternalError(c, "Failed to fetch assets")
		return
	}

	c.JSON(http.StatusOK, gin.H{"assets": assets})
}

// Create adds a new asset. Admin only (route-gated).
func (h *AssetHandler) Create(c *gin.Context) {
	var req AssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if req.Status == "" {
		req.Status = models.AssetStatusAvailable
	}
	if !validAssetStatus(req.Status) {
		apierrors.BadRequest(c, "Invalid asset status")
		return
	}

	asset := models.Asset{
		Name:         req.Name,
		SerialNumber: req.SerialNumber,
		Description:  req.Description,
		PurchaseDate: req.PurchaseDate,
		Status:       req.Status,
		AssignedToID: req.AssignedToID,
	}

	if err := database.GetDB().Create(&asset).Error; err != nil {
		apierrors.Conflict(c, "Failed to create asset (duplicate serial number?)")
		return
	}

	c.JSON(http.StatusCreated, asset)
}

// Update edits an asset. Admin only (route-gated).
func (h *AssetHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var asset models.Asset
	if err := database.GetDB().First(&asset, id).Error; err != nil {
		apierrors.NotFound(c, "Asset not found")
		return
	}

	var req AssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}
	if req.Status != "" && !validAssetStatus(req.Status) {
		apierrors.BadRequest(c, "Invalid asset status")
		return
	}

	asset.Name = req.Name
	asset.SerialNumber = req.SerialNumber
	asset.Description = req.Description
	asset.PurchaseDate = req.PurchaseDate
	if req.Status != "" {
		asset.Status = req.Status
	}
	asset.AssignedToID = req.AssignedToID

	if err := database.GetDB().Save(&asset).Error; err != nil {
		apierrors.InternalError(c, "Failed to update asset")
		return
	}

	c.JSON(http.StatusOK, asset)
}

// Delete removes an asset. Admin only (route-gated).
func (h *AssetHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var asset models.Asset
	if err := database.GetDB().First(&asset, id).Error; err != nil {
		apierrors.NotFound(c, "Asset not found")
		return
	}

	if err := database.GetDB().Delete(&asset).Error; err != nil {
		apierrors.InternalError(c, "Failed to delete asset")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Asset deleted successfully"})
}
