package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/officehub/office-management-api/internal/database"
	apierrors "github.com/officehub/office-management-api/internal/errors"
	"github.com/officehub/office-management-api/internal/middleware"
	"github.com/officehub/office-management-api/internal/models"
	"github.com/officehub/office-management-api/internal/policy"
	"github.com/officehub/office-management-api/internal/utils"
)

type AnnouncementHandler struct{}

func NewAnnouncementHandler() *AnnouncementHandler {
	return &AnnouncementHandler{}
}

func parseID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid ID")
		return 0, false
	}
	return id, true
}

func validVisibility(v models.AnnouncementVisibility) bool {
	return v == models.VisibilityAll || v == models.VisibilityManager || v == models.VisibilityEmployee
}

// List returns the announcements visible to the actor, newest first.
func (h *AnnouncementHandler) List(c *gin.Context) {
	actor, _ := middleware.GetActor(c)
	params := utils.GetPaginationParams(c)

	var total int64
	if err := database.GetDB().
		Model(&models.Announcement{}).
		Scopes(policy.AnnouncementScope(actor)).
		Count(&total).Error; err != nil {
		apierrors.InternalError(c, "Failed to fetch announcements")
		return
	}

	var announcements []models.Announcement
	if err := database.GetDB().
		Preload("CreatedBy").
		Scopes(policy.AnnouncementScope(actor), database.Paginate(params)).
		Order("created_at DESC").
		Find(&announcements).Error; err != nil {
		apierrors.InternalError(c, "Failed to fetch announcements")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"announcements": announcements,
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// Create adds a new announcement. Manager/Admin only (route-gated).
func (h *AnnouncementHandler) Create(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	type CreateRequest struct {
		Title      string                        `json:"title" binding:"required"`
		Content    string                        `json:"content" binding:"required"`
		Visibility models.AnnouncementVisibility `json:"visibility"`
	}

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if req.Visibility == "" {
		req.Visibility = models.VisibilityAll
	}
	if !validVisibility(req.Visibility) {
		apierrors.BadRequest(c, "Invalid visibility")
		return
	}

	announcement := models.Announcement{
		Title:       req.Title,
		Content:     req.Content,
		Visibility:  req.Visibility,
		CreatedByID: actor.UserID,
	}

	if err := database.GetDB().Create(&announcement).Error; err != nil {
		apierrors.InternalError(c, "Failed to create announcement")
		return
	}

	c.JSON(http.StatusCreated, announcement)
}

// Update edits an announcement; only the creator or an admin may edit a
// specific record. A denied edit reads as not-found.
func (h *AnnouncementHandler) Update(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	id, ok := parseID(c)
	if !ok {
		return
	}

	var announcement models.Announcement
	if err := database.GetDB().First(&announcement, id).Error; err != nil {
		apierrors.NotFound(c, "Announcement not found")
		return
	}

	if !policy.CanEditAnnouncement(actor, announcement) {
		apierrors.NotFound(c, "Announcement not found")
		return
	}

	type UpdateRequest struct {
		Title      string                        `json:"title" binding:"required"`
		Content    string                        `json:"content" binding:"required"`
		Visibility models.AnnouncementVisibility `json:"visibility" binding:"required"`
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}
	if !validVisibility(req.Visibility) {
		apierrors.BadRequest(c, "Invalid visibility")
		return
	}

	announcement.Title = req.Title
	announcement.Content = req.Content
	announcement.Visibility = req.Visibility

	if err := database.GetDB().Save(&announcement).Error; err != nil {
		apierrors.InternalError(c, "Failed to update announcement")
		return
	}

	c.JSON(http.StatusOK, announcement)
}

// Delete removes an announcement. Admin only (route-gated).
func (h *AnnouncementHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var announcement models.Announcement
	if err := database.GetDB().First(&announcement, id).Error; err != nil {
		apierrors.NotFound(c, "Announcement not found")
		return
	}

	if err := database.GetDB().Delete(&announcement).Error; err != nil {
		apierrors.InternalError(c, "Failed to delete announcement")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Announcement deleted successfully"})
}
