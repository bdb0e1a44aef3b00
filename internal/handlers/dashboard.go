package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/officehub/office-management-api/internal/database"
	"github.com/officehub/office-management-api/internal/dto"
	apierrors "github.com/officehub/office-management-api/internal/errors"
	"github.com/officehub/office-management-api/internal/middleware"
	"github.com/officehub/office-management-api/internal/models"
	"github.com/officehub/office-management-api/internal/policy"
)

type DashboardHandler struct{}

func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

// Get returns the role-aware landing counters. Admins and managers see
// org-wide figures; employees see their own.
func (h *DashboardHandler) Get(c *gin.Context) {
	actor, _ := middleware.GetActor(c)
	db := database.GetDB()

	var user models.User
	if err := db.First(&user, actor.UserID).Error; err != nil {
		apierrors.InternalError(c, "Failed to load dashboard")
		return
	}

	payload := dto.DashboardDTO{
		Username: user.Username,
		Role:     user.Role,
	}

	var announcements int64
	if err := db.Model(&models.Announcement{}).
		Scopes(policy.AnnouncementScope(actor)).
		Count(&announcements).Error; err != nil {
		apierrors.InternalError(c, "Failed to load dashboard")
		return
	}
	payload.AnnouncementCount = &announcements

	if actor.IsManagerOrAdmin() {
		var employees, pendingLeaves int64
		if err := db.Model(&models.EmployeeProfile{}).Count(&employees).Error; err != nil {
			apierrors.InternalError(c, "Failed to load dashboard")
			return
		}
		if err := db.Model(&models.LeaveRequest{}).
			Where("status = ?", models.LeaveStatusPending).
			Count(&pendingLeaves).Error; err != nil {
			apierrors.InternalError(c, "Failed to load dashboard")
			return
		}
		payload.EmployeeCount = &employees
		payload.PendingLeaveCount = &pendingLeaves
	} else {
		var ownLeaves, tasks int64
		if err := db.Model(&models.LeaveRequest{}).
			Where("user_id = ? AND status = ?", actor.UserID, models.LeaveStatusPending).
			Count(&ownLeaves).Error; err != nil {
			apierrors.InternalError(c, "Failed to load dashboard")
			return
		}
		if err := db.Model(&models.Task{}).
			Where("assigned_to_id = ?", actor.UserID).
			Count(&tasks).Error; err != nil {
			apierrors.InternalError(c, "Failed to load dashboard")
			return
		}
		payload.OwnPendingLeaves = &ownLeaves
		payload.AssignedTaskCount = &tasks
	}

	c.JSON(http.StatusOK, payload)
}
