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
	"gorm.io/gorm"
)

type ProjectHandler struct{}

func NewProjectHandler() *ProjectHandler {
	return &ProjectHandler{}
}

// ProjectRequest is the shared create/update payload.
type ProjectRequest struct {
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description"`
	StartDate   time.Time  `json:"start_date" binding:"required"`
	EndDate     *time.Time `json:"end_date"`
}

// List returns every project. Manager/Admin only; employees reach
// project work through their assigned tasks instead.
func (h *ProjectHandler) List(c *gin.Context) {
	actor, _ := middleware.GetActor(c)
	if !policy.CanManageProjects(actor) {
		apierrors.Forbidden(c, "")
		return
	}

	var projects []models.Project
	if err := database.GetDB().Order("start_date DESC").Find(&projects).Error; err != nil {
		apierrors.InternalError(c, "Failed to fetch projects")
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// Create adds a project. Manager/Admin only (route-gated).
func (h *ProjectHandler) Create(c *gin.Context) {
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}
	if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
		apierrors.BadRequest(c, "End date must not be before the start date")
		return
	}

	project := models.Project{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}

	if err := database.GetDB().Create(&project).Error; err != nil {
		apierrors.Conflict(c, "A project with that name already exists")
		return
	}

	c.JSON(http.StatusCreated, project)
}

// Update edits a project. Manager/Admin only (route-gated).
func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var project models.Project
	if err := database.GetDB().First(&project, id).Error; err != nil {
		apierrors.NotFound(c, "Project not found")
		return
	}

	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}
	if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
		apierrors.BadRequest(c, "End date must not be before the start date")
		return
	}

	project.Name = req.Name
	project.Description = req.Description
	project.StartDate = req.StartDate
	project.EndDate = req.EndDate

	if err := database.GetDB().Save(&project).Error; err != nil {
		apierrors.InternalError(c, "Failed to update project")
		return
	}

	c.JSON(http.StatusOK, project)
}

// Delete removes a project and its tasks. Admin only (route-gated).
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var project models.Project
	if err := database.GetDB().First(&project, id).Error; err != nil {
		apierrors.NotFound(c, "Project not found")
		return
	}

	err := database.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", project.ID).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		return tx.Delete(&project).Error
	})
	if err != nil {
		apierrors.InternalError(c, "Failed to delete project")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
