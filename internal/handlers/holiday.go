package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/officehub/office-management-api/internal/database"
	apierrors "github.com/officehub/office-management-api/internal/errors"
	"github.com/officehub/office-management-api/internal/models"
)

type HolidayHandler struct{}

func NewHolidayHandler() *HolidayHandler {
	return &HolidayHandler{}
}

// HolidayRequest is the shared create/update payload.
type HolidayRequest struct {
	Date        time.Time `json:"date" binding:"required"`
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
}

// List returns the holiday calendar, visible to every authenticated user.
func (h *HolidayHandler) List(c *gin.Context) {
	var holidays []models.PublicHoliday
	if err := database.GetDB().Order("date ASC").Find(&holidays).Error; err != nil {
		apierrors.InternalError(c, "Failed to fetch holidays")
		return
	}

	c.JSON(http.StatusOK, gin.H{"holidays": holidays})
}

// Create adds a holiday. Admin only (route-gated).
func (h *HolidayHandler) Create(c *gin.Context) {
	var req HolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	holiday := models.PublicHoliday{
		Date:        req.Date,
		Name:        req.Name,
		Description: req.Description,
	}

	if err := database.GetDB().Create(&holiday).Error; err != nil {
		apierrors.Conflict(c, "A holiday already exists on that date")
		return
	}

	c.JSON(http.StatusCreated, holiday)
}

// Update edits a holiday. Admin only (route-gated).
func (h *HolidayHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var holiday models.PublicHoliday
	if err := database.GetDB().First(&holiday, id).Error; err != nil {
		apierrors.NotFound(c, "Holiday not found")
		return
	}

	var req HolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	holiday.Date = req.Date
	holiday.Name = req.Name
	holiday.Description = req.Description

	if err := database.GetDB().Save(&holiday).Error; err != nil {
		apierrors.InternalError(c, "Failed to update holiday")
		return
	}

	c.JSON(http.StatusOK, holiday)
}

// Delete removes a holiday. Admin only (route-gated).
func (h *HolidayHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var holiday models.PublicHoliday
	if err := database.GetDB().First(&holiday, id).Error; err != nil {
		apierrors.NotFound(c, "Holiday not found")
		return
	}

	if err := database.GetDB().Delete(&holiday).Error; err != nil {
		apierrors.InternalError(c, "Failed to delete holiday")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Holiday deleted successfully"})
}
