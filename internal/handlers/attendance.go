package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	apierrors "github.com/officehub/office-management-api/internal/errors"
	"github.com/officehub/office-management-api/internal/middleware"
	"github.com/officehub/office-management-api/internal/services"
)

type AttendanceHandler struct {
	attendanceService *services.AttendanceService
}

func NewAttendanceHandler(attendanceService *services.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceService: attendanceService,
	}
}

// ClockIn stamps today's clock-in for the acting employee. Repeated
// clock-ins are no-ops.
func (h *AttendanceHandler) ClockIn(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	att, err := h.attendanceService.ClockIn(actor.UserID, time.Now())
	if err != nil {
		apierrors.InternalError(c, "Failed to clock in")
		return
	}

	c.JSON(http.StatusOK, att)
}

// ClockOut stamps today's clock-out. Without a prior clock-in, or after
// the day is closed, nothing changes.
func (h *AttendanceHandler) ClockOut(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	att, err := h.attendanceService.ClockOut(actor.UserID, time.Now())
	if err != nil {
		apierrors.InternalError(c, "Failed to clock out")
		return
	}

	c.JSON(http.StatusOK, att)
}

// History lists attendance rows: all of them for Admin/Manager, own rows
// for an Employee.
func (h *AttendanceHandler) History(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	rows, err := h.attendanceService.History(actor)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch attendance")
		return
	}

	c.JSON(http.StatusOK, gin.H{"attendance": rows})
}
