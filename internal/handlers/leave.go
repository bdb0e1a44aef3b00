package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	apierrors "github.com/officehub/office-management-api/internal/errors"
	"github.com/officehub/office-management-api/internal/middleware"
	"github.com/officehub/office-management-api/internal/models"
	"github.com/officehub/office-management-api/internal/services"
)

type LeaveHandler struct {
	leaveService *services.LeaveService
}

func NewLeaveHandler(leaveService *services.LeaveService) *LeaveHandler {
	return &LeaveHandler{
		leaveService: leaveService,
	}
}

// List returns leave requests: all for Admin/Manager, own for Employee.
func (h *LeaveHandler) List(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	requests, err := h.leaveService.List(actor)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch leave requests")
		return
	}

	c.JSON(http.StatusOK, gin.H{"leave_requests": requests})
}

// Create files a new leave request for the acting employee.
func (h *LeaveHandler) Create(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	type CreateRequest struct {
		StartDate time.Time `json:"start_date" binding:"required" time_format:"2006-01-02"`
		EndDate   time.Time `json:"end_date" binding:"required" time_format:"2006-01-02"`
		Reason    string    `json:"reason" binding:"required"`
	}

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.leaveService.Request(actor, services.RequestInput{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
	}, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrLeaveStartInPast),
			errors.Is(err, services.ErrLeaveEndBeforeStart):
			apierrors.BadRequest(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to create leave request")
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

// Decide approves or rejects a pending request; deciding an already
// decided request leaves it untouched.
func (h *LeaveHandler) Decide(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	id, ok := parseID(c)
	if !ok {
		return
	}

	type DecideRequest struct {
		Status       models.LeaveStatus `json:"status" binding:"required"`
		RejectReason string             `json:"reject_reason"`
	}

	var req DecideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	decided, err := h.leaveService.Decide(actor, id, req.Status, req.RejectReason, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrLeaveNotFound):
			apierrors.NotFound(c, err.Error())
		case errors.Is(err, services.ErrInvalidLeaveStatus):
			apierrors.BadRequest(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to update leave request")
		}
		return
	}

	c.JSON(http.StatusOK, decided)
}
