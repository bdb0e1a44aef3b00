package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/officehub/office-management-api/internal/dto"
	apierrors "github.com/officehub/office-management-api/internal/errors"
	"github.com/officehub/office-management-api/internal/models"
	"github.com/officehub/office-management-api/internal/services"
)

type EmployeeHandler struct {
	employeeService *services.EmployeeService
}

func NewEmployeeHandler(employeeService *services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService: employeeService,
	}
}

// EmployeeRequest is the shared create/update payload. Password is only
// honored on create.
type EmployeeRequest struct {
	Username    string               `json:"username" binding:"required"`
	Email       string               `json:"email" binding:"required,email"`
	Password    string               `json:"password"`
	Role        models.Role          `json:"role" binding:"required"`
	Department  string               `json:"department"`
	Designation string               `json:"designation"`
	Phone       string               `json:"phone"`
	JoinDate    time.Time            `json:"join_date"`
	Status      models.ProfileStatus `json:"status"`
}

func (r EmployeeRequest) toInput() services.EmployeeInput {
	return services.EmployeeInput{
		Username:    r.Username,
		Email:       r.Email,
		Password:    r.Password,
		Role:        r.Role,
		Department:  r.Department,
		Designation: r.Designation,
		Phone:       r.Phone,
		JoinDate:    r.JoinDate,
		Status:      r.Status,
	}
}

// List returns every employee profile. Manager/Admin only (route-gated).
func (h *EmployeeHandler) List(c *gin.Context) {
	profiles, err := h.employeeService.List()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch employees")
		return
	}

	employees := make([]dto.EmployeeDTO, 0, len(profiles))
	for _, p := range profiles {
		employees = append(employees, dto.ToEmployeeDTO(p))
	}

	c.JSON(http.StatusOK, gin.H{"employees": employees})
}

// Create adds a new employee account with its profile. Admin only
// (route-gated).
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.employeeService.Create(req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUsernameTaken):
			apierrors.Conflict(c, err.Error())
		case errors.Is(err, services.ErrInvalidRole),
			errors.Is(err, services.ErrPasswordTooShort):
			apierrors.BadRequest(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to create employee")
		}
		return
	}

	profile := *user.Profile
	profile.User = *user
	c.JSON(http.StatusCreated, dto.ToEmployeeDTO(profile))
}

// Update edits an employee's account and profile. Admin only
// (route-gated).
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	profile, err := h.employeeService.Update(id, req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmployeeNotFound):
			apierrors.NotFound(c, err.Error())
		case errors.Is(err, services.ErrInvalidRole):
			apierrors.BadRequest(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to update employee")
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeDTO(*profile))
}

// Delete removes an employee account. Assets, tasks and leave approvals
// referencing the user stay behind with the reference cleared. Admin
// only (route-gated).
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.employeeService.Delete(id); err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			apierrors.NotFound(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Failed to delete employee")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted successfully"})
}
