package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	apierrors "github.com/officehub/office-management-api/internal/errors"
	"github.com/officehub/office-management-api/internal/middleware"
	"github.com/officehub/office-management-api/internal/models"
	"github.com/officehub/office-management-api/internal/policy"
	"github.com/officehub/office-management-api/internal/services"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// TaskRequest is the shared create/update payload.
type TaskRequest struct {
	ProjectID    uint64            `json:"project_id"`
	AssignedToID *uint64           `json:"assigned_to_id"`
	Title        string            `json:"title" binding:"required"`
	Description  string            `json:"description"`
	Status       models.TaskStatus `json:"status"`
	Deadline     *time.Time        `json:"deadline"`
	Priority     int               `json:"priority"`
	Comments     string            `json:"comments"`
}

func (r TaskRequest) toInput() services.TaskInput {
	return services.TaskInput{
		ProjectID:    r.ProjectID,
		AssignedToID: r.AssignedToID,
		Title:        r.Title,
		Description:  r.Description,
		Status:       r.Status,
		Deadline:     r.Deadline,
		Priority:     r.Priority,
		Comments:     r.Comments,
	}
}

// List returns the tasks visible to the actor, optionally scoped to one
// project via ?project_id=.
func (h *TaskHandler) List(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	var projectID uint64
	if raw := c.Query("project_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid project ID")
			return
		}
		projectID = parsed
	}

	tasks, err := h.taskService.List(actor, projectID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch tasks")
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// Get returns a single task the actor may see. A denied read comes back
// as not-found.
func (h *TaskHandler) Get(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	id, ok := parseID(c)
	if !ok {
		return
	}

	task, err := h.taskService.Get(actor, id)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			apierrors.NotFound(c, "Task not found")
			return
		}
		apierrors.InternalError(c, "Failed to fetch task")
		return
	}

	c.JSON(http.StatusOK, task)
}

// Create adds a task to a project. Manager/Admin only (route-gated). The
// response carries a warning when the deadline overruns the project end
// date; the task is saved either way.
func (h *TaskHandler) Create(c *gin.Context) {
	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}
	if req.ProjectID == 0 {
		apierrors.BadRequest(c, "A project is required")
		return
	}

	task, warning, err := h.taskService.Create(req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProjectNotFound):
			apierrors.NotFound(c, "Project not found")
		case errors.Is(err, services.ErrInvalidTaskStatus):
			apierrors.BadRequest(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to create task")
		}
		return
	}

	body := gin.H{"task": task}
	if warning != "" {
		body["warning"] = warning
	}
	c.JSON(http.StatusCreated, body)
}

// Update edits a task. Managers and admins may change anything; the
// assignee may edit everything except the project and assignee fields.
func (h *TaskHandler) Update(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	id, ok := parseID(c)
	if !ok {
		return
	}

	task, err := h.taskService.Get(actor, id)
	if err != nil {
		apierrors.NotFound(c, "Task not found")
		return
	}
	if !policy.CanEditTask(actor, *task) {
		apierrors.NotFound(c, "Task not found")
		return
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	warning, err := h.taskService.Update(actor, task, req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRestrictedFields):
			apierrors.Forbidden(c, err.Error())
		case errors.Is(err, services.ErrProjectNotFound):
			apierrors.NotFound(c, "Project not found")
		case errors.Is(err, services.ErrInvalidTaskStatus):
			apierrors.BadRequest(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to update task")
		}
		return
	}

	body := gin.H{"task": task}
	if warning != "" {
		body["warning"] = warning
	}
	c.JSON(http.StatusOK, body)
}

// Delete removes a task. Admin only (route-gated).
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.taskService.Delete(id); err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			apierrors.NotFound(c, "Task not found")
			return
		}
		apierrors.InternalError(c, "Failed to delete task")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}
