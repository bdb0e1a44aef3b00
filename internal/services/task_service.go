package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/officehub/office-management-api/internal/models"
	"github.com/officehub/office-management-api/internal/policy"
	"github.com/officehub/office-management-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrProjectNotFound   = errors.New("project not found")
	ErrRestrictedFields  = errors.New("only an admin may change the project or assignee")
	ErrInvalidTaskStatus = errors.New("invalid task status")
)

// DeadlineWarning is a soft validation note attached to a task response
// when its deadline falls after the project's end date. The task is
// persisted regardless.
const DeadlineWarning = "task deadline is after the project end date"

// TaskService owns task creation and the restricted-field edit rules
// for non-manager assignees.
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
	}
}

// TaskInput holds the full set of task fields.
type TaskInput struct {
	ProjectID    uint64
	AssignedToID *uint64
	Title        string
	Description  string
	Status       models.TaskStatus
	Deadline     *time.Time
	Priority     int
	Comments     string
}

func validTaskStatus(s models.TaskStatus) bool {
	return s == models.TaskStatusTodo || s == models.TaskStatusInProgress || s == models.TaskStatusDone
}

// deadlineWarning returns the soft warning when the deadline overruns
// the project end date, otherwise empty.
func (s *TaskService) deadlineWarning(projectID uint64, deadline *time.Time) string {
	if deadline == nil {
		return ""
	}
	project, err := s.taskRepo.FindProjectByID(projectID)
	if err != nil || project.EndDate == nil {
		return ""
	}
	if deadline.After(*project.EndDate) {
		return DeadlineWarning
	}
	return ""
}

// Create adds a task to a project. Returns the task plus an optional
// deadline warning.
func (s *TaskService) Create(input TaskInput) (*models.Task, string, error) {
	if _, err := s.taskRepo.FindProjectByID(input.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrProjectNotFound
		}
		return nil, "", fmt.Errorf("failed to find project: %w", err)
	}

	status := input.Status
	if status == "" {
		status = models.TaskStatusTodo
	}
	if !validTaskStatus(status) {
		return nil, "", ErrInvalidTaskStatus
	}

	task := &models.Task{
		ProjectID:    input.ProjectID,
		AssignedToID: input.AssignedToID,
		Title:        input.Title,
		Description:  input.Description,
		Status:       status,
		Deadline:     input.Deadline,
		Priority:     input.Priority,
		Comments:     input.Comments,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, "", fmt.Errorf("failed to create task: %w", err)
	}
	return task, s.deadlineWarning(task.ProjectID, task.Deadline), nil
}

// Get returns a single task the actor may see, or not-found.
func (s *TaskService) Get(actor policy.Actor, id uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	if !policy.CanViewTask(actor, *task) {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

// List returns the tasks visible to the actor, optionally limited to one
// project.
func (s *TaskService) List(actor policy.Actor, projectID uint64) ([]models.Task, error) {
	return s.taskRepo.List(actor, projectID)
}

// Update applies an edit. Managers and admins may change anything; an
// assignee may edit their own task but touching the project or assignee
// requires admin. A no-change submit by the assignee succeeds and leaves
// the record as is.
func (s *TaskService) Update(actor policy.Actor, task *models.Task, input TaskInput) (string, error) {
	if !validTaskStatus(input.Status) {
		return "", ErrInvalidTaskStatus
	}

	projectChanged := input.ProjectID != 0 && input.ProjectID != task.ProjectID
	assigneeChanged := !equalAssignee(task.AssignedToID, input.AssignedToID)

	if (projectChanged || assigneeChanged) && !policy.CanReassignTask(actor) {
		return "", ErrRestrictedFields
	}

	if projectChanged {
		if _, err := s.taskRepo.FindProjectByID(input.ProjectID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return "", ErrProjectNotFound
			}
			return "", fmt.Errorf("failed to find project: %w", err)
		}
		task.ProjectID = input.ProjectID
	}
	if assigneeChanged {
		task.AssignedToID = input.AssignedToID
	}

	task.Title = input.Title
	task.Description = input.Description
	task.Status = input.Status
	task.Deadline = input.Deadline
	task.Priority = input.Priority
	task.Comments = input.Comments

	if err := s.taskRepo.Save(task); err != nil {
		return "", fmt.Errorf("failed to save task: %w", err)
	}
	return s.deadlineWarning(task.ProjectID, task.Deadline), nil
}

// Delete removes a task.
func (s *TaskService) Delete(id uint64) error {
	if _, err := s.taskRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to find task: %w", err)
	}
	return s.taskRepo.Delete(id)
}

func equalAssignee(a, b *uint64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
