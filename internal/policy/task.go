package policy

import (
	"github.com/officehub/office-management-api/internal/models"
	"gorm.io/gorm"
)

func CanViewTask(a Actor, task models.Task) bool {
	if a.IsManagerOrAdmin() {
		return true
	}
	return task.AssignedToID != nil && *task.AssignedToID == a.UserID
}

// TaskScope is the list-filter equivalent of CanViewTask.
func TaskScope(a Actor) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if a.IsManagerOrAdmin() {
			return db
		}
		return db.Where("assigned_to_id = ?", a.UserID)
	}
}

func CanManageProjects(a Actor) bool {
	return a.IsManagerOrAdmin()
}

func CanDeleteProject(a Actor) bool {
	return a.IsAdmin()
}

func CanCreateTask(a Actor) bool {
	return a.IsManagerOrAdmin()
}

// CanEditTask: managers and admins edit any task, an assignee may edit
// their own (field restrictions are enforced by the task service).
func CanEditTask(a Actor, task models.Task) bool {
	if a.IsManagerOrAdmin() {
		return true
	}
	return task.AssignedToID != nil && *task.AssignedToID == a.UserID
}

// CanReassignTask: managers and admins may move a task to another
// project or hand it to someone else once it exists.
func CanReassignTask(a Actor) bool {
	return a.IsManagerOrAdmin()
}

func CanDeleteTask(a Actor) bool {
	return a.IsAdmin()
}
