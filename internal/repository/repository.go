package repository

import (
	"time"

	"github.com/officehub/office-management-api/internal/models"
	"github.com/officehub/office-management-api/internal/policy"
)

// UserRepository defines the interface for user and profile data access
type UserRepository interface {
	// Create creates a bare user
	Create(user *models.User) error

	// CreateWithProfile creates a user and their employee profile within
	// a single transaction; both persist or neither does.
	CreateWithProfile(user *models.User, profile *models.EmployeeProfile) error

	// CreateWithSocialProfile creates a user and their social profile
	// within a single transaction.
	CreateWithSocialProfile(user *models.User, social *models.SocialProfile) error

	// UpdateWithProfile saves user and profile changes atomically.
	UpdateWithProfile(user *models.User, profile *models.EmployeeProfile) error

	// UpsertSocialProfile creates or refreshes the social profile linked
	// to a user.
	UpsertSocialProfile(social *models.SocialProfile) error

	// FindByID finds a user by ID with the employee profile preloaded
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// FindByEmail finds a user by email with the employee profile preloaded
	FindByEmail(email string) (*models.User, error)

	// UsernameExists reports whether a username is taken
	UsernameExists(username string) (bool, error)

	// ListProfiles lists employee profiles with their users
	ListProfiles() ([]models.EmployeeProfile, error)

	// FindProfileByID finds an employee profile by its own ID
	FindProfileByID(id uint64) (*models.EmployeeProfile, error)

	// Delete removes a user and their profile; references from assets,
	// tasks and leave approvals are cleared, not cascaded.
	Delete(id uint64) error
}

// AttendanceRepository defines the interface for attendance data access
type AttendanceRepository interface {
	// GetOrCreateForDate returns the user's attendance row for the given
	// day, creating an empty one when absent. A concurrent create racing
	// on the (user, date) unique index is resolved by re-reading.
	GetOrCreateForDate(userID uint64, date time.Time) (*models.Attendance, error)

	// Save persists an attendance row (working hours recompute on save).
	Save(att *models.Attendance) error

	// List returns attendance rows visible to the actor, newest first.
	List(actor policy.Actor) ([]models.Attendance, error)
}

// LeaveRepository defines the interface for leave request data access
type LeaveRepository interface {
	Create(req *models.LeaveRequest) error
	FindByID(id uint64) (*models.LeaveRequest, error)
	Save(req *models.LeaveRequest) error

	// List returns leave requests visible to the actor, newest first.
	List(actor policy.Actor) ([]models.LeaveRequest, error)
}

// DocumentRepository defines the interface for document metadata access
type DocumentRepository interface {
	Create(doc *models.Document) error
	FindByID(id uint64) (*models.Document, error)
	Save(doc *models.Document) error
	Delete(id uint64) error

	// List returns documents visible to the actor, newest first.
	List(actor policy.Actor) ([]models.Document, error)
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	Create(task *models.Task) error
	FindByID(id uint64) (*models.Task, error)
	Save(task *models.Task) error
	Delete(id uint64) error

	// List returns tasks visible to the actor, ordered by deadline then
	// priority. A zero projectID means all projects.
	List(actor policy.Actor, projectID uint64) ([]models.Task, error)

	// FindProjectByID finds the project a task belongs to.
	FindProjectByID(id uint64) (*models.Project, error)
}
