package dto

import "github.com/officehub/office-management-api/internal/models"

// DashboardDTO is the role-aware landing payload. Only the counters
// relevant to the actor's role are populated.
type DashboardDTO struct {
	Username string      `json:"username"`
	Role     models.Role `json:"role"`

	EmployeeCount     *int64 `json:"employee_count,omitempty"`
	PendingLeaveCount *int64 `json:"pending_leave_count,omitempty"`
	OwnPendingLeaves  *int64 `json:"own_pending_leaves,omitempty"`
	AssignedTaskCount *int64 `json:"assigned_task_count,omitempty"`
	AnnouncementCount *int64 `json:"announcement_count,omitempty"`
}
