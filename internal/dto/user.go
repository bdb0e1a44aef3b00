package dto

import (
	"time"

	"github.com/officehub/office-management-api/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID       uint64      `json:"id"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Role     models.Role `json:"role"`
}

// EmployeeDTO represents an employee profile with its user
type EmployeeDTO struct {
	ID          uint64               `json:"id"`
	User        UserDTO              `json:"user"`
	Department  string               `json:"department"`
	Designation string               `json:"designation"`
	Phone       string               `json:"phone,omitempty"`
	JoinDate    time.Time            `json:"join_date"`
	Status      models.ProfileStatus `json:"status"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}
}

// ToEmployeeDTO converts an EmployeeProfile model to EmployeeDTO
func ToEmployeeDTO(profile models.EmployeeProfile) EmployeeDTO {
	return EmployeeDTO{
		ID:          profile.ID,
		User:        ToUserDTO(profile.User),
		Department:  profile.Department,
		Designation: profile.Designation,
		Phone:       profile.Phone,
		JoinDate:    profile.JoinDate,
		Status:      profile.Status,
	}
}
