package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/officehub/office-management-api/internal/constants"
	"github.com/officehub/office-management-api/internal/models"
	"github.com/officehub/office-management-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrInvalidRole      = errors.New("role must be Admin, Manager or Employee")
)

// EmployeeService manages user accounts together with their employee
// profiles. Creation and updates touch both records in one transaction.
type EmployeeService struct {
	userRepo repository.UserRepository
}

// NewEmployeeService creates a new EmployeeService.
func NewEmployeeService(userRepo repository.UserRepository) *EmployeeService {
	return &EmployeeService{
		userRepo: userRepo,
	}
}

// EmployeeInput holds the combined user and profile fields.
type EmployeeInput struct {
	Username    string
	Email       string
	Password    string
	Role        models.Role
	Department  string
	Designation string
	Phone       string
	JoinDate    time.Time
	Status      models.ProfileStatus
}

func validRole(r models.Role) bool {
	return r == models.RoleAdmin || r == models.RoleManager || r == models.RoleEmployee
}

// Create adds a new employee: the user record and the profile persist
// atomically or not at all.
func (s *EmployeeService) Create(input EmployeeInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if !validRole(input.Role) {
		return nil, ErrInvalidRole
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	if taken, err := s.userRepo.UsernameExists(username); err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	} else if taken {
		return nil, ErrUsernameTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Username:     username,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		Role:         input.Role,
	}

	status := input.Status
	if status == "" {
		status = models.ProfileStatusActive
	}
	profile := &models.EmployeeProfile{
		Department:  input.Department,
		Designation: input.Designation,
		Phone:       input.Phone,
		JoinDate:    input.JoinDate,
		Status:      status,
	}

	if err := s.userRepo.CreateWithProfile(user, profile); err != nil {
		return nil, err
	}

	user.Profile = profile
	return user, nil
}

// Update edits an existing employee's user and profile records.
func (s *EmployeeService) Update(profileID uint64, input EmployeeInput) (*models.EmployeeProfile, error) {
	profile, err := s.userRepo.FindProfileByID(profileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}
	if !validRole(input.Role) {
		return nil, ErrInvalidRole
	}

	user := profile.User
	user.Username = strings.TrimSpace(input.Username)
	user.Email = input.Email
	user.Role = input.Role

	profile.Department = input.Department
	profile.Designation = input.Designation
	profile.Phone = input.Phone
	profile.JoinDate = input.JoinDate
	if input.Status != "" {
		profile.Status = input.Status
	}

	if err := s.userRepo.UpdateWithProfile(&user, profile); err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}
	profile.User = user
	return profile, nil
}

// List returns every employee profile with its user.
func (s *EmployeeService) List() ([]models.EmployeeProfile, error) {
	return s.userRepo.ListProfiles()
}

// Delete removes the employee's account. Assets, tasks and leave
// approvals referencing the user keep existing with the reference
// cleared.
func (s *EmployeeService) Delete(profileID uint64) error {
	profile, err := s.userRepo.FindProfileByID(profileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to find employee: %w", err)
	}
	return s.userRepo.Delete(profile.UserID)
}
