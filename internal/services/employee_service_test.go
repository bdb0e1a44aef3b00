package services

import (
	"testing"
	"time"

	"github.com/officehub/office-management-api/internal/models"
	"github.com/officehub/office-management-api/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupEmployeeTest(t *testing.T) (*gorm.DB, *EmployeeService) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.EmployeeProfile{},
		&models.SocialProfile{},
		&models.Asset{},
		&models.Project{},
		&models.Task{},
		&models.LeaveRequest{},
	))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return db, NewEmployeeService(repository.NewUserRepository(db))
}

func TestCreateEmployeeWithProfile(t *testing.T) {
	db, svc := setupEmployeeTest(t)

	user, err := svc.Create(EmployeeInput{
		Username:    "priya",
		Email:       "priya@example.com",
		Password:    "supersecret",
		Role:        models.RoleManager,
		Department:  "Finance",
		Designation: "Head of Finance",
		Phone:       "+1 555 0101",
		JoinDate:    time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.NotNil(t, user.Profile)
	require.Equal(t, models.ProfileStatusActive, user.Profile.Status)

	var profile models.EmployeeProfile
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&profile).Error)
	require.Equal(t, "Finance", profile.Department)
}

func TestCreateEmployeeValidation(t *testing.T) {
	_, svc := setupEmployeeTest(t)

	_, err := svc.Create(EmployeeInput{
		Username: "x",
		Email:    "x@example.com",
		Password: "supersecret",
		Role:     "Director",
	})
	require.ErrorIs(t, err, ErrInvalidRole)

	_, err = svc.Create(EmployeeInput{
		Username: "x",
		Email:    "x@example.com",
		Password: "short",
		Role:     models.RoleEmployee,
	})
	require.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestDeleteEmployeeClearsReferences(t *testing.T) {
	db, svc := setupEmployeeTest(t)

	user, err := svc.Create(EmployeeInput{
		Username: "leaving",
		Email:    "leaving@example.com",
		Password: "supersecret",
		Role:     models.RoleEmployee,
		JoinDate: time.Now(),
	})
	require.NoError(t, err)

	project := models.Project{Name: "Handover", StartDate: time.Now()}
	require.NoError(t, db.Create(&project).Error)

	asset := models.Asset{Name: "Laptop", Status: models.AssetStatusInUse, AssignedToID: &user.ID}
	task := models.Task{ProjectID: project.ID, Title: "Wrap up", Status: models.TaskStatusTodo, AssignedToID: &user.ID}
	leave := models.LeaveRequest{
		UserID:       99,
		StartDate:    time.Now(),
		EndDate:      time.Now(),
		Reason:       "PTO",
		Status:       models.LeaveStatusApproved,
		ApprovedByID: &user.ID,
	}
	require.NoError(t, db.Create(&asset).Error)
	require.NoError(t, db.Create(&task).Error)
	require.NoError(t, db.Create(&leave).Error)

	require.NoError(t, svc.Delete(user.Profile.ID))

	// The account is gone but everything it touched survives, unassigned.
	var userCount int64
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", user.ID).Count(&userCount).Error)
	require.Zero(t, userCount)

	require.NoError(t, db.First(&asset, asset.ID).Error)
	require.Nil(t, asset.AssignedToID)

	require.NoError(t, db.First(&task, task.ID).Error)
	require.Nil(t, task.AssignedToID)

	require.NoError(t, db.First(&leave, leave.ID).Error)
	require.Nil(t, leave.ApprovedByID)
	require.Equal(t, models.LeaveStatusApproved, leave.Status)
}

func TestDeletedEmployeeUsernameCanBeReused(t *testing.T) {
	_, svc := setupEmployeeTest(t)

	first, err := svc.Create(EmployeeInput{
		Username: "rehire",
		Email:    "rehire@example.com",
		Password: "supersecret",
		Role:     models.RoleEmployee,
		JoinDate: time.Now(),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(first.Profile.ID))

	// The departed account must release its unique username and email,
	// so the same person can be onboarded again later.
	second, err := svc.Create(EmployeeInput{
		Username: "rehire",
		Email:    "rehire@example.com",
		Password: "supersecret",
		Role:     models.RoleEmployee,
		JoinDate: time.Now(),
	})
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)
}

func TestDeleteMissingEmployee(t *testing.T) {
	_, svc := setupEmployeeTest(t)
	require.ErrorIs(t, svc.Delete(404), ErrEmployeeNotFound)
}
