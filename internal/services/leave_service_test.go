package services

import (
	"testing"
	"time"

	"github.com/officehub/office-management-api/internal/models"
	"github.com/officehub/office-management-api/internal/policy"
	"github.com/officehub/office-management-api/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupLeaveTest(t *testing.T) *LeaveService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.LeaveRequest{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return NewLeaveService(repository.NewLeaveRepository(db))
}

func TestLeaveRequestDateValidation(t *testing.T) {
	svc := setupLeaveTest(t)
	employee := policy.Actor{UserID: 1, Role: models.RoleEmployee}
	today := time.Date(2024, 6, 10, 8, 30, 0, 0, time.UTC)

	_, err := svc.Request(employee, RequestInput{
		StartDate: today.AddDate(0, 0, -1),
		EndDate:   today,
		Reason:    "Vacation",
	}, today)
	require.ErrorIs(t, err, ErrLeaveStartInPast)

	_, err = svc.Request(employee, RequestInput{
		StartDate: today.AddDate(0, 0, 3),
		EndDate:   today.AddDate(0, 0, 1),
		Reason:    "Vacation",
	}, today)
	require.ErrorIs(t, err, ErrLeaveEndBeforeStart)

	// A single-day request starting today is valid.
	req, err := svc.Request(employee, RequestInput{
		StartDate: today,
		EndDate:   today,
		Reason:    "Dentist",
	}, today)
	require.NoError(t, err)
	require.Equal(t, models.LeaveStatusPending, req.Status)
	require.Nil(t, req.ApprovedByID)
}

func TestLeaveRequestRespectsLocalDay(t *testing.T) {
	svc := setupLeaveTest(t)
	employee := policy.Actor{UserID: 1, Role: models.RoleEmployee}

	// East of UTC, a morning start on the current local day must not be
	// mistaken for yesterday when the request is filed in the evening.
	sydney := time.FixedZone("AEST", 10*3600)
	today := time.Date(2024, 6, 10, 20, 0, 0, 0, sydney)
	start := time.Date(2024, 6, 10, 8, 0, 0, 0, sydney)

	req, err := svc.Request(employee, RequestInput{
		StartDate: start,
		EndDate:   start,
		Reason:    "Half day",
	}, today)
	require.NoError(t, err)
	require.Equal(t, models.LeaveStatusPending, req.Status)
}

func TestLeaveApprovalStampsApprover(t *testing.T) {
	svc := setupLeaveTest(t)
	employee := policy.Actor{UserID: 1, Role: models.RoleEmployee}
	manager := policy.Actor{UserID: 2, Role: models.RoleManager}
	today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	req, err := svc.Request(employee, RequestInput{
		StartDate: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC),
		Reason:    "Medical",
	}, today)
	require.NoError(t, err)

	decidedAt := time.Date(2024, 6, 2, 14, 0, 0, 0, time.UTC)
	decided, err := svc.Decide(manager, req.ID, models.LeaveStatusApproved, "", decidedAt)
	require.NoError(t, err)
	require.Equal(t, models.LeaveStatusApproved, decided.Status)
	require.NotNil(t, decided.ApprovedByID)
	require.Equal(t, manager.UserID, *decided.ApprovedByID)
	require.NotNil(t, decided.ApprovalDate)
	require.True(t, decided.ApprovalDate.Equal(decidedAt))
}

func TestLeaveRejectionKeepsReason(t *testing.T) {
	svc := setupLeaveTest(t)
	employee := policy.Actor{UserID: 1, Role: models.RoleEmployee}
	admin := policy.Actor{UserID: 3, Role: models.RoleAdmin}
	today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	req, err := svc.Request(employee, RequestInput{
		StartDate: today.AddDate(0, 0, 5),
		EndDate:   today.AddDate(0, 0, 6),
		Reason:    "Conference",
	}, today)
	require.NoError(t, err)

	decided, err := svc.Decide(admin, req.ID, models.LeaveStatusRejected, "Team is short-staffed", today)
	require.NoError(t, err)
	require.Equal(t, models.LeaveStatusRejected, decided.Status)
	require.Equal(t, "Team is short-staffed", decided.RejectReason)
}

func TestLeaveDecisionIsTerminal(t *testing.T) {
	svc := setupLeaveTest(t)
	employee := policy.Actor{UserID: 1, Role: models.RoleEmployee}
	manager := policy.Actor{UserID: 2, Role: models.RoleManager}
	admin := policy.Actor{UserID: 3, Role: models.RoleAdmin}
	today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	req, err := svc.Request(employee, RequestInput{
		StartDate: today.AddDate(0, 0, 5),
		EndDate:   today.AddDate(0, 0, 6),
		Reason:    "Vacation",
	}, today)
	require.NoError(t, err)

	first, err := svc.Decide(manager, req.ID, models.LeaveStatusApproved, "", today)
	require.NoError(t, err)

	// A second decision, even by another role, leaves the record alone.
	second, err := svc.Decide(admin, req.ID, models.LeaveStatusRejected, "changed my mind", today.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Equal(t, models.LeaveStatusApproved, second.Status)
	require.Equal(t, *first.ApprovedByID, *second.ApprovedByID)
	require.True(t, first.ApprovalDate.Equal(*second.ApprovalDate))
	require.Empty(t, second.RejectReason)
}

func TestLeaveDecideValidation(t *testing.T) {
	svc := setupLeaveTest(t)
	manager := policy.Actor{UserID: 2, Role: models.RoleManager}
	now := time.Now()

	_, err := svc.Decide(manager, 1, models.LeaveStatusPending, "", now)
	require.ErrorIs(t, err, ErrInvalidLeaveStatus)

	_, err = svc.Decide(manager, 999, models.LeaveStatusApproved, "", now)
	require.ErrorIs(t, err, ErrLeaveNotFound)
}
