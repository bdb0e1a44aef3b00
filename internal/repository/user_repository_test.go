package repository

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/officehub/office-management-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	t.Cleanup(func() { sqlDB.Close() })
	return db, mock
}

func TestCreateWithProfileCommitsBothRows(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "users"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "employee_profiles"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	err := repo.CreateWithProfile(
		&models.User{Username: "ren", Email: "ren@example.com", PasswordHash: "h", Role: models.RoleEmployee},
		&models.EmployeeProfile{Department: "IT", Designation: "Engineer", JoinDate: time.Now()},
	)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWithProfileRollsBackOnProfileFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "users"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "employee_profiles"`)).
		WillReturnError(errors.New("duplicate key"))
	mock.ExpectRollback()

	err := repo.CreateWithProfile(
		&models.User{Username: "ren", Email: "ren@example.com", PasswordHash: "h", Role: models.RoleEmployee},
		&models.EmployeeProfile{Department: "IT", Designation: "Engineer", JoinDate: time.Now()},
	)
	require.ErrorIs(t, err, ErrCreateProfile)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWithSocialProfileRollsBackOnUserFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "users"`)).
		WillReturnError(errors.New("duplicate key"))
	mock.ExpectRollback()

	err := repo.CreateWithSocialProfile(
		&models.User{Username: "ren", Email: "ren@example.com", PasswordHash: "h", Role: models.RoleEmployee},
		&models.SocialProfile{Provider: "google", ProviderID: "g-1"},
	)
	require.ErrorIs(t, err, ErrCreateUser)
	require.NoError(t, mock.ExpectationsWereMet())
}
