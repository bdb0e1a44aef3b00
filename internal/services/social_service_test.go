package services

import (
	"testing"
	"time"

	"github.com/officehub/office-management-api/internal/models"
	"github.com/officehub/office-management-api/internal/oauth"
	"github.com/officehub/office-management-api/internal/repository"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSocialTest(t *testing.T) (*gorm.DB, *SocialService) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.EmployeeProfile{},
		&models.SocialProfile{},
	))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return db, NewSocialService(repository.NewUserRepository(db))
}

func TestSocialLoginCreatesAccount(t *testing.T) {
	db, svc := setupSocialTest(t)

	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	user, err := svc.HandleLogin(oauth.ExternalIdentity{
		Provider:    "google",
		ProviderID:  "google-123",
		Email:       "Jane.Doe@example.com",
		Name:        "Jane Doe",
		AccessToken: "tok-1",
	}, now)
	require.NoError(t, err)

	require.Equal(t, "jane.doe", user.Username)
	require.Equal(t, models.RoleEmployee, user.Role)

	// The stored password can never verify as a credential.
	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(user.PasswordHash))
	require.Error(t, err)

	var social models.SocialProfile
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&social).Error)
	require.Equal(t, "google", social.Provider)
	require.Equal(t, "google-123", social.ProviderID)
}

func TestSocialLoginResolvesUsernameCollision(t *testing.T) {
	db, svc := setupSocialTest(t)

	require.NoError(t, db.Create(&models.User{
		Username:     "jane.doe",
		Email:        "jane.doe@elsewhere.com",
		PasswordHash: "x",
		Role:         models.RoleEmployee,
	}).Error)

	user, err := svc.HandleLogin(oauth.ExternalIdentity{
		Provider:   "github",
		ProviderID: "gh-9",
		Email:      "jane.doe@example.com",
	}, time.Now())
	require.NoError(t, err)
	require.Equal(t, "jane.doe1", user.Username)
}

func TestSocialLoginReusesExistingAccount(t *testing.T) {
	db, svc := setupSocialTest(t)

	first, err := svc.HandleLogin(oauth.ExternalIdentity{
		Provider:    "google",
		ProviderID:  "google-123",
		Email:       "sam@example.com",
		AccessToken: "tok-1",
	}, time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	later := time.Date(2024, 6, 11, 8, 0, 0, 0, time.UTC)
	second, err := svc.HandleLogin(oauth.ExternalIdentity{
		Provider:    "google",
		ProviderID:  "google-123",
		Email:       "sam@example.com",
		AccessToken: "tok-2",
	}, later)
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)

	var userCount, socialCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.SocialProfile{}).Count(&socialCount).Error)
	require.EqualValues(t, 1, userCount)
	require.EqualValues(t, 1, socialCount)

	var social models.SocialProfile
	require.NoError(t, db.Where("user_id = ?", first.ID).First(&social).Error)
	require.Equal(t, "tok-2", social.AccessToken)
	require.True(t, social.LastLoginAt.Equal(later))
}

func TestSocialLoginWithoutEmailPersistsNothing(t *testing.T) {
	db, svc := setupSocialTest(t)

	_, err := svc.HandleLogin(oauth.ExternalIdentity{
		Provider:   "facebook",
		ProviderID: "fb-1",
	}, time.Now())
	require.ErrorIs(t, err, ErrMissingEmail)

	var userCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.Zero(t, userCount)
}
