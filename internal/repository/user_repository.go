package repository

import (
	"errors"
	"fmt"

	"github.com/officehub/office-management-api/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrCreateUser is returned when creating the user fails inside a
	// composite create transaction.
	ErrCreateUser = errors.New("user repository: create user failed")
	// ErrCreateProfile is returned when creating the employee profile
	// fails inside the composite create transaction.
	ErrCreateProfile = errors.New("user repository: create profile failed")
	// ErrCreateSocialProfile is returned when creating the social profile
	// fails inside the composite create transaction.
	ErrCreateSocialProfile = errors.New("user repository: create social profile failed")
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// CreateWithProfile creates the user and profile atomically.
func (r *GormUserRepository) CreateWithProfile(user *models.User, profile *models.EmployeeProfile) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateUser, err)
		}

		profile.UserID = user.ID
		if err := tx.Create(profile).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateProfile, err)
		}

		return nil
	})
}

// CreateWithSocialProfile creates the user and social profile atomically.
func (r *GormUserRepository) CreateWithSocialProfile(user *models.User, social *models.SocialProfile) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateUser, err)
		}

		social.UserID = user.ID
		if err := tx.Create(social).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateSocialProfile, err)
		}

		return nil
	})
}

func (r *GormUserRepository) UpdateWithProfile(user *models.User, profile *models.EmployeeProfile) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(user).Error; err != nil {
			return err
		}
		return tx.Save(profile).Error
	})
}

func (r *GormUserRepository) UpsertSocialProfile(social *models.SocialProfile) error {
	var existing models.SocialProfile
	err := r.db.Where("user_id = ?", social.UserID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(social).Error
	}
	if err != nil {
		return err
	}

	social.ID = existing.ID
	social.CreatedAt = existing.CreatedAt
	return r.db.Save(social).Error
}

func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.Preload("Profile").First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Preload("Profile").Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) UsernameExists(username string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (r *GormUserRepository) ListProfiles() ([]models.EmployeeProfile, error) {
	var profiles []models.EmployeeProfile
	if err := r.db.Preload("User").
		Joins("JOIN users ON users.id = employee_profiles.user_id").
		Order("users.username ASC").
		Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *GormUserRepository) FindProfileByID(id uint64) (*models.EmployeeProfile, error) {
	var profile models.EmployeeProfile
	if err := r.db.Preload("User").First(&profile, id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// Delete removes the user, profile and social profile. Dependent
// resources keep existing with their user reference cleared.
func (r *GormUserRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Asset{}).
			Where("assigned_to_id = ?", id).
			Update("assigned_to_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Task{}).
			Where("assigned_to_id = ?", id).
			Update("assigned_to_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.LeaveRequest{}).
			Where("approved_by_id = ?", id).
			Update("approved_by_id", nil).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", id).Delete(&models.SocialProfile{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.EmployeeProfile{}).Error; err != nil {
			return err
		}
		// Hard delete: a soft-deleted row would keep holding the unique
		// username and email, so the account could never be recreated.
		return tx.Unscoped().Delete(&models.User{}, id).Error
	})
}
