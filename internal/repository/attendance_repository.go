package repository

import (
	"errors"
	"time"

	"github.com/officehub/office-management-api/internal/models"
	"github.com/officehub/office-management-api/internal/policy"
	"github.com/officehub/office-management-api/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAttendanceRepository is a GORM implementation of AttendanceRepository
type GormAttendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new AttendanceRepository
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &GormAttendanceRepository{db: db}
}

// GetOrCreateForDate relies on the (user_id, date) unique index to stay
// single-row under concurrent clock-ins: the insert does nothing on
// conflict and the row is re-read afterwards.
func (r *GormAttendanceRepository) GetOrCreateForDate(userID uint64, date time.Time) (*models.Attendance, error) {
	day := utils.DateOnly(date)

	var att models.Attendance
	err := r.db.Where("user_id = ? AND date = ?", userID, day).First(&att).Error
	if err == nil {
		return &att, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	fresh := models.Attendance{UserID: userID, Date: day}
	if err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&fresh).Error; err != nil {
		return nil, err
	}

	if err := r.db.Where("user_id = ? AND date = ?", userID, day).First(&att).Error; err != nil {
		return nil, err
	}
	return &att, nil
}

func (r *GormAttendanceRepository) Save(att *models.Attendance) error {
	return r.db.Save(att).Error
}

func (r *GormAttendanceRepository) List(actor policy.Actor) ([]models.Attendance, error) {
	var rows []models.Attendance
	if err := r.db.Preload("User").
		Scopes(policy.AttendanceScope(actor)).
		Order("date DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
