package repository

import (
	"github.com/officehub/office-management-api/internal/models"
	"github.com/officehub/office-management-api/internal/policy"
	"gorm.io/gorm"
)

// GormLeaveRepository is a GORM implementation of LeaveRepository
type GormLeaveRepository struct {
	db *gorm.DB
}

// NewLeaveRepository creates a new LeaveRepository
func NewLeaveRepository(db *gorm.DB) LeaveRepository {
	return &GormLeaveRepository{db: db}
}

func (r *GormLeaveRepository) Create(req *models.LeaveRequest) error {
	return r.db.Create(req).Error
}

func (r *GormLeaveRepository) FindByID(id uint64) (*models.LeaveRequest, error) {
	var req models.LeaveRequest
	if err := r.db.Preload("User").Preload("ApprovedBy").First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *GormLeaveRepository) Save(req *models.LeaveRequest) error {
	return r.db.Save(req).Error
}

func (r *GormLeaveRepository) List(actor policy.Actor) ([]models.LeaveRequest, error) {
	var rows []models.LeaveRequest
	if err := r.db.Preload("User").Preload("ApprovedBy").
		Scopes(policy.LeaveScope(actor)).
		Order("requested_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
