package repository

import (
	"github.com/officehub/office-management-api/internal/models"
	"github.com/officehub/office-management-api/internal/policy"
	"gorm.io/gorm"
)

// GormDocumentRepository is a GORM implementation of DocumentRepository
type GormDocumentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new DocumentRepository
func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &GormDocumentRepository{db: db}
}

func (r *GormDocumentRepository) Create(doc *models.Document) error {
	return r.db.Create(doc).Error
}

func (r *GormDocumentRepository) FindByID(id uint64) (*models.Document, error) {
	var doc models.Document
	if err := r.db.Preload("UploadedBy").First(&doc, id).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *GormDocumentRepository) Save(doc *models.Document) error {
	return r.db.Save(doc).Error
}

func (r *GormDocumentRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Document{}, id).Error
}

func (r *GormDocumentRepository) List(actor policy.Actor) ([]models.Document, error) {
	var docs []models.Document
	if err := r.db.Preload("UploadedBy").
		Scopes(policy.DocumentScope(actor)).
		Order("uploaded_at DESC").
		Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}
