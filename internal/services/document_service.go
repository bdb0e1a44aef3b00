package services

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/officehub/office-management-api/internal/models"
	"github.com/officehub/office-management-api/internal/policy"
	"github.com/officehub/office-management-api/internal/repository"
	"github.com/officehub/office-management-api/internal/storage"
	"gorm.io/gorm"
)

// ErrDocumentNotFound covers both a missing record and a denied read:
// a caller without permission cannot learn that the document exists.
var ErrDocumentNotFound = errors.New("document not found")

// DocumentService keeps the metadata record and the stored blob in step.
type DocumentService struct {
	documentRepo repository.DocumentRepository
	store        storage.Store
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(documentRepo repository.DocumentRepository, store storage.Store) *DocumentService {
	return &DocumentService{
		documentRepo: documentRepo,
		store:        store,
	}
}

// UploadInput holds the metadata for a new document.
type UploadInput struct {
	Title       string
	FileName    string
	Department  string
	AccessLevel models.DocumentAccessLevel
}

// Upload stores the blob first, then the record; a failed record create
// removes the orphaned blob.
func (s *DocumentService) Upload(actor policy.Actor, input UploadInput, content io.Reader) (*models.Document, error) {
	storedName, err := s.store.Save(filepath.Ext(input.FileName), content)
	if err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}

	doc := &models.Document{
		Title:        input.Title,
		StoredName:   storedName,
		FileName:     input.FileName,
		Department:   input.Department,
		AccessLevel:  input.AccessLevel,
		UploadedByID: actor.UserID,
	}

	if err := s.documentRepo.Create(doc); err != nil {
		_ = s.store.Remove(storedName)
		return nil, fmt.Errorf("failed to create document: %w", err)
	}
	return doc, nil
}

// List returns the documents visible to the actor.
func (s *DocumentService) List(actor policy.Actor) ([]models.Document, error) {
	return s.documentRepo.List(actor)
}

// Get returns a single document the actor may see, or not-found.
func (s *DocumentService) Get(actor policy.Actor, id uint64) (*models.Document, error) {
	doc, err := s.documentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to find document: %w", err)
	}
	if !policy.CanViewDocument(actor, *doc) {
		return nil, ErrDocumentNotFound
	}
	return doc, nil
}

// UpdateInput holds the editable metadata fields.
type UpdateInput struct {
	Title       string
	Department  string
	AccessLevel models.DocumentAccessLevel
}

// Update edits document metadata.
func (s *DocumentService) Update(doc *models.Document, input UpdateInput) error {
	doc.Title = input.Title
	doc.Department = input.Department
	doc.AccessLevel = input.AccessLevel
	return s.documentRepo.Save(doc)
}

// Delete removes the stored file before the record, per the record
// lifecycle: file and metadata leave together.
func (s *DocumentService) Delete(id uint64) error {
	doc, err := s.documentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDocumentNotFound
		}
		return fmt.Errorf("failed to find document: %w", err)
	}

	if err := s.store.Remove(doc.StoredName); err != nil {
		return fmt.Errorf("failed to remove stored file: %w", err)
	}
	return s.documentRepo.Delete(doc.ID)
}

// Download resolves the blob path for a document the actor may read.
// Denied access and a missing blob are both reported as not-found.
func (s *DocumentService) Download(actor policy.Actor, id uint64) (path, fileName string, err error) {
	doc, err := s.Get(actor, id)
	if err != nil {
		return "", "", err
	}

	path, err = s.store.Path(doc.StoredName)
	if err != nil {
		return "", "", ErrDocumentNotFound
	}
	return path, doc.FileName, nil
}
