package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/officehub/office-management-api/internal/errors"
	"github.com/officehub/office-management-api/internal/middleware"
	"github.com/officehub/office-management-api/internal/models"
	"github.com/officehub/office-management-api/internal/policy"
	"github.com/officehub/office-management-api/internal/services"
)

type DocumentHandler struct {
	documentService *services.DocumentService
}

func NewDocumentHandler(documentService *services.DocumentService) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
	}
}

func validAccessLevel(l models.DocumentAccessLevel) bool {
	return l == models.AccessPublic || l == models.AccessPrivate
}

// List returns the documents visible to the actor.
func (h *DocumentHandler) List(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	docs, err := h.documentService.List(actor)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch documents")
		return
	}

	c.JSON(http.StatusOK, gin.H{"documents": docs})
}

// Upload accepts a multipart form with a "file" part plus metadata
// fields. Manager/Admin only (route-gated).
func (h *DocumentHandler) Upload(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		apierrors.BadRequest(c, "A file is required")
		return
	}

	title := c.PostForm("title")
	if title == "" {
		apierrors.BadRequest(c, "Title is required")
		return
	}
	accessLevel := models.DocumentAccessLevel(c.PostForm("access_level"))
	if accessLevel == "" {
		accessLevel = models.AccessPrivate
	}
	if !validAccessLevel(accessLevel) {
		apierrors.BadRequest(c, "Invalid access level")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		apierrors.InternalError(c, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	doc, err := h.documentService.Upload(actor, services.UploadInput{
		Title:       title,
		FileName:    fileHeader.Filename,
		Department:  c.PostForm("department"),
		AccessLevel: accessLevel,
	}, file)
	if err != nil {
		apierrors.InternalError(c, "Failed to upload document")
		return
	}

	c.JSON(http.StatusCreated, doc)
}

// Update edits document metadata; only the uploader or an admin may edit
// a specific record. A denied edit reads as not-found.
func (h *DocumentHandler) Update(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	id, ok := parseID(c)
	if !ok {
		return
	}

	doc, err := h.documentService.Get(actor, id)
	if err != nil {
		apierrors.NotFound(c, "Document not found")
		return
	}
	if !policy.CanEditDocument(actor, *doc) {
		apierrors.NotFound(c, "Document not found")
		return
	}

	type UpdateRequest struct {
		Title       string                     `json:"title" binding:"required"`
		Department  string                     `json:"department"`
		AccessLevel models.DocumentAccessLevel `json:"access_level" binding:"required"`
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}
	if !validAccessLevel(req.AccessLevel) {
		apierrors.BadRequest(c, "Invalid access level")
		return
	}

	if err := h.documentService.Update(doc, services.UpdateInput{
		Title:       req.Title,
		Department:  req.Department,
		AccessLevel: req.AccessLevel,
	}); err != nil {
		apierrors.InternalError(c, "Failed to update document")
		return
	}

	c.JSON(http.StatusOK, doc)
}

// Delete removes the document and its stored file. Admin only
// (route-gated).
func (h *DocumentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.documentService.Delete(id); err != nil {
		if errors.Is(err, services.ErrDocumentNotFound) {
			apierrors.NotFound(c, "Document not found")
			return
		}
		apierrors.InternalError(c, "Failed to delete document")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Document deleted successfully"})
}

// Download streams the stored file as an attachment under its original
// name. Denied access reads as not-found.
func (h *DocumentHandler) Download(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	id, ok := parseID(c)
	if !ok {
		return
	}

	path, fileName, err := h.documentService.Download(actor, id)
	if err != nil {
		apierrors.NotFound(c, "Document not found")
		return
	}

	c.FileAttachment(path, fileName)
}
