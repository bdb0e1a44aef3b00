package models

import "time"

type DocumentAccessLevel string

const (
	AccessPublic  DocumentAccessLevel = "public"
	AccessPrivate DocumentAccessLevel = "private"
)

// Document is the metadata record for one uploaded file. StoredName is
// the opaque name inside the blob store; FileName is the name the file
// was uploaded (and is downloaded) as.
type Document struct {
	ID           uint64              `gorm:"primarykey" json:"id"`
	Title        string              `gorm:"type:varchar(255);not null" json:"title"`
	StoredName   string              `gorm:"type:varchar(255);not null" json:"-"`
	FileName     string              `gorm:"type:varchar(255);not null" json:"file_name"`
	Department   string              `gorm:"type:varchar(50);not null;default:'General'" json:"department"`
	AccessLevel  DocumentAccessLevel `gorm:"type:varchar(10);not null;default:'public'" json:"access_level"`
	UploadedByID uint64              `gorm:"not null" json:"uploaded_by_id"`
	UploadedAt   time.Time           `gorm:"autoCreateTime" json:"uploaded_at"`

	UploadedBy User `gorm:"foreignKey:UploadedByID" json:"uploaded_by,omitempty"`
}
