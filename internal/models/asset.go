package models

import (
	"time"

	"gorm.io/gorm"
)

type AssetStatus string

const (
	AssetStatusInUse       AssetStatus = "in-use"
	AssetStatusMaintenance AssetStatus = "maintenance"
	AssetStatusRetired     AssetStatus = "retired"
	AssetStatusAvailable   AssetStatus = "available"
)

type Asset struct {
	ID           uint64         `gorm:"primarykey" json:"id"`
	Name         string         `gorm:"type:varchar(255);not null" json:"name"`
	SerialNumber *string        `gorm:"type:varchar(100);uniqueIndex" json:"serial_number"`
	Description  string         `gorm:"type:text" json:"description"`
	PurchaseDate *time.Time     `gorm:"type:date" json:"purchase_date"`
	Status       AssetStatus    `gorm:"type:varchar(20);not null;default:'available'" json:"status"`
	AssignedToID *uint64        `json:"assigned_to_id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	AssignedTo *User `gorm:"foreignKey:AssignedToID" json:"assigned_to,omitempty"`
}
