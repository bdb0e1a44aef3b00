package models

import "time"

// SocialProfile links a local account to an external identity provider.
// Tokens are stored as received; they are never used for local auth.
type SocialProfile struct {
	ID            uint64    `gorm:"primarykey" json:"id"`
	UserID        uint64    `gorm:"uniqueIndex;not null" json:"user_id"`
	Provider      string    `gorm:"type:varchar(50);not null" json:"provider"`
	ProviderID    string    `gorm:"type:varchar(255);not null" json:"provider_id"`
	AccessToken   string    `gorm:"type:varchar(500)" json:"-"`
	RefreshToken  string    `gorm:"type:varchar(500)" json:"-"`
	AvatarURL     string    `gorm:"type:varchar(500)" json:"avatar_url"`
	LastLoginAt   time.Time `json:"last_login_at"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
