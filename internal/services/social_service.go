package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/officehub/office-management-api/internal/models"
	"github.com/officehub/office-management-api/internal/oauth"
	"github.com/officehub/office-management-api/internal/repository"
	"github.com/officehub/office-management-api/internal/utils"
	"gorm.io/gorm"
)

var ErrMissingEmail = errors.New("social identity has no email address")

// SocialService is the lookup-or-create bridge between a verified
// external identity and a local account.
type SocialService struct {
	userRepo repository.UserRepository
}

// NewSocialService creates a new SocialService.
func NewSocialService(userRepo repository.UserRepository) *SocialService {
	return &SocialService{
		userRepo: userRepo,
	}
}

// unusablePassword returns a hash-shaped value bcrypt can never verify,
// so social-only accounts cannot log in with credentials.
func unusablePassword() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return "!" + hex.EncodeToString(buf)
}

// HandleLogin resolves an external identity to a local account. An
// existing account (matched by email) gets its social profile refreshed;
// otherwise a new account is created with a collision-free username and
// no usable password. Nothing persists when the identity is unusable.
func (s *SocialService) HandleLogin(identity oauth.ExternalIdentity, now time.Time) (*models.User, error) {
	if identity.Email == "" {
		return nil, ErrMissingEmail
	}

	social := models.SocialProfile{
		Provider:     identity.Provider,
		ProviderID:   identity.ProviderID,
		AccessToken:  identity.AccessToken,
		RefreshToken: identity.RefreshToken,
		AvatarURL:    identity.AvatarURL,
		LastLoginAt:  now,
	}

	user, err := s.userRepo.FindByEmail(identity.Email)
	if err == nil {
		social.UserID = user.ID
		if err := s.userRepo.UpsertSocialProfile(&social); err != nil {
			return nil, fmt.Errorf("failed to update social profile: %w", err)
		}
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	username, err := s.allocateUsername(identity.Email)
	if err != nil {
		return nil, err
	}

	newUser := &models.User{
		Username:     username,
		Email:        identity.Email,
		PasswordHash: unusablePassword(),
		Role:         models.RoleEmployee,
	}

	if err := s.userRepo.CreateWithSocialProfile(newUser, &social); err != nil {
		return nil, err
	}
	return newUser, nil
}

// allocateUsername walks numeric suffixes until a free username is found.
func (s *SocialService) allocateUsername(email string) (string, error) {
	for attempt := 0; ; attempt++ {
		candidate := utils.DeriveUsername(email, attempt)
		taken, err := s.userRepo.UsernameExists(candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check username: %w", err)
		}
		if !taken {
			return candidate, nil
		}
	}
}
