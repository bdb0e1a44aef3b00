package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	apierrors "github.com/officehub/office-management-api/internal/errors"
	"github.com/officehub/office-management-api/internal/oauth"
	"github.com/officehub/office-management-api/internal/services"
)

const sessionKeyOAuthState = "oauth_state"

// SocialHandler drives the OAuth login and callback endpoints for the
// configured external identity providers.
type SocialHandler struct {
	registry      *oauth.Registry
	socialService *services.SocialService
}

// NewSocialHandler creates a new SocialHandler.
func NewSocialHandler(registry *oauth.Registry, socialService *services.SocialService) *SocialHandler {
	return &SocialHandler{
		registry:      registry,
		socialService: socialService,
	}
}

// Login redirects the browser to the provider's consent page.
func (h *SocialHandler) Login(c *gin.Context) {
	provider, err := h.registry.Get(c.Param("provider"))
	if err != nil {
		apierrors.NotFound(c, "Unknown provider")
		return
	}

	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		apierrors.InternalError(c, "")
		return
	}
	state := hex.EncodeToString(buf)

	session := sessions.Default(c)
	session.Set(sessionKeyOAuthState, state)
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to save session")
		return
	}

	c.Redirect(http.StatusFound, provider.AuthCodeURL(state))
}

// Callback completes the code flow: exchange, userinfo, then
// lookup-or-create. Any provider failure surfaces before local state is
// touched, so no partial account is ever committed.
func (h *SocialHandler) Callback(c *gin.Context) {
	provider, err := h.registry.Get(c.Param("provider"))
	if err != nil {
		apierrors.NotFound(c, "Unknown provider")
		return
	}

	if errParam := c.Query("error"); errParam != "" {
		apierrors.BadRequest(c, "Login failed: "+errParam)
		return
	}

	code := c.Query("code")
	if code == "" {
		apierrors.BadRequest(c, "Login failed: no authorization code")
		return
	}

	session := sessions.Default(c)
	expectedState, _ := session.Get(sessionKeyOAuthState).(string)
	session.Delete(sessionKeyOAuthState)
	_ = session.Save()

	if expectedState == "" || c.Query("state") != expectedState {
		apierrors.BadRequest(c, "Login failed: state mismatch")
		return
	}

	identity, err := provider.Exchange(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, oauth.ErrNoEmail) {
			apierrors.BadRequest(c, "Login failed: the provider did not supply an email address")
			return
		}
		apierrors.BadRequest(c, "Login failed: "+err.Error())
		return
	}

	user, err := h.socialService.HandleLogin(identity, time.Now())
	if err != nil {
		if errors.Is(err, services.ErrMissingEmail) {
			apierrors.BadRequest(c, "Login failed: the provider did not supply an email address")
			return
		}
		apierrors.InternalError(c, "Failed to complete login")
		return
	}

	if err := startSession(c, user); err != nil {
		apierrors.InternalError(c, "Failed to save session")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Logged in via " + provider.Name,
		"username": user.Username,
	})
}
