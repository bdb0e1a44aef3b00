// Package oauth wraps the external identity providers behind one
// ExternalIdentity shape so the social login service never sees
// provider-specific payloads.
package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/facebook"
	"golang.org/x/oauth2/github"
	"golang.org/x/oauth2/google"

	"github.com/officehub/office-management-api/internal/config"
)

var (
	ErrUnknownProvider = errors.New("unknown oauth provider")
	ErrNoEmail         = errors.New("provider did not supply an email address")
)

// ExternalIdentity is the normalized result of a completed OAuth flow.
type ExternalIdentity struct {
	Provider     string
	ProviderID   string
	Email        string
	Username     string
	Name         string
	AvatarURL    string
	AccessToken  string
	RefreshToken string
}

// Provider drives one external identity provider's code flow.
type Provider struct {
	Name   string
	Config *oauth2.Config

	fetchIdentity func(ctx context.Context, client *http.Client) (ExternalIdentity, error)
}

// Registry holds the configured providers keyed by name.
type Registry struct {
	providers map[string]*Provider
}

func NewRegistry(cfg *config.Config) *Registry {
	r := &Registry{providers: make(map[string]*Provider)}

	r.providers["google"] = &Provider{
		Name: "google",
		Config: &oauth2.Config{
			ClientID:     cfg.GoogleOAuth.ClientID,
			ClientSecret: cfg.GoogleOAuth.ClientSecret,
			RedirectURL:  cfg.GoogleOAuth.RedirectURL,
			Scopes:       []string{"openid", "profile", "email"},
			Endpoint:     google.Endpoint,
		},
		fetchIdentity: fetchGoogleIdentity,
	}
	r.providers["github"] = &Provider{
		Name: "github",
		Config: &oauth2.Config{
			ClientID:     cfg.GitHubOAuth.ClientID,
			ClientSecret: cfg.GitHubOAuth.ClientSecret,
			RedirectURL:  cfg.GitHubOAuth.RedirectURL,
			Scopes:       []string{"user:email"},
			Endpoint:     github.Endpoint,
		},
		fetchIdentity: fetchGitHubIdentity,
	}
	r.providers["facebook"] = &Provider{
		Name: "facebook",
		Config: &oauth2.Config{
			ClientID:     cfg.FacebookOAuth.ClientID,
			ClientSecret: cfg.FacebookOAuth.ClientSecret,
			RedirectURL:  cfg.FacebookOAuth.RedirectURL,
			Scopes:       []string{"email", "public_profile"},
			Endpoint:     facebook.Endpoint,
		},
		fetchIdentity: fetchFacebookIdentity,
	}

	return r
}

// Get returns the named provider.
func (r *Registry) Get(name string) (*Provider, error) {
	p, ok := r.providers[name]
	if !ok {
		return nil, ErrUnknownProvider
	}
	return p, nil
}

// AuthCodeURL builds the provider's consent page URL.
func (p *Provider) AuthCodeURL(state string) string {
	return p.Config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// Exchange trades the authorization code for tokens and resolves the
// external identity. Any transport or provider error surfaces to the
// caller before local account state is touched.
func (p *Provider) Exchange(ctx context.Context, code string) (ExternalIdentity, error) {
	token, err := p.Config.Exchange(ctx, code)
	if err != nil {
		return ExternalIdentity{}, fmt.Errorf("token exchange failed: %w", err)
	}

	identity, err := p.fetchIdentity(ctx, p.Config.Client(ctx, token))
	if err != nil {
		return ExternalIdentity{}, err
	}

	identity.Provider = p.Name
	identity.AccessToken = token.AccessToken
	identity.RefreshToken = token.RefreshToken
	return identity, nil
}

func getJSON(ctx context.Context, client *http.Client, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("userinfo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("userinfo request returned status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func fetchGoogleIdentity(ctx context.Context, client *http.Client) (ExternalIdentity, error) {
	var info struct {
		Sub     string `json:"sub"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := getJSON(ctx, client, "https://www.googleapis.com/oauth2/v3/userinfo", &info); err != nil {
		return ExternalIdentity{}, err
	}
	if info.Email == "" {
		return ExternalIdentity{}, ErrNoEmail
	}
	return ExternalIdentity{
		ProviderID: info.Sub,
		Email:      info.Email,
		Username:   info.Email,
		Name:       info.Name,
		AvatarURL:  info.Picture,
	}, nil
}

func fetchGitHubIdentity(ctx context.Context, client *http.Client) (ExternalIdentity, error) {
	var info struct {
		ID        int64  `json:"id"`
		Login     string `json:"login"`
		Name      string `json:"name"`
		Email     string `json:"email"`
		AvatarURL string `json:"avatar_url"`
	}
	if err := getJSON(ctx, client, "https://api.github.com/user", &info); err != nil {
		return ExternalIdentity{}, err
	}

	email := info.Email
	if email == "" {
		// The profile email is often hidden; fall back to the primary
		// verified address from the emails endpoint.
		var emails []struct {
			Email    string `json:"email"`
			Primary  bool   `json:"primary"`
			Verified bool   `json:"verified"`
		}
		if err := getJSON(ctx, client, "https://api.github.com/user/emails", &emails); err != nil {
			return ExternalIdentity{}, err
		}
		for _, e := range emails {
			if e.Primary && e.Verified {
				email = e.Email
				break
			}
		}
	}
	if email == "" {
		return ExternalIdentity{}, ErrNoEmail
	}

	return ExternalIdentity{
		ProviderID: fmt.Sprintf("%d", info.ID),
		Email:      email,
		Username:   info.Login,
		Name:       info.Name,
		AvatarURL:  info.AvatarURL,
	}, nil
}

func fetchFacebookIdentity(ctx context.Context, client *http.Client) (ExternalIdentity, error) {
	var info struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := getJSON(ctx, client, "https://graph.facebook.com/v19.0/me?fields=id,name,email", &info); err != nil {
		return ExternalIdentity{}, err
	}
	if info.Email == "" {
		return ExternalIdentity{}, ErrNoEmail
	}
	return ExternalIdentity{
		ProviderID: info.ID,
		Email:      info.Email,
		Username:   info.Email,
		Name:       info.Name,
	}, nil
}
