// Package session owns the authenticated-user lifecycle: login, register,
// logout, profile updates, and restoring a persisted session on startup.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/evomarket/evomarket-go/api"
	"github.com/evomarket/evomarket-go/model"
	"github.com/evomarket/evomarket-go/store"
)

// AuthError is a login or registration rejection. The session state is
// unchanged when one is returned.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// Manager holds the single session variable: anonymous (nil user) or
// authenticated.
type Manager struct {
	api     *api.Client
	backend store.Backend

	mu   sync.Mutex
	user *model.User
}

// NewManager creates a session manager. The backend must be the same one
// the API client reads tokens from.
func NewManager(client *api.Client, backend store.Backend) *Manager {
	return &Manager{api: client, backend: backend}
}

// authPayload tolerates the token field shapes the API has used:
// nested tokens, flat access_token, or a bare token.
type authPayload struct {
	User   *model.User `json:"user"`
	Tokens *struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	} `json:"tokens"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Token        string `json:"token"`
}

func (p *authPayload) access() string {
	if p.Tokens != nil && p.Tokens.Access != "" {
		return p.Tokens.Access
	}
	if p.AccessToken != "" {
		return p.AccessToken
	}
	return p.Token
}

func (p *authPayload) refresh() string {
	if p.Tokens != nil && p.Tokens.Refresh != "" {
		return p.Tokens.Refresh
	}
	return p.RefreshToken
}

// Login authenticates with email and password. On success the profile and
// tokens are persisted; on failure the session stays as it was.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	body := map[string]string{"email": email, "password": password}
	resp, err := m.api.Plain(ctx, http.MethodPost, api.PathLogin, body)
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	if !resp.OK() {
		return &AuthError{Message: resp.Message("login failed")}
	}
	return m.establish(ctx, resp)
}

// Register creates an account. The display name is split into first and
// last name at the first space; the API additionally wants the password
// mirrored and terms acceptance flagged.
func (m *Manager) Register(ctx context.Context, name, email, password string) error {
	first, last, _ := strings.Cut(name, " ")
	body := map[string]any{
		"username":         name,
		"first_name":       first,
		"last_name":        last,
		"email":            email,
		"password":         password,
		"password_confirm": password,
		"terms_accepted":   true,
	}

	resp, err := m.api.Plain(ctx, http.MethodPost, api.PathRegister, body)
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}
	if !resp.OK() {
		return &AuthError{Message: resp.Message("registration failed")}
	}
	return m.establish(ctx, resp)
}

// establish validates an auth response and transitions to authenticated.
func (m *Manager) establish(ctx context.Context, resp *api.Response) error {
	var payload authPayload
	if err := resp.Decode(&payload); err != nil {
		return &AuthError{Message: "invalid response from server"}
	}
	if payload.User == nil || payload.access() == "" {
		return &AuthError{Message: "invalid response from server"}
	}

	if err := store.SaveUser(ctx, m.backend, *payload.User); err != nil {
		return err
	}
	tokens := model.Tokens{Access: payload.access(), Refresh: payload.refresh()}
	if err := store.SaveTokens(ctx, m.backend, tokens); err != nil {
		return err
	}

	m.mu.Lock()
	m.user = payload.User
	m.mu.Unlock()

	slog.Info("session established", "user", payload.User.Email)
	return nil
}

// Logout ends the session. The remote invalidation call is best-effort;
// local state is always purged, so a network failure never blocks logout.
func (m *Manager) Logout(ctx context.Context) error {
	tokens, err := store.GetTokens(ctx, m.backend)
	if err == nil && tokens != nil && tokens.Access != "" {
		body := map[string]string{"refresh": tokens.Refresh}
		if resp, err := m.api.JSONOnce(ctx, http.MethodPost, api.PathLogout, body); err != nil {
			slog.Warn("remote logout failed", "error", err)
		} else if !resp.OK() {
			slog.Warn("remote logout rejected", "status", resp.Status)
		}
	}

	m.mu.Lock()
	m.user = nil
	m.mu.Unlock()

	if err := store.PurgeAll(ctx, m.backend); err != nil {
		return err
	}
	slog.Info("logged out")
	return nil
}

// UpdateUser applies a partial profile update. A successful remote update
// merges the server response; any failure falls back to a local-only merge
// so edits are not silently lost. Only an expired session is fatal.
func (m *Manager) UpdateUser(ctx context.Context, update model.UserUpdate) error {
	m.mu.Lock()
	current := m.user
	m.mu.Unlock()
	if current == nil {
		return nil
	}

	resp, err := m.api.JSON(ctx, http.MethodPatch, api.PathProfile, nil, update)
	if errors.Is(err, api.ErrSessionExpired) {
		m.mu.Lock()
		m.user = nil
		m.mu.Unlock()
		return err
	}

	if err == nil && resp.OK() {
		// Fields present in the response overwrite the current profile;
		// everything else is kept.
		merged := *current
		if err := resp.Decode(&merged); err == nil {
			return m.setUser(ctx, merged)
		}
	}

	// Optimistic local fallback. The server may now disagree with the
	// client until the next profile fetch.
	slog.Warn("profile update failed remotely, keeping local edit", "error", err)
	merged := *current
	update.Apply(&merged)
	return m.setUser(ctx, merged)
}

// Restore revives a persisted session on startup. A stored profile and
// token are validated against the profile endpoint; a 200 refreshes the
// cached profile, anything else purges all persisted state and the
// session starts anonymous.
func (m *Manager) Restore(ctx context.Context) error {
	user, err := store.GetUser(ctx, m.backend)
	if err != nil {
		return err
	}
	tokens, err := store.GetTokens(ctx, m.backend)
	if err != nil {
		return err
	}
	if user == nil || tokens == nil || tokens.Access == "" {
		return nil
	}

	resp, err := m.api.JSONOnce(ctx, http.MethodGet, api.PathProfile, nil)
	if err != nil || !resp.OK() {
		slog.Warn("stored session invalid, purging", "error", err)
		return store.PurgeAll(ctx, m.backend)
	}

	profile, err := decodeProfile(resp)
	if err != nil {
		slog.Warn("profile response malformed, purging", "error", err)
		return store.PurgeAll(ctx, m.backend)
	}

	if err := m.setUser(ctx, profile); err != nil {
		return err
	}
	slog.Info("session restored", "user", profile.Email)
	return nil
}

// decodeProfile accepts both a wrapped {"user": ...} and a bare profile.
func decodeProfile(resp *api.Response) (model.User, error) {
	var wrapped struct {
		User *model.User `json:"user"`
	}
	if err := resp.Decode(&wrapped); err == nil && wrapped.User != nil {
		return *wrapped.User, nil
	}

	var bare model.User
	if err := resp.Decode(&bare); err != nil {
		return model.User{}, err
	}
	if bare.ID == "" {
		return model.User{}, errors.New("profile response missing user")
	}
	return bare, nil
}

// setUser updates the in-memory session and the persisted mirror.
func (m *Manager) setUser(ctx context.Context, user model.User) error {
	if err := store.SaveUser(ctx, m.backend, user); err != nil {
		return err
	}
	m.mu.Lock()
	m.user = &user
	m.mu.Unlock()
	return nil
}

// User returns a copy of the authenticated user, or nil when anonymous.
func (m *Manager) User() *model.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil
	}
	cp := *m.user
	return &cp
}

// IsAuthenticated reports whether a user is signed in.
func (m *Manager) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user != nil
}
