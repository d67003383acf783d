// Package state holds the observable client-side state the UI renders from:
// the auth session and the user directory. Derived views are plain methods
// recomputed on each call; nothing is cached. Fields are mutex-guarded so
// the background profile load is safe, but overlapping operations are not
// serialized against each other, matching the original single-page client.
package state

import (
	"context"
	"sync"

	"github.com/quantumio/qtask/internal/client/models"
	"github.com/quantumio/qtask/internal/client/notify"
	"github.com/quantumio/qtask/internal/client/services"
	"github.com/quantumio/qtask/internal/logging"
)

// AuthState is the session store: tokens, profile, a loading flag, and the
// last user-visible error message.
type AuthState struct {
	mu      sync.Mutex
	tokens  *models.TokenPair
	profile *models.UserProfile
	loading bool
	errMsg  string

	auth     services.AuthService
	notifier notify.Notifier
	log      logging.Logger
}

// NewAuthState builds the session store, restoring any persisted token pair.
// When a session is already persisted the profile load is kicked off in the
// background and never awaited; its failures stay silent.
func NewAuthState(ctx context.Context, auth services.AuthService, notifier notify.Notifier, log logging.Logger) *AuthState {
	s := &AuthState{auth: auth, notifier: notifier, log: log}

	tokens, err := auth.StoredTokens(ctx)
	if err != nil {
		log.Warn(ctx, "failed to read stored tokens", "error", err)
	}
	s.tokens = tokens

	if tokens != nil {
		go s.LoadProfile(context.WithoutCancel(ctx))
	}
	return s
}

// Login authenticates and, on success, persists the tokens and loads the
// profile. Returns true on success. On failure the error message is kept on
// the store and an error notification is shown.
func (s *AuthState) Login(ctx context.Context, creds models.Credentials) bool {
	s.begin()
	defer s.setLoading(false)

	tokens, err := s.auth.Login(ctx, creds)
	if err != nil {
		return s.fail("Login Failed", err)
	}

	s.mu.Lock()
	s.tokens = tokens
	s.mu.Unlock()

	if err := s.auth.StoreTokens(ctx, tokens); err != nil {
		return s.fail("Login Failed", err)
	}

	profile, err := s.auth.GetProfile(ctx)
	if err != nil {
		return s.fail("Login Failed", err)
	}

	s.mu.Lock()
	s.profile = profile
	s.mu.Unlock()

	s.notifier.Success("Welcome!", "Login successful")
	return true
}

// Logout drops the session. The service call cannot fail in practice; if it
// does the error is returned and in-memory state is left untouched.
func (s *AuthState) Logout(ctx context.Context) error {
	s.setLoading(true)
	defer s.setLoading(false)

	if err := s.auth.Logout(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	s.tokens = nil
	s.profile = nil
	s.mu.Unlock()

	s.notifier.Success("Logged Out", "You have been logged out successfully")
	return nil
}

// LoadProfile refreshes the in-memory profile. A no-op when not
// authenticated. Failures are logged and never surfaced to the user or the
// error field; the asymmetry with other actions is intentional.
func (s *AuthState) LoadProfile(ctx context.Context) {
	if !s.IsAuthenticated() {
		return
	}

	s.setLoading(true)
	defer s.setLoading(false)

	profile, err := s.auth.GetProfile(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to load profile", "error", err)
		return
	}

	s.mu.Lock()
	s.profile = profile
	s.mu.Unlock()
}

// UpdateProfile persists the profile and replaces the in-memory copy.
// Returns true on success.
func (s *AuthState) UpdateProfile(ctx context.Context, profile *models.UserProfile) bool {
	s.begin()
	defer s.setLoading(false)

	updated, err := s.auth.UpdateProfile(ctx, profile)
	if err != nil {
		return s.fail("Update Failed", err)
	}

	s.mu.Lock()
	s.profile = updated
	s.mu.Unlock()

	s.notifier.Success("Profile Updated", "Your profile has been saved successfully")
	return true
}

// IsAuthenticated reports whether a token pair is held in memory.
func (s *AuthState) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokens != nil
}

func (s *AuthState) Tokens() *models.TokenPair {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tokens == nil {
		return nil
	}
	cp := *s.tokens
	return &cp
}

func (s *AuthState) Profile() *models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return nil
	}
	cp := *s.profile
	return &cp
}

func (s *AuthState) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the last user-visible error message, "" when none.
func (s *AuthState) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// begin marks an action as started: loading on, previous error cleared.
func (s *AuthState) begin() {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()
}

func (s *AuthState) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// fail records the error message and shows the error notification.
// Always returns false so callers can `return s.fail(...)`.
func (s *AuthState) fail(title string, err error) bool {
	s.mu.Lock()
	s.errMsg = err.Error()
	s.mu.Unlock()
	s.notifier.Error(title, err.Error())
	return false
}
