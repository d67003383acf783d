// Package services contains the application services of the qtask client:
// session authentication against the demo account, and the user directory
// backed by the remote listing endpoint.
package services

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/quantumio/qtask/internal/client/models"
	"github.com/quantumio/qtask/internal/client/tokenstore"
	"github.com/quantumio/qtask/internal/common"
)

// The demo backend accepts exactly one account and issues a fixed token
// pair for it. Values must match the original web client so persisted
// sessions stay interchangeable.
const (
	validEmail    = "q@quantum.io"
	validPassword = "qTask123#"

	accessTokenValue  = "fake-token"
	refreshTokenValue = "fake-refresh"
)

func defaultProfile() *models.UserProfile {
	return &models.UserProfile{
		Name:              "Quantum User",
		Email:             validEmail,
		Phone:             "+1 (555) 123-4567",
		JobTitle:          "Software Engineer",
		YearsOfExperience: 5,
		Address:           "123 Tech Street, San Francisco, CA 94102",
		WorkingHours:      "9:00 AM - 5:00 PM",
	}
}

// AuthService defines session operations for the client.
//
// Contract:
//   - Login: validate credentials, return the session token pair.
//   - Logout: drop all persisted session data; always succeeds.
//   - GetProfile: stored profile if present, else the default one.
//   - UpdateProfile: persist and echo back the given profile.
//   - IsAuthenticated: persisted access token existence.
//   - StoreTokens / StoredTokens: token pair persistence for the state layer.
//
// All methods honor context cancellation.
type AuthService interface {
	Login(ctx context.Context, creds models.Credentials) (*models.TokenPair, error)
	Logout(ctx context.Context) error
	GetProfile(ctx context.Context) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, profile *models.UserProfile) (*models.UserProfile, error)
	IsAuthenticated(ctx context.Context) (bool, error)
	StoreTokens(ctx context.Context, pair *models.TokenPair) error
	StoredTokens(ctx context.Context) (*models.TokenPair, error)
}

// authService is the concrete AuthService backed by the local token store.
// There is no real backend; latency is simulated so the state layer behaves
// like it would against one.
type authService struct {
	store   *tokenstore.Store
	latency time.Duration
}

// NewAuthService constructs an AuthService over the given token store.
// latency is the simulated round-trip delay applied to each call; pass 0
// to disable (tests do).
func NewAuthService(store *tokenstore.Store, latency time.Duration) AuthService {
	return &authService{store: store, latency: latency}
}

// Login checks the credentials against the demo account (exact,
// case-sensitive match) and returns the fixed token pair on success, or
// common.ErrInvalidCredentials otherwise. Tokens are not persisted here;
// the caller decides when to store them.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (*models.TokenPair, error) {
	if err := a.simulateLatency(ctx); err != nil {
		return nil, err
	}

	emailOK := subtle.ConstantTimeCompare([]byte(creds.Email), []byte(validEmail))
	passwordOK := subtle.ConstantTimeCompare([]byte(creds.Password), []byte(validPassword))
	if emailOK&passwordOK != 1 {
		return nil, common.ErrInvalidCredentials
	}

	return &models.TokenPair{Access: accessTokenValue, Refresh: refreshTokenValue}, nil
}

// Logout wipes tokens and the cached profile.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.simulateLatency(ctx); err != nil {
		return err
	}
	return a.store.Clear(ctx)
}

// GetProfile returns the stored profile if one exists, else the default.
func (a *authService) GetProfile(ctx context.Context) (*models.UserProfile, error) {
	if err := a.simulateLatency(ctx); err != nil {
		return nil, err
	}
	profile, err := a.store.ReadProfile(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return defaultProfile(), nil
	}
	return profile, nil
}

// UpdateProfile persists the given profile and echoes it back verbatim.
func (a *authService) UpdateProfile(ctx context.Context, profile *models.UserProfile) (*models.UserProfile, error) {
	if err := a.simulateLatency(ctx); err != nil {
		return nil, err
	}
	if err := a.store.WriteProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (a *authService) IsAuthenticated(ctx context.Context) (bool, error) {
	return a.store.HasAccessToken(ctx)
}

func (a *authService) StoreTokens(ctx context.Context, pair *models.TokenPair) error {
	return a.store.WriteTokens(ctx, pair)
}

func (a *authService) StoredTokens(ctx context.Context) (*models.TokenPair, error) {
	return a.store.ReadTokens(ctx)
}

func (a *authService) simulateLatency(ctx context.Context) error {
	if a.latency <= 0 {
		return nil
	}
	timer := time.NewTimer(a.latency)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
