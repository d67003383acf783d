// Package tokenstore persists the session token pair and the cached user
// profile, under the same keys the original web client used in localStorage.
package tokenstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/quantumio/qtask/internal/client/models"
	"github.com/quantumio/qtask/internal/client/repositories/kvstore"
)

const (
	accessTokenKey  = "access_token"
	refreshTokenKey = "refresh_token"
	userProfileKey  = "user_profile"
)

type Store struct {
	repo kvstore.Repository
}

func New(repo kvstore.Repository) *Store {
	return &Store{repo: repo}
}

// ReadTokens returns the persisted token pair, or nil unless both the
// access and refresh values are present.
func (s *Store) ReadTokens(ctx context.Context) (*models.TokenPair, error) {
	access, err := s.repo.Get(ctx, accessTokenKey)
	if err != nil {
		return nil, err
	}
	refresh, err := s.repo.Get(ctx, refreshTokenKey)
	if err != nil {
		return nil, err
	}
	if len(access) == 0 || len(refresh) == 0 {
		return nil, nil
	}
	return &models.TokenPair{Access: string(access), Refresh: string(refresh)}, nil
}

// WriteTokens persists both token values; either both are written or neither.
func (s *Store) WriteTokens(ctx context.Context, pair *models.TokenPair) error {
	return s.repo.SetMany(ctx, map[string][]byte{
		accessTokenKey:  []byte(pair.Access),
		refreshTokenKey: []byte(pair.Refresh),
	})
}

// Clear removes the token pair and any cached profile.
func (s *Store) Clear(ctx context.Context) error {
	for _, key := range []string{accessTokenKey, refreshTokenKey, userProfileKey} {
		if err := s.repo.Delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

// HasAccessToken reports whether an access token is persisted, regardless
// of the refresh token.
func (s *Store) HasAccessToken(ctx context.Context) (bool, error) {
	access, err := s.repo.Get(ctx, accessTokenKey)
	if err != nil {
		return false, err
	}
	return len(access) > 0, nil
}

// ReadProfile returns the cached profile, or nil when none is stored.
func (s *Store) ReadProfile(ctx context.Context) (*models.UserProfile, error) {
	data, err := s.repo.Get(ctx, userProfileKey)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	var profile models.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode stored profile: %w", err)
	}
	return &profile, nil
}

func (s *Store) WriteProfile(ctx context.Context, profile *models.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	return s.repo.Set(ctx, userProfileKey, data)
}
