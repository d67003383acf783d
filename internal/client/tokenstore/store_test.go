package tokenstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantumio/qtask/internal/client/models"
	"github.com/quantumio/qtask/internal/client/repositories/kvstore"
)

func newStore(t *testing.T) (*Store, kvstore.Repository) {
	t.Helper()
	repo := kvstore.NewInMemoryRepository()
	return New(repo), repo
}

func TestReadTokens_RequiresBothValues(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		access  string
		refresh string
		want    *models.TokenPair
	}{
		{name: "both present", access: "fake-token", refresh: "fake-refresh",
			want: &models.TokenPair{Access: "fake-token", Refresh: "fake-refresh"}},
		{name: "access only", access: "fake-token", want: nil},
		{name: "refresh only", refresh: "fake-refresh", want: nil},
		{name: "neither", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, repo := newStore(t)
			if tt.access != "" {
				require.NoError(t, repo.Set(ctx, "access_token", []byte(tt.access)))
			}
			if tt.refresh != "" {
				require.NoError(t, repo.Set(ctx, "refresh_token", []byte(tt.refresh)))
			}

			got, err := store.ReadTokens(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteTokens_ThenRead(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)

	pair := &models.TokenPair{Access: "fake-token", Refresh: "fake-refresh"}
	require.NoError(t, store.WriteTokens(ctx, pair))

	got, err := store.ReadTokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, pair, got)

	has, err := store.HasAccessToken(ctx)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestHasAccessToken_IndependentOfRefresh(t *testing.T) {
	ctx := context.Background()
	store, repo := newStore(t)

	require.NoError(t, repo.Set(ctx, "access_token", []byte("fake-token")))

	has, err := store.HasAccessToken(ctx)
	require.NoError(t, err)
	assert.True(t, has)

	// But the full pair is still treated as absent.
	pair, err := store.ReadTokens(ctx)
	require.NoError(t, err)
	assert.Nil(t, pair)
}

func TestClear_RemovesTokensAndProfile(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)

	require.NoError(t, store.WriteTokens(ctx, &models.TokenPair{Access: "a", Refresh: "r"}))
	require.NoError(t, store.WriteProfile(ctx, &models.UserProfile{Name: "Quantum User"}))

	require.NoError(t, store.Clear(ctx))

	pair, err := store.ReadTokens(ctx)
	require.NoError(t, err)
	assert.Nil(t, pair)

	has, err := store.HasAccessToken(ctx)
	require.NoError(t, err)
	assert.False(t, has)

	profile, err := store.ReadProfile(ctx)
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestProfile_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)

	profile := &models.UserProfile{
		Name:              "Jane Dev",
		Email:             "jane@example.com",
		Phone:             "+1 (555) 000-0000",
		JobTitle:          "Staff Engineer",
		YearsOfExperience: 12,
		Address:           "42 Elm St",
		WorkingHours:      "8:00 AM - 4:00 PM",
	}
	require.NoError(t, store.WriteProfile(ctx, profile))

	got, err := store.ReadProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, profile, got)
}

func TestReadProfile_MissingReturnsNil(t *testing.T) {
	store, _ := newStore(t)
	got, err := store.ReadProfile(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestReadProfile_CorruptedData(t *testing.T) {
	ctx := context.Background()
	store, repo := newStore(t)

	require.NoError(t, repo.Set(ctx, "user_profile", []byte("{not json")))

	_, err := store.ReadProfile(ctx)
	require.Error(t, err)
}
