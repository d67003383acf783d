package state

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantumio/qtask/internal/client/models"
	"github.com/quantumio/qtask/internal/client/repositories/kvstore"
	"github.com/quantumio/qtask/internal/client/services"
	"github.com/quantumio/qtask/internal/client/tokenstore"
	"github.com/quantumio/qtask/internal/common"
	"github.com/quantumio/qtask/internal/logging"
)

// --- helpers ---

type notification struct {
	kind  string // "success" | "error"
	title string
	text  string
}

// recorderNotifier captures every notification for assertions.
type recorderNotifier struct {
	mu    sync.Mutex
	items []notification
}

func (r *recorderNotifier) Success(title, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, notification{kind: "success", title: title, text: message})
}

func (r *recorderNotifier) Error(title, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, notification{kind: "error", title: title, text: message})
}

func (r *recorderNotifier) all() []notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]notification(nil), r.items...)
}

func testLogger() logging.Logger {
	return logging.NewTextLogger(testWriter{}, slog.LevelError)
}

type testWriter struct{}

func (testWriter) Write(p []byte) (int, error) { return len(p), nil }

// fakeAuthService lets individual calls be overridden; unset hooks fall
// through to a real service over an in-memory store.
type fakeAuthService struct {
	services.AuthService
	getProfileErr error
	getProfileFn  func()
}

func (f *fakeAuthService) GetProfile(ctx context.Context) (*models.UserProfile, error) {
	if f.getProfileFn != nil {
		f.getProfileFn()
	}
	if f.getProfileErr != nil {
		return nil, f.getProfileErr
	}
	return f.AuthService.GetProfile(ctx)
}

func realAuthService(t *testing.T) services.AuthService {
	t.Helper()
	return services.NewAuthService(tokenstore.New(kvstore.NewInMemoryRepository()), 0)
}

func newAuthState(t *testing.T, svc services.AuthService) (*AuthState, *recorderNotifier) {
	t.Helper()
	rec := &recorderNotifier{}
	return NewAuthState(context.Background(), svc, rec, testLogger()), rec
}

// --- tests ---

func TestAuthState_Login_Success(t *testing.T) {
	s, rec := newAuthState(t, realAuthService(t))
	ctx := context.Background()

	ok := s.Login(ctx, models.Credentials{Email: "q@quantum.io", Password: "qTask123#"})

	assert.True(t, ok)
	assert.True(t, s.IsAuthenticated())
	assert.Empty(t, s.Err())
	assert.False(t, s.Loading())
	require.NotNil(t, s.Profile())
	assert.Equal(t, "Quantum User", s.Profile().Name)

	items := rec.all()
	require.Len(t, items, 1)
	assert.Equal(t, notification{kind: "success", title: "Welcome!", text: "Login successful"}, items[0])
}

func TestAuthState_Login_InvalidCredentials(t *testing.T) {
	s, rec := newAuthState(t, realAuthService(t))

	ok := s.Login(context.Background(), models.Credentials{Email: "q@quantum.io", Password: "wrong"})

	assert.False(t, ok)
	assert.False(t, s.IsAuthenticated())
	assert.Equal(t, common.ErrInvalidCredentials.Error(), s.Err())
	assert.False(t, s.Loading(), "loading must reset on failure too")

	items := rec.all()
	require.Len(t, items, 1)
	assert.Equal(t, "error", items[0].kind)
	assert.Equal(t, "Login Failed", items[0].title)
}

func TestAuthState_Login_ClearsPreviousError(t *testing.T) {
	s, _ := newAuthState(t, realAuthService(t))
	ctx := context.Background()

	s.Login(ctx, models.Credentials{Email: "q@quantum.io", Password: "wrong"})
	require.NotEmpty(t, s.Err())

	ok := s.Login(ctx, models.Credentials{Email: "q@quantum.io", Password: "qTask123#"})
	assert.True(t, ok)
	assert.Empty(t, s.Err())
}

func TestAuthState_Logout_ClearsSessionAndPersistence(t *testing.T) {
	svc := realAuthService(t)
	s, rec := newAuthState(t, svc)
	ctx := context.Background()

	require.True(t, s.Login(ctx, models.Credentials{Email: "q@quantum.io", Password: "qTask123#"}))

	require.NoError(t, s.Logout(ctx))

	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.Tokens())
	assert.Nil(t, s.Profile())
	assert.False(t, s.Loading())

	stored, err := svc.StoredTokens(ctx)
	require.NoError(t, err)
	assert.Nil(t, stored)

	items := rec.all()
	require.Len(t, items, 2)
	assert.Equal(t, "Logged Out", items[1].title)
}

func TestAuthState_LoadProfile_NoopWhenLoggedOut(t *testing.T) {
	fake := &fakeAuthService{AuthService: realAuthService(t), getProfileFn: func() {
		t.Fatal("GetProfile must not be called when logged out")
	}}
	s, _ := newAuthState(t, fake)

	s.LoadProfile(context.Background())
	assert.Nil(t, s.Profile())
}

func TestAuthState_LoadProfile_FailureIsSilent(t *testing.T) {
	fake := &fakeAuthService{AuthService: realAuthService(t)}
	s, rec := newAuthState(t, fake)
	ctx := context.Background()

	require.True(t, s.Login(ctx, models.Credentials{Email: "q@quantum.io", Password: "qTask123#"}))
	rec.items = nil

	fake.getProfileErr = errors.New("profile backend down")
	s.LoadProfile(ctx)

	// The failure never reaches the error field or the notifier.
	assert.Empty(t, s.Err())
	assert.Empty(t, rec.all())
	assert.False(t, s.Loading())
}

func TestAuthState_UpdateProfile_RoundTrip(t *testing.T) {
	s, rec := newAuthState(t, realAuthService(t))
	ctx := context.Background()

	require.True(t, s.Login(ctx, models.Credentials{Email: "q@quantum.io", Password: "qTask123#"}))

	want := &models.UserProfile{Name: "Jane Dev", Email: "jane@example.com", YearsOfExperience: 12}
	ok := s.UpdateProfile(ctx, want)
	require.True(t, ok)
	assert.Equal(t, want, s.Profile())

	// Round-trip through the service with no intervening logout.
	s.LoadProfile(ctx)
	assert.Equal(t, want, s.Profile())

	items := rec.all()
	require.Len(t, items, 2)
	assert.Equal(t, "Profile Updated", items[1].title)
}

func TestAuthState_StartupRestoresSessionAndLoadsProfile(t *testing.T) {
	store := tokenstore.New(kvstore.NewInMemoryRepository())
	svc := services.NewAuthService(store, 0)
	ctx := context.Background()

	require.NoError(t, svc.StoreTokens(ctx, &models.TokenPair{Access: "fake-token", Refresh: "fake-refresh"}))
	require.NoError(t, store.WriteProfile(ctx, &models.UserProfile{Name: "Persisted"}))

	s := NewAuthState(ctx, svc, &recorderNotifier{}, testLogger())

	assert.True(t, s.IsAuthenticated(), "persisted pair restores the session")

	// The profile load is fire-and-forget; wait for it to land.
	require.Eventually(t, func() bool {
		p := s.Profile()
		return p != nil && p.Name == "Persisted"
	}, time.Second, 5*time.Millisecond)
}

func TestAuthState_StartupWithoutTokens(t *testing.T) {
	s, rec := newAuthState(t, realAuthService(t))

	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.Profile())
	assert.Empty(t, rec.all())
}
