package mockapi

import (
	"encoding/json"
	"log/slog"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantumio/qtask/internal/client/models"
	"github.com/quantumio/qtask/internal/logging"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	return NewRouter(logging.NewTextLogger(discard{}, slog.LevelError), 1)
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func doList(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandleList_HonorsResultsParam(t *testing.T) {
	h := newTestRouter(t)

	rec := doList(t, h, "/?results=7")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp models.ListingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Results, 7)
	assert.Equal(t, 7, resp.Info.Results)
	assert.Equal(t, 1, resp.Info.Page)
}

func TestHandleList_DefaultAndCap(t *testing.T) {
	h := newTestRouter(t)

	var resp models.ListingResponse
	rec := doList(t, h, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Results, defaultResults)

	rec = doList(t, h, "/?results=99999")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Results, maxResults)
}

func TestHandleList_RejectsBadParam(t *testing.T) {
	h := newTestRouter(t)

	for _, target := range []string{"/?results=abc", "/?results=0", "/?results=-3"} {
		rec := doList(t, h, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "target %s", target)
	}
}

func TestHandleList_EntriesHaveUniqueIDs(t *testing.T) {
	h := newTestRouter(t)

	rec := doList(t, h, "/?results=100")
	var resp models.ListingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	seen := make(map[string]struct{}, len(resp.Results))
	for _, u := range resp.Results {
		require.NotEmpty(t, u.Login.UUID)
		_, dup := seen[u.Login.UUID]
		require.False(t, dup, "duplicate id %s", u.Login.UUID)
		seen[u.Login.UUID] = struct{}{}

		assert.NotEmpty(t, u.Name.First)
		assert.NotEmpty(t, u.Location.Country)
	}
}

func TestGenerateUsers_DeterministicNamesForFixedSeed(t *testing.T) {
	a := GenerateUsers(10, rand.New(rand.NewSource(42)))
	b := GenerateUsers(10, rand.New(rand.NewSource(42)))

	for i := range a {
		assert.Equal(t, a[i].FullName(), b[i].FullName())
		// Identifiers stay unique even across identical seeds.
		assert.NotEqual(t, a[i].Login.UUID, b[i].Login.UUID)
	}
}
