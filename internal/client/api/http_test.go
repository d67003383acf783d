package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantumio/qtask/internal/common"
)

const listingBody = `{
	"results": [
		{
			"login": {"uuid": "u-1"},
			"name": {"title": "Mr", "first": "John", "last": "Doe"},
			"email": "john.doe@example.com",
			"phone": "011-962-7516",
			"cell": "081-454-0666",
			"location": {
				"street": {"number": 8929, "name": "Valwood Pkwy"},
				"city": "Billings",
				"state": "Michigan",
				"country": "United States",
				"postcode": 63104
			},
			"picture": {
				"large": "https://example.com/l.jpg",
				"medium": "https://example.com/m.jpg",
				"thumbnail": "https://example.com/t.jpg"
			},
			"nat": "US"
		},
		{
			"login": {"uuid": "u-2"},
			"name": {"title": "Ms", "first": "Ada", "last": "Smith"},
			"email": "ada.smith@example.com",
			"phone": "1-234",
			"cell": "5-678",
			"location": {
				"street": {"number": 1, "name": "Main St"},
				"city": "Leeds",
				"state": "Yorkshire",
				"country": "United Kingdom",
				"postcode": "LS1 4AB"
			},
			"picture": {"large": "", "medium": "", "thumbnail": ""},
			"nat": "GB"
		}
	],
	"info": {"seed": "abc", "results": 2, "page": 1, "version": "1.4"}
}`

func TestHTTPClient_FetchUsers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("results"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(listingBody))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 5*time.Second)
	defer c.Close()

	users, err := c.FetchUsers(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, users, 2)

	assert.Equal(t, "u-1", users[0].Login.UUID)
	assert.Equal(t, "John Doe", users[0].FullName())
	// Numeric and string postcodes both decode.
	assert.Equal(t, "63104", string(users[0].Location.Postcode))
	assert.Equal(t, "LS1 4AB", string(users[1].Location.Postcode))
}

func TestHTTPClient_FetchUsers_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewHTTPClient(srv.URL, 5*time.Second).FetchUsers(context.Background(), 50)
	require.ErrorIs(t, err, common.ErrFetchFailed)
}

func TestHTTPClient_FetchUsers_BadBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	_, err := NewHTTPClient(srv.URL, 5*time.Second).FetchUsers(context.Background(), 50)
	require.ErrorIs(t, err, common.ErrFetchFailed)
}

func TestHTTPClient_FetchUsers_ConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // shut down before the call

	_, err := NewHTTPClient(srv.URL, time.Second).FetchUsers(context.Background(), 50)
	require.ErrorIs(t, err, common.ErrFetchFailed)
}
