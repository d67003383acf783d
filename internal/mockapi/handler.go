// Package mockapi is a local stand-in for the public user listing endpoint.
// It serves GET /?results=n with generated directory entries in the same
// JSON envelope, so the client can be pointed at it during development.
package mockapi

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/quantumio/qtask/internal/client/models"
	"github.com/quantumio/qtask/internal/logging"
)

const (
	defaultResults = 50
	maxResults     = 500
)

// NewRouter builds the mock listing router. seed fixes the generated names
// so repeated runs serve a stable directory.
func NewRouter(log logging.Logger, seed int64) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
	}))
	r.Get("/", handleList(log, seed))
	return r
}

func handleList(log logging.Logger, seed int64) http.HandlerFunc {
	var mu sync.Mutex
	rng := rand.New(rand.NewSource(seed))

	return func(w http.ResponseWriter, r *http.Request) {
		count := defaultResults
		if v := r.URL.Query().Get("results"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 {
				http.Error(w, "results must be a positive integer", http.StatusBadRequest)
				return
			}
			count = n
		}
		if count > maxResults {
			count = maxResults
		}

		mu.Lock()
		users := GenerateUsers(count, rng)
		mu.Unlock()

		resp := models.ListingResponse{
			Results: users,
			Info: models.ListingInfo{
				Seed:    strconv.FormatInt(seed, 10),
				Results: count,
				Page:    1,
				Version: "1.4",
			},
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			log.Error(r.Context(), "failed to encode listing response", "error", err)
		}
	}
}
