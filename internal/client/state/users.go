package state

import (
	"context"
	"strings"
	"sync"

	"github.com/quantumio/qtask/internal/client/models"
	"github.com/quantumio/qtask/internal/client/notify"
	"github.com/quantumio/qtask/internal/client/services"
	"github.com/quantumio/qtask/internal/logging"
)

// DefaultPageSize is the number of directory entries per page.
const DefaultPageSize = 10

// UsersState is the user-directory store: the fetched batch plus the view
// position (search text, current page, selection).
type UsersState struct {
	mu          sync.Mutex
	users       []models.User
	loading     bool
	errMsg      string
	searchQuery string
	currentPage int
	pageSize    int
	selected    *models.User
	showModal   bool

	svc      services.UserService
	notifier notify.Notifier
	log      logging.Logger
}

func NewUsersState(svc services.UserService, notifier notify.Notifier, log logging.Logger, pageSize int) *UsersState {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &UsersState{
		svc:         svc,
		notifier:    notifier,
		log:         log,
		currentPage: 1,
		pageSize:    pageSize,
	}
}

// FetchUsers replaces the batch wholesale with a fresh fetch. On failure the
// error message is kept on the store and an error notification is shown; the
// previous batch is left in place.
func (s *UsersState) FetchUsers(ctx context.Context) {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()
	defer s.setLoading(false)

	users, err := s.svc.FetchUsers(ctx, services.DefaultFetchCount)
	if err != nil {
		s.mu.Lock()
		s.errMsg = err.Error()
		s.mu.Unlock()
		s.notifier.Error("Error", err.Error())
		return
	}

	s.mu.Lock()
	s.users = users
	s.mu.Unlock()
	s.log.Debug(ctx, "user batch replaced", "count", len(users))
}

// RefreshUsers resets the view to page 1 with an empty query, refetches,
// then acknowledges the refresh. The acknowledgment is unconditional: a
// failed fetch raises its own error notification first, then the refresh
// one still fires.
func (s *UsersState) RefreshUsers(ctx context.Context) {
	s.mu.Lock()
	s.currentPage = 1
	s.searchQuery = ""
	s.mu.Unlock()

	s.FetchUsers(ctx)

	s.notifier.Success("Refreshed", "User list has been refreshed")
}

// FilteredUsers returns the entries whose full name contains the trimmed,
// case-folded search query as a substring, preserving source order. An
// empty query returns the whole batch.
func (s *UsersState) FilteredUsers() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filteredLocked()
}

// PaginatedUsers returns the slice of the filtered view for the current
// page; the last page may be short. Out-of-range pages yield nil.
func (s *UsersState) PaginatedUsers() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := s.filteredLocked()
	start := (s.currentPage - 1) * s.pageSize
	if start >= len(filtered) {
		return nil
	}
	end := start + s.pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

// TotalPages is the page count of the filtered view (ceiling division).
func (s *UsersState) TotalPages() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalPagesLocked()
}

// TotalUsers is the size of the filtered view.
func (s *UsersState) TotalUsers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.filteredLocked())
}

// SetSearchQuery updates the search text and resets the view to page 1, so
// a new filter always starts at its first page.
func (s *UsersState) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchQuery = query
	s.currentPage = 1
}

// SetPage moves to page only when 1 <= page <= TotalPages; out-of-range
// values are silently ignored.
func (s *UsersState) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if page >= 1 && page <= s.totalPagesLocked() {
		s.currentPage = page
	}
}

func (s *UsersState) NextPage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentPage < s.totalPagesLocked() {
		s.currentPage++
	}
}

func (s *UsersState) PrevPage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentPage > 1 {
		s.currentPage--
	}
}

// OpenUserModal selects an entry and makes the selection visible.
func (s *UsersState) OpenUserModal(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = &user
	s.showModal = true
}

// CloseUserModal hides and clears the selection.
func (s *UsersState) CloseUserModal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showModal = false
	s.selected = nil
}

func (s *UsersState) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users
}

func (s *UsersState) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the last fetch error message, "" when none.
func (s *UsersState) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

func (s *UsersState) SearchQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchQuery
}

func (s *UsersState) CurrentPage() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentPage
}

func (s *UsersState) PageSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pageSize
}

func (s *UsersState) SelectedUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return nil
	}
	cp := *s.selected
	return &cp
}

func (s *UsersState) ModalVisible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.showModal
}

func (s *UsersState) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *UsersState) filteredLocked() []models.User {
	query := strings.ToLower(strings.TrimSpace(s.searchQuery))
	if query == "" {
		return s.users
	}
	filtered := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		if strings.Contains(strings.ToLower(u.FullName()), query) {
			filtered = append(filtered, u)
		}
	}
	return filtered
}

func (s *UsersState) totalPagesLocked() int {
	return (len(s.filteredLocked()) + s.pageSize - 1) / s.pageSize
}
