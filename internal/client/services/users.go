package services

import (
	"context"
	"fmt"

	"github.com/quantumio/qtask/internal/client/api"
	"github.com/quantumio/qtask/internal/client/models"
	"github.com/quantumio/qtask/internal/common"
)

// DefaultFetchCount is the batch size requested from the listing endpoint
// when the caller does not specify one.
const DefaultFetchCount = 50

// UserService provides the user directory: one bulk fetch from the listing
// endpoint plus a pure in-memory lookup.
type UserService interface {
	FetchUsers(ctx context.Context, count int) ([]models.User, error)
	FindByID(id string, users []models.User) (*models.User, error)
}

type userService struct {
	client api.Client
}

func NewUserService(client api.Client) UserService {
	return &userService{client: client}
}

// FetchUsers requests count records in a single call; there is no retry and
// no transport-level pagination. count <= 0 falls back to DefaultFetchCount.
func (s *userService) FetchUsers(ctx context.Context, count int) ([]models.User, error) {
	if count <= 0 {
		count = DefaultFetchCount
	}
	return s.client.FetchUsers(ctx, count)
}

// FindByID looks an entry up by its identifier over an already-fetched
// batch. No I/O; returns common.ErrNotFound when the id is absent.
func (s *userService) FindByID(id string, users []models.User) (*models.User, error) {
	for i := range users {
		if users[i].Login.UUID == id {
			return &users[i], nil
		}
	}
	return nil, fmt.Errorf("user %q: %w", id, common.ErrNotFound)
}
