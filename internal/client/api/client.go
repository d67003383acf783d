// Package api implements the transport client for the remote user listing
// endpoint.
package api

import (
	"context"

	"github.com/quantumio/qtask/internal/client/models"
)

// Client is the minimal surface the user directory needs from the listing
// endpoint.
type Client interface {
	FetchUsers(ctx context.Context, count int) ([]models.User, error)
	Close() error
}
