// Package common defines shared sentinel errors and small utilities used
// across the qtask client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Auth-specific errors. The message doubles as the user-facing text
	// shown on a rejected login.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Directory-specific errors.
	ErrFetchFailed = errors.New("failed to fetch users")

	// Generic service failure.
	ErrOperationFailed = errors.New("operation failed")
)
