// Package kvstore is the client's durable key-value storage, the equivalent
// of the browser localStorage the original web client persisted into.
package kvstore

import "context"

// Repository is a flat key-value store. Get returns (nil, nil) for a
// missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// SetMany writes all pairs or none of them.
	SetMany(ctx context.Context, items map[string][]byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
