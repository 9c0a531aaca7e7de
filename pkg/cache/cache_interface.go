package cache

import (
	"context"
	"time"
)

// Cache defines the contract for the query cache layer.
// The interface keeps repositories decoupled from Redis so the
// implementation can be swapped (in-memory for tests, Redis in prod).
type Cache interface {
	// Get reads a key and unmarshals it into dest.
	// Returns (found, error): found=false is a cache miss and leaves
	// dest untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores a value under key with the given TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes one or more keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes every key matching a glob pattern,
	// e.g. "posts:list:*".
	DeletePattern(ctx context.Context, pattern string) error

	// Ping verifies the connection.
	Ping(ctx context.Context) error
}
