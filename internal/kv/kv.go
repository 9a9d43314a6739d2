// Package kv provides the key-value medium that holds the style collection
// as a single serialized blob, with memory, SQLite, PostgreSQL, Redis and
// S3 backends.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("kv: key not found")

// Store is a key-value medium. Values are opaque blobs; every Set replaces
// the whole value. Implementations are safe for concurrent use.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Close releases the backend's resources.
	Close() error
}
