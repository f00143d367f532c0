// Package store provides key-value persistence for canvas state.
//
// Three backends implement Store:
//   - MemoryStore: in-process map, for tests and throwaway sessions
//   - FileStore: one JSON file per key under a directory
//   - RedisStore: Redis-backed, for sharing a canvas between machines
//
// Repository maps the application's two keys, the signed-in user and the
// per-user balloon list, onto a Store.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a key does not exist.
var ErrNotFound = errors.New("not found")

// Store is a flat key-value store. Implementations are safe for concurrent
// use.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
