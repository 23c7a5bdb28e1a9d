// Package cache provides local persistence for decoded profile records.
package cache

import (
	"errors"
	"fmt"

	"github.com/techno-hippies/dotheaven-sub003/config"
	"github.com/techno-hippies/dotheaven-sub003/types"
)

// Cache errors.
var (
	// ErrNotFound is returned when no record is cached for an address.
	ErrNotFound = errors.New("profile not in cache")

	// ErrStoreClosed is returned when the store has been closed or does
	// not accept writes.
	ErrStoreClosed = errors.New("profile cache closed")
)

// ProfileCache defines the interface for profile record persistence,
// keyed by lowercase account address.
// Implementations must be safe for concurrent use.
type ProfileCache interface {
	// Get retrieves the cached record for an address.
	// Returns ErrNotFound if no record is cached.
	Get(address string) (*types.ProfileRecord, error)

	// Put stores a record for an address, replacing any previous entry.
	Put(address string, rec *types.ProfileRecord) error

	// Delete removes the cached record for an address.
	// Deleting an absent entry is not an error.
	Delete(address string) error

	// Close closes the store and releases resources.
	Close() error
}

// New creates a profile cache for the configured backend.
func New(cfg config.CacheConfig) (ProfileCache, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return NewMemoryCache(), nil
	case config.BackendLevelDB:
		return NewLevelDBCache(cfg.Path)
	case config.BackendBadgerDB:
		return NewBadgerDBCache(cfg.Path)
	case config.BackendNone:
		return NewNoOpCache(), nil
	default:
		return nil, fmt.Errorf("unknown cache backend: %q", cfg.Backend)
	}
}
