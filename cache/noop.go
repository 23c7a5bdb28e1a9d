package cache

import (
	"github.com/techno-hippies/dotheaven-sub003/types"
)

// NoOpCache is a profile cache that stores nothing.
// Every read misses and every write is silently dropped, so callers
// always hit the chain. Use this when caching is disabled.
type NoOpCache struct{}

// NewNoOpCache creates a new no-op profile cache.
func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

// Get always returns ErrNotFound.
func (*NoOpCache) Get(_ string) (*types.ProfileRecord, error) {
	return nil, ErrNotFound
}

// Put drops the record.
func (*NoOpCache) Put(_ string, _ *types.ProfileRecord) error {
	return nil
}

// Delete does nothing.
func (*NoOpCache) Delete(_ string) error {
	return nil
}

// Close does nothing.
func (*NoOpCache) Close() error {
	return nil
}
