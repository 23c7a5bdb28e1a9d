package cache

import (
	"strings"
	"sync"

	"github.com/techno-hippies/dotheaven-sub003/types"
)

// MemoryCache implements ProfileCache with in-memory storage.
// Primarily used for testing and short-lived sessions.
type MemoryCache struct {
	records map[string]types.ProfileRecord
	mu      sync.RWMutex
}

// NewMemoryCache creates a new in-memory profile cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		records: make(map[string]types.ProfileRecord),
	}
}

// Get retrieves the cached record for an address.
func (m *MemoryCache) Get(address string) (*types.ProfileRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[cacheKey(address)]
	if !ok {
		return nil, ErrNotFound
	}
	// Copy to prevent external mutation of the stored record.
	out := rec
	out.Languages = append([]types.LanguageEntry(nil), rec.Languages...)
	return &out, nil
}

// Put stores a record for an address.
func (m *MemoryCache) Put(address string, rec *types.ProfileRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := *rec
	stored.Languages = append([]types.LanguageEntry(nil), rec.Languages...)
	m.records[cacheKey(address)] = stored
	return nil
}

// Delete removes the cached record for an address.
func (m *MemoryCache) Delete(address string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.records, cacheKey(address))
	return nil
}

// Len returns the number of cached records.
func (m *MemoryCache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

// Close does nothing for the in-memory cache.
func (m *MemoryCache) Close() error {
	return nil
}

// cacheKey normalizes an address for use as a store key.
func cacheKey(address string) string {
	return strings.ToLower(address)
}
