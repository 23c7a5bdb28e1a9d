package cache

import (
	"fmt"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/blockberries/cramberry/pkg/cramberry"

	"github.com/techno-hippies/dotheaven-sub003/types"
)

// Key prefix for LevelDB storage.
var prefixProfile = []byte("P:") // P:<address> -> cramberry-encoded record

// LevelDBCache implements ProfileCache using LevelDB.
type LevelDBCache struct {
	db     *leveldb.DB
	path   string
	closed bool
	mu     sync.RWMutex
}

// NewLevelDBCache creates a new LevelDB-backed profile cache.
func NewLevelDBCache(path string) (*LevelDBCache, error) {
	db, err := leveldb.OpenFile(path, &opt.Options{
		NoSync: false, // Ensure durability
	})
	if err != nil {
		return nil, fmt.Errorf("opening leveldb: %w", err)
	}

	return &LevelDBCache{
		db:   db,
		path: path,
	}, nil
}

// Get retrieves the cached record for an address.
func (s *LevelDBCache) Get(address string) (*types.ProfileRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	data, err := s.db.Get(makeProfileKey(address), nil)
	if err == leveldb.ErrNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}

	var rec types.ProfileRecord
	if err := cramberry.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("unmarshaling profile: %w", err)
	}
	return &rec, nil
}

// Put stores a record for an address.
func (s *LevelDBCache) Put(address string, rec *types.ProfileRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	data, err := cramberry.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshaling profile: %w", err)
	}

	if err := s.db.Put(makeProfileKey(address), data, nil); err != nil {
		return fmt.Errorf("writing profile: %w", err)
	}
	return nil
}

// Delete removes the cached record for an address.
func (s *LevelDBCache) Delete(address string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	if err := s.db.Delete(makeProfileKey(address), nil); err != nil {
		return fmt.Errorf("deleting profile: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *LevelDBCache) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

// makeProfileKey builds the LevelDB key for an address.
func makeProfileKey(address string) []byte {
	return append(append([]byte(nil), prefixProfile...), cacheKey(address)...)
}
