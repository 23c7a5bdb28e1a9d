package cache

import (
	"errors"
	"fmt"
	"sync"

	"github.com/dgraph-io/badger/v4"

	"github.com/blockberries/cramberry/pkg/cramberry"

	"github.com/techno-hippies/dotheaven-sub003/types"
)

// BadgerDBCache implements ProfileCache using BadgerDB.
// BadgerDB is optimized for SSDs and offers better write performance
// than LevelDB for certain workloads.
type BadgerDBCache struct {
	db     *badger.DB
	path   string
	closed bool
	mu     sync.RWMutex
}

// NewBadgerDBCache creates a new BadgerDB-backed profile cache.
func NewBadgerDBCache(path string) (*BadgerDBCache, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil
	opts.SyncWrites = true

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening badgerdb: %w", err)
	}

	return &BadgerDBCache{
		db:   db,
		path: path,
	}, nil
}

// Get retrieves the cached record for an address.
func (s *BadgerDBCache) Get(address string) (*types.ProfileRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	var rec types.ProfileRecord
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(makeProfileKey(address))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return cramberry.Unmarshal(val, &rec)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}
	return &rec, nil
}

// Put stores a record for an address.
func (s *BadgerDBCache) Put(address string, rec *types.ProfileRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	data, err := cramberry.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshaling profile: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(makeProfileKey(address), data)
	})
	if err != nil {
		return fmt.Errorf("writing profile: %w", err)
	}
	return nil
}

// Delete removes the cached record for an address.
func (s *BadgerDBCache) Delete(address string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(makeProfileKey(address))
	})
	if err != nil {
		return fmt.Errorf("deleting profile: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *BadgerDBCache) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
