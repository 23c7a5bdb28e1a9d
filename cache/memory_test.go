package cache

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/techno-hippies/dotheaven-sub003/config"
	"github.com/techno-hippies/dotheaven-sub003/types"
)

func testRecord() *types.ProfileRecord {
	return &types.ProfileRecord{
		ProfileVersion: 1,
		DisplayName:    "Alice",
		NameHash:       "0x" + strings.Repeat("ab", 32),
		Age:            29,
		Languages: []types.LanguageEntry{
			{Code: "en", Proficiency: 7},
		},
	}
}

func TestMemoryCache(t *testing.T) {
	addr := "0x" + strings.Repeat("12", 20)

	t.Run("put then get", func(t *testing.T) {
		c := NewMemoryCache()
		require.NoError(t, c.Put(addr, testRecord()))

		got, err := c.Get(addr)
		require.NoError(t, err)
		require.Equal(t, testRecord(), got)
		require.Equal(t, 1, c.Len())
	})

	t.Run("missing entry", func(t *testing.T) {
		c := NewMemoryCache()
		_, err := c.Get(addr)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("keys are case-insensitive", func(t *testing.T) {
		c := NewMemoryCache()
		require.NoError(t, c.Put("0x"+strings.Repeat("AB", 20), testRecord()))

		got, err := c.Get("0x" + strings.Repeat("ab", 20))
		require.NoError(t, err)
		require.Equal(t, "Alice", got.DisplayName)
		require.Equal(t, 1, c.Len())
	})

	t.Run("delete removes the entry", func(t *testing.T) {
		c := NewMemoryCache()
		require.NoError(t, c.Put(addr, testRecord()))
		require.NoError(t, c.Delete(addr))

		_, err := c.Get(addr)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete absent entry is not an error", func(t *testing.T) {
		c := NewMemoryCache()
		require.NoError(t, c.Delete(addr))
	})

	t.Run("stored record is isolated from the caller", func(t *testing.T) {
		c := NewMemoryCache()
		rec := testRecord()
		require.NoError(t, c.Put(addr, rec))

		rec.DisplayName = "Mallory"
		rec.Languages[0].Code = "xx"

		got, err := c.Get(addr)
		require.NoError(t, err)
		require.Equal(t, "Alice", got.DisplayName)
		require.Equal(t, "en", got.Languages[0].Code)

		// And the returned copy is isolated too.
		got.Languages[0].Code = "yy"
		again, err := c.Get(addr)
		require.NoError(t, err)
		require.Equal(t, "en", again.Languages[0].Code)
	})

	t.Run("concurrent access", func(t *testing.T) {
		c := NewMemoryCache()
		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					_ = c.Put(addr, testRecord())
					_, _ = c.Get(addr)
					_ = c.Delete(addr)
				}
			}()
		}
		wg.Wait()
	})
}

func TestNoOpCache(t *testing.T) {
	c := NewNoOpCache()
	require.NoError(t, c.Put("0xabc", testRecord()))
	_, err := c.Get("0xabc")
	require.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, c.Delete("0xabc"))
	require.NoError(t, c.Close())
}

func TestNew(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		c, err := New(config.CacheConfig{Backend: config.BackendMemory})
		require.NoError(t, err)
		require.IsType(t, &MemoryCache{}, c)
	})

	t.Run("none", func(t *testing.T) {
		c, err := New(config.CacheConfig{Backend: config.BackendNone})
		require.NoError(t, err)
		require.IsType(t, &NoOpCache{}, c)
	})

	t.Run("leveldb", func(t *testing.T) {
		c, err := New(config.CacheConfig{Backend: config.BackendLevelDB, Path: t.TempDir()})
		require.NoError(t, err)
		defer c.Close()
		require.IsType(t, &LevelDBCache{}, c)
	})

	t.Run("unknown backend", func(t *testing.T) {
		_, err := New(config.CacheConfig{Backend: "redis"})
		require.Error(t, err)
	})
}
