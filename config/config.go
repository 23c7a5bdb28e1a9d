// Package config provides TOML-backed configuration for the profile
// registry client.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/techno-hippies/dotheaven-sub003/types"
)

// CacheBackend selects the profile cache implementation.
type CacheBackend string

// Cache backend constants.
const (
	// BackendMemory keeps decoded profiles in process memory.
	BackendMemory CacheBackend = "memory"

	// BackendLevelDB persists decoded profiles with LevelDB.
	BackendLevelDB CacheBackend = "leveldb"

	// BackendBadgerDB persists decoded profiles with BadgerDB.
	BackendBadgerDB CacheBackend = "badgerdb"

	// BackendNone disables caching.
	BackendNone CacheBackend = "none"
)

// ValidBackends contains all valid cache backends.
var ValidBackends = []CacheBackend{BackendMemory, BackendLevelDB, BackendBadgerDB, BackendNone}

// IsValid returns true if the backend is valid.
func (b CacheBackend) IsValid() bool {
	for _, valid := range ValidBackends {
		if b == valid {
			return true
		}
	}
	return false
}

// Config is the main configuration for the profile client.
type Config struct {
	Chain   ChainConfig   `toml:"chain"`
	Cache   CacheConfig   `toml:"cache"`
	Metrics MetricsConfig `toml:"metrics"`
	Logging LoggingConfig `toml:"logging"`
}

// ChainConfig contains chain endpoint and contract configuration.
type ChainConfig struct {
	// RPCURL is the JSON-RPC endpoint used for eth_call reads.
	RPCURL string `toml:"rpc_url"`

	// ContractAddress is the profile registry contract address.
	ContractAddress string `toml:"contract_address"`

	// ChainID identifies the network; informational, not validated
	// against the endpoint.
	ChainID int64 `toml:"chain_id"`

	// ProfileVersion is the head layout version written by this client.
	ProfileVersion uint32 `toml:"profile_version"`

	// RequestTimeout is the per-call HTTP timeout.
	RequestTimeout Duration `toml:"request_timeout"`
}

// CacheConfig contains profile cache configuration.
type CacheConfig struct {
	// Backend is the cache backend ("memory", "leveldb", "badgerdb", "none").
	Backend CacheBackend `toml:"backend"`

	// Path is the directory path for disk-backed backends.
	Path string `toml:"path"`
}

// MetricsConfig contains metrics configuration.
type MetricsConfig struct {
	// Enabled determines whether metrics collection is active.
	Enabled bool `toml:"enabled"`

	// Namespace is the Prometheus metrics namespace prefix.
	Namespace string `toml:"namespace"`

	// ListenAddr is the address to serve metrics on (e.g., ":9090").
	ListenAddr string `toml:"listen_addr"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level ("debug", "info", "warn", "error").
	Level string `toml:"level"`

	// Format is the log output format ("text" or "json").
	Format string `toml:"format"`

	// Output is the log output destination ("stdout", "stderr", or a file path).
	Output string `toml:"output"`
}

// Duration is a wrapper around time.Duration for TOML unmarshaling.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler for Duration.
func (d *Duration) UnmarshalText(text []byte) error {
	duration, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(duration)
	return nil
}

// MarshalText implements encoding.TextMarshaler for Duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Duration returns the underlying time.Duration.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Chain: ChainConfig{
			RPCURL:          "http://localhost:8545",
			ContractAddress: "0x0000000000000000000000000000000000000000",
			ChainID:         1,
			ProfileVersion:  1,
			RequestTimeout:  Duration(20 * time.Second),
		},
		Cache: CacheConfig{
			Backend: BackendMemory,
			Path:    "data/profiles",
		},
		Metrics: MetricsConfig{
			Enabled:    false,
			Namespace:  "dotheaven",
			ListenAddr: ":9090",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// LoadConfig loads configuration from a TOML file.
// Missing values are filled with defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// SaveConfig writes the configuration to a TOML file.
func SaveConfig(path string, cfg *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return nil
}

// Validation errors.
var (
	ErrEmptyRPCURL            = errors.New("rpc_url cannot be empty")
	ErrInvalidContractAddress = errors.New("contract_address must be a 0x-prefixed 40-hex-digit address")
	ErrInvalidProfileVersion  = errors.New("profile_version must be positive")
	ErrInvalidRequestTimeout  = errors.New("request_timeout must be positive")
	ErrInvalidCacheBackend    = errors.New("cache backend must be one of: memory, leveldb, badgerdb, none")
	ErrEmptyCachePath         = errors.New("cache path cannot be empty for disk backends")
	ErrEmptyMetricsNamespace  = errors.New("metrics namespace cannot be empty when enabled")
	ErrEmptyMetricsListenAddr = errors.New("metrics listen_addr cannot be empty when enabled")
	ErrInvalidLogLevel        = errors.New("log level must be one of: debug, info, warn, error")
	ErrInvalidLogFormat       = errors.New("log format must be 'text' or 'json'")
	ErrEmptyLogOutput         = errors.New("log output cannot be empty")
)

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if err := c.Chain.Validate(); err != nil {
		return fmt.Errorf("chain config: %w", err)
	}
	if err := c.Cache.Validate(); err != nil {
		return fmt.Errorf("cache config: %w", err)
	}
	if err := c.Metrics.Validate(); err != nil {
		return fmt.Errorf("metrics config: %w", err)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}
	return nil
}

// Validate checks the chain configuration for errors.
func (c *ChainConfig) Validate() error {
	if c.RPCURL == "" {
		return ErrEmptyRPCURL
	}
	if err := types.ValidateAddress(c.ContractAddress); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidContractAddress, err)
	}
	if c.ProfileVersion == 0 {
		return ErrInvalidProfileVersion
	}
	if c.RequestTimeout.Duration() <= 0 {
		return ErrInvalidRequestTimeout
	}
	return nil
}

// Validate checks the cache configuration for errors.
func (c *CacheConfig) Validate() error {
	if !c.Backend.IsValid() {
		return ErrInvalidCacheBackend
	}
	if (c.Backend == BackendLevelDB || c.Backend == BackendBadgerDB) && c.Path == "" {
		return ErrEmptyCachePath
	}
	return nil
}

// Validate checks the metrics configuration for errors.
func (c *MetricsConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Namespace == "" {
		return ErrEmptyMetricsNamespace
	}
	if c.ListenAddr == "" {
		return ErrEmptyMetricsListenAddr
	}
	return nil
}

// Validate checks the logging configuration for errors.
func (c *LoggingConfig) Validate() error {
	switch strings.ToLower(c.Level) {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}
	switch strings.ToLower(c.Format) {
	case "text", "json":
	default:
		return ErrInvalidLogFormat
	}
	if c.Output == "" {
		return ErrEmptyLogOutput
	}
	return nil
}
