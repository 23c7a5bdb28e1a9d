// Package registry reads profile records from the on-chain registry
// contract. It owns the view-call plumbing (calldata construction, the
// JSON-RPC eth_call, caching); transaction construction and signing stay
// with the external wallet layer.
package registry

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/techno-hippies/dotheaven-sub003/cache"
	"github.com/techno-hippies/dotheaven-sub003/codec"
	"github.com/techno-hippies/dotheaven-sub003/logging"
	"github.com/techno-hippies/dotheaven-sub003/metrics"
	"github.com/techno-hippies/dotheaven-sub003/types"
)

// ErrProfileNotFound is returned when an account has no on-chain
// profile, or the returned payload is structurally invalid.
var ErrProfileNotFound = errors.New("no on-chain profile")

// GetProfileSignature is the view function read by FetchProfile.
const GetProfileSignature = "getProfile(address)"

// DefaultTimeout is the per-call HTTP timeout when none is configured.
const DefaultTimeout = 20 * time.Second

// Client reads profiles from the registry contract over JSON-RPC.
// It is safe for concurrent use.
type Client struct {
	rpcURL   string
	contract string

	httpc *http.Client
	log   *logging.Logger
	met   metrics.Metrics
	cache cache.ProfileCache

	selGetProfile [codec.SelectorSize]byte
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the client logger.
func WithLogger(l *logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithMetrics sets the metrics collector.
func WithMetrics(m metrics.Metrics) Option {
	return func(c *Client) { c.met = m }
}

// WithCache sets the profile cache consulted before chain reads.
func WithCache(pc cache.ProfileCache) Option {
	return func(c *Client) { c.cache = pc }
}

// WithHTTPClient sets the HTTP client used for JSON-RPC requests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// WithTimeout sets the per-call HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpc.Timeout = d }
}

// NewClient creates a registry client for the given endpoint and
// contract address.
func NewClient(rpcURL, contractAddress string, opts ...Option) (*Client, error) {
	contract, err := types.NormalizeAddress(contractAddress)
	if err != nil {
		return nil, fmt.Errorf("contract address: %w", err)
	}
	if rpcURL == "" {
		return nil, errors.New("rpc url cannot be empty")
	}

	c := &Client{
		rpcURL:        rpcURL,
		contract:      contract,
		httpc:         &http.Client{Timeout: DefaultTimeout},
		log:           logging.NewNopLogger(),
		met:           metrics.NewNopMetrics(),
		cache:         cache.NewNoOpCache(),
		selGetProfile: codec.FunctionSelector(GetProfileSignature),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.WithComponent("registry")
	c.log.Debug("client configured", logging.URL(c.rpcURL), logging.Contract(c.contract))
	return c, nil
}

// CallData builds the calldata for a single-address view call:
// selector, 12 zero bytes, then the 20-byte address.
func CallData(selector [codec.SelectorSize]byte, address string) (string, error) {
	addr, err := types.NormalizeAddress(address)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("0x")
	b.WriteString(hex.EncodeToString(selector[:]))
	b.WriteString(strings.Repeat("0", (types.WordSize-types.AddressHexLen/2)*2))
	b.WriteString(strings.TrimPrefix(addr, "0x"))
	return b.String(), nil
}

// FetchProfile reads and decodes the profile for an account.
//
// The local cache is consulted first. A cache miss triggers one
// eth_call against the registry; an absent or structurally invalid
// payload maps to ErrProfileNotFound. The fetched record is cached
// before returning.
func (c *Client) FetchProfile(ctx context.Context, address string) (*types.ProfileRecord, error) {
	addr, err := types.NormalizeAddress(address)
	if err != nil {
		return nil, err
	}

	log := c.log.WithAddress(addr)

	if rec, err := c.cache.Get(addr); err == nil {
		c.met.CacheHit()
		log.Debug("profile served from cache")
		return rec, nil
	}
	c.met.CacheMiss()

	payload, err := c.ethCall(ctx, addr)
	if err != nil {
		return nil, fmt.Errorf("fetching profile: %w", err)
	}

	rec, ok := codec.DecodeProfile(payload)
	c.met.ProfileDecoded(ok)
	if !ok {
		log.Debug("no decodable profile", logging.Size(len(payload)/2))
		return nil, ErrProfileNotFound
	}

	if err := c.cache.Put(addr, rec); err != nil {
		// A failed cache write never fails the read.
		log.Warn("caching profile failed", logging.Error(err))
	}

	log.Debug("profile fetched", logging.ProfileVersion(rec.ProfileVersion))
	return rec, nil
}

// Invalidate drops the cached record for an account, forcing the next
// FetchProfile to hit the chain. Callers use this after a profile write
// confirms.
func (c *Client) Invalidate(address string) error {
	addr, err := types.NormalizeAddress(address)
	if err != nil {
		return err
	}
	return c.cache.Delete(addr)
}

// BuildWireInput normalizes a record into the write-call input. The
// actual transaction is built and signed by the external wallet layer.
func (c *Client) BuildWireInput(rec *types.ProfileRecord) types.WireProfileInput {
	c.met.ProfileEncoded()
	return codec.BuildWireInput(rec)
}

// ethCall performs the getProfile view call and returns the raw hex
// payload.
func (c *Client) ethCall(ctx context.Context, address string) (string, error) {
	data, err := CallData(c.selGetProfile, address)
	if err != nil {
		return "", err
	}

	start := time.Now()
	var result string
	err = c.call(ctx, "eth_call", []interface{}{
		callParams{To: c.contract, Data: data},
		"latest",
	}, &result)
	elapsed := time.Since(start)
	c.met.RPCCall("eth_call", elapsed, err)
	c.log.Debug("rpc call",
		logging.Method("eth_call"),
		logging.Duration(elapsed),
		logging.Error(err),
	)
	if err != nil {
		return "", err
	}
	return result, nil
}
