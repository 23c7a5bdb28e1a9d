// Package metrics provides metrics collection for the profile client.
package metrics

import "time"

// Metrics defines the metrics collection interface for profile
// operations. Implementations must be safe for concurrent use.
type Metrics interface {
	// ProfileDecoded records a decode attempt and its outcome.
	// ok is false for absent or structurally invalid payloads.
	ProfileDecoded(ok bool)

	// ProfileEncoded records a wire-input build.
	ProfileEncoded()

	// RPCCall records one JSON-RPC call with its latency and outcome.
	RPCCall(method string, duration time.Duration, err error)

	// CacheHit records a profile served from the cache.
	CacheHit()

	// CacheMiss records a profile that required a chain read.
	CacheMiss()
}
