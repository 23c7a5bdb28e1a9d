package metrics

import "time"

// NopMetrics is a no-op implementation of the Metrics interface.
// Useful for tests or when metrics collection is disabled.
type NopMetrics struct{}

// NewNopMetrics creates a new no-op metrics instance.
func NewNopMetrics() *NopMetrics {
	return &NopMetrics{}
}

// ProfileDecoded does nothing.
func (*NopMetrics) ProfileDecoded(bool) {}

// ProfileEncoded does nothing.
func (*NopMetrics) ProfileEncoded() {}

// RPCCall does nothing.
func (*NopMetrics) RPCCall(string, time.Duration, error) {}

// CacheHit does nothing.
func (*NopMetrics) CacheHit() {}

// CacheMiss does nothing.
func (*NopMetrics) CacheMiss() {}
