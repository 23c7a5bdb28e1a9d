package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusMetrics implements the Metrics interface using Prometheus.
type PrometheusMetrics struct {
	registry *prometheus.Registry

	decodesTotal *prometheus.CounterVec
	encodesTotal prometheus.Counter

	rpcCallsTotal *prometheus.CounterVec
	rpcLatency    *prometheus.HistogramVec

	cacheHits   prometheus.Counter
	cacheMisses prometheus.Counter
}

// NewPrometheusMetrics creates a new PrometheusMetrics instance.
func NewPrometheusMetrics(namespace string) *PrometheusMetrics {
	registry := prometheus.NewRegistry()

	m := &PrometheusMetrics{
		registry: registry,

		decodesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "profile_decodes_total",
				Help:      "Profile decode attempts by result.",
			},
			[]string{"result"},
		),
		encodesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "profile_encodes_total",
				Help:      "Wire-input builds.",
			},
		),
		rpcCallsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rpc_calls_total",
				Help:      "JSON-RPC calls by method and result.",
			},
			[]string{"method", "result"},
		),
		rpcLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "rpc_latency_seconds",
				Help:      "JSON-RPC call latency.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		cacheHits: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_hits_total",
				Help:      "Profiles served from the local cache.",
			},
		),
		cacheMisses: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_misses_total",
				Help:      "Profiles that required a chain read.",
			},
		),
	}

	registry.MustRegister(
		m.decodesTotal,
		m.encodesTotal,
		m.rpcCallsTotal,
		m.rpcLatency,
		m.cacheHits,
		m.cacheMisses,
	)

	return m
}

// ProfileDecoded records a decode attempt and its outcome.
func (m *PrometheusMetrics) ProfileDecoded(ok bool) {
	m.decodesTotal.WithLabelValues(resultLabel(ok)).Inc()
}

// ProfileEncoded records a wire-input build.
func (m *PrometheusMetrics) ProfileEncoded() {
	m.encodesTotal.Inc()
}

// RPCCall records one JSON-RPC call.
func (m *PrometheusMetrics) RPCCall(method string, duration time.Duration, err error) {
	m.rpcCallsTotal.WithLabelValues(method, resultLabel(err == nil)).Inc()
	m.rpcLatency.WithLabelValues(method).Observe(duration.Seconds())
}

// CacheHit records a cache hit.
func (m *PrometheusMetrics) CacheHit() {
	m.cacheHits.Inc()
}

// CacheMiss records a cache miss.
func (m *PrometheusMetrics) CacheMiss() {
	m.cacheMisses.Inc()
}

// Handler returns an HTTP handler serving the metrics registry.
func (m *PrometheusMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func resultLabel(ok bool) string {
	if ok {
		return "ok"
	}
	return "error"
}
