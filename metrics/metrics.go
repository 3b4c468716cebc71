// Package metrics exposes Prometheus instrumentation for the weather
// gateway: cache effectiveness per endpoint and upstream request outcomes.
package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type weatherMetricsCollector struct {
	CacheHits       *prometheus.CounterVec
	CacheMisses     *prometheus.CounterVec
	CacheRequests   *prometheus.CounterVec
	CacheHitRatio   *prometheus.GaugeVec
	UpstreamCalls   *prometheus.CounterVec
	UpstreamLatency *prometheus.HistogramVec
}

var (
	globalCollector *weatherMetricsCollector
	collectorOnce   sync.Once
)

func getCollector() *weatherMetricsCollector {
	collectorOnce.Do(func() {
		globalCollector = &weatherMetricsCollector{
			CacheHits: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "weather_cache_hits_total",
					Help: "The total number of cache hits",
				},
				[]string{"endpoint"},
			),
			CacheMisses: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "weather_cache_misses_total",
					Help: "The total number of cache misses",
				},
				[]string{"endpoint"},
			),
			CacheRequests: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "weather_cache_requests_total",
					Help: "The total number of cache requests",
				},
				[]string{"endpoint"},
			),
			CacheHitRatio: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Name: "weather_cache_hit_ratio",
					Help: "Cache hit ratio (hits/total requests)",
				},
				[]string{"endpoint"},
			),
			UpstreamCalls: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "weather_upstream_requests_total",
					Help: "The total number of upstream provider requests",
				},
				[]string{"endpoint", "status"},
			),
			UpstreamLatency: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "weather_upstream_duration_seconds",
					Help:    "Upstream provider request duration in seconds",
					Buckets: prometheus.DefBuckets,
				},
				[]string{"endpoint"},
			),
		}
	})
	return globalCollector
}

// CacheMetrics tracks cache effectiveness for one gateway endpoint.
type CacheMetrics struct {
	endpoint  string
	hits      int64
	misses    int64
	total     int64
	collector *weatherMetricsCollector
	mu        sync.RWMutex
}

func NewCacheMetrics(endpoint string) *CacheMetrics {
	return &CacheMetrics{
		endpoint:  endpoint,
		collector: getCollector(),
	}
}

func (m *CacheMetrics) RecordHit() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.hits++
	m.total++
	m.collector.CacheHits.WithLabelValues(m.endpoint).Inc()
	m.collector.CacheRequests.WithLabelValues(m.endpoint).Inc()
	m.updateHitRatio()
}

func (m *CacheMetrics) RecordMiss() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.misses++
	m.total++
	m.collector.CacheMisses.WithLabelValues(m.endpoint).Inc()
	m.collector.CacheRequests.WithLabelValues(m.endpoint).Inc()
	m.updateHitRatio()
}

// updateHitRatio updates the Prometheus hit ratio gauge.
// Must be called while holding the mutex.
func (m *CacheMetrics) updateHitRatio() {
	if m.total > 0 {
		ratio := float64(m.hits) / float64(m.total)
		m.collector.CacheHitRatio.WithLabelValues(m.endpoint).Set(ratio)
	}
}

// Stats is a point-in-time snapshot of one endpoint's cache counters.
type Stats struct {
	Endpoint string  `json:"endpoint"`
	Hits     int64   `json:"hits"`
	Misses   int64   `json:"misses"`
	Total    int64   `json:"total"`
	HitRatio float64 `json:"hitRatio"`
}

func (m *CacheMetrics) GetStats() Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var hitRatio float64
	if m.total > 0 {
		hitRatio = float64(m.hits) / float64(m.total)
	}

	return Stats{
		Endpoint: m.endpoint,
		Hits:     m.hits,
		Misses:   m.misses,
		Total:    m.total,
		HitRatio: hitRatio,
	}
}

// UpstreamMetrics tracks provider request outcomes for one endpoint.
type UpstreamMetrics struct {
	endpoint  string
	collector *weatherMetricsCollector
}

func NewUpstreamMetrics(endpoint string) *UpstreamMetrics {
	return &UpstreamMetrics{
		endpoint:  endpoint,
		collector: getCollector(),
	}
}

// RecordRequest records one provider round trip. A statusCode of 0 means the
// request never produced a response (transport error or timeout).
func (m *UpstreamMetrics) RecordRequest(statusCode int, duration time.Duration) {
	status := "error"
	if statusCode > 0 {
		status = strconv.Itoa(statusCode)
	}
	m.collector.UpstreamCalls.WithLabelValues(m.endpoint, status).Inc()
	m.collector.UpstreamLatency.WithLabelValues(m.endpoint).Observe(duration.Seconds())
}
