// Package metrics owns the prometheus collectors exported by the portfolio
// service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "portfolio"

// Outcome labels.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Page cache result labels.
const (
	CacheHit     = "hit"
	CacheRefresh = "refresh"
	CacheStale   = "stale"
	CacheError   = "error"
)

// Metrics groups the collectors registered on one registry.
type Metrics struct {
	fetchTotal    *prometheus.CounterVec
	fetchDuration *prometheus.HistogramVec
	pageCache     *prometheus.CounterVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		fetchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "content",
			Name:      "fetch_total",
			Help:      "Content store operations by operation and outcome.",
		}, []string{"operation", "outcome"}),
		fetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "content",
			Name:      "fetch_duration_seconds",
			Help:      "Latency of content store operations.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		pageCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "page",
			Name:      "cache_total",
			Help:      "Page data lookups by page and result.",
		}, []string{"page", "result"}),
	}
	if reg != nil {
		for _, c := range []prometheus.Collector{m.fetchTotal, m.fetchDuration, m.pageCache} {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

// ObserveFetch records one content store operation.
func (m *Metrics) ObserveFetch(operation string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	m.fetchTotal.WithLabelValues(operation, outcome).Inc()
	m.fetchDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// ObservePageCache records one page data lookup.
func (m *Metrics) ObservePageCache(page, result string) {
	if m == nil {
		return
	}
	m.pageCache.WithLabelValues(page, result).Inc()
}
