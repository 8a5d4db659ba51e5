// Package metrics provides Prometheus instrumentation for pool activity.
// Each pool that wants instrumentation gets its own Collector, labeled by
// pool name, and attaches it with pool.WithCollector.
//
// Recording is cheap: counters and gauges only, no histograms, so the
// engine's synchronous O(capacity) operations stay unobserved-cost-free
// when no collector is attached.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector tracks one pool's activity.
type Collector struct {
	acquires prometheus.Counter
	releases prometheus.Counter
	growths  prometheus.Counter
	failures *prometheus.CounterVec
	capacity prometheus.Gauge
	active   prometheus.Gauge
}

// NewCollector creates a collector registered with reg, labeled by pool
// name. A nil reg uses the default Prometheus registerer.
func NewCollector(pool string, reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	labels := prometheus.Labels{"pool": pool}

	return &Collector{
		acquires: f.NewCounter(prometheus.CounterOpts{
			Name:        "opalloc_acquires_total",
			Help:        "Total successful slot acquisitions",
			ConstLabels: labels,
		}),
		releases: f.NewCounter(prometheus.CounterOpts{
			Name:        "opalloc_releases_total",
			Help:        "Total successful slot releases",
			ConstLabels: labels,
		}),
		growths: f.NewCounter(prometheus.CounterOpts{
			Name:        "opalloc_growths_total",
			Help:        "Total pool growth events",
			ConstLabels: labels,
		}),
		failures: f.NewCounterVec(prometheus.CounterOpts{
			Name:        "opalloc_failures_total",
			Help:        "Total reported failures by kind",
			ConstLabels: labels,
		}, []string{"kind"}),
		capacity: f.NewGauge(prometheus.GaugeOpts{
			Name:        "opalloc_capacity_slots",
			Help:        "Current slot-table capacity",
			ConstLabels: labels,
		}),
		active: f.NewGauge(prometheus.GaugeOpts{
			Name:        "opalloc_active_objects",
			Help:        "Objects currently acquired and not released",
			ConstLabels: labels,
		}),
	}
}

// Acquired records one successful acquisition.
func (c *Collector) Acquired() {
	c.acquires.Inc()
	c.active.Inc()
}

// Released records one successful release.
func (c *Collector) Released() {
	c.releases.Inc()
	c.active.Dec()
}

// Grew records one growth event and the resulting capacity.
func (c *Collector) Grew(newCapacity int) {
	c.growths.Inc()
	c.capacity.Set(float64(newCapacity))
}

// Failed records one reported failure of the given kind.
func (c *Collector) Failed(kind string) {
	c.failures.WithLabelValues(kind).Inc()
}

// SetCapacity records the current slot-table capacity.
func (c *Collector) SetCapacity(n int) {
	c.capacity.Set(float64(n))
}
