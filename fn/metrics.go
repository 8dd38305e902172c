package fn

import "github.com/prometheus/client_golang/prometheus"

// Collector aggregates prometheus metrics for combinator instances, labeled
// by instance id. All methods are safe on a nil receiver so call sites do
// not branch on whether metrics are configured.
type Collector struct {
	memoizeHits   *prometheus.CounterVec
	memoizeMisses *prometheus.CounterVec
	debounceCalls *prometheus.CounterVec
	debounceFires *prometheus.CounterVec
}

// NewCollector registers the collector's metrics with the default
// prometheus registerer.
func NewCollector() *Collector {
	return NewCollectorWithRegistry(prometheus.DefaultRegisterer)
}

// NewCollectorWithRegistry registers the collector's metrics with the given
// registerer. Use a private registry in tests.
func NewCollectorWithRegistry(registerer prometheus.Registerer) *Collector {
	c := &Collector{
		memoizeHits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fn_memoize_hits_total",
				Help: "Calls answered from a memoizer cache.",
			},
			[]string{"instance"},
		),
		memoizeMisses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fn_memoize_misses_total",
				Help: "Calls that computed and stored a fresh result.",
			},
			[]string{"instance"},
		),
		debounceCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fn_debounce_calls_total",
				Help: "Calls observed by a debouncer, fired or superseded.",
			},
			[]string{"instance"},
		),
		debounceFires: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fn_debounce_fires_total",
				Help: "Trailing invocations actually delivered.",
			},
			[]string{"instance"},
		),
	}
	registerer.MustRegister(c.memoizeHits, c.memoizeMisses, c.debounceCalls, c.debounceFires)
	return c
}

func (c *Collector) memoizeHit(id string) {
	if c == nil {
		return
	}
	c.memoizeHits.WithLabelValues(id).Inc()
}

func (c *Collector) memoizeMiss(id string) {
	if c == nil {
		return
	}
	c.memoizeMisses.WithLabelValues(id).Inc()
}

func (c *Collector) debounceCall(id string) {
	if c == nil {
		return
	}
	c.debounceCalls.WithLabelValues(id).Inc()
}

func (c *Collector) debounceFire(id string) {
	if c == nil {
		return
	}
	c.debounceFires.WithLabelValues(id).Inc()
}
