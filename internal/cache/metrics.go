package cache

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics счётчики кэша анализа. Nil-значение ничего не считает.
type Metrics struct {
	hits   prometheus.Counter
	misses prometheus.Counter
}

// NewMetrics создаёт и регистрирует счётчики в reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "jboard",
			Subsystem: "analysis_cache",
			Name:      "hits_total",
			Help:      "Number of analysis requests served from cache.",
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "jboard",
			Subsystem: "analysis_cache",
			Name:      "misses_total",
			Help:      "Number of analysis requests not found in cache.",
		}),
	}
	reg.MustRegister(m.hits, m.misses)
	return m
}

func (m *Metrics) hit() {
	if m != nil {
		m.hits.Inc()
	}
}

func (m *Metrics) miss() {
	if m != nil {
		m.misses.Inc()
	}
}
