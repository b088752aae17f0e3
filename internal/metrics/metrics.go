// Package metrics exposes Prometheus collectors for recommendations, HTTP
// traffic and background jobs. A nil *Metrics is valid and records nothing.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "greenmix"

// Metrics holds every collector the service reports
type Metrics struct {
	recommendations       *prometheus.CounterVec
	recommendationLatency *prometheus.HistogramVec
	cacheLookups          *prometheus.CounterVec
	outOfBounds           prometheus.Counter
	httpRequests          *prometheus.CounterVec
	httpDuration          *prometheus.HistogramVec
	jobRuns               *prometheus.CounterVec
	sessionsPurged        prometheus.Counter
}

// New creates the collectors and registers them with reg. Collectors that
// are already registered (a second New against the same registry) are
// reused. reg defaults to prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		recommendations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "recommendation",
			Name:      "requests_total",
			Help:      "Recommendations computed, by risk appetite and outcome.",
		}, []string{"risk_appetite", "status"}),
		recommendationLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "recommendation",
			Name:      "duration_seconds",
			Help:      "Time spent computing a recommendation.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}, []string{"cache"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "recommendation",
			Name:      "cache_lookups_total",
			Help:      "Recommendation cache lookups, by result.",
		}, []string{"result"}),
		outOfBounds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "allocation",
			Name:      "out_of_bounds_total",
			Help:      "Allocations whose final split left a per-asset bound.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests, by method, route and status code.",
		}, []string{"method", "route", "code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		jobRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scheduler",
			Name:      "job_runs_total",
			Help:      "Scheduled job executions, by job and outcome.",
		}, []string{"job", "status"}),
		sessionsPurged: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sessions",
			Name:      "purged_total",
			Help:      "Expired sessions removed from the cache database.",
		}),
	}

	var err error
	m.recommendations, err = register(reg, m.recommendations)
	if err != nil {
		return nil, err
	}
	if m.recommendationLatency, err = register(reg, m.recommendationLatency); err != nil {
		return nil, err
	}
	if m.cacheLookups, err = register(reg, m.cacheLookups); err != nil {
		return nil, err
	}
	if m.outOfBounds, err = register(reg, m.outOfBounds); err != nil {
		return nil, err
	}
	if m.httpRequests, err = register(reg, m.httpRequests); err != nil {
		return nil, err
	}
	if m.httpDuration, err = register(reg, m.httpDuration); err != nil {
		return nil, err
	}
	if m.jobRuns, err = register(reg, m.jobRuns); err != nil {
		return nil, err
	}
	if m.sessionsPurged, err = register(reg, m.sessionsPurged); err != nil {
		return nil, err
	}

	return m, nil
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// ObserveRecommendation records one recommendation request. risk must come
// from a closed set of values.
func (m *Metrics) ObserveRecommendation(risk string, cached bool, err error, d time.Duration) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	cache := "miss"
	if cached {
		cache = "hit"
	}
	m.recommendations.WithLabelValues(risk, status).Inc()
	m.recommendationLatency.WithLabelValues(cache).Observe(d.Seconds())
}

// ObserveCacheLookup records one recommendation cache lookup
func (m *Metrics) ObserveCacheLookup(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}

// IncOutOfBounds counts an allocation that ended outside its bounds
func (m *Metrics) IncOutOfBounds() {
	if m == nil {
		return
	}
	m.outOfBounds.Inc()
}

// ObserveHTTP records one served request
func (m *Metrics) ObserveHTTP(method, route string, code int, d time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, statusLabel(code)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// ObserveJob records a scheduled job run
func (m *Metrics) ObserveJob(job string, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.jobRuns.WithLabelValues(job, status).Inc()
}

// AddSessionsPurged counts sessions removed by the purge job
func (m *Metrics) AddSessionsPurged(n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.sessionsPurged.Add(float64(n))
}

func statusLabel(code int) string {
	switch {
	case code >= 500:
		return "5xx"
	case code >= 400:
		return "4xx"
	case code >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
