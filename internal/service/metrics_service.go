package service

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService owns the Prometheus registry and the domain counters.
type MetricsService struct {
	registry *prometheus.Registry

	httpDuration *prometheus.HistogramVec
	httpTotal    *prometheus.CounterVec

	cacheHits   prometheus.Counter
	cacheMisses prometheus.Counter

	classesCreated prometheus.Counter
	classesDeleted prometheus.Counter
	slotsGenerated prometheus.Counter
}

// NewMetricsService builds the registry with process, Go runtime and
// application collectors registered.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	s := &MetricsService{
		registry: registry,
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method, path and status.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		httpTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by method, path and status.",
		}, []string{"method", "path", "status"}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "refdata_cache_hits_total",
			Help: "Reference data cache hits.",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "refdata_cache_misses_total",
			Help: "Reference data cache misses.",
		}),
		classesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "classes_created_total",
			Help: "Classes created.",
		}),
		classesDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "classes_deleted_total",
			Help: "Classes deleted.",
		}),
		slotsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "schedule_slots_generated_total",
			Help: "Schedule slots generated during class creation.",
		}),
	}

	registry.MustRegister(
		s.httpDuration,
		s.httpTotal,
		s.cacheHits,
		s.cacheMisses,
		s.classesCreated,
		s.classesDeleted,
		s.slotsGenerated,
	)
	return s
}

// ObserveHTTPRequest records one completed HTTP request.
func (s *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if s == nil {
		return
	}
	labels := prometheus.Labels{
		"method": method,
		"path":   path,
		"status": strconv.Itoa(status),
	}
	s.httpDuration.With(labels).Observe(duration.Seconds())
	s.httpTotal.With(labels).Inc()
}

// RecordCacheHit counts a reference data cache hit.
func (s *MetricsService) RecordCacheHit() {
	if s == nil {
		return
	}
	s.cacheHits.Inc()
}

// RecordCacheMiss counts a reference data cache miss.
func (s *MetricsService) RecordCacheMiss() {
	if s == nil {
		return
	}
	s.cacheMisses.Inc()
}

// RecordClassCreated counts a created class and its generated slots.
func (s *MetricsService) RecordClassCreated(slots int) {
	if s == nil {
		return
	}
	s.classesCreated.Inc()
	s.slotsGenerated.Add(float64(slots))
}

// RecordClassDeleted counts a deleted class.
func (s *MetricsService) RecordClassDeleted() {
	if s == nil {
		return
	}
	s.classesDeleted.Inc()
}

// Handler exposes the registry in Prometheus exposition format.
func (s *MetricsService) Handler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})
}
