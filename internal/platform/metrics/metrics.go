// Copyright (c) 2026 Caboomlog. All rights reserved.

/*
Package metrics exposes Prometheus series for HTTP traffic and category operations.

Each [Collector] owns a private registry, so tests can create as many as they need
without duplicate-registration panics.
*/
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds every series of the API.
type Collector struct {
	registry *prometheus.Registry

	// HTTP
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Category operations
	CategoriesCreated prometheus.Counter
	VisibilityChanges *prometheus.CounterVec
	CascadeSize       prometheus.Histogram
	OrderSwaps        prometheus.Counter
	RuleViolations    *prometheus.CounterVec

	// Topic cache
	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter
}

// NewCollector registers all series under namespace, plus the Go runtime and
// process collectors.
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	collector := &Collector{
		registry: registry,
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		CategoriesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "categories_created_total",
			Help:      "Total number of categories created",
		}),
		VisibilityChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "category_visibility_changes_total",
			Help:      "Visibility changes by requested visibility",
		}, []string{"visibility"}),
		CascadeSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "category_private_cascade_size",
			Help:      "Number of categories made private by one cascade",
			Buckets:   []float64{1, 2, 5, 10, 25, 50, 100, 200},
		}),
		OrderSwaps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "category_order_swaps_total",
			Help:      "Total number of sibling order swaps",
		}),
		RuleViolations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "category_rule_violations_total",
			Help:      "Rejected category operations by error code",
		}, []string{"code"}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "topic_cache_hits_total",
			Help:      "Topic catalog cache hits",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "topic_cache_misses_total",
			Help:      "Topic catalog cache misses",
		}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collector.HTTPRequests,
		collector.HTTPDuration,
		collector.CategoriesCreated,
		collector.VisibilityChanges,
		collector.CascadeSize,
		collector.OrderSwaps,
		collector.RuleViolations,
		collector.CacheHits,
		collector.CacheMisses,
	)

	return collector
}

// Registry returns the collector's registry, mainly for tests.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// # Category Recorder

// CategoryCreated counts a successful creation.
func (c *Collector) CategoryCreated() {
	c.CategoriesCreated.Inc()
}

// VisibilityChanged counts a visibility change that touched affected categories.
func (c *Collector) VisibilityChanged(public bool, affected int) {
	if public {
		c.VisibilityChanges.WithLabelValues("public").Inc()
		return
	}
	c.VisibilityChanges.WithLabelValues("private").Inc()
	c.CascadeSize.Observe(float64(affected))
}

// OrderSwapped counts a successful order swap.
func (c *Collector) OrderSwapped() {
	c.OrderSwaps.Inc()
}

// RuleViolated counts a rejected operation by its error code.
func (c *Collector) RuleViolated(code string) {
	c.RuleViolations.WithLabelValues(code).Inc()
}

// # Cache Recorder

// CacheHit counts a topic cache hit.
func (c *Collector) CacheHit() { c.CacheHits.Inc() }

// CacheMiss counts a topic cache miss.
func (c *Collector) CacheMiss() { c.CacheMisses.Inc() }

// # HTTP Instrumentation

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (writer *statusWriter) WriteHeader(code int) {
	writer.status = code
	writer.ResponseWriter.WriteHeader(code)
}

// Middleware records request counts and latency labelled by the chi route pattern,
// which keeps label cardinality bounded.
func (c *Collector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		startTime := time.Now()
		wrapped := &statusWriter{ResponseWriter: writer, status: http.StatusOK}

		next.ServeHTTP(wrapped, request)

		route := "unmatched"
		if routeContext := chi.RouteContext(request.Context()); routeContext != nil {
			if pattern := routeContext.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		c.HTTPRequests.WithLabelValues(request.Method, route, strconv.Itoa(wrapped.status)).Inc()
		c.HTTPDuration.WithLabelValues(request.Method, route).Observe(time.Since(startTime).Seconds())
	})
}
