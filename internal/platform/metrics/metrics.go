// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package metrics exposes the API's Prometheus series on a private registry.

Two groups of series are recorded:

  - HTTP: request count and latency per chi route pattern.
  - Domain: ads created, favorites added per actor kind, search hits.

Domain recorders are nil-safe so services and tests can run without metrics.
*/
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// unmatchedRoute labels requests no route pattern matched, keeping label cardinality bounded.
const unmatchedRoute = "unmatched"

// Metrics holds the registry and every collector the API exports.
type Metrics struct {
	Registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	adsCreated     prometheus.Counter
	favoritesAdded *prometheus.CounterVec
	searchHits     prometheus.Counter
}

// New builds and registers all collectors under namespace.
func New(namespace string) *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		Registry: registry,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		adsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ads_created_total",
			Help:      "Ads created by sellers.",
		}),
		favoritesAdded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "favorites_added_total",
			Help:      "New favorite entries by actor kind. Idempotent repeats are not counted.",
		}, []string{"actor"}),
		searchHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_hits_total",
			Help:      "Registered search hits across all ads.",
		}),
	}

	registry.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.adsCreated,
		m.favoritesAdded,
		m.searchHits,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}

// Middleware records count and latency of every request.
//
// The route label is the chi pattern ("/api/v1/ads/{slug}"), read after the
// router has matched, never the raw path.
func (m *Metrics) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			startTime := time.Now()
			wrapped := chimiddleware.NewWrapResponseWriter(writer, request.ProtoMajor)

			next.ServeHTTP(wrapped, request)

			route := unmatchedRoute
			if routeContext := chi.RouteContext(request.Context()); routeContext != nil {
				if pattern := routeContext.RoutePattern(); pattern != "" {
					route = pattern
				}
			}

			status := wrapped.Status()
			if status == 0 {
				status = http.StatusOK
			}

			m.httpRequests.WithLabelValues(request.Method, route, strconv.Itoa(status)).Inc()
			m.httpDuration.WithLabelValues(request.Method, route).Observe(time.Since(startTime).Seconds())
		})
	}
}

// # Domain recorders

// AdCreated counts a newly created ad.
func (m *Metrics) AdCreated() {
	if m == nil {
		return
	}
	m.adsCreated.Inc()
}

// FavoriteAdded counts a new favorite entry for the given actor kind ("user", "device").
func (m *Metrics) FavoriteAdded(actorKind string) {
	if m == nil {
		return
	}
	m.favoritesAdded.WithLabelValues(actorKind).Inc()
}

// SearchHit counts one registered search hit.
func (m *Metrics) SearchHit() {
	if m == nil {
		return
	}
	m.searchHits.Inc()
}
