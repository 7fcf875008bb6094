// Inkwell - Bookstore Management and Recommendation Backend
// Copyright 2026 Inkwell Labs
// SPDX-License-Identifier: MIT
// https://github.com/inkwell-labs/inkwell

// Package metrics provides Prometheus instrumentation for Inkwell:
// database query performance, API latency and throughput, importer
// progress, and recommendation engine rebuilds.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Database metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation", "table"},
	)

	// API endpoint metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Recommendation engine metrics
	RecommendRebuilds = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_rebuilds_total",
			Help: "Total number of recommendation dataset rebuilds",
		},
		[]string{"trigger"}, // "reload" for explicit rebuilds, "lazy" for on-demand
	)

	RecommendRebuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_rebuild_duration_seconds",
			Help:    "Duration of recommendation dataset rebuilds in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_requests_total",
			Help: "Total number of recommendation requests by strategy",
		},
		[]string{"strategy"},
	)

	RecommendFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_fallbacks_total",
			Help: "Recommendation requests that fell back to popularity",
		},
		[]string{"strategy", "reason"}, // reason: "unknown_customer", "unknown_book", "no_purchases"
	)

	// Importer metrics
	ImportRowsRead = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "import_rows_read_total",
			Help: "Total number of CSV rows read by the importer",
		},
		[]string{"entity"}, // "books", "customers", "sales"
	)

	ImportRowsInserted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "import_rows_inserted_total",
			Help: "Total number of cleaned rows inserted by the importer",
		},
		[]string{"entity"},
	)

	ImportDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "import_duration_seconds",
			Help:    "Duration of a full CSV import in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
	)
)

// RecordDBQuery records a database query metric.
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation, table).Inc()
	}
}

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRebuild records a recommendation dataset rebuild.
func RecordRebuild(trigger string, duration time.Duration) {
	RecommendRebuilds.WithLabelValues(trigger).Inc()
	RecommendRebuildDuration.Observe(duration.Seconds())
}

// RecordRecommendRequest records a recommendation request by strategy.
func RecordRecommendRequest(strategy string) {
	RecommendRequests.WithLabelValues(strategy).Inc()
}

// RecordRecommendFallback records a popularity fallback.
func RecordRecommendFallback(strategy, reason string) {
	RecommendFallbacks.WithLabelValues(strategy, reason).Inc()
}
