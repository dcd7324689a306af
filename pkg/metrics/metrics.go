// Package metrics provides Prometheus metrics instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks HTTP request duration.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inbox_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	// RequestsTotal tracks total HTTP requests.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inbox_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// SearchQueryDuration tracks conversation search store queries by operation (page, count, ids, keywords).
	SearchQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inbox_search_query_duration_seconds",
			Help:    "Conversation search query duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"operation", "status"},
	)

	// SearchOrderingTotal counts pages served per ordering strategy.
	SearchOrderingTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inbox_search_ordering_total",
			Help: "Conversation search pages by ordering strategy",
		},
		[]string{"strategy"},
	)

	// CursorResetsTotal counts cursors that could not be decoded and restarted pagination.
	CursorResetsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "inbox_search_cursor_resets_total",
			Help: "Pagination cursors that were malformed or stale and restarted from the first page",
		},
	)

	// KeywordMatches tracks how many conversations the keyword backend returned per search.
	KeywordMatches = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "inbox_search_keyword_matches",
			Help:    "Conversations matched by the keyword backend per free-text search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)

	// KeywordMatchesCappedTotal counts keyword searches that hit the match limit.
	KeywordMatchesCappedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "inbox_search_keyword_matches_capped_total",
			Help: "Keyword searches whose matches were truncated at the configured limit",
		},
	)
)

// Status labels.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// StatusOf returns the status label for err.
func StatusOf(err error) string {
	if err != nil {
		return StatusError
	}
	return StatusOK
}
