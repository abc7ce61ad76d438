// Package metrics exposes the Prometheus collectors of the lunch planner and
// a small process health snapshot.
package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"lunch-planner/internal/weekly"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lunchplanner_http_requests_total",
		Help: "The total number of handled HTTP requests",
	}, []string{"route", "method", "status"})
	httpLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lunchplanner_http_request_duration_seconds",
		Help:    "Latency of handled HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})
	viewsBuilt = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lunchplanner_weekly_views_total",
		Help: "The total number of weekly views built",
	})
	viewDiagnostics = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lunchplanner_weekly_diagnostics_total",
		Help: "Records dropped or flagged while building weekly views, by kind",
	}, []string{"kind"})
)

// Diagnostic kinds used as label values.
const (
	KindMalformed = "malformed"
	KindAmbiguous = "ambiguous"
	KindOrphaned  = "orphaned"
	KindOther     = "other"
)

// ObserveRequest records one handled HTTP request.
func ObserveRequest(route, method string, status int, elapsed time.Duration) {
	httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	httpLatency.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// ObserveView records one built weekly view and what went wrong while building it.
func ObserveView(diag weekly.Diagnostics) {
	viewsBuilt.Inc()
	for _, err := range diag.Warnings {
		viewDiagnostics.WithLabelValues(DiagnosticKind(err)).Inc()
	}
	if n := len(diag.Orphaned); n > 0 {
		viewDiagnostics.WithLabelValues(KindOrphaned).Add(float64(n))
	}
}

// DiagnosticKind classifies a weekly diagnostic for labelling.
func DiagnosticKind(err error) string {
	switch {
	case errors.Is(err, weekly.ErrMalformedRecord):
		return KindMalformed
	case errors.Is(err, weekly.ErrAmbiguousMatch):
		return KindAmbiguous
	case errors.Is(err, weekly.ErrOrphanedSelection):
		return KindOrphaned
	default:
		return KindOther
	}
}
