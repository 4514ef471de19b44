package http

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts API calls by resource path and outcome.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "igdb_client_requests_total",
		Help: "Total number of IGDB API requests.",
	}, []string{"path", "code"}) // code: HTTP status, or "error" / "timeout"

	// RequestDuration records API call latency by resource path.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "igdb_client_request_duration_seconds",
		Help:    "Duration of IGDB API requests in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"path"})

	// MediaFetchesTotal counts image CDN fetches by outcome.
	MediaFetchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "igdb_client_media_fetches_total",
		Help: "Total number of image CDN fetches.",
	}, []string{"code"})
)

func recordRequest(path, code string, start time.Time) {
	RequestsTotal.WithLabelValues(path, code).Inc()
	RequestDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
}

func statusLabel(status int) string {
	return strconv.Itoa(status)
}
