// Package metrics provides Prometheus metrics for the feed sync engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SyncRunsTotal counts sync runs by terminal status.
	SyncRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "feedsync",
			Name:      "sync_runs_total",
			Help:      "Total number of finished sync runs",
		},
		[]string{"status"},
	)

	// SyncRunDuration measures sync run duration.
	SyncRunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "feedsync",
			Name:      "sync_run_duration_seconds",
			Help:      "Duration of sync runs in seconds",
			Buckets:   []float64{1, 5, 15, 30, 60, 90, 120, 180},
		},
	)

	// ArticlesUpserted counts articles written during sync runs.
	ArticlesUpserted = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "feedsync",
			Name:      "articles_upserted_total",
			Help:      "Total number of articles upserted from the provider",
		},
	)

	// ArticlesSkippedDeleted counts stream items dropped by the deletion filter.
	ArticlesSkippedDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "feedsync",
			Name:      "articles_skipped_deleted_total",
			Help:      "Total number of stream items skipped because they were locally deleted",
		},
	)

	// ZoneUsage tracks the current daily API usage per rate-limit zone.
	ZoneUsage = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "feedsync",
			Name:      "api_zone_usage",
			Help:      "Current daily API usage per rate-limit zone",
		},
		[]string{"zone"},
	)

	// ZoneLimit tracks the daily API limit per rate-limit zone.
	ZoneLimit = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "feedsync",
			Name:      "api_zone_limit",
			Help:      "Daily API call limit per rate-limit zone",
		},
		[]string{"zone"},
	)

	// QueueDepth tracks the number of pending mutation queue entries.
	QueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "feedsync",
			Name:      "mutation_queue_depth",
			Help:      "Number of pending entries in the mutation queue",
		},
	)

	// QueuePushTotal counts mutation pushes by outcome.
	QueuePushTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "feedsync",
			Name:      "mutation_queue_push_total",
			Help:      "Total number of mutation push attempts",
		},
		[]string{"status"},
	)

	// ContentFetchTotal counts full-content fetch attempts by outcome.
	ContentFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "feedsync",
			Name:      "content_fetch_total",
			Help:      "Total number of full-content fetch attempts",
		},
		[]string{"status"},
	)

	// HealthStatus reports the overall engine health (0 healthy, 1 degraded, 2 unhealthy).
	HealthStatus = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "feedsync",
			Name:      "health_status",
			Help:      "Overall engine health (0 = healthy, 1 = degraded, 2 = unhealthy)",
		},
	)
)

// RecordSyncRun records a finished sync run.
func RecordSyncRun(status string, durationSeconds float64) {
	SyncRunsTotal.WithLabelValues(status).Inc()
	SyncRunDuration.Observe(durationSeconds)
}

// SetZoneBudget updates the usage gauges for one zone.
func SetZoneBudget(zone string, used, limit int) {
	ZoneUsage.WithLabelValues(zone).Set(float64(used))
	ZoneLimit.WithLabelValues(zone).Set(float64(limit))
}
