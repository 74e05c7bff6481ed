package monitoring

import "github.com/prometheus/client_golang/prometheus"

var (
	PublishesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "postsched_publishes_total",
			Help: "Total number of scheduled publish executions",
		},
		[]string{"outcome"}, // published, fenced, auth_error, remote_error
	)

	SyncPassesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "postsched_sync_passes_total",
			Help: "Total number of reconciliation passes",
		},
		[]string{"outcome"}, // completed, skipped, failed
	)

	SyncItemsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "postsched_sync_items_total",
			Help: "Remote timeline items seen by reconciliation",
		},
		[]string{"disposition"}, // inserted, duplicate, quarantined
	)

	DispatcherJobsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "postsched_dispatcher_jobs_total",
			Help: "Dispatcher job lifecycle events",
		},
		[]string{"event"}, // submitted, cancelled, fired
	)

	DispatcherQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "postsched_dispatcher_queue_depth",
			Help: "Jobs currently waiting for their fire time",
		},
	)

	HttpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "postsched_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path"},
	)
)

func init() {
	prometheus.MustRegister(
		PublishesTotal,
		SyncPassesTotal,
		SyncItemsTotal,
		DispatcherJobsTotal,
		DispatcherQueueDepth,
		HttpRequestDuration,
	)
}
