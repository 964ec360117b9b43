package content

import "github.com/prometheus/client_golang/prometheus"

var (
	fetchTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "garden",
		Subsystem: "content",
		Name:      "fetch_total",
		Help:      "Content fetches by query and outcome",
	}, []string{"query", "outcome"})

	fetchDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "garden",
		Subsystem: "content",
		Name:      "fetch_duration_seconds",
		Help:      "Latency of content store round trips",
		Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
	}, []string{"query"})

	documentsDropped = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "garden",
		Subsystem: "content",
		Name:      "documents_dropped_total",
		Help:      "Documents removed from results because they were inactive or invalid",
	}, []string{"collection", "reason"})
)

func init() {
	prometheus.MustRegister(fetchTotal, fetchDuration, documentsDropped)
}
