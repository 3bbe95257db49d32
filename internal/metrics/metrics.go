// Package metrics exposes Prometheus instrumentation for provider calls and the POI pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

var (
	providerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "provider_requests_total",
			Help: "Calls to external model and geocoding providers.",
		},
		[]string{"provider", "operation", "outcome"},
	)

	providerDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "provider_request_duration_seconds",
			Help:    "Round trip time of provider calls.",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"provider", "operation"},
	)

	pipelineDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "poi_pipeline_duration_seconds",
			Help:    "End to end duration of the POI pipeline.",
			Buckets: []float64{1, 2.5, 5, 10, 20, 30, 60, 120},
		},
		[]string{"outcome"},
	)
)

func outcome(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeSuccess
}

// ObserveProviderCall records one provider round trip.
func ObserveProviderCall(provider, operation string, start time.Time, err error) {
	providerRequests.WithLabelValues(provider, operation, outcome(err)).Inc()
	providerDuration.WithLabelValues(provider, operation).Observe(time.Since(start).Seconds())
}

// ObservePipeline records one POI pipeline run.
func ObservePipeline(start time.Time, err error) {
	pipelineDuration.WithLabelValues(outcome(err)).Observe(time.Since(start).Seconds())
}
