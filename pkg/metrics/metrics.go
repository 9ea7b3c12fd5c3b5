package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PredictionMetrics records submission outcomes and upstream call latency.
type PredictionMetrics struct {
	submissions *prometheus.CounterVec
	latency     *prometheus.HistogramVec
}

// New registers the prediction collectors on the provided registerer. If reg
// is nil the default registerer is used. Collectors that are already
// registered are reused.
func New(reg prometheus.Registerer) (*PredictionMetrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	submissions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "iris_predictions_total",
		Help: "Total number of prediction submissions",
	}, []string{"outcome", "species"})

	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "iris_classifier_latency_seconds",
		Help:    "Round trip time of calls to the prediction service",
		Buckets: prometheus.DefBuckets,
	}, []string{"outcome"})

	if err := reg.Register(submissions); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			submissions = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(latency); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			latency = are.ExistingCollector.(*prometheus.HistogramVec)
		} else {
			return nil, err
		}
	}

	return &PredictionMetrics{submissions: submissions, latency: latency}, nil
}

// RecordSubmission counts one finished submission. Safe on a nil receiver so
// callers without metrics wired do not need to guard.
func (m *PredictionMetrics) RecordSubmission(outcome, species string) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(outcome, species).Inc()
}

// ObserveLatency records one upstream round trip.
func (m *PredictionMetrics) ObserveLatency(outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.latency.WithLabelValues(outcome).Observe(d.Seconds())
}
