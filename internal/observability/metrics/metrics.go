package metrics

import "github.com/prometheus/client_golang/prometheus"

// Submission outcomes recorded per request.
const (
	OutcomeAccepted       = "accepted"
	OutcomeInvalid        = "invalid"
	OutcomeSpam           = "spam"
	OutcomeDeliveryFailed = "delivery_failed"
	OutcomeError          = "error"
)

// ContactMetrics exposes counters/histograms for the contact-form pipeline.
type ContactMetrics struct {
	submissionsTotal *prometheus.CounterVec
	deliveryLatency  prometheus.Histogram
}

func NewContactMetrics(reg prometheus.Registerer) *ContactMetrics {
	m := &ContactMetrics{
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dorolabs",
			Subsystem: "contact",
			Name:      "submissions_total",
			Help:      "Total contact form submissions by outcome",
		}, []string{"outcome"}),
		deliveryLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "dorolabs",
			Subsystem: "contact",
			Name:      "delivery_latency_seconds",
			Help:      "Latency of outbound email delivery calls",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissionsTotal, m.deliveryLatency)
	return m
}

func (m *ContactMetrics) ObserveSubmission(outcome string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(outcome).Inc()
}

func (m *ContactMetrics) ObserveDeliveryLatency(seconds float64) {
	if m == nil {
		return
	}
	m.deliveryLatency.Observe(seconds)
}
