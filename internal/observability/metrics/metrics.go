package metrics

import "github.com/prometheus/client_golang/prometheus"

// LeadMetrics exposes counters/histograms for the intake pipeline.
type LeadMetrics struct {
	submissionsTotal *prometheus.CounterVec
	rejectionsTotal  *prometheus.CounterVec
	appendLatency    prometheus.Histogram
}

func NewLeadMetrics(reg prometheus.Registerer) *LeadMetrics {
	m := &LeadMetrics{
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "regen",
			Subsystem: "leads",
			Name:      "submissions_total",
			Help:      "Total lead submissions by outcome",
		}, []string{"outcome"}),
		rejectionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "regen",
			Subsystem: "leads",
			Name:      "rejections_total",
			Help:      "Rejected lead submissions by reason",
		}, []string{"reason"}),
		appendLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "regen",
			Subsystem: "leads",
			Name:      "append_seconds",
			Help:      "Latency of durable lead row appends",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissionsTotal, m.rejectionsTotal, m.appendLatency)
	return m
}

func (m *LeadMetrics) ObserveOutcome(outcome string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(outcome).Inc()
}

func (m *LeadMetrics) ObserveRejection(reason string) {
	if m == nil {
		return
	}
	m.rejectionsTotal.WithLabelValues(reason).Inc()
}

func (m *LeadMetrics) ObserveAppendLatency(seconds float64) {
	if m == nil {
		return
	}
	m.appendLatency.Observe(seconds)
}
