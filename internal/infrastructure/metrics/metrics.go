package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics exposes counters/histograms for upstream hospital API calls and
// booking outcomes. All methods are safe on a nil receiver.
type Metrics struct {
	upstreamTotal   *prometheus.CounterVec
	upstreamLatency *prometheus.HistogramVec
	bookingsTotal   *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		upstreamTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "frontdesk",
			Subsystem: "upstream",
			Name:      "requests_total",
			Help:      "Total requests issued to the hospital API",
		}, []string{"resource", "status"}),
		upstreamLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "frontdesk",
			Subsystem: "upstream",
			Name:      "request_duration_seconds",
			Help:      "Latency of hospital API requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"resource"}),
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "frontdesk",
			Subsystem: "booking",
			Name:      "submissions_total",
			Help:      "Total appointment submissions by outcome",
		}, []string{"outcome"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.upstreamTotal, m.upstreamLatency, m.bookingsTotal)
	return m
}

func (m *Metrics) ObserveUpstream(resource, status string, seconds float64) {
	if m == nil {
		return
	}
	m.upstreamTotal.WithLabelValues(resource, status).Inc()
	m.upstreamLatency.WithLabelValues(resource).Observe(seconds)
}

func (m *Metrics) ObserveBooking(outcome string) {
	if m == nil {
		return
	}
	m.bookingsTotal.WithLabelValues(outcome).Inc()
}
