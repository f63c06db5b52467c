// Package metrics holds the Prometheus collectors for the voicemail pipeline.
//
// All methods are safe on a nil *Metrics so components can be constructed
// without instrumentation in tests.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	transitions   *prometheus.CounterVec
	stageAttempts *prometheus.CounterVec
	stageDuration *prometheus.HistogramVec
	digestSends   *prometheus.CounterVec
	cardsCreated  *prometheus.CounterVec
	httpRequests  *prometheus.CounterVec
	httpLatency   *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "voicemail_transitions_total",
				Help: "Voicemail status transitions by target status.",
			},
			[]string{"to"},
		),
		stageAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "voicemail_stage_attempts_total",
				Help: "AI stage attempts by stage and outcome.",
			},
			[]string{"stage", "outcome"},
		),
		stageDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "voicemail_stage_duration_seconds",
				Help:    "Duration of a single AI stage attempt in seconds.",
				Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
			},
			[]string{"stage"},
		),
		digestSends: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "digest_sends_total",
				Help: "Digest delivery attempts by result status.",
			},
			[]string{"status"},
		),
		cardsCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "triage_cards_created_total",
				Help: "Triage cards created by urgency.",
			},
			[]string{"urgency"},
		),
		// path is the chi route pattern to keep cardinality bounded
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"method", "path", "status"},
		),
		httpLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}

	reg.MustRegister(
		m.transitions,
		m.stageAttempts,
		m.stageDuration,
		m.digestSends,
		m.cardsCreated,
		m.httpRequests,
		m.httpLatency,
	)

	return m
}

func (m *Metrics) Transition(to string) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(to).Inc()
}

func (m *Metrics) StageAttempt(stage, outcome string, took time.Duration) {
	if m == nil {
		return
	}
	m.stageAttempts.WithLabelValues(stage, outcome).Inc()
	m.stageDuration.WithLabelValues(stage).Observe(took.Seconds())
}

func (m *Metrics) DigestSend(status string) {
	if m == nil {
		return
	}
	m.digestSends.WithLabelValues(status).Inc()
}

func (m *Metrics) CardCreated(urgency string) {
	if m == nil {
		return
	}
	m.cardsCreated.WithLabelValues(urgency).Inc()
}

func (m *Metrics) HTTPRequest(method, path, status string, took time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, path, status).Inc()
	m.httpLatency.WithLabelValues(method, path).Observe(took.Seconds())
}
