package infra

import (
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "factcheck"

type Metrics struct {
	HTTPRequests        *prometheus.CounterVec
	HTTPDuration        *prometheus.HistogramVec
	FeedbackSubmissions *prometheus.CounterVec
	AuthRequests        *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		FeedbackSubmissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "feedback",
			Name:      "submissions_total",
			Help:      "Feedback submissions by outcome.",
		}, []string{"outcome"}),
		AuthRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "auth",
			Name:      "requests_total",
			Help:      "Auth provider calls by operation and outcome.",
		}, []string{"operation", "outcome"}),
	}

	reg.MustRegister(m.HTTPRequests, m.HTTPDuration, m.FeedbackSubmissions, m.AuthRequests)
	return m
}
