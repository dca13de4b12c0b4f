// Package metrics содержит prometheus-коллекторы сервиса.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор коллекторов HTTP-запросов и операций над учётными записями.
type Metrics struct {
	Requests   *prometheus.CounterVec
	Duration   *prometheus.HistogramVec
	Operations *prometheus.CounterVec
}

// New создаёт коллекторы и регистрирует их в reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "accounts",
			Name:      "http_requests_total",
			Help:      "Number of HTTP requests by route, method and status code.",
		}, []string{"route", "method", "code"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "accounts",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		Operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "accounts",
			Name:      "user_operations_total",
			Help:      "Number of user lifecycle operations by operation and outcome.",
		}, []string{"operation", "outcome"}),
	}
	reg.MustRegister(m.Requests, m.Duration, m.Operations)
	return m
}

// ObserveOperation увеличивает счётчик операции. outcome равен "ok" или вид ошибки.
func (m *Metrics) ObserveOperation(operation, outcome string) {
	m.Operations.WithLabelValues(operation, outcome).Inc()
}
