// Package metrics метрики сервиса на базе prometheus
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор метрик сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	chatTurnsTotal      *prometheus.CounterVec
	llmRequestsTotal    *prometheus.CounterVec
	llmRequestDuration  *prometheus.HistogramVec
}

// New регистрирует и возвращает набор метрик сервиса
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		chatTurnsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "chat_turns_total",
			Help:        "Total number of chat turns by route (booking, rag, llm)",
			ConstLabels: constLabels,
		}, []string{"route"}),

		llmRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "llm_requests_total",
			Help:        "Total number of language model calls",
			ConstLabels: constLabels,
		}, []string{"operation", "status"}),

		llmRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "llm_request_duration_seconds",
			Help:        "Language model call duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"operation"}),
	}
}

// RecordHTTPRequest фиксирует обработанный HTTP запрос
func (m *Metrics) RecordHTTPRequest(method, path, status string, durationSeconds float64) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(durationSeconds)
}

// RecordChatTurn фиксирует обработанный ход диалога по маршруту
func (m *Metrics) RecordChatTurn(route string) {
	m.chatTurnsTotal.WithLabelValues(route).Inc()
}

// RecordLLMRequest фиксирует обращение к языковой модели
func (m *Metrics) RecordLLMRequest(operation, status string, durationSeconds float64) {
	m.llmRequestsTotal.WithLabelValues(operation, status).Inc()
	m.llmRequestDuration.WithLabelValues(operation).Observe(durationSeconds)
}
