// Package metrics 定义服务的 Prometheus 指标
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "veritas",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "veritas",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	generationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "veritas",
			Name:      "generations_total",
			Help:      "Generation pipeline outcomes by result kind",
		},
		[]string{"outcome"},
	)

	generationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "veritas",
			Name:      "generation_duration_seconds",
			Help:      "Time spent in the remote generation call",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 40, 80, 160},
		},
		[]string{"model"},
	)

	contextModesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "veritas",
			Name:      "context_builds_total",
			Help:      "Context builds by resulting mode (with_document or prompt_only)",
		},
		[]string{"mode"},
	)
)

// ObserveHTTPRequest 记录一次 HTTP 请求
func ObserveHTTPRequest(method, path, status string, seconds float64) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(seconds)
}

// RecordGeneration 记录一次生成结果，outcome 为 success 或错误类型
func RecordGeneration(outcome string) {
	generationsTotal.WithLabelValues(outcome).Inc()
}

// ObserveGenerationDuration 记录生成调用耗时
func ObserveGenerationDuration(model string, seconds float64) {
	generationDuration.WithLabelValues(model).Observe(seconds)
}

// RecordContextMode 记录上下文构建结果
func RecordContextMode(mode string) {
	contextModesTotal.WithLabelValues(mode).Inc()
}
