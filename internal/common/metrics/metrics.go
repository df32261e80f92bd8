// internal/common/metrics/metrics.go
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AdviceRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advice_requests_total",
			Help: "Total advice requests by final HTTP status",
		},
		[]string{"status"},
	)

	StageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "advice_stage_duration_seconds",
			Help: "Duration of each pipeline stage",
		},
		[]string{"stage"},
	)

	StageFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advice_stage_failures_total",
			Help: "Failures per pipeline stage, including degraded-in-place ones",
		},
		[]string{"stage"},
	)

	RateLimitRejections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rate_limit_rejections_total",
			Help: "Requests rejected by the hourly quota",
		},
	)

	ValidationIssues = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "response_validation_issues_total",
			Help: "Validation findings on model output by check",
		},
		[]string{"check"},
	)

	TokensUsed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "completion_tokens_used_total",
			Help: "Total tokens reported by the completion service",
		},
	)
)

// ObserveStage records one stage execution.
func ObserveStage(stage string, start time.Time) {
	StageDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
}
