package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PollerMetrics records metadata for order-status polling cycles.
type PollerMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
}

// NewPollerMetrics registers the poller metrics on the provided registerer.
func NewPollerMetrics(reg prometheus.Registerer) *PollerMetrics {
	if reg == nil {
		return &PollerMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "order_status_poll_duration_seconds",
		Help:    "Duration of order status poll cycles in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"status"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "order_status_poll_success",
		Help: "Successful order status polls by observed status.",
	}, []string{"status"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "order_status_poll_failure",
		Help: "Failed order status polls.",
	}, []string{"status"})
	reg.MustRegister(duration, success, failure)
	return &PollerMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
	}
}

// ObserveDuration records the duration of a poll that observed status.
func (p *PollerMetrics) ObserveDuration(status string, duration time.Duration) {
	if p == nil || p.duration == nil {
		return
	}
	p.duration.WithLabelValues(normalizeLabel(status)).Observe(duration.Seconds())
}

// IncSuccess increments the success counter for the observed status.
func (p *PollerMetrics) IncSuccess(status string) {
	if p == nil || p.success == nil {
		return
	}
	p.success.WithLabelValues(normalizeLabel(status)).Inc()
}

// IncFailure increments the failure counter.
func (p *PollerMetrics) IncFailure(status string) {
	if p == nil || p.failure == nil {
		return
	}
	p.failure.WithLabelValues(normalizeLabel(status)).Inc()
}

// NotifyMetrics counts best-effort notification outcomes per audience.
type NotifyMetrics struct {
	delivered *prometheus.CounterVec
	failed    *prometheus.CounterVec
}

// NewNotifyMetrics registers notification counters on the provided registerer.
func NewNotifyMetrics(reg prometheus.Registerer) *NotifyMetrics {
	if reg == nil {
		return &NotifyMetrics{}
	}
	delivered := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "order_notify_delivered",
		Help: "Order notifications handed to the channel.",
	}, []string{"audience"})
	failed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "order_notify_failed",
		Help: "Order notifications the channel rejected.",
	}, []string{"audience"})
	reg.MustRegister(delivered, failed)
	return &NotifyMetrics{delivered: delivered, failed: failed}
}

// IncDelivered increments the delivered counter for the audience.
func (n *NotifyMetrics) IncDelivered(audience string) {
	if n == nil || n.delivered == nil {
		return
	}
	n.delivered.WithLabelValues(normalizeLabel(audience)).Inc()
}

// IncFailed increments the failed counter for the audience.
func (n *NotifyMetrics) IncFailed(audience string) {
	if n == nil || n.failed == nil {
		return
	}
	n.failed.WithLabelValues(normalizeLabel(audience)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
