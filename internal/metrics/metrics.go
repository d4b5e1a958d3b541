// Package metrics exposes Prometheus counters for page renders and downloads.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeAvailable   = "available"
	OutcomeUnavailable = "unavailable"
)

// Metrics holds the collectors and the registry they live in.
type Metrics struct {
	registry *prometheus.Registry

	Renders          prometheus.Counter
	AttachmentChecks *prometheus.CounterVec
	Downloads        prometheus.Counter
	PageViews        prometheus.Counter
	RequestLatency   *prometheus.HistogramVec
}

// New registers all collectors on a fresh registry, so several instances can
// coexist in tests.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		Renders: f.NewCounter(prometheus.CounterOpts{
			Name: "cv_dashboard_renders_total",
			Help: "Total number of dashboard renders",
		}),
		AttachmentChecks: f.NewCounterVec(prometheus.CounterOpts{
			Name: "cv_dashboard_attachment_checks_total",
			Help: "Attachment existence checks, labeled by outcome",
		}, []string{"outcome"}),
		Downloads: f.NewCounter(prometheus.CounterOpts{
			Name: "cv_dashboard_downloads_total",
			Help: "Total number of CV downloads served",
		}),
		PageViews: f.NewCounter(prometheus.CounterOpts{
			Name: "cv_dashboard_page_views_total",
			Help: "Page views, excluding static assets and Do Not Track requests",
		}),
		RequestLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cv_dashboard_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
	}
}

// ObserveAttachment counts one attachment check.
func (m *Metrics) ObserveAttachment(available bool) {
	outcome := OutcomeUnavailable
	if available {
		outcome = OutcomeAvailable
	}
	m.AttachmentChecks.WithLabelValues(outcome).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
