package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/cjanusz/cv-dashboard/internal/metrics"
)

func TestObserveAttachment(t *testing.T) {
	m := metrics.New()

	m.ObserveAttachment(true)
	m.ObserveAttachment(false)
	m.ObserveAttachment(false)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.AttachmentChecks.WithLabelValues(metrics.OutcomeAvailable)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.AttachmentChecks.WithLabelValues(metrics.OutcomeUnavailable)))
}

func TestInstancesAreIndependent(t *testing.T) {
	a := metrics.New()
	b := metrics.New()

	a.Renders.Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.Renders))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.Renders))
}

func TestHandler(t *testing.T) {
	m := metrics.New()
	m.Downloads.Inc()

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "cv_dashboard_downloads_total 1")
}
