package web_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"

	"github.com/cjanusz/cv-dashboard/internal/attachment"
	"github.com/cjanusz/cv-dashboard/internal/config"
	"github.com/cjanusz/cv-dashboard/internal/layout"
	"github.com/cjanusz/cv-dashboard/internal/metrics"
	"github.com/cjanusz/cv-dashboard/internal/pipeline"
	"github.com/cjanusz/cv-dashboard/internal/web"
)

const cvName = "Clement_JANUSZ_CV.pdf"

var cvBytes = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\n%%EOF\n")

type ServerTestSuite struct {
	suite.Suite
	dir     string
	metrics *metrics.Metrics
	handler http.Handler
}

func (s *ServerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (s *ServerTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.metrics = metrics.New()

	ref := attachment.NewRef(s.dir, cvName)
	srv, err := web.New(web.Deps{
		Pipeline: pipeline.New(ref, pipeline.WithMetrics(s.metrics)),
		Page:     config.DefaultPage(),
		Metrics:  s.metrics,
	})
	s.Require().NoError(err)
	s.handler = srv.Handler()
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) writeCV() {
	s.Require().NoError(os.WriteFile(filepath.Join(s.dir, cvName), cvBytes, 0o600))
}

func (s *ServerTestSuite) get(path string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w
}

func (s *ServerTestSuite) TestIndexWithoutCV() {
	w := s.get("/")

	s.Equal(http.StatusOK, w.Code)
	body := w.Body.String()
	s.Contains(body, "Clément JANUSZ")
	s.Contains(body, "Technical Arsenal")
	s.Contains(body, "skills-chart")
	s.Contains(body, "scatterpolar")
	s.Contains(body, "fichier absent")
	s.NotContains(body, layout.DownloadURL(cvName))
}

func (s *ServerTestSuite) TestIndexWithCV() {
	s.writeCV()

	w := s.get("/")

	s.Equal(http.StatusOK, w.Code)
	body := w.Body.String()
	s.Contains(body, layout.DownloadURL(cvName))
	s.Contains(body, "Download Full CV (PDF)")
	s.NotContains(body, "fichier absent")
}

func (s *ServerTestSuite) TestIndexRendersProjectsAndEducation() {
	body := s.get("/").Body.String()

	for _, want := range []string{
		"Scrape.AI (Textual AI)",
		"Benchmark Outperformance",
		"Diabetes Prediction Model",
		"Prediction Reliability",
		"Current Degree",
		"International Exchange",
		"EFREI Paris",
		"TalTech",
	} {
		s.Contains(body, want)
	}
}

func (s *ServerTestSuite) TestDownload() {
	s.writeCV()

	w := s.get(layout.DownloadURL(cvName))

	s.Equal(http.StatusOK, w.Code)
	s.Equal(cvBytes, w.Body.Bytes())
	s.Equal("application/pdf", w.Header().Get("Content-Type"))
	s.Contains(w.Header().Get("Content-Disposition"), "attachment")
	s.Contains(w.Header().Get("Content-Disposition"), cvName)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.Downloads))
}

func (s *ServerTestSuite) TestDownloadMissing() {
	w := s.get(layout.DownloadURL(cvName))

	s.Equal(http.StatusNotFound, w.Code)
	s.Equal(0.0, testutil.ToFloat64(s.metrics.Downloads))
}

func (s *ServerTestSuite) TestDownloadWrongName() {
	s.writeCV()

	w := s.get(layout.DownloadURL("other.pdf"))

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *ServerTestSuite) TestBlocksAPI() {
	w := s.get("/api/blocks")
	s.Require().Equal(http.StatusOK, w.Code)

	var resp struct {
		Page   config.Page    `json:"page"`
		Blocks []layout.Block `json:"blocks"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))

	s.Equal(config.LayoutWide, resp.Page.Layout)
	s.NotEmpty(resp.Blocks)

	again := s.get("/api/blocks")
	s.Equal(w.Body.String(), again.Body.String())
}

func (s *ServerTestSuite) TestChartAPI() {
	w := s.get("/api/chart")

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"range":[0,5]`)
	s.Contains(w.Body.String(), `"fill":"toself"`)
}

func (s *ServerTestSuite) TestHealthz() {
	w := s.get("/healthz")

	s.Equal(http.StatusOK, w.Code)
	s.Equal("ok", w.Body.String())
}

func (s *ServerTestSuite) TestMetricsEndpoint() {
	s.get("/")

	w := s.get("/metrics")

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "cv_dashboard_renders_total 1")
	s.Contains(w.Body.String(), "cv_dashboard_page_views_total 1")
}

func (s *ServerTestSuite) TestVisitorTrackingRespectsDoNotTrack() {
	s.get("/", "DNT", "1")
	s.get("/static/style.css")

	s.Equal(0.0, testutil.ToFloat64(s.metrics.PageViews))

	s.get("/")
	s.Equal(1.0, testutil.ToFloat64(s.metrics.PageViews))
}

func (s *ServerTestSuite) TestVisitorTrackingSkipsUnknownRoutes() {
	for _, path := range []string{"/wp-login.php", "/.env", "/admin"} {
		w := s.get(path)
		s.Equal(http.StatusNotFound, w.Code, path)
	}
	s.Equal(0.0, testutil.ToFloat64(s.metrics.PageViews))

	s.get("/")
	s.Equal(1.0, testutil.ToFloat64(s.metrics.PageViews))
}

func (s *ServerTestSuite) TestStaticStylesheet() {
	w := s.get("/static/style.css")

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), ".metric-card")
}

func (s *ServerTestSuite) TestRequestID() {
	w := s.get("/healthz", "X-Request-ID", "req-123")
	s.Equal("req-123", w.Header().Get("X-Request-ID"))

	w = s.get("/healthz")
	s.NotEmpty(w.Header().Get("X-Request-ID"))
}

func (s *ServerTestSuite) TestNarrowCollapsedPage() {
	srv, err := web.New(web.Deps{
		Pipeline: pipeline.New(attachment.NewRef(s.dir, cvName)),
		Page: config.Page{
			Title:        "CV",
			Icon:         "📊",
			Layout:       config.LayoutNarrow,
			SidebarState: config.SidebarCollapsed,
		},
	})
	s.Require().NoError(err)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "layout-narrow")
	s.NotContains(w.Body.String(), `class="sidebar" open`)
}
