// Package web serves the dashboard through gin and html/template.
package web

import (
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cjanusz/cv-dashboard/internal/attachment"
	"github.com/cjanusz/cv-dashboard/internal/chart"
	"github.com/cjanusz/cv-dashboard/internal/config"
	"github.com/cjanusz/cv-dashboard/internal/layout"
	"github.com/cjanusz/cv-dashboard/internal/metrics"
	"github.com/cjanusz/cv-dashboard/internal/pipeline"
)

// Deps are the collaborators of the HTTP server.
type Deps struct {
	Pipeline *pipeline.Pipeline
	Page     config.Page
	Metrics  *metrics.Metrics
}

// Server wires the gin engine to the render pipeline.
type Server struct {
	engine   *gin.Engine
	pipeline *pipeline.Pipeline
	page     config.Page
	metrics  *metrics.Metrics
}

var funcs = template.FuncMap{
	"join": strings.Join,
}

// New builds the engine and registers all routes.
func New(deps Deps) (*Server, error) {
	tmpl, err := template.New("").Funcs(funcs).ParseFS(content, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	static, err := fs.Sub(content, "static")
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}

	m := deps.Metrics
	if m == nil {
		m = metrics.New()
	}

	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), RequestLogger(m), VisitorTracking(m))
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", http.FS(static))

	s := &Server{
		engine:   r,
		pipeline: deps.Pipeline,
		page:     deps.Page,
		metrics:  m,
	}
	s.routes()
	return s, nil
}

// Handler exposes the engine as a plain http.Handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes() {
	s.engine.GET("/", s.handleIndex)
	s.engine.GET(layout.DownloadPrefix+":name", s.handleDownload)
	s.engine.GET("/api/blocks", s.handleBlocks)
	s.engine.GET("/api/chart", s.handleChart)
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	s.engine.GET("/metrics", gin.WrapH(s.metrics.Handler()))
}

// Home page route
func (s *Server) handleIndex(c *gin.Context) {
	res := s.pipeline.Render(c.Request.Context())

	fig, err := chart.Figure(res.Chart, chart.DefaultFigureOptions())
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to build skills chart", "error", err)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{
			"page":  s.page,
			"error": "Failed to render the skills chart",
		})
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"page":   s.page,
		"layout": layout.Group(res.Blocks),
		"figure": template.JS(fig),
	})
}

// handleDownload checks the attachment again and streams it. The name must
// match the file on disk; anything else is a 404.
func (s *Server) handleDownload(c *gin.Context) {
	out := attachment.Resolve(s.pipeline.Attachment())
	s.metrics.ObserveAttachment(out.Available)

	if !out.Available || c.Param("name") != out.Filename {
		slog.DebugContext(c.Request.Context(), "download not available",
			"requested", c.Param("name"),
			"reason", out.Err,
		)
		c.HTML(http.StatusNotFound, "error.html", gin.H{
			"page":  s.page,
			"error": "The CV is not available for download",
		})
		return
	}

	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": out.Filename}))
	c.Data(http.StatusOK, out.MediaType, out.Data)
	s.metrics.Downloads.Inc()

	slog.InfoContext(c.Request.Context(), "cv downloaded", "filename", out.Filename, "bytes", out.Size())
}

// handleBlocks returns the ordered block sequence as JSON.
func (s *Server) handleBlocks(c *gin.Context) {
	res := s.pipeline.Render(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"page":   s.page,
		"blocks": res.Blocks,
	})
}

// handleChart returns the plotly figure for the skills chart.
func (s *Server) handleChart(c *gin.Context) {
	res := s.pipeline.Render(c.Request.Context())

	fig, err := chart.Figure(res.Chart, chart.DefaultFigureOptions())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", fig)
}
