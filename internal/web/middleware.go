package web

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mssola/useragent"

	"github.com/cjanusz/cv-dashboard/internal/metrics"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// RequestID reuses the client's X-Request-ID or generates one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// RequestLogger logs each request with the client's browser family and
// records its latency by route.
func RequestLogger(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RequestLatency.WithLabelValues(route).Observe(duration.Seconds())

		ua := useragent.New(c.Request.UserAgent())
		browser, _ := ua.Browser()

		slog.InfoContext(c.Request.Context(), "http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", duration.Milliseconds(),
			"request_id", c.GetString(requestIDKey),
			"browser", browser,
			"os", ua.OS(),
			"mobile", ua.Mobile(),
		)
	}
}

// VisitorTracking counts successful views of routed pages. Static assets,
// metrics scrapes and downloads are skipped, and Do Not Track is respected. Nothing about the
// visitor is stored.
func VisitorTracking(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/static/") ||
			strings.HasPrefix(path, "/download/") ||
			strings.HasPrefix(path, "/api/") ||
			strings.HasPrefix(path, "/favicon") ||
			path == "/metrics" ||
			path == "/healthz" {
			c.Next()
			return
		}

		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		c.Next()

		if c.FullPath() != "" && c.Writer.Status() < http.StatusBadRequest {
			m.PageViews.Inc()
		}
	}
}
