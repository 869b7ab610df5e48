package observability

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// PuzzleContextKey is set by handlers that resolved a puzzle so the request
// log line and metrics can carry its registry id. Unresolved ids never reach
// it, which keeps the metric label bounded by the registry.
const PuzzleContextKey = "advent.puzzle"

// RequestLogger writes one zerolog line per request, leveled by status.
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		event := logger.Info()
		switch {
		case status >= 500:
			event = logger.Error()
		case status >= 400:
			event = logger.Warn()
		}

		if puzzle := c.GetString(PuzzleContextKey); puzzle != "" {
			event = event.Str("puzzle", puzzle)
		}
		event.
			Str("method", c.Request.Method).
			Str("route", routeOf(c)).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Int("bytes", c.Writer.Size()).
			Msg("http_request")
	}
}

// RequestMetricsMiddleware records request counts and latency by route and
// resolved puzzle.
func RequestMetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		RecordHTTPRequest(c.Request.Method, routeOf(c), c.GetString(PuzzleContextKey), c.Writer.Status(), time.Since(start))
	}
}

// routeOf prefers the matched route template so /puzzles/:id/solve stays one
// series; unmatched requests fall back to the raw path.
func routeOf(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}
	return c.Request.URL.Path
}
