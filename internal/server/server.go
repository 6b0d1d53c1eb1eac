// Package server exposes transcript fetching over a REST surface:
// GET /, GET /health, POST /transcript, GET /transcript, GET /metrics.
package server

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// Options controls the REST server construction.
type Options struct {
	Version   string
	RateRPS   float64 // per-client requests per second, 0 = disabled
	RateBurst int
}

// New builds the gin engine with all routes and middleware registered.
func New(opts Options) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	if opts.RateRPS > 0 {
		burst := opts.RateBurst
		if burst <= 0 {
			burst = int(opts.RateRPS) + 1
		}
		r.Use(rateLimitMiddleware(newClientLimiter(opts.RateRPS, burst)))
	}

	h := NewHandler(opts.Version)
	registerRoutes(r, h)
	return r
}

func registerRoutes(r *gin.Engine, h *Handler) {
	r.GET("/", h.root)
	r.GET("/health", h.health)
	r.GET("/metrics", h.metrics)
	r.POST("/transcript", h.transcriptPost)
	r.GET("/transcript", h.transcriptGet)
}

// requestLogger logs each request with method, path, status and latency.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Info("request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("elapsed", time.Since(start)),
		)
	}
}
