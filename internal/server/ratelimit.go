package server

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/360AYA25/youtube-transcript-railway/internal/engine"
)

// clientLimiter hands out a token-bucket limiter per client IP.
// Stale entries are pruned so the map does not grow unbounded.
type clientLimiter struct {
	mu        sync.Mutex
	rate      rate.Limit
	burst     int
	clients   map[string]*clientBucket
	ttl       time.Duration
	lastPrune time.Time
}

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newClientLimiter(rps float64, burst int) *clientLimiter {
	return &clientLimiter{
		rate:      rate.Limit(rps),
		burst:     burst,
		clients:   make(map[string]*clientBucket),
		ttl:       10 * time.Minute,
		lastPrune: time.Now(),
	}
}

func (l *clientLimiter) allow(r *http.Request) bool {
	ip := clientIP(r)
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastPrune) > l.ttl {
		for k, b := range l.clients {
			if now.Sub(b.lastSeen) > l.ttl {
				delete(l.clients, k)
			}
		}
		l.lastPrune = now
	}

	b, ok := l.clients[ip]
	if !ok {
		b = &clientBucket{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.clients[ip] = b
	}
	b.lastSeen = now
	return b.limiter.Allow()
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// rateLimitMiddleware rejects clients that exceed the per-IP budget with 429.
func rateLimitMiddleware(l *clientLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.allow(c.Request) {
			engine.IncrRateLimited()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   "rate limit exceeded",
			})
			return
		}
		c.Next()
	}
}
