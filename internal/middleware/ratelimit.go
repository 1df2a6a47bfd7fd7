package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// clientLimiter pairs a token bucket with its last use so idle entries can
// be evicted.
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Per-client token buckets. Defaults allow 60 requests/minute with a small
// burst; tests override the package-level knobs. Entries idle for longer
// than idleTTL are swept on access so the map stays bounded by the set of
// recently active clients.
var (
	limitersMu   sync.Mutex
	limiters     = make(map[string]*clientLimiter)
	perClientAvg = rate.Limit(1) // tokens per second
	perClientCap = 20            // burst
	idleTTL      = 3 * time.Minute
	lastSweep    time.Time
)

func limiterFor(ip string) *rate.Limiter {
	limitersMu.Lock()
	defer limitersMu.Unlock()

	now := time.Now()
	if now.Sub(lastSweep) > idleTTL {
		for k, cl := range limiters {
			if now.Sub(cl.lastSeen) > idleTTL {
				delete(limiters, k)
			}
		}
		lastSweep = now
	}

	cl, ok := limiters[ip]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(perClientAvg, perClientCap)}
		limiters[ip] = cl
	}
	cl.lastSeen = now
	return cl.limiter
}

// RateLimiter limits requests per client IP using a token bucket.
// Exceeding the budget returns 429 Too Many Requests.
//
// NOTE: state is in-process; multi-instance deployments need a shared store.
func RateLimiter() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiterFor(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
