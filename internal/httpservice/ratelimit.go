package httpservice

import (
	"net/http"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"
)

// limiterCacheSize bounds the number of per-IP buckets held in memory.
// Eviction only forgets a bucket's history; a returning IP simply
// starts with a full bucket again.
const limiterCacheSize = 4096

// ipRateLimiter enforces a token-bucket limit per client IP. Tuning
// comes from the admin configuration (window + max requests) and can be
// swapped on reload.
type ipRateLimiter struct {
	mu      sync.Mutex
	limit   rate.Limit
	burst   int
	buckets *lru.Cache[string, *rate.Limiter]
}

// newIPRateLimiter creates a limiter allowing max requests per window.
// A non-positive window or max disables limiting.
func newIPRateLimiter(windowMs, max int) *ipRateLimiter {
	l := &ipRateLimiter{}
	l.buckets, _ = lru.New[string, *rate.Limiter](limiterCacheSize)
	l.configure(windowMs, max)
	return l
}

// configure swaps the tuning and drops all existing buckets
func (l *ipRateLimiter) configure(windowMs, max int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if windowMs <= 0 || max <= 0 {
		l.limit = rate.Inf
		l.burst = 0
	} else {
		window := time.Duration(windowMs) * time.Millisecond
		l.limit = rate.Limit(float64(max) / window.Seconds())
		l.burst = max
	}
	l.buckets.Purge()
}

// allow reports whether the given IP may proceed
func (l *ipRateLimiter) allow(ip string) bool {
	l.mu.Lock()
	if l.limit == rate.Inf {
		l.mu.Unlock()
		return true
	}
	limiter, ok := l.buckets.Get(ip)
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.buckets.Add(ip, limiter)
	}
	l.mu.Unlock()

	return limiter.Allow()
}

// rateLimitMiddleware rejects requests whose client IP exceeds the
// limiter's budget
func rateLimitMiddleware(l *ipRateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.allow(remoteIP(r.RemoteAddr)) {
				respondError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
