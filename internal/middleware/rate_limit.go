package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go-sitepass/internal/shared/apperror"
	"go-sitepass/internal/shared/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	limiterIdleTTL   = 10 * time.Minute
	limiterSweepSize = 10000
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// KeyRateLimiter keeps one token bucket per key (client IP or worker id).
// Buckets idle for limiterIdleTTL are dropped once the map grows past
// limiterSweepSize.
type KeyRateLimiter struct {
	mu   sync.Mutex
	keys map[string]*limiterEntry
	r    rate.Limit // requests per second
	b    int        // burst
	now  func() time.Time
}

func NewKeyRateLimiter(r rate.Limit, b int) *KeyRateLimiter {
	return &KeyRateLimiter{
		keys: make(map[string]*limiterEntry),
		r:    r,
		b:    b,
		now:  time.Now,
	}
}

func (l *KeyRateLimiter) GetLimiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	e, ok := l.keys[key]
	if !ok {
		if len(l.keys) >= limiterSweepSize {
			l.evictIdle(now)
		}
		e = &limiterEntry{limiter: rate.NewLimiter(l.r, l.b)}
		l.keys[key] = e
	}
	e.lastSeen = now
	return e.limiter
}

func (l *KeyRateLimiter) evictIdle(now time.Time) {
	for k, e := range l.keys {
		if now.Sub(e.lastSeen) > limiterIdleTTL {
			delete(l.keys, k)
		}
	}
}

func (l *KeyRateLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.keys)
}

// retryAfter is the wait for one token, in whole seconds.
func (l *KeyRateLimiter) retryAfter() string {
	if l.r <= 0 {
		return "60"
	}
	return strconv.Itoa(int(math.Ceil(1 / float64(l.r))))
}

func (l *KeyRateLimiter) reject(c *gin.Context, message string) {
	c.Header("Retry-After", l.retryAfter())
	response.Abort(c, http.StatusTooManyRequests, apperror.CodeTooManyRequests, message)
}

// RateLimitByIP guards anonymous endpoints such as code requests and login.
func RateLimitByIP(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewKeyRateLimiter(r, b)
	return func(c *gin.Context) {
		if !limiter.GetLimiter(c.ClientIP()).Allow() {
			limiter.reject(c, "Too many requests from this IP")
			return
		}
		c.Next()
	}
}

// RateLimitByUser limits per authenticated worker. Anonymous requests pass.
func RateLimitByUser(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewKeyRateLimiter(r, b)
	return func(c *gin.Context) {
		workerID := c.GetString(ContextWorkerID)
		if workerID == "" {
			c.Next()
			return
		}
		if !limiter.GetLimiter(workerID).Allow() {
			limiter.reject(c, "Too many requests for this worker")
			return
		}
		c.Next()
	}
}
