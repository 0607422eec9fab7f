package middleware

import (
	"net/http"
	"sync"
	"time"

	"construct-erp/internal/shared/apperror"
	"construct-erp/internal/shared/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// KeyedRateLimiter keeps one token bucket per key in memory. State is lost on
// restart.
type KeyedRateLimiter struct {
	entries map[string]*limiterEntry
	mu      sync.Mutex
	r       rate.Limit
	b       int
	now     func() time.Time
}

func NewKeyedRateLimiter(r rate.Limit, b int) *KeyedRateLimiter {
	return &KeyedRateLimiter{
		entries: make(map[string]*limiterEntry),
		r:       r,
		b:       b,
		now:     time.Now,
	}
}

// NewWindowRateLimiter allows requests per window with a full burst of
// requests, e.g. 100 per 15 minutes.
func NewWindowRateLimiter(requests int, window time.Duration) *KeyedRateLimiter {
	return NewKeyedRateLimiter(rate.Every(window/time.Duration(requests)), requests)
}

func (l *KeyedRateLimiter) GetLimiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, exists := l.entries[key]
	if !exists {
		e = &limiterEntry{limiter: rate.NewLimiter(l.r, l.b)}
		l.entries[key] = e
	}
	e.lastSeen = l.now()
	return e.limiter
}

func (l *KeyedRateLimiter) Allow(key string) bool {
	return l.GetLimiter(key).AllowN(l.now(), 1)
}

// Prune drops keys idle for longer than idle and returns how many went.
func (l *KeyedRateLimiter) Prune(idle time.Duration) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-idle)
	removed := 0
	for k, e := range l.entries {
		if e.lastSeen.Before(cutoff) {
			delete(l.entries, k)
			removed++
		}
	}
	return removed
}

func (l *KeyedRateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func tooManyRequests(c *gin.Context) {
	response.Abort(c, http.StatusTooManyRequests, apperror.ErrTooManyRequests.Code, apperror.ErrTooManyRequests.Message)
}

// RateLimitByIP limits by client address.
func RateLimitByIP(limiter *KeyedRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			tooManyRequests(c)
			return
		}
		c.Next()
	}
}

// RateLimitByUser limits authenticated callers by user id and lets anonymous
// requests through.
func RateLimitByUser(limiter *KeyedRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(ContextUserID)
		if userID == "" {
			c.Next()
			return
		}
		if !limiter.Allow(userID) {
			tooManyRequests(c)
			return
		}
		c.Next()
	}
}
