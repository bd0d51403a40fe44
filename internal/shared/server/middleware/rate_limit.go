package middleware

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimitRule describes a token bucket: Rate tokens per second with a
// burst capacity.
type RateLimitRule struct {
	Rate  float64
	Burst int
}

// RateLimiter tracks token buckets per key.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rateBucket
	now     func() time.Time
}

type rateBucket struct {
	tokens float64
	last   time.Time
}

func NewRateLimiter(now func() time.Time) *RateLimiter {
	if now == nil {
		now = time.Now
	}
	return &RateLimiter{
		buckets: make(map[string]*rateBucket),
		now:     now,
	}
}

// Allow consumes a token for key if available, returning how long the caller
// should wait otherwise.
func (l *RateLimiter) Allow(key string, rule RateLimitRule) (bool, time.Duration) {
	if rule.Rate <= 0 {
		return true, 0
	}
	burst := float64(rule.Burst)
	if burst < 1 {
		burst = 1
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	bucket, ok := l.buckets[key]
	if !ok {
		bucket = &rateBucket{tokens: burst, last: now}
		l.buckets[key] = bucket
	} else {
		elapsed := now.Sub(bucket.last).Seconds()
		if elapsed > 0 {
			bucket.tokens = math.Min(burst, bucket.tokens+elapsed*rule.Rate)
			bucket.last = now
		}
	}

	if bucket.tokens >= 1 {
		bucket.tokens--
		return true, 0
	}

	wait := time.Duration((1 - bucket.tokens) / rule.Rate * float64(time.Second))
	return false, wait
}

// RateLimitPerIP throttles a route by client IP. Used on the credential
// endpoints to slow down brute-force attempts.
func RateLimitPerIP(limiter *RateLimiter, rule RateLimitRule) gin.HandlerFunc {
	if limiter == nil {
		limiter = NewRateLimiter(nil)
	}
	return func(c *gin.Context) {
		key := strings.TrimSpace(c.ClientIP()) + "|" + c.FullPath()
		allowed, retryAfter := limiter.Allow(key, rule)
		if allowed {
			c.Next()
			return
		}
		retryAfterSeconds := int(math.Ceil(retryAfter.Seconds()))
		if retryAfterSeconds <= 0 {
			retryAfterSeconds = 1
		}
		c.Header("Retry-After", strconv.Itoa(retryAfterSeconds))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"error": gin.H{
				"code":    "rate_limited",
				"message": "Too many attempts, try again later.",
			},
		})
	}
}
