// SPDX-License-Identifier: MIT
package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// bucketIdleTTL is how long an untouched bucket survives the janitor
const bucketIdleTTL = 10 * time.Minute

// TokenBucket holds the remaining requests of one client for the current interval
type TokenBucket struct {
	tokens   int
	refillAt time.Time
	mu       sync.Mutex
}

// RateLimiter manages token buckets per client IP
type RateLimiter struct {
	mu       sync.RWMutex
	buckets  map[string]*TokenBucket
	capacity int
	interval time.Duration
	now      func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter creates a rate limiter and starts its janitor goroutine.
// Call Close to stop the janitor.
func NewRateLimiter(capacity int, interval time.Duration) *RateLimiter {
	if capacity < 1 {
		capacity = 1
	}
	if interval <= 0 {
		interval = time.Minute
	}
	limiter := &RateLimiter{
		buckets:  make(map[string]*TokenBucket),
		capacity: capacity,
		interval: interval,
		now:      time.Now,
		stop:     make(chan struct{}),
	}

	go limiter.cleanup(5 * time.Minute)

	return limiter
}

// Close stops the janitor goroutine. It is safe to call more than once.
func (rl *RateLimiter) Close() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

func (rl *RateLimiter) cleanup(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.sweep()
		}
	}
}

// sweep drops buckets that have not been refilled for bucketIdleTTL
func (rl *RateLimiter) sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for ip, bucket := range rl.buckets {
		bucket.mu.Lock()
		if now.Sub(bucket.refillAt) > bucketIdleTTL {
			delete(rl.buckets, ip)
		}
		bucket.mu.Unlock()
	}
}

// Len returns the number of tracked clients
func (rl *RateLimiter) Len() int {
	rl.mu.RLock()
	defer rl.mu.RUnlock()
	return len(rl.buckets)
}

// Allow consumes a token for ip and returns the tokens left
func (rl *RateLimiter) Allow(ip string) (bool, int) {
	rl.mu.RLock()
	bucket, exists := rl.buckets[ip]
	rl.mu.RUnlock()

	if !exists {
		rl.mu.Lock()
		// another request may have created it meanwhile
		if bucket, exists = rl.buckets[ip]; !exists {
			bucket = &TokenBucket{
				tokens:   rl.capacity,
				refillAt: rl.now().Add(rl.interval),
			}
			rl.buckets[ip] = bucket
		}
		rl.mu.Unlock()
	}

	bucket.mu.Lock()
	defer bucket.mu.Unlock()

	now := rl.now()
	if now.After(bucket.refillAt) {
		bucket.tokens = rl.capacity
		bucket.refillAt = now.Add(rl.interval)
	}

	if bucket.tokens > 0 {
		bucket.tokens--
		return true, bucket.tokens
	}

	return false, 0
}

// RateLimitMiddleware limits requests whose path starts with one of prefixes.
// No prefixes means every request is limited.
func RateLimitMiddleware(limiter *RateLimiter, prefixes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !matchesPrefix(c.Request.URL.Path, prefixes) {
			c.Next()
			return
		}

		allowed, remaining := limiter.Allow(getClientIP(c))

		c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.capacity))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(limiter.interval.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}

		c.Next()
	}
}

func matchesPrefix(path string, prefixes []string) bool {
	if len(prefixes) == 0 {
		return true
	}
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// getClientIP extracts the client IP address
func getClientIP(c *gin.Context) string {
	forwarded := c.GetHeader("X-Forwarded-For")
	if forwarded != "" {
		ips := strings.Split(forwarded, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return host
}
