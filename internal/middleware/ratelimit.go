package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"
	log "github.com/sirupsen/logrus"
)

// Limiter decides whether a client key may perform another attempt. When the
// answer is no, retryAfter tells the client how long to wait.
type Limiter interface {
	Record(key string) (allowed bool, retryAfter time.Duration)
}

// SlidingWindowLimiter keeps per-key attempt timestamps inside a fixed window.
// Histories live in an LRU so the key set stays bounded; a prune loop drops
// keys whose attempts have all left the window.
type SlidingWindowLimiter struct {
	mu     sync.Mutex
	keys   *lru.Cache[string, []time.Time]
	limit  int
	window time.Duration
	now    func() time.Time
	done   chan struct{}
}

const limiterKeyCapacity = 4096

func NewSlidingWindowLimiter(limit int, window time.Duration) *SlidingWindowLimiter {
	keys, err := lru.New[string, []time.Time](limiterKeyCapacity)
	if err != nil {
		log.Fatalf("[ratelimit] failed to create key cache: %v", err)
	}
	return &SlidingWindowLimiter{
		keys:   keys,
		limit:  limit,
		window: window,
		now:    time.Now,
		done:   make(chan struct{}),
	}
}

func (l *SlidingWindowLimiter) Record(key string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	windowStart := now.Add(-l.window)

	history, _ := l.keys.Get(key)
	valid := make([]time.Time, 0, len(history)+1)
	for _, ts := range history {
		if ts.After(windowStart) {
			valid = append(valid, ts)
		}
	}

	if len(valid) >= l.limit {
		l.keys.Add(key, valid)
		// Wait until the oldest in-window attempt expires, whole seconds.
		retry := time.Duration(math.Ceil(valid[0].Sub(windowStart).Seconds())) * time.Second
		if retry < time.Second {
			retry = time.Second
		}
		return false, retry
	}

	l.keys.Add(key, append(valid, now))
	return true, 0
}

// StartPruning drops stale keys every interval until Stop is called.
func (l *SlidingWindowLimiter) StartPruning(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				l.prune()
			case <-l.done:
				return
			}
		}
	}()
}

func (l *SlidingWindowLimiter) Stop() {
	close(l.done)
}

func (l *SlidingWindowLimiter) prune() {
	l.mu.Lock()
	defer l.mu.Unlock()

	windowStart := l.now().Add(-l.window)
	for _, key := range l.keys.Keys() {
		history, ok := l.keys.Peek(key)
		if !ok {
			continue
		}
		stale := true
		for _, ts := range history {
			if ts.After(windowStart) {
				stale = false
				break
			}
		}
		if stale {
			l.keys.Remove(key)
		}
	}
}

// RateLimit guards an endpoint with the given limiter, keyed by client IP.
func RateLimit(l Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, retryAfter := l.Record(c.ClientIP())
		if !allowed {
			secs := int(retryAfter / time.Second)
			c.Header("Retry-After", strconv.Itoa(secs))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "Too many comments, please try again later",
				"retry_after": secs,
			})
			return
		}
		c.Next()
	}
}
