package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func testLimiter(limit int, window time.Duration, start time.Time) (*SlidingWindowLimiter, *time.Time) {
	l := NewSlidingWindowLimiter(limit, window)
	now := start
	l.now = func() time.Time { return now }
	return l, &now
}

func TestRecord_AllowsUpToLimit(t *testing.T) {
	l, now := testLimiter(5, time.Minute, time.Unix(1000, 0))

	for i := 0; i < 5; i++ {
		allowed, _ := l.Record("10.0.0.1")
		if !allowed {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
		*now = now.Add(time.Second)
	}

	allowed, retry := l.Record("10.0.0.1")
	if allowed {
		t.Fatal("sixth attempt inside the window should be rejected")
	}
	if retry < time.Second {
		t.Fatalf("retry-after should be at least 1s, got %v", retry)
	}
	if retry%time.Second != 0 {
		t.Fatalf("retry-after should be whole seconds, got %v", retry)
	}
}

func TestRecord_KeysAreIndependent(t *testing.T) {
	l, _ := testLimiter(1, time.Minute, time.Unix(1000, 0))

	if allowed, _ := l.Record("a"); !allowed {
		t.Fatal("first key should be allowed")
	}
	if allowed, _ := l.Record("b"); !allowed {
		t.Fatal("second key should be unaffected by the first")
	}
	if allowed, _ := l.Record("a"); allowed {
		t.Fatal("first key should now be limited")
	}
}

func TestRecord_WindowSlides(t *testing.T) {
	l, now := testLimiter(5, time.Minute, time.Unix(1000, 0))

	for i := 0; i < 5; i++ {
		l.Record("k")
	}
	if allowed, _ := l.Record("k"); allowed {
		t.Fatal("expected rejection at the ceiling")
	}

	*now = now.Add(61 * time.Second)
	if allowed, _ := l.Record("k"); !allowed {
		t.Fatal("expected old attempts to fall out of the window")
	}
}

func TestRecord_RetryAfterMatchesOldestAttempt(t *testing.T) {
	l, now := testLimiter(2, time.Minute, time.Unix(1000, 0))

	l.Record("k")
	*now = now.Add(10 * time.Second)
	l.Record("k")
	*now = now.Add(20 * time.Second)

	// Oldest attempt is 30s old; it leaves the window in 30s.
	allowed, retry := l.Record("k")
	if allowed {
		t.Fatal("expected rejection")
	}
	if retry != 30*time.Second {
		t.Fatalf("retry-after = %v, want 30s", retry)
	}
}

func TestPrune_DropsStaleKeys(t *testing.T) {
	l, now := testLimiter(5, time.Minute, time.Unix(1000, 0))

	l.Record("stale")
	*now = now.Add(2 * time.Minute)
	l.Record("fresh")

	l.prune()

	if _, ok := l.keys.Peek("stale"); ok {
		t.Fatal("stale key should be pruned")
	}
	if _, ok := l.keys.Peek("fresh"); !ok {
		t.Fatal("fresh key should survive pruning")
	}
}

type stubLimiter struct {
	allowed    bool
	retryAfter time.Duration
}

func (s *stubLimiter) Record(key string) (bool, time.Duration) {
	return s.allowed, s.retryAfter
}

func TestRateLimitMiddleware_Rejects(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/comments", RateLimit(&stubLimiter{allowed: false, retryAfter: 42 * time.Second}), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/comments", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
	if got := w.Header().Get("Retry-After"); got != "42" {
		t.Errorf("Retry-After header = %q, want 42", got)
	}

	var body struct {
		Error      string `json:"error"`
		RetryAfter int    `json:"retry_after"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.RetryAfter != 42 {
		t.Errorf("retry_after = %d, want 42", body.RetryAfter)
	}
}

func TestRateLimitMiddleware_PassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/comments", RateLimit(&stubLimiter{allowed: true}), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/comments", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
}
