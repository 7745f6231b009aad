//go:build !integration

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestRateLimiter(t *testing.T, rate int, window time.Duration, clock *time.Time) *ShardedRateLimiter {
	t.Helper()
	rl := NewShardedRateLimiter(rate, window, 4)
	rl.now = func() time.Time { return *clock }
	t.Cleanup(rl.Stop)
	return rl
}

func TestShardedRateLimiter_RateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	clock := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := newTestRateLimiter(t, 3, time.Minute, &clock)

	router := gin.New()
	router.Use(RequestID(), rl.RateLimit())
	router.GET("/api/tools", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	send := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/tools", nil)
		req.RemoteAddr = ip + ":1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	for i := 0; i < 3; i++ {
		w := send("10.0.0.1")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, strconv.Itoa(2-i), w.Header().Get("X-RateLimit-Remaining"))
	}

	w := send("10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "rate_limit_exceeded")

	assert.Equal(t, http.StatusOK, send("10.0.0.2").Code, "other clients keep their own budget")

	clock = clock.Add(time.Minute + time.Second)
	assert.Equal(t, http.StatusOK, send("10.0.0.1").Code, "window resets")
}

func TestShardedRateLimiter_CleanupExpired(t *testing.T) {
	clock := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := newTestRateLimiter(t, 10, time.Minute, &clock)

	rl.allow("a")
	rl.allow("b")
	total, perShard := rl.Stats()
	assert.Equal(t, 2, total)
	assert.Len(t, perShard, 4)

	clock = clock.Add(90 * time.Second)
	rl.allow("b")
	clock = clock.Add(60 * time.Second)
	rl.cleanupExpired()

	total, _ = rl.Stats()
	assert.Equal(t, 1, total)
}

func TestShardedRateLimiter_Concurrent(t *testing.T) {
	rl := NewRateLimiter(100, time.Minute)
	defer rl.Stop()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _, _ := rl.allow("shared"); ok {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, allowed)
}

func TestShardedRateLimiter_StopIdempotent(t *testing.T) {
	rl := NewShardedRateLimiter(1, time.Second, 0)
	assert.NotPanics(t, func() {
		rl.Stop()
		rl.Stop()
	})
	assert.Equal(t, defaultNumShards, rl.numShards)
}
