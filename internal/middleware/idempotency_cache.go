package middleware

import (
	"sync"
	"time"
)

// IdempotencyCache stores replayable responses keyed by idempotency key
// and tracks keys whose first request is still running.
type IdempotencyCache struct {
	mu       sync.Mutex
	items    map[string]*cachedResponse
	inflight map[string]struct{}
	ttl      time.Duration
	now      func() time.Time
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewIdempotencyCache creates a cache whose entries live for ttl.
func NewIdempotencyCache(ttl time.Duration) *IdempotencyCache {
	if ttl <= 0 {
		ttl = IdempotencyKeyTTL
	}
	c := &IdempotencyCache{
		items:    make(map[string]*cachedResponse),
		inflight: make(map[string]struct{}),
		ttl:      ttl,
		now:      time.Now,
		stopCh:   make(chan struct{}),
	}
	go c.startCleanup()
	return c
}

// Get retrieves an unexpired cached response.
func (c *IdempotencyCache) Get(key string) (*cachedResponse, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	resp, ok := c.items[key]
	if !ok || c.now().Sub(resp.Timestamp) > c.ttl {
		return nil, false
	}
	return resp, true
}

// Begin marks key as in flight. It returns false when the key is already
// in flight or has a cached response.
func (c *IdempotencyCache) Begin(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, busy := c.inflight[key]; busy {
		return false
	}
	if resp, ok := c.items[key]; ok && c.now().Sub(resp.Timestamp) <= c.ttl {
		return false
	}
	c.inflight[key] = struct{}{}
	return true
}

// Finish clears the in-flight mark and stores resp when it is non-nil.
func (c *IdempotencyCache) Finish(key string, resp *cachedResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.inflight, key)
	if resp != nil {
		resp.Timestamp = c.now()
		c.items[key] = resp
	}
}

// Len returns the number of cached responses, expired ones included.
func (c *IdempotencyCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Stop shuts down the cleanup goroutine. It is safe to call more than once.
func (c *IdempotencyCache) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
}

func (c *IdempotencyCache) startCleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stopCh:
			return
		}
	}
}

// cleanup removes expired entries.
func (c *IdempotencyCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, resp := range c.items {
		if now.Sub(resp.Timestamp) > c.ttl {
			delete(c.items, key)
		}
	}
}
