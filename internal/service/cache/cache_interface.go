// Package cache defines the storage contract for calculator sessions.
package cache

import "github.com/guttosm/savings-service/internal/domain/model"

// Cache defines the interface for session store operations.
type Cache interface {
	Get(key string) (model.Session, bool)
	Set(key string, value model.Session)
	Invalidate(key string)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
