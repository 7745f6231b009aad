// Package app provides router configuration.
package app

import (
	"errors"

	"github.com/guttosm/savings-service/config"
	"github.com/guttosm/savings-service/internal/http"
	"github.com/guttosm/savings-service/internal/middleware"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler          *http.Handler
	PageHandler      *http.PageHandler
	HealthHandler    *http.HealthHandler
	RateLimiter      *middleware.ShardedRateLimiter
	IdempotencyCache *middleware.IdempotencyCache
	Config           http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(services *ServiceComponents, cfg config.Config) *RouterComponents {
	handler := http.NewHandler(services.Catalog, services.Estimator, services.Sessions)
	pageHandler := http.NewPageHandler(services.Estimator, services.Sessions,
		http.WithCookieMaxAge(cfg.Session.TTL),
		http.WithSecureCookie(cfg.Session.SecureCookie),
	)

	healthHandler := http.NewHealthHandler()
	healthHandler.RegisterChecker("catalog", http.HealthCheckFunc(func() error {
		if services.Catalog == nil || services.Catalog.Size() == 0 {
			return errors.New("catalog is empty")
		}
		return nil
	}))
	healthHandler.RegisterChecker("session_store", http.HealthCheckFunc(func() error {
		if services.SessionStore == nil || services.SessionStore.Metrics().Capacity == 0 {
			return errors.New("session store unavailable")
		}
		return nil
	}))

	var limiter *middleware.ShardedRateLimiter
	if cfg.Server.RateLimit > 0 {
		limiter = middleware.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateWindow)
	}
	idempotency := middleware.NewIdempotencyCache(middleware.IdempotencyKeyTTL)

	routerCfg := http.DefaultRouterConfig()
	if cfg.Server.RequestTimeout > 0 {
		routerCfg.RequestTimeout = cfg.Server.RequestTimeout
	}
	routerCfg.CORSOrigins = cfg.Server.CORSOrigins
	routerCfg.SwaggerUser = cfg.Server.SwaggerUser
	routerCfg.SwaggerPass = cfg.Server.SwaggerPass
	routerCfg.RateLimiter = limiter
	routerCfg.IdempotencyCache = idempotency

	return &RouterComponents{
		Handler:          handler,
		PageHandler:      pageHandler,
		HealthHandler:    healthHandler,
		RateLimiter:      limiter,
		IdempotencyCache: idempotency,
		Config:           routerCfg,
	}
}

// Close stops the rate limiter and idempotency cache cleanup loops.
func (r *RouterComponents) Close() {
	if r == nil {
		return
	}
	if r.RateLimiter != nil {
		r.RateLimiter.Stop()
	}
	if r.IdempotencyCache != nil {
		r.IdempotencyCache.Stop()
	}
}
