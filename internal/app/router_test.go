//go:build !integration

package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/savings-service/config"
	"github.com/guttosm/savings-service/internal/middleware"
)

func newServices(t *testing.T) *ServiceComponents {
	t.Helper()
	services, err := InitializeServices(config.CalculatorConfig{}, config.SessionConfig{Capacity: 16, TTL: time.Minute})
	require.NoError(t, err)
	t.Cleanup(services.Close)
	return services
}

func TestInitializeRouter(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Config
		validate func(*testing.T, *RouterComponents)
	}{
		{
			name: "rate limiter and idempotency enabled",
			cfg: config.Config{
				Server: config.ServerConfig{
					RateLimit:      100,
					RateWindow:     time.Minute,
					RequestTimeout: 3 * time.Second,
					CORSOrigins:    []string{"https://calc.example.com"},
					SwaggerUser:    "docs",
					SwaggerPass:    "secret",
				},
			},
			validate: func(t *testing.T, c *RouterComponents) {
				assert.NotNil(t, c.Handler)
				assert.NotNil(t, c.PageHandler)
				assert.NotNil(t, c.HealthHandler)
				assert.NotNil(t, c.RateLimiter)
				assert.Same(t, c.RateLimiter, c.Config.RateLimiter)
				assert.NotNil(t, c.IdempotencyCache)
				assert.Same(t, c.IdempotencyCache, c.Config.IdempotencyCache)
				assert.Equal(t, 3*time.Second, c.Config.RequestTimeout)
				assert.Equal(t, []string{"https://calc.example.com"}, c.Config.CORSOrigins)
				assert.Equal(t, "docs", c.Config.SwaggerUser)
				assert.Equal(t, "secret", c.Config.SwaggerPass)
			},
		},
		{
			name: "zero rate limit disables limiter",
			cfg:  config.Config{},
			validate: func(t *testing.T, c *RouterComponents) {
				assert.Nil(t, c.RateLimiter)
				assert.Nil(t, c.Config.RateLimiter)
				assert.Equal(t, middleware.DefaultRequestTimeout, c.Config.RequestTimeout)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			components := InitializeRouter(newServices(t), tt.cfg)
			t.Cleanup(components.Close)

			tt.validate(t, components)
		})
	}
}

func TestInitializeRouter_ReadinessChecks(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		mutate         func(*ServiceComponents)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "catalog and store ready",
			mutate:         func(*ServiceComponents) {},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"ok","checks":{"catalog":"ok","session_store":"ok"}}`,
		},
		{
			name:           "missing session store",
			mutate:         func(s *ServiceComponents) { s.SessionStore.Stop(); s.SessionStore = nil },
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   `{"status":"degraded","checks":{"catalog":"ok","session_store":"session store unavailable"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := newServices(t)
			components := InitializeRouter(services, config.Config{})
			t.Cleanup(components.Close)
			tt.mutate(services)

			router := gin.New()
			components.HealthHandler.Register(router)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestRouterComponents_CloseNil(t *testing.T) {
	var components *RouterComponents
	assert.NotPanics(t, components.Close)
}
