// Package app provides application initialization and dependency injection.
package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/savings-service/config"
	"github.com/guttosm/savings-service/internal/http"
)

// App holds the configured router and the components that own background work.
type App struct {
	Router   *gin.Engine
	services *ServiceComponents
	routing  *RouterComponents
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config) (*App, error) {
	InitializeLogger(cfg.Log)

	services, err := InitializeServices(cfg.Calculator, cfg.Session)
	if err != nil {
		return nil, err
	}

	routing := InitializeRouter(services, cfg)

	router, err := http.NewRouter(routing.Handler, routing.PageHandler, routing.HealthHandler, routing.Config)
	if err != nil {
		routing.Close()
		services.Close()
		return nil, fmt.Errorf("initialize router: %w", err)
	}

	log.Info().
		Int("tools", services.Catalog.Size()).
		Int("default_active_tools", services.Catalog.DefaultActiveCount()).
		Int("session_capacity", services.SessionStore.Metrics().Capacity).
		Dur("session_ttl", cfg.Session.TTL).
		Msg("Application initialized")

	return &App{Router: router, services: services, routing: routing}, nil
}

// Close releases background resources. It is safe to call more than once.
func (a *App) Close() {
	a.routing.Close()
	a.services.Close()
}
