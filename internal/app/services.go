// Package app provides service initialization.
package app

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/savings-service/config"
	"github.com/guttosm/savings-service/internal/catalog"
	"github.com/guttosm/savings-service/internal/service"
)

// sessionStoreShards is the shard count of the session store.
const sessionStoreShards = 16

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Catalog      *catalog.Catalog
	Estimator    *service.EstimatorService
	Sessions     service.SessionService
	SessionStore *service.ShardedCache
}

// InitializeServices loads the tool catalog and builds the business services.
func InitializeServices(calc config.CalculatorConfig, sess config.SessionConfig) (*ServiceComponents, error) {
	cat, err := catalog.Load(calc.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("initialize catalog: %w", err)
	}
	if active := cat.DefaultActiveCount(); active < service.MinActiveTools {
		log.Warn().
			Int("default_active_tools", active).
			Int("min_active_tools", service.MinActiveTools).
			Msg("Catalog defaults are below the selection floor, new sessions start with the advisory")
	}

	estimator := service.NewEstimatorService(service.WithPricing(pricingFromConfig(calc)))

	capacity := sess.Capacity
	if capacity <= 0 {
		capacity = 10000
	}
	store := service.NewShardedCache(capacity, sess.TTL, sessionStoreShards)

	opts := []service.SessionOption{service.WithSessionStore(store)}
	if calc.DefaultHeadcount > 0 {
		opts = append(opts, service.WithDefaultHeadcount(calc.DefaultHeadcount))
	}

	return &ServiceComponents{
		Catalog:      cat,
		Estimator:    estimator,
		Sessions:     service.NewSessionService(cat, opts...),
		SessionStore: store,
	}, nil
}

// Close stops the session store's background cleanup.
func (s *ServiceComponents) Close() {
	if s != nil && s.SessionStore != nil {
		s.SessionStore.Stop()
	}
}

// pricingFromConfig overlays the configured figures on the default pricing.
// Non-positive values keep the defaults.
func pricingFromConfig(calc config.CalculatorConfig) service.Pricing {
	p := service.DefaultPricing()
	if calc.SavingsPerTool > 0 {
		p.SavingsPerTool = calc.SavingsPerTool
	}
	if calc.ProTierCost > 0 {
		p.ProCost = calc.ProTierCost
	}
	if calc.EnterpriseTierCost > 0 {
		p.EnterpriseCost = calc.EnterpriseTierCost
	}
	return p
}
