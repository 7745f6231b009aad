package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/savings-service/internal/middleware"
)

// SavingsRoutes registers the JSON API under /api.
type SavingsRoutes struct {
	handler *Handler
}

// NewSavingsRoutes creates a new SavingsRoutes instance.
func NewSavingsRoutes(handler *Handler) *SavingsRoutes {
	return &SavingsRoutes{handler: handler}
}

// RegisterRoutes registers the calculator and session endpoints.
// State-changing session routes replay responses for repeated Idempotency-Key headers.
func (r *SavingsRoutes) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	rg.GET("/tools", r.handler.ListTools)
	rg.POST("/estimate", r.handler.Estimate)

	sessions := rg.Group("/sessions")
	if cfg.IdempotencyCache != nil {
		sessions.Use(middleware.Idempotency(cfg.IdempotencyCache))
	}
	sessions.POST("", r.handler.CreateSession)
	sessions.GET("/:id", r.handler.GetSession)
	sessions.POST("/:id/tools/:tool_id/toggle", r.handler.ToggleTool)
	sessions.PUT("/:id/headcount", r.handler.SetHeadcount)
	sessions.DELETE("/:id", r.handler.DeleteSession)
}

// PageRoutes registers the server-rendered calculator.
type PageRoutes struct {
	handler *PageHandler
}

// NewPageRoutes creates a new PageRoutes instance.
func NewPageRoutes(handler *PageHandler) *PageRoutes {
	return &PageRoutes{handler: handler}
}

// RegisterRoutes registers the page and its form targets.
func (r *PageRoutes) RegisterRoutes(rg *gin.RouterGroup, _ *RouterConfig) {
	rg.GET("/", r.handler.Show)
	rg.POST("/tools/:tool_id/toggle", r.handler.ToggleTool)
	rg.POST("/headcount", r.handler.SetHeadcount)
}
