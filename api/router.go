package api

import (
	"github.com/kchelvan55/customer-admin-app-sub000/api/billing"
	"github.com/kchelvan55/customer-admin-app-sub000/api/health"
	"github.com/kchelvan55/customer-admin-app-sub000/api/middleware"
	"github.com/kchelvan55/customer-admin-app-sub000/api/order"
	"github.com/kchelvan55/customer-admin-app-sub000/config"

	"github.com/gin-gonic/gin"
)

// Router wires the middleware chain and controllers to a gin engine.
type Router struct {
	engine            *gin.Engine
	config            *config.Config
	healthController  *health.Controller
	orderController   *order.Controller
	billingController *billing.Controller
}

// NewRouter creates the router with the standard middleware chain.
func NewRouter(
	cfg *config.Config,
	healthController *health.Controller,
	orderController *order.Controller,
	billingController *billing.Controller,
) *Router {
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Middleware order matters: the request id must exist before
	// anything logs.
	engine.Use(middleware.RequestIDMiddleware())
	engine.Use(middleware.RecoveryMiddleware())
	engine.Use(middleware.LoggingMiddleware())
	engine.Use(middleware.CORSMiddleware(&cfg.CORS))
	engine.Use(middleware.RateLimitMiddleware(&cfg.Server.RateLimit))

	return &Router{
		engine:            engine,
		config:            cfg,
		healthController:  healthController,
		orderController:   orderController,
		billingController: billingController,
	}
}

// SetupRoutes registers all routes under /api/v1.
func (r *Router) SetupRoutes() {
	apiGroup := r.engine.Group("/api/v1")
	{
		r.healthController.RegisterRoutes(apiGroup)
		r.orderController.RegisterRoutes(apiGroup)
		r.billingController.RegisterRoutes(apiGroup)
	}

	r.engine.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"name":    r.config.App.Name,
			"version": r.config.App.Version,
			"env":     r.config.App.Env,
			"health":  "/api/v1/health",
		})
	})
}

// GetEngine returns the underlying gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
