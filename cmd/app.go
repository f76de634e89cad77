package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/kchelvan55/customer-admin-app-sub000/api"
	billingapi "github.com/kchelvan55/customer-admin-app-sub000/api/billing"
	"github.com/kchelvan55/customer-admin-app-sub000/api/health"
	orderapi "github.com/kchelvan55/customer-admin-app-sub000/api/order"
	orderapp "github.com/kchelvan55/customer-admin-app-sub000/application/order"
	"github.com/kchelvan55/customer-admin-app-sub000/config"
	"github.com/kchelvan55/customer-admin-app-sub000/domain/billing"
	"github.com/kchelvan55/customer-admin-app-sub000/domain/order"
	"github.com/kchelvan55/customer-admin-app-sub000/domain/schedule"
	"github.com/kchelvan55/customer-admin-app-sub000/infrastructure/cache"
	"github.com/kchelvan55/customer-admin-app-sub000/infrastructure/persistence/memory"
	"github.com/kchelvan55/customer-admin-app-sub000/infrastructure/persistence/mysql"
	"github.com/kchelvan55/customer-admin-app-sub000/pkg/logger"
)

// App bundles the configured HTTP server with the resources it owns.
type App struct {
	config     *config.Config
	router     *api.Router
	queueCache *cache.QueueCache
}

// NewApp loads configuration, wires the persistence layer, the domain
// services and the HTTP stack. configPath may be empty to use the
// default search path.
func NewApp(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(&cfg.Log, cfg.App.Env); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	repo, sqlDB, err := buildRepository(cfg)
	if err != nil {
		return nil, err
	}

	var queueCache *cache.QueueCache
	var appCache orderapp.QueueCache
	if cfg.Redis.Enabled {
		queueCache, err = cache.NewQueueCache(&cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		appCache = queueCache
		logger.Info("Billing queue cache enabled", zap.String("addr", cfg.Redis.Addr))
	}

	resolver := schedule.NewResolver(cfg.Schedule.Ranks)
	arbiter := billing.NewArbiter(repo, resolver)
	billingSvc := billing.NewService(repo)
	orderService := orderapp.NewApplicationService(repo, arbiter, billingSvc, appCache)

	router := api.NewRouter(
		cfg,
		health.NewController(cfg, sqlDB),
		orderapi.NewController(orderService),
		billingapi.NewController(orderService),
	)
	router.SetupRoutes()

	return &App{
		config:     cfg,
		router:     router,
		queueCache: queueCache,
	}, nil
}

func buildRepository(cfg *config.Config) (order.Repository, *sql.DB, error) {
	switch cfg.Database.Type {
	case "mysql":
		db, err := mysql.Connect(&cfg.Database, cfg.Log.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("connect mysql: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, fmt.Errorf("unwrap sql.DB: %w", err)
		}
		return mysql.NewOrderRepository(db), sqlDB, nil
	case "memory", "":
		logger.Info("Using in-memory persistence layer")
		return memory.NewOrderRepository(), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown database type %q", cfg.Database.Type)
	}
}

// Run starts the HTTP server and blocks until SIGINT or SIGTERM, then
// shuts down gracefully within the configured timeout.
func (a *App) Run() error {
	srv := &http.Server{
		Addr:         ":" + a.config.Server.Port,
		Handler:      a.router.GetEngine(),
		ReadTimeout:  a.config.Server.ReadTimeout,
		WriteTimeout: a.config.Server.WriteTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("Server starting",
			zap.String("port", a.config.Server.Port),
			zap.String("env", a.config.App.Env))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-sigChan:
		logger.Info("Shutdown signal received", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.config.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	if a.queueCache != nil {
		if err := a.queueCache.Close(); err != nil {
			logger.Warn("Closing queue cache failed", zap.Error(err))
		}
	}

	logger.Info("Server stopped")
	return nil
}

// GetEngine exposes the gin engine for tests.
func (a *App) GetEngine() http.Handler {
	return a.router.GetEngine()
}
