package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"taskdeck/internal/cache"
	"taskdeck/internal/config"
	"taskdeck/internal/handlers"
	"taskdeck/internal/middleware"
	"taskdeck/internal/monitoring"
	"taskdeck/internal/services"
	"taskdeck/internal/store"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	taskStore, categoryStore, storeHealth, err := buildStores(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize store backend: %v", err)
	}

	var taskBackend store.TaskStore = taskStore
	var appCache cache.Cache
	if cfg.Cache.Enabled {
		appCache = buildCache(cfg)
		taskBackend = services.NewCachedTaskStore(taskStore, appCache)
		defer appCache.Close()
	}

	metrics := monitoring.NewMetrics()
	health := monitoring.NewHealthChecker()
	health.Register("store", storeHealth)
	if appCache != nil {
		health.Register("cache", func(ctx context.Context) error {
			return appCache.Health()
		})
	}

	opts := handlers.RouterOptions{
		Metrics: metrics,
		Health:  health,
	}
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(
			cfg.RateLimit.RequestsPerMin,
			cfg.RateLimit.BurstSize,
			cfg.RateLimit.CleanupInterval,
		)
		defer limiter.Stop()
		opts.RateLimiter = limiter
	}

	router := handlers.NewRouter(
		handlers.NewTaskHandler(taskBackend),
		handlers.NewCategoryHandler(categoryStore, taskBackend),
		opts,
	)

	server := &http.Server{
		Addr:         cfg.GetServerAddr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Server listening on %s (store=%s cache=%v)",
			server.Addr, cfg.Store.Backend, cfg.Cache.Enabled)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}

// buildStores wires the configured backend behind the store interfaces and
// returns a health probe for it.
func buildStores(cfg *config.Config) (store.TaskStore, store.CategoryStore, monitoring.HealthCheckFunc, error) {
	now := time.Now()

	if cfg.Store.Backend == "sqlite" {
		db, err := store.OpenSQLite(cfg.Store.DSN)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := store.SeedDB(db, store.SeedTasks(now), store.SeedCategories()); err != nil {
			return nil, nil, nil, err
		}
		probe := func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}
		return store.NewGormTaskStore(db), store.NewGormCategoryStore(db), probe, nil
	}

	tasks := store.NewMemoryTaskStore(store.SeedTasks(now), cfg.Store.Latency)
	categories := store.NewMemoryCategoryStore(store.SeedCategories(), cfg.Store.Latency)
	probe := func(ctx context.Context) error {
		_, err := tasks.GetAll(ctx)
		return err
	}
	return tasks, categories, probe, nil
}

// buildCache prefers the multi-level setup when Redis is enabled and
// reachable, and degrades to the in-process cache otherwise.
func buildCache(cfg *config.Config) cache.Cache {
	if !cfg.Cache.RedisEnabled {
		return cache.NewMultiLevelCache(nil)
	}

	redisCache := cache.NewRedisCache(&cache.RedisConfig{
		Addr:         cfg.GetRedisAddr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		MaxRetries:   cfg.Redis.MaxRetries,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err := redisCache.Health(); err != nil {
		log.Printf("Redis unavailable, using in-process cache only: %v", err)
		redisCache.Close()
		return cache.NewMultiLevelCache(nil)
	}
	return cache.NewMultiLevelCache(redisCache)
}
