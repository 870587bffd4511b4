package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/config"
	"github.com/aretw0/turing/pkg/adapters/memory"
	"github.com/aretw0/turing/pkg/adapters/redis"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/observability"
	"github.com/aretw0/turing/pkg/ports"
)

// CreateEngine loads the definition at path and configures an engine with standard CLI conventions.
// extra hooks run after the logging hooks. The returned cleanup releases the cache connection.
func CreateEngine(ctx context.Context, path string, cfg config.Config, logger *slog.Logger, extra domain.LifecycleHooks) (*turing.Engine, func() error, error) {
	cache, cleanup, err := createCache(ctx, cfg.Cache, logger)
	if err != nil {
		return nil, nil, err
	}

	// 1. Logger & Hooks
	engineOpts := []turing.Option{
		turing.WithLogger(logger),
		turing.WithLifecycleHooks(observability.LoggingHooks(logger).Merge(extra)),
		turing.WithStepLimit(cfg.StepLimit),
		turing.WithWorkers(cfg.Workers),
	}

	// 2. Optional result cache
	if cache != nil {
		engineOpts = append(engineOpts, turing.WithCache(cache))
	}

	// 3. Initialize
	engine, err := turing.Load(path, engineOpts...)
	if err != nil {
		_ = cleanup()
		return nil, nil, fmt.Errorf("error initializing engine: %w", err)
	}

	return engine, cleanup, nil
}

// createCache builds the result cache selected by cfg. A nil cache means caching is off.
func createCache(ctx context.Context, cfg config.CacheConfig, logger *slog.Logger) (ports.ResultCache, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Backend {
	case config.CacheMemory:
		logger.Debug("Result cache enabled", "backend", cfg.Backend)
		return memory.NewCache(), noop, nil

	case config.CacheRedis:
		ttl, err := cfg.TTLDuration()
		if err != nil {
			return nil, nil, err
		}
		opts := []redis.Option{redis.WithTTL(ttl)}
		if cfg.Prefix != "" {
			opts = append(opts, redis.WithPrefix(cfg.Prefix))
		}
		cache := redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, opts...)
		if err := cache.Ping(ctx); err != nil {
			_ = cache.Close()
			return nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
		}
		logger.Debug("Result cache enabled", "backend", cfg.Backend, "addr", cfg.RedisAddr, "ttl", ttl)
		return cache, cache.Close, nil

	case config.CacheNone, "":
		return nil, noop, nil
	}
	return nil, nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
}
