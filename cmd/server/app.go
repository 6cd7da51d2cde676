package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sergdemc/y-lab-1/internal/cache"
	"github.com/sergdemc/y-lab-1/internal/config"
	"github.com/sergdemc/y-lab-1/internal/repository"
	"github.com/sergdemc/y-lab-1/internal/repository/migrations"
	"github.com/sergdemc/y-lab-1/internal/service"
)

// app holds the store, cache and services shared by the subcommands
type app struct {
	store    repository.Pinger
	cache    *cache.Cache
	cacheOn  bool
	menus    *service.MenuService
	submenus *service.SubmenuService
	dishes   *service.DishService

	closers []func()
}

func newApp(ctx context.Context, cfg *config.Config, log *slog.Logger) (*app, error) {
	a := &app{}

	repos, err := a.openStore(ctx, cfg, log)
	if err != nil {
		a.close()
		return nil, err
	}

	if err := a.openCache(ctx, cfg.Cache, log); err != nil {
		a.close()
		return nil, err
	}

	a.menus = service.NewMenuService(repos, a.cache, log)
	a.submenus = service.NewSubmenuService(repos, a.cache, log)
	a.dishes = service.NewDishService(repos, a.cache, log)
	return a, nil
}

func (a *app) openStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (repository.Repositories, error) {
	if cfg.Database.Driver == config.StoreDriverMemory {
		log.Warn("using in-memory store, data is lost on restart")
		store := repository.NewMemoryStore()
		a.store = store
		return store.Repositories(), nil
	}

	pool, err := repository.NewPool(ctx, cfg.Database.DSN(), int32(cfg.Database.MaxConns))
	if err != nil {
		return repository.Repositories{}, err
	}
	store := repository.NewStore(pool)
	a.closers = append(a.closers, store.Close)

	if cfg.Database.AutoMigrate {
		if err := migrations.RunMigrationsUp(ctx, pool); err != nil {
			return repository.Repositories{}, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	a.store = store
	log.Info("connected to postgres", "max_conns", cfg.Database.MaxConns)
	return store.Repositories(), nil
}

func (a *app) openCache(ctx context.Context, cfg config.CacheConfig, log *slog.Logger) error {
	var backend cache.Backend
	switch cfg.Driver {
	case config.CacheDriverRedis:
		redisBackend := cache.NewRedisBackend(cache.RedisOptions{
			Addr:     cfg.RedisAddr(),
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		// an unreachable redis only costs latency
		if err := redisBackend.Ping(ctx); err != nil {
			log.Warn("redis unreachable at startup, serving uncached until it recovers", "addr", cfg.RedisAddr(), "error", err)
		}
		backend = redisBackend
		a.cacheOn = true
	case config.CacheDriverLocal:
		backend = cache.NewLocalBackend(cfg.TTL)
		a.cacheOn = true
	default:
		backend = cache.NopBackend{}
	}

	c, err := cache.New(backend, cfg.TTL, log)
	if err != nil {
		_ = backend.Close()
		return err
	}
	a.cache = c
	a.closers = append(a.closers, func() { _ = c.Close() })

	log.Info("cache configured", "driver", cfg.Driver, "ttl", cfg.TTL)
	return nil
}

// close releases resources in reverse order of acquisition
func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
