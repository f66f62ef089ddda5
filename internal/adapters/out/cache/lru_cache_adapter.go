package cache

import (
	"context"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/suchimauz/slot-appointment-service/internal/config"
	"github.com/suchimauz/slot-appointment-service/internal/core/domain"
	"github.com/suchimauz/slot-appointment-service/internal/core/ports/out"
)

// LRUCacheAdapter хранит недельные расписания по ключу недели с ограничением
// по количеству и времени жизни записи.
type LRUCacheAdapter struct {
	cache  *expirable.LRU[string, *domain.Schedule]
	logger out.LoggerPort
}

func NewLRUCacheAdapter(cfg *config.Config, logger out.LoggerPort) (*LRUCacheAdapter, error) {
	if !cfg.Cache.Enabled {
		logger.Info("cache.disabled", out.LogFields{
			"message": "Cache is disabled",
		})
		return nil, nil
	}

	if cfg.Cache.Size <= 0 {
		logger.Error("cache.init.failed", out.LogFields{
			"size": cfg.Cache.Size,
		})
		return nil, errInvalidCacheSize(cfg.Cache.Size)
	}

	cache := expirable.NewLRU[string, *domain.Schedule](cfg.Cache.Size, nil, cfg.Cache.TTL)

	logger.Info("cache.enabled", out.LogFields{
		"size": cfg.Cache.Size,
		"ttl":  cfg.Cache.TTL.String(),
	})

	return &LRUCacheAdapter{
		cache:  cache,
		logger: logger,
	}, nil
}

func (c *LRUCacheAdapter) GetSchedule(ctx context.Context, weekKey string) (*domain.Schedule, bool) {
	schedule, exists := c.cache.Get(weekKey)
	if !exists {
		c.logger.Debug("cache.get.miss", out.LogFields{
			"weekKey": weekKey,
		})
		return nil, false
	}

	c.logger.Debug("cache.get.hit", out.LogFields{
		"weekKey": weekKey,
	})
	return schedule, true
}

func (c *LRUCacheAdapter) StoreSchedule(ctx context.Context, weekKey string, schedule *domain.Schedule) {
	if schedule == nil {
		return
	}

	c.logger.Debug("cache.store", out.LogFields{
		"weekKey": weekKey,
	})

	c.cache.Add(weekKey, schedule)
}

func (c *LRUCacheAdapter) InvalidateSchedule(ctx context.Context, weekKey string) {
	if c.cache.Remove(weekKey) {
		c.logger.Debug("cache.invalidate", out.LogFields{
			"weekKey": weekKey,
		})
	}
}

func (c *LRUCacheAdapter) InvalidateAllSchedules(ctx context.Context) {
	c.cache.Purge()

	c.logger.Debug("cache.invalidate_all", out.LogFields{})
}
