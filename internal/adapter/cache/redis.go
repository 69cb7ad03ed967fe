package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mkalinin/shopadmin/internal/adapter/config"
	"github.com/mkalinin/shopadmin/internal/core/domain"
	"github.com/redis/go-redis/v9"
)

const statsKey = "dashboard:stats"

// StatsCache keeps the assembled dashboard report in redis under a short TTL
// so repeated dashboard loads skip the aggregate queries.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStatsCache(ctx context.Context, conf *config.Cache) (*StatsCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr: conf.Addr,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &StatsCache{
		client: client,
		ttl:    time.Duration(conf.StatsTTL) * time.Second,
	}, nil
}

func (c *StatsCache) ReadStats(ctx context.Context) (*domain.DashboardStats, error) {
	raw, err := c.client.Get(ctx, statsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	stats := domain.DashboardStats{}
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *StatsCache) StoreStats(ctx context.Context, stats *domain.DashboardStats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, statsKey, raw, c.ttl).Err()
}
