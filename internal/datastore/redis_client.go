package datastore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

const StatsKeyGenerated = "stats:%s:generated" // EX: "stats:id:generated"

var ErrStatsNotEnabled = fmt.Errorf("redis is not enabled")

type RedisClient struct {
	client *redis.Client
	config *RedisConfig
}

func NewRedisClient(config *RedisConfig) (*RedisClient, error) {
	if !config.Enabled {
		return &RedisClient{config: config}, nil
	}
	opts, err := redis.ParseURL(config.URL)
	if err != nil {
		return nil, err
	}
	return &RedisClient{
		client: redis.NewClient(opts),
		config: config,
	}, nil
}

func statsKey(kind string) string {
	return fmt.Sprintf(StatsKeyGenerated, strings.ToLower(kind))
}

func (r *RedisClient) IncrStat(ctx context.Context, kind string) error {
	if !r.config.Enabled {
		return ErrStatsNotEnabled
	}
	return r.client.Incr(ctx, statsKey(kind)).Err()
}

// GetStats returns the generated count per kind, leaving out kinds never counted.
func (r *RedisClient) GetStats(ctx context.Context, kinds []string) (map[string]int, error) {
	if !r.config.Enabled {
		return nil, ErrStatsNotEnabled
	}
	stats := make(map[string]int)
	for _, kind := range kinds {
		count, err := r.client.Get(ctx, statsKey(kind)).Int()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, err
		}
		stats[kind] = count
	}
	return stats, nil
}

func (r *RedisClient) Close() error {
	if r.client == nil {
		return nil
	}
	return r.client.Close()
}
