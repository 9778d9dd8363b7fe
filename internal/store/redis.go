package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/mkljngd/RoadNetOptimizer/internal/config"
	"github.com/mkljngd/RoadNetOptimizer/internal/logger"
	"github.com/mkljngd/RoadNetOptimizer/internal/route"
)

// RedisSource reads routes and adjacency sets from Redis.
type RedisSource struct {
	client *redis.Client
	cfg    *config.Config
}

// redisOptions builds connection options from the config. REDIS_URL wins
// over the discrete host/port settings when both are present.
func redisOptions(cfg *config.Config) (*redis.Options, error) {
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse REDIS_URL: %w", err)
		}
		return opts, nil
	}
	return &redis.Options{
		Addr:     cfg.RedisAddr(),
		DB:       cfg.RedisDB,
		Password: cfg.RedisPassword,
	}, nil
}

// dial connects a Redis client and verifies it with a ping.
func dial(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	opts, err := redisOptions(cfg)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)
	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// OpenRedis connects the Redis route source.
func OpenRedis(ctx context.Context, cfg *config.Config) (*RedisSource, error) {
	client, err := dial(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &RedisSource{client: client, cfg: cfg}, nil
}

// Routes returns the first limit lines of the route list and the list
// length.
func (r *RedisSource) Routes(ctx context.Context, limit int) ([]string, int, error) {
	key := r.cfg.RouteListKey

	total, err := r.client.LLen(ctx, key).Result()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read list '%s': %w", key, err)
	}
	if total == 0 {
		return nil, 0, nil
	}

	lines, err := r.client.LRange(ctx, key, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read list '%s': %w", key, err)
	}
	return lines, int(total), nil
}

// RouteByEndpoints looks up the per-endpoint hash the route producer
// writes alongside the list and returns its path field.
func (r *RedisSource) RouteByEndpoints(ctx context.Context, start, end string) (string, error) {
	key := fmt.Sprintf("%s%s:%s", r.cfg.RouteHashPrefix, start, end)

	line, err := r.client.HGet(ctx, key, "path").Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read route hash '%s': %w", key, err)
	}
	return line, nil
}

// Adjacency scans the per-node adjacency sets under the configured prefix.
// A store without adjacency keys yields an empty map.
func (r *RedisSource) Adjacency(ctx context.Context) (route.Adjacency, error) {
	adj := make(route.Adjacency)

	iter := r.client.Scan(ctx, 0, r.cfg.AdjacencyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		members, err := r.client.SMembers(ctx, key).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to read adjacency set '%s': %w", key, err)
		}
		adj[strings.TrimPrefix(key, r.cfg.AdjacencyPrefix)] = members
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan adjacency keys: %w", err)
	}

	logger.Debug().Int("nodes", len(adj)).Msg("adjacency sets loaded from Redis")
	return adj, nil
}

// Describe names the route list for console messages.
func (r *RedisSource) Describe() string {
	return fmt.Sprintf("Redis list '%s'", r.cfg.RouteListKey)
}

// Close closes the Redis connection.
func (r *RedisSource) Close() error {
	return r.client.Close()
}
