package store

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mkljngd/RoadNetOptimizer/internal/config"
	"github.com/mkljngd/RoadNetOptimizer/internal/logger"
	"github.com/mkljngd/RoadNetOptimizer/internal/route"
)

// Seeder writes route and adjacency data into Redis with the same shape
// the upstream route producer uses: route lines pushed onto a list, one
// hash per endpoint pair, and per-node adjacency sets.
type Seeder struct {
	client *redis.Client
	cfg    *config.Config
}

// OpenSeeder connects a seeder to Redis.
func OpenSeeder(ctx context.Context, cfg *config.Config) (*Seeder, error) {
	client, err := dial(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &Seeder{client: client, cfg: cfg}, nil
}

// FlushList deletes the route list so a reseed starts clean.
func (s *Seeder) FlushList(ctx context.Context) error {
	if err := s.client.Del(ctx, s.cfg.RouteListKey).Err(); err != nil {
		return fmt.Errorf("failed to delete list '%s': %w", s.cfg.RouteListKey, err)
	}
	return nil
}

// PushRoute stores one route: the formatted line goes onto the list and
// into the per-endpoint hash with a write timestamp. A zero ttl keeps the
// hash forever.
func (s *Seeder) PushRoute(ctx context.Context, nodes []string, ttl time.Duration) error {
	if len(nodes) < route.MinNodes {
		return fmt.Errorf("route needs at least %d nodes", route.MinNodes)
	}
	line := route.FormatLine(nodes)

	if err := s.client.LPush(ctx, s.cfg.RouteListKey, line).Err(); err != nil {
		return fmt.Errorf("failed to push route: %w", err)
	}

	key := fmt.Sprintf("%s%s:%s", s.cfg.RouteHashPrefix, nodes[0], nodes[len(nodes)-1])
	fields := map[string]any{
		"path": line,
		"ts":   strconv.FormatInt(time.Now().UnixMilli(), 10),
	}
	if err := s.client.HSet(ctx, key, fields).Err(); err != nil {
		return fmt.Errorf("failed to write route hash '%s': %w", key, err)
	}
	if ttl > 0 {
		if err := s.client.Expire(ctx, key, ttl).Err(); err != nil {
			return fmt.Errorf("failed to set TTL on '%s': %w", key, err)
		}
	}
	return nil
}

// SeedAdjacency loads every edge into the per-node adjacency sets,
// pipelined in batches.
func (s *Seeder) SeedAdjacency(ctx context.Context, adj route.Adjacency) error {
	pipe := s.client.Pipeline()
	batched := 0
	edges := 0

	for node, neighbors := range adj {
		if len(neighbors) == 0 {
			continue
		}
		members := make([]any, len(neighbors))
		for i, nb := range neighbors {
			members[i] = nb
		}
		pipe.SAdd(ctx, s.cfg.AdjacencyPrefix+node, members...)
		edges += len(neighbors)

		batched++
		if batched%1000 == 0 {
			if _, err := pipe.Exec(ctx); err != nil {
				return fmt.Errorf("failed to write adjacency sets: %w", err)
			}
		}
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to write adjacency sets: %w", err)
	}

	logger.Info().Int("nodes", len(adj)).Int("edges", edges).Msg("adjacency sets seeded")
	return nil
}

// Describe names the seeded list for user-facing messages.
func (s *Seeder) Describe() string {
	return fmt.Sprintf("Redis list '%s'", s.cfg.RouteListKey)
}

// Close closes the Redis connection.
func (s *Seeder) Close() error {
	return s.client.Close()
}
