// Package store supplies route and adjacency data from Redis or flat
// files. Sources are read-only; the seeder is the one writer and mirrors
// what the upstream route producer stores.
package store

import (
	"context"
	"errors"

	"github.com/mkljngd/RoadNetOptimizer/internal/config"
	"github.com/mkljngd/RoadNetOptimizer/internal/route"
)

// ErrNotFound reports a missing route on an endpoint lookup.
var ErrNotFound = errors.New("route not found")

// RouteSource supplies stored routes and optional adjacency context.
type RouteSource interface {
	// Routes returns up to limit raw route lines and the total count
	// available in the source.
	Routes(ctx context.Context, limit int) ([]string, int, error)

	// RouteByEndpoints returns the stored line for the exact (start, end)
	// pair, or ErrNotFound.
	RouteByEndpoints(ctx context.Context, start, end string) (string, error)

	// Adjacency returns the outgoing-neighbor map. Sources without
	// adjacency data return an empty map.
	Adjacency(ctx context.Context) (route.Adjacency, error)

	// Describe names the source for console messages, e.g.
	// "Redis list 'routes'".
	Describe() string

	Close() error
}

// Open connects the configured route source. Anything other than "file"
// selects Redis.
func Open(ctx context.Context, cfg *config.Config) (RouteSource, error) {
	if cfg.Source == "file" {
		return OpenFile(cfg)
	}
	return OpenRedis(ctx, cfg)
}
