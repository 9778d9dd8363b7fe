package seed

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkljngd/RoadNetOptimizer/internal/config"
	"github.com/mkljngd/RoadNetOptimizer/internal/logger"
	"github.com/mkljngd/RoadNetOptimizer/internal/route"
	"github.com/mkljngd/RoadNetOptimizer/internal/store"
	"github.com/mkljngd/RoadNetOptimizer/internal/term"
)

var (
	ttlSeconds int
	flushList  bool
	edgeFile   string
)

// Command creates the data loading command. It reproduces the shape the
// upstream route producer writes: route lines on a list, one hash per
// endpoint pair, and adjacency sets from an optional edge list.
func Command() *cobra.Command {
	seedCmd := &cobra.Command{
		Use:   "seed <routes-file>",
		Short: "Load routes from a file into Redis",
		Args:  cobra.ExactArgs(1),
		RunE:  run,
	}
	seedCmd.Flags().IntVar(&ttlSeconds, "ttl", 0, "expiry in seconds for per-route hashes (0 keeps them forever)")
	seedCmd.Flags().BoolVar(&flushList, "flush-list", false, "delete the route list before loading")
	seedCmd.Flags().StringVar(&edgeFile, "edge-file", "", "tab-delimited edge list to load adjacency sets from")
	return seedCmd
}

func run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := logger.Init(cfg.LogLevel); err != nil {
		return err
	}

	lines, err := store.ReadRouteLines(args[0])
	if err != nil {
		return err
	}

	seeder, err := store.OpenSeeder(ctx, cfg)
	if err != nil {
		return err
	}
	defer seeder.Close()

	if flushList {
		if err := seeder.FlushList(ctx); err != nil {
			return err
		}
	}

	ttl := time.Duration(ttlSeconds) * time.Second
	loaded, skipped := 0, 0
	for _, line := range lines {
		nodes := route.Parse(line)
		if len(nodes) < route.MinNodes {
			skipped++
			logger.Debug().Str("line", line).Msg("skipping malformed route line")
			continue
		}
		if err := seeder.PushRoute(ctx, nodes, ttl); err != nil {
			return err
		}
		loaded++
	}

	p := term.NewPrinter(cmd.OutOrStdout())
	p.Infof("Loaded %d route(s) into %s.", loaded, seeder.Describe())
	if skipped > 0 {
		p.Warnf("Skipped %d malformed route line(s).", skipped)
	}

	if edgeFile == "" {
		return nil
	}
	adj, err := store.ReadEdgeList(edgeFile)
	if err != nil {
		return err
	}
	if err := seeder.SeedAdjacency(ctx, adj); err != nil {
		return err
	}
	p.Infof("Loaded adjacency sets for %d node(s).", len(adj))
	return nil
}
