package store

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mkljngd/RoadNetOptimizer/internal/config"
	"github.com/mkljngd/RoadNetOptimizer/internal/logger"
	"github.com/mkljngd/RoadNetOptimizer/internal/route"
)

// Route lines can run to thousands of nodes, well past the default
// bufio.Scanner token limit.
const maxLineBytes = 8 * 1024 * 1024

// FileSource reads routes from a newline-delimited file of route lines
// and, optionally, adjacency from a tab-delimited edge list.
type FileSource struct {
	routesPath string
	lines      []string
	adj        route.Adjacency
}

// OpenFile loads the routes file into memory and builds the adjacency map
// when an edge list is configured.
func OpenFile(cfg *config.Config) (*FileSource, error) {
	if cfg.RoutesFile == "" {
		return nil, fmt.Errorf("ROUTES_FILE is required for the file source")
	}

	lines, err := ReadRouteLines(cfg.RoutesFile)
	if err != nil {
		return nil, err
	}

	f := &FileSource{routesPath: cfg.RoutesFile, lines: lines}
	if cfg.EdgeFile != "" {
		adj, err := ReadEdgeList(cfg.EdgeFile)
		if err != nil {
			return nil, err
		}
		f.adj = adj
	}
	return f, nil
}

// Routes returns the first limit route lines and the file's total count.
func (f *FileSource) Routes(_ context.Context, limit int) ([]string, int, error) {
	if limit > len(f.lines) {
		limit = len(f.lines)
	}
	out := make([]string, limit)
	copy(out, f.lines[:limit])
	return out, len(f.lines), nil
}

// RouteByEndpoints returns the first line whose parsed endpoints match.
func (f *FileSource) RouteByEndpoints(_ context.Context, start, end string) (string, error) {
	for _, line := range f.lines {
		r := route.FromLine(line)
		if r.Valid() && r.Start() == start && r.End() == end {
			return line, nil
		}
	}
	return "", ErrNotFound
}

// Adjacency returns the map built from the edge list, or an empty map when
// no edge list was configured.
func (f *FileSource) Adjacency(_ context.Context) (route.Adjacency, error) {
	if f.adj == nil {
		return route.Adjacency{}, nil
	}
	return f.adj, nil
}

// Describe names the routes file for console messages.
func (f *FileSource) Describe() string {
	return fmt.Sprintf("file '%s'", f.routesPath)
}

func (f *FileSource) Close() error {
	return nil
}

// ReadRouteLines loads non-blank lines from a routes file.
func ReadRouteLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open routes file: %w", err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read routes file: %w", err)
	}

	logger.Debug().Int("routes", len(lines)).Str("path", path).Msg("routes file loaded")
	return lines, nil
}

// ReadEdgeList parses a tab-delimited edge list. Lines starting with '#'
// are comments; two-column lines carry an implied weight of 1.0 and
// three-column lines an explicit one. Weights are validated but only the
// topology is kept. Malformed lines are skipped, never fatal.
func ReadEdgeList(path string) (route.Adjacency, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open edge list: %w", err)
	}
	defer file.Close()

	adj := make(route.Adjacency)
	var lineNo, edges, skipped int

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 || len(fields) > 3 {
			skipped++
			logger.Debug().Int("line", lineNo).Msg("skipping malformed edge list line")
			continue
		}
		if len(fields) == 3 {
			if _, err := strconv.ParseFloat(fields[2], 64); err != nil {
				skipped++
				logger.Debug().Int("line", lineNo).Str("weight", fields[2]).Msg("skipping edge with bad weight")
				continue
			}
		}

		adj[fields[0]] = append(adj[fields[0]], fields[1])
		edges++
		if edges%1000000 == 0 {
			logger.Info().Int("edges", edges).Str("path", path).Msg("loading edge list")
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read edge list: %w", err)
	}

	logger.Debug().Int("edges", edges).Int("skipped", skipped).Str("path", path).Msg("edge list loaded")
	return adj, nil
}
