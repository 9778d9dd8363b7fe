package app

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkljngd/RoadNetOptimizer/internal/config"
	"github.com/mkljngd/RoadNetOptimizer/internal/render"
	"github.com/mkljngd/RoadNetOptimizer/internal/route"
	"github.com/mkljngd/RoadNetOptimizer/internal/store"
)

type fakeSource struct {
	lines     []string
	total     int
	adj       route.Adjacency
	byPair    map[string]string
	routesErr error
	adjErr    error

	routesCalls int
	adjCalls    int
	closed      bool
}

func (f *fakeSource) Routes(_ context.Context, limit int) ([]string, int, error) {
	f.routesCalls++
	if f.routesErr != nil {
		return nil, 0, f.routesErr
	}
	if limit > len(f.lines) {
		limit = len(f.lines)
	}
	return f.lines[:limit], f.total, nil
}

func (f *fakeSource) RouteByEndpoints(_ context.Context, start, end string) (string, error) {
	line, ok := f.byPair[start+":"+end]
	if !ok {
		return "", store.ErrNotFound
	}
	return line, nil
}

func (f *fakeSource) Adjacency(_ context.Context) (route.Adjacency, error) {
	f.adjCalls++
	return f.adj, f.adjErr
}

func (f *fakeSource) Describe() string { return "fake source" }

func (f *fakeSource) Close() error {
	f.closed = true
	return nil
}

type fakeRenderer struct {
	path  string
	err   error
	calls int
	last  route.Route
	opts  render.Options
}

func (f *fakeRenderer) Render(r route.Route, opts render.Options) (string, error) {
	f.calls++
	f.last = r
	f.opts = opts
	return f.path, f.err
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Layout:           "snake",
		ColsPerRow:       3,
		MaxDisplayRoutes: 200,
		NodeSize:         12,
		EdgeWidth:        2.5,
		SaveDir:          t.TempDir(),
		Renderer:         "html",
		MaxExtraEdges:    3,
		SimplifyAbove:    50,
	}
}

func testApp(t *testing.T, cfg *config.Config, src *fakeSource, input string) (*App, *fakeRenderer, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	a := New(cfg, config.DefaultStyle(), strings.NewReader(input), &out)
	rr := &fakeRenderer{path: "/tmp/route.html"}
	a.renderer = rr
	a.openSource = func(context.Context, *config.Config) (store.RouteSource, error) {
		return src, nil
	}
	a.openFile = func(string) error { return nil }
	return a, rr, &out
}

func TestVisualizeOnceHappyPath(t *testing.T) {
	src := &fakeSource{
		lines: []string{"Path: 1 -> 2 -> 3", "Path: 4 -> 5"},
		total: 2,
	}
	a, rr, out := testApp(t, testConfig(t), src, "2\n")

	a.VisualizeOnce(context.Background())

	s := out.String()
	assert.Contains(t, s, "[Info] Loaded 2 route(s) from fake source. Showing up to 200.")
	assert.Contains(t, s, "[Saved] /tmp/route.html")
	require.Equal(t, 1, rr.calls)
	assert.Equal(t, []string{"4", "5"}, rr.last.Nodes)
	assert.True(t, src.closed)
	// The interactive renderer never needs the adjacency map.
	assert.Equal(t, 0, src.adjCalls)
}

func TestVisualizeOnceOpensBrowser(t *testing.T) {
	src := &fakeSource{lines: []string{"Path: 1 -> 2"}, total: 1}
	cfg := testConfig(t)
	cfg.OpenInBrowser = true
	a, _, out := testApp(t, cfg, src, "1\n")

	var opened []string
	a.openFile = func(path string) error {
		opened = append(opened, path)
		return nil
	}

	a.VisualizeOnce(context.Background())

	assert.Equal(t, []string{"/tmp/route.html"}, opened)
	assert.NotContains(t, out.String(), "[Warn]")
}

func TestVisualizeOnceBrowserFailureIsAWarning(t *testing.T) {
	src := &fakeSource{lines: []string{"Path: 1 -> 2"}, total: 1}
	cfg := testConfig(t)
	cfg.OpenInBrowser = true
	a, _, out := testApp(t, cfg, src, "1\n")
	a.openFile = func(string) error { return errors.New("no display") }

	a.VisualizeOnce(context.Background())

	s := out.String()
	assert.Contains(t, s, "[Saved]")
	assert.Contains(t, s, "[Warn] Could not open browser automatically: no display")
}

func TestVisualizeOnceConnectFailure(t *testing.T) {
	a, rr, out := testApp(t, testConfig(t), &fakeSource{}, "")
	a.openSource = func(context.Context, *config.Config) (store.RouteSource, error) {
		return nil, errors.New("dial tcp: refused")
	}

	a.VisualizeOnce(context.Background())

	assert.Contains(t, out.String(), "[Error] Could not connect to route source: dial tcp: refused")
	assert.Equal(t, 0, rr.calls)
}

func TestVisualizeOnceReadFailure(t *testing.T) {
	src := &fakeSource{routesErr: errors.New("boom")}
	a, rr, out := testApp(t, testConfig(t), src, "")

	a.VisualizeOnce(context.Background())

	assert.Contains(t, out.String(), "[Error] Error while reading fake source: boom")
	assert.Equal(t, 0, rr.calls)
	assert.True(t, src.closed)
}

func TestVisualizeOnceNoRoutes(t *testing.T) {
	src := &fakeSource{}
	a, rr, out := testApp(t, testConfig(t), src, "")

	a.VisualizeOnce(context.Background())

	s := out.String()
	assert.Contains(t, s, "[Info] Loaded 0 route(s) from fake source.")
	assert.Contains(t, s, "No routes found in fake source.")
	assert.Equal(t, 0, rr.calls)
}

func TestVisualizeOnceCancelled(t *testing.T) {
	src := &fakeSource{lines: []string{"Path: 1 -> 2"}, total: 1}
	a, rr, out := testApp(t, testConfig(t), src, "q\n")

	a.VisualizeOnce(context.Background())

	assert.Contains(t, out.String(), "No route selected. Goodbye.")
	assert.Equal(t, 0, rr.calls)
}

func TestVisualizeOnceRejectsShortRoute(t *testing.T) {
	src := &fakeSource{lines: []string{"Path: lonely"}, total: 1}
	a, rr, out := testApp(t, testConfig(t), src, "1\n")

	a.VisualizeOnce(context.Background())

	assert.Contains(t, out.String(), "[Warn] Selected route is invalid/too short: 'Path: lonely'")
	assert.Equal(t, 0, rr.calls)
}

func TestVisualizeOnceRenderFailure(t *testing.T) {
	src := &fakeSource{lines: []string{"Path: 1 -> 2"}, total: 1}
	a, rr, out := testApp(t, testConfig(t), src, "1\n")
	rr.path = ""
	rr.err = errors.New("disk full")

	a.VisualizeOnce(context.Background())

	assert.Contains(t, out.String(), "[Error] Failed to render/save visualization: disk full")
	assert.NotContains(t, out.String(), "[Saved]")
}

func TestVisualizePNGPartitionsAdjacency(t *testing.T) {
	src := &fakeSource{
		lines: []string{"Path: 1 -> 2 -> 3"},
		total: 1,
		adj:   route.Adjacency{"1": {"2", "9"}},
	}
	cfg := testConfig(t)
	cfg.Renderer = "png"
	a, rr, _ := testApp(t, cfg, src, "1\n")

	a.VisualizeOnce(context.Background())

	require.Equal(t, 1, rr.calls)
	assert.Equal(t, 1, src.adjCalls)
	assert.Equal(t, []route.Edge{{From: "1", To: "2"}}, rr.opts.OnPath)
	assert.Equal(t, []route.Edge{{From: "1", To: "9"}}, rr.opts.Additional)
}

func TestVisualizePNGSimplifiesLongRoutes(t *testing.T) {
	src := &fakeSource{
		lines: []string{"Path: 1 -> 2 -> 3"},
		total: 1,
		adj:   route.Adjacency{"1": {"2", "9"}},
	}
	cfg := testConfig(t)
	cfg.Renderer = "png"
	cfg.SimplifyAbove = 2
	a, rr, _ := testApp(t, cfg, src, "1\n")

	a.VisualizeOnce(context.Background())

	require.Equal(t, 1, rr.calls)
	assert.Equal(t, []route.Edge{{From: "1", To: "2"}}, rr.opts.OnPath)
	assert.Empty(t, rr.opts.Additional)
}

func TestVisualizePNGAdjacencyFailureIsAWarning(t *testing.T) {
	src := &fakeSource{
		lines:  []string{"Path: 1 -> 2"},
		total:  1,
		adjErr: errors.New("scan failed"),
	}
	cfg := testConfig(t)
	cfg.Renderer = "png"
	a, rr, out := testApp(t, cfg, src, "1\n")

	a.VisualizeOnce(context.Background())

	assert.Contains(t, out.String(), "[Warn] Could not load adjacency data: scan failed")
	// The route still renders without context edges.
	require.Equal(t, 1, rr.calls)
	assert.Empty(t, rr.opts.OnPath)
}

func TestListRoutes(t *testing.T) {
	src := &fakeSource{
		lines: []string{"Path: 1 -> 2 -> 3", "Path: 4 -> 5"},
		total: 7,
	}
	a, rr, out := testApp(t, testConfig(t), src, "")

	a.ListRoutes(context.Background())

	s := out.String()
	assert.Contains(t, s, "Found 7 route(s) in fake source.")
	assert.Contains(t, s, "  1. Path: 1 ---> 3")
	assert.Contains(t, s, "  2. Path: 4 ---> 5")
	assert.Equal(t, 0, rr.calls)
	assert.True(t, src.closed)
}

func TestShowRoute(t *testing.T) {
	src := &fakeSource{
		byPair: map[string]string{"1:3": "Path: 1 -> 2 -> 3"},
	}
	a, rr, out := testApp(t, testConfig(t), src, "")

	a.ShowRoute(context.Background(), "1", "3")

	require.Equal(t, 1, rr.calls)
	assert.Equal(t, []string{"1", "2", "3"}, rr.last.Nodes)
	assert.Contains(t, out.String(), "[Saved] /tmp/route.html")
}

func TestShowRouteNotFound(t *testing.T) {
	src := &fakeSource{}
	a, rr, out := testApp(t, testConfig(t), src, "")

	a.ShowRoute(context.Background(), "9", "1")

	assert.Contains(t, out.String(), "[Warn] No stored route from '9' to '1' in fake source.")
	assert.Equal(t, 0, rr.calls)
}

func TestRunExitsOnCommand(t *testing.T) {
	src := &fakeSource{}
	a, _, out := testApp(t, testConfig(t), src, "exit\n")

	a.Run(context.Background())

	assert.Contains(t, out.String(), "Press Enter to visualize another route, or type 'exit' to quit: ")
	assert.Equal(t, 1, src.routesCalls)
}

func TestRunRepeatsOnEnter(t *testing.T) {
	src := &fakeSource{}
	a, _, _ := testApp(t, testConfig(t), src, "\nexit\n")

	a.Run(context.Background())

	assert.Equal(t, 2, src.routesCalls)
}

func TestRunStopsOnClosedInput(t *testing.T) {
	src := &fakeSource{}
	a, _, _ := testApp(t, testConfig(t), src, "")

	a.Run(context.Background())

	assert.Equal(t, 1, src.routesCalls)
}

func TestLabelStep(t *testing.T) {
	cfg := testConfig(t)
	a, _, _ := testApp(t, cfg, &fakeSource{}, "")

	assert.Equal(t, 1, a.labelStep(10))
	assert.Equal(t, 5, a.labelStep(100))

	cfg.LabelEvery = 7
	assert.Equal(t, 7, a.labelStep(100))
}
