package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkljngd/RoadNetOptimizer/internal/config"
	"github.com/mkljngd/RoadNetOptimizer/internal/layout"
	"github.com/mkljngd/RoadNetOptimizer/internal/route"
)

func testRoute(nodes ...string) route.Route {
	return route.Route{Nodes: nodes, Raw: route.FormatLine(nodes)}
}

func testOptions(t *testing.T, r route.Route) Options {
	t.Helper()
	return Options{
		Positions:  layout.Compute(r.Nodes, layout.ModeSnake, 3),
		LayoutMode: layout.ModeSnake,
		LabelStep:  1,
		NodeSize:   12,
		EdgeWidth:  2.5,
		SaveDir:    t.TempDir(),
		Style:      config.DefaultStyle(),
	}
}

func TestNewPicksRenderer(t *testing.T) {
	assert.IsType(t, &PNG{}, New("png"))
	assert.IsType(t, &HTML{}, New("html"))
	assert.IsType(t, &HTML{}, New(""))
	assert.IsType(t, &HTML{}, New("svg"))
}

func TestTitle(t *testing.T) {
	r := testRoute("17", "4", "1025")
	assert.Equal(t, "Route 17 → 1025  (|path|=3)", Title(r))
}

func TestFilename(t *testing.T) {
	r := testRoute("17", "4", "1025")
	assert.Equal(t, "route_17_1025_3_snake.html", Filename(r, layout.ModeSnake, "html"))
	assert.Equal(t, "route_17_1025_3_single.png", Filename(r, layout.ModeSingle, "png"))
}

func TestFilenameSanitizesLabels(t *testing.T) {
	r := testRoute("a/b c", "x", "d:e")
	assert.Equal(t, "route_a_b_c_d_e_3_snake.html", Filename(r, layout.ModeSnake, "html"))
}
