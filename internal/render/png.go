package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/mkljngd/RoadNetOptimizer/internal/layout"
	"github.com/mkljngd/RoadNetOptimizer/internal/route"
)

// PNG renders a static chart of the route. It has no hover or pan, so this
// is the variant that also draws adjacency context: on-path edges between
// route nodes and capped stubs toward off-route neighbors.
type PNG struct{}

const (
	// Stub geometry for off-route neighbors, in layout units. Stubs fan
	// out above and below their source node.
	stubDX = 0.3
	stubDY = 0.45

	// Canvas scale in pixels per layout unit.
	pxPerUnitX = 140
	pxPerUnitY = 130
)

// Render writes the chart and returns its path.
func (p *PNG) Render(r route.Route, opts Options) (string, error) {
	if !r.Valid() {
		return "", fmt.Errorf("route needs at least %d nodes to draw", route.MinNodes)
	}

	series, b := p.series(r, opts)
	bg := hexColor(opts.Style.Background)
	width := clampInt(int(float64(pxPerUnitX)*(b.maxX-b.minX))+200, 700, 4000)
	height := clampInt(int(float64(pxPerUnitY)*(b.maxY-b.minY))+260, 500, 3000)

	ch := chart.Chart{
		Title:      Title(r),
		Width:      width,
		Height:     height,
		Background: chart.Style{FillColor: bg},
		Canvas:     chart.Style{FillColor: bg},
		XAxis: chart.XAxis{
			Style: chart.Hidden(),
			Range: &chart.ContinuousRange{Min: b.minX - 1, Max: b.maxX + 1},
		},
		YAxis: chart.YAxis{
			Style: chart.Hidden(),
			Range: &chart.ContinuousRange{Min: b.minY - 1, Max: b.maxY + 1},
		},
		Series: series,
	}

	if err := os.MkdirAll(opts.SaveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create save directory: %w", err)
	}
	path := filepath.Join(opts.SaveDir, Filename(r, opts.LayoutMode, "png"))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create output file: %w", err)
	}
	if err := ch.Render(chart.PNG, f); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to render chart: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to render chart: %w", err)
	}
	return path, nil
}

// series builds the chart series bottom-up: stubs, on-path context edges,
// the route polyline, node dots, then label annotations. It also reports
// the coordinate bounds of everything drawn.
func (p *PNG) series(r route.Route, opts Options) ([]chart.Series, bounds) {
	nodes := r.Nodes
	pos := opts.Positions

	var b bounds
	for _, n := range nodes {
		pt := pos[n]
		b.expand(pt.X, pt.Y)
	}

	var series []chart.Series

	// Off-route neighbors have no layout position, so each additional
	// edge becomes a short dashed stub fanned around its source.
	stubStyle := chart.Style{
		StrokeColor:     hexColor(opts.Style.ExtraEdgeColor),
		StrokeWidth:     1,
		StrokeDashArray: []float64{4, 3},
	}
	fanned := make(map[string]int)
	for _, e := range opts.Additional {
		src, ok := pos[e.From]
		if !ok {
			continue
		}
		k := fanned[e.From]
		fanned[e.From]++
		dy := stubDY * float64(k/2+1)
		if k%2 == 1 {
			dy = -dy
		}
		tip := layout.Position{X: src.X + stubDX, Y: src.Y + dy}
		b.expand(tip.X, tip.Y)
		series = append(series, chart.ContinuousSeries{
			XValues: []float64{src.X, tip.X},
			YValues: []float64{src.Y, tip.Y},
			Style:   stubStyle,
		})
	}

	// On-path edges that the polyline does not already cover. Reverse
	// duplicates collapse into one segment.
	edgeStyle := chart.Style{
		StrokeColor: hexColor(opts.Style.EdgeColor),
		StrokeWidth: opts.EdgeWidth,
	}
	covered := consecutivePairs(nodes)
	for _, e := range opts.OnPath {
		k := pairKey(e.From, e.To)
		if covered[k] {
			continue
		}
		covered[k] = true
		a, okA := pos[e.From]
		z, okB := pos[e.To]
		if !okA || !okB {
			continue
		}
		series = append(series, chart.ContinuousSeries{
			XValues: []float64{a.X, z.X},
			YValues: []float64{a.Y, z.Y},
			Style:   edgeStyle,
		})
	}

	xs := make([]float64, len(nodes))
	ys := make([]float64, len(nodes))
	for i, n := range nodes {
		pt := pos[n]
		xs[i] = pt.X
		ys[i] = pt.Y
	}
	series = append(series, chart.ContinuousSeries{
		XValues: xs,
		YValues: ys,
		Style:   edgeStyle,
	})

	start := hexColor(opts.Style.StartColor)
	end := hexColor(opts.Style.EndColor)
	mid := hexColor(opts.Style.NodeColor)
	last := len(nodes) - 1
	series = append(series, chart.ContinuousSeries{
		XValues: xs,
		YValues: ys,
		Style: chart.Style{
			StrokeWidth: chart.Disabled,
			DotWidth:    float64(opts.NodeSize) / 2,
			DotColorProvider: func(_, _ chart.Range, index int, _, _ float64) drawing.Color {
				switch index {
				case 0:
					return start
				case last:
					return end
				default:
					return mid
				}
			},
		},
	})

	var marks []chart.Value2
	for i, n := range nodes {
		if !layout.LabelAt(i, len(nodes), opts.LabelStep) {
			continue
		}
		pt := pos[n]
		marks = append(marks, chart.Value2{XValue: pt.X, YValue: pt.Y, Label: n})
	}
	if len(marks) > 0 {
		series = append(series, chart.AnnotationSeries{
			Annotations: marks,
			Style: chart.Style{
				FontSize:    9,
				StrokeWidth: 1,
				StrokeColor: hexColor(opts.Style.NodeBorderColor),
				FillColor:   drawing.ColorWhite,
			},
		})
	}

	return series, b
}

type pair struct {
	a, b string
}

// pairKey normalizes an undirected edge.
func pairKey(a, b string) pair {
	if b < a {
		a, b = b, a
	}
	return pair{a, b}
}

func consecutivePairs(nodes []string) map[pair]bool {
	covered := make(map[pair]bool, len(nodes))
	for i := 0; i < len(nodes)-1; i++ {
		covered[pairKey(nodes[i], nodes[i+1])] = true
	}
	return covered
}

type bounds struct {
	minX, maxX, minY, maxY float64
	set                    bool
}

func (b *bounds) expand(x, y float64) {
	if !b.set {
		b.minX, b.maxX, b.minY, b.maxY = x, x, y, y
		b.set = true
		return
	}
	if x < b.minX {
		b.minX = x
	}
	if x > b.maxX {
		b.maxX = x
	}
	if y < b.minY {
		b.minY = y
	}
	if y > b.maxY {
		b.maxY = y
	}
}

// hexColor parses a "#RRGGBB" style string, tolerating a missing '#'.
func hexColor(s string) drawing.Color {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 3 && len(s) != 6 {
		return drawing.ColorBlack
	}
	return drawing.ColorFromHex(s)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
