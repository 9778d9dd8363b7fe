package render

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"

	"github.com/mkljngd/RoadNetOptimizer/internal/layout"
	"github.com/mkljngd/RoadNetOptimizer/internal/route"
)

// HTML renders a self-contained interactive page: pan, zoom, and per-node
// hover, with the plotting library loaded from a CDN.
type HTML struct{}

const plotlyCDN = "https://cdn.plot.ly/plotly-2.35.2.min.js"

// Plotly trace and layout payloads. Null entries in a line trace break the
// polyline between segments.
type scatter struct {
	X            []*float64 `json:"x"`
	Y            []*float64 `json:"y"`
	Mode         string     `json:"mode"`
	Name         string     `json:"name,omitempty"`
	Line         *lineStyle `json:"line,omitempty"`
	Marker       *marker    `json:"marker,omitempty"`
	Text         []string   `json:"text,omitempty"`
	TextPosition string     `json:"textposition,omitempty"`
	HoverInfo    string     `json:"hoverinfo,omitempty"`
	HoverText    []string   `json:"hovertext,omitempty"`
}

type lineStyle struct {
	Width float64 `json:"width"`
	Color string  `json:"color"`
}

type marker struct {
	Size  int         `json:"size"`
	Color []string    `json:"color"`
	Line  *markerLine `json:"line,omitempty"`
}

type markerLine struct {
	Width float64 `json:"width"`
	Color string  `json:"color"`
}

type figureLayout struct {
	Title      figureTitle  `json:"title"`
	ShowLegend bool         `json:"showlegend"`
	Legend     figureLegend `json:"legend"`
	XAxis      figureAxis   `json:"xaxis"`
	YAxis      figureAxis   `json:"yaxis"`
	Margin     figureMargin `json:"margin"`
	DragMode   string       `json:"dragmode"`
	PlotBG     string       `json:"plot_bgcolor"`
	PaperBG    string       `json:"paper_bgcolor"`
}

type figureTitle struct {
	Text string `json:"text"`
}

type figureLegend struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	BGColor string  `json:"bgcolor"`
}

type figureAxis struct {
	Visible bool `json:"visible"`
}

type figureMargin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

type pageData struct {
	Title  string
	CDN    string
	Data   template.JS
	Layout template.JS
}

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>{{.Title}}</title>
<script src="{{.CDN}}"></script>
<style>
  html, body { margin: 0; height: 100%; }
  #figure { width: 100%; height: 100%; }
</style>
</head>
<body>
<div id="figure"></div>
<script>
  const data = {{.Data}};
  const layout = {{.Layout}};
  Plotly.newPlot("figure", data, layout, {responsive: true, scrollZoom: true});
</script>
</body>
</html>
`

// Render writes the interactive page and returns its path.
func (h *HTML) Render(r route.Route, opts Options) (string, error) {
	if !r.Valid() {
		return "", fmt.Errorf("route needs at least %d nodes to draw", route.MinNodes)
	}

	data, err := sonic.Marshal(h.traces(r, opts))
	if err != nil {
		return "", fmt.Errorf("failed to marshal figure data: %w", err)
	}
	lay, err := sonic.Marshal(h.layout(r, opts))
	if err != nil {
		return "", fmt.Errorf("failed to marshal figure layout: %w", err)
	}

	if err := os.MkdirAll(opts.SaveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create save directory: %w", err)
	}
	path := filepath.Join(opts.SaveDir, Filename(r, opts.LayoutMode, "html"))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create output file: %w", err)
	}
	page := pageData{
		Title:  Title(r),
		CDN:    plotlyCDN,
		Data:   template.JS(data),
		Layout: template.JS(lay),
	}
	if err := pageTemplate.Execute(f, page); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to write page: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write page: %w", err)
	}
	return path, nil
}

// traces builds the edge polyline and the node markers.
func (h *HTML) traces(r route.Route, opts Options) []scatter {
	nodes := r.Nodes
	pos := opts.Positions

	// One line trace for all path edges, segments separated by nulls.
	var ex, ey []*float64
	for i := 0; i < len(nodes)-1; i++ {
		a, b := pos[nodes[i]], pos[nodes[i+1]]
		ex = append(ex, f64(a.X), f64(b.X), nil)
		ey = append(ey, f64(a.Y), f64(b.Y), nil)
	}
	edges := scatter{
		X:         ex,
		Y:         ey,
		Mode:      "lines",
		Name:      "Path edges",
		Line:      &lineStyle{Width: opts.EdgeWidth, Color: opts.Style.EdgeColor},
		HoverInfo: "skip",
	}

	step := opts.LabelStep
	nx := make([]*float64, len(nodes))
	ny := make([]*float64, len(nodes))
	colors := make([]string, len(nodes))
	labels := make([]string, len(nodes))
	hover := make([]string, len(nodes))
	for i, n := range nodes {
		p := pos[n]
		nx[i] = f64(p.X)
		ny[i] = f64(p.Y)
		colors[i] = nodeColor(i, len(nodes), opts)
		hover[i] = fmt.Sprintf("Index: %d<br>Node: %s", i+1, n)
		if layout.LabelAt(i, len(nodes), step) {
			labels[i] = n
		}
	}
	markers := scatter{
		X:    nx,
		Y:    ny,
		Mode: "markers+text",
		Name: "Nodes",
		Marker: &marker{
			Size:  opts.NodeSize,
			Color: colors,
			Line:  &markerLine{Width: opts.Style.NodeBorderWidth, Color: opts.Style.NodeBorderColor},
		},
		Text:         labels,
		TextPosition: "top center",
		HoverInfo:    "text",
		HoverText:    hover,
	}

	return []scatter{edges, markers}
}

// layout builds the figure chrome: title, pinned legend, hidden axes,
// tight margins, pan on drag.
func (h *HTML) layout(r route.Route, opts Options) figureLayout {
	return figureLayout{
		Title:      figureTitle{Text: Title(r)},
		ShowLegend: true,
		Legend:     figureLegend{X: 0.01, Y: 0.99, BGColor: "rgba(255,255,255,0.6)"},
		XAxis:      figureAxis{Visible: false},
		YAxis:      figureAxis{Visible: false},
		Margin:     figureMargin{L: 30, R: 30, T: 60, B: 30},
		DragMode:   "pan",
		PlotBG:     opts.Style.Background,
		PaperBG:    opts.Style.Background,
	}
}

// nodeColor picks the marker color by position on the route: start, end,
// or mid.
func nodeColor(i, n int, opts Options) string {
	switch {
	case i == 0:
		return opts.Style.StartColor
	case i == n-1:
		return opts.Style.EndColor
	default:
		return opts.Style.NodeColor
	}
}

func f64(v float64) *float64 {
	return &v
}
