// Package render turns a laid-out route into a saved artifact: an
// interactive HTML page or a static PNG chart.
package render

import (
	"fmt"
	"regexp"

	"github.com/mkljngd/RoadNetOptimizer/internal/config"
	"github.com/mkljngd/RoadNetOptimizer/internal/layout"
	"github.com/mkljngd/RoadNetOptimizer/internal/route"
)

// Options carries everything a renderer needs besides the route itself.
type Options struct {
	Positions  map[string]layout.Position
	LayoutMode layout.Mode
	LabelStep  int
	NodeSize   int
	EdgeWidth  float64
	SaveDir    string
	Style      config.Style

	// Context edges for static output: adjacency edges between route
	// nodes, and capped off-route edges. Empty slices draw the route
	// alone.
	OnPath     []route.Edge
	Additional []route.Edge
}

// Renderer writes a visualization artifact and returns the saved path.
type Renderer interface {
	Render(r route.Route, opts Options) (string, error)
}

// New picks a renderer by configured name. Anything other than "png"
// renders HTML.
func New(name string) Renderer {
	if name == "png" {
		return &PNG{}
	}
	return &HTML{}
}

// Title builds the figure heading, e.g. "Route 17 → 1025  (|path|=42)".
func Title(r route.Route) string {
	return fmt.Sprintf("Route %s → %s  (|path|=%d)", r.Start(), r.End(), r.Len())
}

var unsafeChars = regexp.MustCompile(`[^\w\-]+`)

// Filename builds the artifact name, route_<start>_<end>_<n>_<layout>.<ext>,
// with the endpoint labels sanitized for the filesystem.
func Filename(r route.Route, mode layout.Mode, ext string) string {
	return fmt.Sprintf("route_%s_%s_%d_%s.%s",
		sanitize(r.Start()), sanitize(r.End()), r.Len(), mode, ext)
}

func sanitize(s string) string {
	return unsafeChars.ReplaceAllString(s, "_")
}
