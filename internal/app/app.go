// Package app drives the visualization flow: open a route source, let the
// operator pick a route, lay it out, render an artifact, and open it.
// Every failure along the way is reported and swallowed so the surrounding
// loop keeps running.
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/browser"

	"github.com/mkljngd/RoadNetOptimizer/internal/config"
	"github.com/mkljngd/RoadNetOptimizer/internal/layout"
	"github.com/mkljngd/RoadNetOptimizer/internal/render"
	"github.com/mkljngd/RoadNetOptimizer/internal/route"
	"github.com/mkljngd/RoadNetOptimizer/internal/store"
	"github.com/mkljngd/RoadNetOptimizer/internal/term"
)

// App wires configuration, the route source, and a renderer behind the
// operator-facing flow. Collaborators are swappable for tests.
type App struct {
	cfg     *config.Config
	style   config.Style
	in      *bufio.Reader
	out     io.Writer
	printer *term.Printer

	openSource func(ctx context.Context, cfg *config.Config) (store.RouteSource, error)
	renderer   render.Renderer
	openFile   func(path string) error
}

// New builds an App reading operator input from in and printing to out.
func New(cfg *config.Config, style config.Style, in io.Reader, out io.Writer) *App {
	return &App{
		cfg:        cfg,
		style:      style,
		in:         bufio.NewReader(in),
		out:        out,
		printer:    term.NewPrinter(out),
		openSource: store.Open,
		renderer:   render.New(cfg.Renderer),
		openFile:   browser.OpenFile,
	}
}

// Run is the interactive loop: one visualization pass, then offer another
// until the operator types 'exit' or the input closes.
func (a *App) Run(ctx context.Context) {
	a.VisualizeOnce(ctx)
	for {
		fmt.Fprint(a.out, "\nPress Enter to visualize another route, or type 'exit' to quit: ")
		raw, err := a.in.ReadString('\n')
		if err != nil && raw == "" {
			fmt.Fprintln(a.out)
			return
		}
		if strings.ToLower(strings.TrimSpace(raw)) == "exit" {
			return
		}
		a.VisualizeOnce(ctx)
		if err != nil {
			return
		}
	}
}

// VisualizeOnce runs a single select-and-render pass.
func (a *App) VisualizeOnce(ctx context.Context) {
	src, err := a.openSource(ctx, a.cfg)
	if err != nil {
		a.printer.Errorf("Could not connect to route source: %v", err)
		return
	}
	defer src.Close()

	lines, total, err := src.Routes(ctx, a.cfg.MaxDisplayRoutes)
	if err != nil {
		a.printer.Errorf("Error while reading %s: %v", src.Describe(), err)
		return
	}

	fmt.Fprintln(a.out)
	a.printer.Infof("Loaded %d route(s) from %s. Showing up to %d.", total, src.Describe(), a.cfg.MaxDisplayRoutes)
	if len(lines) == 0 {
		a.printer.Printf("No routes found in %s.\n", src.Describe())
		return
	}

	chosen := term.NewChooser(a.in, a.out).Choose(lines, total, src.Describe())
	if chosen == "" {
		a.printer.Printf("No route selected. Goodbye.\n")
		return
	}

	a.visualize(ctx, src, chosen)
}

// ListRoutes prints the capped numbered route list and returns.
func (a *App) ListRoutes(ctx context.Context) {
	src, err := a.openSource(ctx, a.cfg)
	if err != nil {
		a.printer.Errorf("Could not connect to route source: %v", err)
		return
	}
	defer src.Close()

	lines, total, err := src.Routes(ctx, a.cfg.MaxDisplayRoutes)
	if err != nil {
		a.printer.Errorf("Error while reading %s: %v", src.Describe(), err)
		return
	}
	if len(lines) == 0 {
		a.printer.Printf("No routes found in %s.\n", src.Describe())
		return
	}
	term.PrintRoutes(a.out, lines, total, src.Describe())
}

// ShowRoute renders the stored route between two endpoints, skipping the
// interactive prompt.
func (a *App) ShowRoute(ctx context.Context, start, end string) {
	src, err := a.openSource(ctx, a.cfg)
	if err != nil {
		a.printer.Errorf("Could not connect to route source: %v", err)
		return
	}
	defer src.Close()

	line, err := src.RouteByEndpoints(ctx, start, end)
	if errors.Is(err, store.ErrNotFound) {
		a.printer.Warnf("No stored route from '%s' to '%s' in %s.", start, end, src.Describe())
		return
	}
	if err != nil {
		a.printer.Errorf("Error while reading %s: %v", src.Describe(), err)
		return
	}

	a.visualize(ctx, src, line)
}

// visualize lays out and renders one raw route line.
func (a *App) visualize(ctx context.Context, src store.RouteSource, line string) {
	r := route.FromLine(line)
	if !r.Valid() {
		a.printer.Warnf("Selected route is invalid/too short: '%s'", line)
		return
	}

	mode := layout.ParseMode(a.cfg.Layout)
	opts := render.Options{
		Positions:  layout.Compute(r.Nodes, mode, a.cfg.ColsPerRow),
		LayoutMode: mode,
		LabelStep:  a.labelStep(r.Len()),
		NodeSize:   a.cfg.NodeSize,
		EdgeWidth:  a.cfg.EdgeWidth,
		SaveDir:    a.cfg.SaveDir,
		Style:      a.style,
	}

	// Context edges only matter for the static renderer; the interactive
	// page already carries hover and zoom.
	if a.cfg.Renderer == "png" {
		adj, err := src.Adjacency(ctx)
		if err != nil {
			a.printer.Warnf("Could not load adjacency data: %v", err)
		} else if len(adj) > 0 {
			onPath, additional := route.Partition(r.Nodes, adj, a.cfg.MaxExtraEdges)
			opts.OnPath = onPath
			if r.Len() <= a.cfg.SimplifyAbove {
				opts.Additional = additional
			}
		}
	}

	path, err := a.renderer.Render(r, opts)
	if err != nil {
		a.printer.Errorf("Failed to render/save visualization: %v", err)
		return
	}
	a.printer.Savedf("%s", path)

	if !a.cfg.OpenInBrowser {
		return
	}
	if err := a.openFile(path); err != nil {
		a.printer.Warnf("Could not open browser automatically: %v", err)
	}
}

// labelStep resolves the configured label cadence, falling back to the
// size-based automatic step.
func (a *App) labelStep(n int) int {
	if a.cfg.LabelEvery > 0 {
		return a.cfg.LabelEvery
	}
	return layout.AutoStep(n)
}
