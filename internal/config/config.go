package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/pflag"
)

// Config holds every runtime setting. Values come from the environment
// after an optional .env load, with CLI flags layered on top.
type Config struct {
	RedisURL      string `envconfig:"REDIS_URL"`
	RedisHost     string `envconfig:"REDIS_HOST" default:"localhost"`
	RedisPort     int    `envconfig:"REDIS_PORT" default:"6379"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`

	RouteListKey    string `envconfig:"REDIS_LIST_KEY" default:"routes"`
	RouteHashPrefix string `envconfig:"REDIS_ROUTE_PREFIX" default:"route:"`
	AdjacencyPrefix string `envconfig:"REDIS_ADJ_PREFIX" default:"adj:"`

	Source     string `envconfig:"ROUTE_SOURCE" default:"redis"`
	RoutesFile string `envconfig:"ROUTES_FILE"`
	EdgeFile   string `envconfig:"EDGE_FILE"`

	Layout           string  `envconfig:"LAYOUT" default:"snake"`
	ColsPerRow       int     `envconfig:"COLS_PER_ROW" default:"25"`
	MaxDisplayRoutes int     `envconfig:"MAX_DISPLAY_ROUTES" default:"200"`
	LabelEvery       int     `envconfig:"LABEL_EVERY" default:"0"`
	NodeSize         int     `envconfig:"NODE_SIZE" default:"12"`
	EdgeWidth        float64 `envconfig:"EDGE_WIDTH" default:"2.5"`
	SaveDir          string  `envconfig:"SAVE_DIR" default:"."`
	OpenInBrowser    bool    `envconfig:"OPEN_IN_BROWSER" default:"true"`
	Renderer         string  `envconfig:"RENDERER" default:"html"`
	MaxExtraEdges    int     `envconfig:"MAX_EXTRA_EDGES" default:"3"`
	SimplifyAbove    int     `envconfig:"SIMPLIFY_ABOVE" default:"50"`

	StyleFile string `envconfig:"STYLE_FILE"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads configuration from the environment. A .env file in the
// working directory is honored when present and ignored when missing.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("error processing environment configuration: %w", err)
	}
	cfg.clamp()
	return &cfg, nil
}

// clamp enforces the lower bounds the layouts and renderers expect.
func (c *Config) clamp() {
	if c.ColsPerRow < 2 {
		c.ColsPerRow = 2
	}
	if c.NodeSize < 2 {
		c.NodeSize = 2
	}
	if c.EdgeWidth < 0.5 {
		c.EdgeWidth = 0.5
	}
	if c.MaxDisplayRoutes < 1 {
		c.MaxDisplayRoutes = 1
	}
	if c.MaxExtraEdges < 0 {
		c.MaxExtraEdges = 0
	}
	if c.SimplifyAbove < 0 {
		c.SimplifyAbove = 0
	}
}

// RedisAddr returns the host:port pair for discrete connection settings.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

// Overrides carries CLI flag values. Zero values mean "not set"; the flags
// only replace environment values when given.
type Overrides struct {
	Layout     string
	Cols       int
	LabelEvery int
	SaveDir    string
	NoBrowser  bool
	Renderer   string
	Source     string
	RoutesFile string
	EdgeFile   string
	StyleFile  string
}

// Register declares the shared display and source flags on a flag set.
func (o *Overrides) Register(fs *pflag.FlagSet) {
	fs.StringVar(&o.Layout, "layout", "", "layout mode: snake or single")
	fs.IntVar(&o.Cols, "cols", 0, "columns per row for the snake layout")
	fs.IntVar(&o.LabelEvery, "label-every", 0, "label every Nth node (0 = auto)")
	fs.StringVar(&o.SaveDir, "save-dir", "", "directory for saved visualizations")
	fs.BoolVar(&o.NoBrowser, "no-browser", false, "do not open the saved file automatically")
	fs.StringVar(&o.Renderer, "renderer", "", "renderer: html or png")
	fs.StringVar(&o.Source, "source", "", "route source: redis or file")
	fs.StringVar(&o.RoutesFile, "routes-file", "", "newline-delimited file of route lines")
	fs.StringVar(&o.EdgeFile, "edge-file", "", "tab-delimited edge list file")
	fs.StringVar(&o.StyleFile, "style", "", "YAML file with figure style overrides")
}

// Validate rejects flag values outside their accepted sets. Environment
// values stay permissive; flags are checked strictly.
func (o Overrides) Validate() error {
	if o.Layout != "" && o.Layout != "snake" && o.Layout != "single" {
		return fmt.Errorf("invalid --layout %q (want snake or single)", o.Layout)
	}
	if o.Renderer != "" && o.Renderer != "html" && o.Renderer != "png" {
		return fmt.Errorf("invalid --renderer %q (want html or png)", o.Renderer)
	}
	if o.Source != "" && o.Source != "redis" && o.Source != "file" {
		return fmt.Errorf("invalid --source %q (want redis or file)", o.Source)
	}
	return nil
}

// Apply layers the given flag values onto the config and re-clamps.
func (c *Config) Apply(o Overrides) {
	if o.Layout != "" {
		c.Layout = o.Layout
	}
	if o.Cols > 1 {
		c.ColsPerRow = o.Cols
	}
	if o.LabelEvery > 0 {
		c.LabelEvery = o.LabelEvery
	}
	if o.SaveDir != "" {
		c.SaveDir = o.SaveDir
	}
	if o.NoBrowser {
		c.OpenInBrowser = false
	}
	if o.Renderer != "" {
		c.Renderer = o.Renderer
	}
	if o.Source != "" {
		c.Source = o.Source
	}
	if o.RoutesFile != "" {
		c.RoutesFile = o.RoutesFile
	}
	if o.EdgeFile != "" {
		c.EdgeFile = o.EdgeFile
	}
	if o.StyleFile != "" {
		c.StyleFile = o.StyleFile
	}
	c.clamp()
}
