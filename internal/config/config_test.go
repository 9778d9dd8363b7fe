package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "routes", cfg.RouteListKey)
	assert.Equal(t, "route:", cfg.RouteHashPrefix)
	assert.Equal(t, "adj:", cfg.AdjacencyPrefix)
	assert.Equal(t, "redis", cfg.Source)
	assert.Equal(t, "snake", cfg.Layout)
	assert.Equal(t, 25, cfg.ColsPerRow)
	assert.Equal(t, 200, cfg.MaxDisplayRoutes)
	assert.Equal(t, 0, cfg.LabelEvery)
	assert.Equal(t, 12, cfg.NodeSize)
	assert.Equal(t, 2.5, cfg.EdgeWidth)
	assert.Equal(t, ".", cfg.SaveDir)
	assert.True(t, cfg.OpenInBrowser)
	assert.Equal(t, "html", cfg.Renderer)
	assert.Equal(t, 3, cfg.MaxExtraEdges)
	assert.Equal(t, 50, cfg.SimplifyAbove)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("REDIS_LIST_KEY", "myroutes")
	t.Setenv("LAYOUT", "single")
	t.Setenv("MAX_DISPLAY_ROUTES", "50")
	t.Setenv("OPEN_IN_BROWSER", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "myroutes", cfg.RouteListKey)
	assert.Equal(t, "single", cfg.Layout)
	assert.Equal(t, 50, cfg.MaxDisplayRoutes)
	assert.False(t, cfg.OpenInBrowser)
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	t.Setenv("COLS_PER_ROW", "many")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadClampsLowerBounds(t *testing.T) {
	t.Setenv("COLS_PER_ROW", "1")
	t.Setenv("NODE_SIZE", "0")
	t.Setenv("EDGE_WIDTH", "0.1")
	t.Setenv("MAX_EXTRA_EDGES", "-4")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.ColsPerRow)
	assert.Equal(t, 2, cfg.NodeSize)
	assert.Equal(t, 0.5, cfg.EdgeWidth)
	assert.Equal(t, 0, cfg.MaxExtraEdges)
}

func TestRedisAddr(t *testing.T) {
	cfg := Config{RedisHost: "redis.internal", RedisPort: 6380}
	assert.Equal(t, "redis.internal:6380", cfg.RedisAddr())
}

func TestApplyOverrides(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	cfg.Apply(Overrides{
		Layout:     "single",
		Cols:       30,
		LabelEvery: 4,
		SaveDir:    "/tmp/out",
		NoBrowser:  true,
		Renderer:   "png",
	})

	assert.Equal(t, "single", cfg.Layout)
	assert.Equal(t, 30, cfg.ColsPerRow)
	assert.Equal(t, 4, cfg.LabelEvery)
	assert.Equal(t, "/tmp/out", cfg.SaveDir)
	assert.False(t, cfg.OpenInBrowser)
	assert.Equal(t, "png", cfg.Renderer)
}

func TestApplyIgnoresUnsetOverrides(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	before := *cfg

	cfg.Apply(Overrides{Cols: 1}) // below the minimum, not applied

	assert.Equal(t, before.Layout, cfg.Layout)
	assert.Equal(t, before.ColsPerRow, cfg.ColsPerRow)
	assert.Equal(t, before.OpenInBrowser, cfg.OpenInBrowser)
}

func TestOverridesRegisterAndParse(t *testing.T) {
	var o Overrides
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	o.Register(fs)

	err := fs.Parse([]string{"--layout", "single", "--cols", "10", "--no-browser"})
	require.NoError(t, err)

	assert.Equal(t, "single", o.Layout)
	assert.Equal(t, 10, o.Cols)
	assert.True(t, o.NoBrowser)
}

func TestOverridesValidate(t *testing.T) {
	assert.NoError(t, Overrides{}.Validate())
	assert.NoError(t, Overrides{Layout: "single", Renderer: "png", Source: "file"}.Validate())
	assert.Error(t, Overrides{Layout: "spiral"}.Validate())
	assert.Error(t, Overrides{Renderer: "svg"}.Validate())
	assert.Error(t, Overrides{Source: "s3"}.Validate())
}

func TestLoadStyleDefaults(t *testing.T) {
	style, err := LoadStyle("")
	require.NoError(t, err)

	assert.Equal(t, "#FFD54F", style.StartColor)
	assert.Equal(t, "#66BB6A", style.EndColor)
	assert.Equal(t, "#90CAF9", style.NodeColor)
	assert.Equal(t, "#1E88E5", style.EdgeColor)
	assert.Equal(t, 1.2, style.NodeBorderWidth)
}

func TestLoadStyleOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.yaml")
	data := "start_color: \"#FF0000\"\nedge_color: \"#00FF00\"\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	style, err := LoadStyle(path)
	require.NoError(t, err)

	assert.Equal(t, "#FF0000", style.StartColor)
	assert.Equal(t, "#00FF00", style.EdgeColor)
	// Untouched fields keep their defaults.
	assert.Equal(t, "#66BB6A", style.EndColor)
	assert.Equal(t, "#B0BEC5", style.ExtraEdgeColor)
}

func TestLoadStyleMissingFileReturnsDefaults(t *testing.T) {
	style, err := LoadStyle("/nonexistent/style.yaml")
	assert.Error(t, err)
	assert.Equal(t, DefaultStyle(), style)
}
