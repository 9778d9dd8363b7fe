package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTMLRenderWritesPage(t *testing.T) {
	r := testRoute("A", "B", "C")
	opts := testOptions(t, r)

	h := &HTML{}
	path, err := h.Render(r, opts)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(opts.SaveDir, "route_A_C_3_snake.html"), path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	page := string(raw)

	assert.Contains(t, page, "Route A → C  (|path|=3)")
	assert.Contains(t, page, plotlyCDN)
	assert.Contains(t, page, "Plotly.newPlot")
	// Edge segments are broken up by nulls so pan keeps them separate.
	assert.Contains(t, page, "null")
	assert.Contains(t, page, `"dragmode":"pan"`)
	assert.Contains(t, page, `"bgcolor":"rgba(255,255,255,0.6)"`)
	// Endpoint markers keep their dedicated colors.
	assert.Contains(t, page, "#FFD54F")
	assert.Contains(t, page, "#66BB6A")
	assert.Contains(t, page, "Node: B")
}

func TestHTMLRenderCreatesSaveDir(t *testing.T) {
	r := testRoute("A", "B")
	opts := testOptions(t, r)
	opts.SaveDir = filepath.Join(opts.SaveDir, "nested", "out")

	path, err := (&HTML{}).Render(r, opts)
	require.NoError(t, err)
	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestHTMLRenderThinsLabels(t *testing.T) {
	nodes := []string{"n0", "n1", "n2", "n3", "n4", "n5"}
	r := testRoute(nodes...)
	opts := testOptions(t, r)
	opts.LabelStep = 5

	path, err := (&HTML{}).Render(r, opts)
	require.NoError(t, err)
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	page := string(raw)

	// First, last, and every fifth node keep a text label, the rest
	// keep only hover text.
	assert.Contains(t, page, `"n0","","","","","n5"`)
}

func TestHTMLRenderRejectsShortRoute(t *testing.T) {
	r := testRoute("A")
	opts := testOptions(t, r)

	path, err := (&HTML{}).Render(r, opts)
	assert.Error(t, err)
	assert.Empty(t, path)

	entries, err := os.ReadDir(opts.SaveDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
