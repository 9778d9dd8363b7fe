package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Style holds the figure palette and visual tuning. Colors are hex strings
// with a leading '#'.
type Style struct {
	StartColor      string  `yaml:"start_color"`
	EndColor        string  `yaml:"end_color"`
	NodeColor       string  `yaml:"node_color"`
	NodeBorderColor string  `yaml:"node_border_color"`
	NodeBorderWidth float64 `yaml:"node_border_width"`
	EdgeColor       string  `yaml:"edge_color"`
	ExtraEdgeColor  string  `yaml:"extra_edge_color"`
	Background      string  `yaml:"background"`
}

// DefaultStyle returns the stock palette: gold start, green end, blue
// mid nodes and path edges, blue-gray extras.
func DefaultStyle() Style {
	return Style{
		StartColor:      "#FFD54F",
		EndColor:        "#66BB6A",
		NodeColor:       "#90CAF9",
		NodeBorderColor: "#37474F",
		NodeBorderWidth: 1.2,
		EdgeColor:       "#1E88E5",
		ExtraEdgeColor:  "#B0BEC5",
		Background:      "#FFFFFF",
	}
}

// LoadStyle reads style overrides from a YAML file. Fields missing from
// the file keep their defaults; an empty path returns the defaults. On
// error the defaults are returned alongside it so the caller can warn and
// keep rendering.
func LoadStyle(path string) (Style, error) {
	style := DefaultStyle()
	if path == "" {
		return style, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultStyle(), fmt.Errorf("error reading style file: %w", err)
	}
	if err := yaml.Unmarshal(data, &style); err != nil {
		return DefaultStyle(), fmt.Errorf("error parsing style YAML: %w", err)
	}
	style.fill()
	return style, nil
}

// fill restores defaults for fields blanked out by the file.
func (s *Style) fill() {
	def := DefaultStyle()
	if s.StartColor == "" {
		s.StartColor = def.StartColor
	}
	if s.EndColor == "" {
		s.EndColor = def.EndColor
	}
	if s.NodeColor == "" {
		s.NodeColor = def.NodeColor
	}
	if s.NodeBorderColor == "" {
		s.NodeBorderColor = def.NodeBorderColor
	}
	if s.NodeBorderWidth <= 0 {
		s.NodeBorderWidth = def.NodeBorderWidth
	}
	if s.EdgeColor == "" {
		s.EdgeColor = def.EdgeColor
	}
	if s.ExtraEdgeColor == "" {
		s.ExtraEdgeColor = def.ExtraEdgeColor
	}
	if s.Background == "" {
		s.Background = def.Background
	}
}
