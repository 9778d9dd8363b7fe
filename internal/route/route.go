package route

import (
	"fmt"
	"strings"
)

// MinNodes is the smallest node count a route can have and still be drawn.
const MinNodes = 2

// Route is an ordered node sequence loaded from a store, together with the
// raw line it was parsed from.
type Route struct {
	Nodes []string
	Raw   string
}

// FromLine parses a stored route line into a Route.
func FromLine(line string) Route {
	return Route{
		Nodes: Parse(line),
		Raw:   strings.TrimSpace(line),
	}
}

// Valid reports whether the route has enough nodes to visualize.
func (r Route) Valid() bool {
	return len(r.Nodes) >= MinNodes
}

// Len returns the number of nodes on the route.
func (r Route) Len() int {
	return len(r.Nodes)
}

// Start returns the first node, or "" for an empty route.
func (r Route) Start() string {
	if len(r.Nodes) == 0 {
		return ""
	}
	return r.Nodes[0]
}

// End returns the last node, or "" for an empty route.
func (r Route) End() string {
	if len(r.Nodes) == 0 {
		return ""
	}
	return r.Nodes[len(r.Nodes)-1]
}

// Parse extracts the ordered node sequence from a route line of the form
// "Path: A -> B -> C". The "Path:" prefix is optional and case-insensitive,
// whitespace around tokens and arrows is ignored, and empty tokens are
// dropped. Every data source is parsed with this one policy.
func Parse(line string) []string {
	s := strings.TrimSpace(line)
	if len(s) >= 5 && strings.EqualFold(s[:5], "path:") {
		s = strings.TrimSpace(s[5:])
	}
	if s == "" {
		return nil
	}

	parts := strings.Split(s, "->")
	nodes := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			nodes = append(nodes, p)
		}
	}
	return nodes
}

// FormatLine renders nodes in the canonical stored form,
// "Path: A -> B -> C".
func FormatLine(nodes []string) string {
	return "Path: " + strings.Join(nodes, " -> ")
}

// Display renders a stored line for the selection list, showing only the
// endpoints: "Path: 17 ---> 1025". Lines that parse to nothing are shown
// as-is so the operator can spot bad data.
func Display(line string) string {
	nodes := Parse(line)
	if len(nodes) == 0 {
		return strings.TrimSpace(line)
	}
	return fmt.Sprintf("Path: %s ---> %s", nodes[0], nodes[len(nodes)-1])
}
