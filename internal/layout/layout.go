package layout

import "strings"

// Mode selects a coordinate policy.
type Mode string

const (
	ModeSnake  Mode = "snake"
	ModeSingle Mode = "single"
)

// MinCols is the narrowest snake grid.
const MinCols = 2

// Spacing between neighboring nodes. Rows sit a bit further apart than
// columns so labels between rows stay readable.
const (
	spacingX = 1.0
	spacingY = 1.2
)

// Position is a 2-D node coordinate.
type Position struct {
	X float64
	Y float64
}

// ParseMode interprets a configured layout name. Anything other than
// "single" lays out as a snake.
func ParseMode(s string) Mode {
	if strings.EqualFold(strings.TrimSpace(s), string(ModeSingle)) {
		return ModeSingle
	}
	return ModeSnake
}

// Compute positions every route node under the chosen mode. Positions are
// keyed by node identifier, so a node visited twice keeps its last
// position.
func Compute(nodes []string, mode Mode, cols int) map[string]Position {
	if mode == ModeSingle {
		return SingleRow(nodes)
	}
	return Snake(nodes, cols)
}

// SingleRow places node i at (i, 0).
func SingleRow(nodes []string) map[string]Position {
	pos := make(map[string]Position, len(nodes))
	for i, n := range nodes {
		pos[n] = Position{X: float64(i) * spacingX, Y: 0}
	}
	return pos
}

// Snake wraps the sequence into rows of cols nodes. Even rows run left to
// right and odd rows are mirrored, so consecutive nodes stay adjacent and
// the drawn path never jumps across the figure. Rows are placed at
// decreasing y.
func Snake(nodes []string, cols int) map[string]Position {
	if cols < MinCols {
		cols = MinCols
	}
	pos := make(map[string]Position, len(nodes))
	for i, n := range nodes {
		row := i / cols
		col := i % cols
		x := float64(col) * spacingX
		if row%2 == 1 {
			x = float64(cols-1-col) * spacingX
		}
		pos[n] = Position{X: x, Y: -float64(row) * spacingY}
	}
	return pos
}

// AutoStep picks a label step so long paths show roughly twenty labels.
// Paths of 25 nodes or fewer label every node.
func AutoStep(n int) int {
	if n <= 25 {
		return 1
	}
	step := n / 20
	if step < 1 {
		step = 1
	}
	return step
}

// LabelAt reports whether node i of n carries a text label under the given
// step. The first and last node are always labeled.
func LabelAt(i, n, step int) bool {
	if step < 1 {
		step = 1
	}
	return i == 0 || i == n-1 || i%step == 0
}
