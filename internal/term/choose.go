package term

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mkljngd/RoadNetOptimizer/internal/route"
)

// Chooser reads a route selection from the operator.
type Chooser struct {
	in  *bufio.Reader
	out io.Writer
}

// NewChooser creates a chooser reading selections from in and writing the
// list and prompts to out.
func NewChooser(in io.Reader, out io.Writer) *Chooser {
	return &Chooser{in: bufio.NewReader(in), out: out}
}

// Choose presents the numbered route list and loops until the operator
// picks a valid 1-based index or cancels. It returns the chosen raw line,
// or "" on cancellation ('q', 'quit', 'exit', or closed input) and when
// the list is empty. total is the full route count in the source, shown in
// the header when the list is capped.
func (c *Chooser) Choose(lines []string, total int, sourceDesc string) string {
	if len(lines) == 0 {
		return ""
	}

	PrintRoutes(c.out, lines, total, sourceDesc)

	for {
		fmt.Fprintf(c.out, "\nEnter the index (1-%d) of the route to visualize (or 'q' to quit): ", len(lines))

		raw, err := c.in.ReadString('\n')
		if raw == "" && err != nil {
			fmt.Fprintln(c.out)
			return ""
		}

		choice := strings.ToLower(strings.TrimSpace(raw))
		switch choice {
		case "q", "quit", "exit":
			return ""
		}

		if !allDigits(choice) {
			fmt.Fprintln(c.out, "Please enter a valid number.")
		} else if idx, convErr := strconv.Atoi(choice); convErr != nil || idx < 1 || idx > len(lines) {
			fmt.Fprintf(c.out, "Please enter a number between 1 and %d.\n", len(lines))
		} else {
			return lines[idx-1]
		}

		// Input is exhausted, nothing more to re-prompt for.
		if err != nil {
			return ""
		}
	}
}

// PrintRoutes writes the numbered route list with endpoint-only display
// lines. total is the full count in the source; a notice is added when the
// list shown is capped below it.
func PrintRoutes(w io.Writer, lines []string, total int, sourceDesc string) {
	fmt.Fprintf(w, "\nFound %d route(s) in %s.\n", total, sourceDesc)
	if total > len(lines) {
		fmt.Fprintf(w, "Showing first %d for selection (set MAX_DISPLAY_ROUTES to change).\n", len(lines))
	}
	for i, line := range lines {
		fmt.Fprintf(w, "%3d. %s\n", i+1, route.Display(line))
	}
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
