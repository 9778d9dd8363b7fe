// Package term provides the styled console output and the interactive
// route selection prompt.
package term

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Semantic colors for the console tags.
var (
	ColorError = lipgloss.Color("#E74C3C")
	ColorWarn  = lipgloss.Color("#F4D03F")
	ColorInfo  = lipgloss.Color("#90CAF9")
	ColorSaved = lipgloss.Color("#66BB6A")
)

// Styles provides the pre-configured tag styles.
var Styles = struct {
	Error lipgloss.Style
	Warn  lipgloss.Style
	Info  lipgloss.Style
	Saved lipgloss.Style
}{
	Error: lipgloss.NewStyle().Bold(true).Foreground(ColorError),
	Warn:  lipgloss.NewStyle().Bold(true).Foreground(ColorWarn),
	Info:  lipgloss.NewStyle().Foreground(ColorInfo),
	Saved: lipgloss.NewStyle().Bold(true).Foreground(ColorSaved),
}

// Printer writes tagged, operator-facing console messages.
type Printer struct {
	w io.Writer
}

// NewPrinter creates a printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Errorf prints an [Error]-tagged message.
func (p *Printer) Errorf(format string, args ...any) {
	p.tagged(Styles.Error.Render("[Error]"), format, args...)
}

// Warnf prints a [Warn]-tagged message.
func (p *Printer) Warnf(format string, args ...any) {
	p.tagged(Styles.Warn.Render("[Warn]"), format, args...)
}

// Infof prints an [Info]-tagged message.
func (p *Printer) Infof(format string, args ...any) {
	p.tagged(Styles.Info.Render("[Info]"), format, args...)
}

// Savedf prints a [Saved]-tagged message.
func (p *Printer) Savedf(format string, args ...any) {
	p.tagged(Styles.Saved.Render("[Saved]"), format, args...)
}

// Printf prints an untagged message.
func (p *Printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) tagged(tag, format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", tag, fmt.Sprintf(format, args...))
}
