// Package printer writes human-facing CLI output. Reports go to the output
// writer uncoloured so they can be piped; diagnostics are coloured.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Printer writes reports to out and errors to errOut
type Printer struct {
	out    io.Writer
	errOut io.Writer

	green  *color.Color
	yellow *color.Color
	red    *color.Color
	cyan   *color.Color
}

// New creates a printer. With enableColor false every message is plain.
func New(out, errOut io.Writer, enableColor bool) *Printer {
	p := &Printer{
		out:    out,
		errOut: errOut,
		green:  color.New(color.FgGreen),
		yellow: color.New(color.FgYellow),
		red:    color.New(color.FgRed, color.Bold),
		cyan:   color.New(color.FgCyan),
	}

	for _, c := range []*color.Color{p.green, p.yellow, p.red, p.cyan} {
		if enableColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Report prints status lines exactly as given, one per line
func (p *Printer) Report(lines []string) {
	for _, line := range lines {
		fmt.Fprintln(p.out, line)
	}
}

// Success prints a success message in green with a checkmark prefix
func (p *Printer) Success(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "✓") {
		msg = "✓ " + msg
	}
	p.green.Fprintln(p.out, msg)
}

// Failure prints a failed check in red with a cross prefix
func (p *Printer) Failure(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "✗") {
		msg = "✗ " + msg
	}
	p.red.Fprintln(p.out, msg)
}

// Warning prints a warning message in yellow to the error writer
func (p *Printer) Warning(format string, a ...any) {
	p.yellow.Fprintf(p.errOut, "warning: %s\n", fmt.Sprintf(format, a...))
}

// Info prints a plain message
func (p *Printer) Info(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}

// Error prints a title in red followed by an explanation and suggestions to
// the error writer
func (p *Printer) Error(title string, explanation string, suggestions []string) {
	p.red.Fprintln(p.errOut, title)

	if explanation != "" {
		fmt.Fprintf(p.errOut, "\n%s\n", explanation)
	}

	if len(suggestions) > 0 {
		fmt.Fprintln(p.errOut)
		if len(suggestions) == 1 {
			fmt.Fprintln(p.errOut, suggestions[0])
		} else {
			fmt.Fprintln(p.errOut, "Either:")
			for i, suggestion := range suggestions {
				fmt.Fprintf(p.errOut, "  %d. %s\n", i+1, suggestion)
			}
		}
	}
}
