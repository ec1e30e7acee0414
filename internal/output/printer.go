// Package output provides the writer abstraction used to echo captured
// command output, with optional colorization.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// StreamRole identifies which captured stream a line came from.
type StreamRole int

const (
	// StdoutRole is the captured standard output of an invoked command
	StdoutRole StreamRole = iota
	// StderrRole is the captured standard error of an invoked command
	StderrRole
)

// ColorMode controls whether echoed output is colorized.
type ColorMode int

const (
	// ColorAuto colorizes only when stdout is a terminal
	ColorAuto ColorMode = iota
	// ColorAlways colorizes unconditionally
	ColorAlways
	// ColorNever disables colorization
	ColorNever
)

// ParseColorMode parses a --color flag value. Unknown values fall back to auto.
func ParseColorMode(s string) ColorMode {
	switch strings.ToLower(s) {
	case "always":
		return ColorAlways
	case "never":
		return ColorNever
	}
	return ColorAuto
}

// Printer writes echoed command output and harness notices to explicit
// writers.
type Printer struct {
	stdout io.Writer
	stderr io.Writer
	color  bool
	quiet  bool
}

// NewPrinter creates a Printer writing to os.Stdout/os.Stderr.
func NewPrinter(mode ColorMode, quiet bool) *Printer {
	return NewPrinterTo(os.Stdout, os.Stderr, mode, quiet)
}

// NewPrinterTo creates a Printer writing to the given writers.
func NewPrinterTo(stdout, stderr io.Writer, mode ColorMode, quiet bool) *Printer {
	color := false
	switch mode {
	case ColorAlways:
		color = true
	case ColorAuto:
		if f, ok := stdout.(*os.File); ok {
			color = isatty.IsTerminal(f.Fd()) && termenv.ColorProfile() != termenv.Ascii
		}
	case ColorNever:
	}
	return &Printer{stdout: stdout, stderr: stderr, color: color, quiet: quiet}
}

// Quiet reports whether echoing is suppressed.
func (p *Printer) Quiet() bool {
	return p.quiet
}

// Echo prints captured output for the given stream role.
func (p *Printer) Echo(role StreamRole, text string) {
	if p.quiet || text == "" {
		return
	}
	w := p.stdout
	if role == StderrRole {
		w = p.stderr
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	fmt.Fprint(w, p.paint(role, text))
}

// Notice prints a harness-level message (not command output) to stdout.
func (p *Printer) Notice(format string, args ...any) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.stdout, format+"\n", args...)
}

func (p *Printer) paint(role StreamRole, text string) string {
	if !p.color {
		return text
	}
	color := stdoutColor
	if role == StderrRole {
		color = stderrColor
	}
	var b strings.Builder
	for _, line := range strings.SplitAfter(text, "\n") {
		if line == "" {
			continue
		}
		body := strings.TrimSuffix(line, "\n")
		b.WriteString(color.Render(body))
		if strings.HasSuffix(line, "\n") {
			b.WriteString("\n")
		}
	}
	return b.String()
}
