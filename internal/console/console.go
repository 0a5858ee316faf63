// Package console provides colored status printing for the build CLI.
// Coloring is controlled per Printer instead of by a shared global, so
// concurrent printers cannot interfere with each other.
package console

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// ErrUnknownColor is returned by Colorize for a color name outside the
// static palette.
var ErrUnknownColor = errors.New("unknown color name")

// Static name → attribute palettes. Lookup by key replaces any dynamic
// evaluation of color names.
var (
	colorNames = map[string]color.Attribute{
		"black":   color.FgBlack,
		"red":     color.FgRed,
		"green":   color.FgGreen,
		"yellow":  color.FgYellow,
		"blue":    color.FgBlue,
		"magenta": color.FgMagenta,
		"cyan":    color.FgCyan,
		"white":   color.FgWhite,
	}
	lightColorNames = map[string]color.Attribute{
		"black":   color.FgHiBlack,
		"red":     color.FgHiRed,
		"green":   color.FgHiGreen,
		"yellow":  color.FgHiYellow,
		"blue":    color.FgHiBlue,
		"magenta": color.FgHiMagenta,
		"cyan":    color.FgHiCyan,
		"white":   color.FgHiWhite,
	}
)

// Printer writes colored status lines to an output writer.
// The zero value is not usable; use New.
type Printer struct {
	out     io.Writer
	noColor bool
}

// New creates a Printer. Passing noColor disables ANSI escapes for
// this printer only.
func New(out io.Writer, noColor bool) *Printer {
	if out == nil {
		out = os.Stdout
	}
	return &Printer{out: out, noColor: noColor}
}

// Info prints an informational line (light cyan).
func (p *Printer) Info(format string, args ...any) {
	p.println(color.FgHiCyan, format, args...)
}

// Action prints a line announcing a build action (light green).
func (p *Printer) Action(format string, args ...any) {
	p.println(color.FgHiGreen, format, args...)
}

// Warning prints a warning line (light yellow).
func (p *Printer) Warning(format string, args ...any) {
	p.println(color.FgHiYellow, format, args...)
}

// Error prints an error line (light red).
func (p *Printer) Error(format string, args ...any) {
	p.println(color.FgHiRed, format, args...)
}

// Success prints a completion line (green).
func (p *Printer) Success(format string, args ...any) {
	p.println(color.FgGreen, format, args...)
}

// Colorize wraps text in the escape codes for the named color. With
// light set, the high-intensity variant is used. The name is looked up
// in the static palette; unknown names return ErrUnknownColor.
func (p *Printer) Colorize(text, name string, light bool) (string, error) {
	palette := colorNames
	if light {
		palette = lightColorNames
	}

	attr, ok := palette[strings.ToLower(name)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownColor, name)
	}

	return p.sprint(attr, text), nil
}

func (p *Printer) println(attr color.Attribute, format string, args ...any) {
	fmt.Fprintln(p.out, p.sprint(attr, fmt.Sprintf(format, args...)))
}

func (p *Printer) sprint(attr color.Attribute, text string) string {
	c := color.New(attr)
	if p.noColor {
		c.DisableColor()
	} else {
		c.EnableColor()
	}
	return c.Sprint(text)
}
