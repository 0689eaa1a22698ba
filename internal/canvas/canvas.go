// Package canvas composites rendered overlay boxes over a terminal frame.
// All widths are display cells; ANSI styling in either layer is preserved.
package canvas

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Canvas is a fixed size grid of styled lines.
type Canvas struct {
	width  int
	height int
	lines  []string
}

// New returns a blank canvas.
func New(width, height int) *Canvas {
	return FromString("", width, height)
}

// FromString wraps an existing frame, padding or cutting it to size.
func FromString(frame string, width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	src := strings.Split(frame, "\n")
	lines := make([]string, height)
	for i := range lines {
		var line string
		if i < len(src) {
			line = src[i]
		}
		lines[i] = fit(line, width)
	}
	return &Canvas{width: width, height: height, lines: lines}
}

// Size returns the canvas dimensions in cells.
func (c *Canvas) Size() (width, height int) { return c.width, c.height }

// Draw paints block with its top-left corner at (x, y). Parts outside the
// canvas are clipped.
func (c *Canvas) Draw(x, y int, block string) {
	if block == "" {
		return
	}
	for i, src := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 || row >= c.height {
			continue
		}
		c.lines[row] = overlay(c.lines[row], src, x, c.width)
	}
}

// String joins the canvas lines.
func (c *Canvas) String() string {
	return strings.Join(c.lines, "\n")
}

func overlay(base, src string, x, width int) string {
	w := ansi.StringWidth(src)
	if x < 0 {
		src = ansi.TruncateLeft(src, -x, "")
		w += x
		x = 0
	}
	if x >= width || w <= 0 {
		return base
	}
	if x+w > width {
		src = ansi.Truncate(src, width-x, "")
		w = width - x
	}

	left := ansi.Truncate(base, x, "")
	if lw := ansi.StringWidth(left); lw < x {
		left += strings.Repeat(" ", x-lw)
	}
	right := ansi.TruncateLeft(base, x+w, "")
	if strings.Contains(left, "\x1b") {
		left += ansi.ResetStyle
	}
	return fit(left+src+right, width)
}

func fit(line string, width int) string {
	w := ansi.StringWidth(line)
	switch {
	case w > width:
		return ansi.Truncate(line, width, "")
	case w < width:
		return line + strings.Repeat(" ", width-w)
	default:
		return line
	}
}
