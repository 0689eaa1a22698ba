package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/overlay/internal/placement"
)

// ArrowGlyph returns the glyph pointing in d, or "" for no arrow.
func ArrowGlyph(d placement.Direction) string {
	switch d {
	case placement.DirectionUp:
		return "▲"
	case placement.DirectionDown:
		return "▼"
	case placement.DirectionLeft:
		return "◀"
	case placement.DirectionRight:
		return "▶"
	default:
		return ""
	}
}

// arrowIndex positions the arrow along an edge of span cells. Leading and
// trailing arrows sit just inside the box corners.
func arrowIndex(align placement.Alignment, span int) int {
	if span <= 2 {
		return 0
	}
	switch align {
	case placement.AlignLeading:
		return 1
	case placement.AlignTrailing:
		return span - 2
	default:
		return span / 2
	}
}

// AttachArrow draws the arrow on box's edge. Top and bottom arrows add a
// row, left and right arrows add a column.
func AttachArrow(box string, arrow placement.Arrow, style lipgloss.Style) string {
	glyph := ArrowGlyph(arrow.Direction)
	if !arrow.Present() || glyph == "" || box == "" {
		return box
	}
	width, height := lipgloss.Size(box)
	glyph = style.Render(glyph)

	switch arrow.Edge {
	case placement.SideTop, placement.SideBottom:
		i := arrowIndex(arrow.Align, width)
		row := strings.Repeat(" ", i) + glyph + strings.Repeat(" ", width-i-1)
		if arrow.Edge == placement.SideTop {
			return row + "\n" + box
		}
		return box + "\n" + row
	default:
		i := arrowIndex(arrow.Align, height)
		column := make([]string, height)
		for r := range column {
			column[r] = " "
		}
		column[i] = glyph
		gutter := strings.Join(column, "\n")
		if arrow.Edge == placement.SideLeft {
			return lipgloss.JoinHorizontal(lipgloss.Top, gutter, box)
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, box, gutter)
	}
}
