package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/overlay/internal/placement"
)

// TooltipBox renders tooltip text inside the themed tooltip surface, with an
// optional arrow on the edge facing the anchor.
type TooltipBox struct {
	BaseComponent
	lines []string
	arrow placement.Arrow
}

// NewTooltipBox creates a box for text. Lines split on "\n"; empty lines are
// kept.
func NewTooltipBox(text string) *TooltipBox {
	box := &TooltipBox{BaseComponent: NewBaseComponent()}
	box.SetAppliers(TooltipSurface())
	return box.SetText(text)
}

// SetText replaces the tooltip text.
func (t *TooltipBox) SetText(text string) *TooltipBox {
	t.lines = SplitLines(text)
	return t
}

// Lines returns the text lines.
func (t *TooltipBox) Lines() []string { return append([]string(nil), t.lines...) }

// WithArrow sets the arrow variant. placement.NoArrow hides it.
func (t *TooltipBox) WithArrow(arrow placement.Arrow) *TooltipBox {
	t.arrow = arrow
	return t
}

// WithAppliers appends style modifiers after the tooltip surface.
func (t *TooltipBox) WithAppliers(appliers ...StyleFunc) *TooltipBox {
	t.AddAppliers(appliers...)
	return t
}

// View renders with the default theme.
func (t *TooltipBox) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the box and its arrow.
func (t *TooltipBox) ViewWithContext(ctx RenderContext) string {
	style := t.ComputeStyle(ctx.Theme)
	if ctx.MaxWidth > 0 {
		style = style.MaxWidth(ctx.MaxWidth)
	}
	rows := make([]string, len(t.lines))
	for i, line := range t.lines {
		if line == "" {
			line = " "
		}
		rows[i] = line
	}
	box := style.Render(strings.Join(rows, "\n"))
	arrowStyle := lipgloss.NewStyle().Foreground(ctx.Theme.Tooltip.Border)
	return AttachArrow(box, t.arrow, arrowStyle)
}

// Size measures the rendered box, arrow included.
func (t *TooltipBox) Size(ctx RenderContext) (width, height int) {
	return lipgloss.Size(t.ViewWithContext(ctx))
}

// SplitLines splits text on newlines, preserving empty lines.
func SplitLines(text string) []string {
	return strings.Split(text, "\n")
}
