package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/overlay/internal/breakpoint"
	"github.com/alexisbeaulieu97/overlay/internal/controller"
)

// Badge is a short status label for an overlay phase or the active
// breakpoint.
type Badge struct {
	BaseComponent
	text    string
	variant BadgeVariant
}

// BadgeVariant colours a badge by what it reports.
type BadgeVariant int

const (
	// BadgeClosed marks an overlay that is not showing.
	BadgeClosed BadgeVariant = iota
	// BadgePending marks an overlay waiting on a show or hide delay.
	BadgePending
	// BadgeOpen marks a showing overlay.
	BadgeOpen
	// BadgeViewport marks the viewport width readout.
	BadgeViewport
)

// VariantForState maps a controller phase to its badge variant.
func VariantForState(s controller.State) BadgeVariant {
	switch s {
	case controller.Open:
		return BadgeOpen
	case controller.PendingOpen, controller.PendingClose:
		return BadgePending
	default:
		return BadgeClosed
	}
}

// NewBadge creates a BadgeClosed badge with the given text.
func NewBadge(text string) *Badge {
	return &Badge{
		BaseComponent: NewBaseComponent(),
		text:          text,
		variant:       BadgeClosed,
	}
}

// NewStateBadge labels an overlay with its phase, e.g. "save: pending-open".
func NewStateBadge(name string, state controller.State) *Badge {
	return NewBadge(fmt.Sprintf("%s: %s", name, state)).WithVariant(VariantForState(state))
}

// NewViewportBadge reports a viewport width and the breakpoint it falls in.
func NewViewportBadge(width int) *Badge {
	return NewBadge(fmt.Sprintf("%dcols %s", width, breakpoint.Active(width))).WithVariant(BadgeViewport)
}

// View renders the badge.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the badge with the given theme context.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	return b.computeStyle(ctx.Theme).Render(b.text)
}

func (b *Badge) computeStyle(theme Theme) lipgloss.Style {
	style := b.ComputeStyle(theme)
	if strategy := theme.Variants.Get(b.variant); strategy != nil {
		style = strategy.Apply(style, theme)
	}
	return style
}

// WithVariant sets the badge variant.
func (b *Badge) WithVariant(variant BadgeVariant) *Badge {
	b.variant = variant
	return b
}

// Variant returns the badge variant.
func (b *Badge) Variant() BadgeVariant { return b.variant }

// Text returns the badge text.
func (b *Badge) Text() string {
	return b.text
}

// Append adds a space and suffix to the text.
func (b *Badge) Append(suffix string) *Badge {
	if suffix != "" {
		b.text += " " + suffix
	}
	return b
}
