package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Button is a focusable label. Overlays anchor to it.
type Button struct {
	BaseComponent
	label   string
	variant ButtonVariant
	focused bool
	hovered bool
}

// NewButton creates a primary button with the given label.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
		variant:       ButtonVariantPrimary,
	}
}

// View renders the button.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button with the given theme context.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	return b.computeStyle(ctx.Theme).Render(b.label)
}

func (b *Button) computeStyle(theme Theme) lipgloss.Style {
	style := b.ComputeStyle(theme)
	if strategy := theme.Variants.Get(b.variant); strategy != nil {
		style = strategy.Apply(style, theme)
	}
	if b.hovered {
		style = style.Underline(true)
	}
	if b.focused {
		style = style.Bold(true).Reverse(true)
	}
	return style
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.variant = variant
	return b
}

// WithFocused marks the button as the focus owner.
func (b *Button) WithFocused(focused bool) *Button {
	b.focused = focused
	return b
}

// WithHovered marks the button as under the pointer.
func (b *Button) WithHovered(hovered bool) *Button {
	b.hovered = hovered
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// Width returns the rendered width in cells.
func (b *Button) Width(ctx RenderContext) int {
	return lipgloss.Width(b.ViewWithContext(ctx))
}
