package components

import (
	"strings"
)

// DefaultDividerWidth is used when neither the divider nor the context sets
// a width.
const DefaultDividerWidth = 40

// Divider renders a horizontal rule.
type Divider struct {
	BaseComponent
	char  string
	width int
}

// NewDivider creates a divider drawn with "─". A zero width follows the
// context's MaxWidth.
func NewDivider() *Divider {
	return &Divider{
		BaseComponent: NewBaseComponent(),
		char:          "─",
	}
}

// View renders the divider.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the divider with the given theme context.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	width := d.width
	if width <= 0 {
		width = ctx.MaxWidth
	}
	if width <= 0 {
		width = DefaultDividerWidth
	}
	return d.ComputeStyle(ctx.Theme).Render(strings.Repeat(d.char, width))
}

// WithChar sets the character used for the divider.
func (d *Divider) WithChar(char string) *Divider {
	if char != "" {
		d.char = char
	}
	return d
}

// WithWidth sets an explicit width.
func (d *Divider) WithWidth(width int) *Divider {
	d.width = width
	return d
}

// WithAppliers applies theme-based style modifiers.
func (d *Divider) WithAppliers(appliers ...StyleFunc) *Divider {
	d.SetAppliers(appliers...)
	return d
}
