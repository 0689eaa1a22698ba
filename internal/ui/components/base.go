package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Renderable is anything that renders to a terminal string.
type Renderable interface {
	View() string
}

// ContextualRenderable is a component that can receive a render context.
type ContextualRenderable interface {
	Renderable
	ViewWithContext(ctx RenderContext) string
}

// StyleStrategy defines how styling should be applied to a component.
type StyleStrategy interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc applies a theme-aware transformation to a lipgloss.Style.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// CompositeStrategy applies multiple StyleFunc in sequence.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// Apply applies all style functions in order.
func (c CompositeStrategy) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range c.funcs {
		if fn != nil {
			base = fn(base, theme)
		}
	}
	return base
}

// NewCompositeStrategy creates a strategy from multiple style functions.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

// BaseComponent provides common styling behaviour. Embed it in components.
type BaseComponent struct {
	style    lipgloss.Style
	strategy StyleStrategy
}

// NewBaseComponent creates a base component with an empty strategy.
func NewBaseComponent() BaseComponent {
	return BaseComponent{
		style:    lipgloss.NewStyle(),
		strategy: CompositeStrategy{},
	}
}

// ComputeStyle returns the component style resolved against theme.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	if b.strategy == nil {
		return b.style
	}
	return b.strategy.Apply(b.style, theme)
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// SetStrategy replaces the style strategy.
func (b *BaseComponent) SetStrategy(strategy StyleStrategy) {
	b.strategy = strategy
}

// SetAppliers sets the style strategy from style functions.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.strategy = NewCompositeStrategy(appliers...)
}

// AddAppliers appends appliers after the current strategy.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	if existing, ok := b.strategy.(CompositeStrategy); ok {
		funcs := make([]StyleFunc, len(existing.funcs), len(existing.funcs)+len(appliers))
		copy(funcs, existing.funcs)
		b.strategy = CompositeStrategy{funcs: append(funcs, appliers...)}
		return
	}
	current := b.strategy
	b.strategy = NewCompositeStrategy(func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if current != nil {
			base = current.Apply(base, theme)
		}
		return CompositeStrategy{funcs: appliers}.Apply(base, theme)
	})
}

// RenderContext carries the theme and width budget into rendering.
type RenderContext struct {
	Theme Theme
	// MaxWidth caps content width in cells; zero means unlimited.
	MaxWidth int
}

// DefaultContext returns a render context with the default theme.
func DefaultContext() RenderContext {
	return RenderContext{Theme: DefaultTheme()}
}

// WithTheme returns a copy of the context using theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithMaxWidth returns a copy of the context with a width cap.
func (r RenderContext) WithMaxWidth(width int) RenderContext {
	r.MaxWidth = width
	return r
}
