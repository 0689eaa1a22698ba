package popup

import (
	"github.com/alexisbeaulieu97/overlay/internal/geometry"
	"github.com/alexisbeaulieu97/overlay/internal/placement"
	"github.com/alexisbeaulieu97/overlay/internal/ui/components"
)

// TooltipOptions configures a Tooltip. Content and Strategy in the embedded
// Options are ignored; the tooltip renders Text and places itself with
// Placement and Offset, Bottom by default.
type TooltipOptions struct {
	Options
	Text string
	// HideArrow suppresses the arrow.
	HideArrow bool
	Context   components.RenderContext
	// Bounded, when set, flips and shifts the tooltip to stay inside the
	// viewport.
	Bounded bool
}

// Tooltip is a Popover showing themed text.
type Tooltip struct {
	*Popover
	text string
	box  *components.TooltipBox
	ctx  components.RenderContext
}

// NewTooltip builds a tooltip.
func NewTooltip(opts TooltipOptions) (*Tooltip, error) {
	ctx := opts.Context
	if ctx.Theme.Variants == nil {
		ctx = ctx.WithTheme(components.DefaultTheme())
	}
	t := &Tooltip{text: opts.Text, box: components.NewTooltipBox(opts.Text), ctx: ctx}

	var strategy placement.Strategy = placement.New(opts.Placement, opts.Offset)
	if opts.Bounded && opts.Viewport != nil {
		viewport := opts.Viewport
		strategy = placement.WithinBounds(opts.Placement, opts.Offset, func() geometry.Rect {
			return geometry.FromOrigin(geometry.Point{}, viewport())
		})
	}
	if opts.HideArrow {
		strategy = placement.WithoutArrow(strategy)
	}
	opts.Strategy = strategy
	opts.Content = t.render
	if opts.Name == "" {
		opts.Name = "tooltip"
	}

	popover, err := NewPopover(opts.Options)
	if err != nil {
		return nil, err
	}
	t.Popover = popover
	return t, nil
}

func (t *Tooltip) render(arrow placement.Arrow) string {
	return t.box.WithArrow(arrow).ViewWithContext(t.ctx)
}

// Text returns the tooltip text.
func (t *Tooltip) Text() string { return t.text }

// SetText replaces the text and repositions, since the size may change.
func (t *Tooltip) SetText(text string) {
	t.abortIfUnmounted("SetText")
	t.text = text
	t.box.SetText(text)
	t.Reposition()
}

// SetContext replaces the theme and width budget.
func (t *Tooltip) SetContext(ctx components.RenderContext) {
	t.abortIfUnmounted("SetContext")
	t.ctx = ctx
	t.Reposition()
}
