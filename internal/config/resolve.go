package config

import (
	"time"

	"github.com/alexisbeaulieu97/overlay/internal/breakpoint"
	"github.com/alexisbeaulieu97/overlay/internal/keepopen"
	"github.com/alexisbeaulieu97/overlay/internal/placement"
	"github.com/alexisbeaulieu97/overlay/internal/trigger"
	"github.com/alexisbeaulieu97/overlay/internal/ui/components"
)

// Built-in behaviour used when neither an anchor nor the defaults set a value.
const (
	DefaultShowDelay = 300 * time.Millisecond
	DefaultHideDelay = 100 * time.Millisecond
)

// Resolved is a fully populated Behavior.
type Resolved struct {
	Placement placement.Placement
	Offset    float64
	ShowDelay time.Duration
	HideDelay time.Duration
	Trigger   trigger.Kind
	KeepOpen  keepopen.Kind
	Arrow     bool
	Bounded   bool
	Display   breakpoint.Rule
}

// Resolve merges b over the document defaults and the built-in values.
// The config must have passed validation.
func (c *Config) Resolve(b Behavior) Resolved {
	merged := b.over(c.Defaults)

	r := Resolved{
		Placement: placement.Bottom,
		ShowDelay: DefaultShowDelay,
		HideDelay: DefaultHideDelay,
		Trigger:   trigger.KindHoverOrFocus,
		KeepOpen:  keepopen.KindHover,
		Arrow:     true,
		Bounded:   true,
	}
	if merged.Placement != nil {
		if p, err := placement.Parse(*merged.Placement); err == nil {
			r.Placement = p
		}
	}
	if merged.Offset != nil {
		r.Offset = *merged.Offset
	}
	if merged.ShowDelay != nil {
		r.ShowDelay = *merged.ShowDelay
	}
	if merged.HideDelay != nil {
		r.HideDelay = *merged.HideDelay
	}
	if merged.Trigger != nil {
		if k, err := trigger.ParseKind(*merged.Trigger); err == nil {
			r.Trigger = k
		}
	}
	if merged.KeepOpen != nil {
		if k, err := keepopen.ParseKind(*merged.KeepOpen); err == nil {
			r.KeepOpen = k
		}
	}
	if merged.Arrow != nil {
		r.Arrow = *merged.Arrow
	}
	if merged.Bounded != nil {
		r.Bounded = *merged.Bounded
	}
	switch {
	case merged.DisplayFrom != nil:
		if bp, err := breakpoint.Parse(*merged.DisplayFrom); err == nil {
			r.Display = breakpoint.DisplayIfAtLeast(bp)
		}
	case merged.DisplayUntil != nil:
		if bp, err := breakpoint.Parse(*merged.DisplayUntil); err == nil {
			r.Display = breakpoint.DisplayUntil(bp)
		}
	}
	return r
}

// over returns b with unset fields taken from base. An anchor that sets
// either display bound replaces both inherited bounds.
func (b Behavior) over(base Behavior) Behavior {
	pick := func(v, fallback *string) *string {
		if v != nil {
			return v
		}
		return fallback
	}
	out := b
	out.Placement = pick(b.Placement, base.Placement)
	out.Trigger = pick(b.Trigger, base.Trigger)
	out.KeepOpen = pick(b.KeepOpen, base.KeepOpen)
	if out.Offset == nil {
		out.Offset = base.Offset
	}
	if out.ShowDelay == nil {
		out.ShowDelay = base.ShowDelay
	}
	if out.HideDelay == nil {
		out.HideDelay = base.HideDelay
	}
	if out.Arrow == nil {
		out.Arrow = base.Arrow
	}
	if out.Bounded == nil {
		out.Bounded = base.Bounded
	}
	if b.DisplayFrom == nil && b.DisplayUntil == nil {
		out.DisplayFrom, out.DisplayUntil = base.DisplayFrom, base.DisplayUntil
	}
	return out
}

// BuildTheme converts the theme section into a render theme.
func (t Theme) BuildTheme() (components.Theme, error) {
	theme := components.DefaultTheme()
	if t.Name == "dark" {
		theme = components.DarkTheme()
	}

	theme, err := theme.WithTooltipColours(t.Tooltip.Background, t.Tooltip.Foreground, t.Tooltip.Border)
	if err != nil {
		return theme, err
	}

	vars := theme.Tooltip
	if border, ok := theme.BorderStyle(t.Tooltip.BorderStyle); ok {
		vars.BorderStyle = border
	}
	if t.Tooltip.PaddingX != nil {
		vars.PaddingX = *t.Tooltip.PaddingX
	}
	return theme.WithTooltip(vars), nil
}

// Default returns the configuration the playground uses without a file.
func Default() *Config {
	str := func(s string) *string { return &s }
	dur := func(d time.Duration) *time.Duration { return &d }
	off := 0.0
	return &Config{
		Version: "1.0",
		Defaults: Behavior{
			Offset:    &off,
			ShowDelay: dur(DefaultShowDelay),
			HideDelay: dur(DefaultHideDelay),
		},
		Anchors: []Anchor{
			{ID: "save", Label: "Save", Tooltip: "Write the buffer to disk\n\nctrl+s", Behavior: Behavior{Placement: str("bottom")}},
			{ID: "open", Label: "Open", Tooltip: "Open a file", Behavior: Behavior{Placement: str("top"), Trigger: str("focus")}},
			{ID: "share", Label: "Share", Tooltip: "Copy a link", Behavior: Behavior{Placement: str("right"), KeepOpen: str("never")}},
			{ID: "help", Label: "Help", Tooltip: "Press ? for keys\nPress q to quit", Behavior: Behavior{Placement: str("left-top"), DisplayFrom: str("sm")}},
		},
	}
}
